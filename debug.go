package flycam

import (
	"time"

	"github.com/sirupsen/logrus"
)

// frameStats holds per-frame timing and counts.
// Only populated when Scene.debug is true.
type frameStats struct {
	frame     uint64
	start     time.Time
	stepTime  time.Duration
	dt        float32
	instances int
	tweens    int
}

// SetFPSSource sets the function that reports the measured frame rate in
// debug logs. Run installs ebiten.ActualFPS. With no source the rate is
// measured from the wall-clock interval between debug-logged steps.
func (s *Scene) SetFPSSource(fn func() float64) {
	s.fpsSource = fn
}

// measuredFPS returns the frame rate for the step that began at start.
func (s *Scene) measuredFPS(start time.Time) float64 {
	if s.fpsSource != nil {
		return s.fpsSource()
	}
	prev := s.lastStep
	s.lastStep = start
	if prev.IsZero() {
		return 0
	}
	if d := start.Sub(prev); d > 0 {
		return 1 / d.Seconds()
	}
	return 0
}

// debugLog writes frame stats and the camera pose at debug level.
func (s *Scene) debugLog(stats frameStats) {
	if !s.debug {
		return
	}
	fps := s.measuredFPS(stats.start)
	pos := s.camera.Position()
	s.log.WithFields(logrus.Fields{
		"frame":     stats.frame,
		"step":      stats.stepTime,
		"fps":       fps,
		"dt":        stats.dt,
		"instances": stats.instances,
		"tweens":    stats.tweens,
		"x":         pos[0],
		"y":         pos[1],
		"z":         pos[2],
		"yaw":       s.camera.Yaw(),
		"pitch":     s.camera.Pitch(),
	}).Debug("frame")
}

// renderStats counts what the renderer submitted for one frame.
type renderStats struct {
	items     int
	triangles int
	culled    int
	batches   int
	drawTime  time.Duration
}

func (s *Scene) debugLogRender(stats renderStats) {
	if !s.debug {
		return
	}
	s.log.WithFields(logrus.Fields{
		"items":     stats.items,
		"triangles": stats.triangles,
		"culled":    stats.culled,
		"batches":   stats.batches,
		"draw":      stats.drawTime,
	}).Debug("render")
}
