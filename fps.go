package flycam

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// hudRefresh is how often the HUD text is rebuilt, in seconds.
const hudRefresh = 0.5

// HUD is a small overlay showing FPS, TPS and the camera pose. The text is
// rebuilt about twice a second.
type HUD struct {
	img   *ebiten.Image
	since float64
	text  string
}

// NewHUD creates the overlay.
func NewHUD() *HUD {
	// 220x64 fits four DebugPrint lines.
	return &HUD{img: ebiten.NewImage(220, 64), since: hudRefresh}
}

// Update advances the refresh timer by dt seconds and rebuilds the text
// from s when it expires.
func (h *HUD) Update(s *Scene, dt float64) {
	h.since += dt
	if h.since < hudRefresh {
		return
	}
	h.since = 0
	h.text = hudText(s, ebiten.ActualFPS(), ebiten.ActualTPS())

	h.img.Clear()
	// Semi-transparent background for readability
	h.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(h.img, h.text)
}

// Draw paints the overlay in the top-left corner.
func (h *HUD) Draw(screen *ebiten.Image) {
	screen.DrawImage(h.img, nil)
}

// Text returns the most recent overlay text.
func (h *HUD) Text() string {
	return h.text
}

func hudText(s *Scene, fps, tps float64) string {
	cam := s.Camera()
	p := cam.Position()
	return fmt.Sprintf("FPS: %.1f  TPS: %.1f\npos: %.2f %.2f %.2f\nyaw: %.2f pitch: %.2f\ninstances: %d",
		fps, tps, p[0], p[1], p[2], cam.Yaw(), cam.Pitch(), len(s.Instances()))
}
