package flycam

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// EntityStore is the interface for optional ECS integration.
// When set on a Scene, scene events are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event SceneEvent)
}

// SceneEvent carries scene lifecycle data for the ECS bridge.
type SceneEvent struct {
	Type       EventType
	InstanceID uint32
	Frame      uint64
	// Position is the instance translation (EventInstanceAdded) or the
	// camera position (EventCameraMoved).
	Position mgl32.Vec3
	// Width and Height are valid for EventResized and EventFrameSkipped.
	Width, Height int
}

// EventType identifies a kind of scene event.
type EventType uint8

const (
	EventInstanceAdded EventType = iota // an instance was appended
	EventCameraMoved                    // the camera position changed this frame
	EventResized                        // the output surface changed size
	EventFrameSkipped                   // a zero-area frame was skipped
)

// Frame describes one tick of the frame loop.
type Frame struct {
	// Width and Height are the output surface size in pixels. A zero in
	// either skips the whole update.
	Width, Height int
	// DT is the elapsed time since the previous frame in seconds.
	DT float32
}

// DrawItem is what the draw step needs for one instance.
type DrawItem struct {
	Mesh  *Mesh
	World mgl32.Mat4
}

// Scene owns the camera and the ordered instance list, and advances both
// once per frame. It never issues draw calls itself.
type Scene struct {
	camera    *Camera
	instances []*ModelInstance
	ids       *IDSource
	hook      InstanceHook
	tweens    []*TweenGroup
	frame     uint64

	width, height int

	store EntityStore
	log   logrus.FieldLogger
	debug bool

	fpsSource func() float64
	lastStep  time.Time

	updateFunc func() error

	// ClearColor fills the screen before drawing. The zero value leaves
	// the screen untouched.
	ClearColor Color

	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	screenshotQueue []string
	injectQueue     []syntheticInputEvent
	testRunner      *TestRunner
}

// NewScene creates a scene that owns cam. Instances spin about +Y by
// default; see SetInstanceHook.
func NewScene(cam *Camera) *Scene {
	return &Scene{
		camera:        cam,
		ids:           NewIDSource(),
		hook:          SpinY,
		log:           logrus.StandardLogger(),
		ScreenshotDir: "screenshots",
	}
}

// Camera returns the scene camera.
func (s *Scene) Camera() *Camera {
	return s.camera
}

// FrameCount returns the number of frames stepped so far. Skipped frames
// are not counted.
func (s *Scene) FrameCount() uint64 {
	return s.frame
}

// IDs returns the scene's id source.
func (s *Scene) IDs() *IDSource {
	return s.ids
}

// AddInstance appends a new instance of mesh placed at t and returns it.
// If t has a zero Rotation and a zero Scale, they are replaced by the
// identity rotation and unit scale.
func (s *Scene) AddInstance(mesh *Mesh, t Transform) *ModelInstance {
	if t.Rotation == (mgl32.Quat{}) && t.Scale == (mgl32.Vec3{}) {
		t.Rotation = mgl32.QuatIdent()
		t.Scale = mgl32.Vec3{1, 1, 1}
	}
	inst := &ModelInstance{
		ID:        s.ids.Next(),
		Mesh:      mesh,
		Transform: t,
		Visible:   true,
	}
	if mesh != nil {
		inst.Name = mesh.Name()
	}
	s.instances = append(s.instances, inst)
	s.emit(SceneEvent{Type: EventInstanceAdded, InstanceID: inst.ID, Frame: s.frame, Position: t.Translation})
	return inst
}

// AddGrid places size*size instances of mesh at (x*spacing, y*spacing, 0).
func (s *Scene) AddGrid(mesh *Mesh, size int, spacing float32) []*ModelInstance {
	if size <= 0 {
		return nil
	}
	out := make([]*ModelInstance, 0, size*size)
	for x := 0; x < size; x++ {
		for y := 0; y < size; y++ {
			t := TranslationTransform(mgl32.Vec3{float32(x) * spacing, float32(y) * spacing, 0})
			out = append(out, s.AddInstance(mesh, t))
		}
	}
	return out
}

// Instances returns the instance list in insertion order. The returned
// slice MUST NOT be mutated.
func (s *Scene) Instances() []*ModelInstance {
	return s.instances
}

// SetInstanceHook replaces the per-frame instance hook. nil disables it.
func (s *Scene) SetInstanceHook(hook InstanceHook) {
	s.hook = hook
}

// AddTween registers a tween that the scene advances every stepped frame
// until it is done.
func (s *Scene) AddTween(g *TweenGroup) {
	s.tweens = append(s.tweens, g)
}

// PendingTweens returns the number of tweens still running.
func (s *Scene) PendingTweens() int {
	return len(s.tweens)
}

// SetUpdateFunc sets a callback run at the end of every stepped frame.
// A non-nil error stops the frame loop.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// SetEntityStore sets the optional ECS bridge.
func (s *Scene) SetEntityStore(store EntityStore) {
	s.store = store
}

// SetLogger replaces the logger. nil restores the logrus standard logger.
func (s *Scene) SetLogger(log logrus.FieldLogger) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	s.log = log
}

// SetDebugMode enables or disables per-frame debug logging.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// Resize forwards a new output size to the camera as an aspect ratio.
// Zero-area sizes are remembered but do not touch the camera.
func (s *Scene) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width, s.height = width, height
	s.emit(SceneEvent{Type: EventResized, Frame: s.frame, Width: width, Height: height})
	if width <= 0 || height <= 0 {
		return
	}
	s.camera.SetAspectRatio(float32(width) / float32(height))
}

// Step runs one frame: scripted input, camera update, instance hook,
// tweens and the update callback, in that order. A frame with zero width or
// height is skipped entirely and leaves the camera untouched.
func (s *Scene) Step(input *InputState, f Frame) error {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInjectedInput(input)

	if f.Width <= 0 || f.Height <= 0 {
		// Motion gathered while nothing is visible is dropped rather than
		// applied in one jump when the surface comes back.
		input.ConsumePointerDelta()
		s.emit(SceneEvent{Type: EventFrameSkipped, Frame: s.frame, Width: f.Width, Height: f.Height})
		if s.debug {
			s.log.WithFields(logrus.Fields{"width": f.Width, "height": f.Height}).Debug("frame skipped")
		}
		return nil
	}
	s.Resize(f.Width, f.Height)

	prev := s.camera.Position()
	if err := s.camera.Update(input, f.DT); err != nil {
		return errors.Wrap(err, "camera update")
	}
	if pos := s.camera.Position(); pos != prev {
		s.emit(SceneEvent{Type: EventCameraMoved, Frame: s.frame, Position: pos})
	}

	if s.hook != nil {
		for _, inst := range s.instances {
			s.hook(s.frame, inst)
		}
	}
	s.updateTweens(f.DT)
	s.frame++

	if s.updateFunc != nil {
		if err := s.updateFunc(); err != nil {
			return err
		}
	}

	if s.debug {
		s.debugLog(frameStats{
			frame:     s.frame,
			start:     t0,
			stepTime:  time.Since(t0),
			dt:        f.DT,
			instances: len(s.instances),
			tweens:    len(s.tweens),
		})
	}
	return nil
}

// updateTweens advances registered tweens and drops finished ones.
func (s *Scene) updateTweens(dt float32) {
	live := s.tweens[:0]
	for _, g := range s.tweens {
		g.Update(dt)
		if !g.Done {
			live = append(live, g)
		}
	}
	for i := len(live); i < len(s.tweens); i++ {
		s.tweens[i] = nil
	}
	s.tweens = live
}

// ViewProjection returns the camera's current view-projection matrix.
func (s *Scene) ViewProjection() mgl32.Mat4 {
	return s.camera.ViewProjection()
}

// AppendDrawList appends one DrawItem per visible instance, in insertion
// order, and returns the extended slice.
func (s *Scene) AppendDrawList(dst []DrawItem) []DrawItem {
	for _, inst := range s.instances {
		if !inst.Visible || inst.Mesh == nil {
			continue
		}
		dst = append(dst, DrawItem{Mesh: inst.Mesh, World: inst.World()})
	}
	return dst
}

// DrawList is AppendDrawList into a fresh slice.
func (s *Scene) DrawList() []DrawItem {
	return s.AppendDrawList(make([]DrawItem, 0, len(s.instances)))
}

func (s *Scene) emit(e SceneEvent) {
	if s.store != nil {
		s.store.EmitEvent(e)
	}
}

// NewSceneFromConfig builds the default viewer scene: a camera at (5, 2, 5)
// looking at the origin, and a cfg.Grid.Size square grid of mesh.
func NewSceneFromConfig(cfg Config, mesh *Mesh) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	pos := mgl32.Vec3{5, 2, 5}
	cam, err := NewFPSCamera(pos, pos.Mul(-1), 1920.0/1009.0, cfg.Camera)
	if err != nil {
		return nil, err
	}
	cam.SetBindings(cfg.Bindings)

	s := NewScene(cam)
	s.AddGrid(mesh, cfg.Grid.Size, cfg.Grid.Spacing)
	return s, nil
}

// LoadMesh loads cfg.Mesh, or returns a cube when it is empty.
func LoadMesh(cfg Config) (*Mesh, error) {
	if cfg.Mesh == "" {
		return NewCubeMesh(0.5), nil
	}
	return LoadGLTF(cfg.Mesh)
}
