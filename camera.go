package flycam

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// worldUp is the fixed reference axis for yaw and the right vector.
var worldUp = mgl32.Vec3{0, 1, 0}

// degenerateEps is the minimum |forward x worldUp| accepted at construction.
const degenerateEps = 1e-6

// CameraMode selects how a Camera interprets input.
type CameraMode uint8

const (
	ModeFPS   CameraMode = iota // free-fly, yaw/pitch from pointer motion
	ModeOrbit                   // orbit around a target; not implemented
)

func (m CameraMode) String() string {
	switch m {
	case ModeFPS:
		return "fps"
	case ModeOrbit:
		return "orbit"
	default:
		return fmt.Sprintf("CameraMode(%d)", uint8(m))
	}
}

// Camera owns position, orientation and projection, and caches the view,
// projection and view-projection matrices.
//
// Yaw and pitch are the canonical orientation. Forward, right and up are
// rebuilt from them on every update and are never integrated directly.
type Camera struct {
	position mgl32.Vec3
	forward  mgl32.Vec3
	right    mgl32.Vec3
	up       mgl32.Vec3
	target   mgl32.Vec3

	yaw, pitch float32
	aspect     float32

	view           mgl32.Mat4
	projection     mgl32.Mat4
	viewProjection mgl32.Mat4

	mode     CameraMode
	cfg      CameraConfig
	bindings Bindings
}

// NewFPSCamera creates a free-fly camera at position looking along forward.
// forward is normalized internally; it must be non-zero and must not be
// parallel to world up. aspect must be finite and positive.
func NewFPSCamera(position, forward mgl32.Vec3, aspect float32, cfg CameraConfig) (*Camera, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !validAspect(aspect) {
		return nil, errors.Wrapf(ErrInvalidAspect, "aspect %v", aspect)
	}
	if forward.Len() == 0 {
		return nil, ErrZeroForward
	}
	forward = forward.Normalize()
	if forward.Cross(worldUp).Len() < degenerateEps {
		return nil, ErrDegenerateForward
	}

	c := &Camera{
		position: position,
		forward:  forward,
		yaw:      float32(math.Atan2(float64(forward[2]), float64(forward[0]))),
		pitch:    float32(math.Asin(float64(forward[1]))),
		aspect:   aspect,
		mode:     ModeFPS,
		cfg:      cfg,
		bindings: DefaultBindings(),
	}
	if p := c.clampPitch(c.pitch); p != c.pitch {
		c.pitch = p
		c.forward = forwardFromAngles(c.yaw, c.pitch)
	}
	c.computeBasis()
	c.computeProjection()
	c.computeView()
	return c, nil
}

// NewOrbitCamera always fails with ErrNotImplemented.
func NewOrbitCamera(position, target mgl32.Vec3, aspect float32, cfg CameraConfig) (*Camera, error) {
	return nil, ErrNotImplemented
}

// DefaultCamera returns the startup camera of the teapot viewer: at
// (5, 2, 5) looking at the origin.
func DefaultCamera() *Camera {
	pos := mgl32.Vec3{5, 2, 5}
	c, err := NewFPSCamera(pos, pos.Mul(-1), 1920.0/1009.0, DefaultCameraConfig())
	if err != nil {
		panic(err)
	}
	return c
}

// SetBindings replaces the movement key bindings.
func (c *Camera) SetBindings(b Bindings) {
	c.bindings = b
}

// SetMode switches the camera mode. Selecting ModeOrbit makes every
// subsequent Update fail with ErrNotImplemented.
func (c *Camera) SetMode(m CameraMode) {
	c.mode = m
}

// Update advances the camera by one frame. dt is the elapsed time in
// seconds and scales movement. The pointer delta in input is consumed
// exactly once.
func (c *Camera) Update(input *InputState, dt float32) error {
	switch c.mode {
	case ModeFPS:
		c.updateFPS(input, dt)
	case ModeOrbit:
		return ErrNotImplemented
	default:
		return errors.Errorf("flycam: unknown camera mode %v", c.mode)
	}
	c.computeView()
	return nil
}

func (c *Camera) updateFPS(input *InputState, dt float32) {
	delta := input.ConsumePointerDelta()

	c.yaw = wrapAngle(c.yaw + delta[0])

	c.pitch = c.clampPitch(c.pitch - delta[1])
	c.forward = forwardFromAngles(c.yaw, c.pitch)
	c.computeBasis()

	step := c.cfg.MoveSpeed * dt
	if input.KeyDown(c.bindings.Forward) {
		c.position = c.position.Add(c.forward.Mul(step))
	}
	if input.KeyDown(c.bindings.Back) {
		c.position = c.position.Sub(c.forward.Mul(step))
	}
	if input.KeyDown(c.bindings.Left) {
		c.position = c.position.Sub(c.right.Mul(step))
	}
	if input.KeyDown(c.bindings.Right) {
		c.position = c.position.Add(c.right.Mul(step))
	}
}

// SetAspectRatio rebuilds the projection and view-projection. The view
// matrix is left untouched. Zero, negative, NaN and infinite values are
// ignored.
func (c *Camera) SetAspectRatio(aspect float32) {
	if !validAspect(aspect) {
		return
	}
	c.aspect = aspect
	c.computeProjection()
	c.viewProjection = c.projection.Mul4(c.view)
}

// computeBasis derives right and up from forward. up is forward x right,
// which is orthogonal to both but points away from world up; the view
// matrix is built from worldUp, not from this vector.
func (c *Camera) computeBasis() {
	c.right = c.forward.Cross(worldUp).Normalize()
	c.up = c.forward.Cross(c.right)
}

func (c *Camera) computeProjection() {
	c.projection = mgl32.Perspective(c.cfg.FOV, c.aspect, c.cfg.Near, c.cfg.Far)
}

func (c *Camera) computeView() {
	c.target = c.position.Add(c.forward)
	c.view = mgl32.LookAtV(c.position, c.target, worldUp)
	c.viewProjection = c.projection.Mul4(c.view)
}

// clampPitch keeps p inside [-pi/2+eps, pi/2-eps] so forward never
// becomes vertical.
func (c *Camera) clampPitch(p float32) float32 {
	eps := c.cfg.PitchEpsilon
	return mgl32.Clamp(p, -math.Pi/2+eps, math.Pi/2-eps)
}

func validAspect(a float32) bool {
	return a > 0 && !math.IsInf(float64(a), 1)
}

func forwardFromAngles(yaw, pitch float32) mgl32.Vec3 {
	sy, cy := math.Sincos(float64(yaw))
	sp, cp := math.Sincos(float64(pitch))
	return mgl32.Vec3{float32(cp * cy), float32(sp), float32(cp * sy)}.Normalize()
}

// wrapAngle maps a into [-pi, pi].
func wrapAngle(a float32) float32 {
	return float32(math.Remainder(float64(a), 2*math.Pi))
}

// --- Accessors ---

// Position returns the camera position in world space.
func (c *Camera) Position() mgl32.Vec3 { return c.position }

// Forward returns the unit view direction.
func (c *Camera) Forward() mgl32.Vec3 { return c.forward }

// Right returns the unit right vector.
func (c *Camera) Right() mgl32.Vec3 { return c.right }

// Up returns forward x right.
func (c *Camera) Up() mgl32.Vec3 { return c.up }

// Target returns position + forward.
func (c *Camera) Target() mgl32.Vec3 { return c.target }

// Yaw returns the horizontal angle in radians.
func (c *Camera) Yaw() float32 { return c.yaw }

// Pitch returns the vertical angle in radians.
func (c *Camera) Pitch() float32 { return c.pitch }

// AspectRatio returns the current projection aspect ratio.
func (c *Camera) AspectRatio() float32 { return c.aspect }

// Mode returns the active camera mode.
func (c *Camera) Mode() CameraMode { return c.mode }

// Config returns the camera's projection and movement parameters.
func (c *Camera) Config() CameraConfig { return c.cfg }

// View returns the world-to-camera matrix.
func (c *Camera) View() mgl32.Mat4 { return c.view }

// Projection returns the camera-to-clip matrix.
func (c *Camera) Projection() mgl32.Mat4 { return c.projection }

// ViewProjection returns Projection * View.
func (c *Camera) ViewProjection() mgl32.Mat4 { return c.viewProjection }
