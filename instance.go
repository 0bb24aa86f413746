package flycam

import "github.com/go-gl/mathgl/mgl32"

// IDSource hands out monotonically increasing identifiers. The scene owns
// one; tests can create independent sources. Not safe for concurrent use.
type IDSource struct {
	last uint32
}

// NewIDSource returns a source whose first id is 1.
func NewIDSource() *IDSource {
	return &IDSource{}
}

// Next returns the next id.
func (s *IDSource) Next() uint32 {
	s.last++
	return s.last
}

// Last returns the most recently issued id, or 0 if none.
func (s *IDSource) Last() uint32 {
	return s.last
}

// ModelInstance is one placement of a shared mesh in the scene.
type ModelInstance struct {
	ID   uint32
	Name string
	// Mesh is shared and must not be modified.
	Mesh *Mesh
	// Transform is owned by this instance and rewritten by the per-frame hook.
	Transform Transform
	// Visible instances are included in the draw list.
	Visible bool
	// UserData is free for the application.
	UserData any
}

// World returns the instance's current world matrix.
func (m *ModelInstance) World() mgl32.Mat4 {
	return m.Transform.Matrix()
}

// InstanceHook mutates one instance for the given frame. It runs once per
// instance per stepped frame, in insertion order.
type InstanceHook func(frame uint64, inst *ModelInstance)

// SpinY sets each instance's rotation to (frame mod 360) degrees about +Y.
func SpinY(frame uint64, inst *ModelInstance) {
	inst.Transform.SetRotationY(mgl32.DegToRad(float32(frame % 360)))
}
