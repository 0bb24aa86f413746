package flycam

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Transform places one object instance in world space.
//
// Rotation must be a unit quaternion. A Transform whose Rotation and Scale
// are both zero renders nothing; Scene.AddInstance treats such a value as
// the identity at Translation. Use NewTransform.
type Transform struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Quat
	Scale       mgl32.Vec3
}

// NewTransform returns the identity transform.
func NewTransform() Transform {
	return Transform{
		Rotation: mgl32.QuatIdent(),
		Scale:    mgl32.Vec3{1, 1, 1},
	}
}

// TranslationTransform returns an identity transform moved to t.
func TranslationTransform(t mgl32.Vec3) Transform {
	tr := NewTransform()
	tr.Translation = t
	return tr
}

// Matrix composes the world matrix from the current fields.
//
// Composition order:
//
//	Translate * Rotate * Scale
//
// so a local point is scaled first, then rotated, then translated. The
// matrix is rebuilt on every call and never accumulated.
func (t Transform) Matrix() mgl32.Mat4 {
	translate := mgl32.Translate3D(t.Translation[0], t.Translation[1], t.Translation[2])
	rotate := t.Rotation.Mat4()
	scale := mgl32.Scale3D(t.Scale[0], t.Scale[1], t.Scale[2])
	return translate.Mul4(rotate).Mul4(scale)
}

// Apply transforms a local-space point to world space.
func (t Transform) Apply(p mgl32.Vec3) mgl32.Vec3 {
	return mgl32.TransformCoordinate(p, t.Matrix())
}

// SetRotationY replaces the rotation with angle radians about +Y.
func (t *Transform) SetRotationY(angle float32) {
	t.Rotation = mgl32.QuatRotate(angle, mgl32.Vec3{0, 1, 0})
}

// SetPosition sets the translation.
func (t *Transform) SetPosition(x, y, z float32) {
	t.Translation = mgl32.Vec3{x, y, z}
}

// SetScale sets the per-axis scale.
func (t *Transform) SetScale(x, y, z float32) {
	t.Scale = mgl32.Vec3{x, y, z}
}
