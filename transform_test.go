package flycam

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if !approxEqual(got, want, epsilon) {
		t.Errorf("%s = %f, want %f", name, got, want)
	}
}

func assertVecNear(t *testing.T, name string, got, want mgl32.Vec3) {
	t.Helper()
	if !vecNear(got, want, epsilon) {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func TestNewTransformIsIdentity(t *testing.T) {
	tr := NewTransform()
	if !tr.Matrix().ApproxEqual(mgl32.Ident4()) {
		t.Errorf("Matrix = %v, want identity", tr.Matrix())
	}
	p := mgl32.Vec3{1, -2, 3}
	assertVecNear(t, "Apply", tr.Apply(p), p)
}

func TestTransformCompositionOrder(t *testing.T) {
	tr := NewTransform()
	tr.SetPosition(1, 0, 0)
	tr.SetRotationY(math.Pi / 2)
	tr.SetScale(2, 1, 1)

	// Scale to (2,0,0), rotate to (0,0,-2), translate to (1,0,-2).
	assertVecNear(t, "Apply(1,0,0)", tr.Apply(mgl32.Vec3{1, 0, 0}), mgl32.Vec3{1, 0, -2})
}

func TestTransformTranslationOnly(t *testing.T) {
	tr := TranslationTransform(mgl32.Vec3{3, 4, 5})
	assertVecNear(t, "Apply(origin)", tr.Apply(mgl32.Vec3{}), mgl32.Vec3{3, 4, 5})
	assertVecNear(t, "Apply(1,1,1)", tr.Apply(mgl32.Vec3{1, 1, 1}), mgl32.Vec3{4, 5, 6})
}

func TestTransformRotationY(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
		in    mgl32.Vec3
		want  mgl32.Vec3
	}{
		{"0", 0, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{1, 0, 0}},
		{"90 x", math.Pi / 2, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}},
		{"90 z", math.Pi / 2, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}},
		{"180", math.Pi, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{-1, 0, 0}},
		{"y axis fixed", 1.234, mgl32.Vec3{0, 2, 0}, mgl32.Vec3{0, 2, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTransform()
			tr.SetRotationY(float32(tt.angle))
			assertVecNear(t, "Apply", tr.Apply(tt.in), tt.want)
		})
	}
}

func TestTransformSetRotationYReplaces(t *testing.T) {
	tr := NewTransform()
	tr.SetRotationY(1)
	tr.SetRotationY(0.5)

	want := NewTransform()
	want.SetRotationY(0.5)
	if !tr.Matrix().ApproxEqual(want.Matrix()) {
		t.Error("SetRotationY composed instead of replacing")
	}
}

func TestTransformMatrixNotAccumulated(t *testing.T) {
	tr := NewTransform()
	tr.SetPosition(1, 2, 3)
	m1 := tr.Matrix()
	m2 := tr.Matrix()
	if m1 != m2 {
		t.Error("Matrix differs between calls with the same fields")
	}
	tr.SetPosition(0, 0, 0)
	assertVecNear(t, "Apply after reset", tr.Apply(mgl32.Vec3{}), mgl32.Vec3{})
}

func TestTransformNonUniformScale(t *testing.T) {
	tr := NewTransform()
	tr.SetScale(2, 3, 4)
	assertVecNear(t, "Apply", tr.Apply(mgl32.Vec3{1, 1, 1}), mgl32.Vec3{2, 3, 4})
	assertNear(t, "Matrix[0]", float64(tr.Matrix()[0]), 2)
	assertNear(t, "Matrix[5]", float64(tr.Matrix()[5]), 3)
	assertNear(t, "Matrix[10]", float64(tr.Matrix()[10]), 4)
}
