package flycam

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

// AABB is an axis-aligned box in mesh-local space.
type AABB struct {
	Min, Max mgl32.Vec3
}

// Center returns the midpoint of the box.
func (b AABB) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Size returns the box extent on each axis.
func (b AABB) Size() mgl32.Vec3 {
	return b.Max.Sub(b.Min)
}

// Mesh is immutable triangle geometry shared by any number of instances.
// Hold it by pointer; every instance referencing it keeps it alive.
type Mesh struct {
	name      string
	positions []mgl32.Vec3
	indices   []uint32
	bounds    AABB
}

// NewMesh validates and wraps triangle-list geometry. The slices are copied,
// so the caller may reuse them. len(indices) must be a multiple of three and
// every index must address a position.
func NewMesh(name string, positions []mgl32.Vec3, indices []uint32) (*Mesh, error) {
	if len(indices)%3 != 0 {
		return nil, errors.Errorf("mesh %q: %d indices is not a triangle list", name, len(indices))
	}
	for i, idx := range indices {
		if int(idx) >= len(positions) {
			return nil, errors.Errorf("mesh %q: index %d at %d out of range (%d positions)", name, idx, i, len(positions))
		}
	}
	m := &Mesh{
		name:      name,
		positions: append([]mgl32.Vec3(nil), positions...),
		indices:   append([]uint32(nil), indices...),
	}
	m.bounds = computeBounds(m.positions)
	return m, nil
}

// Name returns the mesh name.
func (m *Mesh) Name() string { return m.name }

// VertexCount returns the number of positions.
func (m *Mesh) VertexCount() int { return len(m.positions) }

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int { return len(m.indices) / 3 }

// Bounds returns the local-space bounding box.
func (m *Mesh) Bounds() AABB { return m.bounds }

// Triangle returns the three corners of triangle i.
func (m *Mesh) Triangle(i int) (a, b, c mgl32.Vec3) {
	return m.positions[m.indices[3*i]], m.positions[m.indices[3*i+1]], m.positions[m.indices[3*i+2]]
}

// computeBounds scans positions and returns their AABB.
func computeBounds(positions []mgl32.Vec3) AABB {
	if len(positions) == 0 {
		return AABB{}
	}
	b := AABB{Min: positions[0], Max: positions[0]}
	for _, p := range positions[1:] {
		for i := 0; i < 3; i++ {
			if p[i] < b.Min[i] {
				b.Min[i] = p[i]
			}
			if p[i] > b.Max[i] {
				b.Max[i] = p[i]
			}
		}
	}
	return b
}
