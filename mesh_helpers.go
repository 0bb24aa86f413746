package flycam

import (
	"github.com/go-gl/mathgl/mgl32"
)

// --- Cube ---

// NewCubeMesh builds an axis-aligned cube of the given edge length centered
// on the origin. Faces wind counter-clockwise when seen from outside.
func NewCubeMesh(size float32) *Mesh {
	h := size / 2
	positions := []mgl32.Vec3{
		{-h, -h, -h}, {h, -h, -h}, {h, h, -h}, {-h, h, -h},
		{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h},
	}
	indices := []uint32{
		4, 5, 6, 4, 6, 7, // +Z
		1, 0, 3, 1, 3, 2, // -Z
		5, 1, 2, 5, 2, 6, // +X
		0, 4, 7, 0, 7, 3, // -X
		7, 6, 2, 7, 2, 3, // +Y
		0, 1, 5, 0, 5, 4, // -Y
	}
	m, err := NewMesh("cube", positions, indices)
	if err != nil {
		panic(err)
	}
	return m
}

// --- Polygon ---

// NewPolygonMesh builds a flat mesh in the XZ plane from a convex outline
// using fan triangulation: N points, N-2 triangles. Fewer than three points
// yield an empty mesh.
func NewPolygonMesh(name string, outline []mgl32.Vec2) *Mesh {
	n := len(outline)
	positions := make([]mgl32.Vec3, n)
	for i, p := range outline {
		positions[i] = mgl32.Vec3{p[0], 0, p[1]}
	}
	var indices []uint32
	if n >= 3 {
		indices = make([]uint32, 0, (n-2)*3)
		for i := 0; i < n-2; i++ {
			// Vertex 0 is the hub. Reversed order faces +Y for a CCW outline
			// in (x, z).
			indices = append(indices, 0, uint32(i+2), uint32(i+1))
		}
	}
	m, err := NewMesh(name, positions, indices)
	if err != nil {
		panic(err)
	}
	return m
}
