package flycam

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

func TestNewMesh(t *testing.T) {
	positions := []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 2, -1}}
	indices := []uint32{0, 1, 2}
	m, err := NewMesh("tri", positions, indices)
	if err != nil {
		t.Fatalf("NewMesh: %v", err)
	}
	if m.Name() != "tri" || m.VertexCount() != 3 || m.TriangleCount() != 1 {
		t.Errorf("mesh = %q %d verts %d tris", m.Name(), m.VertexCount(), m.TriangleCount())
	}
	b := m.Bounds()
	if b.Min != (mgl32.Vec3{0, 0, -1}) || b.Max != (mgl32.Vec3{1, 2, 0}) {
		t.Errorf("Bounds = %+v", b)
	}

	// Mutating the inputs must not reach the mesh.
	positions[0] = mgl32.Vec3{9, 9, 9}
	indices[0] = 2
	a, _, _ := m.Triangle(0)
	if a != (mgl32.Vec3{}) {
		t.Errorf("Triangle(0).a = %v, mesh shares caller slices", a)
	}
}

func TestNewMeshErrors(t *testing.T) {
	pos := []mgl32.Vec3{{}, {1, 0, 0}, {0, 1, 0}}
	tests := []struct {
		name    string
		indices []uint32
		want    string
	}{
		{"not a triangle list", []uint32{0, 1}, "not a triangle list"},
		{"index out of range", []uint32{0, 1, 3}, "out of range"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMesh("bad", pos, tt.indices)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestAABB(t *testing.T) {
	b := AABB{Min: mgl32.Vec3{-1, 0, 2}, Max: mgl32.Vec3{3, 4, 2}}
	if b.Center() != (mgl32.Vec3{1, 2, 2}) {
		t.Errorf("Center = %v", b.Center())
	}
	if b.Size() != (mgl32.Vec3{4, 4, 0}) {
		t.Errorf("Size = %v", b.Size())
	}
	if computeBounds(nil) != (AABB{}) {
		t.Error("computeBounds(nil) not zero")
	}
}

func TestNewCubeMesh(t *testing.T) {
	m := NewCubeMesh(2)
	if m.VertexCount() != 8 || m.TriangleCount() != 12 {
		t.Fatalf("cube = %d verts %d tris, want 8 and 12", m.VertexCount(), m.TriangleCount())
	}
	b := m.Bounds()
	if b.Min != (mgl32.Vec3{-1, -1, -1}) || b.Max != (mgl32.Vec3{1, 1, 1}) {
		t.Errorf("Bounds = %+v", b)
	}

	// Every face normal points away from the center.
	for i := 0; i < m.TriangleCount(); i++ {
		a, bb, c := m.Triangle(i)
		n := bb.Sub(a).Cross(c.Sub(a))
		centroid := a.Add(bb).Add(c).Mul(1.0 / 3)
		if n.Dot(centroid) <= 0 {
			t.Errorf("triangle %d faces inward: normal %v centroid %v", i, n, centroid)
		}
	}
}

func TestNewPolygonMesh(t *testing.T) {
	square := []mgl32.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	m := NewPolygonMesh("square", square)
	if m.VertexCount() != 4 || m.TriangleCount() != 2 {
		t.Fatalf("square = %d verts %d tris", m.VertexCount(), m.TriangleCount())
	}
	for i := 0; i < m.TriangleCount(); i++ {
		a, b, c := m.Triangle(i)
		n := b.Sub(a).Cross(c.Sub(a))
		if n[1] <= 0 {
			t.Errorf("triangle %d normal %v does not face +Y", i, n)
		}
	}

	empty := NewPolygonMesh("line", square[:2])
	if empty.TriangleCount() != 0 {
		t.Errorf("two-point outline has %d triangles", empty.TriangleCount())
	}
}

func newTestDocument(points bool) *gltf.Document {
	doc := gltf.NewDocument()
	pos := modeler.WritePosition(doc, [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0}})
	idx := modeler.WriteIndices(doc, []uint32{0, 1, 2, 2, 1, 3})
	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name: "quad",
		Primitives: []*gltf.Primitive{{
			Indices:    &idx,
			Attributes: map[string]uint32{"POSITION": pos},
		}},
	})

	// A second mesh without indices.
	tri := modeler.WritePosition(doc, [][3]float32{{0, 0, 1}, {1, 0, 1}, {0, 1, 1}})
	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name: "tri",
		Primitives: []*gltf.Primitive{{
			Attributes: map[string]uint32{"POSITION": tri},
		}},
	})

	if points {
		p := modeler.WritePosition(doc, [][3]float32{{5, 5, 5}})
		doc.Meshes = append(doc.Meshes, &gltf.Mesh{
			Name: "points",
			Primitives: []*gltf.Primitive{{
				Mode:       gltf.PrimitivePoints,
				Attributes: map[string]uint32{"POSITION": p},
			}},
		})
	}
	return doc
}

func TestMeshFromDocument(t *testing.T) {
	m, err := meshFromDocument("doc", newTestDocument(true))
	if err != nil {
		t.Fatalf("meshFromDocument: %v", err)
	}
	if m.VertexCount() != 7 {
		t.Errorf("VertexCount = %d, want 7 (points skipped)", m.VertexCount())
	}
	if m.TriangleCount() != 3 {
		t.Errorf("TriangleCount = %d, want 3", m.TriangleCount())
	}
	// The second primitive's indices are offset past the first.
	a, b, c := m.Triangle(2)
	if a != (mgl32.Vec3{0, 0, 1}) || b != (mgl32.Vec3{1, 0, 1}) || c != (mgl32.Vec3{0, 1, 1}) {
		t.Errorf("Triangle(2) = %v %v %v", a, b, c)
	}
	if m.Bounds().Max != (mgl32.Vec3{1, 1, 1}) {
		t.Errorf("Bounds = %+v", m.Bounds())
	}
}

func TestMeshFromDocumentEmpty(t *testing.T) {
	if _, err := meshFromDocument("empty", gltf.NewDocument()); err == nil {
		t.Error("meshFromDocument on an empty document succeeded")
	}
}

func TestMeshFromDocumentBadAccessor(t *testing.T) {
	bad := uint32(99)
	tests := map[string]*gltf.Primitive{
		"position": {Attributes: map[string]uint32{"POSITION": 99}},
		"indices":  {Attributes: map[string]uint32{"POSITION": 0}, Indices: &bad},
	}
	for name, prim := range tests {
		t.Run(name, func(t *testing.T) {
			doc := gltf.NewDocument()
			modeler.WritePosition(doc, [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}})
			doc.Meshes = append(doc.Meshes, &gltf.Mesh{Primitives: []*gltf.Primitive{prim}})

			_, err := meshFromDocument("bad", doc)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), "accessor 99 out of range") {
				t.Errorf("err = %v", err)
			}
		})
	}
}

func TestLoadGLTF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quad.glb")
	if err := gltf.SaveBinary(newTestDocument(false), path); err != nil {
		t.Fatalf("SaveBinary: %v", err)
	}
	m, err := LoadGLTF(path)
	if err != nil {
		t.Fatalf("LoadGLTF: %v", err)
	}
	if m.TriangleCount() != 3 || m.Name() != path {
		t.Errorf("mesh = %q with %d triangles", m.Name(), m.TriangleCount())
	}

	if _, err := LoadGLTF(filepath.Join(t.TempDir(), "missing.glb")); err == nil {
		t.Error("LoadGLTF of a missing file succeeded")
	}
}

func TestLoadMesh(t *testing.T) {
	cfg := DefaultConfig()
	m, err := LoadMesh(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if m.Name() != "cube" {
		t.Errorf("default mesh = %q, want cube", m.Name())
	}

	cfg.Mesh = filepath.Join(t.TempDir(), "nope.gltf")
	if _, err := LoadMesh(cfg); err == nil {
		t.Error("LoadMesh with a missing file succeeded")
	}
}
