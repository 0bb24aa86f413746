package flycam

import (
	"io"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// LoadGLTF opens a .gltf or .glb file and merges every triangle primitive
// of every mesh into one Mesh. Node transforms are not applied.
func LoadGLTF(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open gltf %s", path)
	}
	return meshFromDocument(path, doc)
}

// DecodeGLTF reads a self-contained glTF/GLB document from r. Buffers must
// be embedded.
func DecodeGLTF(name string, r io.Reader) (*Mesh, error) {
	doc := new(gltf.Document)
	if err := gltf.NewDecoder(r).Decode(doc); err != nil {
		return nil, errors.Wrapf(err, "decode gltf %s", name)
	}
	return meshFromDocument(name, doc)
}

func meshFromDocument(name string, doc *gltf.Document) (*Mesh, error) {
	var positions []mgl32.Vec3
	var indices []uint32

	for mi, mesh := range doc.Meshes {
		for pi, prim := range mesh.Primitives {
			if prim.Mode != gltf.PrimitiveTriangles {
				continue
			}
			posIdx, ok := prim.Attributes["POSITION"]
			if !ok {
				continue
			}
			if int(posIdx) >= len(doc.Accessors) {
				return nil, errors.Errorf("%s: mesh %d primitive %d: accessor %d out of range", name, mi, pi, posIdx)
			}
			pos, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
			if err != nil {
				return nil, errors.Wrapf(err, "%s: mesh %d primitive %d positions", name, mi, pi)
			}

			base := uint32(len(positions))
			for _, p := range pos {
				positions = append(positions, mgl32.Vec3(p))
			}

			if prim.Indices == nil {
				for i := range pos {
					indices = append(indices, base+uint32(i))
				}
				continue
			}
			if int(*prim.Indices) >= len(doc.Accessors) {
				return nil, errors.Errorf("%s: mesh %d primitive %d: accessor %d out of range", name, mi, pi, *prim.Indices)
			}
			idx, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
			if err != nil {
				return nil, errors.Wrapf(err, "%s: mesh %d primitive %d indices", name, mi, pi)
			}
			for _, i := range idx {
				indices = append(indices, base+i)
			}
		}
	}

	if len(indices) == 0 {
		return nil, errors.Errorf("%s: no triangle primitives", name)
	}
	return NewMesh(name, positions, indices)
}
