package flycam

import (
	"image/color"
	"sort"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
)

// maxBatchVertices keeps each DrawTriangles call within uint16 indices.
const maxBatchVertices = 65535 - 3

// projectedTri is one triangle after projection, ready for sorting.
type projectedTri struct {
	x, y  [3]float32 // screen space
	depth float32    // mean NDC z, larger is farther
	shade float32
}

// Renderer draws a Scene's draw list onto an ebiten image. Triangles are
// projected on the CPU with the camera's view-projection, back-face culled,
// flat shaded and painted far to near. It holds reusable buffers and is not
// safe for concurrent use.
type Renderer struct {
	// Tint is the base color of every mesh.
	Tint Color
	// LightDir is the world-space direction light travels in.
	LightDir mgl32.Vec3
	// Ambient is the minimum brightness of faces turned away from the light.
	Ambient float32

	items []DrawItem
	tris  []projectedTri
	verts []ebiten.Vertex
	inds  []uint16
	stats renderStats
}

// NewRenderer returns a renderer with a warm tint and light from above.
func NewRenderer() *Renderer {
	return &Renderer{
		Tint:     Color{R: 0.95, G: 0.8, B: 0.55, A: 1},
		LightDir: mgl32.Vec3{-0.4, -1, -0.3}.Normalize(),
		Ambient:  0.25,
	}
}

// Draw renders s onto screen. It only reads the scene.
func (r *Renderer) Draw(screen *ebiten.Image, s *Scene) {
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}
	r.stats = renderStats{}

	if !s.ClearColor.IsZero() {
		screen.Fill(s.ClearColor.toRGBA())
	}

	b := screen.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())
	if w == 0 || h == 0 {
		return
	}

	r.items = s.AppendDrawList(r.items[:0])
	r.stats.items = len(r.items)
	vp := s.ViewProjection()

	r.tris = r.tris[:0]
	for i := range r.items {
		r.project(&r.items[i], vp, w, h)
	}
	sort.Slice(r.tris, func(i, j int) bool {
		return r.tris[i].depth > r.tris[j].depth
	})
	r.stats.triangles = len(r.tris)

	r.submit(screen)
	s.flushScreenshots(screen)

	if s.debug {
		r.stats.drawTime = time.Since(t0)
		s.debugLogRender(r.stats)
	}
}

// project appends the visible triangles of one item to r.tris.
func (r *Renderer) project(item *DrawItem, vp mgl32.Mat4, w, h float32) {
	mvp := vp.Mul4(item.World)
	toLight := r.LightDir.Mul(-1)

	for t := 0; t < item.Mesh.TriangleCount(); t++ {
		a, b, c := item.Mesh.Triangle(t)
		ca := mvp.Mul4x1(a.Vec4(1))
		cb := mvp.Mul4x1(b.Vec4(1))
		cc := mvp.Mul4x1(c.Vec4(1))

		// Reject instead of clip: any corner behind the eye drops the triangle.
		if ca[3] <= 0 || cb[3] <= 0 || cc[3] <= 0 {
			r.stats.culled++
			continue
		}
		na := ca.Vec3().Mul(1 / ca[3])
		nb := cb.Vec3().Mul(1 / cb[3])
		nc := cc.Vec3().Mul(1 / cc[3])
		if outsideFrustum(na, nb, nc) {
			r.stats.culled++
			continue
		}
		// Counter-clockwise in NDC faces the camera.
		area := (nb[0]-na[0])*(nc[1]-na[1]) - (nb[1]-na[1])*(nc[0]-na[0])
		if area <= 0 {
			r.stats.culled++
			continue
		}

		wa := mgl32.TransformCoordinate(a, item.World)
		wb := mgl32.TransformCoordinate(b, item.World)
		wc := mgl32.TransformCoordinate(c, item.World)
		normal := wb.Sub(wa).Cross(wc.Sub(wa))
		shade := r.Ambient
		if l := normal.Len(); l > 0 {
			if d := normal.Mul(1 / l).Dot(toLight); d > 0 {
				shade += (1 - r.Ambient) * d
			}
		}

		r.tris = append(r.tris, projectedTri{
			x:     [3]float32{(na[0] + 1) / 2 * w, (nb[0] + 1) / 2 * w, (nc[0] + 1) / 2 * w},
			y:     [3]float32{(1 - na[1]) / 2 * h, (1 - nb[1]) / 2 * h, (1 - nc[1]) / 2 * h},
			depth: (na[2] + nb[2] + nc[2]) / 3,
			shade: shade,
		})
	}
}

// outsideFrustum reports whether all three NDC points lie beyond the same
// clip plane.
func outsideFrustum(a, b, c mgl32.Vec3) bool {
	for i := 0; i < 3; i++ {
		if a[i] < -1 && b[i] < -1 && c[i] < -1 {
			return true
		}
		if a[i] > 1 && b[i] > 1 && c[i] > 1 {
			return true
		}
	}
	return false
}

// submit emits r.tris in order, flushing a DrawTriangles call whenever the
// vertex buffer would overflow uint16 indices.
func (r *Renderer) submit(screen *ebiten.Image) {
	white := ensureWhitePixel()
	r.verts = r.verts[:0]
	r.inds = r.inds[:0]

	flush := func() {
		if len(r.inds) == 0 {
			return
		}
		screen.DrawTriangles(r.verts, r.inds, white, &ebiten.DrawTrianglesOptions{})
		r.stats.batches++
		r.verts = r.verts[:0]
		r.inds = r.inds[:0]
	}

	for i := range r.tris {
		if len(r.verts) > maxBatchVertices {
			flush()
		}
		t := &r.tris[i]
		col := r.Tint.Scale(t.shade)
		base := uint16(len(r.verts))
		for k := 0; k < 3; k++ {
			r.verts = append(r.verts, ebiten.Vertex{
				DstX:   t.x[k],
				DstY:   t.y[k],
				SrcX:   0.5,
				SrcY:   0.5,
				ColorR: col.R,
				ColorG: col.G,
				ColorB: col.B,
				ColorA: col.A,
			})
		}
		r.inds = append(r.inds, base, base+1, base+2)
	}
	flush()
}

// --- White pixel singleton (no sync.Once, the frame loop is single-threaded) ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image used
// as the source texture for untextured triangles.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}
