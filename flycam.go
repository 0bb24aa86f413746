package flycam

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float32
}

// ColorWhite is opaque white. As a Renderer.Tint it leaves face shading
// uncolored.
var ColorWhite = Color{1, 1, 1, 1}

// IsZero reports whether c is fully transparent black.
func (c Color) IsZero() bool {
	return c == Color{}
}

// Scale multiplies the RGB components by k, leaving alpha alone.
func (c Color) Scale(k float32) Color {
	return Color{c.R * k, c.G * k, c.B * k, c.A}
}

// toRGBA converts c to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
