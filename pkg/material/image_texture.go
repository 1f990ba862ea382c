package material

import (
	"github.com/df07/go-mc-raytracer/pkg/core"
)

// colorScale converts 8-bit channels to [0, 1]
const colorScale = 1.0 / 255.0

// ImageTexture provides color from a decoded 8-bit RGB raster
type ImageTexture struct {
	Width  int
	Height int
	Pixels []uint8 // Row-major RGB triples, row 0 is the top of the image
}

// NewImageTexture creates a new image texture
func NewImageTexture(width, height int, pixels []uint8) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// Value samples the texture at given UV coordinates using nearest-neighbor filtering
func (t *ImageTexture) Value(u, v float64, p core.Vec3) core.Vec3 {
	// Solid cyan flags missing texture data
	if t.Width <= 0 || t.Height <= 0 || len(t.Pixels) < t.Width*t.Height*3 {
		return core.NewVec3(0, 1, 1)
	}

	// Clamp input texture coordinates to [0,1] x [1,0]
	u = max(0, min(1, u))
	v = 1.0 - max(0, min(1, v)) // Flip V to image coordinates

	x := min(int(u*float64(t.Width)), t.Width-1)
	y := min(int(v*float64(t.Height)), t.Height-1)

	offset := (y*t.Width + x) * 3
	return core.NewVec3(
		colorScale*float64(t.Pixels[offset]),
		colorScale*float64(t.Pixels[offset+1]),
		colorScale*float64(t.Pixels[offset+2]),
	)
}
