package output

import (
	"bytes"
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"

	"github.com/df07/go-mc-raytracer/pkg/core"
	"github.com/df07/go-mc-raytracer/pkg/log"
)

var logger = log.New("output")

// ToImage quantizes a gamma-corrected buffer, row-major from the top, into
// an 8-bit image. Channels are clamped to [0, 0.999] and scaled by 256.
func ToImage(buffer []core.Vec3, width, height int) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 || len(buffer) != width*height {
		return nil, fmt.Errorf("%d pixels for a %dx%d image: %w", len(buffer), width, height, ErrBufferSize)
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := buffer[y*width+x]
			offset := img.PixOffset(x, y)
			img.Pix[offset] = quantize(c.X)
			img.Pix[offset+1] = quantize(c.Y)
			img.Pix[offset+2] = quantize(c.Z)
			img.Pix[offset+3] = 255
		}
	}

	return img, nil
}

func quantize(c float64) uint8 {
	if math.IsNaN(c) {
		return 0
	}
	return uint8(256 * max(0, min(0.999, c)))
}

// Resample scales an image to the given size with Lanczos filtering
func Resample(img image.Image, width, height int) image.Image {
	return resize.Resize(uint(width), uint(height), img, resize.Lanczos3)
}

// Scale resizes an image by factor, keeping at least one pixel per side
func Scale(img image.Image, factor float64) image.Image {
	if factor == 1 {
		return img
	}
	bounds := img.Bounds()
	width := max(1, int(math.Round(float64(bounds.Dx())*factor)))
	height := max(1, int(math.Round(float64(bounds.Dy())*factor)))
	return Resample(img, width, height)
}

// Save writes an image to path, picking the format from the extension
func Save(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	logger.Noticef("saved %s (%dx%d)", path, img.Bounds().Dx(), img.Bounds().Dy())
	return nil
}

// EncodePNG encodes an image as PNG in memory
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("failed to encode png: %w", err)
	}
	return buf.Bytes(), nil
}
