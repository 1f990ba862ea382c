package loaders

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
	"golang.org/x/image/webp"

	"github.com/df07/go-mc-raytracer/pkg/log"
	"github.com/df07/go-mc-raytracer/pkg/material"
)

var logger = log.New("loaders")

// ImageOptions controls how texture images are loaded
type ImageOptions struct {
	MaxDimension int // Downscale so neither side exceeds this (0 = keep full size)
}

// ImageData is a decoded 8-bit RGB raster
type ImageData struct {
	Width  int
	Height int
	Pixels []uint8 // Row-major RGB triples, row 0 is the top of the image
}

// LoadImage decodes PNG, JPEG, GIF, BMP, TIFF or WebP images into an RGB raster
func LoadImage(filename string, opts ImageOptions) (*ImageData, error) {
	img, err := decodeImage(filename)
	if err != nil {
		return nil, err
	}

	bounds := img.Bounds()
	if opts.MaxDimension > 0 && (bounds.Dx() > opts.MaxDimension || bounds.Dy() > opts.MaxDimension) {
		limit := uint(opts.MaxDimension)
		img = resize.Thumbnail(limit, limit, img, resize.Lanczos3)
		logger.Infof("downscaled %s from %dx%d to %dx%d",
			filename, bounds.Dx(), bounds.Dy(), img.Bounds().Dx(), img.Bounds().Dy())
	}

	data := FromImage(img)
	logger.Debugf("loaded %s (%dx%d)", filename, data.Width, data.Height)
	return data, nil
}

// LoadTexture loads an image file straight into an image texture
func LoadTexture(filename string, opts ImageOptions) (*material.ImageTexture, error) {
	data, err := LoadImage(filename, opts)
	if err != nil {
		return nil, err
	}
	return data.Texture(), nil
}

// FromImage converts any image to an RGB raster, dropping alpha
func FromImage(img image.Image) *ImageData {
	nrgba := imaging.Clone(img)
	width, height := nrgba.Rect.Dx(), nrgba.Rect.Dy()
	pixels := make([]uint8, 0, width*height*3)

	for y := 0; y < height; y++ {
		row := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+width*4]
		for x := 0; x < width; x++ {
			pixels = append(pixels, row[x*4], row[x*4+1], row[x*4+2])
		}
	}

	return &ImageData{Width: width, Height: height, Pixels: pixels}
}

// Texture wraps the raster in an image texture
func (d *ImageData) Texture() *material.ImageTexture {
	return material.NewImageTexture(d.Width, d.Height, d.Pixels)
}

func decodeImage(filename string) (image.Image, error) {
	if strings.EqualFold(filepath.Ext(filename), ".webp") {
		file, err := os.Open(filename)
		if err != nil {
			return nil, fmt.Errorf("failed to open image file: %w", err)
		}
		defer file.Close()

		img, err := webp.Decode(file)
		if err != nil {
			return nil, fmt.Errorf("failed to decode webp image %s: %w", filename, err)
		}
		return img, nil
	}

	img, err := imaging.Open(filename, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to load image %s: %w", filename, err)
	}
	return img, nil
}
