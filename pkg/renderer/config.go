package renderer

import (
	"fmt"
	"runtime"
)

// Config contains rendering configuration
type Config struct {
	Width           int   // Image width in pixels
	Height          int   // Image height in pixels
	SamplesPerPixel int   // Total rays per pixel, split across workers
	MaxDepth        int   // Maximum ray bounce depth
	NumWorkers      int   // Number of parallel workers
	Seed            int64 // Worker i uses Seed+i
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:           400,
		Height:          225,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		NumWorkers:      runtime.NumCPU(),
		Seed:            42,
	}
}

// AspectRatio returns width / height
func (c Config) AspectRatio() float64 {
	return float64(c.Width) / float64(c.Height)
}

// Validate reports the first setting that cannot produce an image
func (c Config) Validate() error {
	switch {
	case c.Width < 2 || c.Height < 2:
		return fmt.Errorf("image size %dx%d, need at least 2x2: %w", c.Width, c.Height, ErrInvalidConfig)
	case c.SamplesPerPixel < 1:
		return fmt.Errorf("samples per pixel %d: %w", c.SamplesPerPixel, ErrInvalidConfig)
	case c.MaxDepth < 1:
		return fmt.Errorf("max depth %d: %w", c.MaxDepth, ErrInvalidConfig)
	case c.NumWorkers < 1:
		return fmt.Errorf("worker count %d: %w", c.NumWorkers, ErrInvalidConfig)
	}
	return nil
}

// SamplesPerWorker splits a per-pixel sample budget across workers, rounding up
func SamplesPerWorker(total, workers int) int {
	if workers < 1 {
		return total
	}
	return (total + workers - 1) / workers
}
