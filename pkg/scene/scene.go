package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-mc-raytracer/pkg/core"
	"github.com/df07/go-mc-raytracer/pkg/geometry"
	"github.com/df07/go-mc-raytracer/pkg/log"
	"github.com/df07/go-mc-raytracer/pkg/renderer"
)

var logger = log.New("scene")

// ErrUnknownScene is returned by Create for names that are not registered
var ErrUnknownScene = errors.New("unknown scene")

// Scene is a world ready to render: a BVH over all objects, the camera that
// looks at it and the color of rays that escape
type Scene struct {
	Name       string
	World      geometry.Hittable
	Camera     renderer.CameraConfig
	Background core.Vec3

	// Suggested render settings
	Width           int
	Height          int
	SamplesPerPixel int
	MaxDepth        int

	Stats geometry.BVHStats
}

// New builds the BVH over objects for the camera's shutter interval and
// validates every object. Scenes that fail here are never rendered.
func New(name string, objects []geometry.Hittable, camera renderer.CameraConfig, background core.Vec3, sampler core.Sampler) (*Scene, error) {
	bvh, err := geometry.NewBVH(objects, camera.Time0, camera.Time1, sampler)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", name, err)
	}
	if err := geometry.Validate(bvh); err != nil {
		return nil, fmt.Errorf("scene %s: %w", name, err)
	}

	stats := bvh.Stats()
	logger.Infof("scene %s: %d objects, %d BVH nodes, depth %d (avg %.1f)",
		name, len(objects), stats.TotalNodes, stats.MaxDepth, stats.AvgDepth)

	s := &Scene{
		Name:       name,
		World:      bvh,
		Camera:     camera,
		Background: background,
		Stats:      stats,
	}
	return s.withSettings(400, 100, 50), nil
}

// withSettings sets the suggested image size and sampling
func (s *Scene) withSettings(width, samples, depth int) *Scene {
	s.Width = width
	s.Height = width
	if s.Camera.AspectRatio > 0 {
		s.Height = max(2, int(float64(width)/s.Camera.AspectRatio))
	}
	s.SamplesPerPixel = samples
	s.MaxDepth = depth
	return s
}

// Config merges the scene's suggested settings into base. Zero fields of
// base take the scene's value.
func (s *Scene) Config(base renderer.Config) renderer.Config {
	if base.Width == 0 {
		base.Width = s.Width
	}
	if base.Height == 0 {
		base.Height = s.Height
	}
	if base.SamplesPerPixel == 0 {
		base.SamplesPerPixel = s.SamplesPerPixel
	}
	if base.MaxDepth == 0 {
		base.MaxDepth = s.MaxDepth
	}
	return base
}

// NewRaytracer creates a raytracer for the scene. The camera's aspect ratio
// follows the image size in config.
func (s *Scene) NewRaytracer(config renderer.Config) (*renderer.Raytracer, error) {
	camera := s.Camera
	if config.Width > 0 && config.Height > 0 {
		camera.AspectRatio = config.AspectRatio()
	}
	return renderer.NewRaytracer(s.World, renderer.NewCamera(camera), s.Background, config)
}
