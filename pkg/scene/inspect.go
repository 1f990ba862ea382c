package scene

import (
	"fmt"
	"math"

	"github.com/df07/go-mc-raytracer/pkg/core"
	"github.com/df07/go-mc-raytracer/pkg/integrator"
	"github.com/df07/go-mc-raytracer/pkg/material"
	"github.com/df07/go-mc-raytracer/pkg/renderer"
)

// Inspection describes the first surface seen through a pixel
type Inspection struct {
	Hit          bool
	Point        core.Vec3
	Normal       core.Vec3
	Distance     float64
	FrontFace    bool
	U, V         float64
	MaterialType string
	Properties   map[string]string
}

// Inspect casts a single ray through the center of pixel (x, y) of a
// width x height image, x from the left and y from the top. The ray comes
// from a pinhole version of the scene camera and a fixed random stream, so
// repeated calls give the same answer.
func (s *Scene) Inspect(width, height, x, y int) (Inspection, error) {
	if width < 2 || height < 2 || x < 0 || x >= width || y < 0 || y >= height {
		return Inspection{}, fmt.Errorf("pixel (%d,%d) of a %dx%d image: %w", x, y, width, height, renderer.ErrInvalidConfig)
	}

	cfg := s.Camera
	cfg.AspectRatio = float64(width) / float64(height)
	cfg.Aperture = 0
	camera := renderer.NewCamera(cfg)

	sampler := core.NewSeededSampler(0)
	u := (float64(x) + 0.5) / float64(width-1)
	v := (float64(height-1-y) + 0.5) / float64(height-1)
	ray := camera.GetRay(u, v, sampler)

	hit, ok := s.World.Hit(ray, integrator.MinHitDistance, math.Inf(1), sampler)
	if !ok {
		return Inspection{}, nil
	}

	materialType, properties := describeMaterial(hit.Material, hit)
	return Inspection{
		Hit:          true,
		Point:        hit.Point,
		Normal:       hit.Normal,
		Distance:     hit.T * ray.Direction.Length(),
		FrontFace:    hit.FrontFace,
		U:            hit.U,
		V:            hit.V,
		MaterialType: materialType,
		Properties:   properties,
	}, nil
}

func formatColor(c core.Vec3) string {
	return fmt.Sprintf("(%.3g, %.3g, %.3g)", c.X, c.Y, c.Z)
}

// describeMaterial names the material and lists its parameters, evaluating
// textures at the hit
func describeMaterial(mat material.Material, hit *material.HitRecord) (string, map[string]string) {
	properties := make(map[string]string)

	switch m := mat.(type) {
	case *material.Lambertian:
		properties["albedo"] = describeTexture(m.Albedo)
		properties["color"] = formatColor(m.Albedo.Value(hit.U, hit.V, hit.Point))
		return "lambertian", properties

	case *material.Metal:
		properties["albedo"] = formatColor(m.Albedo)
		properties["fuzz"] = fmt.Sprintf("%.3g", m.Fuzzness)
		return "metal", properties

	case *material.Dielectric:
		properties["refractive index"] = fmt.Sprintf("%.3g", m.RefractiveIndex)
		return "dielectric", properties

	case *material.DiffuseLight:
		properties["emit"] = describeTexture(m.Emit)
		properties["emission"] = formatColor(m.Emitted(hit.U, hit.V, hit.Point))
		return "diffuse light", properties

	case *material.Isotropic:
		properties["albedo"] = describeTexture(m.Albedo)
		properties["color"] = formatColor(m.Albedo.Value(hit.U, hit.V, hit.Point))
		return "isotropic", properties

	case *material.Mix:
		type1, _ := describeMaterial(m.Material1, hit)
		type2, _ := describeMaterial(m.Material2, hit)
		properties["material1"] = type1
		properties["material2"] = type2
		properties["ratio"] = fmt.Sprintf("%.3g", m.Ratio)
		return "mix", properties

	case nil:
		return "none", properties

	default:
		return fmt.Sprintf("%T", mat), properties
	}
}

func describeTexture(t material.Texture) string {
	switch tex := t.(type) {
	case *material.SolidColor:
		return "solid " + formatColor(tex.Color)
	case *material.Checker:
		return fmt.Sprintf("checker of %s and %s", describeTexture(tex.Odd), describeTexture(tex.Even))
	case *material.NoiseTexture:
		return fmt.Sprintf("marble (scale %.3g)", tex.Scale)
	case *material.ImageTexture:
		return fmt.Sprintf("image %dx%d", tex.Width, tex.Height)
	default:
		return fmt.Sprintf("%T", t)
	}
}
