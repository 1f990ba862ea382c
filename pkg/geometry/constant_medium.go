package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-mc-raytracer/pkg/core"
	"github.com/df07/go-mc-raytracer/pkg/material"
)

// boundaryEpsilon separates the entry and exit searches through the boundary
const boundaryEpsilon = 0.0001

// ConstantMedium is a volume of uniform density filling a closed boundary.
// Rays passing through it scatter at an exponentially distributed distance.
type ConstantMedium struct {
	Boundary      Hittable
	Density       float64
	PhaseFunction material.Material
}

// NewConstantMedium creates a medium with an isotropic phase function of the given color
func NewConstantMedium(boundary Hittable, density float64, albedo core.Vec3) *ConstantMedium {
	return NewTexturedConstantMedium(boundary, density, material.NewSolidColor(albedo))
}

// NewTexturedConstantMedium creates a medium with an isotropic phase function using a texture
func NewTexturedConstantMedium(boundary Hittable, density float64, albedo material.Texture) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		Density:       density,
		PhaseFunction: material.NewTexturedIsotropic(albedo),
	}
}

// Hit finds where the ray crosses the boundary and samples a scattering event in between
func (m *ConstantMedium) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	entry, ok := m.Boundary.Hit(ray, math.Inf(-1), math.Inf(1), sampler)
	if !ok {
		return nil, false
	}
	exit, ok := m.Boundary.Hit(ray, entry.T+boundaryEpsilon, math.Inf(1), sampler)
	if !ok {
		return nil, false
	}

	t0 := math.Max(entry.T, tMin)
	t1 := math.Min(exit.T, tMax)
	if t0 >= t1 {
		return nil, false
	}
	if t0 < 0 {
		t0 = 0
	}

	rayLength := ray.Direction.Length()
	distanceInsideBoundary := (t1 - t0) * rayLength
	hitDistance := -math.Log(sampler.Get1D()) / m.Density
	if hitDistance > distanceInsideBoundary {
		return nil, false
	}

	t := t0 + hitDistance/rayLength
	return &material.HitRecord{
		T:         t,
		Point:     ray.At(t),
		Normal:    core.NewVec3(1, 0, 0), // arbitrary
		FrontFace: true,                  // also arbitrary
		Material:  m.PhaseFunction,
	}, true
}

// BoundingBox passes through to the boundary
func (m *ConstantMedium) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return m.Boundary.BoundingBox(time0, time1)
}

// Validate checks the density and phase function. The boundary only shapes the
// volume, so its own material is not required.
func (m *ConstantMedium) Validate() error {
	if m.Boundary == nil {
		return fmt.Errorf("constant medium: nil boundary: %w", ErrInvalidParameter)
	}
	owner := fmt.Sprintf("constant medium in %T", m.Boundary)
	if !(m.Density > 0) {
		return fmt.Errorf("%s: density %v: %w", owner, m.Density, ErrInvalidParameter)
	}
	return requireMaterial(owner, m.PhaseFunction)
}
