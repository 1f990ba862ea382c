package integrator

import (
	"fmt"

	"github.com/df07/go-mc-raytracer/pkg/core"
	"github.com/df07/go-mc-raytracer/pkg/geometry"
)

// MinHitDistance keeps scattered rays from re-hitting the surface they leave
const MinHitDistance = 0.001

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor estimates the radiance arriving along ray
	RayColor(ray core.Ray, world geometry.Hittable, sampler core.Sampler) core.Vec3
}

// InvariantError is the panic value raised when the scene breaks a rendering
// invariant that construction-time validation should have caught
type InvariantError struct {
	Stage  string
	Detail string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant violated during %s: %s", e.Stage, e.Detail)
}
