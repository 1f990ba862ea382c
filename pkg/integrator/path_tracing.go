package integrator

import (
	"fmt"
	"math"

	"github.com/df07/go-mc-raytracer/pkg/core"
	"github.com/df07/go-mc-raytracer/pkg/geometry"
	"github.com/df07/go-mc-raytracer/pkg/material"
)

// PathTracingIntegrator implements unidirectional path tracing with a fixed
// background and a hard bounce limit
type PathTracingIntegrator struct {
	Background core.Vec3
	MaxDepth   int
	Iterative  bool // use the loop form instead of recursion
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(background core.Vec3, maxDepth int) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		Background: background,
		MaxDepth:   maxDepth,
	}
}

// RayColor computes the color for a single ray
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Hittable, sampler core.Sampler) core.Vec3 {
	if pt.Iterative {
		return RayColorIterative(ray, world, pt.Background, pt.MaxDepth, sampler)
	}
	return RayColor(ray, world, pt.Background, pt.MaxDepth, sampler)
}

// RayColor returns emitted + attenuation * RayColor(scattered) at each hit,
// the background on a miss and black once depth runs out
func RayColor(ray core.Ray, world geometry.Hittable, background core.Vec3, depth int, sampler core.Sampler) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, isHit := world.Hit(ray, MinHitDistance, math.Inf(1), sampler)
	if !isHit {
		return background
	}
	mustHaveMaterial(hit)

	emitted := hit.Material.Emitted(hit.U, hit.V, hit.Point)

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		return emitted
	}

	incoming := RayColor(scatter.Scattered, world, background, depth-1, sampler)
	return emitted.Add(scatter.Attenuation.MultiplyVec(incoming))
}

// RayColorIterative computes the same estimate as RayColor with a loop that
// carries the path throughput forward. Given the same random stream it draws
// the same samples in the same order.
func RayColorIterative(ray core.Ray, world geometry.Hittable, background core.Vec3, depth int, sampler core.Sampler) core.Vec3 {
	color := core.Vec3{}
	throughput := core.NewVec3(1, 1, 1)

	for ; depth > 0; depth-- {
		hit, isHit := world.Hit(ray, MinHitDistance, math.Inf(1), sampler)
		if !isHit {
			return color.Add(throughput.MultiplyVec(background))
		}
		mustHaveMaterial(hit)

		emitted := hit.Material.Emitted(hit.U, hit.V, hit.Point)
		color = color.Add(throughput.MultiplyVec(emitted))

		scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
		if !didScatter {
			return color
		}

		throughput = throughput.MultiplyVec(scatter.Attenuation)
		ray = scatter.Scattered
	}

	return color
}

func mustHaveMaterial(hit *material.HitRecord) {
	if hit.Material == nil {
		panic(&InvariantError{
			Stage:  "ray integration",
			Detail: fmt.Sprintf("hit at %v (t=%g) has no material", hit.Point, hit.T),
		})
	}
}
