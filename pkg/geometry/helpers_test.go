package geometry

import (
	"math"

	"github.com/df07/go-mc-raytracer/pkg/core"
	"github.com/df07/go-mc-raytracer/pkg/material"
)

// dummyMaterial absorbs everything. The id keeps distinct instances at distinct addresses.
type dummyMaterial struct {
	material.NonEmissive
	id int
}

func (d *dummyMaterial) Scatter(rayIn core.Ray, hit material.HitRecord, sampler core.Sampler) (material.ScatterResult, bool) {
	return material.ScatterResult{}, false
}

// unbounded is a hittable with no bounding box
type unbounded struct{}

func (unbounded) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	return nil, false
}

func (unbounded) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.AABB{}, false
}

func vecNear(a, b core.Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}
