package geometry

import (
	"fmt"

	"github.com/df07/go-mc-raytracer/pkg/core"
	"github.com/df07/go-mc-raytracer/pkg/material"
)

// Box is an axis-aligned box made of six rectangles
type Box struct {
	Min, Max core.Vec3
	Sides    *HitList
}

// NewBox creates a box spanning the two corner points
func NewBox(p0, p1 core.Vec3, mat material.Material) *Box {
	min := p0.Min(p1)
	max := p0.Max(p1)

	sides := NewHitList(
		NewXYRect(min.X, max.X, min.Y, max.Y, max.Z, mat),
		NewXYRect(min.X, max.X, min.Y, max.Y, min.Z, mat),
		NewXZRect(min.X, max.X, min.Z, max.Z, max.Y, mat),
		NewXZRect(min.X, max.X, min.Z, max.Z, min.Y, mat),
		NewYZRect(min.Y, max.Y, min.Z, max.Z, max.X, mat),
		NewYZRect(min.Y, max.Y, min.Z, max.Z, min.X, mat),
	)

	return &Box{Min: min, Max: max, Sides: sides}
}

// Hit returns the closest hit among the six sides
func (b *Box) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	return b.Sides.Hit(ray, tMin, tMax, sampler)
}

// BoundingBox returns the box corners directly
func (b *Box) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return core.NewAABB(b.Min, b.Max), true
}

// Validate checks every side
func (b *Box) Validate() error {
	if err := b.Sides.Validate(); err != nil {
		return fmt.Errorf("box %v-%v: %w", b.Min, b.Max, err)
	}
	return nil
}
