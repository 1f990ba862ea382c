package geometry

import (
	"github.com/df07/go-mc-raytracer/pkg/core"
	"github.com/df07/go-mc-raytracer/pkg/material"
)

// Hittable interface for anything a ray can strike
type Hittable interface {
	// Hit returns the closest intersection with t in [tMin, tMax].
	// sampler is the calling worker's stream; only volumes consume it.
	Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool)

	// BoundingBox returns a box covering the object over [time0, time1],
	// or false if the object is unbounded
	BoundingBox(time0, time1 float64) (core.AABB, bool)
}

// HitList is a flat collection of hittables tested one after another
type HitList struct {
	Objects []Hittable
}

// NewHitList creates a new list from the given objects
func NewHitList(objects ...Hittable) *HitList {
	return &HitList{Objects: objects}
}

// Add appends an object to the list
func (l *HitList) Add(object Hittable) {
	l.Objects = append(l.Objects, object)
}

// Len returns the number of objects in the list
func (l *HitList) Len() int {
	return len(l.Objects)
}

// Hit tests every object, shrinking tMax to the closest hit so far
func (l *HitList) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	var closest *material.HitRecord
	closestSoFar := tMax

	for _, object := range l.Objects {
		if hit, ok := object.Hit(ray, tMin, closestSoFar, sampler); ok {
			closestSoFar = hit.T
			closest = hit
		}
	}

	return closest, closest != nil
}

// BoundingBox returns the union of all members' boxes. An empty list, or a
// list holding any unbounded or nil member, has no box.
func (l *HitList) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	if len(l.Objects) == 0 {
		return core.AABB{}, false
	}

	var result core.AABB
	for i, object := range l.Objects {
		if object == nil {
			return core.AABB{}, false
		}
		box, ok := object.BoundingBox(time0, time1)
		if !ok {
			return core.AABB{}, false
		}
		if i == 0 {
			result = box
		} else {
			result = core.SurroundingBox(result, box)
		}
	}

	return result, true
}

// Validate checks every member of the list
func (l *HitList) Validate() error {
	for _, object := range l.Objects {
		if err := Validate(object); err != nil {
			return err
		}
	}
	return nil
}
