package geometry

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/df07/go-mc-raytracer/pkg/core"
	"github.com/df07/go-mc-raytracer/pkg/material"
)

// Translate moves a wrapped object by a fixed offset
type Translate struct {
	Object Hittable
	Offset core.Vec3
}

// NewTranslate creates a translated instance of object
func NewTranslate(object Hittable, offset core.Vec3) *Translate {
	return &Translate{Object: object, Offset: offset}
}

// Hit moves the ray into the object's frame, delegates and moves the hit back
func (t *Translate) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	moved := core.NewRay(ray.Origin.Subtract(t.Offset), ray.Direction, ray.Time)

	hit, ok := t.Object.Hit(moved, tMin, tMax, sampler)
	if !ok {
		return nil, false
	}

	hit.Point = hit.Point.Add(t.Offset)
	hit.SetFaceNormal(moved, outwardNormal(hit))

	return hit, true
}

// BoundingBox returns the wrapped box moved by the offset
func (t *Translate) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	box, ok := t.Object.BoundingBox(time0, time1)
	if !ok {
		return core.AABB{}, false
	}
	return box.Translate(t.Offset), true
}

// Validate checks the wrapped object
func (t *Translate) Validate() error {
	if err := Validate(t.Object); err != nil {
		return fmt.Errorf("translated by %v: %w", t.Offset, err)
	}
	return nil
}

// RotateY rotates a wrapped object about the Y axis
type RotateY struct {
	Object  Hittable
	Angle   float64 // degrees
	toWorld mgl64.Mat3
	toLocal mgl64.Mat3
	box     core.AABB
	hasBox  bool
}

// NewRotateY creates an instance of object rotated by angle degrees about the Y axis
func NewRotateY(object Hittable, angle float64) *RotateY {
	toWorld := mgl64.Rotate3DY(mgl64.DegToRad(angle))
	r := &RotateY{
		Object:  object,
		Angle:   angle,
		toWorld: toWorld,
		toLocal: toWorld.Transpose(),
	}

	// The rotated box is the extent of the eight rotated local corners
	if box, ok := object.BoundingBox(0, 1); ok {
		corners := box.Corners()
		rotated := make([]core.Vec3, len(corners))
		for i, c := range corners {
			rotated[i] = r.rotate(r.toWorld, c)
		}
		r.box = core.NewAABBFromPoints(rotated...)
		r.hasBox = true
	}

	return r
}

// Hit rotates the ray into the object's frame, delegates and rotates the hit back
func (r *RotateY) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	rotated := core.NewRay(
		r.rotate(r.toLocal, ray.Origin),
		r.rotate(r.toLocal, ray.Direction),
		ray.Time,
	)

	hit, ok := r.Object.Hit(rotated, tMin, tMax, sampler)
	if !ok {
		return nil, false
	}

	outward := r.rotate(r.toWorld, outwardNormal(hit))
	hit.Point = r.rotate(r.toWorld, hit.Point)
	hit.SetFaceNormal(ray, outward)

	return hit, true
}

// BoundingBox returns the precomputed world-space box
func (r *RotateY) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	return r.box, r.hasBox
}

// Validate checks the wrapped object
func (r *RotateY) Validate() error {
	if err := Validate(r.Object); err != nil {
		return fmt.Errorf("rotated by %v degrees: %w", r.Angle, err)
	}
	return nil
}

func (r *RotateY) rotate(m mgl64.Mat3, v core.Vec3) core.Vec3 {
	out := m.Mul3x1(mgl64.Vec3{v.X, v.Y, v.Z})
	return core.NewVec3(out[0], out[1], out[2])
}

// outwardNormal recovers the geometric normal from a hit record whose normal
// has already been flipped to face the ray
func outwardNormal(hit *material.HitRecord) core.Vec3 {
	if hit.FrontFace {
		return hit.Normal
	}
	return hit.Normal.Negate()
}
