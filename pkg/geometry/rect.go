package geometry

import (
	"fmt"

	"github.com/df07/go-mc-raytracer/pkg/core"
	"github.com/df07/go-mc-raytracer/pkg/material"
)

// rectPadding is how far a rectangle's box extends along its missing axis.
// A zero-thickness box would never pass the slab test.
const rectPadding = 0.0001

// Plane identifies which axis an axis-aligned rectangle is perpendicular to
type Plane int

const (
	PlaneXY Plane = iota // perpendicular to Z
	PlaneXZ              // perpendicular to Y
	PlaneYZ              // perpendicular to X
)

// axes returns the two in-plane axes and the fixed axis
func (p Plane) axes() (a, b, k int) {
	switch p {
	case PlaneXY:
		return 0, 1, 2
	case PlaneXZ:
		return 0, 2, 1
	default:
		return 1, 2, 0
	}
}

func (p Plane) String() string {
	switch p {
	case PlaneXY:
		return "xy"
	case PlaneXZ:
		return "xz"
	case PlaneYZ:
		return "yz"
	default:
		return fmt.Sprintf("plane(%d)", int(p))
	}
}

// Rect is an axis-aligned rectangle spanning [A0, A1] x [B0, B1] on its two
// in-plane axes at coordinate K on the fixed axis
type Rect struct {
	Plane    Plane
	A0, A1   float64
	B0, B1   float64
	K        float64
	Material material.Material
}

// NewXYRect creates a rectangle in the plane z = k
func NewXYRect(x0, x1, y0, y1, k float64, material material.Material) *Rect {
	return &Rect{Plane: PlaneXY, A0: x0, A1: x1, B0: y0, B1: y1, K: k, Material: material}
}

// NewXZRect creates a rectangle in the plane y = k
func NewXZRect(x0, x1, z0, z1, k float64, material material.Material) *Rect {
	return &Rect{Plane: PlaneXZ, A0: x0, A1: x1, B0: z0, B1: z1, K: k, Material: material}
}

// NewYZRect creates a rectangle in the plane x = k
func NewYZRect(y0, y1, z0, z1, k float64, material material.Material) *Rect {
	return &Rect{Plane: PlaneYZ, A0: y0, A1: y1, B0: z0, B1: z1, K: k, Material: material}
}

// Normal returns the rectangle's outward normal, the positive fixed axis
func (r *Rect) Normal() core.Vec3 {
	switch r.Plane {
	case PlaneXY:
		return core.NewVec3(0, 0, 1)
	case PlaneXZ:
		return core.NewVec3(0, 1, 0)
	default:
		return core.NewVec3(1, 0, 0)
	}
}

// Hit tests if a ray crosses the rectangle within [tMin, tMax]
func (r *Rect) Hit(ray core.Ray, tMin, tMax float64, sampler core.Sampler) (*material.HitRecord, bool) {
	a, b, k := r.Plane.axes()

	// Rays parallel to the plane never cross it
	dk := ray.Direction.Component(k)
	if dk == 0 {
		return nil, false
	}

	t := (r.K - ray.Origin.Component(k)) / dk
	if t < tMin || t > tMax {
		return nil, false
	}

	pa := ray.Origin.Component(a) + t*ray.Direction.Component(a)
	pb := ray.Origin.Component(b) + t*ray.Direction.Component(b)
	if pa < r.A0 || pa > r.A1 || pb < r.B0 || pb > r.B1 {
		return nil, false
	}

	hitRecord := &material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		U:        (pa - r.A0) / (r.A1 - r.A0),
		V:        (pb - r.B0) / (r.B1 - r.B0),
		Material: r.Material,
	}
	hitRecord.SetFaceNormal(ray, r.Normal())

	return hitRecord, true
}

// BoundingBox returns the rectangle extruded by a small padding along its fixed axis
func (r *Rect) BoundingBox(time0, time1 float64) (core.AABB, bool) {
	var min, max [3]float64
	a, b, k := r.Plane.axes()
	min[a], max[a] = r.A0, r.A1
	min[b], max[b] = r.B0, r.B1
	min[k], max[k] = r.K-rectPadding, r.K+rectPadding

	return core.NewAABB(
		core.NewVec3(min[0], min[1], min[2]),
		core.NewVec3(max[0], max[1], max[2]),
	), true
}

// Validate checks the extent and material
func (r *Rect) Validate() error {
	owner := fmt.Sprintf("%s rect at k=%v", r.Plane, r.K)
	if !(r.A1 > r.A0) || !(r.B1 > r.B0) {
		return fmt.Errorf("%s: empty extent [%v,%v]x[%v,%v]: %w", owner, r.A0, r.A1, r.B0, r.B1, ErrInvalidParameter)
	}
	return requireMaterial(owner, r.Material)
}
