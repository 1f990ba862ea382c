package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-mc-raytracer/pkg/core"
)

func TestSphere_Hit(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -1), 0.5, &dummyMaterial{})

	tests := []struct {
		name       string
		ray        core.Ray
		tMin, tMax float64
		shouldHit  bool
		expectedT  float64
		frontFace  bool
	}{
		{
			name:      "direct hit from outside",
			ray:       core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 0),
			tMin:      0.001,
			tMax:      math.Inf(1),
			shouldHit: true,
			expectedT: 0.5,
			frontFace: true,
		},
		{
			name:      "miss",
			ray:       core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 0),
			tMin:      0.001,
			tMax:      math.Inf(1),
			shouldHit: false,
		},
		{
			name:      "from inside hits far side",
			ray:       core.NewRay(core.NewVec3(0, 0, -1), core.NewVec3(0, 0, -1), 0),
			tMin:      0.001,
			tMax:      math.Inf(1),
			shouldHit: true,
			expectedT: 0.5,
			frontFace: false,
		},
		{
			name:      "near root outside range uses far root",
			ray:       core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 0),
			tMin:      0.6,
			tMax:      math.Inf(1),
			shouldHit: true,
			expectedT: 1.5,
			frontFace: false,
		},
		{
			name:      "both roots beyond tMax",
			ray:       core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 0),
			tMin:      0.001,
			tMax:      0.4,
			shouldHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := sphere.Hit(tt.ray, tt.tMin, tt.tMax, nil)
			if isHit != tt.shouldHit {
				t.Fatalf("Expected hit=%v, got %v", tt.shouldHit, isHit)
			}
			if !isHit {
				return
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got %f", tt.expectedT, hit.T)
			}
			if hit.FrontFace != tt.frontFace {
				t.Errorf("Expected front face %v, got %v", tt.frontFace, hit.FrontFace)
			}
			if hit.Material != sphere.Material {
				t.Errorf("Expected sphere material on hit record")
			}
		})
	}
}

// For random rays the root lies on the surface and the normal is unit length,
// pointing away from the center on the outside and toward it on the inside.
func TestSphere_HitProperties(t *testing.T) {
	sampler := core.NewSeededSampler(7)

	for i := 0; i < 2000; i++ {
		center := core.RandomVec3(sampler, -5, 5)
		radius := core.RandomRange(sampler, 0.1, 3)
		sphere := NewSphere(center, radius, &dummyMaterial{})

		origin := core.RandomVec3(sampler, -10, 10)
		target := center.Add(core.RandomInUnitSphere(sampler).Multiply(radius))
		ray := core.NewRay(origin, target.Subtract(origin), 0)

		hit, isHit := sphere.Hit(ray, 0.001, math.Inf(1), nil)
		if !isHit {
			continue
		}

		distance := hit.Point.Subtract(center).Length()
		if math.Abs(distance-radius) > 1e-6*math.Max(1, radius) {
			t.Fatalf("Expected hit point on surface (r=%f), got distance %f", radius, distance)
		}
		if math.Abs(hit.Normal.Length()-1) > 1e-9 {
			t.Fatalf("Expected unit normal, got length %f", hit.Normal.Length())
		}

		away := hit.Normal.Dot(hit.Point.Subtract(center))
		if hit.FrontFace && away <= 0 {
			t.Fatalf("Expected front face normal to point away from center")
		}
		if !hit.FrontFace && away >= 0 {
			t.Fatalf("Expected back face normal to point toward center")
		}
	}
}

func TestSphereUV(t *testing.T) {
	tests := []struct {
		name string
		p    core.Vec3
		u, v float64
	}{
		{"+x", core.NewVec3(1, 0, 0), 0.50, 0.50},
		{"+y", core.NewVec3(0, 1, 0), 0.50, 1.00},
		{"+z", core.NewVec3(0, 0, 1), 0.25, 0.50},
		{"-x", core.NewVec3(-1, 0, 0), 0.00, 0.50},
		{"-y", core.NewVec3(0, -1, 0), 0.50, 0.00},
		{"-z", core.NewVec3(0, 0, -1), 0.75, 0.50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, v := SphereUV(tt.p)
			if math.Abs(u-tt.u) > 1e-9 || math.Abs(v-tt.v) > 1e-9 {
				t.Errorf("Expected (%f, %f), got (%f, %f)", tt.u, tt.v, u, v)
			}
		})
	}
}

func TestSphere_BoundingBox(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, 2, 3), 2, &dummyMaterial{})

	box, ok := sphere.BoundingBox(0, 1)
	if !ok {
		t.Fatal("Expected sphere to be bounded")
	}
	if box.Min != core.NewVec3(-1, 0, 1) || box.Max != core.NewVec3(3, 4, 5) {
		t.Errorf("Expected box (-1,0,1)-(3,4,5), got %v-%v", box.Min, box.Max)
	}

	// Negative radius spheres still get a proper box
	hollow := NewSphere(core.NewVec3(0, 0, 0), -1, &dummyMaterial{})
	box, _ = hollow.BoundingBox(0, 1)
	if box.Min != core.NewVec3(-1, -1, -1) || box.Max != core.NewVec3(1, 1, 1) {
		t.Errorf("Expected unit box for negative radius, got %v-%v", box.Min, box.Max)
	}
}

func TestSphere_Validate(t *testing.T) {
	if err := NewSphere(core.Vec3{}, 1, &dummyMaterial{}).Validate(); err != nil {
		t.Errorf("Expected valid sphere, got %v", err)
	}
	if err := NewSphere(core.Vec3{}, 1, nil).Validate(); !errors.Is(err, ErrMissingMaterial) {
		t.Errorf("Expected ErrMissingMaterial, got %v", err)
	}
	if err := NewSphere(core.Vec3{}, 0, &dummyMaterial{}).Validate(); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("Expected ErrInvalidParameter, got %v", err)
	}
	if err := NewSphere(core.Vec3{}, math.NaN(), &dummyMaterial{}).Validate(); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("Expected ErrInvalidParameter for NaN radius, got %v", err)
	}
	// A negative radius is a hollow sphere with inward normals
	if err := NewSphere(core.Vec3{}, -0.45, &dummyMaterial{}).Validate(); err != nil {
		t.Errorf("Expected hollow sphere to be valid, got %v", err)
	}
}

func TestMovingSphere(t *testing.T) {
	sphere := NewMovingSphere(core.NewVec3(0, 0, -1), core.NewVec3(2, 0, -1), 0, 1, 0.5, &dummyMaterial{})

	if c := sphere.Center(0.5); c != core.NewVec3(1, 0, -1) {
		t.Errorf("Expected center (1,0,-1) at t=0.5, got %v", c)
	}

	// At time 0 the sphere sits on the ray, at time 1 it has moved away
	ray0 := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 0)
	if _, isHit := sphere.Hit(ray0, 0.001, math.Inf(1), nil); !isHit {
		t.Error("Expected hit at time 0")
	}
	ray1 := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1), 1)
	if _, isHit := sphere.Hit(ray1, 0.001, math.Inf(1), nil); isHit {
		t.Error("Expected miss at time 1")
	}

	box, ok := sphere.BoundingBox(0, 1)
	if !ok {
		t.Fatal("Expected moving sphere to be bounded")
	}
	if box.Min != core.NewVec3(-0.5, -0.5, -1.5) || box.Max != core.NewVec3(2.5, 0.5, -0.5) {
		t.Errorf("Expected box to cover the whole motion, got %v-%v", box.Min, box.Max)
	}
}
