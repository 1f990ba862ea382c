package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-mc-raytracer/pkg/core"
)

func pinholeConfig() CameraConfig {
	return CameraConfig{
		LookFrom:      core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          90,
		AspectRatio:   2,
		Aperture:      0,
		FocusDistance: 1,
	}
}

func TestCamera_GetRay_Pinhole(t *testing.T) {
	camera := NewCamera(pinholeConfig())
	sampler := core.NewSeededSampler(1)

	tests := []struct {
		name      string
		s, t      float64
		direction core.Vec3
	}{
		{"center", 0.5, 0.5, core.NewVec3(0, 0, -1)},
		{"bottom left", 0, 0, core.NewVec3(-2, -1, -1)},
		{"top right", 1, 1, core.NewVec3(2, 1, -1)},
		{"top center", 0.5, 1, core.NewVec3(0, 1, -1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := camera.GetRay(tt.s, tt.t, sampler)
			if ray.Origin != (core.Vec3{}) {
				t.Errorf("Expected pinhole origin at camera center, got %v", ray.Origin)
			}
			if !vecNear(ray.Direction, tt.direction, 1e-9) {
				t.Errorf("Expected direction %v, got %v", tt.direction, ray.Direction)
			}
		})
	}
}

func TestCamera_Basis(t *testing.T) {
	config := pinholeConfig()
	config.LookFrom = core.NewVec3(13, 2, 3)
	config.LookAt = core.NewVec3(0, 0, 0)
	camera := NewCamera(config)

	u, v, w := camera.Basis()
	for name, vec := range map[string]core.Vec3{"u": u, "v": v, "w": w} {
		if math.Abs(vec.Length()-1) > 1e-9 {
			t.Errorf("Expected %s to be unit length, got %f", name, vec.Length())
		}
	}
	if math.Abs(u.Dot(v)) > 1e-9 || math.Abs(v.Dot(w)) > 1e-9 || math.Abs(u.Dot(w)) > 1e-9 {
		t.Errorf("Expected orthogonal basis, got u=%v v=%v w=%v", u, v, w)
	}

	forward := config.LookAt.Subtract(config.LookFrom).Normalize()
	if !vecNear(w.Negate(), forward, 1e-9) {
		t.Errorf("Expected -w to point at the target, got %v", w.Negate())
	}
}

func TestCamera_DepthOfFieldAndShutter(t *testing.T) {
	config := pinholeConfig()
	config.Aperture = 0.5
	config.FocusDistance = 4
	config.Time0, config.Time1 = 0.25, 0.75
	camera := NewCamera(config)
	sampler := core.NewSeededSampler(3)

	focusPoint := core.NewVec3(0, 0, -4)
	for i := 0; i < 1000; i++ {
		ray := camera.GetRay(0.5, 0.5, sampler)

		if ray.Origin.Length() > 0.25+1e-12 {
			t.Fatalf("Expected origin within lens radius 0.25, got %v", ray.Origin)
		}
		if ray.Origin.Z != 0 {
			t.Fatalf("Expected origin on the lens plane, got %v", ray.Origin)
		}
		if ray.Time < 0.25 || ray.Time >= 0.75 {
			t.Fatalf("Expected time in [0.25, 0.75), got %f", ray.Time)
		}

		// Every ray through the image center passes through the in-focus point
		if !vecNear(ray.At(1), focusPoint, 1e-9) {
			t.Fatalf("Expected ray to reach %v at t=1, got %v", focusPoint, ray.At(1))
		}
	}
}

func vecNear(a, b core.Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}
