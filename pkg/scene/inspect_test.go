package scene

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-mc-raytracer/pkg/core"
	"github.com/df07/go-mc-raytracer/pkg/geometry"
	"github.com/df07/go-mc-raytracer/pkg/material"
	"github.com/df07/go-mc-raytracer/pkg/renderer"
)

func singleSphereScene(t *testing.T) *Scene {
	t.Helper()
	return sphereScene(t, material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5)))
}

func sphereScene(t *testing.T, mat material.Material) *Scene {
	t.Helper()
	camera := renderer.CameraConfig{
		LookFrom:      core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          90,
		AspectRatio:   1,
		FocusDistance: 1,
	}
	objects := []geometry.Hittable{
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, mat),
	}
	s, err := New("single", objects, camera, core.Vec3{}, core.NewSeededSampler(1))
	if err != nil {
		t.Fatalf("Failed to create scene: %v", err)
	}
	return s
}

func TestInspect_Sphere(t *testing.T) {
	s := singleSphereScene(t)

	result, err := s.Inspect(101, 101, 50, 50)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !result.Hit {
		t.Fatal("Expected the center pixel to hit the sphere")
	}
	if math.Abs(result.Distance-0.5) > 0.01 {
		t.Errorf("Expected distance ~0.5, got %f", result.Distance)
	}
	if !result.FrontFace || result.Normal.Z < 0.99 {
		t.Errorf("Expected a front face facing the camera, got normal %v front=%t", result.Normal, result.FrontFace)
	}
	if result.MaterialType != "lambertian" {
		t.Errorf("Expected lambertian, got %s", result.MaterialType)
	}
	if result.Properties["albedo"] != "solid (0.5, 0.5, 0.5)" {
		t.Errorf("Expected solid albedo, got %q", result.Properties["albedo"])
	}
}

func TestInspect_Mix(t *testing.T) {
	glazed := material.NewMix(
		material.NewLambertian(core.NewVec3(0.8, 0.15, 0.1)),
		material.NewMetal(core.NewVec3(0.95, 0.95, 0.95), 0.05),
		0.25,
	)
	s := sphereScene(t, glazed)

	result, err := s.Inspect(101, 101, 50, 50)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.MaterialType != "mix" {
		t.Fatalf("Expected mix, got %s", result.MaterialType)
	}

	expected := map[string]string{"material1": "lambertian", "material2": "metal", "ratio": "0.25"}
	for key, value := range expected {
		if result.Properties[key] != value {
			t.Errorf("Expected %s=%q, got %q", key, value, result.Properties[key])
		}
	}
}

func TestInspect_Miss(t *testing.T) {
	s := singleSphereScene(t)

	result, err := s.Inspect(101, 101, 0, 0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.Hit {
		t.Errorf("Expected the corner pixel to miss, got %+v", result)
	}
}

func TestInspect_CornellLight(t *testing.T) {
	s, err := Create("cornell", Options{})
	if err != nil {
		t.Fatalf("Failed to create scene: %v", err)
	}

	result, err := s.Inspect(100, 100, 50, 15)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if result.MaterialType != "diffuse light" {
		t.Fatalf("Expected the ceiling light, got %s", result.MaterialType)
	}
	if result.Properties["emission"] != "(15, 15, 15)" {
		t.Errorf("Expected emission (15, 15, 15), got %q", result.Properties["emission"])
	}
	if math.Abs(result.Point.Y-554) > 1e-6 {
		t.Errorf("Expected the hit on the light plane y=554, got %v", result.Point)
	}
}

func TestInspect_BadPixel(t *testing.T) {
	s := singleSphereScene(t)

	tests := []struct {
		name                string
		width, height, x, y int
	}{
		{"x outside", 10, 10, 10, 0},
		{"negative y", 10, 10, 0, -1},
		{"too small", 1, 1, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := s.Inspect(tt.width, tt.height, tt.x, tt.y); !errors.Is(err, renderer.ErrInvalidConfig) {
				t.Errorf("Expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestDescribeTexture(t *testing.T) {
	sampler := core.NewSeededSampler(1)
	tests := []struct {
		texture  material.Texture
		expected string
	}{
		{material.NewSolidColor(core.NewVec3(1, 0, 0)), "solid (1, 0, 0)"},
		{material.NewCheckerColors(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1)), "checker of solid (0, 0, 0) and solid (1, 1, 1)"},
		{material.NewNoiseTexture(4, sampler), "marble (scale 4)"},
		{material.NewImageTexture(8, 4, nil), "image 8x4"},
	}
	for _, tt := range tests {
		if got := describeTexture(tt.texture); got != tt.expected {
			t.Errorf("Expected %q, got %q", tt.expected, got)
		}
	}
}
