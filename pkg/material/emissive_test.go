package material

import (
	"testing"

	"github.com/df07/go-mc-raytracer/pkg/core"
)

func TestDiffuseLight_NeverScatters(t *testing.T) {
	light := NewDiffuseLight(core.NewVec3(4, 4, 4))
	sampler := core.NewSeededSampler(42)

	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1), 0)
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 0, 1), FrontFace: true}

	if _, scattered := light.Scatter(ray, hit, sampler); scattered {
		t.Error("Diffuse light should not scatter")
	}

	expected := core.NewVec3(4, 4, 4)
	if e := light.Emitted(0.3, 0.7, hit.Point); e != expected {
		t.Errorf("Expected emission %v, got %v", expected, e)
	}
}

func TestDiffuseLight_TexturedEmission(t *testing.T) {
	light := NewTexturedDiffuseLight(NewCheckerColors(core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1)))

	if e := light.Emitted(0, 0, core.NewVec3(0.1, 0.1, 0.1)); e != core.NewVec3(0, 0, 1) {
		t.Errorf("Expected even color, got %v", e)
	}
	if e := light.Emitted(0, 0, core.NewVec3(-0.1, 0.1, 0.1)); e != core.NewVec3(1, 0, 0) {
		t.Errorf("Expected odd color, got %v", e)
	}
}

func TestIsotropic_ScattersEverywhere(t *testing.T) {
	albedo := core.NewVec3(0.2, 0.4, 0.6)
	iso := NewIsotropic(albedo)
	sampler := core.NewSeededSampler(9)

	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1), 0.5)
	hit := HitRecord{Point: core.NewVec3(1, 2, 3), Normal: core.NewVec3(1, 0, 0), FrontFace: true}

	var forward, backward int
	for i := 0; i < 2000; i++ {
		result, scattered := iso.Scatter(ray, hit, sampler)
		if !scattered {
			t.Fatal("Isotropic should always scatter")
		}
		if result.Attenuation != albedo {
			t.Fatalf("Expected attenuation %v, got %v", albedo, result.Attenuation)
		}
		if result.Scattered.Origin != hit.Point || result.Scattered.Time != ray.Time {
			t.Fatalf("Scattered ray must start at the hit point at the same time, got %+v", result.Scattered)
		}
		if result.Scattered.Direction.Dot(hit.Normal) > 0 {
			forward++
		} else {
			backward++
		}
	}

	// Roughly half of uniform directions fall on each side of any plane
	if forward < 800 || backward < 800 {
		t.Errorf("Expected roughly uniform scattering, got %d forward and %d backward", forward, backward)
	}
}

func TestMix_ChoosesByRatio(t *testing.T) {
	red := NewLambertian(core.NewVec3(1, 0, 0))
	blue := NewLambertian(core.NewVec3(0, 0, 1))
	sampler := core.NewSeededSampler(4)

	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1), 0)
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 0, 1), FrontFace: true}

	for _, tt := range []struct {
		ratio    float64
		expected core.Vec3
	}{
		{0, core.NewVec3(1, 0, 0)},
		{1, core.NewVec3(0, 0, 1)},
		{-3, core.NewVec3(1, 0, 0)},
	} {
		mix := NewMix(red, blue, tt.ratio)
		for i := 0; i < 50; i++ {
			result, _ := mix.Scatter(ray, hit, sampler)
			if result.Attenuation != tt.expected {
				t.Fatalf("Ratio %f: expected %v, got %v", tt.ratio, tt.expected, result.Attenuation)
			}
		}
	}

	mix := NewMix(NewDiffuseLight(core.NewVec3(2, 2, 2)), red, 0.25)
	if e := mix.Emitted(0, 0, core.Vec3{}); e != core.NewVec3(1.5, 1.5, 1.5) {
		t.Errorf("Expected blended emission (1.5,1.5,1.5), got %v", e)
	}
}

func TestMix_SampleSelectsMaterial(t *testing.T) {
	red := NewLambertian(core.NewVec3(1, 0, 0))
	blue := NewLambertian(core.NewVec3(0, 0, 1))
	mix := NewMix(red, blue, 0.5)

	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1), 0)
	hit := HitRecord{Point: core.NewVec3(0, 0, 0), Normal: core.NewVec3(0, 0, 1), FrontFace: true}

	tests := []struct {
		choice   float64
		expected core.Vec3
	}{
		{0.2, core.NewVec3(0, 0, 1)},
		{0.7, core.NewVec3(1, 0, 0)},
	}

	for _, tt := range tests {
		// The remaining values feed the Lambertian bounce
		sampler := &sequenceSampler{values: []float64{tt.choice, 0.75, 0.5, 0.5}}
		result, scattered := mix.Scatter(ray, hit, sampler)
		if !scattered {
			t.Fatalf("Choice %f: expected scatter", tt.choice)
		}
		if result.Attenuation != tt.expected {
			t.Errorf("Choice %f: expected %v, got %v", tt.choice, tt.expected, result.Attenuation)
		}
	}
}
