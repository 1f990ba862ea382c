package material

import (
	"github.com/df07/go-mc-raytracer/pkg/core"
)

// Material interface for surfaces and media that can scatter or emit rays.
// Implementations are immutable and shared between render workers.
type Material interface {
	// Scatter returns the attenuation and the scattered ray, or false if the ray is absorbed
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool)

	// Emitted returns the light emitted at the surface coordinates (u, v) and point p
	Emitted(u, v float64, p core.Vec3) core.Vec3
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation
}

// NonEmissive provides the default black emission for materials that don't glow
type NonEmissive struct{}

// Emitted returns black
func (NonEmissive) Emitted(u, v float64, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Surface normal, always against the incoming ray
	T         float64   // Parameter t along the ray
	U, V      float64   // Surface coordinates for texture lookup
	FrontFace bool      // Whether ray hit the front face
	Material  Material  // Material of the hit object (shared, not owned)
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
