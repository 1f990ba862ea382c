package material

import (
	"math"

	"github.com/df07/go-mc-raytracer/pkg/core"
)

// Mix represents a material that probabilistically chooses between two materials
type Mix struct {
	Material1 Material
	Material2 Material
	Ratio     float64 // 0.0 = all material1, 1.0 = all material2
}

// NewMix creates a new mix material
func NewMix(material1, material2 Material, ratio float64) *Mix {
	// Clamp ratio to valid range
	ratio = math.Max(0.0, math.Min(ratio, 1.0))

	return &Mix{
		Material1: material1,
		Material2: material2,
		Ratio:     ratio,
	}
}

// Scatter implements the Material interface for mix material
func (m *Mix) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterResult, bool) {
	// Choose material based on ratio
	if sampler.Get1D() < m.Ratio {
		return m.Material2.Scatter(rayIn, hit, sampler)
	}
	return m.Material1.Scatter(rayIn, hit, sampler)
}

// Emitted blends the emission of both materials by the mix ratio
func (m *Mix) Emitted(u, v float64, p core.Vec3) core.Vec3 {
	e1 := m.Material1.Emitted(u, v, p)
	e2 := m.Material2.Emitted(u, v, p)
	return e1.Multiply(1.0 - m.Ratio).Add(e2.Multiply(m.Ratio))
}
