package material

import (
	"math"

	"github.com/df07/go-mc-raytracer/pkg/core"
)

// turbulenceDepth is the number of noise octaves in the marble pattern
const turbulenceDepth = 7

// NoiseTexture is a marble-like pattern: a sine along Z distorted by turbulence
type NoiseTexture struct {
	Noise *Perlin
	Scale float64
}

// NewNoiseTexture creates a marble texture with its own noise tables
func NewNoiseTexture(scale float64, sampler core.Sampler) *NoiseTexture {
	return &NoiseTexture{Noise: NewPerlin(sampler), Scale: scale}
}

// Value returns a gray level in [0, 1]
func (n *NoiseTexture) Value(u, v float64, p core.Vec3) core.Vec3 {
	gray := 0.5 * (1 + math.Sin(n.Scale*p.Z+10*n.Noise.Turbulence(p, turbulenceDepth)))
	return core.NewVec3(1, 1, 1).Multiply(gray)
}
