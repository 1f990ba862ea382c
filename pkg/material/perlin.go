package material

import (
	"math"

	"github.com/df07/go-mc-raytracer/pkg/core"
)

const perlinPointCount = 256

// Perlin generates smooth gradient noise from random lattice vectors and
// three permutation tables. Tables are filled once from the given stream and
// never change, so one Perlin can be shared by all workers.
type Perlin struct {
	ranvec [perlinPointCount]core.Vec3
	permX  [perlinPointCount]int
	permY  [perlinPointCount]int
	permZ  [perlinPointCount]int
}

// NewPerlin creates a noise generator whose lattice is drawn from sampler
func NewPerlin(sampler core.Sampler) *Perlin {
	p := &Perlin{}
	for i := range p.ranvec {
		p.ranvec[i] = core.RandomVec3(sampler, -1, 1).Normalize()
	}
	generatePermutation(&p.permX, sampler)
	generatePermutation(&p.permY, sampler)
	generatePermutation(&p.permZ, sampler)
	return p
}

// Noise returns the noise value at point p, in [-1, 1]
func (n *Perlin) Noise(p core.Vec3) float64 {
	u := p.X - math.Floor(p.X)
	v := p.Y - math.Floor(p.Y)
	w := p.Z - math.Floor(p.Z)

	i := int(math.Floor(p.X))
	j := int(math.Floor(p.Y))
	k := int(math.Floor(p.Z))

	var c [2][2][2]core.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				c[di][dj][dk] = n.ranvec[n.permX[(i+di)&255]^
					n.permY[(j+dj)&255]^
					n.permZ[(k+dk)&255]]
			}
		}
	}

	return trilinearInterp(&c, u, v, w)
}

// Turbulence sums depth octaves of noise at halving weight and doubling frequency
func (n *Perlin) Turbulence(p core.Vec3, depth int) float64 {
	accum := 0.0
	tempP := p
	weight := 1.0

	for i := 0; i < depth; i++ {
		accum += weight * n.Noise(tempP)
		weight *= 0.5
		tempP = tempP.Multiply(2)
	}

	return math.Abs(accum)
}

func generatePermutation(perm *[perlinPointCount]int, sampler core.Sampler) {
	for i := range perm {
		perm[i] = i
	}
	for i := len(perm) - 1; i > 0; i-- {
		target := core.RandomInt(sampler, 0, i+1)
		perm[i], perm[target] = perm[target], perm[i]
	}
}

func trilinearInterp(c *[2][2][2]core.Vec3, u, v, w float64) float64 {
	accum := 0.0
	for i := 0; i < 2; i++ {
		fi := float64(i)
		for j := 0; j < 2; j++ {
			fj := float64(j)
			for k := 0; k < 2; k++ {
				fk := float64(k)
				weight := core.NewVec3(u-fi, v-fj, w-fk)
				accum += (fi*u + (1-fi)*(1-u)) *
					(fj*v + (1-fj)*(1-v)) *
					(fk*w + (1-fk)*(1-w)) *
					c[i][j][k].Dot(weight)
			}
		}
	}
	return accum
}
