// Package noise provides the smooth 2d noise used for city heights.
package noise

import (
	perlin "github.com/aquilax/go-perlin"
)

const (
	alpha   = 2.0
	beta    = 2.0
	octaves = 1
)

// Perlin samples single octave perlin noise remapped into [0,1].
// It holds only read only tables so may be shared between goroutines.
type Perlin struct {
	p *perlin.Perlin
}

// NewPerlin returns a sampler whose permutation table is built from seed.
func NewPerlin(seed int64) *Perlin {
	return &Perlin{p: perlin.NewPerlin(alpha, beta, octaves, seed)}
}

// Noise2D returns noise at x,y in [0,1]. Nearby points give nearby values.
func (n *Perlin) Noise2D(x, y float64) float64 {
	v := n.p.Noise2D(x, y)*0.5 + 0.5
	if v < 0 {
		return 0
	} else if v > 1 {
		return 1
	}
	return v
}
