// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package marginal

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Gumbel is a types.Marginal wrapping gonum.org/v1/gonum/stat/distuv.Gumbel,
// the type I extreme-value distribution commonly used for annual maxima
// (wind, flood, load) in reliability models.
type Gumbel struct {
	name string
	dist distuv.Gumbel
}

// NewGumbel builds a Gumbel marginal from its location (mu) and scale (beta)
// parameters, beta > 0.
func NewGumbel(name string, mu, beta float64) *Gumbel {
	return &Gumbel{
		name: name,
		dist: distuv.Gumbel{Mu: mu, Beta: beta},
	}
}

func (g *Gumbel) Name() string { return g.name }

func (g *Gumbel) PDF(x float64) float64 {
	z := (x - g.dist.Mu) / g.dist.Beta
	return math.Exp(-(z + math.Exp(-z))) / g.dist.Beta
}

func (g *Gumbel) CDF(x float64) float64 {
	z := (x - g.dist.Mu) / g.dist.Beta
	return math.Exp(-math.Exp(-z))
}

func (g *Gumbel) InvCDF(u float64) float64 {
	return g.dist.Mu - g.dist.Beta*math.Log(-math.Log(u))
}

func (g *Gumbel) Mean() float64 {
	const eulerGamma = 0.5772156649015329
	return g.dist.Mu + g.dist.Beta*eulerGamma
}

func (g *Gumbel) Variance() float64 {
	return (math.Pi * math.Pi / 6) * g.dist.Beta * g.dist.Beta
}

// Sample draws n i.i.d. values, bit-reproducible for a given seed.
func (g *Gumbel) Sample(count int, seed uint64) []float64 {
	d := g.dist
	d.Src = rand.NewSource(seed)
	out := make([]float64, count)
	for i := range out {
		out[i] = d.Rand()
	}
	return out
}
