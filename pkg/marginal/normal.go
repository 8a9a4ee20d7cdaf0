// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package marginal

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Normal is a types.Marginal wrapping gonum.org/v1/gonum/stat/distuv.Normal.
type Normal struct {
	name string
	dist distuv.Normal
}

// NewNormal builds a Normal marginal with the given mean and standard
// deviation. name is used only for diagnostics and output labelling.
func NewNormal(name string, mean, stdDev float64) *Normal {
	return &Normal{
		name: name,
		dist: distuv.Normal{Mu: mean, Sigma: stdDev},
	}
}

func (n *Normal) Name() string             { return n.name }
func (n *Normal) PDF(x float64) float64    { return n.dist.Prob(x) }
func (n *Normal) CDF(x float64) float64    { return n.dist.CDF(x) }
func (n *Normal) InvCDF(u float64) float64 { return n.dist.Quantile(u) }
func (n *Normal) Mean() float64            { return n.dist.Mu }
func (n *Normal) Variance() float64        { return n.dist.Sigma * n.dist.Sigma }

// Sample draws n i.i.d. values from a rand.Source seeded from seed, making
// the draw bit-reproducible for a given seed.
func (n *Normal) Sample(count int, seed uint64) []float64 {
	d := n.dist
	d.Src = rand.NewSource(seed)
	out := make([]float64, count)
	for i := range out {
		out[i] = d.Rand()
	}
	return out
}
