// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package marginal

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Lognormal is a types.Marginal for X = exp(Y), Y ~ N(muLog, sigmaLog).
// It is expressed in terms of the underlying Normal distuv distribution on
// ln(X) rather than distuv.LogNormal directly, since distuv.LogNormal's
// field layout is not confirmed anywhere in the reference corpus.
type Lognormal struct {
	name            string
	muLog, sigmaLog float64
	base            distuv.Normal
}

// NewLognormal builds a Lognormal marginal from the underlying normal's
// parameters (the mean and standard deviation of ln X), sigmaLog > 0.
func NewLognormal(name string, muLog, sigmaLog float64) *Lognormal {
	return &Lognormal{
		name:     name,
		muLog:    muLog,
		sigmaLog: sigmaLog,
		base:     distuv.Normal{Mu: muLog, Sigma: sigmaLog},
	}
}

func (l *Lognormal) Name() string { return l.name }

func (l *Lognormal) PDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return l.base.Prob(math.Log(x)) / x
}

func (l *Lognormal) CDF(x float64) float64 {
	if x <= 0 {
		return 0
	}
	return l.base.CDF(math.Log(x))
}

func (l *Lognormal) InvCDF(u float64) float64 {
	return math.Exp(l.base.Quantile(u))
}

func (l *Lognormal) Mean() float64 {
	return math.Exp(l.muLog + l.sigmaLog*l.sigmaLog/2)
}

func (l *Lognormal) Variance() float64 {
	s2 := l.sigmaLog * l.sigmaLog
	return (math.Exp(s2) - 1) * math.Exp(2*l.muLog+s2)
}

// Sample draws n i.i.d. values, bit-reproducible for a given seed.
func (l *Lognormal) Sample(count int, seed uint64) []float64 {
	d := l.base
	d.Src = rand.NewSource(seed)
	out := make([]float64, count)
	for i := range out {
		out[i] = math.Exp(d.Rand())
	}
	return out
}
