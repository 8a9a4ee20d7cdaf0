// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package marginal

import "golang.org/x/exp/rand"

// Uniform is a types.Marginal for X ~ Uniform(lo, hi). Implemented
// closed-form rather than via distuv.Uniform, whose field layout is not
// confirmed anywhere in the reference corpus.
type Uniform struct {
	name   string
	lo, hi float64
}

// NewUniform builds a Uniform marginal over [lo, hi], lo < hi.
func NewUniform(name string, lo, hi float64) *Uniform {
	return &Uniform{name: name, lo: lo, hi: hi}
}

func (u *Uniform) Name() string { return u.name }

func (u *Uniform) PDF(x float64) float64 {
	if x < u.lo || x > u.hi {
		return 0
	}
	return 1 / (u.hi - u.lo)
}

func (u *Uniform) CDF(x float64) float64 {
	switch {
	case x < u.lo:
		return 0
	case x > u.hi:
		return 1
	default:
		return (x - u.lo) / (u.hi - u.lo)
	}
}

func (u *Uniform) InvCDF(q float64) float64 {
	return u.lo + q*(u.hi-u.lo)
}

func (u *Uniform) Mean() float64 { return (u.lo + u.hi) / 2 }

func (u *Uniform) Variance() float64 {
	d := u.hi - u.lo
	return d * d / 12
}

// Sample draws n i.i.d. values, bit-reproducible for a given seed.
func (u *Uniform) Sample(count int, seed uint64) []float64 {
	src := rand.New(rand.NewSource(seed))
	out := make([]float64, count)
	for i := range out {
		out[i] = u.lo + src.Float64()*(u.hi-u.lo)
	}
	return out
}
