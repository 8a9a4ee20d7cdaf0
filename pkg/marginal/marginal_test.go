// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package marginal

import (
	"math"
	"testing"

	"github.com/bitjungle/gorelia/pkg/types"
	"github.com/stretchr/testify/assert"
)

var roundTripTol = 1e-6

func TestMarginalRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		m    types.Marginal
		xs   []float64
	}{
		{"normal", NewNormal("X1", 10, 2), []float64{6, 8, 10, 12, 14}},
		{"lognormal", NewLognormal("X2", 0, 0.3), []float64{0.6, 0.9, 1, 1.2, 2.0}},
		{"uniform", NewUniform("X3", -1, 3), []float64{-0.9, 0, 1, 2, 2.9}},
		{"gumbel", NewGumbel("X4", 20, 4), []float64{10, 15, 20, 30, 45}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, x := range tt.xs {
				u := tt.m.CDF(x)
				assert.GreaterOrEqual(t, u, 0.0)
				assert.LessOrEqual(t, u, 1.0)
				xBack := tt.m.InvCDF(u)
				assert.InDelta(t, x, xBack, roundTripTol, "CDF(InvCDF(x)) should round-trip for %s at x=%v", tt.name, x)
			}
		})
	}
}

func TestMarginalMoments(t *testing.T) {
	n := NewNormal("X", 5, 3)
	assert.Equal(t, 5.0, n.Mean())
	assert.Equal(t, 9.0, n.Variance())

	u := NewUniform("X", 2, 8)
	assert.Equal(t, 5.0, u.Mean())
	assert.InDelta(t, 3.0, u.Variance(), 1e-9)
}

func TestMarginalSampleReproducible(t *testing.T) {
	for _, m := range []types.Marginal{
		NewNormal("X", 0, 1),
		NewLognormal("X", 0, 1),
		NewUniform("X", 0, 1),
		NewGumbel("X", 0, 1),
	} {
		a := m.Sample(200, 42)
		b := m.Sample(200, 42)
		assert.Equal(t, a, b, "sampling with the same seed must be bit-reproducible for %s", m.Name())
	}
}

func TestGumbelDensityIntegratesToOne(t *testing.T) {
	g := NewGumbel("X", 0, 1)
	// Crude trapezoid check over a wide truncated domain; not a precision test.
	const lo, hi, n = -20.0, 40.0, 200000
	h := (hi - lo) / n
	sum := 0.0
	for i := 0; i <= n; i++ {
		x := lo + float64(i)*h
		w := h
		if i == 0 || i == n {
			w = h / 2
		}
		sum += w * g.PDF(x)
	}
	assert.True(t, math.Abs(sum-1) < 1e-3, "gumbel density should integrate to ~1, got %v", sum)
}
