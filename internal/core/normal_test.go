// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package core

import (
	"testing"

	"github.com/bitjungle/gorelia/pkg/marginal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhiRoundTrip(t *testing.T) {
	for _, q := range []float64{0.01, 0.1, 0.5, 0.9, 0.99} {
		z := PhiICDF(q)
		assert.InDelta(t, q, PhiCDF(z), 1e-9)
	}
}

func TestPfBetaRoundTrip(t *testing.T) {
	for _, beta := range []float64{0.5, 1.0, 2.33, 3.5} {
		pf := BetaToPf(beta)
		assert.InDelta(t, beta, PfToBeta(pf), 1e-6)
	}
}

func TestNormalEquivalentForGaussianMarginalIsIdentity(t *testing.T) {
	m := marginal.NewNormal("X", 10, 2)
	muEq, sigmaEq, err := NormalEquivalent(12, m)
	require.NoError(t, err)
	assert.InDelta(t, 10, muEq, 1e-9)
	assert.InDelta(t, 2, sigmaEq, 1e-9)
}

func TestNormalEquivalentRejectsZeroDensity(t *testing.T) {
	u := marginal.NewUniform("X", 0, 1)
	_, _, err := NormalEquivalent(5, u)
	require.Error(t, err)
}
