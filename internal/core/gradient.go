// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package core

// DefaultGradientStep is the central-difference step size used when a
// limit-state function supplies no analytic gradient.
const DefaultGradientStep = 1e-6

// NumericalGradient computes the central-difference gradient of f at x.
// There is no suitable library in the reference corpus for finite-difference
// gradients over an arbitrary func([]float64) float64 (gonum's optimize
// package differentiates its own Problem type, not a bare callable).
func NumericalGradient(f func([]float64) float64, x []float64) []float64 {
	n := len(x)
	grad := make([]float64, n)
	xp := make([]float64, n)
	copy(xp, x)
	for i := 0; i < n; i++ {
		h := DefaultGradientStep * maxAbs(1, x[i])
		orig := xp[i]
		xp[i] = orig + h
		fPlus := f(xp)
		xp[i] = orig - h
		fMinus := f(xp)
		xp[i] = orig
		grad[i] = (fPlus - fMinus) / (2 * h)
	}
	return grad
}

func maxAbs(a, b float64) float64 {
	if b < 0 {
		b = -b
	}
	if a > b {
		return a
	}
	return b
}
