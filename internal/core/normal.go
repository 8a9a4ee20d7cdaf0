// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package core

import (
	"fmt"
	"math"

	"github.com/bitjungle/gorelia/pkg/types"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
	"gonum.org/v1/gonum/stat/distuv"
)

// StdNormal is the shared N(0,1) distribution used for all 1-D standard
// normal evaluations. It carries no random source since only CDF/Prob/
// Quantile are used here; sampling goes through the Marginal contract.
var StdNormal = distuv.Normal{Mu: 0, Sigma: 1}

// PhiPDF evaluates the standard normal density at x.
func PhiPDF(x float64) float64 {
	return StdNormal.Prob(x)
}

// PhiCDF evaluates the standard normal cumulative distribution at x.
func PhiCDF(x float64) float64 {
	return StdNormal.CDF(x)
}

// PhiICDF evaluates the standard normal quantile function. PhiICDF(0) is
// -Inf and PhiICDF(1) is +Inf, matching distuv.Normal.Quantile's behaviour
// at the domain boundary.
func PhiICDF(q float64) float64 {
	return StdNormal.Quantile(q)
}

// PhiPDFMulti evaluates the n-dimensional standard normal density with
// covariance corr (a symmetric positive-definite matrix with unit
// diagonal). Returns a *ShapeMismatch error when corr is not len(x) x len(x)
// or when trace(corr) != len(x).
func PhiPDFMulti(x []float64, corr mat.Symmetric) (float64, error) {
	n := len(x)
	if corr == nil {
		var p float64 = 1
		for _, xi := range x {
			p *= PhiPDF(xi)
		}
		return p, nil
	}
	r, _ := corr.Dims()
	if r != n {
		return 0, types.NewShapeMismatchError("phi_pdf: trace(corr) inconsistent with dim(x)", n, r)
	}
	if tr := mat.Trace(corr); math.Abs(tr-float64(n)) > 1e-9 {
		return 0, types.NewShapeMismatchError("phi_pdf: trace(corr) inconsistent with dim(x)", n, int(math.Round(tr)))
	}
	mu := make([]float64, n)
	normal, ok := distmv.NewNormal(mu, corr, nil)
	if !ok {
		return 0, types.NewInvalidParameterError("phi_pdf: correlation matrix is not positive definite", nil)
	}
	return normal.Prob(x), nil
}

// PfToBeta converts a probability of failure to a reliability index:
// beta = -Phi^-1(p).
func PfToBeta(p float64) float64 {
	return -PhiICDF(p)
}

// BetaToPf converts a reliability index to a probability of failure:
// p = Phi(-beta).
func BetaToPf(beta float64) float64 {
	return PhiCDF(-beta)
}

// NormalEquivalent computes the Rosenblatt normal-equivalent (mu_eq, sigma_eq)
// of marginal m at the point xi:
//
//	q = F(xi); z = Phi^-1(q); sigma_eq = phi(z)/f(xi); mu_eq = xi - z*sigma_eq
//
// sigma_eq is only well-defined when f(xi) > 0; a zero or negative density
// is reported as an *InvalidParameter error rather than silently dividing.
func NormalEquivalent(xi float64, m types.Marginal) (muEq, sigmaEq float64, err error) {
	fx := m.PDF(xi)
	if fx <= 0 {
		return 0, 0, types.NewInvalidParameterError(
			fmt.Sprintf("normal_equivalent: marginal %q has non-positive density at x=%g", m.Name(), xi),
			map[string]interface{}{"x": xi, "density": fx},
		)
	}
	q := m.CDF(xi)
	z := PhiICDF(q)
	sigmaEq = PhiPDF(z) / fx
	muEq = xi - z*sigmaEq
	return muEq, sigmaEq, nil
}
