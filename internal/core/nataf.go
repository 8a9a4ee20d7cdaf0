// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package core

import (
	"math"

	"github.com/bitjungle/gorelia/pkg/types"
	"gonum.org/v1/gonum/integrate"
)

// natafGridHalfWidth and natafGridPoints define the truncated integration
// domain (+/- natafGridHalfWidth standard deviations) and the number of
// abscissas per axis. The point count is odd, as gonum's composite-Simpson
// implementation takes the direct (non-remainder) path only for odd-length
// input.
const (
	natafGridHalfWidth = 8.0
	natafGridPoints    = 161
)

func natafGrid() []float64 {
	grid := make([]float64, natafGridPoints)
	step := 2 * natafGridHalfWidth / float64(natafGridPoints-1)
	for i := range grid {
		grid[i] = -natafGridHalfWidth + float64(i)*step
	}
	return grid
}

// bivariateNormalPDF evaluates the standard bivariate normal density with
// correlation rho at (zi, zj).
func bivariateNormalPDF(zi, zj, rho float64) float64 {
	denom := 1 - rho*rho
	coeff := 1 / (2 * math.Pi * math.Sqrt(denom))
	exponent := -(zi*zi - 2*rho*zi*zj + zj*zj) / (2 * denom)
	return coeff * math.Exp(exponent)
}

// natafIntegral evaluates the Nataf integral equation's left-hand side:
//
//	E[(X_i-mu_i)(X_j-mu_j)] = Int Int (F_i^-1(Phi(zi))-mu_i)(F_j^-1(Phi(zj))-mu_j) phi2(zi,zj;rho) dzi dzj
//
// via nested gonum.org/v1/gonum/integrate.Simpsons over a truncated grid,
// standing in for a 2-D adaptive quadrature external collaborator.
func natafIntegral(mi, mj types.Marginal, rho float64) float64 {
	grid := natafGrid()
	muI, muJ := mi.Mean(), mj.Mean()

	xi := make([]float64, len(grid))
	for k, z := range grid {
		xi[k] = mi.InvCDF(PhiCDF(z)) - muI
	}
	xj := make([]float64, len(grid))
	for k, z := range grid {
		xj[k] = mj.InvCDF(PhiCDF(z)) - muJ
	}

	// Integrate over zj for each zi, then integrate the resulting profile over zi.
	outer := make([]float64, len(grid))
	inner := make([]float64, len(grid))
	for a, zi := range grid {
		for b, zj := range grid {
			inner[b] = xj[b] * bivariateNormalPDF(zi, zj, rho)
		}
		outer[a] = xi[a] * integrate.Simpsons(grid, inner)
	}
	return integrate.Simpsons(grid, outer)
}

// SolveNataf finds the Z-space correlation rho_z such that the Nataf
// integral equation matches the target physical-space correlation
// rhoX*sigma_i*sigma_j, via secant iteration with rho_z0 = rhoX as the
// initial guess. The result is clamped to [-1+eps, 1-eps], not [0,1],
// which would discard valid negative correlations.
func SolveNataf(mi, mj types.Marginal, rhoX float64, cfg types.JointConfig) (float64, error) {
	if rhoX == 0 {
		return 0, nil
	}

	clamp := func(rho float64) float64 {
		eps := cfg.NatafClampEps
		if rho > 1-eps {
			return 1 - eps
		}
		if rho < -1+eps {
			return -1 + eps
		}
		return rho
	}

	target := rhoX * math.Sqrt(mi.Variance()) * math.Sqrt(mj.Variance())
	residual := func(rho float64) float64 {
		return natafIntegral(mi, mj, rho) - target
	}

	rho0 := clamp(rhoX)
	rho1 := clamp(rhoX * 1.05)
	if rho1 == rho0 {
		rho1 = clamp(rhoX - 0.05*sign(rhoX))
	}
	f0 := residual(rho0)

	for iter := 0; iter < cfg.NatafMaxIter; iter++ {
		f1 := residual(rho1)
		if math.Abs(f1) < cfg.NatafTol {
			return rho1, nil
		}
		if f1 == f0 {
			break
		}
		rhoNext := clamp(rho1 - f1*(rho1-rho0)/(f1-f0))
		rho0, f0 = rho1, f1
		rho1 = rhoNext
	}

	if math.Abs(residual(rho1)) > cfg.NatafTol*10 {
		return rho1, types.NewNonConvergenceError("nataf: correlation solve did not converge", cfg.NatafMaxIter)
	}
	return rho1, nil
}

func sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}
