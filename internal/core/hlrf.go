// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package core

import (
	"math"

	"github.com/bitjungle/gorelia/pkg/types"
	"gonum.org/v1/gonum/mat"
)

// gradientY computes dg/dy at physical-space point x with component
// gradient gradX, via the chain rule dg/dy = L^T * diag(sigma_eq) * dg/dx,
// where L is joint's Z-to-Y transform and sigma_eq the per-point normal
// equivalents from JacobianXZ.
func gradientY(joint *JointDistribution, x []float64, gradX []float64) ([]float64, error) {
	n := len(x)
	jZX, _, err := JacobianXZ(x, joint.Marginals())
	if err != nil {
		return nil, err
	}

	scaled := make([]float64, n)
	for i := range scaled {
		scaled[i] = jZX.At(i, i) * gradX[i]
	}

	scaledVec := mat.NewVecDense(n, scaled)
	gY := mat.NewVecDense(n, nil)
	gY.MulVec(joint.l.T(), scaledVec)

	out := make([]float64, n)
	for i := range out {
		out[i] = gY.AtVec(i)
	}
	return out, nil
}

func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

func norm(a []float64) float64 {
	return math.Sqrt(dot(a, a))
}

// hlrfState is one component's working state through a design-point search,
// shared by HLRF and iHLRF.
type hlrfState struct {
	joint     *JointDistribution
	component int
	ls        *LimitState
}

// evalAtY evaluates g and its Y-space gradient at y, mapping through X.
func (s *hlrfState) evalAtY(y []float64) (x []float64, g float64, gradY []float64, err error) {
	x, err = s.joint.YtoX(y)
	if err != nil {
		return nil, 0, nil, err
	}
	g = s.ls.Eval(s.component, x)
	gradX := s.ls.Grad(s.component, x)
	gradY, err = gradientY(s.joint, x, gradX)
	return x, g, gradY, err
}

// SearchHLRF runs the classical Hasofer-Lind-Rackwitz-Fiessler fixed-point
// iteration for component k of limit state ls, starting from y0 (the
// origin of Y-space if nil).
func SearchHLRF(joint *JointDistribution, ls *LimitState, component int, y0 []float64, cfg types.OptimizerConfig) (types.DesignPoint, error) {
	if err := cfg.Validate(); err != nil {
		return types.DesignPoint{}, err
	}
	if err := ls.Validate(); err != nil {
		return types.DesignPoint{}, err
	}

	n := joint.Dim()
	y := make([]float64, n)
	if y0 != nil {
		copy(y, y0)
	}

	state := &hlrfState{joint: joint, component: component, ls: ls}

	var lastX []float64
	var lastGradY []float64
	converged := false
	iter := 0
	for ; iter < cfg.MaxIter; iter++ {
		x, g, gradY, err := state.evalAtY(y)
		if err != nil {
			return types.DesignPoint{}, err
		}
		lastX, lastGradY = x, gradY

		gNorm2 := dot(gradY, gradY)
		if gNorm2 == 0 {
			return types.DesignPoint{}, types.NewNonConvergenceError("hlrf: zero gradient encountered", iter)
		}

		e1 := 1 - math.Abs(dot(gradY, y)/(norm(gradY)*math.Max(norm(y), 1e-12)))
		e2 := math.Abs(g)
		if iter > 0 && e1 < cfg.Tol1 && e2 < cfg.Tol2 {
			converged = true
			break
		}

		coeff := (dot(gradY, y) - g) / gNorm2
		yNext := make([]float64, n)
		for i := range yNext {
			yNext[i] = coeff * gradY[i]
		}

		step := 0.0
		for i := range yNext {
			d := yNext[i] - y[i]
			step += d * d
		}
		y = yNext
		if math.Sqrt(step) < cfg.Tol {
			x, g, gradY, err = state.evalAtY(y)
			if err != nil {
				return types.DesignPoint{}, err
			}
			lastX, lastGradY = x, gradY
			_ = g
			converged = true
			iter++
			break
		}
	}

	beta := norm(y)
	alpha := make([]float64, n)
	gNorm := norm(lastGradY)
	if gNorm > 0 {
		for i := range alpha {
			alpha[i] = lastGradY[i] / gNorm
		}
	}

	diag := "converged"
	if !converged {
		diag = "max_iter_reached"
	}

	return types.DesignPoint{
		Y:          y,
		X:          lastX,
		Beta:       beta,
		Alpha:      alpha,
		Iterations: iter,
		Converged:  converged,
		Diagnostic: diag,
	}, nil
}
