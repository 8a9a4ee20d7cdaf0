// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package core

import (
	"math"

	"github.com/bitjungle/gorelia/pkg/types"
)

// meritValue evaluates the Zhang-Kiureghian merit function
// m(y) = 0.5*||y||^2 + c*|g(y)| at y, given a pre-evaluated g(y).
func meritValue(y []float64, g, c float64) float64 {
	return 0.5*dot(y, y) + c*math.Abs(g)
}

// meritAt evaluates the merit function at y, mapping through X to obtain g.
func (s *hlrfState) meritAt(y []float64, c float64) (float64, error) {
	x, err := s.joint.YtoX(y)
	if err != nil {
		return 0, err
	}
	g := s.ls.Eval(s.component, x)
	return meritValue(y, g, c), nil
}

// meritGradient is the central-difference gradient of the merit function at
// y. The Armijo line search bounds descent by this gradient's norm rather
// than an analytic directional derivative, since the merit function is
// non-smooth at g(y) = 0.
func (s *hlrfState) meritGradient(y []float64, c float64) ([]float64, error) {
	n := len(y)
	grad := make([]float64, n)
	yp := make([]float64, n)
	copy(yp, y)
	const h = DefaultGradientStep
	for i := 0; i < n; i++ {
		orig := yp[i]
		yp[i] = orig + h
		mPlus, err := s.meritAt(yp, c)
		if err != nil {
			return nil, err
		}
		yp[i] = orig - h
		mMinus, err := s.meritAt(yp, c)
		if err != nil {
			return nil, err
		}
		yp[i] = orig
		grad[i] = (mPlus - mMinus) / (2 * h)
	}
	return grad, nil
}

// SearchIHLRF runs the improved HLRF design-point search: each HLRF step
// direction is followed by an Armijo backtracking line search on the
// Zhang-Kiureghian merit function, guarding against step overshoot on
// strongly nonlinear limit-state surfaces. The search starts from the
// all-ones vector in Y-space when y0 is nil (HLRF starts from the origin
// instead), and tol2 is rescaled once by |g0| at that initial iterate. The
// Armijo inner loop is hard-capped at cfg.MaxArmijoIter
// (types.DefaultMaxArmijoIter by default), guarding against an unbounded
// inner loop on a pathological merit surface.
func SearchIHLRF(joint *JointDistribution, ls *LimitState, component int, y0 []float64, cfg types.OptimizerConfig) (types.DesignPoint, error) {
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
	} else {
		for i := range y {
			y[i] = 1
		}
	}

	state := &hlrfState{joint: joint, component: component, ls: ls}

	_, g0, _, err := state.evalAtY(y)
	if err != nil {
		return types.DesignPoint{}, err
	}
	tol2 := cfg.Tol2 * math.Abs(g0)

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

		gNorm := norm(gradY)
		if gNorm == 0 {
			return types.DesignPoint{}, types.NewNonConvergenceError("ihlrf: zero gradient encountered", iter)
		}

		e1 := 1 - math.Abs(dot(gradY, y)/(gNorm*math.Max(norm(y), 1e-12)))
		e2 := math.Abs(g)
		if iter > 0 && e1 < cfg.Tol1 && e2 < tol2 {
			converged = true
			break
		}

		coeff := (dot(gradY, y) - g) / (gNorm * gNorm)
		hlrfNext := make([]float64, n)
		for i := range hlrfNext {
			hlrfNext[i] = coeff * gradY[i]
		}
		d := make([]float64, n)
		for i := range d {
			d[i] = hlrfNext[i] - y[i]
		}

		// c_k is recomputed fresh every iteration, never carried forward as
		// a running maximum: v0 bounds the HLRF step alone, v1 additionally
		// accounts for how far the step would move g away from zero.
		v0 := norm(y) / gNorm
		var c float64
		if e2 >= tol2 {
			yPlusD := make([]float64, n)
			for i := range yPlusD {
				yPlusD[i] = y[i] + d[i]
			}
			v1 := 0.5 * dot(yPlusD, yPlusD) / math.Abs(g)
			c = cfg.Gamma * math.Max(v0, v1)
		} else {
			c = cfg.Gamma * v0
		}

		m0 := meritValue(y, g, c)
		gm, err := state.meritGradient(y, c)
		if err != nil {
			return types.DesignPoint{}, err
		}
		gmNorm := norm(gm)

		step := 1.0
		yNext := make([]float64, n)
		for ai := 0; ai < cfg.MaxArmijoIter; ai++ {
			for i := range yNext {
				yNext[i] = y[i] + step*d[i]
			}
			xNext, err := joint.YtoX(yNext)
			if err != nil {
				return types.DesignPoint{}, err
			}
			gNext := ls.Eval(component, xNext)
			mNext := meritValue(yNext, gNext, c)
			if mNext <= m0-cfg.A*step*gmNorm {
				break
			}
			step *= cfg.B
		}

		stepLen := 0.0
		for i := range yNext {
			diff := yNext[i] - y[i]
			stepLen += diff * diff
		}
		y = yNext
		if math.Sqrt(stepLen) < cfg.Tol {
			x, _, gradY, err := state.evalAtY(y)
			if err != nil {
				return types.DesignPoint{}, err
			}
			lastX, lastGradY = x, gradY
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
