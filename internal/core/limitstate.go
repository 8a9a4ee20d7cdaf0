// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package core

import "github.com/bitjungle/gorelia/pkg/types"

// LimitStateFunc is a scalar limit-state function g(x); failure is g(x) <= 0.
type LimitStateFunc func(x []float64) float64

// GradientFunc is an analytic gradient of a LimitStateFunc, dg/dx.
type GradientFunc func(x []float64) []float64

// LimitState wraps a (possibly system/tuple) limit-state function with an
// optional analytic gradient, falling back to NumericalGradient when none
// is supplied.
//
// Concurrency: a LimitState's Eval and Grad are single-threaded.
// NTasks > 1 fails fast with ErrNotImplemented rather than silently
// serializing the requested parallel evaluation.
type LimitState struct {
	Components []LimitStateFunc
	Gradients  []GradientFunc // parallel to Components; nil entries use NumericalGradient
	NTasks     int
}

// NewLimitState builds a single-component LimitState from g, with an
// optional analytic gradient (nil falls back to NumericalGradient).
func NewLimitState(g LimitStateFunc, grad GradientFunc) *LimitState {
	return &LimitState{
		Components: []LimitStateFunc{g},
		Gradients:  []GradientFunc{grad},
		NTasks:     1,
	}
}

// Validate checks the NTasks contract.
func (ls *LimitState) Validate() error {
	if ls.NTasks > 1 {
		return types.NewNotImplementedError("limit_state: n_tasks > 1 is not implemented; parallel component evaluation is not supported")
	}
	if len(ls.Components) == 0 {
		return types.NewInvalidParameterError("limit_state: at least one component is required", nil)
	}
	if len(ls.Gradients) != len(ls.Components) {
		return types.NewShapeMismatchError("limit_state: gradients slice must be parallel to components", len(ls.Components), len(ls.Gradients))
	}
	return nil
}

// NumComponents returns the number of limit-state components (1 for a
// scalar limit state, >1 for a system).
func (ls *LimitState) NumComponents() int { return len(ls.Components) }

// Eval evaluates component k at x.
func (ls *LimitState) Eval(k int, x []float64) float64 {
	return ls.Components[k](x)
}

// Grad evaluates the gradient of component k at x, analytic if supplied,
// otherwise via NumericalGradient.
func (ls *LimitState) Grad(k int, x []float64) []float64 {
	if ls.Gradients[k] != nil {
		return ls.Gradients[k](x)
	}
	return NumericalGradient(ls.Components[k], x)
}

// EvalAll evaluates every component at x, in system limit-state order.
func (ls *LimitState) EvalAll(x []float64) []float64 {
	out := make([]float64, len(ls.Components))
	for k := range ls.Components {
		out[k] = ls.Eval(k, x)
	}
	return out
}
