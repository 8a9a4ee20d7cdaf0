// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

// Package benchmark maps the named limit-state functions referenced by
// model files (the engine's numerical benchmarks and any user-authored
// problem of the same shape) onto internal/core.LimitState values.
package benchmark

import (
	"fmt"

	"github.com/bitjungle/gorelia/internal/core"
	"github.com/bitjungle/gorelia/pkg/marginal"
	"github.com/bitjungle/gorelia/pkg/types"
)

// Linear builds g(x) = sum_i(coef_i * x_i) + offset from
// params["c0"], params["c1"], ... and params["offset"]. Missing
// coefficients default to 0, missing offset to 0. Its gradient is exact
// and constant, so HLRF converges in one iteration.
func Linear(dim int, params map[string]float64) *core.LimitState {
	coef := make([]float64, dim)
	for i := range coef {
		coef[i] = params[fmt.Sprintf("c%d", i)]
	}
	offset := params["offset"]

	g := func(x []float64) float64 {
		sum := offset
		for i, c := range coef {
			sum += c * x[i]
		}
		return sum
	}
	grad := func(x []float64) []float64 {
		out := make([]float64, dim)
		copy(out, coef)
		return out
	}
	return core.NewLimitState(g, grad)
}

// QuadraticDiff builds g(x) = x_0^2 - x_1, the nonlinear numerical
// benchmark.
func QuadraticDiff(dim int, params map[string]float64) *core.LimitState {
	g := func(x []float64) float64 {
		return x[0]*x[0] - x[1]
	}
	grad := func(x []float64) []float64 {
		out := make([]float64, dim)
		out[0] = 2 * x[0]
		out[1] = -1
		return out
	}
	return core.NewLimitState(g, grad)
}

// Builder constructs a LimitState for a model of the given dimension from
// a spec's parameters.
type Builder func(dim int, params map[string]float64) *core.LimitState

// Registry maps a LimitStateSpec.Name to its Builder.
var Registry = map[string]Builder{
	"linear":         Linear,
	"quadratic_diff": QuadraticDiff,
}

// Build resolves spec against Registry, using dim (the model's variable
// count) to size the generic builders.
func Build(spec types.LimitStateSpec, dim int) (*core.LimitState, error) {
	builder, ok := Registry[spec.Name]
	if !ok {
		return nil, types.NewInvalidParameterError("unknown limit_state name", map[string]interface{}{"name": spec.Name})
	}
	return builder(dim, spec.Params), nil
}

// BuildMarginal resolves a MarginalSpec into a types.Marginal using the
// pkg/marginal catalogue.
func BuildMarginal(spec types.MarginalSpec) (types.Marginal, error) {
	switch spec.Type {
	case "normal":
		return marginal.NewNormal(spec.Name, spec.Params["mean"], spec.Params["std"]), nil
	case "lognormal":
		return marginal.NewLognormal(spec.Name, spec.Params["mu_log"], spec.Params["sigma_log"]), nil
	case "uniform":
		return marginal.NewUniform(spec.Name, spec.Params["lo"], spec.Params["hi"]), nil
	case "gumbel":
		return marginal.NewGumbel(spec.Name, spec.Params["mu"], spec.Params["beta"]), nil
	default:
		return nil, types.NewInvalidParameterError("unknown marginal type", map[string]interface{}{"type": spec.Type})
	}
}
