// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package benchmark

import (
	"github.com/bitjungle/gorelia/internal/core"
	"github.com/bitjungle/gorelia/pkg/types"
	"gonum.org/v1/gonum/mat"
)

// BuildProblem assembles a model file's marginals, physical-space
// correlation matrix and limit-state reference into a runnable
// core.JointDistribution and core.LimitState, ready for any of RunFOSM,
// RunFORM, RunMonteCarlo or RunImportance.
func BuildProblem(model *types.ModelFile, jointCfg types.JointConfig) (*core.JointDistribution, *core.LimitState, error) {
	n := len(model.Marginals)

	marginals := make([]types.Marginal, n)
	for i, spec := range model.Marginals {
		m, err := BuildMarginal(spec)
		if err != nil {
			return nil, nil, err
		}
		marginals[i] = m
	}

	corr, err := correlationToSymDense(model.Correlation, n)
	if err != nil {
		return nil, nil, err
	}

	joint, err := core.NewJointDistribution(marginals, corr, jointCfg)
	if err != nil {
		return nil, nil, err
	}

	ls, err := Build(model.LimitState, n)
	if err != nil {
		return nil, nil, err
	}

	return joint, ls, nil
}

// correlationToSymDense converts a model file's row-major correlation
// matrix into a gonum SymDense, rejecting a row/column count that
// disagrees with dim up front rather than letting mat.NewSymDense panic.
func correlationToSymDense(rows [][]float64, dim int) (*mat.SymDense, error) {
	if len(rows) != dim {
		return nil, types.NewShapeMismatchError("correlation matrix row count does not match marginal count", dim, len(rows))
	}
	data := make([]float64, dim*dim)
	for i, row := range rows {
		if len(row) != dim {
			return nil, types.NewShapeMismatchError("correlation matrix row has unexpected length", dim, len(row))
		}
		copy(data[i*dim:(i+1)*dim], row)
	}
	return mat.NewSymDense(dim, data), nil
}
