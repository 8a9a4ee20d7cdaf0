// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package core

import (
	"math"
	"strconv"

	"github.com/bitjungle/gorelia/pkg/types"
	"gonum.org/v1/gonum/mat"
)

// MinVarianceThreshold flags a marginal as degenerate (effectively
// constant) when its variance falls below this value.
const MinVarianceThreshold = 1e-12

// ValidateMarginals checks the basic shape contract of a marginal
// collection: at least one entry, each with strictly positive variance.
func ValidateMarginals(marginals []types.Marginal) error {
	if len(marginals) == 0 {
		return types.NewInvalidParameterError("at least one marginal is required", nil)
	}
	for i, m := range marginals {
		if m == nil {
			return types.NewTypeContractError("marginal at index " + strconv.Itoa(i) + " is nil")
		}
		if m.Variance() < MinVarianceThreshold {
			return types.NewInvalidParameterError("marginal has near-zero or negative variance", map[string]interface{}{
				"index": i, "name": m.Name(), "variance": m.Variance(),
			})
		}
	}
	return nil
}

// ValidateCorrelationMatrix checks that corr is square with the given
// dimension, symmetric to numeric tolerance, and has a unit diagonal.
func ValidateCorrelationMatrix(corr *mat.SymDense, dim int) error {
	if corr == nil {
		return types.NewInvalidParameterError("correlation matrix is required", nil)
	}
	r, c := corr.Dims()
	if r != dim || c != dim {
		return types.NewShapeMismatchError("correlation matrix dimension does not match marginal count", dim, r)
	}
	for i := 0; i < dim; i++ {
		if math.Abs(corr.At(i, i)-1) > 1e-9 {
			return types.NewInvalidParameterError("correlation matrix diagonal must be 1", map[string]interface{}{
				"index": i, "value": corr.At(i, i),
			})
		}
		for j := i + 1; j < dim; j++ {
			if corr.At(i, j) <= -1 || corr.At(i, j) >= 1 {
				return types.NewInvalidParameterError("off-diagonal correlation must lie in (-1, 1)", map[string]interface{}{
					"i": i, "j": j, "value": corr.At(i, j),
				})
			}
		}
	}
	return nil
}
