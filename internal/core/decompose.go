// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package core

import (
	"math"

	"github.com/bitjungle/gorelia/pkg/types"
	"gonum.org/v1/gonum/mat"
)

// Spectral builds the Z-to-Y transform L such that Z = L*Y, via
// eigendecomposition of the correlation matrix corr: L = V * sqrt(diag(lambda)).
// Uses the same mat.EigenSym.Factorize/Values/VectorsTo sequence as a
// PCA confidence-ellipse eigendecomposition.
func Spectral(corr *mat.SymDense) (*mat.Dense, error) {
	n, _ := corr.Dims()

	var eig mat.EigenSym
	ok := eig.Factorize(corr, true)
	if !ok {
		return nil, types.NewInvalidParameterError("spectral: eigendecomposition failed to converge", nil)
	}

	values := eig.Values(nil)
	vectors := mat.NewDense(n, n, nil)
	eig.VectorsTo(vectors)

	for _, lambda := range values {
		if lambda <= 0 {
			return nil, types.NewInvalidParameterError("spectral: correlation matrix is not positive definite", map[string]interface{}{"eigenvalue": lambda})
		}
	}

	l := mat.NewDense(n, n, nil)
	for j := 0; j < n; j++ {
		col := ExtractColumn(vectors, j)
		sqrtLambda := math.Sqrt(values[j])
		for i := 0; i < n; i++ {
			l.Set(i, j, col[i]*sqrtLambda)
		}
	}
	return l, nil
}

// Cholesky builds the Z-to-Y transform L such that Z = L*Y, via the lower
// Cholesky factor of the correlation matrix corr.
//
// mat.Cholesky.Factorize is used only as a positive-definiteness check;
// its factor-extraction method could not be confirmed with confidence
// (gonum's mat.Cholesky exposes Factorize/Det/InverseTo/SolveCholeskyVec,
// but no directly confirmed L-extraction call on the modern type). The
// factor itself is computed directly with the Cholesky-Banachiewicz
// recursion, a textbook algorithm with no external-library counterpart
// worth wrapping here.
func Cholesky(corr *mat.SymDense) (*mat.Dense, error) {
	n, _ := corr.Dims()

	var chol mat.Cholesky
	if ok := chol.Factorize(corr); !ok {
		return nil, types.NewInvalidParameterError("cholesky: correlation matrix is not positive definite", nil)
	}

	l := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j <= i; j++ {
			sum := corr.At(i, j)
			for k := 0; k < j; k++ {
				sum -= l.At(i, k) * l.At(j, k)
			}
			if i == j {
				if sum <= 0 {
					return nil, types.NewInvalidParameterError("cholesky: correlation matrix is not positive definite", map[string]interface{}{"pivot": sum})
				}
				l.Set(i, j, math.Sqrt(sum))
			} else {
				l.Set(i, j, sum/l.At(j, j))
			}
		}
	}
	return l, nil
}

// Decompose dispatches to Spectral or Cholesky per kind.
func Decompose(corr *mat.SymDense, kind types.DecompositionKind) (*mat.Dense, error) {
	switch kind {
	case types.DecompositionSpectral:
		return Spectral(corr)
	case types.DecompositionCholesky:
		return Cholesky(corr)
	default:
		return nil, types.NewInvalidParameterError("unknown decomposition kind", map[string]interface{}{"kind": kind})
	}
}
