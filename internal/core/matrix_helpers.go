// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package core

import (
	"gonum.org/v1/gonum/mat"
)

// ExtractColumn extracts a column from a matrix as a slice, used by
// Spectral to pull eigenvector columns out of mat.EigenSym's result.
func ExtractColumn(m *mat.Dense, col int) []float64 {
	r, _ := m.Dims()
	result := make([]float64, r)
	for i := 0; i < r; i++ {
		result[i] = m.At(i, col)
	}
	return result
}
