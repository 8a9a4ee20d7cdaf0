// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package core

import "github.com/bitjungle/gorelia/pkg/types"

// Sample is one drawn point across the three spaces, plus the importance
// weight assigned by the sampler that produced it (1 for unweighted
// samplers).
type Sample struct {
	Y      []float64
	X      []float64
	Weight float64
}

// Sampler draws n points in uncorrelated standard-normal space and maps
// them into physical space through joint.YtoX, sharing the Y->Z->X
// pipeline across all sampler implementations.
type Sampler interface {
	// Name identifies the sampler for diagnostics.
	Name() string
	// Draw generates n samples against joint using seed for reproducibility.
	Draw(joint *JointDistribution, n int, seed uint64) ([]Sample, error)
}

// drawAndMap maps a slice of Y-space rows through joint.YtoX, assigning
// weight to every resulting Sample. Shared by every Sampler implementation.
func drawAndMap(joint *JointDistribution, ys [][]float64, weight float64) ([]Sample, error) {
	out := make([]Sample, len(ys))
	for i, y := range ys {
		x, err := joint.YtoX(y)
		if err != nil {
			return nil, err
		}
		out[i] = Sample{Y: y, X: x, Weight: weight}
	}
	return out, nil
}

func requirePositiveCount(n int) error {
	if n <= 0 {
		return types.NewInvalidParameterError("sampler: sample count must be positive", map[string]interface{}{"n": n})
	}
	return nil
}
