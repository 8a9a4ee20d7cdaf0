// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package core

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/bitjungle/gorelia/pkg/types"
)

// AntitheticSampler draws variance-reduced pairs: for each independent base
// draw y, the paired sample -y is appended immediately after it, so row
// 2k+1 = -row(2k) for every k. n must be even, per the paired-alignment
// contract; an odd n is reported as an *InvalidParameter error rather than
// silently dropping the unmatched row.
type AntitheticSampler struct{}

func (AntitheticSampler) Name() string { return "Antithetic" }

func (AntitheticSampler) Draw(joint *JointDistribution, n int, seed uint64) ([]Sample, error) {
	if err := requirePositiveCount(n); err != nil {
		return nil, err
	}
	if n%2 != 0 {
		return nil, types.NewInvalidParameterError("antithetic: sample count must be even to preserve pairing", map[string]interface{}{"n": n})
	}

	draw := distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewSource(seed)}
	dim := joint.Dim()
	ys := make([][]float64, n)
	for i := 0; i < n; i += 2 {
		y := make([]float64, dim)
		yNeg := make([]float64, dim)
		for k := range y {
			y[k] = draw.Rand()
			yNeg[k] = -y[k]
		}
		ys[i] = y
		ys[i+1] = yNeg
	}
	return drawAndMap(joint, ys, 1)
}
