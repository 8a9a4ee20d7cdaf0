// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package core

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// RandomSampler draws crude Monte Carlo samples: each Y component an
// independent N(0,1) draw.
type RandomSampler struct{}

func (RandomSampler) Name() string { return "Random" }

func (RandomSampler) Draw(joint *JointDistribution, n int, seed uint64) ([]Sample, error) {
	if err := requirePositiveCount(n); err != nil {
		return nil, err
	}
	draw := distuv.Normal{Mu: 0, Sigma: 1, Src: rand.NewSource(seed)}
	dim := joint.Dim()
	ys := make([][]float64, n)
	for i := range ys {
		y := make([]float64, dim)
		for k := range y {
			y[k] = draw.Rand()
		}
		ys[i] = y
	}
	return drawAndMap(joint, ys, 1)
}
