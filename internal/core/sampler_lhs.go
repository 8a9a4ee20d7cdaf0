// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package core

import (
	"golang.org/x/exp/rand"
)

// LHSMode selects how a Latin Hypercube point is placed within its stratum.
type LHSMode string

const (
	// LHSRandom places the point uniformly at random within its stratum.
	LHSRandom LHSMode = "random"
	// LHSCenter places the point at the stratum midpoint.
	LHSCenter LHSMode = "center"
)

// LHSSampler draws a Latin Hypercube design: each dimension is partitioned
// into n equal-probability strata and independently permuted across the n
// samples, guaranteeing each stratum of each dimension is visited exactly
// once (the stratification invariant).
type LHSSampler struct {
	Mode LHSMode
}

func (s LHSSampler) Name() string { return "LHS" }

func (s LHSSampler) Draw(joint *JointDistribution, n int, seed uint64) ([]Sample, error) {
	if err := requirePositiveCount(n); err != nil {
		return nil, err
	}
	dim := joint.Dim()
	src := rand.New(rand.NewSource(seed))

	ys := make([][]float64, n)
	for i := range ys {
		ys[i] = make([]float64, dim)
	}

	width := 1.0 / float64(n)
	for k := 0; k < dim; k++ {
		perm := src.Perm(n)
		for i := 0; i < n; i++ {
			stratum := perm[i]
			var u float64
			switch s.Mode {
			case LHSCenter:
				u = (float64(stratum) + 0.5) * width
			default:
				u = (float64(stratum) + src.Float64()) * width
			}
			ys[i][k] = PhiICDF(u)
		}
	}

	return drawAndMap(joint, ys, 1)
}
