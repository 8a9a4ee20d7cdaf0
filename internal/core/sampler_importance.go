// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package core

import (
	"github.com/bitjungle/gorelia/pkg/types"
)

// ImportanceSampler draws raw samples from Base and re-centers each one on a
// design point: a raw physical-space draw x_original is shifted to
// x = (x_original - mean) + x_design, concentrating the sample cloud around
// the design point found by RunFORM rather than around the mean. Each
// shifted sample is weighted by the true joint density ratio
// w = f(x)/h(x_original), so that an unbiased estimator of Pr[g(X) <= 0] can
// still be recovered from the relatively rare failure region.
type ImportanceSampler struct {
	// Center is the design point in Y-space, typically DesignPoints[0].Y
	// from RunFORM.
	Center []float64
	// Base draws the raw, uncentered samples; defaults to RandomSampler{}.
	Base Sampler
}

func (s ImportanceSampler) Name() string { return "Importance" }

func (s ImportanceSampler) Draw(joint *JointDistribution, n int, seed uint64) ([]Sample, error) {
	if err := requirePositiveCount(n); err != nil {
		return nil, err
	}
	dim := joint.Dim()
	if len(s.Center) != dim {
		return nil, types.NewShapeMismatchError("importance: center length does not match joint dimension", dim, len(s.Center))
	}

	xDesign, err := joint.YtoX(s.Center)
	if err != nil {
		return nil, err
	}

	base := s.Base
	if base == nil {
		base = RandomSampler{}
	}
	raw, err := base.Draw(joint, n, seed)
	if err != nil {
		return nil, err
	}

	mean := make([]float64, dim)
	for i, m := range joint.Marginals() {
		mean[i] = m.Mean()
	}

	samples := make([]Sample, n)
	for i, r := range raw {
		xOriginal := r.X
		xShifted := make([]float64, dim)
		for k := range xShifted {
			xShifted[k] = (xOriginal[k] - mean[k]) + xDesign[k]
		}

		fShifted, err := joint.JointPDF(xShifted)
		if err != nil {
			return nil, err
		}
		hOriginal, err := joint.JointPDF(xOriginal)
		if err != nil {
			return nil, err
		}
		weight := 0.0
		if hOriginal > 0 {
			weight = fShifted / hOriginal
		}

		yShifted, err := joint.XtoY(xShifted)
		if err != nil {
			return nil, err
		}
		samples[i] = Sample{Y: yShifted, X: xShifted, Weight: weight}
	}
	return samples, nil
}
