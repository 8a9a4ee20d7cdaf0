// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package core

import (
	"github.com/bitjungle/gorelia/pkg/types"
	"gonum.org/v1/gonum/mat"
)

// RunFOSM performs a first-order second-moment analysis: the HLRF/iHLRF
// design-point search in cfg.Kind is run once against an identity-
// correlation joint distribution built from joint's marginals, ignoring
// whatever physical-space correlation joint actually carries (once per
// component for a system limit state, with beta taken from the governing
// minimum-beta component). Points are mapped from Y to X through each
// marginal's inverse CDF, with gradients scaled by the per-point normal
// equivalents, so the Jacobian is J_xy = diag(sigma) only when every
// marginal is normal; a non-normal marginal is not replaced by a normal
// of the same mean and standard deviation. FOSM and FORM
// share the same design-point search machinery; they differ only in
// whether the underlying joint distribution carries the true correlation
// structure or not.
func RunFOSM(joint *JointDistribution, ls *LimitState, y0 []float64, cfg types.OptimizerConfig) (types.AnalysisResult, error) {
	if err := cfg.Validate(); err != nil {
		return types.AnalysisResult{}, err
	}
	if err := ls.Validate(); err != nil {
		return types.AnalysisResult{}, err
	}

	n := joint.Dim()
	identity := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		identity.SetSym(i, i, 1)
	}
	independent, err := NewJointDistribution(joint.Marginals(), identity, types.JointConfig{
		Mode:          types.CorrelationApprox,
		Decomposition: joint.cfg.Decomposition,
	})
	if err != nil {
		return types.AnalysisResult{}, err
	}

	search := SearchIHLRF
	if cfg.Kind == types.OptimizerHLRF {
		search = SearchHLRF
	}

	points := make([]types.DesignPoint, ls.NumComponents())
	governing := 0
	for k := 0; k < ls.NumComponents(); k++ {
		dp, err := search(independent, ls, k, y0, cfg)
		if err != nil {
			return types.AnalysisResult{}, err
		}
		points[k] = dp
		if dp.Beta < points[governing].Beta {
			governing = k
		}
	}

	gov := points[governing]
	return types.AnalysisResult{
		Beta:         gov.Beta,
		Pf:           BetaToPf(gov.Beta),
		Iterations:   gov.Iterations,
		Converged:    gov.Converged,
		Diagnostic:   gov.Diagnostic,
		DesignPoints: points,
	}, nil
}
