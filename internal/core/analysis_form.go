// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package core

import "github.com/bitjungle/gorelia/pkg/types"

// RunFORM performs a first-order reliability analysis: a design-point
// search (HLRF or iHLRF, per cfg.Kind) locates the point on each
// limit-state component closest to the origin in Y-space, and beta is
// taken from the governing (minimum-beta) component, per the system
// limit-state convention. The reported beta is signed: it is -||y*|| when
// the origin of Y-space already lies in the governing component's failure
// region (g <= 0 there), so that Pf = Phi(-beta) exceeds 0.5 in that case.
func RunFORM(joint *JointDistribution, ls *LimitState, y0 []float64, cfg types.OptimizerConfig) (types.AnalysisResult, error) {
	if err := cfg.Validate(); err != nil {
		return types.AnalysisResult{}, err
	}
	if err := ls.Validate(); err != nil {
		return types.AnalysisResult{}, err
	}

	search := SearchIHLRF
	if cfg.Kind == types.OptimizerHLRF {
		search = SearchHLRF
	}

	points := make([]types.DesignPoint, ls.NumComponents())
	governing := 0
	for k := 0; k < ls.NumComponents(); k++ {
		dp, err := search(joint, ls, k, y0, cfg)
		if err != nil {
			return types.AnalysisResult{}, err
		}
		points[k] = dp
		if dp.Beta < points[governing].Beta {
			governing = k
		}
	}

	gov := points[governing]
	beta := gov.Beta
	xOrigin, err := joint.YtoX(make([]float64, joint.Dim()))
	if err != nil {
		return types.AnalysisResult{}, err
	}
	if ls.Eval(governing, xOrigin) <= 0 {
		beta = -beta
	}
	return types.AnalysisResult{
		Beta:         beta,
		Pf:           BetaToPf(beta),
		Iterations:   gov.Iterations,
		Converged:    gov.Converged,
		Diagnostic:   gov.Diagnostic,
		DesignPoints: points,
	}, nil
}
