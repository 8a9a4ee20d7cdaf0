// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package core

import (
	"math"

	"github.com/bitjungle/gorelia/pkg/types"
)

// ImportanceConfig configures an importance-sampling estimator centered at
// a design point (typically obtained from RunFORM).
type ImportanceConfig struct {
	Samples int
	Seed    uint64
	Center  []float64 // design point in Y-space; required
	Strict  bool
}

// RunImportance estimates pf = Pr[g(X) <= 0] via importance sampling
// centered at cfg.Center, with the likelihood-ratio-weighted sample
// variance reported as StdError. This trades crude Monte Carlo's slow
// convergence at small pf for a sampler concentrated on the failure
// region, at the cost of requiring a design point up front.
func RunImportance(joint *JointDistribution, ls *LimitState, component int, cfg ImportanceConfig) (types.AnalysisResult, error) {
	if err := ls.Validate(); err != nil {
		return types.AnalysisResult{}, err
	}
	if cfg.Samples <= 0 {
		return types.AnalysisResult{}, types.NewInvalidParameterError("importance: samples must be positive", map[string]interface{}{"samples": cfg.Samples})
	}
	if len(cfg.Center) == 0 {
		return types.AnalysisResult{}, types.NewInvalidParameterError("importance: center (design point) is required", nil)
	}

	sampler := ImportanceSampler{Center: cfg.Center}
	samples, err := sampler.Draw(joint, cfg.Samples, cfg.Seed)
	if err != nil {
		return types.AnalysisResult{}, err
	}

	n := float64(len(samples))
	var sum, sumSq float64
	for _, s := range samples {
		g := ls.Eval(component, s.X)
		indicator := 0.0
		if g <= 0 {
			indicator = s.Weight
		}
		sum += indicator
		sumSq += indicator * indicator
	}

	pf := sum / n
	variance := (sumSq/n - pf*pf) / n
	if variance < 0 {
		variance = 0
	}
	stdErr := math.Sqrt(variance)

	converged := stdErr == 0 || pf == 0 || (stdErr/pf) < 0.5
	diag := "importance_weighted_estimator"
	if !converged {
		diag = "coefficient_of_variation_exceeds_threshold"
		if cfg.Strict {
			return types.AnalysisResult{}, types.NewNonConvergenceError("importance: estimator coefficient of variation too high", cfg.Samples)
		}
	}

	beta := math.Inf(1)
	if pf > 0 {
		beta = PfToBeta(pf)
	}

	return types.AnalysisResult{
		Beta:       beta,
		Pf:         pf,
		StdError:   stdErr,
		Converged:  converged,
		Diagnostic: diag,
		Samples:    len(samples),
	}, nil
}
