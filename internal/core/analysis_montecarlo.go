// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package core

import (
	"math"

	"github.com/bitjungle/gorelia/pkg/types"
)

// MonteCarloConfig configures a crude or variance-reduced Monte Carlo
// estimator of Pr[g(X) <= 0].
type MonteCarloConfig struct {
	Samples int
	Seed    uint64
	Sampler Sampler // defaults to RandomSampler{} when nil
	Strict  bool    // when true, non-convergence is returned as an error
}

// RunMonteCarlo estimates pf = Pr[g(X) <= 0] by direct simulation, with the
// standard error of the sample proportion estimator,
// sqrt(pf*(1-pf)/n), reported as StdError.
func RunMonteCarlo(joint *JointDistribution, ls *LimitState, component int, cfg MonteCarloConfig) (types.AnalysisResult, error) {
	if err := ls.Validate(); err != nil {
		return types.AnalysisResult{}, err
	}
	if cfg.Samples <= 0 {
		return types.AnalysisResult{}, types.NewInvalidParameterError("monte_carlo: samples must be positive", map[string]interface{}{"samples": cfg.Samples})
	}

	sampler := cfg.Sampler
	if sampler == nil {
		sampler = RandomSampler{}
	}

	samples, err := sampler.Draw(joint, cfg.Samples, cfg.Seed)
	if err != nil {
		return types.AnalysisResult{}, err
	}

	var failures, weightSum float64
	for _, s := range samples {
		g := ls.Eval(component, s.X)
		if g <= 0 {
			failures += s.Weight
		}
		weightSum += s.Weight
	}

	n := float64(len(samples))
	pf := failures / n
	stdErr := math.Sqrt(math.Max(pf*(1-pf), 0) / n)

	converged := stdErr == 0 || pf == 0 || (stdErr/pf) < 0.5
	diag := "sample_proportion_estimator"
	if !converged {
		diag = "coefficient_of_variation_exceeds_threshold"
		if cfg.Strict {
			return types.AnalysisResult{}, types.NewNonConvergenceError("monte_carlo: estimator coefficient of variation too high", cfg.Samples)
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
