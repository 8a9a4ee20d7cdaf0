// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package core

import (
	"math"
	"testing"

	"github.com/bitjungle/gorelia/pkg/marginal"
	"github.com/bitjungle/gorelia/pkg/profiling"
	"github.com/bitjungle/gorelia/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func linearBenchmarkJoint(t *testing.T, corrX *mat.SymDense) (*JointDistribution, *LimitState) {
	t.Helper()
	marginals := []types.Marginal{
		marginal.NewNormal("X1", 10, 2),
		marginal.NewNormal("X2", 5, 1),
	}
	joint, err := NewJointDistribution(marginals, corrX, types.DefaultJointConfig())
	require.NoError(t, err)
	g := func(x []float64) float64 { return x[0] - x[1] - 3 }
	ls := NewLimitState(g, nil)
	return joint, ls
}

// Benchmark 1: linear 2-D Gaussian, analytical beta = 2/sqrt(5) ~= 0.8944.
func TestBenchmark1LinearGaussianFOSMAndFORM(t *testing.T) {
	identity := mat.NewSymDense(2, []float64{1, 0, 0, 1})
	joint, ls := linearBenchmarkJoint(t, identity)
	wantBeta := 2 / math.Sqrt(5)

	fosm, err := RunFOSM(joint, ls, nil, types.DefaultOptimizerConfig())
	require.NoError(t, err)
	assert.InDelta(t, wantBeta, fosm.Beta, 1e-4)

	form, err := RunFORM(joint, ls, nil, types.DefaultOptimizerConfig())
	require.NoError(t, err)
	assert.InDelta(t, wantBeta, form.Beta, 1e-4)
	assert.InDelta(t, 0.1855, form.Pf, 1e-3)
}

// Benchmark 2: linear correlated, beta = 2/sqrt(3) ~= 1.1547 for FORM, which
// carries the true correlation structure through the joint distribution.
// FOSM's normal equivalents are built independently of the correlation
// matrix, so it reproduces benchmark 1's beta = 2/sqrt(5) on this same
// problem regardless of corrX.
func TestBenchmark2LinearCorrelated(t *testing.T) {
	corrX := mat.NewSymDense(2, []float64{1, 0.5, 0.5, 1})
	joint, ls := linearBenchmarkJoint(t, corrX)

	fosm, err := RunFOSM(joint, ls, nil, types.DefaultOptimizerConfig())
	require.NoError(t, err)
	assert.InDelta(t, 2/math.Sqrt(5), fosm.Beta, 1e-3)

	form, err := RunFORM(joint, ls, nil, types.DefaultOptimizerConfig())
	require.NoError(t, err)
	assert.InDelta(t, 2/math.Sqrt(3), form.Beta, 1e-4)
}

// Benchmark 3: nonlinear limit state, FORM within 1% (plus 0.01 absolute) of
// crude MC at m=1e6.
func TestBenchmark3NonlinearFORMAgreesWithMonteCarlo(t *testing.T) {
	marginals := []types.Marginal{
		marginal.NewNormal("X1", 2, 0.5),
		marginal.NewNormal("X2", 5, 1),
	}
	identity := mat.NewSymDense(2, []float64{1, 0, 0, 1})
	joint, err := NewJointDistribution(marginals, identity, types.DefaultJointConfig())
	require.NoError(t, err)

	g := func(x []float64) float64 { return x[0]*x[0] - x[1] }
	ls := NewLimitState(g, nil)

	form, err := RunFORM(joint, ls, nil, types.DefaultOptimizerConfig())
	require.NoError(t, err)
	require.LessOrEqual(t, form.Iterations, 20)

	mc, err := RunMonteCarlo(joint, ls, 0, MonteCarloConfig{Samples: 1_000_000, Seed: 7})
	require.NoError(t, err)

	assert.InDelta(t, mc.Pf, form.Pf, 0.01*mc.Pf+0.01)
}

// Benchmark 4: HLRF contract — linear g, standard normal inputs, exactly 1 iteration.
func TestBenchmark4HLRFLinearConvergesInOneIteration(t *testing.T) {
	marginals := []types.Marginal{marginal.NewNormal("X1", 0, 1), marginal.NewNormal("X2", 0, 1)}
	identity := mat.NewSymDense(2, []float64{1, 0, 0, 1})
	joint, err := NewJointDistribution(marginals, identity, types.DefaultJointConfig())
	require.NoError(t, err)

	g := func(x []float64) float64 { return 3 - x[0] - x[1] }
	ls := NewLimitState(g, nil)

	dp, err := SearchHLRF(joint, ls, 0, nil, types.DefaultOptimizerConfig())
	require.NoError(t, err)
	assert.Equal(t, 1, dp.Iterations)
	assert.True(t, dp.Converged)
}

// Benchmark 5: LHS stratification — every (column, stratum) cell hit exactly once.
func TestBenchmark5LHSStratification(t *testing.T) {
	identity := mat.NewSymDense(2, []float64{1, 0, 0, 1})
	joint, err := NewJointDistribution(
		[]types.Marginal{marginal.NewNormal("X1", 0, 1), marginal.NewNormal("X2", 0, 1)},
		identity, types.DefaultJointConfig())
	require.NoError(t, err)

	const n = 20
	samples, err := LHSSampler{Mode: LHSCenter}.Draw(joint, n, 11)
	require.NoError(t, err)

	for col := 0; col < 2; col++ {
		seen := make([]bool, n)
		for _, s := range samples {
			u := PhiCDF(s.Y[col])
			stratum := int(u * n)
			if stratum >= n {
				stratum = n - 1
			}
			assert.False(t, seen[stratum], "stratum %d of column %d hit twice", stratum, col)
			seen[stratum] = true
		}
		for stratum, hit := range seen {
			assert.True(t, hit, "stratum %d of column %d never hit", stratum, col)
		}
	}
}

// Benchmark 6: importance sampling standard error smaller than crude Monte Carlo's,
// both within 20% of 0.1855, averaged over 50 seeds.
func TestBenchmark6ImportanceSamplingEfficiency(t *testing.T) {
	identity := mat.NewSymDense(2, []float64{1, 0, 0, 1})
	joint, ls := linearBenchmarkJoint(t, identity)

	form, err := RunFORM(joint, ls, nil, types.DefaultOptimizerConfig())
	require.NoError(t, err)

	var mcStdErrSum, impStdErrSum, mcPfSum, impPfSum float64
	const trials = 50
	for seed := uint64(0); seed < trials; seed++ {
		mc, err := RunMonteCarlo(joint, ls, 0, MonteCarloConfig{Samples: 1000, Seed: seed})
		require.NoError(t, err)
		imp, err := RunImportance(joint, ls, 0, ImportanceConfig{Samples: 1000, Seed: seed, Center: form.DesignPoints[0].Y})
		require.NoError(t, err)
		mcStdErrSum += mc.StdError
		impStdErrSum += imp.StdError
		mcPfSum += mc.Pf
		impPfSum += imp.Pf
	}

	assert.InDelta(t, 0.1855, mcPfSum/trials, 0.2*0.1855)
	assert.InDelta(t, 0.1855, impPfSum/trials, 0.2*0.1855)
	assert.Less(t, impStdErrSum/trials, mcStdErrSum/trials)
}

// Benchmark 7: antithetic symmetry — each half-estimator, and a random
// estimator of the same total size, lands within 0.1 of 0.1855.
func TestBenchmark7AntitheticSymmetry(t *testing.T) {
	identity := mat.NewSymDense(2, []float64{1, 0, 0, 1})
	joint, ls := linearBenchmarkJoint(t, identity)

	const n = 2000
	anti, err := AntitheticSampler{}.Draw(joint, n, 23)
	require.NoError(t, err)

	var firstHalf, secondHalf float64
	for i, s := range anti {
		g := ls.Eval(0, s.X)
		ind := 0.0
		if g <= 0 {
			ind = 1
		}
		if i%2 == 0 {
			firstHalf += ind
		} else {
			secondHalf += ind
		}
	}
	firstHalf /= float64(n / 2)
	secondHalf /= float64(n / 2)

	assert.InDelta(t, 0.1855, firstHalf, 0.1)
	assert.InDelta(t, 0.1855, secondHalf, 0.1)

	randomSamples, err := RandomSampler{}.Draw(joint, n, 23)
	require.NoError(t, err)
	var randomMean float64
	for _, s := range randomSamples {
		if ls.Eval(0, s.X) <= 0 {
			randomMean++
		}
	}
	randomMean /= float64(n)
	assert.InDelta(t, 0.1855, randomMean, 0.1)
}

// A large Monte Carlo run should not leave background goroutines running;
// LimitState.Validate rejects NTasks > 1 rather than spawning workers, so
// this is a regression guard against that contract quietly being violated.
func TestMonteCarloNoGoroutineLeak(t *testing.T) {
	identity := mat.NewSymDense(2, []float64{1, 0, 0, 1})
	joint, ls := linearBenchmarkJoint(t, identity)

	report := profiling.DetectLeaksInFunc("montecarlo", func() {
		_, err := RunMonteCarlo(joint, ls, 0, MonteCarloConfig{Samples: 200_000, Seed: 5})
		require.NoError(t, err)
	})

	assert.False(t, report.HasLeaks, "unexpected leak checkpoints: %+v", report.Leaks)
}
