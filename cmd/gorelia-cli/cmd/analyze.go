// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bitjungle/gorelia/internal/benchmark"
	"github.com/bitjungle/gorelia/internal/config"
	"github.com/bitjungle/gorelia/internal/core"
	"github.com/bitjungle/gorelia/internal/utils"
	"github.com/bitjungle/gorelia/pkg/profiling"
	"github.com/bitjungle/gorelia/pkg/security"
	"github.com/bitjungle/gorelia/pkg/types"
)

var (
	analyzeModelPath  string
	analyzeBenchmark  string
	analyzeOutputFile string
	analyzeMethod     string
	analyzeSamples    int
	analyzeSeed       uint64
	analyzeSampler    string
	analyzeFormat     string
	analyzeComponents string
	optA              float64
	optB              float64
	optGamma          float64
	optTol            float64
	optMaxIter        int
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run a reliability analysis against a model file",
	Long: `Analyze loads a model file (or a named built-in benchmark), assembles its
marginals, correlation and limit state into a reliability problem, and
runs the requested estimator: fosm, form, montecarlo or importance.

Examples:
  # Run the method named in the model file
  gorelia-cli analyze --model model.json

  # Run FORM against a built-in benchmark, overriding its analysis method
  gorelia-cli analyze --benchmark nonlinear --method form

  # Run Monte Carlo with an explicit sample count and seed
  gorelia-cli analyze --model model.json --method montecarlo --samples 200000 --seed 42`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&analyzeModelPath, "model", "m", "", "Model file to analyze")
	analyzeCmd.Flags().StringVarP(&analyzeBenchmark, "benchmark", "b", "", "Analyze a built-in benchmark model instead of a file")
	analyzeCmd.Flags().StringVarP(&analyzeOutputFile, "output", "o", "", "Output file path (default: stdout)")
	analyzeCmd.Flags().StringVar(&analyzeMethod, "method", "", "Override the model's analysis method: fosm, form, montecarlo or importance")
	analyzeCmd.Flags().IntVar(&analyzeSamples, "samples", 0, "Override the model's sample count (montecarlo/importance)")
	analyzeCmd.Flags().Uint64Var(&analyzeSeed, "seed", 0, "Override the model's sampler seed")
	analyzeCmd.Flags().StringVar(&analyzeSampler, "sampler", "", "Override the model's sampler: random, antithetic or lhs")
	analyzeCmd.Flags().StringVarP(&analyzeFormat, "format", "f", "text", "Output format: text or json")
	analyzeCmd.Flags().StringVar(&analyzeComponents, "components", "", "1-based limit-state component indices to report (e.g. 1,3-4); default all")

	cfg := config.DefaultConfig()
	analyzeCmd.Flags().Float64Var(&optA, "a", cfg.Optimizer.A, "iHLRF Armijo slope parameter")
	analyzeCmd.Flags().Float64Var(&optB, "b-step", cfg.Optimizer.B, "iHLRF Armijo step-shrink factor")
	analyzeCmd.Flags().Float64Var(&optGamma, "gamma", cfg.Optimizer.Gamma, "iHLRF merit weight scale")
	analyzeCmd.Flags().Float64Var(&optTol, "tol", cfg.Optimizer.Tol, "design-point search tolerance")
	analyzeCmd.Flags().IntVar(&optMaxIter, "max-iter", cfg.Optimizer.MaxIter, "design-point search outer iteration cap")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	model, err := loadModelFile(analyzeModelPath, analyzeBenchmark)
	if err != nil {
		return err
	}

	if err := security.ValidateDimensionCount(len(model.Marginals)); err != nil {
		return err
	}

	method := model.Analysis.Method
	if analyzeMethod != "" {
		method = analyzeMethod
	}

	samples := model.Analysis.Samples
	if analyzeSamples > 0 {
		samples = analyzeSamples
	}

	seed := model.Analysis.Seed
	if analyzeSeed > 0 {
		seed = analyzeSeed
	}

	samplerName := model.Analysis.Sampler
	if analyzeSampler != "" {
		samplerName = analyzeSampler
	}

	defaultCfg := config.DefaultConfig()
	optCfg := defaultCfg.Optimizer
	optCfg.A = optA
	optCfg.B = optB
	optCfg.Gamma = optGamma
	optCfg.Tol = optTol
	optCfg.Tol1 = optTol
	optCfg.Tol2 = optTol
	optCfg.MaxIter = optMaxIter
	if err := security.ValidateOptimizerParameters(optCfg.A, optCfg.B, optCfg.Gamma, optCfg.Tol, optCfg.MaxIter); err != nil {
		return err
	}

	if (method == "montecarlo" || method == "importance") && samples > 0 {
		if err := security.ValidateSampleCount(samples); err != nil {
			return err
		}
	}

	profiler := profiling.NewMemoryProfiler()
	profiler.Start("analyze")

	joint, ls, err := benchmark.BuildProblem(model, defaultCfg.Joint)
	if err != nil {
		return fmt.Errorf("failed to assemble problem: %w", err)
	}
	profiler.Checkpoint("problem_assembled")

	if verbose && !quiet {
		fmt.Fprintf(os.Stderr, "Running %s on %q (%d marginals)...\n", method, model.Name, len(model.Marginals))
	}

	result, err := runMethod(joint, ls, method, samples, seed, samplerName, optCfg)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}
	profiler.Checkpoint("estimator_done")

	if (method == "montecarlo" || method == "importance") && defaultCfg.Analysis.ShowDesignPointEllipse && joint.Dim() >= 2 && !quiet {
		reportFailureRegionEllipse(os.Stderr, joint, ls, method, samplerName, samples, seed, result, defaultCfg.Analysis.EllipseConfidenceLevel)
	}

	if summary := profiler.Stop(); verbose && !quiet && os.Getenv("GORELIA_PROFILE") == "1" {
		fmt.Fprintf(os.Stderr, "Peak memory: %s (total allocated: %s, GCs: %d)\n",
			profiling.FormatBytes(summary.PeakAlloc), profiling.FormatBytes(summary.TotalAllocated), summary.NumGCs)
	}

	result.DesignPoints, err = filterDesignPoints(result.DesignPoints, analyzeComponents)
	if err != nil {
		return err
	}

	out := os.Stdout
	if analyzeOutputFile != "" {
		if err := security.ValidateOutputPath(analyzeOutputFile); err != nil {
			return fmt.Errorf("invalid output path: %w", err)
		}
		f, err := os.Create(analyzeOutputFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	names := marginalNames(model)
	switch analyzeFormat {
	case "json":
		return writeAnalysisJSON(out, result, names)
	case "text":
		return writeAnalysisText(out, model.Name, method, result, names)
	default:
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", analyzeFormat)
	}
}

// runMethod dispatches to the requested estimator. Importance sampling
// first runs FORM to obtain the design point it samples around, per
// the two-stage importance-sampling workflow.
func runMethod(joint *core.JointDistribution, ls *core.LimitState, method string, samples int, seed uint64, samplerName string, optCfg types.OptimizerConfig) (types.AnalysisResult, error) {
	y0 := make([]float64, joint.Dim())

	switch method {
	case "fosm":
		return core.RunFOSM(joint, ls, y0, optCfg)
	case "form":
		return core.RunFORM(joint, ls, y0, optCfg)
	case "montecarlo":
		sampler, err := resolveSampler(samplerName)
		if err != nil {
			return types.AnalysisResult{}, err
		}
		return core.RunMonteCarlo(joint, ls, 0, core.MonteCarloConfig{
			Samples: samples,
			Seed:    seed,
			Sampler: sampler,
		})
	case "importance":
		form, err := core.RunFORM(joint, ls, y0, optCfg)
		if err != nil {
			return types.AnalysisResult{}, fmt.Errorf("importance sampling requires a design point from FORM: %w", err)
		}
		result, err := core.RunImportance(joint, ls, 0, core.ImportanceConfig{
			Samples: samples,
			Seed:    seed,
			Center:  form.DesignPoints[0].Y,
		})
		if err != nil {
			return types.AnalysisResult{}, err
		}
		result.DesignPoints = form.DesignPoints
		return result, nil
	default:
		return types.AnalysisResult{}, fmt.Errorf("invalid method: %s (must be 'fosm', 'form', 'montecarlo' or 'importance')", method)
	}
}

// reportFailureRegionEllipse redraws the estimator's sampler and prints the
// failed/safe confidence-ellipse envelope (projected onto the first two
// Y-space axes) as a diagnostic. This is best-effort: any error (e.g. a
// failure region too sparse to fit an ellipse) is reported but not fatal,
// since the estimator's own result already succeeded.
func reportFailureRegionEllipse(w *os.File, joint *core.JointDistribution, ls *core.LimitState, method, samplerName string, samples int, seed uint64, result types.AnalysisResult, confidenceLevel float64) {
	var drawn []core.Sample
	var err error
	switch method {
	case "montecarlo":
		var sampler core.Sampler
		sampler, err = resolveSampler(samplerName)
		if err == nil {
			drawn, err = sampler.Draw(joint, samples, seed)
		}
	case "importance":
		if len(result.DesignPoints) == 0 {
			return
		}
		drawn, err = (core.ImportanceSampler{Center: result.DesignPoints[0].Y}).Draw(joint, samples, seed)
	}
	if err != nil {
		fmt.Fprintf(w, "ellipse diagnostic skipped: %v\n", err)
		return
	}

	failed := make([]bool, len(drawn))
	for i, s := range drawn {
		failed[i] = ls.Eval(0, s.X) <= 0
	}

	ellipses, err := core.FailureRegionEllipse(drawn, failed, 0, 1, confidenceLevel)
	if err != nil {
		fmt.Fprintf(w, "ellipse diagnostic skipped: %v\n", err)
		return
	}
	for _, group := range []string{"failed", "safe"} {
		e, ok := ellipses[group]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "Failure region ellipse [%s] (axes y0,y1, %.0f%% conf): center=(%.4f,%.4f) major=%.4f minor=%.4f angle=%.4f\n",
			group, confidenceLevel*100, e.CenterX, e.CenterY, e.MajorAxis, e.MinorAxis, e.Angle)
	}
}

func resolveSampler(name string) (core.Sampler, error) {
	switch name {
	case "", "random":
		return core.RandomSampler{}, nil
	case "antithetic":
		return core.AntitheticSampler{}, nil
	case "lhs":
		return core.LHSSampler{}, nil
	default:
		return nil, fmt.Errorf("invalid sampler: %s (must be 'random', 'antithetic' or 'lhs')", name)
	}
}

// filterDesignPoints applies a 1-based --components selection to a
// system limit state's design points, leaving all points in place when
// selection is empty.
func filterDesignPoints(points []types.DesignPoint, selection string) ([]types.DesignPoint, error) {
	if selection == "" {
		return points, nil
	}
	indices, err := utils.ParseRanges(selection)
	if err != nil {
		return nil, fmt.Errorf("invalid --components: %w", err)
	}
	filtered := make([]types.DesignPoint, 0, len(indices))
	for _, idx := range indices {
		if idx < 0 || idx >= len(points) {
			return nil, fmt.Errorf("component index %d out of bounds (1-%d)", idx+1, len(points))
		}
		filtered = append(filtered, points[idx])
	}
	return filtered, nil
}

func writeAnalysisJSON(w *os.File, result types.AnalysisResult, names []string) error {
	output := struct {
		MarginalNames []string `json:"marginal_names"`
		types.AnalysisResult
	}{
		MarginalNames:  names,
		AnalysisResult: result,
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

func writeAnalysisText(w *os.File, modelName, method string, result types.AnalysisResult, names []string) error {
	fmt.Fprintf(w, "Model:      %s\n", modelName)
	fmt.Fprintf(w, "Method:     %s\n", method)
	fmt.Fprintf(w, "Beta:       %.6f\n", result.Beta)
	fmt.Fprintf(w, "Pf:         %.6e\n", result.Pf)
	if result.StdError > 0 {
		fmt.Fprintf(w, "StdError:   %.6e\n", result.StdError)
	}
	if result.Samples > 0 {
		fmt.Fprintf(w, "Samples:    %d\n", result.Samples)
	}
	fmt.Fprintf(w, "Iterations: %d\n", result.Iterations)
	fmt.Fprintf(w, "Converged:  %t\n", result.Converged)
	fmt.Fprintf(w, "Diagnostic: %s\n", result.Diagnostic)

	for i, dp := range result.DesignPoints {
		fmt.Fprintf(w, "\nDesign point %d (beta=%.6f):\n", i+1, dp.Beta)
		for j, x := range dp.X {
			label := fmt.Sprintf("x%d", j+1)
			if j < len(names) {
				label = names[j]
			}
			fmt.Fprintf(w, "  %-12s x=%.6f", label, x)
			if j < len(dp.Alpha) {
				fmt.Fprintf(w, "  alpha=%.6f", dp.Alpha[j])
			}
			fmt.Fprintln(w)
		}
	}
	return nil
}
