// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bitjungle/gorelia/internal/benchmark"
	"github.com/bitjungle/gorelia/internal/utils"
	"github.com/bitjungle/gorelia/pkg/security"
	"github.com/bitjungle/gorelia/pkg/types"
)

var (
	validateModelPath string
	validateBenchmark string
	validateExclude   string
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a model file's schema and shape",
	Long: `Validate checks a model file against the schema and reports whether its
marginals, correlation matrix and limit state describe a well-formed
reliability problem.

Example:
  gorelia-cli validate --model model.json`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(&validateModelPath, "model", "m", "", "Model file to validate")
	validateCmd.Flags().StringVarP(&validateBenchmark, "benchmark", "b", "", "Validate a built-in benchmark model instead of a file")
	validateCmd.Flags().StringVar(&validateExclude, "exclude", "", "Preview the model with these 1-based marginal indices removed (e.g. 2,4), without running an analysis")
}

func runValidate(cmd *cobra.Command, args []string) error {
	if validateModelPath == "" && validateBenchmark == "" {
		return fmt.Errorf("one of --model or --benchmark is required")
	}

	if validateBenchmark != "" && !quiet {
		fmt.Printf("Validating benchmark model: %s\n\n", validateBenchmark)
	} else if !quiet {
		fmt.Printf("Validating model file: %s\n\n", validateModelPath)
	}

	// loadModelFile runs schema validation against the raw JSON before
	// unmarshalling, so a non-nil model here has already passed it.
	model, err := loadModelFile(validateModelPath, validateBenchmark)
	if err != nil {
		fmt.Println("❌ Invalid model:", err)
		return err
	}
	if validateModelPath != "" {
		fmt.Println("✅ Schema: valid")
	}

	dim := len(model.Marginals)
	fmt.Printf("📊 Dimensions: %d marginals\n", dim)

	if err := security.ValidateDimensionCount(dim); err != nil {
		fmt.Println("❌", err)
		return err
	}
	fmt.Println("✅ Dimension count within engine limits")

	names := marginalNames(model)
	fmt.Printf("📋 Marginals: %v\n", names)

	if _, _, err := benchmark.BuildProblem(model, types.DefaultJointConfig()); err != nil {
		fmt.Println("❌ Model failed to assemble into a runnable problem:", err)
		return err
	}
	fmt.Println("✅ Marginals, correlation and limit state resolve to a runnable problem")

	fmt.Printf("⚙️  Requested analysis: %s\n", model.Analysis.Method)
	switch model.Analysis.Method {
	case "fosm", "form", "montecarlo", "importance":
		fmt.Println("✅ Analysis method is supported")
	default:
		err := fmt.Errorf("unsupported analysis method %q", model.Analysis.Method)
		fmt.Println("❌", err)
		return err
	}

	if model.Analysis.Method == "montecarlo" || model.Analysis.Method == "importance" {
		if err := security.ValidateSampleCount(model.Analysis.Samples); err != nil {
			fmt.Println("❌", err)
			return err
		}
		fmt.Println("✅ Sample count within engine limits")
	}

	if validateExclude != "" {
		if err := previewExclusion(model, names, validateExclude); err != nil {
			fmt.Println("❌ --exclude preview failed:", err)
			return err
		}
	}

	fmt.Println("\n✅ Model is ready for analysis")
	return nil
}

// previewExclusion reports what the model's marginal names and correlation
// matrix would look like with the 1-based indices in selection removed.
// This is a read-only preview for sensitivity screening: it does not
// mutate the model or affect the analyze command.
func previewExclusion(model *types.ModelFile, names []string, selection string) error {
	indices, err := utils.ParseRanges(selection)
	if err != nil {
		return fmt.Errorf("invalid --exclude: %w", err)
	}

	remainingNames, err := utils.FilterStringSlice(names, indices)
	if err != nil {
		return err
	}
	remainingCorr, err := utils.FilterMatrix(model.Correlation, indices, indices)
	if err != nil {
		return err
	}

	fmt.Printf("\n🔍 Exclusion preview (removing %v):\n", indices)
	fmt.Printf("   Remaining marginals:   %v\n", remainingNames)
	fmt.Printf("   Remaining correlation: %v\n", remainingCorr)
	return nil
}
