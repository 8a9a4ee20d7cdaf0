// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package config

import "github.com/bitjungle/gorelia/pkg/types"

// CLIConfig holds the gorelia-cli application's runtime configuration.
type CLIConfig struct {
	// Joint-distribution defaults (Nataf tolerances, decomposition, seed).
	Joint types.JointConfig `json:"joint"`

	// Design-point optimiser defaults (HLRF/iHLRF tolerances and caps).
	Optimizer types.OptimizerConfig `json:"optimizer"`

	// Output configuration
	Output OutputConfig `json:"output"`

	// Analysis configuration
	Analysis AnalysisConfig `json:"analysis"`
}

// OutputConfig holds output file configuration.
type OutputConfig struct {
	// Suffix for result files
	FileSuffix string `json:"file_suffix"`

	// Whether to create output directory if it doesn't exist
	CreateOutputDir bool `json:"create_output_dir"`
}

// AnalysisConfig holds per-run analysis defaults.
type AnalysisConfig struct {
	// Default sample count for Monte Carlo / importance sampling runs.
	DefaultSamples int `json:"default_samples"`

	// Whether to report the failed/safe sample confidence ellipses after a
	// Monte Carlo or importance-sampling run.
	ShowDesignPointEllipse bool `json:"show_design_point_ellipse"`

	// Confidence level used for the failed/safe sample ellipses.
	EllipseConfidenceLevel float64 `json:"ellipse_confidence_level"`
}

// DefaultConfig returns gorelia-cli's default configuration.
func DefaultConfig() *CLIConfig {
	return &CLIConfig{
		Joint:     types.DefaultJointConfig(),
		Optimizer: types.DefaultOptimizerConfig(),
		Output: OutputConfig{
			FileSuffix:      "_reliability",
			CreateOutputDir: true,
		},
		Analysis: AnalysisConfig{
			DefaultSamples:         10000,
			ShowDesignPointEllipse: true,
			EllipseConfidenceLevel: 0.95,
		},
	}
}
