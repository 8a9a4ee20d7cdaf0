// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package types

// MarginalSpec is the JSON-serializable description of one input
// variable's marginal distribution, as read from a model file.
type MarginalSpec struct {
	Name   string             `json:"name"`
	Type   string             `json:"type"` // "normal", "lognormal", "uniform", "gumbel"
	Params map[string]float64 `json:"params"`
}

// LimitStateSpec names a limit-state function from the built-in benchmark
// registry together with the parameters it exposes (coefficients, offset).
type LimitStateSpec struct {
	Name   string             `json:"name"`
	Params map[string]float64 `json:"params,omitempty"`
}

// AnalysisSpec selects which estimator to run against a model file and its
// options.
type AnalysisSpec struct {
	Method  string `json:"method"` // "fosm", "form", "montecarlo", "importance"
	Samples int    `json:"samples,omitempty"`
	Seed    uint64 `json:"seed,omitempty"`
	Sampler string `json:"sampler,omitempty"` // "random", "antithetic", "lhs"
}

// ModelFile is the top-level JSON document describing a reliability
// problem: marginals, physical-space correlation, limit state and analysis
// options. gorelia-cli's analyze/validate subcommands read this format.
type ModelFile struct {
	Schema      string         `json:"$schema,omitempty"`
	Name        string         `json:"name"`
	Marginals   []MarginalSpec `json:"marginals"`
	Correlation [][]float64    `json:"correlation"`
	LimitState  LimitStateSpec `json:"limit_state"`
	Analysis    AnalysisSpec   `json:"analysis"`
}
