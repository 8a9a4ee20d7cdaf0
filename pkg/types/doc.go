// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

// Package types provides the core data structures and interfaces for the
// gorelia structural reliability engine. It defines the fundamental types
// shared across the joint-distribution model, the design-point optimiser,
// the samplers and the analyses that orchestrate them.
//
// # Core Types
//
//   - Matrix: 2D slice representation of a sample table (rows = samples)
//   - Marginal: capability-record interface for a 1-D input distribution
//   - JointConfig: configuration for building a JointDistribution
//   - OptimizerConfig: tolerances and iteration caps for HLRF/iHLRF
//   - AnalysisResult: beta, pf, design point and convergence diagnostics
//
// # Spaces
//
// Three coordinate systems recur throughout the package: X (physical
// units), Z (correlated standard normals) and Y (uncorrelated standard
// normals). Matrix rows are samples, columns are variables, in all three.
//
// # Error Handling
//
// The package provides a single structured error type, ReliabilityError,
// distinguishing the five error kinds named by the engine: invalid
// parameter, shape mismatch, type contract, not implemented and
// non-convergence.
//
// # Thread Safety
//
// Types in this package are not thread-safe. A JointDistribution is
// immutable after construction and safe for concurrent reads; the
// analyses are plain functions (RunFOSM, RunFORM, RunMonteCarlo,
// RunImportance) that keep no state between calls.
package types
