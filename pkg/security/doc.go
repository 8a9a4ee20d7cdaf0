// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

// Package security provides defense-in-depth measures for the gorelia
// reliability engine: input validation, file path sanitization, and
// resource-exhaustion limits on model files and Monte Carlo sample
// counts.
//
// # Input Validation
//
// The package provides validators for all user-supplied values:
//   - Numeric and integer values with bounds checking
//   - String inputs with length and character restrictions
//   - Model dimension counts and HLRF/iHLRF optimiser parameters
//   - Monte Carlo / importance sampling sample counts
//
// # Path Security
//
// File path operations include multiple layers of protection:
//   - Path traversal detection and prevention
//   - System directory write protection
//   - Jail/sandbox path enforcement
//   - Platform-specific validation (Windows reserved names, etc.)
//
// # Resource Limits
//
// The package enforces limits to prevent resource exhaustion:
//   - Maximum model/report file size: 500MB
//   - Maximum dimensions per model: 1,000
//   - Maximum Monte Carlo / importance samples: 100,000,000
//   - Maximum memory usage: 2GB for sample matrices
//
// # Usage
//
// Input validation:
//
//	value, err := security.ValidateNumericInput(input, 0, 100, "parameter")
//
// Path validation:
//
//	err := security.ValidateInputPath(filePath)
//
// # Security Policy
//
// For vulnerability reporting and security policies, see SECURITY.md
// in the repository root.
package security
