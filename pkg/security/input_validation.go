// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

// Package security provides security utilities for input validation,
// path sanitization, and protection against common vulnerabilities.
package security

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Limits for various input types to prevent resource exhaustion
const (
	MaxFileSize      = 500 * 1024 * 1024 // 500MB max model/report file size
	MaxFieldLength   = 100000            // 100K chars per field
	MaxStringLength  = 10000             // 10K chars for general strings
	MaxPathLength    = 4096              // Standard PATH_MAX
	MaxDimensions    = 1000              // Max number of marginals in a model
	MinDimensions    = 1                 // Min number of marginals in a model
	MaxSamples       = 100000000         // Max Monte Carlo / importance sample count
	MaxOptimizerIter = 10000             // Max HLRF/iHLRF outer iterations
	MaxMemoryUsageMB = 2048              // 2GB max memory for sample-matrix operations
)

// ValidateNumericInput validates and sanitizes numeric input within bounds
func ValidateNumericInput(input string, min, max float64, paramName string) (float64, error) {
	// Remove whitespace
	input = strings.TrimSpace(input)

	// Check for empty input
	if input == "" {
		return 0, fmt.Errorf("%s: empty input", paramName)
	}

	// Check for invalid characters (prevent injection)
	for _, r := range input {
		if !unicode.IsDigit(r) && r != '.' && r != '-' && r != '+' && r != 'e' && r != 'E' {
			return 0, fmt.Errorf("%s: invalid character '%c' in numeric input", paramName, r)
		}
	}

	// Parse the number
	value, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid numeric value: %w", paramName, err)
	}

	// Check for special values
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%s: invalid numeric value (NaN or Inf)", paramName)
	}

	// Validate bounds
	if value < min || value > max {
		return 0, fmt.Errorf("%s: value %.6f out of range [%.6f, %.6f]", paramName, value, min, max)
	}

	return value, nil
}

// ValidateIntegerInput validates integer input within bounds
func ValidateIntegerInput(input string, min, max int, paramName string) (int, error) {
	// Remove whitespace
	input = strings.TrimSpace(input)

	// Check for empty input
	if input == "" {
		return 0, fmt.Errorf("%s: empty input", paramName)
	}

	// Check for invalid characters
	for i, r := range input {
		if i == 0 && (r == '-' || r == '+') {
			continue
		}
		if !unicode.IsDigit(r) {
			return 0, fmt.Errorf("%s: invalid character '%c' in integer input", paramName, r)
		}
	}

	// Parse the integer
	value, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid integer value: %w", paramName, err)
	}

	// Validate bounds
	if value < min || value > max {
		return 0, fmt.Errorf("%s: value %d out of range [%d, %d]", paramName, value, min, max)
	}

	return value, nil
}

// ValidateStringInput validates and sanitizes string input
func ValidateStringInput(input string, maxLength int, allowedChars string, paramName string) (string, error) {
	// Check UTF-8 validity
	if !utf8.ValidString(input) {
		return "", fmt.Errorf("%s: invalid UTF-8 encoding", paramName)
	}

	// Check length
	if len(input) > maxLength {
		return "", fmt.Errorf("%s: string too long (%d > %d)", paramName, len(input), maxLength)
	}

	// Remove null bytes and control characters
	cleaned := strings.Map(func(r rune) rune {
		if r == 0 || (r < 32 && r != '\t' && r != '\n' && r != '\r') {
			return -1 // Remove character
		}
		return r
	}, input)

	// Check allowed characters if specified
	if allowedChars != "" {
		for _, r := range cleaned {
			if !strings.ContainsRune(allowedChars, r) {
				return "", fmt.Errorf("%s: contains disallowed character '%c'", paramName, r)
			}
		}
	}

	return cleaned, nil
}

// ValidateDimensionCount validates the number of marginals in a model
// against the engine's sanity ceiling.
func ValidateDimensionCount(dimensions int) error {
	if dimensions < MinDimensions {
		return fmt.Errorf("dimensions must be at least %d", MinDimensions)
	}

	if dimensions > MaxDimensions {
		return fmt.Errorf("dimensions cannot exceed %d", MaxDimensions)
	}

	return nil
}

// ValidateOptimizerParameters validates the HLRF/iHLRF tolerance and
// step-size parameters (a, b, gamma, the step
// tolerance and the outer iteration cap), ahead of
// types.OptimizerConfig.Validate's own check.
func ValidateOptimizerParameters(a, b, gamma, tol float64, maxIter int) error {
	if a <= 0 || a >= 1 {
		return fmt.Errorf("armijo slope parameter a=%.6f out of range (0, 1)", a)
	}
	if b <= 0 || b >= 1 {
		return fmt.Errorf("armijo step-shrink factor b=%.6f out of range (0, 1)", b)
	}
	if gamma < 1 {
		return fmt.Errorf("merit weight scale gamma=%.6f must be >= 1", gamma)
	}
	if tol <= 0 {
		return fmt.Errorf("tolerance %.6g must be positive", tol)
	}
	if maxIter < 1 || maxIter > MaxOptimizerIter {
		return fmt.Errorf("max_iter %d out of range [1, %d]", maxIter, MaxOptimizerIter)
	}
	return nil
}

// ValidateSampleCount validates a requested Monte Carlo / importance
// sampling draw count against the engine's memory-safety ceiling.
func ValidateSampleCount(samples int) error {
	if samples <= 0 {
		return fmt.Errorf("samples must be positive, got %d", samples)
	}
	if samples > MaxSamples {
		return fmt.Errorf("samples %d exceeds limit of %d", samples, MaxSamples)
	}
	return nil
}

// ValidateSampleMatrixDimensions validates a sample table's shape before
// it is allocated, guarding against accidental memory exhaustion from a
// malformed sample count or dimension.
func ValidateSampleMatrixDimensions(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("invalid dimensions: rows=%d, cols=%d", rows, cols)
	}

	estimatedMemoryMB := (rows * cols * 8) / (1024 * 1024) // Assuming 8 bytes per float64
	if estimatedMemoryMB > MaxMemoryUsageMB {
		return fmt.Errorf("sample matrix too large: estimated %dMB exceeds limit of %dMB",
			estimatedMemoryMB, MaxMemoryUsageMB)
	}

	return nil
}

// SanitizeFilename removes potentially dangerous characters from filenames
func SanitizeFilename(filename string) string {
	// Remove path separators and other dangerous characters
	dangerous := []string{"/", "\\", "..", "~", "|", ">", "<", "&", "$", "`", ";", ":", "*", "?", "\"", "'"}

	result := filename
	for _, char := range dangerous {
		result = strings.ReplaceAll(result, char, "_")
	}

	// Remove leading dots (hidden files)
	result = strings.TrimLeft(result, ".")

	// Limit length
	if len(result) > 255 {
		result = result[:255]
	}

	// Ensure non-empty
	if result == "" {
		result = "unnamed"
	}

	return result
}

