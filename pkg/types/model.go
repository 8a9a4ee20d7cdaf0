// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.
// The author respectfully requests that it not be used for
// military, warfare, or surveillance applications.

package types

// Matrix represents a 2D sample table: rows are samples, columns are variables.
type Matrix [][]float64

// Marginal is the capability-record contract for a 1-D input distribution.
// Implementations must satisfy CDF(InvCDF(u)) = u up to numeric tolerance,
// and report finite Mean/Variance.
type Marginal interface {
	// Name identifies the marginal for diagnostics and output labelling.
	Name() string
	// PDF evaluates the density at x.
	PDF(x float64) float64
	// CDF evaluates the cumulative distribution at x.
	CDF(x float64) float64
	// InvCDF evaluates the quantile function for u in (0,1).
	InvCDF(u float64) float64
	// Mean returns the distribution's mean.
	Mean() float64
	// Variance returns the distribution's variance.
	Variance() float64
	// Sample draws n i.i.d. values using the given seed.
	Sample(n int, seed uint64) []float64
}

// CorrelationMode selects how the Z-space correlation matrix is derived
// from the physical-space correlation matrix.
type CorrelationMode string

const (
	// CorrelationApprox sets C_z := C_x directly (no Nataf adjustment).
	CorrelationApprox CorrelationMode = "approx"
	// CorrelationNataf solves the Nataf integral equation per off-diagonal pair.
	CorrelationNataf CorrelationMode = "nataf"
)

// DecompositionKind selects the factorisation used to build J_yz/J_zy.
type DecompositionKind string

const (
	// DecompositionSpectral uses eigendecomposition of the correlation matrix.
	DecompositionSpectral DecompositionKind = "spectral"
	// DecompositionCholesky uses the Cholesky factor of the correlation matrix.
	DecompositionCholesky DecompositionKind = "cholesky"
)

// JointConfig configures the construction of a JointDistribution.
type JointConfig struct {
	Mode           CorrelationMode
	Decomposition  DecompositionKind
	Seed           uint64
	NatafTol       float64 // default 1e-10
	NatafMaxIter   int     // default 5
	NatafClampEps  float64 // default 1e-6; clamp range is [-1+eps, 1-eps]
}

// DefaultJointConfig returns the engine's default joint-distribution configuration.
func DefaultJointConfig() JointConfig {
	return JointConfig{
		Mode:          CorrelationNataf,
		Decomposition: DecompositionSpectral,
		NatafTol:      1e-10,
		NatafMaxIter:  5,
		NatafClampEps: 1e-6,
	}
}

// OptimizerKind selects the design-point search algorithm.
type OptimizerKind string

const (
	// OptimizerHLRF is the classical Hasofer-Lind-Rackwitz-Fiessler fixed-point iteration.
	OptimizerHLRF OptimizerKind = "HLRF"
	// OptimizerIHLRF adds Armijo line search on the Zhang-Kiureghian merit function.
	OptimizerIHLRF OptimizerKind = "iHLRF"
)

// OptimizerConfig carries the tolerances, step parameters and iteration caps
// shared by HLRF and iHLRF.
type OptimizerConfig struct {
	Kind    OptimizerKind
	A       float64 // Armijo slope parameter, 0 < a < 1
	B       float64 // Armijo step-shrink factor, 0 < b < 1
	Gamma   float64 // merit weight scale, gamma >= 1
	Tol     float64 // HLRF step tolerance
	Tol1    float64 // iHLRF/FORM angular tolerance
	Tol2    float64 // iHLRF/FORM constraint tolerance
	MaxIter int     // outer iteration cap
	MaxArmijoIter int // Armijo inner-loop hard cap
}

// DefaultMaxArmijoIter is the hard cap on the Armijo backtracking inner loop;
// Unbounded Armijo backtracking can spin forever on a pathological
// limit-state surface, so a hard cap is enforced here.
const DefaultMaxArmijoIter = 50

// DefaultOptimizerConfig returns the engine's default optimiser configuration.
func DefaultOptimizerConfig() OptimizerConfig {
	return OptimizerConfig{
		Kind:          OptimizerIHLRF,
		A:             0.1,
		B:             0.5,
		Gamma:         2.0,
		Tol:           1e-3,
		Tol1:          1e-3,
		Tol2:          1e-3,
		MaxIter:       20,
		MaxArmijoIter: DefaultMaxArmijoIter,
	}
}

// Validate checks the optimiser parameter constraints,
// returning an *ReliabilityError of kind ErrInvalidParameter on violation.
func (c OptimizerConfig) Validate() error {
	switch {
	case c.A <= 0 || c.A >= 1:
		return NewInvalidParameterError("a must satisfy 0 < a < 1", map[string]interface{}{"a": c.A})
	case c.B <= 0 || c.B >= 1:
		return NewInvalidParameterError("b must satisfy 0 < b < 1", map[string]interface{}{"b": c.B})
	case c.Gamma < 1:
		return NewInvalidParameterError("gamma must satisfy gamma >= 1", map[string]interface{}{"gamma": c.Gamma})
	case c.Tol <= 0 || c.Tol1 <= 0 || c.Tol2 <= 0:
		return NewInvalidParameterError("tolerances must be positive", map[string]interface{}{
			"tol": c.Tol, "tol1": c.Tol1, "tol2": c.Tol2,
		})
	case c.MaxIter < 1:
		return NewInvalidParameterError("max_iter must be at least 1", map[string]interface{}{"max_iter": c.MaxIter})
	case c.MaxArmijoIter < 1:
		return NewInvalidParameterError("max_armijo_iter must be at least 1", map[string]interface{}{"max_armijo_iter": c.MaxArmijoIter})
	}
	return nil
}

// DesignPoint is the result of a single HLRF/iHLRF search: the point y* that
// minimises ||y|| on the limit-state surface, together with its image in
// physical space and the unit importance vector alpha.
type DesignPoint struct {
	Y          []float64 // design point in uncorrelated standard-normal space
	X          []float64 // design point mapped to physical space
	Beta       float64   // ||y*||
	Alpha      []float64 // unit gradient direction at y*, dg/dy / ||dg/dy||
	Iterations int
	Converged  bool
	Diagnostic string
}

// AnalysisResult is the structured outcome of any of FOSM, FORM, MonteCarlo
// or Importance.
type AnalysisResult struct {
	Beta       float64
	Pf         float64
	StdError   float64 // estimator standard error, 0 for FOSM/FORM
	Iterations int
	Converged  bool
	Diagnostic string
	DesignPoints []DesignPoint // one entry; more than one for system limit states
	Samples    int             // number of samples drawn, 0 for FOSM/FORM
}
