// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package core

import (
	"github.com/bitjungle/gorelia/pkg/types"
	"gonum.org/v1/gonum/mat"
)

// JointDistribution is the Nataf-transformed joint probability model over a
// set of marginals and a physical-space correlation matrix. It is immutable
// after construction (built once by NewJointDistribution) and safe for
// concurrent reads, per pkg/types' thread-safety note.
type JointDistribution struct {
	marginals []types.Marginal
	corrX     *mat.SymDense
	corrZ     *mat.SymDense
	l         *mat.Dense // Z = L*Y
	cfg       types.JointConfig
}

// NewJointDistribution builds a JointDistribution from marginals and a
// physical-space correlation matrix corrX (unit diagonal). When
// cfg.Mode is CorrelationNataf, each off-diagonal pair is resolved via
// SolveNataf; CorrelationApprox sets corrZ := corrX directly.
func NewJointDistribution(marginals []types.Marginal, corrX *mat.SymDense, cfg types.JointConfig) (*JointDistribution, error) {
	if err := ValidateMarginals(marginals); err != nil {
		return nil, err
	}
	n := len(marginals)
	if err := ValidateCorrelationMatrix(corrX, n); err != nil {
		return nil, err
	}

	corrZ := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		corrZ.SetSym(i, i, 1)
		for j := i + 1; j < n; j++ {
			rhoX := corrX.At(i, j)
			var rhoZ float64
			var err error
			switch cfg.Mode {
			case types.CorrelationApprox:
				rhoZ = rhoX
			case types.CorrelationNataf:
				rhoZ, err = SolveNataf(marginals[i], marginals[j], rhoX, cfg)
				if err != nil {
					return nil, err
				}
			default:
				return nil, types.NewInvalidParameterError("joint_distribution: unknown correlation mode", map[string]interface{}{"mode": cfg.Mode})
			}
			corrZ.SetSym(i, j, rhoZ)
		}
	}

	l, err := Decompose(corrZ, cfg.Decomposition)
	if err != nil {
		return nil, err
	}

	return &JointDistribution{
		marginals: marginals,
		corrX:     corrX,
		corrZ:     corrZ,
		l:         l,
		cfg:       cfg,
	}, nil
}

// Dim returns the number of random variables in the joint model.
func (j *JointDistribution) Dim() int { return len(j.marginals) }

// Marginals returns the joint model's ordered marginal distributions.
func (j *JointDistribution) Marginals() []types.Marginal { return j.marginals }

// CorrZ returns the solved Z-space correlation matrix.
func (j *JointDistribution) CorrZ() *mat.SymDense { return j.corrZ }

// YtoX maps an uncorrelated standard-normal point to physical space:
// Y -> Z (via L) -> X (via marginal inverse-CDF).
func (j *JointDistribution) YtoX(y []float64) ([]float64, error) {
	z := make([]float64, len(y))
	yVec := mat.NewVecDense(len(y), y)
	zVec := mat.NewVecDense(len(y), z)
	zVec.MulVec(j.l, yVec)
	return TransformZtoX(z, j.marginals)
}

// XtoY maps a physical-space point to uncorrelated standard-normal space:
// X -> Z (via marginal CDF) -> Y (via L^-1).
func (j *JointDistribution) XtoY(x []float64) ([]float64, error) {
	z, err := TransformXtoZ(x, j.marginals)
	if err != nil {
		return nil, err
	}
	_, jYZ, err := JacobianZY(j.l)
	if err != nil {
		return nil, err
	}
	n := len(z)
	zVec := mat.NewVecDense(n, z)
	yVec := mat.NewVecDense(n, nil)
	yVec.MulVec(jYZ, zVec)
	y := make([]float64, n)
	for i := range y {
		y[i] = yVec.AtVec(i)
	}
	return y, nil
}

// JointPDF evaluates the joint density at physical-space point x, as the
// product of marginal densities and the ratio of the Z-space multivariate
// normal density to the product of 1-D standard normal densities (the
// standard Nataf density expansion).
func (j *JointDistribution) JointPDF(x []float64) (float64, error) {
	z, err := TransformXtoZ(x, j.marginals)
	if err != nil {
		return 0, err
	}
	phiN, err := PhiPDFMulti(z, j.corrZ)
	if err != nil {
		return 0, err
	}
	var indep float64 = 1
	density := 1.0
	for i, m := range j.marginals {
		density *= m.PDF(x[i])
		indep *= PhiPDF(z[i])
	}
	if indep == 0 {
		return 0, nil
	}
	return density * phiN / indep, nil
}
