// Copyright 2025 bitjungle - Rune Mathisen. All rights reserved.
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package core

import (
	"github.com/bitjungle/gorelia/pkg/types"
	"gonum.org/v1/gonum/mat"
)

// TransformXtoZ maps a physical-space point to correlated standard-normal
// space marginal-by-marginal: z_i = Phi^-1(F_i(x_i)).
func TransformXtoZ(x []float64, marginals []types.Marginal) ([]float64, error) {
	if len(x) != len(marginals) {
		return nil, types.NewShapeMismatchError("transform_xz: x length does not match marginal count", len(marginals), len(x))
	}
	z := make([]float64, len(x))
	for i, m := range marginals {
		z[i] = PhiICDF(m.CDF(x[i]))
	}
	return z, nil
}

// TransformZtoX maps a correlated standard-normal point to physical space
// marginal-by-marginal: x_i = F_i^-1(Phi(z_i)).
func TransformZtoX(z []float64, marginals []types.Marginal) ([]float64, error) {
	if len(z) != len(marginals) {
		return nil, types.NewShapeMismatchError("transform_xz: z length does not match marginal count", len(marginals), len(z))
	}
	x := make([]float64, len(z))
	for i, m := range marginals {
		x[i] = m.InvCDF(PhiCDF(z[i]))
	}
	return x, nil
}

// JacobianXZ builds the diagonal linearized Jacobians of the X<->Z map at
// point x, from the per-component normal-equivalent (mu_eq, sigma_eq):
// J_zx = diag(sigma_eq), J_xz = diag(1/sigma_eq).
func JacobianXZ(x []float64, marginals []types.Marginal) (jZX, jXZ *mat.Dense, err error) {
	n := len(x)
	if n != len(marginals) {
		return nil, nil, types.NewShapeMismatchError("jacobian_xz: x length does not match marginal count", len(marginals), n)
	}
	jZX = mat.NewDense(n, n, nil)
	jXZ = mat.NewDense(n, n, nil)
	for i, m := range marginals {
		_, sigmaEq, err := NormalEquivalent(x[i], m)
		if err != nil {
			return nil, nil, err
		}
		jZX.Set(i, i, sigmaEq)
		jXZ.Set(i, i, 1/sigmaEq)
	}
	return jZX, jXZ, nil
}

// JacobianZY returns J_zy = L (the Z-to-Y transform from Decompose) and
// J_yz = L^-1, its inverse.
func JacobianZY(l *mat.Dense) (jZY, jYZ *mat.Dense, err error) {
	n, _ := l.Dims()
	jYZ = mat.NewDense(n, n, nil)
	if err := jYZ.Inverse(l); err != nil {
		return nil, nil, types.NewInvalidParameterError("jacobian_zy: Z-to-Y transform is singular", nil)
	}
	return l, jYZ, nil
}
