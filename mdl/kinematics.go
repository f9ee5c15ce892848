// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"github.com/cpmech/mpfem/gp"
	"github.com/cpmech/mpfem/tensor"
)

// DisplacementGradient returns H_ij = ∂u_i/∂x_j where u_1 is field first, u_2 is field first+1, ...
// Rows beyond ndim are zero (plane strain in 2D)
func DisplacementGradient(soln *gp.Solution, first, ndim int) (H tensor.RankTwo) {
	for i := 0; i < ndim; i++ {
		H[i] = soln.GradU(first + i)
	}
	return
}

// SmallStrain returns ε = ½(H + Hᵀ) and an error if ε has non-finite components
func SmallStrain(info *gp.Info, soln *gp.Solution, first int) (eps tensor.RankTwo, err error) {
	eps = DisplacementGradient(soln, first, info.Ndim).Sym()
	if !eps.IsFinite() {
		err = gp.NewComputeError(info, "strain", eps.Trace(), "strain tensor has non-finite components")
	}
	return
}

// DeformationGradient returns F = I + H and J = det(F); an error is returned if J ≤ 0
func DeformationGradient(info *gp.Info, soln *gp.Solution, first int) (F tensor.RankTwo, J float64, err error) {
	F = tensor.Identity2().Add(DisplacementGradient(soln, first, info.Ndim))
	if !F.IsFinite() {
		err = gp.NewComputeError(info, "F", F.Trace(), "deformation gradient has non-finite components")
		return
	}
	J = F.Det()
	if J <= 0 {
		err = gp.NewComputeError(info, "F", J, "determinant of deformation gradient must be positive")
	}
	return
}

// GreenLagrange returns E = ½(FᵀF - I)
func GreenLagrange(F tensor.RankTwo) tensor.RankTwo {
	return F.Transpose().Mul(F).Sub(tensor.Identity2()).Scale(0.5)
}

// KirchhoffTangent returns A_iJkL = ∂P_iJ/∂F_kL = δ_ik S_LJ + F_iM C_MJLQ F_kQ of the
// St.Venant-Kirchhoff model with P = F·S and S = C:E
func KirchhoffTangent(F, S tensor.RankTwo, C *tensor.RankFour) (A tensor.RankFour) {

	// G_iJLk = F_iM C_MJLQ F_kQ
	var FC tensor.RankFour // FC_iJLQ = F_iM C_MJLQ
	for i := 0; i < 3; i++ {
		for J := 0; J < 3; J++ {
			for L := 0; L < 3; L++ {
				for Q := 0; Q < 3; Q++ {
					for M := 0; M < 3; M++ {
						FC[i][J][L][Q] += F[i][M] * C[M][J][L][Q]
					}
				}
			}
		}
	}
	for i := 0; i < 3; i++ {
		for J := 0; J < 3; J++ {
			for k := 0; k < 3; k++ {
				for L := 0; L < 3; L++ {
					if i == k {
						A[i][J][k][L] = S[L][J]
					}
					for Q := 0; Q < 3; Q++ {
						A[i][J][k][L] += FC[i][J][L][Q] * F[k][Q]
					}
				}
			}
		}
	}
	return
}
