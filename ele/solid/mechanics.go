// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package solid implements the solid mechanics kernel
package solid

import (
	"github.com/cpmech/mpfem/ele"
	"github.com/cpmech/mpfem/gp"
	"github.com/cpmech/mpfem/mdl"
)

// Mechanics implements the quasi-static balance of linear momentum.
//  Fields: u_x, u_y[, u_z] = 1, 2[, 3]
//  R(i)   = σ_i·∇N_test
//  K(i,k) = Σ_jl A_ijkl ∇N_test_j ∇N_trial_l
type Mechanics struct{}

// add kernel to factory
func init() {
	ele.SetAllocator("mechanics", func() ele.Kernel { return new(Mechanics) })
}

// Name returns the name of this kernel
func (o *Mechanics) Name() string { return "mechanics" }

// Ndofs returns the number of fields per node
func (o *Mechanics) Ndofs(ndim int) int { return ndim }

// Requires returns the material keys read by this kernel
func (o *Mechanics) Requires() mdl.Keys {
	return mdl.Keys{mdl.Rank2Key("stress"), mdl.Rank4Key("jacobian")}
}

// Compute computes the residual, the Jacobian or the projected quantities
func (o *Mechanics) Compute(calc gp.CalcType, info *gp.Info, ctan [3]float64, soln *gp.Solution, shp *gp.Shape,
	mate, mateOld *mdl.Materials, proj gp.Projection, K *gp.LocalK, R *gp.LocalR) error {

	ndim := info.Ndim
	switch calc {
	case gp.Residual:
		σ := mate.Rank2("stress")
		for i := 1; i <= ndim; i++ {
			R.Set(i, σ.IthRow(i).Dot(shp.GradTest))
		}
	case gp.Jacobian:
		A := mate.Rank4("jacobian")
		for i := 1; i <= ndim; i++ {
			for k := 1; k <= ndim; k++ {
				K.Set(i, k, A.GetIKjlComponent(i, k, shp.GradTest, shp.GradTrial)*ctan[0])
			}
		}
	case gp.Project:
		σ := mate.Rank2("stress")
		ele.SetReactions(proj, σ, shp.GradTest)

		// invariants use the Cauchy stress when the model distinguishes it from "stress"
		if mate.Has(mdl.Rank2Key("cauchy")) {
			σ = mate.Rank2("cauchy")
		}
		if mate.Has(mdl.ScalarKey("vonMises")) {
			proj["vonMises"] = mate.Scalar("vonMises")
		} else {
			proj["vonMises"] = σ.VonMises()
		}
		λ, err := σ.Principal()
		if err != nil {
			return gp.NewComputeError(info, "stress", σ.Trace(), "%v", err)
		}
		proj["sigma1"], proj["sigma2"], proj["sigma3"] = λ[0], λ[1], λ[2]
	default:
		return ele.ErrCalcType(o.Name(), calc)
	}
	return nil
}

// check interface
var _ ele.Kernel = (*Mechanics)(nil)
