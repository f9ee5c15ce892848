// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package chmech implements the mixed Cahn-Hilliard kernel coupled with mechanics
package chmech

import (
	"github.com/cpmech/mpfem/ele"
	"github.com/cpmech/mpfem/gp"
	"github.com/cpmech/mpfem/mdl"
)

// MechCH implements the mixed form of the Cahn-Hilliard equation coupled with mechanics.
//  Fields: c = 1; μ = 2; u_x, u_y[, u_z] = 3, 4[, 5]
//  R(1)   = ċ N + M ∇μ·∇N
//  R(2)   = μ N - μ_b N - κ ∇c·∇N
//  R(2+i) = σ_i·∇N
//  where μ_b is the bulk chemical potential computed by the material
type MechCH struct{}

// add kernel to factory
func init() {
	ele.SetAllocator("mechanics-ch", func() ele.Kernel { return new(MechCH) })
}

// Name returns the name of this kernel
func (o *MechCH) Name() string { return "mechanics-ch" }

// Ndofs returns the number of fields per node
func (o *MechCH) Ndofs(ndim int) int { return 2 + ndim }

// Requires returns the material keys read by this kernel
func (o *MechCH) Requires() mdl.Keys {
	return mdl.Keys{
		mdl.ScalarKey("M"),
		mdl.ScalarKey("kappa"),
		mdl.ScalarKey("mu"),
		mdl.ScalarKey("dmudc"),
		mdl.Rank2Key("dmudgradu"),
		mdl.Rank2Key("stress"),
		mdl.Rank2Key("dstressdc"),
		mdl.Rank4Key("jacobian"),
		mdl.ScalarKey("free_energy"),
	}
}

// Compute computes the residual, the Jacobian or the projected quantities
func (o *MechCH) Compute(calc gp.CalcType, info *gp.Info, ctan [3]float64, soln *gp.Solution, shp *gp.Shape,
	mate, mateOld *mdl.Materials, proj gp.Projection, K *gp.LocalK, R *gp.LocalR) error {

	ndim := info.Ndim
	switch calc {
	case gp.Residual:
		mob, κ, μb := mate.Scalar("M"), mate.Scalar("kappa"), mate.Scalar("mu")
		R.Set(1, soln.V(1)*shp.Test+mob*soln.GradU(2).Dot(shp.GradTest))
		R.Set(2, soln.U(2)*shp.Test-μb*shp.Test-κ*soln.GradU(1).Dot(shp.GradTest))
		σ := mate.Rank2("stress")
		for i := 1; i <= ndim; i++ {
			R.Set(2+i, σ.IthRow(i).Dot(shp.GradTest))
		}

	case gp.Jacobian:
		mob, κ, dμdc := mate.Scalar("M"), mate.Scalar("kappa"), mate.Scalar("dmudc")
		N, M := shp.Test, shp.Trial
		gg := shp.GradTrial.Dot(shp.GradTest)

		// concentration and chemical potential
		K.Set(1, 1, M*N*ctan[1])
		K.Set(1, 2, mob*gg*ctan[0])
		K.Set(2, 1, (-dμdc*M*N-κ*gg)*ctan[0])
		K.Set(2, 2, M*N*ctan[0])

		// couplings and mechanics
		dμdH := mate.Rank2("dmudgradu")
		dσdc := mate.Rank2("dstressdc")
		A := mate.Rank4("jacobian")
		for k := 1; k <= ndim; k++ {
			K.Set(2, 2+k, -dμdH.IthRow(k).Dot(shp.GradTrial)*N*ctan[0])
			K.Set(2+k, 1, dσdc.IthRow(k).Dot(shp.GradTest)*M*ctan[0])
			for l := 1; l <= ndim; l++ {
				K.Set(2+k, 2+l, A.GetIKjlComponent(k, l, shp.GradTest, shp.GradTrial)*ctan[0])
			}
		}

	case gp.Project:
		ele.SetReactions(proj, mate.Rank2("stress"), shp.GradTest)
		proj["free_energy"] = mate.Scalar("free_energy")

	default:
		return ele.ErrCalcType(o.Name(), calc)
	}
	return nil
}

// check interface
var _ ele.Kernel = (*MechCH)(nil)
