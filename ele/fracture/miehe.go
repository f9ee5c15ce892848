// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fracture implements the phase-field fracture kernel coupled with mechanics
package fracture

import (
	"github.com/cpmech/mpfem/ele"
	"github.com/cpmech/mpfem/gp"
	"github.com/cpmech/mpfem/mdl"
)

// Miehe implements the Miehe et al. phase-field fracture kernel.
//  Fields: d = 1; u_x, u_y[, u_z] = 2, 3[, 4]
//  R(1)    = η ḋ N + 2(d-1) H N + (Gc/L) d N + Gc L ∇d·∇N
//  R(1+i)  = σ_i·∇N
//  The d-u coupling is given by dHdstrain and the u-d coupling by dstressdD
type Miehe struct{}

// add kernel to factory
func init() {
	ele.SetAllocator("miehe-fracture", func() ele.Kernel { return new(Miehe) })
}

// Name returns the name of this kernel
func (o *Miehe) Name() string { return "miehe-fracture" }

// Ndofs returns the number of fields per node
func (o *Miehe) Ndofs(ndim int) int { return 1 + ndim }

// Requires returns the material keys read by this kernel
func (o *Miehe) Requires() mdl.Keys {
	return mdl.Keys{
		mdl.ScalarKey("viscosity"),
		mdl.ScalarKey("Gc"),
		mdl.ScalarKey("L"),
		mdl.ScalarKey("H"),
		mdl.Rank2Key("stress"),
		mdl.Rank2Key("dstressdD"),
		mdl.Rank2Key("dHdstrain"),
		mdl.Rank4Key("jacobian"),
	}
}

// Compute computes the residual, the Jacobian or the projected quantities
func (o *Miehe) Compute(calc gp.CalcType, info *gp.Info, ctan [3]float64, soln *gp.Solution, shp *gp.Shape,
	mate, mateOld *mdl.Materials, proj gp.Projection, K *gp.LocalK, R *gp.LocalR) error {

	ndim := info.Ndim
	switch calc {
	case gp.Residual:
		η, Gc, L, H := mate.Scalar("viscosity"), mate.Scalar("Gc"), mate.Scalar("L"), mate.Scalar("H")
		d := soln.U(1)
		R.Set(1, η*soln.V(1)*shp.Test+
			2.0*(d-1.0)*H*shp.Test+
			(Gc/L)*d*shp.Test+
			Gc*L*soln.GradU(1).Dot(shp.GradTest))
		σ := mate.Rank2("stress")
		for i := 1; i <= ndim; i++ {
			R.Set(1+i, σ.IthRow(i).Dot(shp.GradTest))
		}

	case gp.Jacobian:
		η, Gc, L, H := mate.Scalar("viscosity"), mate.Scalar("Gc"), mate.Scalar("L"), mate.Scalar("H")
		d := soln.U(1)
		N, M := shp.Test, shp.Trial

		// K_dd
		K.Set(1, 1, η*M*N*ctan[1]+
			(2.0*M*H*N+(Gc/L)*M*N+Gc*L*shp.GradTrial.Dot(shp.GradTest))*ctan[0])

		// K_du
		dHdε := mate.Rank2("dHdstrain")
		for k := 1; k <= ndim; k++ {
			val := 0.0
			for i := 1; i <= ndim; i++ {
				val += 0.5 * (dHdε.At(k, i) + dHdε.At(i, k)) * shp.GradTrial.At(i)
			}
			K.Set(1, 1+k, 2.0*(d-1.0)*val*N*ctan[0])
		}

		// K_ud and K_uu
		dσdd := mate.Rank2("dstressdD")
		A := mate.Rank4("jacobian")
		for i := 1; i <= ndim; i++ {
			K.Set(1+i, 1, dσdd.IthRow(i).Dot(shp.GradTest)*M*ctan[0])
			for k := 1; k <= ndim; k++ {
				K.Set(1+i, 1+k, A.GetIKjlComponent(i, k, shp.GradTest, shp.GradTrial)*ctan[0])
			}
		}

	case gp.Project:
		ele.SetReactions(proj, mate.Rank2("stress"), shp.GradTest)
		proj["hist"] = mate.Scalar("H")

	default:
		return ele.ErrCalcType(o.Name(), calc)
	}
	return nil
}

// check interface
var _ ele.Kernel = (*Miehe)(nil)
