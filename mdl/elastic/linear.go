// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package elastic implements linear elasticity for small and finite strains
package elastic

import (
	"github.com/cpmech/mpfem/gp"
	"github.com/cpmech/mpfem/mdl"
	"github.com/cpmech/mpfem/tensor"
)

// Linear implements isotropic linear elasticity.
//  Small strain: σ = C:ε
//  Finite strain (St.Venant-Kirchhoff): S = C:E, P = F·S; the "stress" slot holds P and the
//  "jacobian" slot holds ∂P/∂F; "cauchy" holds σ = P·Fᵀ/J
//  Fields: u_x, u_y[, u_z] = 1, 2[, 3]
type Linear struct {

	// parameters
	E     float64 // Young's modulus
	Nu    float64 // Poisson's coefficient
	Large bool    // finite strain

	// derived
	Lambda float64         // Lamé's λ
	Mu     float64         // shear modulus
	C      tensor.RankFour // elastic modulus
}

// add model to factory
func init() {
	mdl.SetAllocator("linear-elastic", func() mdl.Model { return new(Linear) })
}

// Name returns the name of this model
func (o *Linear) Name() string { return "linear-elastic" }

// ParamNames returns the names of positional parameters
func (o *Linear) ParamNames() []string { return []string{"E", "nu", "large"} }

// Init initialises model
func (o *Linear) Init(params []float64) (err error) {
	if err = mdl.CheckParams(o.Name(), params, o.ParamNames(), 1); err != nil {
		return
	}
	o.E, o.Nu = params[0], params[1]
	if err = mdl.CheckPositive(o.Name(), "E", o.E); err != nil {
		return
	}
	if err = mdl.CheckPoisson(o.Name(), o.Nu); err != nil {
		return
	}
	if o.Large, err = mdl.Flag(o.Name(), "large", params, 2); err != nil {
		return
	}
	o.Lambda, o.Mu = tensor.Lame(o.E, o.Nu)
	o.C = tensor.Isotropic(o.Lambda, o.Mu)
	return
}

// Provides returns the keys written by this model
func (o *Linear) Provides() mdl.Keys {
	return mdl.Keys{
		mdl.Rank2Key("stress"),
		mdl.Rank4Key("jacobian"),
		mdl.Rank2Key("strain"),
		mdl.Rank2Key("cauchy"),
		mdl.ScalarKey("vonMises"),
	}
}

// InitMaterialProperties returns the bag at the undeformed state
func (o *Linear) InitMaterialProperties(info *gp.Info, soln *gp.Solution) (*mdl.Materials, error) {
	return o.ComputeMaterialProperties(info, soln, nil)
}

// ComputeMaterialProperties computes stress and tangent. This model has no history; old is ignored
func (o *Linear) ComputeMaterialProperties(info *gp.Info, soln *gp.Solution, old *mdl.Materials) (m *mdl.Materials, err error) {
	m = mdl.NewMaterials()
	if !o.Large {
		var ε tensor.RankTwo
		if ε, err = mdl.SmallStrain(info, soln, 1); err != nil {
			return nil, err
		}
		σ := o.C.DoubleDot(ε)
		m.SetRank2("stress", σ)
		m.SetRank2("strain", ε)
		m.SetRank2("cauchy", σ)
		m.SetRank4("jacobian", &o.C)
		m.SetScalar("vonMises", σ.VonMises())
		return
	}
	F, J, err := mdl.DeformationGradient(info, soln, 1)
	if err != nil {
		return nil, err
	}
	E := mdl.GreenLagrange(F)
	S := o.C.DoubleDot(E)
	P := F.Mul(S)
	A := mdl.KirchhoffTangent(F, S, &o.C)
	cauchy := P.Mul(F.Transpose()).Scale(1.0 / J)
	m.SetRank2("stress", P)
	m.SetRank2("strain", E)
	m.SetRank2("cauchy", cauchy)
	m.SetRank4("jacobian", &A)
	m.SetScalar("vonMises", cauchy.VonMises())
	return
}
