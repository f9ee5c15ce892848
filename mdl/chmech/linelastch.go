// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package chmech implements materials coupling Cahn-Hilliard diffusion with mechanics
package chmech

import (
	"math"

	"github.com/cpmech/mpfem/gp"
	"github.com/cpmech/mpfem/mdl"
	"github.com/cpmech/mpfem/tensor"
)

// LinElastCH implements a linear elastic material with concentration-driven eigenstrain.
//  Fields: c = 1; μ = 2; u_x, u_y[, u_z] = 3, 4[, 5]
//  Free energy (regular solution): f(c) = c ln c + (1-c) ln(1-c) + χ c (1-c)
//  Eigenstrain: Ω c I
//  Small strain: σ = C:(ε - Ω c I)
//  Finite strain: S = C:(E - Ω c I), P = F·S (St.Venant-Kirchhoff)
//  Bulk chemical potential: μ_b = f'(c) + ∂ψ_el/∂c = f'(c) - Ω tr(σ or S)
type LinElastCH struct {

	// parameters
	E     float64 // Young's modulus
	Nu    float64 // Poisson's coefficient
	M     float64 // mobility
	Kappa float64 // gradient energy coefficient
	Chi   float64 // mixing (Flory-Huggins) parameter
	Omega float64 // expansion coefficient
	Large bool    // finite strain

	// derived
	C   tensor.RankFour // elastic modulus
	CI  tensor.RankTwo  // C:I
	ICI float64         // I:C:I
}

// add model to factory
func init() {
	mdl.SetAllocator("linear-elastic-ch", func() mdl.Model { return new(LinElastCH) })
}

// Name returns the name of this model
func (o *LinElastCH) Name() string { return "linear-elastic-ch" }

// ParamNames returns the names of positional parameters
func (o *LinElastCH) ParamNames() []string {
	return []string{"E", "nu", "M", "kappa", "chi", "omega", "large"}
}

// Init initialises model
func (o *LinElastCH) Init(params []float64) (err error) {
	name := o.Name()
	if err = mdl.CheckParams(name, params, o.ParamNames(), 1); err != nil {
		return
	}
	o.E, o.Nu, o.M, o.Kappa, o.Chi, o.Omega = params[0], params[1], params[2], params[3], params[4], params[5]
	for i, v := range []float64{o.E, o.M, o.Kappa} {
		if err = mdl.CheckPositive(name, []string{"E", "M", "kappa"}[i], v); err != nil {
			return
		}
	}
	if err = mdl.CheckPoisson(name, o.Nu); err != nil {
		return
	}
	if o.Large, err = mdl.Flag(name, "large", params, 6); err != nil {
		return
	}
	o.C = tensor.Isotropic(tensor.Lame(o.E, o.Nu))
	o.CI = o.C.DoubleDot(tensor.Identity2())
	o.ICI = o.CI.Trace()
	return
}

// Provides returns the keys written by this model
func (o *LinElastCH) Provides() mdl.Keys {
	return mdl.Keys{
		mdl.ScalarKey("M"),
		mdl.ScalarKey("kappa"),
		mdl.ScalarKey("mu"),
		mdl.ScalarKey("dmudc"),
		mdl.Rank2Key("dmudgradu"),
		mdl.Rank2Key("stress"),
		mdl.Rank2Key("dstressdc"),
		mdl.Rank4Key("jacobian"),
		mdl.Rank2Key("strain"),
		mdl.ScalarKey("free_energy"),
	}
}

// FreeEnergy returns f(c), f'(c) and f''(c). c must be in (0,1)
func (o *LinElastCH) FreeEnergy(c float64) (f, df, d2f float64) {
	f = c*math.Log(c) + (1.0-c)*math.Log(1.0-c) + o.Chi*c*(1.0-c)
	df = math.Log(c/(1.0-c)) + o.Chi*(1.0-2.0*c)
	d2f = 1.0/c + 1.0/(1.0-c) - 2.0*o.Chi
	return
}

// InitMaterialProperties returns the bag at the initial state. This model has no history
func (o *LinElastCH) InitMaterialProperties(info *gp.Info, soln *gp.Solution) (*mdl.Materials, error) {
	return o.ComputeMaterialProperties(info, soln, nil)
}

// ComputeMaterialProperties computes stress, chemical potential and their cross derivatives
func (o *LinElastCH) ComputeMaterialProperties(info *gp.Info, soln *gp.Solution, old *mdl.Materials) (*mdl.Materials, error) {

	// chemical part
	c := soln.U(1)
	if !(c > 0 && c < 1) {
		return nil, gp.NewComputeError(info, "c", c, "concentration must be in (0,1) for the logarithmic free energy")
	}
	f, df, d2f := o.FreeEnergy(c)
	I := tensor.Identity2()
	eigen := I.Scale(o.Omega * c)

	// mechanical part
	var σ, ε, dσdc, dμdH tensor.RankTwo
	var jac tensor.RankFour
	var μel, ψel float64
	if o.Large {
		F, _, err := mdl.DeformationGradient(info, soln, 3)
		if err != nil {
			return nil, err
		}
		ε = mdl.GreenLagrange(F)
		S := o.C.DoubleDot(ε.Sub(eigen))
		σ = F.Mul(S)
		jac = mdl.KirchhoffTangent(F, S, &o.C)
		dσdc = F.Mul(o.CI).Scale(-o.Omega)
		μel = -o.Omega * S.Trace()
		dμdH = F.Mul(o.CI).Scale(-o.Omega)
		ψel = 0.5 * S.DoubleDot(ε.Sub(eigen))
	} else {
		var err error
		if ε, err = mdl.SmallStrain(info, soln, 3); err != nil {
			return nil, err
		}
		σ = o.C.DoubleDot(ε.Sub(eigen))
		jac = o.C
		dσdc = o.CI.Scale(-o.Omega)
		μel = -o.Omega * σ.Trace()
		dμdH = o.CI.Scale(-o.Omega)
		ψel = 0.5 * σ.DoubleDot(ε.Sub(eigen))
	}

	m := mdl.NewMaterials()
	m.SetScalar("M", o.M)
	m.SetScalar("kappa", o.Kappa)
	m.SetScalar("mu", df+μel)
	m.SetScalar("dmudc", d2f+o.Omega*o.Omega*o.ICI)
	m.SetRank2("dmudgradu", dμdH)
	m.SetRank2("stress", σ)
	m.SetRank2("dstressdc", dσdc)
	m.SetRank4("jacobian", &jac)
	m.SetRank2("strain", ε)
	m.SetScalar("free_energy", f+ψel)
	return m, nil
}
