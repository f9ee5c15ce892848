// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fracture implements phase-field fracture materials
package fracture

import (
	"github.com/cpmech/mpfem/gp"
	"github.com/cpmech/mpfem/mdl"
	"github.com/cpmech/mpfem/tensor"
)

// split methods of the strain energy
const (
	NoSplit     = 0 // the whole energy drives damage
	VolDevSplit = 1 // Amor et al.: compression (negative volumetric strain) does not drive damage
)

// Miehe implements the Miehe et al. phase-field fracture material with small strains.
//  Fields: d = 1; u_x, u_y[, u_z] = 2, 3[, 4]
//  Degradation: g(d) = (1-d)² + k
//  History: H = max(H_old, ψ⁺); since max is non-smooth, dHdstrain = σ⁺ when ψ⁺ > H_old (loading)
//  and zero otherwise. The volumetric/deviatoric split uses the Heaviside of tr(ε) with H(0) = 1
type Miehe struct {

	// parameters
	E     float64 // Young's modulus
	Nu    float64 // Poisson's coefficient
	Gc    float64 // critical energy release rate
	L     float64 // length scale
	Visco float64 // viscosity
	K     float64 // residual stiffness
	Split int     // split method

	// derived
	Lambda float64         // Lamé's λ
	Mu     float64         // shear modulus
	Kbulk  float64         // bulk modulus
	C      tensor.RankFour // elastic modulus
}

// add model to factory
func init() {
	mdl.SetAllocator("miehe-fracture", func() mdl.Model { return new(Miehe) })
}

// Name returns the name of this model
func (o *Miehe) Name() string { return "miehe-fracture" }

// ParamNames returns the names of positional parameters
func (o *Miehe) ParamNames() []string {
	return []string{"E", "nu", "Gc", "L", "viscosity", "k", "split"}
}

// Init initialises model
func (o *Miehe) Init(params []float64) (err error) {
	name := o.Name()
	if err = mdl.CheckParams(name, params, o.ParamNames(), 0); err != nil {
		return
	}
	o.E, o.Nu, o.Gc, o.L, o.Visco, o.K = params[0], params[1], params[2], params[3], params[4], params[5]
	for i, v := range []float64{o.E, o.Gc, o.L} {
		if err = mdl.CheckPositive(name, []string{"E", "Gc", "L"}[i], v); err != nil {
			return
		}
	}
	if err = mdl.CheckPoisson(name, o.Nu); err != nil {
		return
	}
	if o.Visco < 0 || o.K < 0 {
		return gp.NewConfigError(name, "viscosity and k must be non-negative; %g and %g are invalid", o.Visco, o.K)
	}
	switch params[6] {
	case NoSplit, VolDevSplit:
		o.Split = int(params[6])
	default:
		return gp.NewConfigError(name, "split must be %d (none) or %d (volumetric/deviatoric); %g is invalid", NoSplit, VolDevSplit, params[6])
	}
	o.Lambda, o.Mu = tensor.Lame(o.E, o.Nu)
	o.Kbulk = o.Lambda + 2.0*o.Mu/3.0
	o.C = tensor.Isotropic(o.Lambda, o.Mu)
	return
}

// Provides returns the keys written by this model
func (o *Miehe) Provides() mdl.Keys {
	return mdl.Keys{
		mdl.ScalarKey("viscosity"),
		mdl.ScalarKey("Gc"),
		mdl.ScalarKey("L"),
		mdl.ScalarKey("H"),
		mdl.ScalarKey("psipos"),
		mdl.Rank2Key("stress"),
		mdl.Rank2Key("dstressdD"),
		mdl.Rank2Key("dHdstrain"),
		mdl.Rank4Key("jacobian"),
		mdl.Rank2Key("strain"),
	}
}

// InitMaterialProperties returns the bag with zero history
func (o *Miehe) InitMaterialProperties(info *gp.Info, soln *gp.Solution) (*mdl.Materials, error) {
	old := mdl.NewMaterials()
	old.SetScalar("H", 0)
	return o.ComputeMaterialProperties(info, soln, old)
}

// ComputeMaterialProperties computes the degraded stress, the history and their derivatives
func (o *Miehe) ComputeMaterialProperties(info *gp.Info, soln *gp.Solution, old *mdl.Materials) (*mdl.Materials, error) {
	if old == nil {
		return nil, gp.NewConfigError(o.Name(), "the bag of the last converged state is required")
	}
	if err := old.Require(o.Name(), mdl.Keys{mdl.ScalarKey("H")}); err != nil {
		return nil, err
	}
	ε, err := mdl.SmallStrain(info, soln, 2)
	if err != nil {
		return nil, err
	}
	d := soln.U(1)
	ψpos, σpos, σneg, Cpos, Cneg := o.split(ε)
	g := (1.0-d)*(1.0-d) + o.K

	m := mdl.NewMaterials()
	m.SetScalar("viscosity", o.Visco)
	m.SetScalar("Gc", o.Gc)
	m.SetScalar("L", o.L)
	m.SetScalar("psipos", ψpos)
	m.SetRank2("strain", ε)
	m.SetRank2("stress", σpos.Scale(g).Add(σneg))
	m.SetRank2("dstressdD", σpos.Scale(-2.0*(1.0-d)))
	gCpos := Cpos.Scale(g)
	jac := gCpos.Add(&Cneg)
	m.SetRank4("jacobian", &jac)

	// irreversibility
	Hold := old.Scalar("H")
	if ψpos > Hold {
		m.SetScalar("H", ψpos)
		m.SetRank2("dHdstrain", σpos)
	} else {
		m.SetScalar("H", Hold)
		m.SetRank2("dHdstrain", tensor.RankTwo{})
	}
	return m, nil
}

// split returns the tensile energy ψ⁺, the stress parts σ⁺, σ⁻ and moduli parts C⁺, C⁻
func (o *Miehe) split(ε tensor.RankTwo) (ψpos float64, σpos, σneg tensor.RankTwo, Cpos, Cneg tensor.RankFour) {
	if o.Split == NoSplit {
		σpos = o.C.DoubleDot(ε)
		ψpos = 0.5 * σpos.DoubleDot(ε)
		Cpos = o.C
		return
	}
	I := tensor.Identity2()
	II := tensor.Otimes(I, I)
	tr := ε.Trace()
	e := ε.Dev()
	ψpos = o.Mu * e.DoubleDot(e)
	σpos = e.Scale(2.0 * o.Mu)
	Isym := tensor.IdentitySym4()
	third := II.Scale(-1.0 / 3.0)
	dev := Isym.Add(&third)
	Cpos = dev.Scale(2.0 * o.Mu)
	vol := II.Scale(o.Kbulk)
	if tr >= 0 {
		ψpos += 0.5 * o.Kbulk * tr * tr
		σpos = σpos.Add(I.Scale(o.Kbulk * tr))
		Cpos = Cpos.Add(&vol)
		return
	}
	σneg = I.Scale(o.Kbulk * tr)
	Cneg = vol
	return
}
