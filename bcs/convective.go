// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcs

import (
	"github.com/cpmech/mpfem/gp"
	"github.com/cpmech/mpfem/mdl"
	"github.com/cpmech/mpfem/tensor"
)

// Convective implements a Robin condition J = s h (u - u∞) on all targeted fields, where the
// multiplier s = bcvalue allows time-dependent transfer coefficients.
//  R(j)   = s h (u_j - u∞) N_test
//  K(j,j) = s h N_trial N_test ctan[0]
type Convective struct {
	H       float64 // transfer coefficient
	Uinf    float64 // ambient value
	nfields int
}

// add condition to factory
func init() {
	SetAllocator("convective", func() BC { return new(Convective) })
}

// Name returns the name of this condition
func (o *Convective) Name() string { return "convective" }

// ParamNames returns the names of positional parameters
func (o *Convective) ParamNames() []string { return []string{"h", "uinf"} }

// Nfields returns the number of targeted fields
func (o *Convective) Nfields() int { return o.nfields }

// Init initialises condition
func (o *Convective) Init(params []float64, dofs []int, ndofs, ndim int) error {
	if err := checkParams(o.Name(), params, o.ParamNames()); err != nil {
		return err
	}
	if err := mdl.CheckPositive(o.Name(), "h", params[0]); err != nil {
		return err
	}
	if err := checkDofs(o.Name(), dofs, ndofs); err != nil {
		return err
	}
	o.H, o.Uinf = params[0], params[1]
	o.nfields = len(dofs)
	return nil
}

// ComputeBCValue computes the residual or the Jacobian
func (o *Convective) ComputeBCValue(calc gp.CalcType, bcvalue float64, info *gp.Info, soln *gp.Solution, normal tensor.Vector,
	shp *gp.Shape, ctan [3]float64, K *gp.LocalK, R *gp.LocalR) error {

	h := bcvalue * o.H
	switch calc {
	case gp.Residual:
		for j := 1; j <= o.nfields; j++ {
			R.Set(j, h*(soln.U(j)-o.Uinf)*shp.Test)
		}
	case gp.Jacobian:
		for j := 1; j <= o.nfields; j++ {
			K.Set(j, j, h*shp.Trial*shp.Test*ctan[0])
		}
	default:
		return errCalcType(o.Name(), calc)
	}
	return nil
}
