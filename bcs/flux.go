// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcs

import (
	"github.com/cpmech/mpfem/gp"
	"github.com/cpmech/mpfem/tensor"
)

// Flux implements a prescribed normal flux J = -∇u·n = bcvalue on all targeted fields.
//  R(j) = J N_test; the flux does not depend on the solution, so K = 0
type Flux struct {
	nfields int
}

// add condition to factory
func init() {
	SetAllocator("flux", func() BC { return new(Flux) })
}

// Name returns the name of this condition
func (o *Flux) Name() string { return "flux" }

// ParamNames returns the names of positional parameters
func (o *Flux) ParamNames() []string { return nil }

// Nfields returns the number of targeted fields
func (o *Flux) Nfields() int { return o.nfields }

// Init initialises condition
func (o *Flux) Init(params []float64, dofs []int, ndofs, ndim int) error {
	if err := checkParams(o.Name(), params, o.ParamNames()); err != nil {
		return err
	}
	if err := checkDofs(o.Name(), dofs, ndofs); err != nil {
		return err
	}
	o.nfields = len(dofs)
	return nil
}

// ComputeBCValue computes the residual or the Jacobian
func (o *Flux) ComputeBCValue(calc gp.CalcType, bcvalue float64, info *gp.Info, soln *gp.Solution, normal tensor.Vector,
	shp *gp.Shape, ctan [3]float64, K *gp.LocalK, R *gp.LocalR) error {

	switch calc {
	case gp.Residual:
		for j := 1; j <= o.nfields; j++ {
			R.Set(j, bcvalue*shp.Test)
		}
	case gp.Jacobian:
		for j := 1; j <= o.nfields; j++ {
			for l := 1; l <= o.nfields; l++ {
				K.Set(j, l, 0)
			}
		}
	default:
		return errCalcType(o.Name(), calc)
	}
	return nil
}
