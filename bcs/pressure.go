// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bcs

import (
	"github.com/cpmech/gosl/utl"
	"github.com/cpmech/mpfem/gp"
	"github.com/cpmech/mpfem/tensor"
)

// Pressure implements a dead pressure p = bcvalue acting against the outward normal; i.e. the
// traction is t = -p n. Targeted fields are the displacements u_x, u_y[, u_z], which are the
// last ndim fields of every kernel, in ascending order.
//  R(j) = p n_j N_test; K = 0
type Pressure struct {
	nfields int
}

// add condition to factory
func init() {
	SetAllocator("pressure", func() BC { return new(Pressure) })
}

// Name returns the name of this condition
func (o *Pressure) Name() string { return "pressure" }

// ParamNames returns the names of positional parameters
func (o *Pressure) ParamNames() []string { return nil }

// Nfields returns the number of targeted fields
func (o *Pressure) Nfields() int { return o.nfields }

// Init initialises condition
func (o *Pressure) Init(params []float64, dofs []int, ndofs, ndim int) error {
	if err := checkParams(o.Name(), params, o.ParamNames()); err != nil {
		return err
	}
	if err := checkDofs(o.Name(), dofs, ndofs); err != nil {
		return err
	}
	if len(dofs) != ndim {
		return gp.NewConfigError(o.Name(), "all %d displacement fields must be targeted; %d were given", ndim, len(dofs))
	}
	first := ndofs - ndim + 1
	for j, dof := range dofs {
		if dof != first+j {
			return gp.NewConfigError(o.Name(), "displacement fields must be %v (the last %d fields in ascending order); %v is invalid", utl.IntRange2(first, ndofs+1), ndim, dofs)
		}
	}
	o.nfields = len(dofs)
	return nil
}

// ComputeBCValue computes the residual or the Jacobian
func (o *Pressure) ComputeBCValue(calc gp.CalcType, bcvalue float64, info *gp.Info, soln *gp.Solution, normal tensor.Vector,
	shp *gp.Shape, ctan [3]float64, K *gp.LocalK, R *gp.LocalR) error {

	switch calc {
	case gp.Residual:
		for j := 1; j <= o.nfields; j++ {
			R.Set(j, bcvalue*normal.At(j)*shp.Test)
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

