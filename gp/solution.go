// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gp

import (
	"github.com/cpmech/mpfem/tensor"
)

// Solution holds the interpolated fields at the current Gauss point.
//  Note: fields are addressed with 1-based indices: U(1) is the first field
type Solution struct {
	u, v       []float64       // current values and rates
	grad       []tensor.Vector // current gradients
	uold, vold []float64       // values and rates at the beginning of the step
	gradold    []tensor.Vector // gradients at the beginning of the step
}

// NewSolution allocates a solution with nfields slots
func NewSolution(nfields int) *Solution {
	return &Solution{
		u:       make([]float64, nfields),
		v:       make([]float64, nfields),
		grad:    make([]tensor.Vector, nfields),
		uold:    make([]float64, nfields),
		vold:    make([]float64, nfields),
		gradold: make([]tensor.Vector, nfields),
	}
}

// Nfields returns the number of populated field slots
func (o *Solution) Nfields() int { return len(o.u) }

// U returns the current value of field i
func (o *Solution) U(i int) float64 { return o.u[i-1] }

// V returns the current rate of field i
func (o *Solution) V(i int) float64 { return o.v[i-1] }

// GradU returns the current gradient of field i
func (o *Solution) GradU(i int) tensor.Vector { return o.grad[i-1] }

// Uold returns the lagged value of field i
func (o *Solution) Uold(i int) float64 { return o.uold[i-1] }

// Vold returns the lagged rate of field i
func (o *Solution) Vold(i int) float64 { return o.vold[i-1] }

// GradUold returns the lagged gradient of field i
func (o *Solution) GradUold(i int) tensor.Vector { return o.gradold[i-1] }

// Set sets the current value, rate and gradient of field i
func (o *Solution) Set(i int, u, v float64, grad tensor.Vector) {
	o.u[i-1], o.v[i-1], o.grad[i-1] = u, v, grad
}

// SetOld sets the lagged value, rate and gradient of field i
func (o *Solution) SetOld(i int, u, v float64, grad tensor.Vector) {
	o.uold[i-1], o.vold[i-1], o.gradold[i-1] = u, v, grad
}

// Check checks that the solution has ndofs slots and that gradient components beyond ndim vanish
func (o *Solution) Check(owner string, ndofs, ndim int) error {
	if len(o.u) != ndofs {
		return NewConfigError(owner, "solution has %d field slots but %d are required", len(o.u), ndofs)
	}
	for i := 0; i < ndofs; i++ {
		for j := ndim; j < 3; j++ {
			if o.grad[i][j] != 0 || o.gradold[i][j] != 0 {
				return NewConfigError(owner, "gradient of field %d has a non-zero component %d beyond ndim=%d", i+1, j+1, ndim)
			}
		}
	}
	return nil
}
