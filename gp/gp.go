// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package gp holds the data exchanged at one Gauss point between the assembly driver,
// material models, element kernels and boundary conditions
package gp

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/mpfem/tensor"
)

// CalcType defines what a kernel must compute
type CalcType int

const (
	Residual CalcType = iota + 1 // local residual
	Jacobian                     // local consistent Jacobian
	Project                      // post-processing quantities
)

// String returns the name of the calculation type
func (o CalcType) String() string {
	switch o {
	case Residual:
		return "residual"
	case Jacobian:
		return "jacobian"
	case Project:
		return "projection"
	}
	return io.Sf("calc(%d)", int(o))
}

// Info holds read-only element data at the current Gauss point
type Info struct {
	Ndim   int     // space dimension: 1, 2 or 3
	T      float64 // current time
	Dt     float64 // time step
	Eid    int     // element id
	Ip     int     // index of Gauss point in element
	Volume float64 // element volume
	Coef   float64 // Gauss weight times det(J)
}

// Shape holds the shape function values of the current test/trial pair
type Shape struct {
	Test      float64       // test function value
	GradTest  tensor.Vector // test function gradient
	Trial     float64       // trial function value
	GradTrial tensor.Vector // trial function gradient
}

// Projection maps names of post-processing quantities to their values at the Gauss point
type Projection map[string]float64

// Ctans returns the time-integration coefficients [∂U/∂U, ∂V/∂U, ∂A/∂U] of the
// backward Euler scheme; with dt ≤ 0 the rate coefficient is zero
func Ctans(dt float64) (ctan [3]float64) {
	ctan[0] = 1
	if dt > 0 {
		ctan[1] = 1.0 / dt
	}
	return
}
