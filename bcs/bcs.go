// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package bcs implements boundary integrators (natural boundary conditions) acting on element faces
package bcs

import (
	"sort"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/mpfem/gp"
	"github.com/cpmech/mpfem/tensor"
)

// BC defines boundary integrators evaluated at face Gauss points.
//  Note: R and K are sized to the number of targeted fields; soln holds only the targeted
//        fields, in the order given to Init, with 1-based indices
type BC interface {
	Name() string         // name of condition; e.g. "flux"
	ParamNames() []string // names of positional parameters
	Nfields() int         // number of targeted fields (after Init)

	// Init validates parameters and the targeted fields (1-based) of an element with ndofs fields per node
	Init(params []float64, dofs []int, ndofs, ndim int) error

	// ComputeBCValue computes the residual or the Jacobian of one test/trial pair; normal is the unit outward normal
	ComputeBCValue(calc gp.CalcType, bcvalue float64, info *gp.Info, soln *gp.Solution, normal tensor.Vector,
		shp *gp.Shape, ctan [3]float64, K *gp.LocalK, R *gp.LocalR) error
}

// allocators holds all available boundary conditions
var allocators = make(map[string]func() BC)

// SetAllocator registers a boundary condition allocator. It panics on duplicated names
func SetAllocator(name string, allocator func() BC) {
	if _, ok := allocators[name]; ok {
		chk.Panic("boundary condition named %q is already registered", name)
	}
	allocators[name] = allocator
}

// New allocates a new (uninitialised) boundary condition
func New(name string) (BC, error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, gp.NewConfigError(name, "boundary condition is not available in [%s]", strings.Join(Names(), ", "))
	}
	return allocator(), nil
}

// Names returns the sorted names of registered boundary conditions
func Names() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	sort.Strings(names)
	return
}

// Evaluate checks buffer sizes and calls bc.ComputeBCValue. On error, the caller must discard R and K
func Evaluate(bc BC, calc gp.CalcType, bcvalue float64, info *gp.Info, soln *gp.Solution, normal tensor.Vector,
	shp *gp.Shape, ctan [3]float64, K *gp.LocalK, R *gp.LocalR) error {

	name, n := bc.Name(), bc.Nfields()
	if n == 0 {
		return gp.NewConfigError(name, "boundary condition must be initialised first")
	}
	if soln.Nfields() != n {
		return gp.NewConfigError(name, "solution has %d field slots but %d fields are targeted", soln.Nfields(), n)
	}
	switch calc {
	case gp.Residual:
		if R == nil || R.Len() != n {
			return gp.NewConfigError(name, "residual buffer must have %d entries", n)
		}
	case gp.Jacobian:
		if K == nil || K.Len() != n {
			return gp.NewConfigError(name, "jacobian buffer must be %d×%d", n, n)
		}
	}
	return bc.ComputeBCValue(calc, bcvalue, info, soln, normal, shp, ctan, K, R)
}

// checkDofs checks that dofs are unique and within 1..ndofs
func checkDofs(name string, dofs []int, ndofs int) error {
	if len(dofs) == 0 {
		return gp.NewConfigError(name, "at least one field must be targeted")
	}
	seen := make(map[int]bool)
	for _, d := range dofs {
		if d < 1 || d > ndofs {
			return gp.NewConfigError(name, "targeted field %d is out of range [1, %d]", d, ndofs)
		}
		if seen[d] {
			return gp.NewConfigError(name, "targeted field %d is repeated", d)
		}
		seen[d] = true
	}
	return nil
}

// checkParams checks the number of parameters
func checkParams(name string, params []float64, names []string) error {
	if len(params) != len(names) {
		return gp.NewConfigError(name, "%d parameters %v are required; %d were given", len(names), names, len(params))
	}
	return nil
}

func errCalcType(name string, calc gp.CalcType) error {
	return gp.NewConfigError(name, "unsupported calculation type %v", calc)
}
