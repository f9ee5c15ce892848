// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import (
	"math/rand"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/mpfem/ele"
	"github.com/cpmech/mpfem/mdl"
)

// UnitCoords returns the vertex coordinates [ndim][nverts] of the unit element [0,1]^ndim
func UnitCoords(geoType string) ([][]float64, error) {
	switch geoType {
	case "lin2":
		return [][]float64{{0, 1}}, nil
	case "qua4":
		return [][]float64{
			{0, 1, 1, 0},
			{0, 0, 1, 1},
		}, nil
	case "hex8":
		return [][]float64{
			{0, 1, 1, 0, 0, 1, 1, 0},
			{0, 0, 1, 1, 0, 0, 1, 1},
			{0, 0, 0, 0, 1, 1, 1, 1},
		}, nil
	}
	return nil, chk.Err("unit coordinates of %q are not available", geoType)
}

// Build allocates the kernel and the model by name, initialises the model with params and
// returns a new element. Use x == nil for the unit element
func Build(id int, geoType string, x [][]float64, kernel, model string, params []float64) (*Element, error) {
	k, err := ele.New(kernel)
	if err != nil {
		return nil, err
	}
	m, err := mdl.New(model)
	if err != nil {
		return nil, err
	}
	if err = m.Init(params); err != nil {
		return nil, err
	}
	if x == nil {
		if x, err = UnitCoords(geoType); err != nil {
			return nil, err
		}
	}
	return NewElement(id, geoType, x, k, m)
}

// RandomState returns a state with U and Uold uniformly distributed in base[f] ± amp for each
// field f. base may be nil (zero means)
func RandomState(e *Element, rnd *rand.Rand, base []float64, amp, dt float64) *State {
	n := e.Ndofs()
	st := &State{U: make([]float64, n), Uold: make([]float64, n), T: dt, Dt: dt}
	for m := 0; m < e.Shp.Nverts; m++ {
		for f := 0; f < e.Nf; f++ {
			mean := 0.0
			if f < len(base) {
				mean = base[f]
			}
			st.U[m*e.Nf+f] = mean + amp*(2.0*rnd.Float64()-1.0)
			st.Uold[m*e.Nf+f] = mean + amp*(2.0*rnd.Float64()-1.0)
		}
	}
	return st
}
