// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gp

import (
	"gonum.org/v1/gonum/mat"
)

// LocalR is the caller-owned local residual of one test function. Entries are 1-based
type LocalR struct {
	v *mat.VecDense
}

// NewLocalR allocates a zeroed residual with n entries
func NewLocalR(n int) *LocalR {
	return &LocalR{v: mat.NewVecDense(n, nil)}
}

// Len returns the number of entries
func (o *LocalR) Len() int { return o.v.Len() }

// At returns entry i
func (o *LocalR) At(i int) float64 { return o.v.AtVec(i - 1) }

// Set sets entry i
func (o *LocalR) Set(i int, val float64) { o.v.SetVec(i-1, val) }

// Fill sets all entries to val
func (o *LocalR) Fill(val float64) {
	for i := 0; i < o.v.Len(); i++ {
		o.v.SetVec(i, val)
	}
}

// Raw returns the underlying gonum vector
func (o *LocalR) Raw() *mat.VecDense { return o.v }

// LocalK is the caller-owned local Jacobian of one test/trial pair. Entries are 1-based
type LocalK struct {
	m *mat.Dense
}

// NewLocalK allocates a zeroed n×n Jacobian
func NewLocalK(n int) *LocalK {
	return &LocalK{m: mat.NewDense(n, n, nil)}
}

// Len returns the number of rows (equal to the number of columns)
func (o *LocalK) Len() int {
	r, _ := o.m.Dims()
	return r
}

// At returns entry (i,j)
func (o *LocalK) At(i, j int) float64 { return o.m.At(i-1, j-1) }

// Set sets entry (i,j)
func (o *LocalK) Set(i, j int, val float64) { o.m.Set(i-1, j-1, val) }

// Fill sets all entries to val
func (o *LocalK) Fill(val float64) {
	n := o.Len()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			o.m.Set(i, j, val)
		}
	}
}

// Raw returns the underlying gonum matrix
func (o *LocalK) Raw() *mat.Dense { return o.m }
