// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import (
	"math"

	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// CheckResult holds the comparison between analytical and numerical Jacobians
type CheckResult struct {
	Kana   *mat.Dense // analytical Jacobian
	Knum   *mat.Dense // numerical (central differences) Jacobian
	MaxAbs float64    // max |Kana - Knum|
	MaxRel float64    // MaxAbs / max(Scale, 1)
	Scale  float64    // max |Kana|
	Row    int        // row of MaxAbs
	Col    int        // column of MaxAbs
}

// Ok tells whether the maximum relative difference is below tol. The difference is scaled by
// max|Kana| floored at 1; i.e. Jacobians with entries below 1 are compared in absolute terms
func (o *CheckResult) Ok(tol float64) bool {
	return o.MaxRel <= tol
}

// String returns a summary of the comparison
func (o *CheckResult) String() string {
	return io.Sf("max|Kana-Knum| = %.3e (rel = %.3e) at (%d,%d): ana = %g, num = %g",
		o.MaxAbs, o.MaxRel, o.Row, o.Col, o.Kana.At(o.Row, o.Col), o.Knum.At(o.Row, o.Col))
}

// CheckJacobian compares the analytical Jacobian of e at st with the central-difference
// derivative of its residual. Uold, time and time step are kept fixed. Use step ≤ 0 for 1e-6
func CheckJacobian(e *Element, st *State, step float64) (res *CheckResult, err error) {

	// analytical
	res = new(CheckResult)
	if res.Kana, err = e.Jacobian(st); err != nil {
		return nil, err
	}

	// numerical
	if step <= 0 {
		step = 1e-6
	}
	n := e.Ndofs()
	res.Knum = mat.NewDense(n, n, nil)
	tmp := &State{U: make([]float64, n), Uold: st.Uold, T: st.T, Dt: st.Dt}
	var ferr error
	fd.Jacobian(res.Knum, func(y, x []float64) {
		if ferr != nil {
			return
		}
		copy(tmp.U, x)
		Re, err := e.Residual(tmp)
		if err != nil {
			ferr = err
			return
		}
		copy(y, Re)
	}, st.U, &fd.JacobianSettings{Formula: fd.Central, Step: step})
	if ferr != nil {
		return nil, ferr
	}

	res.compare()
	return
}

// compare computes the differences between Kana and Knum
func (o *CheckResult) compare() {
	var diff mat.Dense
	diff.Sub(o.Kana, o.Knum)
	o.MaxAbs, o.Row, o.Col = 0, 0, 0
	r, c := diff.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if d := math.Abs(diff.At(i, j)); d > o.MaxAbs {
				o.MaxAbs, o.Row, o.Col = d, i, j
			}
		}
	}
	o.Scale = floats.Norm(o.Kana.RawMatrix().Data, math.Inf(1))
	o.MaxRel = o.MaxAbs / math.Max(o.Scale, 1)
}
