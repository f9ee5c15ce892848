// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chmech

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/mpfem/gp"
	"github.com/cpmech/mpfem/mdl"
	"github.com/cpmech/mpfem/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

var info3d = &gp.Info{Ndim: 3, Eid: 2, Ip: 1}

// state returns a 3D solution with concentration c and displacement gradient H
func state(c float64, H tensor.RankTwo) *gp.Solution {
	soln := gp.NewSolution(5)
	soln.Set(1, c, 0, tensor.Vector{})
	soln.Set(2, 0, 0, tensor.Vector{})
	for i := 0; i < 3; i++ {
		soln.Set(3+i, 0, 0, tensor.Vector(H[i]))
	}
	return soln
}

func newModel(tst *testing.T, large float64) mdl.Model {
	model, err := mdl.New("linear-elastic-ch")
	require.NoError(tst, err)
	require.NoError(tst, model.Init([]float64{100, 0.3, 1.0, 1e-3, 2.5, 0.05, large}))
	return model
}

func compute(tst *testing.T, model mdl.Model, c float64, x []float64) *mdl.Materials {
	var H tensor.RankTwo
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			H[i][j] = x[i*3+j]
		}
	}
	m, err := model.ComputeMaterialProperties(info3d, state(c, H), nil)
	if err != nil {
		tst.Fatalf("%v\n", err)
	}
	return m
}

// check compares the analytical derivatives at (c, H) with numerical ones
func check(tst *testing.T, model mdl.Model, c float64, H tensor.RankTwo, symmetrise bool) {
	x := make([]float64, 9)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			x[i*3+j] = H[i][j]
		}
	}
	m := compute(tst, model, c, x)
	settings := &fd.Settings{Formula: fd.Central, Step: 1e-6}

	// derivatives w.r.t c
	dμdc := fd.Derivative(func(cc float64) float64 { return compute(tst, model, cc, x).Scalar("mu") }, c, settings)
	chk.AnaNum(tst, "dmudc", 1e-6, m.Scalar("dmudc"), dμdc, chk.Verbose)
	μ := fd.Derivative(func(cc float64) float64 { return compute(tst, model, cc, x).Scalar("free_energy") }, c, settings)
	chk.AnaNum(tst, "mu", 1e-7, m.Scalar("mu"), μ, chk.Verbose)
	dσdc := m.Rank2("dstressdc")
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			n := fd.Derivative(func(cc float64) float64 {
				return compute(tst, model, cc, x).Rank2("stress")[i][j]
			}, c, settings)
			chk.AnaNum(tst, io.Sf("dstressdc[%d][%d]", i, j), 1e-7, dσdc[i][j], n, chk.Verbose)
		}
	}

	// derivatives w.r.t H
	jsettings := &fd.JacobianSettings{Formula: fd.Central, Step: 1e-6}
	num := mat.NewDense(10, 9, nil)
	fd.Jacobian(num, func(y, x []float64) {
		mm := compute(tst, model, c, x)
		σ := mm.Rank2("stress")
		for i := 0; i < 3; i++ {
			copy(y[i*3:i*3+3], σ[i][:])
		}
		y[9] = mm.Scalar("mu")
	}, x, jsettings)
	at := func(row, k, l int) float64 {
		if symmetrise {
			return 0.5 * (num.At(row, k*3+l) + num.At(row, l*3+k))
		}
		return num.At(row, k*3+l)
	}
	jac := m.Rank4("jacobian")
	dμdH := m.Rank2("dmudgradu")
	for k := 0; k < 3; k++ {
		for l := 0; l < 3; l++ {
			for i := 0; i < 3; i++ {
				for j := 0; j < 3; j++ {
					chk.AnaNum(tst, io.Sf("jac[%d][%d][%d][%d]", i, j, k, l), 1e-6, jac[i][j][k][l], at(i*3+j, k, l), chk.Verbose)
				}
			}
			chk.AnaNum(tst, io.Sf("dmudgradu[%d][%d]", k, l), 1e-7, dμdH[k][l], at(9, k, l), chk.Verbose)
		}
	}
}

func Test_ch01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ch01. free energy")

	model := newModel(tst, 0)
	o := model.(*LinElastCH)
	for _, c := range []float64{0.1, 0.5, 0.77} {
		_, df, d2f := o.FreeEnergy(c)
		f := func(x float64) float64 { v, _, _ := o.FreeEnergy(x); return v }
		g := func(x float64) float64 { _, v, _ := o.FreeEnergy(x); return v }
		settings := &fd.Settings{Formula: fd.Central, Step: 1e-6}
		chk.AnaNum(tst, io.Sf("f'(%g)", c), 1e-8, df, fd.Derivative(f, c, settings), chk.Verbose)
		chk.AnaNum(tst, io.Sf("f''(%g)", c), 1e-7, d2f, fd.Derivative(g, c, settings), chk.Verbose)
	}
	chk.Float64(tst, "I:C:I", 1e-12, o.ICI, 3*o.CI.At(1, 1))
	f, df, _ := o.FreeEnergy(0.5)
	chk.Float64(tst, "f(0.5)", 1e-15, f, 2*0.5*-0.6931471805599453+2.5*0.25)
	chk.Float64(tst, "f'(0.5)", 1e-15, df, 0)
}

func Test_ch02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ch02. small strain")

	model := newModel(tst, 0)
	o := model.(*LinElastCH)
	H := tensor.RankTwo{{0.01, 0.002, 0}, {0.004, -0.002, 0.001}, {0, 0.001, 0.003}}
	check(tst, model, 0.4, H, true)

	// free expansion is stress free
	c := 0.3
	eps := o.Omega * c
	m, err := model.ComputeMaterialProperties(info3d, state(c, tensor.RankTwo{{eps, 0, 0}, {0, eps, 0}, {0, 0, eps}}), nil)
	require.NoError(tst, err)
	require.NoError(tst, m.Require("test", model.Provides()))
	σ := m.Rank2("stress")
	chk.Float64(tst, "|σ|", 1e-15, σ.DoubleDot(σ), 0)
	_, df, _ := o.FreeEnergy(c)
	chk.Float64(tst, "mu", 1e-15, m.Scalar("mu"), df)
}

func Test_ch03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ch03. finite strain")

	model := newModel(tst, 1)
	H := tensor.RankTwo{{0.05, 0.02, -0.01}, {-0.03, 0.04, 0.02}, {0.01, 0.0, -0.02}}
	check(tst, model, 0.6, H, false)
}

func Test_ch04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ch04. errors")

	model := newModel(tst, 0)
	for _, c := range []float64{0, 1, -0.1, 1.2} {
		_, err := model.ComputeMaterialProperties(info3d, state(c, tensor.RankTwo{}), nil)
		var cerr *gp.ComputeError
		require.True(tst, errors.As(err, &cerr), "c = %g", c)
		chk.String(tst, cerr.Key, "c")
		chk.Int(tst, "eid", cerr.Eid, 2)
		chk.Int(tst, "ip", cerr.Ip, 1)
	}

	for _, params := range [][]float64{
		{100, 0.3, 1.0, 1e-3, 2.5},
		{100, 0.3, 0, 1e-3, 2.5, 0.05},
		{100, 0.3, 1.0, -1, 2.5, 0.05},
		{100, 0.6, 1.0, 1e-3, 2.5, 0.05},
	} {
		m, _ := mdl.New("linear-elastic-ch")
		err := m.Init(params)
		io.Pforan("%v\n", err)
		assert.True(tst, errors.Is(err, gp.ErrConfig), "params = %v", params)
	}
}
