// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fracture

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/mpfem/ele"
	"github.com/cpmech/mpfem/gp"
	"github.com/cpmech/mpfem/mdl"
	"github.com/cpmech/mpfem/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/cpmech/mpfem/mdl/elastic"
	_ "github.com/cpmech/mpfem/mdl/fracture"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// state returns a Gauss point state with damage d, rate dotd and a fixed displacement gradient
func state(tst *testing.T, ndim int, d, dotd float64) (*gp.Info, *gp.Solution, *mdl.Materials, *mdl.Materials) {
	H := [][]float64{{0.010, -0.003, 0.002}, {0.004, 0.006, 0.001}, {-0.002, 0.003, 0.005}}
	info := &gp.Info{Ndim: ndim, Eid: 1, Coef: 1, Dt: 0.1}
	soln := gp.NewSolution(1 + ndim)
	soln.Set(1, d, dotd, tensor.Vector{0.2, -0.1, 0})
	for i := 0; i < ndim; i++ {
		var g tensor.Vector
		copy(g[:ndim], H[i][:ndim])
		soln.Set(2+i, 0, 0, g)
	}
	model, err := mdl.New("miehe-fracture")
	require.NoError(tst, err)
	require.NoError(tst, model.Init([]float64{100, 0.3, 1, 0.1, 0.5, 1e-6, 0}))
	old := mdl.NewMaterials()
	old.SetScalar("H", 0)
	mate, err := model.ComputeMaterialProperties(info, soln, old)
	require.NoError(tst, err)
	return info, soln, mate, old
}

func Test_miehe01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("miehe01. residual and dimensional guard")

	kernel, err := ele.New("miehe-fracture")
	require.NoError(tst, err)
	chk.Int(tst, "ndofs(2)", kernel.Ndofs(2), 3)
	info, soln, mate, old := state(tst, 2, 0.3, 0.5)
	shape := &gp.Shape{Test: 0.3, GradTest: tensor.Vector{0.5, -0.2, 0}, Trial: 0.6, GradTrial: tensor.Vector{-0.1, 0.4, 0}}

	sentinel := -7.0
	R := gp.NewLocalR(4)
	R.Fill(sentinel)
	K := gp.NewLocalK(4)
	K.Fill(sentinel)
	ctan := gp.Ctans(info.Dt)
	require.NoError(tst, ele.Evaluate(kernel, gp.Residual, info, ctan, soln, shape, mate, old, nil, nil, R))
	require.NoError(tst, ele.Evaluate(kernel, gp.Jacobian, info, ctan, soln, shape, mate, old, nil, K, nil))
	chk.Float64(tst, "R4", 1e-17, R.At(4), sentinel)
	for j := 1; j <= 4; j++ {
		chk.Float64(tst, "K4j", 1e-17, K.At(4, j), sentinel)
		chk.Float64(tst, "Kj4", 1e-17, K.At(j, 4), sentinel)
	}

	// phase-field residual
	H := mate.Scalar("H")
	Rd := 0.5*0.5*0.3 + 2.0*(0.3-1.0)*H*0.3 + (1.0/0.1)*0.3*0.3 + 1.0*0.1*(0.2*0.5+0.1*0.2)
	chk.Float64(tst, "Rd", 1e-15, R.At(1), Rd)

	// Kdd
	Kdd := 0.5*0.6*0.3*ctan[1] + 2.0*0.6*H*0.3 + (1.0/0.1)*0.6*0.3 + 1.0*0.1*(-0.1*0.5-0.4*0.2)
	chk.Float64(tst, "Kdd", 1e-14, K.At(1, 1), Kdd)
}

func Test_miehe02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("miehe02. symmetry of elastic block")

	kernel, _ := ele.New("miehe-fracture")
	info, soln, mate, old := state(tst, 3, 0.4, 0)
	a, b := tensor.Vector{0.5, -0.2, 0.7}, tensor.Vector{-0.1, 0.4, 0.3}
	Kab, Kba := gp.NewLocalK(4), gp.NewLocalK(4)
	ctan := gp.Ctans(info.Dt)
	require.NoError(tst, ele.Evaluate(kernel, gp.Jacobian, info, ctan, soln, &gp.Shape{GradTest: a, GradTrial: b}, mate, old, nil, Kab, nil))
	require.NoError(tst, ele.Evaluate(kernel, gp.Jacobian, info, ctan, soln, &gp.Shape{GradTest: b, GradTrial: a}, mate, old, nil, Kba, nil))
	for i := 2; i <= 4; i++ {
		for k := 2; k <= 4; k++ {
			chk.Float64(tst, io.Sf("K%d%d", i, k), 1e-13, Kab.At(i, k), Kba.At(k, i))
		}
	}
}

func Test_miehe03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("miehe03. projection and validation")

	kernel, _ := ele.New("miehe-fracture")
	info, soln, mate, old := state(tst, 3, 0.4, 0)
	proj := make(gp.Projection)
	require.NoError(tst, ele.Evaluate(kernel, gp.Project, info, gp.Ctans(0), soln, &gp.Shape{GradTest: tensor.Vector{0, 1, 0}}, mate, old, proj, nil, nil))
	chk.Float64(tst, "hist", 1e-15, proj["hist"], mate.Scalar("H"))
	chk.Float64(tst, "ry", 1e-15, proj["reacforce_y"], mate.Rank2("stress")[1][1])

	// models that do not provide the history
	elastic, err := mdl.New("linear-elastic")
	require.NoError(tst, err)
	err = ele.Validate(kernel, elastic)
	assert.True(tst, errors.Is(err, gp.ErrConfig))
	assert.Contains(tst, err.Error(), "H (scalar)")
	fracture, _ := mdl.New("miehe-fracture")
	assert.NoError(tst, ele.Validate(kernel, fracture))

	// unsupported calculation type
	err = kernel.Compute(gp.CalcType(0), info, gp.Ctans(0), soln, nil, mate, old, nil, nil, nil)
	assert.True(tst, errors.Is(err, gp.ErrConfig))
}
