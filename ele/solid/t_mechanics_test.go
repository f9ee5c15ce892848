// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"errors"
	"math"
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
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// state returns a Gauss point state with displacement gradient rows H[i][:ndim]
func state(tst *testing.T, ndim int, params []float64) (*gp.Info, *gp.Solution, *mdl.Materials) {
	H := [][]float64{{0.010, -0.003, 0.002}, {0.004, -0.006, 0.001}, {-0.002, 0.003, 0.005}}
	info := &gp.Info{Ndim: ndim, Eid: 1, Coef: 1}
	soln := gp.NewSolution(ndim)
	for i := 0; i < ndim; i++ {
		var g tensor.Vector
		copy(g[:ndim], H[i][:ndim])
		soln.Set(i+1, 0, 0, g)
	}
	model, err := mdl.New("linear-elastic")
	require.NoError(tst, err)
	require.NoError(tst, model.Init(params))
	mate, err := model.ComputeMaterialProperties(info, soln, nil)
	require.NoError(tst, err)
	return info, soln, mate
}

func Test_mechanics01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mechanics01. dimensional guard")

	kernel, err := ele.New("mechanics")
	require.NoError(tst, err)
	info, soln, mate := state(tst, 2, []float64{100, 0.3})
	shape := &gp.Shape{Test: 0.3, GradTest: tensor.Vector{0.5, -0.2, 0}, Trial: 0.6, GradTrial: tensor.Vector{-0.1, 0.4, 0}}

	// buffers sized for 3D with sentinels
	sentinel := 123.0
	R := gp.NewLocalR(3)
	R.Fill(sentinel)
	K := gp.NewLocalK(3)
	K.Fill(sentinel)
	ctan := gp.Ctans(0)
	require.NoError(tst, ele.Evaluate(kernel, gp.Residual, info, ctan, soln, shape, mate, nil, nil, nil, R))
	require.NoError(tst, ele.Evaluate(kernel, gp.Jacobian, info, ctan, soln, shape, mate, nil, nil, K, nil))
	chk.Float64(tst, "R3", 1e-17, R.At(3), sentinel)
	for j := 1; j <= 3; j++ {
		chk.Float64(tst, "K3j", 1e-17, K.At(3, j), sentinel)
		chk.Float64(tst, "Kj3", 1e-17, K.At(j, 3), sentinel)
	}

	// residual = σ·∇N
	σ := mate.Rank2("stress")
	chk.Float64(tst, "R1", 1e-15, R.At(1), σ[0][0]*0.5-σ[0][1]*0.2)
	chk.Float64(tst, "R2", 1e-15, R.At(2), σ[1][0]*0.5-σ[1][1]*0.2)

	// wrong buffer size
	err = ele.Evaluate(kernel, gp.Residual, info, ctan, soln, shape, mate, nil, nil, nil, gp.NewLocalR(4))
	assert.True(tst, errors.Is(err, gp.ErrConfig))
}

func Test_mechanics02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mechanics02. symmetry of elastic block")

	kernel, _ := ele.New("mechanics")
	for _, params := range [][]float64{{100, 0.3}, {100, 0.3, 1}} {
		info, soln, mate := state(tst, 3, params)
		a, b := tensor.Vector{0.5, -0.2, 0.7}, tensor.Vector{-0.1, 0.4, 0.3}
		Kab, Kba := gp.NewLocalK(3), gp.NewLocalK(3)
		ctan := gp.Ctans(0)
		require.NoError(tst, ele.Evaluate(kernel, gp.Jacobian, info, ctan, soln, &gp.Shape{GradTest: a, GradTrial: b}, mate, nil, nil, Kab, nil))
		require.NoError(tst, ele.Evaluate(kernel, gp.Jacobian, info, ctan, soln, &gp.Shape{GradTest: b, GradTrial: a}, mate, nil, nil, Kba, nil))
		for i := 1; i <= 3; i++ {
			for k := 1; k <= 3; k++ {
				chk.Float64(tst, io.Sf("K%d%d", i, k), 1e-13, Kab.At(i, k), Kba.At(k, i))
			}
		}
	}
}

func Test_mechanics03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mechanics03. projection and errors")

	kernel, _ := ele.New("mechanics")
	info, soln, mate := state(tst, 3, []float64{100, 0.3})
	shape := &gp.Shape{GradTest: tensor.Vector{1, 0, 0}}
	proj := make(gp.Projection)
	require.NoError(tst, ele.Evaluate(kernel, gp.Project, info, gp.Ctans(0), soln, shape, mate, nil, proj, nil, nil))
	σ := mate.Rank2("stress")
	chk.Float64(tst, "rx", 1e-15, proj["reacforce_x"], σ[0][0])
	chk.Float64(tst, "ry", 1e-15, proj["reacforce_y"], σ[1][0])
	chk.Float64(tst, "rz", 1e-15, proj["reacforce_z"], σ[2][0])
	chk.Float64(tst, "vm", 1e-15, proj["vonMises"], σ.VonMises())
	chk.Float64(tst, "Σσi", 1e-13, proj["sigma1"]+proj["sigma2"]+proj["sigma3"], σ.Trace())

	// unsupported calculation type
	err := kernel.Compute(gp.CalcType(9), info, gp.Ctans(0), soln, shape, mate, nil, nil, nil, nil)
	assert.True(tst, errors.Is(err, gp.ErrConfig))

	// missing projection map, missing keys and wrong solution
	err = ele.Evaluate(kernel, gp.Project, info, gp.Ctans(0), soln, shape, mate, nil, nil, nil, nil)
	assert.True(tst, errors.Is(err, gp.ErrConfig))
	err = ele.Evaluate(kernel, gp.Residual, info, gp.Ctans(0), soln, shape, mdl.NewMaterials(), nil, nil, nil, gp.NewLocalR(3))
	assert.True(tst, errors.Is(err, gp.ErrConfig))
	err = ele.Evaluate(kernel, gp.Residual, info, gp.Ctans(0), gp.NewSolution(2), shape, mate, nil, nil, nil, gp.NewLocalR(3))
	assert.True(tst, errors.Is(err, gp.ErrConfig))
	info2 := *info
	info2.Ndim = 4
	err = ele.Evaluate(kernel, gp.Residual, &info2, gp.Ctans(0), soln, shape, mate, nil, nil, nil, gp.NewLocalR(3))
	assert.True(tst, errors.Is(err, gp.ErrConfig))
	assert.Contains(tst, ele.Names(), "mechanics")
}

func Test_mechanics04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("mechanics04. finite strain projection")

	kernel, _ := ele.New("mechanics")
	model, err := mdl.New("linear-elastic")
	require.NoError(tst, err)
	require.NoError(tst, model.Init([]float64{100, 0.3, 1}))
	info := &gp.Info{Ndim: 2, Eid: 1, Coef: 1}
	soln := gp.NewSolution(2)
	soln.Set(1, 0, 0, tensor.Vector{0.3, 0.2, 0})
	soln.Set(2, 0, 0, tensor.Vector{-0.1, 0.25, 0})
	mate, err := model.ComputeMaterialProperties(info, soln, nil)
	require.NoError(tst, err)

	proj := make(gp.Projection)
	shape := &gp.Shape{GradTest: tensor.Vector{0.5, -0.2, 0}}
	require.NoError(tst, ele.Evaluate(kernel, gp.Project, info, gp.Ctans(0), soln, shape, mate, nil, proj, nil, nil))

	// F = I + ∇u; σ = P·Fᵀ/J
	F := tensor.Identity2().Add(tensor.RankTwo{{0.3, 0.2, 0}, {-0.1, 0.25, 0}, {0, 0, 0}})
	P := mate.Rank2("stress")
	σ := P.Mul(F.Transpose()).Scale(1.0 / F.Det())
	io.Pforan("vonMises: P = %v  σ = %v\n", P.VonMises(), σ.VonMises())
	chk.Float64(tst, "vm", 1e-12, proj["vonMises"], σ.VonMises())
	chk.Float64(tst, "vm(bag)", 1e-15, proj["vonMises"], mate.Scalar("vonMises"))
	assert.Greater(tst, math.Abs(P.VonMises()-σ.VonMises()), 1.0)
	chk.Float64(tst, "Σσi", 1e-12, proj["sigma1"]+proj["sigma2"]+proj["sigma3"], σ.Trace())
	λ, err := σ.Principal()
	require.NoError(tst, err)
	chk.Array(tst, "σi", 1e-12, []float64{proj["sigma1"], proj["sigma2"], proj["sigma3"]}, λ[:])

	// reactions use the nominal stress
	chk.Float64(tst, "rx", 1e-15, proj["reacforce_x"], P.IthRow(1).Dot(shape.GradTest))
	chk.Float64(tst, "ry", 1e-15, proj["reacforce_y"], P.IthRow(2).Dot(shape.GradTest))
}
