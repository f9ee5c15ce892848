// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"errors"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/mpfem/gp"
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

// constant is a model used to exercise the registry
type constant struct{ val float64 }

func (o *constant) Name() string         { return "constant" }
func (o *constant) ParamNames() []string { return []string{"val"} }
func (o *constant) Provides() Keys       { return Keys{ScalarKey("val")} }
func (o *constant) Init(params []float64) error {
	if err := CheckParams(o.Name(), params, o.ParamNames(), 0); err != nil {
		return err
	}
	o.val = params[0]
	return nil
}
func (o *constant) InitMaterialProperties(info *gp.Info, soln *gp.Solution) (*Materials, error) {
	return o.ComputeMaterialProperties(info, soln, nil)
}
func (o *constant) ComputeMaterialProperties(info *gp.Info, soln *gp.Solution, old *Materials) (*Materials, error) {
	m := NewMaterials()
	m.SetScalar("val", o.val)
	return m, nil
}

func init() {
	SetAllocator("constant", func() Model { return new(constant) })
}

func Test_bag01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("bag01. typed keys")

	m := NewMaterials()
	m.SetScalar("H", 2.5)
	m.SetVector("flux", tensor.Vector{1, 0, 0})
	m.SetRank2("stress", tensor.Identity2())
	C := tensor.Isotropic(1, 1)
	m.SetRank4("jacobian", &C)

	chk.Float64(tst, "H", 1e-17, m.Scalar("H"), 2.5)
	chk.Float64(tst, "flux", 1e-17, m.Vector("flux").At(1), 1)
	chk.Float64(tst, "stress", 1e-17, m.Rank2("stress").Trace(), 3)
	jac := m.Rank4("jacobian")
	chk.Float64(tst, "jacobian", 1e-17, jac.At(1, 1, 1, 1), 3)

	assert.True(tst, m.Has(ScalarKey("H")))
	assert.False(tst, m.Has(Rank2Key("H")))
	assert.Panics(tst, func() { m.Scalar("stress") })
	assert.Panics(tst, func() { m.Rank4("missing") })

	require.NoError(tst, m.Require("test", Keys{ScalarKey("H"), Rank2Key("stress")}))
	err := m.Require("test", Keys{ScalarKey("H"), Rank2Key("strain"), ScalarKey("Gc")})
	require.Error(tst, err)
	assert.True(tst, errors.Is(err, gp.ErrConfig))
	assert.Contains(tst, err.Error(), "strain (rank-2)")
	assert.Contains(tst, err.Error(), "Gc (scalar)")
	io.Pforan("%v\n", err)

	keys := m.Keys()
	chk.Int(tst, "nkeys", len(keys), 4)
	chk.String(tst, keys[0].Name, "H")

	c := m.Clone()
	c.SetScalar("H", 0)
	chk.Float64(tst, "H after clone", 1e-17, m.Scalar("H"), 2.5)
}

func Test_registry01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("registry01")

	model, err := New("constant")
	require.NoError(tst, err)
	require.NoError(tst, model.Init([]float64{3}))
	bag, err := model.InitMaterialProperties(&gp.Info{Ndim: 2}, gp.NewSolution(1))
	require.NoError(tst, err)
	chk.Float64(tst, "val", 1e-17, bag.Scalar("val"), 3)

	err = model.Init([]float64{3, 4})
	assert.True(tst, errors.Is(err, gp.ErrConfig))

	_, err = New("unknown")
	assert.True(tst, errors.Is(err, gp.ErrConfig))
	assert.Contains(tst, Names(), "constant")
	assert.Panics(tst, func() { SetAllocator("constant", func() Model { return new(constant) }) })
}

func Test_params01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("params01")

	names := []string{"E", "nu", "large"}
	require.NoError(tst, CheckParams("m", []float64{1, 0.3}, names, 1))
	require.NoError(tst, CheckParams("m", []float64{1, 0.3, 1}, names, 1))
	assert.Error(tst, CheckParams("m", []float64{1}, names, 1))
	assert.Error(tst, CheckParams("m", []float64{1, 0.3, 1, 1}, names, 1))
	assert.Error(tst, CheckPositive("m", "E", 0))
	assert.Error(tst, CheckPoisson("m", 0.5))
	assert.NoError(tst, CheckPoisson("m", 0.0))

	on, err := Flag("m", "large", []float64{1, 0.3, 1}, 2)
	require.NoError(tst, err)
	assert.True(tst, on)
	on, err = Flag("m", "large", []float64{1, 0.3}, 2)
	require.NoError(tst, err)
	assert.False(tst, on)
	_, err = Flag("m", "large", []float64{1, 0.3, 0.5}, 2)
	assert.Error(tst, err)
}

func Test_kinematics01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("kinematics01. St.Venant-Kirchhoff tangent")

	info := &gp.Info{Ndim: 3}
	soln := gp.NewSolution(3)
	soln.Set(1, 0, 0, tensor.Vector{0.05, 0.02, -0.01})
	soln.Set(2, 0, 0, tensor.Vector{-0.03, 0.04, 0.02})
	soln.Set(3, 0, 0, tensor.Vector{0.01, 0.00, -0.02})

	F, J, err := DeformationGradient(info, soln, 1)
	require.NoError(tst, err)
	chk.Float64(tst, "J", 1e-15, J, F.Det())

	C := tensor.Isotropic(tensor.Lame(100, 0.3))
	piola := func(F tensor.RankTwo) tensor.RankTwo {
		return F.Mul(C.DoubleDot(GreenLagrange(F)))
	}
	S := C.DoubleDot(GreenLagrange(F))
	A := KirchhoffTangent(F, S, &C)

	// numerical ∂P/∂F
	x := make([]float64, 9)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			x[i*3+j] = F[i][j]
		}
	}
	num := mat.NewDense(9, 9, nil)
	fd.Jacobian(num, func(y, x []float64) {
		var G tensor.RankTwo
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				G[i][j] = x[i*3+j]
			}
		}
		P := piola(G)
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				y[i*3+j] = P[i][j]
			}
		}
	}, x, &fd.JacobianSettings{Formula: fd.Central, Step: 1e-6})
	for i := 0; i < 3; i++ {
		for J := 0; J < 3; J++ {
			for k := 0; k < 3; k++ {
				for L := 0; L < 3; L++ {
					chk.AnaNum(tst, io.Sf("A[%d][%d][%d][%d]", i, J, k, L), 1e-7, A[i][J][k][L], num.At(i*3+J, k*3+L), chk.Verbose)
				}
			}
		}
	}

	// inverted element
	soln.Set(1, 0, 0, tensor.Vector{-2, 0, 0})
	_, _, err = DeformationGradient(info, soln, 1)
	var cerr *gp.ComputeError
	require.True(tst, errors.As(err, &cerr))
	chk.String(tst, cerr.Key, "F")
}
