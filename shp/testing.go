// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/diff/fd"
)

// CheckShape checks that shape functions evaluate to 1.0 @ nodes
func CheckShape(tst *testing.T, shape *Shape, tol float64, verbose bool) {

	// loop over all vertices
	errS := 0.0
	r := []float64{0, 0, 0}
	for n := 0; n < shape.Nverts; n++ {

		// natural coordinates @ vertex
		for i := 0; i < shape.Gndim; i++ {
			r[i] = shape.NatCoords[i][n]
		}

		// compute function
		shape.Func(shape.S, shape.DSdR, r, false, -1)

		// check
		if verbose {
			io.Pf("S = %v\n", shape.S)
		}
		for m := 0; m < shape.Nverts; m++ {
			if n == m {
				errS += math.Abs(shape.S[m] - 1.0)
			} else {
				errS += math.Abs(shape.S[m])
			}
		}
	}

	// error
	if errS > tol {
		tst.Errorf("%s failed with err = %g\n", shape.Type, errS)
		return
	}
}

// CheckShapeFace checks that the face shape functions evaluate to 1.0 @ face nodes and that
// face nodes sit on the face, i.e. the volume shape functions of other nodes vanish there
func CheckShapeFace(tst *testing.T, shape *Shape, tol float64, verbose bool) {

	// skip 1D shapes
	nfaces := len(shape.FaceLocalVerts)
	if nfaces == 0 {
		return
	}
	face := factory[shape.FaceType]

	// loop over face vertices
	errS := 0.0
	r := []float64{0, 0, 0}
	for k := 0; k < nfaces; k++ {
		for j, n := range shape.FaceLocalVerts[k] {

			// face shape functions @ face vertex
			for i := 0; i < face.Gndim; i++ {
				r[i] = face.NatCoords[i][j]
			}
			shape.FaceFunc(shape.Sf, shape.DSfdRf, r, false, k)
			if verbose {
				io.Pforan("Sf = %v\n", shape.Sf)
			}
			for l := range shape.FaceLocalVerts[k] {
				if l == j {
					errS += math.Abs(shape.Sf[l] - 1.0)
				} else {
					errS += math.Abs(shape.Sf[l])
				}
			}

			// volume shape functions @ vertex
			for i := 0; i < shape.Gndim; i++ {
				r[i] = shape.NatCoords[i][n]
			}
			shape.Func(shape.S, shape.DSdR, r, false, -1)
			errS += math.Abs(shape.S[n] - 1.0)
		}
	}

	// error
	if verbose {
		io.Pforan("%g\n", errS)
	}
	if errS > tol {
		tst.Errorf("%s failed with err = %g\n", shape.Type, errS)
		return
	}
}

// CheckDSdR checks dSdR derivatives of shape structures
func CheckDSdR(tst *testing.T, shape *Shape, r []float64, tol float64, verbose bool) {

	// auxiliary
	r_tmp := make([]float64, len(r))
	S_tmp := make([]float64, shape.Nverts)

	// analytical
	shape.Func(shape.S, shape.DSdR, r, true, -1)

	// numerical
	for n := 0; n < shape.Nverts; n++ {
		for i := 0; i < shape.Gndim; i++ {
			dSndRi := fd.Derivative(func(t float64) float64 {
				copy(r_tmp, r)
				r_tmp[i] = t
				shape.Func(S_tmp, nil, r_tmp, false, -1)
				return S_tmp[n]
			}, r[i], &fd.Settings{Formula: fd.Central, Step: 1e-1})
			if verbose {
				io.Pf("  dS%ddR%d @ %5.2f = %v (num: %v)\n", n, i, r, shape.DSdR[n][i], dSndRi)
			}
			if math.Abs(shape.DSdR[n][i]-dSndRi) > tol {
				tst.Errorf("%s: dS%ddR%d failed with err = %g\n", shape.Type, n, i, math.Abs(shape.DSdR[n][i]-dSndRi))
				return
			}
		}
	}
}

// CheckDSdx checks G=dSdx derivatives of shape structures
func CheckDSdx(tst *testing.T, shape *Shape, xmat [][]float64, x []float64, tol float64, verbose bool) {

	// find r corresponding to x
	r, err := shape.NaturalCoords(xmat, x)
	if err != nil {
		tst.Errorf("NaturalCoords failed:\n%v", err)
		return
	}

	// analytical
	err = shape.CalcAtIp(xmat, r, true)
	if err != nil {
		tst.Errorf("CalcAtIp failed:\n%v", err)
		return
	}
	G := make([][]float64, shape.Nverts)
	for m := range G {
		G[m] = append([]float64{}, shape.G[m]...)
	}

	// numerical
	x_tmp := make([]float64, len(x))
	for n := 0; n < shape.Nverts; n++ {
		for i := 0; i < shape.Gndim; i++ {
			dSnDxi := fd.Derivative(func(t float64) float64 {
				copy(x_tmp, x)
				x_tmp[i] = t
				rt, err := shape.NaturalCoords(xmat, x_tmp)
				if err != nil {
					tst.Errorf("NaturalCoords failed:\n%v", err)
					return 0
				}
				if err := shape.CalcAtIp(xmat, rt, false); err != nil {
					tst.Errorf("CalcAtIp failed:\n%v", err)
					return 0
				}
				return shape.S[n]
			}, x[i], &fd.Settings{Formula: fd.Central, Step: 1e-3})
			if verbose {
				io.Pf("  dS%dDx%d @ %5.2f = %v (num: %v)\n", n, i, x, G[n][i], dSnDxi)
			}
			if math.Abs(G[n][i]-dSnDxi) > tol {
				tst.Errorf("%s: dS%dDx%d failed with err = %g\n", shape.Type, n, i, math.Abs(G[n][i]-dSnDxi))
				return
			}
		}
	}
}
