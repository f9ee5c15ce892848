// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package shp implements shape structures/routines
package shp

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"gonum.org/v1/gonum/mat"
)

// constants
const MINDET = 1.0e-14 // minimum determinant allowed for dxdR

// Ipoint holds the natural coordinates and the weight of an integration point: {r, s, t, w}
type Ipoint []float64

// ShpFunc is the shape functions callback function
type ShpFunc func(S []float64, dSdR [][]float64, r []float64, derivs bool, idxface int)

// Shape holds geometry data
type Shape struct {

	// geometry
	Type           string      // name; e.g. "qua4"
	Func           ShpFunc     // shape/derivs function callback function
	FaceFunc       ShpFunc     // face shape/derivs function callback function
	FaceType       string      // geometry of face; e.g. "qua4" => "lin2"
	Gndim          int         // geometry of shape; e.g. "lin2" => gnd == 1 (even in 3D simulations)
	Nverts         int         // number of vertices in cell; e.g. "qua4" => 4
	FaceNvertsMax  int         // max number of vertices on face
	FaceLocalVerts [][]int     // face local vertices [nfaces][...]. ordered such that the normal points outwards
	NatCoords      [][]float64 // natural coordinates [gndim][nverts]

	// scratchpad: volume
	S    []float64   // [nverts] shape functions
	G    [][]float64 // [nverts][gndim] G == dSdx. derivative of shape function
	J    float64     // Jacobian: determinant of dxdr
	DSdR [][]float64 // [nverts][gndim] derivatives of S w.r.t natural coordinates
	DxdR [][]float64 // [gndim][gndim] derivatives of real coordinates w.r.t natural coordinates
	DRdx [][]float64 // [gndim][gndim] dRdx == inverse(dxdR)

	// scratchpad: line
	Jvec3d []float64 // Jacobian: norm of dxdr for line elements (size==3)

	// scratchpad: face
	Sf     []float64   // [FaceNvertsMax] shape functions values
	Fnvec  []float64   // [gndim] face normal vector multiplied by Jf
	DSfdRf [][]float64 // [FaceNvertsMax][gndim-1] derivatives of Sf w.r.t natural coordinates
	DxfdRf [][]float64 // [gndim][gndim-1] derivatives of real coordinates w.r.t natural coordinates
}

// factory holds all Shapes available
var factory = make(map[string]*Shape)

// New returns a new Shape with its own scratchpad. Shapes must not be shared among goroutines
func New(geoType string) (*Shape, error) {
	s, ok := factory[geoType]
	if !ok {
		return nil, chk.Err("cannot find shape type = %q", geoType)
	}
	return s.GetCopy(), nil
}

// Types returns the sorted names of available shapes
func Types() (types []string) {
	for name := range factory {
		types = append(types, name)
	}
	sort.Strings(types)
	return
}

// GetCopy returns a new copy of this shape structure
func (o Shape) GetCopy() *Shape {
	p := &Shape{
		Type:          o.Type,
		Func:          o.Func,
		FaceFunc:      o.FaceFunc,
		FaceType:      o.FaceType,
		Gndim:         o.Gndim,
		Nverts:        o.Nverts,
		FaceNvertsMax: o.FaceNvertsMax,
	}
	p.FaceLocalVerts = make([][]int, len(o.FaceLocalVerts))
	for i, verts := range o.FaceLocalVerts {
		p.FaceLocalVerts[i] = append([]int{}, verts...)
	}
	p.NatCoords = utl.Alloc(len(o.NatCoords), o.Nverts)
	for i := range o.NatCoords {
		copy(p.NatCoords[i], o.NatCoords[i])
	}
	p.init_scratchpad()
	return p
}

// Nfaces returns the number of faces
func (o *Shape) Nfaces() int { return len(o.FaceLocalVerts) }

// IpRealCoords returns the real coordinates (y) of an integration point
func (o *Shape) IpRealCoords(x [][]float64, ip Ipoint) (y []float64) {
	ndim := len(x)
	y = make([]float64, ndim)
	o.Func(o.S, o.DSdR, ip, false, -1)
	for i := 0; i < ndim; i++ {
		for m := 0; m < o.Nverts; m++ {
			y[i] += o.S[m] * x[i][m]
		}
	}
	return
}

// CalcAtIp calculates volume data such as S and G at natural coordinate r
//  Input:
//   x[ndim][nverts] -- coordinates matrix of solid element
//   ip              -- integration point
//  Output:
//   S, DSdR, DxdR, DRdx, G, and J
func (o *Shape) CalcAtIp(x [][]float64, ip Ipoint, derivs bool) (err error) {

	// S and dSdR
	o.Func(o.S, o.DSdR, ip, derivs, -1)
	if !derivs {
		return
	}

	if o.Gndim == 1 {
		// calculate Jvec3d == dxdR
		for i := 0; i < len(x); i++ {
			o.Jvec3d[i] = 0.0
			for m := 0; m < o.Nverts; m++ {
				o.Jvec3d[i] += x[i][m] * o.DSdR[m][0] // dxdR := x * dSdR
			}
		}

		// calculate J = norm of Jvec3d
		o.J = math.Sqrt(o.Jvec3d[0]*o.Jvec3d[0] + o.Jvec3d[1]*o.Jvec3d[1] + o.Jvec3d[2]*o.Jvec3d[2])
		if o.J < MINDET {
			return chk.Err("length of line element is too small. J = %g", o.J)
		}

		// calculate G
		for m := 0; m < o.Nverts; m++ {
			o.G[m][0] = o.DSdR[m][0] / o.J
		}
		return
	}

	// check
	if len(x) != o.Gndim {
		return chk.Err("coordinates matrix of %q must have %d rows; %d is invalid", o.Type, o.Gndim, len(x))
	}

	// dxdR := sum_n x * dSdR   =>  dx_i/dR_j := sum_n x^n_i * dS^n/dR_j
	for i := 0; i < len(x); i++ {
		for j := 0; j < o.Gndim; j++ {
			o.DxdR[i][j] = 0.0
			for n := 0; n < o.Nverts; n++ {
				o.DxdR[i][j] += x[i][n] * o.DSdR[n][j]
			}
		}
	}

	// dRdx := inv(dxdR)
	o.J, err = matInv(o.DRdx, o.DxdR, MINDET)
	if err != nil {
		return
	}

	// G == dSdx := dSdR * dRdx  =>  dS^m/dR_i := sum_i dS^m/dR_i * dR_i/dx_j
	for m := 0; m < o.Nverts; m++ {
		for j := 0; j < o.Gndim; j++ {
			o.G[m][j] = 0.0
			for i := 0; i < o.Gndim; i++ {
				o.G[m][j] += o.DSdR[m][i] * o.DRdx[i][j]
			}
		}
	}
	return
}

// CalcAtFaceIp calculates face data such as Sf and Fnvec
//  Input:
//   x[ndim][nverts] -- coordinates matrix of solid element
//   ipf             -- local/natural coordinates of face
//   idxface         -- local index of face
//  Output:
//   Sf and Fnvec
func (o *Shape) CalcAtFaceIp(x [][]float64, ipf Ipoint, idxface int) (err error) {

	// skip 1D elements
	if o.Gndim == 1 {
		return
	}
	if idxface < 0 || idxface >= len(o.FaceLocalVerts) {
		return chk.Err("face index %d of %q is out of range [0, %d)", idxface, o.Type, len(o.FaceLocalVerts))
	}

	// Sf and dSfdR
	o.FaceFunc(o.Sf, o.DSfdRf, ipf, true, idxface)

	// dxfdRf := sum_n x * dSfdRf   =>  dxf_i/dRf_j := sum_n xf^n_i * dSf^n/dRf_j
	for i := 0; i < len(x); i++ {
		for j := 0; j < o.Gndim-1; j++ {
			o.DxfdRf[i][j] = 0.0
			for k, n := range o.FaceLocalVerts[idxface] {
				o.DxfdRf[i][j] += x[i][n] * o.DSfdRf[k][j]
			}
		}
	}

	// face normal vector
	if o.Gndim == 2 {
		o.Fnvec[0] = o.DxfdRf[1][0]
		o.Fnvec[1] = -o.DxfdRf[0][0]
		return
	}
	o.Fnvec[0] = o.DxfdRf[1][0]*o.DxfdRf[2][1] - o.DxfdRf[2][0]*o.DxfdRf[1][1]
	o.Fnvec[1] = o.DxfdRf[2][0]*o.DxfdRf[0][1] - o.DxfdRf[0][0]*o.DxfdRf[2][1]
	o.Fnvec[2] = o.DxfdRf[0][0]*o.DxfdRf[1][1] - o.DxfdRf[1][0]*o.DxfdRf[0][1]
	return
}

// init_scratchpad initialise volume data (scratchpad)
func (o *Shape) init_scratchpad() {

	// volume data
	o.S = make([]float64, o.Nverts)
	o.DSdR = utl.Alloc(o.Nverts, o.Gndim)
	o.DxdR = utl.Alloc(o.Gndim, o.Gndim)
	o.DRdx = utl.Alloc(o.Gndim, o.Gndim)
	o.G = utl.Alloc(o.Nverts, o.Gndim)

	// face data
	if o.Gndim > 1 {
		o.Sf = make([]float64, o.FaceNvertsMax)
		o.DSfdRf = utl.Alloc(o.FaceNvertsMax, o.Gndim-1)
		o.DxfdRf = utl.Alloc(o.Gndim, o.Gndim-1)
		o.Fnvec = make([]float64, o.Gndim)
	}

	// lin data
	if o.Gndim == 1 {
		o.Jvec3d = make([]float64, 3)
	}
}

// matInv computes the inverse ai of the small square matrix a and returns det(a)
func matInv(ai, a [][]float64, tol float64) (det float64, err error) {
	n := len(a)
	A := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			A.Set(i, j, a[i][j])
		}
	}
	det = mat.Det(A)
	if math.Abs(det) < tol {
		return det, chk.Err("inverse of matrix failed: |det(a)| = %g < %g", math.Abs(det), tol)
	}
	var Ai mat.Dense
	if err = Ai.Inverse(A); err != nil {
		return det, chk.Err("inverse of matrix failed: %v", err)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			ai[i][j] = Ai.At(i, j)
		}
	}
	return
}
