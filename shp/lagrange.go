// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

// natural coordinates of vertices
var (
	lin2nat = [][]float64{
		{-1, 1},
	}
	qua4nat = [][]float64{
		{-1, 1, 1, -1},
		{-1, -1, 1, 1},
	}
	hex8nat = [][]float64{
		{-1, 1, 1, -1, -1, 1, 1, -1},
		{-1, -1, 1, 1, -1, -1, 1, 1},
		{-1, -1, -1, -1, 1, 1, 1, 1},
	}
)

// register shapes
func init() {

	// lin2
	lin2 := &Shape{
		Type:      "lin2",
		Func:      Lin2,
		Gndim:     1,
		Nverts:    2,
		NatCoords: lin2nat,
	}
	lin2.init_scratchpad()
	factory["lin2"] = lin2

	// qua4
	qua4 := &Shape{
		Type:           "qua4",
		Func:           Qua4,
		FaceFunc:       Lin2,
		FaceType:       "lin2",
		Gndim:          2,
		Nverts:         4,
		FaceNvertsMax:  2,
		FaceLocalVerts: [][]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}},
		NatCoords:      qua4nat,
	}
	qua4.init_scratchpad()
	factory["qua4"] = qua4

	// hex8
	hex8 := &Shape{
		Type:           "hex8",
		Func:           Hex8,
		FaceFunc:       Qua4,
		FaceType:       "qua4",
		Gndim:          3,
		Nverts:         8,
		FaceNvertsMax:  4,
		FaceLocalVerts: [][]int{{0, 4, 7, 3}, {1, 2, 6, 5}, {0, 1, 5, 4}, {2, 3, 7, 6}, {0, 3, 2, 1}, {4, 5, 6, 7}},
		NatCoords:      hex8nat,
	}
	hex8.init_scratchpad()
	factory["hex8"] = hex8
}

// Lin2 calculates the shape functions (S) and derivatives of shape functions (dSdR) of lin2
// elements at {r,s,t} natural coordinates. The derivatives are calculated only if derivs==true.
//
//   -----------+-----------
//   0          |          1
//  r=-1       r=0       r=+1
func Lin2(S []float64, dSdR [][]float64, R []float64, derivs bool, idxface int) {
	r := R[0]
	S[0] = 0.5 * (1.0 - r)
	S[1] = 0.5 * (1.0 + r)
	if !derivs {
		return
	}
	dSdR[0][0] = -0.5
	dSdR[1][0] = 0.5
}

// Qua4 calculates the shape functions (S) and derivatives of shape functions (dSdR) of qua4
// elements at {r,s,t} natural coordinates. The derivatives are calculated only if derivs==true.
//
//    3-----------2
//    |     s     |
//    |     |     |
//    |     +--r  |
//    |           |
//    |           |
//    0-----------1
func Qua4(S []float64, dSdR [][]float64, R []float64, derivs bool, idxface int) {
	r, s := R[0], R[1]
	for m := 0; m < 4; m++ {
		rm, sm := qua4nat[0][m], qua4nat[1][m]
		S[m] = 0.25 * (1.0 + rm*r) * (1.0 + sm*s)
		if derivs {
			dSdR[m][0] = 0.25 * rm * (1.0 + sm*s)
			dSdR[m][1] = 0.25 * sm * (1.0 + rm*r)
		}
	}
}

// Hex8 calculates the shape functions (S) and derivatives of shape functions (dSdR) of hex8
// elements at {r,s,t} natural coordinates. The derivatives are calculated only if derivs==true.
//
//              4________________7
//            ,'|              ,'|
//          ,'  |            ,'  |
//        ,'    |          ,'    |
//      ,'      |        ,'      |
//    5'===============6'        |
//    |         |      |         |
//    |         |      |         |
//    |         0_____ | ________3
//    |       ,'       |       ,'
//    |     ,'         |     ,'
//    |   ,'           |   ,'
//    | ,'             | ,'
//    1________________2'
func Hex8(S []float64, dSdR [][]float64, R []float64, derivs bool, idxface int) {
	r, s, t := R[0], R[1], R[2]
	for m := 0; m < 8; m++ {
		rm, sm, tm := hex8nat[0][m], hex8nat[1][m], hex8nat[2][m]
		S[m] = 0.125 * (1.0 + rm*r) * (1.0 + sm*s) * (1.0 + tm*t)
		if derivs {
			dSdR[m][0] = 0.125 * rm * (1.0 + sm*s) * (1.0 + tm*t)
			dSdR[m][1] = 0.125 * sm * (1.0 + rm*r) * (1.0 + tm*t)
			dSdR[m][2] = 0.125 * tm * (1.0 + rm*r) * (1.0 + sm*s)
		}
	}
}
