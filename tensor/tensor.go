// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package tensor implements fixed-size 3D tensors used at Gauss points
//  Note: components are addressed with 1-based indices (1..3); storage is 0-based.
//        Tensors are values: assignment copies all components.
package tensor

import "math"

// Vector holds the 3 components of a vector. Components beyond the space dimension are zero
type Vector [3]float64

// RankTwo holds the 3x3 components of a second order tensor
type RankTwo [3][3]float64

// RankFour holds the 3x3x3x3 components of a fourth order tensor
type RankFour [3][3][3][3]float64

// Vector ////////////////////////////////////////////////////////////////////////////////////////

// At returns the i-th component (1-based)
func (v Vector) At(i int) float64 { return v[i-1] }

// Dot returns v·w
func (v Vector) Dot(w Vector) float64 {
	return v[0]*w[0] + v[1]*w[1] + v[2]*w[2]
}

// Norm returns the Euclidean norm
func (v Vector) Norm() float64 { return math.Sqrt(v.Dot(v)) }

// Scale returns a·v
func (v Vector) Scale(a float64) (w Vector) {
	for i := 0; i < 3; i++ {
		w[i] = a * v[i]
	}
	return
}

// Add returns v + w
func (v Vector) Add(w Vector) (r Vector) {
	for i := 0; i < 3; i++ {
		r[i] = v[i] + w[i]
	}
	return
}

// Unit returns v/|v| and |v|. A zero vector is returned unchanged
func (v Vector) Unit() (u Vector, norm float64) {
	norm = v.Norm()
	if norm == 0 {
		return v, 0
	}
	return v.Scale(1.0 / norm), norm
}

// RankTwo ///////////////////////////////////////////////////////////////////////////////////////

// Identity2 returns the second order identity tensor
func Identity2() (a RankTwo) {
	a[0][0], a[1][1], a[2][2] = 1, 1, 1
	return
}

// At returns the (i,j) component (1-based)
func (a RankTwo) At(i, j int) float64 { return a[i-1][j-1] }

// Set sets the (i,j) component (1-based)
func (a *RankTwo) Set(i, j int, val float64) { a[i-1][j-1] = val }

// IthRow returns the i-th row (1-based); e.g. the traction on the plane normal to e_i
func (a RankTwo) IthRow(i int) Vector { return Vector(a[i-1]) }

// Trace returns tr(a)
func (a RankTwo) Trace() float64 { return a[0][0] + a[1][1] + a[2][2] }

// Transpose returns aᵀ
func (a RankTwo) Transpose() (b RankTwo) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			b[i][j] = a[j][i]
		}
	}
	return
}

// Sym returns ½(a + aᵀ)
func (a RankTwo) Sym() (b RankTwo) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			b[i][j] = 0.5 * (a[i][j] + a[j][i])
		}
	}
	return
}

// Dev returns the deviatoric part a - ⅓ tr(a) I
func (a RankTwo) Dev() (b RankTwo) {
	b = a
	p := a.Trace() / 3.0
	for i := 0; i < 3; i++ {
		b[i][i] -= p
	}
	return
}

// Add returns a + b
func (a RankTwo) Add(b RankTwo) (c RankTwo) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			c[i][j] = a[i][j] + b[i][j]
		}
	}
	return
}

// Sub returns a - b
func (a RankTwo) Sub(b RankTwo) (c RankTwo) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			c[i][j] = a[i][j] - b[i][j]
		}
	}
	return
}

// Scale returns s·a
func (a RankTwo) Scale(s float64) (b RankTwo) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			b[i][j] = s * a[i][j]
		}
	}
	return
}

// Mul returns the matrix product a·b
func (a RankTwo) Mul(b RankTwo) (c RankTwo) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				c[i][j] += a[i][k] * b[k][j]
			}
		}
	}
	return
}

// MulVec returns a·v
func (a RankTwo) MulVec(v Vector) (w Vector) {
	for i := 0; i < 3; i++ {
		w[i] = a[i][0]*v[0] + a[i][1]*v[1] + a[i][2]*v[2]
	}
	return
}

// DoubleDot returns a:b = a_ij b_ij
func (a RankTwo) DoubleDot(b RankTwo) (res float64) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			res += a[i][j] * b[i][j]
		}
	}
	return
}

// Det returns the determinant
func (a RankTwo) Det() float64 {
	return a[0][0]*(a[1][1]*a[2][2]-a[1][2]*a[2][1]) -
		a[0][1]*(a[1][0]*a[2][2]-a[1][2]*a[2][0]) +
		a[0][2]*(a[1][0]*a[2][1]-a[1][1]*a[2][0])
}

// VonMises returns the von Mises equivalent of the symmetric part of a
func (a RankTwo) VonMises() float64 {
	s := a.Sym().Dev()
	return math.Sqrt(1.5 * s.DoubleDot(s))
}

// IsFinite tells whether all components are finite numbers
func (a RankTwo) IsFinite() bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.IsNaN(a[i][j]) || math.IsInf(a[i][j], 0) {
				return false
			}
		}
	}
	return true
}

// Outer returns the dyadic product v ⊗ w
func Outer(v, w Vector) (a RankTwo) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			a[i][j] = v[i] * w[j]
		}
	}
	return
}
