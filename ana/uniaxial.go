// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import "github.com/cpmech/gosl/utl"

// Uniaxial implements the solution to a unit square of linear elastic material in plane-strain
// with imposed horizontal displacements ux = ε x and vertical displacements uy = 0
//
//           3 ------------- 2
//    ←      |               |      →
//    ←      |               |      →
//    ←  σxx |     σyy ↑↓    | σxx  →
//    ←      |               |      →
//           0 ------------- 1
//
type Uniaxial struct {

	// input
	E float64 // Young's modulus
	ν float64 // Poisson's coefficient
	ε float64 // imposed horizontal strain

	// derived
	λ float64 // Lamé's first parameter
	μ float64 // shear modulus
}

// Init initialises this structure
func (o *Uniaxial) Init(E, ν, ε float64) {
	o.E, o.ν, o.ε = E, ν, ε
	o.λ = E * ν / ((1.0 + ν) * (1.0 - 2.0*ν))
	o.μ = E / (2.0 * (1.0 + ν))
}

// Lame returns Lamé's parameters
func (o Uniaxial) Lame() (λ, μ float64) { return o.λ, o.μ }

// Displacements returns the displacements at (x, y)
func (o Uniaxial) Displacements(x, y float64) (ux, uy float64) {
	return o.ε * x, 0
}

// Stresses returns the (constant) stresses
func (o Uniaxial) Stresses() (σxx, σyy, σzz float64) {
	σxx = (o.λ + 2.0*o.μ) * o.ε
	σyy = o.λ * o.ε
	σzz = o.λ * o.ε
	return
}

// Pressures returns the pressures on the faces of the unit square that keep the body in
// equilibrium. Faces are ordered as bottom, right, top, left; outward normals are used
func (o Uniaxial) Pressures() []float64 {
	σxx, σyy, _ := o.Stresses()
	return []float64{-σyy, -σxx, -σyy, -σxx}
}

// Q4Stiffness returns the [8][8] stiffness matrix of the bilinear unit square with dofs ordered as
// (ux0, uy0, ux1, uy1, ...). With N_a = X_a(x) Y_a(y):
//  X0 = X3 = 1-x, X1 = X2 = x, Y0 = Y1 = 1-y and Y2 = Y3 = y
func (o Uniaxial) Q4Stiffness() (K [][]float64) {
	sx := []float64{-1, 1, 1, -1} // X_a'
	sy := []float64{-1, -1, 1, 1} // Y_a'
	gx := []int{0, 1, 1, 0}       // X_a group
	gy := []int{0, 0, 1, 1}       // Y_a group
	same := func(a, b int) float64 {
		if a == b {
			return 1.0 / 3.0
		}
		return 1.0 / 6.0
	}
	λ, μ := o.λ, o.μ
	K = utl.Alloc(8, 8)
	for a := 0; a < 4; a++ {
		for b := 0; b < 4; b++ {
			A := sx[a] * sx[b] * same(gy[a], gy[b]) // ∫ N_a,x N_b,x
			B := sy[a] * sy[b] * same(gx[a], gx[b]) // ∫ N_a,y N_b,y
			Cab := sx[a] * sy[b] / 4.0              // ∫ N_a,x N_b,y
			Cba := sx[b] * sy[a] / 4.0              // ∫ N_a,y N_b,x
			K[a*2][b*2] = (λ+2.0*μ)*A + μ*B
			K[a*2+1][b*2+1] = (λ+2.0*μ)*B + μ*A
			K[a*2][b*2+1] = λ*Cab + μ*Cba
			K[a*2+1][b*2] = λ*Cba + μ*Cab
		}
	}
	return
}

// NodalForces returns the internal nodal forces [4][2] of the unit square, i.e. ∫ σ·∇N_a
func (o Uniaxial) NodalForces() (F [][]float64) {
	σxx, σyy, _ := o.Stresses()
	F = utl.Alloc(4, 2)
	for a, s := range []float64{-0.5, 0.5, 0.5, -0.5} {
		F[a][0] = σxx * s
	}
	for a, s := range []float64{-0.5, -0.5, 0.5, 0.5} {
		F[a][1] = σyy * s
	}
	return
}
