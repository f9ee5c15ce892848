// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tensor

// kron returns the Kronecker delta
func kron(i, j int) float64 {
	if i == j {
		return 1
	}
	return 0
}

// IdentitySym4 returns the symmetric fourth order identity Isym_ijkl = ½(δik δjl + δil δjk)
func IdentitySym4() (c RankFour) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					c[i][j][k][l] = 0.5 * (kron(i, k)*kron(j, l) + kron(i, l)*kron(j, k))
				}
			}
		}
	}
	return
}

// Otimes returns the dyadic product (a ⊗ b)_ijkl = a_ij b_kl
func Otimes(a, b RankTwo) (c RankFour) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					c[i][j][k][l] = a[i][j] * b[k][l]
				}
			}
		}
	}
	return
}

// Isotropic returns the isotropic elastic modulus C = λ I⊗I + 2μ Isym
func Isotropic(lambda, mu float64) (c RankFour) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					c[i][j][k][l] = lambda*kron(i, j)*kron(k, l) +
						mu*(kron(i, k)*kron(j, l)+kron(i, l)*kron(j, k))
				}
			}
		}
	}
	return
}

// Lame converts Young's modulus and Poisson's coefficient into Lamé's parameters
func Lame(E, nu float64) (lambda, mu float64) {
	lambda = E * nu / ((1.0 + nu) * (1.0 - 2.0*nu))
	mu = E / (2.0 * (1.0 + nu))
	return
}

// At returns the (i,j,k,l) component (1-based)
func (c *RankFour) At(i, j, k, l int) float64 { return c[i-1][j-1][k-1][l-1] }

// Add returns c + d
func (c *RankFour) Add(d *RankFour) (r RankFour) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					r[i][j][k][l] = c[i][j][k][l] + d[i][j][k][l]
				}
			}
		}
	}
	return
}

// Scale returns s·c
func (c *RankFour) Scale(s float64) (r RankFour) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					r[i][j][k][l] = s * c[i][j][k][l]
				}
			}
		}
	}
	return
}

// DoubleDot returns c:a = c_ijkl a_kl
func (c *RankFour) DoubleDot(a RankTwo) (b RankTwo) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					b[i][j] += c[i][j][k][l] * a[k][l]
				}
			}
		}
	}
	return
}

// GetIKjlComponent returns Σ_jl c_ijkl a_j b_l for 1-based i and k.
// With a = ∇N_test and b = ∇N_trial this is the (i,k) block of the tangent stiffness
func (c *RankFour) GetIKjlComponent(i, k int, a, b Vector) (res float64) {
	for j := 0; j < 3; j++ {
		for l := 0; l < 3; l++ {
			res += c[i-1][j][k-1][l] * a[j] * b[l]
		}
	}
	return
}
