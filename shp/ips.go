// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// gauss1d returns the Gauss-Legendre points and weights along [-1, 1]
func gauss1d(n int) (x, w []float64) {
	switch n {
	case 1:
		return []float64{0}, []float64{2}
	case 2:
		a := 1.0 / math.Sqrt(3.0)
		return []float64{-a, a}, []float64{1, 1}
	case 3:
		a := math.Sqrt(0.6)
		return []float64{-a, 0, a}, []float64{5.0 / 9.0, 8.0 / 9.0, 5.0 / 9.0}
	}
	return nil, nil
}

// GetIps returns the integration points of a tensor-product Gauss rule with n points per direction.
// Use n = 0 for the default rule (2 points per direction)
func GetIps(geoType string, n int) (ips []Ipoint, err error) {
	if n == 0 {
		n = 2
	}
	x, w := gauss1d(n)
	if x == nil {
		return nil, chk.Err("cannot get integration points with %d points per direction (1, 2 or 3 are available)", n)
	}
	switch geoType {
	case "lin2":
		for i := 0; i < n; i++ {
			ips = append(ips, Ipoint{x[i], 0, 0, w[i]})
		}
	case "qua4":
		for j := 0; j < n; j++ {
			for i := 0; i < n; i++ {
				ips = append(ips, Ipoint{x[i], x[j], 0, w[i] * w[j]})
			}
		}
	case "hex8":
		for k := 0; k < n; k++ {
			for j := 0; j < n; j++ {
				for i := 0; i < n; i++ {
					ips = append(ips, Ipoint{x[i], x[j], x[k], w[i] * w[j] * w[k]})
				}
			}
		}
	default:
		return nil, chk.Err("cannot get integration points for shape type = %q", geoType)
	}
	return
}
