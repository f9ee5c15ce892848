// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shp

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Newton iterations of NaturalCoords
const (
	InvMapTol = 1.0e-10 // tolerance on the norm of the corrector
	InvMapNit = 25      // maximum number of iterations
)

// NaturalCoords finds the natural coordinates r[3] of the real point y[gndim] by solving
//  y - x·S(r) = 0  with  δr = dxdR⁻¹ · (y - x·S(r))
// x[gndim][nverts] holds the coordinates of the cell. Points outside the cell yield |r_i| > 1
func (o *Shape) NaturalCoords(x [][]float64, y []float64) (r []float64, err error) {
	if o.Gndim == 1 {
		return nil, chk.Err("natural coordinates of %q are not available in 1D", o.Type)
	}
	if len(y) != o.Gndim {
		return nil, chk.Err("point must have %d coordinates; %d is invalid", o.Gndim, len(y))
	}
	r = make([]float64, 3)
	res := mat.NewVecDense(o.Gndim, nil)
	δr := mat.NewVecDense(o.Gndim, nil)
	dxdR := mat.NewDense(o.Gndim, o.Gndim, nil)
	for it := 0; it < InvMapNit; it++ {
		if err = o.CalcAtIp(x, r, true); err != nil {
			return nil, err
		}
		for i := 0; i < o.Gndim; i++ {
			res.SetVec(i, y[i]-floats.Dot(x[i][:o.Nverts], o.S))
			dxdR.SetRow(i, o.DxdR[i])
		}
		if err = δr.SolveVec(dxdR, res); err != nil {
			return nil, chk.Err("mapping of %q is singular at r = %v: %v", o.Type, r[:o.Gndim], err)
		}
		for i := 0; i < o.Gndim; i++ {
			r[i] += δr.AtVec(i)
			if math.Abs(math.Abs(r[i])-1.0) < InvMapTol {
				r[i] = math.Copysign(1.0, r[i])
			}
		}
		if mat.Norm(δr, 2) < InvMapTol {
			return r, nil
		}
	}
	return nil, chk.Err("natural coordinates of %v did not converge after %d iterations", y, InvMapNit)
}
