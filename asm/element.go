// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package asm implements a local element driver: it loops over Gauss points and test/trial
// pairs, calls material models, element kernels and boundary conditions, and scatters the
// 1-based local blocks into element vectors and matrices
package asm

import (
	"math"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/mpfem/bcs"
	"github.com/cpmech/mpfem/ele"
	"github.com/cpmech/mpfem/gp"
	"github.com/cpmech/mpfem/mdl"
	"github.com/cpmech/mpfem/shp"
	"github.com/cpmech/mpfem/tensor"
	"gonum.org/v1/gonum/mat"
)

// FaceBC holds a boundary condition applied to one face of an element
type FaceBC struct {
	Face  int     // local index of face
	Cond  bcs.BC  // boundary integrator (initialised)
	Dofs  []int   // targeted fields (1-based)
	Value float64 // value passed to the integrator; e.g. flux or pressure
}

// State holds nodal values of one element. Vectors are node-major: U[m*nf + f-1] is field f at node m
type State struct {
	U    []float64 // current values
	Uold []float64 // values at the beginning of the step
	T    float64   // time
	Dt   float64   // time step; rates are (U - Uold)/Dt and vanish if Dt ≤ 0
}

// Element implements the local driver of one element.
//  Note: an element owns its shape scratchpad; it must not be used by more than one goroutine at a time
type Element struct {
	Id     int              // element id
	Ndim   int              // space dimension
	Nf     int              // number of fields per node
	Kernel ele.Kernel       // element kernel
	Model  mdl.Model        // material model (initialised)
	Shp    *shp.Shape       // shape and scratchpad
	X      [][]float64      // [ndim][nverts] coordinates
	Ips    []shp.Ipoint     // integration points
	IpsF   []shp.Ipoint     // integration points of faces
	Faces  []*FaceBC        // boundary conditions
	Old    []*mdl.Materials // [nip] material bags of the last converged state; nil before Initialise

	volume float64
}

// NewElement returns a new element. x holds the coordinates of vertices [ndim][nverts]
func NewElement(id int, geoType string, x [][]float64, kernel ele.Kernel, model mdl.Model) (o *Element, err error) {

	// shape
	o = &Element{Id: id, Ndim: len(x), Kernel: kernel, Model: model, X: x}
	if o.Shp, err = shp.New(geoType); err != nil {
		return nil, err
	}
	if o.Shp.Gndim != o.Ndim {
		return nil, chk.Err("element %d: shape %q requires %d rows of coordinates; %d is invalid", id, geoType, o.Shp.Gndim, o.Ndim)
	}
	for i := 0; i < o.Ndim; i++ {
		if len(x[i]) != o.Shp.Nverts {
			return nil, chk.Err("element %d: shape %q requires %d vertices; %d is invalid", id, geoType, o.Shp.Nverts, len(x[i]))
		}
	}

	// kernel and model
	if err = ele.Validate(kernel, model); err != nil {
		return nil, err
	}
	o.Nf = kernel.Ndofs(o.Ndim)

	// integration points
	if o.Ips, err = shp.GetIps(geoType, 0); err != nil {
		return nil, err
	}
	if o.Shp.FaceType != "" {
		if o.IpsF, err = shp.GetIps(o.Shp.FaceType, 0); err != nil {
			return nil, err
		}
	}

	// volume
	for _, ip := range o.Ips {
		if err = o.Shp.CalcAtIp(o.X, ip, true); err != nil {
			return nil, chk.Err("element %d: %v", id, err)
		}
		o.volume += o.Shp.J * ip[3]
	}
	return
}

// Initialise sets the material bags of the last converged state computed at st.Uold.
// It is called automatically when the bags are not set yet
func (o *Element) Initialise(st *State) (err error) {
	n := o.Ndofs()
	if len(st.Uold) != n {
		return chk.Err("element %d: state vectors must have %d entries; len(Uold)=%d is invalid", o.Id, n, len(st.Uold))
	}
	ini := &State{U: st.Uold, Uold: st.Uold, T: st.T, Dt: st.Dt}
	bags := make([]*mdl.Materials, len(o.Ips))
	for idx, ip := range o.Ips {
		info, soln, err := o.ipData(ini, ip, idx)
		if err != nil {
			return err
		}
		if bags[idx], err = o.Model.InitMaterialProperties(info, soln); err != nil {
			return err
		}
	}
	o.Old = bags
	return
}

// Ndofs returns the number of degrees of freedom of this element
func (o *Element) Ndofs() int { return o.Shp.Nverts * o.Nf }

// Volume returns the element volume
func (o *Element) Volume() float64 { return o.volume }

// AddFaceBC adds a boundary condition to face idxface. cond must be allocated but not initialised
func (o *Element) AddFaceBC(idxface int, cond bcs.BC, params []float64, dofs []int, value float64) error {
	if idxface < 0 || idxface >= o.Shp.Nfaces() {
		return chk.Err("element %d: face index %d is out of range [0, %d)", o.Id, idxface, o.Shp.Nfaces())
	}
	if err := cond.Init(params, dofs, o.Nf, o.Ndim); err != nil {
		return err
	}
	o.Faces = append(o.Faces, &FaceBC{Face: idxface, Cond: cond, Dofs: dofs, Value: value})
	return nil
}

// Residual returns the element residual vector
func (o *Element) Residual(st *State) (Re []float64, err error) {
	if err = o.checkState(st); err != nil {
		return
	}
	Re = make([]float64, o.Ndofs())
	ctan := gp.Ctans(st.Dt)
	R := gp.NewLocalR(o.Nf)
	shape := new(gp.Shape)
	for idx, ip := range o.Ips {
		info, soln, mate, err := o.ipState(st, ip, idx)
		if err != nil {
			return nil, err
		}
		for m := 0; m < o.Shp.Nverts; m++ {
			shape.Test, shape.GradTest = o.Shp.S[m], o.grad(m)
			R.Fill(0)
			if err = ele.Evaluate(o.Kernel, gp.Residual, info, ctan, soln, shape, mate, o.Old[idx], nil, nil, R); err != nil {
				return nil, err
			}
			for f := 0; f < o.Nf; f++ {
				Re[m*o.Nf+f] += info.Coef * R.At(f+1)
			}
		}
	}
	for _, fbc := range o.Faces {
		if err = o.faceResidual(Re, st, ctan, fbc); err != nil {
			return nil, err
		}
	}
	return
}

// Jacobian returns the element Jacobian matrix ∂Re/∂U
func (o *Element) Jacobian(st *State) (Ke *mat.Dense, err error) {
	if err = o.checkState(st); err != nil {
		return
	}
	n := o.Ndofs()
	Ke = mat.NewDense(n, n, nil)
	ctan := gp.Ctans(st.Dt)
	K := gp.NewLocalK(o.Nf)
	shape := new(gp.Shape)
	for idx, ip := range o.Ips {
		info, soln, mate, err := o.ipState(st, ip, idx)
		if err != nil {
			return nil, err
		}
		for m := 0; m < o.Shp.Nverts; m++ {
			shape.Test, shape.GradTest = o.Shp.S[m], o.grad(m)
			for p := 0; p < o.Shp.Nverts; p++ {
				shape.Trial, shape.GradTrial = o.Shp.S[p], o.grad(p)
				K.Fill(0)
				if err = ele.Evaluate(o.Kernel, gp.Jacobian, info, ctan, soln, shape, mate, o.Old[idx], nil, K, nil); err != nil {
					return nil, err
				}
				for f := 0; f < o.Nf; f++ {
					for g := 0; g < o.Nf; g++ {
						r, c := m*o.Nf+f, p*o.Nf+g
						Ke.Set(r, c, Ke.At(r, c)+info.Coef*K.At(f+1, g+1))
					}
				}
			}
		}
	}
	for _, fbc := range o.Faces {
		if err = o.faceJacobian(Ke, st, ctan, fbc); err != nil {
			return nil, err
		}
	}
	return
}

// Projected holds post-processing quantities of one element
type Projected struct {
	Ips   []gp.Projection // [nip] Gauss point values; e.g. "vonMises" or "hist"
	Nodal []gp.Projection // [nverts] integrated nodal values; i.e. "reacforce_x|y|z"
}

// Project computes the post-processing quantities. Reaction forces are integrated over the
// element for each test function (vertex); other quantities are Gauss point values
func (o *Element) Project(st *State) (res *Projected, err error) {
	if err = o.checkState(st); err != nil {
		return
	}
	ctan := gp.Ctans(st.Dt)
	shape := new(gp.Shape)
	res = &Projected{Ips: make([]gp.Projection, len(o.Ips)), Nodal: make([]gp.Projection, o.Shp.Nverts)}
	for m := range res.Nodal {
		res.Nodal[m] = make(gp.Projection)
	}
	for idx, ip := range o.Ips {
		info, soln, mate, err := o.ipState(st, ip, idx)
		if err != nil {
			return nil, err
		}
		res.Ips[idx] = make(gp.Projection)
		for m := 0; m < o.Shp.Nverts; m++ {
			shape.Test, shape.GradTest = o.Shp.S[m], o.grad(m)
			proj := make(gp.Projection)
			if err = ele.Evaluate(o.Kernel, gp.Project, info, ctan, soln, shape, mate, o.Old[idx], proj, nil, nil); err != nil {
				return nil, err
			}
			for key, val := range proj {
				if strings.HasPrefix(key, "reacforce") {
					res.Nodal[m][key] += info.Coef * val
					continue
				}
				res.Ips[idx][key] = val
			}
		}
	}
	return
}

// Interpolate returns the fields u[nf] at the real point y[ndim] together with its natural
// coordinates r. Points outside the element are rejected
func (o *Element) Interpolate(st *State, y []float64) (u, r []float64, err error) {
	if n := o.Ndofs(); len(st.U) != n {
		return nil, nil, chk.Err("element %d: state vector must have %d entries; len(U)=%d is invalid", o.Id, n, len(st.U))
	}
	if r, err = o.Shp.NaturalCoords(o.X, y); err != nil {
		return nil, nil, chk.Err("element %d: %v", o.Id, err)
	}
	for i := 0; i < o.Ndim; i++ {
		if math.Abs(r[i]) > 1.0+1e-8 {
			return nil, nil, chk.Err("element %d: point %v is outside the element; r = %v", o.Id, y, r[:o.Ndim])
		}
	}
	o.Shp.Func(o.Shp.S, o.Shp.DSdR, r, false, -1)
	u = make([]float64, o.Nf)
	for f := 0; f < o.Nf; f++ {
		for m := 0; m < o.Shp.Nverts; m++ {
			u[f] += o.Shp.S[m] * st.U[m*o.Nf+f]
		}
	}
	return
}

// Commit computes the material bags at st and stores them as the last converged state
func (o *Element) Commit(st *State) (err error) {
	if err = o.checkState(st); err != nil {
		return
	}
	bags := make([]*mdl.Materials, len(o.Ips))
	for idx, ip := range o.Ips {
		_, _, mate, err := o.ipState(st, ip, idx)
		if err != nil {
			return err
		}
		bags[idx] = mate
	}
	o.Old = bags
	return
}

// auxiliary ////////////////////////////////////////////////////////////////////////////////////

// checkState checks the sizes of nodal vectors and initialises the material bags if needed
func (o *Element) checkState(st *State) error {
	n := o.Ndofs()
	if len(st.U) != n || len(st.Uold) != n {
		return chk.Err("element %d: state vectors must have %d entries; len(U)=%d and len(Uold)=%d are invalid", o.Id, n, len(st.U), len(st.Uold))
	}
	if o.Old == nil {
		return o.Initialise(st)
	}
	return nil
}

// grad returns the gradient of the shape function of vertex m (scratchpad must be computed)
func (o *Element) grad(m int) (g tensor.Vector) {
	copy(g[:o.Ndim], o.Shp.G[m])
	return
}

// ipData computes the shape functions at ip and interpolates the solution
func (o *Element) ipData(st *State, ip shp.Ipoint, idx int) (info *gp.Info, soln *gp.Solution, err error) {
	if err = o.Shp.CalcAtIp(o.X, ip, true); err != nil {
		return nil, nil, chk.Err("element %d, ip %d: %v", o.Id, idx, err)
	}
	info = &gp.Info{
		Ndim:   o.Ndim,
		T:      st.T,
		Dt:     st.Dt,
		Eid:    o.Id,
		Ip:     idx,
		Volume: o.volume,
		Coef:   o.Shp.J * ip[3],
	}
	rate := 0.0
	if st.Dt > 0 {
		rate = 1.0 / st.Dt
	}
	soln = gp.NewSolution(o.Nf)
	for f := 0; f < o.Nf; f++ {
		var u, uold float64
		var g, gold tensor.Vector
		for m := 0; m < o.Shp.Nverts; m++ {
			S, um, uoldm := o.Shp.S[m], st.U[m*o.Nf+f], st.Uold[m*o.Nf+f]
			u += S * um
			uold += S * uoldm
			for i := 0; i < o.Ndim; i++ {
				g[i] += o.Shp.G[m][i] * um
				gold[i] += o.Shp.G[m][i] * uoldm
			}
		}
		soln.Set(f+1, u, (u-uold)*rate, g)
		soln.SetOld(f+1, uold, 0, gold)
	}
	return
}

// ipState computes ipData and the current material bag at ip
func (o *Element) ipState(st *State, ip shp.Ipoint, idx int) (info *gp.Info, soln *gp.Solution, mate *mdl.Materials, err error) {
	if info, soln, err = o.ipData(st, ip, idx); err != nil {
		return
	}
	mate, err = o.Model.ComputeMaterialProperties(info, soln, o.Old[idx])
	return
}

// faceData computes the face shape functions at ipf and interpolates the targeted fields
func (o *Element) faceData(st *State, ipf shp.Ipoint, idx int, fbc *FaceBC) (info *gp.Info, soln *gp.Solution, normal tensor.Vector, err error) {
	if err = o.Shp.CalcAtFaceIp(o.X, ipf, fbc.Face); err != nil {
		return
	}
	var fn tensor.Vector
	copy(fn[:o.Ndim], o.Shp.Fnvec)
	normal, jf := fn.Unit()
	info = &gp.Info{Ndim: o.Ndim, T: st.T, Dt: st.Dt, Eid: o.Id, Ip: idx, Volume: o.volume, Coef: jf * ipf[3]}
	rate := 0.0
	if st.Dt > 0 {
		rate = 1.0 / st.Dt
	}
	soln = gp.NewSolution(len(fbc.Dofs))
	for j, dof := range fbc.Dofs {
		var u, uold float64
		for k, m := range o.Shp.FaceLocalVerts[fbc.Face] {
			u += o.Shp.Sf[k] * st.U[m*o.Nf+dof-1]
			uold += o.Shp.Sf[k] * st.Uold[m*o.Nf+dof-1]
		}
		soln.Set(j+1, u, (u-uold)*rate, tensor.Vector{})
		soln.SetOld(j+1, uold, 0, tensor.Vector{})
	}
	return
}

// faceResidual adds the contribution of a face boundary condition to Re
func (o *Element) faceResidual(Re []float64, st *State, ctan [3]float64, fbc *FaceBC) error {
	n := len(fbc.Dofs)
	R := gp.NewLocalR(n)
	shape := new(gp.Shape)
	for idx, ipf := range o.IpsF {
		info, soln, normal, err := o.faceData(st, ipf, idx, fbc)
		if err != nil {
			return err
		}
		for k, m := range o.Shp.FaceLocalVerts[fbc.Face] {
			shape.Test = o.Shp.Sf[k]
			R.Fill(0)
			if err = bcs.Evaluate(fbc.Cond, gp.Residual, fbc.Value, info, soln, normal, shape, ctan, nil, R); err != nil {
				return err
			}
			for j, dof := range fbc.Dofs {
				Re[m*o.Nf+dof-1] += info.Coef * R.At(j+1)
			}
		}
	}
	return nil
}

// faceJacobian adds the contribution of a face boundary condition to Ke
func (o *Element) faceJacobian(Ke *mat.Dense, st *State, ctan [3]float64, fbc *FaceBC) error {
	n := len(fbc.Dofs)
	K := gp.NewLocalK(n)
	shape := new(gp.Shape)
	verts := o.Shp.FaceLocalVerts[fbc.Face]
	for idx, ipf := range o.IpsF {
		info, soln, normal, err := o.faceData(st, ipf, idx, fbc)
		if err != nil {
			return err
		}
		for k, m := range verts {
			shape.Test = o.Shp.Sf[k]
			for l, p := range verts {
				shape.Trial = o.Shp.Sf[l]
				K.Fill(0)
				if err = bcs.Evaluate(fbc.Cond, gp.Jacobian, fbc.Value, info, soln, normal, shape, ctan, K, nil); err != nil {
					return err
				}
				for j, dj := range fbc.Dofs {
					for i, di := range fbc.Dofs {
						r, c := m*o.Nf+dj-1, p*o.Nf+di-1
						Ke.Set(r, c, Ke.At(r, c)+info.Coef*K.At(j+1, i+1))
					}
				}
			}
		}
	}
	return nil
}
