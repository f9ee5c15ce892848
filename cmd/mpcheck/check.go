// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	goio "io"
	"math/rand"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/mpfem/asm"
	"github.com/cpmech/mpfem/bcs"
	"github.com/cpmech/mpfem/inp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// report holds the results of one case
type report struct {
	name    string
	results []*asm.CheckResult
	ok      bool
}

// buildCase allocates the element of a case and adds its boundary conditions
func buildCase(id int, c *inp.Case) (*asm.Element, error) {
	e, err := asm.Build(id, c.Geo, c.Coords, c.Kernel, c.Model, c.Params)
	if err != nil {
		return nil, err
	}
	for _, f := range c.Faces {
		cond, err := bcs.New(f.Cond)
		if err != nil {
			return nil, err
		}
		if err = e.AddFaceBC(f.Face, cond, f.Params, f.Dofs, f.Value); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// runCase checks c.Nstates random states; each state is committed after checking
func runCase(ctx context.Context, id int, c *inp.Case, log *zap.Logger) (r *report, err error) {
	e, err := buildCase(id, c)
	if err != nil {
		return nil, err
	}
	rnd := rand.New(rand.NewSource(c.Seed))
	r = &report{name: c.Name, ok: true}
	for k := 0; k < c.Nstates; k++ {
		if err = ctx.Err(); err != nil {
			return nil, err
		}
		st := asm.RandomState(e, rnd, c.Base, c.Amp, c.Dt)
		res, err := asm.CheckJacobian(e, st, c.Step)
		if err != nil {
			return nil, err
		}
		log.Debug("state checked",
			zap.String("case", c.Name),
			zap.Int("state", k),
			zap.Float64("maxAbs", res.MaxAbs),
			zap.Float64("maxRel", res.MaxRel))
		r.results = append(r.results, res)
		if !res.Ok(c.Tol) {
			r.ok = false
		}
		if err = e.Commit(st); err != nil {
			return nil, err
		}
	}
	return
}

// runCases runs all cases concurrently; errors (not failed checks) cancel the remaining cases
func runCases(ctx context.Context, cases *inp.Cases, log *zap.Logger) ([]*report, error) {
	reports := make([]*report, len(cases.Cases))
	g, ctx := errgroup.WithContext(ctx)
	if cases.Nworkers > 0 {
		g.SetLimit(cases.Nworkers)
	}
	for i, c := range cases.Cases {
		i, c := i, c
		g.Go(func() (err error) {
			if reports[i], err = runCase(ctx, i, c, log); err != nil {
				return fmt.Errorf("case %q: %w", c.Name, err)
			}
			return
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

// check runs all cases, prints a summary to w and returns an error if any case fails
func check(ctx context.Context, w goio.Writer, cases *inp.Cases, log *zap.Logger) error {
	if ctx == nil {
		ctx = context.Background()
	}
	log.Info("running cases", zap.String("desc", cases.Desc), zap.Int("ncases", len(cases.Cases)), zap.Int("nworkers", cases.Nworkers))
	reports, err := runCases(ctx, cases, log)
	if err != nil {
		return err
	}
	nfailed := 0
	for _, r := range reports {
		status := "OK"
		if !r.ok {
			status = "FAILED"
			nfailed++
		}
		fmt.Fprintf(w, "%-28s %-6s\n", r.name, status)
		for k, res := range r.results {
			fmt.Fprintf(w, "    state %d: %v\n", k, res)
		}
		if !r.ok {
			log.Error("inconsistent Jacobian", zap.String("case", r.name))
		}
	}
	if nfailed > 0 {
		return fmt.Errorf("%d of %d cases failed", nfailed, len(reports))
	}
	log.Info("all cases passed")
	if io.Verbose {
		io.PfGreen("OK\n")
	}
	return nil
}
