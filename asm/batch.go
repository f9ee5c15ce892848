// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package asm

import (
	"context"
	"fmt"

	"github.com/cpmech/mpfem/gp"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"
)

// Task defines one element evaluation
type Task struct {
	Elem  *Element
	State *State
}

// Output holds the results of one Task
type Output struct {
	R []float64  // residual
	K *mat.Dense // Jacobian; nil if not requested
}

// Batch evaluates tasks concurrently with at most nworkers goroutines (nworkers ≤ 0 means no limit).
// The first error cancels the remaining tasks and no partial output is returned.
//  Note: each element may appear in one task only
func Batch(ctx context.Context, tasks []Task, jacobian bool, nworkers int) ([]Output, error) {

	// check tasks
	seen := make(map[*Element]int)
	for i, t := range tasks {
		if t.Elem == nil || t.State == nil {
			return nil, gp.NewConfigError("batch", "task %d has no element or no state", i)
		}
		if j, ok := seen[t.Elem]; ok {
			return nil, gp.NewConfigError("batch", "tasks %d and %d share element %d", j, i, t.Elem.Id)
		}
		seen[t.Elem] = i
	}

	// run
	out := make([]Output, len(tasks))
	g, ctx := errgroup.WithContext(ctx)
	if nworkers > 0 {
		g.SetLimit(nworkers)
	}
	for i, t := range tasks {
		i, t := i, t
		g.Go(func() (err error) {
			if err = ctx.Err(); err != nil {
				return
			}
			if out[i].R, err = t.Elem.Residual(t.State); err != nil {
				return fmt.Errorf("task %d (element %d): %w", i, t.Elem.Id, err)
			}
			if jacobian {
				if out[i].K, err = t.Elem.Jacobian(t.State); err != nil {
					return fmt.Errorf("task %d (element %d): %w", i, t.Elem.Id, err)
				}
			}
			return
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
