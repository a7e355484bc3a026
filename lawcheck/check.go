// SPDX-License-Identifier: MIT

// Package lawcheck - the runner.
//
// Run fans the catalogue out over an errgroup bounded by Options.Parallel.
// Each law draws from its own RNG stream, so a report depends only on the
// seed, never on scheduling.

package lawcheck

import (
	"context"
	"fmt"
	"math/rand"

	"golang.org/x/sync/errgroup"
)

// Run checks the whole catalogue.
//
// Returns:
//   - ErrBadOptions (wrapped) if opts fail validation.
//   - ctx.Err() if ctx is cancelled before every law finished.
//
// Law failures are not errors: they are recorded in the Report.
func Run(ctx context.Context, opts Options) (Report, error) {
	return RunLaws(ctx, Catalogue(), opts)
}

// RunLaws checks laws in order and returns their results in the same order.
//
// Implementation:
//   - Stage 1: validate opts.
//   - Stage 2: one errgroup task per law, at most opts.Parallel at a time;
//     law i uses streamRNG(opts.Seed, i).
//   - Stage 3: each task runs opts.Trials trials, counts failures, and keeps
//     the first counterexample. A panicking Check counts as a failure.
//
// Complexity:
//   - Time O(len(laws) * Trials * MaxSpan) in total, Space O(len(laws)).
func RunLaws(ctx context.Context, laws []Law, opts Options) (Report, error) {
	if err := opts.Validate(); err != nil {
		return Report{}, err
	}

	results := make([]Result, len(laws))
	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(opts.Parallel)
	for idx, law := range laws {
		grp.Go(func() error {
			res, err := runLaw(gctx, law, streamRNG(opts.Seed, idx), opts)
			results[idx] = res

			return err
		})
	}
	if err := grp.Wait(); err != nil {
		return Report{}, err
	}

	return Report{Seed: opts.Seed, Results: results}, nil
}

// runLaw executes the trials of a single law.
func runLaw(ctx context.Context, law Law, rng *rand.Rand, opts Options) (Result, error) {
	res := Result{Name: law.Name}
	g := newGen(rng, opts.MaxSpan)
	for t := 0; t < opts.Trials; t++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		res.Trials++
		if err := trial(law, g); err != nil {
			res.Failures++
			if res.Counterexample == "" {
				res.Counterexample = fmt.Sprintf("trial %d: %v", t, err)
			}
		}
	}

	return res, nil
}

// trial runs one Check, turning a panic into an error.
func trial(law Law, g *Gen) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v: %w", r, ErrViolation)
		}
	}()

	return law.Check(g)
}
