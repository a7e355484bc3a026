// SPDX-License-Identifier: MIT

// Package lawcheck defines options and results for law checking.

package lawcheck

import (
	"errors"
	"fmt"
	"runtime"
)

// ErrBadOptions is returned by Run when Options fail validation.
var ErrBadOptions = errors.New("lawcheck: invalid options")

// Defaults used by DefaultOptions.
const (
	// DefaultTrials is the number of random cases per law.
	DefaultTrials = 200

	// DefaultMaxSpan bounds generated ranges: indices fall in
	// [-MaxSpan, 2*MaxSpan] and ranges hold at most MaxSpan+1 indices.
	DefaultMaxSpan = 16
)

// Options configures a law-checking run.
//
// Fields:
//   - Seed     — base seed; 0 selects a fixed default. Equal seeds reproduce runs.
//   - Trials   — random cases per law (> 0).
//   - MaxSpan  — size of generated ranges and index spread (> 0).
//   - Parallel — number of laws checked concurrently (> 0).
type Options struct {
	Seed     int64
	Trials   int
	MaxSpan  int
	Parallel int
}

// DefaultOptions returns the options used by the CLI and the test suite.
func DefaultOptions() Options {
	return Options{
		Seed:     0,
		Trials:   DefaultTrials,
		MaxSpan:  DefaultMaxSpan,
		Parallel: runtime.GOMAXPROCS(0),
	}
}

// Validate reports the first invalid field as a wrapped ErrBadOptions.
func (o Options) Validate() error {
	switch {
	case o.Trials <= 0:
		return fmt.Errorf("Trials=%d: %w", o.Trials, ErrBadOptions)
	case o.MaxSpan <= 0:
		return fmt.Errorf("MaxSpan=%d: %w", o.MaxSpan, ErrBadOptions)
	case o.Parallel <= 0:
		return fmt.Errorf("Parallel=%d: %w", o.Parallel, ErrBadOptions)
	}

	return nil
}

// Result is the outcome of one law.
type Result struct {
	Name           string
	Trials         int
	Failures       int
	Counterexample string // first failure, empty when the law held
}

// OK reports whether the law held in every trial.
func (r Result) OK() bool { return r.Failures == 0 }

// Report collects the results of a run in catalogue order.
type Report struct {
	Seed    int64
	Results []Result
}

// OK reports whether every law held.
func (r Report) OK() bool {
	for _, res := range r.Results {
		if !res.OK() {
			return false
		}
	}

	return true
}

// Failed returns the results of the laws that failed at least once.
func (r Report) Failed() []Result {
	var out []Result
	for _, res := range r.Results {
		if !res.OK() {
			out = append(out, res)
		}
	}

	return out
}

// TotalTrials sums the trials over all laws.
func (r Report) TotalTrials() int {
	n := 0
	for _, res := range r.Results {
		n += res.Trials
	}

	return n
}
