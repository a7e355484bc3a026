package lawcheck_test

import (
	"context"
	"errors"
	"testing"

	"github.com/katalvlaran/lvarray/lawcheck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// smallOptions keeps the suite fast while still touching every law.
func smallOptions(seed int64) lawcheck.Options {
	opts := lawcheck.DefaultOptions()
	opts.Seed = seed
	opts.Trials = 50
	opts.MaxSpan = 8

	return opts
}

// TestRun_AllLawsHold runs the full catalogue under several seeds.
func TestRun_AllLawsHold(t *testing.T) {
	for _, seed := range []int64{0, 1, 42, -7} {
		rep, err := lawcheck.Run(context.Background(), smallOptions(seed))
		require.NoError(t, err)
		require.Len(t, rep.Results, len(lawcheck.Catalogue()))
		for _, r := range rep.Results {
			assert.True(t, r.OK(), "seed %d law %s: %s", seed, r.Name, r.Counterexample)
			assert.Equal(t, 50, r.Trials)
		}
		assert.True(t, rep.OK())
		assert.Empty(t, rep.Failed())
		assert.Equal(t, 50*len(rep.Results), rep.TotalTrials())
	}
}

// TestRun_Deterministic: the same seed gives the same report whatever the
// parallelism.
func TestRun_Deterministic(t *testing.T) {
	broken := []lawcheck.Law{{
		Name: "odd-values",
		Check: func(g *lawcheck.Gen) error {
			if v := g.Value(); v%2 != 0 {
				return errors.New("odd")
			}
			return nil
		},
	}}
	laws := append(lawcheck.Catalogue(), broken...)

	serial := smallOptions(99)
	serial.Parallel = 1
	wide := smallOptions(99)
	wide.Parallel = 8

	r1, err := lawcheck.RunLaws(context.Background(), laws, serial)
	require.NoError(t, err)
	r2, err := lawcheck.RunLaws(context.Background(), laws, wide)
	require.NoError(t, err)
	assert.Equal(t, r1, r2)
	assert.Equal(t, int64(99), r1.Seed)
}

// TestRunLaws_RecordsFailures checks counting, first counterexample, and
// panic recovery.
func TestRunLaws_RecordsFailures(t *testing.T) {
	calls := 0
	laws := []lawcheck.Law{
		{Name: "always", Check: func(*lawcheck.Gen) error { return nil }},
		{Name: "never", Check: func(*lawcheck.Gen) error {
			calls++
			return errors.New("nope")
		}},
		{Name: "panics", Check: func(*lawcheck.Gen) error { panic("boom") }},
	}
	opts := smallOptions(3)
	opts.Trials = 10
	opts.Parallel = 1

	rep, err := lawcheck.RunLaws(context.Background(), laws, opts)
	require.NoError(t, err)
	require.Len(t, rep.Results, 3)
	assert.False(t, rep.OK())

	assert.Equal(t, "always", rep.Results[0].Name)
	assert.True(t, rep.Results[0].OK())

	never := rep.Results[1]
	assert.Equal(t, 10, never.Failures)
	assert.Equal(t, "trial 0: nope", never.Counterexample)
	assert.Equal(t, 10, calls, "a failure does not stop the law")

	p := rep.Results[2]
	assert.Equal(t, 10, p.Failures)
	assert.Contains(t, p.Counterexample, "panic: boom")

	failed := rep.Failed()
	require.Len(t, failed, 2)
	assert.Equal(t, "never", failed[0].Name)
	assert.Equal(t, "panics", failed[1].Name)
}

// TestRun_BadOptions rejects each non-positive field.
func TestRun_BadOptions(t *testing.T) {
	for name, mutate := range map[string]func(*lawcheck.Options){
		"trials":   func(o *lawcheck.Options) { o.Trials = 0 },
		"maxspan":  func(o *lawcheck.Options) { o.MaxSpan = -1 },
		"parallel": func(o *lawcheck.Options) { o.Parallel = 0 },
	} {
		t.Run(name, func(t *testing.T) {
			opts := lawcheck.DefaultOptions()
			mutate(&opts)
			_, err := lawcheck.Run(context.Background(), opts)
			require.ErrorIs(t, err, lawcheck.ErrBadOptions)
		})
	}
	require.NoError(t, lawcheck.DefaultOptions().Validate())
}

// TestRun_Cancelled returns the context error instead of a partial report.
func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rep, err := lawcheck.Run(ctx, lawcheck.DefaultOptions())
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, rep.Results)
}

// TestCatalogue_UniqueNames guards the report keys.
func TestCatalogue_UniqueNames(t *testing.T) {
	seen := map[string]bool{}
	for _, l := range lawcheck.Catalogue() {
		require.NotEmpty(t, l.Name)
		require.NotNil(t, l.Check)
		require.False(t, seen[l.Name], "duplicate law %q", l.Name)
		seen[l.Name] = true
	}
}
