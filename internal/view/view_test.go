package view_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/katalvlaran/lvarray/barray"
	"github.com/katalvlaran/lvarray/internal/view"
	"github.com/katalvlaran/lvarray/lawcheck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWriteWindow prints every index of the range and marks filler rows.
func TestWriteWindow(t *testing.T) {
	a := barray.Of(-1).Singleton(99, 3)

	var out bytes.Buffer
	require.NoError(t, view.WriteWindow(&out, a, 1, 5))
	s := out.String()

	assert.Contains(t, s, "Index")
	assert.Contains(t, s, "Value")
	assert.Contains(t, s, "99")
	assert.Equal(t, 4, strings.Count(s, "filler"), "indices 1,2,4,5 read the filler")
	assert.Contains(t, s, "[3..3]", "footer shows the support")
}

// TestWriteWindow_EmptyRange rejects first > last and writes nothing.
func TestWriteWindow_EmptyRange(t *testing.T) {
	var out bytes.Buffer
	err := view.WriteWindow(&out, barray.Const(1, 0, 2), 3, 2)
	require.ErrorIs(t, err, barray.ErrEmptyRange)
	assert.Zero(t, out.Len())
}

// TestWriteWindow_TooWide caps the printed range at MaxWindowRows.
func TestWriteWindow_TooWide(t *testing.T) {
	a := barray.Singleton(1, 0).Set(4_000_000_000, 2)

	var out bytes.Buffer
	err := view.WriteWindow(&out, a, 0, 1_000_000_000_000)
	require.ErrorIs(t, err, view.ErrWindowTooWide)
	assert.Zero(t, out.Len())

	require.NoError(t, view.WriteWindow(&out, a, 0, view.MaxWindowRows-1))
	require.NoError(t, view.WriteWindow(&out, a, 3_999_999_999, 4_000_000_001))
	assert.Contains(t, out.String(), "4000000000")
}

// TestWriteReport_Plain covers the passing and failing rows without colour.
func TestWriteReport_Plain(t *testing.T) {
	rep := lawcheck.Report{
		Seed: 7,
		Results: []lawcheck.Result{
			{Name: "slide/identity", Trials: 10},
			{Name: "concat/bounds", Trials: 10, Failures: 2, Counterexample: "trial 4: bad"},
		},
	}

	var out bytes.Buffer
	require.NoError(t, view.WriteReport(&out, rep, false))
	s := out.String()

	assert.Contains(t, s, "slide/identity")
	assert.Contains(t, s, view.StatusOK)
	assert.Contains(t, s, view.StatusFail)
	assert.Contains(t, s, "concat/bounds: trial 4: bad")
	assert.Contains(t, s, "seed 7: 2 laws, 20 trials, 1 failed")
	assert.NotContains(t, s, "\x1b[", "no escape codes without colour")
}

// TestWriteReport_Run renders a real run.
func TestWriteReport_Run(t *testing.T) {
	opts := lawcheck.DefaultOptions()
	opts.Trials = 5
	rep, err := lawcheck.Run(context.Background(), opts)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, view.WriteReport(&out, rep, true))
	for _, l := range lawcheck.Catalogue() {
		assert.Contains(t, out.String(), l.Name)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

// TestWriters_PropagateErrors surfaces the writer's error.
func TestWriters_PropagateErrors(t *testing.T) {
	assert.EqualError(t, view.WriteWindow(failingWriter{}, barray.Const(1, 0, 0), 0, 0), "disk full")
	assert.EqualError(t, view.WriteReport(failingWriter{}, lawcheck.Report{}, false), "disk full")
}

// TestIsTTY is false for anything but a terminal file.
func TestIsTTY(t *testing.T) {
	assert.False(t, view.IsTTY(&bytes.Buffer{}))
	assert.Equal(t, "hint", view.Muted("hint", false))
}
