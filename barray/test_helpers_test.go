// SPDX-License-Identifier: MIT
// Package barray_test contains test helpers.
//
// Purpose:
//   • Small deterministic fixtures shared by the table tests.
//   • Assertions phrased in terms of the total-map model (Get over a range).

package barray_test

import (
	"testing"

	"github.com/katalvlaran/lvarray/barray"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fillerInt is the filler used by most fixtures. It is non-zero so tests
// catch code paths that silently fall back to T's zero value.
const fillerInt = -1

// ints is the Kind shared by most fixtures.
var ints = barray.Of(fillerInt)

// strictInts panics on contract misuse.
var strictInts = barray.Of(fillerInt, barray.WithStrict())

// mustEqualOn fails the test unless a reads want[k] at first+k.
func mustEqualOn(t *testing.T, a barray.Array[int], first int, want ...int) {
	t.Helper()
	require.Equal(t, want, a.Values(first, first+len(want)-1), "values from %d in %v", first, a)
}

// assertFillerOutside checks a handful of indices around [first, last].
func assertFillerOutside(t *testing.T, a barray.Array[int], first, last int) {
	t.Helper()
	for _, i := range []int{first - 100, first - 2, first - 1, last + 1, last + 2, last + 100} {
		assert.Equal(t, a.Dummy(), a.Get(i), "index %d outside [%d,%d] of %v", i, first, last, a)
	}
	assert.True(t, barray.HasBounds(a, first, last), "HasBounds(%v, %d, %d)", a, first, last)
}

// seq returns [from, from+1, ..., to].
func seq(from, to int) []int {
	out := make([]int, 0, to-from+1)
	for v := from; v <= to; v++ {
		out = append(out, v)
	}

	return out
}
