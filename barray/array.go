// SPDX-License-Identifier: MIT

// Package barray - construction, point access and point update.
//
// Complexity quicksheet:
//   - FromSlice: O(n); Const: O(min(n, denseLimit)); Singleton/Empty: O(1).
//   - Get: O(log runs); Set: O(touched run + runs) (use Builder for batches).
//   - Values: O(l-f+1); String: O(stored values + runs).

package barray

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_fmtOpen  = "{"
	_fmtClose = "}"
	_fmtSep   = ", "
)

// Storage thresholds.
const (
	// denseLimit is the widest stretch Const stores one slot per index;
	// wider stretches become a single constant run.
	denseLimit = 1 << 12

	// minGrowGap is the widest filler gap a write may bridge by growing a
	// neighbouring dense run instead of starting a new run.
	minGrowGap = 64

	// stringLimit is the widest window String prints index by index.
	stringLimit = 64
)

// Empty returns the array that reads the filler everywhere.
func (k Kind[T]) Empty() Array[T] {
	return Array[T]{kind: k}
}

// Const returns the array mapping every index of [first, last] to v and
// every other index to the filler. first > last yields Empty.
//
// Implementation:
//   - Stage 1: reject empty ranges.
//   - Stage 2: store one slot per index for short ranges, a single constant
//     run for wide ones.
//
// Complexity:
//   - Time O(min(n, denseLimit)), n = last-first+1.
func (k Kind[T]) Const(v T, first, last int) Array[T] {
	if first > last {
		return k.Empty()
	}

	return Array[T]{runs: []run[T]{constRun(v, Bounds{First: first, Last: last})}, kind: k}
}

// Singleton returns the array holding v at i and the filler elsewhere.
// Equivalent to Const(v, i, i).
func (k Kind[T]) Singleton(v T, i int) Array[T] {
	return Array[T]{runs: []run[T]{{lo: i, hi: i, buf: []T{v}}}, kind: k}
}

// FromSlice returns the array holding values[k] at first+k.
// values is copied; the caller keeps ownership of the slice.
func (k Kind[T]) FromSlice(first int, values []T) Array[T] {
	if len(values) == 0 {
		return k.Empty()
	}
	buf := slices.Clone(values)

	return Array[T]{runs: []run[T]{{lo: first, hi: first + len(buf) - 1, buf: buf}}, kind: k}
}

// Const is Default[T]().Const: the filler is T's zero value.
func Const[T comparable](v T, first, last int) Array[T] {
	return Default[T]().Const(v, first, last)
}

// Singleton is Default[T]().Singleton.
func Singleton[T comparable](v T, i int) Array[T] {
	return Default[T]().Singleton(v, i)
}

// FromSlice is Default[T]().FromSlice.
func FromSlice[T comparable](first int, values []T) Array[T] {
	return Default[T]().FromSlice(first, values)
}

// Get returns the value at index i. Total: indices outside the stored runs
// read the filler.
// Complexity: O(log runs); O(1) for arrays of a single run.
func (a Array[T]) Get(i int) T {
	j, ok := search(a.runs, i)
	if !ok {
		return a.kind.dummy
	}

	return a.runs[j].at(i)
}

// Get is the free-function form of a.Get(i).
func Get[T comparable](a Array[T], i int) T {
	return a.Get(i)
}

// Set returns an array equal to a everywhere except at i, where it reads v.
//
// Implementation:
//   - Stage 1: a write that changes nothing returns a (this covers the
//     filler written outside the runs).
//   - Stage 2: otherwise apply the write through a one-shot Builder: the
//     touched run is copied, a near gap is bridged by growing a dense
//     neighbour, a far index gets a run of its own.
//
// Behavior highlights:
//   - a is never modified.
//   - Total for every int index: a write 1<<60 away from the data costs one
//     new run, not the gap.
//   - If HasBounds(a, f, l) and f <= i <= l then HasBounds(result, f, l).
//
// Complexity:
//   - Time O(touched run + runs).
func (a Array[T]) Set(i int, v T) Array[T] {
	if a.Get(i) == v {
		return a
	}

	return a.Edit().Set(i, v).Array()
}

// Set is the free-function form of a.Set(i, v).
func Set[T comparable](a Array[T], i int, v T) Array[T] {
	return a.Set(i, v)
}

// readInto writes a[from], a[from+1], ... into dst.
// Slots outside the stored runs receive a's filler.
func (a Array[T]) readInto(dst []T, from int) {
	fill(dst, a.kind.dummy)
	if len(dst) == 0 {
		return
	}
	want := Bounds{First: from, Last: from + len(dst) - 1}
	for _, r := range appendRestricted(nil, a.runs, want, true) {
		out := dst[r.lo-from : r.hi-from+1]
		if r.buf == nil {
			fill(out, r.v)
			continue
		}
		copy(out, r.buf)
	}
}

// Values returns a fresh slice holding a[first..last].
// first > last yields an empty (non-nil) slice. The slice has one slot per
// index, so the caller bounds the range.
func (a Array[T]) Values(first, last int) []T {
	r := Bounds{First: first, Last: last}
	out := make([]T, r.Len())
	a.readInto(out, first)

	return out
}

// All yields (index, value) for every index of [first, last] in ascending order.
func (a Array[T]) All(first, last int) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if first > last {
			return
		}
		for i := first; ; i++ {
			if !yield(i, a.Get(i)) || i == last {
				return
			}
		}
	}
}

// String implements fmt.Stringer.
//
// A window of at most stringLimit indices prints every value, e.g.
// "[1..3]{0, 99, 0}"; an empty window prints "[]{}". Wider windows print
// run by run, separated by spaces, with wide constant runs folded:
// "[0..0]{1} [1099511627776..1099511627776]{2}", "[0..99999]{7 …}".
func (a Array[T]) String() string {
	var sb strings.Builder
	w := a.Window()
	if w.Len() <= stringLimit {
		writeBlock(&sb, w, a.Values(w.First, w.Last))

		return sb.String()
	}
	for k, r := range a.runs {
		if k > 0 {
			sb.WriteString(" ")
		}
		switch {
		case r.buf != nil:
			writeBlock(&sb, r.bounds(), r.buf)
		case r.bounds().Len() > stringLimit:
			fmt.Fprintf(&sb, "%v%s%v …%s", r.bounds(), _fmtOpen, r.v, _fmtClose)
		default:
			vals := make([]T, r.bounds().Len())
			fill(vals, r.v)
			writeBlock(&sb, r.bounds(), vals)
		}
	}

	return sb.String()
}

// writeBlock prints "[first..last]{v, v, ...}".
func writeBlock[T any](sb *strings.Builder, b Bounds, vals []T) {
	sb.WriteString(b.String())
	sb.WriteString(_fmtOpen)
	for k, v := range vals {
		if k > 0 {
			sb.WriteString(_fmtSep)
		}
		fmt.Fprintf(sb, "%v", v)
	}
	sb.WriteString(_fmtClose)
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = Array[int]{}
