// SPDX-License-Identifier: MIT

// Package barray - core types: Bounds, Kind and Array.
//
// Purpose:
//   - Bounds is an inclusive index range [First, Last]; First > Last is empty.
//   - Kind fixes the filler ("dummy") value and the options for a family of arrays.
//   - Array is the immutable bounded array: a storage window over a total map.
//
// Representation:
//   - Array holds sorted, disjoint runs plus its kind. A run covers [lo, hi]
//     either densely (one slot per index) or as a single constant value.
//     Every index outside the runs reads kind.dummy, so far-apart writes
//     cost one run each, never the gap between them.
//   - Run storage is never written after the Array is published. Set
//     copies the touched run, Slice/Slide/Concat may share.

package barray

import (
	"fmt"
	"math"
	"slices"
	"sort"
)

// Bounds is an inclusive index range [First, Last].
// The range is empty when First > Last.
type Bounds struct {
	First int
	Last  int
}

// emptyBounds is the canonical empty range reported by Window and Support.
var emptyBounds = Bounds{First: 0, Last: -1}

// Empty reports whether the range holds no index.
func (b Bounds) Empty() bool {
	return b.First > b.Last
}

// Len returns the number of indices in the range (0 when empty).
// Ranges wider than math.MaxInt saturate at math.MaxInt.
func (b Bounds) Len() int {
	if b.Empty() {
		return 0
	}
	if subOverflows(b.Last, b.First) || b.Last-b.First == math.MaxInt {
		return math.MaxInt
	}

	return b.Last - b.First + 1
}

// Contains reports whether i lies in [First, Last].
func (b Bounds) Contains(i int) bool {
	return b.First <= i && i <= b.Last
}

// ContainsRange reports whether every index of o lies in b.
// An empty o is contained in anything.
func (b Bounds) ContainsRange(o Bounds) bool {
	if o.Empty() {
		return true
	}

	return b.First <= o.First && o.Last <= b.Last
}

// Intersect returns the common sub-range of b and o (possibly empty).
func (b Bounds) Intersect(o Bounds) Bounds {
	r := Bounds{First: max(b.First, o.First), Last: min(b.Last, o.Last)}
	if r.Empty() {
		return emptyBounds
	}

	return r
}

// Shift moves the range by d. Empty ranges stay canonical.
func (b Bounds) Shift(d int) Bounds {
	if b.Empty() {
		return emptyBounds
	}

	return Bounds{First: b.First + d, Last: b.Last + d}
}

// String implements fmt.Stringer: "[first..last]" or "[]" when empty.
func (b Bounds) String() string {
	if b.Empty() {
		return "[]"
	}

	return fmt.Sprintf("[%d..%d]", b.First, b.Last)
}

// Kind fixes the filler value and the options shared by a family of arrays.
// The zero Kind uses T's zero value as filler and default options.
type Kind[T comparable] struct {
	dummy T
	opts  Options
}

// Of returns a Kind whose arrays read dummy outside their storage.
// Use it for element types whose zero value is a meaningful element.
func Of[T comparable](dummy T, opts ...Option) Kind[T] {
	return Kind[T]{dummy: dummy, opts: gatherOptions(opts...)}
}

// Default returns a Kind whose filler is T's zero value.
func Default[T comparable](opts ...Option) Kind[T] {
	var zero T

	return Of(zero, opts...)
}

// Dummy returns the filler value.
func (k Kind[T]) Dummy() T { return k.dummy }

// Options returns the resolved options.
func (k Kind[T]) Options() Options { return k.opts }

// Array is an immutable bounded array: a total map from int to T that reads
// the filler value outside its stored runs.
//
// The zero Array is valid: every index reads T's zero value.
// Arrays are values; copy them freely and share them across goroutines.
// Compare with Equal, never with ==.
type Array[T comparable] struct {
	runs []run[T] // sorted by lo, pairwise disjoint, immutable once published
	kind Kind[T]  // filler and options
}

// run is one stored stretch [lo, hi] of an Array. A dense run holds one
// value per index in buf (len(buf) == hi-lo+1); a constant run has a nil buf
// and reads v everywhere, whatever its width.
type run[T comparable] struct {
	lo, hi int
	buf    []T
	v      T
}

// bounds returns [lo, hi].
func (r run[T]) bounds() Bounds { return Bounds{First: r.lo, Last: r.hi} }

// at reads index i; i must lie in [lo, hi].
func (r run[T]) at(i int) T {
	if r.buf == nil {
		return r.v
	}

	return r.buf[i-r.lo]
}

// restrict returns the part of r inside b, which must intersect r.
// Dense storage is re-sliced when share is set, copied otherwise.
func (r run[T]) restrict(b Bounds, share bool) run[T] {
	w := r.bounds().Intersect(b)
	out := run[T]{lo: w.First, hi: w.Last, v: r.v}
	if r.buf != nil {
		from, to := w.First-r.lo, w.Last-r.lo+1
		out.buf = r.buf[from:to:to]
		if !share {
			out.buf = slices.Clone(out.buf)
		}
	}

	return out
}

// allEqual reports whether r reads v at every index of r ∩ b.
func (r run[T]) allEqual(b Bounds, v T) bool {
	w := r.bounds().Intersect(b)
	if w.Empty() {
		return true
	}
	if r.buf == nil {
		return r.v == v
	}
	for _, x := range r.buf[w.First-r.lo : w.Last-r.lo+1] {
		if x != v {
			return false
		}
	}

	return true
}

// constRun stores v over b: one slot per index up to denseLimit, a single
// constant run beyond. b must not be empty.
func constRun[T comparable](v T, b Bounds) run[T] {
	if b.Len() > denseLimit {
		return run[T]{lo: b.First, hi: b.Last, v: v}
	}
	buf := make([]T, b.Len())
	fill(buf, v)

	return run[T]{lo: b.First, hi: b.Last, buf: buf}
}

// search returns the position of the first run ending at or after i and
// whether that run contains i.
// Complexity: O(log runs).
func search[T comparable](runs []run[T], i int) (int, bool) {
	j := sort.Search(len(runs), func(k int) bool { return runs[k].hi >= i })

	return j, j < len(runs) && runs[j].lo <= i
}

// appendRestricted appends the parts of runs inside b to out.
func appendRestricted[T comparable](out, runs []run[T], b Bounds, share bool) []run[T] {
	if b.Empty() {
		return out
	}
	j, _ := search(runs, b.First)
	for ; j < len(runs) && runs[j].lo <= b.Last; j++ {
		out = append(out, runs[j].restrict(b, share))
	}

	return out
}

// Kind returns the filler/options family of a.
func (a Array[T]) Kind() Kind[T] { return a.kind }

// Dummy returns the filler value read outside the stored runs.
func (a Array[T]) Dummy() T { return a.kind.dummy }

// Window returns the storage window: the hull of the stored runs. Indices
// outside it read Dummy; indices inside may still hold the filler. Use
// Support for the tightest range.
// Complexity: O(1).
func (a Array[T]) Window() Bounds {
	if len(a.runs) == 0 {
		return emptyBounds
	}

	return Bounds{First: a.runs[0].lo, Last: a.runs[len(a.runs)-1].hi}
}

// with builds a sibling array sharing a's kind.
func (a Array[T]) with(runs []run[T]) Array[T] {
	if len(runs) == 0 {
		return Array[T]{kind: a.kind}
	}

	return Array[T]{runs: runs, kind: a.kind}
}

// fill writes v into every slot of buf.
func fill[T comparable](buf []T, v T) {
	var zero T
	if v == zero {
		clear(buf)

		return
	}
	for k := range buf {
		buf[k] = v
	}
}

// addOverflows reports whether x+y leaves the int domain.
func addOverflows(x, y int) bool {
	return (y > 0 && x > math.MaxInt-y) || (y < 0 && x < math.MinInt-y)
}

// subOverflows reports whether x-y leaves the int domain.
func subOverflows(x, y int) bool {
	return (y < 0 && x > math.MaxInt+y) || (y > 0 && x < math.MinInt+y)
}

// mustValid panics with err when err is non-nil. Strict mode only.
func mustValid(err error) {
	if err != nil {
		panic(err)
	}
}
