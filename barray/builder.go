// SPDX-License-Identifier: MIT

// Package barray - Builder: transient construction.
//
// Array.Set copies the run it touches on every call. A Builder writes in
// place and publishes an Array with Array(); runs shared with a published
// Array are copied on their first write, so published arrays are never
// mutated.

package barray

import "slices"

// Builder accumulates writes for one array.
// It is NOT safe for concurrent use; the arrays it publishes are.
type Builder[T comparable] struct {
	runs  []run[T] // same invariants as Array.runs
	owned []bool   // owned[j]: runs[j].buf is private to the builder
	kind  Kind[T]
}

// NewBuilder returns a Builder whose window is [first, last] filled with the
// kind's filler. Ranges wider than the dense limit, and first > last, start
// empty: the filler needs no storage.
// Complexity: O(last-first+1) for preallocated windows.
func (k Kind[T]) NewBuilder(first, last int) *Builder[T] {
	b := &Builder[T]{kind: k}
	w := Bounds{First: first, Last: last}
	if !w.Empty() && w.Len() <= denseLimit {
		b.runs = []run[T]{constRun(k.dummy, w)}
		b.owned = []bool{true}
	}

	return b
}

// NewBuilder is Default[T]().NewBuilder.
func NewBuilder[T comparable](first, last int) *Builder[T] {
	return Default[T]().NewBuilder(first, last)
}

// Edit returns a Builder seeded with a's contents and kind.
// Storage is shared until written.
// Complexity: O(runs).
func (a Array[T]) Edit() *Builder[T] {
	return &Builder[T]{runs: slices.Clone(a.runs), owned: make([]bool, len(a.runs)), kind: a.kind}
}

// Get returns the value currently at i.
func (b *Builder[T]) Get(i int) T {
	j, ok := search(b.runs, i)
	if !ok {
		return b.kind.dummy
	}

	return b.runs[j].at(i)
}

// Set writes v at i and returns b for chaining.
//
// Behavior highlights:
//   - Writes inside a dense run are O(1) once the run is owned.
//   - Writes in a gap within reach of a dense neighbour grow it; growth to
//     the right appends with amortized O(1) cost, growth to the left
//     re-allocates.
//   - Writes farther away open a new one-slot run, whatever the distance.
//   - Writing the filler into a gap is a no-op.
func (b *Builder[T]) Set(i int, v T) *Builder[T] {
	j, hit := search(b.runs, i)
	switch {
	case hit:
		b.write(j, i, v)
	case v == b.kind.dummy:
		// the gap already reads the filler
	case j > 0 && b.reaches(j-1, i):
		b.growRight(j-1, i, v)
	case j < len(b.runs) && b.reaches(j, i):
		b.growLeft(j, i, v)
	default:
		b.runs = slices.Insert(b.runs, j, run[T]{lo: i, hi: i, buf: []T{v}})
		b.owned = slices.Insert(b.owned, j, true)
	}

	return b
}

// write stores v at i inside run j.
func (b *Builder[T]) write(j, i int, v T) {
	r := &b.runs[j]
	if r.at(i) == v {
		return
	}
	if r.buf == nil {
		if r.bounds().Len() > denseLimit {
			b.split(j, i, v)

			return
		}
		*r = constRun(r.v, r.bounds())
		b.owned[j] = true
	}
	b.own(j)
	r.buf[i-r.lo] = v
}

// split replaces the wide constant run j by its parts left of i, a one-slot
// run holding v, and its part right of i.
func (b *Builder[T]) split(j, i int, v T) {
	r := b.runs[j]
	parts := make([]run[T], 0, 3)
	if i > r.lo {
		parts = append(parts, run[T]{lo: r.lo, hi: i - 1, v: r.v})
	}
	parts = append(parts, run[T]{lo: i, hi: i, buf: []T{v}})
	if i < r.hi {
		parts = append(parts, run[T]{lo: i + 1, hi: r.hi, v: r.v})
	}
	owned := make([]bool, len(parts))
	for k := range owned {
		owned[k] = true
	}
	b.runs = slices.Replace(b.runs, j, j+1, parts...)
	b.owned = slices.Replace(b.owned, j, j+1, owned...)
}

// own makes the storage of run j private before a write.
func (b *Builder[T]) own(j int) {
	if b.owned[j] {
		return
	}
	b.runs[j].buf = slices.Clone(b.runs[j].buf)
	b.owned[j] = true
}

// reaches reports whether dense run j may grow to cover the gap index i:
// the distance must not exceed max(len(buf), minGrowGap), so growth at most
// doubles a run.
func (b *Builder[T]) reaches(j, i int) bool {
	r := b.runs[j]
	if r.buf == nil {
		return false
	}
	limit := uint(max(len(r.buf), minGrowGap))
	if i > r.hi {
		return uint(i)-uint(r.hi) <= limit
	}

	return uint(r.lo)-uint(i) <= limit
}

// growRight extends dense run j up to i, padding with the filler.
func (b *Builder[T]) growRight(j, i int, v T) {
	b.own(j)
	r := &b.runs[j]
	for k := r.hi + 1; k < i; k++ {
		r.buf = append(r.buf, b.kind.dummy)
	}
	r.buf = append(r.buf, v)
	r.hi = i
}

// growLeft extends dense run j down to i, padding with the filler.
func (b *Builder[T]) growLeft(j, i int, v T) {
	r := &b.runs[j]
	buf := make([]T, r.hi-i+1)
	fill(buf[:r.lo-i], b.kind.dummy)
	copy(buf[r.lo-i:], r.buf)
	buf[0] = v
	r.lo, r.buf = i, buf
	b.owned[j] = true
}

// Array publishes the current contents as an immutable Array.
// The builder stays usable; its next write to a published run copies it.
// Complexity: O(runs).
func (b *Builder[T]) Array() Array[T] {
	if len(b.runs) == 0 {
		return b.kind.Empty()
	}
	out := make([]run[T], len(b.runs))
	for j, r := range b.runs {
		if r.buf != nil {
			r.buf = r.buf[:len(r.buf):len(r.buf)]
		}
		out[j] = r
		b.owned[j] = false
	}

	return Array[T]{runs: out, kind: b.kind}
}
