// SPDX-License-Identifier: MIT

// Package barray - extensional equality and the bounds predicate.
//
// Two arrays are equal when they read the same value at every int index.
// Outside their runs both read their own filler, so equal arrays must share
// the filler and agree on every run. Comparisons walk runs and gaps, never
// the indices of a gap one by one.
//
// Extensionality: if HasBounds(a1, f, l) and HasBounds(a2, f, l) then
// Equal(a1, a2) == EqualOn(a1, a2, f, l). Diff returns the witness index
// when they differ.

package barray

import "math"

// Equal reports extensional equality: a1.Get(i) == a2.Get(i) for every i.
// Complexity: O(runs + stored values), independent of the distance between
// the runs.
func Equal[T comparable](a1, a2 Array[T]) bool {
	if a1.kind.dummy != a2.kind.dummy {
		return false
	}
	_, differ := firstDiff(a1, a2, Bounds{First: math.MinInt, Last: math.MaxInt})

	return !differ
}

// Equal is the method form of Equal(a, b).
func (a Array[T]) Equal(b Array[T]) bool {
	return Equal(a, b)
}

// EqualExt is extensional equality with the declared range kept at the
// interface. first and last do not influence the result.
func EqualExt[T comparable](a1, a2 Array[T], first, last int) bool {
	return Equal(a1, a2)
}

// EqualOn reports whether a1 and a2 agree at every index of [first, last].
// An empty range is vacuously true.
func EqualOn[T comparable](a1, a2 Array[T], first, last int) bool {
	_, differ := Diff(a1, a2, first, last)

	return !differ
}

// Diff returns the smallest index in [first, last] where a1 and a2 differ.
// ok is false when they agree on the whole range.
//
// Implementation:
//   - Stage 1: cut [first, last] into pieces on which each array reads a
//     single run or a single gap.
//   - Stage 2: a piece where both sides are constant (constant runs or
//     fillers) is decided by one comparison; a piece touching a dense run is
//     scanned.
//
// Complexity:
//   - Time O(runs + stored values in range), independent of the range width.
func Diff[T comparable](a1, a2 Array[T], first, last int) (idx int, ok bool) {
	return firstDiff(a1, a2, Bounds{First: first, Last: last})
}

// cursor walks the runs of one array in ascending index order.
type cursor[T comparable] struct {
	runs  []run[T]
	j     int // first run that may still cover the walk position
	dummy T
}

func newCursor[T comparable](a Array[T], from int) *cursor[T] {
	j, _ := search(a.runs, from)

	return &cursor[T]{runs: a.runs, j: j, dummy: a.kind.dummy}
}

// piece returns the run covering p (nil inside a gap) and the last index,
// capped at limit, up to which that answer stays the same.
func (c *cursor[T]) piece(p, limit int) (*run[T], int) {
	for c.j < len(c.runs) && c.runs[c.j].hi < p {
		c.j++
	}
	if c.j == len(c.runs) {
		return nil, limit
	}
	r := &c.runs[c.j]
	if r.lo <= p {
		return r, min(r.hi, limit)
	}

	return nil, min(r.lo-1, limit)
}

// at reads index i of the piece r (nil is the gap).
func (c *cursor[T]) at(r *run[T], i int) T {
	if r == nil {
		return c.dummy
	}

	return r.at(i)
}

// firstDiff returns the first index of r where a1 and a2 differ.
func firstDiff[T comparable](a1, a2 Array[T], r Bounds) (int, bool) {
	if r.Empty() {
		return 0, false
	}
	c1, c2 := newCursor(a1, r.First), newCursor(a2, r.First)
	for p := r.First; ; {
		r1, e1 := c1.piece(p, r.Last)
		r2, e2 := c2.piece(p, r.Last)
		end := min(e1, e2)

		if (r1 == nil || r1.buf == nil) && (r2 == nil || r2.buf == nil) {
			if c1.at(r1, p) != c2.at(r2, p) {
				return p, true
			}
		} else {
			// At least one side is dense, so [p, end] is no wider than its buffer.
			for i := p; ; i++ {
				if c1.at(r1, i) != c2.at(r2, i) {
					return i, true
				}
				if i == end {
					break
				}
			}
		}
		if end == r.Last {
			return 0, false
		}
		p = end + 1
	}
}

// HasBounds reports whether every index outside [first, last] reads the
// filler. first > last asks whether a is all filler.
// Complexity: O(runs + stored values).
func HasBounds[T comparable](a Array[T], first, last int) bool {
	d := a.kind.dummy
	for _, r := range a.runs {
		if first > last {
			if !r.allEqual(r.bounds(), d) {
				return false
			}
			continue
		}
		if first > math.MinInt && !r.allEqual(Bounds{First: math.MinInt, Last: first - 1}, d) {
			return false
		}
		if last < math.MaxInt && !r.allEqual(Bounds{First: last + 1, Last: math.MaxInt}, d) {
			return false
		}
	}

	return true
}

// Support returns the tightest range holding every non-filler value, or an
// empty range when a is all filler. HasBounds(a, f, l) holds exactly when
// Support(a) is empty or contained in [f, l].
// Complexity: O(runs + stored values).
func Support[T comparable](a Array[T]) Bounds {
	d := a.kind.dummy
	first, found := 0, false
	for _, r := range a.runs {
		if i, ok := r.firstOther(d); ok {
			first, found = i, true
			break
		}
	}
	if !found {
		return emptyBounds
	}
	for k := len(a.runs) - 1; k >= 0; k-- {
		if i, ok := a.runs[k].lastOther(d); ok {
			return Bounds{First: first, Last: i}
		}
	}

	return emptyBounds
}

// firstOther returns the first index of r not reading v.
func (r run[T]) firstOther(v T) (int, bool) {
	if r.buf == nil {
		return r.lo, r.v != v
	}
	for k, x := range r.buf {
		if x != v {
			return r.lo + k, true
		}
	}

	return 0, false
}

// lastOther returns the last index of r not reading v.
func (r run[T]) lastOther(v T) (int, bool) {
	if r.buf == nil {
		return r.hi, r.v != v
	}
	for k := len(r.buf) - 1; k >= 0; k-- {
		if r.buf[k] != v {
			return r.lo + k, true
		}
	}

	return 0, false
}
