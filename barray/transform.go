// SPDX-License-Identifier: MIT

// Package barray - structural transforms: Slide and Slice.
//
// Both edit the run list only: Slide moves every run, Slice trims the runs
// it keeps. Dense storage is shared when the kind shares storage (the
// default); sharing is safe because published runs are never written.
//
// Slide's affine re-indexing (shift) is also the primitive Concat uses to
// align its right operand.

package barray

import "slices"

// shift returns the array reading a[i-d] at i.
// Complexity: O(runs) when sharing storage, O(stored values) otherwise.
func (a Array[T]) shift(d int) Array[T] {
	if d == 0 || len(a.runs) == 0 {
		return a
	}
	runs := make([]run[T], len(a.runs))
	for k, r := range a.runs {
		r.lo, r.hi = r.lo+d, r.hi+d
		if r.buf != nil && !a.kind.opts.shareStorage {
			r.buf = slices.Clone(r.buf)
		}
		runs[k] = r
	}

	return a.with(runs)
}

// Slide re-indexes a by the constant offset newFirst-oldFirst:
//
//	Slide(a, of, nf).Get(i) == a.Get(i - (nf - of))
//
// Behavior highlights:
//   - oldFirst == newFirst returns a itself.
//   - If HasBounds(a, of, nl-(nf-of)) then HasBounds(result, nf, nl).
//   - Strict kinds panic with ErrOffsetOverflow when the offset or the moved
//     window leaves the int domain.
//
// Complexity:
//   - Time O(runs) (O(stored values) under WithCopyOnSlice).
func Slide[T comparable](a Array[T], oldFirst, newFirst int) Array[T] {
	if oldFirst == newFirst {
		return a
	}
	if a.kind.opts.strict {
		mustValid(ValidateSlide(a, oldFirst, newFirst))
	}

	return a.shift(newFirst - oldFirst)
}

// Slice restricts a to [first, last]: indices inside read a, every other
// index reads the filler. first > last yields an array that is all filler.
//
// Implementation:
//   - Stage 1: binary-search the first run reaching first.
//   - Stage 2: keep every run overlapping [first, last], trimmed to it;
//     dense parts are re-sliced (or copied).
//
// Behavior highlights:
//   - HasBounds(result, first, last) always holds.
//   - Slice(a, f, l) equals a whenever HasBounds(a, f, l).
//   - Slice(Slice(a, f1, l1), f2, l2) equals Slice(a, f2, l2) for f1<=f2, l2<=l1.
//
// Complexity:
//   - Time O(log runs + kept runs) (plus the kept values under WithCopyOnSlice).
func Slice[T comparable](a Array[T], first, last int) Array[T] {
	return a.with(appendRestricted(nil, a.runs, Bounds{First: first, Last: last}, a.kind.opts.shareStorage))
}
