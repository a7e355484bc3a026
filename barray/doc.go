// SPDX-License-Identifier: MIT

// Package barray implements bounded functional arrays: immutable arrays that
// behave as total maps from int to T, reading a fixed filler value outside
// their declared range.
//
// 🚀 What is barray?
//
//	A small, generic, zero-surprise value type:
//		• Construction: Const, Singleton, FromSlice, Empty, Builder
//		• Access & update: Get, Set (Set returns a new array)
//		• Structure: Slice (restrict), Slide (re-index), Concat and its
//		  single-element variants
//		• Equality: Equal (extensional), EqualOn, Diff (witness), HasBounds
//
// # Model
//
// An Array[T] has no stored "length". It reads some value at every int index.
// The contract "outside [first, last] the array reads the filler" is the
// bounds predicate HasBounds(a, first, last). Constructors establish it,
// Set inside the range preserves it, Slice and Concat re-establish it for
// their own result range.
//
// # Filler values
//
// The filler ("dummy") is fixed per Kind:
//
//	ints := barray.Of(-1)          // filler -1
//	a := ints.Const(7, 1, 3)       // [1..3] = 7, everything else = -1
//	z := barray.Const(7, 1, 3)     // filler 0 (T's zero value)
//
// Composition results inherit the kind of their left operand.
//
// # Representation & complexity
//
// Arrays store sorted runs. A run covers a stretch of indices either densely
// (one slot per index) or as one constant value; indices between runs read
// the filler. Cost follows what is stored, never the distance between
// indices: Set(1<<60, v) on a small array adds one run.
//
// Get is O(log runs). Set copies the run it touches; batch writes go through
// a Builder. Slice, Slide and Concat rebuild the run list and share run
// storage unless the kind was built WithCopyOnSlice. Equal, Diff, HasBounds
// and Support walk runs and gaps, so they are independent of the gaps'
// width.
//
// # Errors
//
// Operations are total: they never return errors. Strict kinds (WithStrict)
// check composition preconditions and panic with a wrapped sentinel from
// errors.go; the same checks are exported as Validate* functions.
//
// # Concurrency
//
// Arrays are immutable values and may be shared across goroutines without
// synchronization. Builder is single-goroutine.
//
// Quick ASCII example:
//
//	a = Const(1, 1, 3)          1 1 1
//	b = Const(2, 1, 3)                2 2 2
//	Concat(a,1,3, b,1,3, 6)     1 1 1 2 2 2     (indices 1..6)
package barray
