// SPDX-License-Identifier: MIT

// Package barray - concatenation family.
//
// Index convention (shared by every variant):
//
//	result.Get(i) == a.Get(i)                 for i in [af, al]
//	result.Get(i) == b.Get(i - al + (bf - 1)) for i in (al, nl]
//	result.Get(i) == filler                   otherwise
//
// The right operand keeps its own addressing: its declared first index bf
// lands at al+1. The alignment is Slide(b, bf, al+1).

package barray

// concat assembles the result runs without contract checks: a's runs on
// the left part, b's runs slid by al+1-bf on the right part. When the
// fillers differ, the gaps of the right part are stored as constant runs of
// b's filler so they keep reading b.
func concat[T comparable](a Array[T], af, al int, b Array[T], bf, nl int) Array[T] {
	if af > nl {
		return a.kind.Empty()
	}
	share := a.kind.opts.shareStorage
	out := appendRestricted(nil, a.runs, Bounds{First: af, Last: min(al, nl)}, share)
	if al >= nl {
		return a.with(out)
	}

	right := Bounds{First: max(al+1, af), Last: nl}
	slid := b.shift(al + 1 - bf).runs
	if b.kind.dummy == a.kind.dummy {
		return a.with(appendRestricted(out, slid, right, share))
	}

	// p is the first index of right not yet covered.
	p := right.First
	for _, r := range appendRestricted(nil, slid, right, share) {
		if r.lo > p {
			out = append(out, run[T]{lo: p, hi: r.lo - 1, v: b.kind.dummy})
		}
		out = append(out, r)
		if r.hi == right.Last {
			return a.with(out)
		}
		p = r.hi + 1
	}

	return a.with(append(out, run[T]{lo: p, hi: right.Last, v: b.kind.dummy}))
}

// Concat appends the prefix of b (declared [bf, bl]) after a (declared
// [af, al]), producing an array declared over [af, nl].
//
// Implementation:
//   - Stage 1: validate the bounds under strict kinds.
//   - Stage 2: keep a's runs trimmed to [af, al].
//   - Stage 3: append b's runs, slid from bf to al+1, trimmed to (al, nl].
//
// Behavior highlights:
//   - HasBounds(result, af, nl) always holds.
//   - The result uses a's filler and options. Slots read from b outside its
//     window carry b's filler.
//   - bl takes no part in the index arithmetic; strict kinds use it to check
//     that (al, nl] does not reach past b's declared end.
//
// Errors (strict kinds only, as panics):
//   - ErrBadConcat when af <= al <= nl or nl-al <= bl-bf+1 is violated.
//   - ErrDummyMismatch when a and b have different fillers.
//
// Complexity:
//   - Time O(runs of a and b) with shared storage, independent of nl-af.
func Concat[T comparable](a Array[T], af, al int, b Array[T], bf, bl, nl int) Array[T] {
	if a.kind.opts.strict {
		mustValid(ValidateConcat(af, al, bf, bl, nl))
		mustValid(ValidateSameDummy(a, b))
	}

	return concat(a, af, al, b, bf, nl)
}

// ConcatSingletonLeft places v at af and fills (af, nl] from b with the
// Concat offset convention. The result uses b's kind.
func ConcatSingletonLeft[T comparable](v T, af int, b Array[T], bf, bl, nl int) Array[T] {
	if b.kind.opts.strict {
		mustValid(ValidateConcat(af, af, bf, bl, nl))
	}

	return concat(b.kind.Singleton(v, af), af, af, b, bf, nl)
}

// ConcatSingletonRight keeps a on [af, al] and places v at al+1.
// Requires al < nl; indices in (al+1, nl] read the filler.
func ConcatSingletonRight[T comparable](a Array[T], af, al int, v T, nl int) Array[T] {
	if a.kind.opts.strict {
		mustValid(ValidateSingletonRight(af, al, nl))
	}

	return concat(a, af, al, a.kind.Singleton(v, al+1), al+1, nl)
}

// ConcatSingletons builds the two-element array v1 at first, v2 at first+1.
// HasBounds(result, first, nl) holds when first < nl.
func (k Kind[T]) ConcatSingletons(v1 T, first int, v2 T, nl int) Array[T] {
	if k.opts.strict {
		mustValid(ValidateSingletonRight(first, first, nl))
	}

	return concat(k.Singleton(v1, first), first, first, k.Singleton(v2, first+1), first+1, nl)
}

// ConcatSingletons is Default[T]().ConcatSingletons.
func ConcatSingletons[T comparable](v1 T, first int, v2 T, nl int) Array[T] {
	return Default[T]().ConcatSingletons(v1, first, v2, nl)
}
