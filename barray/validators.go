// SPDX-License-Identifier: MIT
// Package: barray
//
// Purpose:
//   - One place for the preconditions of the composition operations.
//   - Array operations never call these in lenient mode; strict kinds call
//     them and panic on the returned error.
//   - Return sentinels wrapped with a tag so errors.Is keeps working.
//
// Determinism & Performance:
//   - All checks are pure and O(1).

package barray

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateRange ensures first <= last.
// Returns wrapped ErrEmptyRange otherwise.
func ValidateRange(first, last int) error {
	if first > last {
		return validatorErrorf(fmt.Sprintf("ValidateRange(%d,%d)", first, last), ErrEmptyRange)
	}

	return nil
}

// ValidateSlide ensures that re-indexing a by newFirst-oldFirst stays inside
// the int domain, both for the offset itself and for a's storage window.
// Returns wrapped ErrOffsetOverflow otherwise.
func ValidateSlide[T comparable](a Array[T], oldFirst, newFirst int) error {
	tag := fmt.Sprintf("ValidateSlide(%d,%d)", oldFirst, newFirst)
	if subOverflows(newFirst, oldFirst) {
		return validatorErrorf(tag, ErrOffsetOverflow)
	}
	d := newFirst - oldFirst
	w := a.Window()
	if w.Empty() {
		return nil
	}
	if addOverflows(w.First, d) || addOverflows(w.Last, d) {
		return validatorErrorf(tag+": window", ErrOffsetOverflow)
	}

	return nil
}

// ValidateNarrowing ensures f1 <= f2 and l2 <= l1, the precondition of the
// slice composition law Slice(Slice(a,f1,l1),f2,l2) == Slice(a,f2,l2).
// Returns wrapped ErrNotNarrowing otherwise.
func ValidateNarrowing(f1, l1, f2, l2 int) error {
	if f1 > f2 || l2 > l1 {
		return validatorErrorf(fmt.Sprintf("ValidateNarrowing([%d,%d],[%d,%d])", f1, l1, f2, l2), ErrNotNarrowing)
	}

	return nil
}

// ValidateConcat checks the bounds contract of Concat:
//   - af <= al <= nl (the left operand is non-empty and fits the result),
//   - nl-al <= bl-bf+1 (the appended part does not reach past b's declared end),
//   - the alignment offset bf-1-al fits in int.
//
// Returns wrapped ErrBadConcat or ErrOffsetOverflow.
func ValidateConcat(af, al, bf, bl, nl int) error {
	tag := fmt.Sprintf("ValidateConcat(af=%d,al=%d,bf=%d,bl=%d,nl=%d)", af, al, bf, bl, nl)
	if af > al {
		return validatorErrorf(tag+": af > al", ErrBadConcat)
	}
	if al > nl {
		return validatorErrorf(tag+": al > nl", ErrBadConcat)
	}
	if subOverflows(bf, 1) || subOverflows(bf-1, al) || subOverflows(nl, al) || subOverflows(bl, bf) {
		return validatorErrorf(tag, ErrOffsetOverflow)
	}
	if nl-al > 0 && (bf > bl || nl-al-1 > bl-bf) {
		return validatorErrorf(tag+": right operand too short", ErrBadConcat)
	}

	return nil
}

// ValidateSingletonRight checks al < nl, the contract of ConcatSingletonRight
// (and of ConcatSingletons with al == first). The left operand may be empty
// (af == al+1): appending one value to an empty array is allowed.
// Returns wrapped ErrBadConcat otherwise.
func ValidateSingletonRight(af, al, nl int) error {
	tag := fmt.Sprintf("ValidateSingletonRight(af=%d,al=%d,nl=%d)", af, al, nl)
	if al >= nl {
		return validatorErrorf(tag+": al >= nl", ErrBadConcat)
	}

	return nil
}

// ValidateSameDummy ensures a and b share the filler value.
// Returns wrapped ErrDummyMismatch otherwise.
func ValidateSameDummy[T comparable](a, b Array[T]) error {
	if a.kind.dummy != b.kind.dummy {
		return validatorErrorf(fmt.Sprintf("ValidateSameDummy(%v,%v)", a.kind.dummy, b.kind.dummy), ErrDummyMismatch)
	}

	return nil
}
