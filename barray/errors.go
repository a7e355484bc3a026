// SPDX-License-Identifier: MIT
// Package barray: sentinel error set.
// Array operations are total and never return these. They are produced by the
// Validate* helpers in validators.go, and strict arrays (WithStrict) panic
// with them when a composition is called outside its contract.

package barray

import "errors"

// Every message is prefixed with "barray: ..." so it can be grepped in logs.
// Validators wrap the sentinels with a tag; match them with errors.Is.

var (
	// ErrEmptyRange is returned when a range is required to hold at least
	// one index but first > last.
	ErrEmptyRange = errors.New("barray: empty range")

	// ErrOffsetOverflow indicates that re-indexing by new-old would leave the
	// int index domain.
	ErrOffsetOverflow = errors.New("barray: index offset overflows int")

	// ErrNotNarrowing signals that [f2,l2] is not contained in [f1,l1].
	ErrNotNarrowing = errors.New("barray: range is not a narrowing")

	// ErrBadConcat signals concatenation parameters that are inconsistent
	// with the declared bounds of the operands.
	ErrBadConcat = errors.New("barray: inconsistent concatenation bounds")

	// ErrDummyMismatch signals that two operands carry different filler values.
	ErrDummyMismatch = errors.New("barray: filler values differ")
)
