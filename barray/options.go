// SPDX-License-Identifier: MIT

// Package barray: functional configuration for array kinds.
//
// Options are resolved once when a Kind is created (Of, Default) and then
// travel with every array derived from it, so Slice, Slide and Concat results
// keep the policy of their (left) operand.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag changes behavior and is covered by tests.

package barray

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultStrict controls contract checking in composition operations.
	// false ⇒ out-of-contract calls produce an unspecified but well-typed array.
	DefaultStrict = false

	// DefaultShareStorage lets Slice and Slide reuse the storage of their input.
	// false ⇒ both copy the surviving runs, so a small slice does not pin a
	// large parent buffer.
	DefaultShareStorage = true
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	strict       bool // DefaultStrict
	shareStorage bool // DefaultShareStorage
}

// WithStrict makes composition operations validate their preconditions and
// panic with a wrapped sentinel (ErrBadConcat, ErrOffsetOverflow, ...) when
// the caller breaks them.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// Notes:
//   - Intended for tests and debug builds. Lenient mode is the default.
func WithStrict() Option {
	return func(o *Options) { o.strict = true }
}

// WithLenient restores the default: no contract checks.
func WithLenient() Option {
	return func(o *Options) { o.strict = false }
}

// WithCopyOnSlice makes Slice and Slide materialize a fresh buffer instead of
// sharing the input's storage.
func WithCopyOnSlice() Option {
	return func(o *Options) { o.shareStorage = false }
}

// defaultOptions returns Options populated with package defaults.
func defaultOptions() Options {
	return Options{
		strict:       DefaultStrict,
		shareStorage: DefaultShareStorage,
	}
}

// gatherOptions applies opts in order over the defaults.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// Strict reports whether contract checks are enabled.
func (o Options) Strict() bool { return o.strict }

// ShareStorage reports whether Slice/Slide may share storage.
func (o Options) ShareStorage() bool { return o.shareStorage }
