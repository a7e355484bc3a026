// SPDX-License-Identifier: MIT

// Package lawcheck checks the algebraic laws of package barray on random
// inputs.
//
// # What is checked
//
// Catalogue lists one Law per property: point access (get/set), bounds
// preservation, extensionality, slide and slice reindexing, constant and
// singleton construction, the concatenation family, Builder agreement with
// Array.Set, and two fixed end-to-end scenarios.
//
// # Determinism
//
// Every law draws from its own math/rand stream derived from Options.Seed
// and the law's position in the catalogue. The same seed reproduces the same
// Report regardless of Options.Parallel.
//
// # Failures
//
// A failing trial never stops the run. Result.Failures counts the failed
// trials and Result.Counterexample keeps the first one. A Check that panics
// is recorded as a failure. Run returns an error only for invalid Options or
// a cancelled context.
//
// Example:
//
//	rep, err := lawcheck.Run(ctx, lawcheck.DefaultOptions())
//	if err != nil {
//		return err
//	}
//	for _, r := range rep.Failed() {
//		fmt.Println(r.Name, r.Counterexample)
//	}
package lawcheck
