// Package lvarray is the root of a small family of packages around one
// value type: an immutable array indexed by integers that reads a fixed
// filler value everywhere outside the range it was built for.
//
// 🚀 What is in the module?
//
//	barray/          — Array[T], Kind[T], Builder[T], Bounds, validators
//	lawcheck/        — seeded, parallel random checking of the array laws
//	internal/view/   — table rendering of array windows and law reports
//	internal/cli/    — the `barray` command (scenario, check, show)
//	cmd/barray/      — main package of the command
//
// ✨ Why a bounded functional array?
//
//   - Total reads: Get never fails, out-of-range indices read the filler
//   - Values, not references: every update returns a new array, so arrays
//     are shared between goroutines without locks
//   - Cheap structure: Slice and Slide re-use storage in O(1)
//   - Explicit contracts: Validate* functions state every precondition, and
//     strict kinds enforce them
//
// Quick start:
//
//	a := barray.Const(0, 1, 5).Set(3, 99)
//	b := barray.Slide(barray.Slice(a, 2, 4), 2, 10)
//	fmt.Println(b.Get(11)) // 99
//
// See barray's package documentation for the model and complexity notes.
package lvarray
