package barray_test

import (
	"testing"

	"github.com/katalvlaran/lvarray/barray"
)

// benchmarkSet measures Array.Set on a window of n elements.
func benchmarkSet(b *testing.B, n int) {
	a := barray.Const(0, 0, n-1)

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		a = a.Set(i%n, i)
	}
}

// benchmarkBuilder measures in-place writes of n elements through a Builder.
func benchmarkBuilder(b *testing.B, n int) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bld := barray.NewBuilder[int](0, -1)
		for j := 0; j < n; j++ {
			bld.Set(j, j+1)
		}
		_ = bld.Array()
	}
}

func BenchmarkSet_Small(b *testing.B)  { benchmarkSet(b, 64) }
func BenchmarkSet_Medium(b *testing.B) { benchmarkSet(b, 4096) }

func BenchmarkBuilder_Small(b *testing.B)  { benchmarkBuilder(b, 64) }
func BenchmarkBuilder_Medium(b *testing.B) { benchmarkBuilder(b, 4096) }

// BenchmarkGet measures point reads, half of them outside the window.
func BenchmarkGet(b *testing.B) {
	a := barray.Const(1, 0, 1023)
	var sink int

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink += a.Get(i % 2048)
	}
	_ = sink
}

// BenchmarkSliceSlide measures Slice and Slide, which copy only the run list.
func BenchmarkSliceSlide(b *testing.B) {
	a := barray.Const(1, 0, 1<<16)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := barray.Slice(a, 100, 200)
		_ = barray.Slide(s, 100, i)
	}
}

// BenchmarkConcat measures materializing a 2×1024 concatenation.
func BenchmarkConcat(b *testing.B) {
	x := barray.Const(1, 1, 1024)
	y := barray.Const(2, 1, 1024)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = barray.Concat(x, 1, 1024, y, 1, 1024, 2048)
	}
}
