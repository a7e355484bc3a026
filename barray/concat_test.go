package barray_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvarray/barray"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcat_EndToEnd: a=const(1,1,3), b=const(2,1,3), concat(a,1,3,b,1,3,6).
func TestConcat_EndToEnd(t *testing.T) {
	a := barray.Const(1, 1, 3)
	b := barray.Const(2, 1, 3)
	c := barray.Concat(a, 1, 3, b, 1, 3, 6)

	for i := 1; i <= 3; i++ {
		assert.Equal(t, 1, c.Get(i), "index %d", i)
	}
	for i := 4; i <= 6; i++ {
		assert.Equal(t, 2, c.Get(i), "index %d", i)
	}
	assert.True(t, barray.HasBounds(c, 1, 6))
}

// TestConcat_Continuity checks both halves of the index convention for a
// spread of operand placements.
func TestConcat_Continuity(t *testing.T) {
	tests := []struct {
		name           string
		af, al, bf, bl int
		nl             int
	}{
		{"adjacent", 1, 3, 4, 6, 6},
		{"b at zero", 1, 3, 0, 5, 7},
		{"b far right", -2, 0, 100, 104, 5},
		{"prefix of b", 0, 2, 10, 19, 4},
		{"nothing appended", 0, 4, 7, 9, 4},
		{"negative", -9, -6, -3, -1, -3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := ints.FromSlice(tc.af, seq(100, 100+tc.al-tc.af))
			b := ints.FromSlice(tc.bf, seq(200, 200+tc.bl-tc.bf))
			require.NoError(t, barray.ValidateConcat(tc.af, tc.al, tc.bf, tc.bl, tc.nl))

			c := barray.Concat(a, tc.af, tc.al, b, tc.bf, tc.bl, tc.nl)
			for i := tc.af; i <= tc.al; i++ {
				assert.Equal(t, a.Get(i), c.Get(i), "left index %d", i)
			}
			for i := tc.al + 1; i <= tc.nl; i++ {
				assert.Equal(t, b.Get(i-tc.al+(tc.bf-1)), c.Get(i), "right index %d", i)
			}
			assertFillerOutside(t, c, tc.af, tc.nl)
		})
	}
}

// TestConcat_UsesSlideAlignment shows the right operand equals Slide(b, bf, al+1)
// on the appended range.
func TestConcat_UsesSlideAlignment(t *testing.T) {
	a := ints.Const(5, 0, 2)
	b := ints.FromSlice(40, seq(1, 10))
	c := barray.Concat(a, 0, 2, b, 40, 49, 8)
	want := barray.Slice(barray.Slide(b, 40, 3), 3, 8)
	assert.True(t, barray.EqualOn(c, want, 3, 8))
	assert.True(t, barray.Equal(barray.Slice(c, 3, 8), want))
}

// TestConcat_LeftOperandOutsideDeclaredRange verifies the result ignores
// whatever a holds outside [af, al].
func TestConcat_LeftOperandOutsideDeclaredRange(t *testing.T) {
	a := ints.FromSlice(0, seq(1, 10)) // stores [0..9]
	b := ints.Const(7, 0, 9)
	c := barray.Concat(a, 2, 4, b, 0, 9, 6)
	mustEqualOn(t, c, 0, fillerInt, fillerInt, 3, 4, 5, 7, 7, fillerInt)
}

// TestConcat_MixedFillers: the result takes a's filler; slots read from b
// outside its window carry b's filler.
func TestConcat_MixedFillers(t *testing.T) {
	a := barray.Of(-1).Const(1, 1, 2)
	b := barray.Of(-9).Const(2, 1, 1)
	c := barray.Concat(a, 1, 2, b, 1, 1, 4)

	assert.Equal(t, -1, c.Dummy())
	mustEqualOn(t, c, 0, -1, 1, 1, 2, -9, -1)
}

// TestConcatSingletonLeft places v at af and continues from b.
func TestConcatSingletonLeft(t *testing.T) {
	b := ints.FromSlice(1, []int{10, 20, 30})
	c := barray.ConcatSingletonLeft(5, 0, b, 1, 3, 3)
	mustEqualOn(t, c, -1, fillerInt, 5, 10, 20, 30, fillerInt)
	assert.True(t, barray.HasBounds(c, 0, 3))
	assert.Equal(t, b.Dummy(), c.Dummy())
}

// TestConcatSingletonRight keeps a and places v at al+1.
func TestConcatSingletonRight(t *testing.T) {
	a := ints.FromSlice(1, []int{10, 20, 30})
	c := barray.ConcatSingletonRight(a, 1, 3, 40, 4)
	mustEqualOn(t, c, 0, fillerInt, 10, 20, 30, 40, fillerInt)
	assert.True(t, barray.HasBounds(c, 1, 4))

	// A wider result range pads with the filler after v.
	wide := barray.ConcatSingletonRight(a, 1, 3, 40, 6)
	mustEqualOn(t, wide, 3, 30, 40, fillerInt, fillerInt, fillerInt)
}

// TestConcatSingletons builds the degenerate two-element case.
func TestConcatSingletons(t *testing.T) {
	c := ints.ConcatSingletons(7, 3, 8, 4)
	mustEqualOn(t, c, 2, fillerInt, 7, 8, fillerInt)
	assert.True(t, barray.HasBounds(c, 3, 4))

	d := barray.ConcatSingletons("a", 0, "b", 1)
	assert.Equal(t, []string{"", "a", "b", ""}, d.Values(-1, 2))
}

// TestConcat_EmptyResultRange: af > nl yields an all-filler array.
func TestConcat_EmptyResultRange(t *testing.T) {
	c := barray.Concat(ints.Const(1, 5, 6), 5, 6, ints.Const(2, 0, 1), 0, 1, 4)
	assert.True(t, barray.Equal(c, ints.Empty()))
}

// TestConcat_StrictPanics checks that strict kinds reject contract misuse and
// panic with the matching sentinel.
func TestConcat_StrictPanics(t *testing.T) {
	a := strictInts.Const(1, 1, 3)
	b := strictInts.Const(2, 1, 3)

	tests := []struct {
		name string
		call func()
		want error
	}{
		{"af > al", func() { barray.Concat(a, 3, 1, b, 1, 3, 6) }, barray.ErrBadConcat},
		{"al > nl", func() { barray.Concat(a, 1, 3, b, 1, 3, 2) }, barray.ErrBadConcat},
		{"b too short", func() { barray.Concat(a, 1, 3, b, 1, 3, 7) }, barray.ErrBadConcat},
		{"filler mismatch", func() { barray.Concat(a, 1, 3, barray.Of(0).Const(2, 1, 3), 1, 3, 6) }, barray.ErrDummyMismatch},
		{"singleton right al >= nl", func() { barray.ConcatSingletonRight(a, 1, 3, 9, 3) }, barray.ErrBadConcat},
		{"singleton left b too short", func() { barray.ConcatSingletonLeft(9, 0, b, 1, 3, 4) }, barray.ErrBadConcat},
		{"singletons first >= nl", func() { strictInts.ConcatSingletons(1, 5, 2, 5) }, barray.ErrBadConcat},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := recoverError(tc.call)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}

	assert.NotPanics(t, func() { barray.Concat(a, 1, 3, b, 1, 3, 6) })
	assert.NotPanics(t, func() { barray.ConcatSingletonLeft(9, 0, b, 1, 3, 3) })
	assert.NotPanics(t, func() { barray.ConcatSingletonRight(a, 1, 3, 9, 4) })
}

// TestConcat_LenientNeverPanics runs the same misuse on a lenient kind.
func TestConcat_LenientNeverPanics(t *testing.T) {
	a, b := ints.Const(1, 1, 3), ints.Const(2, 1, 3)
	assert.NotPanics(t, func() {
		barray.Concat(a, 3, 1, b, 1, 3, 6)
		barray.Concat(a, 1, 3, b, 1, 3, 2)
		barray.Concat(a, 1, 3, b, 1, 3, 9)
		barray.ConcatSingletonRight(a, 1, 3, 9, 3)
		ints.ConcatSingletons(1, 5, 2, 5)
	})
	// Out-of-contract but well-typed: the result still has bounds [af, nl].
	c := barray.Concat(a, 1, 3, b, 1, 3, 9)
	assert.True(t, barray.HasBounds(c, 1, 9))
}

// recoverError runs fn and returns the error it panicked with (nil otherwise).
func recoverError(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
			}
		}
	}()
	fn()

	return nil
}
