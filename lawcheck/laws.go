// SPDX-License-Identifier: MIT

// Package lawcheck - the law catalogue.
//
// One Law per property of the array abstraction. A Check draws its inputs
// from the Gen it receives and returns a wrapped ErrViolation describing the
// counterexample, or nil.

package lawcheck

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvarray/barray"
)

// ErrViolation marks a counterexample returned by a Check.
var ErrViolation = errors.New("lawcheck: law violated")

// Law is a named property checked over random inputs.
type Law struct {
	Name  string
	Check func(g *Gen) error
}

// violation formats a counterexample.
func violation(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrViolation)
}

// Catalogue returns every law in a fixed order.
func Catalogue() []Law {
	return []Law{
		{"get-set/hit", checkGetSetHit},
		{"get-set/locality", checkGetSetLocality},
		{"set/preserves-bounds", checkSetPreservesBounds},
		{"extensionality/witness", checkExtensionalityWitness},
		{"extensionality/agreement", checkExtensionalityAgreement},
		{"slide/identity", checkSlideIdentity},
		{"slide/reindex", checkSlideReindex},
		{"slide/bounds", checkSlideBounds},
		{"slice/restrict", checkSliceRestrict},
		{"slice/fixed-point", checkSliceFixedPoint},
		{"slice/narrowing", checkSliceNarrowing},
		{"const/bounds", checkConstBounds},
		{"singleton/const", checkSingletonConst},
		{"concat/continuity", checkConcatContinuity},
		{"concat/bounds", checkConcatBounds},
		{"concat/singleton-left", checkConcatSingletonLeft},
		{"concat/singleton-right", checkConcatSingletonRight},
		{"concat/singletons", checkConcatSingletons},
		{"builder/agreement", checkBuilderAgreement},
		{"sparse/get-set", checkSparseGetSet},
		{"sparse/equality", checkSparseEquality},
		{"sparse/slice-slide", checkSparseSliceSlide},
		{"sparse/concat", checkSparseConcat},
		{"scenario/slice-slide", checkScenarioSliceSlide},
		{"scenario/concat", checkScenarioConcat},
	}
}

// ---------- point access ----------

func checkGetSetHit(g *Gen) error {
	f, l := g.Range()
	a := g.Bounded(g.Kind(), f, l)
	i, v := g.Index(f-g.maxSpan, l+g.maxSpan), g.Value()
	if got := a.Set(i, v).Get(i); got != v {
		return violation("get(set(%v,%d,%d),%d)=%d", a, i, v, i, got)
	}

	return nil
}

func checkGetSetLocality(g *Gen) error {
	f, l := g.Range()
	a := g.Bounded(g.Kind(), f, l)
	i, v := g.Index(f, l), g.Value()
	a2 := a.Set(i, v)
	for j := f - 3; j <= l+3; j++ {
		if j != i && a2.Get(j) != a.Get(j) {
			return violation("set(%v,%d,%d) changed index %d", a, i, v, j)
		}
	}

	return nil
}

func checkSetPreservesBounds(g *Gen) error {
	f, l := g.Range()
	a := g.Bounded(g.Kind(), f, l)
	i := g.Between(f, l)
	if a2 := a.Set(i, g.Value()); !barray.HasBounds(a2, f, l) {
		return violation("set inside [%d,%d] broke bounds: %v", f, l, a2)
	}

	return nil
}

// ---------- extensionality ----------

func checkExtensionalityWitness(g *Gen) error {
	f, l := g.Range()
	k := g.Kind()
	a1 := g.Bounded(k, f, l)
	a2 := g.Perturb(a1, f, l, 2)
	if barray.Equal(a1, a2) {
		return nil
	}
	i, ok := barray.Diff(a1, a2, f, l)
	switch {
	case !ok:
		return violation("%v != %v but no witness in [%d,%d]", a1, a2, f, l)
	case i < f || i > l:
		return violation("witness %d outside [%d,%d]", i, f, l)
	case a1.Get(i) == a2.Get(i):
		return violation("witness %d does not differ", i)
	}

	return nil
}

func checkExtensionalityAgreement(g *Gen) error {
	f, l := g.Range()
	k := g.Kind()
	a1 := g.Bounded(k, f, l)
	// Same reads, different construction path.
	a2 := barray.Slice(k.FromSlice(f-1, a1.Values(f-1, l+1)), f, l)
	if !barray.EqualOn(a1, a2, f, l) {
		return violation("rebuild of %v disagrees on [%d,%d]", a1, f, l)
	}
	if !barray.Equal(a1, a2) || !barray.EqualExt(a1, a2, f, l) {
		return violation("%v and %v agree on [%d,%d] but are not equal", a1, a2, f, l)
	}

	return nil
}

// ---------- slide ----------

func checkSlideIdentity(g *Gen) error {
	f, l := g.Range()
	a := g.Bounded(g.Kind(), f, l)
	k := g.Between(-1<<20, 1<<20)
	if !barray.Equal(barray.Slide(a, k, k), a) {
		return violation("slide(%v,%d,%d) is not the identity", a, k, k)
	}

	return nil
}

func checkSlideReindex(g *Gen) error {
	f, l := g.Range()
	a := g.Bounded(g.Kind(), f, l)
	of, nf := g.Index(f, l), g.Between(-3*g.maxSpan, 3*g.maxSpan)
	s := barray.Slide(a, of, nf)
	d := nf - of
	for i := f + d - 3; i <= l+d+3; i++ {
		if s.Get(i) != a.Get(i-d) {
			return violation("slide(%v,%d,%d) at %d", a, of, nf, i)
		}
	}

	return nil
}

func checkSlideBounds(g *Gen) error {
	of, ol := g.Range()
	a := g.Bounded(g.Kind(), of, ol)
	nf := g.Between(-3*g.maxSpan, 3*g.maxSpan)
	nl := ol + (nf - of)
	if s := barray.Slide(a, of, nf); !barray.HasBounds(s, nf, nl) {
		return violation("slide(%v,%d,%d) lacks bounds [%d,%d]", a, of, nf, nf, nl)
	}

	return nil
}

// ---------- slice ----------

func checkSliceRestrict(g *Gen) error {
	f, l := g.Range()
	a := g.Bounded(g.Kind(), f, l)
	f2, l2 := g.Index(f, l), g.Index(f, l)
	s := barray.Slice(a, f2, l2)
	if !barray.HasBounds(s, f2, l2) {
		return violation("slice(%v,%d,%d) lacks bounds", a, f2, l2)
	}
	for i := f2; i <= l2; i++ {
		if s.Get(i) != a.Get(i) {
			return violation("slice(%v,%d,%d) differs at %d", a, f2, l2, i)
		}
	}

	return nil
}

func checkSliceFixedPoint(g *Gen) error {
	f, l := g.Range()
	a := g.Bounded(g.Kind(), f, l)
	if !barray.Equal(barray.Slice(a, f, l), a) {
		return violation("slice(%v,%d,%d) is not a fixed point", a, f, l)
	}

	return nil
}

func checkSliceNarrowing(g *Gen) error {
	f1, l1 := g.Range()
	f2 := g.Between(f1, l1)
	l2 := g.Between(f2, l1)
	a := g.Bounded(g.Kind(), f1-2, l1+2)
	twice := barray.Slice(barray.Slice(a, f1, l1), f2, l2)
	if once := barray.Slice(a, f2, l2); !barray.Equal(twice, once) {
		return violation("slice twice %v != once %v", twice, once)
	}

	return nil
}

// ---------- construction ----------

func checkConstBounds(g *Gen) error {
	f, l := g.Range()
	k, v := g.Kind(), g.Value()
	c := k.Const(v, f, l)
	for i := f; i <= l; i++ {
		if c.Get(i) != v {
			return violation("const(%d,%d,%d) at %d", v, f, l, i)
		}
	}
	if !barray.HasBounds(c, f, l) {
		return violation("const(%d,%d,%d) lacks bounds", v, f, l)
	}

	return nil
}

func checkSingletonConst(g *Gen) error {
	k, v := g.Kind(), g.Value()
	i := g.Between(-g.maxSpan, g.maxSpan)
	if !barray.Equal(k.Singleton(v, i), k.Const(v, i, i)) {
		return violation("singleton(%d,%d) != const", v, i)
	}

	return nil
}

// ---------- concat ----------

// concatCase draws operands satisfying the concatenation contract.
func concatCase(g *Gen) (a barray.Array[int], af, al int, b barray.Array[int], bf, bl, nl int) {
	k := g.Kind()
	af, al = g.Range()
	bf, bl = g.Range()
	a, b = g.Bounded(k, af, al), g.Bounded(k, bf, bl)
	nl = al + g.Between(0, bl-bf+1)

	return a, af, al, b, bf, bl, nl
}

func checkConcatContinuity(g *Gen) error {
	a, af, al, b, bf, bl, nl := concatCase(g)
	c := barray.Concat(a, af, al, b, bf, bl, nl)
	for i := af; i <= al; i++ {
		if c.Get(i) != a.Get(i) {
			return violation("concat left part at %d: %v", i, c)
		}
	}
	for i := al + 1; i <= nl; i++ {
		if c.Get(i) != b.Get(i-al+(bf-1)) {
			return violation("concat right part at %d: %v", i, c)
		}
	}

	return nil
}

func checkConcatBounds(g *Gen) error {
	a, af, al, b, bf, bl, nl := concatCase(g)
	if c := barray.Concat(a, af, al, b, bf, bl, nl); !barray.HasBounds(c, af, nl) {
		return violation("concat lacks bounds [%d,%d]: %v", af, nl, c)
	}

	return nil
}

func checkConcatSingletonLeft(g *Gen) error {
	k := g.Kind()
	bf, bl := g.Range()
	b := g.Bounded(k, bf, bl)
	af, v := g.Between(-g.maxSpan, g.maxSpan), g.Value()
	nl := af + g.Between(0, bl-bf+1)

	c := barray.ConcatSingletonLeft(v, af, b, bf, bl, nl)
	if want := barray.Concat(k.Singleton(v, af), af, af, b, bf, bl, nl); !barray.Equal(c, want) {
		return violation("singleton-left %v != concat %v", c, want)
	}
	if c.Get(af) != v || !barray.HasBounds(c, af, nl) {
		return violation("singleton-left misplaced %d: %v", v, c)
	}

	return nil
}

func checkConcatSingletonRight(g *Gen) error {
	k := g.Kind()
	af, al := g.Range()
	a := g.Bounded(k, af, al)
	v := g.Value()
	nl := al + 1 + g.Between(0, 2)

	c := barray.ConcatSingletonRight(a, af, al, v, nl)
	if c.Get(al+1) != v {
		return violation("singleton-right misplaced %d: %v", v, c)
	}
	if !barray.EqualOn(c, a, af, al) || !barray.HasBounds(c, af, nl) {
		return violation("singleton-right damaged %v: %v", a, c)
	}

	return nil
}

func checkConcatSingletons(g *Gen) error {
	k := g.Kind()
	first := g.Between(-g.maxSpan, g.maxSpan)
	v1, v2 := g.Value(), g.Value()
	c := k.ConcatSingletons(v1, first, v2, first+1)
	if c.Get(first) != v1 || c.Get(first+1) != v2 || !barray.HasBounds(c, first, first+1) {
		return violation("singletons(%d,%d,%d): %v", v1, first, v2, c)
	}

	return nil
}

// ---------- builder ----------

func checkBuilderAgreement(g *Gen) error {
	k := g.Kind()
	f, l := g.Range()
	b := k.NewBuilder(f, l)
	want := k.Const(k.Dummy(), f, l)
	for w := g.Between(0, 2*g.maxSpan); w > 0; w-- {
		i, v := g.Index(f-g.maxSpan, l+g.maxSpan), g.Value()
		b.Set(i, v)
		want = want.Set(i, v)
	}
	if got := b.Array(); !barray.Equal(got, want) {
		return violation("builder %v != set chain %v", got, want)
	}

	return nil
}

// ---------- sparse arrays ----------

// around returns the cluster b widened by two indices on each side.
func around(b barray.Bounds) (int, int) {
	return b.First - 2, b.Last + 2
}

func checkSparseGetSet(g *Gen) error {
	a, near, far := g.Sparse(g.Kind())
	i, v := g.Index(far.First, far.Last), g.Value()
	a2 := a.Set(i, v)
	if got := a2.Get(i); got != v {
		return violation("get(set(%v,%d,%d),%d)=%d", a, i, v, i, got)
	}
	for _, c := range []barray.Bounds{near, far} {
		lo, hi := around(c)
		for j := lo; j <= hi; j++ {
			if j != i && a2.Get(j) != a.Get(j) {
				return violation("set(%v,%d,%d) changed index %d", a, i, v, j)
			}
		}
	}
	if !barray.HasBounds(a2, near.First, far.Last+2) {
		return violation("set(%v,%d,%d) lacks bounds [%d,%d]", a, i, v, near.First, far.Last+2)
	}

	return nil
}

func checkSparseEquality(g *Gen) error {
	k := g.Kind()
	a, near, far := g.Sparse(k)
	// Rebuild far cluster first, through a builder.
	b := k.NewBuilder(near.First, near.Last)
	for i := far.Last; i >= far.First; i-- {
		b.Set(i, a.Get(i))
	}
	for i := near.First; i <= near.Last; i++ {
		b.Set(i, a.Get(i))
	}
	r := b.Array()
	if !barray.Equal(a, r) {
		return violation("rebuild %v != %v", r, a)
	}
	if i, ok := barray.Diff(a, r, near.First-farDistance, far.Last+farDistance); ok {
		return violation("equal %v and %v differ at %d", a, r, i)
	}

	i := g.Between(far.First, far.Last)
	w := r.Set(i, r.Get(i)+1)
	if barray.Equal(a, w) {
		return violation("%v == %v after a write at %d", a, w, i)
	}
	if j, ok := barray.Diff(a, w, near.First-farDistance, far.Last); !ok || j != i {
		return violation("diff(%v,%v)=(%d,%t), want %d", a, w, j, ok, i)
	}
	if !barray.EqualOn(a, w, near.First, i-1) {
		return violation("%v and %v disagree before %d", a, w, i)
	}

	return nil
}

func checkSparseSliceSlide(g *Gen) error {
	a, near, far := g.Sparse(g.Kind())
	s := barray.Slice(a, far.First, far.Last)
	if !barray.HasBounds(s, far.First, far.Last) {
		return violation("slice(%v,%d,%d) lacks bounds", a, far.First, far.Last)
	}
	t := barray.Slide(s, far.First, near.First)
	for i := far.First; i <= far.Last; i++ {
		if t.Get(i-far.First+near.First) != a.Get(i) {
			return violation("slide(slice(%v)) differs at %d", a, i)
		}
	}
	if !barray.EqualOn(barray.Slide(t, near.First, far.First), a, far.First, far.Last) {
		return violation("slide round trip of %v", a)
	}

	return nil
}

func checkSparseConcat(g *Gen) error {
	k := g.Kind()
	a, near, _ := g.Sparse(k)
	b, _, bfar := g.Sparse(k)
	nl := near.Last + g.Between(0, bfar.Len())
	c := barray.Concat(a, near.First, near.Last, b, bfar.First, bfar.Last, nl)
	for i := near.First; i <= near.Last; i++ {
		if c.Get(i) != a.Get(i) {
			return violation("concat left part differs at %d: %v", i, c)
		}
	}
	d := bfar.First - (near.Last + 1)
	for i := near.Last + 1; i <= nl; i++ {
		if c.Get(i) != b.Get(i+d) {
			return violation("concat right part differs at %d: %v", i, c)
		}
	}
	if !barray.HasBounds(c, near.First, nl) {
		return violation("concat %v lacks bounds [%d,%d]", c, near.First, nl)
	}

	return nil
}

// ---------- end-to-end scenarios ----------

func checkScenarioSliceSlide(_ *Gen) error {
	a := barray.Const(0, 1, 5)
	a2 := a.Set(3, 99)
	if a2.Get(3) != 99 || a2.Get(2) != 0 {
		return violation("set: %v", a2)
	}
	b := barray.Slice(a2, 2, 4)
	if !barray.HasBounds(b, 2, 4) || b.Get(3) != 99 {
		return violation("slice: %v", b)
	}
	if c := barray.Slide(b, 2, 10); c.Get(11) != 99 {
		return violation("slide: %v", c)
	}

	return nil
}

func checkScenarioConcat(_ *Gen) error {
	a := barray.Const(1, 1, 3)
	b := barray.Const(2, 1, 3)
	c := barray.Concat(a, 1, 3, b, 1, 3, 6)
	for i := 1; i <= 6; i++ {
		want := 1
		if i > 3 {
			want = 2
		}
		if c.Get(i) != want {
			return violation("concat at %d: %v", i, c)
		}
	}

	return nil
}
