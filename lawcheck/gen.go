// SPDX-License-Identifier: MIT

// Package lawcheck - random generators for int arrays.
//
// Values are drawn from a narrow band so that generated arrays often agree
// or collide with their filler; that is where equality and bounds bugs live.

package lawcheck

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/lvarray/barray"
)

// farDistance separates the two clusters of a Sparse array: 2^40-1 on 64-bit
// platforms.
const farDistance = math.MaxInt >> 23

// fillers are the candidate filler values; 0 exercises the zero-value path.
var fillers = []int{0, -1, 7}

// Gen draws random inputs for one law. It wraps a single RNG stream and is
// not safe for concurrent use.
type Gen struct {
	rng     *rand.Rand
	maxSpan int
}

// newGen builds a generator over rng.
func newGen(rng *rand.Rand, maxSpan int) *Gen {
	return &Gen{rng: rng, maxSpan: maxSpan}
}

// Between returns a uniform int in [lo, hi] (lo <= hi).
func (g *Gen) Between(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo+1)
}

// Bool returns a fair coin flip.
func (g *Gen) Bool() bool {
	return g.rng.Intn(2) == 0
}

// Value returns an element value in [-3, 9].
func (g *Gen) Value() int {
	return g.Between(-3, 9)
}

// Kind returns a lenient kind with a random filler.
func (g *Gen) Kind() barray.Kind[int] {
	return barray.Of(fillers[g.rng.Intn(len(fillers))])
}

// Range returns a non-empty range inside [-maxSpan, 2*maxSpan].
func (g *Gen) Range() (first, last int) {
	first = g.Between(-g.maxSpan, g.maxSpan)
	last = first + g.Between(0, g.maxSpan)

	return first, last
}

// Index returns an index in [first-2, last+2], so reads hit both sides of
// the declared range.
func (g *Gen) Index(first, last int) int {
	return g.Between(first-2, last+2)
}

// Bounded returns an array of kind k whose non-filler values all lie in
// [first, last]. It is built through Array.Set so the generator exercises the
// persistent path; about one slot in four keeps the filler.
func (g *Gen) Bounded(k barray.Kind[int], first, last int) barray.Array[int] {
	a := k.Empty()
	if g.Bool() {
		a = k.Const(g.Value(), first, last)
	}
	for i := first; i <= last; i++ {
		if g.rng.Intn(4) == 0 {
			a = a.Set(i, k.Dummy())
			continue
		}
		a = a.Set(i, g.Value())
	}

	return a
}

// Perturb returns a copy of a with up to n random writes inside [first, last].
func (g *Gen) Perturb(a barray.Array[int], first, last, n int) barray.Array[int] {
	for w := g.Between(0, n); w > 0; w-- {
		a = a.Set(g.Between(first, last), g.Value())
	}

	return a
}

// Sparse returns an array of kind k with two clusters of values: near, an
// ordinary Range, and far, another Range moved farDistance to the right.
// Laws over Sparse arrays must only walk the clusters, never the gap.
func (g *Gen) Sparse(k barray.Kind[int]) (a barray.Array[int], near, far barray.Bounds) {
	nf, nl := g.Range()
	ff, fl := g.Range()
	near = barray.Bounds{First: nf, Last: nl}
	far = barray.Bounds{First: ff + farDistance, Last: fl + farDistance}
	a = g.Bounded(k, nf, nl)
	for i := far.First; i <= far.Last; i++ {
		a = a.Set(i, g.Value())
	}

	return a, near, far
}
