// SPDX-License-Identifier: MIT

package workload

import (
	"math/rand"

	"github.com/google/btree"

	"github.com/malbarbo/fera-sub000/dyntree"
)

// edgeSet maps live edges, keyed by their normalized endpoint pair, to
// engine handles. The ordered B-tree keeps picks reproducible for a seed.
type edgeSet[E any] struct {
	tree *btree.BTreeG[edgeEntry[E]]
}

type edgeEntry[E any] struct {
	key  dyntree.Pair
	edge E
}

const edgeSetDegree = 16

func newEdgeSet[E any]() *edgeSet[E] {
	return &edgeSet[E]{
		tree: btree.NewG(edgeSetDegree, func(a, b edgeEntry[E]) bool {
			return pairLess(a.key, b.key)
		}),
	}
}

func normalize(u, v int) dyntree.Pair {
	if u > v {
		u, v = v, u
	}

	return dyntree.Pair{U: u, V: v}
}

func pairLess(a, b dyntree.Pair) bool {
	if a.U != b.U {
		return a.U < b.U
	}

	return a.V < b.V
}

func (s *edgeSet[E]) put(u, v int, e E) {
	s.tree.ReplaceOrInsert(edgeEntry[E]{key: normalize(u, v), edge: e})
}

func (s *edgeSet[E]) remove(u, v int) (E, bool) {
	entry, ok := s.tree.Delete(edgeEntry[E]{key: normalize(u, v)})

	return entry.edge, ok
}

func (s *edgeSet[E]) len() int { return s.tree.Len() }

func (s *edgeSet[E]) clear() { s.tree.Clear(true) }

// pick returns the first live edge at or after a random pair of 0..n-1,
// wrapping around to the smallest one.
func (s *edgeSet[E]) pick(rng *rand.Rand, n int) (edgeEntry[E], bool) {
	var (
		found edgeEntry[E]
		ok    bool
	)
	pivot := edgeEntry[E]{key: normalize(rng.Intn(n), rng.Intn(n))}
	s.tree.AscendGreaterOrEqual(pivot, func(item edgeEntry[E]) bool {
		found, ok = item, true
		return false
	})
	if !ok {
		found, ok = s.tree.Min()
	}

	return found, ok
}
