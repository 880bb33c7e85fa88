// SPDX-License-Identifier: MIT

package eulertour

import (
	"fmt"
	"math/rand/v2"
)

// treapStore keeps every sequence as an implicit treap (ordered by
// position, heap-ordered by a fixed random priority per arc). Nodes are arc
// ids; parent links let Locate compute a rank by walking to the root.
type treapStore struct {
	left   []int
	right  []int
	parent []int
	size   []int
	prio   []uint64
	// holder[r] is the id of the sequence whose treap is rooted at r. It is
	// only meaningful while r is a root.
	holder []int
}

// NewTreapStore returns a balanced Store for the given number of arcs.
// Every Sequence operation and Locate run in O(log len) expected time and no
// operation allocates. Priorities are drawn from a PCG seeded with seed, so a
// fixed seed gives a reproducible shape.
func NewTreapStore(arcs int, seed uint64) Store {
	st := &treapStore{
		left:   make([]int, arcs),
		right:  make([]int, arcs),
		parent: make([]int, arcs),
		size:   make([]int, arcs),
		prio:   make([]uint64, arcs),
		holder: make([]int, arcs),
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	for a := 0; a < arcs; a++ {
		st.prio[a] = rng.Uint64()
		st.detach(a)
	}

	return st
}

func (st *treapStore) NewSequence(id int) Sequence {
	return &treapSequence{id: id, root: none, store: st}
}

func (st *treapStore) Locate(arc int) (int, int) {
	rank := st.sz(st.left[arc])
	x := arc
	for p := st.parent[x]; p != none; x, p = p, st.parent[p] {
		if st.right[p] == x {
			rank += st.sz(st.left[p]) + 1
		}
	}

	return st.holder[x], rank
}

func (st *treapStore) sz(x int) int {
	if x == none {
		return 0
	}

	return st.size[x]
}

// pull recomputes x's size and re-points its children at it.
func (st *treapStore) pull(x int) {
	l, r := st.left[x], st.right[x]
	st.size[x] = 1 + st.sz(l) + st.sz(r)
	if l != none {
		st.parent[l] = x
	}
	if r != none {
		st.parent[r] = x
	}
}

// split cuts the treap rooted at x after its first k elements.
func (st *treapStore) split(x, k int) (int, int) {
	if x == none {
		return none, none
	}
	st.parent[x] = none
	if ls := st.sz(st.left[x]); ls < k {
		a, b := st.split(st.right[x], k-ls-1)
		st.right[x] = a
		st.pull(x)

		return x, b
	}
	a, b := st.split(st.left[x], k)
	st.left[x] = b
	st.pull(x)

	return a, x
}

// merge concatenates the treaps rooted at a and b.
func (st *treapStore) merge(a, b int) int {
	if a == none {
		return b
	}
	if b == none {
		return a
	}
	if st.prio[a] > st.prio[b] {
		st.right[a] = st.merge(st.right[a], b)
		st.pull(a)
		st.parent[a] = none

		return a
	}
	st.left[b] = st.merge(a, st.left[b])
	st.pull(b)
	st.parent[b] = none

	return b
}

// detach turns arc into a single-node treap held by no sequence.
func (st *treapStore) detach(arc int) {
	st.left[arc], st.right[arc], st.parent[arc] = none, none, none
	st.size[arc] = 1
	st.holder[arc] = none
}

// detachAll detaches every node of the treap rooted at x.
func (st *treapStore) detachAll(x int) {
	if x == none {
		return
	}
	l, r := st.left[x], st.right[x]
	st.detach(x)
	st.detachAll(l)
	st.detachAll(r)
}

type treapSequence struct {
	id    int
	root  int
	store *treapStore
}

func (s *treapSequence) ID() int  { return s.id }
func (s *treapSequence) Len() int { return s.store.sz(s.root) }

func (s *treapSequence) First() int {
	x := s.root
	for s.store.left[x] != none {
		x = s.store.left[x]
	}

	return x
}

func (s *treapSequence) Last() int {
	x := s.root
	for s.store.right[x] != none {
		x = s.store.right[x]
	}

	return x
}

func (s *treapSequence) Push(arc int) {
	s.store.detach(arc)
	s.setRoot(s.store.merge(s.root, arc))
}

func (s *treapSequence) Rotate(p int) {
	if p < 0 || p >= s.Len() {
		panic(fmt.Sprintf("eulertour: rotate(%d) on %d arcs", p, s.Len()))
	}
	if p == 0 {
		return
	}
	head, tail := s.store.split(s.root, p)
	s.setRoot(s.store.merge(tail, head))
}

func (s *treapSequence) Extract(lo, hi int, to Sequence) {
	if lo < 0 || hi <= lo || hi >= s.Len() {
		panic(fmt.Sprintf("eulertour: extract(%d,%d) on %d arcs", lo, hi, s.Len()))
	}
	dst := s.peer(to)
	st := s.store

	before, rest := st.split(s.root, lo)
	span, after := st.split(rest, hi-lo+1)
	first, span := st.split(span, 1)
	inner, last := st.split(span, hi-lo-1)
	st.detach(first)
	st.detach(last)

	s.setRoot(st.merge(before, after))
	dst.setRoot(st.merge(dst.root, inner))
}

func (s *treapSequence) Append(from Sequence) {
	src := s.peer(from)
	s.setRoot(s.store.merge(s.root, src.root))
	src.root = none
}

func (s *treapSequence) Clear() {
	s.store.detachAll(s.root)
	s.root = none
}

func (s *treapSequence) setRoot(r int) {
	s.root = r
	if r != none {
		s.store.holder[r] = s.id
	}
}

func (s *treapSequence) peer(other Sequence) *treapSequence {
	o, ok := other.(*treapSequence)
	if !ok || o.store != s.store || o == s {
		panic(fmt.Sprintf("eulertour: sequence %d cannot exchange arcs with %T", s.id, other))
	}

	return o
}
