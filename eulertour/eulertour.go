// SPDX-License-Identifier: MIT

package eulertour

import (
	"fmt"

	"github.com/malbarbo/fera-sub000/dyntree"
)

// New returns a forest of n isolated vertices. It reserves the whole arc
// table (2(n-1) arcs) and ⌈n/2⌉+1 tour slots up front.
//
// Complexity: O(n) time and memory.
func New(n int, opts ...Option) *Tree {
	if n < 0 {
		panic(fmt.Sprintf("eulertour: negative vertex count %d", n))
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	edges := max(n-1, 0)
	// A forest has at most ⌊n/2⌋ non-singleton trees; Cut borrows one more
	// slot before it knows whether the split leaves an empty side.
	tours := (n+1)/2 + 1

	t := &Tree{
		store:     o.Store(2 * edges),
		checks:    o.Checks,
		tours:     make([]Sequence, tours),
		freeTours: newPool("tour", tours),
		src:       make([]int, 2*edges),
		dst:       make([]int, 2*edges),
		freeEdges: newPool("edge", edges),
		active:    make([]int, n),
	}
	for id := range t.tours {
		t.tours[id] = t.store.NewSequence(id)
	}
	for x := range t.active {
		t.active[x] = none
	}

	return t
}

// Len returns the number of vertices.
func (t *Tree) Len() int { return len(t.active) }

// Clear resets the forest to isolated vertices in O(n), keeping every
// reservation.
func (t *Tree) Clear() {
	for id, seq := range t.tours {
		if t.freeTours.live(id) {
			seq.Clear()
		}
	}
	t.freeTours.reset(len(t.tours))
	t.freeEdges.reset(t.freeEdges.size())
	for x := range t.active {
		t.active[x] = none
	}
}

// IsConnected reports whether u and v are in the same tree.
func (t *Tree) IsConnected(u, v int) bool {
	t.checkVertex(u)
	t.checkVertex(v)

	return u == v || t.findRoot(u) == t.findRoot(v)
}

// FindRoot returns the source of the first arc of v's tour, or v itself if
// v is isolated.
func (t *Tree) FindRoot(v int) int {
	t.checkVertex(v)

	return t.findRoot(v)
}

// MakeRoot rotates v's tour so that it starts at v. Connectivity is
// unchanged.
func (t *Tree) MakeRoot(v int) {
	t.checkVertex(v)
	t.makeRoot(v)
}

// TourLen returns the number of arcs in v's tour, twice the number of edges
// of v's tree.
func (t *Tree) TourLen(v int) int {
	t.checkVertex(v)
	if t.active[v] == none {
		return 0
	}

	return t.tourOf(v).Len()
}

// Link adds the edge {u, v} and returns its handle, or ok == false when u
// and v are already connected.
//
// Steps:
//  1. Reject connected pairs (u == v included).
//  2. Acquire an edge id e and record its arcs 2e (u→v) and 2e+1 (v→u).
//  3. Splice by case:
//     a. both non-singleton: reroot both tours, push u→v onto u's tour,
//     append v's tour, push v→u and release v's tour slot;
//     b. only u non-singleton: reroot u, push u→v then v→u, v's active arc
//     becomes v→u;
//     c. only v non-singleton: the mirror of b;
//     d. both singleton: acquire a tour slot holding u→v, v→u.
//  4. Run the consistency check when enabled.
//
// Complexity: O(1) plus two Rotates and one Append of the chosen Store;
// O(log n) expected with the treap store.
func (t *Tree) Link(u, v int) (Edge, bool) {
	if t.IsConnected(u, v) {
		return none, false
	}

	e := t.freeEdges.acquire()
	fwd, bwd := 2*e, 2*e+1
	t.src[fwd], t.dst[fwd] = u, v
	t.src[bwd], t.dst[bwd] = v, u

	switch au, av := t.active[u], t.active[v]; {
	case au != none && av != none:
		// tour(u) u→v tour(v) v→u, with both tours starting at their
		// endpoint.
		t.makeRoot(u)
		t.makeRoot(v)
		tu, tv := t.tourOf(u), t.tourOf(v)
		tu.Push(fwd)
		tu.Append(tv)
		tu.Push(bwd)
		t.freeTours.release(tv.ID())
	case au != none:
		t.makeRoot(u)
		tu := t.tourOf(u)
		tu.Push(fwd)
		tu.Push(bwd)
		t.active[v] = bwd
	case av != none:
		t.makeRoot(v)
		tv := t.tourOf(v)
		tv.Push(bwd)
		tv.Push(fwd)
		t.active[u] = fwd
	default:
		seq := t.tours[t.freeTours.acquire()]
		seq.Push(fwd)
		seq.Push(bwd)
		t.active[u] = fwd
		t.active[v] = bwd
	}

	t.verify("link")

	return Edge(e), true
}

// Cut removes the edge e. It panics with dyntree.ErrNotAnEdge when e is not
// a live edge.
//
// Steps:
//  1. Reroot the tour at u, so it reads  ... u→v [v's side] v→u ... and u→v
//     precedes v→u.
//  2. Locate both arcs; they must share a tour with u→v first.
//  3. Acquire a tour slot and Extract the arcs strictly between the pair
//     into it, dropping the pair itself.
//  4. Point active[v] and active[u] at their tours, or mark them isolated
//     and release the tour slot when a side has no arcs left.
//  5. Release e and run the consistency check when enabled.
//
// Complexity: one Rotate and one Extract of the chosen Store; O(log n)
// expected with the treap store.
func (t *Tree) Cut(e Edge) {
	if int(e) < 0 || int(e) >= t.freeEdges.size() || !t.freeEdges.live(int(e)) {
		panic(fmt.Errorf("eulertour: cut(%d): %w", e, dyntree.ErrNotAnEdge))
	}
	fwd, bwd := 2*int(e), 2*int(e)+1
	u, v := t.src[fwd], t.dst[fwd]

	// Rooted at u the tour reads  ... u→v [v's side] v→u ...
	t.makeRoot(u)
	seq, lo := t.store.Locate(fwd)
	seq2, hi := t.store.Locate(bwd)
	if seq == none || seq != seq2 || lo >= hi {
		panic(fmt.Errorf("eulertour: cut(%d): arcs at %d:%d and %d:%d: %w",
			e, seq, lo, seq2, hi, dyntree.ErrCorrupted))
	}

	outer := t.tours[seq]
	inner := t.tours[t.freeTours.acquire()]
	outer.Extract(lo, hi, inner)

	t.settle(v, inner)
	t.settle(u, outer)
	t.freeEdges.release(int(e))

	t.verify("cut")
}

// Ends returns the endpoints of e in the order they were passed to Link.
func (t *Tree) Ends(e Edge) (int, int) {
	if int(e) < 0 || int(e) >= t.freeEdges.size() {
		panic(fmt.Errorf("eulertour: ends(%d): %w", e, dyntree.ErrNotAnEdge))
	}

	return t.src[2*int(e)], t.dst[2*int(e)]
}

// settle points active[x] at the first arc of seq, which starts at x, or
// marks x isolated and returns seq to the pool when it is empty.
func (t *Tree) settle(x int, seq Sequence) {
	if seq.Len() == 0 {
		t.active[x] = none
		t.freeTours.release(seq.ID())
		return
	}
	t.active[x] = seq.First()
}

func (t *Tree) findRoot(x int) int {
	if t.active[x] == none {
		return x
	}

	return t.src[t.tourOf(x).First()]
}

func (t *Tree) makeRoot(x int) {
	a := t.active[x]
	if a == none {
		return
	}
	seq, rank := t.store.Locate(a)
	if rank != 0 {
		t.tours[seq].Rotate(rank)
	}
}

// tourOf returns the tour holding x's active arc. x must not be isolated.
func (t *Tree) tourOf(x int) Sequence {
	seq, _ := t.store.Locate(t.active[x])

	return t.tours[seq]
}

func (t *Tree) checkVertex(v int) {
	if v < 0 || v >= len(t.active) {
		panic(fmt.Errorf("eulertour: vertex %d of %d: %w", v, len(t.active), dyntree.ErrVertexOutOfRange))
	}
}

// verify runs Check when the tree was built WithChecks.
func (t *Tree) verify(op string) {
	if !t.checks {
		return
	}
	if err := t.Check(); err != nil {
		panic(fmt.Errorf("eulertour: after %s: %w", op, err))
	}
}
