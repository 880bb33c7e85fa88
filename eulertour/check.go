// SPDX-License-Identifier: MIT

package eulertour

import (
	"fmt"

	"github.com/malbarbo/fera-sub000/dyntree"
)

// Check re-derives the owner and rank of every arc from the Store and
// verifies the whole representation:
//
//   - arcs of live edges sit in live tours at distinct ranks covering
//     0..Len()-1, arcs of free edges are detached;
//   - consecutive arcs chain (dst of one is src of the next) and every tour
//     closes on its first vertex;
//   - every vertex reached by a tour agrees on the tour's root;
//   - active[x] is none exactly for isolated vertices and otherwise an arc
//     leaving x;
//   - free tour slots are empty and pool stacks match their bitsets.
//
// The returned error wraps dyntree.ErrCorrupted. Complexity: O(n) plus one
// Locate per arc.
func (t *Tree) Check() error {
	order := make(map[int][]int)
	for id, seq := range t.tours {
		if t.freeTours.live(id) {
			order[id] = make([]int, seq.Len())
			for i := range order[id] {
				order[id][i] = none
			}
		} else if seq.Len() != 0 {
			return corrupted("free tour %d holds %d arcs", id, seq.Len())
		}
	}

	degree := make([]int, len(t.active))
	for e := 0; e < t.freeEdges.size(); e++ {
		for _, arc := range []int{2 * e, 2*e + 1} {
			seq, rank := t.store.Locate(arc)
			if !t.freeEdges.live(e) {
				if seq != none {
					return corrupted("arc %d of free edge %d is held by tour %d", arc, e, seq)
				}
				continue
			}
			slots, ok := order[seq]
			switch {
			case !ok:
				return corrupted("arc %d of edge %d is held by non-live tour %d", arc, e, seq)
			case rank < 0 || rank >= len(slots):
				return corrupted("arc %d has rank %d in tour %d of %d arcs", arc, rank, seq, len(slots))
			case slots[rank] != none:
				return corrupted("arcs %d and %d share rank %d in tour %d", slots[rank], arc, rank, seq)
			}
			slots[rank] = arc
			degree[t.src[arc]]++
		}
	}

	for id, arcs := range order {
		if len(arcs) == 0 {
			return corrupted("live tour %d is empty", id)
		}
		seq := t.tours[id]
		if seq.First() != arcs[0] || seq.Last() != arcs[len(arcs)-1] {
			return corrupted("tour %d ends %d..%d, ranks say %d..%d",
				id, seq.First(), seq.Last(), arcs[0], arcs[len(arcs)-1])
		}
		root := t.src[arcs[0]]
		for i, arc := range arcs {
			if arc == none {
				return corrupted("tour %d has no arc at rank %d", id, i)
			}
			next := arcs[(i+1)%len(arcs)]
			if next != none && t.dst[arc] != t.src[next] {
				return corrupted("tour %d breaks between ranks %d and %d", id, i, (i+1)%len(arcs))
			}
			for _, x := range []int{t.src[arc], t.dst[arc]} {
				if r := t.findRoot(x); r != root {
					return corrupted("vertex %d in tour %d reports root %d, want %d", x, id, r, root)
				}
			}
		}
	}

	for x, a := range t.active {
		switch {
		case a == none && degree[x] > 0:
			return corrupted("vertex %d has %d arcs but no active arc", x, degree[x])
		case a == none:
		case degree[x] == 0:
			return corrupted("isolated vertex %d has active arc %d", x, a)
		case t.src[a] != x:
			return corrupted("active arc %d of vertex %d leaves %d", a, x, t.src[a])
		}
	}

	for _, p := range []*pool{&t.freeTours, &t.freeEdges} {
		if uint(len(p.stack)) != p.free.Count() {
			return corrupted("%s pool lists %d free ids, bitset has %d", p.name, len(p.stack), p.free.Count())
		}
		for _, id := range p.stack {
			if p.live(id) {
				return corrupted("%s %d is listed free but tagged live", p.name, id)
			}
		}
	}

	return nil
}

func corrupted(format string, args ...any) error {
	return fmt.Errorf("eulertour: "+format+": %w", append(args, dyntree.ErrCorrupted)...)
}
