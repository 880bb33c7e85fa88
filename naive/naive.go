// SPDX-License-Identifier: MIT

// Package naive is a parent-pointer dynamic forest used as a correctness
// oracle for the linkcut and eulertour engines.
//
// Every vertex stores its parent in the represented tree (-1 for a root).
// FindRoot chases parents, MakeRoot reverses the parent chain from a vertex
// to its root, Link reroots u and hangs it below v, and Cut clears whichever
// endpoint points at the other.
//
// Complexity: O(depth) per operation, O(n) in the worst case. Memory O(n).
package naive

import (
	"fmt"

	"github.com/malbarbo/fera-sub000/dyntree"
)

// Edge is the oracle's edge handle.
type Edge struct {
	U, V int
}

// Tree is a parent-pointer forest.
type Tree struct {
	parent []int
}

// Compile-time contract checks.
var (
	_ dyntree.Forest[Edge] = (*Tree)(nil)
	_ dyntree.Rooter       = (*Tree)(nil)
)

// New returns a forest of n isolated vertices.
func New(n int) *Tree {
	if n < 0 {
		panic(fmt.Sprintf("naive: negative vertex count %d", n))
	}
	t := &Tree{parent: make([]int, n)}
	t.Clear()

	return t
}

// Len returns the number of vertices.
func (t *Tree) Len() int { return len(t.parent) }

// Clear makes every vertex a root again.
func (t *Tree) Clear() {
	for i := range t.parent {
		t.parent[i] = -1
	}
}

// FindRoot returns the root of v's tree.
func (t *Tree) FindRoot(v int) int {
	t.check(v)
	for t.parent[v] >= 0 {
		v = t.parent[v]
	}

	return v
}

// MakeRoot reverses the parent chain from v up to its root.
func (t *Tree) MakeRoot(v int) {
	t.check(v)
	prev := -1
	for cur := v; cur >= 0; {
		next := t.parent[cur]
		t.parent[cur] = prev
		prev, cur = cur, next
	}
}

// IsConnected reports whether u and v share a root.
func (t *Tree) IsConnected(u, v int) bool {
	return t.FindRoot(u) == t.FindRoot(v)
}

// Link adds the edge {u, v} unless u and v are already connected.
func (t *Tree) Link(u, v int) (Edge, bool) {
	if t.IsConnected(u, v) {
		return Edge{}, false
	}
	t.MakeRoot(u)
	t.parent[u] = v

	return Edge{U: u, V: v}, true
}

// Cut removes the edge e, panicking with dyntree.ErrNotAnEdge if neither
// endpoint is the parent of the other.
func (t *Tree) Cut(e Edge) {
	t.check(e.U)
	t.check(e.V)
	switch {
	case t.parent[e.U] == e.V:
		t.parent[e.U] = -1
	case t.parent[e.V] == e.U:
		t.parent[e.V] = -1
	default:
		panic(fmt.Errorf("naive: cut(%d,%d): %w", e.U, e.V, dyntree.ErrNotAnEdge))
	}
}

// Ends returns the endpoints of e.
func (t *Tree) Ends(e Edge) (int, int) { return e.U, e.V }

func (t *Tree) check(v int) {
	if v < 0 || v >= len(t.parent) {
		panic(fmt.Errorf("naive: vertex %d of %d: %w", v, len(t.parent), dyntree.ErrVertexOutOfRange))
	}
}
