// SPDX-License-Identifier: MIT

package linkcut

import (
	"fmt"

	"github.com/malbarbo/fera-sub000/dyntree"
)

// New returns a forest of n isolated vertices.
// Complexity: O(n) time and memory; no later operation allocates.
func New(n int) *Tree {
	if n < 0 {
		panic(fmt.Sprintf("linkcut: negative vertex count %d", n))
	}
	t := &Tree{
		nodes:   make([]node, n),
		scratch: make([]int, 0, n+1),
	}
	t.Clear()

	return t
}

// Len returns the number of vertices.
func (t *Tree) Len() int { return len(t.nodes) }

// Clear resets the forest to isolated vertices in O(n), reusing the arena.
func (t *Tree) Clear() {
	for i := range t.nodes {
		t.nodes[i].reset()
	}
}

// IsConnected reports whether u and v are in the same tree.
// Complexity: amortized O(log n).
func (t *Tree) IsConnected(u, v int) bool {
	t.check(u)
	t.check(v)
	if u == v {
		return true
	}

	return t.findRoot(u) == t.findRoot(v)
}

// Link adds the edge {u, v} and returns its handle, or ok == false when u
// and v are already connected (u == v included).
// Complexity: amortized O(log n).
func (t *Tree) Link(u, v int) (Edge, bool) {
	if t.IsConnected(u, v) {
		return Edge{}, false
	}
	// u becomes the root of its tree, then its whole tree hangs from v
	// through a path-parent pointer; no splay child slot is touched.
	t.makeRoot(u)
	t.nodes[u].parent = v

	return Edge{U: u, V: v}, true
}

// Cut removes the edge e. It panics with dyntree.ErrNotAnEdge if u and v
// are not adjacent in the forest.
// Complexity: amortized O(log n).
func (t *Tree) Cut(e Edge) {
	u, v := e.U, e.V
	t.check(u)
	t.check(v)

	t.makeRoot(u)
	t.expose(v)
	// Rooted at u, the path root..v is exactly [u, v], so after splaying v
	// its left subtree is the single node u.
	l := t.nodes[v].left
	if u == v || l != u {
		panic(fmt.Errorf("linkcut: cut(%d,%d): %w", u, v, dyntree.ErrNotAnEdge))
	}
	t.push(u)
	if t.nodes[u].left != none || t.nodes[u].right != none {
		panic(fmt.Errorf("linkcut: cut(%d,%d): %w", u, v, dyntree.ErrNotAnEdge))
	}
	t.nodes[v].left = none
	t.nodes[u].parent = none
}

// Ends returns the endpoints of e.
func (t *Tree) Ends(e Edge) (int, int) { return e.U, e.V }

// FindRoot returns the current root of v's represented tree. The root of a
// tree only changes through Link, Cut and MakeRoot.
// Complexity: amortized O(log n).
func (t *Tree) FindRoot(v int) int {
	t.check(v)

	return t.findRoot(v)
}

// MakeRoot reroots v's tree at v (evert). Connectivity is unchanged.
// Complexity: amortized O(log n).
func (t *Tree) MakeRoot(v int) {
	t.check(v)
	t.makeRoot(v)
}

// LCA returns the lowest common ancestor of u and v with respect to the
// current roots, or ok == false when they are in different trees.
// Complexity: amortized O(log n).
func (t *Tree) LCA(u, v int) (int, bool) {
	if !t.IsConnected(u, v) {
		return none, false
	}
	t.expose(u)

	return t.expose(v), true
}

// check panics when v is not a vertex of t.
func (t *Tree) check(v int) {
	if v < 0 || v >= len(t.nodes) {
		panic(fmt.Errorf("linkcut: vertex %d of %d: %w", v, len(t.nodes), dyntree.ErrVertexOutOfRange))
	}
}
