// SPDX-License-Identifier: MIT

package linkcut

// none marks an absent parent or child.
const none = -1

// node is one vertex's slot in the splay arena.
type node struct {
	parent int
	left   int
	right  int
	rev    bool
}

// reset detaches the node from every splay tree.
func (nd *node) reset() {
	nd.parent, nd.left, nd.right, nd.rev = none, none, none, false
}

// isRoot reports whether x is the root of its auxiliary splay tree, i.e. its
// parent is either absent or only a path-parent.
func (t *Tree) isRoot(x int) bool {
	p := t.nodes[x].parent
	return p == none || (t.nodes[p].left != x && t.nodes[p].right != x)
}

// push propagates a pending reversal of x's subtree one level down.
func (t *Tree) push(x int) {
	nd := &t.nodes[x]
	if !nd.rev {
		return
	}
	nd.left, nd.right = nd.right, nd.left
	nd.rev = false
	if nd.left != none {
		t.nodes[nd.left].rev = !t.nodes[nd.left].rev
	}
	if nd.right != none {
		t.nodes[nd.right].rev = !t.nodes[nd.right].rev
	}
}

// rotate promotes x above its splay parent. Neither x nor its parent may
// hold a pending flip.
func (t *Tree) rotate(x int) {
	p := t.nodes[x].parent
	g := t.nodes[p].parent

	// Reattach x to the grandparent first, while p's slot in g is still
	// recognisable. If p hangs from g by a path-parent only, x inherits it.
	if g != none {
		switch p {
		case t.nodes[g].left:
			t.nodes[g].left = x
		case t.nodes[g].right:
			t.nodes[g].right = x
		}
	}
	t.nodes[x].parent = g

	// Move the inner subtree of x across to p.
	if t.nodes[p].left == x {
		inner := t.nodes[x].right
		t.nodes[p].left = inner
		if inner != none {
			t.nodes[inner].parent = p
		}
		t.nodes[x].right = p
	} else {
		inner := t.nodes[x].left
		t.nodes[p].right = inner
		if inner != none {
			t.nodes[inner].parent = p
		}
		t.nodes[x].left = p
	}
	t.nodes[p].parent = x
}

// splay moves x to the root of its auxiliary tree.
//
// Steps:
//  1. Walk up from x to the root of its splay tree, recording the path.
//  2. Push pending flips along that path from the top down. A rotation
//     compares child sides, and a side is only meaningful once every
//     ancestor's flip has been pushed; skipping this step mirrors subtrees.
//  3. Rotate x upwards: zig-zig rotates the parent first when x and its
//     parent are same-side children, zig-zag rotates x twice, and a final
//     zig handles a parent that is the root.
//
// Complexity: amortized O(log n); the path buffer is the tree's scratch
// slice and does not allocate.
func (t *Tree) splay(x int) {
	// Push pending flips top-down along the access path before any side
	// comparison. stack reuses the tree's scratch buffer.
	stack := t.scratch[:0]
	for y := x; ; y = t.nodes[y].parent {
		stack = append(stack, y)
		if t.isRoot(y) {
			break
		}
	}
	for i := len(stack) - 1; i >= 0; i-- {
		t.push(stack[i])
	}
	t.scratch = stack[:0]

	for !t.isRoot(x) {
		p := t.nodes[x].parent
		if !t.isRoot(p) {
			g := t.nodes[p].parent
			if (t.nodes[g].left == p) == (t.nodes[p].left == x) {
				t.rotate(p) // zig-zig
			} else {
				t.rotate(x) // zig-zag
			}
		}
		t.rotate(x)
	}
}

// expose makes the path from the represented root to x preferred, and
// leaves x at the root of its splay tree with no right child.
//
// Steps:
//  1. Splay y = x inside its splay tree and drop its right child, which
//     held the part of the path deeper than x.
//  2. Follow y's path-parent, splay it, and hang the previous splay tree as
//     its right child, so the two paths become one preferred path.
//  3. Repeat until y has no parent, then splay x to the top.
//
// It returns the last node reached through a path-parent link (x itself
// when x already shared a splay tree with the root). After expose(u),
// expose(v) returns the lowest common ancestor of u and v if they are
// connected.
//
// Complexity: amortized O(log n).
func (t *Tree) expose(x int) int {
	last := none
	for y := x; y != none; y = t.nodes[y].parent {
		t.splay(y)
		// The previously exposed path replaces y's deeper part.
		t.nodes[y].right = last
		last = y
	}
	t.splay(x)

	return last
}

// makeRoot reroots x's represented tree at x.
func (t *Tree) makeRoot(x int) {
	t.expose(x)
	t.nodes[x].rev = !t.nodes[x].rev
}

// findRoot returns the root of x's represented tree and splays it.
//
// Steps:
//  1. expose(x), so x's splay tree holds exactly the root-to-x path.
//  2. The root is the shallowest node, the leftmost one in depth order:
//     descend left children, pushing each node's flip before reading its
//     left child.
//  3. Splay the root found to keep the amortized bound.
//
// Complexity: amortized O(log n).
func (t *Tree) findRoot(x int) int {
	t.expose(x)
	r := x
	t.push(r)
	for t.nodes[r].left != none {
		r = t.nodes[r].left
		t.push(r)
	}
	t.splay(r)

	return r
}
