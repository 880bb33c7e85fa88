// SPDX-License-Identifier: MIT

// Package linkcut implements a dynamic forest as a Link-Cut Tree: every
// represented tree is decomposed into preferred paths and each path is kept
// in an auxiliary splay tree ordered by depth.
//
// Representation:
//
//   - Tree owns exactly n nodes, one per vertex, stored in a flat arena.
//     parent/left/right are arena indices (none == -1); nothing is allocated
//     after New.
//   - A node whose parent does not point back at it through left or right is
//     the top of its splay tree, and its parent index is the path-parent: the
//     real tree edge to the path above.
//   - rev is a pending orientation reversal of the node's splay subtree. It is
//     pushed one level down (children swapped, flags toggled on both
//     children) before a node's children are read.
//
// Push-before-compare rule:
//
//	splay pushes every pending flip on the path from the splay root down to
//	x before the first rotation. A rotation decides zig-zig versus zig-zag by
//	comparing child sides, and those sides are only meaningful once no
//	ancestor holds an unpushed flip.
//
// Operations:
//
//   - expose(x): x becomes the splay root of the path root..x, with an empty
//     right subtree. The represented root is the leftmost node of that tree.
//   - makeRoot(x): expose(x) and flip the whole path, x becomes the root.
//   - findRoot(x): expose(x), then walk left.
//   - Link(u, v): makeRoot(u), parent[u] = v.
//   - Cut({u, v}): makeRoot(u), expose(v), detach v's left child (u).
//
// Complexity: amortized O(log n) per operation. Memory O(n).
//
// Misuse (out of range vertices, cutting a non-edge) panics with an error
// wrapping dyntree.ErrVertexOutOfRange or dyntree.ErrNotAnEdge.
package linkcut
