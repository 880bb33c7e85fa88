// SPDX-License-Identifier: MIT

package linkcut

import "github.com/malbarbo/fera-sub000/dyntree"

// Edge is the Link-Cut Tree edge handle: the unordered pair of endpoints
// returned by Link. U is the endpoint that was made root during Link.
type Edge struct {
	U, V int
}

// Tree is a forest of n vertices represented as a Link-Cut Tree.
// The zero value is an empty forest; use New to build n isolated vertices.
type Tree struct {
	nodes   []node
	scratch []int // splay push-down stack, capacity n
}

// Compile-time contract checks.
var (
	_ dyntree.Forest[Edge] = (*Tree)(nil)
	_ dyntree.Rooter       = (*Tree)(nil)
)
