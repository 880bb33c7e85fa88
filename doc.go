// SPDX-License-Identifier: MIT

// Package fera is the root of a small library of dynamic forests: undirected
// forests that accept edge insertions and deletions while answering
// connectivity queries.
//
// Everything is organized under a handful of subpackages:
//
//	dyntree/    the Forest contract, shared errors and algorithms over it
//	linkcut/    link-cut trees over splay trees, amortized O(log n)
//	eulertour/  Euler-tour trees over array or treap sequences
//	naive/      parent-pointer reference forest, O(n) per operation
//	workload/   scripts, generators, replay and engine comparison
//	config/     configuration of the dyntree command
//	cmd/dyntree the dyntree command: replay, stress and generate
//
// Quick ASCII example:
//
//	0───1       link(1, 2)      0───1───2
//	        2   ─────────▶
//	            cut(0, 1)       0   1───2
//	            ─────────▶
//
// Every engine answers the same queries for the same operations; the
// dyntree stress command checks exactly that.
package fera
