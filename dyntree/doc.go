// SPDX-License-Identifier: MIT

// Package dyntree defines the dynamic-forest contract shared by the
// Link-Cut Tree (package linkcut), the Euler-Tour Tree (package eulertour)
// and the parent-pointer oracle (package naive).
//
// What:
//
//   - A dynamic forest is a collection of disjoint trees over a fixed
//     universe of n vertices 0..n-1. Edges are added with Link and removed
//     with Cut; IsConnected answers whether two vertices share a tree.
//   - The structure never represents a cycle: Link on two connected vertices
//     returns ok == false and leaves the forest untouched.
//
// Why:
//
//   - Dynamic MST maintenance, incremental connectivity, network-flow
//     re-optimization and other online graph algorithms need connectivity
//     queries in sub-linear time while edges come and go.
//
// Key Types:
//
//   - Forest[E]: the contract. E is the engine's opaque edge handle.
//   - Rooter:    optional capability, FindRoot(v) returns the canonical
//     representative of v's tree.
//
// Generic algorithms:
//
//   - SpanningForest(f, pairs): greedy, Kruskal-style spanning forest.
//   - Components(f), CountComponents(f): component labelling.
//
// Errors:
//
//	Engines do not return errors. Misuse (out of range vertex, cutting an
//	edge that is not in the forest, internal corruption) is a programmer
//	error and panics with an error wrapping one of the sentinels below, so a
//	recovered value can be classified with errors.Is.
//
//	ErrVertexOutOfRange - vertex index outside 0..n-1.
//	ErrNotAnEdge        - handle does not name a live edge.
//	ErrCorrupted        - an internal consistency check failed.
//
// Concurrency:
//
//	Forests are single-threaded. Callers that share one across goroutines
//	must serialize access themselves.
package dyntree
