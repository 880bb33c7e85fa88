// SPDX-License-Identifier: MIT

// Package eulertour implements a dynamic forest as an Euler-Tour Tree: every
// tree with at least one edge is kept as the sequence of directed arcs of a
// depth-first walk around it.
//
// Representation:
//
//   - Edge e owns the fixed arc pair 2e (u→v) and 2e+1 (v→u) in a table of
//     2(n-1) arcs reserved by New.
//   - Each non-singleton tree owns one tour, a Sequence of its arcs in tour
//     order. The first arc's source is the tree's canonical root.
//   - active[x] is an arc whose source is x, or -1 when x is isolated.
//   - Tours and edges are pooled. An id is either live or on its free-list,
//     never both; a bitset per pool tags free ids and every acquire/release
//     checks the tag.
//
// Sequence and Store:
//
//	The tour primitive is the Sequence capability set (First, Last, Push,
//	Rotate, Extract, Append). Sequences of one engine share a Store which
//	knows, for every arc, the sequence holding it and its rank there. Two
//	stores are provided:
//
//	  - NewArrayStore: every tour is a segment of one buffer of twice the
//	    arc count; O(1) First/Last/Locate, amortized O(1) Push, O(len)
//	    Rotate, Extract and Append. This is the default.
//	  - NewTreapStore: implicit treaps with parent links; O(log len) expected
//	    for every operation, which gives the engine its textbook bound.
//
// Operations:
//
//   - makeRoot(x): rotate x's tour so active[x] is first.
//   - Link(u, v): reroot both tours, then splice  tour(u) + u→v + tour(v) + v→u.
//   - Cut(e): reroot at u, extract the arcs strictly between u→v and v→u
//     (v's side) into a fresh tour, drop the pair, fix active[u], active[v].
//
// Neither store allocates after New: Link and Cut only move arcs inside the
// reservation.
//
// Misuse panics with an error wrapping dyntree.ErrVertexOutOfRange or
// dyntree.ErrNotAnEdge. WithChecks re-verifies the whole representation after
// every mutation and panics with dyntree.ErrCorrupted on the first violation.
package eulertour
