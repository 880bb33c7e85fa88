// SPDX-License-Identifier: MIT

package dyntree

import "errors"

var (
	// ErrVertexOutOfRange indicates a vertex index outside 0..n-1.
	ErrVertexOutOfRange = errors.New("dyntree: vertex out of range")

	// ErrNotAnEdge indicates that a handle passed to Cut does not name an edge
	// currently present in the forest.
	ErrNotAnEdge = errors.New("dyntree: not an edge of the forest")

	// ErrCorrupted indicates that an internal representation invariant was
	// found broken. It always signals a bug in the engine.
	ErrCorrupted = errors.New("dyntree: corrupted representation")
)

// Forest is the dynamic-tree contract. E is the engine-specific edge handle
// returned by Link and consumed by Cut and Ends.
//
// A handle is valid for the edge instance it was returned for; using it
// after that edge was cut is undefined, except for Ends which may still be
// called on a just-cut edge.
type Forest[E any] interface {
	// Len returns the number of vertices n.
	Len() int

	// IsConnected reports whether u and v lie in the same tree.
	// IsConnected(u, u) is always true.
	IsConnected(u, v int) bool

	// Link joins the trees of u and v with a new edge {u,v} and returns its
	// handle. If u and v are already connected it returns ok == false and
	// does not mutate the forest.
	Link(u, v int) (e E, ok bool)

	// Cut removes the edge e, splitting its tree into exactly two trees.
	Cut(e E)

	// Ends returns the two vertices joined by e.
	Ends(e E) (u, v int)

	// Clear resets the forest to n isolated vertices.
	Clear()
}

// Rooter is implemented by forests able to name a canonical representative
// of a vertex's tree. Two vertices are connected iff their roots are equal,
// as long as the forest is not mutated in between.
type Rooter interface {
	FindRoot(v int) int
}

// Pair is an unordered candidate edge used by the generic algorithms.
type Pair struct {
	U, V int
}
