// SPDX-License-Identifier: MIT

package eulertour

// Sequence is an ordered, mutable sequence of arc ids: one Euler tour.
//
// Every mutator keeps the owning Store's arc → (sequence, rank) directory
// current for each arc it moves, adds or drops.
type Sequence interface {
	// ID is the sequence's slot in its engine's tour pool.
	ID() int

	// Len returns the number of arcs.
	Len() int

	// First and Last return the arcs at both ends. The sequence must not be
	// empty.
	First() int
	Last() int

	// Push appends one arc.
	Push(arc int)

	// Rotate cyclically shifts the sequence so that rank p becomes rank 0.
	Rotate(p int)

	// Extract removes ranks lo..hi inclusive. The arcs strictly between lo
	// and hi are appended, in order, to to; the two boundary arcs are
	// detached from every sequence. Requires 0 <= lo < hi < Len() and a
	// to from the same Store, distinct from the receiver.
	Extract(lo, hi int, to Sequence)

	// Append moves every arc of from, in order, to the end of the receiver,
	// leaving from empty.
	Append(from Sequence)

	// Clear detaches every arc.
	Clear()
}

// Store is the backend shared by all sequences of one engine.
type Store interface {
	// NewSequence creates an empty sequence with the given pool id.
	NewSequence(id int) Sequence

	// Locate returns the id of the sequence holding arc and its rank there,
	// or seq == -1 when the arc is detached.
	Locate(arc int) (seq, rank int)
}

// StoreFactory builds a Store for the given number of arcs.
type StoreFactory func(arcs int) Store
