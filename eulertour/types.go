// SPDX-License-Identifier: MIT

package eulertour

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/malbarbo/fera-sub000/dyntree"
)

// none marks an absent arc, sequence or tree node.
const none = -1

// Edge is the Euler-Tour Tree edge handle: an index into the paired arc
// table. Its arcs are 2e (u→v) and 2e+1 (v→u).
type Edge int

// Options configures an Euler-Tour Tree. Use DefaultOptions and the With*
// functions rather than filling it by hand.
type Options struct {
	// Store builds the tour backend. Default: NewArrayStore.
	Store StoreFactory

	// Checks runs Check after every Link and Cut and panics on the first
	// violation. Costs O(n log n) per mutation; meant for tests.
	Checks bool
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the array-backed, unchecked configuration.
func DefaultOptions() Options {
	return Options{
		Store:  NewArrayStore,
		Checks: false,
	}
}

// WithStore selects the tour backend. Panics on nil.
func WithStore(f StoreFactory) Option {
	if f == nil {
		panic("eulertour: WithStore(nil)")
	}
	return func(o *Options) {
		o.Store = f
	}
}

// WithBalancedTours selects the treap backend, seeding its priorities.
func WithBalancedTours(seed uint64) Option {
	return WithStore(func(arcs int) Store {
		return NewTreapStore(arcs, seed)
	})
}

// WithChecks enables the consistency check after every mutation.
func WithChecks() Option {
	return func(o *Options) {
		o.Checks = true
	}
}

// Tree is a forest of n vertices represented as an Euler-Tour Tree.
type Tree struct {
	store  Store
	checks bool

	// tours[id] is pool slot id; freeTours is its free-list.
	tours     []Sequence
	freeTours pool

	// src/dst describe the arc table; freeEdges pools edge ids.
	src       []int
	dst       []int
	freeEdges pool

	// active[x] is an arc leaving x, or none when x is isolated.
	active []int
}

// pool is a stack of free ids whose membership is mirrored in a bitset, so
// that releasing a free id or acquiring a live one is caught immediately.
type pool struct {
	name  string
	stack []int
	free  *bitset.BitSet
}

// Compile-time contract checks.
var (
	_ dyntree.Forest[Edge] = (*Tree)(nil)
	_ dyntree.Rooter       = (*Tree)(nil)
)
