// SPDX-License-Identifier: MIT

// Package dyntreetest provides a conformance suite and a differential
// harness that any dyntree.Forest implementation can be driven through.
//
// Engine packages call RunContract from their tests to check the contract
// scenarios, and RunDifferential to replay random link/cut sequences against
// a trusted oracle, comparing IsConnected for every pair after every step.
package dyntreetest

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malbarbo/fera-sub000/dyntree"
)

// Factory builds a forest of n isolated vertices.
type Factory[E any] func(n int) dyntree.Forest[E]

// RunContract runs the contract scenarios against forests built by newForest.
func RunContract[E any](t *testing.T, newForest Factory[E]) {
	t.Helper()

	t.Run("Reflexive", func(t *testing.T) {
		f := newForest(5)
		require.Equal(t, 5, f.Len())
		for v := 0; v < 5; v++ {
			assert.True(t, f.IsConnected(v, v), "vertex %d", v)
		}
		AssertPartition(t, f, [][]int{{0}, {1}, {2}, {3}, {4}})
	})

	t.Run("LinkThenQuery", func(t *testing.T) {
		f := newForest(5)
		_, ok := f.Link(0, 1)
		require.True(t, ok)
		assert.True(t, f.IsConnected(0, 1))
		assert.True(t, f.IsConnected(1, 0))
		assert.False(t, f.IsConnected(0, 2))
	})

	t.Run("Transitive", func(t *testing.T) {
		f := newForest(5)
		_, ok := f.Link(0, 1)
		require.True(t, ok)
		_, ok = f.Link(0, 2)
		require.True(t, ok)
		assert.True(t, f.IsConnected(1, 2))
		AssertPartition(t, f, [][]int{{0, 1, 2}, {3}, {4}})
	})

	t.Run("CutSplits", func(t *testing.T) {
		f := newForest(5)
		e01, ok := f.Link(0, 1)
		require.True(t, ok)
		_, ok = f.Link(0, 2)
		require.True(t, ok)

		f.Cut(e01)
		assert.False(t, f.IsConnected(0, 1))
		assert.False(t, f.IsConnected(1, 2))
		assert.True(t, f.IsConnected(0, 2))
		AssertPartition(t, f, [][]int{{0, 2}, {1}, {3}, {4}})
	})

	t.Run("SelfLinkRejected", func(t *testing.T) {
		f := newForest(5)
		for u := 0; u < 5; u++ {
			_, ok := f.Link(u, u)
			assert.False(t, ok, "link(%d,%d)", u, u)
			assert.True(t, f.IsConnected(u, u))
		}
		AssertPartition(t, f, [][]int{{0}, {1}, {2}, {3}, {4}})
	})

	t.Run("DuplicateLinkRejected", func(t *testing.T) {
		f := newForest(5)
		_, ok := f.Link(0, 1)
		require.True(t, ok)
		_, ok = f.Link(0, 1)
		assert.False(t, ok)
		_, ok = f.Link(1, 0)
		assert.False(t, ok)
		AssertPartition(t, f, [][]int{{0, 1}, {2}, {3}, {4}})
	})

	t.Run("CycleRejected", func(t *testing.T) {
		f := newForest(5)
		for _, p := range [][2]int{{0, 1}, {1, 2}, {2, 3}} {
			_, ok := f.Link(p[0], p[1])
			require.True(t, ok)
		}
		_, ok := f.Link(3, 0)
		assert.False(t, ok)
		AssertPartition(t, f, [][]int{{0, 1, 2, 3}, {4}})
	})

	t.Run("ClearResets", func(t *testing.T) {
		f := newForest(5)
		for _, p := range [][2]int{{0, 1}, {2, 3}, {3, 4}} {
			_, ok := f.Link(p[0], p[1])
			require.True(t, ok)
		}
		f.Clear()
		AssertPartition(t, f, [][]int{{0}, {1}, {2}, {3}, {4}})

		e, ok := f.Link(0, 1)
		require.True(t, ok)
		u, v := f.Ends(e)
		assert.ElementsMatch(t, []int{0, 1}, []int{u, v})
		AssertPartition(t, f, [][]int{{0, 1}, {2}, {3}, {4}})
	})

	t.Run("Ends", func(t *testing.T) {
		f := newForest(5)
		e, ok := f.Link(3, 1)
		require.True(t, ok)
		u, v := f.Ends(e)
		assert.ElementsMatch(t, []int{1, 3}, []int{u, v})

		f.Cut(e)
		u, v = f.Ends(e)
		assert.ElementsMatch(t, []int{1, 3}, []int{u, v}, "ends of a just-cut edge")
	})

	t.Run("RoundTrip", func(t *testing.T) {
		f := newForest(7)
		for _, p := range [][2]int{{0, 1}, {1, 2}, {3, 4}, {5, 3}} {
			_, ok := f.Link(p[0], p[1])
			require.True(t, ok)
		}
		before := Snapshot(f)
		e, ok := f.Link(2, 4)
		require.True(t, ok)
		assert.True(t, f.IsConnected(0, 5))
		f.Cut(e)
		assert.Equal(t, before, Snapshot(f))
	})

	t.Run("CutEveryEdgeOfPath", func(t *testing.T) {
		const n = 8
		f := newForest(n)
		edges := make([]E, 0, n-1)
		for v := 1; v < n; v++ {
			e, ok := f.Link(v-1, v)
			require.True(t, ok)
			edges = append(edges, e)
		}
		// Cut from the middle outwards so both halves keep changing shape.
		for _, i := range []int{3, 0, 6, 1, 5, 2, 4} {
			u, v := f.Ends(edges[i])
			require.True(t, f.IsConnected(u, v))
			f.Cut(edges[i])
			assert.False(t, f.IsConnected(u, v), "after cutting %d-%d", u, v)
		}
		assert.Equal(t, n, dyntree.CountComponents(f))
	})

	t.Run("StarRelinking", func(t *testing.T) {
		const n = 9
		f := newForest(n)
		edges := make([]E, 0, n-1)
		for v := 1; v < n; v++ {
			e, ok := f.Link(v, 0)
			require.True(t, ok)
			edges = append(edges, e)
		}
		for i, e := range edges {
			f.Cut(e)
			leaf := i + 1
			assert.False(t, f.IsConnected(leaf, 0))
			// Hang the leaf back below its successor leaf.
			if leaf+1 < n {
				_, ok := f.Link(leaf, leaf+1)
				require.True(t, ok)
				assert.True(t, f.IsConnected(leaf, 0))
			}
		}
	})

	t.Run("OutOfRangePanics", func(t *testing.T) {
		f := newForest(3)
		err := recoverError(func() { f.IsConnected(0, 3) })
		assert.ErrorIs(t, err, dyntree.ErrVertexOutOfRange)
		err = recoverError(func() { f.Link(-1, 0) })
		assert.ErrorIs(t, err, dyntree.ErrVertexOutOfRange)
	})
}

// RunDifferential replays steps random operations on a forest built by
// newForest and on an oracle built by newOracle, and requires both to agree
// on IsConnected for every pair after every step.
//
// Each step draws a candidate pair (u, v) modulo n. Disconnected pairs are
// linked in both structures; otherwise a random live edge is cut.
func RunDifferential[E, O any](t *testing.T, newForest Factory[E], newOracle Factory[O], n, steps int, seed int64) {
	t.Helper()
	require.Positive(t, n)

	type liveEdge struct {
		got  E
		want O
	}

	var (
		rng    = rand.New(rand.NewSource(seed))
		forest = newForest(n)
		oracle = newOracle(n)
		live   []liveEdge
	)
	for step := 0; step < steps; step++ {
		u, v := rng.Intn(n), rng.Intn(n)
		if !oracle.IsConnected(u, v) {
			want, ok := oracle.Link(u, v)
			require.True(t, ok, "step %d: oracle link(%d,%d)", step, u, v)
			got, ok := forest.Link(u, v)
			require.True(t, ok, "step %d: link(%d,%d)", step, u, v)
			live = append(live, liveEdge{got: got, want: want})
		} else if len(live) > 0 {
			i := rng.Intn(len(live))
			gu, gv := forest.Ends(live[i].got)
			wu, wv := oracle.Ends(live[i].want)
			require.ElementsMatch(t, []int{wu, wv}, []int{gu, gv}, "step %d: ends", step)
			forest.Cut(live[i].got)
			oracle.Cut(live[i].want)
			live[i] = live[len(live)-1]
			live = live[:len(live)-1]
		} else {
			// u == v on an empty forest: Link must still refuse.
			_, ok := forest.Link(u, v)
			require.False(t, ok, "step %d: link(%d,%d)", step, u, v)
		}

		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				require.Equal(t, oracle.IsConnected(i, j), forest.IsConnected(i, j),
					"step %d: connected(%d,%d)", step, i, j)
			}
		}
	}
}

// AssertPartition checks that the trees of f are exactly the given groups.
// Groups must cover every vertex.
func AssertPartition[E any](t *testing.T, f dyntree.Forest[E], groups [][]int) bool {
	t.Helper()
	group := make([]int, f.Len())
	for gi, g := range groups {
		for _, v := range g {
			group[v] = gi
		}
	}
	ok := true
	for u := 0; u < f.Len(); u++ {
		for v := 0; v < f.Len(); v++ {
			want := group[u] == group[v]
			ok = assert.Equal(t, want, f.IsConnected(u, v), "connected(%d,%d)", u, v) && ok
		}
	}

	return ok
}

// Snapshot returns the full connectivity matrix of f.
func Snapshot[E any](f dyntree.Forest[E]) [][]bool {
	n := f.Len()
	m := make([][]bool, n)
	for u := range m {
		m[u] = make([]bool, n)
		for v := range m[u] {
			m[u][v] = f.IsConnected(u, v)
		}
	}

	return m
}

// recoverError runs fn and returns the error it panicked with, if any.
func recoverError(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = e
				return
			}
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	fn()

	return errors.New("dyntreetest: no panic")
}
