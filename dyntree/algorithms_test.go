// SPDX-License-Identifier: MIT

package dyntree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malbarbo/fera-sub000/dyntree"
	"github.com/malbarbo/fera-sub000/eulertour"
	"github.com/malbarbo/fera-sub000/linkcut"
)

// queryOnly hides the Rooter capability of the wrapped forest, forcing the
// pairwise fallback in Components.
type queryOnly[E any] struct {
	dyntree.Forest[E]
}

func TestSpanningForestSkipsCycles(t *testing.T) {
	f := linkcut.New(5)
	pairs := []dyntree.Pair{
		{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 0}, // triangle: third pair closes a cycle
		{U: 3, V: 3}, // self-loop
		{U: 3, V: 4},
		{U: 4, V: 3}, // duplicate
	}

	added := dyntree.SpanningForest[linkcut.Edge](f, pairs)
	require.Len(t, added, 3)
	assert.Equal(t, []linkcut.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 3, V: 4}}, added)
	assert.True(t, f.IsConnected(0, 2))
	assert.False(t, f.IsConnected(2, 3))
}

func TestSpanningForestEditable(t *testing.T) {
	f := eulertour.New(4)
	added := dyntree.SpanningForest[eulertour.Edge](f, []dyntree.Pair{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}})
	require.Len(t, added, 3)

	f.Cut(added[1])
	assert.False(t, f.IsConnected(0, 3))
	assert.Equal(t, 2, dyntree.CountComponents[eulertour.Edge](f))
}

func TestComponentsLabelsBySmallestVertex(t *testing.T) {
	build := func() *linkcut.Tree {
		f := linkcut.New(7)
		f.Link(5, 2)
		f.Link(2, 6)
		f.Link(4, 1)
		return f
	}
	want := []int{0, 1, 2, 3, 1, 2, 2}

	t.Run("Rooter", func(t *testing.T) {
		assert.Equal(t, want, dyntree.Components[linkcut.Edge](build()))
	})
	t.Run("Pairwise", func(t *testing.T) {
		f := queryOnly[linkcut.Edge]{build()}
		_, isRooter := dyntree.Forest[linkcut.Edge](f).(dyntree.Rooter)
		require.False(t, isRooter)
		assert.Equal(t, want, dyntree.Components[linkcut.Edge](f))
	})
}

func TestCountComponents(t *testing.T) {
	f := linkcut.New(6)
	assert.Equal(t, 6, dyntree.CountComponents[linkcut.Edge](f))

	f.Link(0, 1)
	f.Link(2, 3)
	f.Link(3, 4)
	assert.Equal(t, 3, dyntree.CountComponents[linkcut.Edge](f))
	assert.Equal(t, 3, dyntree.CountComponents[linkcut.Edge](queryOnly[linkcut.Edge]{f}))

	f.Clear()
	assert.Equal(t, 6, dyntree.CountComponents[linkcut.Edge](f))
}

func TestComponentsEmpty(t *testing.T) {
	assert.Empty(t, dyntree.Components[linkcut.Edge](linkcut.New(0)))
	assert.Zero(t, dyntree.CountComponents[eulertour.Edge](eulertour.New(0)))
}
