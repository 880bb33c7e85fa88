// SPDX-License-Identifier: MIT

package eulertour

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malbarbo/fera-sub000/dyntree"
)

// TestCheck_DetectsCorruption damages one field of a valid forest at a time
// and expects Check to report it.
func TestCheck_DetectsCorruption(t *testing.T) {
	// 0 - 1 - 2 plus an isolated 3.
	build := func(t *testing.T) (*Tree, Edge, Edge) {
		t.Helper()
		tr := New(4)
		e01, ok := tr.Link(0, 1)
		require.True(t, ok)
		e12, ok := tr.Link(1, 2)
		require.True(t, ok)
		require.NoError(t, tr.Check())
		return tr, e01, e12
	}

	for _, tc := range []struct {
		name    string
		corrupt func(tr *Tree, e01, e12 Edge)
	}{
		{"WrongActive", func(tr *Tree, e01, _ Edge) {
			tr.active[2] = 2 * int(e01) // leaves 0, not 2
		}},
		{"MissingActive", func(tr *Tree, _, _ Edge) {
			tr.active[1] = none
		}},
		{"IsolatedWithActive", func(tr *Tree, e01, _ Edge) {
			tr.active[3] = 2 * int(e01)
		}},
		{"LiveEdgeReleased", func(tr *Tree, _, e12 Edge) {
			tr.freeEdges.release(int(e12))
		}},
		{"SwappedRanks", func(tr *Tree, _, _ Edge) {
			st := tr.store.(*arrayStore)
			seq := tr.tours[0].(*arraySequence)
			first, second := st.buf[seq.off], st.buf[seq.off+1]
			st.rank[first], st.rank[second] = st.rank[second], st.rank[first]
		}},
		{"FreeTourTaggedLive", func(tr *Tree, _, _ Edge) {
			tr.freeTours.free.Clear(uint(tr.freeTours.stack[0]))
		}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			tr, e01, e12 := build(t)
			tc.corrupt(tr, e01, e12)
			err := tr.Check()
			require.Error(t, err)
			assert.True(t, errors.Is(err, dyntree.ErrCorrupted), "got %v", err)
		})
	}
}

// TestTree_ChecksPanicOnCorruption shows WithChecks turning a corrupted
// state into a panic on the next mutation.
func TestTree_ChecksPanicOnCorruption(t *testing.T) {
	tr := New(4, WithChecks())
	_, ok := tr.Link(0, 1)
	require.True(t, ok)
	tr.active[1] = none

	defer func() {
		err, isErr := recover().(error)
		require.True(t, isErr)
		assert.ErrorIs(t, err, dyntree.ErrCorrupted)
	}()
	tr.Link(2, 3)
}
