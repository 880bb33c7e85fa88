// SPDX-License-Identifier: MIT

package workload_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malbarbo/fera-sub000/workload"
)

func TestGenerators_BuildOneTree(t *testing.T) {
	for _, tc := range []struct {
		name string
		gen  func(n int) (*workload.Script, error)
	}{
		{"Path", workload.Path},
		{"Star", workload.Star},
		{"RandomTree", func(n int) (*workload.Script, error) { return workload.RandomTree(n, workload.WithSeed(9)) }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			s, err := tc.gen(7)
			require.NoError(t, err)
			assert.Equal(t, 6, s.Counts()[workload.OpLink])

			tr, err := workload.Run(workload.EngineLinkCut, s)
			require.NoError(t, err)
			for i, ok := range tr.Links {
				assert.True(t, ok, "link #%d", i)
			}
			require.Len(t, tr.Snapshots, 1)
			assert.Equal(t, []int{0, 0, 0, 0, 0, 0, 0}, tr.Snapshots[0])

			_, err = tc.gen(0)
			assert.ErrorIs(t, err, workload.ErrTooFewVertices)
		})
	}
}

func TestRandomOps_Deterministic(t *testing.T) {
	a, err := workload.RandomOps(10, 100, workload.WithSeed(77))
	require.NoError(t, err)
	b, err := workload.RandomOps(10, 100, workload.WithSeed(77))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := workload.RandomOps(10, 100, workload.WithSeed(78))
	require.NoError(t, err)
	assert.NotEqual(t, a.Ops, c.Ops)
}

func TestRandomOps_CutsAreLive(t *testing.T) {
	s, err := workload.RandomOps(8, 400, workload.WithSeed(5), workload.WithCutRatio(1), workload.WithClearEvery(90))
	require.NoError(t, err)
	counts := s.Counts()
	assert.Positive(t, counts[workload.OpCut])
	assert.Equal(t, 4, counts[workload.OpClear])

	// Replaying on the oracle fails with ErrUnknownEdge if any cut is stale.
	_, err = workload.Run(workload.EngineNaive, s)
	require.NoError(t, err)

	_, err = workload.RandomOps(0, 1)
	assert.ErrorIs(t, err, workload.ErrTooFewVertices)
	_, err = workload.RandomOps(3, -1)
	assert.ErrorIs(t, err, workload.ErrInvalidOp)
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { workload.WithCutRatio(1.5) })
	assert.Panics(t, func() { workload.WithSnapshotEvery(-1) })
	assert.Panics(t, func() { workload.WithClearEvery(-2) })
	assert.Panics(t, func() { workload.WithRand(nil) })
}
