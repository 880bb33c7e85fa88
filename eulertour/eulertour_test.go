// SPDX-License-Identifier: MIT

package eulertour_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/malbarbo/fera-sub000/dyntree"
	"github.com/malbarbo/fera-sub000/dyntree/dyntreetest"
	"github.com/malbarbo/fera-sub000/eulertour"
	"github.com/malbarbo/fera-sub000/naive"
)

// backends lists the tour stores every engine test runs against.
var backends = []struct {
	name string
	opts []eulertour.Option
}{
	{"Array", []eulertour.Option{eulertour.WithChecks()}},
	{"Treap", []eulertour.Option{eulertour.WithBalancedTours(7), eulertour.WithChecks()}},
}

func factory(opts ...eulertour.Option) dyntreetest.Factory[eulertour.Edge] {
	return func(n int) dyntree.Forest[eulertour.Edge] { return eulertour.New(n, opts...) }
}

func newOracle(n int) dyntree.Forest[naive.Edge] { return naive.New(n) }

func TestTree_Contract(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			dyntreetest.RunContract(t, factory(b.opts...))
		})
	}
}

func TestTree_Differential(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			dyntreetest.RunDifferential(t, factory(b.opts...), newOracle, 2, 40, 3)
			dyntreetest.RunDifferential(t, factory(b.opts...), newOracle, 6, 300, 11)
			dyntreetest.RunDifferential(t, factory(b.opts...), newOracle, 17, 500, 42)
		})
	}
}

func TestTree_LinkCases(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			tr := eulertour.New(6, b.opts...)

			// Both singletons.
			_, ok := tr.Link(0, 1)
			require.True(t, ok)
			assert.Equal(t, 2, tr.TourLen(0))
			assert.Equal(t, 0, tr.TourLen(5))

			// u non-singleton, v singleton.
			_, ok = tr.Link(1, 2)
			require.True(t, ok)
			// u singleton, v non-singleton.
			_, ok = tr.Link(3, 2)
			require.True(t, ok)
			assert.Equal(t, 6, tr.TourLen(3))

			// Both non-singleton.
			_, ok = tr.Link(4, 5)
			require.True(t, ok)
			_, ok = tr.Link(5, 0)
			require.True(t, ok)
			assert.Equal(t, 10, tr.TourLen(4))
			assert.Equal(t, 1, dyntree.CountComponents[eulertour.Edge](tr))
			require.NoError(t, tr.Check())
		})
	}
}

func TestTree_CutLeavesIsolatedEnds(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			tr := eulertour.New(3, b.opts...)
			e, ok := tr.Link(0, 1)
			require.True(t, ok)
			tr.Cut(e)

			assert.Equal(t, 0, tr.TourLen(0))
			assert.Equal(t, 0, tr.TourLen(1))
			assert.Equal(t, 0, tr.FindRoot(0))
			assert.Equal(t, 1, tr.FindRoot(1))
			require.NoError(t, tr.Check())

			// The pooled edge id is handed out again.
			e2, ok := tr.Link(1, 2)
			require.True(t, ok)
			assert.Equal(t, e, e2)
			u, v := tr.Ends(e2)
			assert.Equal(t, []int{1, 2}, []int{u, v})
		})
	}
}

func TestTree_MakeRoot(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			tr := eulertour.New(5, b.opts...)
			for _, p := range [][2]int{{0, 1}, {1, 2}, {1, 3}} {
				_, ok := tr.Link(p[0], p[1])
				require.True(t, ok)
			}
			for _, r := range []int{2, 3, 0, 1} {
				tr.MakeRoot(r)
				for v := 0; v < 4; v++ {
					assert.Equal(t, r, tr.FindRoot(v), "root of %d after MakeRoot(%d)", v, r)
				}
			}
			assert.Equal(t, 4, tr.FindRoot(4))
			tr.MakeRoot(4)
			assert.Equal(t, 4, tr.FindRoot(4))
		})
	}
}

func TestTree_CutRejectsDeadEdge(t *testing.T) {
	tr := eulertour.New(4)
	e, ok := tr.Link(0, 1)
	require.True(t, ok)
	tr.Cut(e)

	for _, bad := range []eulertour.Edge{e, -1, 3, 99} {
		func() {
			defer func() {
				err, isErr := recover().(error)
				require.True(t, isErr, "cut(%d) did not panic with an error", bad)
				assert.True(t, errors.Is(err, dyntree.ErrNotAnEdge), "got %v", err)
			}()
			tr.Cut(bad)
		}()
	}
}

func TestTree_ClearReusesPools(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			const n = 10
			tr := eulertour.New(n, b.opts...)
			for round := 0; round < 3; round++ {
				// A full path uses every edge id.
				for v := 1; v < n; v++ {
					_, ok := tr.Link(v-1, v)
					require.True(t, ok)
				}
				assert.Equal(t, 2*(n-1), tr.TourLen(0))
				tr.Clear()
				require.NoError(t, tr.Check())
				assert.Equal(t, n, dyntree.CountComponents[eulertour.Edge](tr))
			}
		})
	}
}

func TestTree_ManyPairsUseEveryTourSlot(t *testing.T) {
	for _, b := range backends {
		t.Run(b.name, func(t *testing.T) {
			const n = 9
			tr := eulertour.New(n, b.opts...)
			var edges []eulertour.Edge
			// ⌊n/2⌋ two-vertex trees.
			for v := 0; v+1 < n; v += 2 {
				e, ok := tr.Link(v, v+1)
				require.True(t, ok)
				edges = append(edges, e)
			}
			// Cutting borrows the extra slot even with every tree live.
			tr.Cut(edges[0])
			_, ok := tr.Link(1, 8)
			require.True(t, ok)
			require.NoError(t, tr.Check())
			assert.Equal(t, 5, dyntree.CountComponents[eulertour.Edge](tr))
		})
	}
}

func TestNew_Small(t *testing.T) {
	for _, n := range []int{0, 1} {
		tr := eulertour.New(n, eulertour.WithChecks())
		assert.Equal(t, n, tr.Len())
		require.NoError(t, tr.Check())
		if n == 1 {
			_, ok := tr.Link(0, 0)
			assert.False(t, ok)
		}
	}
	assert.Panics(t, func() { eulertour.New(-1) })
	assert.Panics(t, func() { eulertour.WithStore(nil) })
}

// TestTree_LinkCutDoNotAllocate moves a long path through different tour
// slots; everything must fit in what New reserved.
func TestTree_LinkCutDoNotAllocate(t *testing.T) {
	for _, b := range []struct {
		name string
		opts []eulertour.Option
	}{
		{"Array", nil},
		{"Treap", []eulertour.Option{eulertour.WithBalancedTours(7)}},
	} {
		t.Run(b.name, func(t *testing.T) {
			const n = 200
			tr := eulertour.New(n, b.opts...)
			edges := make([]eulertour.Edge, 0, n)

			allocs := testing.AllocsPerRun(3, func() {
				for k := 0; k < n/4; k += 7 {
					tr.Clear()
					edges = edges[:0]
					// k two-vertex trees take the low tour slots first.
					for i := 0; i < k; i++ {
						e, _ := tr.Link(2*i, 2*i+1)
						edges = append(edges, e)
					}
					for v := 2*k + 1; v < n; v++ {
						e, _ := tr.Link(v-1, v)
						edges = append(edges, e)
					}
					for i := len(edges) - 1; i >= 0; i -= 2 {
						tr.Cut(edges[i])
					}
					for i := len(edges) - 2; i >= 0; i -= 2 {
						tr.Cut(edges[i])
					}
				}
			})
			assert.Zero(t, allocs)
			require.NoError(t, tr.Check())
			assert.Equal(t, n, dyntree.CountComponents[eulertour.Edge](tr))
		})
	}
}
