// SPDX-License-Identifier: MIT

package eulertour

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var stores = []struct {
	name string
	new  StoreFactory
}{
	{"Array", NewArrayStore},
	{"Treap", func(arcs int) Store { return NewTreapStore(arcs, 1) }},
}

// contents reads a sequence back through the store directory, checking
// that every rank is claimed exactly once.
func contents(t *testing.T, st Store, s Sequence, arcs int) []int {
	t.Helper()
	out := make([]int, s.Len())
	seen := 0
	for a := 0; a < arcs; a++ {
		seq, rank := st.Locate(a)
		if seq != s.ID() {
			continue
		}
		require.Less(t, rank, len(out), "arc %d", a)
		out[rank] = a
		seen++
	}
	require.Equal(t, s.Len(), seen)
	if s.Len() > 0 {
		assert.Equal(t, out[0], s.First())
		assert.Equal(t, out[len(out)-1], s.Last())
	}

	return out
}

func TestSequence_PushRotate(t *testing.T) {
	for _, tc := range stores {
		t.Run(tc.name, func(t *testing.T) {
			st := tc.new(8)
			s := st.NewSequence(0)
			for a := 0; a < 6; a++ {
				s.Push(a)
			}
			assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, contents(t, st, s, 8))

			s.Rotate(2)
			assert.Equal(t, []int{2, 3, 4, 5, 0, 1}, contents(t, st, s, 8))
			s.Rotate(0)
			assert.Equal(t, []int{2, 3, 4, 5, 0, 1}, contents(t, st, s, 8))
			s.Rotate(5)
			assert.Equal(t, []int{1, 2, 3, 4, 5, 0}, contents(t, st, s, 8))

			seq, _ := st.Locate(7)
			assert.Equal(t, none, seq, "never pushed")
			assert.Panics(t, func() { s.Rotate(6) })
		})
	}
}

func TestSequence_ExtractAppend(t *testing.T) {
	for _, tc := range stores {
		t.Run(tc.name, func(t *testing.T) {
			st := tc.new(10)
			s, to := st.NewSequence(0), st.NewSequence(1)
			for a := 0; a < 8; a++ {
				s.Push(a)
			}
			to.Push(9)

			s.Extract(2, 6, to)
			assert.Equal(t, []int{0, 1, 7}, contents(t, st, s, 10))
			assert.Equal(t, []int{9, 3, 4, 5}, contents(t, st, to, 10))
			for _, dropped := range []int{2, 6} {
				seq, _ := st.Locate(dropped)
				assert.Equal(t, none, seq, "boundary arc %d", dropped)
			}

			// Adjacent boundaries move nothing.
			s.Extract(0, 1, to)
			assert.Equal(t, []int{7}, contents(t, st, s, 10))
			assert.Equal(t, 4, to.Len())

			s.Append(to)
			assert.Equal(t, []int{7, 9, 3, 4, 5}, contents(t, st, s, 10))
			assert.Equal(t, 0, to.Len())

			s.Clear()
			assert.Equal(t, 0, s.Len())
			for a := 0; a < 10; a++ {
				seq, _ := st.Locate(a)
				assert.Equal(t, none, seq, "arc %d", a)
			}
		})
	}
}

func TestSequence_RejectsForeignPeer(t *testing.T) {
	a := NewArrayStore(4)
	b := NewTreapStore(4, 1)
	s := a.NewSequence(0)
	s.Push(0)
	s.Push(1)
	s.Push(2)
	assert.Panics(t, func() { s.Append(b.NewSequence(0)) })
	assert.Panics(t, func() { s.Append(s) })
	assert.Panics(t, func() { s.Extract(0, 2, NewArrayStore(4).NewSequence(1)) })
	assert.Panics(t, func() { s.Extract(1, 1, a.NewSequence(1)) })
}

// TestSequence_StoresAgree drives both stores through the same random
// operations and compares their contents after each one.
func TestSequence_StoresAgree(t *testing.T) {
	const arcs = 64
	rng := rand.New(rand.NewSource(5))
	var (
		sts  [2]Store
		seqs [2][3]Sequence
	)
	for i, tc := range stores {
		sts[i] = tc.new(arcs)
		for id := range seqs[i] {
			seqs[i][id] = sts[i].NewSequence(id)
		}
	}
	next := 0
	for step := 0; step < 400; step++ {
		id := rng.Intn(3)
		other := (id + 1 + rng.Intn(2)) % 3
		n := seqs[0][id].Len()
		op := rng.Intn(4)
		p := 0
		if n > 0 {
			p = rng.Intn(n)
		}
		for i := range sts {
			s := seqs[i][id]
			switch {
			case op == 0 && next < arcs:
				s.Push(next)
			case op == 1 && n > 0:
				s.Rotate(p)
			case op == 2 && n >= 2:
				lo := step % (n - 1)
				hi := lo + 1 + (step/2)%(n-1-lo)
				s.Extract(lo, hi, seqs[i][other])
			case op == 3:
				s.Append(seqs[i][other])
			}
		}
		if op == 0 && next < arcs {
			next++
		}
		for id := range seqs[0] {
			require.Equal(t,
				contents(t, sts[0], seqs[0][id], arcs),
				contents(t, sts[1], seqs[1][id], arcs),
				"step %d sequence %d", step, id)
		}
	}
}

// TestArrayStore_PacksSegments interleaves pushes on two sequences so that
// segments keep moving and the buffer has to be packed, then checks that
// contents survive and the buffer was never replaced.
func TestArrayStore_PacksSegments(t *testing.T) {
	const arcs = 6
	st := NewArrayStore(arcs).(*arrayStore)
	buf := &st.buf[0]
	a, b := st.NewSequence(0), st.NewSequence(1)

	for arc := 0; arc < arcs; arc++ {
		[]Sequence{a, b}[arc%2].Push(arc)
	}
	assert.Equal(t, []int{0, 2, 4}, contents(t, st, a, arcs))
	assert.Equal(t, []int{1, 3, 5}, contents(t, st, b, arcs))

	a.Rotate(1)
	a.Append(b)
	assert.Equal(t, []int{2, 4, 0, 1, 3, 5}, contents(t, st, a, arcs))
	assert.Equal(t, 0, b.Len())

	a.Extract(1, 4, b)
	assert.Equal(t, []int{2, 5}, contents(t, st, a, arcs))
	assert.Equal(t, []int{0, 1}, contents(t, st, b, arcs))

	assert.Len(t, st.buf, 2*arcs)
	assert.Same(t, buf, &st.buf[0])
	assert.LessOrEqual(t, st.top, len(st.buf))
}
