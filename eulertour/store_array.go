// SPDX-License-Identifier: MIT

package eulertour

import (
	"cmp"
	"fmt"
	"slices"
)

// arrayStore keeps the arc directory in two flat slices and the arcs of
// every sequence as one contiguous segment of buf.
//
// buf holds twice the arc count. A segment that grows past its end moves to
// top; when top reaches the end of buf the live segments are packed to the
// front, which always leaves room because at most half of buf is live.
type arrayStore struct {
	seq  []int
	rank []int

	buf  []int
	top  int
	seqs []*arraySequence
}

// NewArrayStore returns a slice-backed Store for the given number of arcs.
// Rotate, Extract and Append cost O(len) because every moved arc is
// renumbered; Push is O(1) amortized. All memory is reserved here.
func NewArrayStore(arcs int) Store {
	st := &arrayStore{
		seq:  make([]int, arcs),
		rank: make([]int, arcs),
		buf:  make([]int, 2*arcs),
	}
	for i := range st.seq {
		st.seq[i] = none
	}

	return st
}

func (st *arrayStore) NewSequence(id int) Sequence {
	s := &arraySequence{id: id, off: st.top, store: st}
	st.seqs = append(st.seqs, s)

	return s
}

func (st *arrayStore) Locate(arc int) (int, int) {
	return st.seq[arc], st.rank[arc]
}

// reserve makes room for k more arcs right after the end of s.
func (st *arrayStore) reserve(s *arraySequence, k int) {
	if k == 0 || st.grow(s, k) {
		return
	}
	if st.top+s.n+k > len(st.buf) {
		st.compact()
		if st.grow(s, k) {
			return
		}
		if st.top+s.n+k > len(st.buf) {
			panic(fmt.Sprintf("eulertour: array store of %d slots cannot hold %d more arcs", len(st.buf), k))
		}
	}
	copy(st.buf[st.top:], st.buf[s.off:s.off+s.n])
	s.off = st.top
	st.top += s.n + k
}

// grow extends s in place when it is the last segment.
func (st *arrayStore) grow(s *arraySequence, k int) bool {
	if s.off+s.n != st.top || st.top+k > len(st.buf) {
		return false
	}
	st.top += k

	return true
}

// compact packs every segment to the front of buf, keeping their order.
// Ranks are relative to a segment and stay valid.
func (st *arrayStore) compact() {
	slices.SortFunc(st.seqs, func(a, b *arraySequence) int {
		return cmp.Compare(a.off, b.off)
	})
	w := 0
	for _, s := range st.seqs {
		copy(st.buf[w:], st.buf[s.off:s.off+s.n])
		s.off = w
		w += s.n
	}
	st.top = w
}

// shrunk gives back the space after s when s is the last segment.
func (st *arrayStore) shrunk(s *arraySequence, oldEnd int) {
	if oldEnd == st.top {
		st.top = s.off + s.n
	}
}

// arraySequence is the segment buf[off : off+n] of its store.
type arraySequence struct {
	id    int
	off   int
	n     int
	store *arrayStore
}

func (s *arraySequence) ID() int    { return s.id }
func (s *arraySequence) Len() int   { return s.n }
func (s *arraySequence) First() int { return s.store.buf[s.off] }
func (s *arraySequence) Last() int  { return s.store.buf[s.off+s.n-1] }

func (s *arraySequence) arcs() []int {
	return s.store.buf[s.off : s.off+s.n]
}

func (s *arraySequence) Push(arc int) {
	s.store.reserve(s, 1)
	s.store.buf[s.off+s.n] = arc
	s.store.seq[arc] = s.id
	s.store.rank[arc] = s.n
	s.n++
}

func (s *arraySequence) Rotate(p int) {
	if p < 0 || p >= s.n {
		panic(fmt.Sprintf("eulertour: rotate(%d) on %d arcs", p, s.n))
	}
	if p == 0 {
		return
	}
	// In-place rotation by three reversals.
	arcs := s.arcs()
	slices.Reverse(arcs[:p])
	slices.Reverse(arcs[p:])
	slices.Reverse(arcs)
	s.renumber(0)
}

func (s *arraySequence) Extract(lo, hi int, to Sequence) {
	if lo < 0 || hi <= lo || hi >= s.n {
		panic(fmt.Sprintf("eulertour: extract(%d,%d) on %d arcs", lo, hi, s.n))
	}
	dst := s.peer(to)
	st := s.store

	// Reserving may pack the store and move s, so offsets are read after.
	moved := hi - lo - 1
	st.reserve(dst, moved)
	copy(st.buf[dst.off+dst.n:], st.buf[s.off+lo+1:s.off+hi])
	dst.n += moved
	dst.renumber(dst.n - moved)

	s.detach(st.buf[s.off+lo])
	s.detach(st.buf[s.off+hi])
	oldEnd := s.off + s.n
	copy(st.buf[s.off+lo:], st.buf[s.off+hi+1:oldEnd])
	s.n -= hi - lo + 1
	st.shrunk(s, oldEnd)
	s.renumber(lo)
}

func (s *arraySequence) Append(from Sequence) {
	src := s.peer(from)
	st := s.store

	st.reserve(s, src.n)
	copy(st.buf[s.off+s.n:], src.arcs())
	s.n += src.n
	s.renumber(s.n - src.n)
	src.n = 0
}

func (s *arraySequence) Clear() {
	for _, arc := range s.arcs() {
		s.detach(arc)
	}
	oldEnd := s.off + s.n
	s.n = 0
	s.store.shrunk(s, oldEnd)
}

// renumber points every arc from rank i on at s and refreshes its rank.
func (s *arraySequence) renumber(i int) {
	for ; i < s.n; i++ {
		arc := s.store.buf[s.off+i]
		s.store.seq[arc] = s.id
		s.store.rank[arc] = i
	}
}

func (s *arraySequence) detach(arc int) {
	s.store.seq[arc] = none
	s.store.rank[arc] = 0
}

// peer asserts that other is a distinct sequence of the same store.
func (s *arraySequence) peer(other Sequence) *arraySequence {
	o, ok := other.(*arraySequence)
	if !ok || o.store != s.store || o == s {
		panic(fmt.Sprintf("eulertour: sequence %d cannot exchange arcs with %T", s.id, other))
	}

	return o
}
