// SPDX-License-Identifier: MIT

package workload

import (
	"fmt"
	"slices"

	"github.com/malbarbo/fera-sub000/dyntree"
)

// Trace records everything observable while replaying a script.
type Trace struct {
	// Links holds the ok result of every link op, in order.
	Links []bool
	// Answers holds the result of every connected op, in order.
	Answers []bool
	// Snapshots holds the dyntree.Components labelling at every snapshot op.
	Snapshots [][]int
}

// Replay drives f through s and returns the resulting trace. f must have
// s.N vertices; its current state is kept, so pass a fresh or cleared
// forest for reproducible results.
//
// Every op is validated before it reaches f: a cut of a pair that is not a
// live edge returns ErrUnknownEdge instead of triggering an engine panic.
func Replay[E any](f dyntree.Forest[E], s *Script) (*Trace, error) {
	if f.Len() != s.N {
		return nil, fmt.Errorf("workload: forest has %d vertices, script %d: %w", f.Len(), s.N, ErrSizeMismatch)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	var (
		live = newEdgeSet[E]()
		tr   = &Trace{}
	)
	for i, op := range s.Ops {
		switch op.Kind {
		case OpLink:
			e, ok := f.Link(op.U, op.V)
			if ok {
				live.put(op.U, op.V, e)
			}
			tr.Links = append(tr.Links, ok)
		case OpCut:
			e, ok := live.remove(op.U, op.V)
			if !ok {
				return tr, fmt.Errorf("workload: op %d %s: %w", i, op, ErrUnknownEdge)
			}
			f.Cut(e)
		case OpConnected:
			tr.Answers = append(tr.Answers, f.IsConnected(op.U, op.V))
		case OpSnapshot:
			tr.Snapshots = append(tr.Snapshots, dyntree.Components(f))
		case OpClear:
			f.Clear()
			live.clear()
		}
	}

	return tr, nil
}

// Diff returns nil when got matches want, or an error wrapping ErrMismatch
// that locates the first difference.
func Diff(want, got *Trace) error {
	if i, ok := firstDiff(want.Links, got.Links); !ok {
		return fmt.Errorf("workload: link #%d: %w", i, ErrMismatch)
	}
	if i, ok := firstDiff(want.Answers, got.Answers); !ok {
		return fmt.Errorf("workload: connected #%d: %w", i, ErrMismatch)
	}
	if len(want.Snapshots) != len(got.Snapshots) {
		return fmt.Errorf("workload: %d snapshots, want %d: %w", len(got.Snapshots), len(want.Snapshots), ErrMismatch)
	}
	for i := range want.Snapshots {
		if !slices.Equal(want.Snapshots[i], got.Snapshots[i]) {
			return fmt.Errorf("workload: snapshot #%d: %w", i, ErrMismatch)
		}
	}

	return nil
}

// firstDiff returns the first index where a and b differ, with ok == false,
// or ok == true when they are equal.
func firstDiff(a, b []bool) (int, bool) {
	for i := 0; i < min(len(a), len(b)); i++ {
		if a[i] != b[i] {
			return i, false
		}
	}
	if len(a) != len(b) {
		return min(len(a), len(b)), false
	}

	return 0, true
}
