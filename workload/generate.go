// SPDX-License-Identifier: MIT

package workload

import (
	"fmt"

	"github.com/malbarbo/fera-sub000/naive"
)

// Path returns a script linking 0-1-...-(n-1) in order, then taking a
// snapshot. Requires n >= 1.
func Path(n int) (*Script, error) {
	if n < 1 {
		return nil, fmt.Errorf("workload: Path(%d): %w", n, ErrTooFewVertices)
	}
	s := &Script{Name: fmt.Sprintf("path-%d", n), N: n, Ops: make([]Op, 0, n)}
	for v := 1; v < n; v++ {
		s.Ops = append(s.Ops, Op{Kind: OpLink, U: v - 1, V: v})
	}
	s.Ops = append(s.Ops, Op{Kind: OpSnapshot})

	return s, nil
}

// Star returns a script linking every vertex to hub 0, then taking a
// snapshot. Requires n >= 1.
func Star(n int) (*Script, error) {
	if n < 1 {
		return nil, fmt.Errorf("workload: Star(%d): %w", n, ErrTooFewVertices)
	}
	s := &Script{Name: fmt.Sprintf("star-%d", n), N: n, Ops: make([]Op, 0, n)}
	for v := 1; v < n; v++ {
		s.Ops = append(s.Ops, Op{Kind: OpLink, U: v, V: 0})
	}
	s.Ops = append(s.Ops, Op{Kind: OpSnapshot})

	return s, nil
}

// RandomTree returns a script building a uniformly shuffled random
// recursive tree: vertices are visited in random order and each one links to
// a random earlier vertex. Ends with a snapshot. Requires n >= 1.
func RandomTree(n int, opts ...Option) (*Script, error) {
	if n < 1 {
		return nil, fmt.Errorf("workload: RandomTree(%d): %w", n, ErrTooFewVertices)
	}
	cfg := newGenConfig(opts...)
	order := cfg.rng.Perm(n)
	s := &Script{Name: fmt.Sprintf("random-tree-%d", n), N: n, Ops: make([]Op, 0, n)}
	for i := 1; i < n; i++ {
		s.Ops = append(s.Ops, Op{Kind: OpLink, U: order[i], V: order[cfg.rng.Intn(i)]})
	}
	s.Ops = append(s.Ops, Op{Kind: OpSnapshot})

	return s, nil
}

// RandomOps returns a script of steps random operations over n vertices.
//
// Each step draws a candidate pair (u, v) modulo n. A disconnected pair is
// linked. A connected pair triggers, with the configured cut ratio, the cut
// of a random live edge, and otherwise a connected(u, v) query. Every step
// is followed by a query on a fresh random pair. Snapshots and clears are
// interleaved per WithSnapshotEvery and WithClearEvery.
//
// The generator tracks the forest with the naive oracle, so every cut in
// the script names a live edge. Requires n >= 1.
func RandomOps(n, steps int, opts ...Option) (*Script, error) {
	if n < 1 {
		return nil, fmt.Errorf("workload: RandomOps(%d): %w", n, ErrTooFewVertices)
	}
	if steps < 0 {
		return nil, fmt.Errorf("workload: RandomOps steps=%d: %w", steps, ErrInvalidOp)
	}
	cfg := newGenConfig(opts...)
	rng := cfg.rng

	var (
		oracle = naive.New(n)
		live   = newEdgeSet[naive.Edge]()
		s      = &Script{Name: fmt.Sprintf("random-ops-%d-%d", n, steps), N: n, Ops: make([]Op, 0, 2*steps)}
	)
	for step := 0; step < steps; step++ {
		if cfg.clearEvery > 0 && step > 0 && step%cfg.clearEvery == 0 {
			oracle.Clear()
			live.clear()
			s.Ops = append(s.Ops, Op{Kind: OpClear})
		}

		u, v := rng.Intn(n), rng.Intn(n)
		switch {
		case !oracle.IsConnected(u, v):
			e, _ := oracle.Link(u, v)
			live.put(u, v, e)
			s.Ops = append(s.Ops, Op{Kind: OpLink, U: u, V: v})
		case live.len() > 0 && rng.Float64() < cfg.cutRatio:
			entry, _ := live.pick(rng, n)
			oracle.Cut(entry.edge)
			live.remove(entry.key.U, entry.key.V)
			s.Ops = append(s.Ops, Op{Kind: OpCut, U: entry.key.U, V: entry.key.V})
		default:
			s.Ops = append(s.Ops, Op{Kind: OpConnected, U: u, V: v})
		}
		s.Ops = append(s.Ops, Op{Kind: OpConnected, U: rng.Intn(n), V: rng.Intn(n)})

		if cfg.snapshotEvery > 0 && (step+1)%cfg.snapshotEvery == 0 {
			s.Ops = append(s.Ops, Op{Kind: OpSnapshot})
		}
	}

	return s, nil
}
