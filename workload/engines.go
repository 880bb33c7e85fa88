// SPDX-License-Identifier: MIT

package workload

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/malbarbo/fera-sub000/dyntree"
	"github.com/malbarbo/fera-sub000/eulertour"
	"github.com/malbarbo/fera-sub000/linkcut"
	"github.com/malbarbo/fera-sub000/naive"
)

// Registered engine names.
const (
	EngineNaive          = "naive"
	EngineLinkCut        = "linkcut"
	EngineEulerTour      = "eulertour"
	EngineEulerTourTreap = "eulertour-treap"
)

// RunOption configures Run.
type RunOption func(*runConfig)

type runConfig struct {
	checks bool
	seed   uint64
}

// WithConsistencyChecks enables the engine's internal consistency check
// after every mutation, where the engine has one.
func WithConsistencyChecks() RunOption {
	return func(c *runConfig) {
		c.checks = true
	}
}

// WithEngineSeed seeds randomized engine internals (treap priorities).
func WithEngineSeed(seed uint64) RunOption {
	return func(c *runConfig) {
		c.seed = seed
	}
}

type runner func(s *Script, cfg runConfig) (*Trace, error)

var runners = map[string]runner{
	EngineNaive: func(s *Script, _ runConfig) (*Trace, error) {
		return Replay[naive.Edge](naive.New(s.N), s)
	},
	EngineLinkCut: func(s *Script, _ runConfig) (*Trace, error) {
		return Replay[linkcut.Edge](linkcut.New(s.N), s)
	},
	EngineEulerTour: func(s *Script, cfg runConfig) (*Trace, error) {
		return Replay[eulertour.Edge](eulertour.New(s.N, eulerOptions(cfg)...), s)
	},
	EngineEulerTourTreap: func(s *Script, cfg runConfig) (*Trace, error) {
		opts := append(eulerOptions(cfg), eulertour.WithBalancedTours(cfg.seed))
		return Replay[eulertour.Edge](eulertour.New(s.N, opts...), s)
	},
}

func eulerOptions(cfg runConfig) []eulertour.Option {
	if cfg.checks {
		return []eulertour.Option{eulertour.WithChecks()}
	}

	return nil
}

// Engines returns the registered engine names in sorted order.
func Engines() []string {
	return slices.Sorted(maps.Keys(runners))
}

// Run replays s on a fresh forest of the named engine. An engine panic
// carrying a dyntree error (for instance a failed consistency check) is
// returned as an error.
func Run(engine string, s *Script, opts ...RunOption) (tr *Trace, err error) {
	run, ok := runners[engine]
	if !ok {
		return nil, fmt.Errorf("workload: engine %q (have %v): %w", engine, Engines(), ErrUnknownEngine)
	}
	cfg := runConfig{seed: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if e, isErr := r.(error); isErr && isEngineError(e) {
			tr, err = nil, fmt.Errorf("workload: engine %s: %w", engine, e)
			return
		}
		panic(r)
	}()

	return run(s, cfg)
}

func isEngineError(err error) bool {
	return errors.Is(err, dyntree.ErrCorrupted) ||
		errors.Is(err, dyntree.ErrNotAnEdge) ||
		errors.Is(err, dyntree.ErrVertexOutOfRange)
}
