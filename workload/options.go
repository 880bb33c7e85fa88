// SPDX-License-Identifier: MIT

package workload

import (
	"fmt"
	"math/rand"
)

// Default generator knobs.
const (
	DefaultSeed          = 1
	DefaultCutRatio      = 0.5
	DefaultSnapshotEvery = 0
	DefaultClearEvery    = 0
)

// Option customizes a generator. Option constructors panic on meaningless
// values; generators themselves return errors.
type Option func(*genConfig)

type genConfig struct {
	rng           *rand.Rand
	cutRatio      float64
	snapshotEvery int
	clearEvery    int
}

func newGenConfig(opts ...Option) genConfig {
	cfg := genConfig{
		rng:           rand.New(rand.NewSource(DefaultSeed)),
		cutRatio:      DefaultCutRatio,
		snapshotEvery: DefaultSnapshotEvery,
		clearEvery:    DefaultClearEvery,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed seeds a fresh deterministic RNG.
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies the RNG directly. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("workload: WithRand(nil)")
	}
	return func(c *genConfig) {
		c.rng = r
	}
}

// WithCutRatio sets the probability that RandomOps cuts a live edge when
// the drawn pair is already connected; otherwise it records a query.
// Panics outside [0,1].
func WithCutRatio(p float64) Option {
	if p < 0 || p > 1 {
		panic(fmt.Sprintf("workload: WithCutRatio(%g) outside [0,1]", p))
	}
	return func(c *genConfig) {
		c.cutRatio = p
	}
}

// WithSnapshotEvery makes RandomOps emit a snapshot after every k steps
// (0 disables). Panics on negative k.
func WithSnapshotEvery(k int) Option {
	if k < 0 {
		panic(fmt.Sprintf("workload: WithSnapshotEvery(%d)", k))
	}
	return func(c *genConfig) {
		c.snapshotEvery = k
	}
}

// WithClearEvery makes RandomOps emit a clear every k steps (0 disables).
// Panics on negative k.
func WithClearEvery(k int) Option {
	if k < 0 {
		panic(fmt.Sprintf("workload: WithClearEvery(%d)", k))
	}
	return func(c *genConfig) {
		c.clearEvery = k
	}
}
