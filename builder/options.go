// SPDX-License-Identifier: MIT
// Package: gridroute/builder
//
// options.go — functional options for the builder package.
//
// Contract:
//   - Option constructors VALIDATE and PANIC on meaningless inputs.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.
//   - No hidden globals; everything flows through builderConfig.

package builder

import (
	"math/rand"
)

// defaultConstWeight is the edge weight when no WeightFn is configured.
const defaultConstWeight = int64(1)

// BuilderOption customizes a builderConfig before constructors run.
type BuilderOption func(*builderConfig)

// builderConfig is the resolved configuration passed to every Constructor.
type builderConfig struct {
	rng           *rand.Rand             // nil means "no randomness"
	weightFn      func(*rand.Rand) int64 // per-edge weight
	bidirectional bool                   // emit v→u alongside every u→v
	loops         bool                   // RandomSparse may emit i→i
	labelFn       func(int) string       // nil: unlabeled graph
}

// newBuilderConfig applies opts over strict, deterministic defaults.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		weightFn: func(*rand.Rand) int64 { return defaultConstWeight },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRand provides an explicit RNG for stochastic builders. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}

	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
// Use this in tests to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
// The generator must not return negative weights; core rejects them.
func WithWeightFn(fn func(*rand.Rand) int64) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}

	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithBidirectional makes Path, Cycle and Complete emit both u→v and v→u.
func WithBidirectional() BuilderOption {
	return func(c *builderConfig) {
		c.bidirectional = true
	}
}

// WithLoops lets RandomSparse sample self-loops i→i.
func WithLoops() BuilderOption {
	return func(c *builderConfig) {
		c.loops = true
	}
}

// WithLabelScheme labels vertex i with fn(i) via core.WithLabels. Panics on nil.
func WithLabelScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithLabelScheme(nil)")
	}

	return func(c *builderConfig) {
		c.labelFn = fn
	}
}
