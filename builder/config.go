// SPDX-License-Identifier: MIT
// Package: lvlpath/builder
//
// config.go - resolved builder configuration and functional options.

package builder

import "math/rand"

// builderConfig is the immutable configuration handed to every Constructor.
type builderConfig struct {
	// idFn maps a vertex index to its name.
	idFn IDFn

	// rng drives stochastic constructors and weight functions; nil unless set.
	rng *rand.Rand

	// weightFn draws the weight of each emitted edge.
	weightFn WeightFn
}

// BuilderOption mutates builderConfig before constructors run.
type BuilderOption func(*builderConfig)

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDScheme sets how vertex indices become names. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand uses r for all randomness. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed uses a fresh RNG seeded with seed, freezing stochastic output.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn sets the edge weight distribution. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}
