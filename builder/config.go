// SPDX-License-Identifier: MIT
// Package: sssp/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng           = nil  (pure/deterministic unless seeded)
//   • weightFn      = DefaultWeightFn
//   • bidirectional = false

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	rng           *rand.Rand // nil means "no randomness"
	weightFn      WeightFn
	bidirectional bool // also emit to→from for every generated edge
}

// newBuilderConfig applies opts over the defaults, last wins.
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      nil,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// weight draws the next edge weight.
func (c builderConfig) weight() int64 {
	return c.weightFn(c.rng)
}
