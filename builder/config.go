// SPDX-License-Identifier: MIT
// Package: procmesh/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn = DefaultIDFn ("0","1","2",...)
//   • rng  = nil (stochastic builders fail with ErrNeedRandSource)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by builders.
// It is passed by VALUE to builders.
type builderConfig struct {
	// Point label strategy: index -> ID.
	idFn IDFn
	// RNG for stochastic builders; nil means "no randomness".
	rng *rand.Rand
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (last wins).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn: DefaultIDFn,
		rng:  nil,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
