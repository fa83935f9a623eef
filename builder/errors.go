// SPDX-License-Identifier: MIT
// Package: procmesh/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; branch with errors.Is.
//   • Builders attach context with builderErrorf, which keeps the sentinel
//     reachable through %w.
//   • Panics are confined to option constructors (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewPoints indicates a count or dimension below the allowed minimum.
var ErrTooFewPoints = errors.New("builder: too few points")

// ErrInvalidBounds indicates an empty, inverted or non-finite bounding box,
// or a non-positive grid spacing.
var ErrInvalidBounds = errors.New("builder: invalid bounds")

// ErrInvalidJitter indicates a jitter fraction outside [0, MaxJitter).
var ErrInvalidJitter = errors.New("builder: jitter out of range")

// ErrNeedRandSource indicates that a stochastic builder ran without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// builderErrorf returns "<method>: <message>: <sentinel>" with the sentinel
// wrapped for errors.Is.
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
