// SPDX-License-Identifier: MIT
// Package: seqclust/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach method context with %w (see builderErrorf).
//   • Runtime paths never panic; panics are confined to WithX option constructors.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates a family or dataset size below the allowed minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside the closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrInvalidIdentity indicates a target identity outside (0,1].
var ErrInvalidIdentity = errors.New("builder: identity out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or an unusable dataset.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf returns "<method>: <formatted message>: <err>" keeping err
// reachable through errors.Is.
func builderErrorf(method, format string, err error, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), err)
}
