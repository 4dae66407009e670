// SPDX-License-Identifier: MIT
// Package: seqclust/builder
//
// options.go - functional options and the resolved builderConfig.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Determinism is explicit: randomness only through WithSeed or WithRand.
//   • Later options override earlier ones.

package builder

import (
	"fmt"
	"math/rand"
)

// IDFn generates a sequence identifier from its zero-based index.
// It must be pure: the same idx always yields the same string.
type IDFn func(idx int) string

// DefaultIDFn returns "seq0001", "seq0002", ... (1-based, zero-padded to four digits).
func DefaultIDFn(idx int) string {
	return fmt.Sprintf("seq%04d", idx+1)
}

// PrefixIDFn returns prefix followed by the decimal index, e.g. "p0", "p1".
// Panics on empty prefix.
func PrefixIDFn(prefix string) IDFn {
	if prefix == "" {
		panic("builder: PrefixIDFn(\"\")")
	}
	return func(idx int) string { return fmt.Sprintf("%s%d", prefix, idx) }
}

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// builderConfig is passed by value to constructors.
type builderConfig struct {
	idFn IDFn
	// rng is nil unless WithSeed/WithRand was given.
	rng *rand.Rand
	// jitter is the standard deviation, in identity units, subtracted
	// (as |N(0,σ)|) from every intra-family hit.
	jitter float64
	// coverage is the query coverage written on every hit, in percent.
	coverage float64
}

const (
	defaultCoverage = 100.0
	percentScale    = 100.0
)

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		coverage: defaultCoverage,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDScheme sets the identifier generator. Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed attaches a new *rand.Rand seeded with seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithJitter perturbs intra-family identities by |N(0,sigma)|.
// Panics if sigma < 0. A positive sigma requires an RNG.
func WithJitter(sigma float64) BuilderOption {
	if sigma < 0 {
		panic("builder: WithJitter(sigma<0)")
	}
	return func(c *builderConfig) { c.jitter = sigma }
}

// WithCoverage sets the query coverage (percent) written on every hit.
// Panics outside (0,100].
func WithCoverage(pct float64) BuilderOption {
	if pct <= 0 || pct > percentScale {
		panic("builder: WithCoverage(pct not in (0,100])")
	}
	return func(c *builderConfig) { c.coverage = pct }
}
