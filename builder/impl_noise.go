// SPDX-License-Identifier: MIT
// Package: seqclust/builder
//
// impl_noise.go - Noise(p, identity) constructor.
//
// Model (Erdős–Rényi-like over cross-family pairs):
//   - For every ordered pair (i,j) of existing vertices in different
//     families, emit a hit with probability p.
//   - pident = 100·identity; qcov = cfg.coverage.
//   - Pairs already present in the dataset are skipped.
//
// Contract:
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - 0 < identity ≤ 1 (else ErrInvalidIdentity).
//   - cfg.rng required when 0 < p < 1 (else ErrNeedRandSource).
//
// Complexity:
//   - Time O(n²) Bernoulli trials, Space O(1) extra.

package builder

import "math"

const (
	methodNoise = "Noise"
	probMin     = 0.0
	probMax     = 1.0
)

// Noise returns a Constructor that sprinkles cross-family hits.
func Noise(p, identity float64) Constructor {
	return func(ds *Dataset, cfg builderConfig) error {
		if p < probMin || p > probMax || math.IsNaN(p) {
			return builderErrorf(methodNoise, "p=%.6f not in [%.1f,%.1f]", ErrInvalidProbability, p, probMin, probMax)
		}
		if !validIdentity(identity) {
			return builderErrorf(methodNoise, "identity=%.4f not in (0,1]", ErrInvalidIdentity, identity)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return builderErrorf(methodNoise, "p=%.6f", ErrNeedRandSource, p)
		}
		if p == probMin {
			return nil
		}

		pident := identity * percentScale
		for _, u := range ds.Vertices {
			for _, v := range ds.Vertices {
				if ds.family[u] == ds.family[v] {
					continue
				}
				if p < probMax && cfg.rng.Float64() > p {
					continue
				}
				ds.addHit(u, v, pident, cfg.coverage)
			}
		}

		return nil
	}
}
