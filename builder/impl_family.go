// SPDX-License-Identifier: MIT
// Package: seqclust/builder
//
// impl_family.go - Family(size, identity) constructor.
//
// Model:
//   - Adds size new vertices forming one planted family.
//   - Emits a hit for every ordered pair (i,j), i≠j, inside the family.
//   - pident = 100·(identity − |N(0,jitter)|), floored at 0; qcov = cfg.coverage.
//
// Contract:
//   - size ≥ 1 (else ErrTooFewVertices). A size-1 family plants a singleton.
//   - 0 < identity ≤ 1 (else ErrInvalidIdentity).
//   - cfg.jitter > 0 requires cfg.rng (else ErrNeedRandSource).
//
// Complexity:
//   - Time O(size²), Space O(size²) hits.
//
// Determinism:
//   - Vertex order: generation index asc. Pair order: i asc, j asc.

package builder

import "math"

const (
	methodFamily      = "Family"
	minFamilyVertices = 1
)

// Family returns a Constructor that plants one fully connected family.
func Family(size int, identity float64) Constructor {
	return func(ds *Dataset, cfg builderConfig) error {
		if size < minFamilyVertices {
			return builderErrorf(methodFamily, "size=%d < min=%d", ErrTooFewVertices, size, minFamilyVertices)
		}
		if !validIdentity(identity) {
			return builderErrorf(methodFamily, "identity=%.4f not in (0,1]", ErrInvalidIdentity, identity)
		}
		if cfg.jitter > 0 && cfg.rng == nil {
			return builderErrorf(methodFamily, "jitter=%.4f", ErrNeedRandSource, cfg.jitter)
		}

		fam := len(ds.Families)
		ids := make([]string, size)
		for i := range ids {
			ids[i] = ds.addVertex(cfg, fam)
		}
		ds.Families = append(ds.Families, ids)

		for i := 0; i < size; i++ {
			for j := 0; j < size; j++ {
				if i == j {
					continue
				}
				id := identity
				if cfg.jitter > 0 {
					id -= math.Abs(cfg.rng.NormFloat64()) * cfg.jitter
				}
				ds.addHit(ids[i], ids[j], math.Max(0, id)*percentScale, cfg.coverage)
			}
		}

		return nil
	}
}

// Families returns a Constructor that plants n families of the given size.
func Families(n, size int, identity float64) Constructor {
	return func(ds *Dataset, cfg builderConfig) error {
		if n < 1 {
			return builderErrorf(methodFamily, "n=%d < min=1", ErrTooFewVertices, n)
		}
		one := Family(size, identity)
		for k := 0; k < n; k++ {
			if err := one(ds, cfg); err != nil {
				return err
			}
		}

		return nil
	}
}

func validIdentity(x float64) bool {
	return !math.IsNaN(x) && x > 0 && x <= 1
}
