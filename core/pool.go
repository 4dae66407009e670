// File: pool.go
// Role: Candidate pool maintenance: CandidatesAbove, Consume, PruneLowQuality.
// Determinism:
//   - CandidatesAbove() sorts by Score desc, ties by EdgeID asc (insertion order).
// Concurrency:
//   - Pool mutations under mu write lock.

package core

import "sort"

// CandidatesAbove returns every pooled edge with Score > threshold.
//
// Implementation:
//   - Stage 1: Acquire mu read lock and scan the pool.
//   - Stage 2: Sort by Score descending; equal scores fall back to EdgeID ascending.
//
// Returns:
//   - []*Edge: a snapshot; later pool mutations do not affect it.
//
// Complexity:
//   - Time O(P log P), Space O(P), P = pool size.
func (g *Graph) CandidatesAbove(threshold float64) []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge, 0, len(g.pool))
	for eid := range g.pool {
		if e := g.edges[eid]; e.Score > threshold {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}

		return out[i].ID < out[j].ID
	})

	return out
}

// InPool reports whether e is still a clustering candidate.
// Complexity: O(1).
func (g *Graph) InPool(e *Edge) bool {
	if e.IsNil() {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.pool[e.ID]

	return ok
}

// Consume removes e from the pool; the edge itself stays in the graph.
// Consuming an edge that is not pooled is a no-op.
// Complexity: O(1).
func (g *Graph) Consume(e *Edge) {
	if e.IsNil() {
		return
	}
	g.mu.Lock()
	delete(g.pool, e.ID)
	g.mu.Unlock()
}

// PoolSize returns the number of pooled candidates.
// Complexity: O(1).
func (g *Graph) PoolSize() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.pool)
}

// PruneLowQuality drops globally weak candidates from the pool and the graph.
//
// Implementation:
//   - Stage 1: cutoff = min(thresholds); with no arguments the graph's own list is used.
//   - Stage 2: Under mu write lock, every pooled edge with Score <= cutoff is
//     removed from the pool and unlinked from both adjacency maps.
//
// Returns:
//   - int: number of edges deleted.
//
// Complexity:
//   - Time O(P), Space O(1) extra.
func (g *Graph) PruneLowQuality(thresholds ...float64) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	cutoff := g.minThreshold
	if len(thresholds) > 0 {
		cutoff, _ = bounds(thresholds)
	}

	doomed := make([]EdgeID, 0)
	for eid := range g.pool {
		if g.edges[eid].Score <= cutoff {
			doomed = append(doomed, eid)
		}
	}
	for _, eid := range doomed {
		_ = g.removeLocked(eid) // pooled edges are always live
	}

	return len(doomed)
}
