// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin public facade exposing configuration getters and Stats.
// Policy:
//   - No algorithms or hidden state here.
//   - Every exported function documents complexity and locking strategy.

package core

// GraphStats is a read-only snapshot of graph sizes and configuration.
type GraphStats struct {
	VertexCount  int
	EdgeCount    int
	PoolSize     int
	MinThreshold float64
	MaxThreshold float64
}

// Thresholds returns a copy of the configured insertion threshold list.
//
// Complexity:
//   - Time O(T), Space O(T).
//
// Concurrency: read lock on mu.
func (g *Graph) Thresholds() []float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return append([]float64(nil), g.thresholds...)
}

// MinThreshold returns min(thresholds): the insertion rejection cutoff.
// Complexity: O(1).
func (g *Graph) MinThreshold() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.minThreshold
}

// MaxThreshold returns max(thresholds): edges must score strictly above it
// to enter the candidate pool.
// Complexity: O(1).
func (g *Graph) MaxThreshold() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.maxThreshold
}

// Stats produces a consistent snapshot of sizes and thresholds.
//
// Implementation:
//   - Stage 1: Acquire mu read lock.
//   - Stage 2: Copy counters into a value object.
//
// Returns:
//   - GraphStats: immutable value snapshot.
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return GraphStats{
		VertexCount:  len(g.names),
		EdgeCount:    g.edgeCount,
		PoolSize:     len(g.pool),
		MinThreshold: g.minThreshold,
		MaxThreshold: g.maxThreshold,
	}
}
