// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for seqclust/core.
//
// Purpose:
//   - Provide small, deterministic fixtures for core.Graph.
//   - Keep label and score literals out of test bodies.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqclust/core"
)

// Common vertex labels used across core tests.
const (
	VertexEmpty = ""

	VertexA = "A"
	VertexB = "B"
	VertexC = "C"
	VertexD = "D"
	VertexX = "X"
)

// Common scores and thresholds used across core tests.
const (
	ScoreLow  = 0.2
	ScoreMid  = 0.6
	ScoreHigh = 0.9

	ThresholdLow  = 0.3
	ThresholdHigh = 0.5
)

// Common concurrency sizes used across core tests.
const (
	NConcurrentAdds = 200
	NReaders        = 50
)

// newGraphWith registers labels on a graph configured with the given thresholds.
func newGraphWith(t testing.TB, thresholds []float64, labels ...string) *core.Graph {
	t.Helper()

	g := core.NewGraph(core.WithThresholds(thresholds...))
	for _, l := range labels {
		_, err := g.AddVertex(l)
		require.NoError(t, err, "AddVertex(%q)", l)
	}

	return g
}

// mustAdd inserts from→to and requires it to be accepted.
func mustAdd(t testing.TB, g *core.Graph, from, to string, score float64) *core.Edge {
	t.Helper()

	e, ok, err := g.AddEdge(from, to, score)
	require.NoError(t, err, "AddEdge(%s,%s)", from, to)
	require.True(t, ok, "AddEdge(%s,%s,%v) must be accepted", from, to, score)

	return e
}

// mustID resolves a label or fails the test.
func mustID(t testing.TB, g *core.Graph, label string) core.VertexID {
	t.Helper()

	id, err := g.Vertex(label)
	require.NoError(t, err, "Vertex(%q)", label)

	return id
}
