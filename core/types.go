// SPDX-License-Identifier: MIT
// Package core defines the directed similarity Graph, its arena-backed Vertex and
// Edge types, and the candidate pool consumed by the clustering controller.
//
// This file declares VertexID, EdgeID, Edge, Graph, GraphOption, sentinel
// errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrEmptyVertexID      - vertex label is the empty string.
//	ErrVertexNotFound     - requested vertex label or ID does not exist.
//	ErrEdgeNotFound       - requested edge does not exist (or was removed).
//	ErrLoopNotAllowed     - self-edge (origin == destination).
//	ErrDuplicateEdge      - second edge for an ordered pair already present.
//	ErrAdjacencyMismatch  - outgoing/incoming maps disagree (CheckSymmetry).
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex label is empty.
	ErrEmptyVertexID = errors.New("core: vertex label is empty")

	// ErrVertexNotFound indicates an operation referenced a non-registered vertex.
	ErrVertexNotFound = errors.New("core: no such vertex")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-edge was offered to the graph.
	ErrLoopNotAllowed = errors.New("core: self-edge not allowed")

	// ErrDuplicateEdge indicates an edge for the same ordered pair already exists.
	ErrDuplicateEdge = errors.New("core: edge already exists for ordered pair")

	// ErrAdjacencyMismatch indicates the outgoing and incoming maps are out of sync.
	ErrAdjacencyMismatch = errors.New("core: adjacency maps out of sync")
)

// VertexID is a stable arena index handed out once per unique label.
type VertexID int

// EdgeID is a stable arena index handed out once per accepted edge.
type EdgeID int

// NoVertex is the zero-information VertexID returned alongside errors.
const NoVertex VertexID = -1

// Edge is a directed, scored similarity edge.
//
// Edges are immutable once created; identity is the ordered pair (From, To),
// and the graph holds at most one Edge per ordered pair.
type Edge struct {
	// ID is the arena slot of this edge.
	ID EdgeID

	// From is the origin vertex.
	From VertexID

	// To is the destination vertex.
	To VertexID

	// Score is the normalized similarity in the same units as all thresholds.
	Score float64
}

// IsNil reports whether the receiver should be treated as nil.
func (e *Edge) IsNil() bool { return e == nil }

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithThresholds sets the threshold list used at insertion time:
// AddEdge rejects scores below min(ts) and pools scores above max(ts).
// An empty list is a programmer error and panics.
func WithThresholds(ts ...float64) GraphOption {
	if len(ts) == 0 {
		panic("core: WithThresholds requires at least one threshold")
	}
	cp := append([]float64(nil), ts...)

	return func(g *Graph) {
		g.thresholds = cp
		g.minThreshold, g.maxThreshold = bounds(cp)
	}
}

// WithCapacity pre-sizes the vertex arena and label table for n vertices.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n <= 0 {
			return
		}
		g.labels = make(map[string]VertexID, n)
		g.names = make([]string, 0, n)
	}
}

// Graph is the directed similarity graph.
//
// Vertices and edges live in arenas (names, edges) and are referenced by
// stable integer indices. outgoing[u][v] and incoming[v][u] always name the
// same live edge. mu guards every field below it.
type Graph struct {
	mu sync.RWMutex

	// Configuration
	thresholds   []float64
	minThreshold float64
	maxThreshold float64

	// Vertex arena
	labels map[string]VertexID // label → vertex
	names  []string            // vertex → label

	// Edge arena; removed edges leave a nil slot so EdgeIDs stay stable.
	edges     []*Edge
	edgeCount int

	// outgoing[from][to] = edge, incoming[to][from] = edge
	outgoing map[VertexID]map[VertexID]EdgeID
	incoming map[VertexID]map[VertexID]EdgeID

	// pool is the candidate set for the clustering loop.
	pool map[EdgeID]struct{}
}

// NewGraph creates an empty directed Graph.
// By default the threshold list is [0]: every non-negative score is accepted
// and every positive score is pooled.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		thresholds: []float64{0},
		labels:     make(map[string]VertexID),
		outgoing:   make(map[VertexID]map[VertexID]EdgeID),
		incoming:   make(map[VertexID]map[VertexID]EdgeID),
		pool:       make(map[EdgeID]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// bounds returns min and max of a non-empty slice.
func bounds(ts []float64) (lo, hi float64) {
	lo, hi = ts[0], ts[0]
	for _, t := range ts[1:] {
		if t < lo {
			lo = t
		}
		if t > hi {
			hi = t
		}
	}

	return lo, hi
}
