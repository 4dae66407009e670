// File: methods_edges.go
// Role: Edge lifecycle & queries: InsertEdge/AddEdge/RemoveEdge/HasEdge/EdgeBetween/
//       HasReverse/Edges/EdgeCount.
// Determinism:
//   - EdgeIDs are monotonic arena slots; removed slots are never reused.
//   - Edges() returns live edges sorted by EdgeID asc.
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package core

import (
	"fmt"
	"sort"
)

// InsertEdge resolves both labels, builds a scored edge, and links it.
//
// Steps:
//  1. Resolve origin/destination labels (ErrVertexNotFound; vertices are never auto-created).
//  2. Reject self-edges (ErrLoopNotAllowed).
//  3. Reject a second edge for the same ordered pair (ErrDuplicateEdge),
//     whatever its score.
//  4. If score < rejectBelow, return (nil, false, nil) without touching the graph.
//  5. Append to the edge arena, link outgoing[from][to] and incoming[to][from].
//  6. Pool the edge if score > max(thresholds).
//
// Returns:
//   - *Edge: the inserted edge (nil on rejection or error).
//   - bool: true iff the edge was accepted.
//   - error: structural failures only; a low score is not an error.
//
// Complexity: O(1) amortized.
// Concurrency: write lock on mu.
func (g *Graph) InsertEdge(from, to string, score, rejectBelow float64) (*Edge, bool, error) {
	if from == "" || to == "" {
		return nil, false, ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	u, err := g.resolve(from)
	if err != nil {
		return nil, false, err
	}
	v, err := g.resolve(to)
	if err != nil {
		return nil, false, err
	}
	if u == v {
		return nil, false, fmt.Errorf("%w: %q", ErrLoopNotAllowed, from)
	}
	if _, dup := g.outgoing[u][v]; dup {
		return nil, false, fmt.Errorf("%w: %q→%q", ErrDuplicateEdge, from, to)
	}
	if score < rejectBelow {
		return nil, false, nil
	}

	e := &Edge{ID: EdgeID(len(g.edges)), From: u, To: v, Score: score}
	g.edges = append(g.edges, e)
	g.edgeCount++
	g.link(e)

	if score > g.maxThreshold {
		g.pool[e.ID] = struct{}{}
	}

	return e, true, nil
}

// AddEdge is InsertEdge with rejectBelow = min(thresholds).
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, score float64) (*Edge, bool, error) {
	return g.InsertEdge(from, to, score, g.MinThreshold())
}

// RemoveEdge deletes e from both adjacency maps, the pool, and the arena.
//
// Errors:
//   - ErrEdgeNotFound: e is nil, unknown, or already removed.
//
// Complexity: O(1).
// Concurrency: write lock on mu.
func (g *Graph) RemoveEdge(e *Edge) error {
	if e.IsNil() {
		return ErrEdgeNotFound
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.removeLocked(e.ID)
}

// HasEdge reports whether an edge u→v exists.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v VertexID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.outgoing[u][v]

	return ok
}

// EdgeBetween returns the edge u→v if present.
// Complexity: O(1).
func (g *Graph) EdgeBetween(u, v VertexID) (*Edge, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	eid, ok := g.outgoing[u][v]
	if !ok {
		return nil, false
	}

	return g.edges[eid], true
}

// Edge returns the live edge stored in slot id.
// Errors: ErrEdgeNotFound when the slot is out of range or was removed.
// Complexity: O(1).
func (g *Graph) Edge(id EdgeID) (*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if id < 0 || int(id) >= len(g.edges) || g.edges[id] == nil {
		return nil, ErrEdgeNotFound
	}

	return g.edges[id], nil
}

// HasReverse reports whether an edge e.To→e.From exists.
// Complexity: O(1).
func (g *Graph) HasReverse(e *Edge) bool {
	if e.IsNil() {
		return false
	}

	return g.HasEdge(e.To, e.From)
}

// Edges returns every live edge sorted by EdgeID asc.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]*Edge, 0, g.edgeCount)
	for _, e := range g.edges {
		if e != nil {
			out = append(out, e)
		}
	}

	return out
}

// EdgeCount returns the number of live edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// CheckSymmetry walks both adjacency maps and verifies that every
// outgoing[u][v] has a matching incoming[v][u] naming the same live edge,
// and vice versa.
//
// Returns:
//   - error: nil when consistent; ErrAdjacencyMismatch wrapped with the first offending pair.
//
// Complexity: O(V+E).
func (g *Graph) CheckSymmetry() error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	seen := 0
	for _, u := range sortedKeys(g.outgoing) {
		for v, eid := range g.outgoing[u] {
			back, ok := g.incoming[v][u]
			if !ok || back != eid {
				return fmt.Errorf("%w: outgoing %d→%d has no incoming twin", ErrAdjacencyMismatch, u, v)
			}
			e := g.edges[eid]
			if e == nil || e.From != u || e.To != v {
				return fmt.Errorf("%w: outgoing %d→%d names stale edge %d", ErrAdjacencyMismatch, u, v, eid)
			}
			seen++
		}
	}
	for v, row := range g.incoming {
		for u, eid := range row {
			if fwd, ok := g.outgoing[u][v]; !ok || fwd != eid {
				return fmt.Errorf("%w: incoming %d←%d has no outgoing twin", ErrAdjacencyMismatch, v, u)
			}
		}
	}
	if seen != g.edgeCount {
		return fmt.Errorf("%w: %d adjacency entries for %d edges", ErrAdjacencyMismatch, seen, g.edgeCount)
	}

	return nil
}

// link inserts e into both adjacency maps; caller holds mu.
func (g *Graph) link(e *Edge) {
	out, ok := g.outgoing[e.From]
	if !ok {
		out = make(map[VertexID]EdgeID)
		g.outgoing[e.From] = out
	}
	out[e.To] = e.ID

	in, ok := g.incoming[e.To]
	if !ok {
		in = make(map[VertexID]EdgeID)
		g.incoming[e.To] = in
	}
	in[e.From] = e.ID
}

// removeLocked unlinks slot id everywhere; caller holds mu.
func (g *Graph) removeLocked(id EdgeID) error {
	if id < 0 || int(id) >= len(g.edges) || g.edges[id] == nil {
		return ErrEdgeNotFound
	}
	e := g.edges[id]

	delete(g.outgoing[e.From], e.To)
	if len(g.outgoing[e.From]) == 0 {
		delete(g.outgoing, e.From)
	}
	delete(g.incoming[e.To], e.From)
	if len(g.incoming[e.To]) == 0 {
		delete(g.incoming, e.To)
	}
	delete(g.pool, id)
	g.edges[id] = nil
	g.edgeCount--

	return nil
}

// sortedKeys returns the keys of an adjacency map in ascending order.
func sortedKeys(m map[VertexID]map[VertexID]EdgeID) []VertexID {
	keys := make([]VertexID, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	return keys
}
