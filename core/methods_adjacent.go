// File: methods_adjacent.go
// Role: Neighborhood APIs (OutEdges, InEdges, NeighborIDs).
// Determinism:
//   - OutEdges() sorts by destination ID asc; InEdges() sorts by origin ID asc.
//   - NeighborIDs() returns unique IDs ascending, ignoring direction.
// Concurrency:
//   - Read operations hold mu read lock for a consistent snapshot.

package core

import "sort"

// OutEdges returns every edge whose origin is v, sorted by destination ID.
//
// Implementation:
//   - Stage 1: Acquire mu read lock.
//   - Stage 2: Map outgoing[v] edge IDs to *Edge.
//   - Stage 3: Sort by Edge.To ascending.
//
// Behavior highlights:
//   - Returns pointers to live arena edges (read-only by convention).
//   - Unknown or isolated vertices yield an empty slice.
//
// Complexity:
//   - Time O(d log d), Space O(d), d = out-degree of v.
func (g *Graph) OutEdges(v VertexID) []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	row := g.outgoing[v]
	out := make([]*Edge, 0, len(row))
	for _, eid := range row {
		out = append(out, g.edges[eid])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].To < out[j].To })

	return out
}

// InEdges returns every edge whose destination is v, sorted by origin ID.
// Complexity: O(d log d), d = in-degree of v.
func (g *Graph) InEdges(v VertexID) []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	row := g.incoming[v]
	out := make([]*Edge, 0, len(row))
	for _, eid := range row {
		out = append(out, g.edges[eid])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].From < out[j].From })

	return out
}

// NeighborIDs returns the unique vertices adjacent to v in either direction,
// sorted ascending. Edges with Score < minScore are ignored.
//
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(v VertexID, minScore float64) []VertexID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	set := make(map[VertexID]struct{}, len(g.outgoing[v])+len(g.incoming[v]))
	for to, eid := range g.outgoing[v] {
		if g.edges[eid].Score >= minScore {
			set[to] = struct{}{}
		}
	}
	for from, eid := range g.incoming[v] {
		if g.edges[eid].Score >= minScore {
			set[from] = struct{}{}
		}
	}
	out := make([]VertexID, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
