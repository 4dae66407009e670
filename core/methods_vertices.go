// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - VertexIDs are handed out densely in registration order (0,1,2,...).
//   - Vertices() returns IDs ascending, i.e. registration order.
//
// Concurrency:
//   - Vertex arena and label table protected by mu.
package core

import "fmt"

// AddVertex registers label and returns its VertexID (idempotent).
//
// Implementation:
//   - Stage 1: Validate non-empty label (ErrEmptyVertexID).
//   - Stage 2: Under mu write lock, return the existing ID if the label is known.
//   - Stage 3: Otherwise append the label to the arena and index it.
//
// Behavior highlights:
//   - Exactly one VertexID per unique label for the lifetime of the Graph.
//   - This is the only operation that creates vertices.
//
// Inputs:
//   - label: external sequence identifier; must be non-empty.
//
// Returns:
//   - VertexID: the (new or existing) vertex.
//   - error: ErrEmptyVertexID on invalid input.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(label string) (VertexID, error) {
	if label == "" {
		return NoVertex, ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if id, ok := g.labels[label]; ok {
		return id, nil
	}
	id := VertexID(len(g.names))
	g.names = append(g.names, label)
	g.labels[label] = id

	return id, nil
}

// Vertex resolves label to its VertexID.
//
// Errors:
//   - ErrEmptyVertexID: if label == "".
//   - ErrVertexNotFound: if label was never registered (wrapped with the label).
//
// Complexity: O(1).
func (g *Graph) Vertex(label string) (VertexID, error) {
	if label == "" {
		return NoVertex, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.resolve(label)
}

// HasVertex reports whether label is registered (empty label ⇒ false).
// Complexity: O(1).
func (g *Graph) HasVertex(label string) bool {
	if label == "" {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.labels[label]

	return ok
}

// Label returns the external identifier of id, or "" if id is out of range.
// Complexity: O(1).
func (g *Graph) Label(id VertexID) string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if id < 0 || int(id) >= len(g.names) {
		return ""
	}

	return g.names[id]
}

// Vertices returns every VertexID in ascending (registration) order.
// Complexity: O(V).
func (g *Graph) Vertices() []VertexID {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]VertexID, len(g.names))
	for i := range out {
		out[i] = VertexID(i)
	}

	return out
}

// VertexCount returns the number of registered vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.names)
}

// resolve maps a label to its ID; caller holds mu.
func (g *Graph) resolve(label string) (VertexID, error) {
	id, ok := g.labels[label]
	if !ok {
		return NoVertex, fmt.Errorf("%w: %q", ErrVertexNotFound, label)
	}

	return id, nil
}
