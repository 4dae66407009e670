// Package core provides the directed similarity graph used by seqclust:
// an arena-backed, thread-safe store of sequence vertices and scored edges,
// plus the candidate pool that feeds the clustering loop.
//
// The Graph G = (V,E) is directed only:
//
//   - Vertices are registered once per external label (AddVertex) and
//     referenced everywhere else by a dense VertexID.
//   - Edges carry a float64 similarity Score and are referenced by EdgeID.
//     At most one edge exists per ordered pair; self-edges are rejected.
//   - Adjacency is held twice, outgoing[from][to] and incoming[to][from],
//     so both neighbor directions are O(1) per lookup.
//   - A single sync.RWMutex guards all state.
//
// Threshold list (WithThresholds):
//
//	AddEdge rejects (silently, ok=false) any score below min(thresholds).
//	Accepted edges whose score is strictly above max(thresholds) enter the
//	candidate pool.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(label string) (VertexID, error)       // O(1)
//	Vertex(label string) (VertexID, error)          // O(1), ErrVertexNotFound
//	Label(id VertexID) string                       // O(1)
//
//	// Edge lifecycle
//	InsertEdge(from, to string, score, rejectBelow float64) (*Edge, bool, error)
//	AddEdge(from, to string, score float64) (*Edge, bool, error)
//	RemoveEdge(e *Edge) error
//	HasReverse(e *Edge) bool
//
//	// Neighborhood
//	OutEdges(v VertexID) []*Edge                    // sorted by To
//	InEdges(v VertexID) []*Edge                     // sorted by From
//
//	// Candidate pool
//	CandidatesAbove(threshold float64) []*Edge      // score desc, EdgeID asc
//	Consume(e *Edge)
//	PruneLowQuality(thresholds ...float64) int
//
//	// Diagnostics
//	CheckSymmetry() error
//	Stats() GraphStats
//
// Errors:
//
//	ErrEmptyVertexID     – zero-length label
//	ErrVertexNotFound    – unknown label (never auto-created)
//	ErrEdgeNotFound      – missing or removed edge
//	ErrLoopNotAllowed    – origin == destination
//	ErrDuplicateEdge     – ordered pair already linked
//	ErrAdjacencyMismatch – CheckSymmetry found a broken twin
package core
