// Package bfs finds the weakly connected pieces of a similarity graph.
//
// A cluster can only grow along edges, so no cluster spans two components:
// component sizes bound cluster sizes. `seqclust stats` reports them.
//
// BFS(g, start, opts...) walks edges in both directions and returns the
// visit order and hop depth of every reached vertex. Components(g, minScore)
// repeats the walk from every unvisited vertex.
//
// Options
//
//   - WithContext(ctx):   stop with ctx.Err() once ctx is done.
//   - WithMinScore(s):    ignore edges scoring below s (NaN ⇒ ErrOptionViolation).
//
// Neighbors are visited in VertexID order, so results are deterministic.
package bfs
