package bfs

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/seqclust/core"
)

// BFS visits every vertex weakly reachable from start, following edges in
// both directions and skipping those below the WithMinScore floor.
//
// Implementation:
//   - Stage 1: validate graph, start vertex and options.
//   - Stage 2: FIFO walk; neighbors come from core.Graph.NeighborIDs, which
//     sorts them by VertexID, so the visit order is reproducible.
//   - Stage 3: the context is polled before each dequeue.
//
// Complexity:
//   - Time O(V + E log d), Space O(V).
func BFS(g *core.Graph, start core.VertexID, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	cfg, err := newWalkConfig(opts)
	if err != nil {
		return nil, err
	}

	return walk(g, start, cfg)
}

func walk(g *core.Graph, start core.VertexID, cfg walkConfig) (*Result, error) {
	n := g.VertexCount()
	if start < 0 || int(start) >= n {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	res := &Result{Depth: map[core.VertexID]int{start: 0}}
	queue := []core.VertexID{start}
	for len(queue) > 0 {
		if err := cfg.ctx.Err(); err != nil {
			return res, err
		}
		id := queue[0]
		queue = queue[1:]
		res.Order = append(res.Order, id)

		for _, nbr := range g.NeighborIDs(id, cfg.minScore) {
			if _, seen := res.Depth[nbr]; seen {
				continue
			}
			res.Depth[nbr] = res.Depth[id] + 1
			queue = append(queue, nbr)
		}
	}

	return res, nil
}

// Components partitions every vertex of g into weakly connected components
// using only edges with score >= minScore. Each component is sorted
// ascending; components are ordered by their smallest vertex.
//
// Complexity: O(V + E log d).
func Components(g *core.Graph, minScore float64, opts ...Option) ([][]core.VertexID, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	cfg, err := newWalkConfig(opts)
	if err == nil {
		WithMinScore(minScore)(&cfg)
		err = cfg.err
	}
	if err != nil {
		return nil, err
	}

	seen := make(map[core.VertexID]bool, g.VertexCount())
	var out [][]core.VertexID
	for _, v := range g.Vertices() {
		if seen[v] {
			continue
		}
		res, err := walk(g, v, cfg)
		if err != nil {
			return nil, err
		}
		comp := res.Order
		sort.Slice(comp, func(i, j int) bool { return comp[i] < comp[j] })
		for _, u := range comp {
			seen[u] = true
		}
		out = append(out, comp)
	}

	return out, nil
}

// ComponentIndex maps each vertex to the index of its component in comps.
func ComponentIndex(comps [][]core.VertexID) map[core.VertexID]int {
	idx := make(map[core.VertexID]int)
	for i, c := range comps {
		for _, v := range c {
			idx[v] = i
		}
	}

	return idx
}
