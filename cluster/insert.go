package cluster

import "github.com/katalvlaran/seqclust/core"

// TryInsert adds candidate to the cluster if every member stays acceptable.
//
// Implementation:
//   - Stage 1: Reject members, empty bridges and edges not joining candidate to a member.
//   - Stage 2: inCheck = threshold/InMax, outCheck = threshold/OutMax.
//   - Stage 3: For every member v compute dIn = dist(candidate→v) and
//     dOut = dist(v→candidate) from the bridges (see reachInto); any
//     unacceptable pair aborts with no mutation.
//   - Stage 4: Commit: candidate outdegree = |In \ Double|, each non-double Out
//     edge bumps its origin's outdegree, dist rows are written for all members.
//
// Inputs:
//   - candidate: vertex outside the cluster.
//   - threshold: cluster similarity threshold.
//   - b: In = candidate→member edges, Out = member→candidate edges.
//
// Returns:
//   - bool: true iff the candidate was added.
//
// Complexity:
//   - Time O(|C| · |b|), Space O(|C|).
func (c *Cluster) TryInsert(candidate core.VertexID, threshold float64, b Bridge) bool {
	if c.Contains(candidate) || b.Empty() {
		return false
	}
	for _, e := range b.In {
		if e.From != candidate || !c.Contains(e.To) {
			return false
		}
	}
	for _, e := range b.Out {
		if e.To != candidate || !c.Contains(e.From) {
			return false
		}
	}

	r, ok := reachInto(c, b.In, b.Out, pruneBound(threshold, b.InMax), pruneBound(threshold, b.OutMax), threshold)
	if !ok {
		return false
	}

	deg := 0
	for _, e := range b.In {
		if !b.IsDouble(e) {
			deg++
		}
	}
	for _, e := range b.Out {
		if !b.IsDouble(e) {
			c.members[e.From]++
		}
	}
	for j, v := range c.order {
		c.set(candidate, v, r.in[j])
		c.set(v, candidate, r.out[j])
	}
	c.members[candidate] = deg
	c.order = append(c.order, candidate)

	return true
}
