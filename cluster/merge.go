package cluster

import "github.com/katalvlaran/seqclust/core"

// TryMerge absorbs other into c if every cross pair stays acceptable.
//
// Implementation:
//   - Stage 1: Reject self-merge, overlapping clusters, empty or foreign bridges.
//     b.In must run c→other, b.Out other→c.
//   - Stage 2: Border nodes are the members of c touched by a bridge. Each
//     border node is evaluated against other exactly like a TryInsert
//     candidate, yielding dIn/dOut to every member of other.
//   - Stage 3: Every other member i of c reaches other through the borders:
//     dIn(i,v)  = max_b dist[i][b] × dIn(b,v)   where dist[i][b] > inCheck
//     dOut(i,v) = max_b dOut(b,v) × dist[b][i]  where dist[b][i] > outCheck
//   - Stage 4: Any unacceptable pair aborts with no mutation.
//   - Stage 5: Commit: copy other's members, outdegrees and rows, write every
//     cross pair, bump the origin outdegree of each non-double bridge.
//
// Stages 2 and 3 are staged per row and may run on up to WithWorkers goroutines.
// The caller repoints other's vertices and drops other from its collection.
//
// Returns:
//   - bool: true iff other was absorbed.
//
// Complexity:
//   - Time O(|c| · |other| · |border|), Space O(|c| · |other|).
func (c *Cluster) TryMerge(other *Cluster, threshold float64, b Bridge) bool {
	if other == nil || other == c || b.Empty() {
		return false
	}
	for _, v := range other.order {
		if c.Contains(v) {
			return false
		}
	}

	inBy := make(map[core.VertexID][]*core.Edge)
	outBy := make(map[core.VertexID][]*core.Edge)
	for _, e := range b.In {
		if !c.Contains(e.From) || !other.Contains(e.To) {
			return false
		}
		inBy[e.From] = append(inBy[e.From], e)
	}
	for _, e := range b.Out {
		if !other.Contains(e.From) || !c.Contains(e.To) {
			return false
		}
		outBy[e.To] = append(outBy[e.To], e)
	}

	inCheck := pruneBound(threshold, b.InMax)
	outCheck := pruneBound(threshold, b.OutMax)

	var border, inner []int // indexes into c.order
	for k, i := range c.order {
		if len(inBy[i]) > 0 || len(outBy[i]) > 0 {
			border = append(border, k)
		} else {
			inner = append(inner, k)
		}
	}

	rows := make([]reach, len(c.order))
	ok := c.fanOut(len(border), func(k int) bool {
		i := c.order[border[k]]
		r, ok := reachInto(other, inBy[i], outBy[i], inCheck, outCheck, threshold)
		rows[border[k]] = r

		return ok
	})
	if !ok {
		return false
	}

	ok = c.fanOut(len(inner), func(k int) bool {
		i := c.order[inner[k]]
		r := newReach(len(other.order))
		for j := range other.order {
			var dIn, dOut float64
			for _, bk := range border {
				bv := c.order[bk]
				if d := c.dist[i][bv]; d > inCheck {
					if p := d * rows[bk].in[j]; p > dIn {
						dIn = p
					}
				}
				if d := c.dist[bv][i]; d > outCheck {
					if p := rows[bk].out[j] * d; p > dOut {
						dOut = p
					}
				}
			}
			if !Acceptable(dIn, dOut, threshold) {
				return false
			}
			r.in[j], r.out[j] = dIn, dOut
		}
		rows[inner[k]] = r

		return true
	})
	if !ok {
		return false
	}

	c.absorb(other, rows, b)

	return true
}

// absorb commits a validated merge. rows is aligned with c.order.
func (c *Cluster) absorb(other *Cluster, rows []reach, b Bridge) {
	for _, v := range other.order {
		c.members[v] = other.members[v]
		src := other.dist[v]
		cp := make(map[core.VertexID]float64, len(src)+len(c.order))
		for u, d := range src {
			cp[u] = d
		}
		c.dist[v] = cp
	}
	for k, i := range c.order {
		for j, v := range other.order {
			c.set(i, v, rows[k].in[j])
			c.set(v, i, rows[k].out[j])
		}
	}
	for _, e := range b.Edges() {
		if !b.IsDouble(e) {
			c.members[e.From]++
		}
	}
	c.order = append(c.order, other.order...)
}
