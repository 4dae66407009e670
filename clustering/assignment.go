package clustering

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/seqclust/report"
)

// CheckInvariants verifies that the assignment and the live clusters agree:
// every assigned vertex is a member of a live cluster, and every member of a
// live cluster is assigned to it. Violations wrap ErrInvariantViolated.
func (c *Controller) CheckInvariants() error {
	for v, cl := range c.assignment {
		if !cl.Contains(v) {
			return fmt.Errorf("%w: vertex %q assigned to cluster %d but not a member",
				ErrInvariantViolated, c.g.Label(v), cl.ID())
		}
		if c.live[cl.ID()] != cl {
			return fmt.Errorf("%w: vertex %q assigned to dead cluster %d",
				ErrInvariantViolated, c.g.Label(v), cl.ID())
		}
	}

	members := 0
	for id, cl := range c.live {
		for _, m := range cl.Members() {
			if c.assignment[m] != cl {
				return fmt.Errorf("%w: member %q of cluster %d is not assigned to it",
					ErrInvariantViolated, c.g.Label(m), id)
			}
		}
		members += cl.Size()
	}
	if members != len(c.assignment) {
		return fmt.Errorf("%w: %d members across clusters, %d assigned vertices",
			ErrInvariantViolated, members, len(c.assignment))
	}

	return nil
}

// Partition names every vertex of the graph. Live clusters become
// cluster_1, cluster_2, ... in ID order; unassigned vertices become
// singleton_1, singleton_2, ... in label order.
func (c *Controller) Partition() report.Partition {
	p := make(report.Partition, c.g.VertexCount())
	for n, cl := range c.Clusters() {
		name := fmt.Sprintf("cluster_%d", n+1)
		for _, v := range cl.Members() {
			p[c.g.Label(v)] = name
		}
	}

	var free []string
	for _, v := range c.g.Vertices() {
		if _, ok := c.assignment[v]; !ok {
			free = append(free, c.g.Label(v))
		}
	}
	sort.Strings(free)
	for n, l := range free {
		p[l] = fmt.Sprintf("singleton_%d", n+1)
	}

	return p
}

// Members returns the labels of cluster members grouped by live cluster,
// in cluster ID order with labels sorted.
func (c *Controller) Members() [][]string {
	out := make([][]string, 0, len(c.live))
	for _, cl := range c.Clusters() {
		labels := make([]string, 0, cl.Size())
		for _, v := range cl.Members() {
			labels = append(labels, c.g.Label(v))
		}
		sort.Strings(labels)
		out = append(out, labels)
	}

	return out
}
