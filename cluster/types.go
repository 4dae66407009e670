package cluster

import (
	"sort"

	"github.com/katalvlaran/seqclust/core"
)

// ID identifies a cluster within one clustering run.
type ID int

// Bridge is the set of graph edges connecting a source (one vertex or a whole
// cluster) to a target cluster.
//
// In holds edges source→target, Out holds edges target→source. Double lists
// the bridging edges whose reverse edge also exists in the graph; they still
// carry distance but are not counted towards outdegree. InMax and OutMax are
// the largest scores in In and Out (0 when empty).
type Bridge struct {
	In     []*core.Edge
	Out    []*core.Edge
	Double map[core.EdgeID]struct{}
	InMax  float64
	OutMax float64
}

// Empty reports whether no bridging edge exists in either direction.
func (b Bridge) Empty() bool { return len(b.In) == 0 && len(b.Out) == 0 }

// IsDouble reports whether e is part of a mutual pair.
func (b Bridge) IsDouble(e *core.Edge) bool {
	_, ok := b.Double[e.ID]
	return ok
}

// Edges returns In followed by Out.
func (b Bridge) Edges() []*core.Edge {
	out := make([]*core.Edge, 0, len(b.In)+len(b.Out))
	out = append(out, b.In...)

	return append(out, b.Out...)
}

// Option configures a Cluster at construction.
type Option func(*Cluster)

// WithWorkers bounds the goroutines used for merge row computation.
// n == 1 keeps everything on the caller's goroutine; n < 1 panics.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("cluster: WithWorkers requires n >= 1")
	}

	return func(c *Cluster) { c.workers = n }
}

// Cluster is a group of vertices with per-member outdegree counters and a
// sparse directed distance table. Absent entries read as 0.
//
// A Cluster is not safe for concurrent mutation; the clustering controller
// owns every instance.
type Cluster struct {
	id      ID
	order   []core.VertexID                             // insertion order
	members map[core.VertexID]int                       // member → outdegree
	dist    map[core.VertexID]map[core.VertexID]float64 // dist[u][v]
	workers int
}

// New seeds a cluster from the edge u→v with the given score.
// dist[u][v] = score and dist[v][u] = 0. u starts with outdegree 1 unless
// double reports that v→u also exists, as for a mutual bridge edge.
func New(id ID, u, v core.VertexID, score float64, double bool, opts ...Option) *Cluster {
	out := 1
	if double {
		out = 0
	}
	c := &Cluster{
		id:      id,
		order:   []core.VertexID{u, v},
		members: map[core.VertexID]int{u: out, v: 0},
		dist:    make(map[core.VertexID]map[core.VertexID]float64, 2),
		workers: 1,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.set(u, v, score)
	c.set(v, u, 0)

	return c
}

// ID returns the cluster identifier.
func (c *Cluster) ID() ID { return c.id }

// Size returns the member count.
func (c *Cluster) Size() int { return len(c.order) }

// Contains reports whether v is a member.
func (c *Cluster) Contains(v core.VertexID) bool {
	_, ok := c.members[v]
	return ok
}

// Members returns the member IDs in ascending order.
func (c *Cluster) Members() []core.VertexID {
	out := append([]core.VertexID(nil), c.order...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Outdegree returns the cluster-local outdegree of v (0 for non-members).
func (c *Cluster) Outdegree(v core.VertexID) int { return c.members[v] }

// Distance returns dist[u][v] (0 when no directed path is known).
func (c *Cluster) Distance(u, v core.VertexID) float64 { return c.dist[u][v] }

// HasDistance reports whether an entry dist[u][v] is stored.
func (c *Cluster) HasDistance(u, v core.VertexID) bool {
	_, ok := c.dist[u][v]
	return ok
}

// Snapshot is a deep copy of a cluster's mutable state.
type Snapshot struct {
	Members   map[core.VertexID]int
	Distances map[core.VertexID]map[core.VertexID]float64
}

// Snapshot deep-copies members, outdegrees and the distance table.
func (c *Cluster) Snapshot() Snapshot {
	s := Snapshot{
		Members:   make(map[core.VertexID]int, len(c.members)),
		Distances: make(map[core.VertexID]map[core.VertexID]float64, len(c.dist)),
	}
	for v, d := range c.members {
		s.Members[v] = d
	}
	for u, row := range c.dist {
		cp := make(map[core.VertexID]float64, len(row))
		for v, d := range row {
			cp[v] = d
		}
		s.Distances[u] = cp
	}

	return s
}

// set stores dist[u][v] = d, allocating the row on first use.
func (c *Cluster) set(u, v core.VertexID, d float64) {
	row, ok := c.dist[u]
	if !ok {
		row = make(map[core.VertexID]float64)
		c.dist[u] = row
	}
	row[v] = d
}
