package clustering

import (
	"sort"

	"go.uber.org/zap"

	"github.com/katalvlaran/seqclust/cluster"
	"github.com/katalvlaran/seqclust/core"
)

// Controller owns the assignment and the live clusters for one graph.
// It is not safe for concurrent use.
type Controller struct {
	g   *core.Graph
	cfg Config

	assignment map[core.VertexID]*cluster.Cluster
	live       map[cluster.ID]*cluster.Cluster
	nextID     cluster.ID

	log             *zap.Logger
	trace           func(TraceEvent) bool
	rec             Recorder
	workers         int
	checkInvariants bool

	cutoff float64
	stats  Stats
}

// New returns a Controller over g with no clusters.
func New(g *core.Graph, cfg Config, opts ...Option) (*Controller, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	c := &Controller{
		g:          g,
		cfg:        cfg,
		assignment: make(map[core.VertexID]*cluster.Cluster),
		live:       make(map[cluster.ID]*cluster.Cluster),
		nextID:     1,
		log:        zap.NewNop(),
		workers:    1,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Classify returns the Transition Dispatch would take for e.
func (c *Controller) Classify(e *core.Edge) Transition {
	cu, cv := c.assignment[e.From], c.assignment[e.To]
	switch {
	case cu == nil && cv == nil:
		return SeedNewCluster
	case cu == nil:
		return GrowFromNode
	case cv == nil:
		return GrowIntoNode
	default:
		return MergeClusters
	}
}

// Dispatch applies the transition selected by the endpoints' assignment.
// It reports the transition and whether the assignment changed. On success
// every bridging edge is consumed from the pool.
func (c *Controller) Dispatch(e *core.Edge) (Transition, bool) {
	tr := c.Classify(e)
	var ok bool
	switch tr {
	case SeedNewCluster:
		ok = c.seed(e)
	case GrowFromNode:
		ok = c.grow(e.From, c.assignment[e.To])
	case GrowIntoNode:
		ok = c.grow(e.To, c.assignment[e.From])
	case MergeClusters:
		ok = c.merge(c.assignment[e.From], c.assignment[e.To])
	}

	c.stats.Dispatched++
	if ok {
		c.stats.Transitions[tr].Accepted++
	} else {
		c.stats.Transitions[tr].Rejected++
	}
	if c.rec != nil {
		c.rec.ObserveDispatch(tr.String(), ok)
		c.rec.SetLiveClusters(len(c.live))
	}
	c.emit(e, tr, ok)

	return tr, ok
}

func (c *Controller) seed(e *core.Edge) bool {
	if e.Score <= c.cfg.ClusterThreshold {
		return false
	}
	cl := cluster.New(c.nextID, e.From, e.To, e.Score, c.g.HasReverse(e), cluster.WithWorkers(c.workers))
	c.nextID++
	c.live[cl.ID()] = cl
	c.assignment[e.From] = cl
	c.assignment[e.To] = cl
	c.g.Consume(e)

	return true
}

func (c *Controller) grow(v core.VertexID, target *cluster.Cluster) bool {
	b := c.BridgeEdges([]core.VertexID{v}, target)
	if !target.TryInsert(v, c.cfg.ClusterThreshold, b) {
		return false
	}
	c.assignment[v] = target
	c.consume(b)

	return true
}

func (c *Controller) merge(into, from *cluster.Cluster) bool {
	if into == from {
		return false
	}
	b := c.BridgeEdges(into.Members(), from)
	if !into.TryMerge(from, c.cfg.ClusterThreshold, b) {
		return false
	}
	for _, v := range from.Members() {
		c.assignment[v] = into
	}
	delete(c.live, from.ID())
	c.consume(b)

	return true
}

func (c *Controller) consume(b cluster.Bridge) {
	for _, e := range b.Edges() {
		c.g.Consume(e)
	}
}

// BridgeEdges collects the graph edges between the source members and target.
// In holds member→target edges, Out target→member edges; Double marks edges
// whose reverse also exists. A single free vertex is passed as a one-member source.
func (c *Controller) BridgeEdges(members []core.VertexID, target *cluster.Cluster) cluster.Bridge {
	b := cluster.Bridge{Double: make(map[core.EdgeID]struct{})}
	for _, m := range members {
		for _, e := range c.g.OutEdges(m) {
			if !target.Contains(e.To) {
				continue
			}
			b.In = append(b.In, e)
			b.InMax = max(b.InMax, e.Score)
			if c.g.HasReverse(e) {
				b.Double[e.ID] = struct{}{}
			}
		}
		for _, e := range c.g.InEdges(m) {
			if !target.Contains(e.From) {
				continue
			}
			b.Out = append(b.Out, e)
			b.OutMax = max(b.OutMax, e.Score)
			if c.g.HasReverse(e) {
				b.Double[e.ID] = struct{}{}
			}
		}
	}

	return b
}

func (c *Controller) emit(e *core.Edge, tr Transition, ok bool) {
	if c.trace == nil {
		return
	}
	ev := TraceEvent{
		Edge:       e,
		From:       c.g.Label(e.From),
		To:         c.g.Label(e.To),
		Transition: tr,
		Accepted:   ok,
		Cutoff:     c.cutoff,
	}
	if !c.trace(ev) {
		return
	}
	c.log.Debug("dispatch",
		zap.String("from", ev.From),
		zap.String("to", ev.To),
		zap.Float64("score", e.Score),
		zap.Stringer("transition", tr),
		zap.Bool("accepted", ok),
		zap.Float64("cutoff", ev.Cutoff),
	)
}

// ClusterOf returns v's cluster, or nil when v is unassigned.
func (c *Controller) ClusterOf(v core.VertexID) *cluster.Cluster { return c.assignment[v] }

// Assignment returns a copy of vertex → cluster ID for every assigned vertex.
func (c *Controller) Assignment() map[core.VertexID]cluster.ID {
	out := make(map[core.VertexID]cluster.ID, len(c.assignment))
	for v, cl := range c.assignment {
		out[v] = cl.ID()
	}

	return out
}

// Clusters returns the live clusters ordered by ID.
func (c *Controller) Clusters() []*cluster.Cluster {
	out := make([]*cluster.Cluster, 0, len(c.live))
	for _, cl := range c.live {
		out = append(out, cl)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })

	return out
}

// ClusterCount returns the number of live clusters.
func (c *Controller) ClusterCount() int { return len(c.live) }

// Stats returns the run counters plus the current cluster totals.
func (c *Controller) Stats() Stats {
	s := c.stats
	s.LiveClusters = len(c.live)
	s.Clustered = len(c.assignment)
	s.Singletons = c.g.VertexCount() - len(c.assignment)

	return s
}
