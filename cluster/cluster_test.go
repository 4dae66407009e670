package cluster_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqclust/cluster"
	"github.com/katalvlaran/seqclust/core"
)

const (
	Threshold = 0.5
	eps       = 1e-9
)

// fixture is a small graph with labels A..H registered in order (IDs 0..7).
type fixture struct {
	t *testing.T
	g *core.Graph
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	g := core.NewGraph(core.WithThresholds(0))
	for _, l := range []string{"A", "B", "C", "D", "E", "F", "G", "H"} {
		_, err := g.AddVertex(l)
		require.NoError(t, err)
	}

	return &fixture{t: t, g: g}
}

func (f *fixture) id(label string) core.VertexID {
	f.t.Helper()
	id, err := f.g.Vertex(label)
	require.NoError(f.t, err)

	return id
}

func (f *fixture) edge(from, to string, score float64) *core.Edge {
	f.t.Helper()
	e, ok, err := f.g.AddEdge(from, to, score)
	require.NoError(f.t, err)
	require.True(f.t, ok)

	return e
}

// bridge assembles a Bridge, marking mutual pairs from the graph.
func (f *fixture) bridge(in, out []*core.Edge) cluster.Bridge {
	b := cluster.Bridge{In: in, Out: out, Double: map[core.EdgeID]struct{}{}}
	for _, e := range in {
		b.InMax = max(b.InMax, e.Score)
		if f.g.HasReverse(e) {
			b.Double[e.ID] = struct{}{}
		}
	}
	for _, e := range out {
		b.OutMax = max(b.OutMax, e.Score)
		if f.g.HasReverse(e) {
			b.Double[e.ID] = struct{}{}
		}
	}

	return b
}

// seed creates a cluster from an existing edge.
func (f *fixture) seed(id cluster.ID, e *core.Edge, opts ...cluster.Option) *cluster.Cluster {
	return cluster.New(id, e.From, e.To, e.Score, f.g.HasReverse(e), opts...)
}

func TestNew_SeedDistances(t *testing.T) {
	f := newFixture(t)
	c := f.seed(1, f.edge("A", "B", 0.9))
	a, b := f.id("A"), f.id("B")

	assert.Equal(t, cluster.ID(1), c.ID())
	assert.Equal(t, 2, c.Size())
	assert.Equal(t, []core.VertexID{a, b}, c.Members())
	assert.InDelta(t, 0.9, c.Distance(a, b), eps)
	assert.Equal(t, 0.0, c.Distance(b, a))
	assert.True(t, c.HasDistance(b, a), "reverse seed distance is stored as 0")
	assert.Equal(t, 1, c.Outdegree(a))
	assert.Equal(t, 0, c.Outdegree(b))
}

func TestNew_MutualSeedSkipsOutdegree(t *testing.T) {
	f := newFixture(t)
	ab := f.edge("A", "B", 0.9)
	f.edge("B", "A", 0.8)
	c := f.seed(1, ab)

	assert.Equal(t, 0, c.Outdegree(f.id("A")), "mutual A→B does not count")
	assert.Equal(t, 0, c.Outdegree(f.id("B")))
	assert.InDelta(t, 0.9, c.Distance(f.id("A"), f.id("B")), eps)
}

func TestAcceptable(t *testing.T) {
	tests := []struct {
		name      string
		dIn, dOut float64
		want      bool
	}{
		{"no evidence", 0, 0, true},
		{"one strong direction", 0.9, 0, true},
		{"one weak direction", 0.3, 0, false},
		{"both weak", 0.3, 0.3, false},
		{"weak pair summing past threshold", 0.2, 0.35, false},
		{"weak sum over threshold one side zero", 0, 0.5, true},
		{"one strong one weak", 0.7, 0.2, true},
		{"both strong", 0.6, 0.6, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, cluster.Acceptable(tc.dIn, tc.dOut, Threshold))
		})
	}
}

// TestTryInsert_Transitive mirrors the A→B (0.9), B→C (0.8) scenario:
// dist[A][C] must be derived through B as 0.9 × 0.8.
func TestTryInsert_Transitive(t *testing.T) {
	f := newFixture(t)
	c := f.seed(1, f.edge("A", "B", 0.9))
	bc := f.edge("B", "C", 0.8)
	a, b, cc := f.id("A"), f.id("B"), f.id("C")

	require.True(t, c.TryInsert(cc, Threshold, f.bridge(nil, []*core.Edge{bc})))

	assert.Equal(t, 3, c.Size())
	assert.True(t, c.Contains(cc))
	assert.InDelta(t, 0.72, c.Distance(a, cc), eps)
	assert.InDelta(t, 0.8, c.Distance(b, cc), eps)
	assert.Equal(t, 0.0, c.Distance(cc, a))
	assert.Equal(t, 0.0, c.Distance(cc, b))
	assert.Equal(t, 0, c.Outdegree(cc))
	assert.Equal(t, 1, c.Outdegree(b), "non-mutual B→C counts for B")
}

// TestTryInsert_RejectLeavesStateUntouched VERIFIES all-or-nothing insertion.
func TestTryInsert_RejectLeavesStateUntouched(t *testing.T) {
	f := newFixture(t)
	c := f.seed(1, f.edge("A", "B", 0.9))
	bc := f.edge("B", "C", 0.8)
	before := c.Snapshot()

	// B→C alone (0.8) is below 0.85: B fails, A would pass.
	assert.False(t, c.TryInsert(f.id("C"), 0.85, f.bridge(nil, []*core.Edge{bc})))
	assert.Equal(t, before, c.Snapshot())
	assert.False(t, c.Contains(f.id("C")))
}

func TestTryInsert_WeakBothWaysRejected(t *testing.T) {
	f := newFixture(t)
	c := f.seed(1, f.edge("A", "B", 0.9))
	ca := f.edge("C", "A", 0.3)
	ac := f.edge("A", "C", 0.3)
	before := c.Snapshot()

	assert.False(t, c.TryInsert(f.id("C"), Threshold, f.bridge([]*core.Edge{ca}, []*core.Edge{ac})))
	assert.Equal(t, before, c.Snapshot())
}

func TestTryInsert_DoubleEdgesSkipOutdegree(t *testing.T) {
	f := newFixture(t)
	c := f.seed(1, f.edge("A", "B", 0.9))
	ca := f.edge("C", "A", 0.8)
	ac := f.edge("A", "C", 0.7)
	cb := f.edge("C", "B", 0.6)
	a, cc := f.id("A"), f.id("C")

	b := f.bridge([]*core.Edge{ca, cb}, []*core.Edge{ac})
	require.Len(t, b.Double, 2)
	require.True(t, c.TryInsert(cc, Threshold, b))

	assert.Equal(t, 1, c.Outdegree(cc), "only C→B is non-mutual")
	assert.Equal(t, 1, c.Outdegree(a), "mutual A→C does not count")
	assert.InDelta(t, 0.8, c.Distance(cc, a), eps)
	assert.InDelta(t, 0.7, c.Distance(a, cc), eps)
	assert.InDelta(t, 0.6, c.Distance(cc, f.id("B")), eps)
}

func TestTryInsert_InvalidInputs(t *testing.T) {
	f := newFixture(t)
	c := f.seed(1, f.edge("A", "B", 0.9))
	de := f.edge("D", "E", 0.9)
	ca := f.edge("C", "A", 0.9)

	assert.False(t, c.TryInsert(f.id("A"), Threshold, f.bridge([]*core.Edge{ca}, nil)), "existing member")
	assert.False(t, c.TryInsert(f.id("C"), Threshold, cluster.Bridge{}), "empty bridge")
	assert.False(t, c.TryInsert(f.id("D"), Threshold, f.bridge([]*core.Edge{de}, nil)), "edge not touching the cluster")
	assert.False(t, c.TryInsert(f.id("D"), Threshold, f.bridge([]*core.Edge{ca}, nil)), "edge from another vertex")
	assert.Equal(t, 2, c.Size())
}

// TestTryMerge_Basic merges {A,B} and {C,D} through B→C.
func TestTryMerge_Basic(t *testing.T) {
	f := newFixture(t)
	left := f.seed(1, f.edge("A", "B", 0.9))
	right := f.seed(2, f.edge("C", "D", 0.9))
	bc := f.edge("B", "C", 0.8)
	a, b, cc, d := f.id("A"), f.id("B"), f.id("C"), f.id("D")

	require.True(t, left.TryMerge(right, Threshold, f.bridge([]*core.Edge{bc}, nil)))

	assert.Equal(t, []core.VertexID{a, b, cc, d}, left.Members())
	assert.InDelta(t, 0.8, left.Distance(b, cc), eps)
	assert.InDelta(t, 0.72, left.Distance(b, d), eps)
	assert.InDelta(t, 0.72, left.Distance(a, cc), eps)
	assert.InDelta(t, 0.648, left.Distance(a, d), eps)
	assert.InDelta(t, 0.9, left.Distance(cc, d), eps, "other's rows are copied")
	assert.Equal(t, 0.0, left.Distance(d, a))
	assert.Equal(t, 1, left.Outdegree(b))
	assert.Equal(t, 1, left.Outdegree(cc))
}

func TestTryMerge_RejectLeavesBothUntouched(t *testing.T) {
	f := newFixture(t)
	left := f.seed(1, f.edge("A", "B", 0.9))
	right := f.seed(2, f.edge("C", "D", 0.9))
	bc := f.edge("B", "C", 0.8)
	beforeLeft, beforeRight := left.Snapshot(), right.Snapshot()

	assert.False(t, left.TryMerge(right, 0.85, f.bridge([]*core.Edge{bc}, nil)))
	assert.Equal(t, beforeLeft, left.Snapshot())
	assert.Equal(t, beforeRight, right.Snapshot())
}

func TestTryMerge_InvalidInputs(t *testing.T) {
	f := newFixture(t)
	left := f.seed(1, f.edge("A", "B", 0.9))
	right := f.seed(2, f.edge("C", "D", 0.9))
	bc := f.edge("B", "C", 0.8)
	ef := f.edge("E", "F", 0.8)

	assert.False(t, left.TryMerge(left, Threshold, f.bridge([]*core.Edge{bc}, nil)), "self merge")
	assert.False(t, left.TryMerge(nil, Threshold, f.bridge([]*core.Edge{bc}, nil)), "nil other")
	assert.False(t, left.TryMerge(right, Threshold, cluster.Bridge{}), "no bridge")
	assert.False(t, left.TryMerge(right, Threshold, f.bridge([]*core.Edge{ef}, nil)), "foreign bridge")
	assert.False(t, left.TryMerge(right, Threshold, f.bridge(nil, []*core.Edge{bc})), "wrong direction")
	assert.Equal(t, 2, left.Size())
}

// TestTryMerge_WorkersMatchSequential VERIFIES that the errgroup fan-out
// stages exactly the same rows as the sequential path.
func TestTryMerge_WorkersMatchSequential(t *testing.T) {
	build := func(workers int) cluster.Snapshot {
		f := newFixture(t)
		left := f.seed(1, f.edge("A", "B", 0.95), cluster.WithWorkers(workers))
		require.True(t, left.TryInsert(f.id("C"), Threshold, f.bridge(nil, []*core.Edge{f.edge("B", "C", 0.9)})))
		require.True(t, left.TryInsert(f.id("D"), Threshold, f.bridge(nil, []*core.Edge{f.edge("A", "D", 0.92)})))

		right := f.seed(2, f.edge("E", "F", 0.93))
		require.True(t, right.TryInsert(f.id("G"), Threshold, f.bridge(nil, []*core.Edge{f.edge("F", "G", 0.9)})))

		b := f.bridge(
			[]*core.Edge{f.edge("C", "E", 0.9), f.edge("D", "E", 0.85)},
			[]*core.Edge{f.edge("G", "A", 0.88)},
		)
		require.True(t, left.TryMerge(right, Threshold, b))
		require.Equal(t, 7, left.Size())

		return left.Snapshot()
	}

	assert.Equal(t, build(1), build(4))
}

func TestWithWorkers_PanicsOnZero(t *testing.T) {
	assert.Panics(t, func() { cluster.WithWorkers(0) })
}
