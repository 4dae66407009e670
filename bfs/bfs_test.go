package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"math"
	"reflect"
	"testing"

	"github.com/katalvlaran/seqclust/bfs"
	"github.com/katalvlaran/seqclust/clustering"
	"github.com/katalvlaran/seqclust/core"
)

// chain builds v0→v1→…→vN with the given score on every edge.
func chain(t testing.TB, n int, score float64) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i <= n; i++ {
		if _, err := g.AddVertex(fmt.Sprintf("v%d", i)); err != nil {
			t.Fatal(err)
		}
	}
	for i := 0; i < n; i++ {
		if _, _, err := g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1), score); err != nil {
			t.Fatal(err)
		}
	}

	return g
}

// build registers labels then inserts each {from, to, score} edge.
func build(t testing.TB, labels []string, edges [][3]any) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, l := range labels {
		if _, err := g.AddVertex(l); err != nil {
			t.Fatal(err)
		}
	}
	for _, e := range edges {
		if _, _, err := g.AddEdge(e[0].(string), e[1].(string), e[2].(float64)); err != nil {
			t.Fatal(err)
		}
	}

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	if _, err := bfs.BFS(nil, 0); !errors.Is(err, bfs.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	g := core.NewGraph()
	if _, err := bfs.BFS(g, 0); !errors.Is(err, bfs.ErrStartVertexNotFound) {
		t.Errorf("missing start: want ErrStartVertexNotFound, got %v", err)
	}
	g2 := chain(t, 1, 0.5)
	if _, err := bfs.BFS(g2, 0, bfs.WithMinScore(math.NaN())); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("NaN score: want ErrOptionViolation, got %v", err)
	}
	if _, err := bfs.Components(g2, math.NaN()); !errors.Is(err, bfs.ErrOptionViolation) {
		t.Errorf("Components NaN score: want ErrOptionViolation, got %v", err)
	}
}

// TestBFS_FollowsBothDirections covers weak connectivity on a directed chain.
func TestBFS_FollowsBothDirections(t *testing.T) {
	g := chain(t, 3, 0.5)
	res, err := bfs.BFS(g, 3)
	if err != nil {
		t.Fatal(err)
	}
	if want := []core.VertexID{3, 2, 1, 0}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("Order = %v; want %v", res.Order, want)
	}
	if got := res.Depth[0]; got != 3 {
		t.Errorf("Depth[v0] = %d; want 3", got)
	}
}

// TestBFS_FewestHops checks depths on a graph with a long and a short route.
func TestBFS_FewestHops(t *testing.T) {
	g := build(t, []string{"A", "B", "C", "D", "E"}, [][3]any{
		{"A", "B", 0.9}, {"B", "C", 0.9}, {"C", "E", 0.9}, {"A", "D", 0.6}, {"E", "D", 0.6},
	})
	res, err := bfs.BFS(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got := res.Depth[4]; got != 2 {
		t.Errorf("Depth[E] = %d; want 2", got)
	}
	if got := len(res.Order); got != 5 {
		t.Errorf("visited %d; want 5", got)
	}
}

// TestBFS_MinScore shows how a score floor cuts the chain.
func TestBFS_MinScore(t *testing.T) {
	g := build(t, []string{"A", "B", "C"}, [][3]any{{"A", "B", 0.9}, {"B", "C", 0.3}})
	res, err := bfs.BFS(g, 0, bfs.WithMinScore(0.5))
	if err != nil {
		t.Fatal(err)
	}
	if want := []core.VertexID{0, 1}; !reflect.DeepEqual(res.Order, want) {
		t.Errorf("MinScore: got %v; want %v", res.Order, want)
	}
}

// TestBFS_Cancellation verifies that a cancelled context halts the walk.
func TestBFS_Cancellation(t *testing.T) {
	g := chain(t, 100, 0.5)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := bfs.BFS(g, 0, bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("BFS: want context.Canceled, got %v", err)
	}
	if _, err := bfs.Components(g, 0, bfs.WithContext(ctx)); !errors.Is(err, context.Canceled) {
		t.Errorf("Components: want context.Canceled, got %v", err)
	}
}

// TestComponents splits two islands and an isolated vertex.
func TestComponents(t *testing.T) {
	g := build(t, []string{"A", "B", "C", "D", "E"}, [][3]any{{"A", "C", 0.9}, {"D", "B", 0.9}, {"C", "E", 0.1}})

	comps, err := bfs.Components(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	if want := [][]core.VertexID{{0, 2, 4}, {1, 3}}; !reflect.DeepEqual(comps, want) {
		t.Errorf("Components(0) = %v; want %v", comps, want)
	}

	comps, _ = bfs.Components(g, 0.5)
	if want := [][]core.VertexID{{0, 2}, {1, 3}, {4}}; !reflect.DeepEqual(comps, want) {
		t.Errorf("Components(0.5) = %v; want %v", comps, want)
	}
	if idx := bfs.ComponentIndex(comps); idx[4] != 2 || idx[3] != 1 {
		t.Errorf("ComponentIndex = %v", idx)
	}
}

// TestComponents_BoundClusters verifies no cluster ever spans two components.
func TestComponents_BoundClusters(t *testing.T) {
	var labels []string
	for i := 0; i < 16; i++ {
		labels = append(labels, fmt.Sprintf("S%02d", i))
	}
	g := core.NewGraph(core.WithThresholds(0.2))
	for _, l := range labels {
		if _, err := g.AddVertex(l); err != nil {
			t.Fatal(err)
		}
	}
	// two dense islands: 0..7 and 8..15
	for i := 0; i < 16; i++ {
		for j := 0; j < 16; j++ {
			if i == j || (i < 8) != (j < 8) || (i+j)%2 == 1 {
				continue
			}
			s := 0.5 + float64((i*3+j)%50)/100
			if _, _, err := g.AddEdge(labels[i], labels[j], s); err != nil {
				t.Fatal(err)
			}
		}
	}

	ctrl, err := clustering.New(g, clustering.Config{InitialThreshold: 1, FinalThreshold: 0.2, ClusterThreshold: 0.5})
	if err != nil {
		t.Fatal(err)
	}
	if err := ctrl.Run(context.Background()); err != nil {
		t.Fatal(err)
	}

	comps, err := bfs.Components(g, 0)
	if err != nil {
		t.Fatal(err)
	}
	idx := bfs.ComponentIndex(comps)
	for _, cl := range ctrl.Clusters() {
		members := cl.Members()
		for _, m := range members[1:] {
			if idx[m] != idx[members[0]] {
				t.Errorf("cluster %d spans components %d and %d", cl.ID(), idx[members[0]], idx[m])
			}
		}
	}
}
