package metrics_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqclust/clustering"
	"github.com/katalvlaran/seqclust/core"
	"github.com/katalvlaran/seqclust/metrics"
)

var _ clustering.Recorder = (*metrics.Collector)(nil)

func TestCollector_CountsDispatches(t *testing.T) {
	c := metrics.NewCollector("test")
	c.ObserveDispatch("seed_new_cluster", true)
	c.ObserveDispatch("seed_new_cluster", false)
	c.ObserveDispatch("seed_new_cluster", true)
	c.ObserveBand()
	c.SetLiveClusters(3)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.Dispatches.WithLabelValues("seed_new_cluster", "accepted")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Dispatches.WithLabelValues("seed_new_cluster", "rejected")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.Bands))
	assert.Equal(t, 3.0, testutil.ToFloat64(c.LiveClusters))
}

// TestCollector_Independent VERIFIES two collectors never share registrations.
func TestCollector_Independent(t *testing.T) {
	a := metrics.NewCollector("")
	b := metrics.NewCollector("")
	a.ObservePruned(4)

	assert.Equal(t, 4.0, testutil.ToFloat64(a.EdgesPruned))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.EdgesPruned))
}

func TestCollector_WiredIntoController(t *testing.T) {
	g := core.NewGraph(core.WithThresholds(0.2))
	for _, l := range []string{"A", "B", "C"} {
		_, err := g.AddVertex(l)
		require.NoError(t, err)
	}
	_, _, err := g.AddEdge("A", "B", 0.9)
	require.NoError(t, err)
	_, _, err = g.AddEdge("B", "C", 0.8)
	require.NoError(t, err)

	col := metrics.NewCollector("")
	ctrl, err := clustering.New(g, clustering.Config{InitialThreshold: 1, FinalThreshold: 0.2, ClusterThreshold: 0.5},
		clustering.WithMetrics(col))
	require.NoError(t, err)
	require.NoError(t, ctrl.Run(context.Background()))

	assert.Equal(t, float64(clustering.Bands), testutil.ToFloat64(col.Bands))
	assert.Equal(t, 1.0, testutil.ToFloat64(col.LiveClusters))
	assert.Equal(t, 1.0, testutil.ToFloat64(col.Dispatches.WithLabelValues("grow_into_node", "accepted")))
}

func TestCollector_WriteTextfile(t *testing.T) {
	c := metrics.NewCollector("")
	c.ObserveLoad(10, 2, 1, 3)
	c.ObserveClusterSizes([]int{2, 5})

	path := filepath.Join(t.TempDir(), "seqclust.prom")
	require.NoError(t, c.WriteTextfile(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(raw)
	assert.True(t, strings.Contains(text, `seqclust_edges_loaded_total{result="accepted"} 10`), text)
	assert.True(t, strings.Contains(text, `seqclust_edges_loaded_total{result="duplicate"} 3`), text)
	assert.True(t, strings.Contains(text, "seqclust_cluster_size_count 2"), text)
}
