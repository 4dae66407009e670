// Package metrics exposes Prometheus counters for a clustering run.
//
// Each Collector owns its own registry so that tests and repeated runs in
// one process never collide on registration.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// DefaultNamespace prefixes every metric name.
const DefaultNamespace = "seqclust"

// Collector holds the Prometheus metrics of one run. It implements
// clustering.Recorder.
type Collector struct {
	registry *prometheus.Registry

	Dispatches   *prometheus.CounterVec
	Bands        prometheus.Counter
	LiveClusters prometheus.Gauge
	EdgesLoaded  *prometheus.CounterVec
	EdgesPruned  prometheus.Counter
	ClusterSizes prometheus.Histogram
}

// NewCollector creates and registers every metric under namespace
// (DefaultNamespace when empty).
func NewCollector(namespace string) *Collector {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	registry := prometheus.NewRegistry()

	dispatches := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dispatches_total",
			Help:      "Candidate edges dispatched, by transition and outcome",
		},
		[]string{"transition", "outcome"},
	)

	bands := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bands_total",
			Help:      "Score bands swept by the annealing loop",
		},
	)

	live := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "live_clusters",
			Help:      "Clusters currently alive",
		},
	)

	loaded := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "edges_loaded_total",
			Help:      "Hits read from input, by result (accepted, below_cutoff, self_hit, duplicate)",
		},
		[]string{"result"},
	)

	pruned := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "edges_pruned_total",
			Help:      "Pooled edges removed by low-quality pruning",
		},
	)

	sizes := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "cluster_size",
			Help:      "Member count of final clusters",
			Buckets:   prometheus.ExponentialBuckets(2, 2, 10),
		},
	)

	registry.MustRegister(dispatches, bands, live, loaded, pruned, sizes)

	return &Collector{
		registry:     registry,
		Dispatches:   dispatches,
		Bands:        bands,
		LiveClusters: live,
		EdgesLoaded:  loaded,
		EdgesPruned:  pruned,
		ClusterSizes: sizes,
	}
}

// ObserveDispatch counts one dispatch outcome.
func (c *Collector) ObserveDispatch(transition string, accepted bool) {
	outcome := "rejected"
	if accepted {
		outcome = "accepted"
	}
	c.Dispatches.WithLabelValues(transition, outcome).Inc()
}

// ObserveBand counts one completed band.
func (c *Collector) ObserveBand() { c.Bands.Inc() }

// SetLiveClusters records the current cluster count.
func (c *Collector) SetLiveClusters(n int) { c.LiveClusters.Set(float64(n)) }

// ObserveLoad records ingest totals.
func (c *Collector) ObserveLoad(accepted, belowCutoff, selfHits, duplicates int) {
	c.EdgesLoaded.WithLabelValues("accepted").Add(float64(accepted))
	c.EdgesLoaded.WithLabelValues("below_cutoff").Add(float64(belowCutoff))
	c.EdgesLoaded.WithLabelValues("self_hit").Add(float64(selfHits))
	c.EdgesLoaded.WithLabelValues("duplicate").Add(float64(duplicates))
}

// ObservePruned records the edges dropped by PruneLowQuality.
func (c *Collector) ObservePruned(n int) { c.EdgesPruned.Add(float64(n)) }

// ObserveClusterSizes feeds the final cluster sizes into the histogram.
func (c *Collector) ObserveClusterSizes(sizes []int) {
	for _, s := range sizes {
		c.ClusterSizes.Observe(float64(s))
	}
}

// Registry returns the Prometheus registry for this collector.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// WriteTextfile writes the current metric values in the text exposition
// format, suitable for the node_exporter textfile collector.
func (c *Collector) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, c.registry)
}
