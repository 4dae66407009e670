// SPDX-License-Identifier: MIT

// Package clustering drives the annealed agglomeration of a core.Graph into
// clusters of redundant sequences.
//
// A Controller owns the assignment (vertex → cluster) and the collection of
// live clusters. Run sweeps the candidate pool in 100 score bands from
// InitialThreshold down to FinalThreshold; every candidate edge is consumed
// and dispatched exactly once according to the assignment state of its
// endpoints:
//
//	both free             SeedNewCluster
//	origin free           GrowFromNode   (origin joins destination's cluster)
//	destination free      GrowIntoNode   (destination joins origin's cluster)
//	both assigned         MergeClusters  (no-op when already together)
//
// Errors (sentinel):
//
//	– ErrNilGraph          if New receives a nil graph.
//	– ErrBadThresholds     if a threshold is outside [0,1] or Initial < Final.
//	– ErrInvariantViolated if CheckInvariants finds an inconsistent assignment.
package clustering

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/seqclust/core"
)

var (
	// ErrNilGraph is returned when New is called with a nil graph.
	ErrNilGraph = errors.New("clustering: graph is nil")

	// ErrBadThresholds indicates a Config outside [0,1] or with Initial < Final.
	ErrBadThresholds = errors.New("clustering: invalid thresholds")

	// ErrInvariantViolated is wrapped by CheckInvariants with the offending detail.
	ErrInvariantViolated = errors.New("clustering: invariant violated")
)

// Bands is the number of score bands swept by Run.
const Bands = 100

// Transition names the dispatch branch chosen for an edge.
type Transition int

const (
	SeedNewCluster Transition = iota
	GrowFromNode
	GrowIntoNode
	MergeClusters
)

const numTransitions = 4

// String returns the snake_case name used in logs and metrics.
func (t Transition) String() string {
	switch t {
	case SeedNewCluster:
		return "seed_new_cluster"
	case GrowFromNode:
		return "grow_from_node"
	case GrowIntoNode:
		return "grow_into_node"
	case MergeClusters:
		return "merge_clusters"
	default:
		return fmt.Sprintf("transition(%d)", int(t))
	}
}

// Config carries the three clustering thresholds.
type Config struct {
	// InitialThreshold is the first (highest) band cutoff.
	InitialThreshold float64
	// FinalThreshold is the exclusive lower bound of the sweep.
	FinalThreshold float64
	// ClusterThreshold gates seeding and every TryInsert/TryMerge.
	ClusterThreshold float64
}

func (c Config) validate() error {
	for _, v := range []float64{c.InitialThreshold, c.FinalThreshold, c.ClusterThreshold} {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return fmt.Errorf("%w: %v not in [0,1]", ErrBadThresholds, v)
		}
	}
	if c.InitialThreshold < c.FinalThreshold {
		return fmt.Errorf("%w: initial %.3f < final %.3f", ErrBadThresholds, c.InitialThreshold, c.FinalThreshold)
	}

	return nil
}

// TraceEvent describes one dispatch, offered to the WithTrace predicate.
type TraceEvent struct {
	Edge       *core.Edge
	From, To   string // labels
	Transition Transition
	Accepted   bool
	Cutoff     float64 // current band cutoff, 0 outside Run
}

// Recorder receives dispatch outcomes; metrics.Collector implements it.
type Recorder interface {
	ObserveDispatch(transition string, accepted bool)
	ObserveBand()
	SetLiveClusters(n int)
}

// Option customizes a Controller.
type Option func(*Controller)

// WithLogger sets the zap logger (default zap.NewNop()).
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithTrace installs a predicate; events for which it returns true are
// logged at Debug with edge labels and outcome.
func WithTrace(fn func(TraceEvent) bool) Option {
	return func(c *Controller) { c.trace = fn }
}

// WithMetrics reports every dispatch, band and cluster count to r.
func WithMetrics(r Recorder) Option {
	return func(c *Controller) { c.rec = r }
}

// WithWorkers bounds the goroutines a merge may use. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("clustering: WithWorkers requires n >= 1")
	}

	return func(c *Controller) { c.workers = n }
}

// WithInvariantChecks makes Run verify the assignment after every dispatch.
func WithInvariantChecks(on bool) Option {
	return func(c *Controller) { c.checkInvariants = on }
}

// Outcome counts accepted and rejected dispatches of one Transition.
type Outcome struct {
	Accepted int
	Rejected int
}

// Stats summarizes a run.
type Stats struct {
	Bands        int
	Dispatched   int
	Transitions  [numTransitions]Outcome // indexed by Transition
	LiveClusters int
	Clustered    int // vertices assigned to a cluster
	Singletons   int
}

// Of returns the outcome counters for t.
func (s Stats) Of(t Transition) Outcome { return s.Transitions[t] }
