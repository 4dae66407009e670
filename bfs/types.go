package bfs

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/seqclust/core"
)

var (
	// ErrStartVertexNotFound is returned when the start ID is not in the graph.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil is returned for a nil graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an Option received a meaningless value.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option tunes a traversal. Invalid values are reported by BFS and
// Components as ErrOptionViolation.
type Option func(*walkConfig)

type walkConfig struct {
	ctx      context.Context
	minScore float64
	err      error
}

func newWalkConfig(opts []Option) (walkConfig, error) {
	cfg := walkConfig{ctx: context.Background(), minScore: math.Inf(-1)}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg, cfg.err
}

// WithContext makes the walk stop with ctx.Err() once ctx is done.
func WithContext(ctx context.Context) Option {
	return func(c *walkConfig) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// WithMinScore ignores edges scoring below s. NaN is rejected.
func WithMinScore(s float64) Option {
	return func(c *walkConfig) {
		if math.IsNaN(s) {
			c.err = fmt.Errorf("%w: min score is NaN", ErrOptionViolation)
			return
		}
		c.minScore = s
	}
}

// Result is one traversal: vertices in visit order and their hop distance
// from the start vertex.
type Result struct {
	Order []core.VertexID
	Depth map[core.VertexID]int
}
