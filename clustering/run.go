package clustering

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Run sweeps the candidate pool from InitialThreshold down to FinalThreshold.
//
// Implementation:
//   - Stage 1: step = (Initial − Final) / Bands.
//   - Stage 2: For band k = 0..Bands-1 the cutoff is Initial − k·step; the
//     pool snapshot CandidatesAbove(cutoff) is walked in score order.
//   - Stage 3: Each edge still pooled is consumed, then dispatched. Edges
//     consumed earlier in the band (as bridges) are skipped; rejected edges
//     are never retried.
//   - Stage 4: With WithInvariantChecks the assignment is verified after
//     every dispatch.
//
// ctx is checked once per band; cancellation returns ctx.Err() wrapped.
// Run may be called again; already consumed edges are not revisited.
func (c *Controller) Run(ctx context.Context) error {
	step := (c.cfg.InitialThreshold - c.cfg.FinalThreshold) / Bands
	if step <= 0 {
		c.log.Info("clustering skipped: empty threshold range",
			zap.Float64("initial", c.cfg.InitialThreshold),
			zap.Float64("final", c.cfg.FinalThreshold))

		return nil
	}
	defer func() { c.cutoff = 0 }()

	for k := 0; k < Bands; k++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("clustering: band %d: %w", k, err)
		}
		c.cutoff = c.cfg.InitialThreshold - float64(k)*step

		batch := c.g.CandidatesAbove(c.cutoff)
		for _, e := range batch {
			if !c.g.InPool(e) {
				continue
			}
			c.g.Consume(e)
			c.Dispatch(e)
			if c.checkInvariants {
				if err := c.CheckInvariants(); err != nil {
					return err
				}
			}
		}

		c.stats.Bands++
		if c.rec != nil {
			c.rec.ObserveBand()
		}
		c.log.Debug("band done",
			zap.Int("band", k),
			zap.Float64("cutoff", c.cutoff),
			zap.Int("candidates", len(batch)),
			zap.Int("clusters", len(c.live)),
			zap.Int("pool", c.g.PoolSize()))
	}

	s := c.Stats()
	c.log.Info("clustering finished",
		zap.Int("dispatched", s.Dispatched),
		zap.Int("clusters", s.LiveClusters),
		zap.Int("clustered", s.Clustered),
		zap.Int("singletons", s.Singletons),
		zap.Int("merges", s.Of(MergeClusters).Accepted))

	return nil
}
