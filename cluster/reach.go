package cluster

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/seqclust/core"
)

// errRejected stops an errgroup fan-out at the first unacceptable pair.
var errRejected = errors.New("cluster: pair rejected")

// reach holds staged distances between one source vertex and every member
// of a target cluster, aligned with the target's insertion order.
type reach struct {
	in  []float64 // source → member
	out []float64 // member → source
}

func newReach(n int) reach {
	return reach{in: make([]float64, n), out: make([]float64, n)}
}

// reachInto computes the distances between one source vertex and every
// member v of target.
//
// in holds the source's edges source→t, out holds edges t→source, with every
// t a member of target. A direct edge to/from v wins; otherwise the best
// product over the other bridged members is used:
//
//	dIn(v)  = max_t score(source→t) × dist[t][v]   where dist[t][v] > inCheck
//	dOut(v) = max_t score(t→source) × dist[v][t]   where dist[v][t] > outCheck
//
// It returns false as soon as one pair fails Acceptable.
func reachInto(target *Cluster, in, out []*core.Edge, inCheck, outCheck, threshold float64) (reach, bool) {
	inScore := make(map[core.VertexID]float64, len(in))
	for _, e := range in {
		inScore[e.To] = e.Score
	}
	outScore := make(map[core.VertexID]float64, len(out))
	for _, e := range out {
		outScore[e.From] = e.Score
	}

	r := newReach(len(target.order))
	for j, v := range target.order {
		dIn, directIn := inScore[v]
		if !directIn {
			for t, s := range inScore {
				if d := target.dist[t][v]; d > inCheck {
					if p := s * d; p > dIn {
						dIn = p
					}
				}
			}
		}

		dOut, directOut := outScore[v]
		if !directOut {
			for t, s := range outScore {
				if d := target.dist[v][t]; d > outCheck {
					if p := s * d; p > dOut {
						dOut = p
					}
				}
			}
		}

		if !Acceptable(dIn, dOut, threshold) {
			return reach{}, false
		}
		r.in[j], r.out[j] = dIn, dOut
	}

	return r, true
}

// fanOut runs fn(0..n-1) and reports whether every call returned true.
// With more than one worker the calls run on an errgroup bounded by
// c.workers and the first false cancels the rest.
func (c *Cluster) fanOut(n int, fn func(k int) bool) bool {
	if c.workers <= 1 || n < 2 {
		for k := 0; k < n; k++ {
			if !fn(k) {
				return false
			}
		}

		return true
	}

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(c.workers)
	for k := 0; k < n; k++ {
		if ctx.Err() != nil {
			break
		}
		k := k
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			if !fn(k) {
				return errRejected
			}

			return nil
		})
	}

	return g.Wait() == nil
}
