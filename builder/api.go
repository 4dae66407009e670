// SPDX-License-Identifier: MIT
// Package: seqclust/builder
//
// api.go - Dataset, Constructor and the Build orchestrator.
//
// Design contract:
//   - One orchestrator: Build(opts, cons...) resolves the config once and
//     runs every constructor in order against the same Dataset.
//   - Determinism: same options, seed and constructor order ⇒ identical
//     vertex lists and hit tables.
//   - Safety: constructors validate first and return sentinel errors.

package builder

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/seqclust/core"
	"github.com/katalvlaran/seqclust/ingest"
	"github.com/katalvlaran/seqclust/report"
	"github.com/katalvlaran/seqclust/score"
)

// Dataset is a synthetic clustering input together with its ground truth.
type Dataset struct {
	// Vertices lists identifiers in generation order.
	Vertices []string
	// Hits lists generated alignment records in generation order.
	Hits []score.Hit
	// Families holds the planted groups, each in generation order.
	Families [][]string

	family map[string]int
	pairs  map[[2]string]struct{}
}

// Constructor extends a Dataset using the resolved builderConfig.
type Constructor func(ds *Dataset, cfg builderConfig) error

// Build resolves opts and applies cons in order to an empty Dataset.
// Constructor errors are wrapped with "Build: %w".
//
// Complexity:
//   - Σ cost of each constructor; wrapper overhead O(K).
func Build(opts []BuilderOption, cons ...Constructor) (*Dataset, error) {
	ds := &Dataset{
		family: make(map[string]int),
		pairs:  make(map[[2]string]struct{}),
	}
	cfg := newBuilderConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(ds, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return ds, nil
}

// addVertex appends the next identifier to family fam and returns it.
func (ds *Dataset) addVertex(cfg builderConfig, fam int) string {
	id := cfg.idFn(len(ds.Vertices))
	ds.Vertices = append(ds.Vertices, id)
	ds.family[id] = fam

	return id
}

// addHit records q→s unless the ordered pair already exists.
func (ds *Dataset) addHit(q, s string, pident, qcov float64) bool {
	key := [2]string{q, s}
	if _, dup := ds.pairs[key]; dup {
		return false
	}
	ds.pairs[key] = struct{}{}
	ds.Hits = append(ds.Hits, score.Hit{
		Query:           q,
		Subject:         s,
		PercentIdentity: pident,
		QueryCoverage:   qcov,
	})

	return true
}

// Truth returns the planted grouping as a partition (family_1, family_2, ...).
// Equivalent(ctrl.Partition(), ds.Truth()) holds when clustering recovers it.
func (ds *Dataset) Truth() report.Partition {
	p := make(report.Partition, len(ds.Vertices))
	for i, fam := range ds.Families {
		name := "family_" + strconv.Itoa(i+1)
		for _, id := range fam {
			p[id] = name
		}
	}

	return p
}

// Load inserts the dataset into g through ingest.Load.
func (ds *Dataset) Load(g *core.Graph) (ingest.LoadStats, error) {
	return ingest.Load(g, ds.Vertices, ds.Hits)
}

// WriteVertices writes one identifier per line.
func (ds *Dataset) WriteVertices(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, v := range ds.Vertices {
		if _, err := fmt.Fprintln(bw, v); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// WriteHits writes the four-column hit table read by ingest.ReadHits.
func (ds *Dataset) WriteHits(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, h := range ds.Hits {
		if _, err := fmt.Fprintf(bw, "%s\t%s\t%s\t%s\n", h.Query, h.Subject,
			strconv.FormatFloat(h.PercentIdentity, 'f', -1, 64),
			strconv.FormatFloat(h.QueryCoverage, 'f', -1, 64)); err != nil {
			return err
		}
	}

	return bw.Flush()
}
