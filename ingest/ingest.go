// Package ingest reads the two clustering inputs, a vertex list and a
// pre-digested hit table, and loads them into a core.Graph.
//
// Vertex list: one sequence identifier per line. Blank lines and lines
// starting with '#' are skipped; repeated identifiers collapse.
//
// Hit table: tab- or space-separated columns
//
//	query  subject  pident  qcovs  [evalue]
//
// When the fifth column is present the e-value formula scores the hit,
// otherwise pident × qcovs does (see package score).
package ingest

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/seqclust/core"
	"github.com/katalvlaran/seqclust/score"
)

// ErrMalformedLine is wrapped with the line number for unparsable hit rows.
var ErrMalformedLine = errors.New("ingest: malformed line")

// LoadStats counts what Load did with its input.
type LoadStats struct {
	Vertices    int
	Accepted    int
	BelowCutoff int
	SelfHits    int
	// Duplicates counts extra rows for an ordered pair already seen.
	Duplicates int
}

// ReadVertices returns the unique identifiers in first-seen order.
func ReadVertices(r io.Reader) ([]string, error) {
	var out []string
	seen := make(map[string]struct{})
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		if _, dup := seen[line]; dup {
			continue
		}
		seen[line] = struct{}{}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ingest: vertices: %w", err)
	}

	return out, nil
}

// ReadHits parses a hit table.
func ReadHits(r io.Reader) ([]score.Hit, error) {
	var out []score.Hit
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		h, err := parseHit(strings.Fields(line))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrMalformedLine, ln, err)
		}
		out = append(out, h)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("ingest: hits: %w", err)
	}

	return out, nil
}

func parseHit(f []string) (score.Hit, error) {
	if len(f) < 4 || len(f) > 5 {
		return score.Hit{}, fmt.Errorf("want 4 or 5 fields, got %d", len(f))
	}
	h := score.Hit{Query: f[0], Subject: f[1]}
	var err error
	if h.PercentIdentity, err = strconv.ParseFloat(f[2], 64); err != nil {
		return score.Hit{}, fmt.Errorf("pident: %w", err)
	}
	if h.QueryCoverage, err = strconv.ParseFloat(f[3], 64); err != nil {
		return score.Hit{}, fmt.Errorf("qcovs: %w", err)
	}
	if len(f) == 5 {
		if h.EValue, err = strconv.ParseFloat(f[4], 64); err != nil {
			return score.Hit{}, fmt.Errorf("evalue: %w", err)
		}
		h.HasEValue = true
	}

	return h, nil
}

// Load registers every vertex, then scores and inserts every hit.
//
// Self hits are dropped. Repeated hits for one ordered pair collapse into a
// single edge carrying the highest score; the edge keeps the position of the
// pair's first row and each extra row is counted in Duplicates. Pairs whose
// best score is below min(g.Thresholds()) are counted in BelowCutoff and
// never reach the graph. Unknown identifiers and invalid statistics abort
// the load.
func Load(g *core.Graph, vertices []string, hits []score.Hit) (LoadStats, error) {
	var st LoadStats
	for _, v := range vertices {
		if _, err := g.AddVertex(v); err != nil {
			return st, fmt.Errorf("ingest: vertex %q: %w", v, err)
		}
	}
	st.Vertices = g.VertexCount()

	type pair struct{ query, subject string }
	type row struct {
		pair
		line  int
		score float64
	}
	rows := make([]row, 0, len(hits))
	seen := make(map[pair]int, len(hits))
	for i, h := range hits {
		if h.SelfHit() {
			st.SelfHits++
			continue
		}
		s, err := h.Score()
		if err != nil {
			return st, fmt.Errorf("ingest: hit %d (%s→%s): %w", i+1, h.Query, h.Subject, err)
		}
		k := pair{h.Query, h.Subject}
		if j, dup := seen[k]; dup {
			st.Duplicates++
			rows[j].score = max(rows[j].score, s)
			continue
		}
		seen[k] = len(rows)
		rows = append(rows, row{pair: k, line: i + 1, score: s})
	}

	cutoff := g.MinThreshold()
	for _, r := range rows {
		_, ok, err := g.InsertEdge(r.query, r.subject, r.score, cutoff)
		if err != nil {
			return st, fmt.Errorf("ingest: hit %d: %w", r.line, err)
		}
		if ok {
			st.Accepted++
		} else {
			st.BelowCutoff++
		}
	}

	return st, nil
}

// LoadFiles opens both inputs and calls Load.
func LoadFiles(g *core.Graph, verticesPath, hitsPath string) (LoadStats, error) {
	vertices, err := readFile(verticesPath, ReadVertices)
	if err != nil {
		return LoadStats{}, err
	}
	hits, err := readFile(hitsPath, ReadHits)
	if err != nil {
		return LoadStats{}, err
	}

	return Load(g, vertices, hits)
}

func readFile[T any](path string, read func(io.Reader) (T, error)) (T, error) {
	var zero T
	fh, err := os.Open(path)
	if err != nil {
		return zero, fmt.Errorf("ingest: %w", err)
	}
	defer func() { _ = fh.Close() }()

	v, err := read(fh)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", path, err)
	}

	return v, nil
}
