// Package report holds the clustering output: a Partition mapping every
// sequence label to exactly one cluster name, with TSV read/write helpers.
package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

// ErrMalformedRow is returned by ReadTSV for rows that are not "label<TAB>cluster".
var ErrMalformedRow = errors.New("report: malformed partition row")

// ErrDuplicateLabel is returned by ReadTSV when a label appears twice.
var ErrDuplicateLabel = errors.New("report: duplicate label")

// Partition maps a sequence label to its cluster name.
type Partition map[string]string

// Labels returns every label in ascending order.
func (p Partition) Labels() []string {
	out := make([]string, 0, len(p))
	for l := range p {
		out = append(out, l)
	}
	sort.Strings(out)

	return out
}

// Groups returns cluster name → sorted member labels.
func (p Partition) Groups() map[string][]string {
	out := make(map[string][]string)
	for _, l := range p.Labels() {
		out[p[l]] = append(out[p[l]], l)
	}

	return out
}

// ClusterCount returns the number of distinct cluster names.
func (p Partition) ClusterCount() int {
	seen := make(map[string]struct{}, len(p))
	for _, c := range p {
		seen[c] = struct{}{}
	}

	return len(seen)
}

// WriteTSV writes "label<TAB>cluster" rows sorted by label.
func WriteTSV(w io.Writer, p Partition) error {
	bw := bufio.NewWriter(w)
	for _, l := range p.Labels() {
		if _, err := fmt.Fprintf(bw, "%s\t%s\n", l, p[l]); err != nil {
			return fmt.Errorf("report: write %q: %w", l, err)
		}
	}

	return bw.Flush()
}

// ReadTSV parses rows written by WriteTSV. Blank lines and lines starting
// with '#' are skipped.
func ReadTSV(r io.Reader) (Partition, error) {
	p := make(Partition)
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Split(text, "\t")
		if len(fields) != 2 || fields[0] == "" || fields[1] == "" {
			return nil, fmt.Errorf("%w: line %d", ErrMalformedRow, line)
		}
		if _, dup := p[fields[0]]; dup {
			return nil, fmt.Errorf("%w: %q at line %d", ErrDuplicateLabel, fields[0], line)
		}
		p[fields[0]] = fields[1]
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("report: scan: %w", err)
	}

	return p, nil
}

// Equivalent reports whether a and b cover the same labels and group them
// identically, regardless of the cluster names used.
func Equivalent(a, b Partition) bool {
	if len(a) != len(b) {
		return false
	}
	fwd := make(map[string]string)
	rev := make(map[string]string)
	for l, ca := range a {
		cb, ok := b[l]
		if !ok {
			return false
		}
		if prev, seen := fwd[ca]; seen && prev != cb {
			return false
		}
		if prev, seen := rev[cb]; seen && prev != ca {
			return false
		}
		fwd[ca], rev[cb] = cb, ca
	}

	return true
}
