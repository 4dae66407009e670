package report_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqclust/report"
)

func samplePartition() report.Partition {
	return report.Partition{
		"seqC": "cluster_1",
		"seqA": "cluster_1",
		"seqB": "cluster_2",
		"seqD": "singleton_1",
	}
}

func TestWriteTSV_SortedByLabel(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteTSV(&buf, samplePartition()))

	want := "seqA\tcluster_1\nseqB\tcluster_2\nseqC\tcluster_1\nseqD\tsingleton_1\n"
	assert.Equal(t, want, buf.String())
}

// TestRoundTrip VERIFIES that write→read preserves equivalence classes.
func TestRoundTrip(t *testing.T) {
	p := samplePartition()
	var buf bytes.Buffer
	require.NoError(t, report.WriteTSV(&buf, p))

	got, err := report.ReadTSV(&buf)
	require.NoError(t, err)
	assert.True(t, report.Equivalent(p, got))
	assert.Equal(t, 3, got.ClusterCount())
	assert.Equal(t, []string{"seqA", "seqC"}, got.Groups()["cluster_1"])
}

func TestReadTSV_Errors(t *testing.T) {
	_, err := report.ReadTSV(strings.NewReader("seqA\n"))
	assert.ErrorIs(t, err, report.ErrMalformedRow)

	_, err = report.ReadTSV(strings.NewReader("seqA\tc1\nseqA\tc2\n"))
	assert.ErrorIs(t, err, report.ErrDuplicateLabel)

	p, err := report.ReadTSV(strings.NewReader("# header\n\nseqA\tc1\n"))
	require.NoError(t, err)
	assert.Len(t, p, 1)
}

func TestEquivalent(t *testing.T) {
	a := report.Partition{"x": "c1", "y": "c1", "z": "c2"}

	assert.True(t, report.Equivalent(a, report.Partition{"x": "k", "y": "k", "z": "m"}), "renamed")
	assert.False(t, report.Equivalent(a, report.Partition{"x": "k", "y": "m", "z": "m"}), "regrouped")
	assert.False(t, report.Equivalent(a, report.Partition{"x": "k", "y": "k", "z": "k"}), "collapsed")
	assert.False(t, report.Equivalent(a, report.Partition{"x": "k", "y": "k"}), "missing label")
}
