package main

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/seqclust/bfs"
	"github.com/katalvlaran/seqclust/core"
	"github.com/katalvlaran/seqclust/ingest"
)

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	minScore, _ := cmd.Flags().GetFloat64("min-score")

	g := core.NewGraph(core.WithThresholds(cfg.Thresholds...))
	ls, err := ingest.LoadFiles(g, cfg.Vertices, cfg.Hits)
	if err != nil {
		return err
	}
	comps, err := bfs.Components(g, minScore, bfs.WithContext(cmd.Context()))
	if err != nil {
		return err
	}

	sizes := make([]int, len(comps))
	singletons := 0
	for i, c := range comps {
		sizes[i] = len(c)
		if len(c) == 1 {
			singletons++
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))
	largest := 0
	if len(sizes) > 0 {
		largest = sizes[0]
	}

	gs := g.Stats()
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "vertices\t%d\n", gs.VertexCount)
	fmt.Fprintf(w, "edges\t%d\n", gs.EdgeCount)
	fmt.Fprintf(w, "below cutoff\t%d\n", ls.BelowCutoff)
	fmt.Fprintf(w, "self hits\t%d\n", ls.SelfHits)
	fmt.Fprintf(w, "repeated pairs\t%d\n", ls.Duplicates)
	fmt.Fprintf(w, "candidate pool\t%d\n", gs.PoolSize)
	fmt.Fprintf(w, "thresholds\t[%g, %g]\n", gs.MinThreshold, gs.MaxThreshold)
	fmt.Fprintf(w, "components\t%d\n", len(comps))
	fmt.Fprintf(w, "largest component\t%d\n", largest)
	fmt.Fprintf(w, "isolated vertices\t%d\n", singletons)

	return w.Flush()
}
