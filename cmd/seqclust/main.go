// Package main provides the seqclust CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "seqclust",
		Short: "seqclust - graph-based sequence redundancy clustering",
		Long: `seqclust groups redundant sequences from an all-against-all similarity
search. Hits become scored directed edges; clusters are grown by annealed,
all-or-nothing transitive agglomeration.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "seqclust v%s (%s)\n", version, commit)
		},
	})

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Cluster a vertex list and hit table",
		RunE:  runRun,
	}
	addInputFlags(runCmd)
	runCmd.Flags().String("out", "", "Partition TSV output (default stdout)")
	runCmd.Flags().Float64("initial", 0, "Initial edge threshold (first band cutoff)")
	runCmd.Flags().Float64("final", 0, "Final edge threshold (sweep lower bound)")
	runCmd.Flags().Float64("cluster-threshold", 0, "Cluster similarity threshold")
	runCmd.Flags().Float64Slice("threshold", nil, "Graph thresholds (min rejects on load, max admits to the pool)")
	runCmd.Flags().Int("workers", 0, "Goroutines per cluster merge")
	runCmd.Flags().Bool("check-invariants", false, "Verify the assignment after every dispatch")
	runCmd.Flags().String("store", "", "Badger directory to persist the partition")
	runCmd.Flags().String("metrics-file", "", "Write Prometheus metrics in text format")
	rootCmd.AddCommand(runCmd)

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize the similarity graph without clustering",
		RunE:  runStats,
	}
	addInputFlags(statsCmd)
	statsCmd.Flags().Float64Slice("threshold", nil, "Graph thresholds")
	statsCmd.Flags().Float64("min-score", 0, "Ignore edges below this score for components")
	rootCmd.AddCommand(statsCmd)

	showCmd := &cobra.Command{
		Use:   "show [run-id]",
		Short: "Print a stored partition as TSV",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}
	showCmd.Flags().String("store", "./seqclust-store", "Badger directory")
	rootCmd.AddCommand(showCmd)

	listCmd := &cobra.Command{
		Use:   "runs",
		Short: "List stored runs",
		RunE:  runList,
	}
	listCmd.Flags().String("store", "./seqclust-store", "Badger directory")
	rootCmd.AddCommand(listCmd)

	rootCmd.AddCommand(newSynthCmd())

	return rootCmd
}

func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().String("config", "", "YAML configuration file")
	cmd.Flags().String("vertices", "", "Vertex list (one identifier per line)")
	cmd.Flags().String("hits", "", "Hit table: query subject pident qcovs [evalue]")
	cmd.Flags().String("log-mode", "", "Logger preset: dev or prod")
	cmd.Flags().String("log-level", "", "Log level: debug, info, warn, error")
}
