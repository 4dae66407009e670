package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/seqclust/report"
	"github.com/katalvlaran/seqclust/store"
)

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dir, _ := cmd.Flags().GetString("store")
	return store.Open(store.Options{Dir: dir})
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("run id %q: %w", args[0], err)
	}
	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	_, p, err := s.Load(id)
	if err != nil {
		return err
	}

	return report.WriteTSV(cmd.OutOrStdout(), p)
}

func runList(cmd *cobra.Command, args []string) error {
	s, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	runs, err := s.Runs()
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RUN ID\tCREATED\tVERTICES\tCLUSTERS\tSINGLETONS\tTHRESHOLDS")
	for _, m := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%g/%g/%g\n",
			m.RunID, m.CreatedAt.Format(time.RFC3339), m.Vertices, m.Clusters, m.Singletons,
			m.InitialThreshold, m.FinalThreshold, m.ClusterThreshold)
	}

	return w.Flush()
}
