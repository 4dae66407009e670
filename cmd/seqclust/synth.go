package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/seqclust/builder"
	"github.com/katalvlaran/seqclust/report"
)

func newSynthCmd() *cobra.Command {
	synthCmd := &cobra.Command{
		Use:   "synth",
		Short: "Generate a synthetic vertex list and hit table with planted families",
		RunE:  runSynth,
	}
	synthCmd.Flags().Int("families", 10, "Number of planted families")
	synthCmd.Flags().Int("size", 5, "Members per family")
	synthCmd.Flags().Int("singletons", 0, "Unrelated sequences")
	synthCmd.Flags().Float64("identity", 0.97, "Intra-family identity in (0,1]")
	synthCmd.Flags().Float64("jitter", 0.02, "Identity jitter (standard deviation)")
	synthCmd.Flags().Float64("noise", 0.01, "Cross-family hit probability")
	synthCmd.Flags().Float64("noise-identity", 0.4, "Identity of cross-family hits")
	synthCmd.Flags().Int64("seed", 1, "Random seed")
	synthCmd.Flags().String("vertices", "vertices.txt", "Vertex list output")
	synthCmd.Flags().String("hits", "hits.tsv", "Hit table output")
	synthCmd.Flags().String("truth", "", "Planted partition TSV output")

	return synthCmd
}

func runSynth(cmd *cobra.Command, args []string) error {
	f := cmd.Flags()
	families, _ := f.GetInt("families")
	size, _ := f.GetInt("size")
	singletons, _ := f.GetInt("singletons")
	identity, _ := f.GetFloat64("identity")
	jitter, _ := f.GetFloat64("jitter")
	noise, _ := f.GetFloat64("noise")
	noiseID, _ := f.GetFloat64("noise-identity")
	seed, _ := f.GetInt64("seed")
	if jitter < 0 {
		return fmt.Errorf("jitter must be >= 0, got %g", jitter)
	}

	cons := []builder.Constructor{builder.Families(families, size, identity)}
	for i := 0; i < singletons; i++ {
		cons = append(cons, builder.Family(1, 1))
	}
	cons = append(cons, builder.Noise(noise, noiseID))

	ds, err := builder.Build([]builder.BuilderOption{builder.WithSeed(seed), builder.WithJitter(jitter)}, cons...)
	if err != nil {
		return err
	}

	vpath, _ := f.GetString("vertices")
	hpath, _ := f.GetString("hits")
	if err := writeFile(vpath, ds.WriteVertices); err != nil {
		return err
	}
	if err := writeFile(hpath, ds.WriteHits); err != nil {
		return err
	}
	if tpath, _ := f.GetString("truth"); tpath != "" {
		truth := ds.Truth()
		if err := writeFile(tpath, func(w io.Writer) error { return report.WriteTSV(w, truth) }); err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d vertices and %d hits\n", len(ds.Vertices), len(ds.Hits))

	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	fh, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(fh); err != nil {
		_ = fh.Close()
		return fmt.Errorf("%s: %w", path, err)
	}

	return fh.Close()
}
