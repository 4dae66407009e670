package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/seqclust/clustering"
	"github.com/katalvlaran/seqclust/core"
	"github.com/katalvlaran/seqclust/ingest"
	"github.com/katalvlaran/seqclust/internal/config"
	"github.com/katalvlaran/seqclust/internal/logging"
	"github.com/katalvlaran/seqclust/metrics"
	"github.com/katalvlaran/seqclust/report"
	"github.com/katalvlaran/seqclust/store"
)

// loadConfig reads --config over the defaults, then applies every flag the
// user set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}

	f := cmd.Flags()
	str := func(name string, dst *string) {
		if f.Changed(name) {
			*dst, _ = f.GetString(name)
		}
	}
	num := func(name string, dst *float64) {
		if f.Changed(name) {
			*dst, _ = f.GetFloat64(name)
		}
	}
	str("vertices", &cfg.Vertices)
	str("hits", &cfg.Hits)
	str("log-mode", &cfg.Log.Mode)
	str("log-level", &cfg.Log.Level)
	if f.Lookup("out") != nil {
		str("out", &cfg.Output)
		str("store", &cfg.Store)
		str("metrics-file", &cfg.MetricsFile)
		num("initial", &cfg.InitialEdgeThreshold)
		num("final", &cfg.FinalEdgeThreshold)
		num("cluster-threshold", &cfg.ClusterThreshold)
		if f.Changed("workers") {
			cfg.Workers, _ = f.GetInt("workers")
		}
		if f.Changed("check-invariants") {
			cfg.CheckInvariants, _ = f.GetBool("check-invariants")
		}
	}
	if f.Changed("threshold") {
		cfg.Thresholds, _ = f.GetFloat64Slice("threshold")
	}

	if cfg.Vertices == "" || cfg.Hits == "" {
		return nil, fmt.Errorf("%w: --vertices and --hits are required", config.ErrInvalidConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, err := logging.New(cfg.Log.Mode, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	col := metrics.NewCollector(metrics.DefaultNamespace)
	g := core.NewGraph(core.WithThresholds(cfg.Thresholds...))

	st, err := ingest.LoadFiles(g, cfg.Vertices, cfg.Hits)
	if err != nil {
		return err
	}
	col.ObserveLoad(st.Accepted, st.BelowCutoff, st.SelfHits, st.Duplicates)
	log.Info("graph loaded",
		zap.Int("vertices", st.Vertices),
		zap.Int("edges", st.Accepted),
		zap.Int("below_cutoff", st.BelowCutoff),
		zap.Int("self_hits", st.SelfHits),
		zap.Int("duplicates", st.Duplicates),
		zap.Int("pool", g.PoolSize()))

	ctrl, err := clustering.New(g, clustering.Config{
		InitialThreshold: cfg.InitialEdgeThreshold,
		FinalThreshold:   cfg.FinalEdgeThreshold,
		ClusterThreshold: cfg.ClusterThreshold,
	},
		clustering.WithLogger(log),
		clustering.WithMetrics(col),
		clustering.WithWorkers(cfg.Workers),
		clustering.WithInvariantChecks(cfg.CheckInvariants),
	)
	if err != nil {
		return err
	}
	if err := ctrl.Run(ctx); err != nil {
		return err
	}

	// Candidates still pooled never cleared the final threshold.
	pruned := g.PruneLowQuality(cfg.FinalEdgeThreshold)
	col.ObservePruned(pruned)
	log.Debug("pruned low-quality candidates", zap.Int("removed", pruned))

	p := ctrl.Partition()
	if err := writePartition(cmd.OutOrStdout(), cfg.Output, p); err != nil {
		return err
	}

	sizes := make([]int, 0, ctrl.ClusterCount())
	for _, cl := range ctrl.Clusters() {
		sizes = append(sizes, cl.Size())
	}
	col.ObserveClusterSizes(sizes)
	if cfg.MetricsFile != "" {
		if err := col.WriteTextfile(cfg.MetricsFile); err != nil {
			return fmt.Errorf("metrics: %w", err)
		}
	}

	if cfg.Store != "" {
		s := ctrl.Stats()
		id, err := persist(cfg.Store, store.Meta{
			InitialThreshold: cfg.InitialEdgeThreshold,
			FinalThreshold:   cfg.FinalEdgeThreshold,
			ClusterThreshold: cfg.ClusterThreshold,
			Vertices:         g.VertexCount(),
			Edges:            g.EdgeCount(),
			Clusters:         s.LiveClusters,
			Singletons:       s.Singletons,
		}, p)
		if err != nil {
			return err
		}
		log.Info("partition stored", zap.String("run_id", id), zap.String("store", cfg.Store))
	}

	return nil
}

func writePartition(stdout io.Writer, path string, p report.Partition) error {
	if path == "" {
		return report.WriteTSV(stdout, p)
	}
	if err := writeFile(path, func(w io.Writer) error { return report.WriteTSV(w, p) }); err != nil {
		return fmt.Errorf("output: %w", err)
	}

	return nil
}

func persist(dir string, meta store.Meta, p report.Partition) (string, error) {
	s, err := store.Open(store.Options{Dir: dir})
	if err != nil {
		return "", err
	}
	defer func() { _ = s.Close() }()

	id, err := s.Save(meta, p)
	if err != nil {
		return "", err
	}

	return id.String(), nil
}
