package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"playerbench/internal/benchmark"
	"playerbench/internal/config"
	"playerbench/internal/dataset"
	"playerbench/internal/metrics"
	"playerbench/internal/model"
	"playerbench/internal/report"
	"playerbench/internal/sorting"
	"playerbench/internal/telemetry"
)

var benchAscending bool

// benchClock is swapped in tests for a deterministic clock.
var benchClock = time.Now

var benchCmd = &cobra.Command{
	Use:   "bench [csv files]",
	Short: "Time every algorithm on every data set size",
	Long: `Loads players from the given CSV files, or generates synthetic players when
none are given, slices them to each requested size and times every algorithm
over several trials. Each trial sorts a fresh copy of the data set.`,
	RunE: runBench,
}

func init() {
	rootCmd.AddCommand(benchCmd)

	benchCmd.Flags().StringSlice("sizes", nil, "Data set sizes, e.g. 100,500,1000")
	benchCmd.Flags().IntP("trials", "n", 3, "Trials per algorithm and data set")
	benchCmd.Flags().StringP("stat", "s", "", "Stat to sort by (ppg, apg, bpg, spg)")
	benchCmd.Flags().Bool("descending", true, "Rank the highest values first")
	benchCmd.Flags().BoolVar(&benchAscending, "ascending", false, "Shorthand for --descending=false")
	benchCmd.Flags().StringSliceP("algorithms", "a", nil, "Algorithms to time (reference, insertion, heap)")
	benchCmd.Flags().String("baseline", "", "Algorithm the others are compared with")
	benchCmd.Flags().Uint64("seed", 0, "Seed for synthetic data (0 picks one from the clock)")
	benchCmd.Flags().StringP("format", "f", "", "Output format: table, chart, markdown, json, yaml")
	benchCmd.Flags().Int("width", 0, "Chart bar width and markdown wrap width (0 picks a default)")
	benchCmd.Flags().String("metrics-file", "", "Write Prometheus metrics of the run to this file")

	for key, flag := range map[string]string{
		"sizes":        "sizes",
		"trials":       "trials",
		"stat":         "stat",
		"descending":   "descending",
		"algorithms":   "algorithms",
		"baseline":     "baseline",
		"seed":         "seed",
		"format":       "format",
		"width":        "width",
		"metrics_file": "metrics-file",
	} {
		viper.BindPFlag(key, benchCmd.Flags().Lookup(flag))
	}
}

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadBench()
	if err != nil {
		return err
	}
	if benchAscending {
		cfg.Descending = false
	}

	datasets, err := benchDatasets(args, cfg)
	if err != nil {
		return err
	}
	if len(datasets) == 0 {
		return fmt.Errorf("no players to benchmark")
	}

	algorithms, err := sorting.LookupAll[model.Player, float64](cfg.Algorithms)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	h := benchmark.NewHarness[model.Player, float64](cfg.Stat.Key(cfg.Descending))
	h.Clock = benchClock
	h.Logger = slog.Default()
	h.Metrics = metrics.NewMetrics(reg)

	run, err := h.Collect(datasets, algorithms, cfg.Trials)
	if err != nil {
		return fmt.Errorf("benchmark failed: %w", err)
	}
	run.Stat = string(cfg.Stat)
	run.Descending = cfg.Descending

	presenter, err := report.New(cfg.Format, report.Options{
		Baseline: cfg.Baseline,
		Color:    !viper.GetBool("no_color"),
		Width:    cfg.Width,
	})
	if err != nil {
		return err
	}
	if err := presenter.Present(cmd.OutOrStdout(), run); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if cfg.MetricsFile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsFile, reg); err != nil {
			return err
		}
		telemetry.LogInfof("metrics written to %s", cfg.MetricsFile)
	}
	return nil
}

// benchDatasets loads the CSV files, or generates one synthetic source per
// size, and slices the sources into benchmark data sets.
func benchDatasets(paths []string, cfg config.Bench) ([]benchmark.DataSet[model.Player], error) {
	var built []dataset.Dataset
	if len(paths) > 0 {
		var sources []dataset.Source
		for _, path := range paths {
			players, err := dataset.LoadCSV(path)
			if err != nil {
				return nil, err
			}
			telemetry.LogInfo("loaded players", "path", path, "players", len(players))
			sources = append(sources, dataset.SourceFromFile(path, players))
		}
		built = dataset.Build(sources, cfg.Sizes)
	} else {
		seed := cfg.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		rng := dataset.NewRand(seed)
		telemetry.LogDebug("generating synthetic players", "seed", seed, "sizes", cfg.Sizes)
		for _, size := range cfg.Sizes {
			players, err := dataset.Synthetic(size, rng)
			if err != nil {
				return nil, err
			}
			built = append(built, dataset.Dataset{Name: dataset.SyntheticName(size), Players: players})
		}
	}

	out := make([]benchmark.DataSet[model.Player], 0, len(built))
	for _, d := range built {
		telemetry.LogDebug("prepared dataset", "dataset", d.Name, "size", d.Size())
		out = append(out, benchmark.DataSet[model.Player]{Name: d.Name, Items: d.Players})
	}
	return out, nil
}
