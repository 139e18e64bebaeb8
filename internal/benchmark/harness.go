// Package benchmark times sort algorithms over repeated, isolated trials.
package benchmark

import (
	"cmp"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	apperrors "playerbench/internal/errors"
	"playerbench/internal/metrics"
	"playerbench/internal/sorting"
)

// Harness measures Sorters against data sets. It holds no per-run state and
// runs every trial synchronously on the calling goroutine.
type Harness[T any, K cmp.Ordered] struct {
	// Key orders the elements; the same key is used for every algorithm.
	Key sorting.KeyFunc[T, K]
	// Clock defaults to time.Now.
	Clock   func() time.Time
	Logger  *slog.Logger
	Metrics *metrics.Metrics // optional
}

// NewHarness returns a Harness using the wall clock and the default logger.
func NewHarness[T any, K cmp.Ordered](key sorting.KeyFunc[T, K]) *Harness[T, K] {
	return &Harness[T, K]{
		Key:    key,
		Clock:  time.Now,
		Logger: slog.Default(),
	}
}

func (h *Harness[T, K]) now() time.Time {
	if h.Clock == nil {
		return time.Now()
	}
	return h.Clock()
}

func (h *Harness[T, K]) logger() *slog.Logger {
	if h.Logger == nil {
		return slog.Default()
	}
	return h.Logger
}

// Measure sorts a fresh copy of ds trials times with algorithm and returns the
// timing summary. Configuration problems are reported before any trial runs;
// sort failures are returned as is. ds.Items is never modified.
func (h *Harness[T, K]) Measure(algorithm sorting.Sorter[T, K], ds DataSet[T], trials int) (TimingResult, error) {
	if err := h.validate(algorithm, ds, trials); err != nil {
		return TimingResult{}, err
	}

	samples := make([]time.Duration, 0, trials)
	for i := 0; i < trials; i++ {
		work := make([]T, len(ds.Items))
		copy(work, ds.Items)

		start := h.now()
		err := algorithm.Sort(work, h.Key)
		elapsed := h.now().Sub(start)
		if err != nil {
			if h.Metrics != nil {
				h.Metrics.ObserveFailure(algorithm.Name())
			}
			return TimingResult{}, fmt.Errorf("%s on %s (trial %d): %w", algorithm.Name(), ds.Name, i+1, err)
		}

		if h.Metrics != nil {
			h.Metrics.ObserveTrial(algorithm.Name(), len(work), elapsed)
		}
		samples = append(samples, elapsed)
	}

	s := summarize(samples)
	result := TimingResult{
		Algorithm: algorithm.Name(),
		Dataset:   ds.Name,
		Size:      len(ds.Items),
		Trials:    trials,
		Mean:      s.mean,
		StdDev:    s.stdDev,
		Min:       s.min,
		Max:       s.max,
	}
	if h.Metrics != nil {
		h.Metrics.SetMean(result.Algorithm, result.Dataset, result.Size, result.Mean)
	}

	h.logger().Debug("measured sort",
		"algorithm", result.Algorithm,
		"dataset", result.Dataset,
		"size", result.Size,
		"trials", trials,
		"mean", result.Mean,
		"stddev", result.StdDev,
	)
	return result, nil
}

// Collect measures every algorithm on every data set, data sets outermost.
func (h *Harness[T, K]) Collect(datasets []DataSet[T], algorithms []sorting.Sorter[T, K], trials int) (Run, error) {
	if len(algorithms) == 0 {
		return Run{}, apperrors.NewConfigError("algorithms", "must name at least one algorithm")
	}
	for _, alg := range algorithms {
		for _, ds := range datasets {
			if err := h.validate(alg, ds, trials); err != nil {
				return Run{}, err
			}
		}
	}

	run := Run{
		ID:        uuid.NewString(),
		Timestamp: h.now(),
		Trials:    trials,
		Results:   make([]TimingResult, 0, len(datasets)*len(algorithms)),
	}

	h.logger().Info("starting benchmark run",
		"run_id", run.ID,
		"datasets", len(datasets),
		"algorithms", len(algorithms),
		"trials", trials,
	)

	for _, ds := range datasets {
		for _, alg := range algorithms {
			res, err := h.Measure(alg, ds, trials)
			if err != nil {
				return Run{}, err
			}
			run.Results = append(run.Results, res)
		}
	}

	h.logger().Info("benchmark run complete", "run_id", run.ID, "results", len(run.Results))
	return run, nil
}

func (h *Harness[T, K]) validate(algorithm sorting.Sorter[T, K], ds DataSet[T], trials int) error {
	if trials < 1 {
		return apperrors.NewConfigError("trials", "must be at least 1, got %d", trials)
	}
	if algorithm == nil {
		return apperrors.NewConfigError("algorithm", "is nil")
	}
	if h.Key == nil {
		return apperrors.NewConfigError("key", "selector is nil")
	}
	if ds.Items == nil {
		return apperrors.NewConfigError("dataset", "%q has no items", ds.Name)
	}
	return nil
}
