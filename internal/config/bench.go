package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"playerbench/internal/dataset"
	apperrors "playerbench/internal/errors"
	"playerbench/internal/model"
	"playerbench/internal/report"
	"playerbench/internal/sorting"
)

// Bench is a typed snapshot of the benchmark settings.
type Bench struct {
	Stat        model.Stat
	Descending  bool
	Trials      int
	Sizes       []int
	Algorithms  []string
	Baseline    string
	Seed        uint64
	Format      string
	Width       int
	MetricsFile string
}

// LoadBench validates the current configuration and returns it as a Bench.
func LoadBench() (Bench, error) {
	if err := ValidateConfig(); err != nil {
		return Bench{}, err
	}

	stat, _ := model.ParseStat(viper.GetString("stat"))
	sizes, _ := dataset.ParseSizes(viper.GetStringSlice("sizes"))

	var resolved []string
	for _, name := range algorithmNames() {
		s, _ := sorting.Lookup[model.Player, float64](name)
		resolved = append(resolved, s.Name())
	}
	baseline, _ := resolveBaseline(resolved)

	return Bench{
		Stat:        stat,
		Descending:  viper.GetBool("descending"),
		Trials:      viper.GetInt("trials"),
		Sizes:       sizes,
		Algorithms:  algorithmNames(),
		Baseline:    baseline,
		Seed:        viper.GetUint64("seed"),
		Format:      strings.ToLower(viper.GetString("format")),
		Width:       viper.GetInt("width"),
		MetricsFile: viper.GetString("metrics_file"),
	}, nil
}

// ValidateConfig checks every benchmark key and reports all problems at once.
// The returned error matches errors.ErrInvalidConfiguration.
func ValidateConfig() error {
	var errs []error

	if _, err := model.ParseStat(viper.GetString("stat")); err != nil {
		errs = append(errs, apperrors.NewConfigError("stat", "%v", err))
	}

	if trials := viper.GetInt("trials"); trials < 1 {
		errs = append(errs, apperrors.NewConfigError("trials", "must be at least 1, got %d", trials))
	}

	if sizes, err := dataset.ParseSizes(viper.GetStringSlice("sizes")); err != nil {
		errs = append(errs, apperrors.NewConfigError("sizes", "%v", err))
	} else if len(sizes) == 0 {
		errs = append(errs, apperrors.NewConfigError("sizes", "must list at least one size"))
	}

	algorithms := algorithmNames()
	if len(algorithms) == 0 {
		errs = append(errs, apperrors.NewConfigError("algorithms", "must name at least one algorithm"))
	}
	var resolved []string
	for _, name := range algorithms {
		s, err := sorting.Lookup[model.Player, float64](name)
		if err != nil {
			errs = append(errs, apperrors.NewConfigError("algorithms", "%v", err))
			continue
		}
		resolved = append(resolved, s.Name())
	}

	if _, err := resolveBaseline(resolved); err != nil {
		errs = append(errs, err)
	}

	if format := strings.ToLower(viper.GetString("format")); !slices.Contains(report.Formats, format) {
		errs = append(errs, apperrors.NewConfigError("format", "must be one of %s, got %q", strings.Join(report.Formats, ", "), format))
	}

	if width := viper.GetInt("width"); width < 0 {
		errs = append(errs, apperrors.NewConfigError("width", "cannot be negative, got %d", width))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n%w", errors.Join(errs...))
	}
	return nil
}

// DefaultBaseline is compared against when no baseline is configured and it
// is among the benchmarked algorithms.
const DefaultBaseline = "reference"

// resolveBaseline returns the canonical baseline name for the resolved
// algorithms. A configured baseline must be benchmarked; without one the
// default applies only when it runs, otherwise there is no baseline.
func resolveBaseline(resolved []string) (string, error) {
	name := viper.GetString("baseline")
	if name == "" {
		if slices.Contains(resolved, DefaultBaseline) {
			return DefaultBaseline, nil
		}
		return "", nil
	}

	s, err := sorting.Lookup[model.Player, float64](name)
	if err != nil {
		return "", apperrors.NewConfigError("baseline", "%v", err)
	}
	if len(resolved) > 0 && !slices.Contains(resolved, s.Name()) {
		return "", apperrors.NewConfigError("baseline", "%q is not among the benchmarked algorithms", s.Name())
	}
	return s.Name(), nil
}

// algorithmNames splits comma separated entries so that both YAML lists and
// PLAYERBENCH_ALGORITHMS=heap,insertion work.
func algorithmNames() []string {
	var names []string
	for _, entry := range viper.GetStringSlice("algorithms") {
		for _, part := range strings.Split(entry, ",") {
			if part = strings.TrimSpace(part); part != "" {
				names = append(names, part)
			}
		}
	}
	return names
}
