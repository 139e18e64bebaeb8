package benchmark

import "fmt"

// Comparison relates one result to the baseline algorithm on the same data set.
type Comparison struct {
	Algorithm string
	Dataset   string
	Size      int
	Slowdown  float64 // Result.Mean / Baseline.Mean, 0 when the baseline mean is 0
	DiffPct   float64 // percentage change of the mean versus the baseline
	Baseline  TimingResult
	Result    TimingResult
}

type datasetKey struct {
	name string
	size int
}

// Compare pairs every non-baseline result with the baseline result measured on
// the same data set. Results without a baseline counterpart are left out.
func Compare(run Run, baseline string) ([]Comparison, error) {
	base := make(map[datasetKey]TimingResult)
	for _, r := range run.Results {
		if r.Algorithm == baseline {
			base[datasetKey{r.Dataset, r.Size}] = r
		}
	}
	if len(base) == 0 {
		return nil, fmt.Errorf("baseline %q has no results in run %s", baseline, run.ID)
	}

	var comparisons []Comparison
	for _, r := range run.Results {
		if r.Algorithm == baseline {
			continue
		}
		b, ok := base[datasetKey{r.Dataset, r.Size}]
		if !ok {
			continue
		}

		comp := Comparison{
			Algorithm: r.Algorithm,
			Dataset:   r.Dataset,
			Size:      r.Size,
			Baseline:  b,
			Result:    r,
		}
		if b.Mean > 0 {
			comp.Slowdown = float64(r.Mean) / float64(b.Mean)
			comp.DiffPct = (float64(r.Mean) - float64(b.Mean)) / float64(b.Mean) * 100
		}
		comparisons = append(comparisons, comp)
	}
	return comparisons, nil
}

func (c Comparison) String() string {
	return fmt.Sprintf("%s on %s (%d): %.2fx %s (%+.2f%%)", c.Algorithm, c.Dataset, c.Size, c.Slowdown, c.Baseline.Algorithm, c.DiffPct)
}
