package benchmark

import (
	"time"
)

// DataSet is the canonical, never mutated input of a measurement.
type DataSet[T any] struct {
	Name  string
	Items []T
}

// TimingResult summarizes the trials of one algorithm on one data set.
type TimingResult struct {
	Algorithm string        `json:"algorithm" yaml:"algorithm"`
	Dataset   string        `json:"dataset" yaml:"dataset"`
	Size      int           `json:"size" yaml:"size"`
	Trials    int           `json:"trials" yaml:"trials"`
	Mean      time.Duration `json:"mean_ns" yaml:"mean"`
	StdDev    time.Duration `json:"stddev_ns" yaml:"stddev"`
	Min       time.Duration `json:"min_ns" yaml:"min"`
	Max       time.Duration `json:"max_ns" yaml:"max"`
}

// MeanMillis is the mean in milliseconds, the unit reports use.
func (r TimingResult) MeanMillis() float64 {
	return float64(r.Mean) / float64(time.Millisecond)
}

// StdDevMillis is the standard deviation in milliseconds.
func (r TimingResult) StdDevMillis() float64 {
	return float64(r.StdDev) / float64(time.Millisecond)
}

// Run is the table of results of one harness invocation.
type Run struct {
	ID         string         `json:"id" yaml:"id"`
	Timestamp  time.Time      `json:"timestamp" yaml:"timestamp"`
	Stat       string         `json:"stat,omitempty" yaml:"stat,omitempty"`
	Descending bool           `json:"descending" yaml:"descending"`
	Trials     int            `json:"trials" yaml:"trials"`
	Results    []TimingResult `json:"results" yaml:"results"`
}

// Algorithms lists the algorithm names in first-seen order.
func (r Run) Algorithms() []string {
	var names []string
	seen := make(map[string]bool)
	for _, res := range r.Results {
		if !seen[res.Algorithm] {
			seen[res.Algorithm] = true
			names = append(names, res.Algorithm)
		}
	}
	return names
}
