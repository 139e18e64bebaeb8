package benchmark

import (
	"math"
	"time"
)

type summary struct {
	mean, stdDev, min, max time.Duration
}

// summarize computes the mean, sample standard deviation (zero for a single
// sample), min and max of samples.
func summarize(samples []time.Duration) summary {
	if len(samples) == 0 {
		return summary{}
	}

	s := summary{min: samples[0], max: samples[0]}
	var total float64
	for _, d := range samples {
		total += float64(d)
		s.min = min(s.min, d)
		s.max = max(s.max, d)
	}
	mean := total / float64(len(samples))
	s.mean = time.Duration(math.Round(mean))

	if len(samples) > 1 {
		var sq float64
		for _, d := range samples {
			delta := float64(d) - mean
			sq += delta * delta
		}
		s.stdDev = time.Duration(math.Round(math.Sqrt(sq / float64(len(samples)-1))))
	}
	return s
}
