package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "playerbench"

// Metrics collects per-trial sort measurements. It is registered on a caller
// supplied registry and never served over the network.
type Metrics struct {
	TrialDuration *prometheus.HistogramVec
	TrialsTotal   *prometheus.CounterVec
	SortFailures  *prometheus.CounterVec
	MeanDuration  *prometheus.GaugeVec
	RecordsSorted prometheus.Counter
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{}

	m.TrialDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "trial_duration_seconds",
			Help:      "Wall clock time of a single sort trial",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		},
		[]string{"algorithm", "size"},
	)

	m.TrialsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "trials_total",
			Help:      "Total number of completed sort trials",
		},
		[]string{"algorithm"},
	)

	m.SortFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sort_failures_total",
			Help:      "Total number of sort trials that returned an error",
		},
		[]string{"algorithm"},
	)

	m.MeanDuration = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "mean_duration_seconds",
			Help:      "Mean trial time of the last measurement per algorithm and dataset",
		},
		[]string{"algorithm", "dataset", "size"},
	)

	m.RecordsSorted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_sorted_total",
			Help:      "Total number of records passed through a sort",
		},
	)

	reg.MustRegister(
		m.TrialDuration,
		m.TrialsTotal,
		m.SortFailures,
		m.MeanDuration,
		m.RecordsSorted,
	)

	return m
}

// ObserveTrial records one successful trial.
func (m *Metrics) ObserveTrial(algorithm string, size int, elapsed time.Duration) {
	m.TrialDuration.WithLabelValues(algorithm, strconv.Itoa(size)).Observe(elapsed.Seconds())
	m.TrialsTotal.WithLabelValues(algorithm).Inc()
	m.RecordsSorted.Add(float64(size))
}

// ObserveFailure records a trial that did not complete.
func (m *Metrics) ObserveFailure(algorithm string) {
	m.SortFailures.WithLabelValues(algorithm).Inc()
}

// SetMean publishes the mean of a finished measurement.
func (m *Metrics) SetMean(algorithm, dataset string, size int, mean time.Duration) {
	m.MeanDuration.WithLabelValues(algorithm, dataset, strconv.Itoa(size)).Set(mean.Seconds())
}

// WriteTextfile dumps everything gathered by g in the text exposition format.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	return prometheus.WriteToTextfile(path, g)
}
