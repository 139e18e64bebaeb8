package metrics

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	// Verify all metrics are initialized
	assert.NotNil(t, m.TrialDuration)
	assert.NotNil(t, m.TrialsTotal)
	assert.NotNil(t, m.SortFailures)
	assert.NotNil(t, m.MeanDuration)
	assert.NotNil(t, m.RecordsSorted)
}

func TestNewMetrics_DoubleRegisterPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewMetrics(reg)
	assert.Panics(t, func() { NewMetrics(reg) })
}

func TestObserveTrial(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.ObserveTrial("heap", 100, 2*time.Millisecond)
	m.ObserveTrial("heap", 100, 4*time.Millisecond)
	m.ObserveTrial("insertion", 10, time.Microsecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.TrialsTotal.WithLabelValues("heap")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.TrialsTotal.WithLabelValues("insertion")))
	assert.Equal(t, 210.0, testutil.ToFloat64(m.RecordsSorted))
	assert.Equal(t, 2, testutil.CollectAndCount(m.TrialDuration))
}

func TestObserveFailureAndMean(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.ObserveFailure("reference")
	m.SetMean("reference", "synthetic", 1000, 1500*time.Microsecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.SortFailures.WithLabelValues("reference")))
	assert.InDelta(t, 0.0015, testutil.ToFloat64(m.MeanDuration.WithLabelValues("reference", "synthetic", "1000")), 1e-12)
}

func TestWriteTextfile(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	m.ObserveTrial("heap", 5, time.Millisecond)

	path := filepath.Join(t.TempDir(), "bench.prom")
	require.NoError(t, WriteTextfile(path, reg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "playerbench_trials_total")
	assert.Contains(t, string(data), `algorithm="heap"`)
}
