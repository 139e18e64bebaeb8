package benchmark

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	run := Run{
		ID: "run-1",
		Results: []TimingResult{
			{Algorithm: "reference", Dataset: "a", Size: 10, Mean: 100 * time.Microsecond},
			{Algorithm: "insertion", Dataset: "a", Size: 10, Mean: 300 * time.Microsecond},
			{Algorithm: "heap", Dataset: "a", Size: 10, Mean: 50 * time.Microsecond},
			{Algorithm: "reference", Dataset: "b", Size: 5, Mean: 0},
			{Algorithm: "heap", Dataset: "b", Size: 5, Mean: time.Microsecond},
			{Algorithm: "heap", Dataset: "c", Size: 5, Mean: time.Microsecond},
		},
	}

	comps, err := Compare(run, "reference")
	require.NoError(t, err)
	require.Len(t, comps, 3)

	assert.Equal(t, "insertion", comps[0].Algorithm)
	assert.InDelta(t, 3.0, comps[0].Slowdown, 1e-9)
	assert.InDelta(t, 200.0, comps[0].DiffPct, 1e-9)
	assert.Equal(t, "insertion on a (10): 3.00x reference (+200.00%)", comps[0].String())

	assert.InDelta(t, 0.5, comps[1].Slowdown, 1e-9)
	assert.InDelta(t, -50.0, comps[1].DiffPct, 1e-9)

	assert.Zero(t, comps[2].Slowdown, "zero baseline mean must not divide")

	_, err = Compare(run, "quick")
	assert.Error(t, err)
}
