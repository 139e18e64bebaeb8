package main

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AlecAivazis/survey/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"playerbench/internal/benchmark"
	"playerbench/internal/dataset"
	apperrors "playerbench/internal/errors"
)

const leadersCSV = `Player,Tm,PTS,AST,BLK,STL
Alice,LAL,25.0,5.0,1.0,0.5
Bob,BOS,18.5,9.1,0.2,2.0
Charlie,GSW,30.2,3.0,0.4,1.1
Dana,MIA,12.0,7.5,2.5,0.9
Eve,DEN,21.3,4.4,0.0,1.6
`

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "players.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func decodeRun(t *testing.T, out string) benchmark.Run {
	t.Helper()
	var run benchmark.Run
	require.NoError(t, json.Unmarshal([]byte(out), &run), out)
	return run
}

func TestBenchSynthetic(t *testing.T) {
	out, err := executeCommand(rootCmd, "bench", "--sizes", "20,40", "--trials", "2", "--seed", "7", "--format", "json")
	require.NoError(t, err)

	run := decodeRun(t, out)
	assert.NotEmpty(t, run.ID)
	assert.Equal(t, "ppg", run.Stat)
	assert.True(t, run.Descending)
	assert.Equal(t, 2, run.Trials)
	require.Len(t, run.Results, 6)
	assert.Equal(t, []string{"reference", "insertion", "heap"}, run.Algorithms())

	assert.Equal(t, dataset.SyntheticName(20), run.Results[0].Dataset)
	assert.Equal(t, 20, run.Results[0].Size)
	assert.Equal(t, dataset.SyntheticName(40), run.Results[5].Dataset)
	assert.Equal(t, 40, run.Results[5].Size)
	for _, r := range run.Results {
		assert.Equal(t, 2, r.Trials)
	}
}

func TestBenchCSVFiles(t *testing.T) {
	path := writeCSV(t, leadersCSV)

	out, err := executeCommand(rootCmd, "bench", path,
		"--sizes", "3,10,20", "--algorithms", "heap,ins", "--baseline", "heap",
		"--stat", "apg", "--ascending", "--format", "json")
	require.NoError(t, err)

	run := decodeRun(t, out)
	assert.Equal(t, "apg", run.Stat)
	assert.False(t, run.Descending)
	require.Len(t, run.Results, 4)
	assert.Equal(t, []string{"heap", "insertion"}, run.Algorithms())
	assert.Equal(t, "players.csv", run.Results[0].Dataset)
	assert.Equal(t, 3, run.Results[0].Size)
	// 10 and 20 both clip to the five rows of the file
	assert.Equal(t, 5, run.Results[2].Size)
}

func TestBenchTableAndMetricsFile(t *testing.T) {
	metricsPath := filepath.Join(t.TempDir(), "bench.prom")

	out, err := executeCommand(rootCmd, "bench", "--sizes", "10", "--trials", "1", "--seed", "1",
		"--metrics-file", metricsPath, "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "Timing results")
	assert.Contains(t, out, "VS reference")
	assert.Contains(t, out, "synthetic_player_data(10)")

	data, err := os.ReadFile(metricsPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `playerbench_trials_total{algorithm="heap"} 1`)
	assert.Contains(t, string(data), "playerbench_records_sorted_total 30")
}

func TestBenchInvalidConfiguration(t *testing.T) {
	_, err := executeCommand(rootCmd, "bench", "--trials", "0", "--stat", "rebounds", "--format", "html")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidConfiguration))
	assert.Contains(t, err.Error(), "trials")
	assert.Contains(t, err.Error(), "stat")
	assert.Contains(t, err.Error(), "format")
}

func TestBenchMissingFile(t *testing.T) {
	_, err := executeCommand(rootCmd, "bench", filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
}

func TestSortWithFlags(t *testing.T) {
	path := writeCSV(t, leadersCSV)

	out, err := executeCommand(rootCmd, "sort", path, "--stat", "ppg", "--algorithm", "heap", "--top", "3")
	require.NoError(t, err)

	assert.Contains(t, out, "Sorted 5 players by points per game with heap sort")
	assert.Less(t, strings.Index(out, "Charlie"), strings.Index(out, "Alice"))
	assert.Less(t, strings.Index(out, "Alice"), strings.Index(out, "Eve"))
	assert.NotContains(t, out, "Bob")
	assert.NotContains(t, out, "Dana")
}

func TestSortAscending(t *testing.T) {
	path := writeCSV(t, leadersCSV)

	out, err := executeCommand(rootCmd, "sort", path, "-s", "bpg", "-a", "ins", "--ascending", "--top", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Eve")
	assert.NotContains(t, out, "Dana")
}

func TestSortPrompts(t *testing.T) {
	orig := askOne
	defer func() { askOne = orig }()

	var asked []string
	askOne = func(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error {
		sel := p.(*survey.Select)
		asked = append(asked, sel.Message)
		answer := response.(*string)
		if strings.Contains(sel.Message, "stat") {
			*answer = "apg"
		} else {
			*answer = "reference"
		}
		return nil
	}

	path := writeCSV(t, leadersCSV)
	out, err := executeCommand(rootCmd, "sort", path, "--top", "2")
	require.NoError(t, err)

	assert.Equal(t, []string{"Sort by which stat?", "Sort with which algorithm?"}, asked)
	assert.Contains(t, out, "by assists per game with reference sort")
	assert.Less(t, strings.Index(out, "Bob"), strings.Index(out, "Dana"))
	assert.NotContains(t, out, "Alice")
}

func TestSortPromptCancelled(t *testing.T) {
	orig := askOne
	defer func() { askOne = orig }()
	askOne = func(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error {
		return errors.New("interrupt")
	}

	path := writeCSV(t, leadersCSV)
	_, err := executeCommand(rootCmd, "sort", path, "--algorithm", "heap")
	assert.EqualError(t, err, "interrupt")
}

func TestSortUnknownAlgorithm(t *testing.T) {
	path := writeCSV(t, leadersCSV)
	_, err := executeCommand(rootCmd, "sort", path, "--stat", "ppg", "--algorithm", "bubble")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown algorithm "bubble"`)
}

func TestGenerate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gen.csv")

	out, err := executeCommand(rootCmd, "generate", "25", "--out", path, "--seed", "42")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote 25 players to "+path)

	players, err := dataset.LoadCSV(path)
	require.NoError(t, err)
	require.Len(t, players, 25)
	assert.Equal(t, "player_1", players[0].Name)

	// same seed, same file
	again := filepath.Join(t.TempDir(), "again.csv")
	_, err = executeCommand(rootCmd, "generate", "25", "--out", again, "--seed", "42")
	require.NoError(t, err)
	first, _ := os.ReadFile(path)
	second, _ := os.ReadFile(again)
	assert.Equal(t, string(first), string(second))
}

func TestGenerateInvalidCount(t *testing.T) {
	_, err := executeCommand(rootCmd, "generate", "many")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid player count "many"`)

	_, err = executeCommand(rootCmd, "generate", "0", "--out", filepath.Join(t.TempDir(), "x.csv"))
	require.Error(t, err)
}

func TestBenchSubsetWithoutReference(t *testing.T) {
	out, err := executeCommand(rootCmd, "bench", "--sizes", "10", "--trials", "1", "--seed", "1",
		"--algorithms", "heap,insertion", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "Timing results")
	assert.Contains(t, out, "heap")
	assert.NotContains(t, out, "VS ")

	out, err = executeCommand(rootCmd, "bench", "--sizes", "10", "--trials", "1", "--seed", "1",
		"--algorithms", "heap,insertion", "--format", "json")
	require.NoError(t, err)
	assert.Equal(t, []string{"heap", "insertion"}, decodeRun(t, out).Algorithms())
}

func TestBenchExplicitBaselineMustBeBenchmarked(t *testing.T) {
	_, err := executeCommand(rootCmd, "bench", "--sizes", "10", "--algorithms", "heap", "--baseline", "reference")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidConfiguration))
	assert.Contains(t, err.Error(), `"reference" is not among the benchmarked algorithms`)
}

func TestBenchChartWidth(t *testing.T) {
	out, err := executeCommand(rootCmd, "bench", "--sizes", "10", "--trials", "1", "--seed", "3",
		"--format", "chart", "--width", "12", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "Sorting algorithm timing (ms)")
	assert.Contains(t, out, strings.Repeat("█", 12))
	assert.NotContains(t, out, strings.Repeat("█", 13))
}

func TestLogFileClosedAfterRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.log")

	_, err := executeCommand(rootCmd, "bench", "--sizes", "10", "--trials", "1", "--seed", "1",
		"--format", "json", "--log-file", path)
	require.NoError(t, err)

	f, ok := logCloser.(*os.File)
	require.True(t, ok, "logging to a file keeps a file closer")
	closeLog()
	assert.Nil(t, logCloser)

	_, err = f.Write([]byte("late"))
	assert.ErrorIs(t, err, os.ErrClosed)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "starting benchmark run")
}
