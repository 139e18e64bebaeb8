package report

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"playerbench/internal/benchmark"
)

// Table prints one row per result, ordered by size then algorithm.
type Table struct {
	Options
}

func (t Table) Present(w io.Writer, run benchmark.Run) error {
	results := sortedResults(run.Results)
	slow := slowdowns(run, t.Baseline)

	headers := []string{"DATASET", "SIZE", "ALGORITHM", "MEAN (ms)", "STDEV (ms)", "TRIALS"}
	if slow != nil {
		headers = append(headers, "VS "+t.Baseline)
	}

	rows := make([][]string, 0, len(results))
	for _, r := range results {
		row := []string{
			truncate(r.Dataset, 25),
			strconv.Itoa(r.Size),
			r.Algorithm,
			fmt.Sprintf("%.3f", r.MeanMillis()),
			fmt.Sprintf("%.3f", r.StdDevMillis()),
			strconv.Itoa(r.Trials),
		}
		if slow != nil {
			row = append(row, slowdownCell(r, t.Baseline, slow))
		}
		rows = append(rows, row)
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == 1 || col >= 3 {
				return cellStyle.Align(lipgloss.Right)
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...)

	if _, err := fmt.Fprintln(w, titleStyle.Render("Timing results")); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, tbl.Render())
	return err
}

func slowdownCell(r benchmark.TimingResult, baseline string, slow map[string]float64) string {
	if r.Algorithm == baseline {
		return "baseline"
	}
	if s, ok := slow[resultKey(r)]; ok && s > 0 {
		return fmt.Sprintf("%.2fx", s)
	}
	return "-"
}

func sortedResults(results []benchmark.TimingResult) []benchmark.TimingResult {
	out := slices.Clone(results)
	slices.SortStableFunc(out, func(a, b benchmark.TimingResult) int {
		return cmp.Or(cmp.Compare(a.Size, b.Size), cmp.Compare(a.Algorithm, b.Algorithm))
	})
	return out
}
