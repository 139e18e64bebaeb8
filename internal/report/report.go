// Package report renders benchmark runs for people and for other tools.
package report

import (
	"fmt"
	"io"
	"strings"

	"playerbench/internal/benchmark"
)

// Formats lists the accepted output formats.
var Formats = []string{"table", "chart", "markdown", "json", "yaml"}

// Presenter writes a run to w.
type Presenter interface {
	Present(w io.Writer, run benchmark.Run) error
}

// Options tune the human readable presenters.
type Options struct {
	// Baseline adds a slowdown column relative to this algorithm when set.
	Baseline string
	// Color enables terminal styling in the markdown renderer.
	Color bool
	// Width is the wrap width of the markdown renderer and the bar area of
	// the chart. Zero picks a default.
	Width int
}

// New returns the presenter for format.
func New(format string, opts Options) (Presenter, error) {
	switch strings.ToLower(format) {
	case "table", "":
		return Table{Options: opts}, nil
	case "chart":
		return Chart{Options: opts}, nil
	case "markdown", "md":
		return Markdown{Options: opts}, nil
	case "json":
		return JSON{}, nil
	case "yaml", "yml":
		return YAML{}, nil
	}
	return nil, fmt.Errorf("unknown report format %q, choose from: %s", format, strings.Join(Formats, ", "))
}

// slowdowns indexes benchmark.Compare output by algorithm, dataset and size.
func slowdowns(run benchmark.Run, baseline string) map[string]float64 {
	if baseline == "" {
		return nil
	}
	comps, err := benchmark.Compare(run, baseline)
	if err != nil {
		return nil
	}
	out := make(map[string]float64, len(comps))
	for _, c := range comps {
		out[resultKey(c.Result)] = c.Slowdown
	}
	return out
}

func resultKey(r benchmark.TimingResult) string {
	return fmt.Sprintf("%s|%s|%d", r.Algorithm, r.Dataset, r.Size)
}

func truncate(s string, n int) string {
	if len([]rune(s)) <= n {
		return s
	}
	return string([]rune(s)[:n-1]) + "…"
}
