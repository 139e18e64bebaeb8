package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"

	"playerbench/internal/benchmark"
	"playerbench/internal/model"
)

const defaultWrap = 100

// Markdown renders a markdown summary of the run through glamour.
type Markdown struct {
	Options
}

func (m Markdown) Present(w io.Writer, run benchmark.Run) error {
	width := m.Width
	if width <= 0 {
		width = defaultWrap
	}

	style := glamour.WithStandardStyle("notty")
	if m.Color {
		style = glamour.WithAutoStyle()
	}
	renderer, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	out, err := renderer.Render(BuildMarkdown(run, m.Baseline))
	if err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}
	_, err = io.WriteString(w, out)
	return err
}

// BuildMarkdown returns the unrendered markdown document.
func BuildMarkdown(run benchmark.Run, baseline string) string {
	var b strings.Builder

	b.WriteString("# Sorting algorithm timing\n\n")
	order := "ascending"
	if run.Descending {
		order = "descending"
	}
	stat := run.Stat
	if stat != "" {
		stat = model.Stat(stat).Label()
	}
	fmt.Fprintf(&b, "Run `%s`: sorting by %s (%s), mean of %d trials.\n\n", run.ID, valueOr(stat, "key"), order, run.Trials)

	b.WriteString("| Dataset | Size | Algorithm | Mean (ms) | Stdev (ms) |\n")
	b.WriteString("|---|---:|---|---:|---:|\n")
	for _, r := range sortedResults(run.Results) {
		fmt.Fprintf(&b, "| %s | %d | %s | %.3f | %.3f |\n", r.Dataset, r.Size, r.Algorithm, r.MeanMillis(), r.StdDevMillis())
	}

	if baseline != "" {
		if comps, err := benchmark.Compare(run, baseline); err == nil && len(comps) > 0 {
			fmt.Fprintf(&b, "\n## Compared with %s\n\n", baseline)
			for _, c := range comps {
				fmt.Fprintf(&b, "- **%s** on %s (%d records): %.2fx the %s time\n", c.Algorithm, c.Dataset, c.Size, c.Slowdown, baseline)
			}
		}
	}
	return b.String()
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
