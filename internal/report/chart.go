package report

import (
	"fmt"
	"io"
	"math"
	"slices"
	"strings"

	"playerbench/internal/benchmark"
)

// Point is one plotted value: mean milliseconds at a data set size.
type Point struct {
	Size       int
	MeanMillis float64
}

// Series is the curve of one algorithm across sizes.
type Series struct {
	Algorithm string
	Points    []Point
}

// SeriesOf groups results into one series per algorithm, algorithms sorted by
// name and points by size. Results of several data sets with the same size
// are averaged into a single point.
func SeriesOf(results []benchmark.TimingResult) []Series {
	type acc struct {
		total float64
		n     int
	}
	byAlg := make(map[string]map[int]*acc)
	for _, r := range results {
		sizes, ok := byAlg[r.Algorithm]
		if !ok {
			sizes = make(map[int]*acc)
			byAlg[r.Algorithm] = sizes
		}
		a, ok := sizes[r.Size]
		if !ok {
			a = &acc{}
			sizes[r.Size] = a
		}
		a.total += r.MeanMillis()
		a.n++
	}

	algs := make([]string, 0, len(byAlg))
	for alg := range byAlg {
		algs = append(algs, alg)
	}
	slices.Sort(algs)

	series := make([]Series, 0, len(algs))
	for _, alg := range algs {
		s := Series{Algorithm: alg}
		for size, a := range byAlg[alg] {
			s.Points = append(s.Points, Point{Size: size, MeanMillis: a.total / float64(a.n)})
		}
		slices.SortFunc(s.Points, func(a, b Point) int { return a.Size - b.Size })
		series = append(series, s)
	}
	return series
}

// Chart draws a horizontal bar per (algorithm, size), bars scaled to the
// slowest point of the run.
type Chart struct {
	Options
}

const defaultBarWidth = 40

func (c Chart) Present(w io.Writer, run benchmark.Run) error {
	series := SeriesOf(run.Results)
	width := c.Width
	if width <= 0 {
		width = defaultBarWidth
	}

	var peak float64
	sizeLabel := len("size")
	for _, s := range series {
		for _, p := range s.Points {
			peak = max(peak, p.MeanMillis)
			sizeLabel = max(sizeLabel, len(fmt.Sprint(p.Size)))
		}
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Sorting algorithm timing (ms)"))
	b.WriteString("\n")
	for i, s := range series {
		style := seriesStyle(i)
		b.WriteString(style.Bold(true).Render(s.Algorithm))
		b.WriteString("\n")
		for _, p := range s.Points {
			bar := 0
			if peak > 0 {
				bar = int(math.Round(p.MeanMillis / peak * float64(width)))
			}
			if bar == 0 && p.MeanMillis > 0 {
				bar = 1
			}
			fmt.Fprintf(&b, "  %s %s %s\n",
				axisStyle.Render(fmt.Sprintf("%*d │", sizeLabel, p.Size)),
				style.Render(strings.Repeat("█", bar)),
				fmt.Sprintf("%.3f", p.MeanMillis),
			)
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
