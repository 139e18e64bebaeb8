// Package dataset loads and generates the player collections that feed the
// benchmark harness.
package dataset

import (
	"fmt"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"playerbench/internal/model"
)

// Dataset is a named, ordered collection of players.
type Dataset struct {
	Name    string
	Players []model.Player
}

// Size is the number of players.
func (d Dataset) Size() int { return len(d.Players) }

// Source is a full player collection that Build slices into sized datasets.
type Source struct {
	Name    string
	Players []model.Player
}

// SourceFromFile names a source after the base name of its path.
func SourceFromFile(path string, players []model.Player) Source {
	return Source{Name: filepath.Base(path), Players: players}
}

// Build takes the first min(size, len) players of every source for every size.
// Empty slices are skipped; when a source is shorter than several sizes the
// duplicate full-length dataset is kept once.
func Build(sources []Source, sizes []int) []Dataset {
	var out []Dataset
	for _, src := range sources {
		seen := make(map[int]bool)
		for _, size := range sizes {
			n := min(size, len(src.Players))
			if n <= 0 || seen[n] {
				continue
			}
			seen[n] = true
			out = append(out, Dataset{
				Name:    src.Name,
				Players: slices.Clone(src.Players[:n]),
			})
		}
	}
	return out
}

// ParseSizes reads comma or space separated sizes, keeping first-seen order
// and dropping duplicates.
func ParseSizes(raw []string) ([]int, error) {
	var sizes []int
	for _, chunk := range raw {
		for _, part := range strings.FieldsFunc(chunk, func(r rune) bool { return r == ',' || r == ' ' }) {
			v, err := strconv.Atoi(part)
			if err != nil {
				return nil, fmt.Errorf("invalid size %q: %w", part, err)
			}
			if v <= 0 {
				return nil, fmt.Errorf("size must be positive, got %d", v)
			}
			if !slices.Contains(sizes, v) {
				sizes = append(sizes, v)
			}
		}
	}
	return sizes, nil
}
