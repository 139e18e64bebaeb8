package model

import (
	"fmt"
	"math"
	"strings"
)

// Stat identifies one numeric Player attribute.
type Stat string

const (
	PointsPerGame  Stat = "ppg"
	AssistsPerGame Stat = "apg"
	BlocksPerGame  Stat = "bpg"
	StealsPerGame  Stat = "spg"
)

// Stats lists every sortable stat in display order.
var Stats = []Stat{PointsPerGame, AssistsPerGame, BlocksPerGame, StealsPerGame}

var statLabels = map[Stat]string{
	PointsPerGame:  "points per game",
	AssistsPerGame: "assists per game",
	BlocksPerGame:  "blocks per game",
	StealsPerGame:  "steals per game",
}

// ParseStat accepts a stat key such as "ppg" (case-insensitive).
func ParseStat(s string) (Stat, error) {
	stat := Stat(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := statLabels[stat]; ok {
		return stat, nil
	}
	keys := make([]string, len(Stats))
	for i, st := range Stats {
		keys[i] = string(st)
	}
	return "", fmt.Errorf("invalid stat %q, choose from: %s", s, strings.Join(keys, ", "))
}

// Label is the human readable name of the stat.
func (s Stat) Label() string {
	if l, ok := statLabels[s]; ok {
		return l
	}
	return string(s)
}

// Value returns the stat of p.
func (s Stat) Value(p Player) (float64, error) {
	switch s {
	case PointsPerGame:
		return p.PointsPerGame, nil
	case AssistsPerGame:
		return p.AssistsPerGame, nil
	case BlocksPerGame:
		return p.BlocksPerGame, nil
	case StealsPerGame:
		return p.StealsPerGame, nil
	}
	return 0, fmt.Errorf("unknown stat %q", string(s))
}

// Key returns a key selector ordering players by s. Sorts are ascending, so a
// descending key negates the stat. NaN stats are rejected.
func (s Stat) Key(descending bool) func(Player) (float64, error) {
	return func(p Player) (float64, error) {
		v, err := s.Value(p)
		if err != nil {
			return 0, err
		}
		if math.IsNaN(v) {
			return 0, fmt.Errorf("%s of %q is NaN", s, p.Name)
		}
		if descending {
			return -v, nil
		}
		return v, nil
	}
}
