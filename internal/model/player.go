package model

import "fmt"

// Player is a basketball player with per-game averages. Values are fixed at
// construction; sorting moves Players around but never changes them.
type Player struct {
	Name           string  `json:"name" yaml:"name"`
	Team           string  `json:"team" yaml:"team"`
	PointsPerGame  float64 `json:"points_per_game" yaml:"points_per_game"`
	AssistsPerGame float64 `json:"assists_per_game" yaml:"assists_per_game"`
	BlocksPerGame  float64 `json:"blocks_per_game" yaml:"blocks_per_game"`
	StealsPerGame  float64 `json:"steals_per_game" yaml:"steals_per_game"`
}

// NewPlayer validates the stats and returns the Player.
func NewPlayer(name, team string, ppg, apg, bpg, spg float64) (Player, error) {
	for _, s := range []struct {
		field string
		value float64
	}{
		{"points_per_game", ppg},
		{"assists_per_game", apg},
		{"blocks_per_game", bpg},
		{"steals_per_game", spg},
	} {
		if s.value < 0 {
			return Player{}, fmt.Errorf("%s cannot be negative, got %v", s.field, s.value)
		}
	}

	return Player{
		Name:           name,
		Team:           team,
		PointsPerGame:  ppg,
		AssistsPerGame: apg,
		BlocksPerGame:  bpg,
		StealsPerGame:  spg,
	}, nil
}

func (p Player) String() string {
	return fmt.Sprintf("%s (%s) %.1f ppg, %.1f apg, %.1f bpg, %.1f spg",
		p.Name, p.Team, p.PointsPerGame, p.AssistsPerGame, p.BlocksPerGame, p.StealsPerGame)
}
