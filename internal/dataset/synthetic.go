package dataset

import (
	"fmt"
	"math"
	"math/rand/v2"

	"playerbench/internal/model"
)

// Teams are the franchise codes synthetic players are assigned to.
var Teams = []string{
	"ATL", "BOS", "BKN", "CHA", "CHI", "CLE", "DAL", "DEN", "DET", "GSW",
	"HOU", "IND", "LAC", "LAL", "MEM", "MIA", "MIL", "MIN", "NOP", "NYK",
	"OKC", "ORL", "PHI", "PHX", "POR", "SAC", "SAS", "TOR", "UTA", "WAS",
}

// NewRand returns a generator seeded with seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed>>1|1))
}

// Synthetic generates n players named player_1..player_n with plausible
// per-game averages rounded to one decimal.
func Synthetic(n int, rng *rand.Rand) ([]model.Player, error) {
	if n <= 0 {
		return nil, fmt.Errorf("synthetic size must be a positive integer, got %d", n)
	}

	players := make([]model.Player, 0, n)
	for i := 1; i <= n; i++ {
		p, err := model.NewPlayer(
			fmt.Sprintf("player_%d", i),
			Teams[rng.IntN(len(Teams))],
			uniform(rng, 35),
			uniform(rng, 10),
			uniform(rng, 3),
			uniform(rng, 3),
		)
		if err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	return players, nil
}

// SyntheticName is the dataset name used for generated players.
func SyntheticName(n int) string {
	return fmt.Sprintf("synthetic_player_data(%d)", n)
}

func uniform(rng *rand.Rand, upper float64) float64 {
	return math.Round(rng.Float64()*upper*10) / 10
}
