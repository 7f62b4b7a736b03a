package aggregate

import (
	"fmt"

	"github.com/mmr-tortoise/cube-conundrum/internal/model"
)

// Possible reports whether every round of game satisfies constraints.
// A game without rounds is vacuously possible.
func Possible(game model.Game, constraints model.Round) bool {
	for _, r := range game.Rounds {
		if !r.Satisfies(constraints) {
			return false
		}
	}
	return true
}

// PossibleGames returns the games that are possible under constraints,
// preserving input order.
func PossibleGames(games []model.Game, constraints model.Round) []model.Game {
	out := make([]model.Game, 0, len(games))
	for _, g := range games {
		if Possible(g, constraints) {
			out = append(out, g)
		}
	}
	return out
}

// SumPossibleIDs returns the sum of the identifiers of all possible games.
func SumPossibleIDs(games []model.Game, constraints model.Round) (uint64, error) {
	var sum uint64
	for _, g := range games {
		if !Possible(g, constraints) {
			continue
		}
		if g.ID < 0 {
			return 0, fmt.Errorf("game on line %d: negative identifier %d", g.Line, g.ID)
		}
		next, err := add(sum, uint64(g.ID))
		if err != nil {
			return 0, fmt.Errorf("sum of possible game ids: %w", err)
		}
		sum = next
	}
	return sum, nil
}
