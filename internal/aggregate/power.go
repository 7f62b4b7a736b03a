package aggregate

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/mmr-tortoise/cube-conundrum/internal/model"
)

// ErrEmptyGame is returned when a game without rounds reaches the power
// reducer. Such a game has no minimum cube set; the parser never produces
// one, so seeing it means an upstream invariant was broken.
var ErrEmptyGame = errors.New("game has no rounds")

// MinimumCubeSet returns the smallest cube inventory that could have
// produced every round of game: the per-color maximum across its rounds.
func MinimumCubeSet(game model.Game) (model.CubeSet, error) {
	if len(game.Rounds) == 0 {
		return model.CubeSet{}, fmt.Errorf("game %d (line %d): %w", game.ID, game.Line, ErrEmptyGame)
	}

	first := game.Rounds[0]
	set := model.CubeSet{Red: first.Red, Green: first.Green, Blue: first.Blue}
	for _, r := range game.Rounds[1:] {
		set.Red = max(set.Red, r.Red)
		set.Green = max(set.Green, r.Green)
		set.Blue = max(set.Blue, r.Blue)
	}
	return set, nil
}

// GamePower returns the power of the minimum cube set of game.
func GamePower(game model.Game) (uint64, error) {
	set, err := MinimumCubeSet(game)
	if err != nil {
		return 0, err
	}
	p, err := set.Power()
	if err != nil {
		return 0, fmt.Errorf("game %d (line %d): %w", game.ID, game.Line, err)
	}
	return p, nil
}

// SumPower returns the sum of the powers of every game's minimum cube set.
// Processing stops at the first game that fails.
func SumPower(games []model.Game) (uint64, error) {
	var sum uint64
	for _, g := range games {
		p, err := GamePower(g)
		if err != nil {
			return 0, err
		}
		next, err := add(sum, p)
		if err != nil {
			return 0, fmt.Errorf("sum of powers: %w", err)
		}
		sum = next
	}
	return sum, nil
}

// add returns a+b, or model.ErrOverflow when the sum does not fit in 64 bits.
func add(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, model.ErrOverflow
	}
	return sum, nil
}
