package aggregate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmr-tortoise/cube-conundrum/internal/model"
	"github.com/mmr-tortoise/cube-conundrum/internal/parser"
)

// exampleLog is the five-game example; with the default constraints games
// 1, 2 and 5 are possible (sum 8) and the powers add up to 2286.
const exampleLog = `Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
`

func mustParse(t *testing.T, log string) []model.Game {
	t.Helper()
	games, err := parser.ParseString(log, model.IDModePosition)
	require.NoError(t, err)
	return games
}

// TestWorkedExamples covers the three single-game examples: two possible
// games and one that exceeds the red limit but still has a power.
func TestWorkedExamples(t *testing.T) {
	tests := []struct {
		name         string
		line         string
		wantPossible bool
		wantSet      model.CubeSet
		wantPower    uint64
	}{
		{
			name:         "game 1",
			line:         "Game 1: 3 red, 4 blue; 1 red, 2 green, 6 blue; 2 green",
			wantPossible: true,
			wantSet:      model.CubeSet{Red: 3, Green: 2, Blue: 6},
			wantPower:    36,
		},
		{
			name:         "game 2",
			line:         "Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue",
			wantPossible: true,
			wantSet:      model.CubeSet{Red: 1, Green: 3, Blue: 4},
			wantPower:    12,
		},
		{
			name:         "twenty red is impossible",
			line:         "Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red",
			wantPossible: false,
			wantSet:      model.CubeSet{Red: 20, Green: 13, Blue: 6},
			wantPower:    1560,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game, err := parser.DecodeLine(tt.line, 1)
			require.NoError(t, err)

			assert.Equal(t, tt.wantPossible, Possible(game, model.DefaultConstraints()))

			set, err := MinimumCubeSet(game)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSet, set)

			p, err := GamePower(game)
			require.NoError(t, err)
			assert.Equal(t, tt.wantPower, p)
		})
	}
}

// TestSumPossibleIDs_Example checks aggregate (a) on the example log.
func TestSumPossibleIDs_Example(t *testing.T) {
	games := mustParse(t, exampleLog)

	sum, err := SumPossibleIDs(games, model.DefaultConstraints())
	require.NoError(t, err)
	assert.Equal(t, uint64(8), sum)

	possible := PossibleGames(games, model.DefaultConstraints())
	ids := make([]int, 0, len(possible))
	for _, g := range possible {
		ids = append(ids, g.ID)
	}
	assert.Equal(t, []int{1, 2, 5}, ids)
}

// TestSumPossibleIDs_CustomConstraints checks that the constraint set is a
// parameter rather than a fixed global.
func TestSumPossibleIDs_CustomConstraints(t *testing.T) {
	games := mustParse(t, exampleLog)

	tests := []struct {
		name        string
		constraints model.Round
		want        uint64
	}{
		{"nothing allowed", model.Round{}, 0},
		{"everything allowed", model.Round{Red: 100, Green: 100, Blue: 100}, 15},
		{"tight limits", model.Round{Red: 4, Green: 3, Blue: 6}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sum, err := SumPossibleIDs(games, tt.constraints)
			require.NoError(t, err)
			assert.Equal(t, tt.want, sum)
		})
	}
}

// TestSumPossibleIDs_BlankLineShift pins the identifier scheme: with
// position numbering a blank line before a game shifts its identifier,
// and therefore the sum.
func TestSumPossibleIDs_BlankLineShift(t *testing.T) {
	const log = "Game 1: 1 red\n\nGame 2: 1 blue\n"

	position, err := parser.ParseString(log, model.IDModePosition)
	require.NoError(t, err)
	sum, err := SumPossibleIDs(position, model.DefaultConstraints())
	require.NoError(t, err)
	assert.Equal(t, uint64(4), sum, "position mode counts the blank line")

	ordinal, err := parser.ParseString(log, model.IDModeOrdinal)
	require.NoError(t, err)
	sum, err = SumPossibleIDs(ordinal, model.DefaultConstraints())
	require.NoError(t, err)
	assert.Equal(t, uint64(3), sum)
}

// TestSumPossibleIDs_Overflow checks that a sum past uint64 is an error.
func TestSumPossibleIDs_Overflow(t *testing.T) {
	games := []model.Game{
		{ID: math.MaxInt, Rounds: []model.Round{{Red: 1}}},
		{ID: math.MaxInt, Rounds: []model.Round{{Red: 1}}},
		{ID: math.MaxInt, Rounds: []model.Round{{Red: 1}}},
	}
	_, err := SumPossibleIDs(games, model.DefaultConstraints())
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrOverflow)
}

// TestSumPower_Example checks aggregate (b) on the example log.
func TestSumPower_Example(t *testing.T) {
	sum, err := SumPower(mustParse(t, exampleLog))
	require.NoError(t, err)
	assert.Equal(t, uint64(2286), sum)
}

// TestSumPower_Empty checks that no games sum to zero.
func TestSumPower_Empty(t *testing.T) {
	sum, err := SumPower(nil)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), sum)
}

// TestMinimumCubeSet_EmptyGame checks that a zero-round game is reported
// as a typed error instead of aborting.
func TestMinimumCubeSet_EmptyGame(t *testing.T) {
	game := model.Game{ID: 4, Line: 7}

	_, err := MinimumCubeSet(game)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEmptyGame)
	assert.Contains(t, err.Error(), "line 7")

	_, err = SumPower([]model.Game{{ID: 1, Rounds: []model.Round{{Red: 1}}}, game})
	assert.ErrorIs(t, err, ErrEmptyGame)

	// The feasibility reducer accepts the same game.
	assert.True(t, Possible(game, model.DefaultConstraints()))
}

// TestMinimumCubeSet_OrderInvariant checks that the power does not depend
// on the order of rounds, over every permutation of a four-round game.
func TestMinimumCubeSet_OrderInvariant(t *testing.T) {
	rounds := []model.Round{
		{Red: 6, Green: 3, Blue: 1},
		{Red: 1, Green: 9},
		{Blue: 15},
		{Red: 2, Green: 2, Blue: 2},
	}
	want := model.CubeSet{Red: 6, Green: 9, Blue: 15}

	for _, perm := range permutations(rounds) {
		set, err := MinimumCubeSet(model.Game{Rounds: perm})
		require.NoError(t, err)
		assert.Equal(t, want, set)
	}
}

// TestSumPower_Overflow checks both the product and the running sum guards.
func TestSumPower_Overflow(t *testing.T) {
	huge := model.Round{Red: math.MaxUint32, Green: math.MaxUint32, Blue: 2}
	_, err := SumPower([]model.Game{{ID: 1, Rounds: []model.Round{huge}}})
	assert.ErrorIs(t, err, model.ErrOverflow)

	big := model.Round{Red: math.MaxUint32, Green: math.MaxUint32, Blue: 1}
	_, err = SumPower([]model.Game{
		{ID: 1, Rounds: []model.Round{big}},
		{ID: 2, Rounds: []model.Round{big}},
	})
	assert.ErrorIs(t, err, model.ErrOverflow)
}

// permutations returns every ordering of rounds.
func permutations(rounds []model.Round) [][]model.Round {
	if len(rounds) <= 1 {
		return [][]model.Round{append([]model.Round(nil), rounds...)}
	}
	var out [][]model.Round
	for i := range rounds {
		rest := make([]model.Round, 0, len(rounds)-1)
		rest = append(rest, rounds[:i]...)
		rest = append(rest, rounds[i+1:]...)
		for _, p := range permutations(rest) {
			out = append(out, append([]model.Round{rounds[i]}, p...))
		}
	}
	return out
}
