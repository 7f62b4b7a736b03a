package parser

import (
	"fmt"
	"strings"

	"github.com/mmr-tortoise/cube-conundrum/internal/model"
)

// Format renders a Game back into the log syntax, using the game's ID as its
// label:
//
//	Game 1: 3 red, 4 blue; 1 red, 2 green, 6 blue; 2 green
//
// Colors within a round are written in canonical order, so the text may
// differ from the original line while still decoding to equal rounds.
func Format(game model.Game) string {
	rounds := make([]string, 0, len(game.Rounds))
	for _, r := range game.Rounds {
		rounds = append(rounds, r.String())
	}
	return fmt.Sprintf("%s %d%s%s", labelPrefix, game.ID, labelSep, strings.Join(rounds, roundSep))
}

// FormatLog renders games one per line with a trailing newline.
func FormatLog(games []model.Game) string {
	var b strings.Builder
	for _, g := range games {
		b.WriteString(Format(g))
		b.WriteByte('\n')
	}
	return b.String()
}
