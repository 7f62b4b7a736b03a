package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mmr-tortoise/cube-conundrum/internal/model"
)

// Separators of the game log syntax:
//
//	Game 1: 3 red, 4 blue; 1 red, 2 green, 6 blue; 2 green
//	      ^^             ^^       ^^
//	labelSep     roundSep    tokenSep
const (
	labelSep = ": "
	roundSep = "; "
	tokenSep = ", "

	// labelPrefix is the word expected before the numeric game label.
	labelPrefix = "Game"
)

// DecodeLine converts one non-blank line of the log into a Game.
//
// lineNo is the 1-based raw line number; it is recorded on the Game and on
// any *ParseError returned. The Game's ID is left at zero: identifiers are
// assigned by Parse according to its IDMode.
func DecodeLine(text string, lineNo int) (model.Game, error) {
	game, _, err := decodeLine(text, lineNo)
	return game, err
}

// decodeLine does the work of DecodeLine and additionally reports whether
// the "Game N" label held a valid number.
func decodeLine(text string, lineNo int) (model.Game, bool, error) {
	head, rest, found := strings.Cut(text, labelSep)
	if !found {
		return model.Game{}, false, &ParseError{Line: lineNo, Token: text, Err: ErrMissingSeparator}
	}

	rest = strings.TrimSpace(rest)
	if strings.Contains(rest, ":") {
		return model.Game{}, false, &ParseError{Line: lineNo, Token: rest, Err: ErrUnexpectedColon}
	}

	label, labelOK := parseLabel(head)

	roundTexts := strings.Split(rest, roundSep)
	rounds := make([]model.Round, 0, len(roundTexts))
	for _, rt := range roundTexts {
		round, err := decodeRound(rt)
		if err != nil {
			var pe *ParseError
			if errors.As(err, &pe) {
				pe.Line = lineNo
			}
			return model.Game{}, false, err
		}
		rounds = append(rounds, round)
	}

	return model.Game{
		Label:  label,
		Line:   lineNo,
		Rounds: rounds,
	}, labelOK, nil
}

// DecodeRound converts the text of a single round, such as
// "1 red, 2 green, 6 blue", into a Round.
func DecodeRound(text string) (model.Round, error) {
	return decodeRound(text)
}

// decodeRound splits a round on ", " and decodes each "count color" token.
// Each color may appear at most once; unmentioned colors stay zero.
func decodeRound(text string) (model.Round, error) {
	counts := make(map[model.Color]uint32, 3)

	for _, token := range strings.Split(text, tokenSep) {
		fields := strings.Fields(token)
		if len(fields) != 2 {
			return model.Round{}, &ParseError{Token: token, Err: ErrMalformedToken}
		}

		n, err := parseCount(fields[0])
		if err != nil {
			return model.Round{}, &ParseError{Token: token, Err: err}
		}

		color, err := model.ParseColor(fields[1])
		if err != nil {
			return model.Round{}, &ParseError{Token: token, Err: model.ErrUnknownColor}
		}

		if _, dup := counts[color]; dup {
			return model.Round{}, &ParseError{Token: text, Err: fmt.Errorf("%w: %s", ErrDuplicateColor, color)}
		}
		counts[color] = n
	}

	return model.NewRound(counts), nil
}

// parseCount parses a decimal cube count into a uint32.
// Counts beyond the uint32 range report both ErrInvalidCount and
// model.ErrOverflow.
func parseCount(s string) (uint32, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %w", ErrInvalidCount, model.ErrOverflow)
		}
		return 0, ErrInvalidCount
	}
	return uint32(n), nil
}

// parseLabel extracts N from "Game N". The boolean is false when the head
// does not have that shape; the label is then reported as 0.
func parseLabel(head string) (int, bool) {
	num, ok := strings.CutPrefix(strings.TrimSpace(head), labelPrefix)
	if !ok {
		return 0, false
	}
	label, err := strconv.Atoi(strings.TrimSpace(num))
	if err != nil || label < 0 {
		return 0, false
	}
	return label, true
}
