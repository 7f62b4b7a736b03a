package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mmr-tortoise/cube-conundrum/internal/model"
)

// maxLineLength bounds a single line of the log. bufio.Scanner's default of
// 64 KiB is too small for generated logs with thousands of rounds per game.
const maxLineLength = 1 << 20

// Parse reads a whole game log and decodes every non-blank line into a Game.
//
// Identifiers are assigned according to mode:
//   - IDModePosition: the raw 1-based line number, blank lines included
//   - IDModeOrdinal: the 1-based count of non-blank lines
//   - IDModeLabel: the number after "Game"
//
// Blank lines (empty after trimming) are skipped. Malformed lines are never
// skipped: every one of them is reported, joined with errors.Join, and no
// games are returned when any line fails.
func Parse(r io.Reader, mode model.IDMode) ([]model.Game, error) {
	if !mode.IsValid() {
		return nil, fmt.Errorf("parse game log: invalid id mode %q", mode)
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	var (
		games   []model.Game
		errs    []error
		lineNo  int
		ordinal int
	)

	for scanner.Scan() {
		lineNo++
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		ordinal++

		game, labelOK, err := decodeLine(text, lineNo)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		switch mode {
		case model.IDModePosition:
			game.ID = lineNo
		case model.IDModeOrdinal:
			game.ID = ordinal
		case model.IDModeLabel:
			if !labelOK {
				head, _, _ := strings.Cut(text, labelSep)
				errs = append(errs, &ParseError{Line: lineNo, Token: head, Err: ErrInvalidLabel})
				continue
			}
			game.ID = game.Label
		}

		games = append(games, game)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: line %d: %w", ErrRead, lineNo+1, err)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return games, nil
}

// ParseString is a convenience wrapper around Parse for in-memory logs.
func ParseString(s string, mode model.IDMode) ([]model.Game, error) {
	return Parse(strings.NewReader(s), mode)
}

// ParseFile opens the log at path and parses it with Parse.
//
// Failures are returned as *model.CLIError so the CLI can map them to exit
// codes directly: ExitInputError when the file cannot be opened or read,
// ExitParseError when any line is malformed.
func ParseFile(path string, mode model.IDMode) ([]model.Game, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, model.WrapCLIError(model.ExitInputError,
				fmt.Sprintf("input file not found: %s", path), err)
		}
		return nil, model.WrapCLIError(model.ExitInputError,
			fmt.Sprintf("failed to open input file %s", path), err)
	}
	defer func() { _ = f.Close() }()

	games, err := Parse(f, mode)
	if err != nil {
		if errors.Is(err, ErrRead) {
			return nil, model.WrapCLIError(model.ExitInputError,
				fmt.Sprintf("failed to read input file %s", path), err)
		}
		if len(ParseErrors(err)) > 0 {
			return nil, model.WrapCLIError(model.ExitParseError,
				fmt.Sprintf("malformed game log %s", path), err)
		}
		return nil, model.WrapCLIError(model.ExitGeneralError,
			fmt.Sprintf("failed to parse %s", path), err)
	}
	return games, nil
}
