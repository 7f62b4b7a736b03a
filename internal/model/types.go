// Package model defines the domain types for the cubeconundrum CLI.
//
// All entities in this package are immutable values built during a single
// parse pass over a game log. Nothing here is persisted; a Game lives only
// long enough for its aggregate value to be folded into a running sum.
package model

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

// Color identifies one of the three cube colors that may appear in a round.
// The set is closed: any other name in the input is a decode error.
type Color int

const (
	// Red cubes.
	Red Color = iota

	// Green cubes.
	Green

	// Blue cubes.
	Blue
)

// colorNames maps each Color to its exact spelling in the game log.
var colorNames = [...]string{
	Red:   "red",
	Green: "green",
	Blue:  "blue",
}

// ErrUnknownColor is returned by ParseColor for names outside the closed
// red/green/blue set.
var ErrUnknownColor = errors.New("unrecognized color")

// Colors returns all colors in canonical order (red, green, blue).
// The canonical order is used whenever a round is rendered back to text.
func Colors() []Color {
	return []Color{Red, Green, Blue}
}

// String returns the lowercase name of the color as it appears in the log.
func (c Color) String() string {
	if !c.IsValid() {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return colorNames[c]
}

// IsValid checks whether the Color value is one of the predefined colors.
func (c Color) IsValid() bool {
	switch c {
	case Red, Green, Blue:
		return true
	default:
		return false
	}
}

// ParseColor converts a color name to a Color.
// Matching is exact: the log format always uses lowercase ASCII names, so
// "Red" or "red " are rejected rather than silently normalized.
func ParseColor(s string) (Color, error) {
	switch s {
	case "red":
		return Red, nil
	case "green":
		return Green, nil
	case "blue":
		return Blue, nil
	default:
		return 0, fmt.Errorf("%w: %q (valid: red, green, blue)", ErrUnknownColor, s)
	}
}

// Round is one draw event within a game: the number of cubes of each color
// shown at once. Colors absent from the round's text have a count of zero.
type Round struct {
	Red   uint32 `json:"red" yaml:"red"`
	Green uint32 `json:"green" yaml:"green"`
	Blue  uint32 `json:"blue" yaml:"blue"`
}

// NewRound builds a Round from per-color counts. Colors missing from the map
// default to zero.
func NewRound(counts map[Color]uint32) Round {
	return Round{
		Red:   counts[Red],
		Green: counts[Green],
		Blue:  counts[Blue],
	}
}

// Count returns the number of cubes of the given color in the round.
func (r Round) Count(c Color) uint32 {
	switch c {
	case Red:
		return r.Red
	case Green:
		return r.Green
	case Blue:
		return r.Blue
	default:
		return 0
	}
}

// Total returns the number of cubes shown in the round across all colors.
// The result is widened to uint64 so three maximal uint32 counts cannot wrap.
func (r Round) Total() uint64 {
	return uint64(r.Red) + uint64(r.Green) + uint64(r.Blue)
}

// Satisfies reports whether every count in r is within the matching count of
// constraints and the round's total is within the constraints' total.
//
// The total check never rejects a round that already passed the three
// per-color checks, but it is kept as an explicit condition of feasibility.
func (r Round) Satisfies(constraints Round) bool {
	return r.Red <= constraints.Red &&
		r.Green <= constraints.Green &&
		r.Blue <= constraints.Blue &&
		r.Total() <= constraints.Total()
}

// String renders the round in the log's own syntax, e.g. "3 red, 4 blue".
// Colors are listed in canonical order and zero counts are omitted. An
// all-zero round renders as "0 red" so that it still decodes to itself.
func (r Round) String() string {
	parts := make([]string, 0, 3)
	for _, c := range Colors() {
		if n := r.Count(c); n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, c))
		}
	}
	if len(parts) == 0 {
		return "0 " + Red.String()
	}
	return strings.Join(parts, ", ")
}

// Game is one record of the log: an identifier plus the rounds played.
// Round order is preserved for iteration but affects neither aggregate.
type Game struct {
	// ID is the identifier contributed to the possible-games sum.
	// How it is assigned depends on the IDMode used while parsing.
	ID int `json:"id" yaml:"id"`

	// Label is the number written after "Game" in the log, or 0 when the
	// label is not a decimal integer.
	Label int `json:"label" yaml:"label"`

	// Line is the 1-based raw line number the game was decoded from.
	Line int `json:"line" yaml:"line"`

	// Rounds holds every draw of the game in input order.
	Rounds []Round `json:"rounds" yaml:"rounds"`
}

// CubeSet is the smallest per-color inventory consistent with every round of
// a game. It is derived on demand and never stored on the Game.
type CubeSet struct {
	Red   uint32 `json:"red" yaml:"red"`
	Green uint32 `json:"green" yaml:"green"`
	Blue  uint32 `json:"blue" yaml:"blue"`
}

// ErrOverflow is returned when an aggregate no longer fits in a uint64.
var ErrOverflow = errors.New("arithmetic overflow")

// Power returns red × green × blue. Each multiplication is checked, so the
// error is non-nil only when the product exceeds the uint64 range.
func (s CubeSet) Power() (uint64, error) {
	hi, p := bits.Mul64(uint64(s.Red), uint64(s.Green))
	if hi != 0 {
		return 0, fmt.Errorf("power of %s: %w", s, ErrOverflow)
	}
	hi, p = bits.Mul64(p, uint64(s.Blue))
	if hi != 0 {
		return 0, fmt.Errorf("power of %s: %w", s, ErrOverflow)
	}
	return p, nil
}

// String returns a compact representation such as "{red:3 green:2 blue:6}".
func (s CubeSet) String() string {
	return fmt.Sprintf("{red:%d green:%d blue:%d}", s.Red, s.Green, s.Blue)
}

// DefaultConstraints returns the constraint set used when none is configured:
// 12 red, 13 green, and 14 blue cubes.
func DefaultConstraints() Round {
	return Round{Red: 12, Green: 13, Blue: 14}
}

// IDMode selects how game identifiers are assigned while parsing a log.
type IDMode string

const (
	// IDModePosition numbers games by their raw 1-based line position,
	// counting blank lines. A blank line before a game therefore shifts its
	// identifier, which matches the historical behavior of this tool.
	IDModePosition IDMode = "position"

	// IDModeOrdinal numbers games by their 1-based position among non-blank
	// lines only.
	IDModeOrdinal IDMode = "ordinal"

	// IDModeLabel uses the number written after "Game" in each line.
	IDModeLabel IDMode = "label"
)

// String returns the string representation of IDMode.
func (m IDMode) String() string {
	return string(m)
}

// IsValid checks whether the IDMode value is one of the predefined modes.
func (m IDMode) IsValid() bool {
	switch m {
	case IDModePosition, IDModeOrdinal, IDModeLabel:
		return true
	default:
		return false
	}
}

// ParseIDMode converts a string to an IDMode.
// Returns an error if the string does not match any valid mode.
func ParseIDMode(s string) (IDMode, error) {
	mode := IDMode(strings.ToLower(s))
	if !mode.IsValid() {
		return "", fmt.Errorf("invalid id mode: %q (valid: position, ordinal, label)", s)
	}
	return mode, nil
}

// ExitCode defines the process exit codes of the CLI.
// Scripts can rely on these to tell bad input apart from bad configuration.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitInputError indicates the input log was missing or unreadable.
	ExitInputError ExitCode = 2

	// ExitParseError indicates at least one line of the log is malformed.
	ExitParseError ExitCode = 3

	// ExitConfigError indicates the configuration file or flags are invalid.
	ExitConfigError ExitCode = 4

	// ExitEmptyGame indicates a game without rounds reached the power
	// reducer, which has no defined minimum cube set for it.
	ExitEmptyGame ExitCode = 5

	// ExitOverflow indicates an aggregate exceeded the uint64 range.
	ExitOverflow ExitCode = 6
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
