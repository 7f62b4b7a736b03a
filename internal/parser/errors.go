package parser

import (
	"errors"
	"fmt"
)

// Sentinel errors identifying what went wrong in a line. Every decode failure
// is reported as a *ParseError wrapping exactly one of these (or
// model.ErrUnknownColor / model.ErrOverflow), so callers can branch with
// errors.Is without matching on message text.
var (
	// ErrMissingSeparator means the line has no ": " between the game label
	// and its rounds.
	ErrMissingSeparator = errors.New(`missing ": " separator`)

	// ErrUnexpectedColon means the round list still contains a colon after
	// the label was split off, i.e. the line holds more than one record.
	ErrUnexpectedColon = errors.New("unexpected colon in round list")

	// ErrInvalidLabel means the text before ": " is not "Game <number>".
	// It is only an error when identifiers are taken from the label.
	ErrInvalidLabel = errors.New("invalid game label")

	// ErrMalformedToken means a "count color" token did not split into
	// exactly two whitespace-separated fields.
	ErrMalformedToken = errors.New("malformed count/color token")

	// ErrInvalidCount means the count field is not a non-negative decimal
	// integer.
	ErrInvalidCount = errors.New("invalid cube count")

	// ErrDuplicateColor means a color is mentioned twice in the same round.
	ErrDuplicateColor = errors.New("duplicate color in round")

	// ErrRead means the underlying reader failed before the log was fully
	// consumed.
	ErrRead = errors.New("read game log")
)

// ParseError describes a single malformed line of a game log.
type ParseError struct {
	// Line is the 1-based raw line number, counting blank lines.
	Line int

	// Token is the offending piece of text: a token, a round, or the
	// whole line when no smaller unit applies.
	Token string

	// Err is the sentinel describing the failure.
	Err error
}

// Error formats the error as "line N: <reason>: <token>".
func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Token)
}

// Unwrap returns the sentinel error for use with errors.Is/errors.As.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// ParseErrors flattens err into the individual *ParseError values it
// carries. Parse joins one error per malformed line with errors.Join; this
// walks that tree (and any %w wrapping around it) in order.
func ParseErrors(err error) []*ParseError {
	if err == nil {
		return nil
	}

	if pe, ok := err.(*ParseError); ok {
		return []*ParseError{pe}
	}

	switch u := err.(type) {
	case interface{ Unwrap() []error }:
		var out []*ParseError
		for _, e := range u.Unwrap() {
			out = append(out, ParseErrors(e)...)
		}
		return out
	case interface{ Unwrap() error }:
		return ParseErrors(u.Unwrap())
	default:
		return nil
	}
}
