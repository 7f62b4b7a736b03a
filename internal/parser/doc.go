// Package parser decodes game logs into model.Game values.
//
// A log holds one game per line:
//
//	Game 1: 3 red, 4 blue; 1 red, 2 green, 6 blue; 2 green
//
// The text after the first ": " is split into rounds on "; ", each round
// into tokens on ", ", and each token into a count and a color name on
// whitespace. Structure is checked strictly: a missing separator, a stray
// colon, a token that is not exactly "count color", a non-integer count, a
// repeated color within a round, or a color other than red/green/blue is a
// *ParseError. Parse reports every malformed line rather than stopping at
// the first one, and never returns a partial list of games.
//
// Format is the inverse of DecodeLine and is used to normalize logs.
package parser
