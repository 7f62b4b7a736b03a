// Package model defines the domain types and value objects for the
// cubeconundrum CLI.
//
// This package contains pure data structures with no external dependencies.
// Rounds, Games, and CubeSets are transient values produced by the parser
// and consumed by the aggregate reducers.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
