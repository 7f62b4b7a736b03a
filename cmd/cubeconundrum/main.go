// Package main is the entry point for the cubeconundrum CLI.
//
// This binary computes aggregates over a log of colored-cube games. It
// delegates all functionality to the internal/cli package, which defines
// cobra commands.
//
// Build-time variables (version, commit, date) are injected via ldflags
// during the release process. During development, they default to "dev",
// "none", and "unknown" respectively.
package main

import (
	"github.com/joho/godotenv"

	"github.com/mmr-tortoise/cube-conundrum/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// A .env file in the working directory may set CUBES_INPUT,
	// CUBES_ID_MODE or LOG_LEVEL. Its absence is not an error.
	_ = godotenv.Load()

	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	rootCmd := cli.NewRootCommand()
	cli.Execute(rootCmd)
}
