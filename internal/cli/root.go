// Package cli implements the cobra-based CLI commands for cubeconundrum.
//
// Each subcommand (possible, power, games, check, format) is defined in its
// own file within this package. This file defines the root command that
// serves as the parent for all subcommands and handles global flags,
// configuration resolution, logging, and error output.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/cube-conundrum/internal/aggregate"
	"github.com/mmr-tortoise/cube-conundrum/internal/config"
	"github.com/mmr-tortoise/cube-conundrum/internal/model"
	"github.com/mmr-tortoise/cube-conundrum/internal/parser"
)

// Global flag variables shared across all subcommands.
// These are bound to cobra persistent flags on the root command,
// which makes them available to every subcommand automatically.
var (
	// jsonOutput controls whether command output is formatted as JSON.
	jsonOutput bool

	// verbose enables debug logging on stderr.
	verbose bool

	// configPath is the optional YAML/JSONC configuration file.
	configPath string

	// idMode overrides the identifier numbering mode when non-empty.
	idMode string

	// redLimit, greenLimit and blueLimit override the constraint set.
	// They only take effect when the flag was given explicitly.
	redLimit, greenLimit, blueLimit uint32
)

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// logger is the process-wide logger. It discards everything until
// initLogger runs in the root command's PersistentPreRun.
var logger = zerolog.Nop()

// NewRootCommand creates and configures the root cobra command.
// This is the entry point for the entire CLI application.
//
// The root command itself does not perform any action. It provides help
// text and global flags; the aggregates are computed by subcommands.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cubeconundrum",
		Short: "Aggregate colored-cube game logs",
		Long: `cubeconundrum reads a log of cube games, one per line:

  Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green

and answers two questions about it:

  possible  sum of the ids of games that fit within the cube limits
  power     sum of the powers of each game's minimum possible cube set

The log defaults to input.txt and the limits to 12 red, 13 green and
14 blue cubes. Both can be changed with flags, CUBES_* environment
variables, or a YAML/JSONC file passed with --config.`,

		// SilenceUsage prevents cobra from printing usage on every error.
		SilenceUsage: true,

		// SilenceErrors prevents cobra from printing errors automatically.
		// We format errors ourselves (text or JSON based on --json flag).
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			initLogger(cmd.ErrOrStderr())
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	flags.StringVarP(&configPath, "config", "c", "", "Configuration file (.yaml, .yml, .json, .jsonc)")
	flags.StringVar(&idMode, "id-mode", "", "Game id numbering: position, ordinal, label (default: position)")
	flags.Uint32Var(&redLimit, "red", 0, "Red cube limit (default: 12)")
	flags.Uint32Var(&greenLimit, "green", 0, "Green cube limit (default: 13)")
	flags.Uint32Var(&blueLimit, "blue", 0, "Blue cube limit (default: 14)")

	rootCmd.AddCommand(NewPossibleCommand())
	rootCmd.AddCommand(NewPowerCommand())
	rootCmd.AddCommand(NewGamesCommand())
	rootCmd.AddCommand(NewCheckCommand())
	rootCmd.AddCommand(NewFormatCommand())

	return rootCmd
}

// Execute runs the root command and handles exit codes.
// This is the main entry point called from main.go.
//
// CLIError types carry their own exit codes; other errors default to
// exit code 1.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		var cliErr *model.CLIError
		if errors.As(err, &cliErr) {
			printError(os.Stderr, cliErr.Message, cliErr.Err)
			os.Exit(int(cliErr.Code))
		}

		printError(os.Stderr, err.Error(), nil)
		os.Exit(int(model.ExitGeneralError))
	}
}

// printError outputs an error message in the appropriate format
// (JSON or text) based on the --json global flag.
//
// Malformed lines of a game log are listed individually, one per line in
// text mode and as a "lines" array in JSON mode.
func printError(w io.Writer, message string, underlying error) {
	problems := parser.ParseErrors(underlying)

	if jsonOutput {
		errObj := map[string]interface{}{
			"message": message,
		}
		if underlying != nil {
			errObj["detail"] = underlying.Error()
		}
		if len(problems) > 0 {
			errObj["lines"] = parseErrorsJSON(problems)
		}
		data, _ := json.MarshalIndent(map[string]interface{}{"error": errObj}, "", "  ")
		fmt.Fprintln(w, string(data))
		return
	}

	switch {
	case len(problems) > 0:
		fmt.Fprintf(w, "Error: %s\n", message)
		for _, p := range problems {
			fmt.Fprintf(w, "  %s\n", p.Error())
		}
	case underlying != nil:
		fmt.Fprintf(w, "Error: %s: %v\n", message, underlying)
	default:
		fmt.Fprintf(w, "Error: %s\n", message)
	}
}

// parseErrorJSON is the JSON shape of one malformed line.
type parseErrorJSON struct {
	Line   int    `json:"line"`
	Token  string `json:"token,omitempty"`
	Reason string `json:"reason"`
}

func parseErrorsJSON(problems []*parser.ParseError) []parseErrorJSON {
	out := make([]parseErrorJSON, 0, len(problems))
	for _, p := range problems {
		out = append(out, parseErrorJSON{Line: p.Line, Token: p.Token, Reason: p.Err.Error()})
	}
	return out
}

// initLogger configures the package logger to write human-readable lines to
// w. The level comes from LOG_LEVEL (default warn); --verbose forces debug.
func initLogger(w io.Writer) {
	level := zerolog.WarnLevel
	if s := os.Getenv("LOG_LEVEL"); s != "" {
		if lvl, err := zerolog.ParseLevel(s); err == nil {
			level = lvl
		}
	}
	if verbose {
		level = zerolog.DebugLevel
	}

	out := zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: time.TimeOnly}
	logger = zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// VerboseLog prints a debug message to stderr. It is only visible when
// verbose mode is enabled or LOG_LEVEL is debug.
func VerboseLog(format string, args ...interface{}) {
	logger.Debug().Msgf(format, args...)
}

// IsJSONOutput returns whether the --json flag is set.
// Subcommands use this to decide their output format.
func IsJSONOutput() bool {
	return jsonOutput
}

// resolveConfig builds the effective configuration for a command.
// Precedence, lowest to highest: defaults, --config file, CUBES_*
// environment variables, flags, and finally the positional input path.
func resolveConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
		VerboseLog("Loaded configuration from %s", configPath)
	}

	cfg.ApplyEnv(os.LookupEnv)

	if idMode != "" {
		cfg.IDMode = idMode
	}
	limitFlags := []struct {
		name  string
		color model.Color
		value uint32
	}{
		{"red", model.Red, redLimit},
		{"green", model.Green, greenLimit},
		{"blue", model.Blue, blueLimit},
	}
	for _, lf := range limitFlags {
		if cmd.Flags().Changed(lf.name) {
			cfg.SetLimit(lf.color, lf.value)
		}
	}

	if len(args) > 0 {
		cfg.Input = args[0]
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadGames resolves the configuration and parses the configured log.
func loadGames(cmd *cobra.Command, args []string) ([]model.Game, *config.Config, error) {
	cfg, err := resolveConfig(cmd, args)
	if err != nil {
		return nil, nil, err
	}
	mode, err := cfg.Mode()
	if err != nil {
		return nil, nil, model.WrapCLIError(model.ExitConfigError, "invalid id mode", err)
	}

	logger.Debug().Str("input", cfg.Input).Str("idMode", mode.String()).Msg("parsing game log")

	games, err := parser.ParseFile(cfg.Input, mode)
	if err != nil {
		return nil, nil, err
	}

	logger.Debug().Int("games", len(games)).Msg("parsed game log")
	return games, cfg, nil
}

// aggregateError maps reducer failures to CLI exit codes.
func aggregateError(message string, err error) error {
	switch {
	case errors.Is(err, aggregate.ErrEmptyGame):
		return model.WrapCLIError(model.ExitEmptyGame, message, err)
	case errors.Is(err, model.ErrOverflow):
		return model.WrapCLIError(model.ExitOverflow, message, err)
	default:
		return model.WrapCLIError(model.ExitGeneralError, message, err)
	}
}

// printAnswer writes a single aggregate: a bare integer line, or
// {"answer": N} in JSON mode.
func printAnswer(w io.Writer, answer uint64) {
	if IsJSONOutput() {
		data, _ := json.MarshalIndent(struct {
			Answer uint64 `json:"answer"`
		}{answer}, "", "  ")
		fmt.Fprintln(w, string(data))
		return
	}
	fmt.Fprintln(w, answer)
}
