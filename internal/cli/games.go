// games.go implements the "cubeconundrum games" command.
//
// The games command shows the per-game detail behind both aggregates: each
// game's identifier, its minimum possible cube set and power, and whether it
// fits within the cube limits. Output is a text table, JSON (--json), or
// YAML (--yaml). An optional --possible-only flag hides impossible games.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mmr-tortoise/cube-conundrum/internal/aggregate"
	"github.com/mmr-tortoise/cube-conundrum/internal/model"
)

// gamesFlags holds the flag values for the games command.
// These are bound to cobra flags in NewGamesCommand.
type gamesFlags struct {
	// possibleOnly hides games that exceed the cube limits.
	possibleOnly bool

	// yamlOutput selects YAML output. It is ignored when --json is set.
	yamlOutput bool
}

// NewGamesCommand creates the "games" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewGamesCommand() *cobra.Command {
	flags := &gamesFlags{}

	cmd := &cobra.Command{
		Use:   "games [input]",
		Short: "Show per-game cube sets, powers and feasibility",
		Long: `Show every game of the log with its minimum possible cube set, the
power of that set, and whether the game fits within the cube limits.
Totals for both aggregates are printed at the end.

Examples:
  cubeconundrum games
  cubeconundrum games --possible-only
  cubeconundrum games games.txt --yaml`,

		Args: cobra.MaximumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runGames(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.possibleOnly, "possible-only", false,
		"Only show games that fit within the cube limits")
	cmd.Flags().BoolVar(&flags.yamlOutput, "yaml", false, "Output in YAML format")

	return cmd
}

// gameReport is the output structure for a single game, shared by the JSON
// and YAML encoders.
type gameReport struct {
	ID         int           `json:"id" yaml:"id"`
	Label      int           `json:"label" yaml:"label"`
	Line       int           `json:"line" yaml:"line"`
	Rounds     int           `json:"rounds" yaml:"rounds"`
	MinimumSet model.CubeSet `json:"minimumSet" yaml:"minimumSet"`
	Power      uint64        `json:"power" yaml:"power"`
	Possible   bool          `json:"possible" yaml:"possible"`
}

// gamesReport is the top-level output of the games command.
// The sums always cover every game, even when --possible-only hides some.
type gamesReport struct {
	Limits      model.Round  `json:"limits" yaml:"limits"`
	Games       []gameReport `json:"games" yaml:"games"`
	PossibleSum uint64       `json:"possibleSum" yaml:"possibleSum"`
	PowerSum    uint64       `json:"powerSum" yaml:"powerSum"`
}

// runGames is the main logic function for the games command.
func runGames(cmd *cobra.Command, args []string, flags *gamesFlags) error {
	games, cfg, err := loadGames(cmd, args)
	if err != nil {
		return err
	}

	report, err := buildGamesReport(games, cfg.Limits(), flags.possibleOnly)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch {
	case IsJSONOutput():
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		fmt.Fprintln(out, string(data))
	case flags.yamlOutput:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		return enc.Close()
	default:
		printGamesText(out, report)
	}
	return nil
}

// buildGamesReport computes the per-game rows and both sums.
func buildGamesReport(games []model.Game, limits model.Round, possibleOnly bool) (*gamesReport, error) {
	report := &gamesReport{
		Limits: limits,
		// Use an empty slice instead of nil so JSON shows [] for an empty log.
		Games: make([]gameReport, 0, len(games)),
	}

	for _, g := range games {
		set, err := aggregate.MinimumCubeSet(g)
		if err != nil {
			return nil, aggregateError("failed to build game report", err)
		}
		power, err := aggregate.GamePower(g)
		if err != nil {
			return nil, aggregateError("failed to build game report", err)
		}
		possible := aggregate.Possible(g, limits)

		if possible || !possibleOnly {
			report.Games = append(report.Games, gameReport{
				ID:         g.ID,
				Label:      g.Label,
				Line:       g.Line,
				Rounds:     len(g.Rounds),
				MinimumSet: set,
				Power:      power,
				Possible:   possible,
			})
		}
	}

	var err error
	if report.PossibleSum, err = aggregate.SumPossibleIDs(games, limits); err != nil {
		return nil, aggregateError("failed to sum possible game ids", err)
	}
	if report.PowerSum, err = aggregate.SumPower(games); err != nil {
		return nil, aggregateError("failed to sum game powers", err)
	}
	return report, nil
}

// printGamesText outputs the report as an aligned text table:
//
//	ID  LINE  ROUNDS  RED  GREEN  BLUE  POWER  POSSIBLE
//	1   1     3       4    2      6     48     yes
func printGamesText(w io.Writer, report *gamesReport) {
	if len(report.Games) == 0 {
		fmt.Fprintln(w, "No games found.")
	} else {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tLINE\tROUNDS\tRED\tGREEN\tBLUE\tPOWER\tPOSSIBLE")
		for _, g := range report.Games {
			fmt.Fprintf(tw, "%d\t%d\t%d\t%d\t%d\t%d\t%d\t%s\n",
				g.ID, g.Line, g.Rounds,
				g.MinimumSet.Red, g.MinimumSet.Green, g.MinimumSet.Blue,
				g.Power, yesNo(g.Possible))
		}
		_ = tw.Flush()
	}

	fmt.Fprintf(w, "\nPossible (limits red=%d green=%d blue=%d): %d\n",
		report.Limits.Red, report.Limits.Green, report.Limits.Blue, report.PossibleSum)
	fmt.Fprintf(w, "Power: %d\n", report.PowerSum)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
