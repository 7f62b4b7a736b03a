// possible.go implements the "cubeconundrum possible" command.
//
// The possible command answers the first question about a game log: the sum
// of the identifiers of every game whose rounds all fit within the cube
// limits (12 red, 13 green, 14 blue unless configured otherwise).
package cli

import (
	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/cube-conundrum/internal/aggregate"
)

// NewPossibleCommand creates the "possible" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewPossibleCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "possible [input]",
		Short: "Sum the ids of games possible under the cube limits",
		Long: `Sum the identifiers of all games whose every round stays within the
cube limits. A round fits when each of its color counts, and its total,
is at most the corresponding limit.

Examples:
  cubeconundrum possible
  cubeconundrum possible games.txt --red 20
  cubeconundrum possible --id-mode label --json`,

		Args: cobra.MaximumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runPossible(cmd, args)
		},
	}

	return cmd
}

// runPossible parses the log and prints the possible-games sum.
func runPossible(cmd *cobra.Command, args []string) error {
	games, cfg, err := loadGames(cmd, args)
	if err != nil {
		return err
	}

	limits := cfg.Limits()
	VerboseLog("Checking %d games against limits red=%d green=%d blue=%d",
		len(games), limits.Red, limits.Green, limits.Blue)

	sum, err := aggregate.SumPossibleIDs(games, limits)
	if err != nil {
		return aggregateError("failed to sum possible game ids", err)
	}

	printAnswer(cmd.OutOrStdout(), sum)
	return nil
}
