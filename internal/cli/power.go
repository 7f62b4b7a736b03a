// power.go implements the "cubeconundrum power" command.
//
// The power command answers the second question about a game log: for each
// game, the minimum possible cube set is the per-color maximum across its
// rounds, its power is red × green × blue, and the command prints the sum of
// those powers over all games.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/cube-conundrum/internal/aggregate"
)

// NewPowerCommand creates the "power" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewPowerCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "power [input]",
		Short: "Sum the powers of each game's minimum cube set",
		Long: `Sum, over all games, the product of the fewest red, green and blue
cubes that could have produced every round of the game. The cube limits
do not apply.

Examples:
  cubeconundrum power
  cubeconundrum power games.txt --json`,

		Args: cobra.MaximumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runPower(cmd, args)
		},
	}

	return cmd
}

// runPower parses the log and prints the power sum.
func runPower(cmd *cobra.Command, args []string) error {
	games, _, err := loadGames(cmd, args)
	if err != nil {
		return err
	}

	sum, err := aggregate.SumPower(games)
	if err != nil {
		return aggregateError("failed to sum game powers", err)
	}

	VerboseLog("Summed powers of %d games", len(games))
	printAnswer(cmd.OutOrStdout(), sum)
	return nil
}
