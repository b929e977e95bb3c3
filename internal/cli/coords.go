package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rkoenig/twophase/internal/kociemba"
)

var coordsCmd = &cobra.Command{
	Use:   "coords <move-indices>",
	Short: "Print the twist/flip/slice-sorted coordinates after applying moves",
	Long: `Coords applies a comma-separated sequence of move indices to a solved
cube and prints each of the three coordinates the move tables are
indexed by.

Examples:
  cube coords "9"
  cube coords "0,3,6,9"`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var raw string
		if len(args) == 1 {
			raw = args[0]
		}

		moves, err := parseMoveIndices(raw)
		if err != nil {
			fmt.Printf("Error parsing moves: %v\n", err)
			os.Exit(1)
		}

		c := kociemba.Solved()
		applyMoves(&c, moves)

		fmt.Printf("twist:        %d\n", c.GetTwist())
		fmt.Printf("flip:         %d\n", c.GetFlip())
		fmt.Printf("slice_sorted: %d\n", c.GetSliceSorted())
	},
}
