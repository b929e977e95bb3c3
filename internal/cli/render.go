package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rkoenig/twophase/internal/kociemba"
)

var renderCmd = &cobra.Command{
	Use:   "render <move-indices>",
	Short: "Render the facelets of a cube after applying a move sequence",
	Long: `Render applies a comma-separated sequence of move indices to a solved
cube and prints the resulting facelets as an unfolded cross.

Examples:
  cube render ""
  cube render "9" --color`,
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

		useColor, _ := cmd.Flags().GetBool("color")
		fmt.Print(kociemba.Render(kociemba.FaceletsOf(&c), useColor))
	},
}

func init() {
	renderCmd.Flags().BoolP("color", "c", false, "Render with ANSI color")
}
