package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rkoenig/twophase/internal/kociemba"
)

var applyCmd = &cobra.Command{
	Use:   "apply <move-indices>",
	Short: "Apply a sequence of moves to a solved cube and show the result",
	Long: `Apply applies a comma-separated sequence of move indices (0..17, see the
move numbering in the glossary) to a solved cube and prints the
resulting coordinates and facelets.

Examples:
  cube apply "9"        # a single D turn
  cube apply "0,3,6,9"  # U R F D
  cube apply "" --color # solved cube, rendered`,
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

		fmt.Printf("Applied %d move(s)\n", len(moves))
		fmt.Printf("twist=%d flip=%d slice_sorted=%d\n", c.GetTwist(), c.GetFlip(), c.GetSliceSorted())
		fmt.Println(kociemba.Render(kociemba.FaceletsOf(&c), useColor))
	},
}

func init() {
	applyCmd.Flags().BoolP("color", "c", false, "Render facelets with ANSI color")
}
