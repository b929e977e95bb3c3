package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rkoenig/twophase/internal/kociemba"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <move-indices>",
	Short: "Verify that a move sequence returns a solved cube to solved",
	Long: `Verify applies a comma-separated sequence of move indices to a solved
cube and checks whether the result is solved again. Exit code 0 means
the sequence is an identity (e.g. "R R R R", or a commutator), exit
code 1 means it is not.

Examples:
  cube verify "9,9,9,9"        # D*4, should pass
  cube verify "9,0,11,2" --headless`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		headless, _ := cmd.Flags().GetBool("headless")

		moves, err := parseMoveIndices(args[0])
		if err != nil {
			if !headless {
				fmt.Printf("Error parsing moves: %v\n", err)
			}
			os.Exit(1)
		}

		c := kociemba.Solved()
		applyMoves(&c, moves)

		solved := kociemba.Solved()
		if c.Equal(&solved) {
			if !headless {
				fmt.Printf("PASS: sequence returns the cube to solved\n")
				fmt.Printf("Move count: %d\n", len(moves))
			}
			os.Exit(0)
		}

		if !headless {
			fmt.Printf("FAIL: sequence does not return the cube to solved\n")
			fmt.Printf("twist=%d flip=%d slice_sorted=%d\n", c.GetTwist(), c.GetFlip(), c.GetSliceSorted())
		}
		os.Exit(1)
	},
}

func init() {
	verifyCmd.Flags().Bool("headless", false, "exit with code 0/1 only, no output")
}
