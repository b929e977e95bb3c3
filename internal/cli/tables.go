package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rkoenig/twophase/internal/kociemba"
)

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "Generate (if needed) and report stats for the move tables",
	Long: `Tables loads the twist, flip, and slice-sorted move tables, generating
and writing them to --tables-dir on first use, and prints each one's
entry count and on-disk path.`,
	Run: func(cmd *cobra.Command, args []string) {
		store := kociemba.NewStore(tablesDir)

		for _, name := range kociemba.CoordNames() {
			stats, err := store.Stats(name)
			if err != nil {
				fmt.Printf("Error loading %s table: %v\n", name, err)
				os.Exit(1)
			}
			fmt.Printf("%-12s entries=%-8d path=%s\n", stats.Name, stats.Entries, stats.Path)
		}
	},
}
