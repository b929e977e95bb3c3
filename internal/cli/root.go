package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var tablesDir string

var rootCmd = &cobra.Command{
	Use:   "cube",
	Short: "A cubie-level Rubik's cube core built around Kociemba coordinates",
	Long: `Cube drives the cubie-level state representation and coordinate/
move-table machinery behind Kociemba's two-phase algorithm: apply moves
by index, inspect coordinates, generate and inspect move tables, and
render a cube's facelets.`,
	Version: "1.0.0",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&tablesDir, "tables-dir", os.Getenv("TABLES_DIR"), "directory holding the generated move tables (env TABLES_DIR)")

	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(coordsCmd)
	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(serveCmd)
}
