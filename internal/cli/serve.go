package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rkoenig/twophase/internal/webapi"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start the HTTP API server, which exposes the cube core over JSON
endpoints mirroring the CLI (apply moves, read coordinates and move-
table stats, render facelets).`,
	Run: func(cmd *cobra.Command, args []string) {
		port, _ := cmd.Flags().GetString("port")
		host, _ := cmd.Flags().GetString("host")

		fmt.Printf("Starting HTTP API server at http://%s:%s\n", host, port)

		server := webapi.NewServer(tablesDir)
		if err := server.Start(host + ":" + port); err != nil {
			fmt.Printf("Error starting server: %v\n", err)
		}
	},
}

func init() {
	serveCmd.Flags().StringP("port", "p", "8080", "Port to run the server on")
	serveCmd.Flags().StringP("host", "H", "localhost", "Host to bind the server to")
}
