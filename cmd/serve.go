package cmd

import (
	"github.com/spf13/cobra"

	"github.com/TommyZ-7/list-checker-tauri/pkg/cmd/server"
)

// serveCmd starts the session synchronization server
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the session synchronization server",
	Run:   server.RunServe(c),
}

func init() {
	RootCmd.AddCommand(serveCmd)
}
