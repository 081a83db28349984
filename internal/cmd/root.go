// Package cmd defines the crm command line.
package cmd

import (
	"crm/internal/config"

	"github.com/spf13/cobra"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "crm",
	Short: "Sales CRM pipeline service",
	Long: `crm serves the sales pipeline board API backed by Postgres and Redis,
and manages the database schema.

Configuration is read from the environment and an optional .env file.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cfg = config.Load()
		cfg.ConfigureLogging()
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
