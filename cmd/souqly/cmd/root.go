// Package cmd implements the CLI commands for the souqly server.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "souqly",
	Short: "Bilingual e-commerce storefront server",
	Long:  "An API-first bilingual (English/Arabic) storefront that ingests affiliate product feeds, scores deals, and serves catalog, comparison, cart, and price alert endpoints.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")
	rootCmd.AddCommand(versionCommand())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
