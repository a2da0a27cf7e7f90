// Package cmd implements the souqctl CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	apiclient "github.com/souqly/souqly/internal/api/client"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "souqctl",
		Short: "CLI client for the souqly storefront API",
		Long: "souqctl is a command-line client for the souqly storefront API.\n" +
			"It lets you browse the catalog, manage a comparison set, wishlist,\n" +
			"cart, and price alerts, and run admin operations from the terminal.",
	}
)

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file (default $HOME/.souqctl.yaml)")
	rootCmd.PersistentFlags().
		String("server", "http://localhost:8080", "API server URL")
	rootCmd.PersistentFlags().
		String("session", "souqctl", "session identifier sent with requests")
	rootCmd.PersistentFlags().
		String("token", "", "admin bearer token")
	rootCmd.PersistentFlags().
		String("output", "table", "output format (table, json)")

	cobra.CheckErr(viper.BindPFlag("server", rootCmd.PersistentFlags().Lookup("server")))
	cobra.CheckErr(viper.BindPFlag("session", rootCmd.PersistentFlags().Lookup("session")))
	cobra.CheckErr(viper.BindPFlag("token", rootCmd.PersistentFlags().Lookup("token")))
	cobra.CheckErr(viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output")))

	rootCmd.AddCommand(productsCmd())
	rootCmd.AddCommand(searchCmd())
	rootCmd.AddCommand(categoriesCmd())
	rootCmd.AddCommand(compareCmd())
	rootCmd.AddCommand(wishlistCmd())
	rootCmd.AddCommand(cartCmd())
	rootCmd.AddCommand(ordersCmd())
	rootCmd.AddCommand(alertsCmd())
	rootCmd.AddCommand(recentCmd())
	rootCmd.AddCommand(adminCmd())
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".souqctl")
	}

	viper.SetEnvPrefix("SOUQCTL")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func newClient() *apiclient.Client {
	return apiclient.New(
		viper.GetString("server"),
		apiclient.WithSessionID(viper.GetString("session")),
		apiclient.WithAdminToken(viper.GetString("token")),
	)
}

func jsonOutput() bool {
	return viper.GetString("output") == "json"
}
