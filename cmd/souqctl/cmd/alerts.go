package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func alertsCmd() *cobra.Command {
	alertsRoot := &cobra.Command{
		Use:   "alerts",
		Short: "Manage price alerts",
		Long: "Manage price drop alerts for this session. An alert fires when the\n" +
			"product's price drops to or below the target during ingestion.",
	}

	alertsRoot.AddCommand(
		alertsCreateCmd(),
		alertsListCmd(),
		alertsEnableCmd(),
		alertsDisableCmd(),
		alertsRemoveCmd(),
	)

	return alertsRoot
}

func alertsCreateCmd() *cobra.Command {
	var (
		targetPrice float64
		email       string
	)

	cmd := &cobra.Command{
		Use:   "create <product_id>",
		Short: "Create a price alert",
		Args:  cobra.ExactArgs(1),
		Example: `  souqctl alerts create 2f0c8a4e-1b59-4a7e-9d1f-2b8a0c3d4e5f --target 99.00
  souqctl alerts create 2f0c8a4e-1b59-4a7e-9d1f-2b8a0c3d4e5f --target 99.00 --email shopper@example.com`,
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			alert, err := c.CreateAlert(context.Background(), args[0], targetPrice, email)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(alert)
			}
			fmt.Printf("Created alert %s (target %.2f)\n", alert.ID, alert.TargetPrice)
			return nil
		},
	}

	cmd.Flags().Float64Var(&targetPrice, "target", 0, "target price (required)")
	cmd.Flags().StringVar(&email, "email", "", "notification email")
	cobra.CheckErr(cmd.MarkFlagRequired("target"))

	return cmd
}

func alertsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List price alerts",
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			alerts, err := c.ListAlerts(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(alerts)
			}
			if len(alerts) == 0 {
				fmt.Println("No alerts found.")
				return nil
			}
			return printAlertTable(alerts)
		},
	}
}

func alertsEnableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "enable <alert_id>",
		Short: "Enable a price alert",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			if err := c.SetAlertEnabled(context.Background(), args[0], true); err != nil {
				return err
			}
			fmt.Println("Alert enabled.")
			return nil
		},
	}
}

func alertsDisableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "disable <alert_id>",
		Short: "Disable a price alert",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			if err := c.SetAlertEnabled(context.Background(), args[0], false); err != nil {
				return err
			}
			fmt.Println("Alert disabled.")
			return nil
		},
	}
}

func alertsRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <alert_id>",
		Short: "Delete a price alert",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			if err := c.DeleteAlert(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Alert deleted.")
			return nil
		},
	}
}
