package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func adminCmd() *cobra.Command {
	adminRoot := &cobra.Command{
		Use:   "admin",
		Short: "Operator commands (require --token)",
	}

	adminRoot.AddCommand(
		adminIngestCmd(),
		adminRescoreCmd(),
		adminJobsCmd(),
		adminStatsCmd(),
	)

	return adminRoot
}

func adminIngestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ingest",
		Short: "Trigger a feed ingestion cycle",
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			if err := c.TriggerIngestion(context.Background()); err != nil {
				return err
			}
			fmt.Println("Ingestion completed.")
			return nil
		},
	}
}

func adminRescoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rescore",
		Short: "Recompute deal scores",
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			if err := c.TriggerRescore(context.Background()); err != nil {
				return err
			}
			fmt.Println("Rescore completed.")
			return nil
		},
	}
}

func adminJobsCmd() *cobra.Command {
	var (
		jobName string
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "List scheduler job runs, newest first",
		Example: `  souqctl admin jobs --token "$TOKEN"
  souqctl admin jobs --job ingestion --limit 5 --token "$TOKEN"`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			runs, err := c.ListJobRuns(context.Background(), jobName, limit)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(runs)
			}
			if len(runs) == 0 {
				fmt.Println("No job runs found.")
				return nil
			}
			return printJobRunsTable(runs)
		},
	}

	cmd.Flags().StringVar(&jobName, "job", "", "filter by job name (ingestion, rescore)")
	cmd.Flags().IntVar(&limit, "limit", 0, "number of results")

	return cmd
}

func adminStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show dashboard statistics",
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			stats, err := c.DashboardStats(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(stats)
			}
			return printStats(stats)
		},
	}
}
