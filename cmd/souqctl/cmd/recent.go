package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func recentCmd() *cobra.Command {
	recentRoot := &cobra.Command{
		Use:   "recent",
		Short: "View session browsing history",
	}

	recentRoot.AddCommand(
		&cobra.Command{
			Use:   "viewed",
			Short: "List recently viewed products, most recent first",
			RunE: func(_ *cobra.Command, _ []string) error {
				c := newClient()
				products, err := c.RecentlyViewed(context.Background())
				if err != nil {
					return err
				}
				if jsonOutput() {
					return outputJSON(products)
				}
				if len(products) == 0 {
					fmt.Println("No recently viewed products.")
					return nil
				}
				return printProductTable(products)
			},
		},
		&cobra.Command{
			Use:   "searches",
			Short: "List recent search terms, most recent first",
			RunE: func(_ *cobra.Command, _ []string) error {
				c := newClient()
				searches, err := c.RecentSearches(context.Background())
				if err != nil {
					return err
				}
				if jsonOutput() {
					return outputJSON(searches)
				}
				if len(searches) == 0 {
					fmt.Println("No recent searches.")
					return nil
				}
				for _, s := range searches {
					fmt.Println(s)
				}
				return nil
			},
		},
	)

	return recentRoot
}
