package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func compareCmd() *cobra.Command {
	compareRoot := &cobra.Command{
		Use:   "compare",
		Short: "Manage the session comparison set",
		Long: "Manage the side-by-side comparison set for this session. The set holds\n" +
			"up to four products and tracks the per-attribute winner (lowest price,\n" +
			"highest rating, best deal score).",
	}

	compareRoot.AddCommand(
		compareShowCmd(),
		compareAddCmd(),
		compareRemoveCmd(),
		compareClearCmd(),
	)

	return compareRoot
}

func compareShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the comparison set",
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			resp, err := c.GetCompare(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(resp)
			}
			if len(resp.Products) == 0 {
				fmt.Println("Comparison set is empty.")
				return nil
			}
			return printCompare(resp)
		},
	}
}

func compareAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <product_id>",
		Short: "Add a product to the comparison set",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			resp, err := c.AddToCompare(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(resp)
			}
			if resp.Added != nil && !*resp.Added {
				fmt.Println("Not added: the comparison set is full or already contains this product.")
			}
			return printCompare(resp)
		},
	}
}

func compareRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <product_id>",
		Short: "Remove a product from the comparison set",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			resp, err := c.RemoveFromCompare(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(resp)
			}
			return printCompare(resp)
		},
	}
}

func compareClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty the comparison set",
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			if err := c.ClearCompare(context.Background()); err != nil {
				return err
			}
			fmt.Println("Comparison set cleared.")
			return nil
		},
	}
}

func wishlistCmd() *cobra.Command {
	wishlistRoot := &cobra.Command{
		Use:   "wishlist",
		Short: "Manage the session wishlist",
	}

	wishlistRoot.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show the wishlist",
			RunE: func(_ *cobra.Command, _ []string) error {
				c := newClient()
				products, err := c.Wishlist(context.Background())
				if err != nil {
					return err
				}
				if jsonOutput() {
					return outputJSON(products)
				}
				if len(products) == 0 {
					fmt.Println("Wishlist is empty.")
					return nil
				}
				return printProductTable(products)
			},
		},
		&cobra.Command{
			Use:   "add <product_id>",
			Short: "Add a product to the wishlist",
			Args:  cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				c := newClient()
				if err := c.AddToWishlist(context.Background(), args[0]); err != nil {
					return err
				}
				fmt.Println("Added to wishlist.")
				return nil
			},
		},
		&cobra.Command{
			Use:   "rm <product_id>",
			Short: "Remove a product from the wishlist",
			Args:  cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				c := newClient()
				if err := c.RemoveFromWishlist(context.Background(), args[0]); err != nil {
					return err
				}
				fmt.Println("Removed from wishlist.")
				return nil
			},
		},
	)

	return wishlistRoot
}
