package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func cartCmd() *cobra.Command {
	cartRoot := &cobra.Command{
		Use:   "cart",
		Short: "Manage the session cart",
	}

	cartRoot.AddCommand(
		cartShowCmd(),
		cartAddCmd(),
		cartSetCmd(),
		cartRemoveCmd(),
		cartClearCmd(),
		cartCheckoutCmd(),
	)

	return cartRoot
}

func cartShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the cart",
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			resp, err := c.GetCart(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(resp)
			}
			if len(resp.Items) == 0 {
				fmt.Println("Cart is empty.")
				return nil
			}
			return printCart(resp)
		},
	}
}

func cartAddCmd() *cobra.Command {
	var quantity int

	cmd := &cobra.Command{
		Use:   "add <product_id>",
		Short: "Add a product to the cart",
		Args:  cobra.ExactArgs(1),
		Example: `  souqctl cart add 2f0c8a4e-1b59-4a7e-9d1f-2b8a0c3d4e5f
  souqctl cart add 2f0c8a4e-1b59-4a7e-9d1f-2b8a0c3d4e5f --quantity 3`,
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			resp, err := c.AddCartItem(context.Background(), args[0], quantity)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(resp)
			}
			return printCart(resp)
		},
	}

	cmd.Flags().IntVar(&quantity, "quantity", 1, "quantity to add")

	return cmd
}

func cartSetCmd() *cobra.Command {
	var quantity int

	cmd := &cobra.Command{
		Use:   "set <product_id>",
		Short: "Set the quantity of a cart line (0 removes it)",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			resp, err := c.UpdateCartItem(context.Background(), args[0], quantity)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(resp)
			}
			return printCart(resp)
		},
	}

	cmd.Flags().IntVar(&quantity, "quantity", 1, "new quantity")

	return cmd
}

func cartRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <product_id>",
		Short: "Remove a cart line",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			resp, err := c.RemoveCartItem(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(resp)
			}
			return printCart(resp)
		},
	}
}

func cartClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			if err := c.ClearCart(context.Background()); err != nil {
				return err
			}
			fmt.Println("Cart cleared.")
			return nil
		},
	}
}

func cartCheckoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checkout",
		Short: "Convert the cart into an order",
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			order, err := c.Checkout(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(order)
			}
			return printOrderDetail(order)
		},
	}
}

func ordersCmd() *cobra.Command {
	ordersRoot := &cobra.Command{
		Use:   "orders",
		Short: "View orders placed in this session",
	}

	ordersRoot.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List orders, newest first",
			RunE: func(_ *cobra.Command, _ []string) error {
				c := newClient()
				orders, err := c.ListOrders(context.Background())
				if err != nil {
					return err
				}
				if jsonOutput() {
					return outputJSON(orders)
				}
				if len(orders) == 0 {
					fmt.Println("No orders found.")
					return nil
				}
				return printOrderTable(orders)
			},
		},
		&cobra.Command{
			Use:   "get <order_id>",
			Short: "Show a single order",
			Args:  cobra.ExactArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				c := newClient()
				order, err := c.GetOrder(context.Background(), args[0])
				if err != nil {
					return err
				}
				if jsonOutput() {
					return outputJSON(order)
				}
				return printOrderDetail(order)
			},
		},
	)

	return ordersRoot
}
