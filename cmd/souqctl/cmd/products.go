package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/souqly/souqly/internal/api/client"
)

func productsCmd() *cobra.Command {
	productsRoot := &cobra.Command{
		Use:   "products",
		Short: "Browse the product catalog",
	}

	productsRoot.AddCommand(
		productsListCmd(),
		productsGetCmd(),
		productsInsightsCmd(),
	)

	return productsRoot
}

func productsListCmd() *cobra.Command {
	var params apiclient.ListProductsParams

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog products",
		Example: `  souqctl products list --category electronics --sort price_asc
  souqctl products list --featured --limit 5 --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			resp, err := c.ListProducts(context.Background(), &params)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(resp)
			}
			if len(resp.Products) == 0 {
				fmt.Println("No products found.")
				return nil
			}
			if err := printProductTable(resp.Products); err != nil {
				return err
			}
			fmt.Printf("\nShowing %d of %d products\n", len(resp.Products), resp.Total)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&params.Categories, "category", nil, "filter by category slug (repeatable)")
	cmd.Flags().StringSliceVar(&params.Brands, "brand", nil, "filter by brand (repeatable)")
	cmd.Flags().Float64Var(&params.PriceMin, "price-min", 0, "minimum price")
	cmd.Flags().Float64Var(&params.PriceMax, "price-max", 0, "maximum price")
	cmd.Flags().Float64Var(&params.MinRating, "min-rating", 0, "minimum average rating")
	cmd.Flags().BoolVar(&params.InStock, "in-stock", false, "only in-stock products")
	cmd.Flags().BoolVar(&params.Discount, "discount", false, "only discounted products")
	cmd.Flags().BoolVar(&params.Featured, "featured", false, "only featured products")
	cmd.Flags().StringVar(&params.Sort, "sort", "", "sort order (featured, rating, price_asc, price_desc, newest)")
	cmd.Flags().IntVar(&params.Limit, "limit", 0, "number of results")
	cmd.Flags().IntVar(&params.Offset, "offset", 0, "pagination offset")

	return cmd
}

func productsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <product_id>",
		Short: "Show a single product",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			p, err := c.GetProduct(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(p)
			}
			return printProductDetail(p)
		},
	}
}

func productsInsightsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "insights <product_id>",
		Short: "Show insight badges and the deal score breakdown",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			resp, err := c.GetProductInsights(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(resp)
			}

			for _, in := range resp.Insights {
				fmt.Printf("[%s] %s\n", in.Kind, in.Message.En)
			}
			fmt.Printf("\nScore: %d (discount %.0f, rating %.0f, popularity %.0f, freshness %.0f)\n",
				resp.Score.Total,
				resp.Score.Discount,
				resp.Score.Rating,
				resp.Score.Popularity,
				resp.Score.Freshness,
			)
			return nil
		},
	}
}

func searchCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search <term>",
		Short: "Search the catalog",
		Args:  cobra.ExactArgs(1),
		Example: `  souqctl search "mechanical keyboard"
  souqctl search "لوحة مفاتيح" --limit 5`,
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			resp, err := c.SearchProducts(context.Background(), args[0], limit)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(resp)
			}
			if len(resp.Products) == 0 {
				fmt.Printf("No products match %q.\n", args[0])
				return nil
			}
			return printProductTable(resp.Products)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "number of results")

	return cmd
}

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List catalog categories",
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			categories, err := c.ListCategories(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(categories)
			}
			if len(categories) == 0 {
				fmt.Println("No categories found.")
				return nil
			}
			return printCategoryTable(categories)
		},
	}
}
