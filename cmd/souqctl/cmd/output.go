package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	apiclient "github.com/souqly/souqly/internal/api/client"
	domain "github.com/souqly/souqly/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printProductTable(products []domain.Product) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tNAME\tPRICE\tRATING\tSCORE\tCATEGORY\tSTOCK\n")
	for i := range products {
		p := &products[i]
		score := "-"
		if p.DealScore != nil {
			score = fmt.Sprintf("%d", *p.DealScore)
		}
		stock := "in"
		if !p.InStock {
			stock = "out"
		}
		tw.writef("%s\t%s\t%.2f %s\t%.1f (%d)\t%s\t%s\t%s\n",
			p.ID,
			truncate(p.Name.En, 40),
			p.Price,
			p.Currency,
			p.Rating,
			p.ReviewCount,
			score,
			p.Category,
			stock,
		)
	}
	return tw.finish()
}

func printProductDetail(p *domain.Product) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%s\n", p.ID)
	tw.writef("SKU:\t%s\n", p.SKU)
	tw.writef("Name:\t%s\n", p.Name.En)
	if p.Name.Ar != "" {
		tw.writef("Name (ar):\t%s\n", p.Name.Ar)
	}
	tw.writef("Price:\t%.2f %s\n", p.Price, p.Currency)
	if p.OriginalPrice != nil {
		tw.writef("Original Price:\t%.2f (%.0f%% off)\n", *p.OriginalPrice, p.DiscountPct)
	}
	tw.writef("Category:\t%s\n", p.Category)
	if p.Brand != "" {
		tw.writef("Brand:\t%s\n", p.Brand)
	}
	tw.writef("Rating:\t%.1f (%d reviews)\n", p.Rating, p.ReviewCount)
	if p.DealScore != nil {
		tw.writef("Deal Score:\t%d/100\n", *p.DealScore)
	}
	tw.writef("In Stock:\t%v\n", p.InStock)
	tw.writef("Featured:\t%v\n", p.Featured)
	tw.writef("Source:\t%s\n", p.Source)
	tw.writef("URL:\t%s\n", p.AffiliateURL)
	return tw.finish()
}

func printCategoryTable(categories []domain.Category) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("SLUG\tNAME\tPARENT\tPOSITION\n")
	for i := range categories {
		tw.writef("%s\t%s\t%s\t%d\n",
			categories[i].Slug,
			categories[i].Name.En,
			categories[i].Parent,
			categories[i].Position,
		)
	}
	return tw.finish()
}

func printCompare(resp *apiclient.CompareResponse) error {
	if err := printProductTable(resp.Products); err != nil {
		return err
	}
	if len(resp.Winners) == 0 {
		return nil
	}

	fmt.Println()
	tw := newTabWriter(os.Stdout)
	tw.writef("ATTRIBUTE\tWINNER\n")
	for attr, id := range resp.Winners {
		tw.writef("%s\t%s\n", attr, id)
	}
	return tw.finish()
}

func printCart(resp *apiclient.CartResponse) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("PRODUCT\tQTY\tUNIT PRICE\tSUBTOTAL\n")
	for _, it := range resp.Items {
		tw.writef("%s\t%d\t%.2f\t%.2f\n",
			it.ProductID,
			it.Quantity,
			it.UnitPrice,
			it.UnitPrice*float64(it.Quantity),
		)
	}
	tw.writef("TOTAL\t\t\t%.2f\n", resp.Total)
	return tw.finish()
}

func printOrderTable(orders []domain.Order) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tITEMS\tTOTAL\tSTATUS\tPLACED\n")
	for i := range orders {
		o := &orders[i]
		tw.writef("%s\t%d\t%.2f %s\t%s\t%s\n",
			o.ID,
			len(o.Items),
			o.Total,
			o.Currency,
			o.Status,
			o.CreatedAt.Format("2006-01-02 15:04:05"),
		)
	}
	return tw.finish()
}

func printOrderDetail(o *domain.Order) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%s\n", o.ID)
	tw.writef("Status:\t%s\n", o.Status)
	tw.writef("Placed:\t%s\n", o.CreatedAt.Format("2006-01-02 15:04:05"))
	tw.writef("Total:\t%.2f %s\n", o.Total, o.Currency)
	tw.writef("\nNAME\tQTY\tUNIT PRICE\tSUBTOTAL\n")
	for _, it := range o.Items {
		tw.writef("%s\t%d\t%.2f\t%.2f\n",
			it.Name,
			it.Quantity,
			it.UnitPrice,
			it.Subtotal(),
		)
	}
	return tw.finish()
}

func printAlertTable(alerts []domain.PriceAlert) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tPRODUCT\tTARGET\tENABLED\tLAST TRIGGERED\n")
	for i := range alerts {
		a := &alerts[i]
		triggered := "-"
		if a.LastTriggeredAt != nil {
			triggered = a.LastTriggeredAt.Format("2006-01-02 15:04:05")
		}
		tw.writef("%s\t%s\t%.2f\t%v\t%s\n",
			a.ID,
			a.ProductID,
			a.TargetPrice,
			a.Enabled,
			triggered,
		)
	}
	return tw.finish()
}

func printJobRunsTable(runs []domain.JobRun) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("JOB\tSTATUS\tSTARTED\tCOMPLETED\tERROR\n")
	for i := range runs {
		r := &runs[i]
		completed := "-"
		if r.CompletedAt != nil {
			completed = r.CompletedAt.Format("2006-01-02 15:04:05")
		}
		tw.writef("%s\t%s\t%s\t%s\t%s\n",
			r.JobName,
			r.Status,
			r.StartedAt.Format("2006-01-02 15:04:05"),
			completed,
			truncate(r.ErrorText, 40),
		)
	}
	return tw.finish()
}

func printStats(s *domain.DashboardStats) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("Products:\t%d (%d in stock, %d featured, %d on sale)\n",
		s.ProductsTotal, s.ProductsInStock, s.ProductsFeatured, s.ProductsOnSale)
	tw.writef("Categories:\t%d\n", s.CategoriesTotal)
	tw.writef("Reviews:\t%d (avg rating %.2f)\n", s.ReviewsTotal, s.AverageRating)
	tw.writef("Alerts:\t%d (%d enabled, %d pending)\n",
		s.AlertsTotal, s.AlertsEnabled, s.AlertsPending)
	tw.writef("Orders:\t%d\n", s.OrdersTotal)
	return tw.finish()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
