// Package catalog implements the compound filter predicate and sort
// comparators applied to product lists before display.
package catalog

import (
	"fmt"
	"slices"
	"sort"

	domain "github.com/souqly/souqly/pkg/types"
)

// StockFilter is the tri-state stock predicate.
type StockFilter string

// Stock filter values.
const (
	StockAny     StockFilter = "any"
	StockInStock StockFilter = "in_stock"
)

// FilterState is the compound predicate configuration. All active predicates
// are ANDed. Empty category/brand sets match everything.
type FilterState struct {
	Categories   []string    `json:"categories,omitempty"`
	Brands       []string    `json:"brands,omitempty"`
	PriceMin     float64     `json:"price_min"`
	PriceMax     float64     `json:"price_max"`
	MinRating    float64     `json:"min_rating"`
	Stock        StockFilter `json:"stock,omitempty"`
	DiscountOnly bool        `json:"discount_only,omitempty"`
}

// DefaultFilterState returns a state that matches every product. The price
// ceiling is taken from the observed data so the default range is a no-op.
func DefaultFilterState(products []domain.Product) FilterState {
	var ceiling float64
	for i := range products {
		if products[i].Price > ceiling {
			ceiling = products[i].Price
		}
	}
	return FilterState{
		PriceMax: ceiling,
		Stock:    StockAny,
	}
}

// Validate rejects malformed configurations at the apply boundary.
// Handlers keep the prior valid state when this fails.
func (f *FilterState) Validate() error {
	if f.PriceMin < 0 {
		return fmt.Errorf("price_min must be >= 0, got %v", f.PriceMin)
	}
	if f.PriceMax > 0 && f.PriceMin > f.PriceMax {
		return fmt.Errorf("price_min %v exceeds price_max %v", f.PriceMin, f.PriceMax)
	}
	if f.MinRating < 0 || f.MinRating > 5 {
		return fmt.Errorf("min_rating must be in [0,5], got %v", f.MinRating)
	}
	switch f.Stock {
	case "", StockAny, StockInStock:
	default:
		return fmt.Errorf("unknown stock filter %q", f.Stock)
	}
	return nil
}

// Match evaluates the full predicate against one product.
func (f *FilterState) Match(p *domain.Product) bool {
	if len(f.Categories) > 0 && !slices.Contains(f.Categories, p.Category) {
		return false
	}
	if len(f.Brands) > 0 && !slices.Contains(f.Brands, p.Brand) {
		return false
	}

	// Missing price compares as 0: such products pass only when the range
	// includes 0. Documented edge case, not a silent drop.
	price := p.EffectivePrice()
	if price < f.PriceMin {
		return false
	}
	if f.PriceMax > 0 && price > f.PriceMax {
		return false
	}

	if p.Rating < f.MinRating {
		return false
	}
	if f.Stock == StockInStock && !p.InStock {
		return false
	}
	if f.DiscountOnly && !p.HasDiscount() {
		return false
	}
	return true
}

// Apply filters then sorts the products, returning a new slice. The input is
// never mutated. Filtering with a default state returns the input order
// unchanged; sorting is stable so equal keys keep their relative order.
func Apply(products []domain.Product, f FilterState, key domain.SortKey) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for i := range products {
		if f.Match(&products[i]) {
			out = append(out, products[i])
		}
	}
	Sort(out, key)
	return out
}

// Sort orders products in place by the given key. An empty or unknown key
// leaves the order untouched. All comparators are stable total orders.
func Sort(products []domain.Product, key domain.SortKey) {
	less := comparator(key)
	if less == nil {
		return
	}
	sort.SliceStable(products, func(i, j int) bool {
		return less(&products[i], &products[j])
	})
}

func comparator(key domain.SortKey) func(a, b *domain.Product) bool {
	switch key {
	case domain.SortFeatured:
		return func(a, b *domain.Product) bool {
			if a.Featured != b.Featured {
				return a.Featured
			}
			return a.Rating > b.Rating
		}
	case domain.SortRating:
		return func(a, b *domain.Product) bool {
			return a.Rating > b.Rating
		}
	case domain.SortPriceAsc:
		return func(a, b *domain.Product) bool {
			return a.EffectivePrice() < b.EffectivePrice()
		}
	case domain.SortPriceDesc:
		return func(a, b *domain.Product) bool {
			return a.EffectivePrice() > b.EffectivePrice()
		}
	case domain.SortNewest:
		return func(a, b *domain.Product) bool {
			return a.CreatedAt.After(b.CreatedAt)
		}
	}
	return nil
}
