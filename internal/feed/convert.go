package feed

import (
	"math"
	"strconv"

	domain "github.com/souqly/souqly/pkg/types"
)

// ToProducts converts feed entries into domain products tagged with the given
// source name.
func ToProducts(entries []ProductEntry, source string) []domain.Product {
	products := make([]domain.Product, 0, len(entries))
	for i := range entries {
		products = append(products, toProduct(&entries[i], source))
	}
	return products
}

func toProduct(e *ProductEntry, source string) domain.Product {
	p := domain.Product{
		SKU:          e.SKU,
		Name:         domain.LocalizedText{En: e.TitleEn, Ar: e.TitleAr},
		Description:  domain.LocalizedText{En: e.DescriptionEn, Ar: e.DescriptionAr},
		Currency:     e.Currency,
		Category:     e.Category,
		Brand:        e.Brand,
		Rating:       e.Rating,
		ReviewCount:  e.ReviewCount,
		InStock:      e.Availability == "in_stock",
		Featured:     e.Featured,
		Source:       source,
		AffiliateURL: e.AffiliateURL,
		ImageURLs:    e.Images,
	}

	if v, err := strconv.ParseFloat(e.Price, 64); err == nil {
		p.Price = v
	}

	if e.OriginalPrice != "" {
		if v, err := strconv.ParseFloat(e.OriginalPrice, 64); err == nil && v > p.Price {
			p.OriginalPrice = &v
			p.DiscountPct = math.Round((v-p.Price)/v*1000) / 10
		}
	}

	return p
}
