package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToProducts(t *testing.T) {
	t.Parallel()

	entries := []ProductEntry{
		{
			SKU:           "SKU-1",
			TitleEn:       "Espresso Machine",
			TitleAr:       "ماكينة إسبريسو",
			DescriptionEn: "15-bar pump espresso machine.",
			Price:         "199.99",
			OriginalPrice: "249.99",
			Currency:      "USD",
			Category:      "home",
			Brand:         "BrewCraft",
			Rating:        4.4,
			ReviewCount:   87,
			Availability:  "in_stock",
			Featured:      true,
			AffiliateURL:  "https://partner.example.com/p/SKU-1",
			Images:        []string{"https://img.example.com/1.jpg"},
		},
		{
			SKU:          "SKU-2",
			TitleEn:      "Hand Grinder",
			Price:        "35.00",
			Currency:     "USD",
			Category:     "home",
			Availability: "out_of_stock",
		},
	}

	products := ToProducts(entries, "mockfeed")
	require.Len(t, products, 2)

	p := products[0]
	assert.Equal(t, "SKU-1", p.SKU)
	assert.Equal(t, "Espresso Machine", p.Name.En)
	assert.Equal(t, "ماكينة إسبريسو", p.Name.Ar)
	assert.InDelta(t, 199.99, p.Price, 0.001)
	require.NotNil(t, p.OriginalPrice)
	assert.InDelta(t, 249.99, *p.OriginalPrice, 0.001)
	assert.InDelta(t, 20.0, p.DiscountPct, 0.1)
	assert.True(t, p.InStock)
	assert.True(t, p.Featured)
	assert.Equal(t, "mockfeed", p.Source)

	p2 := products[1]
	assert.Nil(t, p2.OriginalPrice)
	assert.Zero(t, p2.DiscountPct)
	assert.False(t, p2.InStock)
}

func TestToProduct_PriceEdgeCases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		price        string
		original     string
		wantPrice    float64
		wantOriginal bool
		wantDiscount float64
	}{
		{
			name:      "unparseable price defaults to zero",
			price:     "not-a-number",
			wantPrice: 0,
		},
		{
			name:         "original below price is ignored",
			price:        "50.00",
			original:     "40.00",
			wantPrice:    50,
			wantOriginal: false,
		},
		{
			name:         "original equal to price is ignored",
			price:        "50.00",
			original:     "50.00",
			wantPrice:    50,
			wantOriginal: false,
		},
		{
			name:         "discount rounded to one decimal",
			price:        "66.67",
			original:     "100.00",
			wantPrice:    66.67,
			wantOriginal: true,
			wantDiscount: 33.3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := ProductEntry{SKU: "X", Price: tt.price, OriginalPrice: tt.original}
			p := toProduct(&e, "test")

			assert.InDelta(t, tt.wantPrice, p.Price, 0.001)
			if tt.wantOriginal {
				require.NotNil(t, p.OriginalPrice)
				assert.InDelta(t, tt.wantDiscount, p.DiscountPct, 0.01)
			} else {
				assert.Nil(t, p.OriginalPrice)
			}
		})
	}
}
