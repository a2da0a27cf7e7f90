// Package insight computes the deterministic deal score and the rule-based
// product insight messages shown in the storefront. There is no model
// behind either; both are threshold tables over catalog fields.
package insight

import (
	"math"

	domain "github.com/souqly/souqly/pkg/types"
)

// Weights defines the relative importance of each deal score factor.
type Weights struct {
	Discount   float64
	Rating     float64
	Popularity float64
	Freshness  float64
}

// DefaultWeights returns the default deal score weights.
func DefaultWeights() Weights {
	return Weights{
		Discount:   0.40,
		Rating:     0.35,
		Popularity: 0.15,
		Freshness:  0.10,
	}
}

// Breakdown shows per-factor scores on a 0-100 scale plus the weighted total.
type Breakdown struct {
	Discount   float64 `json:"discount"`
	Rating     float64 `json:"rating"`
	Popularity float64 `json:"popularity"`
	Freshness  float64 `json:"freshness"`
	Total      int     `json:"total"`
}

// Score computes the composite deal score for a product. The result is
// deterministic: the same product fields always produce the same score.
func Score(p *domain.Product, w Weights) Breakdown {
	b := Breakdown{
		Discount:   discountScore(p.DiscountPct),
		Rating:     ratingScore(p.Rating),
		Popularity: popularityScore(p.ReviewCount),
		Freshness:  freshnessScore(p),
	}

	total := b.Discount*w.Discount +
		b.Rating*w.Rating +
		b.Popularity*w.Popularity +
		b.Freshness*w.Freshness

	b.Total = int(math.Round(total))
	if b.Total > 100 {
		b.Total = 100
	}
	if b.Total < 0 {
		b.Total = 0
	}
	return b
}

// discountScore maps a discount percentage to 0-100. 50% off or better
// saturates the scale.
func discountScore(pct float64) float64 {
	if pct <= 0 {
		return 0
	}
	if pct >= 50 {
		return 100
	}
	return pct * 2
}

// ratingScore maps the 0-5 star rating linearly to 0-100.
func ratingScore(rating float64) float64 {
	if rating <= 0 {
		return 0
	}
	if rating >= 5 {
		return 100
	}
	return rating * 20
}

// popularityScore rewards review volume on a saturating curve; 200 reviews
// is treated as fully established.
func popularityScore(reviews int) float64 {
	if reviews <= 0 {
		return 0
	}
	if reviews >= 200 {
		return 100
	}
	return float64(reviews) / 2
}

// freshnessScore gives featured in-stock products a modest boost. It is the
// smallest factor; the score should track deal quality, not merchandising.
func freshnessScore(p *domain.Product) float64 {
	var s float64
	if p.Featured {
		s += 60
	}
	if p.InStock {
		s += 40
	}
	return s
}
