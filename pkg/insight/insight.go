package insight

import (
	domain "github.com/souqly/souqly/pkg/types"
)

// Kind classifies an insight message.
type Kind string

// Insight kinds.
const (
	KindTopRated   Kind = "top_rated"
	KindGreatDeal  Kind = "great_deal"
	KindBigSaving  Kind = "big_saving"
	KindCrowdPick  Kind = "crowd_pick"
	KindLowPrice   Kind = "low_price"
	KindOutOfStock Kind = "out_of_stock"
)

// Insight is a single rule-generated message about a product.
type Insight struct {
	Kind    Kind                 `json:"kind"`
	Message domain.LocalizedText `json:"message"`
}

// rule maps a predicate to the message it produces. Rules are evaluated in
// order; every matching rule contributes one insight.
type rule struct {
	kind    Kind
	matches func(p *domain.Product) bool
	message domain.LocalizedText
}

var rules = []rule{
	{
		kind:    KindTopRated,
		matches: func(p *domain.Product) bool { return p.Rating >= 4.5 },
		message: domain.LocalizedText{
			En: "Highly rated by shoppers",
			Ar: "حاصل على تقييم مرتفع من المتسوقين",
		},
	},
	{
		kind: KindGreatDeal,
		matches: func(p *domain.Product) bool {
			return p.DealScore != nil && *p.DealScore >= 80
		},
		message: domain.LocalizedText{
			En: "One of the best deals in its category right now",
			Ar: "من أفضل العروض في فئته حاليًا",
		},
	},
	{
		kind:    KindBigSaving,
		matches: func(p *domain.Product) bool { return p.DiscountPct >= 30 },
		message: domain.LocalizedText{
			En: "Big saving versus the original price",
			Ar: "توفير كبير مقارنة بالسعر الأصلي",
		},
	},
	{
		kind:    KindCrowdPick,
		matches: func(p *domain.Product) bool { return p.ReviewCount >= 100 },
		message: domain.LocalizedText{
			En: "A popular pick with many reviews",
			Ar: "اختيار شائع مع عدد كبير من المراجعات",
		},
	},
	{
		kind: KindLowPrice,
		matches: func(p *domain.Product) bool {
			return p.OriginalPrice != nil && p.Price < *p.OriginalPrice
		},
		message: domain.LocalizedText{
			En: "Currently below its usual price",
			Ar: "أقل من سعره المعتاد حاليًا",
		},
	},
	{
		kind:    KindOutOfStock,
		matches: func(p *domain.Product) bool { return !p.InStock },
		message: domain.LocalizedText{
			En: "Out of stock - set a price alert to be notified",
			Ar: "غير متوفر حاليًا - أنشئ تنبيه سعر ليصلك إشعار",
		},
	},
}

// For returns every insight whose rule matches the product, in table order.
func For(p *domain.Product) []Insight {
	var out []Insight
	for _, r := range rules {
		if r.matches(p) {
			out = append(out, Insight{Kind: r.kind, Message: r.message})
		}
	}
	return out
}
