package feed

// ProductEntry represents a single product in the affiliate feed wire format.
// Prices arrive as decimal strings; names and descriptions carry both the
// English and Arabic renditions.
type ProductEntry struct {
	SKU           string   `json:"sku"`
	TitleEn       string   `json:"title_en"`
	TitleAr       string   `json:"title_ar,omitempty"`
	DescriptionEn string   `json:"description_en,omitempty"`
	DescriptionAr string   `json:"description_ar,omitempty"`
	Price         string   `json:"price"`
	OriginalPrice string   `json:"original_price,omitempty"`
	Currency      string   `json:"currency"`
	Category      string   `json:"category"`
	Brand         string   `json:"brand,omitempty"`
	Rating        float64  `json:"rating"`
	ReviewCount   int      `json:"review_count"`
	Availability  string   `json:"availability"` // "in_stock" or "out_of_stock"
	Featured      bool     `json:"featured"`
	AffiliateURL  string   `json:"affiliate_url"`
	Images        []string `json:"images,omitempty"`
}
