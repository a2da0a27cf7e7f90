// Package domain defines the core business types for the souqly storefront.
package domain

import (
	"time"
)

// SortKey identifies a product sort order.
type SortKey string

// Sort key constants.
const (
	SortFeatured  SortKey = "featured"
	SortRating    SortKey = "rating"
	SortPriceAsc  SortKey = "price_asc"
	SortPriceDesc SortKey = "price_desc"
	SortNewest    SortKey = "newest"
)

// LocalizedText holds a bilingual (English/Arabic) string pair.
type LocalizedText struct {
	En string `json:"en"           db:"en"`
	Ar string `json:"ar,omitempty" db:"ar"`
}

// Get returns the text for the given language tag, falling back to English.
func (t LocalizedText) Get(lang string) string {
	if lang == "ar" && t.Ar != "" {
		return t.Ar
	}
	return t.En
}

// Product represents a catalog item sourced from an affiliate feed.
type Product struct {
	ID          string        `json:"id"                    db:"id"`
	SKU         string        `json:"sku"                   db:"sku"`
	Name        LocalizedText `json:"name"                  db:"name"`
	Description LocalizedText `json:"description,omitempty" db:"description"`

	// Pricing
	Price         float64  `json:"price"                    db:"price"`
	OriginalPrice *float64 `json:"original_price,omitempty" db:"original_price"`
	DiscountPct   float64  `json:"discount_pct"             db:"discount_pct"`
	Currency      string   `json:"currency"                 db:"currency"`

	// Classification
	Category string `json:"category"        db:"category"`
	Brand    string `json:"brand,omitempty" db:"brand"`

	// Community signal
	Rating      float64 `json:"rating"       db:"rating"`
	ReviewCount int     `json:"review_count" db:"review_count"`

	// Deal score (0-100), recomputed on ingestion and rescore.
	DealScore *int `json:"deal_score,omitempty" db:"deal_score"`

	// Flags
	InStock  bool `json:"in_stock" db:"in_stock"`
	Featured bool `json:"featured" db:"featured"`

	// Affiliate provenance
	Source       string   `json:"source"               db:"source"`
	AffiliateURL string   `json:"affiliate_url"        db:"affiliate_url"`
	ImageURLs    []string `json:"image_urls,omitempty" db:"image_urls"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// EffectivePrice returns the price used for range filters and comparisons.
// A product with no listed price compares as 0 rather than being dropped.
func (p *Product) EffectivePrice() float64 {
	return p.Price
}

// HasDiscount reports whether the product carries a positive discount.
func (p *Product) HasDiscount() bool {
	return p.DiscountPct > 0
}

// Category represents a catalog category.
type Category struct {
	Slug     string        `json:"slug"             db:"slug"`
	Name     LocalizedText `json:"name"             db:"name"`
	Parent   string        `json:"parent,omitempty" db:"parent"`
	Position int           `json:"position"         db:"position"`
}

// Review represents a customer review of a product.
type Review struct {
	ID        string    `json:"id"         db:"id"`
	ProductID string    `json:"product_id" db:"product_id"`
	Author    string    `json:"author"     db:"author"`
	Rating    int       `json:"rating"     db:"rating"`
	Body      string    `json:"body"       db:"body"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// PriceAlert is a saved request to be notified when a product's price
// drops to or below a target.
type PriceAlert struct {
	ID              string     `json:"id"                          db:"id"`
	SessionID       string     `json:"session_id,omitempty"        db:"session_id"`
	Email           string     `json:"email,omitempty"             db:"email"`
	ProductID       string     `json:"product_id"                  db:"product_id"`
	TargetPrice     float64    `json:"target_price"                db:"target_price"`
	Enabled         bool       `json:"enabled"                     db:"enabled"`
	LastTriggeredAt *time.Time `json:"last_triggered_at,omitempty" db:"last_triggered_at"`
	CreatedAt       time.Time  `json:"created_at"                  db:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"                  db:"updated_at"`
}

// AlertNotification records a fired price alert awaiting (or past) delivery.
type AlertNotification struct {
	ID        string    `json:"id"         db:"id"`
	AlertID   string    `json:"alert_id"   db:"alert_id"`
	ProductID string    `json:"product_id" db:"product_id"`
	Price     float64   `json:"price"      db:"price"`
	Notified  bool      `json:"notified"   db:"notified"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// OrderStatus represents the lifecycle state of a simulated order.
type OrderStatus string

// Order status constants. Checkout is a simulation; orders never progress
// past placed.
const (
	OrderPlaced OrderStatus = "placed"
)

// OrderItem is a priced line in an order. Unit price is snapshotted at
// checkout so later catalog updates do not rewrite history.
type OrderItem struct {
	ProductID string  `json:"product_id" db:"product_id"`
	Name      string  `json:"name"       db:"name"`
	Quantity  int     `json:"quantity"   db:"quantity"`
	UnitPrice float64 `json:"unit_price" db:"unit_price"`
}

// Subtotal returns the line total for an order item.
func (i OrderItem) Subtotal() float64 {
	return i.UnitPrice * float64(i.Quantity)
}

// Order represents a simulated checkout.
type Order struct {
	ID        string      `json:"id"         db:"id"`
	SessionID string      `json:"session_id" db:"session_id"`
	Items     []OrderItem `json:"items"      db:"items"`
	Total     float64     `json:"total"      db:"total"`
	Currency  string      `json:"currency"   db:"currency"`
	Status    OrderStatus `json:"status"     db:"status"`
	CreatedAt time.Time   `json:"created_at" db:"created_at"`
}

// CartItem is a product reference plus quantity held in a session cart.
type CartItem struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

// Cart is the session-scoped shopping cart. It is a convenience cache, not
// a system of record; persistence is best-effort.
type Cart struct {
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Total returns the cart grand total.
func (c *Cart) Total() float64 {
	var total float64
	for _, it := range c.Items {
		total += it.UnitPrice * float64(it.Quantity)
	}
	return total
}

// JobRun records a single execution of a scheduled job.
type JobRun struct {
	ID           string     `json:"id"                      db:"id"`
	JobName      string     `json:"job_name"                db:"job_name"`
	StartedAt    time.Time  `json:"started_at"              db:"started_at"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"  db:"completed_at"`
	Status       string     `json:"status"                  db:"status"`
	ErrorText    string     `json:"error_text,omitempty"    db:"error_text"`
	RowsAffected *int       `json:"rows_affected,omitempty" db:"rows_affected"`
}

// DashboardStats holds a precomputed snapshot of admin dashboard aggregates.
type DashboardStats struct {
	ProductsTotal    int     `json:"products_total"    db:"products_total"`
	ProductsInStock  int     `json:"products_in_stock" db:"products_in_stock"`
	ProductsFeatured int     `json:"products_featured" db:"products_featured"`
	ProductsOnSale   int     `json:"products_on_sale"  db:"products_on_sale"`
	CategoriesTotal  int     `json:"categories_total"  db:"categories_total"`
	ReviewsTotal     int     `json:"reviews_total"     db:"reviews_total"`
	AlertsTotal      int     `json:"alerts_total"      db:"alerts_total"`
	AlertsEnabled    int     `json:"alerts_enabled"    db:"alerts_enabled"`
	AlertsPending    int     `json:"alerts_pending"    db:"alerts_pending"`
	OrdersTotal      int     `json:"orders_total"      db:"orders_total"`
	AverageRating    float64 `json:"average_rating"    db:"average_rating"`
}
