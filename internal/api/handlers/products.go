package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/danielgtaylor/huma/v2"

	"github.com/souqly/souqly/internal/session"
	"github.com/souqly/souqly/internal/store"
	"github.com/souqly/souqly/pkg/catalog"
	"github.com/souqly/souqly/pkg/insight"
	"github.com/souqly/souqly/pkg/recency"
	domain "github.com/souqly/souqly/pkg/types"
)

// ProductsHandler handles catalog query endpoints.
type ProductsHandler struct {
	store          store.Store
	sessions       *session.Manager
	recentlyViewed int
}

// NewProductsHandler creates a new ProductsHandler. recentlyViewedSize is
// the per-session recently viewed list capacity.
func NewProductsHandler(s store.Store, sess *session.Manager, recentlyViewedSize int) *ProductsHandler {
	return &ProductsHandler{store: s, sessions: sess, recentlyViewed: recentlyViewedSize}
}

// --- Input/Output types ---

// ListProductsInput is the input for listing products with optional filters.
type ListProductsInput struct {
	Category  string  `query:"category"   doc:"Filter by category slugs (comma-separated)"`
	Brand     string  `query:"brand"      doc:"Filter by brands (comma-separated)"`
	PriceMin  float64 `query:"price_min"  doc:"Minimum price (inclusive)"                   minimum:"0"`
	PriceMax  float64 `query:"price_max"  doc:"Maximum price (inclusive)"                   minimum:"0"`
	MinRating float64 `query:"min_rating" doc:"Minimum average rating"                      minimum:"0" maximum:"5"`
	InStock   bool    `query:"in_stock"   doc:"Only in-stock products"`
	Discount  bool    `query:"discount"   doc:"Only discounted products"`
	Featured  bool    `query:"featured"   doc:"Only featured products"`
	Limit     int     `query:"limit"      doc:"Number of results (default 24)"              minimum:"1" maximum:"200"`
	Offset    int     `query:"offset"     doc:"Pagination offset"                           minimum:"0"`
	Sort      string  `query:"sort"       doc:"Sort order"                                  enum:"featured,rating,price_asc,price_desc,newest,"`
}

// ListProductsOutput is the response for listing products.
type ListProductsOutput struct {
	Body struct {
		Products []domain.Product `json:"products"`
		Total    int              `json:"total"`
		Limit    int              `json:"limit"`
		Offset   int              `json:"offset"`
	}
}

// GetProductInput is the input for getting a single product.
type GetProductInput struct {
	ID        string `path:"id"             doc:"Product UUID"`
	SessionID string `header:"X-Session-ID" doc:"Browsing session ID (optional)"`
}

// GetProductOutput is the response for getting a single product.
type GetProductOutput struct {
	Body domain.Product
}

// ProductInsightsInput is the input for the product insights endpoint.
type ProductInsightsInput struct {
	ID string `path:"id" doc:"Product UUID"`
}

// ProductInsightsOutput is the response for the product insights endpoint.
type ProductInsightsOutput struct {
	Body struct {
		Insights []insight.Insight `json:"insights"`
		Score    insight.Breakdown `json:"score"`
	}
}

// splitCSV splits a comma-separated filter value, dropping empty entries.
func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// --- Handlers ---

// ListProducts returns catalog products with optional filters and sorting.
func (h *ProductsHandler) ListProducts(
	ctx context.Context,
	input *ListProductsInput,
) (*ListProductsOutput, error) {
	filter := catalog.FilterState{
		Categories: splitCSV(input.Category),
		Brands:     splitCSV(input.Brand),
		PriceMin:   input.PriceMin,
		PriceMax:   input.PriceMax,
		MinRating:  input.MinRating,
	}
	if input.InStock {
		filter.Stock = catalog.StockInStock
	}
	if err := filter.Validate(); err != nil {
		return nil, huma.Error400BadRequest("invalid filter: " + err.Error())
	}

	q := &store.ProductQuery{
		Categories:   filter.Categories,
		Brands:       filter.Brands,
		InStockOnly:  input.InStock,
		DiscountOnly: input.Discount,
		FeaturedOnly: input.Featured,
		Limit:        input.Limit,
		Offset:       input.Offset,
		OrderBy:      domain.SortKey(input.Sort),
	}

	if input.PriceMin != 0 {
		q.PriceMin = &input.PriceMin
	}

	if input.PriceMax != 0 {
		q.PriceMax = &input.PriceMax
	}

	if input.MinRating != 0 {
		q.MinRating = &input.MinRating
	}

	products, total, err := h.store.ListProducts(ctx, q)
	if err != nil {
		return nil, huma.Error500InternalServerError("product query failed: " + err.Error())
	}

	if products == nil {
		products = []domain.Product{}
	}

	resp := &ListProductsOutput{}
	resp.Body.Products = products
	resp.Body.Total = total
	resp.Body.Limit = q.Limit
	resp.Body.Offset = q.Offset

	return resp, nil
}

// GetProduct returns a single product by ID. When the request carries a
// session ID the product is recorded in that session's recently viewed list.
func (h *ProductsHandler) GetProduct(
	ctx context.Context,
	input *GetProductInput,
) (*GetProductOutput, error) {
	p, err := h.store.GetProduct(ctx, input.ID)
	if err != nil {
		return nil, huma.Error404NotFound("product not found")
	}

	if input.SessionID != "" {
		l := recency.NewList(h.recentlyViewed)
		l.Restore(h.sessions.RecentlyViewed(ctx, input.SessionID))
		l.Record(p.ID)
		h.sessions.SaveRecentlyViewed(ctx, input.SessionID, l.Items())
	}

	return &GetProductOutput{Body: *p}, nil
}

// GetProductInsights returns rule-based insight badges and the deal score
// breakdown for a product.
func (h *ProductsHandler) GetProductInsights(
	ctx context.Context,
	input *ProductInsightsInput,
) (*ProductInsightsOutput, error) {
	p, err := h.store.GetProduct(ctx, input.ID)
	if err != nil {
		return nil, huma.Error404NotFound("product not found")
	}

	insights := insight.For(p)
	if insights == nil {
		insights = []insight.Insight{}
	}

	resp := &ProductInsightsOutput{}
	resp.Body.Insights = insights
	resp.Body.Score = insight.Score(p, insight.DefaultWeights())

	return resp, nil
}

// RegisterProductRoutes registers catalog endpoints with the Huma API.
func RegisterProductRoutes(api huma.API, h *ProductsHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-products",
		Method:      http.MethodGet,
		Path:        "/api/v1/products",
		Summary:     "List products",
		Description: "Returns catalog products with optional category, brand, price, rating, and availability filters.",
		Tags:        []string{"catalog"},
	}, h.ListProducts)

	huma.Register(api, huma.Operation{
		OperationID: "get-product",
		Method:      http.MethodGet,
		Path:        "/api/v1/products/{id}",
		Summary:     "Get a product by ID",
		Description: "Returns a single product by its UUID. Records the view in the caller's session when a session ID is provided.",
		Tags:        []string{"catalog"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetProduct)

	huma.Register(api, huma.Operation{
		OperationID: "get-product-insights",
		Method:      http.MethodGet,
		Path:        "/api/v1/products/{id}/insights",
		Summary:     "Get product insights",
		Description: "Returns rule-based insight badges and the deal score breakdown for a product.",
		Tags:        []string{"catalog"},
		Errors:      []int{http.StatusNotFound},
	}, h.GetProductInsights)
}
