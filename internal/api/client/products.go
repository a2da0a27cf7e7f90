package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/souqly/souqly/pkg/insight"
	domain "github.com/souqly/souqly/pkg/types"
)

// ProductsResponse wraps a paginated product listing response.
type ProductsResponse struct {
	Products []domain.Product `json:"products"`
	Total    int              `json:"total"`
	Limit    int              `json:"limit"`
	Offset   int              `json:"offset"`
}

// ListProductsParams defines query parameters for catalog queries.
type ListProductsParams struct {
	Categories []string
	Brands     []string
	PriceMin   float64
	PriceMax   float64
	MinRating  float64
	InStock    bool
	Discount   bool
	Featured   bool
	Sort       string
	Limit      int
	Offset     int
}

// ListProducts returns catalog products matching the given parameters.
func (c *Client) ListProducts(
	ctx context.Context,
	params *ListProductsParams,
) (*ProductsResponse, error) {
	q := url.Values{}
	if len(params.Categories) > 0 {
		q.Set("category", strings.Join(params.Categories, ","))
	}
	if len(params.Brands) > 0 {
		q.Set("brand", strings.Join(params.Brands, ","))
	}
	if params.PriceMin > 0 {
		q.Set("price_min", strconv.FormatFloat(params.PriceMin, 'f', -1, 64))
	}
	if params.PriceMax > 0 {
		q.Set("price_max", strconv.FormatFloat(params.PriceMax, 'f', -1, 64))
	}
	if params.MinRating > 0 {
		q.Set("min_rating", strconv.FormatFloat(params.MinRating, 'f', -1, 64))
	}
	if params.InStock {
		q.Set("in_stock", "true")
	}
	if params.Discount {
		q.Set("discount", "true")
	}
	if params.Featured {
		q.Set("featured", "true")
	}
	if params.Sort != "" {
		q.Set("sort", params.Sort)
	}
	if params.Limit > 0 {
		q.Set("limit", strconv.Itoa(params.Limit))
	}
	if params.Offset > 0 {
		q.Set("offset", strconv.Itoa(params.Offset))
	}

	path := "/api/v1/products"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var resp ProductsResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetProduct returns a single product by ID.
func (c *Client) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	var p domain.Product
	if err := c.get(ctx, fmt.Sprintf("/api/v1/products/%s", id), &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// InsightsResponse wraps the insight badges and score breakdown of a product.
type InsightsResponse struct {
	Insights []insight.Insight `json:"insights"`
	Score    insight.Breakdown `json:"score"`
}

// GetProductInsights returns insight badges and the deal score breakdown for a product.
func (c *Client) GetProductInsights(ctx context.Context, id string) (*InsightsResponse, error) {
	var resp InsightsResponse
	if err := c.get(ctx, fmt.Sprintf("/api/v1/products/%s/insights", id), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// SearchResponse wraps a catalog search response.
type SearchResponse struct {
	Products []domain.Product `json:"products"`
	Query    string           `json:"query"`
	Total    int              `json:"total"`
}

// SearchProducts searches the catalog by bilingual term.
func (c *Client) SearchProducts(ctx context.Context, term string, limit int) (*SearchResponse, error) {
	q := url.Values{}
	q.Set("q", term)
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	var resp SearchResponse
	if err := c.get(ctx, "/api/v1/search?"+q.Encode(), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListCategories returns the category tree ordered by position.
func (c *Client) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var resp struct {
		Categories []domain.Category `json:"categories"`
	}
	if err := c.get(ctx, "/api/v1/categories", &resp); err != nil {
		return nil, err
	}
	return resp.Categories, nil
}
