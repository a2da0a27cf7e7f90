package client

import (
	"context"
	"fmt"

	"github.com/souqly/souqly/pkg/compare"
	domain "github.com/souqly/souqly/pkg/types"
)

// CompareResponse wraps the comparison set, its aggregate stats, and the
// per-attribute winners. Added is only present on add responses; false
// means the set was full or the product was already a member.
type CompareResponse struct {
	Added    *bool                        `json:"added,omitempty"`
	Products []domain.Product             `json:"products"`
	Stats    compare.Stats                `json:"stats"`
	Winners  map[compare.Attribute]string `json:"winners"`
}

// GetCompare returns the session comparison set.
func (c *Client) GetCompare(ctx context.Context) (*CompareResponse, error) {
	var resp CompareResponse
	if err := c.get(ctx, "/api/v1/compare", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AddToCompare adds a product to the session comparison set.
func (c *Client) AddToCompare(ctx context.Context, productID string) (*CompareResponse, error) {
	var resp CompareResponse
	if err := c.post(ctx, fmt.Sprintf("/api/v1/compare/%s", productID), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RemoveFromCompare removes a product from the session comparison set.
func (c *Client) RemoveFromCompare(ctx context.Context, productID string) (*CompareResponse, error) {
	var resp CompareResponse
	if err := c.del(ctx, fmt.Sprintf("/api/v1/compare/%s", productID), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ClearCompare empties the session comparison set.
func (c *Client) ClearCompare(ctx context.Context) error {
	return c.del(ctx, "/api/v1/compare", nil)
}

// Wishlist returns the session wishlist in insertion order.
func (c *Client) Wishlist(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.get(ctx, "/api/v1/wishlist", &products); err != nil {
		return nil, err
	}
	return products, nil
}

// AddToWishlist adds a product to the session wishlist.
func (c *Client) AddToWishlist(ctx context.Context, productID string) error {
	return c.post(ctx, fmt.Sprintf("/api/v1/wishlist/%s", productID), nil, nil)
}

// RemoveFromWishlist removes a product from the session wishlist.
func (c *Client) RemoveFromWishlist(ctx context.Context, productID string) error {
	return c.del(ctx, fmt.Sprintf("/api/v1/wishlist/%s", productID), nil)
}

// RecentlyViewed returns the session recently viewed products, most recent first.
func (c *Client) RecentlyViewed(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.get(ctx, "/api/v1/recently-viewed", &products); err != nil {
		return nil, err
	}
	return products, nil
}

// RecentSearches returns the session recent search terms, most recent first.
func (c *Client) RecentSearches(ctx context.Context) ([]string, error) {
	var resp struct {
		Searches []string `json:"searches"`
	}
	if err := c.get(ctx, "/api/v1/recent-searches", &resp); err != nil {
		return nil, err
	}
	return resp.Searches, nil
}
