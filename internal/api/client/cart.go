package client

import (
	"context"
	"fmt"
	"time"

	domain "github.com/souqly/souqly/pkg/types"
)

// CartResponse wraps the session cart and its running total.
type CartResponse struct {
	Items     []domain.CartItem `json:"items"`
	Total     float64           `json:"total"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// GetCart returns the session cart.
func (c *Client) GetCart(ctx context.Context) (*CartResponse, error) {
	var resp CartResponse
	if err := c.get(ctx, "/api/v1/cart", &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AddCartItem adds a product to the session cart.
func (c *Client) AddCartItem(ctx context.Context, productID string, quantity int) (*CartResponse, error) {
	body := map[string]any{"product_id": productID}
	if quantity > 0 {
		body["quantity"] = quantity
	}

	var resp CartResponse
	if err := c.post(ctx, "/api/v1/cart/items", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateCartItem sets the quantity of a cart line. Quantity zero removes it.
func (c *Client) UpdateCartItem(ctx context.Context, productID string, quantity int) (*CartResponse, error) {
	var resp CartResponse
	path := fmt.Sprintf("/api/v1/cart/items/%s", productID)
	if err := c.put(ctx, path, map[string]any{"quantity": quantity}, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RemoveCartItem removes a cart line.
func (c *Client) RemoveCartItem(ctx context.Context, productID string) (*CartResponse, error) {
	var resp CartResponse
	if err := c.del(ctx, fmt.Sprintf("/api/v1/cart/items/%s", productID), &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ClearCart empties the session cart.
func (c *Client) ClearCart(ctx context.Context) error {
	return c.del(ctx, "/api/v1/cart", nil)
}

// Checkout converts the session cart into an order.
func (c *Client) Checkout(ctx context.Context) (*domain.Order, error) {
	var order domain.Order
	if err := c.post(ctx, "/api/v1/checkout", nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// ListOrders returns orders placed in this session, newest first.
func (c *Client) ListOrders(ctx context.Context) ([]domain.Order, error) {
	var orders []domain.Order
	if err := c.get(ctx, "/api/v1/orders", &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// GetOrder returns a single session order by ID.
func (c *Client) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	var order domain.Order
	if err := c.get(ctx, fmt.Sprintf("/api/v1/orders/%s", id), &order); err != nil {
		return nil, err
	}
	return &order, nil
}
