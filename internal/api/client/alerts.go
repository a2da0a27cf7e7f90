package client

import (
	"context"
	"fmt"

	domain "github.com/souqly/souqly/pkg/types"
)

// CreateAlert registers a price alert for a product in this session.
func (c *Client) CreateAlert(
	ctx context.Context,
	productID string,
	targetPrice float64,
	email string,
) (*domain.PriceAlert, error) {
	body := map[string]any{
		"product_id":   productID,
		"target_price": targetPrice,
	}
	if email != "" {
		body["email"] = email
	}

	var alert domain.PriceAlert
	if err := c.post(ctx, "/api/v1/alerts", body, &alert); err != nil {
		return nil, err
	}
	return &alert, nil
}

// ListAlerts returns price alerts owned by this session.
func (c *Client) ListAlerts(ctx context.Context) ([]domain.PriceAlert, error) {
	var alerts []domain.PriceAlert
	if err := c.get(ctx, "/api/v1/alerts", &alerts); err != nil {
		return nil, err
	}
	return alerts, nil
}

// SetAlertEnabled toggles a price alert on or off.
func (c *Client) SetAlertEnabled(ctx context.Context, id string, enabled bool) error {
	path := fmt.Sprintf("/api/v1/alerts/%s/enabled", id)
	return c.put(ctx, path, map[string]any{"enabled": enabled}, nil)
}

// DeleteAlert removes a price alert.
func (c *Client) DeleteAlert(ctx context.Context, id string) error {
	return c.del(ctx, fmt.Sprintf("/api/v1/alerts/%s", id), nil)
}
