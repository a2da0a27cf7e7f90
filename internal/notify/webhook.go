package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const maxBatchSize = 20

// WebhookNotifier implements Notifier by POSTing JSON events to a configured
// webhook endpoint.
type WebhookNotifier struct {
	webhookURL string
	client     *http.Client
}

// NewWebhookNotifier creates a new WebhookNotifier.
func NewWebhookNotifier(webhookURL string, opts ...WebhookOption) *WebhookNotifier {
	w := &WebhookNotifier{
		webhookURL: webhookURL,
		client:     http.DefaultClient,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// WebhookOption configures a WebhookNotifier.
type WebhookOption func(*WebhookNotifier)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) WebhookOption {
	return func(w *WebhookNotifier) {
		w.client = c
	}
}

// webhookEvent is the JSON body posted to the webhook endpoint.
type webhookEvent struct {
	Event  string         `json:"event"`
	Alerts []webhookAlert `json:"alerts"`
}

type webhookAlert struct {
	AlertID      string `json:"alert_id"`
	Email        string `json:"email,omitempty"`
	ProductID    string `json:"product_id"`
	ProductName  string `json:"product_name"`
	TargetPrice  string `json:"target_price"`
	CurrentPrice string `json:"current_price"`
	Currency     string `json:"currency"`
	AffiliateURL string `json:"affiliate_url,omitempty"`
	ImageURL     string `json:"image_url,omitempty"`
}

// SendAlert delivers a single price alert.
func (w *WebhookNotifier) SendAlert(ctx context.Context, alert *AlertPayload) error {
	return w.post(ctx, webhookEvent{
		Event:  "price_alert",
		Alerts: []webhookAlert{toWebhookAlert(alert)},
	})
}

// SendBatchAlert delivers multiple alerts as one event. Batches above
// maxBatchSize are truncated; the remainder is picked up on the next cycle
// because undelivered notifications stay pending.
func (w *WebhookNotifier) SendBatchAlert(ctx context.Context, alerts []AlertPayload) error {
	limit := min(len(alerts), maxBatchSize)

	out := make([]webhookAlert, 0, limit)
	for i := range limit {
		out = append(out, toWebhookAlert(&alerts[i]))
	}

	return w.post(ctx, webhookEvent{
		Event:  "price_alert_batch",
		Alerts: out,
	})
}

func toWebhookAlert(a *AlertPayload) webhookAlert {
	return webhookAlert{
		AlertID:      a.AlertID,
		Email:        a.Email,
		ProductID:    a.ProductID,
		ProductName:  a.ProductName,
		TargetPrice:  a.TargetPrice,
		CurrentPrice: a.CurrentPrice,
		Currency:     a.Currency,
		AffiliateURL: a.AffiliateURL,
		ImageURL:     a.ImageURL,
	}
}

func (w *WebhookNotifier) post(ctx context.Context, event webhookEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshaling webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		w.webhookURL,
		bytes.NewReader(body),
	)
	if err != nil {
		return fmt.Errorf("creating webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("webhook rate limited (429)")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return fmt.Errorf("webhook returned %d (body unreadable)", resp.StatusCode)
		}
		return fmt.Errorf("webhook returned %d: %s", resp.StatusCode, respBody)
	}

	return nil
}
