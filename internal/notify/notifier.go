// Package notify defines the notification interface and implementations
// for price alert delivery.
package notify

import (
	"context"
)

// AlertPayload contains the data needed to deliver a price alert.
type AlertPayload struct {
	AlertID      string
	Email        string
	ProductName  string
	ProductID    string
	TargetPrice  string
	CurrentPrice string
	Currency     string
	AffiliateURL string
	ImageURL     string
}

// Notifier defines the interface for delivering price alerts.
type Notifier interface {
	SendAlert(ctx context.Context, alert *AlertPayload) error
	SendBatchAlert(ctx context.Context, alerts []AlertPayload) error
}
