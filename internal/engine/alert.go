package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/souqly/souqly/internal/metrics"
	"github.com/souqly/souqly/internal/notify"
	"github.com/souqly/souqly/internal/store"
	domain "github.com/souqly/souqly/pkg/types"
)

const batchThreshold = 5

// EvaluateAlerts fires enabled alerts whose product price has reached the
// target. An alert inside its cooldown window is skipped, so a price hovering
// at the target does not spam the owner every cycle.
func (eng *Engine) EvaluateAlerts(ctx context.Context) error {
	due, err := eng.store.ListDueAlerts(ctx)
	if err != nil {
		return fmt.Errorf("listing due alerts: %w", err)
	}

	now := time.Now()

	for i := range due {
		a := &due[i]

		recent, err := eng.store.HasRecentNotification(ctx, a.ID, eng.cooldown)
		if err != nil {
			eng.log.Error("cooldown check failed", "alert", a.ID, "error", err)
			continue
		}
		if recent {
			continue
		}

		product, err := eng.store.GetProduct(ctx, a.ProductID)
		if err != nil {
			eng.log.Error("loading alert product failed", "alert", a.ID, "error", err)
			continue
		}

		n := &domain.AlertNotification{
			AlertID:   a.ID,
			ProductID: product.ID,
			Price:     product.Price,
		}
		if err := eng.store.CreateNotification(ctx, n); err != nil {
			eng.log.Error("creating notification failed", "alert", a.ID, "error", err)
			continue
		}

		if err := eng.store.MarkAlertTriggered(ctx, a.ID, now); err != nil {
			eng.log.Error("marking alert triggered failed", "alert", a.ID, "error", err)
		}
	}

	return nil
}

// ProcessNotifications delivers pending notifications, then marks them sent.
// With batchThreshold or more pending they go out as a single batch event.
// Failed deliveries stay pending for the next cycle.
func ProcessNotifications(
	ctx context.Context,
	s store.Store,
	n notify.Notifier,
) error {
	pending, err := s.ListPendingNotifications(ctx)
	if err != nil {
		return fmt.Errorf("listing pending notifications: %w", err)
	}

	if len(pending) == 0 {
		return nil
	}

	if len(pending) >= batchThreshold {
		return sendBatch(ctx, s, n, pending)
	}

	for i := range pending {
		if err := sendSingle(ctx, s, n, &pending[i]); err != nil {
			metrics.NotificationFailuresTotal.Inc()
			return err
		}
	}

	return nil
}

func sendSingle(
	ctx context.Context,
	s store.Store,
	n notify.Notifier,
	pending *domain.AlertNotification,
) error {
	payload, err := buildAlertPayload(ctx, s, pending)
	if err != nil {
		return err
	}

	if err := n.SendAlert(ctx, payload); err != nil {
		return fmt.Errorf("sending alert: %w", err)
	}

	metrics.AlertsFiredTotal.Inc()

	return s.MarkNotificationSent(ctx, pending.ID)
}

func sendBatch(
	ctx context.Context,
	s store.Store,
	n notify.Notifier,
	pending []domain.AlertNotification,
) error {
	payloads := make([]notify.AlertPayload, 0, len(pending))
	sentIDs := make([]string, 0, len(pending))

	for i := range pending {
		payload, err := buildAlertPayload(ctx, s, &pending[i])
		if err != nil {
			continue // alert or product may have been deleted
		}
		payloads = append(payloads, *payload)
		sentIDs = append(sentIDs, pending[i].ID)
	}

	if len(payloads) == 0 {
		return nil
	}

	if err := n.SendBatchAlert(ctx, payloads); err != nil {
		metrics.NotificationFailuresTotal.Inc()
		return fmt.Errorf("sending batch alert: %w", err)
	}

	metrics.AlertsFiredTotal.Add(float64(len(sentIDs)))

	for _, id := range sentIDs {
		if err := s.MarkNotificationSent(ctx, id); err != nil {
			return fmt.Errorf("marking notification %s sent: %w", id, err)
		}
	}

	return nil
}

func buildAlertPayload(
	ctx context.Context,
	s store.Store,
	pending *domain.AlertNotification,
) (*notify.AlertPayload, error) {
	alert, err := s.GetPriceAlert(ctx, pending.AlertID)
	if err != nil {
		return nil, fmt.Errorf("getting alert %s: %w", pending.AlertID, err)
	}

	product, err := s.GetProduct(ctx, pending.ProductID)
	if err != nil {
		return nil, fmt.Errorf("getting product %s: %w", pending.ProductID, err)
	}

	payload := &notify.AlertPayload{
		AlertID:      alert.ID,
		Email:        alert.Email,
		ProductID:    product.ID,
		ProductName:  product.Name.En,
		TargetPrice:  fmt.Sprintf("%.2f", alert.TargetPrice),
		CurrentPrice: fmt.Sprintf("%.2f", pending.Price),
		Currency:     product.Currency,
		AffiliateURL: product.AffiliateURL,
	}
	if len(product.ImageURLs) > 0 {
		payload.ImageURL = product.ImageURLs[0]
	}

	return payload, nil
}
