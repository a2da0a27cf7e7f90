// Package engine orchestrates the background pipeline: feed ingestion, deal
// scoring, and price alert delivery.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/souqly/souqly/internal/feed"
	"github.com/souqly/souqly/internal/metrics"
	"github.com/souqly/souqly/internal/notify"
	"github.com/souqly/souqly/internal/store"
	"github.com/souqly/souqly/pkg/insight"
	domain "github.com/souqly/souqly/pkg/types"
)

const (
	jobIngestion = "ingestion"
	jobRescore   = "rescore"

	jobStatusOK    = "ok"
	jobStatusError = "error"
)

// Engine orchestrates ingestion, scoring, and alerting.
type Engine struct {
	store    store.Store
	feed     feed.Client
	notifier notify.Notifier
	log      *slog.Logger

	paginator *feed.Paginator
	source    string
	cooldown  time.Duration
	weights   insight.Weights
}

// NewEngine creates a new Engine with injected dependencies.
func NewEngine(
	s store.Store,
	f feed.Client,
	n notify.Notifier,
	opts ...EngineOption,
) *Engine {
	eng := &Engine{
		store:    s,
		feed:     f,
		notifier: n,
		log:      slog.Default(),
		source:   "feed",
		cooldown: 24 * time.Hour,
		weights:  insight.DefaultWeights(),
	}
	for _, opt := range opts {
		opt(eng)
	}
	return eng
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithPaginator sets the paginator for multi-page feed fetches.
func WithPaginator(p *feed.Paginator) EngineOption {
	return func(e *Engine) {
		e.paginator = p
	}
}

// WithSource sets the source tag products are ingested under.
func WithSource(source string) EngineOption {
	return func(e *Engine) {
		e.source = source
	}
}

// WithAlertCooldown sets the minimum interval between notifications for the
// same alert.
func WithAlertCooldown(d time.Duration) EngineOption {
	return func(e *Engine) {
		e.cooldown = d
	}
}

// WithScoreWeights overrides the deal score weighting.
func WithScoreWeights(w insight.Weights) EngineOption {
	return func(e *Engine) {
		e.weights = w
	}
}

// RunIngestion executes a full ingestion cycle: fetch the feed, upsert
// products, score them, then evaluate and deliver price alerts. The cycle is
// recorded as a job run.
func (eng *Engine) RunIngestion(ctx context.Context) error {
	start := time.Now()
	defer func() {
		metrics.IngestionDuration.Observe(time.Since(start).Seconds())
	}()

	runID, err := eng.store.InsertJobRun(ctx, jobIngestion)
	if err != nil {
		// Bookkeeping only; the cycle still runs.
		eng.log.Warn("recording job run failed", "error", err)
	}

	ingested, runErr := eng.ingest(ctx)

	if runID != "" {
		status, errText := jobStatusOK, ""
		if runErr != nil {
			status = jobStatusError
			errText = runErr.Error()
		}
		if err := eng.store.CompleteJobRun(ctx, runID, status, errText, ingested); err != nil {
			eng.log.Warn("completing job run failed", "error", err)
		}
	}

	if runErr != nil {
		return runErr
	}

	// Alerts run even when ingestion brought in nothing new: prices may have
	// dropped on products ingested in earlier cycles.
	if err := eng.EvaluateAlerts(ctx); err != nil {
		eng.log.Error("alert evaluation failed", "error", err)
	}
	if err := ProcessNotifications(ctx, eng.store, eng.notifier); err != nil {
		eng.log.Error("notification processing failed", "error", err)
	}

	return nil
}

func (eng *Engine) ingest(ctx context.Context) (int, error) {
	products, err := eng.fetchAll(ctx)
	if err != nil {
		if errors.Is(err, feed.ErrDailyLimitReached) {
			eng.log.Warn("daily feed quota reached, skipping cycle")
			return 0, nil
		}
		metrics.IngestionErrorsTotal.Inc()
		return 0, fmt.Errorf("fetching feed: %w", err)
	}

	var ingested int
	for i := range products {
		if ctx.Err() != nil {
			return ingested, ctx.Err()
		}
		if eng.processProduct(ctx, &products[i]) {
			ingested++
		}
	}

	eng.log.Info("ingestion cycle complete",
		"fetched", len(products),
		"ingested", ingested,
	)

	return ingested, nil
}

func (eng *Engine) fetchAll(ctx context.Context) ([]domain.Product, error) {
	if eng.paginator != nil {
		result, err := eng.paginator.Paginate(ctx, feed.FetchRequest{})
		if err != nil {
			return nil, err
		}
		eng.log.Info("paginated fetch complete",
			"pages_used", result.PagesUsed,
			"total_seen", result.TotalSeen,
			"stopped_at", result.StoppedAt,
		)
		return result.Products, nil
	}

	resp, err := eng.feed.Fetch(ctx, feed.FetchRequest{})
	if err != nil {
		return nil, err
	}
	return feed.ToProducts(resp.Entries, eng.source), nil
}

// processProduct upserts one product and refreshes its deal score. A failed
// upsert is logged and skipped so one bad entry cannot stall the cycle.
func (eng *Engine) processProduct(ctx context.Context, p *domain.Product) bool {
	if err := eng.store.UpsertProduct(ctx, p); err != nil {
		eng.log.Error("upsert failed", "sku", p.SKU, "error", err)
		metrics.IngestionErrorsTotal.Inc()
		return false
	}

	metrics.IngestionProductsTotal.Inc()

	score := insight.Score(p, eng.weights)
	metrics.ScoringDistribution.Observe(float64(score.Total))

	if err := eng.store.UpdateDealScore(ctx, p.ID, score.Total); err != nil {
		eng.log.Error("deal score update failed", "sku", p.SKU, "error", err)
	}

	return true
}

// RunRescore recomputes deal scores for products that have none yet,
// typically after a weight change or a manual import.
func (eng *Engine) RunRescore(ctx context.Context) error {
	runID, err := eng.store.InsertJobRun(ctx, jobRescore)
	if err != nil {
		eng.log.Warn("recording job run failed", "error", err)
	}

	scored, runErr := RescoreUnscored(ctx, eng.store, eng.weights)

	if runID != "" {
		status, errText := jobStatusOK, ""
		if runErr != nil {
			status = jobStatusError
			errText = runErr.Error()
		}
		if err := eng.store.CompleteJobRun(ctx, runID, status, errText, scored); err != nil {
			eng.log.Warn("completing job run failed", "error", err)
		}
	}

	return runErr
}
