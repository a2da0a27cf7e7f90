package main

import "errors"

// KnownMetrics is the set of metric names exported by souqly plus recording
// rule names referenced in dashboards and alerts.
var KnownMetrics = map[string]bool{
	// HTTP metrics.
	"souqly_http_request_duration_seconds": true,
	"souqly_http_requests_total":           true,

	// Health metrics.
	"souqly_healthz_up": true,
	"souqly_readyz_up":  true,

	// Ingestion metrics.
	"souqly_ingestion_products_total":   true,
	"souqly_ingestion_errors_total":     true,
	"souqly_ingestion_duration_seconds": true,

	// Scoring metrics.
	"souqly_deal_score_distribution": true,

	// Feed API metrics.
	"souqly_feed_api_calls_total":        true,
	"souqly_feed_daily_usage":            true,
	"souqly_feed_daily_limit_hits_total": true,

	// Session metrics.
	"souqly_session_read_failures_total":  true,
	"souqly_session_write_failures_total": true,

	// Alert metrics.
	"souqly_alerts_fired_total":          true,
	"souqly_notification_failures_total": true,

	// Recording rules.
	"souqly:http_requests:rate5m":      true,
	"souqly:http_errors:rate5m":        true,
	"souqly:ingestion_products:rate5m": true,
	"souqly:ingestion_errors:rate5m":   true,
	"souqly:feed_api_calls:rate5m":     true,
	"souqly:session_failures:rate5m":   true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
