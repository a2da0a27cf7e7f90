package client

import (
	"context"
	"net/url"
	"strconv"

	domain "github.com/souqly/souqly/pkg/types"
)

// TriggerIngestion runs a full feed ingestion cycle.
func (c *Client) TriggerIngestion(ctx context.Context) error {
	return c.post(ctx, "/api/v1/admin/ingest", nil, nil)
}

// TriggerRescore recomputes deal scores for products missing one.
func (c *Client) TriggerRescore(ctx context.Context) error {
	return c.post(ctx, "/api/v1/admin/rescore", nil, nil)
}

// ListJobRuns returns recent scheduler job runs, newest first, optionally
// filtered by job name.
func (c *Client) ListJobRuns(ctx context.Context, jobName string, limit int) ([]domain.JobRun, error) {
	q := url.Values{}
	if jobName != "" {
		q.Set("job", jobName)
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	path := "/api/v1/admin/jobs"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var runs []domain.JobRun
	if err := c.get(ctx, path, &runs); err != nil {
		return nil, err
	}
	return runs, nil
}

// DashboardStats returns catalog, review, alert, and order aggregates.
func (c *Client) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	var stats domain.DashboardStats
	if err := c.get(ctx, "/api/v1/admin/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
