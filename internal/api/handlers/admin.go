package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/souqly/souqly/internal/store"
	domain "github.com/souqly/souqly/pkg/types"
)

const defaultJobHistoryLimit = 20

// Ingester defines the interface for triggering a feed ingestion cycle.
type Ingester interface {
	RunIngestion(ctx context.Context) error
}

// Rescorer defines the interface for triggering deal score recomputation.
type Rescorer interface {
	RunRescore(ctx context.Context) error
}

// AdminHandler handles operator endpoints. All routes are mounted behind
// the admin JWT middleware.
type AdminHandler struct {
	store    store.Store
	ingester Ingester
	rescorer Rescorer
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(s store.Store, ing Ingester, r Rescorer) *AdminHandler {
	return &AdminHandler{store: s, ingester: ing, rescorer: r}
}

// Ingest handles POST /api/v1/admin/ingest.
//
// @Summary Trigger manual ingestion
// @Description Runs the full ingestion cycle: fetch feed pages, upsert products, score, and evaluate alerts.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} StatusResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/admin/ingest [post]
func (h *AdminHandler) Ingest(c echo.Context) error {
	if err := h.ingester.RunIngestion(c.Request().Context()); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "ingestion failed: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "ingestion completed"})
}

// Rescore handles POST /api/v1/admin/rescore.
//
// @Summary Trigger deal score recomputation
// @Description Recomputes deal scores for products missing one.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} StatusResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/admin/rescore [post]
func (h *AdminHandler) Rescore(c echo.Context) error {
	if err := h.rescorer.RunRescore(c.Request().Context()); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "rescore failed: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "rescore completed"})
}

// ListJobs handles GET /api/v1/admin/jobs.
//
// @Summary List scheduler job runs
// @Description Returns recent job runs, newest first, optionally filtered by job name.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param job query string false "Filter by job name" Enums(ingestion, rescore)
// @Param limit query int false "Number of results (default 20)"
// @Success 200 {array} domain.JobRun
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/admin/jobs [get]
func (h *AdminHandler) ListJobs(c echo.Context) error {
	limit := defaultJobHistoryLimit
	if raw := c.QueryParam("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "invalid limit",
			})
		}
		limit = v
	}

	runs, err := h.store.ListJobRuns(c.Request().Context(), c.QueryParam("job"), limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "listing job runs: " + err.Error(),
		})
	}

	if runs == nil {
		runs = []domain.JobRun{}
	}

	return c.JSON(http.StatusOK, runs)
}

// Stats handles GET /api/v1/admin/stats.
//
// @Summary Get dashboard statistics
// @Description Returns catalog, review, alert, and order aggregates for the admin dashboard.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.DashboardStats
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.store.GetDashboardStats(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "fetching stats: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, stats)
}
