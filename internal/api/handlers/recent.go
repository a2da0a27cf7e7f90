package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/souqly/souqly/internal/session"
	"github.com/souqly/souqly/internal/store"
	domain "github.com/souqly/souqly/pkg/types"
)

// RecentHandler serves the session's recently viewed products and recent
// searches. Both lists are recorded elsewhere (product and search handlers);
// this handler only reads and clears them.
type RecentHandler struct {
	store    store.Store
	sessions *session.Manager
}

// NewRecentHandler creates a new RecentHandler.
func NewRecentHandler(s store.Store, sess *session.Manager) *RecentHandler {
	return &RecentHandler{store: s, sessions: sess}
}

// RecentlyViewed handles GET /api/v1/recently-viewed.
//
// @Summary List recently viewed products
// @Description Returns the session's recently viewed products, most recent first.
// @Tags recent
// @Produce json
// @Param X-Session-ID header string false "Browsing session ID (minted and echoed when absent)"
// @Success 200 {array} domain.Product
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/recently-viewed [get]
func (h *RecentHandler) RecentlyViewed(c echo.Context) error {
	sessionID := ensureSession(c)

	ctx := c.Request().Context()

	ids := h.sessions.RecentlyViewed(ctx, sessionID)
	if len(ids) == 0 {
		return c.JSON(http.StatusOK, []domain.Product{})
	}

	products, err := h.store.ListProductsByIDs(ctx, ids)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "listing recently viewed: " + err.Error(),
		})
	}

	byID := make(map[string]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	// Most recent first, per the stored recency order.
	ordered := make([]domain.Product, 0, len(products))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			ordered = append(ordered, p)
		}
	}

	return c.JSON(http.StatusOK, ordered)
}

// ClearRecentlyViewed handles DELETE /api/v1/recently-viewed.
//
// @Summary Clear recently viewed products
// @Tags recent
// @Param X-Session-ID header string false "Browsing session ID (minted and echoed when absent)"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/recently-viewed [delete]
func (h *RecentHandler) ClearRecentlyViewed(c echo.Context) error {
	sessionID := ensureSession(c)

	h.sessions.SaveRecentlyViewed(c.Request().Context(), sessionID, nil)

	return c.NoContent(http.StatusNoContent)
}

type recentSearchesResponse struct {
	Searches []string `json:"searches"`
}

// RecentSearches handles GET /api/v1/recent-searches.
//
// @Summary List recent searches
// @Description Returns the session's recent search terms, most recent first.
// @Tags recent
// @Produce json
// @Param X-Session-ID header string false "Browsing session ID (minted and echoed when absent)"
// @Success 200 {object} recentSearchesResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/recent-searches [get]
func (h *RecentHandler) RecentSearches(c echo.Context) error {
	sessionID := ensureSession(c)

	searches := h.sessions.RecentSearches(c.Request().Context(), sessionID)
	if searches == nil {
		searches = []string{}
	}

	return c.JSON(http.StatusOK, recentSearchesResponse{Searches: searches})
}

// ClearRecentSearches handles DELETE /api/v1/recent-searches.
//
// @Summary Clear recent searches
// @Tags recent
// @Param X-Session-ID header string false "Browsing session ID (minted and echoed when absent)"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/recent-searches [delete]
func (h *RecentHandler) ClearRecentSearches(c echo.Context) error {
	sessionID := ensureSession(c)

	h.sessions.SaveRecentSearches(c.Request().Context(), sessionID, nil)

	return c.NoContent(http.StatusNoContent)
}
