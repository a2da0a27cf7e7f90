package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/souqly/souqly/internal/session"
	"github.com/souqly/souqly/internal/store"
	"github.com/souqly/souqly/pkg/compare"
	domain "github.com/souqly/souqly/pkg/types"
)

// CompareHandler handles the session comparison set.
type CompareHandler struct {
	store    store.Store
	sessions *session.Manager
}

// NewCompareHandler creates a new CompareHandler.
func NewCompareHandler(s store.Store, sess *session.Manager) *CompareHandler {
	return &CompareHandler{store: s, sessions: sess}
}

// compareResponse is the comparison set view returned by all mutations.
// Added is set on add requests: false means the set was full or the product
// was already a member, and nothing changed.
type compareResponse struct {
	Added    *bool                        `json:"added,omitempty"`
	Products []domain.Product             `json:"products"`
	Stats    compare.Stats                `json:"stats"`
	Winners  map[compare.Attribute]string `json:"winners"`
}

// loadSet rebuilds the comparison set from the session's stored product IDs.
// Products deleted from the catalog since they were added simply drop out.
func (h *CompareHandler) loadSet(ctx context.Context, sessionID string) (*compare.Set, error) {
	ids := h.sessions.CompareIDs(ctx, sessionID)

	set := compare.New()
	if len(ids) == 0 {
		return set, nil
	}

	products, err := h.store.ListProductsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	// Re-establish insertion order; the store returns rows in its own order.
	byID := make(map[string]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	ordered := make([]domain.Product, 0, len(products))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			ordered = append(ordered, p)
		}
	}

	set.Restore(ordered)
	return set, nil
}

func (h *CompareHandler) saveSet(ctx context.Context, sessionID string, set *compare.Set) {
	members := set.Members()
	ids := make([]string, len(members))
	for i := range members {
		ids[i] = members[i].ID
	}
	h.sessions.SaveCompareIDs(ctx, sessionID, ids)
}

func compareView(set *compare.Set) compareResponse {
	// Stats already carry the winning member per attribute; below two
	// members no attribute has a winner.
	winners := map[compare.Attribute]string{}
	if set.Len() >= 2 {
		stats := set.Stats()
		if stats.LowestPrice != nil {
			winners[compare.AttrPrice] = stats.LowestPriceID
		}
		if stats.HighestRating != nil {
			winners[compare.AttrRating] = stats.HighestRatingID
		}
		if stats.BestDealScore != nil {
			winners[compare.AttrDealScore] = stats.BestDealScoreID
		}
	}

	return compareResponse{
		Products: set.Members(),
		Stats:    set.Stats(),
		Winners:  winners,
	}
}

// Get handles GET /api/v1/compare.
//
// @Summary Get the comparison set
// @Description Returns the session's comparison set with per-attribute stats and winners.
// @Tags compare
// @Produce json
// @Param X-Session-ID header string false "Browsing session ID (minted and echoed when absent)"
// @Success 200 {object} compareResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/compare [get]
func (h *CompareHandler) Get(c echo.Context) error {
	sessionID := ensureSession(c)

	set, err := h.loadSet(c.Request().Context(), sessionID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "loading comparison set: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, compareView(set))
}

// Add handles POST /api/v1/compare/:id.
//
// @Summary Add a product to the comparison set
// @Description Adds a product to the session's comparison set. A full set or an already-present product is a no-op reported through the added flag, never an error.
// @Tags compare
// @Produce json
// @Param X-Session-ID header string false "Browsing session ID (minted and echoed when absent)"
// @Param id path string true "Product UUID"
// @Success 200 {object} compareResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/compare/{id} [post]
func (h *CompareHandler) Add(c echo.Context) error {
	sessionID := ensureSession(c)

	ctx := c.Request().Context()

	p, err := h.store.GetProduct(ctx, c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "product not found",
		})
	}

	set, err := h.loadSet(ctx, sessionID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "loading comparison set: " + err.Error(),
		})
	}

	added := set.Add(*p)
	if added {
		h.saveSet(ctx, sessionID, set)
	}

	resp := compareView(set)
	resp.Added = &added

	return c.JSON(http.StatusOK, resp)
}

// Remove handles DELETE /api/v1/compare/:id.
//
// @Summary Remove a product from the comparison set
// @Description Removes a product from the session's comparison set. Removing an absent product is a no-op.
// @Tags compare
// @Produce json
// @Param X-Session-ID header string false "Browsing session ID (minted and echoed when absent)"
// @Param id path string true "Product UUID"
// @Success 200 {object} compareResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/compare/{id} [delete]
func (h *CompareHandler) Remove(c echo.Context) error {
	sessionID := ensureSession(c)

	ctx := c.Request().Context()

	set, err := h.loadSet(ctx, sessionID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "loading comparison set: " + err.Error(),
		})
	}

	set.Remove(c.Param("id"))
	h.saveSet(ctx, sessionID, set)

	return c.JSON(http.StatusOK, compareView(set))
}

// Clear handles DELETE /api/v1/compare.
//
// @Summary Clear the comparison set
// @Description Empties the session's comparison set.
// @Tags compare
// @Param X-Session-ID header string false "Browsing session ID (minted and echoed when absent)"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/compare [delete]
func (h *CompareHandler) Clear(c echo.Context) error {
	sessionID := ensureSession(c)

	h.sessions.SaveCompareIDs(c.Request().Context(), sessionID, nil)

	return c.NoContent(http.StatusNoContent)
}
