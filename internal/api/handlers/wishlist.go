package handlers

import (
	"fmt"
	"net/http"
	"slices"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/souqly/souqly/internal/session"
	"github.com/souqly/souqly/internal/store"
	"github.com/souqly/souqly/pkg/catalog"
	domain "github.com/souqly/souqly/pkg/types"
)

// WishlistHandler handles the session wishlist.
type WishlistHandler struct {
	store    store.Store
	sessions *session.Manager
}

// NewWishlistHandler creates a new WishlistHandler.
func NewWishlistHandler(s store.Store, sess *session.Manager) *WishlistHandler {
	return &WishlistHandler{store: s, sessions: sess}
}

// wishlistFilter parses the optional filter/sort query parameters. A
// malformed filter is rejected here, before any session state is read.
func wishlistFilter(c echo.Context) (catalog.FilterState, domain.SortKey, error) {
	f := catalog.FilterState{
		Categories: splitCSV(c.QueryParam("category")),
		Brands:     splitCSV(c.QueryParam("brand")),
	}

	var err error
	if f.PriceMin, err = floatParam(c, "price_min"); err != nil {
		return f, "", err
	}
	if f.PriceMax, err = floatParam(c, "price_max"); err != nil {
		return f, "", err
	}
	if f.MinRating, err = floatParam(c, "min_rating"); err != nil {
		return f, "", err
	}
	if c.QueryParam("in_stock") == "true" {
		f.Stock = catalog.StockInStock
	}
	if c.QueryParam("discount") == "true" {
		f.DiscountOnly = true
	}

	if err := f.Validate(); err != nil {
		return f, "", err
	}
	return f, domain.SortKey(c.QueryParam("sort")), nil
}

func floatParam(c echo.Context, name string) (float64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", name)
	}
	return v, nil
}

// List handles GET /api/v1/wishlist.
//
// @Summary List wishlist products
// @Description Returns the session's wishlist products in the order they were added, optionally narrowed by the catalog filter parameters and re-sorted.
// @Tags wishlist
// @Produce json
// @Param X-Session-ID header string false "Browsing session ID (minted and echoed when absent)"
// @Param category query string false "Filter by category slugs (comma-separated)"
// @Param brand query string false "Filter by brands (comma-separated)"
// @Param price_min query number false "Minimum price (inclusive)"
// @Param price_max query number false "Maximum price (inclusive)"
// @Param min_rating query number false "Minimum average rating"
// @Param in_stock query bool false "Only in-stock products"
// @Param discount query bool false "Only discounted products"
// @Param sort query string false "Sort order" Enums(featured, rating, price_asc, price_desc, newest)
// @Success 200 {array} domain.Product
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/wishlist [get]
func (h *WishlistHandler) List(c echo.Context) error {
	sessionID := ensureSession(c)

	filter, sortKey, err := wishlistFilter(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid filter: " + err.Error(),
		})
	}

	ctx := c.Request().Context()

	ids := h.sessions.Wishlist(ctx, sessionID)
	if len(ids) == 0 {
		return c.JSON(http.StatusOK, []domain.Product{})
	}

	products, err := h.store.ListProductsByIDs(ctx, ids)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "listing wishlist: " + err.Error(),
		})
	}

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

	// With no filter params this matches everything and keeps insertion order.
	return c.JSON(http.StatusOK, catalog.Apply(ordered, filter, sortKey))
}

// Add handles POST /api/v1/wishlist/:id.
//
// @Summary Add a product to the wishlist
// @Description Adds a product to the session's wishlist. Adding a product twice is a no-op.
// @Tags wishlist
// @Produce json
// @Param X-Session-ID header string false "Browsing session ID (minted and echoed when absent)"
// @Param id path string true "Product UUID"
// @Success 200 {object} StatusResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/wishlist/{id} [post]
func (h *WishlistHandler) Add(c echo.Context) error {
	sessionID := ensureSession(c)

	ctx := c.Request().Context()
	id := c.Param("id")

	if _, err := h.store.GetProduct(ctx, id); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "product not found",
		})
	}

	ids := h.sessions.Wishlist(ctx, sessionID)
	if !slices.Contains(ids, id) {
		ids = append(ids, id)
		h.sessions.SaveWishlist(ctx, sessionID, ids)
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "added"})
}

// Remove handles DELETE /api/v1/wishlist/:id.
//
// @Summary Remove a product from the wishlist
// @Description Removes a product from the session's wishlist. Removing an absent product is a no-op.
// @Tags wishlist
// @Produce json
// @Param X-Session-ID header string false "Browsing session ID (minted and echoed when absent)"
// @Param id path string true "Product UUID"
// @Success 200 {object} StatusResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/wishlist/{id} [delete]
func (h *WishlistHandler) Remove(c echo.Context) error {
	sessionID := ensureSession(c)

	ctx := c.Request().Context()
	id := c.Param("id")

	ids := h.sessions.Wishlist(ctx, sessionID)
	filtered := slices.DeleteFunc(ids, func(s string) bool { return s == id })
	h.sessions.SaveWishlist(ctx, sessionID, filtered)

	return c.JSON(http.StatusOK, map[string]string{"status": "removed"})
}

// Clear handles DELETE /api/v1/wishlist.
//
// @Summary Clear the wishlist
// @Description Empties the session's wishlist.
// @Tags wishlist
// @Param X-Session-ID header string false "Browsing session ID (minted and echoed when absent)"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/wishlist [delete]
func (h *WishlistHandler) Clear(c echo.Context) error {
	sessionID := ensureSession(c)

	h.sessions.SaveWishlist(c.Request().Context(), sessionID, nil)

	return c.NoContent(http.StatusNoContent)
}
