package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/souqly/souqly/internal/store"
	domain "github.com/souqly/souqly/pkg/types"
)

const defaultReviewLimit = 10

// ReviewHandler handles product review operations.
type ReviewHandler struct {
	store store.Store
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(s store.Store) *ReviewHandler {
	return &ReviewHandler{store: s}
}

type reviewListResponse struct {
	Reviews []domain.Review `json:"reviews"`
	Total   int             `json:"total"`
	Limit   int             `json:"limit"`
	Offset  int             `json:"offset"`
}

// List handles GET /api/v1/products/:id/reviews.
//
// @Summary List product reviews
// @Description Returns reviews for a product, newest first.
// @Tags reviews
// @Produce json
// @Param id path string true "Product UUID"
// @Param limit query int false "Number of results (default 10)"
// @Param offset query int false "Pagination offset"
// @Success 200 {object} reviewListResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/products/{id}/reviews [get]
func (h *ReviewHandler) List(c echo.Context) error {
	limit := defaultReviewLimit
	if raw := c.QueryParam("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "invalid limit",
			})
		}
		limit = v
	}

	offset := 0
	if raw := c.QueryParam("offset"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "invalid offset",
			})
		}
		offset = v
	}

	reviews, total, err := h.store.ListReviews(c.Request().Context(), c.Param("id"), limit, offset)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "listing reviews: " + err.Error(),
		})
	}

	if reviews == nil {
		reviews = []domain.Review{}
	}

	return c.JSON(http.StatusOK, reviewListResponse{
		Reviews: reviews,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	})
}

type createReviewRequest struct {
	Author string `json:"author" example:"Sara"`
	Rating int    `json:"rating" example:"5"`
	Body   string `json:"body"   example:"Great value for the price."`
}

// Create handles POST /api/v1/products/:id/reviews.
//
// @Summary Create a product review
// @Description Adds a review to a product and recomputes its rating aggregate.
// @Tags reviews
// @Accept json
// @Produce json
// @Param id path string true "Product UUID"
// @Param body body createReviewRequest true "Review to create"
// @Success 201 {object} domain.Review
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/products/{id}/reviews [post]
func (h *ReviewHandler) Create(c echo.Context) error {
	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body: " + err.Error(),
		})
	}

	if req.Rating < 1 || req.Rating > 5 {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "rating must be between 1 and 5",
		})
	}

	author := strings.TrimSpace(req.Author)
	if author == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "author is required",
		})
	}

	ctx := c.Request().Context()
	productID := c.Param("id")

	if _, err := h.store.GetProduct(ctx, productID); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "product not found",
		})
	}

	review := &domain.Review{
		ProductID: productID,
		Author:    author,
		Rating:    req.Rating,
		Body:      strings.TrimSpace(req.Body),
	}

	if err := h.store.CreateReview(ctx, review); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "creating review: " + err.Error(),
		})
	}

	return c.JSON(http.StatusCreated, review)
}
