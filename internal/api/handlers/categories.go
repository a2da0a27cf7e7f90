package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/souqly/souqly/internal/store"
	domain "github.com/souqly/souqly/pkg/types"
)

// CategoriesHandler handles category listing requests.
type CategoriesHandler struct {
	store store.Store
}

// NewCategoriesHandler creates a new CategoriesHandler.
func NewCategoriesHandler(s store.Store) *CategoriesHandler {
	return &CategoriesHandler{store: s}
}

// ListCategoriesOutput is the response for listing categories.
type ListCategoriesOutput struct {
	Body struct {
		Categories []domain.Category `json:"categories"`
	}
}

// ListCategories returns all catalog categories in display order.
func (h *CategoriesHandler) ListCategories(
	ctx context.Context,
	_ *struct{},
) (*ListCategoriesOutput, error) {
	categories, err := h.store.ListCategories(ctx)
	if err != nil {
		return nil, huma.Error500InternalServerError("listing categories failed: " + err.Error())
	}

	if categories == nil {
		categories = []domain.Category{}
	}

	resp := &ListCategoriesOutput{}
	resp.Body.Categories = categories

	return resp, nil
}

// RegisterCategoryRoutes registers category endpoints with the Huma API.
func RegisterCategoryRoutes(api huma.API, h *CategoriesHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/api/v1/categories",
		Summary:     "List categories",
		Description: "Returns all catalog categories ordered by display position.",
		Tags:        []string{"catalog"},
	}, h.ListCategories)
}
