package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	domain "github.com/souqly/souqly/pkg/types"
)

type adminProductRequest struct {
	SKU           string               `json:"sku"`
	Name          domain.LocalizedText `json:"name"`
	Description   domain.LocalizedText `json:"description"`
	Price         float64              `json:"price"`
	OriginalPrice *float64             `json:"original_price"`
	Currency      string               `json:"currency"`
	Category      string               `json:"category"`
	Brand         string               `json:"brand"`
	InStock       bool                 `json:"in_stock"`
	Featured      bool                 `json:"featured"`
	AffiliateURL  string               `json:"affiliate_url"`
	ImageURLs     []string             `json:"image_urls"`
}

func (r *adminProductRequest) validate() string {
	switch {
	case strings.TrimSpace(r.SKU) == "":
		return "sku is required"
	case strings.TrimSpace(r.Name.En) == "":
		return "name.en is required"
	case strings.TrimSpace(r.Category) == "":
		return "category is required"
	case r.Price < 0:
		return "price must not be negative"
	case r.OriginalPrice != nil && *r.OriginalPrice < r.Price:
		return "original_price must not be below price"
	}
	return ""
}

// apply copies the editable fields onto p and recomputes the discount.
func (r *adminProductRequest) apply(p *domain.Product) {
	p.SKU = strings.TrimSpace(r.SKU)
	p.Name = r.Name
	p.Description = r.Description
	p.Price = r.Price
	p.OriginalPrice = r.OriginalPrice
	p.Currency = r.Currency
	p.Category = r.Category
	p.Brand = r.Brand
	p.InStock = r.InStock
	p.Featured = r.Featured
	p.AffiliateURL = r.AffiliateURL
	p.ImageURLs = r.ImageURLs

	p.DiscountPct = 0
	if r.OriginalPrice != nil && *r.OriginalPrice > 0 && r.Price < *r.OriginalPrice {
		p.DiscountPct = (*r.OriginalPrice - r.Price) / *r.OriginalPrice * 100
	}
}

// CreateProduct handles POST /api/v1/admin/products.
//
// @Summary Create a catalog product
// @Description Creates a manually managed product. Manually created products carry source "manual".
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body adminProductRequest true "Product to create"
// @Success 201 {object} domain.Product
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/admin/products [post]
func (h *AdminHandler) CreateProduct(c echo.Context) error {
	var req adminProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body: " + err.Error(),
		})
	}
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
	}

	p := &domain.Product{Source: "manual", Currency: "USD"}
	req.apply(p)
	if req.Currency != "" {
		p.Currency = req.Currency
	}

	if err := h.store.CreateProduct(c.Request().Context(), p); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "creating product: " + err.Error(),
		})
	}

	return c.JSON(http.StatusCreated, p)
}

// UpdateProduct handles PUT /api/v1/admin/products/:id.
//
// @Summary Update a catalog product
// @Description Rewrites a product's editable fields. Deal score and rating aggregates are untouched.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product UUID"
// @Param body body adminProductRequest true "Updated fields"
// @Success 200 {object} domain.Product
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/admin/products/{id} [put]
func (h *AdminHandler) UpdateProduct(c echo.Context) error {
	var req adminProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body: " + err.Error(),
		})
	}
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
	}

	ctx := c.Request().Context()

	p, err := h.store.GetProduct(ctx, c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "product not found",
		})
	}

	req.apply(p)
	if req.Currency != "" {
		p.Currency = req.Currency
	}

	if err := h.store.UpdateProduct(ctx, p); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "updating product: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, p)
}

// DeleteProduct handles DELETE /api/v1/admin/products/:id.
//
// @Summary Delete a catalog product
// @Description Removes a product from the catalog.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Product UUID"
// @Success 204 {object} nil
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/admin/products/{id} [delete]
func (h *AdminHandler) DeleteProduct(c echo.Context) error {
	ctx := c.Request().Context()

	if _, err := h.store.GetProduct(ctx, c.Param("id")); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "product not found",
		})
	}

	if err := h.store.DeleteProduct(ctx, c.Param("id")); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "deleting product: " + err.Error(),
		})
	}

	return c.NoContent(http.StatusNoContent)
}
