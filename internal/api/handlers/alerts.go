package handlers

import (
	"net/http"
	"net/mail"

	"github.com/labstack/echo/v4"

	"github.com/souqly/souqly/internal/session"
	"github.com/souqly/souqly/internal/store"
	domain "github.com/souqly/souqly/pkg/types"
)

// AlertHandler handles price alert CRUD operations. Alerts are scoped to
// the browsing session that created them.
type AlertHandler struct {
	store    store.Store
	sessions *session.Manager
}

// NewAlertHandler creates a new AlertHandler.
func NewAlertHandler(s store.Store, sess *session.Manager) *AlertHandler {
	return &AlertHandler{store: s, sessions: sess}
}

type createAlertRequest struct {
	ProductID   string  `json:"product_id"   example:"2f0c8a4e-1b59-4a7e-9d1f-2b8a0c3d4e5f"`
	TargetPrice float64 `json:"target_price" example:"99.00"`
	Email       string  `json:"email"        example:"shopper@example.com"`
}

// Create handles POST /api/v1/alerts.
//
// @Summary Create a price alert
// @Description Creates a price alert that fires when the product's price drops to or below the target.
// @Tags alerts
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Browsing session ID (minted and echoed when absent)"
// @Param body body createAlertRequest true "Alert to create"
// @Success 201 {object} domain.PriceAlert
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/alerts [post]
func (h *AlertHandler) Create(c echo.Context) error {
	sessionID := ensureSession(c)

	var req createAlertRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body: " + err.Error(),
		})
	}

	if req.ProductID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "product_id is required",
		})
	}

	if req.TargetPrice <= 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "target_price must be positive",
		})
	}

	if req.Email != "" {
		if _, err := mail.ParseAddress(req.Email); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "invalid email address",
			})
		}
	}

	ctx := c.Request().Context()

	if _, err := h.store.GetProduct(ctx, req.ProductID); err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "product not found",
		})
	}

	alert := &domain.PriceAlert{
		SessionID:   sessionID,
		Email:       req.Email,
		ProductID:   req.ProductID,
		TargetPrice: req.TargetPrice,
		Enabled:     true,
	}

	if err := h.store.CreatePriceAlert(ctx, alert); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "creating alert: " + err.Error(),
		})
	}

	return c.JSON(http.StatusCreated, alert)
}

// List handles GET /api/v1/alerts.
//
// @Summary List the session's price alerts
// @Tags alerts
// @Produce json
// @Param X-Session-ID header string false "Browsing session ID (minted and echoed when absent)"
// @Success 200 {array} domain.PriceAlert
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/alerts [get]
func (h *AlertHandler) List(c echo.Context) error {
	sessionID := ensureSession(c)

	alerts, err := h.store.ListPriceAlerts(c.Request().Context(), sessionID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "listing alerts: " + err.Error(),
		})
	}

	if alerts == nil {
		alerts = []domain.PriceAlert{}
	}

	return c.JSON(http.StatusOK, alerts)
}

// owned fetches an alert and verifies it belongs to the session. Alerts of
// other sessions report not found rather than forbidden.
func (h *AlertHandler) owned(c echo.Context, sessionID string) (*domain.PriceAlert, bool) {
	alert, err := h.store.GetPriceAlert(c.Request().Context(), c.Param("id"))
	if err != nil || alert.SessionID != sessionID {
		_ = c.JSON(http.StatusNotFound, map[string]string{
			"error": "alert not found",
		})
		return nil, false
	}
	return alert, true
}

type setAlertEnabledRequest struct {
	Enabled bool `json:"enabled" example:"true"`
}

// SetEnabled handles PUT /api/v1/alerts/:id/enabled.
//
// @Summary Enable or disable a price alert
// @Tags alerts
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Browsing session ID (minted and echoed when absent)"
// @Param id path string true "Alert UUID"
// @Param body body setAlertEnabledRequest true "Enabled status"
// @Success 200 {object} StatusResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/alerts/{id}/enabled [put]
func (h *AlertHandler) SetEnabled(c echo.Context) error {
	sessionID := ensureSession(c)

	var req setAlertEnabledRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body: " + err.Error(),
		})
	}

	alert, ok := h.owned(c, sessionID)
	if !ok {
		return nil
	}

	if err := h.store.SetPriceAlertEnabled(c.Request().Context(), alert.ID, req.Enabled); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "updating alert: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "updated"})
}

// Delete handles DELETE /api/v1/alerts/:id.
//
// @Summary Delete a price alert
// @Tags alerts
// @Param X-Session-ID header string false "Browsing session ID (minted and echoed when absent)"
// @Param id path string true "Alert UUID"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/alerts/{id} [delete]
func (h *AlertHandler) Delete(c echo.Context) error {
	sessionID := ensureSession(c)

	alert, ok := h.owned(c, sessionID)
	if !ok {
		return nil
	}

	if err := h.store.DeletePriceAlert(c.Request().Context(), alert.ID); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "deleting alert: " + err.Error(),
		})
	}

	return c.NoContent(http.StatusNoContent)
}
