package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/souqly/souqly/internal/session"
	"github.com/souqly/souqly/internal/store"
	domain "github.com/souqly/souqly/pkg/types"
)

// maxCartQuantity bounds a single cart line.
const maxCartQuantity = 99

// CartHandler handles the session shopping cart and checkout.
type CartHandler struct {
	store    store.Store
	sessions *session.Manager
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(s store.Store, sess *session.Manager) *CartHandler {
	return &CartHandler{store: s, sessions: sess}
}

// cartResponse is the cart view with its computed total.
type cartResponse struct {
	Items     []domain.CartItem `json:"items"`
	Total     float64           `json:"total"`
	UpdatedAt time.Time         `json:"updated_at"`
}

func cartView(cart domain.Cart) cartResponse {
	items := cart.Items
	if items == nil {
		items = []domain.CartItem{}
	}
	return cartResponse{
		Items:     items,
		Total:     cart.Total(),
		UpdatedAt: cart.UpdatedAt,
	}
}

// Get handles GET /api/v1/cart.
//
// @Summary Get the cart
// @Description Returns the session's cart with its computed total.
// @Tags cart
// @Produce json
// @Param X-Session-ID header string false "Browsing session ID (minted and echoed when absent)"
// @Success 200 {object} cartResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/cart [get]
func (h *CartHandler) Get(c echo.Context) error {
	sessionID := ensureSession(c)

	cart := h.sessions.Cart(c.Request().Context(), sessionID)

	return c.JSON(http.StatusOK, cartView(cart))
}

type addCartItemRequest struct {
	ProductID string `json:"product_id" example:"2f0c8a4e-1b59-4a7e-9d1f-2b8a0c3d4e5f"`
	Quantity  int    `json:"quantity"   example:"1"`
}

// AddItem handles POST /api/v1/cart/items.
//
// @Summary Add a product to the cart
// @Description Adds a product to the session's cart, merging quantity if the product is already present. The unit price is snapshotted at add time.
// @Tags cart
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Browsing session ID (minted and echoed when absent)"
// @Param body body addCartItemRequest true "Product and quantity"
// @Success 200 {object} cartResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/cart/items [post]
func (h *CartHandler) AddItem(c echo.Context) error {
	sessionID := ensureSession(c)

	var req addCartItemRequest
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

	qty := req.Quantity
	if qty <= 0 {
		qty = 1
	}

	ctx := c.Request().Context()

	p, err := h.store.GetProduct(ctx, req.ProductID)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "product not found",
		})
	}

	if !p.InStock {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "product is out of stock",
		})
	}

	cart := h.sessions.Cart(ctx, sessionID)

	merged := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == p.ID {
			cart.Items[i].Quantity = min(cart.Items[i].Quantity+qty, maxCartQuantity)
			merged = true
			break
		}
	}
	if !merged {
		cart.Items = append(cart.Items, domain.CartItem{
			ProductID: p.ID,
			Quantity:  min(qty, maxCartQuantity),
			UnitPrice: p.Price,
		})
	}

	cart.UpdatedAt = time.Now().UTC()
	h.sessions.SaveCart(ctx, sessionID, cart)

	return c.JSON(http.StatusOK, cartView(cart))
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity" example:"2"`
}

// UpdateItem handles PUT /api/v1/cart/items/:id.
//
// @Summary Update a cart line quantity
// @Description Sets the quantity of a cart line. A quantity of zero removes the line.
// @Tags cart
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Browsing session ID (minted and echoed when absent)"
// @Param id path string true "Product UUID"
// @Param body body updateCartItemRequest true "New quantity"
// @Success 200 {object} cartResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/cart/items/{id} [put]
func (h *CartHandler) UpdateItem(c echo.Context) error {
	sessionID := ensureSession(c)

	var req updateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body: " + err.Error(),
		})
	}

	if req.Quantity < 0 || req.Quantity > maxCartQuantity {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "quantity out of range",
		})
	}

	ctx := c.Request().Context()
	id := c.Param("id")

	cart := h.sessions.Cart(ctx, sessionID)

	idx := -1
	for i := range cart.Items {
		if cart.Items[i].ProductID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "product is not in the cart",
		})
	}

	if req.Quantity == 0 {
		cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)
	} else {
		cart.Items[idx].Quantity = req.Quantity
	}

	cart.UpdatedAt = time.Now().UTC()
	h.sessions.SaveCart(ctx, sessionID, cart)

	return c.JSON(http.StatusOK, cartView(cart))
}

// RemoveItem handles DELETE /api/v1/cart/items/:id.
//
// @Summary Remove a cart line
// @Description Removes a product line from the cart. Removing an absent line is a no-op.
// @Tags cart
// @Produce json
// @Param X-Session-ID header string false "Browsing session ID (minted and echoed when absent)"
// @Param id path string true "Product UUID"
// @Success 200 {object} cartResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(c echo.Context) error {
	sessionID := ensureSession(c)

	ctx := c.Request().Context()
	id := c.Param("id")

	cart := h.sessions.Cart(ctx, sessionID)
	for i := range cart.Items {
		if cart.Items[i].ProductID == id {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
			cart.UpdatedAt = time.Now().UTC()
			h.sessions.SaveCart(ctx, sessionID, cart)
			break
		}
	}

	return c.JSON(http.StatusOK, cartView(cart))
}

// Clear handles DELETE /api/v1/cart.
//
// @Summary Clear the cart
// @Description Empties the session's cart.
// @Tags cart
// @Param X-Session-ID header string false "Browsing session ID (minted and echoed when absent)"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/cart [delete]
func (h *CartHandler) Clear(c echo.Context) error {
	sessionID := ensureSession(c)

	h.sessions.ClearCart(c.Request().Context(), sessionID)

	return c.NoContent(http.StatusNoContent)
}

// Checkout handles POST /api/v1/checkout.
//
// @Summary Check out the cart
// @Description Converts the cart into a simulated order. Prices and names are snapshotted from the catalog at checkout; lines whose product has since been removed are dropped.
// @Tags cart
// @Produce json
// @Param X-Session-ID header string false "Browsing session ID (minted and echoed when absent)"
// @Success 201 {object} domain.Order
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/checkout [post]
func (h *CartHandler) Checkout(c echo.Context) error {
	sessionID := ensureSession(c)

	ctx := c.Request().Context()

	cart := h.sessions.Cart(ctx, sessionID)
	if len(cart.Items) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "cart is empty",
		})
	}

	ids := make([]string, len(cart.Items))
	for i := range cart.Items {
		ids[i] = cart.Items[i].ProductID
	}

	products, err := h.store.ListProductsByIDs(ctx, ids)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "resolving cart products: " + err.Error(),
		})
	}

	byID := make(map[string]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	order := &domain.Order{
		SessionID: sessionID,
		Status:    domain.OrderPlaced,
	}

	for _, it := range cart.Items {
		p, ok := byID[it.ProductID]
		if !ok {
			continue
		}
		line := domain.OrderItem{
			ProductID: p.ID,
			Name:      p.Name.En,
			Quantity:  it.Quantity,
			UnitPrice: p.Price,
		}
		order.Items = append(order.Items, line)
		order.Total += line.Subtotal()
		if order.Currency == "" {
			order.Currency = p.Currency
		}
	}

	if len(order.Items) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "no cart products are still available",
		})
	}

	if err := h.store.CreateOrder(ctx, order); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "creating order: " + err.Error(),
		})
	}

	h.sessions.ClearCart(ctx, sessionID)

	return c.JSON(http.StatusCreated, order)
}

// ListOrders handles GET /api/v1/orders.
//
// @Summary List the session's orders
// @Description Returns the session's orders, newest first.
// @Tags cart
// @Produce json
// @Param X-Session-ID header string false "Browsing session ID (minted and echoed when absent)"
// @Success 200 {array} domain.Order
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/orders [get]
func (h *CartHandler) ListOrders(c echo.Context) error {
	sessionID := ensureSession(c)

	orders, err := h.store.ListOrdersBySession(c.Request().Context(), sessionID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "listing orders: " + err.Error(),
		})
	}

	if orders == nil {
		orders = []domain.Order{}
	}

	return c.JSON(http.StatusOK, orders)
}

// GetOrder handles GET /api/v1/orders/:id.
//
// @Summary Get an order by ID
// @Description Returns a single order. Orders belonging to other sessions report not found.
// @Tags cart
// @Produce json
// @Param X-Session-ID header string false "Browsing session ID (minted and echoed when absent)"
// @Param id path string true "Order UUID"
// @Success 200 {object} domain.Order
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/orders/{id} [get]
func (h *CartHandler) GetOrder(c echo.Context) error {
	sessionID := ensureSession(c)

	order, err := h.store.GetOrder(c.Request().Context(), c.Param("id"))
	if err != nil || order.SessionID != sessionID {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "order not found",
		})
	}

	return c.JSON(http.StatusOK, order)
}
