// Package api assembles the souqly HTTP surface: catalog reads served
// through Huma typed handlers, session and admin routes served as plain
// Echo handlers, plus operational endpoints.
package api

import (
	"log/slog"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"

	"github.com/souqly/souqly/api/openapi"
	"github.com/souqly/souqly/internal/api/handlers"
	"github.com/souqly/souqly/internal/api/middleware"
	"github.com/souqly/souqly/internal/config"
	"github.com/souqly/souqly/internal/session"
	"github.com/souqly/souqly/internal/store"
)

// Deps carries everything the router needs.
type Deps struct {
	Config   *config.Config
	Store    store.Store
	Sessions *session.Manager
	Ingester handlers.Ingester
	Rescorer handlers.Rescorer
	Logger   *slog.Logger
	Version  string
}

// NewRouter builds the Echo instance with all routes and middleware wired.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(d.Logger))
	e.Use(otelecho.Middleware(d.Config.Telemetry.ServiceName))
	e.Use(middleware.RequestLog(d.Logger))
	e.Use(middleware.Metrics())

	// Operational endpoints.
	health := handlers.NewHealthHandler(d.Store)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	openapi.RegisterRoutes(e)

	// Catalog reads go through Huma for typed validation and schema
	// generation.
	hcfg := huma.DefaultConfig("souqly API", d.Version)
	hapi := humaecho.New(e, hcfg)

	handlers.RegisterProductRoutes(hapi, handlers.NewProductsHandler(
		d.Store, d.Sessions, d.Config.Session.RecentlyViewedSize,
	))
	handlers.RegisterSearchRoutes(hapi, handlers.NewSearchHandler(
		d.Store, d.Sessions, d.Config.Session.RecentSearchesSize,
	))
	handlers.RegisterCategoryRoutes(hapi, handlers.NewCategoriesHandler(d.Store))

	// Session-scoped routes.
	compareH := handlers.NewCompareHandler(d.Store, d.Sessions)
	e.GET("/api/v1/compare", compareH.Get)
	e.DELETE("/api/v1/compare", compareH.Clear)
	e.POST("/api/v1/compare/:id", compareH.Add)
	e.DELETE("/api/v1/compare/:id", compareH.Remove)

	wishlistH := handlers.NewWishlistHandler(d.Store, d.Sessions)
	e.GET("/api/v1/wishlist", wishlistH.List)
	e.DELETE("/api/v1/wishlist", wishlistH.Clear)
	e.POST("/api/v1/wishlist/:id", wishlistH.Add)
	e.DELETE("/api/v1/wishlist/:id", wishlistH.Remove)

	cartH := handlers.NewCartHandler(d.Store, d.Sessions)
	e.GET("/api/v1/cart", cartH.Get)
	e.DELETE("/api/v1/cart", cartH.Clear)
	e.POST("/api/v1/cart/items", cartH.AddItem)
	e.PUT("/api/v1/cart/items/:id", cartH.UpdateItem)
	e.DELETE("/api/v1/cart/items/:id", cartH.RemoveItem)
	e.POST("/api/v1/checkout", cartH.Checkout)
	e.GET("/api/v1/orders", cartH.ListOrders)
	e.GET("/api/v1/orders/:id", cartH.GetOrder)

	recentH := handlers.NewRecentHandler(d.Store, d.Sessions)
	e.GET("/api/v1/recently-viewed", recentH.RecentlyViewed)
	e.DELETE("/api/v1/recently-viewed", recentH.ClearRecentlyViewed)
	e.GET("/api/v1/recent-searches", recentH.RecentSearches)
	e.DELETE("/api/v1/recent-searches", recentH.ClearRecentSearches)

	alertH := handlers.NewAlertHandler(d.Store, d.Sessions)
	e.POST("/api/v1/alerts", alertH.Create)
	e.GET("/api/v1/alerts", alertH.List)
	e.PUT("/api/v1/alerts/:id/enabled", alertH.SetEnabled)
	e.DELETE("/api/v1/alerts/:id", alertH.Delete)

	reviewH := handlers.NewReviewHandler(d.Store)
	e.GET("/api/v1/products/:id/reviews", reviewH.List)
	e.POST("/api/v1/products/:id/reviews", reviewH.Create)

	// Operator routes behind admin JWT auth.
	adminH := handlers.NewAdminHandler(d.Store, d.Ingester, d.Rescorer)
	admin := e.Group("/api/v1/admin", middleware.AdminAuth(d.Config.Auth.JWTSecret))
	admin.POST("/ingest", adminH.Ingest)
	admin.POST("/rescore", adminH.Rescore)
	admin.GET("/jobs", adminH.ListJobs)
	admin.GET("/stats", adminH.Stats)
	admin.POST("/products", adminH.CreateProduct)
	admin.PUT("/products/:id", adminH.UpdateProduct)
	admin.DELETE("/products/:id", adminH.DeleteProduct)

	return e
}
