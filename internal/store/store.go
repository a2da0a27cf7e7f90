// Package store defines the datastore abstraction for souqly. All business
// logic depends on the Store interface, never on concrete implementations.
// This enables mock-based testing without a running database.
package store

import (
	"context"
	"time"

	domain "github.com/souqly/souqly/pkg/types"
)

// ProductQuery defines optional filters for catalog queries. Fields mirror
// the client-side FilterState so the SQL path and the in-memory evaluator
// agree on semantics.
type ProductQuery struct {
	Categories   []string
	Brands       []string
	PriceMin     *float64
	PriceMax     *float64
	MinRating    *float64
	InStockOnly  bool
	DiscountOnly bool
	FeaturedOnly bool
	Limit        int // default 24
	Offset       int
	OrderBy      domain.SortKey
}

// Store defines all data access operations for souqly.
type Store interface {
	// Products
	UpsertProduct(ctx context.Context, p *domain.Product) error
	CreateProduct(ctx context.Context, p *domain.Product) error
	UpdateProduct(ctx context.Context, p *domain.Product) error
	DeleteProduct(ctx context.Context, id string) error
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	ListProducts(ctx context.Context, opts *ProductQuery) ([]domain.Product, int, error)
	ListProductsByIDs(ctx context.Context, ids []string) ([]domain.Product, error)
	SearchProducts(ctx context.Context, term string, limit int) ([]domain.Product, error)
	UpdateDealScore(ctx context.Context, id string, score int) error
	ListUnscoredProducts(ctx context.Context, limit int) ([]domain.Product, error)

	// Categories
	UpsertCategory(ctx context.Context, c *domain.Category) error
	ListCategories(ctx context.Context) ([]domain.Category, error)

	// Reviews
	CreateReview(ctx context.Context, r *domain.Review) error
	ListReviews(ctx context.Context, productID string, limit, offset int) ([]domain.Review, int, error)
	RecomputeProductRating(ctx context.Context, productID string) error

	// Price alerts
	CreatePriceAlert(ctx context.Context, a *domain.PriceAlert) error
	GetPriceAlert(ctx context.Context, id string) (*domain.PriceAlert, error)
	ListPriceAlerts(ctx context.Context, sessionID string) ([]domain.PriceAlert, error)
	SetPriceAlertEnabled(ctx context.Context, id string, enabled bool) error
	DeletePriceAlert(ctx context.Context, id string) error
	ListDueAlerts(ctx context.Context) ([]domain.PriceAlert, error)
	MarkAlertTriggered(ctx context.Context, id string, at time.Time) error
	HasRecentNotification(ctx context.Context, alertID string, cooldown time.Duration) (bool, error)
	CreateNotification(ctx context.Context, n *domain.AlertNotification) error
	ListPendingNotifications(ctx context.Context) ([]domain.AlertNotification, error)
	MarkNotificationSent(ctx context.Context, id string) error

	// Orders
	CreateOrder(ctx context.Context, o *domain.Order) error
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	ListOrdersBySession(ctx context.Context, sessionID string) ([]domain.Order, error)

	// Scheduler
	InsertJobRun(ctx context.Context, jobName string) (id string, err error)
	CompleteJobRun(ctx context.Context, id string, status string, errText string, rowsAffected int) error
	ListJobRuns(ctx context.Context, jobName string, limit int) ([]domain.JobRun, error)

	// Dashboard
	GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error)

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
