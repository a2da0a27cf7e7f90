package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/souqly/souqly/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// --- Products ---

func productArgs(p *domain.Product) pgx.NamedArgs {
	return pgx.NamedArgs{
		"sku":            p.SKU,
		"name_en":        p.Name.En,
		"name_ar":        nullIfEmpty(p.Name.Ar),
		"description_en": nullIfEmpty(p.Description.En),
		"description_ar": nullIfEmpty(p.Description.Ar),
		"price":          p.Price,
		"original_price": p.OriginalPrice,
		"discount_pct":   p.DiscountPct,
		"currency":       p.Currency,
		"category":       p.Category,
		"brand":          nullIfEmpty(p.Brand),
		"rating":         p.Rating,
		"review_count":   p.ReviewCount,
		"in_stock":       p.InStock,
		"featured":       p.Featured,
		"source":         p.Source,
		"affiliate_url":  p.AffiliateURL,
		"image_urls":     p.ImageURLs,
	}
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// UpsertProduct inserts or updates a product by (sku, source). Rating and
// review_count are owned by the review aggregate, so they are untouched on
// conflict.
func (s *PostgresStore) UpsertProduct(ctx context.Context, p *domain.Product) error {
	return s.pool.QueryRow(ctx, queryUpsertProduct, productArgs(p)).Scan(
		&p.ID, &p.CreatedAt, &p.UpdatedAt,
	)
}

// CreateProduct inserts a product with a fresh UUID (admin path).
func (s *PostgresStore) CreateProduct(ctx context.Context, p *domain.Product) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	args := productArgs(p)
	args["id"] = p.ID
	return s.pool.QueryRow(ctx, queryCreateProduct, args).Scan(&p.CreatedAt, &p.UpdatedAt)
}

// UpdateProduct rewrites a product's editable fields by ID (admin path).
func (s *PostgresStore) UpdateProduct(ctx context.Context, p *domain.Product) error {
	args := productArgs(p)
	args["id"] = p.ID
	return s.pool.QueryRow(ctx, queryUpdateProduct, args).Scan(&p.UpdatedAt)
}

// DeleteProduct removes a product by ID.
func (s *PostgresStore) DeleteProduct(ctx context.Context, id string) error {
	_, err := s.pool.Exec(ctx, queryDeleteProduct, id)
	return err
}

// GetProduct retrieves a product by its UUID.
func (s *PostgresStore) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	p := &domain.Product{}
	if err := scanProduct(s.pool.QueryRow(ctx, queryGetProduct, id), p); err != nil {
		return nil, err
	}
	return p, nil
}

// ListProducts queries products with optional filters, returning results and
// total count.
func (s *PostgresStore) ListProducts(
	ctx context.Context,
	opts *ProductQuery,
) ([]domain.Product, int, error) {
	dataSQL, countSQL, args := opts.ToSQL()

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting products: %w", err)
	}

	products, err := s.queryProducts(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

// ListProductsByIDs fetches the given products. Missing IDs are skipped;
// the result order is unspecified.
func (s *PostgresStore) ListProductsByIDs(
	ctx context.Context,
	ids []string,
) ([]domain.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return s.queryProducts(ctx, queryListProductsByIDs, ids)
}

// SearchProducts matches the term against bilingual names and brand.
func (s *PostgresStore) SearchProducts(
	ctx context.Context,
	term string,
	limit int,
) ([]domain.Product, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	return s.queryProducts(ctx, querySearchProducts, term, limit)
}

// UpdateDealScore sets the computed deal score for a product.
func (s *PostgresStore) UpdateDealScore(ctx context.Context, id string, score int) error {
	_, err := s.pool.Exec(ctx, queryUpdateDealScore, id, score)
	return err
}

// ListUnscoredProducts returns products with no deal score yet.
func (s *PostgresStore) ListUnscoredProducts(
	ctx context.Context,
	limit int,
) ([]domain.Product, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	return s.queryProducts(ctx, queryListUnscoredProducts, limit)
}

func (s *PostgresStore) queryProducts(
	ctx context.Context,
	sql string,
	args ...any,
) ([]domain.Product, error) {
	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating products: %w", err)
	}

	return products, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProduct(row scanner, p *domain.Product) error {
	return row.Scan(
		&p.ID, &p.SKU, &p.Name.En, &p.Name.Ar,
		&p.Description.En, &p.Description.Ar,
		&p.Price, &p.OriginalPrice, &p.DiscountPct, &p.Currency,
		&p.Category, &p.Brand, &p.Rating, &p.ReviewCount, &p.DealScore,
		&p.InStock, &p.Featured, &p.Source, &p.AffiliateURL, &p.ImageURLs,
		&p.CreatedAt, &p.UpdatedAt,
	)
}

// --- Categories ---

// UpsertCategory inserts or updates a category by slug.
func (s *PostgresStore) UpsertCategory(ctx context.Context, c *domain.Category) error {
	_, err := s.pool.Exec(ctx, queryUpsertCategory,
		c.Slug, c.Name.En, nullIfEmpty(c.Name.Ar), nullIfEmpty(c.Parent), c.Position,
	)
	return err
}

// ListCategories returns all categories ordered by position.
func (s *PostgresStore) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := s.pool.Query(ctx, queryListCategories)
	if err != nil {
		return nil, fmt.Errorf("querying categories: %w", err)
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.Slug, &c.Name.En, &c.Name.Ar, &c.Parent, &c.Position); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

// --- Reviews ---

// CreateReview inserts a review and refreshes the product rating aggregate.
func (s *PostgresStore) CreateReview(ctx context.Context, r *domain.Review) error {
	err := s.pool.QueryRow(ctx, queryCreateReview,
		r.ProductID, r.Author, r.Rating, r.Body,
	).Scan(&r.ID, &r.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting review: %w", err)
	}
	return s.RecomputeProductRating(ctx, r.ProductID)
}

// ListReviews returns reviews for a product, newest first, with total count.
func (s *PostgresStore) ListReviews(
	ctx context.Context,
	productID string,
	limit, offset int,
) ([]domain.Review, int, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	var total int
	if err := s.pool.QueryRow(ctx, queryCountReviews, productID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting reviews: %w", err)
	}

	rows, err := s.pool.Query(ctx, queryListReviews, productID, limit, max(offset, 0))
	if err != nil {
		return nil, 0, fmt.Errorf("querying reviews: %w", err)
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var r domain.Review
		if err := rows.Scan(&r.ID, &r.ProductID, &r.Author, &r.Rating, &r.Body, &r.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scanning review: %w", err)
		}
		reviews = append(reviews, r)
	}
	return reviews, total, rows.Err()
}

// RecomputeProductRating refreshes a product's average rating and review
// count from its reviews.
func (s *PostgresStore) RecomputeProductRating(ctx context.Context, productID string) error {
	_, err := s.pool.Exec(ctx, queryRecomputeProductRating, productID)
	return err
}

// --- Price alerts ---

// CreatePriceAlert inserts a new price alert.
func (s *PostgresStore) CreatePriceAlert(ctx context.Context, a *domain.PriceAlert) error {
	return s.pool.QueryRow(ctx, queryCreatePriceAlert,
		nullIfEmpty(a.SessionID), nullIfEmpty(a.Email), a.ProductID, a.TargetPrice, a.Enabled,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
}

// GetPriceAlert retrieves a price alert by ID.
func (s *PostgresStore) GetPriceAlert(ctx context.Context, id string) (*domain.PriceAlert, error) {
	a := &domain.PriceAlert{}
	if err := scanAlert(s.pool.QueryRow(ctx, queryGetPriceAlert, id), a); err != nil {
		return nil, err
	}
	return a, nil
}

// ListPriceAlerts returns all alerts owned by a session, newest first.
func (s *PostgresStore) ListPriceAlerts(
	ctx context.Context,
	sessionID string,
) ([]domain.PriceAlert, error) {
	return s.queryAlerts(ctx, queryListPriceAlerts, sessionID)
}

// SetPriceAlertEnabled toggles an alert.
func (s *PostgresStore) SetPriceAlertEnabled(ctx context.Context, id string, enabled bool) error {
	_, err := s.pool.Exec(ctx, querySetPriceAlertEnabled, id, enabled)
	return err
}

// DeletePriceAlert removes an alert by ID.
func (s *PostgresStore) DeletePriceAlert(ctx context.Context, id string) error {
	_, err := s.pool.Exec(ctx, queryDeletePriceAlert, id)
	return err
}

// ListDueAlerts returns enabled alerts whose product price has reached the
// target.
func (s *PostgresStore) ListDueAlerts(ctx context.Context) ([]domain.PriceAlert, error) {
	return s.queryAlerts(ctx, queryListDueAlerts)
}

// MarkAlertTriggered records the trigger time on an alert.
func (s *PostgresStore) MarkAlertTriggered(ctx context.Context, id string, at time.Time) error {
	_, err := s.pool.Exec(ctx, queryMarkAlertTriggered, id, at)
	return err
}

// HasRecentNotification reports whether the alert fired within the cooldown.
func (s *PostgresStore) HasRecentNotification(
	ctx context.Context,
	alertID string,
	cooldown time.Duration,
) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx, queryHasRecentNotification, alertID, cooldown.String()).Scan(&exists)
	return exists, err
}

// CreateNotification records a fired alert awaiting delivery.
func (s *PostgresStore) CreateNotification(ctx context.Context, n *domain.AlertNotification) error {
	return s.pool.QueryRow(ctx, queryCreateNotification,
		n.AlertID, n.ProductID, n.Price,
	).Scan(&n.ID, &n.CreatedAt)
}

// ListPendingNotifications returns undelivered notifications, oldest first.
func (s *PostgresStore) ListPendingNotifications(
	ctx context.Context,
) ([]domain.AlertNotification, error) {
	rows, err := s.pool.Query(ctx, queryListPendingNotifications)
	if err != nil {
		return nil, fmt.Errorf("querying notifications: %w", err)
	}
	defer rows.Close()

	var out []domain.AlertNotification
	for rows.Next() {
		var n domain.AlertNotification
		if err := rows.Scan(&n.ID, &n.AlertID, &n.ProductID, &n.Price, &n.Notified, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning notification: %w", err)
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

// MarkNotificationSent flags a notification as delivered.
func (s *PostgresStore) MarkNotificationSent(ctx context.Context, id string) error {
	_, err := s.pool.Exec(ctx, queryMarkNotificationSent, id)
	return err
}

func (s *PostgresStore) queryAlerts(
	ctx context.Context,
	sql string,
	args ...any,
) ([]domain.PriceAlert, error) {
	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("querying alerts: %w", err)
	}
	defer rows.Close()

	var alerts []domain.PriceAlert
	for rows.Next() {
		var a domain.PriceAlert
		if err := scanAlert(rows, &a); err != nil {
			return nil, fmt.Errorf("scanning alert: %w", err)
		}
		alerts = append(alerts, a)
	}
	return alerts, rows.Err()
}

func scanAlert(row scanner, a *domain.PriceAlert) error {
	return row.Scan(
		&a.ID, &a.SessionID, &a.Email, &a.ProductID,
		&a.TargetPrice, &a.Enabled, &a.LastTriggeredAt, &a.CreatedAt, &a.UpdatedAt,
	)
}

// --- Orders ---

// CreateOrder inserts a simulated checkout order. Items are stored as JSONB.
func (s *PostgresStore) CreateOrder(ctx context.Context, o *domain.Order) error {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return fmt.Errorf("marshaling order items: %w", err)
	}
	return s.pool.QueryRow(ctx, queryCreateOrder,
		o.SessionID, items, o.Total, o.Currency, string(o.Status),
	).Scan(&o.ID, &o.CreatedAt)
}

// GetOrder retrieves an order by ID.
func (s *PostgresStore) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	o := &domain.Order{}
	if err := scanOrder(s.pool.QueryRow(ctx, queryGetOrder, id), o); err != nil {
		return nil, err
	}
	return o, nil
}

// ListOrdersBySession returns a session's orders, newest first.
func (s *PostgresStore) ListOrdersBySession(
	ctx context.Context,
	sessionID string,
) ([]domain.Order, error) {
	rows, err := s.pool.Query(ctx, queryListOrdersBySession, sessionID)
	if err != nil {
		return nil, fmt.Errorf("querying orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var o domain.Order
		if err := scanOrder(rows, &o); err != nil {
			return nil, fmt.Errorf("scanning order: %w", err)
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func scanOrder(row scanner, o *domain.Order) error {
	var items []byte
	var status string
	if err := row.Scan(&o.ID, &o.SessionID, &items, &o.Total, &o.Currency, &status, &o.CreatedAt); err != nil {
		return err
	}
	o.Status = domain.OrderStatus(status)
	if len(items) > 0 {
		if err := json.Unmarshal(items, &o.Items); err != nil {
			return fmt.Errorf("unmarshaling order items: %w", err)
		}
	}
	return nil
}

// --- Job runs ---

// InsertJobRun records the start of a scheduled job.
func (s *PostgresStore) InsertJobRun(ctx context.Context, jobName string) (string, error) {
	var id string
	err := s.pool.QueryRow(ctx, queryInsertJobRun, jobName).Scan(&id)
	return id, err
}

// CompleteJobRun records the outcome of a scheduled job.
func (s *PostgresStore) CompleteJobRun(
	ctx context.Context,
	id string,
	status string,
	errText string,
	rowsAffected int,
) error {
	_, err := s.pool.Exec(ctx, queryCompleteJobRun, id, status, errText, rowsAffected)
	return err
}

// ListJobRuns returns recent job runs, optionally filtered by name.
func (s *PostgresStore) ListJobRuns(
	ctx context.Context,
	jobName string,
	limit int,
) ([]domain.JobRun, error) {
	if limit <= 0 {
		limit = defaultLimit
	}
	rows, err := s.pool.Query(ctx, queryListJobRuns, jobName, limit)
	if err != nil {
		return nil, fmt.Errorf("querying job runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.JobRun
	for rows.Next() {
		var r domain.JobRun
		if err := rows.Scan(
			&r.ID, &r.JobName, &r.StartedAt, &r.CompletedAt,
			&r.Status, &r.ErrorText, &r.RowsAffected,
		); err != nil {
			return nil, fmt.Errorf("scanning job run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// --- Dashboard ---

// GetDashboardStats returns the admin dashboard aggregate snapshot.
func (s *PostgresStore) GetDashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	st := &domain.DashboardStats{}
	err := s.pool.QueryRow(ctx, queryDashboardStats).Scan(
		&st.ProductsTotal, &st.ProductsInStock, &st.ProductsFeatured, &st.ProductsOnSale,
		&st.CategoriesTotal, &st.ReviewsTotal,
		&st.AlertsTotal, &st.AlertsEnabled, &st.AlertsPending,
		&st.OrdersTotal, &st.AverageRating,
	)
	if err != nil {
		return nil, fmt.Errorf("querying dashboard stats: %w", err)
	}
	return st, nil
}
