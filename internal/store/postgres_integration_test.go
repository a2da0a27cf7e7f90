//go:build integration

package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/souqly/souqly/internal/store"
	domain "github.com/souqly/souqly/pkg/types"
)

func setupPostgres(t *testing.T) *store.PostgresStore {
	t.Helper()
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("souqly_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, pgContainer.Terminate(ctx))
	})

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	s, err := store.NewPostgresStore(ctx, connStr)
	require.NoError(t, err)

	t.Cleanup(func() {
		s.Close()
	})

	require.NoError(t, s.Migrate(ctx))

	return s
}

func testProduct() *domain.Product {
	orig := 129.99
	return &domain.Product{
		SKU:  "SQ-1001",
		Name: domain.LocalizedText{En: "Wireless Earbuds Pro", Ar: "سماعات لاسلكية برو"},
		Description: domain.LocalizedText{
			En: "Noise-cancelling wireless earbuds.",
			Ar: "سماعات لاسلكية بعزل الضوضاء.",
		},
		Price:         89.99,
		OriginalPrice: &orig,
		DiscountPct:   30.8,
		Currency:      "USD",
		Category:      "electronics",
		Brand:         "acme",
		Rating:        4.5,
		ReviewCount:   12,
		InStock:       true,
		Featured:      true,
		Source:        "mockfeed",
		AffiliateURL:  "https://example.com/aff/sq-1001",
		ImageURLs:     []string{"https://img.example.com/sq-1001.jpg"},
	}
}

func TestPostgresStore_Ping(t *testing.T) {
	s := setupPostgres(t)
	require.NoError(t, s.Ping(context.Background()))
}

func TestPostgresStore_UpsertProduct(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	t.Run("insert new product", func(t *testing.T) {
		p := testProduct()
		err := s.UpsertProduct(ctx, p)
		require.NoError(t, err)
		assert.NotEmpty(t, p.ID)
		assert.False(t, p.CreatedAt.IsZero())
		assert.False(t, p.UpdatedAt.IsZero())
	})

	t.Run("upsert with changed price keeps identity", func(t *testing.T) {
		p := testProduct()
		p.SKU = "SQ-2001"
		require.NoError(t, s.UpsertProduct(ctx, p))
		firstID := p.ID
		created := p.CreatedAt

		p2 := testProduct()
		p2.SKU = "SQ-2001"
		p2.Price = 69.99
		require.NoError(t, s.UpsertProduct(ctx, p2))

		assert.Equal(t, firstID, p2.ID)
		assert.Equal(t, created, p2.CreatedAt)

		got, err := s.GetProduct(ctx, firstID)
		require.NoError(t, err)
		assert.InDelta(t, 69.99, got.Price, 0.01)
		assert.Equal(t, "سماعات لاسلكية برو", got.Name.Ar)
	})

	t.Run("same sku different source stays distinct", func(t *testing.T) {
		p := testProduct()
		p.SKU = "SQ-3001"
		p.Source = "mockfeed"
		require.NoError(t, s.UpsertProduct(ctx, p))

		p2 := testProduct()
		p2.SKU = "SQ-3001"
		p2.Source = "manual"
		require.NoError(t, s.UpsertProduct(ctx, p2))

		assert.NotEqual(t, p.ID, p2.ID)
	})
}

func TestPostgresStore_GetProduct(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	t.Run("found round-trips all fields", func(t *testing.T) {
		p := testProduct()
		require.NoError(t, s.UpsertProduct(ctx, p))

		got, err := s.GetProduct(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, p.SKU, got.SKU)
		assert.Equal(t, p.Name, got.Name)
		assert.Equal(t, p.Description, got.Description)
		require.NotNil(t, got.OriginalPrice)
		assert.InDelta(t, 129.99, *got.OriginalPrice, 0.01)
		assert.Equal(t, p.ImageURLs, got.ImageURLs)
		assert.True(t, got.InStock)
	})

	t.Run("not found returns pgx.ErrNoRows", func(t *testing.T) {
		_, err := s.GetProduct(ctx, "00000000-0000-0000-0000-000000000000")
		assert.ErrorIs(t, err, pgx.ErrNoRows)
	})
}

func TestPostgresStore_ListProducts(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	seed := []struct {
		sku      string
		category string
		brand    string
		price    float64
		rating   float64
		inStock  bool
		discount float64
	}{
		{"L-1", "electronics", "acme", 50, 4.8, true, 20},
		{"L-2", "electronics", "globex", 150, 3.2, true, 0},
		{"L-3", "fashion", "acme", 25, 4.1, false, 10},
		{"L-4", "home", "initech", 300, 4.9, true, 0},
	}
	for _, row := range seed {
		p := testProduct()
		p.SKU = row.sku
		p.Category = row.category
		p.Brand = row.brand
		p.Price = row.price
		p.Rating = row.rating
		p.InStock = row.inStock
		p.DiscountPct = row.discount
		require.NoError(t, s.UpsertProduct(ctx, p))
	}

	t.Run("no filters returns everything with total", func(t *testing.T) {
		got, total, err := s.ListProducts(ctx, &store.ProductQuery{})
		require.NoError(t, err)
		assert.Equal(t, 4, total)
		assert.Len(t, got, 4)
	})

	t.Run("category filter", func(t *testing.T) {
		got, total, err := s.ListProducts(ctx, &store.ProductQuery{
			Categories: []string{"electronics"},
		})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.Len(t, got, 2)
	})

	t.Run("price range and stock filter", func(t *testing.T) {
		min, max := 20.0, 100.0
		got, total, err := s.ListProducts(ctx, &store.ProductQuery{
			PriceMin:    &min,
			PriceMax:    &max,
			InStockOnly: true,
		})
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, got, 1)
		assert.Equal(t, "L-1", got[0].SKU)
	})

	t.Run("discount only filter", func(t *testing.T) {
		_, total, err := s.ListProducts(ctx, &store.ProductQuery{DiscountOnly: true})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
	})

	t.Run("price ascending order", func(t *testing.T) {
		got, _, err := s.ListProducts(ctx, &store.ProductQuery{
			OrderBy: domain.SortPriceAsc,
		})
		require.NoError(t, err)
		require.Len(t, got, 4)
		assert.Equal(t, "L-3", got[0].SKU)
		assert.Equal(t, "L-4", got[3].SKU)
	})

	t.Run("pagination", func(t *testing.T) {
		got, total, err := s.ListProducts(ctx, &store.ProductQuery{
			OrderBy: domain.SortPriceAsc,
			Limit:   2,
			Offset:  2,
		})
		require.NoError(t, err)
		assert.Equal(t, 4, total)
		require.Len(t, got, 2)
		assert.Equal(t, "L-2", got[0].SKU)
	})
}

func TestPostgresStore_SearchProducts(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	p := testProduct()
	p.SKU = "SRCH-1"
	p.Name = domain.LocalizedText{En: "Mechanical Keyboard", Ar: "لوحة مفاتيح ميكانيكية"}
	require.NoError(t, s.UpsertProduct(ctx, p))

	t.Run("matches english name", func(t *testing.T) {
		got, err := s.SearchProducts(ctx, "keyboard", 10)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "SRCH-1", got[0].SKU)
	})

	t.Run("matches arabic name", func(t *testing.T) {
		got, err := s.SearchProducts(ctx, "مفاتيح", 10)
		require.NoError(t, err)
		require.Len(t, got, 1)
	})

	t.Run("no match", func(t *testing.T) {
		got, err := s.SearchProducts(ctx, "zzzzzz", 10)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestPostgresStore_Reviews(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	p := testProduct()
	require.NoError(t, s.UpsertProduct(ctx, p))

	r1 := &domain.Review{ProductID: p.ID, Author: "Sara", Rating: 5, Body: "Excellent"}
	r2 := &domain.Review{ProductID: p.ID, Author: "Omar", Rating: 3, Body: "Okay"}
	require.NoError(t, s.CreateReview(ctx, r1))
	require.NoError(t, s.CreateReview(ctx, r2))
	assert.NotEmpty(t, r1.ID)

	t.Run("list newest first with total", func(t *testing.T) {
		got, total, err := s.ListReviews(ctx, p.ID, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		require.Len(t, got, 2)
		assert.Equal(t, "Omar", got[0].Author)
	})

	t.Run("rating aggregate recomputed", func(t *testing.T) {
		got, err := s.GetProduct(ctx, p.ID)
		require.NoError(t, err)
		assert.InDelta(t, 4.0, got.Rating, 0.01)
		assert.Equal(t, 2, got.ReviewCount)
	})
}

func TestPostgresStore_PriceAlerts(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	p := testProduct()
	p.Price = 80
	require.NoError(t, s.UpsertProduct(ctx, p))

	a := &domain.PriceAlert{
		SessionID:   "sess-1",
		Email:       "user@example.com",
		ProductID:   p.ID,
		TargetPrice: 100,
		Enabled:     true,
	}
	require.NoError(t, s.CreatePriceAlert(ctx, a))
	require.NotEmpty(t, a.ID)

	t.Run("list by session", func(t *testing.T) {
		got, err := s.ListPriceAlerts(ctx, "sess-1")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, a.ID, got[0].ID)
	})

	t.Run("due when price at or below target", func(t *testing.T) {
		due, err := s.ListDueAlerts(ctx)
		require.NoError(t, err)
		require.Len(t, due, 1)
		assert.Equal(t, a.ID, due[0].ID)
	})

	t.Run("disabled alert is never due", func(t *testing.T) {
		require.NoError(t, s.SetPriceAlertEnabled(ctx, a.ID, false))
		due, err := s.ListDueAlerts(ctx)
		require.NoError(t, err)
		assert.Empty(t, due)
		require.NoError(t, s.SetPriceAlertEnabled(ctx, a.ID, true))
	})

	t.Run("notification cooldown", func(t *testing.T) {
		recent, err := s.HasRecentNotification(ctx, a.ID, 24*time.Hour)
		require.NoError(t, err)
		assert.False(t, recent)

		n := &domain.AlertNotification{AlertID: a.ID, ProductID: p.ID, Price: 80}
		require.NoError(t, s.CreateNotification(ctx, n))

		recent, err = s.HasRecentNotification(ctx, a.ID, 24*time.Hour)
		require.NoError(t, err)
		assert.True(t, recent)
	})

	t.Run("pending notifications drain", func(t *testing.T) {
		pending, err := s.ListPendingNotifications(ctx)
		require.NoError(t, err)
		require.Len(t, pending, 1)

		require.NoError(t, s.MarkNotificationSent(ctx, pending[0].ID))

		pending, err = s.ListPendingNotifications(ctx)
		require.NoError(t, err)
		assert.Empty(t, pending)
	})

	t.Run("mark triggered", func(t *testing.T) {
		at := time.Now().Truncate(time.Microsecond)
		require.NoError(t, s.MarkAlertTriggered(ctx, a.ID, at))

		got, err := s.GetPriceAlert(ctx, a.ID)
		require.NoError(t, err)
		require.NotNil(t, got.LastTriggeredAt)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, s.DeletePriceAlert(ctx, a.ID))
		_, err := s.GetPriceAlert(ctx, a.ID)
		assert.ErrorIs(t, err, pgx.ErrNoRows)
	})
}

func TestPostgresStore_Orders(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	p := testProduct()
	require.NoError(t, s.UpsertProduct(ctx, p))

	o := &domain.Order{
		SessionID: "sess-9",
		Items: []domain.OrderItem{
			{ProductID: p.ID, Name: p.Name, UnitPrice: p.Price, Quantity: 2, Subtotal: p.Price * 2},
		},
		Total:    p.Price * 2,
		Currency: "USD",
		Status:   domain.OrderPlaced,
	}
	require.NoError(t, s.CreateOrder(ctx, o))
	require.NotEmpty(t, o.ID)

	t.Run("items round-trip through jsonb", func(t *testing.T) {
		got, err := s.GetOrder(ctx, o.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.OrderPlaced, got.Status)
		require.Len(t, got.Items, 1)
		assert.Equal(t, p.ID, got.Items[0].ProductID)
		assert.Equal(t, 2, got.Items[0].Quantity)
	})

	t.Run("list by session", func(t *testing.T) {
		got, err := s.ListOrdersBySession(ctx, "sess-9")
		require.NoError(t, err)
		require.Len(t, got, 1)
	})
}

func TestPostgresStore_JobRuns(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	id, err := s.InsertJobRun(ctx, "ingestion")
	require.NoError(t, err)
	require.NotEmpty(t, id)

	require.NoError(t, s.CompleteJobRun(ctx, id, "ok", "", 42))

	runs, err := s.ListJobRuns(ctx, "ingestion", 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "ok", runs[0].Status)
	assert.Equal(t, 42, runs[0].RowsAffected)
	assert.NotNil(t, runs[0].CompletedAt)

	t.Run("empty name matches all jobs", func(t *testing.T) {
		runs, err := s.ListJobRuns(ctx, "", 10)
		require.NoError(t, err)
		assert.Len(t, runs, 1)
	})
}

func TestPostgresStore_DashboardStats(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	p := testProduct()
	require.NoError(t, s.UpsertProduct(ctx, p))

	stats, err := s.GetDashboardStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.ProductsTotal)
	assert.Equal(t, 1, stats.ProductsInStock)
	assert.Equal(t, 1, stats.ProductsOnSale)
}

func TestPostgresStore_DealScores(t *testing.T) {
	s := setupPostgres(t)
	ctx := context.Background()

	p := testProduct()
	require.NoError(t, s.UpsertProduct(ctx, p))

	unscored, err := s.ListUnscoredProducts(ctx, 10)
	require.NoError(t, err)
	require.Len(t, unscored, 1)

	require.NoError(t, s.UpdateDealScore(ctx, p.ID, 87))

	unscored, err = s.ListUnscoredProducts(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, unscored)

	got, err := s.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got.DealScore)
	assert.Equal(t, 87, *got.DealScore)
}
