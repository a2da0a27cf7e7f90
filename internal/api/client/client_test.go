package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/souqly/souqly/pkg/types"
)

func TestClient_ConnectionRefused(t *testing.T) {
	t.Parallel()

	c := New("http://127.0.0.1:1") // nothing listening
	_, err := c.ListCategories(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API server not running")
}

func TestClient_HTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"internal"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.ListCategories(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API error (HTTP 500)")
}

func TestClient_ListProducts(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/products", r.URL.Path)
		assert.Equal(t, "electronics,audio", r.URL.Query().Get("category"))
		assert.Equal(t, "price_asc", r.URL.Query().Get("sort"))
		assert.Equal(t, "true", r.URL.Query().Get("in_stock"))
		assert.Equal(t, "10", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ProductsResponse{
			Products: []domain.Product{{ID: "p1"}},
			Total:    1,
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.ListProducts(context.Background(), &ListProductsParams{
		Categories: []string{"electronics", "audio"},
		Sort:       "price_asc",
		InStock:    true,
		Limit:      10,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
	assert.Len(t, resp.Products, 1)
}

func TestClient_SearchProducts(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/search", r.URL.Path)
		assert.Equal(t, "لوحة مفاتيح", r.URL.Query().Get("q"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(SearchResponse{
			Products: []domain.Product{{ID: "p1"}},
			Query:    "لوحة مفاتيح",
			Total:    1,
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.SearchProducts(context.Background(), "لوحة مفاتيح", 0)
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Total)
}

func TestClient_SendsSessionHeader(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "sess-1", r.Header.Get(SessionHeader))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(CompareResponse{})
	}))
	defer srv.Close()

	c := New(srv.URL, WithSessionID("sess-1"))
	_, err := c.GetCompare(context.Background())
	require.NoError(t, err)
}

func TestClient_AddCartItem(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/cart/items", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		err := json.NewDecoder(r.Body).Decode(&body)
		assert.NoError(t, err)
		assert.Equal(t, "p1", body["product_id"])
		assert.EqualValues(t, 2, body["quantity"])

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(CartResponse{
			Items: []domain.CartItem{{ProductID: "p1", Quantity: 2, UnitPrice: 25}},
			Total: 50,
		})
	}))
	defer srv.Close()

	c := New(srv.URL, WithSessionID("sess-1"))
	resp, err := c.AddCartItem(context.Background(), "p1", 2)
	require.NoError(t, err)
	assert.Equal(t, 50.0, resp.Total)
}

func TestClient_CreateAlert(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/alerts", r.URL.Path)

		var body map[string]any
		err := json.NewDecoder(r.Body).Decode(&body)
		assert.NoError(t, err)
		assert.Equal(t, "p1", body["product_id"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(domain.PriceAlert{ID: "alert-1", ProductID: "p1"})
	}))
	defer srv.Close()

	c := New(srv.URL, WithSessionID("sess-1"))
	alert, err := c.CreateAlert(context.Background(), "p1", 99, "")
	require.NoError(t, err)
	assert.Equal(t, "alert-1", alert.ID)
}

func TestClient_DeleteAlert(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/v1/alerts/alert-1", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL, WithSessionID("sess-1"))
	err := c.DeleteAlert(context.Background(), "alert-1")
	require.NoError(t, err)
}

func TestClient_AdminSendsBearerToken(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		assert.Equal(t, "/api/v1/admin/ingest", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "ingestion completed"})
	}))
	defer srv.Close()

	c := New(srv.URL, WithAdminToken("tok-1"))
	err := c.TriggerIngestion(context.Background())
	require.NoError(t, err)
}

func TestClient_ListJobRuns(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/admin/jobs", r.URL.Path)
		assert.Equal(t, "ingestion", r.URL.Query().Get("job"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]domain.JobRun{{ID: "run-1", JobName: "ingestion"}})
	}))
	defer srv.Close()

	c := New(srv.URL, WithAdminToken("tok-1"))
	runs, err := c.ListJobRuns(context.Background(), "ingestion", 5)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "run-1", runs[0].ID)
}

func TestWithHTTPClient(t *testing.T) {
	t.Parallel()

	custom := &http.Client{}
	c := New("http://example.com", WithHTTPClient(custom))
	assert.Same(t, custom, c.httpClient)
}
