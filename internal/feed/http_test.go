package feed_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/souqly/souqly/internal/feed"
)

func TestHTTPClient_Fetch(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "electronics", r.URL.Query().Get("category"))
		assert.Equal(t, "2", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"products": [
				{"sku": "A-1", "title_en": "First", "price": "10.00", "currency": "USD", "category": "electronics", "availability": "in_stock"},
				{"sku": "A-2", "title_en": "Second", "price": "20.00", "currency": "USD", "category": "electronics", "availability": "in_stock"}
			],
			"total": 5,
			"offset": 0,
			"limit": 2,
			"next": "/products?offset=2"
		}`))
	}))
	defer srv.Close()

	c := feed.NewHTTPClient(srv.URL, "test-key")

	resp, err := c.Fetch(context.Background(), feed.FetchRequest{
		Category: "electronics",
		Limit:    2,
	})
	require.NoError(t, err)

	assert.Len(t, resp.Entries, 2)
	assert.Equal(t, 5, resp.Total)
	assert.True(t, resp.HasMore)
	assert.Equal(t, "A-1", resp.Entries[0].SKU)
}

func TestHTTPClient_Fetch_LastPage(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"products": [{"sku": "A-1", "price": "1.00"}], "total": 1, "offset": 0, "limit": 100}`))
	}))
	defer srv.Close()

	c := feed.NewHTTPClient(srv.URL, "test-key")

	resp, err := c.Fetch(context.Background(), feed.FetchRequest{})
	require.NoError(t, err)
	assert.False(t, resp.HasMore)
}

func TestHTTPClient_Fetch_APIError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error": "invalid key"}`))
	}))
	defer srv.Close()

	c := feed.NewHTTPClient(srv.URL, "bad-key")

	_, err := c.Fetch(context.Background(), feed.FetchRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 403")
}

func TestHTTPClient_Fetch_MalformedBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	c := feed.NewHTTPClient(srv.URL, "test-key")

	_, err := c.Fetch(context.Background(), feed.FetchRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing fetch response")
}

func TestHTTPClient_Fetch_DailyLimit(t *testing.T) {
	t.Parallel()

	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = w.Write([]byte(`{"products": [], "total": 0}`))
	}))
	defer srv.Close()

	rl := feed.NewRateLimiter(100, 10, 1)
	c := feed.NewHTTPClient(srv.URL, "test-key", feed.WithRateLimiter(rl))

	_, err := c.Fetch(context.Background(), feed.FetchRequest{})
	require.NoError(t, err)

	// Quota exhausted: the second call never reaches the server.
	_, err = c.Fetch(context.Background(), feed.FetchRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, feed.ErrDailyLimitReached)
	assert.Equal(t, 1, calls)
}
