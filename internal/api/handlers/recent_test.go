package handlers_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/souqly/souqly/internal/api/handlers"
	storeMocks "github.com/souqly/souqly/internal/store/mocks"
	domain "github.com/souqly/souqly/pkg/types"
)

func TestRecentHandler_RecentlyViewed(t *testing.T) {
	t.Parallel()

	t.Run("empty session", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		h := handlers.NewRecentHandler(ms, newSessions(t))

		c, rec := newSessionCtx(t, http.MethodGet, "/api/v1/recently-viewed", "sess-1", "")
		require.NoError(t, h.RecentlyViewed(c))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("returns products most recent first", func(t *testing.T) {
		t.Parallel()

		p1 := catalogProduct("p1", "SKU-1", "Keyboard")
		p2 := catalogProduct("p2", "SKU-2", "Mouse")

		ms := storeMocks.NewMockStore(t)
		ms.EXPECT().
			ListProductsByIDs(mock.Anything, []string{"p2", "p1"}).
			Return([]domain.Product{p1, p2}, nil).
			Once()

		sessions := newSessions(t)
		sessions.SaveRecentlyViewed(context.Background(), "sess-1", []string{"p2", "p1"})

		h := handlers.NewRecentHandler(ms, sessions)

		c, rec := newSessionCtx(t, http.MethodGet, "/api/v1/recently-viewed", "sess-1", "")
		require.NoError(t, h.RecentlyViewed(c))
		require.Equal(t, http.StatusOK, rec.Code)

		body := rec.Body.String()
		assert.Less(t, strings.Index(body, `"p2"`), strings.Index(body, `"p1"`))
	})

	t.Run("clear", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		sessions := newSessions(t)
		sessions.SaveRecentlyViewed(context.Background(), "sess-1", []string{"p1"})

		h := handlers.NewRecentHandler(ms, sessions)

		c, rec := newSessionCtx(t, http.MethodDelete, "/api/v1/recently-viewed", "sess-1", "")
		require.NoError(t, h.ClearRecentlyViewed(c))
		require.Equal(t, http.StatusNoContent, rec.Code)

		assert.Empty(t, sessions.RecentlyViewed(context.Background(), "sess-1"))
	})
}

func TestRecentHandler_RecentSearches(t *testing.T) {
	t.Parallel()

	t.Run("returns terms", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		sessions := newSessions(t)
		sessions.SaveRecentSearches(context.Background(), "sess-1", []string{"keyboard", "مفاتيح"})

		h := handlers.NewRecentHandler(ms, sessions)

		c, rec := newSessionCtx(t, http.MethodGet, "/api/v1/recent-searches", "sess-1", "")
		require.NoError(t, h.RecentSearches(c))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"keyboard"`)
		assert.Contains(t, rec.Body.String(), `"مفاتيح"`)
	})

	t.Run("empty session", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		h := handlers.NewRecentHandler(ms, newSessions(t))

		c, rec := newSessionCtx(t, http.MethodGet, "/api/v1/recent-searches", "sess-1", "")
		require.NoError(t, h.RecentSearches(c))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"searches":[]}`, rec.Body.String())
	})

	t.Run("clear", func(t *testing.T) {
		t.Parallel()

		ms := storeMocks.NewMockStore(t)
		sessions := newSessions(t)
		sessions.SaveRecentSearches(context.Background(), "sess-1", []string{"keyboard"})

		h := handlers.NewRecentHandler(ms, sessions)

		c, rec := newSessionCtx(t, http.MethodDelete, "/api/v1/recent-searches", "sess-1", "")
		require.NoError(t, h.ClearRecentSearches(c))
		require.Equal(t, http.StatusNoContent, rec.Code)

		assert.Empty(t, sessions.RecentSearches(context.Background(), "sess-1"))
	})
}
