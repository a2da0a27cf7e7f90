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

func TestCompareHandler_MintsSession(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	h := handlers.NewCompareHandler(ms, newSessions(t))

	c, rec := newSessionCtx(t, http.MethodGet, "/api/v1/compare", "", "")
	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(handlers.SessionHeader))
	assert.Contains(t, rec.Body.String(), `"products":[]`)
}

func TestCompareHandler_AddAndGet(t *testing.T) {
	t.Parallel()

	cheap := catalogProduct("p1", "SKU-1", "Budget Keyboard")
	cheap.Price = 49.99
	cheap.Rating = 4.0

	fancy := catalogProduct("p2", "SKU-2", "Mechanical Keyboard")
	fancy.Price = 149.99
	fancy.Rating = 4.7

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().GetProduct(mock.Anything, "p1").Return(&cheap, nil).Once()
	ms.EXPECT().GetProduct(mock.Anything, "p2").Return(&fancy, nil).Once()
	ms.EXPECT().
		ListProductsByIDs(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, ids []string) ([]domain.Product, error) {
			var out []domain.Product
			for _, id := range ids {
				switch id {
				case "p1":
					out = append(out, cheap)
				case "p2":
					out = append(out, fancy)
				}
			}
			return out, nil
		})

	sessions := newSessions(t)
	h := handlers.NewCompareHandler(ms, sessions)

	c, rec := newSessionCtx(t, http.MethodPost, "/api/v1/compare/p1", "sess-1", "", "id", "p1")
	require.NoError(t, h.Add(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"added":true`)

	c, rec = newSessionCtx(t, http.MethodPost, "/api/v1/compare/p2", "sess-1", "", "id", "p2")
	require.NoError(t, h.Add(c))
	require.Equal(t, http.StatusOK, rec.Code)

	c, rec = newSessionCtx(t, http.MethodGet, "/api/v1/compare", "sess-1", "")
	require.NoError(t, h.Get(c))
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `"lowest_price_id":"p1"`)
	assert.Contains(t, body, `"highest_rating_id":"p2"`)
	assert.Contains(t, body, `"price":"p1"`)
	assert.Contains(t, body, `"rating":"p2"`)

	// Insertion order preserved.
	assert.Less(t,
		strings.Index(body, "Budget Keyboard"), strings.Index(body, "Mechanical Keyboard"),
		"first added product should come first")
}

func TestCompareHandler_AddDuplicate(t *testing.T) {
	t.Parallel()

	p := catalogProduct("p1", "SKU-1", "Keyboard")

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().GetProduct(mock.Anything, "p1").Return(&p, nil).Twice()
	ms.EXPECT().
		ListProductsByIDs(mock.Anything, []string{"p1"}).
		Return([]domain.Product{p}, nil)

	sessions := newSessions(t)
	h := handlers.NewCompareHandler(ms, sessions)

	c, rec := newSessionCtx(t, http.MethodPost, "/api/v1/compare/p1", "sess-1", "", "id", "p1")
	require.NoError(t, h.Add(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"added":true`)

	// A duplicate add is a no-op reported through the flag, not an error.
	c, rec = newSessionCtx(t, http.MethodPost, "/api/v1/compare/p1", "sess-1", "", "id", "p1")
	require.NoError(t, h.Add(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"added":false`)
}

func TestCompareHandler_AddBeyondCapacity(t *testing.T) {
	t.Parallel()

	products := make(map[string]domain.Product)
	for _, id := range []string{"p1", "p2", "p3", "p4", "p5"} {
		products[id] = catalogProduct(id, "SKU-"+id, "Product "+id)
	}

	ms := storeMocks.NewMockStore(t)
	for id := range products {
		p := products[id]
		ms.EXPECT().GetProduct(mock.Anything, id).Return(&p, nil).Once()
	}
	ms.EXPECT().
		ListProductsByIDs(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, ids []string) ([]domain.Product, error) {
			var out []domain.Product
			for _, id := range ids {
				out = append(out, products[id])
			}
			return out, nil
		})

	sessions := newSessions(t)
	h := handlers.NewCompareHandler(ms, sessions)

	for _, id := range []string{"p1", "p2", "p3", "p4"} {
		c, rec := newSessionCtx(t, http.MethodPost, "/api/v1/compare/"+id, "sess-1", "", "id", id)
		require.NoError(t, h.Add(c))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	// The fifth add is refused without mutating: the response still shows
	// the original four members.
	c, rec := newSessionCtx(t, http.MethodPost, "/api/v1/compare/p5", "sess-1", "", "id", "p5")
	require.NoError(t, h.Add(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"added":false`)
	assert.NotContains(t, rec.Body.String(), "Product p5")
}

func TestCompareHandler_AddMissingProduct(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().GetProduct(mock.Anything, "ghost").Return(nil, assert.AnError).Once()

	h := handlers.NewCompareHandler(ms, newSessions(t))

	c, rec := newSessionCtx(t, http.MethodPost, "/api/v1/compare/ghost", "sess-1", "", "id", "ghost")
	require.NoError(t, h.Add(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCompareHandler_RemoveAndClear(t *testing.T) {
	t.Parallel()

	p1 := catalogProduct("p1", "SKU-1", "Keyboard")
	p2 := catalogProduct("p2", "SKU-2", "Mouse")

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().GetProduct(mock.Anything, "p1").Return(&p1, nil).Once()
	ms.EXPECT().GetProduct(mock.Anything, "p2").Return(&p2, nil).Once()
	ms.EXPECT().
		ListProductsByIDs(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, ids []string) ([]domain.Product, error) {
			var out []domain.Product
			for _, id := range ids {
				if id == "p1" {
					out = append(out, p1)
				}
				if id == "p2" {
					out = append(out, p2)
				}
			}
			return out, nil
		})

	sessions := newSessions(t)
	h := handlers.NewCompareHandler(ms, sessions)

	for _, tc := range []struct{ id string }{{"p1"}, {"p2"}} {
		c, rec := newSessionCtx(t, http.MethodPost, "/api/v1/compare/"+tc.id, "sess-1", "", "id", tc.id)
		require.NoError(t, h.Add(c))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	c, rec := newSessionCtx(t, http.MethodDelete, "/api/v1/compare/p1", "sess-1", "", "id", "p1")
	require.NoError(t, h.Remove(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "Keyboard\"")

	// Winners reset below two members.
	assert.Contains(t, rec.Body.String(), `"winners":{}`)

	c, rec = newSessionCtx(t, http.MethodDelete, "/api/v1/compare", "sess-1", "")
	require.NoError(t, h.Clear(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	c, rec = newSessionCtx(t, http.MethodGet, "/api/v1/compare", "sess-1", "")
	require.NoError(t, h.Get(c))
	assert.Contains(t, rec.Body.String(), `"products":[]`)
}
