package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/souqly/souqly/internal/api/handlers"
	storeMocks "github.com/souqly/souqly/internal/store/mocks"
	domain "github.com/souqly/souqly/pkg/types"
)

func TestSearchHandler_Search(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name: "returns matches",
			path: "/api/v1/search?q=keyboard",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					SearchProducts(mock.Anything, "keyboard", 24).
					Return([]domain.Product{catalogProduct("p1", "SKU-1", "Wireless Keyboard")}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"total":1`,
		},
		{
			name: "arabic term",
			path: "/api/v1/search?q=" + "%D9%85%D9%81%D8%A7%D8%AA%D9%8A%D8%AD",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					SearchProducts(mock.Anything, "مفاتيح", 24).
					Return(nil, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"products":[]`,
		},
		{
			name: "custom limit",
			path: "/api/v1/search?q=mouse&limit=5",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					SearchProducts(mock.Anything, "mouse", 5).
					Return(nil, nil).
					Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing term rejected",
			path:       "/api/v1/search",
			setupMock:  func(_ *storeMocks.MockStore) {},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "blank term rejected",
			path:       "/api/v1/search?q=%20%20",
			setupMock:  func(_ *storeMocks.MockStore) {},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name: "store error returns 500",
			path: "/api/v1/search?q=keyboard",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					SearchProducts(mock.Anything, "keyboard", 24).
					Return(nil, assert.AnError).
					Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `search failed`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)
			h := handlers.NewSearchHandler(ms, newSessions(t), 5)

			_, api := humatest.New(t)
			handlers.RegisterSearchRoutes(api, h)

			resp := api.Get(tt.path)
			require.Equal(t, tt.wantStatus, resp.Code)
			if tt.wantBody != "" {
				assert.Contains(t, resp.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestSearchHandler_RecordsRecentSearches(t *testing.T) {
	t.Parallel()

	ms := storeMocks.NewMockStore(t)
	ms.EXPECT().
		SearchProducts(mock.Anything, mock.Anything, 24).
		Return(nil, nil).
		Times(3)

	sessions := newSessions(t)
	h := handlers.NewSearchHandler(ms, sessions, 5)

	_, api := humatest.New(t)
	handlers.RegisterSearchRoutes(api, h)

	for _, term := range []string{"keyboard", "mouse", "keyboard"} {
		resp := api.Get("/api/v1/search?q="+term, "X-Session-ID: sess-1")
		require.Equal(t, http.StatusOK, resp.Code)
	}

	got := sessions.RecentSearches(context.Background(), "sess-1")
	assert.Equal(t, []string{"keyboard", "mouse"}, got,
		"repeat search moves the term to the front without duplicating it")
}
