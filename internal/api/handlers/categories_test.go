package handlers_test

import (
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

func TestCategoriesHandler_List(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name: "returns categories",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListCategories(mock.Anything).
					Return([]domain.Category{
						{
							Slug:     "electronics",
							Name:     domain.LocalizedText{En: "Electronics", Ar: "إلكترونيات"},
							Position: 1,
						},
					}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"electronics"`,
		},
		{
			name: "empty catalog returns empty array",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().ListCategories(mock.Anything).Return(nil, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"categories":[]`,
		},
		{
			name: "store error returns 500",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().ListCategories(mock.Anything).Return(nil, assert.AnError).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `listing categories`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)

			_, api := humatest.New(t)
			handlers.RegisterCategoryRoutes(api, handlers.NewCategoriesHandler(ms))

			resp := api.Get("/api/v1/categories")
			require.Equal(t, tt.wantStatus, resp.Code)
			assert.Contains(t, resp.Body.String(), tt.wantBody)
		})
	}
}
