package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/souqly/souqly/internal/api/handlers"
	handlerMocks "github.com/souqly/souqly/internal/api/handlers/mocks"
	storeMocks "github.com/souqly/souqly/internal/store/mocks"
	domain "github.com/souqly/souqly/pkg/types"
)

func TestAdminHandler_Ingest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		runErr     error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "success",
			runErr:     nil,
			wantStatus: http.StatusOK,
			wantBody:   "ingestion completed",
		},
		{
			name:       "engine error",
			runErr:     assert.AnError,
			wantStatus: http.StatusInternalServerError,
			wantBody:   "ingestion failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ing := handlerMocks.NewMockIngester(t)
			ing.EXPECT().RunIngestion(mock.Anything).Return(tt.runErr).Once()
			h := handlers.NewAdminHandler(storeMocks.NewMockStore(t), ing, handlerMocks.NewMockRescorer(t))

			c, rec := newSessionCtx(t, http.MethodPost, "/api/v1/admin/ingest", "", "")
			require.NoError(t, h.Ingest(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestAdminHandler_Rescore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		runErr     error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "success",
			runErr:     nil,
			wantStatus: http.StatusOK,
			wantBody:   "rescore completed",
		},
		{
			name:       "engine error",
			runErr:     assert.AnError,
			wantStatus: http.StatusInternalServerError,
			wantBody:   "rescore failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := handlerMocks.NewMockRescorer(t)
			r.EXPECT().RunRescore(mock.Anything).Return(tt.runErr).Once()
			h := handlers.NewAdminHandler(storeMocks.NewMockStore(t), handlerMocks.NewMockIngester(t), r)

			c, rec := newSessionCtx(t, http.MethodPost, "/api/v1/admin/rescore", "", "")
			require.NoError(t, h.Rescore(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestAdminHandler_ListJobs(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		target     string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name:   "returns runs",
			target: "/api/v1/admin/jobs",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					ListJobRuns(mock.Anything, "", 20).
					Return([]domain.JobRun{{ID: "run-1", JobName: "ingestion", StartedAt: now}}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"run-1"`,
		},
		{
			name:   "filters by job name",
			target: "/api/v1/admin/jobs?job=rescore&limit=5",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().ListJobRuns(mock.Anything, "rescore", 5).Return(nil, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   "[]",
		},
		{
			name:       "invalid limit",
			target:     "/api/v1/admin/jobs?limit=zero",
			setupMock:  func(_ *storeMocks.MockStore) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   "invalid limit",
		},
		{
			name:   "store error",
			target: "/api/v1/admin/jobs",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().ListJobRuns(mock.Anything, "", 20).Return(nil, assert.AnError).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "listing job runs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)
			h := handlers.NewAdminHandler(ms, handlerMocks.NewMockIngester(t), handlerMocks.NewMockRescorer(t))

			c, rec := newSessionCtx(t, http.MethodGet, tt.target, "", "")
			require.NoError(t, h.ListJobs(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestAdminHandler_Stats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		setupMock  func(*storeMocks.MockStore)
		wantStatus int
		wantBody   string
	}{
		{
			name: "returns stats",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().
					GetDashboardStats(mock.Anything).
					Return(&domain.DashboardStats{ProductsTotal: 42}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"products_total":42`,
		},
		{
			name: "store error",
			setupMock: func(m *storeMocks.MockStore) {
				m.EXPECT().GetDashboardStats(mock.Anything).Return(nil, assert.AnError).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "fetching stats",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ms := storeMocks.NewMockStore(t)
			tt.setupMock(ms)
			h := handlers.NewAdminHandler(ms, handlerMocks.NewMockIngester(t), handlerMocks.NewMockRescorer(t))

			c, rec := newSessionCtx(t, http.MethodGet, "/api/v1/admin/stats", "", "")
			require.NoError(t, h.Stats(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}
