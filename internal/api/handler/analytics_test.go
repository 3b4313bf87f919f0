package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/logistics-analytics-api/internal/api/handler/router"
	"github.com/vfg2006/logistics-analytics-api/internal/domain"
	"github.com/vfg2006/logistics-analytics-api/internal/usecases/analytics"
	"github.com/vfg2006/logistics-analytics-api/internal/usecases/analytics/mocks"
	"github.com/vfg2006/logistics-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/logistics-analytics-api/pkg/middleware"
	"go.uber.org/mock/gomock"
)

var (
	manager = &domain.Claims{UserID: "ops-1", Permissions: []string{domain.PermissionManageAnalytics}}
	viewer  = &domain.Claims{UserID: "bi-1", Permissions: []string{domain.PermissionViewAnalytics}}
)

func anchor(s string) time.Time {
	t, _ := time.ParseInLocation(domain.DateLayout, s, time.UTC)
	return t
}

func serve(analyzer analytics.Analyzer, method, target, body string, claims *domain.Claims) *httptest.ResponseRecorder {
	rt := router.New(router.WithRoutes(Analytics(analyzer, time.UTC)...))

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if claims != nil {
		req = req.WithContext(middleware.WithClaims(req.Context(), claims))
	}

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func TestCreateSnapshot(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		claims     *domain.Claims
		setup      func(a *mocks.MockAnalyzer)
		wantStatus int
		wantCode   string
		wantDetail string
	}{
		{
			name:   "cria snapshot diário",
			target: "/analytics/2025-07-22",
			claims: manager,
			setup: func(a *mocks.MockAnalyzer) {
				a.EXPECT().CreateSnapshot(gomock.Any(), anchor("2025-07-22"), domain.PeriodDay).
					Return(&domain.AnalyticsSnapshot{ID: "day_2025-07-22", Range: domain.PeriodDay, Date: "2025-07-22"}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:   "cria snapshot mensal",
			target: "/analytics/2025-03-01?range=month",
			claims: manager,
			setup: func(a *mocks.MockAnalyzer) {
				a.EXPECT().CreateSnapshot(gomock.Any(), anchor("2025-03-01"), domain.PeriodMonth).
					Return(&domain.AnalyticsSnapshot{ID: "month_2025-03-01"}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "data malformada",
			target:     "/analytics/22-07-2025",
			claims:     manager,
			setup:      func(*mocks.MockAnalyzer) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name:       "data fora do calendário",
			target:     "/analytics/2025-02-30",
			claims:     manager,
			setup:      func(*mocks.MockAnalyzer) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name:       "range inválido",
			target:     "/analytics/2025-07-22?range=decade",
			claims:     manager,
			setup:      func(*mocks.MockAnalyzer) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name:       "somente visualização",
			target:     "/analytics/2025-07-22",
			claims:     viewer,
			setup:      func(*mocks.MockAnalyzer) {},
			wantStatus: http.StatusForbidden,
			wantCode:   apiErrors.ErrInsufficientPrivilege,
		},
		{
			name:   "snapshot duplicado",
			target: "/analytics/2025-07-22",
			claims: manager,
			setup: func(a *mocks.MockAnalyzer) {
				a.EXPECT().CreateSnapshot(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, analytics.ErrDuplicateSnapshot)
			},
			wantStatus: http.StatusConflict,
			wantCode:   apiErrors.ErrResourceConflict,
		},
		{
			name:   "falha na fonte de métricas",
			target: "/analytics/2025-07-22",
			claims: manager,
			setup: func(a *mocks.MockAnalyzer) {
				a.EXPECT().CreateSnapshot(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, &analytics.DataSourceError{Collection: domain.CollectionPayments, Err: errors.New("timeout")})
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   apiErrors.ErrInternalServer,
			wantDetail: `"collection":"payments"`,
		},
		{
			name:   "erro inesperado",
			target: "/analytics/2025-07-22",
			claims: manager,
			setup: func(a *mocks.MockAnalyzer) {
				a.EXPECT().CreateSnapshot(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   apiErrors.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			analyzer := mocks.NewMockAnalyzer(ctrl)
			tt.setup(analyzer)

			rec := serve(analyzer, http.MethodPost, tt.target, "", tt.claims)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, rec).Code)
			}
			if tt.wantDetail != "" {
				assert.Contains(t, rec.Body.String(), tt.wantDetail)
			}
		})
	}
}

func TestGetSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	analyzer := mocks.NewMockAnalyzer(ctrl)
	analyzer.EXPECT().GetSnapshot(gomock.Any(), anchor("2025-07-22"), domain.PeriodDay).
		Return(&domain.AnalyticsSnapshot{
			ID:          "day_2025-07-22",
			Range:       domain.PeriodDay,
			Date:        "2025-07-22",
			Metrics:     domain.Metrics{TotalRevenue: 175.5},
			Comparisons: map[string]float64{"totalRevenueChange": 50},
		}, nil)
	analyzer.EXPECT().GetSnapshot(gomock.Any(), anchor("2025-07-23"), domain.PeriodDay).
		Return(nil, analytics.ErrSnapshotNotFound)

	rec := serve(analyzer, http.MethodGet, "/analytics/2025-07-22", "", viewer)
	require.Equal(t, http.StatusOK, rec.Code)

	var snapshot domain.AnalyticsSnapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snapshot))
	assert.Equal(t, "day_2025-07-22", snapshot.ID)
	assert.Equal(t, 175.5, snapshot.TotalRevenue)
	assert.Equal(t, 50.0, snapshot.Comparisons["totalRevenueChange"])

	rec = serve(analyzer, http.MethodGet, "/analytics/2025-07-23", "", viewer)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrResourceNotFound, decodeError(t, rec).Code)

	rec = serve(analyzer, http.MethodGet, "/analytics/2025-07-22", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpdateSnapshot(t *testing.T) {
	updatedAt := time.Date(2025, time.July, 23, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		body       string
		setup      func(a *mocks.MockAnalyzer)
		wantStatus int
	}{
		{
			name: "atualiza receita",
			body: `{"totalRevenue": 1200.5}`,
			setup: func(a *mocks.MockAnalyzer) {
				a.EXPECT().UpdateSnapshot(gomock.Any(), anchor("2025-07-22"), domain.PeriodDay, map[string]float64{"totalRevenue": 1200.5}).
					Return(&domain.SnapshotUpdate{ID: "day_2025-07-22", Fields: map[string]float64{"totalRevenue": 1200.5}, UpdatedAt: updatedAt}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:       "corpo não numérico",
			body:       `{"totalRevenue": "muito"}`,
			setup:      func(*mocks.MockAnalyzer) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "corpo inválido",
			body:       `[1, 2`,
			setup:      func(*mocks.MockAnalyzer) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "campo desconhecido",
			body: `{"comparisons": 1}`,
			setup: func(a *mocks.MockAnalyzer) {
				a.EXPECT().UpdateSnapshot(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, analytics.ErrInvalidUpdate)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "snapshot inexistente",
			body: `{"totalUsers": 10}`,
			setup: func(a *mocks.MockAnalyzer) {
				a.EXPECT().UpdateSnapshot(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, analytics.ErrSnapshotNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			analyzer := mocks.NewMockAnalyzer(ctrl)
			tt.setup(analyzer)

			rec := serve(analyzer, http.MethodPut, "/analytics/2025-07-22", tt.body, manager)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestGetSnapshotRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	analyzer := mocks.NewMockAnalyzer(ctrl)
	analyzer.EXPECT().GetSnapshotRange(gomock.Any(), domain.SnapshotRangeFilter{
		Kind:      domain.PeriodDay,
		StartDate: anchor("2025-07-01"),
		EndDate:   anchor("2025-07-03"),
	}).Return([]*domain.AnalyticsSnapshot{
		{ID: "day_2025-07-01", Date: "2025-07-01"},
		{ID: "day_2025-07-02", Date: "2025-07-02"},
		{ID: "day_2025-07-03", Date: "2025-07-03"},
	}, nil)
	analyzer.EXPECT().GetSnapshotRange(gomock.Any(), gomock.Any()).Return(nil, nil)

	rec := serve(analyzer, http.MethodGet, "/analytics?startDate=2025-07-01&endDate=2025-07-03", "", viewer)
	require.Equal(t, http.StatusOK, rec.Code)

	var snapshots []domain.AnalyticsSnapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snapshots))
	require.Len(t, snapshots, 3)
	assert.Equal(t, "2025-07-01", snapshots[0].Date)
	assert.Equal(t, "2025-07-03", snapshots[2].Date)

	rec = serve(analyzer, http.MethodGet, "/analytics?startDate=2025-01-01&endDate=2025-12-31&range=month", "", manager)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = serve(analyzer, http.MethodGet, "/analytics?startDate=2025-07-01", "", viewer)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrMissingRequiredData, decodeError(t, rec).Code)

	rec = serve(analyzer, http.MethodGet, "/analytics?startDate=2025-07-01&endDate=julho", "", viewer)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
