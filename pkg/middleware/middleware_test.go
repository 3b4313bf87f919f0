package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/logistics-analytics-api/internal/domain"
	"github.com/vfg2006/logistics-analytics-api/internal/usecases/authenticating"
	"github.com/vfg2006/logistics-analytics-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/logistics-analytics-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
})

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		header     string
		setup      func(auth *mocks.MockAuthenticator)
		wantStatus int
	}{
		{
			name:       "rota pública sem token",
			path:       "/healthcheck",
			setup:      func(*mocks.MockAuthenticator) {},
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "sem cabeçalho",
			path:       "/analytics/2025-07-22",
			setup:      func(*mocks.MockAuthenticator) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "esquema diferente de bearer",
			path:       "/analytics/2025-07-22",
			header:     "Basic dXNlcjpwYXNz",
			setup:      func(*mocks.MockAuthenticator) {},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "token expirado",
			path:   "/analytics/2025-07-22",
			header: "Bearer expired",
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("expired").
					Return(nil, authenticating.NewAuthError(authenticating.ErrExpiredToken, apiErrors.ErrExpiredToken, ""))
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "token válido",
			path:   "/analytics/2025-07-22",
			header: "Bearer good",
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("good").Return(&domain.Claims{UserID: "u1"}, nil)
			},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			auth := mocks.NewMockAuthenticator(ctrl)
			tt.setup(auth)

			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(auth)(okHandler).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRequirePermission(t *testing.T) {
	tests := []struct {
		name       string
		claims     *domain.Claims
		middleware func(http.Handler) http.Handler
		wantStatus int
	}{
		{
			name:       "sem claims",
			middleware: ViewAnalytics(),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "visualização com view_analytics",
			claims:     &domain.Claims{UserID: "u1", Permissions: []string{domain.PermissionViewAnalytics}},
			middleware: ViewAnalytics(),
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "visualização com manage_analytics",
			claims:     &domain.Claims{UserID: "u1", Permissions: []string{domain.PermissionManageAnalytics}},
			middleware: ViewAnalytics(),
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "gestão com apenas view_analytics",
			claims:     &domain.Claims{UserID: "u1", Permissions: []string{domain.PermissionViewAnalytics}},
			middleware: ManageAnalytics(),
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "super_admin acessa tudo",
			claims:     &domain.Claims{UserID: "root", Permissions: []string{domain.PermissionSuperAdmin}},
			middleware: ManageAnalytics(),
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "rota administrativa sem super_admin",
			claims:     &domain.Claims{UserID: "u1", Permissions: []string{domain.PermissionManageAnalytics}},
			middleware: SuperAdminOnly(),
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/analytics", nil)
			if tt.claims != nil {
				req = req.WithContext(WithClaims(req.Context(), tt.claims))
			}
			rec := httptest.NewRecorder()

			tt.middleware(okHandler).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

type recordingObserver struct {
	method, route string
	status        int
}

func (o *recordingObserver) ObserveHTTPRequest(method, route string, status int, _ time.Duration) {
	o.method, o.route, o.status = method, route, status
}

func TestLoggingAndMetrics(t *testing.T) {
	observer := &recordingObserver{}
	handler := LoggingMiddleware()(RequestMetrics(observer, "/analytics/:date")(okHandler))

	req := httptest.NewRequest(http.MethodPost, "/analytics/2025-07-22", nil)
	req.Header.Set(CorrelationIDHeader, "abc-123")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, "abc-123", rec.Header().Get(CorrelationIDHeader))
	assert.Equal(t, http.MethodPost, observer.method)
	assert.Equal(t, "/analytics/:date", observer.route)
	assert.Equal(t, http.StatusNoContent, observer.status)
}

func TestLogPanicMiddleware(t *testing.T) {
	panicking := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(errors.New("boom"))
	})

	rec := httptest.NewRecorder()
	LogPanicMiddleware()(panicking).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/analytics", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrInternalServer)
}
