package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/logistics-analytics-api/pkg/apiErrors"
)

func TestRouter_MiddlewareOrder(t *testing.T) {
	var calls []string
	tag := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls = append(calls, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	rt := New(WithRoutes(Route{
		Path:        "/analytics",
		Method:      http.MethodGet,
		Handler:     http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { calls = append(calls, "handler") }),
		Middlewares: []func(http.Handler) http.Handler{tag("first"), tag("second")},
	}))

	rt.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/analytics", nil))

	assert.Equal(t, []string{"first", "second", "handler"}, calls)
}

func TestRouter_UnknownRoutes(t *testing.T) {
	rt := New(WithRoutes(Route{
		Path:    "/analytics",
		Method:  http.MethodGet,
		Handler: http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}),
	}))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reports", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrResourceNotFound)

	rec = httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/analytics", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrInvalidRequest)
}
