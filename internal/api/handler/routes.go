package handler

import (
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/logistics-analytics-api/internal/api/handler/router"
	"github.com/vfg2006/logistics-analytics-api/internal/usecases/analytics"
	"github.com/vfg2006/logistics-analytics-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// MetricsExporter expõe as métricas operacionais no formato Prometheus
type MetricsExporter interface {
	middleware.HTTPObserver
	Handler() http.Handler
}

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Metrics(exporter MetricsExporter) []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: exporter.Handler(),
		},
	}
}

func Analytics(service analytics.Analyzer, location *time.Location) []router.Route {
	return []router.Route{
		{
			Path:        "/analytics",
			Method:      http.MethodGet,
			Handler:     GetSnapshotRange(service, location),
			Middlewares: []func(http.Handler) http.Handler{middleware.ViewAnalytics()},
		},
		{
			Path:        "/analytics/:date",
			Method:      http.MethodPost,
			Handler:     CreateSnapshot(service, location),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManageAnalytics()},
		},
		{
			Path:        "/analytics/:date",
			Method:      http.MethodGet,
			Handler:     GetSnapshot(service, location),
			Middlewares: []func(http.Handler) http.Handler{middleware.ViewAnalytics()},
		},
		{
			Path:        "/analytics/:date",
			Method:      http.MethodPut,
			Handler:     UpdateSnapshot(service, location),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManageAnalytics()},
		},
	}
}

func CronJobs(services CronJobServices, location *time.Location) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services, location),
			Middlewares: []func(http.Handler) http.Handler{middleware.SuperAdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.ManageAnalytics()},
		},
	}
}

// Instrument registra duração e status de cada rota pelo padrão do caminho
func Instrument(observer middleware.HTTPObserver, routes []router.Route) []router.Route {
	instrumented := make([]router.Route, 0, len(routes))
	for _, route := range routes {
		route.Middlewares = append(
			[]func(http.Handler) http.Handler{middleware.RequestMetrics(observer, route.Path)},
			route.Middlewares...,
		)
		instrumented = append(instrumented, route)
	}
	return instrumented
}
