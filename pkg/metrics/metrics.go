// Package metrics publica as métricas operacionais da API no formato Prometheus
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/logistics-analytics-api/internal/domain"
)

// Manager concentra os coletores Prometheus da aplicação e implementa
// o Recorder usado pela agregação.
type Manager struct {
	namespace        string
	histogramBuckets []float64
	enabled          bool
	registry         *prometheus.Registry

	snapshotsCreated  *prometheus.CounterVec
	snapshotFailures  *prometheus.CounterVec
	collectDuration   *prometheus.HistogramVec
	sourceQueryTiming *prometheus.HistogramVec

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "logistics_analytics",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
		m.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.snapshotsCreated = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "snapshots_created_total",
		Help:      "Total de snapshots de analytics criados",
	}, []string{"range"})

	m.snapshotFailures = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "snapshot_failures_total",
		Help:      "Total de falhas na criação de snapshots, por motivo",
	}, []string{"range", "reason"})

	m.collectDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "snapshot_collect_seconds",
		Help:      "Duração da coleta de métricas de uma janela",
		Buckets:   m.histogramBuckets,
	}, []string{"range"})

	m.sourceQueryTiming = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "source_query_seconds",
		Help:      "Duração das consultas à fonte de métricas, por coleção",
		Buckets:   m.histogramBuckets,
	}, []string{"collection"})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Name:      "http_requests_total",
		Help:      "Total de requisições HTTP",
	}, []string{"method", "route", "status"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Name:      "http_request_duration_seconds",
		Help:      "Duração das requisições HTTP",
		Buckets:   m.histogramBuckets,
	}, []string{"method", "route"})
}

// Handler expõe o registro no formato de exposição do Prometheus
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry retorna o registro usado pelo Manager
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Manager) ObserveSourceQuery(collection domain.Collection, duration time.Duration) {
	if !m.enabled {
		return
	}
	m.sourceQueryTiming.WithLabelValues(string(collection)).Observe(duration.Seconds())
}

func (m *Manager) ObserveCollect(kind domain.PeriodKind, duration time.Duration) {
	if !m.enabled {
		return
	}
	m.collectDuration.WithLabelValues(kind.String()).Observe(duration.Seconds())
}

func (m *Manager) SnapshotCreated(kind domain.PeriodKind) {
	if !m.enabled {
		return
	}
	m.snapshotsCreated.WithLabelValues(kind.String()).Inc()
}

func (m *Manager) SnapshotFailed(kind domain.PeriodKind, reason string) {
	if !m.enabled {
		return
	}
	m.snapshotFailures.WithLabelValues(kind.String(), reason).Inc()
}

// ObserveHTTPRequest registra uma requisição atendida; route é o padrão da rota, não o path
func (m *Manager) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if !m.enabled {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}
