package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/logistics-analytics-api/internal/domain"
)

func TestManager_Recorder(t *testing.T) {
	manager := NewManager(WithRegistry(prometheus.NewRegistry()), WithNamespace("test"))

	manager.SnapshotCreated(domain.PeriodDay)
	manager.SnapshotCreated(domain.PeriodDay)
	manager.SnapshotCreated(domain.PeriodMonth)
	manager.SnapshotFailed(domain.PeriodWeek, "data_source")
	manager.ObserveCollect(domain.PeriodDay, 250*time.Millisecond)
	manager.ObserveSourceQuery(domain.CollectionPayments, 10*time.Millisecond)

	assert.Equal(t, float64(2), testutil.ToFloat64(manager.snapshotsCreated.WithLabelValues("day")))
	assert.Equal(t, float64(1), testutil.ToFloat64(manager.snapshotsCreated.WithLabelValues("month")))
	assert.Equal(t, float64(1), testutil.ToFloat64(manager.snapshotFailures.WithLabelValues("week", "data_source")))
	assert.Equal(t, 1, testutil.CollectAndCount(manager.collectDuration))
	assert.Equal(t, 1, testutil.CollectAndCount(manager.sourceQueryTiming))
}

func TestManager_Disabled(t *testing.T) {
	manager := NewManager(WithRegistry(prometheus.NewRegistry()), WithMetricsEnabled(false))

	manager.SnapshotCreated(domain.PeriodDay)
	manager.ObserveHTTPRequest(http.MethodGet, "/analytics/:date", http.StatusOK, time.Millisecond)

	assert.Equal(t, 0, testutil.CollectAndCount(manager.snapshotsCreated))
	assert.Equal(t, 0, testutil.CollectAndCount(manager.httpRequests))
}

func TestManager_Handler(t *testing.T) {
	manager := NewManager(WithRegistry(prometheus.NewRegistry()))
	manager.ObserveHTTPRequest(http.MethodPost, "/analytics/:date", http.StatusCreated, 5*time.Millisecond)

	rec := httptest.NewRecorder()
	manager.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `logistics_analytics_http_requests_total{method="POST",route="/analytics/:date",status="201"} 1`)
}
