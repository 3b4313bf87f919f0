package analytics

import (
	"context"
	"time"

	"github.com/vfg2006/logistics-analytics-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/interfaces.go -package=mocks

// Analyzer é a interface exposta para a camada HTTP e para o agendador
type Analyzer interface {
	// CreateSnapshot agrega o período e o período anterior e persiste o snapshot
	CreateSnapshot(ctx context.Context, anchor time.Time, kind domain.PeriodKind) (*domain.AnalyticsSnapshot, error)

	// GetSnapshot busca o snapshot do tipo e da âncora informados
	GetSnapshot(ctx context.Context, anchor time.Time, kind domain.PeriodKind) (*domain.AnalyticsSnapshot, error)

	// UpdateSnapshot sobrescreve campos de métricas sem recalcular as comparações
	UpdateSnapshot(ctx context.Context, anchor time.Time, kind domain.PeriodKind, fields map[string]float64) (*domain.SnapshotUpdate, error)

	// GetSnapshotRange lista os snapshots com âncora no intervalo, em ordem crescente
	GetSnapshotRange(ctx context.Context, filter domain.SnapshotRangeFilter) ([]*domain.AnalyticsSnapshot, error)
}

// MetricsCollector agrega as métricas de uma janela
type MetricsCollector interface {
	Collect(ctx context.Context, window domain.Period) (domain.Metrics, error)
}

// Recorder recebe as medições operacionais da agregação
type Recorder interface {
	ObserveSourceQuery(collection domain.Collection, duration time.Duration)
	ObserveCollect(kind domain.PeriodKind, duration time.Duration)
	SnapshotCreated(kind domain.PeriodKind)
	SnapshotFailed(kind domain.PeriodKind, reason string)
}

// NopRecorder descarta todas as medições
type NopRecorder struct{}

func (NopRecorder) ObserveSourceQuery(domain.Collection, time.Duration) {}
func (NopRecorder) ObserveCollect(domain.PeriodKind, time.Duration)     {}
func (NopRecorder) SnapshotCreated(domain.PeriodKind)                   {}
func (NopRecorder) SnapshotFailed(domain.PeriodKind, string)            {}
