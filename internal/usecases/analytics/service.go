// Package analytics implementa a agregação de métricas por período e o
// armazenamento dos snapshots resultantes.
package analytics

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/vfg2006/logistics-analytics-api/infrastructure/repository"
	"github.com/vfg2006/logistics-analytics-api/internal/domain"
	"github.com/vfg2006/logistics-analytics-api/pkg/log"
)

// Motivos de falha reportados ao Recorder
const (
	failureDuplicate  = "duplicate"
	failureDataSource = "data_source"
	failureStore      = "store"
	failureInvalid    = "invalid_period"
)

type Service struct {
	collector    MetricsCollector
	snapshotRepo repository.AnalyticsSnapshotRepository
	recorder     Recorder
	now          func() time.Time
}

// Option configura dependências opcionais do Service
type Option func(*Service)

// WithRecorder define o destino das medições operacionais
func WithRecorder(recorder Recorder) Option {
	return func(s *Service) {
		if recorder != nil {
			s.recorder = recorder
		}
	}
}

// WithClock substitui o relógio usado em createdAt/updatedAt
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func NewService(
	collector MetricsCollector,
	snapshotRepo repository.AnalyticsSnapshotRepository,
	opts ...Option,
) Analyzer {
	s := &Service{
		collector:    collector,
		snapshotRepo: snapshotRepo,
		recorder:     NopRecorder{},
		now:          time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Service) CreateSnapshot(
	ctx context.Context,
	anchor time.Time,
	kind domain.PeriodKind,
) (*domain.AnalyticsSnapshot, error) {
	logger := log.ForContext(ctx)

	window, err := ResolveWindow(anchor, kind)
	if err != nil {
		s.recorder.SnapshotFailed(kind, failureInvalid)
		return nil, err
	}

	previousWindow, err := ResolvePreviousWindow(anchor, kind)
	if err != nil {
		s.recorder.SnapshotFailed(kind, failureInvalid)
		return nil, err
	}

	id := domain.SnapshotID(kind, window.Anchor)

	exists, err := s.snapshotRepo.Exists(ctx, id)
	if err != nil {
		s.recorder.SnapshotFailed(kind, failureStore)
		return nil, fmt.Errorf("erro ao verificar snapshot %s: %w", id, err)
	}
	if exists {
		s.recorder.SnapshotFailed(kind, failureDuplicate)
		return nil, fmt.Errorf("%w: %s", ErrDuplicateSnapshot, id)
	}

	current, err := s.collector.Collect(ctx, window)
	if err != nil {
		s.recorder.SnapshotFailed(kind, failureDataSource)
		return nil, fmt.Errorf("erro ao coletar métricas do período %s: %w", id, err)
	}

	previous, err := s.collector.Collect(ctx, previousWindow)
	if err != nil {
		s.recorder.SnapshotFailed(kind, failureDataSource)
		return nil, fmt.Errorf("erro ao coletar métricas do período anterior a %s: %w", id, err)
	}

	now := s.now()
	snapshot := &domain.AnalyticsSnapshot{
		ID:          id,
		Range:       kind,
		Date:        window.AnchorDate(),
		StartDate:   window.Start,
		EndDate:     window.End,
		Metrics:     current,
		Comparisons: Compare(current.Values(), previous.Values()),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.snapshotRepo.Create(ctx, snapshot); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			s.recorder.SnapshotFailed(kind, failureDuplicate)
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSnapshot, id)
		}
		s.recorder.SnapshotFailed(kind, failureStore)
		return nil, fmt.Errorf("erro ao salvar snapshot %s: %w", id, err)
	}

	s.recorder.SnapshotCreated(kind)
	logger.WithField("snapshot_id", id).Infof("Snapshot %s criado", id)

	return snapshot, nil
}

func (s *Service) GetSnapshot(
	ctx context.Context,
	anchor time.Time,
	kind domain.PeriodKind,
) (*domain.AnalyticsSnapshot, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: tipo %q não suportado", ErrInvalidPeriod, kind)
	}

	id := domain.SnapshotID(kind, anchor)

	snapshot, err := s.snapshotRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar snapshot %s: %w", id, err)
	}
	if snapshot == nil {
		return nil, fmt.Errorf("%w: %s", ErrSnapshotNotFound, id)
	}

	return snapshot, nil
}

// UpdateSnapshot aceita apenas métricas conhecidas com valores finitos e não negativos
func (s *Service) UpdateSnapshot(
	ctx context.Context,
	anchor time.Time,
	kind domain.PeriodKind,
	fields map[string]float64,
) (*domain.SnapshotUpdate, error) {
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: tipo %q não suportado", ErrInvalidPeriod, kind)
	}

	if err := validateUpdate(fields); err != nil {
		return nil, err
	}

	id := domain.SnapshotID(kind, anchor)
	updatedAt := s.now()

	found, err := s.snapshotRepo.UpdateMetrics(ctx, id, fields, updatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao atualizar snapshot %s: %w", id, err)
	}
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrSnapshotNotFound, id)
	}

	log.ForContext(ctx).WithField("snapshot_id", id).Infof("Snapshot %s atualizado (%d campos)", id, len(fields))

	return &domain.SnapshotUpdate{
		ID:        id,
		Fields:    fields,
		UpdatedAt: updatedAt,
	}, nil
}

func (s *Service) GetSnapshotRange(
	ctx context.Context,
	filter domain.SnapshotRangeFilter,
) ([]*domain.AnalyticsSnapshot, error) {
	if !filter.Kind.IsValid() {
		return nil, fmt.Errorf("%w: tipo %q não suportado", ErrInvalidPeriod, filter.Kind)
	}

	if filter.StartDate.After(filter.EndDate) {
		return nil, fmt.Errorf("%w: data inicial %s posterior à data final %s",
			ErrInvalidPeriod,
			filter.StartDate.Format(domain.DateLayout),
			filter.EndDate.Format(domain.DateLayout),
		)
	}

	snapshots, err := s.snapshotRepo.GetByDateRange(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar snapshots por intervalo: %w", err)
	}

	return snapshots, nil
}

func validateUpdate(fields map[string]float64) error {
	if len(fields) == 0 {
		return fmt.Errorf("%w: nenhum campo informado", ErrInvalidUpdate)
	}

	for name, value := range fields {
		if !domain.IsMetric(name) {
			return fmt.Errorf("%w: campo %q não pode ser atualizado", ErrInvalidUpdate, name)
		}
		if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
			return fmt.Errorf("%w: valor inválido para %q", ErrInvalidUpdate, name)
		}
	}

	return nil
}
