// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/logistics-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/logistics-analytics-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	analyticsSnapshotsTable = "analytics_snapshots"
)

var analyticsSnapshotColumns = []string{
	"id",
	"period_kind",
	"anchor_date",
	"start_date",
	"end_date",
	"metrics",
	"comparisons",
	"created_at",
	"updated_at",
}

//go:generate mockgen -source=analytics_snapshot.go -destination=mocks/analytics_snapshot.go -package=mocks

type AnalyticsSnapshotRepository interface {
	Exists(ctx context.Context, id string) (bool, error)
	Create(ctx context.Context, snapshot *domain.AnalyticsSnapshot) error
	GetByID(ctx context.Context, id string) (*domain.AnalyticsSnapshot, error)
	UpdateMetrics(ctx context.Context, id string, fields map[string]float64, updatedAt time.Time) (bool, error)
	GetByDateRange(ctx context.Context, filter domain.SnapshotRangeFilter) ([]*domain.AnalyticsSnapshot, error)
}

type analyticsSnapshotRepository struct {
	conn postgres.Queryer
}

func NewAnalyticsSnapshotRepository(conn postgres.Queryer) AnalyticsSnapshotRepository {
	return &analyticsSnapshotRepository{
		conn: conn,
	}
}

func (r *analyticsSnapshotRepository) Exists(ctx context.Context, id string) (bool, error) {
	query, args, err := squirrel.
		Select("1").
		From(analyticsSnapshotsTable).
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var found int
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&found)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("erro ao verificar snapshot: %w", err)
	}

	return true, nil
}

// Create insere um novo snapshot; retorna ErrDuplicateKey se o id já existe
func (r *analyticsSnapshotRepository) Create(ctx context.Context, snapshot *domain.AnalyticsSnapshot) error {
	metricsJSON, err := json.Marshal(snapshot.Metrics)
	if err != nil {
		return fmt.Errorf("erro ao serializar métricas para JSON: %w", err)
	}

	comparisonsJSON, err := json.Marshal(snapshot.Comparisons)
	if err != nil {
		return fmt.Errorf("erro ao serializar comparações para JSON: %w", err)
	}

	query, args, err := squirrel.
		Insert(analyticsSnapshotsTable).
		Columns(analyticsSnapshotColumns...).
		Values(
			snapshot.ID,
			snapshot.Range.String(),
			snapshot.Date,
			snapshot.StartDate,
			snapshot.EndDate,
			metricsJSON,
			comparisonsJSON,
			snapshot.CreatedAt,
			snapshot.UpdatedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("snapshot %s: %w", snapshot.ID, ErrDuplicateKey)
		}
		return fmt.Errorf("erro ao inserir snapshot: %w", err)
	}

	return nil
}

// GetByID retorna nil, nil quando o snapshot não existe
func (r *analyticsSnapshotRepository) GetByID(ctx context.Context, id string) (*domain.AnalyticsSnapshot, error) {
	query, args, err := squirrel.
		Select(analyticsSnapshotColumns...).
		From(analyticsSnapshotsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	snapshot, err := scanSnapshot(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
	}

	return snapshot, nil
}

// UpdateMetrics mescla os campos no documento de métricas e atualiza updated_at.
// Retorna false quando o snapshot não existe.
func (r *analyticsSnapshotRepository) UpdateMetrics(
	ctx context.Context,
	id string,
	fields map[string]float64,
	updatedAt time.Time,
) (bool, error) {
	fieldsJSON, err := json.Marshal(fields)
	if err != nil {
		return false, fmt.Errorf("erro ao serializar campos para JSON: %w", err)
	}

	query, args, err := squirrel.
		Update(analyticsSnapshotsTable).
		Set("metrics", squirrel.Expr("metrics || ?::jsonb", string(fieldsJSON))).
		Set("updated_at", updatedAt).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected > 0, nil
}

// GetByDateRange retorna os snapshots do tipo informado com âncora no intervalo
// inclusivo, ordenados pela âncora
func (r *analyticsSnapshotRepository) GetByDateRange(
	ctx context.Context,
	filter domain.SnapshotRangeFilter,
) ([]*domain.AnalyticsSnapshot, error) {
	query, args, err := squirrel.
		Select(analyticsSnapshotColumns...).
		From(analyticsSnapshotsTable).
		Where(squirrel.Eq{"period_kind": filter.Kind.String()}).
		Where(squirrel.GtOrEq{"anchor_date": filter.StartDate.Format(domain.DateLayout)}).
		Where(squirrel.LtOrEq{"anchor_date": filter.EndDate.Format(domain.DateLayout)}).
		OrderBy("anchor_date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	snapshots := make([]*domain.AnalyticsSnapshot, 0)
	for rows.Next() {
		snapshot, err := scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row rowScanner) (*domain.AnalyticsSnapshot, error) {
	snapshot := &domain.AnalyticsSnapshot{}
	var (
		kind            string
		anchorDate      time.Time
		metricsJSON     []byte
		comparisonsJSON []byte
	)

	err := row.Scan(
		&snapshot.ID,
		&kind,
		&anchorDate,
		&snapshot.StartDate,
		&snapshot.EndDate,
		&metricsJSON,
		&comparisonsJSON,
		&snapshot.CreatedAt,
		&snapshot.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	snapshot.Range = domain.PeriodKind(kind)
	snapshot.Date = anchorDate.Format(domain.DateLayout)

	if metricsJSON != nil {
		if err := json.Unmarshal(metricsJSON, &snapshot.Metrics); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de metrics: %w", err)
		}
	}

	snapshot.Comparisons = make(map[string]float64)
	if comparisonsJSON != nil {
		if err := json.Unmarshal(comparisonsJSON, &snapshot.Comparisons); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de comparisons: %w", err)
		}
	}

	return snapshot, nil
}
