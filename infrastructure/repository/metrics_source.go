package repository

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/logistics-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/logistics-analytics-api/internal/domain"
)

//go:generate mockgen -source=metrics_source.go -destination=mocks/metrics_source.go -package=mocks

// MetricsSourceRepository é a fonte de registros operacionais usada pela agregação.
// É somente leitura e não há consistência entre coleções diferentes.
type MetricsSourceRepository interface {
	Find(ctx context.Context, query domain.SourceQuery) ([]domain.Record, error)
	Count(ctx context.Context, query domain.SourceQuery) (int64, error)
	// CountDistinctActors conta atores distintos, ignorando registros sem ator
	CountDistinctActors(ctx context.Context, query domain.SourceQuery) (int64, error)
}

// collectionProjection mapeia uma coleção para sua tabela e para as colunas de domain.Record
type collectionProjection struct {
	table       string
	actor       string
	status      string
	method      string
	amount      string
	completedAt string
	filters     map[string]string // campo lógico -> coluna
}

var collectionProjections = map[domain.Collection]collectionProjection{
	domain.CollectionActivity: {
		table:       "activity_logs",
		actor:       "COALESCE(user_id::text, '')",
		status:      "''",
		method:      "''",
		amount:      "0::float8",
		completedAt: "NULL::timestamptz",
		filters:     map[string]string{},
	},
	domain.CollectionCargo: bookingProjection("cargo_bookings"),
	domain.CollectionAgri:  bookingProjection("agri_bookings"),
	domain.CollectionPayments: {
		table:       "payments",
		actor:       "COALESCE(user_id::text, '')",
		status:      "COALESCE(status, '')",
		method:      "COALESCE(LOWER(method), '')",
		amount:      "COALESCE(amount, 0)::float8",
		completedAt: "NULL::timestamptz",
		filters:     map[string]string{domain.FieldStatus: "status"},
	},
	domain.CollectionTransporters: partnerProjection("transporters"),
	domain.CollectionBrokers:      partnerProjection("brokers"),
	domain.CollectionUsers: {
		table:       "users",
		actor:       "id::text",
		status:      "''",
		method:      "''",
		amount:      "0::float8",
		completedAt: "NULL::timestamptz",
		filters:     map[string]string{},
	},
	domain.CollectionSubscribers: {
		table:       "subscribers",
		actor:       "COALESCE(user_id::text, '')",
		status:      "CASE WHEN active THEN 'active' ELSE 'inactive' END",
		method:      "''",
		amount:      "0::float8",
		completedAt: "NULL::timestamptz",
		filters:     map[string]string{domain.FieldActive: "active"},
	},
}

func bookingProjection(table string) collectionProjection {
	return collectionProjection{
		table:       table,
		actor:       "COALESCE(shipper_id::text, '')",
		status:      "COALESCE(status, '')",
		method:      "''",
		amount:      "0::float8",
		completedAt: "completed_at",
		filters:     map[string]string{domain.FieldStatus: "status"},
	}
}

func partnerProjection(table string) collectionProjection {
	return collectionProjection{
		table:       table,
		actor:       "COALESCE(user_id::text, '')",
		status:      "COALESCE(status, '')",
		method:      "''",
		amount:      "0::float8",
		completedAt: "NULL::timestamptz",
		filters:     map[string]string{domain.FieldStatus: "status"},
	}
}

func (p collectionProjection) columns() []string {
	return []string{
		"id::text",
		p.actor,
		p.status,
		p.method,
		p.amount,
		"created_at",
		p.completedAt,
	}
}

type metricsSourceRepository struct {
	conn postgres.Queryer
}

func NewMetricsSourceRepository(conn postgres.Queryer) MetricsSourceRepository {
	return &metricsSourceRepository{
		conn: conn,
	}
}

func (r *metricsSourceRepository) Find(ctx context.Context, query domain.SourceQuery) ([]domain.Record, error) {
	builder, err := r.selectFor(query)
	if err != nil {
		return nil, err
	}

	sqlQuery, args, err := builder.OrderBy("created_at ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query em %s: %w", query.Collection, err)
	}
	defer rows.Close()

	records := make([]domain.Record, 0)
	for rows.Next() {
		var (
			record                domain.Record
			actor, status, method sql.NullString
			amount                sql.NullFloat64
			completedAt           sql.NullTime
		)

		err := rows.Scan(
			&record.ID,
			&actor,
			&status,
			&method,
			&amount,
			&record.CreatedAt,
			&completedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear registro de %s: %w", query.Collection, err)
		}

		// Colunas externas sem nulidade declarada: NULL vira valor zero
		record.ActorID = actor.String
		record.Status = status.String
		record.Method = method.String
		record.Amount = amount.Float64

		if completedAt.Valid {
			t := completedAt.Time
			record.CompletedAt = &t
		}

		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

func (r *metricsSourceRepository) Count(ctx context.Context, query domain.SourceQuery) (int64, error) {
	builder, err := r.selectFor(query, "COUNT(*)")
	if err != nil {
		return 0, err
	}

	return r.scanCount(ctx, query.Collection, builder)
}

func (r *metricsSourceRepository) CountDistinctActors(ctx context.Context, query domain.SourceQuery) (int64, error) {
	projection, ok := collectionProjections[query.Collection]
	if !ok {
		return 0, fmt.Errorf("coleção desconhecida: %q", query.Collection)
	}

	builder, err := r.selectFor(query, fmt.Sprintf("COUNT(DISTINCT NULLIF(%s, ''))", projection.actor))
	if err != nil {
		return 0, err
	}

	return r.scanCount(ctx, query.Collection, builder)
}

func (r *metricsSourceRepository) scanCount(
	ctx context.Context,
	collection domain.Collection,
	builder squirrel.SelectBuilder,
) (int64, error) {
	sqlQuery, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int64
	if err := r.conn.QueryRowContext(ctx, sqlQuery, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar registros de %s: %w", collection, err)
	}

	return count, nil
}

// selectFor monta o SELECT com os filtros de janela e de igualdade da consulta
func (r *metricsSourceRepository) selectFor(
	query domain.SourceQuery,
	columns ...string,
) (squirrel.SelectBuilder, error) {
	projection, ok := collectionProjections[query.Collection]
	if !ok {
		return squirrel.SelectBuilder{}, fmt.Errorf("coleção desconhecida: %q", query.Collection)
	}

	if len(columns) == 0 {
		columns = projection.columns()
	}

	builder := squirrel.
		Select(columns...).
		From(projection.table).
		PlaceholderFormat(squirrel.Dollar)

	if query.Window != nil {
		builder = builder.
			Where(squirrel.GtOrEq{"created_at": query.Window.Start}).
			Where(squirrel.LtOrEq{"created_at": query.Window.End})
	}

	if len(query.Equals) > 0 {
		eq := squirrel.Eq{}
		for _, field := range sortedKeys(query.Equals) {
			column, ok := projection.filters[field]
			if !ok {
				return squirrel.SelectBuilder{}, fmt.Errorf("campo %q não pode ser filtrado em %s", field, query.Collection)
			}
			eq[column] = query.Equals[field]
		}
		builder = builder.Where(eq)
	}

	return builder, nil
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
