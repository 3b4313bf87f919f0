package main

import (
	"context"
	"database/sql"
	"time"

	"github.com/vfg2006/logistics-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/logistics-analytics-api/internal/config"
	"github.com/vfg2006/logistics-analytics-api/pkg/log"
)

// statements cria a tabela de snapshots; todas são idempotentes
var statements = []string{
	`CREATE TABLE IF NOT EXISTS analytics_snapshots (
		id          TEXT PRIMARY KEY,
		period_kind TEXT NOT NULL CHECK (period_kind IN ('day', 'week', 'month', 'year')),
		anchor_date DATE NOT NULL,
		start_date  TIMESTAMPTZ NOT NULL,
		end_date    TIMESTAMPTZ NOT NULL,
		metrics     JSONB NOT NULL DEFAULT '{}'::jsonb,
		comparisons JSONB NOT NULL DEFAULT '{}'::jsonb,
		created_at  TIMESTAMPTZ NOT NULL,
		updated_at  TIMESTAMPTZ NOT NULL,
		CHECK (start_date <= end_date)
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS analytics_snapshots_kind_date_idx
		ON analytics_snapshots (period_kind, anchor_date)`,
}

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.L.Fatal(err)
	}
	log.Configure(cfg.App.LogLevel)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	log.L.Info("Iniciando script de migração...")
	startTime := time.Now()

	if err := migrate(ctx, conn); err != nil {
		log.L.WithError(err).Fatal("Migração revertida")
	}

	log.L.WithField("duration", time.Since(startTime).String()).Info("Migração concluída com sucesso")
}

func migrate(ctx context.Context, conn postgres.Conn) error {
	return conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for i, statement := range statements {
			if _, err := tx.ExecContext(ctx, statement); err != nil {
				log.L.WithField("statement", i).WithError(err).Error("ERRO ao executar statement")
				return err
			}
		}
		return nil
	})
}
