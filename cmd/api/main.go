package main

import (
	"context"
	"os"
	"path"
	"runtime"

	"github.com/vfg2006/logistics-analytics-api/infrastructure/database/postgres"
	"github.com/vfg2006/logistics-analytics-api/infrastructure/repository"
	"github.com/vfg2006/logistics-analytics-api/internal/api"
	"github.com/vfg2006/logistics-analytics-api/internal/config"
	"github.com/vfg2006/logistics-analytics-api/internal/scheduler"
	"github.com/vfg2006/logistics-analytics-api/internal/usecases/analytics"
	"github.com/vfg2006/logistics-analytics-api/internal/usecases/authenticating"
	"github.com/vfg2006/logistics-analytics-api/pkg/log"
	"github.com/vfg2006/logistics-analytics-api/pkg/metrics"
)

func main() {
	changeToSourceDir()

	cfg, err := config.NewConfig()
	if err != nil {
		log.L.Fatal(err)
	}

	log.Configure(cfg.App.LogLevel)
	log.L.WithField("timezone", cfg.App.Location.String()).Info("Configuração carregada")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	metricsManager := metrics.NewManager(
		metrics.WithNamespace(cfg.Metrics.Namespace),
		metrics.WithMetricsEnabled(cfg.Metrics.Enabled),
	)

	snapshotRepo := repository.NewAnalyticsSnapshotRepository(pgConn)
	metricsSourceRepo := repository.NewMetricsSourceRepository(pgConn)

	collector := analytics.NewCollector(metricsSourceRepo, metricsManager)
	analyticsService := analytics.NewService(collector, snapshotRepo, analytics.WithRecorder(metricsManager))

	authenticator := authenticating.NewService(cfg.Auth)

	snapshotSyncService := scheduler.NewSnapshotSyncService(analyticsService, cfg)
	if err := snapshotSyncService.Start(ctx); err != nil {
		log.L.WithError(err).Error("Erro ao iniciar o agendador de snapshots")
	} else {
		log.L.Info("Agendador de snapshots iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		analyticsService,
		authenticator,
		snapshotSyncService,
		metricsManager,
		pgConn,
	)
	if err != nil {
		log.L.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		log.L.Error(err)
	}
}

// changeToSourceDir permite encontrar o .env ao rodar com go run
func changeToSourceDir() {
	_, file, _, _ := runtime.Caller(0)
	_ = os.Chdir(path.Dir(file))
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	log.L.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
