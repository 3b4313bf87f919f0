package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/vfg2006/logistics-analytics-api/internal/config"
	"github.com/vfg2006/logistics-analytics-api/internal/domain"
	"github.com/vfg2006/logistics-analytics-api/internal/usecases/analytics"
	"github.com/vfg2006/logistics-analytics-api/pkg/log"
	"github.com/vfg2006/logistics-analytics-api/pkg/utils"
)

// SnapshotSyncConfig representa a configuração do agendador de snapshots
type SnapshotSyncConfig struct {
	CronSchedule      string
	Kinds             []domain.PeriodKind
	MaxConcurrentJobs int
	SyncEnabled       bool
	Location          *time.Location
}

// SnapshotSyncResult resume uma execução do agendador
type SnapshotSyncResult struct {
	RunID     string    `json:"run_id"`
	Reference string    `json:"reference_date"`
	Created   []string  `json:"created"`
	Skipped   []string  `json:"skipped"`
	Failed    []string  `json:"failed"`
	StartedAt time.Time `json:"started_at"`
	Duration  string    `json:"duration"`
}

// SnapshotSyncService gera diariamente os snapshots dos períodos encerrados
type SnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	config              SnapshotSyncConfig
	analyzer            analytics.Analyzer
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResult          *SnapshotSyncResult
}

// NewSnapshotSyncService cria o agendador a partir da configuração da aplicação
func NewSnapshotSyncService(analyzer analytics.Analyzer, appConfig *config.Config) *SnapshotSyncService {
	location := appConfig.App.Location
	if location == nil {
		location = time.UTC
	}

	kinds := make([]domain.PeriodKind, 0, len(appConfig.SnapshotSync.Kinds))
	for _, raw := range appConfig.SnapshotSync.Kinds {
		kind, ok := domain.ParsePeriodKind(raw)
		if !ok || raw == "" {
			log.L.WithField("range", raw).Warn("Tipo de período ignorado na configuração do agendador")
			continue
		}
		kinds = append(kinds, kind)
	}

	syncConfig := SnapshotSyncConfig{
		CronSchedule:      appConfig.SnapshotSync.CronSchedule,
		Kinds:             kinds,
		MaxConcurrentJobs: max(appConfig.SnapshotSync.MaxConcurrentJobs, 1),
		SyncEnabled:       appConfig.SnapshotSync.Enabled,
		Location:          location,
	}

	log.L.WithFields(log.Fields{
		"cron_schedule":       syncConfig.CronSchedule,
		"kinds":               syncConfig.Kinds,
		"max_concurrent_jobs": syncConfig.MaxConcurrentJobs,
		"sync_enabled":        syncConfig.SyncEnabled,
		"timezone":            location.String(),
	}).Info("Configuração do agendador de snapshots carregada")

	return &SnapshotSyncService{
		scheduler: gocron.NewScheduler(location),
		config:    syncConfig,
		analyzer:  analyzer,
		now:       time.Now,
	}
}

// Start inicia o agendador
func (s *SnapshotSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		log.L.Info("Geração agendada de snapshots desabilitada por configuração")
		return nil
	}

	log.L.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de snapshots")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncSnapshots(ctx, s.now())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar geração de snapshots: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("Parando agendador de snapshots")
		s.scheduler.Stop()
	}()

	return nil
}

// KindsDue retorna os períodos que se encerraram no dia de referência:
// day sempre, week aos domingos, month no último dia do mês e year em 31/12.
func (s *SnapshotSyncService) KindsDue(reference time.Time) []domain.PeriodKind {
	next := reference.AddDate(0, 0, 1)

	due := make([]domain.PeriodKind, 0, len(s.config.Kinds))
	for _, kind := range s.config.Kinds {
		switch kind {
		case domain.PeriodDay:
			due = append(due, kind)
		case domain.PeriodWeek:
			if next.Weekday() == time.Monday {
				due = append(due, kind)
			}
		case domain.PeriodMonth:
			if next.Day() == 1 {
				due = append(due, kind)
			}
		case domain.PeriodYear:
			if next.Day() == 1 && next.Month() == time.January {
				due = append(due, kind)
			}
		}
	}

	return due
}

// syncSnapshots gera os snapshots do dia anterior a now
func (s *SnapshotSyncService) syncSnapshots(ctx context.Context, now time.Time) {
	local := now.In(s.config.Location)
	reference := time.Date(local.Year(), local.Month(), local.Day()-1, 0, 0, 0, 0, s.config.Location)
	s.syncReference(ctx, reference)
}

func (s *SnapshotSyncService) syncReference(ctx context.Context, reference time.Time) *SnapshotSyncResult {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		log.L.Info("Geração de snapshots já em andamento, ignorando")
		return nil
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	runID, err := utils.GenerateRunID()
	if err != nil {
		log.L.WithError(err).Warn("Não foi possível gerar o id da execução")
	}

	result := &SnapshotSyncResult{
		RunID:     runID,
		Reference: reference.Format(domain.DateLayout),
		Created:   []string{},
		Skipped:   []string{},
		Failed:    []string{},
		StartedAt: s.now(),
	}

	logger := log.L.WithFields(log.Fields{
		"run_id":         runID,
		"reference_date": result.Reference,
	})

	kinds := s.KindsDue(reference)
	if len(kinds) == 0 {
		logger.Info("Nenhum período encerrado para gerar snapshot")
	} else {
		logger.WithField("kinds", kinds).Info("Iniciando geração de snapshots")
		s.processKinds(ctx, logger, reference, kinds, result)
	}

	result.Duration = s.now().Sub(result.StartedAt).String()
	logger.WithFields(log.Fields{
		"created":  len(result.Created),
		"skipped":  len(result.Skipped),
		"failed":   len(result.Failed),
		"duration": result.Duration,
	}).Info("Geração de snapshots concluída")

	s.syncMutex.Lock()
	s.lastResult = result
	s.lastSyncCompletedAt = s.now()
	s.syncMutex.Unlock()

	return result
}

// processKinds gera um snapshot por tipo respeitando MaxConcurrentJobs
func (s *SnapshotSyncService) processKinds(
	ctx context.Context,
	logger log.Logger,
	reference time.Time,
	kinds []domain.PeriodKind,
	result *SnapshotSyncResult,
) {
	semaphore := make(chan struct{}, s.config.MaxConcurrentJobs)
	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)

	for _, kind := range kinds {
		wg.Add(1)
		semaphore <- struct{}{}

		go func(kind domain.PeriodKind) {
			defer func() {
				<-semaphore
				wg.Done()
			}()

			id := domain.SnapshotID(kind, reference)
			kindLogger := logger.WithFields(log.Fields{"range": kind, "snapshot_id": id})

			_, err := s.analyzer.CreateSnapshot(ctx, reference, kind)

			mu.Lock()
			defer mu.Unlock()

			switch {
			case err == nil:
				kindLogger.Info("Snapshot gerado")
				result.Created = append(result.Created, id)
			case errors.Is(err, analytics.ErrDuplicateSnapshot):
				kindLogger.Info("Snapshot já existente, ignorando")
				result.Skipped = append(result.Skipped, id)
			default:
				kindLogger.WithError(err).Error("Erro ao gerar snapshot")
				result.Failed = append(result.Failed, id)
			}
		}(kind)
	}

	wg.Wait()
}

// TriggerManualSync inicia manualmente a geração dos snapshots do dia anterior
func (s *SnapshotSyncService) TriggerManualSync() bool {
	return s.TriggerSyncFor(time.Time{})
}

// TriggerSyncFor inicia a geração para um dia de referência específico.
// Data zero usa o dia anterior. Retorna false se já houver execução em andamento.
func (s *SnapshotSyncService) TriggerSyncFor(reference time.Time) bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		log.L.Info("Geração de snapshots já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	log.L.WithField("reference_date", reference.Format(domain.DateLayout)).Info("Iniciando geração manual de snapshots")

	go func() {
		if reference.IsZero() {
			s.syncSnapshots(context.Background(), s.now())
			return
		}
		s.syncReference(context.Background(), reference)
	}()

	return true
}

// GetStatus retorna o status atual do agendador
func (s *SnapshotSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_running":           s.syncRunning,
		"sync_cron":              s.config.CronSchedule,
		"sync_enabled":           s.config.SyncEnabled,
		"kinds":                  s.config.Kinds,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_result":            s.lastResult,
	}
}
