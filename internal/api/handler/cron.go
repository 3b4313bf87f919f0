package handler

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/logistics-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/logistics-analytics-api/pkg/log"
	"github.com/vfg2006/logistics-analytics-api/pkg/utils"
)

// CronJobTypeSnapshots identifica a geração agendada de snapshots
const CronJobTypeSnapshots = "snapshots"

// SnapshotSyncer é o agendador que pode ser disparado manualmente
type SnapshotSyncer interface {
	TriggerManualSync() bool
	TriggerSyncFor(reference time.Time) bool
	GetStatus() map[string]any
}

// CronJobServices contém os agendadores que podem ser executados manualmente
type CronJobServices struct {
	SnapshotSyncService SnapshotSyncer
}

// RunCronJob executa manualmente uma cron job específica.
// Para snapshots, ?date=YYYY-MM-DD define o dia de referência.
func RunCronJob(services CronJobServices, location *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		if cronType != CronJobTypeSnapshots {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: snapshots", nil)
			return
		}

		if services.SnapshotSyncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de geração de snapshots não disponível", nil)
			return
		}

		var started bool
		if dateParam := r.URL.Query().Get("date"); dateParam != "" {
			reference, err := utils.ParseDate(dateParam, location)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), map[string]string{"date": dateParam})
				return
			}
			started = services.SnapshotSyncService.TriggerSyncFor(reference)
		} else {
			started = services.SnapshotSyncService.TriggerManualSync()
		}

		if !started {
			apiErrors.WriteError(w, apiErrors.ErrResourceConflict, "Geração de snapshots já em andamento", nil)
			return
		}

		logger.WithField("type", cronType).Info("Cron job iniciada manualmente")
		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}
		if services.SnapshotSyncService != nil {
			status[CronJobTypeSnapshots] = services.SnapshotSyncService.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
