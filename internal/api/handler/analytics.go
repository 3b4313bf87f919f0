package handler

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/logistics-analytics-api/internal/domain"
	"github.com/vfg2006/logistics-analytics-api/internal/usecases/analytics"
	"github.com/vfg2006/logistics-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/logistics-analytics-api/pkg/log"
	"github.com/vfg2006/logistics-analytics-api/pkg/utils"
)

// snapshotRequest são os parâmetros comuns às rotas /analytics/:date
type snapshotRequest struct {
	anchor time.Time
	kind   domain.PeriodKind
}

// CreateSnapshot gera e persiste o snapshot do período ancorado na data
func CreateSnapshot(service analytics.Analyzer, location *time.Location) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		req, ok := parseSnapshotRequest(w, r, location)
		if !ok {
			return
		}

		logger.WithFields(log.Fields{
			"range": req.kind,
			"date":  req.anchor.Format(domain.DateLayout),
		}).Info("analytics: gerando snapshot")

		snapshot, err := service.CreateSnapshot(r.Context(), req.anchor, req.kind)
		if err != nil {
			writeAnalyticsError(w, r, err, "Erro ao gerar snapshot")
			return
		}

		logger.WithField("snapshot_id", snapshot.ID).Info("analytics: snapshot gerado com sucesso")
		writeJSON(w, r, http.StatusCreated, snapshot)
	})
}

// GetSnapshot retorna o snapshot persistido do período
func GetSnapshot(service analytics.Analyzer, location *time.Location) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, ok := parseSnapshotRequest(w, r, location)
		if !ok {
			return
		}

		snapshot, err := service.GetSnapshot(r.Context(), req.anchor, req.kind)
		if err != nil {
			writeAnalyticsError(w, r, err, "Erro ao buscar snapshot")
			return
		}

		writeJSON(w, r, http.StatusOK, snapshot)
	})
}

// UpdateSnapshot aplica uma atualização parcial nas métricas do snapshot
func UpdateSnapshot(service analytics.Analyzer, location *time.Location) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		req, ok := parseSnapshotRequest(w, r, location)
		if !ok {
			return
		}

		var fields map[string]float64
		if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
			logger.WithError(err).Warn("analytics: corpo da atualização inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo deve ser um objeto de métricas numéricas", nil)
			return
		}

		update, err := service.UpdateSnapshot(r.Context(), req.anchor, req.kind, fields)
		if err != nil {
			writeAnalyticsError(w, r, err, "Erro ao atualizar snapshot")
			return
		}

		logger.WithFields(log.Fields{
			"snapshot_id": update.ID,
			"fields":      len(update.Fields),
		}).Info("analytics: snapshot atualizado")
		writeJSON(w, r, http.StatusOK, update)
	})
}

// GetSnapshotRange lista os snapshots com data âncora entre startDate e endDate
func GetSnapshotRange(service analytics.Analyzer, location *time.Location) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		query := r.URL.Query()

		if query.Get("startDate") == "" || query.Get("endDate") == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "startDate e endDate são obrigatórios", nil)
			return
		}

		startDate, err := utils.ParseDate(query.Get("startDate"), location)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), map[string]string{"startDate": query.Get("startDate")})
			return
		}

		endDate, err := utils.ParseDate(query.Get("endDate"), location)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), map[string]string{"endDate": query.Get("endDate")})
			return
		}

		kind, ok := domain.ParsePeriodKind(query.Get("range"))
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "range inválido", map[string]any{"accepted": domain.PeriodKinds()})
			return
		}

		logger.WithFields(log.Fields{
			"range":      kind,
			"start_date": startDate.Format(domain.DateLayout),
			"end_date":   endDate.Format(domain.DateLayout),
		}).Debug("analytics: buscando snapshots por intervalo")

		snapshots, err := service.GetSnapshotRange(r.Context(), domain.SnapshotRangeFilter{
			Kind:      kind,
			StartDate: startDate,
			EndDate:   endDate,
		})
		if err != nil {
			writeAnalyticsError(w, r, err, "Erro ao buscar snapshots")
			return
		}

		if snapshots == nil {
			snapshots = []*domain.AnalyticsSnapshot{}
		}

		writeJSON(w, r, http.StatusOK, snapshots)
	})
}

func parseSnapshotRequest(w http.ResponseWriter, r *http.Request, location *time.Location) (snapshotRequest, bool) {
	dateParam := httprouter.ParamsFromContext(r.Context()).ByName("date")

	anchor, err := utils.ParseDate(dateParam, location)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), map[string]string{"date": dateParam})
		return snapshotRequest{}, false
	}

	kind, ok := domain.ParsePeriodKind(r.URL.Query().Get("range"))
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "range inválido", map[string]any{"accepted": domain.PeriodKinds()})
		return snapshotRequest{}, false
	}

	return snapshotRequest{anchor: anchor, kind: kind}, true
}

// writeAnalyticsError traduz os erros do serviço de analytics para códigos da API
func writeAnalyticsError(w http.ResponseWriter, r *http.Request, err error, message string) {
	logger := log.ForContext(r.Context()).WithError(err)

	switch {
	case errors.Is(err, analytics.ErrInvalidPeriod):
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, err.Error(), nil)
	case errors.Is(err, analytics.ErrInvalidUpdate):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
	case errors.Is(err, analytics.ErrSnapshotNotFound):
		apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Snapshot não encontrado", nil)
	case errors.Is(err, analytics.ErrDuplicateSnapshot):
		apiErrors.WriteError(w, apiErrors.ErrResourceConflict, "Snapshot já existe para este período", nil)
	case errors.Is(err, analytics.ErrDataSource):
		logger.Error("analytics: falha na fonte de métricas")

		var sourceErr *analytics.DataSourceError
		if errors.As(err, &sourceErr) {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, message, map[string]string{"collection": string(sourceErr.Collection)})
			return
		}
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, message, nil)
	default:
		logger.Error("analytics: erro inesperado")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, message, nil)
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}
