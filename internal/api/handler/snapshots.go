package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sportomic/metrics-api/infrastructure/repository"
	"github.com/sportomic/metrics-api/pkg/apiErrors"
	"github.com/sportomic/metrics-api/pkg/utils"
)

// GetMetricsSnapshots serve os snapshots diários pré-calculados pelo job de
// sincronização. Com `date` retorna o snapshot único do dia; caso contrário
// start_date e end_date são obrigatórios e a resposta é a faixa em ordem
// crescente de data. venue_id ausente significa o escopo global.
func GetMetricsSnapshots(snapshotRepo repository.MetricsSnapshotRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		venueID, err := utils.ParseOptionalInt(query.Get("venue_id"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "venue_id inválido", nil)
			return
		}

		if raw := query.Get("date"); raw != "" {
			date, err := time.Parse(time.DateOnly, raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "date inválido (esperado yyyy-mm-dd)", nil)
				return
			}

			entry, err := snapshotRepo.GetByVenueAndDate(venueID, date)
			if err != nil {
				logrus.Error("Erro ao buscar snapshot:", err)
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar snapshot", nil)
				return
			}
			if entry == nil {
				apiErrors.WriteError(w, apiErrors.ErrResourceNotFound, "Snapshot não encontrado para a data", nil)
				return
			}

			w.Header().Set("Content-Type", "application/json")
			if err := json.NewEncoder(w).Encode(entry); err != nil {
				logrus.Error("Erro ao enviar resposta de snapshot:", err)
			}
			return
		}

		startDate, err := utils.ParseDate(query.Get("start_date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "start_date inválido (esperado yyyy-mm-dd)", nil)
			return
		}
		if startDate == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "start_date é obrigatório quando date não é informado", nil)
			return
		}

		endDate, err := utils.ParseDate(query.Get("end_date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "end_date inválido (esperado yyyy-mm-dd)", nil)
			return
		}
		if endDate == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "end_date é obrigatório quando date não é informado", nil)
			return
		}

		entries, err := snapshotRepo.GetByDateRange(venueID, *startDate, *endDate)
		if err != nil {
			logrus.Error("Erro ao buscar snapshots:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar snapshots", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(entries); err != nil {
			logrus.Error("Erro ao enviar resposta de snapshots:", err)
		}
	})
}
