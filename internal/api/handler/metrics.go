package handler

import (
	"fmt"
	"net/http"

	"github.com/sportomic/metrics-api/internal/domain"
	"github.com/sportomic/metrics-api/internal/usecases/reporting"
	"github.com/sportomic/metrics-api/pkg/log"
	"github.com/sportomic/metrics-api/pkg/utils"
)

// metricsFiltersFromQuery interpreta os parâmetros comuns de filtro das
// rotas de métricas. Todos são opcionais; ausência significa sem filtro.
func metricsFiltersFromQuery(r *http.Request) (*domain.MetricsFilters, error) {
	query := r.URL.Query()

	startDate, err := utils.ParseDate(query.Get("start_date"))
	if err != nil {
		return nil, fmt.Errorf("start_date inválido: %w", err)
	}

	endDate, err := utils.ParseDate(query.Get("end_date"))
	if err != nil {
		return nil, fmt.Errorf("end_date inválido: %w", err)
	}

	venueID, err := utils.ParseOptionalInt(query.Get("venue_id"))
	if err != nil {
		return nil, fmt.Errorf("venue_id inválido: %w", err)
	}

	sportID, err := utils.ParseOptionalInt(query.Get("sport_id"))
	if err != nil {
		return nil, fmt.Errorf("sport_id inválido: %w", err)
	}

	return &domain.MetricsFilters{
		StartDate: startDate,
		EndDate:   endDate,
		VenueID:   venueID,
		SportID:   sportID,
	}, nil
}

func GetGeneralMetrics(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := metricsFiltersFromQuery(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"query": r.URL.RawQuery,
				"error": err.Error(),
			}).Warn("metrics: invalid filter parameter")

			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		logger.Debug("metrics: computing general metrics")

		snapshot, err := service.GeneralMetrics(filters)
		if err != nil {
			logger.WithFields(log.Fields{
				"query": r.URL.RawQuery,
				"error": err.Error(),
			}).Error("metrics: failed to compute general metrics")

			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(snapshot); err != nil {
			logger.WithField("error", err.Error()).Error("metrics: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func GetRevenueTimeseries(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, err := metricsFiltersFromQuery(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"query": r.URL.RawQuery,
				"error": err.Error(),
			}).Warn("metrics: invalid filter parameter")

			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		logger.Debug("metrics: computing revenue timeseries")

		points, err := service.RevenueTimeseries(filters)
		if err != nil {
			logger.WithFields(log.Fields{
				"query": r.URL.RawQuery,
				"error": err.Error(),
			}).Error("metrics: failed to compute revenue timeseries")

			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(points); err != nil {
			logger.WithField("error", err.Error()).Error("metrics: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
