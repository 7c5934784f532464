package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/sportomic/metrics-api/internal/usecases/reporting"
	"github.com/sportomic/metrics-api/pkg/apiErrors"
)

// ListVenues retorna as unidades cadastradas
func ListVenues(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		venues, err := service.ListVenues()
		if err != nil {
			logrus.Error("Erro ao listar unidades:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar unidades", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(venues); err != nil {
			logrus.Error("Erro ao enviar resposta de unidades:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	})
}

// ListSports retorna os ids de esporte distintos em ordem crescente
func ListSports(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sports, err := service.ListSports()
		if err != nil {
			logrus.Error("Erro ao listar esportes:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar esportes", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(sports); err != nil {
			logrus.Error("Erro ao enviar resposta de esportes:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	})
}
