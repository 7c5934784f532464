package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := w.Write([]byte(time.Now().String()))
		if err != nil {
			logrus.WithError(err).Warn("error responding to healthcheck")
		}
	})
}

// ServiceRootHandler descreve o serviço e seus endpoints
func ServiceRootHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload := map[string]any{
			"service": "Sportomic Metrics API",
			"endpoints": []string{
				"/v1/venues",
				"/v1/sports",
				"/v1/metrics/general",
				"/v1/metrics/revenue_timeseries",
				"/v1/metrics/snapshots",
			},
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logrus.WithError(err).Warn("error responding to service root")
		}
	})
}
