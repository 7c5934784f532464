package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sportomic/metrics-api/infrastructure/repository"
	"github.com/sportomic/metrics-api/internal/api/handler/router"
	"github.com/sportomic/metrics-api/internal/usecases/reporting"
)

// Serialização das respostas com jsoniter no modo compatível com a stdlib
var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: ServiceRootHandler(),
		},
	}
}

func Metrics(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/metrics/general",
			Method:  http.MethodGet,
			Handler: GetGeneralMetrics(service),
		},
		{
			Path:    "/v1/metrics/revenue_timeseries",
			Method:  http.MethodGet,
			Handler: GetRevenueTimeseries(service),
		},
	}
}

func References(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/venues",
			Method:  http.MethodGet,
			Handler: ListVenues(service),
		},
		{
			Path:    "/v1/sports",
			Method:  http.MethodGet,
			Handler: ListSports(service),
		},
	}
}

func Snapshots(snapshotRepo repository.MetricsSnapshotRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/metrics/snapshots",
			Method:  http.MethodGet,
			Handler: GetMetricsSnapshots(snapshotRepo),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
