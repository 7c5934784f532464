package reporting

import (
	"github.com/sportomic/metrics-api/internal/domain"
)

// Reporter define a interface do motor de métricas consumida pela camada HTTP
// e pelo agendador de snapshots
type Reporter interface {
	// GeneralMetrics calcula o snapshot de 12 campos para a janela de filtro
	GeneralMetrics(filters *domain.MetricsFilters) (*domain.MetricsSnapshot, error)

	// RevenueTimeseries calcula a série de receita por dia para a mesma janela
	RevenueTimeseries(filters *domain.MetricsFilters) ([]domain.RevenuePoint, error)

	// ListVenues retorna as unidades cadastradas
	ListVenues() ([]*domain.Venue, error)

	// ListSports retorna os ids de esporte distintos em ordem crescente
	ListSports() ([]int, error)
}
