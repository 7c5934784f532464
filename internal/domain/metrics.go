package domain

import (
	"time"
)

// MetricsFilters carrega a janela de datas e os filtros opcionais de
// unidade/esporte aplicados às métricas. Datas nulas significam janela aberta.
type MetricsFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
	VenueID   *int
	SportID   *int
}

// MetricsSnapshot é o resultado agregado de 12 campos para uma janela de filtro.
// Os valores monetários já estão arredondados para 2 casas na serialização;
// a acumulação interna usa decimal para evitar deriva de ponto flutuante.
type MetricsSnapshot struct {
	ActiveMembers          int     `json:"active_members"`
	InactiveMembers        int     `json:"inactive_members"`
	Bookings               int     `json:"bookings"`
	BookingRevenue         float64 `json:"booking_revenue"`
	CoachingRevenue        float64 `json:"coaching_revenue"`
	TotalRevenue           float64 `json:"total_revenue"`
	RepeatBookingPct       float64 `json:"repeat_booking_pct"`
	SlotsUtilizationPct    float64 `json:"slots_utilization_pct"`
	CouponRedemption       int     `json:"coupon_redemption"`
	TrialConversionRatePct float64 `json:"trial_conversion_rate_pct"`
	RefundsDisputesAmount  float64 `json:"refunds_disputes_amount"`
	RefundsDisputesCount   int     `json:"refunds_disputes_count"`
}

// RevenuePoint é um ponto da série de receita diária.
// A data serializa como data de calendário ISO-8601 (yyyy-mm-dd).
type RevenuePoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

// MetricsSnapshotEntry representa um snapshot diário pré-calculado e
// armazenado no banco pelo job de sincronização. VenueID nulo indica o
// snapshot global (sem filtro de unidade).
type MetricsSnapshotEntry struct {
	ID        int64            `json:"id"`
	VenueID   *int             `json:"venue_id,omitempty"`
	Date      time.Time        `json:"date"`
	Metrics   *MetricsSnapshot `json:"metrics"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}
