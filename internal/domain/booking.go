package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Booking representa uma reserva de horário em uma unidade.
// Status é texto livre no banco; use ParseBookingStatus para comparações.
type Booking struct {
	ID          int             `json:"id"`
	VenueID     int             `json:"venue_id"`
	SportID     int             `json:"sport_id"`
	MemberID    int             `json:"member_id"`
	BookingDate time.Time       `json:"booking_date"`
	Amount      decimal.Decimal `json:"amount"`
	CouponCode  *string         `json:"coupon_code,omitempty"`
	Status      string          `json:"status"`
}

// IsConfirmed indica se a reserva conta como confirmada para as métricas
// (status normalizado "confirmed" ou "completed")
func (b *Booking) IsConfirmed() bool {
	s := ParseBookingStatus(b.Status)
	return s == BookingConfirmed || s == BookingCompleted
}

// HasCoupon indica se a reserva resgatou um cupom (código não vazio após trim)
func (b *Booking) HasCoupon() bool {
	if b.CouponCode == nil {
		return false
	}
	return strings.TrimSpace(*b.CouponCode) != ""
}
