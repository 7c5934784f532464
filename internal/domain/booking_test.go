package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func stringPtr(s string) *string { return &s }

func TestBooking_IsConfirmed(t *testing.T) {
	tests := []struct {
		name     string
		status   string
		expected bool
	}{
		{"Confirmed conta como confirmada", "Confirmed", true},
		{"Completed também conta como confirmada", "Completed", true},
		{"Caixa e espaços não importam", "  cOnFiRmEd ", true},
		{"Cancelled não conta", "Cancelled", false},
		{"Status desconhecido não conta", "waitlisted", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Booking{Status: tt.status}
			assert.Equal(t, tt.expected, b.IsConfirmed())
		})
	}
}

func TestBooking_HasCoupon(t *testing.T) {
	tests := []struct {
		name     string
		coupon   *string
		expected bool
	}{
		{"Sem cupom", nil, false},
		{"Cupom vazio não conta", stringPtr(""), false},
		{"Cupom só com espaços não conta", stringPtr("   "), false},
		{"Cupom preenchido conta", stringPtr("WELCOME50"), true},
		{"Cupom com espaços nas bordas conta", stringPtr(" SAVE10 "), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Booking{CouponCode: tt.coupon}
			assert.Equal(t, tt.expected, b.HasCoupon())
		})
	}
}
