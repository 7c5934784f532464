package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Valor já normalizado permanece igual",
			input:    "confirmed",
			expected: "confirmed",
		},
		{
			name:     "Maiúsculas são convertidas para minúsculas",
			input:    "COMPLETED",
			expected: "completed",
		},
		{
			name:     "Espaços nas bordas são removidos",
			input:    "  Success  ",
			expected: "success",
		},
		{
			name:     "Espaços internos também são removidos",
			input:    "Con firmed",
			expected: "confirmed",
		},
		{
			name:     "Tabs e quebras de linha contam como espaço",
			input:    "\tRefun\nded\t",
			expected: "refunded",
		},
		{
			name:     "String vazia permanece vazia",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Normalize(tt.input)
			assert.Equal(t, tt.expected, result)

			// Normalizar duas vezes não muda o resultado
			assert.Equal(t, result, Normalize(result))
		})
	}
}

func TestParseBookingStatus(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected BookingStatus
	}{
		{"Confirmed canônico", "Confirmed", BookingConfirmed},
		{"Completed com espaços e caixa alta", " COMPLETED ", BookingCompleted},
		{"Cancelled minúsculo", "cancelled", BookingCancelled},
		{"Status desconhecido cai em Unknown", "pending", BookingStatusUnknown},
		{"String vazia cai em Unknown", "", BookingStatusUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseBookingStatus(tt.input))
		})
	}
}

func TestParseTransactionStatus(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected TransactionStatus
	}{
		{"Success canônico", "Success", TransactionSuccess},
		{"Success com variação de caixa", "sUcCeSs", TransactionSuccess},
		{"Refunded", "Refunded", TransactionRefunded},
		{"Dispute", "Dispute", TransactionDispute},
		{"Status desconhecido cai em Unknown", "chargeback", TransactionStatusUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseTransactionStatus(tt.input))
		})
	}
}

func TestTransactionStatus_IsNegative(t *testing.T) {
	assert.True(t, TransactionRefunded.IsNegative())
	assert.True(t, TransactionDispute.IsNegative())
	assert.False(t, TransactionSuccess.IsNegative())
	assert.False(t, TransactionStatusUnknown.IsNegative())
}

func TestParseTransactionType(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected TransactionType
	}{
		{"Booking canônico", "Booking", TransactionTypeBooking},
		{"Coaching com espaços", " coaching ", TransactionTypeCoaching},
		{"Tipo desconhecido cai em Other", "membership", TransactionTypeOther},
		{"String vazia cai em Other", "", TransactionTypeOther},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseTransactionType(tt.input))
		})
	}
}
