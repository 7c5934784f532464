package domain

import (
	"strings"
	"unicode"
)

// Os campos de status e tipo chegam do banco como texto livre
// ("Confirmed", " completed ", "COMPLETED"). Normalize remove todo
// espaço em branco e converte para minúsculas, para que as comparações
// não dependam do formato gravado.
func Normalize(s string) string {
	return strings.ToLower(strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s))
}

// RawTransactionStatusSuccess é o literal gravado no banco para transações
// bem-sucedidas. A série de receita compara contra ele sem normalizar.
const RawTransactionStatusSuccess = "Success"

// BookingStatus é a enumeração interna dos statuses de reserva conhecidos
type BookingStatus int

const (
	BookingStatusUnknown BookingStatus = iota
	BookingConfirmed
	BookingCompleted
	BookingCancelled
)

func ParseBookingStatus(s string) BookingStatus {
	switch Normalize(s) {
	case "confirmed":
		return BookingConfirmed
	case "completed":
		return BookingCompleted
	case "cancelled":
		return BookingCancelled
	default:
		return BookingStatusUnknown
	}
}

// TransactionStatus é a enumeração interna dos statuses de transação conhecidos
type TransactionStatus int

const (
	TransactionStatusUnknown TransactionStatus = iota
	TransactionSuccess
	TransactionRefunded
	TransactionDispute
)

func ParseTransactionStatus(s string) TransactionStatus {
	switch Normalize(s) {
	case "success":
		return TransactionSuccess
	case "refunded":
		return TransactionRefunded
	case "dispute":
		return TransactionDispute
	default:
		return TransactionStatusUnknown
	}
}

// IsNegative indica se o status representa devolução de dinheiro (estorno ou contestação)
func (s TransactionStatus) IsNegative() bool {
	return s == TransactionRefunded || s == TransactionDispute
}

// TransactionType é a enumeração interna dos tipos de transação conhecidos
type TransactionType int

const (
	TransactionTypeOther TransactionType = iota
	TransactionTypeBooking
	TransactionTypeCoaching
)

func ParseTransactionType(s string) TransactionType {
	switch Normalize(s) {
	case "booking":
		return TransactionTypeBooking
	case "coaching":
		return TransactionTypeCoaching
	default:
		return TransactionTypeOther
	}
}
