package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction representa um lançamento financeiro vinculado a uma reserva.
// Uma reserva pode ter zero ou mais transações (cobrança original + estorno posterior).
type Transaction struct {
	ID              int             `json:"id"`
	BookingID       int             `json:"booking_id"`
	Type            string          `json:"type"`
	Amount          decimal.Decimal `json:"amount"`
	Status          string          `json:"status"`
	TransactionDate time.Time       `json:"transaction_date"`
}
