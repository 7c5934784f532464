package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/sportomic/metrics-api/infrastructure/database/postgres"
	"github.com/sportomic/metrics-api/internal/domain"
)

const (
	transactionsTable = "transactions t"
)

type TransactionRepository interface {
	ListByPeriod(start, end *time.Time, bookingIDs []int) ([]*domain.Transaction, error)
	ListWithBookingFilter(filters *domain.MetricsFilters) ([]*domain.Transaction, error)
}

type transactionRepository struct {
	conn *postgres.Connection
}

func NewTransactionRepository(conn *postgres.Connection) TransactionRepository {
	return &transactionRepository{
		conn: conn,
	}
}

// ListByPeriod retorna as transações com transaction_date dentro da janela
// e booking_id entre os ids informados. Lista de ids vazia NÃO restringe:
// todas as transações da janela passam. Esse alargamento quando o conjunto
// de reservas filtrado é vazio faz parte do contrato das métricas gerais.
func (r *transactionRepository) ListByPeriod(start, end *time.Time, bookingIDs []int) ([]*domain.Transaction, error) {
	queryBuilder := squirrel.
		Select("t.id, t.booking_id, t.type, t.amount, t.status, t.transaction_date").
		From(transactionsTable).
		PlaceholderFormat(squirrel.Dollar)

	queryBuilder = applyTransactionWindow(queryBuilder, start, end)

	if len(bookingIDs) > 0 {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"t.booking_id": bookingIDs})
	}

	return r.listTransactions(queryBuilder)
}

// ListWithBookingFilter retorna as transações da janela com os filtros
// opcionais de unidade/esporte aplicados via join com a reserva.
// Usada pela série de receita diária.
func (r *transactionRepository) ListWithBookingFilter(filters *domain.MetricsFilters) ([]*domain.Transaction, error) {
	queryBuilder := squirrel.
		Select("t.id, t.booking_id, t.type, t.amount, t.status, t.transaction_date").
		From(transactionsTable).
		Join("bookings b ON b.id = t.booking_id").
		PlaceholderFormat(squirrel.Dollar)

	if filters != nil {
		queryBuilder = applyTransactionWindow(queryBuilder, filters.StartDate, filters.EndDate)

		if filters.VenueID != nil {
			queryBuilder = queryBuilder.Where(squirrel.Eq{"b.venue_id": *filters.VenueID})
		}
		if filters.SportID != nil {
			queryBuilder = queryBuilder.Where(squirrel.Eq{"b.sport_id": *filters.SportID})
		}
	}

	return r.listTransactions(queryBuilder)
}

func applyTransactionWindow(queryBuilder squirrel.SelectBuilder, start, end *time.Time) squirrel.SelectBuilder {
	if start != nil {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"t.transaction_date": start.Format(time.DateOnly)})
	}
	if end != nil {
		queryBuilder = queryBuilder.Where(squirrel.LtOrEq{"t.transaction_date": end.Format(time.DateOnly)})
	}
	return queryBuilder
}

func (r *transactionRepository) listTransactions(queryBuilder squirrel.SelectBuilder) ([]*domain.Transaction, error) {
	query, args, err := queryBuilder.OrderBy("t.transaction_date ASC, t.id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	transactions := make([]*domain.Transaction, 0)
	for rows.Next() {
		tx, err := r.scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear transação: %w", err)
		}
		transactions = append(transactions, tx)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return transactions, nil
}

func (r *transactionRepository) scanTransaction(rows *sql.Rows) (*domain.Transaction, error) {
	tx := &domain.Transaction{}

	err := rows.Scan(
		&tx.ID,
		&tx.BookingID,
		&tx.Type,
		&tx.Amount,
		&tx.Status,
		&tx.TransactionDate,
	)
	if err != nil {
		return nil, err
	}

	return tx, nil
}
