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
	bookingsTable = "bookings b"
)

type BookingRepository interface {
	ListByPeriod(filters *domain.MetricsFilters) ([]*domain.Booking, error)
	DistinctSportIDs() ([]int, error)
}

type bookingRepository struct {
	conn *postgres.Connection
}

func NewBookingRepository(conn *postgres.Connection) BookingRepository {
	return &bookingRepository{
		conn: conn,
	}
}

// ListByPeriod retorna as reservas cuja data de calendário de booking_date
// cai dentro da janela [start, end] (inclusiva), com filtros opcionais de
// igualdade em venue_id/sport_id. Datas nulas deixam a janela aberta.
func (r *bookingRepository) ListByPeriod(filters *domain.MetricsFilters) ([]*domain.Booking, error) {
	queryBuilder := squirrel.
		Select("b.id, b.venue_id, b.sport_id, b.member_id, b.booking_date, b.amount, b.coupon_code, b.status").
		From(bookingsTable).
		PlaceholderFormat(squirrel.Dollar)

	if filters != nil {
		if filters.StartDate != nil {
			queryBuilder = queryBuilder.Where(squirrel.Expr("DATE(b.booking_date) >= ?", filters.StartDate.Format(time.DateOnly)))
		}
		if filters.EndDate != nil {
			queryBuilder = queryBuilder.Where(squirrel.Expr("DATE(b.booking_date) <= ?", filters.EndDate.Format(time.DateOnly)))
		}
		if filters.VenueID != nil {
			queryBuilder = queryBuilder.Where(squirrel.Eq{"b.venue_id": *filters.VenueID})
		}
		if filters.SportID != nil {
			queryBuilder = queryBuilder.Where(squirrel.Eq{"b.sport_id": *filters.SportID})
		}
	}

	query, args, err := queryBuilder.OrderBy("b.id ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := r.scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear reserva: %w", err)
		}
		bookings = append(bookings, booking)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return bookings, nil
}

// DistinctSportIDs retorna os sport_ids distintos e não nulos observados nas
// reservas. A ordenação final fica a cargo do caso de uso; a ordem do banco
// não faz parte do contrato.
func (r *bookingRepository) DistinctSportIDs() ([]int, error) {
	query, args, err := squirrel.
		Select("DISTINCT b.sport_id").
		From(bookingsTable).
		Where(squirrel.NotEq{"b.sport_id": nil}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	ids := make([]int, 0)
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("erro ao escanear sport_id: %w", err)
		}
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return ids, nil
}

func (r *bookingRepository) scanBooking(rows *sql.Rows) (*domain.Booking, error) {
	booking := &domain.Booking{}
	var couponCode sql.NullString

	err := rows.Scan(
		&booking.ID,
		&booking.VenueID,
		&booking.SportID,
		&booking.MemberID,
		&booking.BookingDate,
		&booking.Amount,
		&couponCode,
		&booking.Status,
	)
	if err != nil {
		return nil, err
	}

	if couponCode.Valid {
		booking.CouponCode = &couponCode.String
	}

	return booking, nil
}
