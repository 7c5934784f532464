package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/sportomic/metrics-api/infrastructure/database/postgres"
	"github.com/sportomic/metrics-api/internal/domain"
)

const (
	metricsSnapshotsTable = "metrics_snapshots ms"
)

type MetricsSnapshotRepository interface {
	GetByVenueAndDate(venueID *int, date time.Time) (*domain.MetricsSnapshotEntry, error)
	GetByDateRange(venueID *int, startDate, endDate time.Time) ([]*domain.MetricsSnapshotEntry, error)
	SaveOrUpdate(entry *domain.MetricsSnapshotEntry) error
	DeleteOlderThan(days int) (int64, error)
}

type metricsSnapshotRepository struct {
	conn *postgres.Connection
}

func NewMetricsSnapshotRepository(conn *postgres.Connection) MetricsSnapshotRepository {
	return &metricsSnapshotRepository{
		conn: conn,
	}
}

// venuePredicate trata o escopo do snapshot: venue_id nulo é o snapshot global
func venuePredicate(venueID *int) squirrel.Sqlizer {
	if venueID == nil {
		return squirrel.Eq{"ms.venue_id": nil}
	}
	return squirrel.Eq{"ms.venue_id": *venueID}
}

func (r *metricsSnapshotRepository) GetByVenueAndDate(venueID *int, date time.Time) (*domain.MetricsSnapshotEntry, error) {
	query, args, err := squirrel.
		Select("ms.id, ms.venue_id, ms.date, ms.metrics, ms.created_at, ms.updated_at").
		From(metricsSnapshotsTable).
		Where(venuePredicate(venueID)).
		Where(squirrel.Eq{"ms.date": date.Format(time.DateOnly)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	entry, err := r.scanEntryRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
	}

	return entry, nil
}

func (r *metricsSnapshotRepository) GetByDateRange(venueID *int, startDate, endDate time.Time) ([]*domain.MetricsSnapshotEntry, error) {
	query, args, err := squirrel.
		Select("ms.id, ms.venue_id, ms.date, ms.metrics, ms.created_at, ms.updated_at").
		From(metricsSnapshotsTable).
		Where(venuePredicate(venueID)).
		Where(squirrel.GtOrEq{"ms.date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"ms.date": endDate.Format(time.DateOnly)}).
		OrderBy("ms.date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.MetricsSnapshotEntry, 0)
	for rows.Next() {
		entry, err := r.scanEntryRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshots: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

func (r *metricsSnapshotRepository) SaveOrUpdate(entry *domain.MetricsSnapshotEntry) error {
	var metricsJSON []byte
	var err error

	if entry.Metrics != nil {
		metricsJSON, err = json.Marshal(entry.Metrics)
		if err != nil {
			return fmt.Errorf("erro ao serializar métricas para JSON: %w", err)
		}
	}

	// O índice único usa COALESCE(venue_id, 0) para que o snapshot global
	// (venue_id nulo) também participe do upsert
	query := squirrel.StatementBuilder.
		Insert("metrics_snapshots").
		Columns("venue_id", "date", "metrics").
		Values(
			entry.VenueID,
			entry.Date.Format(time.DateOnly),
			metricsJSON,
		).
		Suffix(`
			ON CONFLICT ((COALESCE(venue_id, 0)), date) DO UPDATE SET
				metrics = EXCLUDED.metrics,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *metricsSnapshotRepository) DeleteOlderThan(days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format(time.DateOnly)

	query, args, err := squirrel.
		Delete("metrics_snapshots").
		Where(squirrel.Lt{"date": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func (r *metricsSnapshotRepository) scanEntryRow(row *sql.Row) (*domain.MetricsSnapshotEntry, error) {
	entry := &domain.MetricsSnapshotEntry{}
	var venueID sql.NullInt64
	var metricsJSON []byte

	err := row.Scan(
		&entry.ID,
		&venueID,
		&entry.Date,
		&metricsJSON,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return r.fillEntry(entry, venueID, metricsJSON)
}

func (r *metricsSnapshotRepository) scanEntryRows(rows *sql.Rows) (*domain.MetricsSnapshotEntry, error) {
	entry := &domain.MetricsSnapshotEntry{}
	var venueID sql.NullInt64
	var metricsJSON []byte

	err := rows.Scan(
		&entry.ID,
		&venueID,
		&entry.Date,
		&metricsJSON,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return r.fillEntry(entry, venueID, metricsJSON)
}

func (r *metricsSnapshotRepository) fillEntry(entry *domain.MetricsSnapshotEntry, venueID sql.NullInt64, metricsJSON []byte) (*domain.MetricsSnapshotEntry, error) {
	if venueID.Valid {
		id := int(venueID.Int64)
		entry.VenueID = &id
	}

	if metricsJSON != nil {
		metrics := &domain.MetricsSnapshot{}
		if err := json.Unmarshal(metricsJSON, metrics); err != nil {
			return nil, fmt.Errorf("erro ao deserializar JSON de métricas: %w", err)
		}
		entry.Metrics = metrics
	}

	return entry, nil
}
