// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/sportomic/metrics-api/infrastructure/database/postgres"
	"github.com/sportomic/metrics-api/internal/domain"
)

const (
	venuesTable = "venues v"
)

type VenueRepository interface {
	List() ([]*domain.Venue, error)
}

type venueRepository struct {
	conn *postgres.Connection
}

func NewVenueRepository(conn *postgres.Connection) VenueRepository {
	return &venueRepository{
		conn: conn,
	}
}

func (r *venueRepository) List() ([]*domain.Venue, error) {
	query, args, err := squirrel.
		Select("v.id, v.name, v.location").
		From(venuesTable).
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

	venues := make([]*domain.Venue, 0)
	for rows.Next() {
		venue := &domain.Venue{}
		if err := rows.Scan(&venue.ID, &venue.Name, &venue.Location); err != nil {
			return nil, fmt.Errorf("erro ao escanear venue: %w", err)
		}
		venues = append(venues, venue)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return venues, nil
}
