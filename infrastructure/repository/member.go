package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/sportomic/metrics-api/infrastructure/database/postgres"
)

const (
	membersTable = "members m"
)

type MemberRepository interface {
	CountByStatus(status string) (int, error)
	CountTrialUsers() (int, error)
	CountConvertedFromTrial() (int, error)
}

type memberRepository struct {
	conn *postgres.Connection
}

func NewMemberRepository(conn *postgres.Connection) MemberRepository {
	return &memberRepository{
		conn: conn,
	}
}

// CountByStatus conta membros pelo status literal gravado no banco.
// A comparação é sensível a maiúsculas de propósito: o status do membro
// é um snapshot atual, não um campo de texto livre normalizado.
func (r *memberRepository) CountByStatus(status string) (int, error) {
	return r.count(squirrel.Eq{"m.status": status})
}

func (r *memberRepository) CountTrialUsers() (int, error) {
	return r.count(squirrel.Eq{"m.is_trial_user": true})
}

func (r *memberRepository) CountConvertedFromTrial() (int, error) {
	return r.count(squirrel.Eq{"m.converted_from_trial": true})
}

func (r *memberRepository) count(pred any) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(membersTable).
		Where(pred).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total int
	if err := r.conn.QueryRow(query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao contar membros: %w", err)
	}

	return total, nil
}
