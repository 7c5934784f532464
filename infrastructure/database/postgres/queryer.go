package postgres

import (
	"database/sql"
)

// Queryer espelha os métodos de *sql.DB usados pelos repositórios
type Queryer interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}
