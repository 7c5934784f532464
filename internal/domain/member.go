package domain

import "time"

// Statuses de membro armazenados como texto literal no banco.
// As contagens de membros são sensíveis a maiúsculas por contrato,
// diferente dos statuses de reserva e transação.
const (
	MemberStatusActive   = "Active"
	MemberStatusInactive = "Inactive"
)

type Member struct {
	ID                 int       `json:"id"`
	Name               string    `json:"name"`
	Status             string    `json:"status"`
	IsTrialUser        bool      `json:"is_trial_user"`
	ConvertedFromTrial bool      `json:"converted_from_trial"`
	JoinDate           time.Time `json:"join_date"`
}

// MemberCounts agrupa as contagens de membros usadas pelo snapshot de métricas
type MemberCounts struct {
	Active    int
	Inactive  int
	Trials    int
	Converted int
}
