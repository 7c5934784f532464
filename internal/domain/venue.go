// Package domain contém as estruturas de dados do domínio da aplicação
package domain

// Venue representa uma unidade esportiva onde as reservas acontecem
type Venue struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}
