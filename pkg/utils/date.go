package utils

import "time"

// ParseDate interpreta uma data ISO (yyyy-mm-dd) opcional vinda da query string.
// String vazia retorna nil, indicando janela aberta nesse lado do filtro.
func ParseDate(dateStr string) (*time.Time, error) {
	if dateStr == "" {
		return nil, nil
	}

	date, err := time.Parse(time.DateOnly, dateStr)
	if err != nil {
		return nil, err
	}

	return &date, nil
}
