package utils

import (
	"errors"
	"regexp"
	"time"
)

const dateLayout = "2006-01-02"

var (
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

	ErrInvalidDate = errors.New("data inválida, formato esperado YYYY-MM-DD")
)

// ParseDate converte uma data YYYY-MM-DD para a meia-noite no fuso informado.
// Datas fora do calendário (ex: 2025-02-30) são rejeitadas.
func ParseDate(dateStr string, location *time.Location) (time.Time, error) {
	if !datePattern.MatchString(dateStr) {
		return time.Time{}, ErrInvalidDate
	}

	if location == nil {
		location = time.UTC
	}

	date, err := time.ParseInLocation(dateLayout, dateStr, location)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}

	return date, nil
}
