package analytics

import (
	"fmt"
	"time"

	"github.com/vfg2006/logistics-analytics-api/internal/domain"
)

const lastMillisecond = int(999 * time.Millisecond)

// ResolveWindow calcula a janela [início, fim] do período que contém a âncora.
// As fronteiras são calculadas no fuso horário da própria âncora e o fim é
// o último milissegundo do último dia do período. Semanas começam na segunda-feira.
func ResolveWindow(anchor time.Time, kind domain.PeriodKind) (domain.Period, error) {
	loc := anchor.Location()
	y, m, d := anchor.Date()

	var start, end time.Time
	switch kind {
	case domain.PeriodDay:
		start = startOfDay(y, m, d, loc)
		end = endOfDay(y, m, d, loc)
	case domain.PeriodWeek:
		offset := (int(anchor.Weekday()) + 6) % 7
		start = startOfDay(y, m, d-offset, loc)
		end = endOfDay(y, m, d-offset+6, loc)
	case domain.PeriodMonth:
		start = startOfDay(y, m, 1, loc)
		end = endOfDay(y, m+1, 0, loc)
	case domain.PeriodYear:
		start = startOfDay(y, time.January, 1, loc)
		end = endOfDay(y, time.December, 31, loc)
	default:
		return domain.Period{}, fmt.Errorf("%w: tipo %q não suportado", ErrInvalidPeriod, kind)
	}

	return domain.Period{
		Kind:   kind,
		Anchor: startOfDay(y, m, d, loc),
		Start:  start,
		End:    end,
	}, nil
}

// ResolvePreviousAnchor recua a âncora uma unidade do tipo informado.
// Para mês e ano o dia é limitado ao último dia do mês de destino
// (31/03 -> 28/02 ou 29/02; 29/02/2024 -> 28/02/2023).
func ResolvePreviousAnchor(anchor time.Time, kind domain.PeriodKind) (time.Time, error) {
	loc := anchor.Location()
	y, m, d := anchor.Date()

	switch kind {
	case domain.PeriodDay:
		return startOfDay(y, m, d-1, loc), nil
	case domain.PeriodWeek:
		return startOfDay(y, m, d-7, loc), nil
	case domain.PeriodMonth:
		target := startOfDay(y, m-1, 1, loc)
		return clampedDate(target.Year(), target.Month(), d, loc), nil
	case domain.PeriodYear:
		return clampedDate(y-1, m, d, loc), nil
	default:
		return time.Time{}, fmt.Errorf("%w: tipo %q não suportado", ErrInvalidPeriod, kind)
	}
}

// ResolvePreviousWindow retorna a janela do período imediatamente anterior do mesmo tipo
func ResolvePreviousWindow(anchor time.Time, kind domain.PeriodKind) (domain.Period, error) {
	previous, err := ResolvePreviousAnchor(anchor, kind)
	if err != nil {
		return domain.Period{}, err
	}
	return ResolveWindow(previous, kind)
}

func startOfDay(y int, m time.Month, d int, loc *time.Location) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

func endOfDay(y int, m time.Month, d int, loc *time.Location) time.Time {
	return time.Date(y, m, d, 23, 59, 59, lastMillisecond, loc)
}

func daysIn(y int, m time.Month, loc *time.Location) int {
	return time.Date(y, m+1, 0, 0, 0, 0, 0, loc).Day()
}

func clampedDate(y int, m time.Month, d int, loc *time.Location) time.Time {
	if last := daysIn(y, m, loc); d > last {
		d = last
	}
	return startOfDay(y, m, d, loc)
}
