// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"strings"
	"time"
)

// PeriodKind representa a granularidade de um período de analytics
type PeriodKind string

const (
	PeriodDay   PeriodKind = "day"
	PeriodWeek  PeriodKind = "week"
	PeriodMonth PeriodKind = "month"
	PeriodYear  PeriodKind = "year"
)

// DateLayout é o formato das datas âncora (YYYY-MM-DD)
const DateLayout = time.DateOnly

var periodKinds = []PeriodKind{PeriodDay, PeriodWeek, PeriodMonth, PeriodYear}

// PeriodKinds retorna todos os tipos de período suportados
func PeriodKinds() []PeriodKind {
	return append([]PeriodKind(nil), periodKinds...)
}

// IsValid verifica se o tipo de período é suportado
func (k PeriodKind) IsValid() bool {
	for _, kind := range periodKinds {
		if k == kind {
			return true
		}
	}
	return false
}

func (k PeriodKind) String() string {
	return string(k)
}

// ParsePeriodKind converte uma string em PeriodKind; string vazia vira "day"
func ParsePeriodKind(s string) (PeriodKind, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return PeriodDay, true
	}

	kind := PeriodKind(s)
	return kind, kind.IsValid()
}

// Period é a janela [Start, End] (inclusiva) de um período ancorado em uma data
type Period struct {
	Kind   PeriodKind
	Anchor time.Time
	Start  time.Time
	End    time.Time
}

// Contains verifica se o instante pertence à janela
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}

// AnchorDate retorna a âncora no formato YYYY-MM-DD
func (p Period) AnchorDate() string {
	return p.Anchor.Format(DateLayout)
}

// SnapshotID monta a chave composta "<kind>_<YYYY-MM-DD>"
func SnapshotID(kind PeriodKind, anchor time.Time) string {
	return kind.String() + "_" + anchor.Format(DateLayout)
}
