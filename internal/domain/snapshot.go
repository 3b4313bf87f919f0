package domain

import "time"

// AnalyticsSnapshot é o documento persistido com as métricas de um período
// e a comparação com o período anterior do mesmo tipo.
type AnalyticsSnapshot struct {
	ID        string     `json:"id"`
	Range     PeriodKind `json:"range"`
	Date      string     `json:"date"` // Formato YYYY-MM-DD
	StartDate time.Time  `json:"startDate"`
	EndDate   time.Time  `json:"endDate"`
	Metrics
	Comparisons map[string]float64 `json:"comparisons"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

// SnapshotUpdate é o resultado de uma atualização parcial
type SnapshotUpdate struct {
	ID        string             `json:"id"`
	Fields    map[string]float64 `json:"fields"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// SnapshotRangeFilter delimita uma busca de snapshots por data âncora
type SnapshotRangeFilter struct {
	Kind      PeriodKind
	StartDate time.Time
	EndDate   time.Time
}
