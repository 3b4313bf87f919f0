package analytics

import (
	"math"

	"github.com/vfg2006/logistics-analytics-api/internal/domain"
)

// Compare calcula a variação percentual de cada métrica de current em relação a previous.
// Chaves ausentes em previous, ou com valor zero, resultam em 0. Chaves presentes apenas
// em previous são ignoradas.
func Compare(current, previous map[string]float64) map[string]float64 {
	comparisons := make(map[string]float64, len(current))
	for name, value := range current {
		comparisons[name+domain.ComparisonSuffix] = percentChange(value, previous[name])
	}
	return comparisons
}

func percentChange(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}

	change := (current - previous) / previous * 100
	if math.IsNaN(change) || math.IsInf(change, 0) {
		return 0
	}
	return change
}
