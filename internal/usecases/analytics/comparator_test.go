package analytics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/logistics-analytics-api/internal/domain"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		current  map[string]float64
		previous map[string]float64
		want     map[string]float64
	}{
		{
			name:     "crescimento",
			current:  map[string]float64{"totalRevenue": 150},
			previous: map[string]float64{"totalRevenue": 100},
			want:     map[string]float64{"totalRevenueChange": 50},
		},
		{
			name:     "queda",
			current:  map[string]float64{"newUsers": 5},
			previous: map[string]float64{"newUsers": 20},
			want:     map[string]float64{"newUsersChange": -75},
		},
		{
			name:     "base zero resulta em zero",
			current:  map[string]float64{"totalCargoBookings": 10},
			previous: map[string]float64{"totalCargoBookings": 0},
			want:     map[string]float64{"totalCargoBookingsChange": 0},
		},
		{
			name:     "chave ausente no anterior é tratada como zero",
			current:  map[string]float64{"activeUsers": 3},
			previous: map[string]float64{},
			want:     map[string]float64{"activeUsersChange": 0},
		},
		{
			name:     "chave apenas no anterior é ignorada",
			current:  map[string]float64{"activeUsers": 3},
			previous: map[string]float64{"activeUsers": 3, "legacy": 10},
			want:     map[string]float64{"activeUsersChange": 0},
		},
		{
			name:     "sem métricas",
			current:  map[string]float64{},
			previous: nil,
			want:     map[string]float64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compare(tt.current, tt.previous))
		})
	}
}

func TestCompare_NeverReturnsNonFinite(t *testing.T) {
	current := map[string]float64{"a": math.MaxFloat64, "b": 0, "c": 1}
	previous := map[string]float64{"a": math.SmallestNonzeroFloat64, "b": 0, "c": 0}

	for key, value := range Compare(current, previous) {
		assert.False(t, math.IsNaN(value), key)
		assert.False(t, math.IsInf(value, 0), key)
	}
}

func TestCompare_KeysForEveryMetric(t *testing.T) {
	current := domain.Metrics{TotalRevenue: 10}.Values()
	comparisons := Compare(current, domain.Metrics{}.Values())

	assert.Len(t, comparisons, len(domain.MetricNames()))
	for _, name := range domain.MetricNames() {
		assert.Contains(t, comparisons, name+domain.ComparisonSuffix)
	}
}
