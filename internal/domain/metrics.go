package domain

// Nomes das métricas, na ordem em que são reportadas
const (
	MetricActiveUsers                = "activeUsers"
	MetricTotalCargoBookings         = "totalCargoBookings"
	MetricTotalAgriBookings          = "totalAgriBookings"
	MetricCargoCompletionRate        = "cargoCompletionRate"
	MetricAgriCompletionRate         = "agriCompletionRate"
	MetricCargoCompletionRateAllTime = "cargoCompletionRateAllTime"
	MetricTotalCargoBookingsAllTime  = "totalCargoBookingsAllTime"
	MetricTotalAgriBookingsAllTime   = "totalAgriBookingsAllTime"
	MetricAvgCompletionTime          = "avgCompletionTime"
	MetricActiveTransporters         = "activeTransporters"
	MetricActiveBrokers              = "activeBrokers"
	MetricTotalUsers                 = "totalUsers"
	MetricNewUsers                   = "newUsers"
	MetricTotalSubscribers           = "totalSubscribers"
	MetricActiveSubscribers          = "activeSubscribers"
	MetricTotalRevenue               = "totalRevenue"
	MetricFailedPayments             = "failedPayments"
	MetricMpesaSuccessRate           = "mpesaSuccessRate"
	MetricAirtelSuccessRate          = "airtelSuccessRate"
	MetricPaystackSuccessRate        = "paystackSuccessRate"
	MetricCardSuccessRate            = "cardSuccessRate"
	MetricActiveBookings             = "activeBookings"
)

// ComparisonSuffix é o sufixo das chaves de comparação ("totalRevenueChange")
const ComparisonSuffix = "Change"

// Metrics contém as métricas agregadas de um período.
// Taxas de conclusão ficam em [0,1], taxas de sucesso de pagamento em [0,100]
// e avgCompletionTime em horas.
type Metrics struct {
	ActiveUsers                float64 `json:"activeUsers"`
	TotalCargoBookings         float64 `json:"totalCargoBookings"`
	TotalAgriBookings          float64 `json:"totalAgriBookings"`
	CargoCompletionRate        float64 `json:"cargoCompletionRate"`
	AgriCompletionRate         float64 `json:"agriCompletionRate"`
	CargoCompletionRateAllTime float64 `json:"cargoCompletionRateAllTime"`
	TotalCargoBookingsAllTime  float64 `json:"totalCargoBookingsAllTime"`
	TotalAgriBookingsAllTime   float64 `json:"totalAgriBookingsAllTime"`
	AvgCompletionTime          float64 `json:"avgCompletionTime"`
	ActiveTransporters         float64 `json:"activeTransporters"`
	ActiveBrokers              float64 `json:"activeBrokers"`
	TotalUsers                 float64 `json:"totalUsers"`
	NewUsers                   float64 `json:"newUsers"`
	TotalSubscribers           float64 `json:"totalSubscribers"`
	ActiveSubscribers          float64 `json:"activeSubscribers"`
	TotalRevenue               float64 `json:"totalRevenue"`
	FailedPayments             float64 `json:"failedPayments"`
	MpesaSuccessRate           float64 `json:"mpesaSuccessRate"`
	AirtelSuccessRate          float64 `json:"airtelSuccessRate"`
	PaystackSuccessRate        float64 `json:"paystackSuccessRate"`
	CardSuccessRate            float64 `json:"cardSuccessRate"`
	ActiveBookings             float64 `json:"activeBookings"`
}

// metricFields liga cada nome de métrica ao campo correspondente
var metricFields = []struct {
	name  string
	field func(m *Metrics) *float64
}{
	{MetricActiveUsers, func(m *Metrics) *float64 { return &m.ActiveUsers }},
	{MetricTotalCargoBookings, func(m *Metrics) *float64 { return &m.TotalCargoBookings }},
	{MetricTotalAgriBookings, func(m *Metrics) *float64 { return &m.TotalAgriBookings }},
	{MetricCargoCompletionRate, func(m *Metrics) *float64 { return &m.CargoCompletionRate }},
	{MetricAgriCompletionRate, func(m *Metrics) *float64 { return &m.AgriCompletionRate }},
	{MetricCargoCompletionRateAllTime, func(m *Metrics) *float64 { return &m.CargoCompletionRateAllTime }},
	{MetricTotalCargoBookingsAllTime, func(m *Metrics) *float64 { return &m.TotalCargoBookingsAllTime }},
	{MetricTotalAgriBookingsAllTime, func(m *Metrics) *float64 { return &m.TotalAgriBookingsAllTime }},
	{MetricAvgCompletionTime, func(m *Metrics) *float64 { return &m.AvgCompletionTime }},
	{MetricActiveTransporters, func(m *Metrics) *float64 { return &m.ActiveTransporters }},
	{MetricActiveBrokers, func(m *Metrics) *float64 { return &m.ActiveBrokers }},
	{MetricTotalUsers, func(m *Metrics) *float64 { return &m.TotalUsers }},
	{MetricNewUsers, func(m *Metrics) *float64 { return &m.NewUsers }},
	{MetricTotalSubscribers, func(m *Metrics) *float64 { return &m.TotalSubscribers }},
	{MetricActiveSubscribers, func(m *Metrics) *float64 { return &m.ActiveSubscribers }},
	{MetricTotalRevenue, func(m *Metrics) *float64 { return &m.TotalRevenue }},
	{MetricFailedPayments, func(m *Metrics) *float64 { return &m.FailedPayments }},
	{MetricMpesaSuccessRate, func(m *Metrics) *float64 { return &m.MpesaSuccessRate }},
	{MetricAirtelSuccessRate, func(m *Metrics) *float64 { return &m.AirtelSuccessRate }},
	{MetricPaystackSuccessRate, func(m *Metrics) *float64 { return &m.PaystackSuccessRate }},
	{MetricCardSuccessRate, func(m *Metrics) *float64 { return &m.CardSuccessRate }},
	{MetricActiveBookings, func(m *Metrics) *float64 { return &m.ActiveBookings }},
}

// MetricNames retorna os nomes de todas as métricas na ordem de reporte
func MetricNames() []string {
	names := make([]string, 0, len(metricFields))
	for _, f := range metricFields {
		names = append(names, f.name)
	}
	return names
}

// IsMetric verifica se o nome pertence ao conjunto fixo de métricas
func IsMetric(name string) bool {
	for _, f := range metricFields {
		if f.name == name {
			return true
		}
	}
	return false
}

// Values retorna as métricas como mapa nome -> valor
func (m Metrics) Values() map[string]float64 {
	values := make(map[string]float64, len(metricFields))
	for _, f := range metricFields {
		values[f.name] = *f.field(&m)
	}
	return values
}

// Set atribui o valor de uma métrica pelo nome; retorna false se o nome não existe
func (m *Metrics) Set(name string, value float64) bool {
	for _, f := range metricFields {
		if f.name == name {
			*f.field(m) = value
			return true
		}
	}
	return false
}

// Get retorna o valor de uma métrica pelo nome
func (m Metrics) Get(name string) (float64, bool) {
	for _, f := range metricFields {
		if f.name == name {
			return *f.field(&m), true
		}
	}
	return 0, false
}
