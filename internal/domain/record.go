package domain

import "time"

// Collection identifica uma coleção de registros da fonte de métricas
type Collection string

const (
	CollectionActivity     Collection = "activity_logs"
	CollectionCargo        Collection = "cargo_bookings"
	CollectionAgri         Collection = "agri_bookings"
	CollectionPayments     Collection = "payments"
	CollectionTransporters Collection = "transporters"
	CollectionBrokers      Collection = "brokers"
	CollectionUsers        Collection = "users"
	CollectionSubscribers  Collection = "subscribers"
)

// Valores de status usados nos filtros de igualdade
const (
	BookingStatusCompleted = "completed"
	PartnerStatusApproved  = "approved"
	PaymentStatusSuccess   = "success"
	PaymentStatusFailed    = "failed"
)

// Campos aceitos em SourceQuery.Equals
const (
	FieldStatus = "status"
	FieldActive = "active"
)

// Métodos de pagamento acompanhados nas taxas de sucesso
const (
	PaymentMethodMpesa    = "mpesa"
	PaymentMethodAirtel   = "airtel"
	PaymentMethodPaystack = "paystack"
	PaymentMethodCard     = "card"
)

// Record é a forma normalizada de uma linha de qualquer coleção.
// Campos que a coleção não possui ficam com o valor zero.
type Record struct {
	ID          string
	ActorID     string
	Status      string
	Method      string
	Amount      float64
	CreatedAt   time.Time
	CompletedAt *time.Time
}

// SourceQuery descreve uma consulta à fonte de métricas.
// Window nil significa "todo o histórico".
type SourceQuery struct {
	Collection Collection
	Window     *Period
	Equals     map[string]any
}
