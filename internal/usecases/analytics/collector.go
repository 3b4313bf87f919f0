package analytics

import (
	"context"
	"strings"
	"time"

	"github.com/vfg2006/logistics-analytics-api/infrastructure/repository"
	"github.com/vfg2006/logistics-analytics-api/internal/domain"
	"github.com/vfg2006/logistics-analytics-api/pkg/log"
	"golang.org/x/sync/errgroup"
)

var trackedPaymentMethods = []string{
	domain.PaymentMethodMpesa,
	domain.PaymentMethodAirtel,
	domain.PaymentMethodPaystack,
	domain.PaymentMethodCard,
}

// Collector agrega as métricas de uma janela a partir da fonte de registros.
// Não guarda estado entre chamadas.
type Collector struct {
	source   repository.MetricsSourceRepository
	recorder Recorder
}

func NewCollector(source repository.MetricsSourceRepository, recorder Recorder) *Collector {
	if recorder == nil {
		recorder = NopRecorder{}
	}

	return &Collector{
		source:   source,
		recorder: recorder,
	}
}

type bookingTotals struct {
	windowTotal     int
	windowCompleted int
	lifetimeTotal   int64
	lifetimeDone    int64
	durationsHours  []float64
}

type paymentTotals struct {
	revenue  float64
	failed   int
	attempts map[string]int
	success  map[string]int
}

// Collect executa as consultas dos oito domínios em paralelo. A primeira falha
// cancela as demais e é retornada como *DataSourceError.
func (c *Collector) Collect(ctx context.Context, window domain.Period) (domain.Metrics, error) {
	startedAt := time.Now()
	defer func() {
		c.recorder.ObserveCollect(window.Kind, time.Since(startedAt))
	}()

	var (
		activeUsers            int64
		cargo, agri            bookingTotals
		payments               paymentTotals
		transporters, brokers  int64
		totalUsers, newUsers   int64
		subscribers, activeSub int64
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		activeUsers, err = c.countDistinctActors(gctx, domain.SourceQuery{Collection: domain.CollectionActivity, Window: &window})
		return err
	})

	g.Go(func() (err error) {
		cargo, err = c.bookings(gctx, domain.CollectionCargo, window)
		return err
	})

	g.Go(func() (err error) {
		agri, err = c.bookings(gctx, domain.CollectionAgri, window)
		return err
	})

	g.Go(func() error {
		records, err := c.find(gctx, domain.SourceQuery{Collection: domain.CollectionPayments, Window: &window})
		if err != nil {
			return err
		}
		payments = summarizePayments(records)
		return nil
	})

	g.Go(func() (err error) {
		transporters, err = c.count(gctx, domain.SourceQuery{
			Collection: domain.CollectionTransporters,
			Equals:     map[string]any{domain.FieldStatus: domain.PartnerStatusApproved},
		})
		return err
	})

	g.Go(func() (err error) {
		brokers, err = c.count(gctx, domain.SourceQuery{
			Collection: domain.CollectionBrokers,
			Equals:     map[string]any{domain.FieldStatus: domain.PartnerStatusApproved},
		})
		return err
	})

	g.Go(func() (err error) {
		if totalUsers, err = c.count(gctx, domain.SourceQuery{Collection: domain.CollectionUsers}); err != nil {
			return err
		}
		newUsers, err = c.count(gctx, domain.SourceQuery{Collection: domain.CollectionUsers, Window: &window})
		return err
	})

	g.Go(func() (err error) {
		if subscribers, err = c.count(gctx, domain.SourceQuery{Collection: domain.CollectionSubscribers}); err != nil {
			return err
		}
		activeSub, err = c.count(gctx, domain.SourceQuery{
			Collection: domain.CollectionSubscribers,
			Equals:     map[string]any{domain.FieldActive: true},
		})
		return err
	})

	if err := g.Wait(); err != nil {
		return domain.Metrics{}, err
	}

	metrics := domain.Metrics{
		ActiveUsers:                float64(activeUsers),
		TotalCargoBookings:         float64(cargo.windowTotal),
		TotalAgriBookings:          float64(agri.windowTotal),
		CargoCompletionRate:        ratio(float64(cargo.windowCompleted), float64(cargo.windowTotal)),
		AgriCompletionRate:         ratio(float64(agri.windowCompleted), float64(agri.windowTotal)),
		CargoCompletionRateAllTime: ratio(float64(cargo.lifetimeDone), float64(cargo.lifetimeTotal)),
		TotalCargoBookingsAllTime:  float64(cargo.lifetimeTotal),
		TotalAgriBookingsAllTime:   float64(agri.lifetimeTotal),
		AvgCompletionTime:          mean(append(cargo.durationsHours, agri.durationsHours...)),
		ActiveTransporters:         float64(transporters),
		ActiveBrokers:              float64(brokers),
		TotalUsers:                 float64(totalUsers),
		NewUsers:                   float64(newUsers),
		TotalSubscribers:           float64(subscribers),
		ActiveSubscribers:          float64(activeSub),
		TotalRevenue:               payments.revenue,
		FailedPayments:             float64(payments.failed),
		MpesaSuccessRate:           payments.successRate(domain.PaymentMethodMpesa),
		AirtelSuccessRate:          payments.successRate(domain.PaymentMethodAirtel),
		PaystackSuccessRate:        payments.successRate(domain.PaymentMethodPaystack),
		CardSuccessRate:            payments.successRate(domain.PaymentMethodCard),
	}
	metrics.ActiveBookings = metrics.TotalCargoBookings + metrics.TotalAgriBookings

	log.L.WithFields(log.Fields{
		"range": window.Kind.String(),
		"start": window.Start,
		"end":   window.End,
	}).Debug("Métricas coletadas")

	return metrics, nil
}

// bookings resume um domínio de reservas na janela e no histórico completo
func (c *Collector) bookings(ctx context.Context, collection domain.Collection, window domain.Period) (bookingTotals, error) {
	var totals bookingTotals

	records, err := c.find(ctx, domain.SourceQuery{Collection: collection, Window: &window})
	if err != nil {
		return totals, err
	}

	totals.windowTotal = len(records)
	for _, record := range records {
		if record.Status != domain.BookingStatusCompleted {
			continue
		}
		totals.windowCompleted++

		if record.CompletedAt == nil || record.CompletedAt.Before(record.CreatedAt) {
			continue
		}
		totals.durationsHours = append(totals.durationsHours, record.CompletedAt.Sub(record.CreatedAt).Hours())
	}

	if totals.lifetimeTotal, err = c.count(ctx, domain.SourceQuery{Collection: collection}); err != nil {
		return totals, err
	}

	totals.lifetimeDone, err = c.count(ctx, domain.SourceQuery{
		Collection: collection,
		Equals:     map[string]any{domain.FieldStatus: domain.BookingStatusCompleted},
	})
	return totals, err
}

func (c *Collector) find(ctx context.Context, query domain.SourceQuery) ([]domain.Record, error) {
	startedAt := time.Now()
	records, err := c.source.Find(ctx, query)
	c.recorder.ObserveSourceQuery(query.Collection, time.Since(startedAt))
	if err != nil {
		return nil, &DataSourceError{Collection: query.Collection, Err: err}
	}
	return records, nil
}

func (c *Collector) count(ctx context.Context, query domain.SourceQuery) (int64, error) {
	startedAt := time.Now()
	count, err := c.source.Count(ctx, query)
	c.recorder.ObserveSourceQuery(query.Collection, time.Since(startedAt))
	if err != nil {
		return 0, &DataSourceError{Collection: query.Collection, Err: err}
	}
	return count, nil
}

func (c *Collector) countDistinctActors(ctx context.Context, query domain.SourceQuery) (int64, error) {
	startedAt := time.Now()
	count, err := c.source.CountDistinctActors(ctx, query)
	c.recorder.ObserveSourceQuery(query.Collection, time.Since(startedAt))
	if err != nil {
		return 0, &DataSourceError{Collection: query.Collection, Err: err}
	}
	return count, nil
}

func summarizePayments(records []domain.Record) paymentTotals {
	totals := paymentTotals{
		attempts: make(map[string]int, len(trackedPaymentMethods)),
		success:  make(map[string]int, len(trackedPaymentMethods)),
	}

	for _, record := range records {
		method := strings.ToLower(strings.TrimSpace(record.Method))
		switch record.Status {
		case domain.PaymentStatusSuccess:
			if record.Amount > 0 {
				totals.revenue += record.Amount
			}
			totals.success[method]++
		case domain.PaymentStatusFailed:
			totals.failed++
		}
		totals.attempts[method]++
	}

	return totals
}

func (p paymentTotals) successRate(method string) float64 {
	return ratio(float64(p.success[method]), float64(p.attempts[method])) * 100
}

// ratio retorna 0 quando o denominador é zero
func ratio(numerator, denominator float64) float64 {
	if denominator <= 0 {
		return 0
	}
	return numerator / denominator
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
