package metrics

import (
	"context"

	"github.com/QuangTung97/loyalty/pkg/bus"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
)

// Metrics groups the loyalty counters, registered on one registry
type Metrics struct {
	pointsAwarded    prometheus.Counter
	pointsSpent      prometheus.Counter
	purchases        *prometheus.CounterVec
	eventsPublished  *prometheus.CounterVec
	listenerFailures *prometheus.CounterVec
}

var _ bus.Observer = &Metrics{}

// New ...
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		pointsAwarded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "loyalty",
			Name:      "points_awarded_total",
			Help:      "Sum of points added to customer accounts",
		}),
		pointsSpent: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "loyalty",
			Name:      "points_spent_total",
			Help:      "Sum of points spent by customers",
		}),
		purchases: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "loyalty",
			Name:      "campaign_purchases_total",
			Help:      "Number of campaign purchases by reward",
		}, []string{"reward"}),
		eventsPublished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "loyalty",
			Name:      "events_published_total",
			Help:      "Number of published system events",
		}, []string{"event"}),
		listenerFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "loyalty",
			Name:      "listener_failures_total",
			Help:      "Number of failed listener invocations",
		}, []string{"event"}),
	}

	reg.MustRegister(m.pointsAwarded, m.pointsSpent, m.purchases, m.eventsPublished, m.listenerFailures)
	return m
}

// PointsAwarded ...
func (m *Metrics) PointsAwarded(value decimal.Decimal) {
	f, _ := value.Float64()
	m.pointsAwarded.Add(f)
}

// PointsSpent ...
func (m *Metrics) PointsSpent(value decimal.Decimal) {
	f, _ := value.Float64()
	m.pointsSpent.Add(f)
}

// CampaignPurchased ...
func (m *Metrics) CampaignPurchased(reward string) {
	m.purchases.WithLabelValues(reward).Inc()
}

// Published ...
func (m *Metrics) Published(_ context.Context, event bus.Event, listenerErrs []error) {
	m.eventsPublished.WithLabelValues(event.EventName()).Inc()
	if len(listenerErrs) > 0 {
		m.listenerFailures.WithLabelValues(event.EventName()).Add(float64(len(listenerErrs)))
	}
}
