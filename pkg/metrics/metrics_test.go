package metrics

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type testEvent struct{}

func (testEvent) EventName() string { return "test.event" }

func TestMetrics_Published(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.Published(context.Background(), testEvent{}, nil)
	m.Published(context.Background(), testEvent{}, []error{errors.New("a"), errors.New("b")})

	assert.Equal(t, float64(2), testutil.ToFloat64(m.eventsPublished.WithLabelValues("test.event")))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.listenerFailures.WithLabelValues("test.event")))
}

func TestMetrics_Points(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.PointsAwarded(decimal.RequireFromString("144.9"))
	m.PointsAwarded(decimal.RequireFromString("0.1"))
	m.PointsSpent(decimal.NewFromInt(20))
	m.CampaignPurchased("cashback")

	assert.InDelta(t, 145.0, testutil.ToFloat64(m.pointsAwarded), 0.0001)
	assert.Equal(t, float64(20), testutil.ToFloat64(m.pointsSpent))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.purchases.WithLabelValues("cashback")))
}
