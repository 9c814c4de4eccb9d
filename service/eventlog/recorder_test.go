package eventlog

import (
	"context"
	"errors"
	"testing"

	"github.com/QuangTung97/loyalty/model"
	"github.com/QuangTung97/loyalty/pkg/bus"
	"github.com/QuangTung97/loyalty/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func newContext() context.Context {
	return context.Background()
}

func newProvider() *repository.ProviderMock {
	return &repository.ProviderMock{
		ReadonlyFunc: func(ctx context.Context) context.Context {
			return ctx
		},
		TransactFunc: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	}
}

type plainEvent struct{}

func (plainEvent) EventName() string { return "plain" }

func TestRecorder_Published(t *testing.T) {
	events := &repository.EventMock{
		InsertEventFunc: func(ctx context.Context, event model.Event) error {
			return nil
		},
	}
	r := NewRecorder(newProvider(), events)

	d := bus.NewDispatcher(bus.WithObserver(r))
	err := d.Publish(newContext(), model.CampaignBought{
		PurchaseID:   "purchase-01",
		CampaignID:   "campaign-01",
		CampaignName: "Free delivery",
		CustomerID:   "customer-01",
		Coupon:       "FREE-001",
		CostInPoints: decimal.NewFromInt(100),
	})
	assert.Equal(t, nil, err)

	err = d.Publish(newContext(), plainEvent{})
	assert.Equal(t, nil, err)

	calls := events.InsertEventCalls()
	assert.Equal(t, 1, len(calls))
	assert.Equal(t, model.Event{
		Name: "loyalty.campaign.bought",
		Data: `{"purchaseId":"purchase-01","campaignId":"campaign-01","campaignName":"Free delivery",` +
			`"customerId":"customer-01","coupon":"FREE-001","costInPoints":"100"}`,
		AggregateType: model.AggregateTypeCampaign,
		AggregateID:   "campaign-01",
	}, calls[0].Event)
}

func TestRecorder_Published__Insert_Error_Does_Not_Fail_Publish(t *testing.T) {
	events := &repository.EventMock{
		InsertEventFunc: func(ctx context.Context, event model.Event) error {
			return errors.New("insert error")
		},
	}
	d := bus.NewDispatcher(bus.WithObserver(NewRecorder(newProvider(), events)))

	err := d.Publish(newContext(), model.CustomerUpdated{CustomerID: "customer-01"})
	assert.Equal(t, nil, err)
	assert.Equal(t, model.AggregateTypeCustomer, events.InsertEventCalls()[0].Event.AggregateType)
}
