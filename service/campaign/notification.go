package campaign

import (
	"context"

	"github.com/QuangTung97/loyalty/model"
	"github.com/QuangTung97/loyalty/pkg/bus"
	"github.com/QuangTung97/loyalty/pkg/notify"
	"github.com/QuangTung97/loyalty/pkg/otellib"
	"github.com/QuangTung97/loyalty/repository"
	"go.uber.org/zap"
)

// NotificationListener tells the customer about a purchase
type NotificationListener struct {
	provider  repository.Provider
	customers repository.Customer
	sender    notify.Sender
}

// NewNotificationListener ...
func NewNotificationListener(
	provider repository.Provider, customers repository.Customer, sender notify.Sender,
) *NotificationListener {
	return &NotificationListener{
		provider:  provider,
		customers: customers,
		sender:    sender,
	}
}

// OnCampaignBought a customer without phone and email is skipped
func (l *NotificationListener) OnCampaignBought(ctx context.Context, event model.CampaignBought) error {
	customer, err := l.customers.GetCustomer(l.provider.Readonly(ctx), event.CustomerID)
	if err != nil {
		return err
	}
	if !customer.Phone.Valid && !customer.Email.Valid {
		otellib.Extract(ctx).Debug("customer has no contact", zap.String("customer_id", customer.ID))
		return nil
	}

	return l.sender.CustomerBoughtCampaign(ctx, notify.CampaignBoughtMessage{
		CustomerID:   customer.ID,
		Phone:        customer.Phone.String,
		Email:        customer.Email.String,
		CampaignName: event.CampaignName,
		Coupon:       event.Coupon,
		CostInPoints: event.CostInPoints,
	})
}

// Register ...
func (l *NotificationListener) Register(d *bus.Dispatcher) {
	bus.Subscribe(d, l.OnCampaignBought)
}
