package notify

import (
	"context"
	"fmt"

	"github.com/QuangTung97/loyalty/config"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate moq -out notify_mocks.go . Sender

// Sender delivers messages to customers
type Sender interface {
	CustomerBoughtCampaign(ctx context.Context, msg CampaignBoughtMessage) error
}

// CampaignBoughtMessage ...
type CampaignBoughtMessage struct {
	CustomerID   string
	Phone        string
	Email        string
	CampaignName string
	Coupon       string
	CostInPoints decimal.Decimal
}

// Text ...
func (m CampaignBoughtMessage) Text() string {
	if m.Coupon == "" {
		return fmt.Sprintf("You have redeemed %s points for %s.", m.CostInPoints.String(), m.CampaignName)
	}
	return fmt.Sprintf("You have redeemed %s points for %s. Your coupon: %s",
		m.CostInPoints.String(), m.CampaignName, m.Coupon)
}

// New selects the driver configured by conf
func New(ctx context.Context, conf config.NotificationConfig, logger *zap.Logger) (Sender, error) {
	switch conf.Driver {
	case "", "log":
		return NewLogSender(logger), nil
	case "sns":
		return NewSNSSender(ctx, conf)
	default:
		return nil, fmt.Errorf("notify: unknown driver %q", conf.Driver)
	}
}

// LogSender only writes messages to the log
type LogSender struct {
	logger *zap.Logger
}

var _ Sender = &LogSender{}

// NewLogSender ...
func NewLogSender(logger *zap.Logger) *LogSender {
	return &LogSender{logger: logger}
}

// CustomerBoughtCampaign ...
func (s *LogSender) CustomerBoughtCampaign(_ context.Context, msg CampaignBoughtMessage) error {
	s.logger.Info("customer bought campaign",
		zap.String("customer.id", msg.CustomerID),
		zap.String("campaign", msg.CampaignName),
		zap.String("text", msg.Text()),
	)
	return nil
}
