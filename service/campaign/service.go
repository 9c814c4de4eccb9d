package campaign

import (
	"context"
	"errors"

	"github.com/QuangTung97/loyalty/config"
	"github.com/QuangTung97/loyalty/model"
	"github.com/QuangTung97/loyalty/pkg/apperr"
	"github.com/QuangTung97/loyalty/pkg/bus"
	"github.com/QuangTung97/loyalty/pkg/otellib"
	"github.com/QuangTung97/loyalty/pkg/util"
	"github.com/QuangTung97/loyalty/repository"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	// ErrCashbackNotAvailable no active cashback campaign targets the customer
	ErrCashbackNotAvailable = apperr.Domain("cashback_not_available", "cashback not available")

	// ErrCashbackNotValid the point value or the reward amount differs from the current cashback
	ErrCashbackNotValid = apperr.Domain("cashback_not_valid", "cashback not valid")

	// ErrCampaignIsCashback cashback campaigns are redeemed, not bought
	ErrCampaignIsCashback = apperr.Domain("campaign_is_cashback", "cashback campaign can not be bought")
)

const maxCouponAttempts = 3

//go:generate otelwrap --out service_wrappers.go . IService

// IService ...
type IService interface {
	Buy(ctx context.Context, campaignID string, customerID string) (BuyResult, error)
	AvailableCampaigns(ctx context.Context, customerID string) ([]model.Campaign, error)
	VisibleForCustomers(ctx context.Context, campaignID string) ([]string, error)
	SimulateCashback(ctx context.Context, customerID string, points decimal.Decimal) (Cashback, error)
	RedeemCashback(ctx context.Context, input RedeemInput) (Cashback, error)
	ChangeCouponUsage(ctx context.Context, input CouponUsageInput) error
}

// BuyResult ...
type BuyResult struct {
	PurchaseID string
	Coupon     string
}

// Cashback is a simulated or redeemed conversion of points to money
type Cashback struct {
	CustomerID   string          `json:"customerId"`
	CampaignID   string          `json:"campaignId"`
	PointsAmount decimal.Decimal `json:"pointsAmount"`
	PointValue   decimal.Decimal `json:"pointValue"`
	RewardAmount decimal.Decimal `json:"rewardAmount"`
}

// RedeemInput values must match a previous simulation
type RedeemInput struct {
	CustomerID   string          `validate:"required"`
	PointsAmount decimal.Decimal `validate:"-"`
	PointValue   decimal.Decimal `validate:"-"`
	RewardAmount decimal.Decimal `validate:"-"`
}

// CouponUsageInput ...
type CouponUsageInput struct {
	CampaignID string `validate:"required"`
	CustomerID string `validate:"required"`
	Coupon     string `validate:"required"`
	Used       bool
}

// Service ...
type Service struct {
	provider    repository.Provider
	campaigns   repository.Campaign
	customers   repository.Customer
	coupons     repository.Coupon
	usage       *Provider
	validator   *Validator
	buy         bus.CommandHandler[model.BuyCampaign]
	couponUsage bus.CommandHandler[model.ChangeCouponUsage]
	newID       func() string
}

var _ IService = &Service{}

// NewService ...
func NewService(
	provider repository.Provider,
	campaigns repository.Campaign,
	customers repository.Customer,
	coupons repository.Coupon,
	usage *Provider,
	validator *Validator,
	buy bus.CommandHandler[model.BuyCampaign],
	couponUsage bus.CommandHandler[model.ChangeCouponUsage],
	newID func() string,
) *Service {
	return &Service{
		provider:    provider,
		campaigns:   campaigns,
		customers:   customers,
		coupons:     coupons,
		usage:       usage,
		validator:   validator,
		buy:         buy,
		couponUsage: couponUsage,
		newID:       newID,
	}
}

func (s *Service) getCampaign(ctx context.Context, id string) (model.Campaign, error) {
	c, err := s.campaigns.GetCampaign(s.provider.Readonly(ctx), id)
	if repository.IsNotFound(err) {
		return model.Campaign{}, ErrCampaignNotFound
	}
	return c, err
}

func (s *Service) getCustomer(ctx context.Context, id string) (model.Customer, error) {
	customer, err := s.customers.GetCustomer(s.provider.Readonly(ctx), id)
	if repository.IsNotFound(err) {
		return model.Customer{}, ErrCustomerNotFound
	}
	return customer, err
}

// Buy validates, selects a free coupon and dispatches BuyCampaign.
// A pool coupon taken concurrently is replaced by the next free one.
func (s *Service) Buy(ctx context.Context, campaignID string, customerID string) (BuyResult, error) {
	c, err := s.getCampaign(ctx, campaignID)
	if err != nil {
		return BuyResult{}, err
	}
	if c.IsCashback() {
		return BuyResult{}, ErrCampaignIsCashback
	}
	customer, err := s.getCustomer(ctx, customerID)
	if err != nil {
		return BuyResult{}, err
	}
	if err := s.validator.Validate(ctx, c, customer); err != nil {
		return BuyResult{}, err
	}

	for attempt := 1; ; attempt++ {
		coupons, err := s.usage.FreeCoupons(ctx, c, 1)
		if err != nil {
			return BuyResult{}, err
		}
		if len(coupons) == 0 {
			return BuyResult{}, ErrNoCouponsLeft
		}

		cmd := model.BuyCampaign{
			PurchaseID: s.newID(),
			CampaignID: c.ID,
			CustomerID: customerID,
			Coupon:     coupons[0],
		}
		err = s.buy.Handle(ctx, cmd)
		if errors.Is(err, ErrCouponTaken) && attempt < maxCouponAttempts {
			otellib.Extract(ctx).Warn("coupon taken, retry", zap.String("coupon", cmd.Coupon))
			continue
		}
		if err != nil {
			return BuyResult{}, err
		}
		return BuyResult{PurchaseID: cmd.PurchaseID, Coupon: cmd.Coupon}, nil
	}
}

// AvailableCampaigns campaigns the customer could buy ignoring the balance
func (s *Service) AvailableCampaigns(ctx context.Context, customerID string) ([]model.Campaign, error) {
	customer, err := s.getCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	campaigns, err := s.campaigns.FindActiveCampaigns(s.provider.Readonly(ctx))
	if err != nil {
		return nil, err
	}

	var result []model.Campaign
	for _, c := range campaigns {
		if c.IsCashback() {
			continue
		}
		err := s.validator.CheckAvailable(ctx, c, customer)
		if apperr.KindOf(err) == apperr.KindDomain {
			continue
		}
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, nil
}

// VisibleForCustomers ...
func (s *Service) VisibleForCustomers(ctx context.Context, campaignID string) ([]string, error) {
	c, err := s.getCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	return s.usage.VisibleForCustomers(ctx, c)
}

func (s *Service) cashbackFor(ctx context.Context, customerID string) (model.Campaign, error) {
	customer, err := s.getCustomer(ctx, customerID)
	if err != nil {
		return model.Campaign{}, err
	}
	c, ok, err := s.usage.CashbackForCustomer(ctx, customer)
	if err != nil {
		return model.Campaign{}, err
	}
	if !ok {
		return model.Campaign{}, ErrCashbackNotAvailable
	}
	return c, nil
}

func requirePositivePoints(points decimal.Decimal) error {
	if !points.IsPositive() {
		return apperr.Validation("pointsAmount", "must be greater than 0")
	}
	return nil
}

func newCashback(customerID string, c model.Campaign, points decimal.Decimal) Cashback {
	return Cashback{
		CustomerID:   customerID,
		CampaignID:   c.ID,
		PointsAmount: points,
		PointValue:   c.PointValue.Decimal,
		RewardAmount: config.RoundPoints(points.Mul(c.PointValue.Decimal)),
	}
}

// SimulateCashback ...
func (s *Service) SimulateCashback(ctx context.Context, customerID string, points decimal.Decimal) (Cashback, error) {
	if err := requirePositivePoints(points); err != nil {
		return Cashback{}, err
	}
	c, err := s.cashbackFor(ctx, customerID)
	if err != nil {
		return Cashback{}, err
	}
	if err := s.validator.CheckPoints(ctx, customerID, points); err != nil {
		return Cashback{}, err
	}
	return newCashback(customerID, c, points), nil
}

// RedeemCashback nothing is dispatched when the input differs from the current simulation
func (s *Service) RedeemCashback(ctx context.Context, input RedeemInput) (Cashback, error) {
	if err := bus.ValidateStruct(input); err != nil {
		return Cashback{}, err
	}
	if err := requirePositivePoints(input.PointsAmount); err != nil {
		return Cashback{}, err
	}
	c, err := s.cashbackFor(ctx, input.CustomerID)
	if err != nil {
		return Cashback{}, err
	}

	cashback := newCashback(input.CustomerID, c, input.PointsAmount)
	if !cashback.PointValue.Equal(input.PointValue) || !cashback.RewardAmount.Equal(input.RewardAmount) {
		return Cashback{}, ErrCashbackNotValid
	}
	if err := s.validator.CheckPoints(ctx, input.CustomerID, input.PointsAmount); err != nil {
		return Cashback{}, err
	}

	err = s.buy.Handle(ctx, model.BuyCampaign{
		PurchaseID: s.newID(),
		CampaignID: c.ID,
		CustomerID: input.CustomerID,
		Points:     input.PointsAmount,
	})
	if err != nil {
		return Cashback{}, err
	}
	return cashback, nil
}

// ChangeCouponUsage the coupon must belong to the campaign
func (s *Service) ChangeCouponUsage(ctx context.Context, input CouponUsageInput) error {
	if err := bus.ValidateStruct(input); err != nil {
		return err
	}

	coupons, err := s.coupons.FindCouponsByHash(s.provider.Readonly(ctx), util.HashFunc(input.Coupon), input.Coupon)
	if err != nil {
		return err
	}
	found := false
	for _, coupon := range coupons {
		if coupon.CampaignID == input.CampaignID {
			found = true
			break
		}
	}
	if !found {
		return ErrCouponNotFound
	}

	return s.couponUsage.Handle(ctx, model.ChangeCouponUsage{
		CampaignID: input.CampaignID,
		CustomerID: input.CustomerID,
		Coupon:     input.Coupon,
		Used:       input.Used,
	})
}
