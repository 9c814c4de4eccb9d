package campaign

import (
	"context"
	"errors"
	"time"

	"github.com/QuangTung97/loyalty/model"
	"github.com/QuangTung97/loyalty/pkg/apperr"
	"github.com/QuangTung97/loyalty/pkg/bus"
	"github.com/QuangTung97/loyalty/repository"
)

var (
	// ErrNoCouponsLeft ...
	ErrNoCouponsLeft = apperr.Domain("no_coupons_left", "no coupons left")

	// ErrCouponTaken the selected pool coupon was given to another customer
	ErrCouponTaken = apperr.Domain("coupon_taken", "coupon was already taken")

	// ErrCouponNotFound ...
	ErrCouponNotFound = apperr.NotFound("coupon_not_found", "coupon not found")
)

//go:generate moq -out buy_mocks.go . PurchaseObserver

// PurchaseObserver receives every committed purchase
type PurchaseObserver interface {
	CampaignPurchased(reward string)
}

// BuyCampaignHandler consumes one campaign unit and debits the points in a single transaction
type BuyCampaignHandler struct {
	provider  repository.Provider
	campaigns repository.Campaign
	coupons   repository.Coupon
	purchases repository.Purchase
	usage     *Provider
	spend     bus.CommandHandler[model.SpendPoints]
	publisher bus.EventPublisher
	observer  PurchaseObserver
	now       func() time.Time
}

// NewBuyCampaignHandler ...
func NewBuyCampaignHandler(
	provider repository.Provider,
	campaigns repository.Campaign,
	coupons repository.Coupon,
	purchases repository.Purchase,
	usage *Provider,
	spend bus.CommandHandler[model.SpendPoints],
	publisher bus.EventPublisher,
	observer PurchaseObserver,
	now func() time.Time,
) *BuyCampaignHandler {
	return &BuyCampaignHandler{
		provider:  provider,
		campaigns: campaigns,
		coupons:   coupons,
		purchases: purchases,
		usage:     usage,
		spend:     spend,
		publisher: publisher,
		observer:  observer,
		now:       now,
	}
}

func (h *BuyCampaignHandler) useCoupon(ctx context.Context, c model.Campaign, cmd model.BuyCampaign) error {
	left, err := h.usage.UsageLeft(ctx, c)
	if err != nil {
		return err
	}
	if left <= 0 {
		return ErrCampaignLimitExceeded
	}
	left, err = h.usage.UsageLeftForCustomer(ctx, c, cmd.CustomerID)
	if err != nil {
		return err
	}
	if left <= 0 {
		return ErrCampaignLimitPerCustomerExceeded
	}

	if cmd.Coupon == "" {
		return ErrNoCouponsLeft
	}

	if !c.SingleCoupon {
		err := h.coupons.UsePoolCoupon(ctx, c.ID, cmd.CustomerID, cmd.Coupon)
		if errors.Is(err, repository.ErrConcurrentUpdate) {
			return ErrCouponTaken
		}
		return err
	}

	limitPerUser := c.LimitPerUser
	if c.Unlimited {
		limitPerUser = Unlimited
	}
	err = h.coupons.UseSingleCoupon(ctx, c.ID, cmd.CustomerID, cmd.Coupon, limitPerUser)
	if errors.Is(err, repository.ErrConcurrentUpdate) {
		return ErrCampaignLimitPerCustomerExceeded
	}
	if err != nil {
		return err
	}
	return h.campaigns.IncreaseCampaignUsage(ctx, c.ID)
}

// Handle the campaign row stays locked until the transaction ends,
// concurrent purchases of the same campaign are serialized
func (h *BuyCampaignHandler) Handle(ctx context.Context, cmd model.BuyCampaign) error {
	var event model.CampaignBought
	var reward model.CampaignReward

	err := h.provider.Transact(ctx, func(ctx context.Context) error {
		err := h.campaigns.LockCampaign(ctx, cmd.CampaignID)
		if repository.IsNotFound(err) {
			return ErrCampaignNotFound
		}
		if err != nil {
			return err
		}

		c, err := h.campaigns.GetCampaign(ctx, cmd.CampaignID)
		if err != nil {
			return err
		}

		cost := c.CostInPoints
		coupon := cmd.Coupon
		if c.IsCashback() {
			cost = cmd.Points
			coupon = ""
		} else if err := h.useCoupon(ctx, c, cmd); err != nil {
			return err
		}

		err = h.spend.Handle(ctx, model.SpendPoints{
			CustomerID: cmd.CustomerID,
			Value:      cost,
			Comment:    c.Name,
		})
		if err != nil {
			return err
		}

		err = h.purchases.InsertPurchase(ctx, model.CampaignPurchase{
			ID:           cmd.PurchaseID,
			CustomerID:   cmd.CustomerID,
			CampaignID:   c.ID,
			CampaignName: c.Name,
			CostInPoints: cost,
			Coupon:       coupon,
			Reward:       c.Reward,
			PurchasedAt:  h.now(),
		})
		if err != nil {
			return err
		}

		reward = c.Reward
		event = model.CampaignBought{
			PurchaseID:   cmd.PurchaseID,
			CampaignID:   c.ID,
			CampaignName: c.Name,
			CustomerID:   cmd.CustomerID,
			Coupon:       coupon,
			CostInPoints: cost,
		}
		return nil
	})
	if err != nil {
		return err
	}

	h.observer.CampaignPurchased(reward.String())
	return h.publisher.Publish(ctx, event)
}

//=========================================================================
// Coupon Usage
//=========================================================================

// CouponUsageHandler marks a bought coupon as used or unused
type CouponUsageHandler struct {
	provider  repository.Provider
	coupons   repository.Coupon
	purchases repository.Purchase
}

// NewCouponUsageHandler ...
func NewCouponUsageHandler(
	provider repository.Provider, coupons repository.Coupon, purchases repository.Purchase,
) *CouponUsageHandler {
	return &CouponUsageHandler{
		provider:  provider,
		coupons:   coupons,
		purchases: purchases,
	}
}

// Handle returns ErrCouponNotFound when the customer never bought the coupon
func (h *CouponUsageHandler) Handle(ctx context.Context, cmd model.ChangeCouponUsage) error {
	return h.provider.Transact(ctx, func(ctx context.Context) error {
		err := h.coupons.SetCouponUsed(ctx, cmd.CampaignID, cmd.CustomerID, cmd.Coupon, cmd.Used)
		if errors.Is(err, repository.ErrConcurrentUpdate) {
			// no row changed, either missing or already in the requested state
			_, err = h.coupons.GetCouponUsage(ctx, cmd.CampaignID, cmd.CustomerID, cmd.Coupon)
			if repository.IsNotFound(err) {
				return ErrCouponNotFound
			}
		}
		if err != nil {
			return err
		}
		return h.purchases.SetPurchaseUsed(ctx, cmd.CustomerID, cmd.CampaignID, cmd.Coupon, cmd.Used)
	})
}
