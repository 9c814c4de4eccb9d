package campaign

import (
	"context"
	"math"
	"time"

	"github.com/QuangTung97/loyalty/model"
	"github.com/QuangTung97/loyalty/repository"
)

// Unlimited is the usage left of a campaign without limits
const Unlimited int64 = math.MaxInt64

// Provider computes coupon availability and campaign visibility
type Provider struct {
	provider  repository.Provider
	campaigns repository.Campaign
	coupons   repository.Coupon
	customers repository.Customer
	now       func() time.Time
}

// NewProvider ...
func NewProvider(
	provider repository.Provider,
	campaigns repository.Campaign,
	coupons repository.Coupon,
	customers repository.Customer,
	now func() time.Time,
) *Provider {
	return &Provider{
		provider:  provider,
		campaigns: campaigns,
		coupons:   coupons,
		customers: customers,
		now:       now,
	}
}

func nonNegative(n int64) int64 {
	if n < 0 {
		return 0
	}
	return n
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

// FreeCoupons returns at most limit codes that can still be given to a customer.
// A single coupon campaign always returns its only code.
func (p *Provider) FreeCoupons(ctx context.Context, c model.Campaign, limit uint64) ([]string, error) {
	ctx = p.provider.Readonly(ctx)
	if c.SingleCoupon {
		codes, err := p.coupons.FindCouponCodes(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		if len(codes) > 1 {
			codes = codes[:1]
		}
		return codes, nil
	}
	return p.coupons.FindFreeCoupons(ctx, c.ID, limit)
}

func (p *Provider) couponsUsageLeft(ctx context.Context, c model.Campaign) (int64, error) {
	if !c.SingleCoupon {
		return p.coupons.CountFreeCoupons(ctx, c.ID)
	}
	if c.Unlimited {
		return Unlimited, nil
	}
	used, err := p.campaigns.GetCampaignUsage(ctx, c.ID)
	if err != nil {
		return 0, err
	}
	return nonNegative(c.Limit - used), nil
}

// UsageLeft number of purchases still possible across every customer
func (p *Provider) UsageLeft(ctx context.Context, c model.Campaign) (int64, error) {
	if c.IsCashback() {
		return Unlimited, nil
	}
	ctx = p.provider.Readonly(ctx)

	free, err := p.couponsUsageLeft(ctx, c)
	if err != nil {
		return 0, err
	}
	if c.Unlimited {
		return free, nil
	}

	used, err := p.coupons.CountCampaignUsages(ctx, c.ID)
	if err != nil {
		return 0, err
	}
	return min64(free, nonNegative(c.Limit-used)), nil
}

// UsageLeftForCustomer number of purchases still possible for the customer
func (p *Provider) UsageLeftForCustomer(ctx context.Context, c model.Campaign, customerID string) (int64, error) {
	if c.IsCashback() {
		return Unlimited, nil
	}
	ctx = p.provider.Readonly(ctx)

	free, err := p.couponsUsageLeft(ctx, c)
	if err != nil {
		return 0, err
	}
	if c.Unlimited {
		return free, nil
	}

	used, err := p.coupons.CountCustomerUsages(ctx, c.ID, customerID)
	if err != nil {
		return 0, err
	}
	return min64(free, nonNegative(c.LimitPerUser-used)), nil
}

// CashbackForCustomer the active cashback campaign with the highest point value targeting the customer
func (p *Provider) CashbackForCustomer(ctx context.Context, customer model.Customer) (model.Campaign, bool, error) {
	campaigns, err := p.campaigns.FindActiveCampaignsByReward(p.provider.Readonly(ctx), model.CampaignRewardCashback)
	if err != nil {
		return model.Campaign{}, false, err
	}

	now := p.now()
	var best model.Campaign
	found := false
	for _, c := range campaigns {
		if !c.IsActiveAt(now) || !c.Target().Matches(customer.LevelID.String, customer.Segments) {
			continue
		}
		if !found || c.PointValue.Decimal.GreaterThan(best.PointValue.Decimal) {
			best = c
			found = true
		}
	}
	return best, found, nil
}

// VisibleForCustomers ids of the customers targeted by a currently visible campaign
func (p *Provider) VisibleForCustomers(ctx context.Context, c model.Campaign) ([]string, error) {
	if !c.IsVisibleAt(p.now()) {
		return nil, nil
	}
	return p.customers.FindCustomerIDsByTarget(p.provider.Readonly(ctx), c.Levels, c.Segments)
}
