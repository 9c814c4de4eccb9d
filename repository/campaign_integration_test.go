//go:build integration

package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/QuangTung97/loyalty/model"
	"github.com/QuangTung97/loyalty/pkg/integration"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type campaignTest struct {
	tc       *integration.TestCase
	provider Provider
	campaign Campaign
	coupon   Coupon
}

func newCampaignTest() *campaignTest {
	tc := integration.NewTestCase()
	tc.Truncate("campaign", "campaign_usage", "coupon", "coupon_usage")
	return &campaignTest{
		tc:       tc,
		provider: NewProvider(tc.DB),
		campaign: NewCampaign(),
		coupon:   NewCoupon(),
	}
}

func (c *campaignTest) transact(t *testing.T, fn func(ctx context.Context) error) {
	err := c.provider.Transact(newContext(), fn)
	assert.Equal(t, nil, err)
}

func newDiscountCampaign(id string) model.Campaign {
	return model.Campaign{
		ID:            id,
		Name:          "Discount " + id,
		Description:   "10% off",
		Reward:        model.CampaignRewardDiscountCode,
		Active:        true,
		CostInPoints:  newDecimal("25"),
		Levels:        model.StringList{"gold"},
		LimitPerUser:  2,
		Limit:         10,
		AllTimeActive: true,
		VisibleFrom: sql.NullTime{
			Valid: true,
			Time:  newTime("2022-05-01T00:00:00Z"),
		},
		VisibleTo: sql.NullTime{
			Valid: true,
			Time:  newTime("2022-06-01T00:00:00Z"),
		},
	}
}

func TestCampaign_Upsert_And_Get(t *testing.T) {
	c := newCampaignTest()

	input := newDiscountCampaign("campaign-01")
	c.transact(t, func(ctx context.Context) error {
		return c.campaign.UpsertCampaign(ctx, input)
	})

	ctx := c.provider.Readonly(newContext())
	result, err := c.campaign.GetCampaign(ctx, "campaign-01")
	assert.Equal(t, nil, err)

	assert.Equal(t, "Discount campaign-01", result.Name)
	assert.Equal(t, model.CampaignRewardDiscountCode, result.Reward)
	assert.Equal(t, "25", result.CostInPoints.String())
	assert.Equal(t, model.StringList{"gold"}, result.Levels)
	assert.Equal(t, model.StringList(nil), result.Segments)
	assert.Equal(t, int64(10), result.Limit)
	assert.Equal(t, int64(2), result.LimitPerUser)
	assert.Equal(t, true, result.AllTimeActive)
	assert.Equal(t, false, result.ActiveFrom.Valid)
	assert.Equal(t, newTime("2022-05-01T00:00:00Z"), result.VisibleFrom.Time)
	assert.Equal(t, false, result.PointValue.Valid)
	assert.Equal(t, false, result.Photo.Valid)

	input.Name = "Renamed"
	input.Photo = model.NullPhoto{
		Valid: true,
		Photo: model.Photo{Path: "campaign/abcd", OriginalName: "a.png", Mime: "image/png"},
	}
	c.transact(t, func(ctx context.Context) error {
		return c.campaign.UpsertCampaign(ctx, input)
	})

	result, err = c.campaign.GetCampaign(ctx, "campaign-01")
	assert.Equal(t, nil, err)
	assert.Equal(t, "Renamed", result.Name)
	assert.Equal(t, input.Photo, result.Photo)

	_, err = c.campaign.GetCampaign(ctx, "campaign-02")
	assert.Equal(t, true, IsNotFound(err))
}

func TestCampaign_Find_Active(t *testing.T) {
	c := newCampaignTest()

	cashback := newDiscountCampaign("campaign-02")
	cashback.Reward = model.CampaignRewardCashback
	cashback.Unlimited = true
	cashback.PointValue = decimal.NewNullDecimal(newDecimal("0.5"))

	inactive := newDiscountCampaign("campaign-03")
	inactive.Active = false

	c.transact(t, func(ctx context.Context) error {
		for _, campaign := range []model.Campaign{newDiscountCampaign("campaign-01"), cashback, inactive} {
			if err := c.campaign.UpsertCampaign(ctx, campaign); err != nil {
				return err
			}
		}
		return nil
	})

	ctx := c.provider.Readonly(newContext())

	active, err := c.campaign.FindActiveCampaigns(ctx)
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(active))

	cashbacks, err := c.campaign.FindActiveCampaignsByReward(ctx, model.CampaignRewardCashback)
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(cashbacks))
	assert.Equal(t, "campaign-02", cashbacks[0].ID)
	assert.Equal(t, "0.5", cashbacks[0].PointValue.Decimal.String())

	c.transact(t, func(ctx context.Context) error {
		return c.campaign.SetCampaignActive(ctx, "campaign-02", false)
	})

	cashbacks, err = c.campaign.FindActiveCampaignsByReward(ctx, model.CampaignRewardCashback)
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(cashbacks))
}

func TestCampaign_Lock_And_Usage(t *testing.T) {
	c := newCampaignTest()

	c.transact(t, func(ctx context.Context) error {
		return c.campaign.UpsertCampaign(ctx, newDiscountCampaign("campaign-01"))
	})

	err := c.provider.Transact(newContext(), func(ctx context.Context) error {
		if err := c.campaign.LockCampaign(ctx, "campaign-01"); err != nil {
			return err
		}
		if err := c.campaign.IncreaseCampaignUsage(ctx, "campaign-01"); err != nil {
			return err
		}
		return c.campaign.IncreaseCampaignUsage(ctx, "campaign-01")
	})
	assert.Equal(t, nil, err)

	used, err := c.campaign.GetCampaignUsage(c.provider.Readonly(newContext()), "campaign-01")
	assert.Equal(t, nil, err)
	assert.Equal(t, int64(2), used)

	err = c.provider.Transact(newContext(), func(ctx context.Context) error {
		return c.campaign.LockCampaign(ctx, "campaign-02")
	})
	assert.Equal(t, true, IsNotFound(err))
}

//=============================================================
// Coupons
//=============================================================

func newCoupons(campaignID string, codes ...string) []model.Coupon {
	result := make([]model.Coupon, 0, len(codes))
	for i, code := range codes {
		result = append(result, model.Coupon{CampaignID: campaignID, Code: code, Hash: uint32(100 + i)})
	}
	return result
}

func TestCoupon_Pool(t *testing.T) {
	c := newCampaignTest()

	c.transact(t, func(ctx context.Context) error {
		return c.coupon.InsertCoupons(ctx, newCoupons("campaign-01", "CODE-A", "CODE-B", "CODE-C"))
	})

	ctx := c.provider.Readonly(newContext())

	free, err := c.coupon.FindFreeCoupons(ctx, "campaign-01", 2)
	assert.Equal(t, nil, err)
	assert.Equal(t, []string{"CODE-A", "CODE-B"}, free)

	c.transact(t, func(ctx context.Context) error {
		return c.coupon.UsePoolCoupon(ctx, "campaign-01", "customer-01", "CODE-A")
	})

	err = c.provider.Transact(newContext(), func(ctx context.Context) error {
		return c.coupon.UsePoolCoupon(ctx, "campaign-01", "customer-02", "CODE-A")
	})
	assert.Equal(t, ErrConcurrentUpdate, err)

	count, err := c.coupon.CountFreeCoupons(ctx, "campaign-01")
	assert.Equal(t, nil, err)
	assert.Equal(t, int64(2), count)

	count, err = c.coupon.CountCampaignUsages(ctx, "campaign-01")
	assert.Equal(t, nil, err)
	assert.Equal(t, int64(1), count)

	count, err = c.coupon.CountCustomerUsages(ctx, "campaign-01", "customer-01")
	assert.Equal(t, nil, err)
	assert.Equal(t, int64(1), count)

	count, err = c.coupon.CountCustomerUsages(ctx, "campaign-01", "customer-02")
	assert.Equal(t, nil, err)
	assert.Equal(t, int64(0), count)

	found, err := c.coupon.FindCouponsByHash(ctx, 101, "CODE-B")
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(found))
	assert.Equal(t, "campaign-01", found[0].CampaignID)

	c.transact(t, func(ctx context.Context) error {
		return c.coupon.DeleteCampaignCoupons(ctx, "campaign-01")
	})

	codes, err := c.coupon.FindCouponCodes(ctx, "campaign-01")
	assert.Equal(t, nil, err)
	assert.Equal(t, []string{"CODE-A"}, codes)
}

func TestCoupon_Single_Limit_Per_User(t *testing.T) {
	c := newCampaignTest()

	c.transact(t, func(ctx context.Context) error {
		return c.coupon.InsertCoupons(ctx, newCoupons("campaign-01", "SINGLE"))
	})

	use := func() error {
		return c.provider.Transact(newContext(), func(ctx context.Context) error {
			return c.coupon.UseSingleCoupon(ctx, "campaign-01", "customer-01", "SINGLE", 2)
		})
	}

	assert.Equal(t, nil, use())
	assert.Equal(t, nil, use())
	assert.Equal(t, ErrConcurrentUpdate, use())

	ctx := c.provider.Readonly(newContext())

	usage, err := c.coupon.GetCouponUsage(ctx, "campaign-01", "customer-01", "SINGLE")
	assert.Equal(t, nil, err)
	assert.Equal(t, int64(2), usage.Usage)
	assert.Equal(t, false, usage.Used)

	c.transact(t, func(ctx context.Context) error {
		return c.coupon.SetCouponUsed(ctx, "campaign-01", "customer-01", "SINGLE", true)
	})

	usage, err = c.coupon.GetCouponUsage(ctx, "campaign-01", "customer-01", "SINGLE")
	assert.Equal(t, nil, err)
	assert.Equal(t, true, usage.Used)

	err = c.provider.Transact(newContext(), func(ctx context.Context) error {
		return c.coupon.SetCouponUsed(ctx, "campaign-01", "customer-02", "SINGLE", true)
	})
	assert.Equal(t, ErrConcurrentUpdate, err)

	_, err = c.coupon.GetCouponUsage(ctx, "campaign-01", "customer-02", "SINGLE")
	assert.Equal(t, true, IsNotFound(err))
}

func TestCoupon_Insert_Duplicate(t *testing.T) {
	c := newCampaignTest()

	c.transact(t, func(ctx context.Context) error {
		return c.coupon.InsertCoupons(ctx, newCoupons("campaign-01", "CODE-A"))
	})

	err := c.provider.Transact(newContext(), func(ctx context.Context) error {
		return c.coupon.InsertCoupons(ctx, newCoupons("campaign-01", "CODE-A"))
	})
	assert.Equal(t, true, IsDuplicate(err))
}
