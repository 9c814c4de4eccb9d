package model

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Campaign ...
type Campaign struct {
	ID           string          `db:"id"`
	Name         string          `db:"name"`
	Description  string          `db:"description"`
	Reward       CampaignReward  `db:"reward"`
	Active       bool            `db:"active"`
	CostInPoints decimal.Decimal `db:"cost_in_points"`

	Levels   StringList `db:"levels"`
	Segments StringList `db:"segments"`

	Unlimited    bool  `db:"unlimited"`
	SingleCoupon bool  `db:"single_coupon"`
	Limit        int64 `db:"usage_limit"`
	LimitPerUser int64 `db:"limit_per_user"`

	AllTimeActive bool         `db:"all_time_active"`
	ActiveFrom    sql.NullTime `db:"active_from"`
	ActiveTo      sql.NullTime `db:"active_to"`

	AllTimeVisible bool         `db:"all_time_visible"`
	VisibleFrom    sql.NullTime `db:"visible_from"`
	VisibleTo      sql.NullTime `db:"visible_to"`

	PointValue decimal.NullDecimal `db:"point_value"`
	Photo      NullPhoto           `db:"photo"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// CampaignReward ...
type CampaignReward int

const (
	// CampaignRewardDiscountCode ...
	CampaignRewardDiscountCode CampaignReward = 1

	// CampaignRewardFreeDeliveryCode ...
	CampaignRewardFreeDeliveryCode CampaignReward = 2

	// CampaignRewardGiftCode ...
	CampaignRewardGiftCode CampaignReward = 3

	// CampaignRewardEventCode ...
	CampaignRewardEventCode CampaignReward = 4

	// CampaignRewardValueCode ...
	CampaignRewardValueCode CampaignReward = 5

	// CampaignRewardCashback converts points to money, has no coupons
	CampaignRewardCashback CampaignReward = 6
)

var campaignRewardNames = map[CampaignReward]string{
	CampaignRewardDiscountCode:     "discount_code",
	CampaignRewardFreeDeliveryCode: "free_delivery_code",
	CampaignRewardGiftCode:         "gift_code",
	CampaignRewardEventCode:        "event_code",
	CampaignRewardValueCode:        "value_code",
	CampaignRewardCashback:         "cashback",
}

// String ...
func (r CampaignReward) String() string {
	return campaignRewardNames[r]
}

// ParseCampaignReward ...
func ParseCampaignReward(s string) (CampaignReward, bool) {
	for r, name := range campaignRewardNames {
		if name == s {
			return r, true
		}
	}
	return 0, false
}

// IsCashback ...
func (c Campaign) IsCashback() bool {
	return c.Reward == CampaignRewardCashback
}

// Target ...
func (c Campaign) Target() Target {
	return Target{Levels: c.Levels, Segments: c.Segments}
}

func inWindow(now time.Time, from sql.NullTime, to sql.NullTime) bool {
	if from.Valid && now.Before(from.Time) {
		return false
	}
	if to.Valid && now.After(to.Time) {
		return false
	}
	return true
}

// IsActiveAt ...
func (c Campaign) IsActiveAt(now time.Time) bool {
	if !c.Active {
		return false
	}
	if c.AllTimeActive {
		return true
	}
	return inWindow(now, c.ActiveFrom, c.ActiveTo)
}

// IsVisibleAt ...
func (c Campaign) IsVisibleAt(now time.Time) bool {
	if c.AllTimeVisible {
		return true
	}
	return inWindow(now, c.VisibleFrom, c.VisibleTo)
}

// Validate ...
func (c Campaign) Validate() error {
	var b FieldErrorsBuilder
	if c.Name == "" {
		b.Add("name", "is required")
	}
	if c.Reward.String() == "" {
		b.Add("reward", "is invalid")
	}
	if c.CostInPoints.IsNegative() {
		b.Add("costInPoints", "must not be negative")
	}
	if c.Target().IsEmpty() {
		b.Add("target", "levels or segments are required")
	}
	if err := c.Target().Validate(); err != nil {
		b.Add("target", "levels and segments are mutually exclusive")
	}
	if !c.Unlimited && !c.IsCashback() {
		if c.Limit <= 0 {
			b.Add("limit", "must be greater than 0")
		}
		if c.LimitPerUser <= 0 {
			b.Add("limitPerUser", "must be greater than 0")
		}
	}
	if !c.AllTimeActive && (!c.ActiveFrom.Valid || !c.ActiveTo.Valid) {
		b.Add("activity", "activeFrom and activeTo are required")
	}
	if !c.AllTimeVisible && (!c.VisibleFrom.Valid || !c.VisibleTo.Valid) {
		b.Add("visibility", "visibleFrom and visibleTo are required")
	}
	if c.IsCashback() && (!c.PointValue.Valid || !c.PointValue.Decimal.IsPositive()) {
		b.Add("pointValue", "must be greater than 0")
	}
	return b.Err()
}

// CampaignUsage counts uses of a single coupon campaign across every customer
type CampaignUsage struct {
	CampaignID   string `db:"campaign_id"`
	CampaignUsed int64  `db:"campaign_used"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Coupon is a pre-generated code of a campaign
type Coupon struct {
	ID         int64  `db:"id"`
	CampaignID string `db:"campaign_id"`
	Code       string `db:"code"`
	Hash       uint32 `db:"hash"`
}

// CouponUsage ...
type CouponUsage struct {
	CampaignID string `db:"campaign_id"`
	CustomerID string `db:"customer_id"`
	Code       string `db:"code"`
	Usage      int64  `db:"usage_count"`
	Used       bool   `db:"used"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// CampaignPurchase ...
type CampaignPurchase struct {
	ID           string          `db:"id"`
	CustomerID   string          `db:"customer_id"`
	CampaignID   string          `db:"campaign_id"`
	CampaignName string          `db:"campaign_name"`
	CostInPoints decimal.Decimal `db:"cost_in_points"`
	Coupon       string          `db:"coupon"`
	Reward       CampaignReward  `db:"reward"`
	Used         bool            `db:"used"`
	PurchasedAt  time.Time       `db:"purchased_at"`
}
