package repository

import (
	"context"

	"github.com/QuangTung97/loyalty/model"
)

// Coupon ...
type Coupon interface {
	InsertCoupons(ctx context.Context, coupons []model.Coupon) error
	DeleteCampaignCoupons(ctx context.Context, campaignID string) error
	FindCouponCodes(ctx context.Context, campaignID string) ([]string, error)
	FindFreeCoupons(ctx context.Context, campaignID string, limit uint64) ([]string, error)
	CountFreeCoupons(ctx context.Context, campaignID string) (int64, error)
	FindCouponsByHash(ctx context.Context, hash uint32, code string) ([]model.Coupon, error)

	CountCampaignUsages(ctx context.Context, campaignID string) (int64, error)
	CountCustomerUsages(ctx context.Context, campaignID string, customerID string) (int64, error)
	GetCouponUsage(ctx context.Context, campaignID string, customerID string, code string) (model.CouponUsage, error)

	UsePoolCoupon(ctx context.Context, campaignID string, customerID string, code string) error
	UseSingleCoupon(ctx context.Context, campaignID string, customerID string, code string, limitPerUser int64) error
	SetCouponUsed(ctx context.Context, campaignID string, customerID string, code string, used bool) error
}

type couponImpl struct {
}

// NewCoupon ...
func NewCoupon() Coupon {
	return &couponImpl{}
}

// InsertCoupons ...
func (r *couponImpl) InsertCoupons(ctx context.Context, coupons []model.Coupon) error {
	if len(coupons) == 0 {
		return nil
	}
	query := `INSERT INTO coupon (campaign_id, code, hash) VALUES (:campaign_id, :code, :hash)`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, coupons)
	return err
}

// DeleteCampaignCoupons removes only coupons that were never used
func (r *couponImpl) DeleteCampaignCoupons(ctx context.Context, campaignID string) error {
	query := `
DELETE c FROM coupon c
LEFT JOIN coupon_usage u ON u.campaign_id = c.campaign_id AND u.code = c.code
WHERE c.campaign_id = ? AND u.code IS NULL
`
	_, err := GetTx(ctx).ExecContext(ctx, query, campaignID)
	return err
}

// FindCouponCodes ...
func (r *couponImpl) FindCouponCodes(ctx context.Context, campaignID string) ([]string, error) {
	query := `SELECT code FROM coupon WHERE campaign_id = ? ORDER BY id`
	var result []string
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, campaignID)
	return result, err
}

const freeCouponCondition = `
FROM coupon c
LEFT JOIN coupon_usage u ON u.campaign_id = c.campaign_id AND u.code = c.code
WHERE c.campaign_id = ? AND u.code IS NULL`

// FindFreeCoupons codes without any usage, in creation order
func (r *couponImpl) FindFreeCoupons(ctx context.Context, campaignID string, limit uint64) ([]string, error) {
	query := `SELECT c.code ` + freeCouponCondition + ` ORDER BY c.id LIMIT ?`
	var result []string
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, campaignID, limit)
	return result, err
}

// CountFreeCoupons ...
func (r *couponImpl) CountFreeCoupons(ctx context.Context, campaignID string) (int64, error) {
	query := `SELECT COUNT(*) ` + freeCouponCondition
	var count int64
	err := GetReadonly(ctx).GetContext(ctx, &count, query, campaignID)
	return count, err
}

// FindCouponsByHash ...
func (r *couponImpl) FindCouponsByHash(ctx context.Context, hash uint32, code string) ([]model.Coupon, error) {
	query := `SELECT id, campaign_id, code, hash FROM coupon WHERE hash = ? AND code = ?`
	var result []model.Coupon
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, hash, code)
	return result, err
}

// CountCampaignUsages ...
func (r *couponImpl) CountCampaignUsages(ctx context.Context, campaignID string) (int64, error) {
	query := `SELECT IFNULL(SUM(usage_count), 0) FROM coupon_usage WHERE campaign_id = ?`
	var count int64
	err := GetReadonly(ctx).GetContext(ctx, &count, query, campaignID)
	return count, err
}

// CountCustomerUsages ...
func (r *couponImpl) CountCustomerUsages(ctx context.Context, campaignID string, customerID string) (int64, error) {
	query := `SELECT IFNULL(SUM(usage_count), 0) FROM coupon_usage WHERE campaign_id = ? AND customer_id = ?`
	var count int64
	err := GetReadonly(ctx).GetContext(ctx, &count, query, campaignID, customerID)
	return count, err
}

// GetCouponUsage returns sql.ErrNoRows when the customer never used the code
func (r *couponImpl) GetCouponUsage(
	ctx context.Context, campaignID string, customerID string, code string,
) (model.CouponUsage, error) {
	query := `
SELECT campaign_id, customer_id, code, usage_count, used, created_at, updated_at
FROM coupon_usage WHERE campaign_id = ? AND customer_id = ? AND code = ?
`
	var result model.CouponUsage
	err := GetReadonly(ctx).GetContext(ctx, &result, query, campaignID, customerID, code)
	return result, err
}

// UsePoolCoupon records the only usage of a pool code,
// returns ErrConcurrentUpdate when the code already has a usage
func (r *couponImpl) UsePoolCoupon(ctx context.Context, campaignID string, customerID string, code string) error {
	query := `
INSERT INTO coupon_usage (campaign_id, customer_id, code, usage_count)
SELECT ?, ?, ?, 1 FROM DUAL
WHERE NOT EXISTS (SELECT 1 FROM coupon_usage WHERE campaign_id = ? AND code = ?)
`
	result, err := GetTx(ctx).ExecContext(ctx, query, campaignID, customerID, code, campaignID, code)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

// UseSingleCoupon increments the usage counter of the customer while it stays under limitPerUser,
// returns ErrConcurrentUpdate when the limit is reached
func (r *couponImpl) UseSingleCoupon(
	ctx context.Context, campaignID string, customerID string, code string, limitPerUser int64,
) error {
	tx := GetTx(ctx)
	_, err := tx.ExecContext(ctx, `
INSERT IGNORE INTO coupon_usage (campaign_id, customer_id, code, usage_count)
VALUES (?, ?, ?, 0)
`, campaignID, customerID, code)
	if err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, `
UPDATE coupon_usage SET usage_count = usage_count + 1
WHERE campaign_id = ? AND customer_id = ? AND code = ? AND usage_count < ?
`, campaignID, customerID, code, limitPerUser)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

// SetCouponUsed returns ErrConcurrentUpdate when no usage exists
func (r *couponImpl) SetCouponUsed(
	ctx context.Context, campaignID string, customerID string, code string, used bool,
) error {
	query := `UPDATE coupon_usage SET used = ? WHERE campaign_id = ? AND customer_id = ? AND code = ?`
	result, err := GetTx(ctx).ExecContext(ctx, query, used, campaignID, customerID, code)
	if err != nil {
		return err
	}
	return checkAffected(result)
}
