package repository

import (
	"context"

	"github.com/QuangTung97/loyalty/model"
)

// Purchase ...
type Purchase interface {
	InsertPurchase(ctx context.Context, purchase model.CampaignPurchase) error
	FindPurchasesByCustomer(ctx context.Context, customerID string) ([]model.CampaignPurchase, error)
	SetPurchaseUsed(ctx context.Context, customerID string, campaignID string, coupon string, used bool) error
}

type purchaseImpl struct {
}

// NewPurchase ...
func NewPurchase() Purchase {
	return &purchaseImpl{}
}

// InsertPurchase ...
func (r *purchaseImpl) InsertPurchase(ctx context.Context, purchase model.CampaignPurchase) error {
	query := `
INSERT INTO campaign_purchase (
	id, customer_id, campaign_id, campaign_name, cost_in_points, coupon, reward, used, purchased_at
) VALUES (
	:id, :customer_id, :campaign_id, :campaign_name, :cost_in_points, :coupon, :reward, :used, :purchased_at
)
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, purchase)
	return err
}

// FindPurchasesByCustomer ...
func (r *purchaseImpl) FindPurchasesByCustomer(
	ctx context.Context, customerID string,
) ([]model.CampaignPurchase, error) {
	query := `
SELECT id, customer_id, campaign_id, campaign_name, cost_in_points, coupon, reward, used, purchased_at
FROM campaign_purchase WHERE customer_id = ? ORDER BY purchased_at, id
`
	var result []model.CampaignPurchase
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, customerID)
	return result, err
}

// SetPurchaseUsed ...
func (r *purchaseImpl) SetPurchaseUsed(
	ctx context.Context, customerID string, campaignID string, coupon string, used bool,
) error {
	query := `UPDATE campaign_purchase SET used = ? WHERE customer_id = ? AND campaign_id = ? AND coupon = ?`
	_, err := GetTx(ctx).ExecContext(ctx, query, used, customerID, campaignID, coupon)
	return err
}
