package repository

import (
	"context"

	"github.com/QuangTung97/loyalty/model"
)

// Campaign ...
type Campaign interface {
	GetCampaign(ctx context.Context, id string) (model.Campaign, error)
	FindActiveCampaigns(ctx context.Context) ([]model.Campaign, error)
	FindActiveCampaignsByReward(ctx context.Context, reward model.CampaignReward) ([]model.Campaign, error)
	LockCampaign(ctx context.Context, campaignID string) error
	UpsertCampaign(ctx context.Context, campaign model.Campaign) error
	SetCampaignActive(ctx context.Context, campaignID string, active bool) error

	GetCampaignUsage(ctx context.Context, campaignID string) (int64, error)
	IncreaseCampaignUsage(ctx context.Context, campaignID string) error
}

type campaignImpl struct {
}

// NewCampaign ...
func NewCampaign() Campaign {
	return &campaignImpl{}
}

const campaignColumns = `id, name, description, reward, active, cost_in_points, levels, segments,
	unlimited, single_coupon, usage_limit, limit_per_user,
	all_time_active, active_from, active_to, all_time_visible, visible_from, visible_to,
	point_value, photo, created_at, updated_at`

// GetCampaign returns sql.ErrNoRows when not found
func (c *campaignImpl) GetCampaign(ctx context.Context, id string) (model.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaign WHERE id = ?`
	var result model.Campaign
	err := GetReadonly(ctx).GetContext(ctx, &result, query, id)
	return result, err
}

// FindActiveCampaigns ...
func (c *campaignImpl) FindActiveCampaigns(ctx context.Context) ([]model.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaign WHERE active = TRUE ORDER BY created_at, id`
	var result []model.Campaign
	err := GetReadonly(ctx).SelectContext(ctx, &result, query)
	return result, err
}

// FindActiveCampaignsByReward ...
func (c *campaignImpl) FindActiveCampaignsByReward(
	ctx context.Context, reward model.CampaignReward,
) ([]model.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaign
WHERE active = TRUE AND reward = ? ORDER BY created_at, id`
	var result []model.Campaign
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, reward)
	return result, err
}

// LockCampaign ...
func (c *campaignImpl) LockCampaign(ctx context.Context, campaignID string) error {
	query := `SELECT id FROM campaign WHERE id = ? FOR UPDATE`
	var id string
	return GetTx(ctx).GetContext(ctx, &id, query, campaignID)
}

// UpsertCampaign ...
func (c *campaignImpl) UpsertCampaign(ctx context.Context, campaign model.Campaign) error {
	query := `
INSERT INTO campaign (
	id, name, description, reward, active, cost_in_points, levels, segments,
	unlimited, single_coupon, usage_limit, limit_per_user,
	all_time_active, active_from, active_to, all_time_visible, visible_from, visible_to,
	point_value, photo
) VALUES (
	:id, :name, :description, :reward, :active, :cost_in_points, :levels, :segments,
	:unlimited, :single_coupon, :usage_limit, :limit_per_user,
	:all_time_active, :active_from, :active_to, :all_time_visible, :visible_from, :visible_to,
	:point_value, :photo
) AS NEW
ON DUPLICATE KEY UPDATE
	name = NEW.name,
	description = NEW.description,
	reward = NEW.reward,
	active = NEW.active,
	cost_in_points = NEW.cost_in_points,
	levels = NEW.levels,
	segments = NEW.segments,

	unlimited = NEW.unlimited,
	single_coupon = NEW.single_coupon,
	usage_limit = NEW.usage_limit,
	limit_per_user = NEW.limit_per_user,

	all_time_active = NEW.all_time_active,
	active_from = NEW.active_from,
	active_to = NEW.active_to,
	all_time_visible = NEW.all_time_visible,
	visible_from = NEW.visible_from,
	visible_to = NEW.visible_to,

	point_value = NEW.point_value,
	photo = NEW.photo
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, campaign)
	return err
}

// SetCampaignActive ...
func (c *campaignImpl) SetCampaignActive(ctx context.Context, campaignID string, active bool) error {
	query := `UPDATE campaign SET active = ? WHERE id = ?`
	_, err := GetTx(ctx).ExecContext(ctx, query, active, campaignID)
	return err
}

// GetCampaignUsage zero when the campaign was never used
func (c *campaignImpl) GetCampaignUsage(ctx context.Context, campaignID string) (int64, error) {
	query := `SELECT IFNULL(MAX(campaign_used), 0) FROM campaign_usage WHERE campaign_id = ?`
	var used int64
	err := GetReadonly(ctx).GetContext(ctx, &used, query, campaignID)
	return used, err
}

// IncreaseCampaignUsage ...
func (c *campaignImpl) IncreaseCampaignUsage(ctx context.Context, campaignID string) error {
	query := `
INSERT INTO campaign_usage (campaign_id, campaign_used) VALUES (?, 1)
ON DUPLICATE KEY UPDATE campaign_used = campaign_used + 1
`
	_, err := GetTx(ctx).ExecContext(ctx, query, campaignID)
	return err
}
