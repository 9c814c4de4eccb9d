package campaign

import (
	"context"

	"github.com/QuangTung97/loyalty/model"
	"github.com/QuangTung97/loyalty/pkg/apperr"
	"github.com/QuangTung97/loyalty/pkg/util"
	"github.com/QuangTung97/loyalty/repository"
)

// Admin manages campaign definitions and their coupons
type Admin struct {
	provider  repository.Provider
	campaigns repository.Campaign
	coupons   repository.Coupon
	newID     func() string
}

// NewAdmin ...
func NewAdmin(
	provider repository.Provider,
	campaigns repository.Campaign,
	coupons repository.Coupon,
	newID func() string,
) *Admin {
	return &Admin{
		provider:  provider,
		campaigns: campaigns,
		coupons:   coupons,
		newID:     newID,
	}
}

func uniqueCodes(codes []string) []string {
	seen := make(map[string]struct{}, len(codes))
	result := make([]string, 0, len(codes))
	for _, code := range codes {
		if code == "" {
			continue
		}
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		result = append(result, code)
	}
	return result
}

func validateCoupons(c model.Campaign, codes []string) error {
	if c.IsCashback() {
		if len(codes) > 0 {
			return apperr.Validation("coupons", "cashback campaign has no coupons")
		}
		return nil
	}
	if len(codes) == 0 {
		return apperr.Validation("coupons", "must contain at least 1 coupon")
	}
	if c.SingleCoupon && len(codes) != 1 {
		return apperr.Validation("coupons", "single coupon campaign has exactly 1 coupon")
	}
	return nil
}

func toCoupons(campaignID string, codes []string) []model.Coupon {
	result := make([]model.Coupon, 0, len(codes))
	for _, code := range codes {
		result = append(result, model.Coupon{
			CampaignID: campaignID,
			Code:       code,
			Hash:       util.HashFunc(code),
		})
	}
	return result
}

func (a *Admin) validate(c model.Campaign, codes []string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	return validateCoupons(c, codes)
}

// Get ...
func (a *Admin) Get(ctx context.Context, id string) (model.Campaign, error) {
	c, err := a.campaigns.GetCampaign(a.provider.Readonly(ctx), id)
	if repository.IsNotFound(err) {
		return model.Campaign{}, ErrCampaignNotFound
	}
	return c, err
}

// Coupons ...
func (a *Admin) Coupons(ctx context.Context, id string) ([]string, error) {
	return a.coupons.FindCouponCodes(a.provider.Readonly(ctx), id)
}

// Create returns the id of the new campaign, the id of the input is used when not empty
func (a *Admin) Create(ctx context.Context, c model.Campaign, codes []string) (string, error) {
	codes = uniqueCodes(codes)
	if err := a.validate(c, codes); err != nil {
		return "", err
	}
	if c.ID == "" {
		c.ID = a.newID()
	}

	err := a.provider.Transact(ctx, func(ctx context.Context) error {
		if err := a.campaigns.UpsertCampaign(ctx, c); err != nil {
			return err
		}
		return a.coupons.InsertCoupons(ctx, toCoupons(c.ID, codes))
	})
	if err != nil {
		return "", err
	}
	return c.ID, nil
}

// Update replaces the definition and the unused coupons, the photo and the used coupons are kept
func (a *Admin) Update(ctx context.Context, c model.Campaign, codes []string) error {
	codes = uniqueCodes(codes)
	if err := a.validate(c, codes); err != nil {
		return err
	}
	existing, err := a.Get(ctx, c.ID)
	if err != nil {
		return err
	}
	c.Photo = existing.Photo

	return a.provider.Transact(ctx, func(ctx context.Context) error {
		if err := a.campaigns.UpsertCampaign(ctx, c); err != nil {
			return err
		}
		if err := a.coupons.DeleteCampaignCoupons(ctx, c.ID); err != nil {
			return err
		}

		kept, err := a.coupons.FindCouponCodes(ctx, c.ID)
		if err != nil {
			return err
		}
		keptSet := make(map[string]struct{}, len(kept))
		for _, code := range kept {
			keptSet[code] = struct{}{}
		}

		var added []string
		for _, code := range codes {
			if _, ok := keptSet[code]; !ok {
				added = append(added, code)
			}
		}
		return a.coupons.InsertCoupons(ctx, toCoupons(c.ID, added))
	})
}

// SetActive ...
func (a *Admin) SetActive(ctx context.Context, id string, active bool) error {
	if _, err := a.Get(ctx, id); err != nil {
		return err
	}
	return a.provider.Transact(ctx, func(ctx context.Context) error {
		return a.campaigns.SetCampaignActive(ctx, id, active)
	})
}

// SetPhoto an invalid photo removes the current one
func (a *Admin) SetPhoto(ctx context.Context, id string, photo model.NullPhoto) error {
	c, err := a.Get(ctx, id)
	if err != nil {
		return err
	}
	c.Photo = photo
	return a.provider.Transact(ctx, func(ctx context.Context) error {
		return a.campaigns.UpsertCampaign(ctx, c)
	})
}
