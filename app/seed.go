package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/QuangTung97/loyalty/model"
	"github.com/QuangTung97/loyalty/pkg/bus"
	"github.com/QuangTung97/loyalty/pkg/fixture"
	"github.com/QuangTung97/loyalty/pkg/otellib"
	"github.com/QuangTung97/loyalty/repository"
	"github.com/QuangTung97/loyalty/service/campaign"
	"github.com/QuangTung97/loyalty/service/earning"
	"go.uber.org/zap"
)

// Seeder writes the definitions of a fixture file, running it twice does not duplicate anything
type Seeder struct {
	provider  repository.Provider
	customers repository.Customer
	rules     *earning.Admin
	campaigns *campaign.Admin
	addPoints bus.CommandHandler[model.AddPoints]
}

// NewSeeder ...
func NewSeeder(
	provider repository.Provider,
	customers repository.Customer,
	rules *earning.Admin,
	campaigns *campaign.Admin,
	addPoints bus.CommandHandler[model.AddPoints],
) *Seeder {
	return &Seeder{
		provider:  provider,
		customers: customers,
		rules:     rules,
		campaigns: campaigns,
		addPoints: addPoints,
	}
}

// Seeder ...
func (a *App) Seeder() *Seeder {
	return NewSeeder(a.Repos.Provider, a.Repos.Customers, a.EarningAdmin, a.CampaignAdmin, a.Commands.AddPoints)
}

// SeedResult ...
type SeedResult struct {
	Customers    int
	EarningRules int
	Campaigns    int
}

// Seed ...
func (s *Seeder) Seed(ctx context.Context, file fixture.File) (SeedResult, error) {
	var result SeedResult

	for _, entry := range file.Customers {
		created, err := s.seedCustomer(ctx, entry)
		if err != nil {
			return result, fmt.Errorf("customer %s: %w", entry.ID, err)
		}
		if created {
			result.Customers++
		}
	}

	for _, entry := range file.EarningRules {
		rule, err := entry.ToModel()
		if err != nil {
			return result, err
		}
		if _, err := s.rules.Create(ctx, rule); err != nil {
			return result, fmt.Errorf("earning rule %s: %w", entry.ID, err)
		}
		result.EarningRules++
	}

	for _, entry := range file.Campaigns {
		if err := s.seedCampaign(ctx, entry); err != nil {
			return result, fmt.Errorf("campaign %s: %w", entry.ID, err)
		}
		result.Campaigns++
	}

	return result, nil
}

func (s *Seeder) seedCustomer(ctx context.Context, entry fixture.Customer) (bool, error) {
	customer, err := entry.ToModel()
	if err != nil {
		return false, err
	}

	err = s.provider.Transact(ctx, func(ctx context.Context) error {
		return s.customers.InsertCustomer(ctx, customer)
	})
	if errors.Is(err, repository.ErrCustomerExists) {
		otellib.Extract(ctx).Info("customer already seeded", zap.String("customer_id", customer.ID))
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if !entry.Points.IsPositive() {
		return true, nil
	}
	err = s.addPoints.Handle(ctx, model.AddPoints{
		CustomerID: customer.ID,
		Value:      entry.Points,
		Comment:    "Initial balance",
	})
	return true, err
}

func (s *Seeder) seedCampaign(ctx context.Context, entry fixture.Campaign) error {
	c, err := entry.ToModel()
	if err != nil {
		return err
	}

	_, err = s.campaigns.Get(ctx, c.ID)
	if errors.Is(err, campaign.ErrCampaignNotFound) {
		_, err = s.campaigns.Create(ctx, c, entry.Coupons)
		return err
	}
	if err != nil {
		return err
	}
	return s.campaigns.Update(ctx, c, entry.Coupons)
}
