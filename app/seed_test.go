package app

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/QuangTung97/loyalty/model"
	"github.com/QuangTung97/loyalty/pkg/apperr"
	"github.com/QuangTung97/loyalty/pkg/bus"
	"github.com/QuangTung97/loyalty/pkg/fixture"
	"github.com/QuangTung97/loyalty/repository"
	"github.com/QuangTung97/loyalty/service/campaign"
	"github.com/QuangTung97/loyalty/service/earning"
	"github.com/stretchr/testify/assert"
)

type seedTest struct {
	customers *repository.CustomerMock
	rules     *repository.EarningRuleMock
	campaigns *repository.CampaignMock
	coupons   *repository.CouponMock

	existingCampaigns map[string]model.Campaign
	addPointsCalls    []model.AddPoints

	seeder *Seeder
}

func newSeedTest() *seedTest {
	s := &seedTest{
		existingCampaigns: map[string]model.Campaign{},
	}
	s.customers = &repository.CustomerMock{
		InsertCustomerFunc: func(ctx context.Context, customer model.Customer) error {
			return nil
		},
	}
	s.rules = &repository.EarningRuleMock{
		UpsertEarningRuleFunc: func(ctx context.Context, rule model.EarningRuleRow) error {
			return nil
		},
	}
	s.campaigns = &repository.CampaignMock{
		GetCampaignFunc: func(ctx context.Context, id string) (model.Campaign, error) {
			c, ok := s.existingCampaigns[id]
			if !ok {
				return model.Campaign{}, sql.ErrNoRows
			}
			return c, nil
		},
		UpsertCampaignFunc: func(ctx context.Context, c model.Campaign) error {
			return nil
		},
	}
	s.coupons = &repository.CouponMock{
		InsertCouponsFunc: func(ctx context.Context, coupons []model.Coupon) error {
			return nil
		},
		DeleteCampaignCouponsFunc: func(ctx context.Context, campaignID string) error {
			return nil
		},
		FindCouponCodesFunc: func(ctx context.Context, campaignID string) ([]string, error) {
			return nil, nil
		},
	}

	provider := &repository.ProviderMock{
		ReadonlyFunc: func(ctx context.Context) context.Context {
			return ctx
		},
		TransactFunc: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	}
	newID := func() string { return "new-id" }
	addPoints := bus.HandlerFunc[model.AddPoints](func(ctx context.Context, cmd model.AddPoints) error {
		s.addPointsCalls = append(s.addPointsCalls, cmd)
		return nil
	})

	s.seeder = NewSeeder(
		provider, s.customers,
		earning.NewAdmin(provider, s.rules, newID),
		campaign.NewAdmin(provider, s.campaigns, s.coupons, newID),
		addPoints,
	)
	return s
}

func loadSeedFile(t *testing.T) fixture.File {
	file, err := fixture.Load("../fixtures/seed.yml")
	assert.Equal(t, nil, err)
	return file
}

func TestSeeder_Seed(t *testing.T) {
	s := newSeedTest()

	result, err := s.seeder.Seed(context.Background(), loadSeedFile(t))
	assert.Equal(t, nil, err)
	assert.Equal(t, SeedResult{Customers: 2, EarningRules: 4, Campaigns: 2}, result)

	assert.Equal(t, 2, len(s.customers.InsertCustomerCalls()))
	assert.Equal(t, "jane@example.com", s.customers.InsertCustomerCalls()[0].Customer.Email.String)

	assert.Equal(t, 2, len(s.addPointsCalls))
	assert.Equal(t, "00000000-0000-474c-b092-b0dd880c07e1", s.addPointsCalls[0].CustomerID)
	assert.Equal(t, "500", s.addPointsCalls[0].Value.String())
	assert.Equal(t, "20", s.addPointsCalls[1].Value.String())

	upserts := s.rules.UpsertEarningRuleCalls()
	assert.Equal(t, 4, len(upserts))
	assert.Equal(t, "00000000-0000-474c-b092-000000000001", upserts[0].Rule.ID)

	assert.Equal(t, 2, len(s.campaigns.UpsertCampaignCalls()))
	insertCalls := s.coupons.InsertCouponsCalls()
	assert.Equal(t, 2, len(insertCalls))
	assert.Equal(t, 3, len(insertCalls[0].Coupons))
	assert.Equal(t, "FREE-001", insertCalls[0].Coupons[0].Code)
	assert.Equal(t, 0, len(insertCalls[1].Coupons))
	assert.Equal(t, 0, len(s.coupons.DeleteCampaignCouponsCalls()))
}

func TestSeeder_Seed__Already_Seeded(t *testing.T) {
	s := newSeedTest()
	s.customers.InsertCustomerFunc = func(ctx context.Context, customer model.Customer) error {
		return repository.ErrCustomerExists
	}

	file := loadSeedFile(t)
	for _, entry := range file.Campaigns {
		c, err := entry.ToModel()
		assert.Equal(t, nil, err)
		s.existingCampaigns[c.ID] = c
	}

	result, err := s.seeder.Seed(context.Background(), file)
	assert.Equal(t, nil, err)
	assert.Equal(t, SeedResult{Customers: 0, EarningRules: 4, Campaigns: 2}, result)

	assert.Equal(t, 0, len(s.addPointsCalls))
	assert.Equal(t, 2, len(s.coupons.DeleteCampaignCouponsCalls()))
	assert.Equal(t, 2, len(s.campaigns.UpsertCampaignCalls()))
}

func TestSeeder_Seed__Email_Already_Registered(t *testing.T) {
	s := newSeedTest()
	s.customers.InsertCustomerFunc = func(ctx context.Context, customer model.Customer) error {
		if customer.Email.String == "john@example.com" {
			return repository.ErrEmailRegistered
		}
		return nil
	}

	result, err := s.seeder.Seed(context.Background(), loadSeedFile(t))
	assert.Equal(t, true, errors.Is(err, repository.ErrEmailRegistered))
	assert.Equal(t, apperr.KindDuplicate, apperr.KindOf(err))
	assert.Equal(t, SeedResult{Customers: 1}, result)

	assert.Equal(t, 1, len(s.addPointsCalls))
	assert.Equal(t, 0, len(s.rules.UpsertEarningRuleCalls()))
}

func TestSeeder_Seed__Invalid_Campaign(t *testing.T) {
	s := newSeedTest()

	file := fixture.File{
		Campaigns: []fixture.Campaign{
			{ID: "campaign-01", Name: "Free delivery", Reward: "free_delivery_code", AllTimeActive: true},
		},
	}

	_, err := s.seeder.Seed(context.Background(), file)
	assert.NotEqual(t, nil, err)
	assert.Equal(t, 0, len(s.campaigns.UpsertCampaignCalls()))
}
