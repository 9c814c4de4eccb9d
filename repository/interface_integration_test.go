//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/QuangTung97/loyalty/pkg/integration"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func newContext() context.Context {
	return context.Background()
}

func newTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t.UTC()
}

func newDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestProvider_Readonly__GetReadonly(t *testing.T) {
	tc := integration.NewTestCase()

	p := NewProvider(tc.DB)
	ctx := p.Readonly(newContext())

	db := GetReadonly(ctx)

	var version string
	err := db.GetContext(ctx, &version, "SELECT VERSION()")
	assert.Equal(t, nil, err)
	assert.NotEqual(t, "", version)
}

func TestProvider_Transact__GetTransaction(t *testing.T) {
	tc := integration.NewTestCase()

	var version string

	p := NewProvider(tc.DB)
	err := p.Transact(newContext(), func(ctx context.Context) error {
		err := GetTx(ctx).GetContext(ctx, &version, "SELECT VERSION()")
		assert.Equal(t, nil, err)
		return nil
	})
	assert.Equal(t, nil, err)
	assert.NotEqual(t, "", version)
}

func TestProvider_Transact__Multi_Levels_Share_Transaction(t *testing.T) {
	tc := integration.NewTestCase()
	tc.Truncate("campaign_usage")

	p := NewProvider(tc.DB)
	repo := NewCampaign()

	err := p.Transact(newContext(), func(ctx context.Context) error {
		err := repo.IncreaseCampaignUsage(ctx, "campaign-01")
		if err != nil {
			return err
		}
		return p.Transact(ctx, func(ctx context.Context) error {
			used, err := repo.GetCampaignUsage(ctx, "campaign-01")
			assert.Equal(t, nil, err)
			assert.Equal(t, int64(1), used)
			return nil
		})
	})
	assert.Equal(t, nil, err)
}

func TestProvider_Transact__Rollback_On_Error(t *testing.T) {
	tc := integration.NewTestCase()
	tc.Truncate("campaign_usage")

	p := NewProvider(tc.DB)
	repo := NewCampaign()

	err := p.Transact(newContext(), func(ctx context.Context) error {
		if err := repo.IncreaseCampaignUsage(ctx, "campaign-01"); err != nil {
			return err
		}
		return ErrConcurrentUpdate
	})
	assert.Equal(t, ErrConcurrentUpdate, err)

	used, err := repo.GetCampaignUsage(p.Readonly(newContext()), "campaign-01")
	assert.Equal(t, nil, err)
	assert.Equal(t, int64(0), used)
}
