//go:build integration

package repository

import (
	"context"
	"testing"

	"github.com/QuangTung97/loyalty/model"
	"github.com/QuangTung97/loyalty/pkg/integration"
	"github.com/stretchr/testify/assert"
)

func TestEarningRule_Lock_And_Count_Usages(t *testing.T) {
	tc := integration.NewTestCase()
	tc.Truncate("earning_rule", "earning_rule_usage")

	p := NewProvider(tc.DB)
	repo := NewEarningRule()

	row, err := model.EarningRule{
		ID:            "rule-01",
		Name:          "Facebook like",
		AllTimeActive: true,
		Active:        true,
		Target:        model.Target{Levels: model.StringList{"level-01"}},
		Variant: model.CustomEventRule{
			EventName:    "facebook_like",
			PointsAmount: newDecimal("100"),
		},
	}.ToRow()
	assert.Equal(t, nil, err)

	err = p.Transact(newContext(), func(ctx context.Context) error {
		return repo.UpsertEarningRule(ctx, row)
	})
	assert.Equal(t, nil, err)

	err = p.Transact(newContext(), func(ctx context.Context) error {
		if err := repo.LockEarningRule(ctx, "rule-01"); err != nil {
			return err
		}
		count, err := repo.CountUsages(ctx, UsageFilter{EarningRuleID: "rule-01", CustomerID: "customer-01"})
		if err != nil {
			return err
		}
		assert.Equal(t, int64(0), count)

		return repo.InsertUsage(ctx, model.EarningRuleUsage{
			ID:            "usage-01",
			EarningRuleID: "rule-01",
			CustomerID:    "customer-01",
			UsedAt:        newTime("2022-03-10T10:00:00Z"),
		})
	})
	assert.Equal(t, nil, err)

	count, err := repo.CountUsages(p.Readonly(newContext()), UsageFilter{
		EarningRuleID: "rule-01",
		CustomerID:    "customer-01",
		Since:         newTime("2022-03-01T00:00:00Z"),
	})
	assert.Equal(t, nil, err)
	assert.Equal(t, int64(1), count)

	err = p.Transact(newContext(), func(ctx context.Context) error {
		return repo.LockEarningRule(ctx, "rule-02")
	})
	assert.Equal(t, true, IsNotFound(err))
}
