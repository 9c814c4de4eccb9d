package fixture

import (
	"testing"

	"github.com/QuangTung97/loyalty/model"
	"github.com/stretchr/testify/assert"
)

func TestLoad__Earning_Rules_File(t *testing.T) {
	f, err := Load("../../fixtures/earning_rules.yml")
	assert.Equal(t, nil, err)

	assert.Equal(t, 1, len(f.Customers))
	assert.Equal(t, 4, len(f.EarningRules))

	customer, err := f.Customers[0].ToModel()
	assert.Equal(t, nil, err)
	assert.Equal(t, "customer-silver", customer.ID)
	assert.Equal(t, model.CustomerStatusActiveCard, customer.Status)
	assert.Equal(t, "level-silver", customer.LevelID.String)
	assert.Equal(t, false, customer.ReferrerID.Valid)

	rule, err := f.EarningRules[0].ToModel()
	assert.Equal(t, nil, err)
	assert.Equal(t, "General spending rule", rule.Name)
	assert.Equal(t, nil, rule.Validate())

	points := rule.Variant.(model.PointsRule)
	assert.Equal(t, "6.3", points.PointValue.String())
	assert.Equal(t, model.StringList{"SKU123"}, points.ExcludedSKUs)
	assert.Equal(t, true, points.ExcludeDeliveryCost)

	posRule, err := f.EarningRules[1].ToModel()
	assert.Equal(t, nil, err)
	assert.Equal(t, model.StringList{"pos-outlet"}, posRule.Pos)

	custom, err := f.EarningRules[2].ToModel()
	assert.Equal(t, nil, err)
	assert.Equal(t, model.CustomEventRule{
		EventName:    "facebook_like",
		PointsAmount: custom.Variant.(model.CustomEventRule).PointsAmount,
		Limit: model.UsageLimit{
			Active: true,
			Limit:  2,
			Period: model.LimitPeriodDay,
		},
	}, custom.Variant)
	assert.Equal(t, "100", custom.Variant.(model.CustomEventRule).PointsAmount.String())
}

func TestParse__Campaign(t *testing.T) {
	f, err := Parse([]byte(`
campaigns:
  - id: campaign-01
    name: Cashback
    reward: cashback
    active: true
    levels: [level-01]
    unlimited: true
    allTimeActive: true
    allTimeVisible: true
    pointValue: "0.05"
  - id: campaign-02
    name: Free delivery
    reward: free_delivery_code
    costInPoints: "100"
    levels: [level-01]
    limit: 3
    limitPerUser: 1
    activeFrom: 2022-01-01T00:00:00Z
    activeTo: 2022-12-31T00:00:00Z
    allTimeVisible: true
    coupons: [A, B]
`))
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(f.Campaigns))

	cashback, err := f.Campaigns[0].ToModel()
	assert.Equal(t, nil, err)
	assert.Equal(t, model.CampaignRewardCashback, cashback.Reward)
	assert.Equal(t, true, cashback.PointValue.Valid)
	assert.Equal(t, "0.05", cashback.PointValue.Decimal.String())
	assert.Equal(t, nil, cashback.Validate())

	delivery, err := f.Campaigns[1].ToModel()
	assert.Equal(t, nil, err)
	assert.Equal(t, "100", delivery.CostInPoints.String())
	assert.Equal(t, true, delivery.ActiveFrom.Valid)
	assert.Equal(t, false, delivery.PointValue.Valid)
	assert.Equal(t, []string{"A", "B"}, f.Campaigns[1].Coupons)
	assert.Equal(t, nil, delivery.Validate())
}

func TestParse__Unknown_Rule_Type(t *testing.T) {
	f, err := Parse([]byte(`
earningRules:
  - id: rule-01
    type: unknown
`))
	assert.Equal(t, nil, err)

	_, err = f.EarningRules[0].ToModel()
	assert.Equal(t, `earning rule rule-01: unknown earning rule type "unknown"`, err.Error())
}

func TestParse__Unknown_Customer_Status(t *testing.T) {
	f, err := Parse([]byte(`
customers:
  - id: customer-01
    status: sleeping
`))
	assert.Equal(t, nil, err)

	_, err = f.Customers[0].ToModel()
	assert.Equal(t, `customer customer-01: unknown status "sleeping"`, err.Error())
}
