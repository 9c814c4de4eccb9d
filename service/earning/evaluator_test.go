package earning

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/QuangTung97/loyalty/config"
	"github.com/QuangTung97/loyalty/model"
	"github.com/QuangTung97/loyalty/pkg/fixture"
	"github.com/QuangTung97/loyalty/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() context.Context {
	return context.Background()
}

func newTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func newDecimal(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func newProvider() *repository.ProviderMock {
	return &repository.ProviderMock{
		ReadonlyFunc: func(ctx context.Context) context.Context {
			return ctx
		},
		TransactFunc: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	}
}

func toRows(rules ...model.EarningRule) []model.EarningRuleRow {
	rows := make([]model.EarningRuleRow, 0, len(rules))
	for _, rule := range rules {
		row, err := rule.ToRow()
		if err != nil {
			panic(err)
		}
		rows = append(rows, row)
	}
	return rows
}

type evaluatorTest struct {
	rows        []model.EarningRuleRow
	customer    model.Customer
	transaction model.Transaction

	rules        *repository.EarningRuleMock
	customers    *repository.CustomerMock
	transactions *repository.TransactionRepoMock
	evaluator    *Evaluator
}

func newEvaluatorTest(conf config.LoyaltyConfig) *evaluatorTest {
	e := &evaluatorTest{}

	e.rules = &repository.EarningRuleMock{
		FindActiveRulesByTypesFunc: func(ctx context.Context, types []model.RuleType) ([]model.EarningRuleRow, error) {
			var result []model.EarningRuleRow
			for _, row := range e.rows {
				for _, t := range types {
					if row.Active && row.Type == t {
						result = append(result, row)
					}
				}
			}
			return result, nil
		},
		FindActiveRulesByEventFunc: func(
			ctx context.Context, ruleType model.RuleType, eventName string,
		) ([]model.EarningRuleRow, error) {
			var result []model.EarningRuleRow
			for _, row := range e.rows {
				if row.Active && row.Type == ruleType && row.EventName == eventName {
					result = append(result, row)
				}
			}
			return result, nil
		},
	}
	e.customers = &repository.CustomerMock{
		GetCustomerFunc: func(ctx context.Context, id string) (model.Customer, error) {
			if id != e.customer.ID {
				return model.Customer{}, sql.ErrNoRows
			}
			return e.customer, nil
		},
	}
	e.transactions = &repository.TransactionRepoMock{
		GetTransactionFunc: func(ctx context.Context, id string) (model.Transaction, error) {
			return e.transaction, nil
		},
	}

	e.evaluator = NewEvaluator(newProvider(), e.rules, e.customers, e.transactions, conf,
		WithNow(func() time.Time {
			return newTime("2022-03-10T10:00:00Z")
		}),
	)
	return e
}

func (e *evaluatorTest) loadFixture(t *testing.T) {
	f, err := fixture.Load("../../fixtures/earning_rules.yml")
	require.Equal(t, nil, err)

	customer, err := f.Customers[0].ToModel()
	require.Equal(t, nil, err)
	e.customer = customer

	for _, r := range f.EarningRules {
		rule, err := r.ToModel()
		require.Equal(t, nil, err)
		e.rows = append(e.rows, toRows(rule)...)
	}
}

func scenarioTransaction(posID string) model.Transaction {
	return model.Transaction{
		ID:           "tx-01",
		DocumentType: model.DocumentTypeSell,
		PosID: sql.NullString{
			Valid:  posID != "",
			String: posID,
		},
		Items: []model.TransactionItem{
			{SKU: "SKU1", GrossValue: newDecimal("3")},
			{SKU: "SKU123", GrossValue: newDecimal("20")},
			{SKU: "SKU2", GrossValue: newDecimal("20")},
		},
	}
}

func newLevelRule(name string, variant model.RuleVariant) model.EarningRule {
	return model.EarningRule{
		ID:            name,
		Name:          name,
		Active:        true,
		AllTimeActive: true,
		Target: model.Target{
			Levels: model.StringList{"level-01"},
		},
		Variant: variant,
	}
}

func levelCustomer() model.Customer {
	return model.Customer{
		ID:      "customer-01",
		LevelID: sql.NullString{Valid: true, String: "level-01"},
	}
}

//=============================================================
// EvaluateTransaction
//=============================================================

func TestEvaluateTransaction__Fixture__Baseline(t *testing.T) {
	e := newEvaluatorTest(config.LoyaltyConfig{})
	e.loadFixture(t)
	e.transaction = scenarioTransaction("")

	result, err := e.evaluator.EvaluateTransaction(newContext(), "tx-01", "customer-silver")
	assert.Equal(t, nil, err)
	assert.Equal(t, "144.9", result.Points.String())
	assert.Equal(t, "General spending rule: 144.9", result.Comment)
}

func TestEvaluateTransaction__Fixture__Pos_Rule_Takes_Precedence(t *testing.T) {
	e := newEvaluatorTest(config.LoyaltyConfig{})
	e.loadFixture(t)
	e.transaction = scenarioTransaction("pos-outlet")

	result, err := e.evaluator.EvaluateTransaction(newContext(), "tx-01", "customer-silver")
	assert.Equal(t, nil, err)
	assert.Equal(t, "98.9", result.Points.String())
	assert.Equal(t, "Reduced rate at outlet: 98.9", result.Comment)
}

func TestEvaluateTransaction__Fixture__Other_Pos_Uses_General_Rule(t *testing.T) {
	e := newEvaluatorTest(config.LoyaltyConfig{})
	e.loadFixture(t)
	e.transaction = scenarioTransaction("pos-other")

	result, err := e.evaluator.EvaluateTransaction(newContext(), "tx-01", "customer-silver")
	assert.Equal(t, nil, err)
	assert.Equal(t, "144.9", result.Points.String())
}

func TestEvaluateTransaction__Return_Gives_Zero(t *testing.T) {
	e := newEvaluatorTest(config.LoyaltyConfig{})
	e.loadFixture(t)
	e.transaction = scenarioTransaction("")
	e.transaction.DocumentType = model.DocumentTypeReturn

	result, err := e.evaluator.EvaluateTransaction(newContext(), "tx-01", "customer-silver")
	assert.Equal(t, nil, err)
	assert.Equal(t, true, result.Points.IsZero())
	assert.Equal(t, "", result.Comment)

	assert.Equal(t, 0, len(e.customers.GetCustomerCalls()))
	assert.Equal(t, 0, len(e.rules.FindActiveRulesByTypesCalls()))
}

func TestEvaluateTransaction__Excluded_Delivery_Cost(t *testing.T) {
	e := newEvaluatorTest(config.LoyaltyConfig{
		DeliverySKUs: []string{"DELIVERY"},
	})
	e.customer = levelCustomer()
	e.transaction = model.Transaction{
		ID:           "tx-01",
		DocumentType: model.DocumentTypeSell,
		Items: []model.TransactionItem{
			{SKU: "SKU1", GrossValue: newDecimal("100.15")},
			{SKU: "DELIVERY", GrossValue: newDecimal("15")},
		},
	}
	e.rows = toRows(newLevelRule("spending", model.PointsRule{
		PointValue:          newDecimal("0.25"),
		ExcludeDeliveryCost: true,
	}))

	result, err := e.evaluator.EvaluateTransaction(newContext(), "tx-01", "customer-01")
	assert.Equal(t, nil, err)
	// (115.15 - 15) * 0.25 = 25.0375
	assert.Equal(t, "25.04", result.Points.String())
}

func TestEvaluateTransaction__Delivery_Cost_Counted_Without_Flag(t *testing.T) {
	e := newEvaluatorTest(config.LoyaltyConfig{
		DeliverySKUs: []string{"DELIVERY"},
	})
	e.customer = levelCustomer()
	e.transaction = model.Transaction{
		ID:           "tx-01",
		DocumentType: model.DocumentTypeSell,
		Items: []model.TransactionItem{
			{SKU: "SKU1", GrossValue: newDecimal("100")},
			{SKU: "DELIVERY", GrossValue: newDecimal("15")},
		},
	}
	e.rows = toRows(newLevelRule("spending", model.PointsRule{
		PointValue: newDecimal("0.5"),
	}))

	result, err := e.evaluator.EvaluateTransaction(newContext(), "tx-01", "customer-01")
	assert.Equal(t, nil, err)
	assert.Equal(t, "57.5", result.Points.String())
}

func TestEvaluateTransaction__Below_Min_Order_Value(t *testing.T) {
	e := newEvaluatorTest(config.LoyaltyConfig{})
	e.customer = levelCustomer()
	e.transaction = scenarioTransaction("")
	e.rows = toRows(newLevelRule("spending", model.PointsRule{
		PointValue:    newDecimal("2"),
		MinOrderValue: newDecimal("50"),
	}))

	result, err := e.evaluator.EvaluateTransaction(newContext(), "tx-01", "customer-01")
	assert.Equal(t, nil, err)
	assert.Equal(t, true, result.Points.IsZero())
	assert.Equal(t, "", result.Comment)
}

func TestEvaluateTransaction__Excluded_Labels(t *testing.T) {
	e := newEvaluatorTest(config.LoyaltyConfig{})
	e.customer = levelCustomer()
	e.transaction = model.Transaction{
		ID:           "tx-01",
		DocumentType: model.DocumentTypeSell,
		Items: []model.TransactionItem{
			{SKU: "SKU1", GrossValue: newDecimal("10")},
			{
				SKU: "SKU2", GrossValue: newDecimal("30"),
				Labels: model.Labels{{Key: "brand", Value: "outlet"}},
			},
		},
	}
	e.rows = toRows(newLevelRule("spending", model.PointsRule{
		PointValue:     newDecimal("1.5"),
		ExcludedLabels: model.Labels{{Key: "brand", Value: "outlet"}},
	}))

	result, err := e.evaluator.EvaluateTransaction(newContext(), "tx-01", "customer-01")
	assert.Equal(t, nil, err)
	assert.Equal(t, "15", result.Points.String())
}

func TestEvaluateTransaction__Multipliers_Applied_After_Base_Rules(t *testing.T) {
	e := newEvaluatorTest(config.LoyaltyConfig{})
	e.customer = levelCustomer()
	e.transaction = model.Transaction{
		ID:           "tx-01",
		DocumentType: model.DocumentTypeSell,
		Items: []model.TransactionItem{
			{SKU: "A", GrossValue: newDecimal("10")},
			{
				SKU: "B", GrossValue: newDecimal("20"),
				Labels: model.Labels{{Key: "category", Value: "shoes"}},
			},
		},
	}
	e.rows = toRows(
		newLevelRule("labels", model.MultiplyByLabelsRule{
			LabelMultipliers: []model.LabelMultiplier{
				{Label: model.Label{Key: "category", Value: "shoes"}, Multiplier: newDecimal("3")},
			},
		}),
		newLevelRule("double A", model.MultiplyForProductRule{
			SKUs:       model.StringList{"A"},
			Multiplier: newDecimal("2"),
		}),
		newLevelRule("spending", model.PointsRule{
			PointValue: newDecimal("1"),
		}),
		newLevelRule("buy A", model.ProductPurchaseRule{
			SKUs:         model.StringList{"A"},
			PointsAmount: newDecimal("5"),
		}),
	)

	result, err := e.evaluator.EvaluateTransaction(newContext(), "tx-01", "customer-01")
	assert.Equal(t, nil, err)
	assert.Equal(t, "90", result.Points.String())
	assert.Equal(t, "spending: 30, buy A: 5, labels: 40, double A: 15", result.Comment)
}

func TestEvaluateTransaction__Customer_Not_Targeted(t *testing.T) {
	e := newEvaluatorTest(config.LoyaltyConfig{})
	e.loadFixture(t)
	e.customer.LevelID = sql.NullString{Valid: true, String: "level-gold"}
	e.transaction = scenarioTransaction("")

	result, err := e.evaluator.EvaluateTransaction(newContext(), "tx-01", "customer-silver")
	assert.Equal(t, nil, err)
	assert.Equal(t, true, result.Points.IsZero())
}

func TestEvaluateTransaction__Segment_Target(t *testing.T) {
	e := newEvaluatorTest(config.LoyaltyConfig{})
	e.customer = model.Customer{
		ID:       "customer-01",
		Segments: []string{"segment-02"},
	}
	e.transaction = scenarioTransaction("")

	rule := newLevelRule("spending", model.PointsRule{PointValue: newDecimal("1")})
	rule.Target = model.Target{Segments: model.StringList{"segment-01", "segment-02"}}
	e.rows = toRows(rule)

	result, err := e.evaluator.EvaluateTransaction(newContext(), "tx-01", "customer-01")
	assert.Equal(t, nil, err)
	assert.Equal(t, "43", result.Points.String())
}

func TestEvaluateTransaction__Outside_Validity_Window(t *testing.T) {
	e := newEvaluatorTest(config.LoyaltyConfig{})
	e.customer = levelCustomer()
	e.transaction = scenarioTransaction("")

	expired := newLevelRule("expired", model.PointsRule{PointValue: newDecimal("1")})
	expired.AllTimeActive = false
	expired.StartAt = sql.NullTime{Valid: true, Time: newTime("2022-01-01T00:00:00Z")}
	expired.EndAt = sql.NullTime{Valid: true, Time: newTime("2022-02-01T00:00:00Z")}

	current := newLevelRule("current", model.PointsRule{PointValue: newDecimal("2")})
	current.AllTimeActive = false
	current.StartAt = sql.NullTime{Valid: true, Time: newTime("2022-03-01T00:00:00Z")}
	current.EndAt = sql.NullTime{Valid: true, Time: newTime("2022-04-01T00:00:00Z")}

	e.rows = toRows(expired, current)

	result, err := e.evaluator.EvaluateTransaction(newContext(), "tx-01", "customer-01")
	assert.Equal(t, nil, err)
	assert.Equal(t, "86", result.Points.String())
	assert.Equal(t, "current: 86", result.Comment)
}

//=============================================================
// EvaluateEvent / EvaluateCustomEvent / EvaluateReferral
//=============================================================

func TestEvaluateEvent__First_Purchase(t *testing.T) {
	e := newEvaluatorTest(config.LoyaltyConfig{})
	e.loadFixture(t)

	result, err := e.evaluator.EvaluateEvent(newContext(), model.EventFirstPurchase, "customer-silver")
	assert.Equal(t, nil, err)
	assert.Equal(t, "50", result.Points.String())
	assert.Equal(t, "First purchase bonus: 50", result.Comment)
}

func TestEvaluateEvent__No_Rules(t *testing.T) {
	e := newEvaluatorTest(config.LoyaltyConfig{})
	e.loadFixture(t)

	result, err := e.evaluator.EvaluateEvent(newContext(), model.EventAccountCreated, "customer-silver")
	assert.Equal(t, nil, err)
	assert.Equal(t, true, result.Points.IsZero())
}

func TestEvaluateCustomEvent(t *testing.T) {
	e := newEvaluatorTest(config.LoyaltyConfig{})
	e.loadFixture(t)

	result, err := e.evaluator.EvaluateCustomEvent(newContext(), "facebook_like", "customer-silver", "")
	assert.Equal(t, nil, err)
	assert.Equal(t, "rule-facebook-like", result.RuleID)
	assert.Equal(t, "100", result.Points.String())
	assert.Equal(t, int64(2), result.Rule.Limit.Limit)
}

func TestEvaluateCustomEvent__Not_Exists(t *testing.T) {
	e := newEvaluatorTest(config.LoyaltyConfig{})
	e.loadFixture(t)

	_, err := e.evaluator.EvaluateCustomEvent(newContext(), "instagram_like", "customer-silver", "")
	assert.Equal(t, ErrEventNotExists, err)
}

func TestEvaluateCustomEvent__Customer_Not_Found(t *testing.T) {
	e := newEvaluatorTest(config.LoyaltyConfig{})
	e.loadFixture(t)

	_, err := e.evaluator.EvaluateCustomEvent(newContext(), "facebook_like", "customer-unknown", "")
	assert.Equal(t, sql.ErrNoRows, err)
}

func TestEvaluateReferral__Both(t *testing.T) {
	e := newEvaluatorTest(config.LoyaltyConfig{})
	e.customer = levelCustomer()
	e.customer.ReferrerID = sql.NullString{Valid: true, String: "customer-referrer"}
	e.rows = toRows(newLevelRule("referral", model.ReferralRule{
		EventName:    model.ReferralEventEveryPurchase,
		RewardType:   model.ReferralRewardBoth,
		PointsAmount: newDecimal("10"),
	}))

	awards, err := e.evaluator.EvaluateReferral(newContext(), model.ReferralEventEveryPurchase, "customer-01")
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(awards))
	assert.Equal(t, "customer-01", awards[0].CustomerID)
	assert.Equal(t, "customer-referrer", awards[1].CustomerID)
	assert.Equal(t, "10", awards[1].Points.String())
	assert.Equal(t, "referral", awards[1].Comment)
}

func TestEvaluateReferral__Referrer_Only(t *testing.T) {
	e := newEvaluatorTest(config.LoyaltyConfig{})
	e.customer = levelCustomer()
	e.customer.ReferrerID = sql.NullString{Valid: true, String: "customer-referrer"}
	e.rows = toRows(newLevelRule("referral", model.ReferralRule{
		EventName:    model.ReferralEventFirstPurchase,
		RewardType:   model.ReferralRewardReferrer,
		PointsAmount: newDecimal("10"),
	}))

	awards, err := e.evaluator.EvaluateReferral(newContext(), model.ReferralEventFirstPurchase, "customer-01")
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(awards))
	assert.Equal(t, "customer-referrer", awards[0].CustomerID)

	awards, err = e.evaluator.EvaluateReferral(newContext(), model.ReferralEventEveryPurchase, "customer-01")
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(awards))
}

func TestEvaluateReferral__No_Referrer(t *testing.T) {
	e := newEvaluatorTest(config.LoyaltyConfig{})
	e.customer = levelCustomer()

	awards, err := e.evaluator.EvaluateReferral(newContext(), model.ReferralEventEveryPurchase, "customer-01")
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(awards))
	assert.Equal(t, 0, len(e.rules.FindActiveRulesByEventCalls()))
}
