package earning

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/QuangTung97/loyalty/config"
	"github.com/QuangTung97/loyalty/model"
	"github.com/QuangTung97/loyalty/pkg/apperr"
	"github.com/QuangTung97/loyalty/repository"
	"github.com/shopspring/decimal"
)

//go:generate moq -out evaluator_mocks.go . IEvaluator
//go:generate otelwrap --out evaluator_wrappers.go . IEvaluator

// IEvaluator ...
type IEvaluator interface {
	EvaluateTransaction(ctx context.Context, transactionID string, customerID string) (Result, error)
	EvaluateEvent(ctx context.Context, eventName string, customerID string) (Result, error)
	EvaluateCustomEvent(
		ctx context.Context, eventName string, customerID string, posID string,
	) (CustomEventResult, error)
	EvaluateReferral(ctx context.Context, event model.ReferralEvent, customerID string) ([]ReferralAward, error)
}

// Result is the awarded points and the breakdown by rule name
type Result struct {
	Points  decimal.Decimal
	Comment string
}

// CustomEventResult ...
type CustomEventResult struct {
	RuleID string
	Rule   model.CustomEventRule
	Points decimal.Decimal
}

// ReferralAward points for one of the two sides of a referral
type ReferralAward struct {
	CustomerID string
	Points     decimal.Decimal
	Comment    string
}

// ErrEventNotExists ...
var ErrEventNotExists = apperr.Domain("event_not_exists", "event does not exist")

var transactionRuleTypes = []model.RuleType{
	model.RuleTypePoints,
	model.RuleTypeProductPurchase,
	model.RuleTypeMultiplyForProduct,
	model.RuleTypeMultiplyByLabels,
}

// Evaluator computes points from the active earning rules
type Evaluator struct {
	provider     repository.Provider
	rules        repository.EarningRule
	customers    repository.Customer
	transactions repository.TransactionRepo
	conf         config.LoyaltyConfig
	now          func() time.Time
}

var _ IEvaluator = &Evaluator{}

// EvaluatorOption ...
type EvaluatorOption func(e *Evaluator)

// WithNow overrides the clock used for rule validity windows
func WithNow(now func() time.Time) EvaluatorOption {
	return func(e *Evaluator) {
		e.now = now
	}
}

// NewEvaluator ...
func NewEvaluator(
	provider repository.Provider,
	rules repository.EarningRule,
	customers repository.Customer,
	transactions repository.TransactionRepo,
	conf config.LoyaltyConfig,
	options ...EvaluatorOption,
) *Evaluator {
	e := &Evaluator{
		provider:     provider,
		rules:        rules,
		customers:    customers,
		transactions: transactions,
		conf:         conf,
		now:          time.Now,
	}
	for _, o := range options {
		o(e)
	}
	return e
}

// applicableRules keeps valid rules targeting the customer at the point of sale
func (e *Evaluator) applicableRules(
	rows []model.EarningRuleRow, customer model.Customer, posID string,
) ([]model.EarningRule, error) {
	now := e.now()
	result := make([]model.EarningRule, 0, len(rows))
	for _, row := range rows {
		rule, err := row.ToEarningRule()
		if err != nil {
			return nil, fmt.Errorf("earning rule %s: %w", row.ID, err)
		}
		if !rule.IsValidAt(now) {
			continue
		}
		if !rule.Target.Matches(customer.LevelID.String, customer.Segments) {
			continue
		}
		if !rule.AppliesToPos(posID) {
			continue
		}
		result = append(result, rule)
	}
	return result, nil
}

// EvaluateTransaction return transactions always give zero points
func (e *Evaluator) EvaluateTransaction(ctx context.Context, transactionID string, customerID string) (Result, error) {
	ctx = e.provider.Readonly(ctx)

	tx, err := e.transactions.GetTransaction(ctx, transactionID)
	if err != nil {
		return Result{}, err
	}
	if tx.IsReturn() {
		return Result{Points: decimal.Zero}, nil
	}

	customer, err := e.customers.GetCustomer(ctx, customerID)
	if err != nil {
		return Result{}, err
	}

	rows, err := e.rules.FindActiveRulesByTypes(ctx, transactionRuleTypes)
	if err != nil {
		return Result{}, err
	}

	posID := tx.PosID.String
	rules, err := e.applicableRules(rows, customer, posID)
	if err != nil {
		return Result{}, err
	}
	rules = preferPosRules(rules, posID)
	return evaluateLines(tx, rules, e.conf.DeliverySKUs), nil
}

// preferPosRules drops general points rules when a points rule lists the point of sale explicitly
func preferPosRules(rules []model.EarningRule, posID string) []model.EarningRule {
	if posID == "" {
		return rules
	}

	hasPosRule := false
	for _, rule := range rules {
		if _, ok := rule.Variant.(model.PointsRule); ok && rule.Pos.Contains(posID) {
			hasPosRule = true
			break
		}
	}
	if !hasPosRule {
		return rules
	}

	result := make([]model.EarningRule, 0, len(rules))
	for _, rule := range rules {
		if _, ok := rule.Variant.(model.PointsRule); ok && len(rule.Pos) == 0 {
			continue
		}
		result = append(result, rule)
	}
	return result
}

func rulePriority(rule model.EarningRule) int {
	switch rule.Variant.(type) {
	case model.MultiplyForProductRule, model.MultiplyByLabelsRule:
		return 1
	default:
		return 0
	}
}

func sumPoints(points []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, p := range points {
		total = total.Add(p)
	}
	return total
}

// evaluateLines applies base rules then multipliers on per line points
func evaluateLines(tx model.Transaction, rules []model.EarningRule, deliverySKUs []string) Result {
	sorted := make([]model.EarningRule, len(rules))
	copy(sorted, rules)
	sort.SliceStable(sorted, func(i, j int) bool {
		return rulePriority(sorted[i]) < rulePriority(sorted[j])
	})

	points := make([]decimal.Decimal, len(tx.Items))
	for i := range points {
		points[i] = decimal.Zero
	}

	gross := tx.GrossValue()
	delivery := model.StringList(deliverySKUs)

	var comments []string
	for _, rule := range sorted {
		before := sumPoints(points)

		switch v := rule.Variant.(type) {
		case model.PointsRule:
			applyPointsRule(v, tx.Items, points, gross, delivery)
		case model.ProductPurchaseRule:
			for i, item := range tx.Items {
				if v.SKUs.Contains(item.SKU) {
					points[i] = points[i].Add(v.PointsAmount)
				}
			}
		case model.MultiplyForProductRule:
			for i, item := range tx.Items {
				if v.SKUs.Contains(item.SKU) || item.Labels.ContainsAny(v.Labels) {
					points[i] = points[i].Mul(v.Multiplier)
				}
			}
		case model.MultiplyByLabelsRule:
			for i, item := range tx.Items {
				for _, m := range v.LabelMultipliers {
					if item.Labels.Contains(m.Label) {
						points[i] = points[i].Mul(m.Multiplier)
					}
				}
			}
		}

		gained := sumPoints(points).Sub(before)
		if gained.IsZero() {
			continue
		}
		comments = append(comments, rule.Name+": "+config.RoundPoints(gained).String())
	}

	return Result{
		Points:  config.RoundPoints(sumPoints(points)),
		Comment: strings.Join(comments, ", "),
	}
}

func applyPointsRule(
	rule model.PointsRule, items []model.TransactionItem, points []decimal.Decimal,
	gross decimal.Decimal, delivery model.StringList,
) {
	if gross.LessThan(rule.MinOrderValue) {
		return
	}
	for i, item := range items {
		if rule.ExcludedSKUs.Contains(item.SKU) {
			continue
		}
		if item.Labels.ContainsAny(rule.ExcludedLabels) {
			continue
		}
		if rule.ExcludeDeliveryCost && delivery.Contains(item.SKU) {
			continue
		}
		points[i] = points[i].Add(item.GrossValue.Mul(rule.PointValue))
	}
}

// EvaluateEvent sums the fixed event rules of a system event
func (e *Evaluator) EvaluateEvent(ctx context.Context, eventName string, customerID string) (Result, error) {
	ctx = e.provider.Readonly(ctx)

	customer, err := e.customers.GetCustomer(ctx, customerID)
	if err != nil {
		return Result{}, err
	}

	rows, err := e.rules.FindActiveRulesByEvent(ctx, model.RuleTypeEvent, eventName)
	if err != nil {
		return Result{}, err
	}
	rules, err := e.applicableRules(rows, customer, "")
	if err != nil {
		return Result{}, err
	}

	total := decimal.Zero
	var comments []string
	for _, rule := range rules {
		v := rule.Variant.(model.EventRule)
		total = total.Add(v.PointsAmount)
		comments = append(comments, rule.Name+": "+config.RoundPoints(v.PointsAmount).String())
	}
	return Result{
		Points:  config.RoundPoints(total),
		Comment: strings.Join(comments, ", "),
	}, nil
}

// EvaluateCustomEvent finds the rule of a custom event, usage is not recorded here
func (e *Evaluator) EvaluateCustomEvent(
	ctx context.Context, eventName string, customerID string, posID string,
) (CustomEventResult, error) {
	ctx = e.provider.Readonly(ctx)

	customer, err := e.customers.GetCustomer(ctx, customerID)
	if err != nil {
		return CustomEventResult{}, err
	}

	rows, err := e.rules.FindActiveRulesByEvent(ctx, model.RuleTypeCustomEvent, eventName)
	if err != nil {
		return CustomEventResult{}, err
	}
	rules, err := e.applicableRules(rows, customer, posID)
	if err != nil {
		return CustomEventResult{}, err
	}
	if len(rules) == 0 {
		return CustomEventResult{}, ErrEventNotExists
	}

	v := rules[0].Variant.(model.CustomEventRule)
	return CustomEventResult{
		RuleID: rules[0].ID,
		Rule:   v,
		Points: config.RoundPoints(v.PointsAmount),
	}, nil
}

// EvaluateReferral returns nothing for customers without a referrer
func (e *Evaluator) EvaluateReferral(
	ctx context.Context, event model.ReferralEvent, customerID string,
) ([]ReferralAward, error) {
	ctx = e.provider.Readonly(ctx)

	customer, err := e.customers.GetCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	if !customer.ReferrerID.Valid {
		return nil, nil
	}

	rows, err := e.rules.FindActiveRulesByEvent(ctx, model.RuleTypeReferral, string(event))
	if err != nil {
		return nil, err
	}
	rules, err := e.applicableRules(rows, customer, "")
	if err != nil {
		return nil, err
	}

	var result []ReferralAward
	for _, rule := range rules {
		v := rule.Variant.(model.ReferralRule)
		points := config.RoundPoints(v.PointsAmount)

		if v.RewardType == model.ReferralRewardReferred || v.RewardType == model.ReferralRewardBoth {
			result = append(result, ReferralAward{
				CustomerID: customer.ID,
				Points:     points,
				Comment:    rule.Name,
			})
		}
		if v.RewardType == model.ReferralRewardReferrer || v.RewardType == model.ReferralRewardBoth {
			result = append(result, ReferralAward{
				CustomerID: customer.ReferrerID.String,
				Points:     points,
				Comment:    rule.Name,
			})
		}
	}
	return result, nil
}
