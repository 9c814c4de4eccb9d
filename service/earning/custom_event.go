package earning

import (
	"context"
	"database/sql"
	"time"

	"github.com/QuangTung97/loyalty/model"
	"github.com/QuangTung97/loyalty/pkg/apperr"
	"github.com/QuangTung97/loyalty/pkg/bus"
	"github.com/QuangTung97/loyalty/repository"
	"github.com/shopspring/decimal"
)

// ErrLimitExceeded ...
var ErrLimitExceeded = apperr.Domain("limit_exceeded", "limit exceeded")

// ReportInput ...
type ReportInput struct {
	EventName  string `validate:"required"`
	CustomerID string `validate:"required"`
	PosID      string
}

// CustomEventService awards points for custom events reported by external systems
type CustomEventService struct {
	provider  repository.Provider
	evaluator IEvaluator
	rules     repository.EarningRule
	useRule   bus.CommandHandler[model.UseCustomEventEarningRule]
	addPoints bus.CommandHandler[model.AddPoints]
	now       func() time.Time
}

// NewCustomEventService ...
func NewCustomEventService(
	provider repository.Provider,
	evaluator IEvaluator,
	rules repository.EarningRule,
	useRule bus.CommandHandler[model.UseCustomEventEarningRule],
	addPoints bus.CommandHandler[model.AddPoints],
	now func() time.Time,
) *CustomEventService {
	return &CustomEventService{
		provider:  provider,
		evaluator: evaluator,
		rules:     rules,
		useRule:   useRule,
		addPoints: addPoints,
		now:       now,
	}
}

func (s *CustomEventService) checkLimit(ctx context.Context, input ReportInput, result CustomEventResult) error {
	limit := result.Rule.Limit
	if !limit.Active {
		return nil
	}

	since, err := limit.PeriodStart(s.now())
	if err != nil {
		return err
	}
	filter := repository.UsageFilter{
		EarningRuleID: result.RuleID,
		CustomerID:    input.CustomerID,
		Since:         since,
	}
	if limit.PerPos && input.PosID != "" {
		filter.PosID = sql.NullString{
			Valid:  true,
			String: input.PosID,
		}
	}

	count, err := s.rules.CountUsages(ctx, filter)
	if err != nil {
		return err
	}
	if count >= limit.Limit {
		return ErrLimitExceeded
	}
	return nil
}

// Report records one use of the custom event and returns the awarded points
func (s *CustomEventService) Report(ctx context.Context, input ReportInput) (decimal.Decimal, error) {
	if err := bus.ValidateStruct(input); err != nil {
		return decimal.Zero, err
	}

	result, err := s.evaluator.EvaluateCustomEvent(ctx, input.EventName, input.CustomerID, input.PosID)
	if err != nil {
		return decimal.Zero, err
	}

	err = s.provider.Transact(ctx, func(ctx context.Context) error {
		if result.Rule.Limit.Active {
			// serializes concurrent reports of the rule until the usage is inserted
			if err := s.rules.LockEarningRule(ctx, result.RuleID); err != nil {
				return err
			}
		}
		if err := s.checkLimit(ctx, input, result); err != nil {
			return err
		}

		err := s.useRule.Handle(ctx, model.UseCustomEventEarningRule{
			EarningRuleID: result.RuleID,
			CustomerID:    input.CustomerID,
			PosID:         input.PosID,
		})
		if err != nil {
			return err
		}

		if !result.Points.IsPositive() {
			return nil
		}
		return s.addPoints.Handle(ctx, model.AddPoints{
			CustomerID: input.CustomerID,
			Value:      result.Points,
			Comment:    input.EventName,
		})
	})
	if err != nil {
		return decimal.Zero, err
	}
	return result.Points, nil
}

// NewUsageHandler records one use of a custom event rule, usages are never updated
func NewUsageHandler(
	provider repository.Provider, rules repository.EarningRule, newID func() string, now func() time.Time,
) bus.CommandHandler[model.UseCustomEventEarningRule] {
	return bus.HandlerFunc[model.UseCustomEventEarningRule](
		func(ctx context.Context, cmd model.UseCustomEventEarningRule) error {
			return provider.Transact(ctx, func(ctx context.Context) error {
				return rules.InsertUsage(ctx, model.EarningRuleUsage{
					ID:            newID(),
					EarningRuleID: cmd.EarningRuleID,
					CustomerID:    cmd.CustomerID,
					PosID: sql.NullString{
						Valid:  cmd.PosID != "",
						String: cmd.PosID,
					},
					UsedAt: now(),
				})
			})
		},
	)
}
