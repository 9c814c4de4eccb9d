package earning

import (
	"context"

	"github.com/QuangTung97/loyalty/model"
	"github.com/QuangTung97/loyalty/pkg/bus"
	"github.com/QuangTung97/loyalty/pkg/otellib"
	"github.com/QuangTung97/loyalty/repository"
	"go.uber.org/zap"
)

// ApplyEarningRuleListener awards points for assigned transactions and first purchases
type ApplyEarningRuleListener struct {
	provider  repository.Provider
	evaluator IEvaluator
	accounts  repository.Account
	addPoints bus.CommandHandler[model.AddPoints]
}

// NewApplyEarningRuleListener ...
func NewApplyEarningRuleListener(
	provider repository.Provider,
	evaluator IEvaluator,
	accounts repository.Account,
	addPoints bus.CommandHandler[model.AddPoints],
) *ApplyEarningRuleListener {
	return &ApplyEarningRuleListener{
		provider:  provider,
		evaluator: evaluator,
		accounts:  accounts,
		addPoints: addPoints,
	}
}

func (l *ApplyEarningRuleListener) hasAccount(ctx context.Context, customerID string) (bool, error) {
	_, err := l.accounts.GetAccountByCustomer(l.provider.Readonly(ctx), customerID)
	if repository.IsNotFound(err) {
		otellib.Extract(ctx).Debug("customer has no points account", zap.String("customer_id", customerID))
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// OnCustomerAssigned ...
func (l *ApplyEarningRuleListener) OnCustomerAssigned(
	ctx context.Context, event model.CustomerAssignedToTransaction,
) error {
	if event.IsReturn {
		return nil
	}
	ok, err := l.hasAccount(ctx, event.CustomerID)
	if err != nil || !ok {
		return err
	}

	result, err := l.evaluator.EvaluateTransaction(ctx, event.TransactionID, event.CustomerID)
	if err != nil {
		return err
	}
	if result.Points.IsPositive() {
		err := l.addPoints.Handle(ctx, model.AddPoints{
			CustomerID:    event.CustomerID,
			Value:         result.Points,
			Comment:       result.Comment,
			TransactionID: event.TransactionID,
		})
		if err != nil {
			return err
		}
	}

	if event.TransactionsCount == 0 {
		return nil
	}
	return l.applyReferral(ctx, model.ReferralEventEveryPurchase, event.CustomerID)
}

// OnFirstTransaction ...
func (l *ApplyEarningRuleListener) OnFirstTransaction(ctx context.Context, event model.CustomerFirstTransaction) error {
	ok, err := l.hasAccount(ctx, event.CustomerID)
	if err != nil || !ok {
		return err
	}

	result, err := l.evaluator.EvaluateEvent(ctx, model.EventFirstPurchase, event.CustomerID)
	if err != nil {
		return err
	}
	if result.Points.IsPositive() {
		err := l.addPoints.Handle(ctx, model.AddPoints{
			CustomerID:    event.CustomerID,
			Value:         result.Points,
			Comment:       result.Comment,
			TransactionID: event.TransactionID,
		})
		if err != nil {
			return err
		}
	}
	return l.applyReferral(ctx, model.ReferralEventFirstPurchase, event.CustomerID)
}

func (l *ApplyEarningRuleListener) applyReferral(
	ctx context.Context, event model.ReferralEvent, customerID string,
) error {
	awards, err := l.evaluator.EvaluateReferral(ctx, event, customerID)
	if err != nil {
		return err
	}
	for _, award := range awards {
		if !award.Points.IsPositive() {
			continue
		}
		err := l.addPoints.Handle(ctx, model.AddPoints{
			CustomerID: award.CustomerID,
			Value:      award.Points,
			Comment:    award.Comment,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// Register subscribes the listener to d
func (l *ApplyEarningRuleListener) Register(d *bus.Dispatcher) {
	bus.Subscribe(d, l.OnCustomerAssigned)
	bus.Subscribe(d, l.OnFirstTransaction)
}
