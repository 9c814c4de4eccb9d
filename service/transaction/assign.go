package transaction

import (
	"context"
	"errors"

	"github.com/QuangTung97/loyalty/config"
	"github.com/QuangTung97/loyalty/model"
	"github.com/QuangTung97/loyalty/pkg/apperr"
	"github.com/QuangTung97/loyalty/pkg/bus"
	"github.com/QuangTung97/loyalty/pkg/otellib"
	"github.com/QuangTung97/loyalty/repository"
	"github.com/QuangTung97/loyalty/service/identity"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// ErrTransactionAlreadyAssigned ...
var ErrTransactionAlreadyAssigned = apperr.Domain(
	"transaction_already_assigned", "transaction is already assigned to another customer")

// ErrTransactionNotFound ...
var ErrTransactionNotFound = apperr.NotFound("transaction_not_found", "transaction not found")

// AssignCustomerHandler links a transaction to a customer at most once
type AssignCustomerHandler struct {
	provider repository.Provider
	repo     repository.TransactionRepo
}

var _ bus.CommandHandler[model.AssignCustomerToTransaction] = &AssignCustomerHandler{}

// NewAssignCustomerHandler ...
func NewAssignCustomerHandler(provider repository.Provider, repo repository.TransactionRepo) *AssignCustomerHandler {
	return &AssignCustomerHandler{
		provider: provider,
		repo:     repo,
	}
}

// Handle assigning the same customer twice is a no-op
func (h *AssignCustomerHandler) Handle(ctx context.Context, cmd model.AssignCustomerToTransaction) error {
	return h.provider.Transact(ctx, func(ctx context.Context) error {
		err := h.repo.AssignCustomer(ctx, cmd.TransactionID, cmd.CustomerID)
		if !errors.Is(err, repository.ErrConcurrentUpdate) {
			return err
		}

		tx, err := h.repo.GetTransaction(ctx, cmd.TransactionID)
		if repository.IsNotFound(err) {
			return ErrTransactionNotFound
		}
		if err != nil {
			return err
		}
		if tx.CustomerID.Valid && tx.CustomerID.String == cmd.CustomerID {
			return nil
		}
		return ErrTransactionAlreadyAssigned
	})
}

// AssignCustomerListener reacts to TransactionRegistered by matching the customer data
// against the customer directory and fanning out the assignment events
type AssignCustomerListener struct {
	provider  repository.Provider
	matcher   identity.CustomerIDProvider
	repo      repository.TransactionRepo
	assign    bus.CommandHandler[model.AssignCustomerToTransaction]
	publisher bus.EventPublisher
	conf      config.LoyaltyConfig
}

// NewAssignCustomerListener ...
func NewAssignCustomerListener(
	provider repository.Provider,
	matcher identity.CustomerIDProvider,
	repo repository.TransactionRepo,
	assign bus.CommandHandler[model.AssignCustomerToTransaction],
	publisher bus.EventPublisher,
	conf config.LoyaltyConfig,
) *AssignCustomerListener {
	return &AssignCustomerListener{
		provider:  provider,
		matcher:   matcher,
		repo:      repo,
		assign:    assign,
		publisher: publisher,
		conf:      conf,
	}
}

// OnTransactionRegistered ...
func (l *AssignCustomerListener) OnTransactionRegistered(ctx context.Context, event model.TransactionRegistered) error {
	customerID, found, err := l.matcher.GetID(ctx, event.CustomerData)
	if err != nil {
		return err
	}
	if !found {
		otellib.Extract(ctx).Debug("no customer matches transaction",
			zap.String("transaction_id", event.TransactionID))
		return nil
	}

	readCtx := l.provider.Readonly(ctx)
	count, err := l.repo.CountCustomerTransactions(readCtx, customerID)
	if err != nil {
		return err
	}

	err = l.assign.Handle(ctx, model.AssignCustomerToTransaction{
		TransactionID: event.TransactionID,
		CustomerID:    customerID,
	})
	if err != nil {
		return err
	}

	tx, err := l.repo.GetTransaction(readCtx, event.TransactionID)
	if err != nil {
		return err
	}

	events := []bus.Event{
		model.CustomerAssignedToTransaction{
			TransactionID:                  tx.ID,
			CustomerID:                     customerID,
			GrossValue:                     tx.GrossValue(),
			GrossValueWithoutDeliveryCosts: tx.GrossValueWithoutDeliveryCosts(l.conf.DeliverySKUs),
			AmountExcludedForLevel: tx.AmountExcludedForLevel(
				l.conf.LevelExcludedSKUs, l.conf.ExcludedLabels()),
			TransactionsCount: count,
			IsReturn:          tx.IsReturn(),
		},
	}
	if count == 0 {
		events = append(events, model.CustomerFirstTransaction{
			TransactionID: tx.ID,
			CustomerID:    customerID,
		})
	}
	events = append(events, model.CustomerUpdated{CustomerID: customerID})

	var result error
	for _, e := range events {
		result = multierr.Append(result, l.publisher.Publish(ctx, e))
	}
	return result
}

// Register subscribes the listener to d
func (l *AssignCustomerListener) Register(d *bus.Dispatcher) {
	bus.Subscribe(d, l.OnTransactionRegistered)
}
