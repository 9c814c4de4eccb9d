package transaction

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/QuangTung97/loyalty/config"
	"github.com/QuangTung97/loyalty/model"
	"github.com/QuangTung97/loyalty/pkg/apperr"
	"github.com/QuangTung97/loyalty/pkg/bus"
	"github.com/QuangTung97/loyalty/repository"
	"github.com/QuangTung97/loyalty/service/identity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/multierr"
)

func newContext() context.Context {
	return context.Background()
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

func newPublisher() (*bus.EventPublisherMock, *[]bus.Event) {
	var events []bus.Event
	return &bus.EventPublisherMock{
		PublishFunc: func(ctx context.Context, event bus.Event) error {
			events = append(events, event)
			return nil
		},
	}, &events
}

//=============================================================
// Register
//=============================================================

func newRegisterInput() RegisterInput {
	return RegisterInput{
		DocumentNumber: "DOC-01",
		DocumentType:   model.DocumentTypeSell,
		PurchaseDate:   time.Date(2022, 3, 10, 8, 0, 0, 0, time.UTC),
		PurchasePlace:  "Wroclaw",
		PosID:          "pos-01",
		CustomerData: model.CustomerData{
			Name:  "John",
			Email: "john@example.com",
		},
		Items: []ItemInput{
			{SKU: "SKU1", Name: "Shoes", Quantity: decimal.NewFromInt(1), GrossValue: decimal.NewFromInt(3)},
			{SKU: "SKU2", Name: "Shirt", Quantity: decimal.NewFromInt(2), GrossValue: decimal.NewFromInt(20)},
		},
	}
}

func TestService_Register(t *testing.T) {
	repo := &repository.TransactionRepoMock{
		InsertTransactionFunc: func(ctx context.Context, transaction model.Transaction) error {
			return nil
		},
	}
	publisher, events := newPublisher()
	s := NewService(newProvider(), repo, publisher)

	id, err := s.Register(newContext(), newRegisterInput())
	assert.Equal(t, nil, err)
	assert.NotEqual(t, "", id)

	calls := repo.InsertTransactionCalls()
	assert.Equal(t, 1, len(calls))

	tx := calls[0].Transaction
	assert.Equal(t, id, tx.ID)
	assert.Equal(t, sql.NullString{Valid: true, String: "pos-01"}, tx.PosID)
	assert.Equal(t, false, tx.CustomerID.Valid)
	assert.Equal(t, 2, len(tx.Items))
	assert.Equal(t, 2, tx.Items[1].LineNo)
	assert.Equal(t, id, tx.Items[1].TransactionID)

	assert.Equal(t, []bus.Event{
		model.TransactionRegistered{
			TransactionID: id,
			CustomerData: model.CustomerData{
				Name:  "John",
				Email: "john@example.com",
			},
		},
	}, *events)
}

func TestService_Register__Validation_Error(t *testing.T) {
	repo := &repository.TransactionRepoMock{}
	publisher, events := newPublisher()
	s := NewService(newProvider(), repo, publisher)

	input := newRegisterInput()
	input.DocumentNumber = ""
	input.Items = nil

	_, err := s.Register(newContext(), input)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	assert.Equal(t, 0, len(repo.InsertTransactionCalls()))
	assert.Equal(t, 0, len(*events))
}

func TestService_Register__Insert_Error(t *testing.T) {
	insertErr := errors.New("insert error")
	repo := &repository.TransactionRepoMock{
		InsertTransactionFunc: func(ctx context.Context, transaction model.Transaction) error {
			return insertErr
		},
	}
	publisher, events := newPublisher()
	s := NewService(newProvider(), repo, publisher)

	_, err := s.Register(newContext(), newRegisterInput())
	assert.Equal(t, insertErr, err)
	assert.Equal(t, 0, len(*events))
}

//=============================================================
// AssignCustomerHandler
//=============================================================

func TestAssignCustomerHandler__OK(t *testing.T) {
	repo := &repository.TransactionRepoMock{
		AssignCustomerFunc: func(ctx context.Context, transactionID string, customerID string) error {
			return nil
		},
	}
	h := NewAssignCustomerHandler(newProvider(), repo)

	err := h.Handle(newContext(), model.AssignCustomerToTransaction{
		TransactionID: "tx-01",
		CustomerID:    "customer-01",
	})
	assert.Equal(t, nil, err)
	assert.Equal(t, "tx-01", repo.AssignCustomerCalls()[0].TransactionID)
	assert.Equal(t, "customer-01", repo.AssignCustomerCalls()[0].CustomerID)
}

func newAssignedRepo(customerID string) *repository.TransactionRepoMock {
	return &repository.TransactionRepoMock{
		AssignCustomerFunc: func(ctx context.Context, transactionID string, customerID string) error {
			return repository.ErrConcurrentUpdate
		},
		GetTransactionFunc: func(ctx context.Context, id string) (model.Transaction, error) {
			return model.Transaction{
				ID:         id,
				CustomerID: sql.NullString{Valid: true, String: customerID},
			}, nil
		},
	}
}

func TestAssignCustomerHandler__Same_Customer_Again(t *testing.T) {
	h := NewAssignCustomerHandler(newProvider(), newAssignedRepo("customer-01"))

	err := h.Handle(newContext(), model.AssignCustomerToTransaction{
		TransactionID: "tx-01",
		CustomerID:    "customer-01",
	})
	assert.Equal(t, nil, err)
}

func TestAssignCustomerHandler__Another_Customer(t *testing.T) {
	h := NewAssignCustomerHandler(newProvider(), newAssignedRepo("customer-02"))

	err := h.Handle(newContext(), model.AssignCustomerToTransaction{
		TransactionID: "tx-01",
		CustomerID:    "customer-01",
	})
	assert.Equal(t, ErrTransactionAlreadyAssigned, err)
	assert.Equal(t, apperr.KindDomain, apperr.KindOf(err))
}

func TestAssignCustomerHandler__Not_Found(t *testing.T) {
	repo := newAssignedRepo("")
	repo.GetTransactionFunc = func(ctx context.Context, id string) (model.Transaction, error) {
		return model.Transaction{}, sql.ErrNoRows
	}
	h := NewAssignCustomerHandler(newProvider(), repo)

	err := h.Handle(newContext(), model.AssignCustomerToTransaction{
		TransactionID: "tx-01",
		CustomerID:    "customer-01",
	})
	assert.Equal(t, ErrTransactionNotFound, err)
}

//=============================================================
// AssignCustomerListener
//=============================================================

type listenerTest struct {
	matcher   *identity.CustomerIDProviderMock
	repo      *repository.TransactionRepoMock
	commands  []model.AssignCustomerToTransaction
	assignErr error
	publisher *bus.EventPublisherMock
	events    *[]bus.Event
	listener  *AssignCustomerListener
}

func newListenerTest() *listenerTest {
	l := &listenerTest{}
	l.matcher = &identity.CustomerIDProviderMock{
		GetIDFunc: func(ctx context.Context, data model.CustomerData) (string, bool, error) {
			return "customer-01", true, nil
		},
	}
	l.repo = &repository.TransactionRepoMock{
		CountCustomerTransactionsFunc: func(ctx context.Context, customerID string) (int64, error) {
			return 0, nil
		},
		GetTransactionFunc: func(ctx context.Context, id string) (model.Transaction, error) {
			return model.Transaction{
				ID:           id,
				DocumentType: model.DocumentTypeSell,
				Items: []model.TransactionItem{
					{SKU: "SKU1", GrossValue: decimal.NewFromInt(3)},
					{SKU: "DELIVERY", GrossValue: decimal.NewFromInt(10)},
					{
						SKU: "SKU2", GrossValue: decimal.NewFromInt(20),
						Labels: model.Labels{{Key: "brand", Value: "gift"}},
					},
				},
			}, nil
		},
	}
	assign := bus.HandlerFunc[model.AssignCustomerToTransaction](
		func(ctx context.Context, cmd model.AssignCustomerToTransaction) error {
			l.commands = append(l.commands, cmd)
			return l.assignErr
		},
	)
	l.publisher, l.events = newPublisher()
	l.listener = NewAssignCustomerListener(newProvider(), l.matcher, l.repo, assign, l.publisher,
		config.LoyaltyConfig{
			DeliverySKUs:        []string{"DELIVERY"},
			LevelExcludedLabels: []string{"brand:gift"},
		},
	)
	return l
}

var registeredEvent = model.TransactionRegistered{
	TransactionID: "tx-01",
	CustomerData:  model.CustomerData{Email: "john@example.com"},
}

func TestAssignCustomerListener__First_Transaction(t *testing.T) {
	l := newListenerTest()

	err := l.listener.OnTransactionRegistered(newContext(), registeredEvent)
	assert.Equal(t, nil, err)

	assert.Equal(t, []model.AssignCustomerToTransaction{
		{TransactionID: "tx-01", CustomerID: "customer-01"},
	}, l.commands)

	assert.Equal(t, 3, len(*l.events))

	assigned := (*l.events)[0].(model.CustomerAssignedToTransaction)
	assert.Equal(t, "tx-01", assigned.TransactionID)
	assert.Equal(t, "customer-01", assigned.CustomerID)
	assert.Equal(t, "33", assigned.GrossValue.String())
	assert.Equal(t, "23", assigned.GrossValueWithoutDeliveryCosts.String())
	assert.Equal(t, "20", assigned.AmountExcludedForLevel.String())
	assert.Equal(t, int64(0), assigned.TransactionsCount)
	assert.Equal(t, false, assigned.IsReturn)

	assert.Equal(t, []bus.Event{
		model.CustomerFirstTransaction{
			TransactionID: "tx-01",
			CustomerID:    "customer-01",
		},
		model.CustomerUpdated{CustomerID: "customer-01"},
	}, (*l.events)[1:])
}

func TestAssignCustomerListener__Not_First_Transaction(t *testing.T) {
	l := newListenerTest()
	l.repo.CountCustomerTransactionsFunc = func(ctx context.Context, customerID string) (int64, error) {
		return 4, nil
	}

	err := l.listener.OnTransactionRegistered(newContext(), registeredEvent)
	assert.Equal(t, nil, err)

	assert.Equal(t, 2, len(*l.events))
	assigned := (*l.events)[0].(model.CustomerAssignedToTransaction)
	assert.Equal(t, int64(4), assigned.TransactionsCount)
	assert.Equal(t, model.CustomerUpdated{CustomerID: "customer-01"}, (*l.events)[1])
}

func TestAssignCustomerListener__Customer_Not_Found(t *testing.T) {
	l := newListenerTest()
	l.matcher.GetIDFunc = func(ctx context.Context, data model.CustomerData) (string, bool, error) {
		return "", false, nil
	}

	err := l.listener.OnTransactionRegistered(newContext(), registeredEvent)
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(l.commands))
	assert.Equal(t, 0, len(*l.events))
	assert.Equal(t, 0, len(l.repo.CountCustomerTransactionsCalls()))
}

func TestAssignCustomerListener__Command_Failed__No_Events(t *testing.T) {
	l := newListenerTest()
	l.assignErr = ErrTransactionAlreadyAssigned

	err := l.listener.OnTransactionRegistered(newContext(), registeredEvent)
	assert.Equal(t, ErrTransactionAlreadyAssigned, err)
	assert.Equal(t, 0, len(*l.events))
	assert.Equal(t, 0, len(l.repo.GetTransactionCalls()))
}

func TestAssignCustomerListener__Publish_Error__Later_Events_Still_Published(t *testing.T) {
	l := newListenerTest()
	publishErr := errors.New("publish error")

	var names []string
	l.publisher.PublishFunc = func(ctx context.Context, event bus.Event) error {
		names = append(names, event.EventName())
		if _, ok := event.(model.CustomerAssignedToTransaction); ok {
			return publishErr
		}
		return nil
	}

	err := l.listener.OnTransactionRegistered(newContext(), registeredEvent)
	assert.Equal(t, []error{publishErr}, multierr.Errors(err))
	assert.Equal(t, []string{
		"loyalty.transaction.customer_assigned",
		"loyalty.customer.first_transaction",
		"loyalty.customer.updated",
	}, names)
}

func TestAssignCustomerListener__Return_Transaction(t *testing.T) {
	l := newListenerTest()
	l.repo.GetTransactionFunc = func(ctx context.Context, id string) (model.Transaction, error) {
		return model.Transaction{
			ID:           id,
			DocumentType: model.DocumentTypeReturn,
			Items: []model.TransactionItem{
				{SKU: "SKU1", GrossValue: decimal.NewFromInt(-3)},
			},
		}, nil
	}

	err := l.listener.OnTransactionRegistered(newContext(), registeredEvent)
	assert.Equal(t, nil, err)

	assigned := (*l.events)[0].(model.CustomerAssignedToTransaction)
	assert.Equal(t, true, assigned.IsReturn)
	assert.Equal(t, "-3", assigned.GrossValue.String())
}
