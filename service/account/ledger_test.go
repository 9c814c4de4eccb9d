package account

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/QuangTung97/loyalty/config"
	"github.com/QuangTung97/loyalty/model"
	"github.com/QuangTung97/loyalty/repository"
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

type ledgerTest struct {
	accounts  map[string]model.Account
	transfers []model.PointsTransfer
	repo      *repository.AccountMock
	observer  *PointsObserverMock

	awarded []decimal.Decimal
	spent   []decimal.Decimal
	lastID  int

	add    *AddPointsHandler
	spend  *SpendPointsHandler
	ledger *Ledger
}

func newLedgerTest(conf config.LoyaltyConfig, options ...Option) *ledgerTest {
	l := &ledgerTest{
		accounts: map[string]model.Account{},
	}
	l.repo = &repository.AccountMock{
		GetAccountByCustomerFunc: func(ctx context.Context, customerID string) (model.Account, error) {
			account, ok := l.accounts[customerID]
			if !ok {
				return model.Account{}, sql.ErrNoRows
			}
			return account, nil
		},
		InsertAccountFunc: func(ctx context.Context, account model.Account) error {
			l.accounts[account.CustomerID] = account
			return nil
		},
		AddAvailableFunc: func(ctx context.Context, customerID string, value decimal.Decimal) error {
			account := l.accounts[customerID]
			account.Available = account.Available.Add(value)
			account.Earned = account.Earned.Add(value)
			l.accounts[customerID] = account
			return nil
		},
		SpendAvailableFunc: func(ctx context.Context, customerID string, value decimal.Decimal) error {
			account := l.accounts[customerID]
			if account.Available.LessThan(value) {
				return repository.ErrConcurrentUpdate
			}
			account.Available = account.Available.Sub(value)
			account.Used = account.Used.Add(value)
			l.accounts[customerID] = account
			return nil
		},
		ExpireAvailableFunc: func(ctx context.Context, customerID string, value decimal.Decimal) error {
			account := l.accounts[customerID]
			value = decimal.Min(value, account.Available)
			account.Available = account.Available.Sub(value)
			account.Expired = account.Expired.Add(value)
			l.accounts[customerID] = account
			return nil
		},
		InsertTransferFunc: func(ctx context.Context, transfer model.PointsTransfer) error {
			l.transfers = append(l.transfers, transfer)
			return nil
		},
		FindTransfersToExpireFunc: func(
			ctx context.Context, now time.Time, limit uint64,
		) ([]model.PointsTransfer, error) {
			var result []model.PointsTransfer
			for _, t := range l.transfers {
				if uint64(len(result)) >= limit {
					break
				}
				if t.Type == model.TransferTypeAdding && t.State == model.TransferStateActive &&
					t.ExpiresAt.Valid && !t.ExpiresAt.Time.After(now) {
					result = append(result, t)
				}
			}
			return result, nil
		},
		MarkTransferExpiredFunc: func(ctx context.Context, transferID string) error {
			for i := range l.transfers {
				if l.transfers[i].ID == transferID && l.transfers[i].State == model.TransferStateActive {
					l.transfers[i].State = model.TransferStateExpired
					return nil
				}
			}
			return repository.ErrConcurrentUpdate
		},
		FindTransfersByCustomerFunc: func(ctx context.Context, customerID string) ([]model.PointsTransfer, error) {
			var result []model.PointsTransfer
			for _, t := range l.transfers {
				if t.CustomerID == customerID {
					result = append(result, t)
				}
			}
			return result, nil
		},
	}
	l.observer = &PointsObserverMock{
		PointsAwardedFunc: func(value decimal.Decimal) {
			l.awarded = append(l.awarded, value)
		},
		PointsSpentFunc: func(value decimal.Decimal) {
			l.spent = append(l.spent, value)
		},
	}

	newID := func() string {
		l.lastID++
		return fmt.Sprintf("id-%02d", l.lastID)
	}
	options = append([]Option{
		WithNow(func() time.Time { return newTime("2022-03-10T10:00:00Z") }),
		WithNewID(newID),
	}, options...)

	provider := newProvider()
	l.add = NewAddPointsHandler(provider, l.repo, conf, l.observer, options...)
	l.spend = NewSpendPointsHandler(provider, l.repo, l.observer, options...)
	l.ledger = NewLedger(provider, l.repo, options...)
	return l
}

func defaultLoyaltyConfig() config.LoyaltyConfig {
	return config.LoyaltyConfig{PointsDaysActive: 30}
}

//=========================================================================
// Add Points
//=========================================================================

func TestAddPointsHandler__Creates_Account(t *testing.T) {
	l := newLedgerTest(defaultLoyaltyConfig())

	err := l.add.Handle(newContext(), model.AddPoints{
		CustomerID:    "customer-01",
		Value:         newDecimal("144.904"),
		Comment:       "General spending rule: 144.9",
		TransactionID: "tx-01",
	})
	assert.Equal(t, nil, err)

	account := l.accounts["customer-01"]
	assert.Equal(t, "id-01", account.ID)
	assert.Equal(t, "144.9", account.Available.String())
	assert.Equal(t, "144.9", account.Earned.String())

	assert.Equal(t, 1, len(l.transfers))
	transfer := l.transfers[0]
	assert.Equal(t, "id-02", transfer.ID)
	assert.Equal(t, "id-01", transfer.AccountID)
	assert.Equal(t, model.TransferTypeAdding, transfer.Type)
	assert.Equal(t, model.TransferStateActive, transfer.State)
	assert.Equal(t, sql.NullString{Valid: true, String: "tx-01"}, transfer.TransactionID)
	assert.Equal(t, sql.NullTime{Valid: true, Time: newTime("2022-04-09T10:00:00Z")}, transfer.ExpiresAt)

	assert.Equal(t, 1, len(l.awarded))
	assert.Equal(t, "144.9", l.awarded[0].String())
}

func TestAddPointsHandler__Existing_Account_All_Time_Active(t *testing.T) {
	l := newLedgerTest(config.LoyaltyConfig{AllTimeActive: true})
	l.accounts["customer-01"] = model.Account{
		ID:         "account-01",
		CustomerID: "customer-01",
		Available:  newDecimal("10"),
		Earned:     newDecimal("10"),
	}

	err := l.add.Handle(newContext(), model.AddPoints{
		CustomerID: "customer-01",
		Value:      newDecimal("5"),
	})
	assert.Equal(t, nil, err)

	assert.Equal(t, 0, len(l.repo.InsertAccountCalls()))
	assert.Equal(t, "15", l.accounts["customer-01"].Available.String())
	assert.Equal(t, "account-01", l.transfers[0].AccountID)
	assert.Equal(t, sql.NullTime{}, l.transfers[0].ExpiresAt)
	assert.Equal(t, sql.NullString{}, l.transfers[0].TransactionID)
}

func TestAddPointsHandler__Negative(t *testing.T) {
	l := newLedgerTest(defaultLoyaltyConfig())

	err := l.add.Handle(newContext(), model.AddPoints{
		CustomerID: "customer-01",
		Value:      newDecimal("-1"),
	})
	assert.Equal(t, model.ErrNegativePoints, err)
	assert.Equal(t, 0, len(l.repo.GetAccountByCustomerCalls()))
	assert.Equal(t, 0, len(l.awarded))
}

func TestAddPointsHandler__Rounds_To_Zero(t *testing.T) {
	l := newLedgerTest(defaultLoyaltyConfig())

	err := l.add.Handle(newContext(), model.AddPoints{
		CustomerID: "customer-01",
		Value:      newDecimal("0.001"),
	})
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(l.repo.GetAccountByCustomerCalls()))
	assert.Equal(t, 0, len(l.transfers))
	assert.Equal(t, 0, len(l.awarded))
}

func TestAddPointsHandler__Insert_Error_No_Metrics(t *testing.T) {
	l := newLedgerTest(defaultLoyaltyConfig())
	insertErr := errors.New("insert error")
	l.repo.InsertTransferFunc = func(ctx context.Context, transfer model.PointsTransfer) error {
		return insertErr
	}

	err := l.add.Handle(newContext(), model.AddPoints{
		CustomerID: "customer-01",
		Value:      newDecimal("5"),
	})
	assert.Equal(t, insertErr, err)
	assert.Equal(t, 0, len(l.repo.AddAvailableCalls()))
	assert.Equal(t, 0, len(l.awarded))
}

//=========================================================================
// Spend Points
//=========================================================================

func TestSpendPointsHandler(t *testing.T) {
	l := newLedgerTest(defaultLoyaltyConfig())
	l.accounts["customer-01"] = model.Account{
		ID:         "account-01",
		CustomerID: "customer-01",
		Available:  newDecimal("100"),
	}

	err := l.spend.Handle(newContext(), model.SpendPoints{
		CustomerID: "customer-01",
		Value:      newDecimal("40"),
		Comment:    "Free delivery",
	})
	assert.Equal(t, nil, err)

	assert.Equal(t, "60", l.accounts["customer-01"].Available.String())
	assert.Equal(t, "40", l.accounts["customer-01"].Used.String())
	assert.Equal(t, model.TransferTypeSpending, l.transfers[0].Type)
	assert.Equal(t, "Free delivery", l.transfers[0].Comment)
	assert.Equal(t, "40", l.spent[0].String())
}

func TestSpendPointsHandler__Not_Enough(t *testing.T) {
	l := newLedgerTest(defaultLoyaltyConfig())
	l.accounts["customer-01"] = model.Account{
		ID:         "account-01",
		CustomerID: "customer-01",
		Available:  newDecimal("30"),
	}

	err := l.spend.Handle(newContext(), model.SpendPoints{
		CustomerID: "customer-01",
		Value:      newDecimal("40"),
	})
	assert.Equal(t, ErrNotEnoughPoints, err)
	assert.Equal(t, "30", l.accounts["customer-01"].Available.String())
	assert.Equal(t, 0, len(l.transfers))
	assert.Equal(t, 0, len(l.spent))
}

func TestSpendPointsHandler__Rounds_To_Zero(t *testing.T) {
	l := newLedgerTest(defaultLoyaltyConfig())

	err := l.spend.Handle(newContext(), model.SpendPoints{
		CustomerID: "customer-01",
		Value:      newDecimal("0.004"),
	})
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(l.repo.SpendAvailableCalls()))
	assert.Equal(t, 0, len(l.transfers))
	assert.Equal(t, 0, len(l.spent))
}

func TestSpendPointsHandler__No_Account(t *testing.T) {
	l := newLedgerTest(defaultLoyaltyConfig())

	err := l.spend.Handle(newContext(), model.SpendPoints{
		CustomerID: "customer-01",
		Value:      newDecimal("1"),
	})
	assert.Equal(t, ErrNotEnoughPoints, err)
	assert.Equal(t, 0, len(l.repo.SpendAvailableCalls()))
}

//=========================================================================
// Ledger
//=========================================================================

func TestLedger_Balance(t *testing.T) {
	l := newLedgerTest(defaultLoyaltyConfig())

	account, err := l.ledger.Balance(newContext(), "customer-01")
	assert.Equal(t, nil, err)
	assert.Equal(t, model.Account{CustomerID: "customer-01"}, account)

	err = l.add.Handle(newContext(), model.AddPoints{CustomerID: "customer-01", Value: newDecimal("12.5")})
	assert.Equal(t, nil, err)

	account, err = l.ledger.Balance(newContext(), "customer-01")
	assert.Equal(t, nil, err)
	assert.Equal(t, "12.5", account.Available.String())

	transfers, err := l.ledger.History(newContext(), "customer-01")
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(transfers))
}

func TestLedger_ExpireTransfers(t *testing.T) {
	l := newLedgerTest(defaultLoyaltyConfig(), WithExpireBatchSize(2))

	for i := 0; i < 3; i++ {
		err := l.add.Handle(newContext(), model.AddPoints{CustomerID: "customer-01", Value: newDecimal("10")})
		assert.Equal(t, nil, err)
	}
	err := l.spend.Handle(newContext(), model.SpendPoints{CustomerID: "customer-01", Value: newDecimal("5")})
	assert.Equal(t, nil, err)

	count, err := l.ledger.ExpireTransfers(newContext(), newTime("2022-04-09T09:59:59Z"))
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, count)

	count, err = l.ledger.ExpireTransfers(newContext(), newTime("2022-04-09T10:00:00Z"))
	assert.Equal(t, nil, err)
	assert.Equal(t, 3, count)
	assert.Equal(t, 3, len(l.repo.FindTransfersToExpireCalls()))

	account := l.accounts["customer-01"]
	assert.Equal(t, "0", account.Available.String())
	assert.Equal(t, "25", account.Expired.String())
	assert.Equal(t, model.TransferStateActive, l.transfers[3].State)

	count, err = l.ledger.ExpireTransfers(newContext(), newTime("2022-05-01T00:00:00Z"))
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, count)
}

func TestLedger_ExpireTransfers__Concurrently_Expired(t *testing.T) {
	l := newLedgerTest(defaultLoyaltyConfig())

	err := l.add.Handle(newContext(), model.AddPoints{CustomerID: "customer-01", Value: newDecimal("10")})
	assert.Equal(t, nil, err)

	l.repo.MarkTransferExpiredFunc = func(ctx context.Context, transferID string) error {
		l.transfers[0].State = model.TransferStateExpired
		return repository.ErrConcurrentUpdate
	}

	count, err := l.ledger.ExpireTransfers(newContext(), newTime("2022-05-01T00:00:00Z"))
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, count)
	assert.Equal(t, 0, len(l.repo.ExpireAvailableCalls()))
}

func TestLedger_RunExpiry__Stops_When_Context_Done(t *testing.T) {
	l := newLedgerTest(defaultLoyaltyConfig())

	err := l.add.Handle(newContext(), model.AddPoints{CustomerID: "customer-01", Value: newDecimal("10")})
	assert.Equal(t, nil, err)

	ledger := NewLedger(newProvider(), l.repo, WithNow(func() time.Time {
		return newTime("2022-05-01T00:00:00Z")
	}))

	ctx, cancel := context.WithCancel(newContext())
	cancel()

	ledger.RunExpiry(ctx, time.Hour)

	assert.Equal(t, 1, len(l.repo.FindTransfersToExpireCalls()))
	assert.Equal(t, model.TransferStateExpired, l.transfers[0].State)
	assert.Equal(t, "10", l.accounts["customer-01"].Expired.String())
}

func TestLedger_RunExpiry__Error_Does_Not_Stop(t *testing.T) {
	l := newLedgerTest(defaultLoyaltyConfig())
	l.repo.FindTransfersToExpireFunc = func(
		ctx context.Context, now time.Time, limit uint64,
	) ([]model.PointsTransfer, error) {
		return nil, errors.New("select error")
	}

	ctx, cancel := context.WithCancel(newContext())
	cancel()

	l.ledger.RunExpiry(ctx, time.Hour)
	assert.Equal(t, 1, len(l.repo.FindTransfersToExpireCalls()))
}
