//go:build integration

package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/QuangTung97/loyalty/model"
	"github.com/QuangTung97/loyalty/pkg/integration"
	"github.com/stretchr/testify/assert"
)

type accountTest struct {
	provider Provider
	repo     Account
}

func newAccountTest() *accountTest {
	tc := integration.NewTestCase()
	tc.Truncate("account", "points_transfer")
	return &accountTest{
		provider: NewProvider(tc.DB),
		repo:     NewAccount(),
	}
}

func (a *accountTest) transact(fn func(ctx context.Context) error) error {
	return a.provider.Transact(newContext(), fn)
}

func TestAccount_Balance_Updates(t *testing.T) {
	a := newAccountTest()

	err := a.transact(func(ctx context.Context) error {
		return a.repo.InsertAccount(ctx, model.Account{ID: "account-01", CustomerID: "customer-01"})
	})
	assert.Equal(t, nil, err)

	err = a.transact(func(ctx context.Context) error {
		return a.repo.AddAvailable(ctx, "customer-01", newDecimal("100.5"))
	})
	assert.Equal(t, nil, err)

	err = a.transact(func(ctx context.Context) error {
		return a.repo.SpendAvailable(ctx, "customer-01", newDecimal("40"))
	})
	assert.Equal(t, nil, err)

	err = a.transact(func(ctx context.Context) error {
		return a.repo.SpendAvailable(ctx, "customer-01", newDecimal("70"))
	})
	assert.Equal(t, ErrConcurrentUpdate, err)

	err = a.transact(func(ctx context.Context) error {
		return a.repo.ExpireAvailable(ctx, "customer-01", newDecimal("80"))
	})
	assert.Equal(t, nil, err)

	account, err := a.repo.GetAccountByCustomer(a.provider.Readonly(newContext()), "customer-01")
	assert.Equal(t, nil, err)
	assert.Equal(t, "account-01", account.ID)
	assert.Equal(t, "0", account.Available.String())
	assert.Equal(t, "100.5", account.Earned.String())
	assert.Equal(t, "40", account.Used.String())
	assert.Equal(t, "60.5", account.Expired.String())

	err = a.transact(func(ctx context.Context) error {
		return a.repo.AddAvailable(ctx, "customer-02", newDecimal("1"))
	})
	assert.Equal(t, ErrConcurrentUpdate, err)

	err = a.transact(func(ctx context.Context) error {
		return a.repo.InsertAccount(ctx, model.Account{ID: "account-02", CustomerID: "customer-01"})
	})
	assert.Equal(t, true, IsDuplicate(err))
}

func TestAccount_Transfers_To_Expire(t *testing.T) {
	a := newAccountTest()

	transfers := []model.PointsTransfer{
		{
			ID: "transfer-01", AccountID: "account-01", CustomerID: "customer-01",
			Type: model.TransferTypeAdding, State: model.TransferStateActive,
			Value: newDecimal("10"), Comment: "first",
			TransactionID: sql.NullString{Valid: true, String: "transaction-01"},
			ExpiresAt:     sql.NullTime{Valid: true, Time: newTime("2022-05-01T00:00:00Z")},
		},
		{
			ID: "transfer-02", AccountID: "account-01", CustomerID: "customer-01",
			Type: model.TransferTypeAdding, State: model.TransferStateActive,
			Value: newDecimal("20"), Comment: "never expires",
		},
		{
			ID: "transfer-03", AccountID: "account-01", CustomerID: "customer-01",
			Type: model.TransferTypeSpending, State: model.TransferStateActive,
			Value: newDecimal("5"), Comment: "spent",
			ExpiresAt: sql.NullTime{Valid: true, Time: newTime("2022-04-01T00:00:00Z")},
		},
		{
			ID: "transfer-04", AccountID: "account-01", CustomerID: "customer-01",
			Type: model.TransferTypeAdding, State: model.TransferStateActive,
			Value: newDecimal("30"), Comment: "later",
			ExpiresAt: sql.NullTime{Valid: true, Time: newTime("2022-07-01T00:00:00Z")},
		},
	}
	err := a.transact(func(ctx context.Context) error {
		for _, transfer := range transfers {
			if err := a.repo.InsertTransfer(ctx, transfer); err != nil {
				return err
			}
		}
		return nil
	})
	assert.Equal(t, nil, err)

	ctx := a.provider.Readonly(newContext())

	expiring, err := a.repo.FindTransfersToExpire(ctx, newTime("2022-06-01T00:00:00Z"), 100)
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(expiring))
	assert.Equal(t, "transfer-01", expiring[0].ID)
	assert.Equal(t, "transaction-01", expiring[0].TransactionID.String)

	err = a.transact(func(ctx context.Context) error {
		return a.repo.MarkTransferExpired(ctx, "transfer-01")
	})
	assert.Equal(t, nil, err)

	err = a.transact(func(ctx context.Context) error {
		return a.repo.MarkTransferExpired(ctx, "transfer-01")
	})
	assert.Equal(t, ErrConcurrentUpdate, err)

	expiring, err = a.repo.FindTransfersToExpire(ctx, newTime("2022-06-01T00:00:00Z"), 100)
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(expiring))

	history, err := a.repo.FindTransfersByCustomer(ctx, "customer-01")
	assert.Equal(t, nil, err)
	assert.Equal(t, 4, len(history))
	assert.Equal(t, model.TransferStateExpired, findTransfer(history, "transfer-01").State)
	assert.Equal(t, false, findTransfer(history, "transfer-02").ExpiresAt.Valid)
}

func findTransfer(transfers []model.PointsTransfer, id string) model.PointsTransfer {
	for _, transfer := range transfers {
		if transfer.ID == id {
			return transfer
		}
	}
	return model.PointsTransfer{}
}
