package repository

import (
	"context"
	"time"

	"github.com/QuangTung97/loyalty/model"
	"github.com/shopspring/decimal"
)

// Account ...
type Account interface {
	GetAccountByCustomer(ctx context.Context, customerID string) (model.Account, error)
	InsertAccount(ctx context.Context, account model.Account) error

	AddAvailable(ctx context.Context, customerID string, value decimal.Decimal) error
	SpendAvailable(ctx context.Context, customerID string, value decimal.Decimal) error
	ExpireAvailable(ctx context.Context, customerID string, value decimal.Decimal) error

	InsertTransfer(ctx context.Context, transfer model.PointsTransfer) error
	FindTransfersToExpire(ctx context.Context, now time.Time, limit uint64) ([]model.PointsTransfer, error)
	MarkTransferExpired(ctx context.Context, transferID string) error
	FindTransfersByCustomer(ctx context.Context, customerID string) ([]model.PointsTransfer, error)
}

type accountImpl struct {
}

// NewAccount ...
func NewAccount() Account {
	return &accountImpl{}
}

// GetAccountByCustomer returns sql.ErrNoRows when the customer has no account
func (r *accountImpl) GetAccountByCustomer(ctx context.Context, customerID string) (model.Account, error) {
	query := `
SELECT id, customer_id, available, earned, used, expired, created_at, updated_at
FROM account WHERE customer_id = ?
`
	var result model.Account
	err := GetReadonly(ctx).GetContext(ctx, &result, query, customerID)
	return result, err
}

// InsertAccount ...
func (r *accountImpl) InsertAccount(ctx context.Context, account model.Account) error {
	query := `
INSERT INTO account (id, customer_id, available, earned, used, expired)
VALUES (:id, :customer_id, :available, :earned, :used, :expired)
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, account)
	return err
}

// AddAvailable ...
func (r *accountImpl) AddAvailable(ctx context.Context, customerID string, value decimal.Decimal) error {
	query := `UPDATE account SET available = available + ?, earned = earned + ? WHERE customer_id = ?`
	result, err := GetTx(ctx).ExecContext(ctx, query, value, value, customerID)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

// SpendAvailable decrements only when the balance is enough, returns ErrConcurrentUpdate otherwise
func (r *accountImpl) SpendAvailable(ctx context.Context, customerID string, value decimal.Decimal) error {
	query := `
UPDATE account SET available = available - ?, used = used + ?
WHERE customer_id = ? AND available >= ?
`
	result, err := GetTx(ctx).ExecContext(ctx, query, value, value, customerID, value)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

// ExpireAvailable never makes the balance negative
func (r *accountImpl) ExpireAvailable(ctx context.Context, customerID string, value decimal.Decimal) error {
	query := `
UPDATE account SET
	expired = expired + LEAST(available, ?),
	available = available - LEAST(available, ?)
WHERE customer_id = ?
`
	_, err := GetTx(ctx).ExecContext(ctx, query, value, value, customerID)
	return err
}

// InsertTransfer ...
func (r *accountImpl) InsertTransfer(ctx context.Context, transfer model.PointsTransfer) error {
	query := `
INSERT INTO points_transfer (
	id, account_id, customer_id, type, state, value, comment, transaction_id, expires_at
) VALUES (
	:id, :account_id, :customer_id, :type, :state, :value, :comment, :transaction_id, :expires_at
)
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, transfer)
	return err
}

const transferColumns = `id, account_id, customer_id, type, state, value, comment,
	transaction_id, expires_at, created_at`

// FindTransfersToExpire ...
func (r *accountImpl) FindTransfersToExpire(
	ctx context.Context, now time.Time, limit uint64,
) ([]model.PointsTransfer, error) {
	query := `SELECT ` + transferColumns + ` FROM points_transfer
WHERE state = ? AND type = ? AND expires_at IS NOT NULL AND expires_at <= ?
ORDER BY expires_at, id LIMIT ?`
	var result []model.PointsTransfer
	err := GetReadonly(ctx).SelectContext(ctx, &result, query,
		model.TransferStateActive, model.TransferTypeAdding, now, limit)
	return result, err
}

// MarkTransferExpired returns ErrConcurrentUpdate when the transfer is no longer active
func (r *accountImpl) MarkTransferExpired(ctx context.Context, transferID string) error {
	query := `UPDATE points_transfer SET state = ? WHERE id = ? AND state = ?`
	result, err := GetTx(ctx).ExecContext(ctx, query,
		model.TransferStateExpired, transferID, model.TransferStateActive)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

// FindTransfersByCustomer ...
func (r *accountImpl) FindTransfersByCustomer(
	ctx context.Context, customerID string,
) ([]model.PointsTransfer, error) {
	query := `SELECT ` + transferColumns + ` FROM points_transfer WHERE customer_id = ? ORDER BY created_at, id`
	var result []model.PointsTransfer
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, customerID)
	return result, err
}
