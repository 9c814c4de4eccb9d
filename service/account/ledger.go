package account

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/QuangTung97/loyalty/config"
	"github.com/QuangTung97/loyalty/model"
	"github.com/QuangTung97/loyalty/pkg/apperr"
	"github.com/QuangTung97/loyalty/pkg/otellib"
	"github.com/QuangTung97/loyalty/repository"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ErrNotEnoughPoints ...
var ErrNotEnoughPoints = apperr.Domain("not_enough_points", "not enough points")

//go:generate moq -out ledger_mocks.go . PointsObserver

// PointsObserver receives the amounts moved by the ledger commands
type PointsObserver interface {
	PointsAwarded(value decimal.Decimal)
	PointsSpent(value decimal.Decimal)
}

type ledgerOptions struct {
	now       func() time.Time
	newID     func() string
	batchSize uint64
}

// Option ...
type Option func(opts *ledgerOptions)

// WithNow ...
func WithNow(now func() time.Time) Option {
	return func(opts *ledgerOptions) {
		opts.now = now
	}
}

// WithNewID ...
func WithNewID(newID func() string) Option {
	return func(opts *ledgerOptions) {
		opts.newID = newID
	}
}

// WithExpireBatchSize ...
func WithExpireBatchSize(size uint64) Option {
	return func(opts *ledgerOptions) {
		opts.batchSize = size
	}
}

func computeOptions(options ...Option) ledgerOptions {
	opts := ledgerOptions{
		now:       time.Now,
		newID:     uuid.NewString,
		batchSize: 100,
	}
	for _, o := range options {
		o(&opts)
	}
	return opts
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

//=========================================================================
// Add Points
//=========================================================================

// AddPointsHandler credits an account, creating it on the first credit
type AddPointsHandler struct {
	provider repository.Provider
	accounts repository.Account
	conf     config.LoyaltyConfig
	observer PointsObserver
	opts     ledgerOptions
}

// NewAddPointsHandler ...
func NewAddPointsHandler(
	provider repository.Provider,
	accounts repository.Account,
	conf config.LoyaltyConfig,
	observer PointsObserver,
	options ...Option,
) *AddPointsHandler {
	return &AddPointsHandler{
		provider: provider,
		accounts: accounts,
		conf:     conf,
		observer: observer,
		opts:     computeOptions(options...),
	}
}

func (h *AddPointsHandler) expiresAt() sql.NullTime {
	if h.conf.AllTimeActive {
		return sql.NullTime{}
	}
	return sql.NullTime{
		Valid: true,
		Time:  h.opts.now().AddDate(0, 0, h.conf.PointsDaysActive),
	}
}

func (h *AddPointsHandler) ensureAccount(ctx context.Context, customerID string) (model.Account, error) {
	account, err := h.accounts.GetAccountByCustomer(ctx, customerID)
	if repository.IsNotFound(err) {
		account = model.Account{
			ID:         h.opts.newID(),
			CustomerID: customerID,
		}
		otellib.Extract(ctx).Info("create points account",
			zap.String("customer_id", customerID), zap.String("account_id", account.ID))
		return account, h.accounts.InsertAccount(ctx, account)
	}
	return account, err
}

// Handle values rounding to zero are ignored
func (h *AddPointsHandler) Handle(ctx context.Context, cmd model.AddPoints) error {
	value := config.RoundPoints(cmd.Value)
	transfer, err := model.NewAddingTransfer(
		cmd.CustomerID, value, cmd.Comment, nullString(cmd.TransactionID), h.expiresAt(),
	)
	if err != nil {
		return err
	}
	if value.IsZero() {
		return nil
	}

	err = h.provider.Transact(ctx, func(ctx context.Context) error {
		account, err := h.ensureAccount(ctx, cmd.CustomerID)
		if err != nil {
			return err
		}

		transfer.ID = h.opts.newID()
		transfer.AccountID = account.ID
		if err := h.accounts.InsertTransfer(ctx, transfer); err != nil {
			return err
		}
		return h.accounts.AddAvailable(ctx, cmd.CustomerID, value)
	})
	if err != nil {
		return err
	}

	h.observer.PointsAwarded(value)
	return nil
}

//=========================================================================
// Spend Points
//=========================================================================

// SpendPointsHandler debits an account, never below zero
type SpendPointsHandler struct {
	provider repository.Provider
	accounts repository.Account
	observer PointsObserver
	opts     ledgerOptions
}

// NewSpendPointsHandler ...
func NewSpendPointsHandler(
	provider repository.Provider,
	accounts repository.Account,
	observer PointsObserver,
	options ...Option,
) *SpendPointsHandler {
	return &SpendPointsHandler{
		provider: provider,
		accounts: accounts,
		observer: observer,
		opts:     computeOptions(options...),
	}
}

// Handle returns ErrNotEnoughPoints when the available balance is lower than the value,
// values rounding to zero are ignored
func (h *SpendPointsHandler) Handle(ctx context.Context, cmd model.SpendPoints) error {
	value := config.RoundPoints(cmd.Value)
	transfer, err := model.NewSpendingTransfer(cmd.CustomerID, value, cmd.Comment)
	if err != nil {
		return err
	}
	if value.IsZero() {
		return nil
	}

	err = h.provider.Transact(ctx, func(ctx context.Context) error {
		account, err := h.accounts.GetAccountByCustomer(ctx, cmd.CustomerID)
		if repository.IsNotFound(err) {
			return ErrNotEnoughPoints
		}
		if err != nil {
			return err
		}

		err = h.accounts.SpendAvailable(ctx, cmd.CustomerID, value)
		if errors.Is(err, repository.ErrConcurrentUpdate) {
			return ErrNotEnoughPoints
		}
		if err != nil {
			return err
		}

		transfer.ID = h.opts.newID()
		transfer.AccountID = account.ID
		return h.accounts.InsertTransfer(ctx, transfer)
	})
	if err != nil {
		return err
	}

	h.observer.PointsSpent(value)
	return nil
}

//=========================================================================
// Ledger Queries and Expiry
//=========================================================================

// Ledger reads balances and expires old points
type Ledger struct {
	provider repository.Provider
	accounts repository.Account
	opts     ledgerOptions
}

// NewLedger ...
func NewLedger(provider repository.Provider, accounts repository.Account, options ...Option) *Ledger {
	return &Ledger{
		provider: provider,
		accounts: accounts,
		opts:     computeOptions(options...),
	}
}

// Balance returns zero totals for a customer without an account
func (l *Ledger) Balance(ctx context.Context, customerID string) (model.Account, error) {
	account, err := l.accounts.GetAccountByCustomer(l.provider.Readonly(ctx), customerID)
	if repository.IsNotFound(err) {
		return model.Account{CustomerID: customerID}, nil
	}
	return account, err
}

// History lists the transfers of a customer, oldest first
func (l *Ledger) History(ctx context.Context, customerID string) ([]model.PointsTransfer, error) {
	return l.accounts.FindTransfersByCustomer(l.provider.Readonly(ctx), customerID)
}

func (l *Ledger) expireTransfer(ctx context.Context, transfer model.PointsTransfer) (bool, error) {
	expired := false
	err := l.provider.Transact(ctx, func(ctx context.Context) error {
		err := l.accounts.MarkTransferExpired(ctx, transfer.ID)
		if errors.Is(err, repository.ErrConcurrentUpdate) {
			return nil
		}
		if err != nil {
			return err
		}
		expired = true
		return l.accounts.ExpireAvailable(ctx, transfer.CustomerID, transfer.Value)
	})
	return expired, err
}

// ExpireTransfers expires every active adding transfer with expires_at <= now,
// returns the number of expired transfers
func (l *Ledger) ExpireTransfers(ctx context.Context, now time.Time) (int, error) {
	count := 0
	for {
		transfers, err := l.accounts.FindTransfersToExpire(l.provider.Readonly(ctx), now, l.opts.batchSize)
		if err != nil {
			return count, err
		}

		for _, transfer := range transfers {
			expired, err := l.expireTransfer(ctx, transfer)
			if err != nil {
				return count, err
			}
			if expired {
				count++
			}
		}

		if uint64(len(transfers)) < l.opts.batchSize {
			break
		}
	}

	otellib.Extract(ctx).Info("expired points transfers", zap.Int("count", count))
	return count, nil
}

// RunExpiry expires transfers right away and then every interval until ctx is done.
// A failed pass is logged, the next tick retries.
func (l *Ledger) RunExpiry(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if _, err := l.ExpireTransfers(ctx, l.opts.now()); err != nil {
			otellib.Extract(ctx).Error("expire points transfers", zap.Error(err))
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
