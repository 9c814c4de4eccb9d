package model

import (
	"database/sql"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// TransferType ...
type TransferType int

const (
	// TransferTypeAdding ...
	TransferTypeAdding TransferType = 1

	// TransferTypeSpending ...
	TransferTypeSpending TransferType = 2
)

// TransferState ...
type TransferState int

const (
	// TransferStateActive ...
	TransferStateActive TransferState = 1

	// TransferStateExpired ...
	TransferStateExpired TransferState = 2

	// TransferStateCanceled ...
	TransferStateCanceled TransferState = 3
)

// ErrNegativePoints ...
var ErrNegativePoints = errors.New("points value must not be negative")

// Account is the points balance of a customer
type Account struct {
	ID         string          `db:"id"`
	CustomerID string          `db:"customer_id"`
	Available  decimal.Decimal `db:"available"`
	Earned     decimal.Decimal `db:"earned"`
	Used       decimal.Decimal `db:"used"`
	Expired    decimal.Decimal `db:"expired"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// PointsTransfer is one entry in the points ledger of an account
type PointsTransfer struct {
	ID            string          `db:"id"`
	AccountID     string          `db:"account_id"`
	CustomerID    string          `db:"customer_id"`
	Type          TransferType    `db:"type"`
	State         TransferState   `db:"state"`
	Value         decimal.Decimal `db:"value"`
	Comment       string          `db:"comment"`
	TransactionID sql.NullString  `db:"transaction_id"`
	ExpiresAt     sql.NullTime    `db:"expires_at"`

	CreatedAt time.Time `db:"created_at"`
}

// NewAddingTransfer expiresAt is left null when points never expire
func NewAddingTransfer(
	customerID string, value decimal.Decimal, comment string,
	transactionID sql.NullString, expiresAt sql.NullTime,
) (PointsTransfer, error) {
	if value.IsNegative() {
		return PointsTransfer{}, ErrNegativePoints
	}
	return PointsTransfer{
		CustomerID:    customerID,
		Type:          TransferTypeAdding,
		State:         TransferStateActive,
		Value:         value,
		Comment:       comment,
		TransactionID: transactionID,
		ExpiresAt:     expiresAt,
	}, nil
}

// NewSpendingTransfer ...
func NewSpendingTransfer(customerID string, value decimal.Decimal, comment string) (PointsTransfer, error) {
	if value.IsNegative() {
		return PointsTransfer{}, ErrNegativePoints
	}
	return PointsTransfer{
		CustomerID: customerID,
		Type:       TransferTypeSpending,
		State:      TransferStateActive,
		Value:      value,
		Comment:    comment,
	}, nil
}
