package repository

import (
	"context"

	"github.com/QuangTung97/loyalty/model"
)

// TransactionRepo ...
type TransactionRepo interface {
	InsertTransaction(ctx context.Context, transaction model.Transaction) error
	GetTransaction(ctx context.Context, id string) (model.Transaction, error)
	AssignCustomer(ctx context.Context, transactionID string, customerID string) error
	CountCustomerTransactions(ctx context.Context, customerID string) (int64, error)
}

type transactionImpl struct {
}

// NewTransactionRepo ...
func NewTransactionRepo() TransactionRepo {
	return &transactionImpl{}
}

// InsertTransaction inserts the transaction with its line items
func (r *transactionImpl) InsertTransaction(ctx context.Context, transaction model.Transaction) error {
	query := `
INSERT INTO loyalty_transaction (
	id, document_number, document_type, purchase_date, purchase_place, pos_id, customer_id
) VALUES (
	:id, :document_number, :document_type, :purchase_date, :purchase_place, :pos_id, :customer_id
)
`
	tx := GetTx(ctx)
	_, err := tx.NamedExecContext(ctx, query, transaction)
	if err != nil {
		return err
	}

	itemQuery := `
INSERT INTO transaction_item (
	transaction_id, line_no, sku, name, quantity, gross_value, category, maker, labels
) VALUES (
	:transaction_id, :line_no, :sku, :name, :quantity, :gross_value, :category, :maker, :labels
)
`
	for i, item := range transaction.Items {
		item.TransactionID = transaction.ID
		item.LineNo = i + 1
		_, err := tx.NamedExecContext(ctx, itemQuery, item)
		if err != nil {
			return err
		}
	}
	return nil
}

// GetTransaction returns sql.ErrNoRows when not found
func (r *transactionImpl) GetTransaction(ctx context.Context, id string) (model.Transaction, error) {
	query := `
SELECT id, document_number, document_type, purchase_date, purchase_place, pos_id, customer_id,
	created_at, updated_at
FROM loyalty_transaction WHERE id = ?
`
	var result model.Transaction
	err := GetReadonly(ctx).GetContext(ctx, &result, query, id)
	if err != nil {
		return model.Transaction{}, err
	}

	itemQuery := `
SELECT transaction_id, line_no, sku, name, quantity, gross_value, category, maker, labels
FROM transaction_item WHERE transaction_id = ? ORDER BY line_no
`
	err = GetReadonly(ctx).SelectContext(ctx, &result.Items, itemQuery, id)
	return result, err
}

// AssignCustomer links the customer only when the transaction is not linked yet,
// returns ErrConcurrentUpdate otherwise
func (r *transactionImpl) AssignCustomer(ctx context.Context, transactionID string, customerID string) error {
	query := `UPDATE loyalty_transaction SET customer_id = ? WHERE id = ? AND customer_id IS NULL`
	result, err := GetTx(ctx).ExecContext(ctx, query, customerID, transactionID)
	if err != nil {
		return err
	}
	return checkAffected(result)
}

// CountCustomerTransactions ...
func (r *transactionImpl) CountCustomerTransactions(ctx context.Context, customerID string) (int64, error) {
	query := `SELECT COUNT(*) FROM loyalty_transaction WHERE customer_id = ?`
	var count int64
	err := GetReadonly(ctx).GetContext(ctx, &count, query, customerID)
	return count, err
}
