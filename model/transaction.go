package model

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction ...
type Transaction struct {
	ID             string         `db:"id"`
	DocumentNumber string         `db:"document_number"`
	DocumentType   DocumentType   `db:"document_type"`
	PurchaseDate   time.Time      `db:"purchase_date"`
	PurchasePlace  string         `db:"purchase_place"`
	PosID          sql.NullString `db:"pos_id"`
	CustomerID     sql.NullString `db:"customer_id"`

	Items []TransactionItem `db:"-"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// TransactionItem ...
type TransactionItem struct {
	TransactionID string          `db:"transaction_id"`
	LineNo        int             `db:"line_no"`
	SKU           string          `db:"sku"`
	Name          string          `db:"name"`
	Quantity      decimal.Decimal `db:"quantity"`
	GrossValue    decimal.Decimal `db:"gross_value"`
	Category      string          `db:"category"`
	Maker         string          `db:"maker"`
	Labels        Labels          `db:"labels"`
}

// DocumentType ...
type DocumentType int

const (
	// DocumentTypeSell ...
	DocumentTypeSell DocumentType = 1

	// DocumentTypeReturn ...
	DocumentTypeReturn DocumentType = 2
)

// IsReturn ...
func (t Transaction) IsReturn() bool {
	return t.DocumentType == DocumentTypeReturn
}

// GrossValue sums gross values of all line items
func (t Transaction) GrossValue() decimal.Decimal {
	total := decimal.Zero
	for _, item := range t.Items {
		total = total.Add(item.GrossValue)
	}
	return total
}

// GrossValueWithoutDeliveryCosts skips line items whose sku is a delivery sku
func (t Transaction) GrossValueWithoutDeliveryCosts(deliverySKUs []string) decimal.Decimal {
	skus := StringList(deliverySKUs)
	total := decimal.Zero
	for _, item := range t.Items {
		if skus.Contains(item.SKU) {
			continue
		}
		total = total.Add(item.GrossValue)
	}
	return total
}

// AmountExcludedForLevel sums line items that must not count towards level recalculation
func (t Transaction) AmountExcludedForLevel(excludedSKUs []string, excludedLabels Labels) decimal.Decimal {
	skus := StringList(excludedSKUs)
	total := decimal.Zero
	for _, item := range t.Items {
		if skus.Contains(item.SKU) || item.Labels.ContainsAny(excludedLabels) {
			total = total.Add(item.GrossValue)
		}
	}
	return total
}
