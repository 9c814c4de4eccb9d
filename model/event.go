package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Event is a row of the event log, one per published system event
type Event struct {
	ID   uint64 `db:"id"`
	Name string `db:"name"`
	Data string `db:"data"`

	AggregateType AggregateType `db:"aggregate_type"`
	AggregateID   string        `db:"aggregate_id"`

	CreatedAt time.Time `db:"created_at"`
}

// AggregateType ...
type AggregateType int

const (
	// AggregateTypeTransaction ...
	AggregateTypeTransaction AggregateType = 1

	// AggregateTypeCustomer ...
	AggregateTypeCustomer AggregateType = 2

	// AggregateTypeCampaign ...
	AggregateTypeCampaign AggregateType = 3
)

var aggregateTypeNames = map[string]AggregateType{
	"transaction": AggregateTypeTransaction,
	"customer":    AggregateTypeCustomer,
	"campaign":    AggregateTypeCampaign,
}

// ParseAggregateType ...
func ParseAggregateType(s string) (AggregateType, bool) {
	t, ok := aggregateTypeNames[s]
	return t, ok
}

// Aggregate is implemented by events that belong to one aggregate in the event log
type Aggregate interface {
	Aggregate() (AggregateType, string)
}

//=========================================================================
// System Events
//=========================================================================

// TransactionRegistered ...
type TransactionRegistered struct {
	TransactionID string       `json:"transactionId"`
	CustomerData  CustomerData `json:"customerData"`
}

// CustomerAssignedToTransaction ...
type CustomerAssignedToTransaction struct {
	TransactionID                  string          `json:"transactionId"`
	CustomerID                     string          `json:"customerId"`
	GrossValue                     decimal.Decimal `json:"grossValue"`
	GrossValueWithoutDeliveryCosts decimal.Decimal `json:"grossValueWithoutDeliveryCosts"`
	AmountExcludedForLevel         decimal.Decimal `json:"amountExcludedForLevel"`
	TransactionsCount              int64           `json:"transactionsCount"`
	IsReturn                       bool            `json:"isReturn"`
}

// CustomerFirstTransaction ...
type CustomerFirstTransaction struct {
	TransactionID string `json:"transactionId"`
	CustomerID    string `json:"customerId"`
}

// CustomerUpdated ...
type CustomerUpdated struct {
	CustomerID string `json:"customerId"`
}

// CampaignBought ...
type CampaignBought struct {
	PurchaseID   string          `json:"purchaseId"`
	CampaignID   string          `json:"campaignId"`
	CampaignName string          `json:"campaignName"`
	CustomerID   string          `json:"customerId"`
	Coupon       string          `json:"coupon"`
	CostInPoints decimal.Decimal `json:"costInPoints"`
}

// EventName ...
func (TransactionRegistered) EventName() string { return "loyalty.transaction.registered" }

// EventName ...
func (CustomerAssignedToTransaction) EventName() string {
	return "loyalty.transaction.customer_assigned"
}

// EventName ...
func (CustomerFirstTransaction) EventName() string { return "loyalty.customer.first_transaction" }

// EventName ...
func (CustomerUpdated) EventName() string { return "loyalty.customer.updated" }

// EventName ...
func (CampaignBought) EventName() string { return "loyalty.campaign.bought" }

// Aggregate ...
func (e TransactionRegistered) Aggregate() (AggregateType, string) {
	return AggregateTypeTransaction, e.TransactionID
}

// Aggregate ...
func (e CustomerAssignedToTransaction) Aggregate() (AggregateType, string) {
	return AggregateTypeTransaction, e.TransactionID
}

// Aggregate ...
func (e CustomerFirstTransaction) Aggregate() (AggregateType, string) {
	return AggregateTypeCustomer, e.CustomerID
}

// Aggregate ...
func (e CustomerUpdated) Aggregate() (AggregateType, string) {
	return AggregateTypeCustomer, e.CustomerID
}

// Aggregate ...
func (e CampaignBought) Aggregate() (AggregateType, string) {
	return AggregateTypeCampaign, e.CampaignID
}

//=========================================================================
// Commands
//=========================================================================

// AssignCustomerToTransaction ...
type AssignCustomerToTransaction struct {
	TransactionID string `validate:"required"`
	CustomerID    string `validate:"required"`
}

// AddPoints ...
type AddPoints struct {
	CustomerID    string          `validate:"required"`
	Value         decimal.Decimal `validate:"-"`
	Comment       string
	TransactionID string
}

// SpendPoints ...
type SpendPoints struct {
	CustomerID string          `validate:"required"`
	Value      decimal.Decimal `validate:"-"`
	Comment    string
}

// BuyCampaign Points is the amount converted by a cashback campaign, other campaigns cost CostInPoints
type BuyCampaign struct {
	PurchaseID string          `validate:"required"`
	CampaignID string          `validate:"required"`
	CustomerID string          `validate:"required"`
	Points     decimal.Decimal `validate:"-"`
	Coupon     string
}

// UseCustomEventEarningRule ...
type UseCustomEventEarningRule struct {
	EarningRuleID string `validate:"required"`
	CustomerID    string `validate:"required"`
	PosID         string
}

// ChangeCouponUsage ...
type ChangeCouponUsage struct {
	CampaignID string `validate:"required"`
	CustomerID string `validate:"required"`
	Coupon     string `validate:"required"`
	Used       bool
}

// CommandName ...
func (AssignCustomerToTransaction) CommandName() string { return "assign_customer_to_transaction" }

// CommandName ...
func (AddPoints) CommandName() string { return "add_points" }

// CommandName ...
func (SpendPoints) CommandName() string { return "spend_points" }

// CommandName ...
func (BuyCampaign) CommandName() string { return "buy_campaign" }

// CommandName ...
func (UseCustomEventEarningRule) CommandName() string { return "use_custom_event_earning_rule" }

// CommandName ...
func (ChangeCouponUsage) CommandName() string { return "change_coupon_usage" }
