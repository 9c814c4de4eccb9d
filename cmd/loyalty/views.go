package main

import (
	"time"

	"github.com/QuangTung97/loyalty/model"
	"github.com/shopspring/decimal"
)

type accountView struct {
	CustomerID string          `json:"customerId"`
	Available  decimal.Decimal `json:"available"`
	Earned     decimal.Decimal `json:"earned"`
	Used       decimal.Decimal `json:"used"`
	Expired    decimal.Decimal `json:"expired"`
}

func newAccountView(a model.Account) accountView {
	return accountView{
		CustomerID: a.CustomerID,
		Available:  a.Available,
		Earned:     a.Earned,
		Used:       a.Used,
		Expired:    a.Expired,
	}
}

type transferView struct {
	ID            string          `json:"id"`
	Type          string          `json:"type"`
	State         string          `json:"state"`
	Value         decimal.Decimal `json:"value"`
	Comment       string          `json:"comment,omitempty"`
	TransactionID string          `json:"transactionId,omitempty"`
	ExpiresAt     *time.Time      `json:"expiresAt,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

var transferTypeNames = map[model.TransferType]string{
	model.TransferTypeAdding:   "adding",
	model.TransferTypeSpending: "spending",
}

var transferStateNames = map[model.TransferState]string{
	model.TransferStateActive:   "active",
	model.TransferStateExpired:  "expired",
	model.TransferStateCanceled: "canceled",
}

func newTransferViews(transfers []model.PointsTransfer) []transferView {
	result := make([]transferView, 0, len(transfers))
	for _, t := range transfers {
		v := transferView{
			ID:            t.ID,
			Type:          transferTypeNames[t.Type],
			State:         transferStateNames[t.State],
			Value:         t.Value,
			Comment:       t.Comment,
			TransactionID: t.TransactionID.String,
			CreatedAt:     t.CreatedAt,
		}
		if t.ExpiresAt.Valid {
			expiresAt := t.ExpiresAt.Time
			v.ExpiresAt = &expiresAt
		}
		result = append(result, v)
	}
	return result
}

type campaignView struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Reward       string           `json:"reward"`
	CostInPoints decimal.Decimal  `json:"costInPoints"`
	PointValue   *decimal.Decimal `json:"pointValue,omitempty"`
}

func newCampaignViews(campaigns []model.Campaign) []campaignView {
	result := make([]campaignView, 0, len(campaigns))
	for _, c := range campaigns {
		v := campaignView{
			ID:           c.ID,
			Name:         c.Name,
			Reward:       c.Reward.String(),
			CostInPoints: c.CostInPoints,
		}
		if c.PointValue.Valid {
			pointValue := c.PointValue.Decimal
			v.PointValue = &pointValue
		}
		result = append(result, v)
	}
	return result
}

type eventView struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Data      string    `json:"data"`
	CreatedAt time.Time `json:"createdAt"`
}

func newEventViews(events []model.Event) []eventView {
	result := make([]eventView, 0, len(events))
	for _, e := range events {
		result = append(result, eventView{
			ID:        e.ID,
			Name:      e.Name,
			Data:      e.Data,
			CreatedAt: e.CreatedAt,
		})
	}
	return result
}
