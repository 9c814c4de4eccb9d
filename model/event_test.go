package model

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseAggregateType(t *testing.T) {
	result, ok := ParseAggregateType("campaign")
	assert.Equal(t, true, ok)
	assert.Equal(t, AggregateTypeCampaign, result)

	_, ok = ParseAggregateType("order")
	assert.Equal(t, false, ok)
}

func TestCampaignBought_Aggregate_And_JSON(t *testing.T) {
	event := CampaignBought{
		PurchaseID:   "purchase-01",
		CampaignID:   "campaign-01",
		CampaignName: "Free delivery",
		CustomerID:   "customer-01",
		Coupon:       "FREE-001",
		CostInPoints: decimal.NewFromInt(100),
	}

	aggregateType, id := event.Aggregate()
	assert.Equal(t, AggregateTypeCampaign, aggregateType)
	assert.Equal(t, "campaign-01", id)

	data, err := json.Marshal(event)
	assert.Equal(t, nil, err)
	assert.Equal(t,
		`{"purchaseId":"purchase-01","campaignId":"campaign-01","campaignName":"Free delivery",`+
			`"customerId":"customer-01","coupon":"FREE-001","costInPoints":"100"}`,
		string(data))
}
