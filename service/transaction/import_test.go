package transaction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/QuangTung97/loyalty/model"
	"github.com/stretchr/testify/assert"
)

func TestLoadImportFile(t *testing.T) {
	file, err := LoadImportFile("../../fixtures/transactions.yml")
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(file.Transactions))

	first := file.Transactions[0]
	assert.Equal(t, "123", first.DocumentNumber)
	assert.Equal(t, model.DocumentTypeSell, first.DocumentType)
	assert.Equal(t, time.Date(2022, 3, 10, 10, 0, 0, 0, time.UTC), first.PurchaseDate.UTC())
	assert.Equal(t, "0000", first.CustomerData.LoyaltyCardNumber)
	assert.Equal(t, 3, len(first.Items))
	assert.Equal(t, "20", first.Items[2].GrossValue.String())
	assert.Equal(t, model.Labels{{Key: "category", Value: "shoes"}}, first.Items[2].Labels)

	second := file.Transactions[1]
	assert.Equal(t, "pos-outlet", second.PosID)
	assert.Equal(t, "+48456456000", second.CustomerData.Phone)
}

func TestLoadImportFile__Not_Found(t *testing.T) {
	_, err := LoadImportFile("not-found.yml")
	assert.NotEqual(t, nil, err)
}

func TestParseImportFile__Invalid(t *testing.T) {
	_, err := ParseImportFile([]byte("transactions: 12"))
	assert.NotEqual(t, nil, err)
}

func TestImport__Continues_After_Failure(t *testing.T) {
	registerErr := errors.New("register error")
	s := &IServiceMock{
		RegisterFunc: func(ctx context.Context, input RegisterInput) (string, error) {
			if input.DocumentNumber == "DOC-01" {
				return "", registerErr
			}
			return "tx-" + input.DocumentNumber, nil
		},
	}

	file := ImportFile{
		Transactions: []RegisterInput{
			{DocumentNumber: "DOC-01"},
			{DocumentNumber: "DOC-02"},
		},
	}

	results := Import(newContext(), s, file)
	assert.Equal(t, []ImportResult{
		{DocumentNumber: "DOC-01", Err: registerErr},
		{DocumentNumber: "DOC-02", TransactionID: "tx-DOC-02"},
	}, results)
	assert.Equal(t, 2, len(s.RegisterCalls()))
}
