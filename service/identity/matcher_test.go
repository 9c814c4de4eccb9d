package identity

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/QuangTung97/loyalty/model"
	"github.com/QuangTung97/loyalty/repository"
	"github.com/stretchr/testify/assert"
)

func newContext() context.Context {
	return context.Background()
}

func newProvider() *repository.ProviderMock {
	return &repository.ProviderMock{
		ReadonlyFunc: func(ctx context.Context) context.Context {
			return ctx
		},
		TransactFunc: func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		},
	}
}

type matcherTest struct {
	repo    *repository.CustomerMock
	matcher *Matcher
}

func newMatcherTest() *matcherTest {
	repo := &repository.CustomerMock{
		FindIDByLoyaltyCardFunc: func(ctx context.Context, cardNumber string) (string, error) {
			return "", sql.ErrNoRows
		},
		FindIDByEmailFunc: func(ctx context.Context, email string) (string, error) {
			return "", sql.ErrNoRows
		},
		FindIDByPhoneFunc: func(ctx context.Context, phone string) (string, error) {
			return "", sql.ErrNoRows
		},
	}
	return &matcherTest{
		repo:    repo,
		matcher: NewMatcher(newProvider(), repo),
	}
}

func TestMatcher_GetID__Loyalty_Card_First(t *testing.T) {
	m := newMatcherTest()
	m.repo.FindIDByLoyaltyCardFunc = func(ctx context.Context, cardNumber string) (string, error) {
		return "customer-card", nil
	}
	m.repo.FindIDByEmailFunc = func(ctx context.Context, email string) (string, error) {
		return "customer-email", nil
	}

	id, found, err := m.matcher.GetID(newContext(), model.CustomerData{
		Email:             "user@example.com",
		LoyaltyCardNumber: " CARD-01 ",
	})
	assert.Equal(t, nil, err)
	assert.Equal(t, true, found)
	assert.Equal(t, "customer-card", id)

	assert.Equal(t, 1, len(m.repo.FindIDByLoyaltyCardCalls()))
	assert.Equal(t, "CARD-01", m.repo.FindIDByLoyaltyCardCalls()[0].CardNumber)
	assert.Equal(t, 0, len(m.repo.FindIDByEmailCalls()))
}

func TestMatcher_GetID__Falls_Back_To_Email_Then_Phone(t *testing.T) {
	m := newMatcherTest()
	m.repo.FindIDByPhoneFunc = func(ctx context.Context, phone string) (string, error) {
		return "customer-phone", nil
	}

	id, found, err := m.matcher.GetID(newContext(), model.CustomerData{
		Email:             "User@Example.com",
		Phone:             "+48123",
		LoyaltyCardNumber: "CARD-01",
	})
	assert.Equal(t, nil, err)
	assert.Equal(t, true, found)
	assert.Equal(t, "customer-phone", id)

	assert.Equal(t, "user@example.com", m.repo.FindIDByEmailCalls()[0].Email)
	assert.Equal(t, "+48123", m.repo.FindIDByPhoneCalls()[0].Phone)
}

func TestMatcher_GetID__Skips_Empty_Values(t *testing.T) {
	m := newMatcherTest()

	id, found, err := m.matcher.GetID(newContext(), model.CustomerData{Name: "John"})
	assert.Equal(t, nil, err)
	assert.Equal(t, false, found)
	assert.Equal(t, "", id)

	assert.Equal(t, 0, len(m.repo.FindIDByLoyaltyCardCalls()))
	assert.Equal(t, 0, len(m.repo.FindIDByEmailCalls()))
	assert.Equal(t, 0, len(m.repo.FindIDByPhoneCalls()))
}

func TestMatcher_GetID__Error(t *testing.T) {
	m := newMatcherTest()
	dbErr := errors.New("db error")
	m.repo.FindIDByEmailFunc = func(ctx context.Context, email string) (string, error) {
		return "", dbErr
	}

	_, found, err := m.matcher.GetID(newContext(), model.CustomerData{
		Email: "user@example.com",
		Phone: "+48123",
	})
	assert.Equal(t, dbErr, err)
	assert.Equal(t, false, found)
	assert.Equal(t, 0, len(m.repo.FindIDByPhoneCalls()))
}
