package identity

import (
	"context"

	"github.com/QuangTung97/loyalty/model"
	"github.com/QuangTung97/loyalty/repository"
)

//go:generate moq -out matcher_mocks.go . CustomerIDProvider
//go:generate otelwrap --out matcher_wrappers.go . CustomerIDProvider

// CustomerIDProvider resolves the owner of unstructured contact data
type CustomerIDProvider interface {
	GetID(ctx context.Context, data model.CustomerData) (string, bool, error)
}

// Matcher looks up the customer directory by loyalty card number, then email, then phone
type Matcher struct {
	provider repository.Provider
	repo     repository.Customer
}

var _ CustomerIDProvider = &Matcher{}

// NewMatcher ...
func NewMatcher(provider repository.Provider, repo repository.Customer) *Matcher {
	return &Matcher{
		provider: provider,
		repo:     repo,
	}
}

// GetID ...
func (m *Matcher) GetID(ctx context.Context, data model.CustomerData) (string, bool, error) {
	ctx = m.provider.Readonly(ctx)
	data = data.Normalized()

	lookups := []struct {
		value string
		find  func(ctx context.Context, value string) (string, error)
	}{
		{value: data.LoyaltyCardNumber, find: m.repo.FindIDByLoyaltyCard},
		{value: data.Email, find: m.repo.FindIDByEmail},
		{value: data.Phone, find: m.repo.FindIDByPhone},
	}

	for _, l := range lookups {
		if l.value == "" {
			continue
		}
		id, err := l.find(ctx, l.value)
		if repository.IsNotFound(err) {
			continue
		}
		if err != nil {
			return "", false, err
		}
		return id, true, nil
	}
	return "", false, nil
}
