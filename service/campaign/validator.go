package campaign

import (
	"context"
	"time"

	"github.com/QuangTung97/loyalty/config"
	"github.com/QuangTung97/loyalty/model"
	"github.com/QuangTung97/loyalty/pkg/apperr"
	"github.com/QuangTung97/loyalty/repository"
	"github.com/QuangTung97/loyalty/service/account"
	"github.com/shopspring/decimal"
)

var (
	// ErrCampaignNotFound ...
	ErrCampaignNotFound = apperr.NotFound("campaign_not_found", "campaign not found")

	// ErrCustomerNotFound ...
	ErrCustomerNotFound = apperr.NotFound("customer_not_found", "customer not found")

	// ErrCampaignNotActive ...
	ErrCampaignNotActive = apperr.Domain("campaign_not_active", "campaign is not active")

	// ErrCampaignNotVisible ...
	ErrCampaignNotVisible = apperr.Domain("campaign_not_visible", "campaign is not visible")

	// ErrCampaignNotAvailable the customer is not in the target levels or segments
	ErrCampaignNotAvailable = apperr.Domain("campaign_not_available", "campaign is not available for this customer")

	// ErrCampaignLimitExceeded ...
	ErrCampaignLimitExceeded = apperr.Domain("campaign_limit_exceeded", "campaign limit exceeded")

	// ErrCampaignLimitPerCustomerExceeded ...
	ErrCampaignLimitPerCustomerExceeded = apperr.Domain(
		"campaign_limit_per_customer_exceeded", "campaign limit per customer exceeded")

	// ErrCustomerStatusNotAllowed ...
	ErrCustomerStatusNotAllowed = apperr.Domain("customer_status_not_allowed", "customer status is not allowed")

	// ErrNotEnoughPoints shared with the points ledger
	ErrNotEnoughPoints = account.ErrNotEnoughPoints
)

// Validator checks whether a customer can buy a campaign
type Validator struct {
	provider repository.Provider
	usage    *Provider
	accounts repository.Account
	statuses []string
	now      func() time.Time
}

// NewValidator ...
func NewValidator(
	provider repository.Provider,
	usage *Provider,
	accounts repository.Account,
	conf config.LoyaltyConfig,
	now func() time.Time,
) *Validator {
	return &Validator{
		provider: provider,
		usage:    usage,
		accounts: accounts,
		statuses: conf.SpendingStatuses,
		now:      now,
	}
}

// CheckAvailable runs every check not depending on the customer balance, in order:
// active, visible, target, campaign usage, customer usage
func (v *Validator) CheckAvailable(ctx context.Context, c model.Campaign, customer model.Customer) error {
	now := v.now()
	if !c.IsActiveAt(now) {
		return ErrCampaignNotActive
	}
	if !c.IsVisibleAt(now) {
		return ErrCampaignNotVisible
	}
	if !c.Target().Matches(customer.LevelID.String, customer.Segments) {
		return ErrCampaignNotAvailable
	}

	left, err := v.usage.UsageLeft(ctx, c)
	if err != nil {
		return err
	}
	if left <= 0 {
		return ErrCampaignLimitExceeded
	}

	left, err = v.usage.UsageLeftForCustomer(ctx, c, customer.ID)
	if err != nil {
		return err
	}
	if left <= 0 {
		return ErrCampaignLimitPerCustomerExceeded
	}
	return nil
}

// CheckStatus an empty status list allows every customer
func (v *Validator) CheckStatus(customer model.Customer) error {
	if len(v.statuses) == 0 {
		return nil
	}
	for _, status := range v.statuses {
		if status == customer.Status.String() {
			return nil
		}
	}
	return ErrCustomerStatusNotAllowed
}

// CheckPoints ...
func (v *Validator) CheckPoints(ctx context.Context, customerID string, points decimal.Decimal) error {
	acc, err := v.accounts.GetAccountByCustomer(v.provider.Readonly(ctx), customerID)
	if repository.IsNotFound(err) {
		acc = model.Account{CustomerID: customerID}
	} else if err != nil {
		return err
	}
	if acc.Available.LessThan(points) {
		return ErrNotEnoughPoints
	}
	return nil
}

// Validate the first failed check wins
func (v *Validator) Validate(ctx context.Context, c model.Campaign, customer model.Customer) error {
	if err := v.CheckAvailable(ctx, c, customer); err != nil {
		return err
	}
	if err := v.CheckStatus(customer); err != nil {
		return err
	}
	return v.CheckPoints(ctx, customer.ID, c.CostInPoints)
}
