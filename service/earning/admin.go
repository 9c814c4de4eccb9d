package earning

import (
	"context"

	"github.com/QuangTung97/loyalty/model"
	"github.com/QuangTung97/loyalty/pkg/apperr"
	"github.com/QuangTung97/loyalty/repository"
)

// ErrEarningRuleNotFound ...
var ErrEarningRuleNotFound = apperr.NotFound("earning_rule_not_found", "earning rule not found")

// ErrEventNameUsed is returned when another custom event rule already uses the event name
var ErrEventNameUsed = apperr.Duplicate("eventName", "event name already used")

// Admin manages earning rule definitions
type Admin struct {
	provider repository.Provider
	rules    repository.EarningRule
	newID    func() string
}

// NewAdmin ...
func NewAdmin(provider repository.Provider, rules repository.EarningRule, newID func() string) *Admin {
	return &Admin{
		provider: provider,
		rules:    rules,
		newID:    newID,
	}
}

func (a *Admin) save(ctx context.Context, rule model.EarningRule) error {
	row, err := rule.ToRow()
	if err != nil {
		return err
	}
	err = a.provider.Transact(ctx, func(ctx context.Context) error {
		return a.rules.UpsertEarningRule(ctx, row)
	})
	if repository.IsDuplicate(err) {
		return ErrEventNameUsed
	}
	return err
}

// Get ...
func (a *Admin) Get(ctx context.Context, id string) (model.EarningRule, error) {
	row, err := a.rules.GetEarningRule(a.provider.Readonly(ctx), id)
	if repository.IsNotFound(err) {
		return model.EarningRule{}, ErrEarningRuleNotFound
	}
	if err != nil {
		return model.EarningRule{}, err
	}
	return row.ToEarningRule()
}

// List ...
func (a *Admin) List(ctx context.Context) ([]model.EarningRule, error) {
	rows, err := a.rules.FindAllRules(a.provider.Readonly(ctx))
	if err != nil {
		return nil, err
	}
	result := make([]model.EarningRule, 0, len(rows))
	for _, row := range rows {
		rule, err := row.ToEarningRule()
		if err != nil {
			return nil, err
		}
		result = append(result, rule)
	}
	return result, nil
}

// Create returns the id of the new rule, the id of the input is used when not empty
func (a *Admin) Create(ctx context.Context, rule model.EarningRule) (string, error) {
	if err := rule.Validate(); err != nil {
		return "", err
	}
	if rule.ID == "" {
		rule.ID = a.newID()
	}
	if err := a.save(ctx, rule); err != nil {
		return "", err
	}
	return rule.ID, nil
}

// Update replaces the definition, the photo is kept
func (a *Admin) Update(ctx context.Context, rule model.EarningRule) error {
	if err := rule.Validate(); err != nil {
		return err
	}
	existing, err := a.Get(ctx, rule.ID)
	if err != nil {
		return err
	}
	rule.Photo = existing.Photo
	return a.save(ctx, rule)
}

// SetActive ...
func (a *Admin) SetActive(ctx context.Context, id string, active bool) error {
	if _, err := a.Get(ctx, id); err != nil {
		return err
	}
	return a.provider.Transact(ctx, func(ctx context.Context) error {
		return a.rules.SetEarningRuleActive(ctx, id, active)
	})
}

// SetPhoto an invalid photo removes the current one
func (a *Admin) SetPhoto(ctx context.Context, id string, photo model.NullPhoto) error {
	rule, err := a.Get(ctx, id)
	if err != nil {
		return err
	}
	rule.Photo = photo
	return a.save(ctx, rule)
}
