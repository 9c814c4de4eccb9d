package fixture

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/QuangTung97/loyalty/model"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// File is a YAML document with definitions to seed into the database
type File struct {
	Customers    []Customer    `yaml:"customers"`
	EarningRules []EarningRule `yaml:"earningRules"`
	Campaigns    []Campaign    `yaml:"campaigns"`
}

// Customer ...
type Customer struct {
	ID                string          `yaml:"id"`
	Name              string          `yaml:"name"`
	Email             string          `yaml:"email"`
	Phone             string          `yaml:"phone"`
	LoyaltyCardNumber string          `yaml:"loyaltyCardNumber"`
	Status            string          `yaml:"status"`
	LevelID           string          `yaml:"levelId"`
	ReferrerID        string          `yaml:"referrerId"`
	Segments          []string        `yaml:"segments"`
	Points            decimal.Decimal `yaml:"points"`
}

// EarningRule variant parameters are decoded according to Type
type EarningRule struct {
	ID            string     `yaml:"id"`
	Name          string     `yaml:"name"`
	Description   string     `yaml:"description"`
	Type          string     `yaml:"type"`
	Active        bool       `yaml:"active"`
	AllTimeActive bool       `yaml:"allTimeActive"`
	StartAt       *time.Time `yaml:"startAt"`
	EndAt         *time.Time `yaml:"endAt"`
	Levels        []string   `yaml:"levels"`
	Segments      []string   `yaml:"segments"`
	Pos           []string   `yaml:"pos"`
	Params        yaml.Node  `yaml:"params"`
}

// Campaign ...
type Campaign struct {
	ID             string           `yaml:"id"`
	Name           string           `yaml:"name"`
	Description    string           `yaml:"description"`
	Reward         string           `yaml:"reward"`
	Active         bool             `yaml:"active"`
	CostInPoints   decimal.Decimal  `yaml:"costInPoints"`
	Levels         []string         `yaml:"levels"`
	Segments       []string         `yaml:"segments"`
	Unlimited      bool             `yaml:"unlimited"`
	SingleCoupon   bool             `yaml:"singleCoupon"`
	Limit          int64            `yaml:"limit"`
	LimitPerUser   int64            `yaml:"limitPerUser"`
	AllTimeActive  bool             `yaml:"allTimeActive"`
	ActiveFrom     *time.Time       `yaml:"activeFrom"`
	ActiveTo       *time.Time       `yaml:"activeTo"`
	AllTimeVisible bool             `yaml:"allTimeVisible"`
	VisibleFrom    *time.Time       `yaml:"visibleFrom"`
	VisibleTo      *time.Time       `yaml:"visibleTo"`
	PointValue     *decimal.Decimal `yaml:"pointValue"`
	Coupons        []string         `yaml:"coupons"`
}

// Load reads and parses a fixture file
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("reading fixture %s: %w", path, err)
	}
	return Parse(data)
}

// Parse ...
func Parse(data []byte) (File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("parsing fixture: %w", err)
	}
	return f, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Valid: true, Time: *t}
}

func nullString(s string) sql.NullString {
	return sql.NullString{Valid: s != "", String: s}
}

// ToModel ...
func (c Customer) ToModel() (model.Customer, error) {
	status := model.CustomerStatusActiveCard
	if c.Status != "" {
		var ok bool
		status, ok = model.ParseCustomerStatus(c.Status)
		if !ok {
			return model.Customer{}, fmt.Errorf("customer %s: unknown status %q", c.ID, c.Status)
		}
	}
	return model.Customer{
		ID:                c.ID,
		Name:              c.Name,
		Email:             nullString(c.Email),
		Phone:             nullString(c.Phone),
		LoyaltyCardNumber: nullString(c.LoyaltyCardNumber),
		Status:            status,
		LevelID:           nullString(c.LevelID),
		ReferrerID:        nullString(c.ReferrerID),
		Segments:          c.Segments,
	}, nil
}

func decodeVariant[T model.RuleVariant](node *yaml.Node) (model.RuleVariant, error) {
	var v T
	if node.Kind == 0 {
		return v, nil
	}
	if err := node.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

func (r EarningRule) variant() (model.RuleVariant, error) {
	t, ok := model.ParseRuleType(r.Type)
	if !ok {
		return nil, fmt.Errorf("unknown earning rule type %q", r.Type)
	}

	switch t {
	case model.RuleTypePoints:
		return decodeVariant[model.PointsRule](&r.Params)
	case model.RuleTypeEvent:
		return decodeVariant[model.EventRule](&r.Params)
	case model.RuleTypeCustomEvent:
		return decodeVariant[model.CustomEventRule](&r.Params)
	case model.RuleTypeReferral:
		return decodeVariant[model.ReferralRule](&r.Params)
	case model.RuleTypeProductPurchase:
		return decodeVariant[model.ProductPurchaseRule](&r.Params)
	case model.RuleTypeMultiplyForProduct:
		return decodeVariant[model.MultiplyForProductRule](&r.Params)
	default:
		return decodeVariant[model.MultiplyByLabelsRule](&r.Params)
	}
}

// ToModel ...
func (r EarningRule) ToModel() (model.EarningRule, error) {
	variant, err := r.variant()
	if err != nil {
		return model.EarningRule{}, fmt.Errorf("earning rule %s: %w", r.ID, err)
	}
	return model.EarningRule{
		ID:            r.ID,
		Name:          r.Name,
		Description:   r.Description,
		Active:        r.Active,
		AllTimeActive: r.AllTimeActive,
		StartAt:       nullTime(r.StartAt),
		EndAt:         nullTime(r.EndAt),
		Target: model.Target{
			Levels:   r.Levels,
			Segments: r.Segments,
		},
		Pos:     r.Pos,
		Variant: variant,
	}, nil
}

// ToModel ...
func (c Campaign) ToModel() (model.Campaign, error) {
	reward, ok := model.ParseCampaignReward(c.Reward)
	if !ok {
		return model.Campaign{}, fmt.Errorf("campaign %s: unknown reward %q", c.ID, c.Reward)
	}

	var pointValue decimal.NullDecimal
	if c.PointValue != nil {
		pointValue = decimal.NullDecimal{Valid: true, Decimal: *c.PointValue}
	}

	return model.Campaign{
		ID:             c.ID,
		Name:           c.Name,
		Description:    c.Description,
		Reward:         reward,
		Active:         c.Active,
		CostInPoints:   c.CostInPoints,
		Levels:         c.Levels,
		Segments:       c.Segments,
		Unlimited:      c.Unlimited,
		SingleCoupon:   c.SingleCoupon,
		Limit:          c.Limit,
		LimitPerUser:   c.LimitPerUser,
		AllTimeActive:  c.AllTimeActive,
		ActiveFrom:     nullTime(c.ActiveFrom),
		ActiveTo:       nullTime(c.ActiveTo),
		AllTimeVisible: c.AllTimeVisible,
		VisibleFrom:    nullTime(c.VisibleFrom),
		VisibleTo:      nullTime(c.VisibleTo),
		PointValue:     pointValue,
	}, nil
}
