package model

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/QuangTung97/loyalty/pkg/apperr"
	"github.com/shopspring/decimal"
)

// RuleType ...
type RuleType int

const (
	// RuleTypePoints general spending rule: points = gross value * point value
	RuleTypePoints RuleType = 1

	// RuleTypeEvent fixed amount for a named system event
	RuleTypeEvent RuleType = 2

	// RuleTypeCustomEvent fixed amount for a reported custom event, optionally limited
	RuleTypeCustomEvent RuleType = 3

	// RuleTypeReferral ...
	RuleTypeReferral RuleType = 4

	// RuleTypeProductPurchase ...
	RuleTypeProductPurchase RuleType = 5

	// RuleTypeMultiplyForProduct ...
	RuleTypeMultiplyForProduct RuleType = 6

	// RuleTypeMultiplyByLabels ...
	RuleTypeMultiplyByLabels RuleType = 7
)

var ruleTypeNames = map[RuleType]string{
	RuleTypePoints:             "points",
	RuleTypeEvent:              "event",
	RuleTypeCustomEvent:        "custom_event",
	RuleTypeReferral:           "referral",
	RuleTypeProductPurchase:    "product_purchase",
	RuleTypeMultiplyForProduct: "multiply_for_product",
	RuleTypeMultiplyByLabels:   "multiply_by_labels",
}

// String ...
func (t RuleType) String() string {
	return ruleTypeNames[t]
}

// ParseRuleType ...
func ParseRuleType(s string) (RuleType, bool) {
	for t, name := range ruleTypeNames {
		if name == s {
			return t, true
		}
	}
	return 0, false
}

// Target restricts a rule or campaign to levels or segments, never both
type Target struct {
	Levels   StringList
	Segments StringList
}

// Validate ...
func (t Target) Validate() error {
	if len(t.Levels) > 0 && len(t.Segments) > 0 {
		return apperr.Validation("target", "levels and segments are mutually exclusive")
	}
	return nil
}

// IsEmpty no level and no segment, such a target matches nobody
func (t Target) IsEmpty() bool {
	return len(t.Levels) == 0 && len(t.Segments) == 0
}

// Matches checks whether a customer with level and segments is targeted.
// An empty target matches nobody.
func (t Target) Matches(levelID string, segments []string) bool {
	if levelID != "" && t.Levels.Contains(levelID) {
		return true
	}
	return t.Segments.Intersects(segments)
}

// EarningRule ...
type EarningRule struct {
	ID            string
	Name          string
	Description   string
	Active        bool
	AllTimeActive bool
	StartAt       sql.NullTime
	EndAt         sql.NullTime
	Target        Target
	Pos           StringList
	Photo         NullPhoto

	Variant RuleVariant
}

// RuleVariant is the tagged union over the earning rule types.
// Implemented only by the variant structs in this package.
type RuleVariant interface {
	RuleType() RuleType
	validate() FieldErrorsBuilder
}

// PointsRule ...
type PointsRule struct {
	PointValue          decimal.Decimal `json:"pointValue" yaml:"pointValue"`
	ExcludedSKUs        StringList      `json:"excludedSKUs,omitempty" yaml:"excludedSKUs"`
	ExcludedLabels      Labels          `json:"excludedLabels,omitempty" yaml:"excludedLabels"`
	ExcludeDeliveryCost bool            `json:"excludeDeliveryCost" yaml:"excludeDeliveryCost"`
	MinOrderValue       decimal.Decimal `json:"minOrderValue" yaml:"minOrderValue"`
}

// EventRule ...
type EventRule struct {
	EventName    string          `json:"eventName" yaml:"eventName"`
	PointsAmount decimal.Decimal `json:"pointsAmount" yaml:"pointsAmount"`
}

// CustomEventRule ...
type CustomEventRule struct {
	EventName    string          `json:"eventName" yaml:"eventName"`
	PointsAmount decimal.Decimal `json:"pointsAmount" yaml:"pointsAmount"`
	Limit        UsageLimit      `json:"limit" yaml:"limit"`
}

// ReferralRule ...
type ReferralRule struct {
	EventName    ReferralEvent      `json:"eventName" yaml:"eventName"`
	RewardType   ReferralRewardType `json:"rewardType" yaml:"rewardType"`
	PointsAmount decimal.Decimal    `json:"pointsAmount" yaml:"pointsAmount"`
}

// ProductPurchaseRule ...
type ProductPurchaseRule struct {
	SKUs         StringList      `json:"skuIds" yaml:"skuIds"`
	PointsAmount decimal.Decimal `json:"pointsAmount" yaml:"pointsAmount"`
}

// MultiplyForProductRule ...
type MultiplyForProductRule struct {
	SKUs       StringList      `json:"skuIds,omitempty" yaml:"skuIds"`
	Labels     Labels          `json:"labels,omitempty" yaml:"labels"`
	Multiplier decimal.Decimal `json:"multiplier" yaml:"multiplier"`
}

// LabelMultiplier ...
type LabelMultiplier struct {
	Label      Label           `json:"label" yaml:"label"`
	Multiplier decimal.Decimal `json:"multiplier" yaml:"multiplier"`
}

// MultiplyByLabelsRule ...
type MultiplyByLabelsRule struct {
	LabelMultipliers []LabelMultiplier `json:"labelMultipliers" yaml:"labelMultipliers"`
}

// ReferralEvent ...
type ReferralEvent string

const (
	// ReferralEventRegister ...
	ReferralEventRegister ReferralEvent = "register"

	// ReferralEventFirstPurchase ...
	ReferralEventFirstPurchase ReferralEvent = "first_purchase"

	// ReferralEventEveryPurchase ...
	ReferralEventEveryPurchase ReferralEvent = "every_purchase"
)

// ReferralRewardType ...
type ReferralRewardType string

const (
	// ReferralRewardReferred ...
	ReferralRewardReferred ReferralRewardType = "referred"

	// ReferralRewardReferrer ...
	ReferralRewardReferrer ReferralRewardType = "referrer"

	// ReferralRewardBoth ...
	ReferralRewardBoth ReferralRewardType = "both"
)

// System event names usable by fixed-event rules
const (
	EventAccountCreated         = "oloy.account.created"
	EventFirstPurchase          = "oloy.transaction.first_purchase"
	EventNewsletterSubscription = "oloy.customer.newsletter_subscription"
)

// LimitPeriod ...
type LimitPeriod string

const (
	// LimitPeriodDay ...
	LimitPeriodDay LimitPeriod = "day"

	// LimitPeriodWeek ...
	LimitPeriodWeek LimitPeriod = "week"

	// LimitPeriodMonth ...
	LimitPeriodMonth LimitPeriod = "month"

	// LimitPeriodThreeMonths ...
	LimitPeriodThreeMonths LimitPeriod = "3 months"

	// LimitPeriodSixMonths ...
	LimitPeriodSixMonths LimitPeriod = "6 months"

	// LimitPeriodYear ...
	LimitPeriodYear LimitPeriod = "year"

	// LimitPeriodForever ...
	LimitPeriodForever LimitPeriod = "forever"
)

// UsageLimit ...
type UsageLimit struct {
	Active bool        `json:"active" yaml:"active"`
	Limit  int64       `json:"limit" yaml:"limit"`
	Period LimitPeriod `json:"period" yaml:"period"`
	PerPos bool        `json:"perPos" yaml:"perPos"`
}

// PeriodStart returns the beginning of the rolling window ending at now.
// The zero time is returned for the forever period.
func (l UsageLimit) PeriodStart(now time.Time) (time.Time, error) {
	switch l.Period {
	case LimitPeriodDay:
		return now.AddDate(0, 0, -1), nil
	case LimitPeriodWeek:
		return now.AddDate(0, 0, -7), nil
	case LimitPeriodMonth:
		return now.AddDate(0, -1, 0), nil
	case LimitPeriodThreeMonths:
		return now.AddDate(0, -3, 0), nil
	case LimitPeriodSixMonths:
		return now.AddDate(0, -6, 0), nil
	case LimitPeriodYear:
		return now.AddDate(-1, 0, 0), nil
	case LimitPeriodForever:
		return time.Time{}, nil
	default:
		return time.Time{}, fmt.Errorf("unknown limit period %q", l.Period)
	}
}

// RuleType ...
func (PointsRule) RuleType() RuleType { return RuleTypePoints }

// RuleType ...
func (EventRule) RuleType() RuleType { return RuleTypeEvent }

// RuleType ...
func (CustomEventRule) RuleType() RuleType { return RuleTypeCustomEvent }

// RuleType ...
func (ReferralRule) RuleType() RuleType { return RuleTypeReferral }

// RuleType ...
func (ProductPurchaseRule) RuleType() RuleType { return RuleTypeProductPurchase }

// RuleType ...
func (MultiplyForProductRule) RuleType() RuleType { return RuleTypeMultiplyForProduct }

// RuleType ...
func (MultiplyByLabelsRule) RuleType() RuleType { return RuleTypeMultiplyByLabels }

// FieldErrorsBuilder collects field validation errors
type FieldErrorsBuilder struct {
	errs apperr.FieldErrors
}

// Add ...
func (b *FieldErrorsBuilder) Add(field string, message string) {
	b.errs = append(b.errs, apperr.Validation(field, message))
}

// Merge ...
func (b *FieldErrorsBuilder) Merge(other FieldErrorsBuilder) {
	b.errs = append(b.errs, other.errs...)
}

// Err returns nil when nothing was collected
func (b FieldErrorsBuilder) Err() error {
	if len(b.errs) == 0 {
		return nil
	}
	return b.errs
}

func requirePositive(b *FieldErrorsBuilder, field string, d decimal.Decimal) {
	if !d.IsPositive() {
		b.Add(field, "must be greater than 0")
	}
}

func (r PointsRule) validate() FieldErrorsBuilder {
	var b FieldErrorsBuilder
	requirePositive(&b, "pointValue", r.PointValue)
	if r.MinOrderValue.IsNegative() {
		b.Add("minOrderValue", "must not be negative")
	}
	return b
}

func (r EventRule) validate() FieldErrorsBuilder {
	var b FieldErrorsBuilder
	if r.EventName == "" {
		b.Add("eventName", "is required")
	}
	requirePositive(&b, "pointsAmount", r.PointsAmount)
	return b
}

func (r CustomEventRule) validate() FieldErrorsBuilder {
	var b FieldErrorsBuilder
	if r.EventName == "" {
		b.Add("eventName", "is required")
	}
	requirePositive(&b, "pointsAmount", r.PointsAmount)
	if r.Limit.Active {
		if r.Limit.Limit <= 0 {
			b.Add("limit.limit", "must be greater than 0")
		}
		if _, err := r.Limit.PeriodStart(time.Time{}); err != nil {
			b.Add("limit.period", "is invalid")
		}
	}
	return b
}

func (r ReferralRule) validate() FieldErrorsBuilder {
	var b FieldErrorsBuilder
	switch r.EventName {
	case ReferralEventRegister, ReferralEventFirstPurchase, ReferralEventEveryPurchase:
	default:
		b.Add("eventName", "is invalid")
	}
	switch r.RewardType {
	case ReferralRewardReferred, ReferralRewardReferrer, ReferralRewardBoth:
	default:
		b.Add("rewardType", "is invalid")
	}
	requirePositive(&b, "pointsAmount", r.PointsAmount)
	return b
}

func (r ProductPurchaseRule) validate() FieldErrorsBuilder {
	var b FieldErrorsBuilder
	if len(r.SKUs) == 0 {
		b.Add("skuIds", "must contain at least 1 sku")
	}
	requirePositive(&b, "pointsAmount", r.PointsAmount)
	return b
}

func (r MultiplyForProductRule) validate() FieldErrorsBuilder {
	var b FieldErrorsBuilder
	if len(r.SKUs) == 0 && len(r.Labels) == 0 {
		b.Add("skuIds", "skus or labels are required")
	}
	requirePositive(&b, "multiplier", r.Multiplier)
	return b
}

func (r MultiplyByLabelsRule) validate() FieldErrorsBuilder {
	var b FieldErrorsBuilder
	if len(r.LabelMultipliers) == 0 {
		b.Add("labelMultipliers", "must contain at least 1 element")
	}
	for i, m := range r.LabelMultipliers {
		requirePositive(&b, fmt.Sprintf("labelMultipliers[%d].multiplier", i), m.Multiplier)
	}
	return b
}

// Validate checks common attributes and variant parameters
func (r EarningRule) Validate() error {
	var b FieldErrorsBuilder
	if r.Name == "" {
		b.Add("name", "is required")
	}
	if r.Variant == nil {
		b.Add("type", "is required")
		return b.Err()
	}
	if !r.AllTimeActive {
		if !r.StartAt.Valid {
			b.Add("startAt", "is required")
		}
		if !r.EndAt.Valid {
			b.Add("endAt", "is required")
		}
		if r.StartAt.Valid && r.EndAt.Valid && r.EndAt.Time.Before(r.StartAt.Time) {
			b.Add("endAt", "must be after startAt")
		}
	}
	if r.Target.IsEmpty() {
		b.Add("target", "levels or segments are required")
	}
	if err := r.Target.Validate(); err != nil {
		b.Add("target", "levels and segments are mutually exclusive")
	}
	b.Merge(r.Variant.validate())
	return b.Err()
}

// IsValidAt reports whether the rule is active and inside its validity window
func (r EarningRule) IsValidAt(now time.Time) bool {
	if !r.Active {
		return false
	}
	if r.AllTimeActive {
		return true
	}
	if r.StartAt.Valid && now.Before(r.StartAt.Time) {
		return false
	}
	if r.EndAt.Valid && now.After(r.EndAt.Time) {
		return false
	}
	return true
}

// AppliesToPos empty pos list means every point of sale
func (r EarningRule) AppliesToPos(posID string) bool {
	if len(r.Pos) == 0 {
		return true
	}
	return posID != "" && r.Pos.Contains(posID)
}

// EarningRuleRow is the persisted form of EarningRule
type EarningRuleRow struct {
	ID            string       `db:"id"`
	Name          string       `db:"name"`
	Description   string       `db:"description"`
	Type          RuleType     `db:"type"`
	EventName     string       `db:"event_name"`
	Active        bool         `db:"active"`
	AllTimeActive bool         `db:"all_time_active"`
	StartAt       sql.NullTime `db:"start_at"`
	EndAt         sql.NullTime `db:"end_at"`
	Levels        StringList   `db:"levels"`
	Segments      StringList   `db:"segments"`
	Pos           StringList   `db:"pos"`
	Params        string       `db:"params"`
	Photo         NullPhoto    `db:"photo"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// ToRow ...
func (r EarningRule) ToRow() (EarningRuleRow, error) {
	params, err := json.Marshal(r.Variant)
	if err != nil {
		return EarningRuleRow{}, err
	}
	return EarningRuleRow{
		ID:            r.ID,
		Name:          r.Name,
		Description:   r.Description,
		Type:          r.Variant.RuleType(),
		EventName:     variantEventName(r.Variant),
		Active:        r.Active,
		AllTimeActive: r.AllTimeActive,
		StartAt:       r.StartAt,
		EndAt:         r.EndAt,
		Levels:        r.Target.Levels,
		Segments:      r.Target.Segments,
		Pos:           r.Pos,
		Params:        string(params),
		Photo:         r.Photo,
	}, nil
}

func variantEventName(v RuleVariant) string {
	switch rule := v.(type) {
	case EventRule:
		return rule.EventName
	case CustomEventRule:
		return rule.EventName
	case ReferralRule:
		return string(rule.EventName)
	default:
		return ""
	}
}

// ToEarningRule ...
func (row EarningRuleRow) ToEarningRule() (EarningRule, error) {
	variant, err := UnmarshalRuleVariant(row.Type, []byte(row.Params))
	if err != nil {
		return EarningRule{}, err
	}
	return EarningRule{
		ID:            row.ID,
		Name:          row.Name,
		Description:   row.Description,
		Active:        row.Active,
		AllTimeActive: row.AllTimeActive,
		StartAt:       row.StartAt,
		EndAt:         row.EndAt,
		Target: Target{
			Levels:   row.Levels,
			Segments: row.Segments,
		},
		Pos:     row.Pos,
		Photo:   row.Photo,
		Variant: variant,
	}, nil
}

// UnmarshalRuleVariant decodes variant parameters stored for rule type t
func UnmarshalRuleVariant(t RuleType, data []byte) (RuleVariant, error) {
	switch t {
	case RuleTypePoints:
		return unmarshalVariant[PointsRule](data)
	case RuleTypeEvent:
		return unmarshalVariant[EventRule](data)
	case RuleTypeCustomEvent:
		return unmarshalVariant[CustomEventRule](data)
	case RuleTypeReferral:
		return unmarshalVariant[ReferralRule](data)
	case RuleTypeProductPurchase:
		return unmarshalVariant[ProductPurchaseRule](data)
	case RuleTypeMultiplyForProduct:
		return unmarshalVariant[MultiplyForProductRule](data)
	case RuleTypeMultiplyByLabels:
		return unmarshalVariant[MultiplyByLabelsRule](data)
	default:
		return nil, fmt.Errorf("unknown earning rule type %d", t)
	}
}

func unmarshalVariant[T RuleVariant](data []byte) (RuleVariant, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// EarningRuleUsage is an append-only record of a custom event rule use
type EarningRuleUsage struct {
	ID            string         `db:"id"`
	EarningRuleID string         `db:"earning_rule_id"`
	CustomerID    string         `db:"customer_id"`
	PosID         sql.NullString `db:"pos_id"`
	UsedAt        time.Time      `db:"used_at"`
}
