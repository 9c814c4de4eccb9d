package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/QuangTung97/loyalty/model"
)

// EarningRule ...
type EarningRule interface {
	GetEarningRule(ctx context.Context, id string) (model.EarningRuleRow, error)
	FindActiveRulesByTypes(ctx context.Context, types []model.RuleType) ([]model.EarningRuleRow, error)
	FindActiveRulesByEvent(ctx context.Context, ruleType model.RuleType, eventName string) ([]model.EarningRuleRow, error)
	FindAllRules(ctx context.Context) ([]model.EarningRuleRow, error)

	LockEarningRule(ctx context.Context, ruleID string) error
	UpsertEarningRule(ctx context.Context, rule model.EarningRuleRow) error
	SetEarningRuleActive(ctx context.Context, id string, active bool) error

	CountUsages(ctx context.Context, filter UsageFilter) (int64, error)
	InsertUsage(ctx context.Context, usage model.EarningRuleUsage) error
}

// UsageFilter selects uses of one custom event rule by one customer.
// Zero Since means every use, a valid PosID restricts to that point of sale.
type UsageFilter struct {
	EarningRuleID string
	CustomerID    string
	PosID         sql.NullString
	Since         time.Time
}

type earningRuleImpl struct {
}

// NewEarningRule ...
func NewEarningRule() EarningRule {
	return &earningRuleImpl{}
}

const earningRuleColumns = `id, name, description, type, IFNULL(event_name, '') AS event_name,
	active, all_time_active, start_at, end_at, levels, segments, pos, params, photo,
	created_at, updated_at`

// GetEarningRule returns sql.ErrNoRows when not found
func (r *earningRuleImpl) GetEarningRule(ctx context.Context, id string) (model.EarningRuleRow, error) {
	query := `SELECT ` + earningRuleColumns + ` FROM earning_rule WHERE id = ?`
	var result model.EarningRuleRow
	err := GetReadonly(ctx).GetContext(ctx, &result, query, id)
	return result, err
}

// FindActiveRulesByTypes ...
func (r *earningRuleImpl) FindActiveRulesByTypes(
	ctx context.Context, types []model.RuleType,
) ([]model.EarningRuleRow, error) {
	query, args, err := inQuery(
		`SELECT `+earningRuleColumns+` FROM earning_rule WHERE active = TRUE AND type IN (?) ORDER BY created_at, id`,
		types,
	)
	if err != nil {
		return nil, err
	}
	var result []model.EarningRuleRow
	err = GetReadonly(ctx).SelectContext(ctx, &result, query, args...)
	return result, err
}

// FindActiveRulesByEvent ...
func (r *earningRuleImpl) FindActiveRulesByEvent(
	ctx context.Context, ruleType model.RuleType, eventName string,
) ([]model.EarningRuleRow, error) {
	query := `SELECT ` + earningRuleColumns + ` FROM earning_rule
WHERE active = TRUE AND type = ? AND event_name = ? ORDER BY created_at, id`
	var result []model.EarningRuleRow
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, ruleType, eventName)
	return result, err
}

// FindAllRules ...
func (r *earningRuleImpl) FindAllRules(ctx context.Context) ([]model.EarningRuleRow, error) {
	query := `SELECT ` + earningRuleColumns + ` FROM earning_rule ORDER BY created_at, id`
	var result []model.EarningRuleRow
	err := GetReadonly(ctx).SelectContext(ctx, &result, query)
	return result, err
}

// LockEarningRule returns sql.ErrNoRows when not found
func (r *earningRuleImpl) LockEarningRule(ctx context.Context, ruleID string) error {
	query := `SELECT id FROM earning_rule WHERE id = ? FOR UPDATE`
	var id string
	return GetTx(ctx).GetContext(ctx, &id, query, ruleID)
}

// UpsertEarningRule ...
func (r *earningRuleImpl) UpsertEarningRule(ctx context.Context, rule model.EarningRuleRow) error {
	query := `
INSERT INTO earning_rule (
	id, name, description, type, event_name, active, all_time_active,
	start_at, end_at, levels, segments, pos, params, photo
) VALUES (
	:id, :name, :description, :type, NULLIF(:event_name, ''), :active, :all_time_active,
	:start_at, :end_at, :levels, :segments, :pos, :params, :photo
) AS NEW
ON DUPLICATE KEY UPDATE
	name = NEW.name,
	description = NEW.description,
	type = NEW.type,
	event_name = NEW.event_name,
	active = NEW.active,
	all_time_active = NEW.all_time_active,
	start_at = NEW.start_at,
	end_at = NEW.end_at,
	levels = NEW.levels,
	segments = NEW.segments,
	pos = NEW.pos,
	params = NEW.params,
	photo = NEW.photo
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, rule)
	return err
}

// SetEarningRuleActive ...
func (r *earningRuleImpl) SetEarningRuleActive(ctx context.Context, id string, active bool) error {
	query := `UPDATE earning_rule SET active = ? WHERE id = ?`
	_, err := GetTx(ctx).ExecContext(ctx, query, active, id)
	return err
}

// CountUsages ...
func (r *earningRuleImpl) CountUsages(ctx context.Context, filter UsageFilter) (int64, error) {
	query := `SELECT COUNT(*) FROM earning_rule_usage
WHERE earning_rule_id = ? AND customer_id = ? AND used_at >= ?`
	args := []interface{}{filter.EarningRuleID, filter.CustomerID, filter.Since}
	if filter.PosID.Valid {
		query += ` AND pos_id = ?`
		args = append(args, filter.PosID.String)
	}

	var count int64
	err := GetReadonly(ctx).GetContext(ctx, &count, query, args...)
	return count, err
}

// InsertUsage ...
func (r *earningRuleImpl) InsertUsage(ctx context.Context, usage model.EarningRuleUsage) error {
	query := `
INSERT INTO earning_rule_usage (id, earning_rule_id, customer_id, pos_id, used_at)
VALUES (:id, :earning_rule_id, :customer_id, :pos_id, :used_at)
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, usage)
	return err
}
