package earning

import (
	"context"
	"database/sql"
	"testing"

	"github.com/QuangTung97/loyalty/model"
	"github.com/QuangTung97/loyalty/pkg/apperr"
	"github.com/QuangTung97/loyalty/repository"
	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
)

type adminTest struct {
	rows  map[string]model.EarningRuleRow
	rules *repository.EarningRuleMock
	admin *Admin
}

func newAdminTest() *adminTest {
	a := &adminTest{
		rows: map[string]model.EarningRuleRow{},
	}
	a.rules = &repository.EarningRuleMock{
		GetEarningRuleFunc: func(ctx context.Context, id string) (model.EarningRuleRow, error) {
			row, ok := a.rows[id]
			if !ok {
				return model.EarningRuleRow{}, sql.ErrNoRows
			}
			return row, nil
		},
		UpsertEarningRuleFunc: func(ctx context.Context, rule model.EarningRuleRow) error {
			for _, row := range a.rows {
				if row.ID != rule.ID && rule.EventName != "" && row.EventName == rule.EventName &&
					row.Type == model.RuleTypeCustomEvent && rule.Type == model.RuleTypeCustomEvent {
					return &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}
				}
			}
			a.rows[rule.ID] = rule
			return nil
		},
		SetEarningRuleActiveFunc: func(ctx context.Context, id string, active bool) error {
			row := a.rows[id]
			row.Active = active
			a.rows[id] = row
			return nil
		},
	}
	a.admin = NewAdmin(newProvider(), a.rules, func() string {
		return "rule-new"
	})
	return a
}

func customEventRule(id string) model.EarningRule {
	return model.EarningRule{
		ID:            id,
		Name:          "Facebook like",
		AllTimeActive: true,
		Target:        model.Target{Levels: model.StringList{"level-01"}},
		Variant: model.CustomEventRule{
			EventName:    "facebook_like",
			PointsAmount: newDecimal("100"),
		},
	}
}

func TestAdmin_Create(t *testing.T) {
	a := newAdminTest()

	id, err := a.admin.Create(newContext(), customEventRule(""))
	assert.Equal(t, nil, err)
	assert.Equal(t, "rule-new", id)

	rule, err := a.admin.Get(newContext(), "rule-new")
	assert.Equal(t, nil, err)
	assert.Equal(t, "Facebook like", rule.Name)
	assert.Equal(t, "facebook_like", rule.Variant.(model.CustomEventRule).EventName)
	assert.Equal(t, "facebook_like", a.rows["rule-new"].EventName)
}

func TestAdmin_Create__Validation(t *testing.T) {
	a := newAdminTest()

	rule := customEventRule("")
	rule.Target.Segments = model.StringList{"segment-01"}
	rule.Variant = model.CustomEventRule{}

	_, err := a.admin.Create(newContext(), rule)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	var fieldErrs apperr.FieldErrors
	assert.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, []string{"target", "eventName", "pointsAmount"}, []string{
		fieldErrs[0].Field, fieldErrs[1].Field, fieldErrs[2].Field,
	})
	assert.Equal(t, 0, len(a.rules.UpsertEarningRuleCalls()))
}

func TestAdmin_Create__No_Target(t *testing.T) {
	a := newAdminTest()

	rule := customEventRule("")
	rule.Target = model.Target{}

	_, err := a.admin.Create(newContext(), rule)

	var fieldErrs apperr.FieldErrors
	assert.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, 1, len(fieldErrs))
	assert.Equal(t, "target", fieldErrs[0].Field)
	assert.Equal(t, "levels or segments are required", fieldErrs[0].Message)
	assert.Equal(t, 0, len(a.rules.UpsertEarningRuleCalls()))
}

func TestAdmin_Create__Duplicate_Event_Name(t *testing.T) {
	a := newAdminTest()

	_, err := a.admin.Create(newContext(), customEventRule("rule-01"))
	assert.Equal(t, nil, err)

	_, err = a.admin.Create(newContext(), customEventRule("rule-02"))
	assert.Equal(t, ErrEventNameUsed, err)
	assert.Equal(t, apperr.KindDuplicate, apperr.KindOf(err))
}

func TestAdmin_Update__Keeps_Photo(t *testing.T) {
	a := newAdminTest()

	_, err := a.admin.Create(newContext(), customEventRule("rule-01"))
	assert.Equal(t, nil, err)

	photo := model.NullPhoto{Valid: true, Photo: model.Photo{Path: "earning_rule/abc", Mime: "image/png"}}
	err = a.admin.SetPhoto(newContext(), "rule-01", photo)
	assert.Equal(t, nil, err)

	rule := customEventRule("rule-01")
	rule.Name = "Facebook like v2"
	err = a.admin.Update(newContext(), rule)
	assert.Equal(t, nil, err)

	saved, err := a.admin.Get(newContext(), "rule-01")
	assert.Equal(t, nil, err)
	assert.Equal(t, "Facebook like v2", saved.Name)
	assert.Equal(t, photo, saved.Photo)
}

func TestAdmin_Update__Not_Found(t *testing.T) {
	a := newAdminTest()

	err := a.admin.Update(newContext(), customEventRule("rule-01"))
	assert.Equal(t, ErrEarningRuleNotFound, err)
}

func TestAdmin_SetActive(t *testing.T) {
	a := newAdminTest()

	_, err := a.admin.Create(newContext(), customEventRule("rule-01"))
	assert.Equal(t, nil, err)

	err = a.admin.SetActive(newContext(), "rule-01", true)
	assert.Equal(t, nil, err)
	assert.Equal(t, true, a.rows["rule-01"].Active)

	err = a.admin.SetActive(newContext(), "rule-02", true)
	assert.Equal(t, ErrEarningRuleNotFound, err)
}
