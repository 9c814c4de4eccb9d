package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errNotEnough = Domain("not_enough_points", "not enough points")

func TestToPayload__Domain_Error_Wrapped(t *testing.T) {
	err := fmt.Errorf("buy campaign: %w", errNotEnough)

	status, payload := ToPayload(err)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, Payload{Error: "not enough points", Code: "not_enough_points"}, payload)
	assert.Equal(t, true, errors.Is(err, errNotEnough))
	assert.Equal(t, KindDomain, KindOf(err))
}

func TestToPayload__Not_Found(t *testing.T) {
	status, payload := ToPayload(NotFound("campaign_not_found", "campaign not found"))
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "campaign not found", payload.Error)
}

func TestToPayload__Duplicate_Has_Field(t *testing.T) {
	status, payload := ToPayload(Duplicate("eventName", "event name already in use"))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, map[string]string{"eventName": "event name already in use"}, payload.Fields)
}

func TestToPayload__Field_Errors(t *testing.T) {
	err := FieldErrors{
		Validation("name", "is required"),
		Validation("pointValue", "must be greater than 0"),
	}
	status, payload := ToPayload(err)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, Payload{
		Error: "validation failed",
		Code:  "validation",
		Fields: map[string]string{
			"name":       "is required",
			"pointValue": "must be greater than 0",
		},
	}, payload)
	assert.Equal(t, KindValidation, KindOf(err))
}

func TestToPayload__Unknown_Error_Is_Hidden(t *testing.T) {
	status, payload := ToPayload(errors.New("dial tcp: connection refused"))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, Payload{Error: "internal error", Code: "internal"}, payload)
	assert.Equal(t, KindInternal, KindOf(errors.New("x")))
}
