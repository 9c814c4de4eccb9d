package repository

import (
	"errors"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
)

func newDuplicateError(key string) error {
	return &mysql.MySQLError{
		Number:  1062,
		Message: "Duplicate entry 'user@example.com' for key '" + key + "'",
	}
}

func TestDuplicateKey(t *testing.T) {
	key, ok := DuplicateKey(newDuplicateError("customer.uq_customer_email"))
	assert.Equal(t, true, ok)
	assert.Equal(t, "uq_customer_email", key)

	key, ok = DuplicateKey(newDuplicateError("uq_customer_phone"))
	assert.Equal(t, true, ok)
	assert.Equal(t, "uq_customer_phone", key)

	_, ok = DuplicateKey(&mysql.MySQLError{Number: 1213, Message: "Deadlock found"})
	assert.Equal(t, false, ok)

	_, ok = DuplicateKey(errors.New("other"))
	assert.Equal(t, false, ok)
}

func TestCustomerInsertError(t *testing.T) {
	assert.Equal(t, ErrCustomerExists, customerInsertError(newDuplicateError("customer.PRIMARY")))
	assert.Equal(t, ErrEmailRegistered, customerInsertError(newDuplicateError("customer.uq_customer_email")))
	assert.Equal(t, ErrPhoneRegistered, customerInsertError(newDuplicateError("uq_customer_phone")))
	assert.Equal(t, ErrLoyaltyCardRegistered,
		customerInsertError(newDuplicateError("customer.uq_customer_loyalty_card_number")))

	otherKey := newDuplicateError("customer.uq_other")
	assert.Equal(t, otherKey, customerInsertError(otherKey))

	assert.Equal(t, nil, customerInsertError(nil))
}
