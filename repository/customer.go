package repository

import (
	"context"
	"errors"

	"github.com/QuangTung97/loyalty/model"
	"github.com/QuangTung97/loyalty/pkg/apperr"
)

var (
	// ErrCustomerExists a customer with the same id is already stored
	ErrCustomerExists = errors.New("repository: customer already exists")

	// ErrEmailRegistered ...
	ErrEmailRegistered = apperr.Duplicate("email", "email already registered")

	// ErrPhoneRegistered ...
	ErrPhoneRegistered = apperr.Duplicate("phone", "phone already registered")

	// ErrLoyaltyCardRegistered ...
	ErrLoyaltyCardRegistered = apperr.Duplicate("loyaltyCardNumber", "loyalty card already registered")
)

var customerUniqueKeys = map[string]error{
	"PRIMARY":                         ErrCustomerExists,
	"uq_customer_email":               ErrEmailRegistered,
	"uq_customer_phone":               ErrPhoneRegistered,
	"uq_customer_loyalty_card_number": ErrLoyaltyCardRegistered,
}

// Customer ...
type Customer interface {
	GetCustomer(ctx context.Context, id string) (model.Customer, error)
	FindIDByLoyaltyCard(ctx context.Context, cardNumber string) (string, error)
	FindIDByEmail(ctx context.Context, email string) (string, error)
	FindIDByPhone(ctx context.Context, phone string) (string, error)
	FindCustomerIDsByTarget(ctx context.Context, levels []string, segments []string) ([]string, error)

	InsertCustomer(ctx context.Context, customer model.Customer) error
	SetSegments(ctx context.Context, customerID string, segments []string) error
}

type customerImpl struct {
}

// NewCustomer ...
func NewCustomer() Customer {
	return &customerImpl{}
}

// GetCustomer returns sql.ErrNoRows when not found
func (c *customerImpl) GetCustomer(ctx context.Context, id string) (model.Customer, error) {
	query := `
SELECT id, name, email, phone, loyalty_card_number, status, level_id, referrer_id,
	created_at, updated_at
FROM customer WHERE id = ?
`
	var result model.Customer
	err := GetReadonly(ctx).GetContext(ctx, &result, query, id)
	if err != nil {
		return model.Customer{}, err
	}

	query = `SELECT segment_id FROM customer_segment WHERE customer_id = ? ORDER BY segment_id`
	err = GetReadonly(ctx).SelectContext(ctx, &result.Segments, query, id)
	return result, err
}

func (c *customerImpl) findID(ctx context.Context, column string, value string) (string, error) {
	query := `SELECT id FROM customer WHERE ` + column + ` = ?`
	var id string
	err := GetReadonly(ctx).GetContext(ctx, &id, query, value)
	return id, err
}

// FindIDByLoyaltyCard ...
func (c *customerImpl) FindIDByLoyaltyCard(ctx context.Context, cardNumber string) (string, error) {
	return c.findID(ctx, "loyalty_card_number", cardNumber)
}

// FindIDByEmail ...
func (c *customerImpl) FindIDByEmail(ctx context.Context, email string) (string, error) {
	return c.findID(ctx, "email", email)
}

// FindIDByPhone ...
func (c *customerImpl) FindIDByPhone(ctx context.Context, phone string) (string, error) {
	return c.findID(ctx, "phone", phone)
}

// FindCustomerIDsByTarget ...
func (c *customerImpl) FindCustomerIDsByTarget(
	ctx context.Context, levels []string, segments []string,
) ([]string, error) {
	var result []string
	if len(levels) > 0 {
		query, args, err := inQuery(`SELECT id FROM customer WHERE level_id IN (?) ORDER BY id`, levels)
		if err != nil {
			return nil, err
		}
		err = GetReadonly(ctx).SelectContext(ctx, &result, query, args...)
		return result, err
	}
	if len(segments) > 0 {
		query, args, err := inQuery(
			`SELECT DISTINCT customer_id FROM customer_segment WHERE segment_id IN (?) ORDER BY customer_id`,
			segments,
		)
		if err != nil {
			return nil, err
		}
		err = GetReadonly(ctx).SelectContext(ctx, &result, query, args...)
		return result, err
	}
	return nil, nil
}

func customerInsertError(err error) error {
	key, ok := DuplicateKey(err)
	if !ok {
		return err
	}
	if mapped, ok := customerUniqueKeys[key]; ok {
		return mapped
	}
	return err
}

// InsertCustomer returns ErrCustomerExists or one of the contact duplicate errors
// when a unique key is violated
func (c *customerImpl) InsertCustomer(ctx context.Context, customer model.Customer) error {
	query := `
INSERT INTO customer (
	id, name, email, phone, loyalty_card_number, status, level_id, referrer_id
) VALUES (
	:id, :name, :email, :phone, :loyalty_card_number, :status, :level_id, :referrer_id
)
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, customer)
	return customerInsertError(err)
}

// SetSegments replaces every segment membership of the customer
func (c *customerImpl) SetSegments(ctx context.Context, customerID string, segments []string) error {
	tx := GetTx(ctx)
	_, err := tx.ExecContext(ctx, `DELETE FROM customer_segment WHERE customer_id = ?`, customerID)
	if err != nil {
		return err
	}
	for _, segment := range segments {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO customer_segment (customer_id, segment_id) VALUES (?, ?)`,
			customerID, segment,
		)
		if err != nil {
			return err
		}
	}
	return nil
}
