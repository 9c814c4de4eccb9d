package model

import (
	"database/sql"
	"strings"
	"time"
)

// Customer ...
type Customer struct {
	ID                string         `db:"id"`
	Name              string         `db:"name"`
	Email             sql.NullString `db:"email"`
	Phone             sql.NullString `db:"phone"`
	LoyaltyCardNumber sql.NullString `db:"loyalty_card_number"`
	Status            CustomerStatus `db:"status"`
	LevelID           sql.NullString `db:"level_id"`
	ReferrerID        sql.NullString `db:"referrer_id"`

	Segments []string `db:"-"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// CustomerStatus ...
type CustomerStatus int

const (
	// CustomerStatusNew ...
	CustomerStatusNew CustomerStatus = 1

	// CustomerStatusActiveNoCard ...
	CustomerStatusActiveNoCard CustomerStatus = 2

	// CustomerStatusActiveCard ...
	CustomerStatusActiveCard CustomerStatus = 3

	// CustomerStatusBlocked ...
	CustomerStatusBlocked CustomerStatus = 4

	// CustomerStatusDeleted ...
	CustomerStatusDeleted CustomerStatus = 5
)

var customerStatusNames = map[CustomerStatus]string{
	CustomerStatusNew:          "new",
	CustomerStatusActiveNoCard: "active-no-card",
	CustomerStatusActiveCard:   "active-card",
	CustomerStatusBlocked:      "blocked",
	CustomerStatusDeleted:      "deleted",
}

// String ...
func (s CustomerStatus) String() string {
	return customerStatusNames[s]
}

// ParseCustomerStatus ...
func ParseCustomerStatus(s string) (CustomerStatus, bool) {
	for status, name := range customerStatusNames {
		if name == s {
			return status, true
		}
	}
	return 0, false
}

// CustomerData is the unstructured contact data attached to a registered transaction
type CustomerData struct {
	Name              string `json:"name" yaml:"name"`
	Email             string `json:"email" yaml:"email"`
	Phone             string `json:"phone" yaml:"phone"`
	LoyaltyCardNumber string `json:"loyaltyCardNumber" yaml:"loyaltyCardNumber"`
}

// Normalized trims every contact field and lower cases the email,
// the form looked up in the customer directory
func (d CustomerData) Normalized() CustomerData {
	return CustomerData{
		Name:              strings.TrimSpace(d.Name),
		Email:             strings.ToLower(strings.TrimSpace(d.Email)),
		Phone:             strings.TrimSpace(d.Phone),
		LoyaltyCardNumber: strings.TrimSpace(d.LoyaltyCardNumber),
	}
}

// IsEmpty no contact field is set
func (d CustomerData) IsEmpty() bool {
	return d.Email == "" && d.Phone == "" && d.LoyaltyCardNumber == ""
}
