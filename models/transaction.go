package models

import (
	"errors"
	"time"
)

// Transaction is a single income or expense record. ID is assigned by the
// store on creation and is empty before persistence. Date is kept as a
// calendar-date string because records written by older clients may carry
// values that don't parse; aggregation handles those explicitly instead of
// failing at decode time.
type Transaction struct {
	ID          string    `json:"id,omitempty"`
	OwnerID     string    `json:"userId"`
	Amount      float64   `json:"amount"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Date        string    `json:"date"`
	Type        string    `json:"type"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}

var (
	ErrMissingFields  = errors.New("please fill in all fields")
	ErrNegativeAmount = errors.New("amount must be greater than zero")
	ErrBadDate        = errors.New("date must be in YYYY-MM-DD format")
	ErrBadType        = errors.New("type must be expense or income")
)

// Validate checks a transaction before it is sent to the store. Mirrors the
// creation form: all fields required, positive amount, parsable date.
func (t *Transaction) Validate() error {
	if t.Description == "" || t.Category == "" || t.Date == "" {
		return ErrMissingFields
	}
	if t.Amount <= 0 {
		return ErrNegativeAmount
	}
	if _, err := time.Parse(DateLayout, t.Date); err != nil {
		return ErrBadDate
	}
	if t.Type != TypeExpense && t.Type != TypeIncome {
		return ErrBadType
	}
	return nil
}

// ParsedDate returns the transaction's calendar date. ok is false when the
// stored value doesn't parse; callers doing date-dependent work must skip
// such records rather than error.
func (t *Transaction) ParsedDate() (time.Time, bool) {
	d, err := time.Parse(DateLayout, t.Date)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}
