package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account represents a user account in the ledger
// Transactions are append-only; insertion order is the chronological order of
// mutation, independent of the Date field
type Account struct {
	UserID       string
	DisplayName  string
	Balance      decimal.Decimal
	Transactions []Transaction
}

// Transaction represents a single dated monetary movement against an account
// Amount is signed: positive = credit, negative = debit
type Transaction struct {
	ID          uuid.UUID
	Date        time.Time // calendar date, no time-of-day
	Description string
	Amount      decimal.Decimal
}

// Validate ensures the account adheres to domain rules
// Returns an error if validation fails
func (a *Account) Validate() error {
	if a.UserID == "" {
		return errors.New("account user ID cannot be empty")
	}
	if a.DisplayName == "" {
		return errors.New("account display name cannot be empty")
	}
	return nil
}
