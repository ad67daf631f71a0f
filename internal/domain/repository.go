package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// LedgerRepository defines the interface for account and transaction state
type LedgerRepository interface {
	// GetAccount retrieves a snapshot of an account by user ID
	// Returns ErrAccountNotFound if the user ID is unknown
	GetAccount(ctx context.Context, userID string) (*Account, error)

	// ListAccounts retrieves snapshots of all accounts, ordered by user ID
	ListAccounts(ctx context.Context) ([]*Account, error)

	// GetBalance returns the current balance for a user ID
	// Unknown user IDs yield a zero balance and no error
	GetBalance(ctx context.Context, userID string) (decimal.Decimal, error)

	// Transfer debits fromUserID by amount and appends the matching
	// transaction to its history. The two mutations are atomic: either both
	// happen or neither does. The recipient is not credited; it is a
	// free-text name, not required to be a ledger account.
	// Returns ErrAccountNotFound or ErrInsufficientFunds on precondition
	// failure, with no state change.
	Transfer(ctx context.Context, fromUserID, toUserID string, amount decimal.Decimal) error

	// CreateAccount provisions a new account. Only the startup seeder calls
	// this; no command creates accounts.
	CreateAccount(ctx context.Context, account *Account) error
}
