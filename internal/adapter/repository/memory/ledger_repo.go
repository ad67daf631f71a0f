package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/voicebank/voicebank-backend/internal/domain"
)

// ledgerRepository implements domain.LedgerRepository with process-memory
// state. A single mutex serializes all access so that a transfer's debit and
// its transaction append happen in one critical section.
type ledgerRepository struct {
	mu       sync.Mutex
	accounts map[string]*domain.Account
}

// NewLedgerRepository creates an empty in-memory ledger
func NewLedgerRepository() domain.LedgerRepository {
	return &ledgerRepository{
		accounts: make(map[string]*domain.Account),
	}
}

// GetAccount retrieves a snapshot of an account by user ID
func (r *ledgerRepository) GetAccount(ctx context.Context, userID string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[userID]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return snapshot(account), nil
}

// ListAccounts retrieves snapshots of all accounts, ordered by user ID
func (r *ledgerRepository) ListAccounts(ctx context.Context) ([]*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*domain.Account, 0, len(r.accounts))
	for _, account := range r.accounts {
		out = append(out, snapshot(account))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].UserID < out[j].UserID
	})
	return out, nil
}

// GetBalance returns the current balance for a user ID
// Unknown user IDs yield a zero balance and no error
func (r *ledgerRepository) GetBalance(ctx context.Context, userID string) (decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[userID]
	if !ok {
		return decimal.Zero, nil
	}
	return account.Balance, nil
}

// Transfer debits fromUserID by amount and appends the matching debit
// transaction to its history. Transfers are one-sided: the recipient is never
// credited.
func (r *ledgerRepository) Transfer(ctx context.Context, fromUserID, toUserID string, amount decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	from, ok := r.accounts[fromUserID]
	if !ok {
		return domain.ErrAccountNotFound
	}
	if from.Balance.LessThan(amount) {
		return domain.ErrInsufficientFunds
	}

	// Debit and append under the same lock so the balance always equals the
	// opening balance plus the sum of recorded transactions.
	from.Balance = from.Balance.Sub(amount)
	from.Transactions = append(from.Transactions, domain.Transaction{
		ID:          uuid.New(),
		Date:        today(),
		Description: "Transfer to " + toUserID,
		Amount:      amount.Neg(),
	})
	return nil
}

// CreateAccount provisions a new account
func (r *ledgerRepository) CreateAccount(ctx context.Context, account *domain.Account) error {
	if err := account.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[account.UserID]; ok {
		return domain.ErrDuplicateAccount
	}
	r.accounts[account.UserID] = snapshot(account)
	return nil
}

// snapshot returns a deep-enough copy of an account so callers cannot reach
// internal state through the returned pointer
func snapshot(account *domain.Account) *domain.Account {
	cp := *account
	cp.Transactions = make([]domain.Transaction, len(account.Transactions))
	copy(cp.Transactions, account.Transactions)
	return &cp
}

// today returns the current calendar date with no time-of-day component
func today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
