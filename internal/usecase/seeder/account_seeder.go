package seeder

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/voicebank/voicebank-backend/internal/domain"
)

// AccountSeeder provisions the demo accounts the system starts with.
// No command operation creates accounts, so seeding at startup is the only
// way they come into existence.
type AccountSeeder struct {
	repo domain.LedgerRepository
}

// NewAccountSeeder creates a new AccountSeeder instance
func NewAccountSeeder(repo domain.LedgerRepository) *AccountSeeder {
	return &AccountSeeder{
		repo: repo,
	}
}

// Seed ensures all demo accounts exist in the ledger
// Accounts that already exist are left untouched
func (s *AccountSeeder) Seed(ctx context.Context) error {
	for _, account := range DemoAccounts() {
		if err := account.Validate(); err != nil {
			return err
		}

		if err := s.repo.CreateAccount(ctx, account); err != nil {
			if errors.Is(err, domain.ErrDuplicateAccount) {
				continue
			}
			return err
		}
	}
	return nil
}

// DemoAccounts returns the fixed account set established at process start
func DemoAccounts() []*domain.Account {
	return []*domain.Account{
		{
			UserID:      "user123",
			DisplayName: "Priyanshu Tiwari",
			Balance:     decimal.RequireFromString("1500.50"),
			Transactions: []domain.Transaction{
				{
					ID:          uuid.New(),
					Date:        date(2024, time.May, 1),
					Description: "Salary Credit",
					Amount:      decimal.RequireFromString("2000.00"),
				},
				{
					ID:          uuid.New(),
					Date:        date(2024, time.May, 3),
					Description: "Grocery Store",
					Amount:      decimal.RequireFromString("-150.75"),
				},
				{
					ID:          uuid.New(),
					Date:        date(2024, time.May, 5),
					Description: "Electricity Bill",
					Amount:      decimal.RequireFromString("-85.00"),
				},
			},
		},
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
