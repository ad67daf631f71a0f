package command

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/voicebank/voicebank-backend/internal/adapter/repository/memory"
	"github.com/voicebank/voicebank-backend/internal/domain"
	"github.com/voicebank/voicebank-backend/internal/usecase/nlu"
	"github.com/voicebank/voicebank-backend/internal/usecase/seeder"
)

// MockLedgerRepository is a mock implementation of LedgerRepository for testing
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) GetAccount(ctx context.Context, userID string) (*domain.Account, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockLedgerRepository) ListAccounts(ctx context.Context) ([]*domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Account), args.Error(1)
}

func (m *MockLedgerRepository) GetBalance(ctx context.Context, userID string) (decimal.Decimal, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockLedgerRepository) Transfer(ctx context.Context, fromUserID, toUserID string, amount decimal.Decimal) error {
	args := m.Called(ctx, fromUserID, toUserID, amount)
	return args.Error(0)
}

func (m *MockLedgerRepository) CreateAccount(ctx context.Context, account *domain.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

// MockClassifier is a mock implementation of nlu.Classifier for testing
type MockClassifier struct {
	mock.Mock
}

func (m *MockClassifier) Classify(text string) (domain.Classification, error) {
	args := m.Called(text)
	return args.Get(0).(domain.Classification), args.Error(1)
}

func newService(ledger domain.LedgerRepository, classifier nlu.Classifier) *Service {
	return NewService(ledger, classifier, zap.NewNop())
}

func amountEquals(want int64) interface{} {
	return mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(decimal.NewFromInt(want))
	})
}

func TestProcess_BalanceInquiry(t *testing.T) {
	ledger := new(MockLedgerRepository)
	ledger.On("GetBalance", mock.Anything, "user123").
		Return(decimal.RequireFromString("1500.50"), nil)

	result := newService(ledger, nlu.NewRuleBased()).
		Process(context.Background(), "what's my balance", "user123")

	assert.True(t, result.Success)
	assert.Equal(t, domain.IntentBalanceInquiry, result.Intent)
	assert.Equal(t, "Your current balance is 1500.50 rupees", result.Response)
	assert.Nil(t, result.Amount)
	assert.Nil(t, result.Recipient)
	ledger.AssertExpectations(t)
}

func TestProcess_BalanceInquiry_UnknownUserReportsZero(t *testing.T) {
	ledger := new(MockLedgerRepository)
	ledger.On("GetBalance", mock.Anything, "ghost").Return(decimal.Zero, nil)

	result := newService(ledger, nlu.NewRuleBased()).
		Process(context.Background(), "balance please", "ghost")

	assert.True(t, result.Success)
	assert.Equal(t, "Your current balance is 0.00 rupees", result.Response)
}

func TestProcess_TransferSuccess(t *testing.T) {
	ledger := new(MockLedgerRepository)
	ledger.On("Transfer", mock.Anything, "user123", "Priya", amountEquals(500)).Return(nil)

	result := newService(ledger, nlu.NewRuleBased()).
		Process(context.Background(), "transfer 500 to Priya", "user123")

	assert.True(t, result.Success)
	assert.Equal(t, domain.IntentFundTransfer, result.Intent)
	assert.Equal(t, "Transfer successful", result.Response)
	require.NotNil(t, result.Amount)
	assert.Equal(t, "500", *result.Amount)
	require.NotNil(t, result.Recipient)
	assert.Equal(t, "Priya", *result.Recipient)
	ledger.AssertExpectations(t)
}

func TestProcess_TransferStripsCommasBeforeParsing(t *testing.T) {
	ledger := new(MockLedgerRepository)
	ledger.On("Transfer", mock.Anything, "user123", "Priya", amountEquals(1500)).Return(nil)

	result := newService(ledger, nlu.NewRuleBased()).
		Process(context.Background(), "transfer 1,500 to Priya", "user123")

	assert.True(t, result.Success)
	require.NotNil(t, result.Amount)
	assert.Equal(t, "1,500", *result.Amount, "result carries the raw candidate token")
	ledger.AssertExpectations(t)
}

func TestProcess_TransferInsufficientFunds(t *testing.T) {
	ledger := new(MockLedgerRepository)
	ledger.On("Transfer", mock.Anything, "user123", "Priya", mock.Anything).
		Return(domain.ErrInsufficientFunds)

	result := newService(ledger, nlu.NewRuleBased()).
		Process(context.Background(), "transfer 99999 to Priya", "user123")

	assert.False(t, result.Success)
	assert.Equal(t, "Insufficient funds", result.Response)
}

func TestProcess_TransferFromUnknownAccount(t *testing.T) {
	ledger := new(MockLedgerRepository)
	ledger.On("Transfer", mock.Anything, "ghost", "Priya", mock.Anything).
		Return(domain.ErrAccountNotFound)

	result := newService(ledger, nlu.NewRuleBased()).
		Process(context.Background(), "transfer 10 to Priya", "ghost")

	assert.False(t, result.Success)
	assert.Equal(t, "Insufficient funds", result.Response)
}

func TestProcess_EmptyTextShortCircuits(t *testing.T) {
	ledger := new(MockLedgerRepository)

	result := newService(ledger, nlu.NewRuleBased()).
		Process(context.Background(), "", "user123")

	assert.False(t, result.Success)
	assert.Equal(t, domain.IntentError, result.Intent)
	assert.Equal(t, "No command detected", result.Response)
	assert.Nil(t, result.Amount)
	assert.Nil(t, result.Recipient)
	ledger.AssertNotCalled(t, "GetBalance", mock.Anything, mock.Anything)
	ledger.AssertNotCalled(t, "Transfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestProcess_FailureTranscriptShortCircuits(t *testing.T) {
	tests := []string{
		"Could not understand audio",
		"API unavailable: quota exceeded",
		"Microphone error: device busy",
	}

	for _, text := range tests {
		t.Run(text, func(t *testing.T) {
			ledger := new(MockLedgerRepository)
			classifier := new(MockClassifier)

			result := newService(ledger, classifier).
				Process(context.Background(), text, "user123")

			assert.False(t, result.Success)
			assert.Equal(t, domain.IntentError, result.Intent)
			assert.Equal(t, text, result.Response, "the opaque failure string is surfaced as-is")
			classifier.AssertNotCalled(t, "Classify", mock.Anything)
		})
	}
}

func TestProcess_TransferWithoutAmountFallsThrough(t *testing.T) {
	ledger := new(MockLedgerRepository)

	result := newService(ledger, nlu.NewRuleBased()).
		Process(context.Background(), "transfer to Priya", "user123")

	assert.False(t, result.Success)
	assert.Equal(t, domain.IntentFundTransfer, result.Intent)
	assert.Equal(t, "Sorry, I didn't understand that banking command. Please try again.", result.Response)
	assert.Nil(t, result.Amount)
	require.NotNil(t, result.Recipient)
	assert.Equal(t, "Priya", *result.Recipient)
	ledger.AssertNotCalled(t, "Transfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestProcess_TransferWithoutRecipientFallsThrough(t *testing.T) {
	ledger := new(MockLedgerRepository)

	result := newService(ledger, nlu.NewRuleBased()).
		Process(context.Background(), "transfer 500", "user123")

	assert.False(t, result.Success)
	assert.Equal(t, "Sorry, I didn't understand that banking command. Please try again.", result.Response)
	require.NotNil(t, result.Amount)
	assert.Equal(t, "500", *result.Amount)
	assert.Nil(t, result.Recipient)
}

func TestProcess_NonNumericAmountIsNotExtracted(t *testing.T) {
	ledger := new(MockLedgerRepository)

	result := newService(ledger, nlu.NewRuleBased()).
		Process(context.Background(), "transfer abc to Priya", "user123")

	assert.False(t, result.Success)
	assert.Equal(t, "Sorry, I didn't understand that banking command. Please try again.", result.Response)
	assert.Nil(t, result.Amount)
}

func TestProcess_UnknownCommand(t *testing.T) {
	ledger := new(MockLedgerRepository)

	result := newService(ledger, nlu.NewRuleBased()).
		Process(context.Background(), "hello there", "user123")

	assert.False(t, result.Success)
	assert.Equal(t, domain.IntentUnknown, result.Intent)
	assert.Equal(t, "Sorry, I didn't understand that banking command. Please try again.", result.Response)
}

// An alternative classifier can hand back amount candidates the rule set
// would never produce; the parse guard catches them.
func TestProcess_UnparseableAmountCandidate(t *testing.T) {
	ledger := new(MockLedgerRepository)
	classifier := new(MockClassifier)
	classifier.On("Classify", "transfer abc to Priya").Return(domain.Classification{
		Intent:     domain.IntentFundTransfer,
		Amounts:    []string{"abc"},
		Recipients: []string{"Priya"},
	}, nil)

	result := newService(ledger, classifier).
		Process(context.Background(), "transfer abc to Priya", "user123")

	assert.False(t, result.Success)
	assert.Equal(t, "Invalid amount specified", result.Response)
	require.NotNil(t, result.Amount)
	assert.Equal(t, "abc", *result.Amount)
	ledger.AssertNotCalled(t, "Transfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestProcess_ClassifierErrorYieldsUnknown(t *testing.T) {
	ledger := new(MockLedgerRepository)
	classifier := new(MockClassifier)
	classifier.On("Classify", mock.Anything).
		Return(domain.Classification{}, errors.New("model unavailable"))

	result := newService(ledger, classifier).
		Process(context.Background(), "transfer 500 to Priya", "user123")

	assert.False(t, result.Success)
	assert.Equal(t, domain.IntentUnknown, result.Intent)
	assert.Equal(t, "Sorry, I didn't understand that banking command. Please try again.", result.Response)
}

// Round-trip over a real store: transfer 500 from the seeded 1500.50 and the
// next balance inquiry reports 1000.50.
func TestProcess_RoundTripAgainstSeededLedger(t *testing.T) {
	ctx := context.Background()
	ledger := memory.NewLedgerRepository()
	require.NoError(t, seeder.NewAccountSeeder(ledger).Seed(ctx))

	service := newService(ledger, nlu.NewRuleBased())

	transfer := service.Process(ctx, "transfer 500 to Priya", "user123")
	assert.True(t, transfer.Success)
	assert.Equal(t, "Transfer successful", transfer.Response)

	inquiry := service.Process(ctx, "what's my balance", "user123")
	assert.True(t, inquiry.Success)
	assert.Equal(t, "Your current balance is 1000.50 rupees", inquiry.Response)

	account, err := ledger.GetAccount(ctx, "user123")
	require.NoError(t, err)
	require.Len(t, account.Transactions, 4)
	assert.Equal(t, "Transfer to Priya", account.Transactions[3].Description)
}
