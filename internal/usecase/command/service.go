package command

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/voicebank/voicebank-backend/internal/domain"
	"github.com/voicebank/voicebank-backend/internal/speech"
	"github.com/voicebank/voicebank-backend/internal/usecase/nlu"
)

// User-facing responses. Each failure mode maps to exactly one message.
const (
	responseNoCommand       = "No command detected"
	responseNotUnderstood   = "Sorry, I didn't understand that banking command. Please try again."
	responseInvalidAmount   = "Invalid amount specified"
	responseTransferOK      = "Transfer successful"
	responseTransferFailure = "Insufficient funds"
)

// Service orchestrates a single command: input rejection, classification,
// dispatch against the ledger, and response formatting
type Service struct {
	Ledger     domain.LedgerRepository
	Classifier nlu.Classifier

	logger *zap.Logger
}

// NewService creates a new command pipeline instance
func NewService(ledger domain.LedgerRepository, classifier nlu.Classifier, logger *zap.Logger) *Service {
	return &Service{
		Ledger:     ledger,
		Classifier: classifier,
		logger:     logger,
	}
}

// Process runs one command through the pipeline. It is a single deterministic
// pass over (text, userID) plus current ledger state: no retries, no
// cross-command state. Every failure mode is returned as data inside the
// CommandResult; Process itself never fails.
func (s *Service) Process(ctx context.Context, text, userID string) domain.CommandResult {
	// Upstream failures are rejected before classification so a transcription
	// error string is never parsed as a command.
	if text == "" {
		return domain.CommandResult{
			Response: responseNoCommand,
			Intent:   domain.IntentError,
		}
	}
	if speech.IsFailureTranscript(text) {
		return domain.CommandResult{
			Response: text,
			Intent:   domain.IntentError,
		}
	}

	classification, err := s.Classifier.Classify(text)
	if err != nil {
		// Classifiers are normally wrapped with a rule-based fallback; a bare
		// classifier error still must not escape the pipeline.
		s.logger.Warn("classifier failed", zap.Error(err))
		classification = domain.Classification{Intent: domain.IntentUnknown}
	}

	result := domain.CommandResult{
		Intent:    classification.Intent,
		Amount:    firstOrNil(classification.Amounts),
		Recipient: firstOrNil(classification.Recipients),
	}

	switch {
	case classification.Intent == domain.IntentBalanceInquiry:
		s.dispatchBalanceInquiry(ctx, userID, &result)
	case classification.Intent == domain.IntentFundTransfer &&
		len(classification.Amounts) > 0 && len(classification.Recipients) > 0:
		s.dispatchTransfer(ctx, userID, classification, &result)
	default:
		result.Response = responseNotUnderstood
	}
	return result
}

func (s *Service) dispatchBalanceInquiry(ctx context.Context, userID string, result *domain.CommandResult) {
	balance, err := s.Ledger.GetBalance(ctx, userID)
	if err != nil {
		s.logger.Error("balance lookup failed", zap.String("user_id", userID), zap.Error(err))
		result.Response = responseNotUnderstood
		return
	}
	result.Success = true
	result.Response = "Your current balance is " + balance.StringFixed(2) + " rupees"
}

func (s *Service) dispatchTransfer(ctx context.Context, userID string, classification domain.Classification, result *domain.CommandResult) {
	raw := strings.ReplaceAll(classification.Amounts[0], ",", "")
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		result.Response = responseInvalidAmount
		return
	}

	recipient := classification.Recipients[0]
	if err := s.Ledger.Transfer(ctx, userID, recipient, amount); err != nil {
		s.logger.Info("transfer rejected",
			zap.String("user_id", userID),
			zap.String("recipient", recipient),
			zap.Error(err))
		result.Response = responseTransferFailure
		return
	}

	result.Success = true
	result.Response = responseTransferOK
}

func firstOrNil(tokens []string) *string {
	if len(tokens) == 0 {
		return nil
	}
	return &tokens[0]
}
