package nlu

import (
	"strings"

	"github.com/voicebank/voicebank-backend/internal/domain"
)

// RuleBased is the baseline classifier: case-insensitive keyword rules for
// the intent and a token scan for amount and recipient candidates.
// It is pure and deterministic; classifying the same text twice yields
// identical results.
type RuleBased struct{}

// NewRuleBased creates a new rule-based classifier
func NewRuleBased() *RuleBased {
	return &RuleBased{}
}

// Classify never returns an error; the rule set has an answer for any input
func (c *RuleBased) Classify(text string) (domain.Classification, error) {
	return domain.Classification{
		Intent:     detectIntent(text),
		Amounts:    extractAmounts(text),
		Recipients: extractRecipients(text),
	}, nil
}

// detectIntent applies the keyword rules in priority order:
// "balance" wins over "transfer"/"send", anything else is unknown
func detectIntent(text string) domain.Intent {
	t := strings.ToLower(strings.TrimSpace(text))
	switch {
	case strings.Contains(t, "balance"):
		return domain.IntentBalanceInquiry
	case strings.Contains(t, "transfer"), strings.Contains(t, "send"):
		return domain.IntentFundTransfer
	default:
		return domain.IntentUnknown
	}
}

// extractAmounts collects whitespace tokens that are all digits once
// thousands-separator commas are removed, in left-to-right order
func extractAmounts(text string) []string {
	var amounts []string
	for _, token := range strings.Fields(text) {
		if isAmountToken(token) {
			amounts = append(amounts, token)
		}
	}
	return amounts
}

func isAmountToken(token string) bool {
	stripped := strings.ReplaceAll(token, ",", "")
	if stripped == "" {
		return false
	}
	for _, r := range stripped {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// extractRecipients collects the token following each "to" or "for"
// (case-insensitive), unless that marker is the last token
func extractRecipients(text string) []string {
	tokens := strings.Fields(text)
	var recipients []string
	for i, token := range tokens {
		if i+1 >= len(tokens) {
			break
		}
		switch strings.ToLower(token) {
		case "to", "for":
			recipients = append(recipients, tokens[i+1])
		}
	}
	return recipients
}
