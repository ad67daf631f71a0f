package domain

// Intent is the classified purpose of a banking command
type Intent string

const (
	IntentBalanceInquiry Intent = "balance_inquiry"
	IntentFundTransfer   Intent = "fund_transfer"
	IntentUnknown        Intent = "unknown"
	IntentError          Intent = "error"
)

// Classification is the outcome of running a classifier over raw command text
// Amounts and Recipients hold candidate tokens in order of appearance; the
// pipeline validates plausibility, not the classifier
type Classification struct {
	Intent     Intent
	Amounts    []string
	Recipients []string
}

// CommandResult is the uniform result shape returned for every processed
// command. Amount and Recipient are nil when no candidate was extracted and
// serialize as explicit nulls so every caller sees the same shape.
type CommandResult struct {
	Success   bool    `json:"success"`
	Response  string  `json:"response"`
	Intent    Intent  `json:"intent"`
	Amount    *string `json:"amount"`
	Recipient *string `json:"recipient"`
}
