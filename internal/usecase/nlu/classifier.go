package nlu

import "github.com/voicebank/voicebank-backend/internal/domain"

// Classifier turns raw command text into an intent plus candidate entities.
// Implementations are interchangeable behind this contract; the pipeline
// depends only on the interface.
type Classifier interface {
	Classify(text string) (domain.Classification, error)
}
