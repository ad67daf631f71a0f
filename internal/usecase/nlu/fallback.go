package nlu

import (
	"fmt"

	"github.com/voicebank/voicebank-backend/internal/domain"
)

// FallbackClassifier runs a primary classifier and substitutes the fallback's
// result whenever the primary errors or panics. This is the seam for an
// optional statistical classifier: its failures never reach the pipeline.
type FallbackClassifier struct {
	primary  Classifier
	fallback Classifier
}

// WithFallback wraps primary so that any failure yields fallback's result
func WithFallback(primary, fallback Classifier) *FallbackClassifier {
	return &FallbackClassifier{
		primary:  primary,
		fallback: fallback,
	}
}

// Classify returns the primary classification, or the fallback classification
// when the primary fails
func (c *FallbackClassifier) Classify(text string) (domain.Classification, error) {
	result, err := c.classifyPrimary(text)
	if err != nil {
		return c.fallback.Classify(text)
	}
	return result, nil
}

// classifyPrimary converts a primary-classifier panic into an error so the
// caller can fall back
func (c *FallbackClassifier) classifyPrimary(text string) (result domain.Classification, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("classifier panic: %v", r)
		}
	}()
	return c.primary.Classify(text)
}
