package speech

import (
	"context"
	"strings"
)

// SpeechToText converts captured audio into plain command text.
// Engines must convert their own failures into a failure transcript (see
// IsFailureTranscript) before the text reaches the command pipeline.
type SpeechToText interface {
	Transcribe(ctx context.Context, audio []byte, language string) (string, error)
}

// failurePrefixes are the transcript markers engines emit when capture or
// transcription fails upstream of the pipeline
var failurePrefixes = []string{
	"Could not",
	"API unavailable",
	"Microphone error",
	"Service unavailable",
	"Capture error",
}

// IsFailureTranscript reports whether text is an upstream failure marker
// rather than a user command
func IsFailureTranscript(text string) bool {
	for _, prefix := range failurePrefixes {
		if strings.HasPrefix(text, prefix) {
			return true
		}
	}
	return false
}
