package speech

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsFailureTranscript(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"transcription failure", "Could not understand audio", true},
		{"transcription service failure", "API unavailable: quota exceeded", true},
		{"capture failure", "Microphone error: device busy", true},
		{"service outage", "Service unavailable", true},
		{"capture error marker", "Capture error: no input device", true},
		{"ordinary command", "transfer 500 to Priya", false},
		{"marker mid-sentence is not a failure", "I Could not decide", false},
		{"empty text", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsFailureTranscript(tt.text))
		})
	}
}
