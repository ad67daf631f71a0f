package speech

import "context"

// Synthesizer renders a response string as audio. The core never depends on
// the produced audio; presentation layers plug an engine in behind this
// contract.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, language string) ([]byte, error)
}
