package actions

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Result is the outcome of a remote action. Failures are reported as data,
// matching the command pipeline's convention.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Executor runs explicitly named side-effect actions. This channel is
// unrelated to ledger mutation and is never invoked by the command pipeline.
type Executor interface {
	Execute(ctx context.Context, action string, params map[string]string) Result
}

const (
	demoSiteURL     = "https://example.com"
	maxResponseSize = 1 << 20
)

var titlePattern = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)

// RemoteExecutor executes actions against remote sites. It stays disabled
// unless explicitly enabled through configuration.
type RemoteExecutor struct {
	enabled bool
	client  *http.Client
	logger  *zap.Logger
}

// NewRemoteExecutor creates a remote executor gated by the enabled flag
func NewRemoteExecutor(enabled bool, logger *zap.Logger) *RemoteExecutor {
	return &RemoteExecutor{
		enabled: enabled,
		client:  &http.Client{Timeout: 10 * time.Second},
		logger:  logger,
	}
}

// Execute runs a named action and reports the outcome as data
func (e *RemoteExecutor) Execute(ctx context.Context, action string, params map[string]string) Result {
	if !e.enabled {
		return Result{Message: "Remote actions disabled. Set VOICEBANK_ALLOW_REMOTE_ACTIONS=1 to enable."}
	}

	switch action {
	case "open_demo_site":
		return e.openDemoSite(ctx)
	default:
		return Result{Message: fmt.Sprintf("Unknown action: %s", action)}
	}
}

func (e *RemoteExecutor) openDemoSite(ctx context.Context) Result {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, demoSiteURL, nil)
	if err != nil {
		return Result{Message: err.Error()}
	}

	resp, err := e.client.Do(req)
	if err != nil {
		e.logger.Warn("remote action failed",
			zap.String("action", "open_demo_site"),
			zap.Error(err))
		return Result{Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return Result{Message: err.Error()}
	}

	var title string
	if m := titlePattern.FindSubmatch(body); m != nil {
		title = strings.TrimSpace(string(m[1]))
	}
	return Result{
		Success: true,
		Message: fmt.Sprintf("Opened site with title: %s", title),
	}
}
