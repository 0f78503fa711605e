// Package analytics forwards product events to PostHog.
package analytics

import (
	"log/slog"

	"github.com/posthog/posthog-go"
)

// Tracker records a product analytics event for a user.
type Tracker interface {
	Track(distinctID, event string, properties map[string]any)
}

// Noop drops every event.
type Noop struct{}

func (Noop) Track(string, string, map[string]any) {}

// PosthogTracker wraps a posthog.Client and is safe to use when PostHog is not configured.
type PosthogTracker struct {
	client posthog.Client
	logger *slog.Logger
}

var _ Tracker = (*PosthogTracker)(nil)

// NewPosthogTracker returns a tracker that does nothing when apiKey is empty.
func NewPosthogTracker(apiKey, endpoint string, logger *slog.Logger) *PosthogTracker {
	if apiKey == "" {
		logger.Warn("Posthog API key is empty, not initializing posthog client.")
		return &PosthogTracker{logger: logger}
	}
	client, err := posthog.NewWithConfig(apiKey, posthog.Config{Endpoint: endpoint})
	if err != nil {
		logger.Error("Failed to initialize posthog client", slog.String("error", err.Error()))
		return &PosthogTracker{logger: logger}
	}
	logger.Info("Posthog client initialized", slog.String("endpoint", endpoint))
	return &PosthogTracker{client: client, logger: logger}
}

// IsInitialized reports whether events are actually sent.
func (t *PosthogTracker) IsInitialized() bool {
	return t != nil && t.client != nil
}

func (t *PosthogTracker) Track(distinctID, event string, properties map[string]any) {
	if !t.IsInitialized() {
		return
	}
	t.logger.Debug("Enqueueing event", slog.String("distinct_id", distinctID), slog.String("event", event))
	if err := t.client.Enqueue(posthog.Capture{
		DistinctId: distinctID,
		Event:      event,
		Properties: properties,
	}); err != nil {
		t.logger.Warn("Failed to enqueue posthog event", slog.String("event", event), slog.String("error", err.Error()))
	}
}

// Close flushes pending events.
func (t *PosthogTracker) Close() {
	if !t.IsInitialized() {
		return
	}
	if err := t.client.Close(); err != nil {
		t.logger.Warn("Failed to close posthog client", slog.String("error", err.Error()))
	}
}
