// Package sentry contains error reporting infrastructure
package sentry

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog"
)

const flushTimeout = 2 * time.Second

// Reporter sends errors to Sentry. A Reporter without DSN is a no-op.
type Reporter struct {
	hub    *sentry.Hub
	logger zerolog.Logger
}

// NewReporter creates a reporter; empty dsn disables reporting
func NewReporter(dsn, environment, release string, logger zerolog.Logger) (*Reporter, error) {
	if dsn == "" {
		logger.Info().Msg("SENTRY_DSN is empty, error reporting disabled")
		return &Reporter{logger: logger}, nil
	}

	client, err := sentry.NewClient(sentry.ClientOptions{
		Dsn:         dsn,
		Environment: environment,
		Release:     release,
		BeforeSend: func(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
			event.User = sentry.User{}
			return event
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create sentry client: %w", err)
	}

	logger.Info().Str("environment", environment).Msg("Sentry error reporting enabled")

	return &Reporter{
		hub:    sentry.NewHub(client, sentry.NewScope()),
		logger: logger,
	}, nil
}

// Enabled reports whether errors are actually sent
func (r *Reporter) Enabled() bool {
	return r != nil && r.hub != nil
}

// CaptureError reports err with the given tags
func (r *Reporter) CaptureError(err error, tags map[string]string) {
	if err == nil || !r.Enabled() {
		return
	}

	r.hub.WithScope(func(scope *sentry.Scope) {
		for k, v := range tags {
			scope.SetTag(k, v)
		}
		r.hub.CaptureException(err)
	})
}

// CapturePanic reports a recovered panic value
func (r *Reporter) CapturePanic(recovered any, tags map[string]string) {
	if recovered == nil || !r.Enabled() {
		return
	}

	r.hub.WithScope(func(scope *sentry.Scope) {
		scope.SetLevel(sentry.LevelFatal)
		for k, v := range tags {
			scope.SetTag(k, v)
		}
		r.hub.Recover(recovered)
	})
}

// Flush waits for buffered events to be delivered
func (r *Reporter) Flush() {
	if !r.Enabled() {
		return
	}
	if !r.hub.Flush(flushTimeout) {
		r.logger.Warn().Msg("Sentry flush timed out")
	}
}
