package sentry

import (
	"context"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/ideafy1/newsbot/config"
)

// Module provides the error reporter for fx DI
var Module = fx.Module("sentry",
	fx.Provide(provideReporter),
)

// provideReporter creates the reporter and flushes it on shutdown
func provideReporter(lc fx.Lifecycle, cfg *config.SentryConfig, service *config.ServiceConfig, logger zerolog.Logger) (*Reporter, error) {
	reporter, err := NewReporter(cfg.DSN, cfg.Environment, service.Name, logger.With().Str("component", "sentry").Logger())
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			reporter.Flush()
			return nil
		},
	})

	return reporter, nil
}
