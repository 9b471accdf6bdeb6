package logger

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/ideafy1/newsbot/config"
)

// Module provides logger for fx dependency injection
var Module = fx.Module("logger",
	fx.Provide(provideLogger),
)

// provideLogger creates logger from config
func provideLogger(cfg *config.LoggingConfig, service *config.ServiceConfig) zerolog.Logger {
	return New(cfg.Level).With().Str("service", service.Name).Logger()
}
