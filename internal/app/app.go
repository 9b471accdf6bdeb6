// Package app contains application bootstrap
package app

import (
	"go.uber.org/fx"

	"github.com/ideafy1/newsbot/config"
	"github.com/ideafy1/newsbot/internal/domain"
	"github.com/ideafy1/newsbot/internal/infrastructure"
)

// CreateApp creates fx application with all modules
func CreateApp() fx.Option {
	return fx.Options(
		// Configuration
		fx.Provide(config.Out),

		// Infrastructure (logger, metrics, sentry, http server, telegram bot)
		infrastructure.Module,

		// Domain (news fetching and bot handlers)
		domain.Module,
	)
}
