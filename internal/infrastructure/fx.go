// Package infrastructure aggregates infrastructure modules
package infrastructure

import (
	"go.uber.org/fx"

	httpfx "github.com/ideafy1/newsbot/internal/infrastructure/http"
	"github.com/ideafy1/newsbot/internal/infrastructure/logger"
	"github.com/ideafy1/newsbot/internal/infrastructure/metrics"
	"github.com/ideafy1/newsbot/internal/infrastructure/sentry"
	"github.com/ideafy1/newsbot/internal/infrastructure/telegram"
)

// Module aggregates all infrastructure modules
var Module = fx.Module("infrastructure",
	logger.Module,
	metrics.Module,
	sentry.Module,
	httpfx.Module, // Must be before telegram (webhook route is mounted on the server)
	telegram.Module,
)
