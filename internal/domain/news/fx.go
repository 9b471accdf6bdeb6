// Package news contains the news domain module
package news

import (
	"context"

	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/ideafy1/newsbot/config"
	"github.com/ideafy1/newsbot/internal/domain/news/consts"
	httpDelivery "github.com/ideafy1/newsbot/internal/domain/news/delivery/http"
	telegramDelivery "github.com/ideafy1/newsbot/internal/domain/news/delivery/telegram"
	"github.com/ideafy1/newsbot/internal/domain/news/deps"
	"github.com/ideafy1/newsbot/internal/domain/news/extractor"
	"github.com/ideafy1/newsbot/internal/domain/news/repository/http_clients/page"
	"github.com/ideafy1/newsbot/internal/domain/news/usecase/buissines"
	"github.com/ideafy1/newsbot/internal/infrastructure/http/server"
	"github.com/ideafy1/newsbot/internal/infrastructure/metrics"
	"github.com/ideafy1/newsbot/internal/infrastructure/sentry"
	"github.com/ideafy1/newsbot/internal/infrastructure/telegram"
	"github.com/ideafy1/newsbot/pkg/mapfn"
)

// Module provides news domain components for fx dependency injection
var Module = fx.Module("news",
	// Repository
	fx.Provide(page.NewClient),
	fx.Provide(provideExtractor),

	// UseCase
	fx.Provide(provideUseCase),

	// Delivery - Telegram (needs raw bot from infrastructure)
	fx.Provide(provideTelegramHandlers),
	fx.Provide(provideRouter),

	// Delivery - HTTP
	fx.Provide(provideHealthHandler),

	fx.Invoke(registerRoutes),
)

// provideExtractor selects the extraction strategy from config
func provideExtractor(cfg *config.ScraperConfig) (deps.Extractor, error) {
	return extractor.New(cfg.Source, cfg.Pick)
}

// provideUseCase creates the news use case with the sentry reporter
func provideUseCase(
	fetcher deps.PageFetcher,
	ext deps.Extractor,
	reporter *sentry.Reporter,
	m *metrics.Metrics,
	logger zerolog.Logger,
) *buissines.UseCase {
	return buissines.NewUseCase(fetcher, ext, reporter, m, logger.With().Str("component", "news").Logger())
}

// provideTelegramHandlers creates Telegram handlers with raw bot
func provideTelegramHandlers(uc *buissines.UseCase, bot *telegram.Bot, m *metrics.Metrics, logger zerolog.Logger) *telegramDelivery.Handlers {
	return telegramDelivery.NewHandlers(uc, uc.Variant(), bot.Raw(), m, logger.With().Str("component", "handlers").Logger())
}

// provideRouter creates the Telegram router
func provideRouter(handlers *telegramDelivery.Handlers, reporter *sentry.Reporter, m *metrics.Metrics, logger zerolog.Logger) *telegramDelivery.Router {
	return telegramDelivery.NewRouter(handlers, reporter, m, logger)
}

// provideHealthHandler creates the health handler backed by the transport runner
func provideHealthHandler(runner *telegram.Runner, cfg *config.ScraperConfig, logger zerolog.Logger) *httpDelivery.HealthHandler {
	return httpDelivery.NewHealthHandler(runner, cfg.Source, logger.With().Str("component", "health").Logger())
}

// registerRoutes registers Telegram and HTTP routes and publishes the command menu
func registerRoutes(
	lc fx.Lifecycle,
	router *telegramDelivery.Router,
	health *httpDelivery.HealthHandler,
	bot *telegram.Bot,
	srv *server.Server,
	logger zerolog.Logger,
) {
	router.RegisterRoutes(bot.Raw())
	bot.SetDefaultHandler(router.Default())

	health.RegisterRoutes(srv.Router)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := bot.SetCommands(ctx, botCommands()); err != nil {
				logger.Warn().Err(err).Msg("Failed to publish bot commands")
			}
			return nil
		},
	})
}

// botCommands converts the command list to the Telegram menu format
func botCommands() []models.BotCommand {
	return mapfn.ConvertSlice(consts.AllCommands, func(c consts.Command) models.BotCommand {
		return models.BotCommand{Command: c.Name, Description: c.Description}
	})
}
