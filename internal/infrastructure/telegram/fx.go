package telegram

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"go.uber.org/fx"

	"github.com/ideafy1/newsbot/config"
	"github.com/ideafy1/newsbot/internal/infrastructure/http/server"
)

// Module provides Telegram bot and its inbound transport for fx dependency injection
var Module = fx.Module("telegram",
	fx.Provide(provideBot),
	fx.Provide(provideTransport),
	fx.Provide(NewRunner),
	fx.Invoke(mountWebhook),
	fx.Invoke(registerLifecycle),
)

// provideBot creates Telegram bot from config
func provideBot(cfg *config.TelegramConfig, logger zerolog.Logger) (*Bot, error) {
	return NewBot(cfg.BotToken, cfg.WebhookSecret, logger.With().Str("component", "telegram").Logger())
}

// provideTransport selects polling or webhook once at startup
func provideTransport(cfg *config.TelegramConfig, bot *Bot, logger zerolog.Logger) Transport {
	return NewTransport(cfg, bot.Raw(), logger.With().Str("component", "transport").Logger())
}

// mountWebhook exposes the bot's webhook handler on the HTTP server in webhook mode
func mountWebhook(cfg *config.TelegramConfig, bot *Bot, srv *server.Server, logger zerolog.Logger) {
	if cfg.Transport() != config.TransportWebhook {
		return
	}

	srv.Router.POST(cfg.WebhookPath, fasthttpadaptor.NewFastHTTPHandlerFunc(bot.Raw().WebhookHandler()))
	logger.Info().Str("path", cfg.WebhookPath).Msg("Webhook route mounted")
}

// registerLifecycle registers transport lifecycle hooks
func registerLifecycle(lc fx.Lifecycle, runner *Runner) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return runner.Start(ctx)
		},
		OnStop: func(ctx context.Context) error {
			return runner.Stop(ctx)
		},
	})
}
