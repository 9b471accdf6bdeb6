package telegram

import (
	"context"
	"fmt"

	tgbot "github.com/go-telegram/bot"
	"github.com/rs/zerolog"

	"github.com/ideafy1/newsbot/config"
)

// UpdatesAPI is the part of *tgbot.Bot the transports drive
type UpdatesAPI interface {
	Start(ctx context.Context)
	StartWebhook(ctx context.Context)
	SetWebhook(ctx context.Context, params *tgbot.SetWebhookParams) (bool, error)
	DeleteWebhook(ctx context.Context, params *tgbot.DeleteWebhookParams) (bool, error)
}

// Transport delivers inbound updates to the dispatcher
type Transport interface {
	// Name returns the transport name used in logs and health output
	Name() string

	// Prepare performs one-time registration with Telegram before Run
	Prepare(ctx context.Context) error

	// Run blocks and dispatches updates until ctx is cancelled
	Run(ctx context.Context)
}

// allowedUpdates limits delivery to the update kinds the bot handles
var allowedUpdates = []string{"message", "callback_query"}

// Polling receives updates with getUpdates long polling
type Polling struct {
	api    UpdatesAPI
	logger zerolog.Logger
}

// NewPolling creates the long-polling transport
func NewPolling(api UpdatesAPI, logger zerolog.Logger) *Polling {
	return &Polling{api: api, logger: logger}
}

// Name implements Transport
func (p *Polling) Name() string { return config.TransportPolling }

// Prepare removes a previously registered webhook, since getUpdates is refused while one is set
func (p *Polling) Prepare(ctx context.Context) error {
	if _, err := p.api.DeleteWebhook(ctx, &tgbot.DeleteWebhookParams{}); err != nil {
		p.logger.Warn().Err(err).Msg("Failed to delete webhook before polling")
	}
	return nil
}

// Run implements Transport
func (p *Polling) Run(ctx context.Context) {
	p.logger.Info().Msg("Starting long polling")
	p.api.Start(ctx)
	p.logger.Info().Msg("Long polling stopped")
}

// Webhook receives updates pushed by Telegram to the HTTP server
type Webhook struct {
	api    UpdatesAPI
	url    string
	secret string
	logger zerolog.Logger
}

// NewWebhook creates the webhook transport for the given public URL
func NewWebhook(api UpdatesAPI, url, secret string, logger zerolog.Logger) *Webhook {
	return &Webhook{api: api, url: url, secret: secret, logger: logger}
}

// Name implements Transport
func (w *Webhook) Name() string { return config.TransportWebhook }

// Prepare registers the webhook URL with Telegram
func (w *Webhook) Prepare(ctx context.Context) error {
	ok, err := w.api.SetWebhook(ctx, &tgbot.SetWebhookParams{
		URL:            w.url,
		SecretToken:    w.secret,
		AllowedUpdates: allowedUpdates,
	})
	if err != nil {
		return fmt.Errorf("failed to set webhook: %w", err)
	}
	if !ok {
		return fmt.Errorf("failed to set webhook: telegram returned false")
	}

	w.logger.Info().Str("url", w.url).Msg("Webhook registered")
	return nil
}

// Run implements Transport
func (w *Webhook) Run(ctx context.Context) {
	w.logger.Info().Msg("Starting webhook update processing")
	w.api.StartWebhook(ctx)
	w.logger.Info().Msg("Webhook update processing stopped")
}

// NewTransport selects the transport once from configuration
func NewTransport(cfg *config.TelegramConfig, api UpdatesAPI, logger zerolog.Logger) Transport {
	if cfg.Transport() == config.TransportWebhook {
		return NewWebhook(api, cfg.WebhookURL(), cfg.WebhookSecret, logger)
	}
	return NewPolling(api, logger)
}
