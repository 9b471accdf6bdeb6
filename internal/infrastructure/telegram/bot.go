// Package telegram contains Telegram bot infrastructure
package telegram

import (
	"context"
	"fmt"
	"time"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"
)

// CheckInitTimeout bounds the getMe call made when the bot is created
const CheckInitTimeout = 10 * time.Second

// Bot wraps the Telegram bot for infrastructure layer
type Bot struct {
	bot            *tgbot.Bot
	defaultHandler tgbot.HandlerFunc
	logger         zerolog.Logger
}

// NewBot creates a new Telegram bot wrapper. webhookSecret may be empty.
func NewBot(token, webhookSecret string, logger zerolog.Logger) (*Bot, error) {
	if token == "" {
		return nil, fmt.Errorf("telegram token is required")
	}

	b := &Bot{logger: logger}

	opts := []tgbot.Option{
		tgbot.WithDefaultHandler(b.handleDefault),
		tgbot.WithCheckInitTimeout(CheckInitTimeout),
		tgbot.WithErrorsHandler(func(err error) {
			logger.Error().Err(err).Msg("Telegram bot error")
		}),
	}
	if webhookSecret != "" {
		opts = append(opts, tgbot.WithWebhookSecretToken(webhookSecret))
	}

	bot, err := tgbot.New(token, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}
	b.bot = bot

	logger.Info().Msg("Telegram bot created successfully")

	return b, nil
}

// Raw returns the underlying telegram bot for handler registration
func (b *Bot) Raw() *tgbot.Bot {
	return b.bot
}

// SetDefaultHandler sets the handler for updates no registered route matched.
// Must be called before the transport starts.
func (b *Bot) SetDefaultHandler(h tgbot.HandlerFunc) {
	b.defaultHandler = h
}

// SetCommands publishes the command menu shown by Telegram clients
func (b *Bot) SetCommands(ctx context.Context, commands []models.BotCommand) error {
	if _, err := b.bot.SetMyCommands(ctx, &tgbot.SetMyCommandsParams{Commands: commands}); err != nil {
		return fmt.Errorf("failed to set bot commands: %w", err)
	}
	return nil
}

// handleDefault forwards unmatched updates to the configured default handler
func (b *Bot) handleDefault(ctx context.Context, bot *tgbot.Bot, update *models.Update) {
	if b.defaultHandler == nil {
		return
	}
	b.defaultHandler(ctx, bot, update)
}
