package telegram

import (
	"context"
	"fmt"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"

	"github.com/ideafy1/newsbot/internal/domain/news/consts"
	"github.com/ideafy1/newsbot/internal/domain/news/deps"
	"github.com/ideafy1/newsbot/internal/infrastructure/metrics"
)

// Registrar is the handler registration part of *tgbot.Bot
type Registrar interface {
	RegisterHandler(handlerType tgbot.HandlerType, pattern string, matchType tgbot.MatchType, f tgbot.HandlerFunc, m ...tgbot.Middleware) string
}

// Router registers Telegram bot handlers
type Router struct {
	handlers *Handlers
	reporter deps.ErrorReporter
	metrics  *metrics.Metrics
	logger   zerolog.Logger
}

// NewRouter creates new Telegram router
func NewRouter(handlers *Handlers, reporter deps.ErrorReporter, m *metrics.Metrics, logger zerolog.Logger) *Router {
	return &Router{
		handlers: handlers,
		reporter: reporter,
		metrics:  m,
		logger:   logger,
	}
}

// RegisterRoutes registers the /start command and the send_news callback
func (r *Router) RegisterRoutes(bot Registrar) {
	bot.RegisterHandler(tgbot.HandlerTypeMessageText, "/"+consts.CommandStart.Name, tgbot.MatchTypeExact, r.handlers.HandleStart, r.Recover)
	bot.RegisterHandler(tgbot.HandlerTypeCallbackQueryData, consts.CallbackSendNews, tgbot.MatchTypeExact, r.handlers.HandleSendNews, r.Recover)

	r.logger.Info().Msg("All Telegram handlers registered successfully")
}

// Default returns the fallback handler for updates no route matched
func (r *Router) Default() tgbot.HandlerFunc {
	return r.Recover(r.handlers.HandleDefault)
}

// Recover keeps a panicking handler from taking the dispatcher down
func (r *Router) Recover(next tgbot.HandlerFunc) tgbot.HandlerFunc {
	return func(ctx context.Context, bot *tgbot.Bot, update *models.Update) {
		defer func() {
			if rec := recover(); rec != nil {
				r.metrics.RecordPanic()
				r.logger.Error().
					Int64("update_id", update.ID).
					Str("panic", fmt.Sprint(rec)).
					Msg("Recovered panic in Telegram handler")
				r.reporter.CapturePanic(rec, map[string]string{"stage": "handler"})
			}
		}()

		next(ctx, bot, update)
	}
}
