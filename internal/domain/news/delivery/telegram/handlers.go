// Package telegram contains Telegram delivery handlers
package telegram

import (
	"context"
	"fmt"
	"strings"
	"time"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ideafy1/newsbot/internal/domain/news/consts"
	"github.com/ideafy1/newsbot/internal/domain/news/deps"
	"github.com/ideafy1/newsbot/internal/domain/news/entities"
	"github.com/ideafy1/newsbot/internal/infrastructure/metrics"
)

// RequestTimeout bounds every outbound Telegram API call
const RequestTimeout = 30 * time.Second

// Reply kinds used in logs and metrics
const (
	ReplyStart    = "start"
	ReplyPhoto    = "photo"
	ReplyMarkdown = "markdown"
	ReplyApology  = "apology"
)

// Sender is the subset of *tgbot.Bot used to talk back to the chat
type Sender interface {
	SendMessage(ctx context.Context, params *tgbot.SendMessageParams) (*models.Message, error)
	SendPhoto(ctx context.Context, params *tgbot.SendPhotoParams) (*models.Message, error)
	AnswerCallbackQuery(ctx context.Context, params *tgbot.AnswerCallbackQueryParams) (bool, error)
}

// Handlers contains Telegram command and callback handlers
type Handlers struct {
	news    deps.NewsFetcher
	variant entities.Variant
	sender  Sender
	metrics *metrics.Metrics
	logger  zerolog.Logger
}

// NewHandlers creates new Telegram handlers
func NewHandlers(news deps.NewsFetcher, variant entities.Variant, sender Sender, m *metrics.Metrics, logger zerolog.Logger) *Handlers {
	return &Handlers{
		news:    news,
		variant: variant,
		sender:  sender,
		metrics: m,
		logger:  logger,
	}
}

// HandleStart handles /start command
func (h *Handlers) HandleStart(ctx context.Context, _ *tgbot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	h.metrics.RecordUpdate(ReplyStart)

	chatID := update.Message.Chat.ID
	logger := h.logger.With().Int64("chat_id", chatID).Str("command", "/start").Logger()
	if update.Message.From != nil {
		logger = logger.With().Int64("user_id", update.Message.From.ID).Logger()
	}

	msgCtx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	_, err := h.sender.SendMessage(msgCtx, &tgbot.SendMessageParams{
		ChatID:      chatID,
		Text:        consts.StartPrompt,
		ReplyMarkup: sendNewsKeyboard(),
	})
	h.logReply(logger, ReplyStart, err)
}

// HandleSendNews handles presses of the "Send News" button
func (h *Handlers) HandleSendNews(ctx context.Context, _ *tgbot.Bot, update *models.Update) {
	query := update.CallbackQuery
	if query == nil {
		return
	}
	h.metrics.RecordUpdate(consts.CallbackSendNews)

	chatID := callbackChatID(query)
	logger := h.logger.With().
		Str("request_id", uuid.NewString()).
		Int64("chat_id", chatID).
		Int64("user_id", query.From.ID).
		Str("callback", query.Data).
		Logger()

	h.answer(ctx, logger, query.ID)

	item, ok := h.news.FetchNews(logger.WithContext(ctx))
	if !ok {
		h.sendApology(ctx, logger, chatID)
		return
	}

	switch h.variant {
	case entities.VariantMarkdown:
		h.sendMarkdown(ctx, logger, chatID, item)
	default:
		h.sendPhoto(ctx, logger, chatID, item)
	}
}

// HandleDefault answers unknown callbacks so the client stops its spinner, and ignores everything else
func (h *Handlers) HandleDefault(ctx context.Context, _ *tgbot.Bot, update *models.Update) {
	if update.CallbackQuery == nil {
		return
	}
	h.metrics.RecordUpdate("unknown_callback")

	logger := h.logger.With().Str("callback", update.CallbackQuery.Data).Logger()
	logger.Debug().Msg("Ignoring unknown callback")
	h.answer(ctx, logger, update.CallbackQuery.ID)
}

func (h *Handlers) answer(ctx context.Context, logger zerolog.Logger, queryID string) {
	msgCtx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	if _, err := h.sender.AnswerCallbackQuery(msgCtx, &tgbot.AnswerCallbackQueryParams{
		CallbackQueryID: queryID,
	}); err != nil {
		logger.Warn().Err(err).Msg("Failed to answer callback query")
	}
}

func (h *Handlers) sendPhoto(ctx context.Context, logger zerolog.Logger, chatID int64, item *entities.NewsItem) {
	msgCtx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	_, err := h.sender.SendPhoto(msgCtx, &tgbot.SendPhotoParams{
		ChatID:  chatID,
		Photo:   &models.InputFileString{Data: item.ImageURL},
		Caption: item.Text,
	})
	h.logReply(logger, ReplyPhoto, err)
}

func (h *Handlers) sendMarkdown(ctx context.Context, logger zerolog.Logger, chatID int64, item *entities.NewsItem) {
	msgCtx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	_, err := h.sender.SendMessage(msgCtx, &tgbot.SendMessageParams{
		ChatID:    chatID,
		Text:      FormatMarkdown(item),
		ParseMode: models.ParseModeMarkdown,
	})
	h.logReply(logger, ReplyMarkdown, err)
}

func (h *Handlers) sendApology(ctx context.Context, logger zerolog.Logger, chatID int64) {
	msgCtx, cancel := context.WithTimeout(ctx, RequestTimeout)
	defer cancel()

	_, err := h.sender.SendMessage(msgCtx, &tgbot.SendMessageParams{
		ChatID: chatID,
		Text:   consts.ApologyText,
	})
	h.logReply(logger, ReplyApology, err)
}

// logReply logs and counts a reply send result
func (h *Handlers) logReply(logger zerolog.Logger, kind string, err error) {
	h.metrics.RecordReply(kind, err)

	if err != nil {
		logger.Error().Err(err).Str("reply", kind).Msg("Failed to send Telegram reply")
		return
	}
	logger.Info().Str("reply", kind).Msg("Telegram reply sent")
}

// sendNewsKeyboard returns the single-button keyboard attached to the start prompt
func sendNewsKeyboard() *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{
				{Text: consts.SendNewsButton, CallbackData: consts.CallbackSendNews},
			},
		},
	}
}

// callbackChatID returns the chat the pressed button lives in
func callbackChatID(query *models.CallbackQuery) int64 {
	switch {
	case query.Message.Message != nil:
		return query.Message.Message.Chat.ID
	case query.Message.InaccessibleMessage != nil:
		return query.Message.InaccessibleMessage.Chat.ID
	default:
		return query.From.ID
	}
}

// linkEscaper escapes the characters MarkdownV2 reserves inside the (...) part of a link
var linkEscaper = strings.NewReplacer(`\`, `\\`, `)`, `\)`)

// FormatMarkdown renders an item as a MarkdownV2 message with title, summary and link
func FormatMarkdown(item *entities.NewsItem) string {
	return fmt.Sprintf("*%s*\n\n%s\n\n[%s](%s)",
		tgbot.EscapeMarkdown(item.Title),
		tgbot.EscapeMarkdown(item.Text),
		tgbot.EscapeMarkdown(consts.ReadMoreCaption),
		linkEscaper.Replace(item.Link),
	)
}
