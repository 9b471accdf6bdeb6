// Package buissines contains business logic for the news domain
package buissines

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/ideafy1/newsbot/internal/domain/news/deps"
	"github.com/ideafy1/newsbot/internal/domain/news/entities"
	newserrors "github.com/ideafy1/newsbot/internal/domain/news/errors"
	"github.com/ideafy1/newsbot/internal/infrastructure/metrics"
	pkgerrors "github.com/ideafy1/newsbot/pkg/errors"
)

// UseCase fetches one news item per request
type UseCase struct {
	fetcher   deps.PageFetcher
	extractor deps.Extractor
	reporter  deps.ErrorReporter
	metrics   *metrics.Metrics
	logger    zerolog.Logger
}

// NewUseCase creates a new UseCase instance
func NewUseCase(
	fetcher deps.PageFetcher,
	extractor deps.Extractor,
	reporter deps.ErrorReporter,
	m *metrics.Metrics,
	logger zerolog.Logger,
) *UseCase {
	return &UseCase{
		fetcher:   fetcher,
		extractor: extractor,
		reporter:  reporter,
		metrics:   m,
		logger:    logger,
	}
}

// Variant reports the reply format of the items this use case returns
func (uc *UseCase) Variant() entities.Variant {
	return uc.extractor.Variant()
}

// FetchNews implements deps.NewsFetcher. It returns false instead of an error for
// every failure: unreachable page, bad status, no match or an incomplete item.
func (uc *UseCase) FetchNews(ctx context.Context) (item *entities.NewsItem, ok bool) {
	logger := zerolog.Ctx(ctx)
	if logger.GetLevel() == zerolog.Disabled {
		logger = &uc.logger
	}

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			uc.fail(logger, fmt.Errorf("%w: fetch panicked: %v", newserrors.ErrIncompleteNews, r), start)
			item, ok = nil, false
		}
	}()

	item, err := uc.fetch(ctx)
	if err != nil {
		uc.fail(logger, err, start)
		return nil, false
	}

	uc.metrics.RecordFetch(metrics.FetchResultOK, time.Since(start))
	logger.Info().
		Str("variant", string(uc.Variant())).
		Dur("duration", time.Since(start)).
		Msg("News fetched successfully")

	return item, true
}

func (uc *UseCase) fetch(ctx context.Context) (*entities.NewsItem, error) {
	doc, err := uc.fetcher.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch news page: %w", err)
	}

	item, err := uc.extractor.Extract(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to extract news: %w", err)
	}

	if !item.Complete(uc.Variant()) {
		return nil, newserrors.ErrIncompleteNews
	}

	return item, nil
}

// fail logs, counts and reports a failed fetch
func (uc *UseCase) fail(logger *zerolog.Logger, err error, start time.Time) {
	kind := pkgerrors.Kind(err)

	result := metrics.FetchResultError
	if pkgerrors.IsNotFoundError(err) {
		result = metrics.FetchResultAbsent
	}
	uc.metrics.RecordFetch(result, time.Since(start))

	logger.Error().
		Err(err).
		Str("cause", kind).
		Dur("duration", time.Since(start)).
		Msg("Failed to fetch news")

	uc.reporter.CaptureError(err, map[string]string{"stage": "fetch", "cause": kind})
}
