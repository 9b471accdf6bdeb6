package page

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"

	"github.com/ideafy1/newsbot/config"
	"github.com/ideafy1/newsbot/internal/domain/news/deps"
	newserrors "github.com/ideafy1/newsbot/internal/domain/news/errors"
)

// maxBodySize caps how much of the page is read
const maxBodySize = 5 << 20

// Client downloads the configured news page
type Client struct {
	pageURL    *url.URL
	userAgent  string
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a page client from the scraper config
func NewClient(cfg *config.ScraperConfig, logger zerolog.Logger) (deps.PageFetcher, error) {
	pageURL, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid news page url %q: %w", cfg.URL, err)
	}

	client := &Client{
		pageURL:   pageURL,
		userAgent: cfg.UserAgent,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}

	logger.Info().
		Str("url", cfg.URL).
		Dur("timeout", cfg.Timeout).
		Msg("News page client initialized")

	return client, nil
}

// Fetch implements deps.PageFetcher
func (c *Client) Fetch(ctx context.Context) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.pageURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", newserrors.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.Debug().
			Int("status_code", resp.StatusCode).
			Str("url", c.pageURL.String()).
			Msg("Unexpected status code from news page")
		return nil, fmt.Errorf("%w: unexpected status code %d", newserrors.ErrSourceUnavailable, resp.StatusCode)
	}

	body := io.LimitReader(resp.Body, maxBodySize)

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read page: %v", newserrors.ErrSourceUnavailable, err)
	}
	if doc.Find("body").Children().Length() == 0 {
		return nil, newserrors.ErrEmptyPage
	}

	// resp.Request.URL reflects redirects
	doc.Url = resp.Request.URL

	return doc, nil
}
