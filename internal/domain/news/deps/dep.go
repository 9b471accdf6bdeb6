// Package deps contains interface definitions for the news domain dependencies
package deps

import (
	"context"

	"github.com/PuerkitoBio/goquery"

	"github.com/ideafy1/newsbot/internal/domain/news/entities"
)

// PageFetcher downloads and parses the news page
type PageFetcher interface {
	// Fetch performs one GET and returns the parsed document
	Fetch(ctx context.Context) (*goquery.Document, error)
}

// Extractor pulls one news item out of a parsed page
type Extractor interface {
	// Extract returns the item or an error when the page has no usable item
	Extract(doc *goquery.Document) (*entities.NewsItem, error)

	// Variant reports which reply format the extracted items are meant for
	Variant() entities.Variant
}

// NewsFetcher returns one news item per call or reports its absence
type NewsFetcher interface {
	FetchNews(ctx context.Context) (*entities.NewsItem, bool)
}

// ErrorReporter sends failures to an external error tracker
type ErrorReporter interface {
	CaptureError(err error, tags map[string]string)
	CapturePanic(recovered any, tags map[string]string)
}
