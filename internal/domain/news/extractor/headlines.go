package extractor

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"

	"github.com/ideafy1/newsbot/internal/domain/news/entities"
	newserrors "github.com/ideafy1/newsbot/internal/domain/news/errors"
)

// Headlines selectors
const (
	headlinesItem    = "article.news-item"
	headlinesTitle   = ".news-title"
	headlinesSummary = ".news-summary"
	headlinesLink    = "a.news-link"
)

// Headlines extracts a title/summary/link item for the markdown reply
type Headlines struct {
	pick Picker
}

// NewHeadlines creates the headlines extractor
func NewHeadlines(pick Picker) *Headlines {
	if pick == nil {
		pick = First
	}
	return &Headlines{pick: pick}
}

// Variant implements deps.Extractor
func (e *Headlines) Variant() entities.Variant {
	return entities.VariantMarkdown
}

// Extract implements deps.Extractor
func (e *Headlines) Extract(doc *goquery.Document) (item *entities.NewsItem, err error) {
	defer guard(&item, &err)

	items := doc.Find(headlinesItem)
	if items.Length() == 0 {
		return nil, newserrors.ErrNoNews
	}
	article := choose(items, e.pick)

	title := text(article, headlinesTitle)
	if title == "" {
		return nil, fmt.Errorf("%w: item has no title", newserrors.ErrIncompleteNews)
	}

	summary := text(article, headlinesSummary)
	if summary == "" {
		return nil, fmt.Errorf("%w: item has no summary", newserrors.ErrIncompleteNews)
	}

	href, ok := article.Find(headlinesLink).First().Attr("href")
	if !ok {
		href, ok = article.Find(headlinesTitle).Find("a").First().Attr("href")
	}
	link := resolve(doc, href)
	if !ok || link == "" {
		return nil, fmt.Errorf("%w: item has no link", newserrors.ErrIncompleteNews)
	}

	return &entities.NewsItem{
		Title: title,
		Text:  summary,
		Link:  link,
	}, nil
}
