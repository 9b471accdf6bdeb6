package extractor

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/ideafy1/newsbot/internal/domain/news/entities"
	newserrors "github.com/ideafy1/newsbot/internal/domain/news/errors"
)

// Inshorts selectors
const (
	inshortsCard  = "div.news-card"
	inshortsImage = "div.news-card-image"
	inshortsBody  = "div.news-card-content div.news-card-body"
)

// Inshorts extracts a photo news item from an inshorts card list
type Inshorts struct {
	pick Picker
}

// NewInshorts creates the inshorts extractor
func NewInshorts(pick Picker) *Inshorts {
	if pick == nil {
		pick = First
	}
	return &Inshorts{pick: pick}
}

// Variant implements deps.Extractor
func (e *Inshorts) Variant() entities.Variant {
	return entities.VariantPhoto
}

// Extract implements deps.Extractor
func (e *Inshorts) Extract(doc *goquery.Document) (item *entities.NewsItem, err error) {
	defer guard(&item, &err)

	cards := doc.Find(inshortsCard)
	if cards.Length() == 0 {
		return nil, newserrors.ErrNoNews
	}
	card := choose(cards, e.pick)

	style, ok := card.Find(inshortsImage).First().Attr("style")
	if !ok {
		return nil, fmt.Errorf("%w: card has no image style", newserrors.ErrIncompleteNews)
	}

	imageURL := imageFromStyle(style)
	if imageURL == "" {
		return nil, fmt.Errorf("%w: no image url in style %q", newserrors.ErrIncompleteNews, style)
	}

	body := text(card, inshortsBody)
	if body == "" {
		return nil, fmt.Errorf("%w: card has no body text", newserrors.ErrIncompleteNews)
	}

	return &entities.NewsItem{
		Text:     body,
		ImageURL: resolve(doc, imageURL),
	}, nil
}

// imageFromStyle pulls the quoted url out of an inline style such as
// background-image: url('http://x/i.jpg')
func imageFromStyle(style string) string {
	if parts := strings.Split(style, "'"); len(parts) >= 3 {
		return strings.TrimSpace(parts[1])
	}

	start := strings.Index(style, "url(")
	if start < 0 {
		return ""
	}
	rest := style[start+len("url("):]
	end := strings.Index(rest, ")")
	if end < 0 {
		return ""
	}
	return strings.Trim(strings.TrimSpace(rest[:end]), `"`)
}
