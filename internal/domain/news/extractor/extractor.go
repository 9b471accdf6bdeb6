// Package extractor contains strategies that pull one news item out of a parsed page
package extractor

import (
	"fmt"
	"math/rand"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/ideafy1/newsbot/config"
	"github.com/ideafy1/newsbot/internal/domain/news/deps"
	"github.com/ideafy1/newsbot/internal/domain/news/entities"
	newserrors "github.com/ideafy1/newsbot/internal/domain/news/errors"
)

// Picker chooses the index of the element to use among n > 0 matches
type Picker func(n int) int

// First always picks the first match
func First(int) int { return 0 }

// Random picks a uniformly random match
func Random(n int) int { return rand.Intn(n) }

// NewPicker returns the picker for a pick mode
func NewPicker(mode string) (Picker, error) {
	switch mode {
	case config.PickFirst, "":
		return First, nil
	case config.PickRandom:
		return Random, nil
	default:
		return nil, fmt.Errorf("%w: %q", newserrors.ErrUnknownPick, mode)
	}
}

// New returns the extractor configured for source
func New(source, pick string) (deps.Extractor, error) {
	picker, err := NewPicker(pick)
	if err != nil {
		return nil, err
	}

	switch source {
	case config.SourceInshorts:
		return NewInshorts(picker), nil
	case config.SourceHeadlines:
		return NewHeadlines(picker), nil
	default:
		return nil, fmt.Errorf("%w: %q", newserrors.ErrUnknownSource, source)
	}
}

// choose applies the picker to sel, guarding against out-of-range picks
func choose(sel *goquery.Selection, pick Picker) *goquery.Selection {
	n := sel.Length()
	i := pick(n)
	if i < 0 || i >= n {
		i = 0
	}
	return sel.Eq(i)
}

// text returns the trimmed text of the first element matching selector under sel
func text(sel *goquery.Selection, selector string) string {
	return strings.TrimSpace(sel.Find(selector).First().Text())
}

// resolve makes href absolute against the document URL when possible
func resolve(doc *goquery.Document, href string) string {
	href = strings.TrimSpace(href)
	if href == "" || doc.Url == nil {
		return href
	}

	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return doc.Url.ResolveReference(ref).String()
}

// guard converts a panic inside an extractor into an incomplete-item error
func guard(item **entities.NewsItem, err *error) {
	if r := recover(); r != nil {
		*item = nil
		*err = fmt.Errorf("%w: extraction panicked: %v", newserrors.ErrIncompleteNews, r)
	}
}
