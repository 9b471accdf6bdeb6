// Package entities contains domain entities
package entities

// Variant selects how a news item is rendered in the chat
type Variant string

const (
	// VariantPhoto replies with a photo whose caption is the news text
	VariantPhoto Variant = "photo"
	// VariantMarkdown replies with one markdown message holding title, summary and link
	VariantMarkdown Variant = "markdown"
)

// NewsItem is one scraped news story. It is built per request and never stored.
type NewsItem struct {
	Title    string `json:"title,omitempty"`
	Text     string `json:"text"`
	ImageURL string `json:"imageUrl,omitempty"`
	Link     string `json:"link,omitempty"`
}

// Complete reports whether every field required by the variant is non-empty
func (n *NewsItem) Complete(v Variant) bool {
	if n == nil || n.Text == "" {
		return false
	}

	switch v {
	case VariantPhoto:
		return n.ImageURL != ""
	case VariantMarkdown:
		return n.Title != "" && n.Link != ""
	default:
		return false
	}
}
