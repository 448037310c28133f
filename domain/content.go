package domain

import "time"

// ContentType identifies which collection a searchable item came from.
type ContentType string

const (
	ContentTypeAll      ContentType = "all"
	ContentTypeResearch ContentType = "research"
	ContentTypeProject  ContentType = "project"
	ContentTypeBlog     ContentType = "blog"
)

// ValidContentType reports whether s is a usable type filter.
func ValidContentType(s string) bool {
	switch ContentType(s) {
	case ContentTypeAll, ContentTypeResearch, ContentTypeProject, ContentTypeBlog:
		return true
	}
	return false
}

// SearchableItem is one entry of a content collection, flattened into the
// shape the search scorer works on. Kind is fixed when the item is
// materialized from its collection and never changes afterwards.
type SearchableItem struct {
	Kind        ContentType `json:"kind"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	URL         string      `json:"url"`
	RawContent  string      `json:"-"`
	Tags        []string    `json:"tags,omitempty"`
	PublishedAt *time.Time  `json:"publishedAt,omitempty"`
}

// ScoredResult pairs an item with its relevance score for one query.
// Scores are transient; they are recomputed per request and never stored.
type ScoredResult struct {
	Item  SearchableItem `json:"item"`
	Score float64        `json:"score"`
}

// SearchResult is the full response of a search request. Total counts
// matches before the limit was applied.
type SearchResult struct {
	Results []ScoredResult `json:"results"`
	Total   int            `json:"total"`
	Query   string         `json:"query"`
	Type    ContentType    `json:"type"`
}
