package config

import (
	"time"

	"folio/domain"
)

func datePtr(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

// ContentCatalog holds the three searchable content collections. Iteration
// order inside each collection is the declaration order below; search
// results rely on it only as a deterministic tie-break.
type ContentCatalog struct {
	Research []domain.SearchableItem
	Projects []domain.SearchableItem
	Blog     []domain.SearchableItem
}

// DefaultCatalog returns the compiled-in content collections.
func DefaultCatalog() ContentCatalog {
	return ContentCatalog{
		Research: []domain.SearchableItem{
			{
				Kind:        domain.ContentTypeResearch,
				Title:       "Timing side channels in connection pools",
				Description: "Measuring cross-tenant leakage through shared pgx pools.",
				URL:         "/research/pool-timing",
				RawContent:  "Connection pools multiplex tenants over a fixed set of sockets. We show that queue position is observable through latency and recovers coarse information about neighbor load. Mitigations include per-tenant pools and jittered scheduling.",
				Tags:        []string{"side-channels", "postgres", "timing"},
				PublishedAt: datePtr(2025, time.November, 12),
			},
			{
				Kind:        domain.ContentTypeResearch,
				Title:       "Fallback-first design for content APIs",
				Description: "Availability patterns for read-heavy personal sites.",
				URL:         "/research/fallback-first",
				RawContent:  "Public reads should never depend on the database being reachable. We formalize resolve-with-fallback and compare it with cache-aside under partition.",
				Tags:        []string{"availability", "api-design"},
				PublishedAt: datePtr(2024, time.June, 3),
			},
		},
		Projects: []domain.SearchableItem{
			{
				Kind:        domain.ContentTypeProject,
				Title:       "folio",
				Description: "This site: portfolio backend with admin dashboard and analytics.",
				URL:         "/projects/folio",
				RawContent:  "Echo, pgx and a static fallback catalog. The admin dashboard edits sections stored as JSON blobs keyed by name.",
				Tags:        []string{"go", "echo", "postgres"},
				PublishedAt: datePtr(2026, time.February, 20),
			},
			{
				Kind:        domain.ContentTypeProject,
				Title:       "driftwatch",
				Description: "Kubernetes manifest drift detector.",
				URL:         "/projects/driftwatch",
				RawContent:  "Watches cluster state and reports divergence from committed manifests. Ships as a single controller with Prometheus metrics.",
				Tags:        []string{"kubernetes", "go"},
				PublishedAt: datePtr(2025, time.August, 1),
			},
		},
		Blog: []domain.SearchableItem{
			{
				Kind:        domain.ContentTypeBlog,
				Title:       "Last writer wins is fine, actually",
				Description: "When a section is one opaque blob, optimistic locking buys nothing.",
				URL:         "/blog/last-writer-wins",
				RawContent:  "Concurrent upserts of a whole-document value cannot corrupt invariants that only span one row. The write path stays simple and the race is acceptable.",
				Tags:        []string{"databases", "design"},
				PublishedAt: datePtr(2026, time.January, 9),
			},
			{
				Kind:        domain.ContentTypeBlog,
				Title:       "Scoring search without an index",
				Description: "A ranked linear scan is plenty for three small collections.",
				URL:         "/blog/linear-scan-search",
				RawContent:  "Title matches dominate, body overlap breaks ties and a recency bonus keeps fresh posts visible. No inverted index required under a few thousand items.",
				Tags:        []string{"search", "go"},
				PublishedAt: datePtr(2025, time.December, 28),
			},
		},
	}
}
