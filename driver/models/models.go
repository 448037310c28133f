// Package models holds the row structs scanned out of the folio database.
package models

import "time"

// SiteSetting is one row of site_settings: a JSON payload keyed by section name.
type SiteSetting struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

// Hobby is one row of hobbies. Tags are stored as a text array.
type Hobby struct {
	ID          int
	Title       string
	Description *string
	ImageURL    *string
	Tags        []string
	CreatedAt   time.Time
}

// Subscriber is one row of newsletter_subscribers.
type Subscriber struct {
	ID        int
	Email     string
	CreatedAt time.Time
}

// Visit is one row of analytics_visitors.
type Visit struct {
	ID        int
	VisitorID string
	Path      string
	Referrer  *string
	UserAgent *string
	CreatedAt time.Time
}

// PageView is one row of analytics_page_views.
type PageView struct {
	ID              int
	VisitorID       *string
	Path            string
	DurationSeconds float64
	ScrollDepth     float64
	CreatedAt       time.Time
}

// PerformanceEvent is one row of analytics_performance.
type PerformanceEvent struct {
	ID        int
	Metric    string
	Value     float64
	Path      *string
	CreatedAt time.Time
}
