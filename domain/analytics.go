package domain

import "time"

// Visit records one visitor arrival. VisitorID is minted server-side when
// the client does not present one.
type Visit struct {
	VisitorID string    `json:"visitorId"`
	Path      string    `json:"path"`
	Referrer  string    `json:"referrer,omitempty"`
	UserAgent string    `json:"userAgent,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// PageView records how a single page was consumed.
type PageView struct {
	VisitorID       string    `json:"visitorId,omitempty"`
	Path            string    `json:"path"`
	DurationSeconds float64   `json:"durationSeconds"`
	ScrollDepth     float64   `json:"scrollDepth"`
	CreatedAt       time.Time `json:"createdAt"`
}

// PerformanceEvent records one client-side performance measurement.
type PerformanceEvent struct {
	Metric    string    `json:"metric"`
	Value     float64   `json:"value"`
	Path      string    `json:"path,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// PathCount is one row of the top-paths ranking.
type PathCount struct {
	Path  string `json:"path"`
	Count int    `json:"count"`
}

// AnalyticsSummary aggregates collected events over a day range.
type AnalyticsSummary struct {
	Days           int         `json:"days"`
	UniqueVisitors int         `json:"uniqueVisitors"`
	TotalVisits    int         `json:"totalVisits"`
	TotalPageViews int         `json:"totalPageViews"`
	AvgScrollDepth float64     `json:"avgScrollDepth"`
	TopPaths       []PathCount `json:"topPaths"`
}
