package analytics_port

import (
	"context"

	"folio/domain"
)

// AnalyticsPort is the store boundary for collected analytics events.
type AnalyticsPort interface {
	RecordVisit(ctx context.Context, visit domain.Visit) error
	RecordPageView(ctx context.Context, view domain.PageView) error
	RecordPerformance(ctx context.Context, event domain.PerformanceEvent) error
	Summary(ctx context.Context, days int) (domain.AnalyticsSummary, error)
}
