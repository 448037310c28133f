package analytics_gateway

import (
	"context"

	"folio/domain"
	"folio/driver/folio_db"
)

// AnalyticsGateway adapts the database repository to the analytics port.
type AnalyticsGateway struct {
	repository *folio_db.Repository
}

func NewAnalyticsGateway(repository *folio_db.Repository) *AnalyticsGateway {
	return &AnalyticsGateway{repository: repository}
}

func (g *AnalyticsGateway) RecordVisit(ctx context.Context, visit domain.Visit) error {
	return g.repository.RecordVisit(ctx, visit)
}

func (g *AnalyticsGateway) RecordPageView(ctx context.Context, view domain.PageView) error {
	return g.repository.RecordPageView(ctx, view)
}

func (g *AnalyticsGateway) RecordPerformance(ctx context.Context, event domain.PerformanceEvent) error {
	return g.repository.RecordPerformance(ctx, event)
}

func (g *AnalyticsGateway) Summary(ctx context.Context, days int) (domain.AnalyticsSummary, error) {
	return g.repository.Summary(ctx, days)
}
