package analytics_usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"folio/domain"
	"folio/port/analytics_port"
	apperrors "folio/utils/errors"

	"github.com/google/uuid"
)

const (
	maxUserAgentLength = 512
	defaultSummaryDays = 7
	maxSummaryDays     = 90
)

// AnalyticsUsecase records visitor events and aggregates them for the
// admin dashboard. Ingest failures are reported once; nothing retries.
type AnalyticsUsecase struct {
	analytics analytics_port.AnalyticsPort
	now       func() time.Time
	logger    *slog.Logger
}

func NewAnalyticsUsecase(analytics analytics_port.AnalyticsPort) *AnalyticsUsecase {
	return &AnalyticsUsecase{
		analytics: analytics,
		now:       time.Now,
		logger:    slog.Default(),
	}
}

// RecordVisit stores a visitor arrival, minting a visitor id when the
// client did not present one. The (possibly minted) visit is returned so
// the client can keep the id for the rest of the session.
func (u *AnalyticsUsecase) RecordVisit(ctx context.Context, visit domain.Visit) (domain.Visit, error) {
	if strings.TrimSpace(visit.Path) == "" {
		return domain.Visit{}, apperrors.ValidationError("path is required",
			map[string]interface{}{"field": "path"})
	}

	if visit.VisitorID == "" {
		visit.VisitorID = uuid.NewString()
	}
	if len(visit.UserAgent) > maxUserAgentLength {
		visit.UserAgent = visit.UserAgent[:maxUserAgentLength]
	}
	visit.CreatedAt = u.now()

	if err := u.analytics.RecordVisit(ctx, visit); err != nil {
		u.logger.Error("failed to record visit", "path", visit.Path, "error", err)
		return domain.Visit{}, apperrors.DatabaseError("failed to record visit", err, nil)
	}

	return visit, nil
}

// RecordPageView stores one page consumption record.
func (u *AnalyticsUsecase) RecordPageView(ctx context.Context, view domain.PageView) error {
	if strings.TrimSpace(view.Path) == "" {
		return apperrors.ValidationError("path is required",
			map[string]interface{}{"field": "path"})
	}

	if view.DurationSeconds < 0 {
		view.DurationSeconds = 0
	}
	view.ScrollDepth = clamp(view.ScrollDepth, 0, 100)
	view.CreatedAt = u.now()

	if err := u.analytics.RecordPageView(ctx, view); err != nil {
		u.logger.Error("failed to record page view", "path", view.Path, "error", err)
		return apperrors.DatabaseError("failed to record page view", err, nil)
	}
	return nil
}

// RecordPerformance stores one client-side performance measurement.
func (u *AnalyticsUsecase) RecordPerformance(ctx context.Context, event domain.PerformanceEvent) error {
	if strings.TrimSpace(event.Metric) == "" {
		return apperrors.ValidationError("metric is required",
			map[string]interface{}{"field": "metric"})
	}
	if event.Value < 0 {
		return apperrors.ValidationError("value must not be negative",
			map[string]interface{}{"field": "value"})
	}
	event.CreatedAt = u.now()

	if err := u.analytics.RecordPerformance(ctx, event); err != nil {
		u.logger.Error("failed to record performance event", "metric", event.Metric, "error", err)
		return apperrors.DatabaseError("failed to record performance event", err, nil)
	}
	return nil
}

// Summary aggregates events over the trailing day range, defaulting to a
// week and capped at 90 days.
func (u *AnalyticsUsecase) Summary(ctx context.Context, days int) (domain.AnalyticsSummary, error) {
	if days <= 0 {
		days = defaultSummaryDays
	}
	if days > maxSummaryDays {
		days = maxSummaryDays
	}

	summary, err := u.analytics.Summary(ctx, days)
	if err != nil {
		u.logger.Error("failed to aggregate analytics", "days", days, "error", err)
		return domain.AnalyticsSummary{}, apperrors.DatabaseError("failed to aggregate analytics", err, nil)
	}
	if summary.TopPaths == nil {
		summary.TopPaths = []domain.PathCount{}
	}
	return summary, nil
}

func clamp(value, low, high float64) float64 {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
