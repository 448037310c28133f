package folio_db

import (
	"context"
	"fmt"

	"folio/domain"
	apperrors "folio/utils/errors"
	"folio/utils/logger"
)

// RecordVisit stores one visitor arrival.
func (r *Repository) RecordVisit(ctx context.Context, visit domain.Visit) error {
	if !r.Configured() {
		return fmt.Errorf("record visit: %w", apperrors.ErrStoreUnavailable)
	}

	query := `
		INSERT INTO analytics_visitors (visitor_id, path, referrer, user_agent, created_at)
		VALUES ($1, $2, $3, $4, NOW())
	`

	_, err := r.pool.Exec(ctx, query, visit.VisitorID, visit.Path, visit.Referrer, visit.UserAgent)
	if err != nil {
		logger.Logger.Error("error recording visit", "path", visit.Path, "error", err)
		return fmt.Errorf("error recording visit: %w", err)
	}

	return nil
}

// RecordPageView stores one page consumption record.
func (r *Repository) RecordPageView(ctx context.Context, view domain.PageView) error {
	if !r.Configured() {
		return fmt.Errorf("record page view: %w", apperrors.ErrStoreUnavailable)
	}

	query := `
		INSERT INTO analytics_page_views (visitor_id, path, duration_seconds, scroll_depth, created_at)
		VALUES ($1, $2, $3, $4, NOW())
	`

	_, err := r.pool.Exec(ctx, query, view.VisitorID, view.Path, view.DurationSeconds, view.ScrollDepth)
	if err != nil {
		logger.Logger.Error("error recording page view", "path", view.Path, "error", err)
		return fmt.Errorf("error recording page view: %w", err)
	}

	return nil
}

// RecordPerformance stores one client-side performance measurement.
func (r *Repository) RecordPerformance(ctx context.Context, event domain.PerformanceEvent) error {
	if !r.Configured() {
		return fmt.Errorf("record performance: %w", apperrors.ErrStoreUnavailable)
	}

	query := `
		INSERT INTO analytics_performance (metric, value, path, created_at)
		VALUES ($1, $2, $3, NOW())
	`

	_, err := r.pool.Exec(ctx, query, event.Metric, event.Value, event.Path)
	if err != nil {
		logger.Logger.Error("error recording performance event", "metric", event.Metric, "error", err)
		return fmt.Errorf("error recording performance event: %w", err)
	}

	return nil
}

// Summary aggregates collected analytics over the trailing day range.
func (r *Repository) Summary(ctx context.Context, days int) (domain.AnalyticsSummary, error) {
	if !r.Configured() {
		return domain.AnalyticsSummary{}, fmt.Errorf("analytics summary: %w", apperrors.ErrStoreUnavailable)
	}

	summary := domain.AnalyticsSummary{Days: days}

	visitsQuery := `
		SELECT COUNT(*), COUNT(DISTINCT visitor_id)
		FROM analytics_visitors
		WHERE created_at > NOW() - ($1 * INTERVAL '1 day')
	`
	err := r.pool.QueryRow(ctx, visitsQuery, days).
		Scan(&summary.TotalVisits, &summary.UniqueVisitors)
	if err != nil {
		logger.Logger.Error("error aggregating visits", "error", err)
		return domain.AnalyticsSummary{}, fmt.Errorf("error aggregating visits: %w", err)
	}

	viewsQuery := `
		SELECT COUNT(*), COALESCE(AVG(scroll_depth), 0)
		FROM analytics_page_views
		WHERE created_at > NOW() - ($1 * INTERVAL '1 day')
	`
	err = r.pool.QueryRow(ctx, viewsQuery, days).
		Scan(&summary.TotalPageViews, &summary.AvgScrollDepth)
	if err != nil {
		logger.Logger.Error("error aggregating page views", "error", err)
		return domain.AnalyticsSummary{}, fmt.Errorf("error aggregating page views: %w", err)
	}

	topPathsQuery := `
		SELECT path, COUNT(*) AS views
		FROM analytics_page_views
		WHERE created_at > NOW() - ($1 * INTERVAL '1 day')
		GROUP BY path
		ORDER BY views DESC, path
		LIMIT 10
	`
	rows, err := r.pool.Query(ctx, topPathsQuery, days)
	if err != nil {
		logger.Logger.Error("error fetching top paths", "error", err)
		return domain.AnalyticsSummary{}, fmt.Errorf("error fetching top paths: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var entry domain.PathCount
		if err := rows.Scan(&entry.Path, &entry.Count); err != nil {
			logger.Logger.Error("error scanning top path row", "error", err)
			return domain.AnalyticsSummary{}, fmt.Errorf("error scanning top path row: %w", err)
		}
		summary.TopPaths = append(summary.TopPaths, entry)
	}

	if err := rows.Err(); err != nil {
		return domain.AnalyticsSummary{}, fmt.Errorf("error iterating top paths: %w", err)
	}

	return summary, nil
}
