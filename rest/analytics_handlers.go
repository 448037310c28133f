package rest

import (
	"net/http"
	"strconv"

	"folio/domain"
	"folio/usecase/analytics_usecase"
	apperrors "folio/utils/errors"

	"github.com/labstack/echo/v4"
)

// AnalyticsHandler serves event ingest and the admin summary.
type AnalyticsHandler struct {
	analytics *analytics_usecase.AnalyticsUsecase
}

func NewAnalyticsHandler(analytics *analytics_usecase.AnalyticsUsecase) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// RecordVisit answers POST /v1/analytics/visit. The response echoes the
// visitor id, minted server-side when absent.
func (h *AnalyticsHandler) RecordVisit(c echo.Context) error {
	var req visitRequest
	if err := c.Bind(&req); err != nil {
		return handleError(c, apperrors.ValidationError("invalid JSON payload", nil))
	}

	visit, err := h.analytics.RecordVisit(c.Request().Context(), domain.Visit{
		VisitorID: req.VisitorID,
		Path:      req.Path,
		Referrer:  req.Referrer,
		UserAgent: c.Request().UserAgent(),
	})
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(http.StatusAccepted, visitResponse{VisitorID: visit.VisitorID})
}

// RecordPageView answers POST /v1/analytics/pageview.
func (h *AnalyticsHandler) RecordPageView(c echo.Context) error {
	var req pageViewRequest
	if err := c.Bind(&req); err != nil {
		return handleError(c, apperrors.ValidationError("invalid JSON payload", nil))
	}

	err := h.analytics.RecordPageView(c.Request().Context(), domain.PageView{
		VisitorID:       req.VisitorID,
		Path:            req.Path,
		DurationSeconds: req.DurationSeconds,
		ScrollDepth:     req.ScrollDepth,
	})
	if err != nil {
		return handleError(c, err)
	}
	return c.NoContent(http.StatusAccepted)
}

// RecordPerformance answers POST /v1/analytics/performance.
func (h *AnalyticsHandler) RecordPerformance(c echo.Context) error {
	var req performanceRequest
	if err := c.Bind(&req); err != nil {
		return handleError(c, apperrors.ValidationError("invalid JSON payload", nil))
	}

	err := h.analytics.RecordPerformance(c.Request().Context(), domain.PerformanceEvent{
		Metric: req.Metric,
		Value:  req.Value,
		Path:   req.Path,
	})
	if err != nil {
		return handleError(c, err)
	}
	return c.NoContent(http.StatusAccepted)
}

// Summary answers GET /v1/admin/analytics/summary?days=N.
func (h *AnalyticsHandler) Summary(c echo.Context) error {
	days := 0
	if raw := c.QueryParam("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return handleError(c, apperrors.ValidationError("days must be an integer",
				map[string]interface{}{"days": raw}))
		}
		days = parsed
	}

	summary, err := h.analytics.Summary(c.Request().Context(), days)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(http.StatusOK, summary)
}
