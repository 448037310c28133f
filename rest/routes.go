package rest

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"folio/di"
	custommiddleware "folio/middleware"
	"folio/utils/logger"
	"folio/utils/metrics"
	"folio/utils/rate_limiter"
	"folio/validation"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// NewServer assembles the echo instance: middleware chain, public routes,
// the admin group behind the auth gate, and the operational endpoints.
func NewServer(components *di.ApplicationComponents) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	cfg := components.Config

	e.Use(custommiddleware.RequestIDMiddleware())
	e.Use(middleware.Recover())
	e.Use(middleware.Secure())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     strings.Split(cfg.Server.AllowOrigins, ","),
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))
	e.Use(custommiddleware.MetricsMiddleware())
	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: cfg.Server.WriteTimeout,
	}))
	e.Use(custommiddleware.LoggingMiddleware(logger.NewContextLogger(slog.Default())))
	e.Use(middleware.Gzip())

	searchValidator := &validation.SearchParamsValidator{
		MaxQueryLength: cfg.Search.MaxQueryLength,
		MaxLimit:       cfg.Search.MaxLimit,
		DefaultLimit:   cfg.Search.DefaultLimit,
	}

	searchHandler := NewSearchHandler(components.SearchContentUsecase, searchValidator)
	sectionHandler := NewSectionHandler(components.GetSectionUsecase, components.UpdateSectionUsecase)
	hobbyHandler := NewHobbyHandler(components.HobbyUsecase)
	newsletterHandler := NewNewsletterHandler(components.NewsletterUsecase)
	analyticsHandler := NewAnalyticsHandler(components.AnalyticsUsecase)
	authHandler := NewAuthHandler(components.AuthGateway, cfg)

	v1 := e.Group("/v1")

	v1.GET("/health", health)
	v1.GET("/search", searchHandler.Search)
	v1.GET("/site/:section", sectionHandler.GetSection)
	v1.GET("/hobbies", hobbyHandler.List)
	v1.POST("/newsletter/subscribe", newsletterHandler.Subscribe)
	v1.POST("/newsletter/unsubscribe", newsletterHandler.Unsubscribe)

	analyticsLimiter := rate_limiter.NewClientRateLimiter(cfg.RateLimit.AnalyticsRPS, cfg.RateLimit.AnalyticsBurst)
	ingest := v1.Group("/analytics", custommiddleware.RateLimitMiddleware(analyticsLimiter))
	ingest.POST("/visit", analyticsHandler.RecordVisit)
	ingest.POST("/pageview", analyticsHandler.RecordPageView)
	ingest.POST("/performance", analyticsHandler.RecordPerformance)

	v1.POST("/auth/login", authHandler.Login)

	authMiddleware := custommiddleware.NewAuthMiddleware(components.AuthGateway, cfg.Auth.CookieName)

	auth := v1.Group("/auth", authMiddleware.RequireAuth())
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/me", authHandler.Me)

	admin := v1.Group("/admin", authMiddleware.RequireAuth())
	admin.GET("/site/:section", sectionHandler.AdminGetSection)
	admin.PUT("/site/:section", sectionHandler.UpdateSection)
	admin.DELETE("/site/:section", sectionHandler.DeleteSection)

	admin.GET("/settings/:key", sectionHandler.GetSetting)
	admin.PUT("/settings/:key", sectionHandler.UpsertSetting)
	admin.DELETE("/settings/:key", sectionHandler.DeleteSetting)

	admin.GET("/hobbies", hobbyHandler.AdminList)
	admin.POST("/hobbies", hobbyHandler.Create)
	admin.PUT("/hobbies/:id", hobbyHandler.Update)
	admin.DELETE("/hobbies/:id", hobbyHandler.Delete)

	admin.GET("/newsletter/subscribers", newsletterHandler.AdminList)
	admin.GET("/analytics/summary", analyticsHandler.Summary)

	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	return e
}

func health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
