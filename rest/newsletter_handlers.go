package rest

import (
	"net/http"

	"folio/usecase/newsletter_usecase"
	apperrors "folio/utils/errors"

	"github.com/labstack/echo/v4"
)

// NewsletterHandler serves subscription management.
type NewsletterHandler struct {
	newsletter *newsletter_usecase.NewsletterUsecase
}

func NewNewsletterHandler(newsletter *newsletter_usecase.NewsletterUsecase) *NewsletterHandler {
	return &NewsletterHandler{newsletter: newsletter}
}

// Subscribe answers POST /v1/newsletter/subscribe. Repeat subscriptions
// succeed with created=false.
func (h *NewsletterHandler) Subscribe(c echo.Context) error {
	var req subscribeRequest
	if err := c.Bind(&req); err != nil {
		return handleError(c, apperrors.ValidationError("invalid JSON payload", nil))
	}

	subscriber, created, err := h.newsletter.Subscribe(c.Request().Context(), req.Email)
	if err != nil {
		return handleError(c, err)
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	return c.JSON(status, subscribeResponse{Email: subscriber.Email, Created: created})
}

// Unsubscribe answers POST /v1/newsletter/unsubscribe.
func (h *NewsletterHandler) Unsubscribe(c echo.Context) error {
	var req subscribeRequest
	if err := c.Bind(&req); err != nil {
		return handleError(c, apperrors.ValidationError("invalid JSON payload", nil))
	}

	removed, err := h.newsletter.Unsubscribe(c.Request().Context(), req.Email)
	if err != nil {
		return handleError(c, err)
	}
	if !removed {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "subscription not found"})
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "unsubscribed"})
}

// AdminList answers GET /v1/admin/newsletter/subscribers.
func (h *NewsletterHandler) AdminList(c echo.Context) error {
	subscribers, err := h.newsletter.ListSubscribers(c.Request().Context())
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"subscribers": subscribers})
}
