package newsletter_usecase

import (
	"context"
	"log/slog"
	"net/mail"
	"strings"

	"folio/domain"
	"folio/port/subscriber_port"
	apperrors "folio/utils/errors"
)

// NewsletterUsecase manages newsletter subscriptions. Subscribing an
// address twice is idempotent.
type NewsletterUsecase struct {
	subscribers subscriber_port.SubscriberPort
	logger      *slog.Logger
}

func NewNewsletterUsecase(subscribers subscriber_port.SubscriberPort) *NewsletterUsecase {
	return &NewsletterUsecase{
		subscribers: subscribers,
		logger:      slog.Default(),
	}
}

// Subscribe validates and stores an address. The bool reports whether a
// new subscription was created.
func (u *NewsletterUsecase) Subscribe(ctx context.Context, email string) (domain.Subscriber, bool, error) {
	normalized, err := normalizeEmail(email)
	if err != nil {
		return domain.Subscriber{}, false, err
	}

	subscriber, created, err := u.subscribers.Subscribe(ctx, normalized)
	if err != nil {
		u.logger.Error("failed to subscribe", "error", err)
		return domain.Subscriber{}, false, apperrors.DatabaseError("failed to subscribe", err, nil)
	}

	u.logger.Info("newsletter subscription", "created", created)
	return subscriber, created, nil
}

// Unsubscribe removes an address if present.
func (u *NewsletterUsecase) Unsubscribe(ctx context.Context, email string) (bool, error) {
	normalized, err := normalizeEmail(email)
	if err != nil {
		return false, err
	}

	removed, err := u.subscribers.Unsubscribe(ctx, normalized)
	if err != nil {
		u.logger.Error("failed to unsubscribe", "error", err)
		return false, apperrors.DatabaseError("failed to unsubscribe", err, nil)
	}
	return removed, nil
}

// ListSubscribers returns every subscriber for the admin dashboard.
func (u *NewsletterUsecase) ListSubscribers(ctx context.Context) ([]domain.Subscriber, error) {
	subscribers, err := u.subscribers.ListSubscribers(ctx)
	if err != nil {
		u.logger.Error("failed to list subscribers", "error", err)
		return nil, apperrors.DatabaseError("failed to list subscribers", err, nil)
	}
	if subscribers == nil {
		subscribers = []domain.Subscriber{}
	}
	return subscribers, nil
}

func normalizeEmail(email string) (string, error) {
	trimmed := strings.ToLower(strings.TrimSpace(email))
	if trimmed == "" {
		return "", apperrors.ValidationError("email is required",
			map[string]interface{}{"field": "email"})
	}

	addr, err := mail.ParseAddress(trimmed)
	if err != nil || addr.Address != trimmed {
		return "", apperrors.ValidationError("invalid email address",
			map[string]interface{}{"field": "email"})
	}

	return trimmed, nil
}
