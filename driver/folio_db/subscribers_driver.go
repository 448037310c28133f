package folio_db

import (
	"context"
	"errors"
	"fmt"

	"folio/domain"
	apperrors "folio/utils/errors"
	"folio/utils/logger"

	"github.com/jackc/pgx/v5"
)

// Subscribe inserts the address if it is new. The second return value is
// false when the address was already subscribed.
func (r *Repository) Subscribe(ctx context.Context, email string) (domain.Subscriber, bool, error) {
	if !r.Configured() {
		return domain.Subscriber{}, false, fmt.Errorf("subscribe: %w", apperrors.ErrStoreUnavailable)
	}

	insert := `
		INSERT INTO newsletter_subscribers (email, created_at)
		VALUES ($1, NOW())
		ON CONFLICT (email) DO NOTHING
		RETURNING id, email, created_at
	`

	var subscriber domain.Subscriber
	err := r.pool.QueryRow(ctx, insert, email).
		Scan(&subscriber.ID, &subscriber.Email, &subscriber.CreatedAt)
	if err == nil {
		return subscriber, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		logger.Logger.Error("error subscribing email", "error", err)
		return domain.Subscriber{}, false, fmt.Errorf("error subscribing email: %w", err)
	}

	// Conflict path: the address already exists, return the stored row.
	existing := `
		SELECT id, email, created_at FROM newsletter_subscribers WHERE email = $1
	`
	err = r.pool.QueryRow(ctx, existing, email).
		Scan(&subscriber.ID, &subscriber.Email, &subscriber.CreatedAt)
	if err != nil {
		logger.Logger.Error("error fetching existing subscriber", "error", err)
		return domain.Subscriber{}, false, fmt.Errorf("error fetching existing subscriber: %w", err)
	}

	return subscriber, false, nil
}

// Unsubscribe removes the address. The first return value is false when the
// address was not subscribed.
func (r *Repository) Unsubscribe(ctx context.Context, email string) (bool, error) {
	if !r.Configured() {
		return false, fmt.Errorf("unsubscribe: %w", apperrors.ErrStoreUnavailable)
	}

	query := `
		DELETE FROM newsletter_subscribers WHERE email = $1
	`

	tag, err := r.pool.Exec(ctx, query, email)
	if err != nil {
		logger.Logger.Error("error unsubscribing email", "error", err)
		return false, fmt.Errorf("error unsubscribing email: %w", err)
	}

	return tag.RowsAffected() > 0, nil
}

// ListSubscribers returns every subscriber, newest first.
func (r *Repository) ListSubscribers(ctx context.Context) ([]domain.Subscriber, error) {
	if !r.Configured() {
		return nil, fmt.Errorf("list subscribers: %w", apperrors.ErrStoreUnavailable)
	}

	query := `
		SELECT id, email, created_at FROM newsletter_subscribers ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		logger.Logger.Error("error fetching subscribers", "error", err)
		return nil, fmt.Errorf("error fetching subscribers: %w", err)
	}
	defer rows.Close()

	var subscribers []domain.Subscriber
	for rows.Next() {
		var subscriber domain.Subscriber
		if err := rows.Scan(&subscriber.ID, &subscriber.Email, &subscriber.CreatedAt); err != nil {
			logger.Logger.Error("error scanning subscriber row", "error", err)
			return nil, fmt.Errorf("error scanning subscriber row: %w", err)
		}
		subscribers = append(subscribers, subscriber)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating subscribers: %w", err)
	}

	return subscribers, nil
}
