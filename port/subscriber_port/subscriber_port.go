package subscriber_port

import (
	"context"

	"folio/domain"
)

// SubscriberPort is the store boundary for newsletter subscriptions.
type SubscriberPort interface {
	// Subscribe inserts the address. created is false when it already existed.
	Subscribe(ctx context.Context, email string) (subscriber domain.Subscriber, created bool, err error)
	// Unsubscribe removes the address. removed is false when it was not present.
	Unsubscribe(ctx context.Context, email string) (removed bool, err error)
	ListSubscribers(ctx context.Context) ([]domain.Subscriber, error)
}
