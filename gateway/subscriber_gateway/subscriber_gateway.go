package subscriber_gateway

import (
	"context"

	"folio/domain"
	"folio/driver/folio_db"
)

// SubscriberGateway adapts the database repository to the subscriber port.
type SubscriberGateway struct {
	repository *folio_db.Repository
}

func NewSubscriberGateway(repository *folio_db.Repository) *SubscriberGateway {
	return &SubscriberGateway{repository: repository}
}

func (g *SubscriberGateway) Subscribe(ctx context.Context, email string) (domain.Subscriber, bool, error) {
	return g.repository.Subscribe(ctx, email)
}

func (g *SubscriberGateway) Unsubscribe(ctx context.Context, email string) (bool, error) {
	return g.repository.Unsubscribe(ctx, email)
}

func (g *SubscriberGateway) ListSubscribers(ctx context.Context) ([]domain.Subscriber, error) {
	return g.repository.ListSubscribers(ctx)
}
