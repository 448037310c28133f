package hobby_gateway

import (
	"context"

	"folio/domain"
	"folio/driver/folio_db"
)

// HobbyGateway adapts the database repository to the hobby store port.
type HobbyGateway struct {
	repository *folio_db.Repository
}

func NewHobbyGateway(repository *folio_db.Repository) *HobbyGateway {
	return &HobbyGateway{repository: repository}
}

func (g *HobbyGateway) Configured() bool {
	return g.repository.Configured()
}

func (g *HobbyGateway) ListHobbies(ctx context.Context) ([]domain.Hobby, error) {
	return g.repository.ListHobbies(ctx)
}

func (g *HobbyGateway) CreateHobby(ctx context.Context, hobby domain.Hobby) (domain.Hobby, error) {
	return g.repository.CreateHobby(ctx, hobby)
}

func (g *HobbyGateway) UpdateHobby(ctx context.Context, id int, hobby domain.Hobby) (domain.Hobby, error) {
	return g.repository.UpdateHobby(ctx, id, hobby)
}

func (g *HobbyGateway) DeleteHobby(ctx context.Context, id int) error {
	return g.repository.DeleteHobby(ctx, id)
}
