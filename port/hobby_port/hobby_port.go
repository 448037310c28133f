package hobby_port

import (
	"context"

	"folio/domain"
)

// HobbyPort is the store boundary for the hobbies collection.
type HobbyPort interface {
	Configured() bool
	ListHobbies(ctx context.Context) ([]domain.Hobby, error)
	CreateHobby(ctx context.Context, hobby domain.Hobby) (domain.Hobby, error)
	UpdateHobby(ctx context.Context, id int, hobby domain.Hobby) (domain.Hobby, error)
	DeleteHobby(ctx context.Context, id int) error
}
