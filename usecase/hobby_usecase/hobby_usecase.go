package hobby_usecase

import (
	"context"
	"log/slog"
	"strings"

	"folio/domain"
	"folio/port/hobby_port"
	apperrors "folio/utils/errors"
)

// HobbyUsecase serves the hobbies collection. Public reads degrade to the
// static defaults; admin writes surface store failures.
type HobbyUsecase struct {
	hobbies  hobby_port.HobbyPort
	fallback []domain.Hobby
	logger   *slog.Logger
}

func NewHobbyUsecase(hobbies hobby_port.HobbyPort, fallback []domain.Hobby) *HobbyUsecase {
	return &HobbyUsecase{
		hobbies:  hobbies,
		fallback: fallback,
		logger:   slog.Default(),
	}
}

// List returns the stored hobbies, or the static defaults when the store
// is unconfigured, erroring, or holds no rows.
func (u *HobbyUsecase) List(ctx context.Context) ([]domain.Hobby, domain.Source) {
	if u.hobbies == nil || !u.hobbies.Configured() {
		return u.fallback, domain.SourceConfig
	}

	hobbies, err := u.hobbies.ListHobbies(ctx)
	if err != nil {
		u.logger.Warn("hobby list failed, using config fallback", "error", err)
		return u.fallback, domain.SourceConfig
	}
	if len(hobbies) == 0 {
		return u.fallback, domain.SourceConfig
	}

	return hobbies, domain.SourceDatabase
}

// Create validates and stores a new hobby.
func (u *HobbyUsecase) Create(ctx context.Context, hobby domain.Hobby) (domain.Hobby, error) {
	if err := validateHobby(hobby); err != nil {
		return domain.Hobby{}, err
	}
	hobby.Tags = normalizeTags(hobby.Tags)

	created, err := u.hobbies.CreateHobby(ctx, hobby)
	if err != nil {
		u.logger.Error("failed to create hobby", "title", hobby.Title, "error", err)
		return domain.Hobby{}, apperrors.DatabaseError("failed to create hobby", err, nil)
	}
	return created, nil
}

// Update validates and overwrites the hobby identified by id.
func (u *HobbyUsecase) Update(ctx context.Context, id int, hobby domain.Hobby) (domain.Hobby, error) {
	if id < 1 {
		return domain.Hobby{}, apperrors.ValidationError("id must be positive",
			map[string]interface{}{"id": id})
	}
	if err := validateHobby(hobby); err != nil {
		return domain.Hobby{}, err
	}
	hobby.Tags = normalizeTags(hobby.Tags)

	updated, err := u.hobbies.UpdateHobby(ctx, id, hobby)
	if err != nil {
		if apperrors.IsRecordNotFound(err) {
			return domain.Hobby{}, apperrors.NotFoundError("hobby not found",
				map[string]interface{}{"id": id})
		}
		u.logger.Error("failed to update hobby", "id", id, "error", err)
		return domain.Hobby{}, apperrors.DatabaseError("failed to update hobby", err, nil)
	}
	return updated, nil
}

// Delete removes the hobby identified by id.
func (u *HobbyUsecase) Delete(ctx context.Context, id int) error {
	if id < 1 {
		return apperrors.ValidationError("id must be positive",
			map[string]interface{}{"id": id})
	}

	err := u.hobbies.DeleteHobby(ctx, id)
	if err != nil {
		if apperrors.IsRecordNotFound(err) {
			return apperrors.NotFoundError("hobby not found",
				map[string]interface{}{"id": id})
		}
		u.logger.Error("failed to delete hobby", "id", id, "error", err)
		return apperrors.DatabaseError("failed to delete hobby", err, nil)
	}
	return nil
}

func validateHobby(hobby domain.Hobby) error {
	if strings.TrimSpace(hobby.Title) == "" {
		return apperrors.ValidationError("title is required",
			map[string]interface{}{"field": "title"})
	}
	return nil
}

func normalizeTags(tags []string) []string {
	result := make([]string, 0, len(tags))
	for _, tag := range tags {
		for _, part := range strings.Split(tag, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				result = append(result, trimmed)
			}
		}
	}
	return result
}
