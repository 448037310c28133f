package folio_db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"folio/domain"
	"folio/driver/models"
	apperrors "folio/utils/errors"
	"folio/utils/logger"

	"github.com/jackc/pgx/v5"
)

// ListHobbies returns every hobby in insertion order.
func (r *Repository) ListHobbies(ctx context.Context) ([]domain.Hobby, error) {
	if !r.Configured() {
		return nil, fmt.Errorf("list hobbies: %w", apperrors.ErrStoreUnavailable)
	}

	query := `
		SELECT id, title, description, image_url, tags, created_at FROM hobbies ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		logger.Logger.Error("error fetching hobbies", "error", err)
		return nil, fmt.Errorf("error fetching hobbies: %w", err)
	}
	defer rows.Close()

	var hobbies []domain.Hobby
	for rows.Next() {
		var row models.Hobby
		if err := rows.Scan(&row.ID, &row.Title, &row.Description, &row.ImageURL, &row.Tags, &row.CreatedAt); err != nil {
			logger.Logger.Error("error scanning hobby row", "error", err)
			return nil, fmt.Errorf("error scanning hobby row: %w", err)
		}
		hobbies = append(hobbies, hobbyFromRow(row))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating hobbies: %w", err)
	}

	return hobbies, nil
}

// CreateHobby inserts a hobby and returns it with its assigned id.
func (r *Repository) CreateHobby(ctx context.Context, hobby domain.Hobby) (domain.Hobby, error) {
	if !r.Configured() {
		return domain.Hobby{}, fmt.Errorf("create hobby: %w", apperrors.ErrStoreUnavailable)
	}

	query := `
		INSERT INTO hobbies (title, description, image_url, tags, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`

	var createdAt time.Time
	err := r.pool.QueryRow(ctx, query, hobby.Title, hobby.Description, hobby.ImageURL, hobby.Tags).
		Scan(&hobby.ID, &createdAt)
	if err != nil {
		logger.Logger.Error("error creating hobby", "title", hobby.Title, "error", err)
		return domain.Hobby{}, fmt.Errorf("error creating hobby: %w", err)
	}
	hobby.CreatedAt = &createdAt

	return hobby, nil
}

// UpdateHobby overwrites the hobby identified by id.
func (r *Repository) UpdateHobby(ctx context.Context, id int, hobby domain.Hobby) (domain.Hobby, error) {
	if !r.Configured() {
		return domain.Hobby{}, fmt.Errorf("update hobby: %w", apperrors.ErrStoreUnavailable)
	}

	query := `
		UPDATE hobbies
		SET title = $2, description = $3, image_url = $4, tags = $5
		WHERE id = $1
		RETURNING id, created_at
	`

	var createdAt time.Time
	err := r.pool.QueryRow(ctx, query, id, hobby.Title, hobby.Description, hobby.ImageURL, hobby.Tags).
		Scan(&hobby.ID, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Hobby{}, fmt.Errorf("hobby %d: %w", id, apperrors.ErrRecordNotFound)
		}
		logger.Logger.Error("error updating hobby", "id", id, "error", err)
		return domain.Hobby{}, fmt.Errorf("error updating hobby %d: %w", id, err)
	}
	hobby.CreatedAt = &createdAt

	return hobby, nil
}

// DeleteHobby removes the hobby identified by id.
func (r *Repository) DeleteHobby(ctx context.Context, id int) error {
	if !r.Configured() {
		return fmt.Errorf("delete hobby: %w", apperrors.ErrStoreUnavailable)
	}

	query := `
		DELETE FROM hobbies WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		logger.Logger.Error("error deleting hobby", "id", id, "error", err)
		return fmt.Errorf("error deleting hobby %d: %w", id, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("hobby %d: %w", id, apperrors.ErrRecordNotFound)
	}

	return nil
}

func hobbyFromRow(row models.Hobby) domain.Hobby {
	hobby := domain.Hobby{
		ID:        row.ID,
		Title:     row.Title,
		Tags:      row.Tags,
		CreatedAt: &row.CreatedAt,
	}
	if row.Description != nil {
		hobby.Description = *row.Description
	}
	if row.ImageURL != nil {
		hobby.ImageURL = *row.ImageURL
	}
	return hobby
}
