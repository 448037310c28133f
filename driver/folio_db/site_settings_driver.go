package folio_db

import (
	"context"
	"errors"
	"fmt"

	apperrors "folio/utils/errors"
	"folio/utils/logger"

	"github.com/jackc/pgx/v5"
)

// GetSiteSetting returns the raw stored payload for a section key. The
// second return value is false when no row exists for the key.
func (r *Repository) GetSiteSetting(ctx context.Context, key string) (string, bool, error) {
	if !r.Configured() {
		return "", false, fmt.Errorf("get site setting: %w", apperrors.ErrStoreUnavailable)
	}

	query := `
		SELECT value FROM site_settings WHERE key = $1
	`

	var value string
	err := r.pool.QueryRow(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		logger.Logger.Error("error fetching site setting", "key", key, "error", err)
		return "", false, fmt.Errorf("error fetching site setting %q: %w", key, err)
	}

	return value, true, nil
}

// UpsertSiteSetting writes the payload for a section key unconditionally.
func (r *Repository) UpsertSiteSetting(ctx context.Context, key string, value string) error {
	if !r.Configured() {
		return fmt.Errorf("upsert site setting: %w", apperrors.ErrStoreUnavailable)
	}

	query := `
		INSERT INTO site_settings (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = NOW()
	`

	_, err := r.pool.Exec(ctx, query, key, value)
	if err != nil {
		logger.Logger.Error("error upserting site setting", "key", key, "error", err)
		return fmt.Errorf("error upserting site setting %q: %w", key, err)
	}

	return nil
}

// DeleteSiteSetting removes the stored row for a section key.
func (r *Repository) DeleteSiteSetting(ctx context.Context, key string) error {
	if !r.Configured() {
		return fmt.Errorf("delete site setting: %w", apperrors.ErrStoreUnavailable)
	}

	query := `
		DELETE FROM site_settings WHERE key = $1
	`

	tag, err := r.pool.Exec(ctx, query, key)
	if err != nil {
		logger.Logger.Error("error deleting site setting", "key", key, "error", err)
		return fmt.Errorf("error deleting site setting %q: %w", key, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("site setting %q: %w", key, apperrors.ErrRecordNotFound)
	}

	return nil
}
