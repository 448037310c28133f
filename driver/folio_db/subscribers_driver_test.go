package folio_db

import (
	"context"
	"regexp"
	"testing"
	"time"

	apperrors "folio/utils/errors"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubscribe_NewAddressInserts(t *testing.T) {
	repo, mock := newMockRepository(t)

	created := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO newsletter_subscribers")).
		WithArgs("reader@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"id", "email", "created_at"}).
			AddRow(1, "reader@example.com", created))

	subscriber, wasCreated, err := repo.Subscribe(context.Background(), "reader@example.com")
	require.NoError(t, err)
	assert.True(t, wasCreated)
	assert.Equal(t, 1, subscriber.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubscribe_ExistingAddressReturnsStoredRow(t *testing.T) {
	repo, mock := newMockRepository(t)

	created := time.Date(2025, 11, 1, 9, 0, 0, 0, time.UTC)

	// ON CONFLICT DO NOTHING yields no row for an existing address.
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO newsletter_subscribers")).
		WithArgs("reader@example.com").
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, email, created_at FROM newsletter_subscribers WHERE email = $1")).
		WithArgs("reader@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"id", "email", "created_at"}).
			AddRow(3, "reader@example.com", created))

	subscriber, wasCreated, err := repo.Subscribe(context.Background(), "reader@example.com")
	require.NoError(t, err)
	assert.False(t, wasCreated)
	assert.Equal(t, 3, subscriber.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnsubscribe_ReportsRemoval(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM newsletter_subscribers WHERE email = $1")).
		WithArgs("reader@example.com").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	removed, err := repo.Unsubscribe(context.Background(), "reader@example.com")
	require.NoError(t, err)
	assert.True(t, removed)
}

func TestUnsubscribe_MissingAddress(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM newsletter_subscribers WHERE email = $1")).
		WithArgs("ghost@example.com").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	removed, err := repo.Unsubscribe(context.Background(), "ghost@example.com")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestListSubscribers_UnconfiguredStore(t *testing.T) {
	repo := NewRepository(nil)

	_, err := repo.ListSubscribers(context.Background())
	assert.True(t, apperrors.IsStoreUnavailable(err))
}
