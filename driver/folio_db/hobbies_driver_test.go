package folio_db

import (
	"context"
	"regexp"
	"testing"
	"time"

	"folio/domain"
	apperrors "folio/utils/errors"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListHobbies_ScansRows(t *testing.T) {
	repo, mock := newMockRepository(t)

	description := "Climbing without ropes"
	created := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, title, description, image_url, tags, created_at FROM hobbies ORDER BY id")).
		WillReturnRows(pgxmock.NewRows([]string{"id", "title", "description", "image_url", "tags", "created_at"}).
			AddRow(1, "Bouldering", &description, (*string)(nil), []string{"outdoor"}, created).
			AddRow(2, "Film photography", (*string)(nil), (*string)(nil), []string(nil), created))

	hobbies, err := repo.ListHobbies(context.Background())
	require.NoError(t, err)
	require.Len(t, hobbies, 2)
	assert.Equal(t, "Bouldering", hobbies[0].Title)
	assert.Equal(t, "Climbing without ropes", hobbies[0].Description)
	assert.Empty(t, hobbies[1].Description)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateHobby_ReturnsAssignedID(t *testing.T) {
	repo, mock := newMockRepository(t)

	created := time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO hobbies")).
		WithArgs("Bouldering", "", "", []string{"outdoor"}).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(5, created))

	hobby, err := repo.CreateHobby(context.Background(), domain.Hobby{
		Title: "Bouldering",
		Tags:  []string{"outdoor"},
	})
	require.NoError(t, err)
	assert.Equal(t, 5, hobby.ID)
	require.NotNil(t, hobby.CreatedAt)
	assert.Equal(t, created, *hobby.CreatedAt)
}

func TestUpdateHobby_MissingRowMapsToNotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE hobbies")).
		WithArgs(42, "Sailing", "", "", []string(nil)).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.UpdateHobby(context.Background(), 42, domain.Hobby{Title: "Sailing"})
	assert.True(t, apperrors.IsRecordNotFound(err))
}

func TestDeleteHobby_MissingRowMapsToNotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM hobbies WHERE id = $1")).
		WithArgs(42).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.DeleteHobby(context.Background(), 42)
	assert.True(t, apperrors.IsRecordNotFound(err))
}

func TestHobbies_UnconfiguredStore(t *testing.T) {
	repo := NewRepository(nil)

	_, err := repo.ListHobbies(context.Background())
	assert.True(t, apperrors.IsStoreUnavailable(err))

	_, err = repo.CreateHobby(context.Background(), domain.Hobby{Title: "x"})
	assert.True(t, apperrors.IsStoreUnavailable(err))

	err = repo.DeleteHobby(context.Background(), 1)
	assert.True(t, apperrors.IsStoreUnavailable(err))
}
