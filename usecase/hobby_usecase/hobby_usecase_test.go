package hobby_usecase

import (
	"context"
	"errors"
	"testing"

	"folio/domain"
	"folio/mocks"
	apperrors "folio/utils/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var defaults = []domain.Hobby{{Title: "Bouldering"}, {Title: "Film photography"}}

func TestList_UnconfiguredStoreUsesDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockHobbyPort(ctrl)
	store.EXPECT().Configured().Return(false)

	usecase := NewHobbyUsecase(store, defaults)

	hobbies, source := usecase.List(context.Background())
	assert.Equal(t, domain.SourceConfig, source)
	assert.Equal(t, defaults, hobbies)
}

func TestList_StoreErrorUsesDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockHobbyPort(ctrl)
	store.EXPECT().Configured().Return(true)
	store.EXPECT().ListHobbies(gomock.Any()).Return(nil, errors.New("down"))

	usecase := NewHobbyUsecase(store, defaults)

	hobbies, source := usecase.List(context.Background())
	assert.Equal(t, domain.SourceConfig, source)
	assert.Equal(t, defaults, hobbies)
}

func TestList_EmptyStoreUsesDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockHobbyPort(ctrl)
	store.EXPECT().Configured().Return(true)
	store.EXPECT().ListHobbies(gomock.Any()).Return([]domain.Hobby{}, nil)

	usecase := NewHobbyUsecase(store, defaults)

	hobbies, source := usecase.List(context.Background())
	assert.Equal(t, domain.SourceConfig, source)
	assert.Equal(t, defaults, hobbies)
}

func TestList_StoredRowsWin(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockHobbyPort(ctrl)
	stored := []domain.Hobby{{ID: 1, Title: "Sailing"}}
	store.EXPECT().Configured().Return(true)
	store.EXPECT().ListHobbies(gomock.Any()).Return(stored, nil)

	usecase := NewHobbyUsecase(store, defaults)

	hobbies, source := usecase.List(context.Background())
	assert.Equal(t, domain.SourceDatabase, source)
	assert.Equal(t, stored, hobbies)
}

func TestCreate_RequiresTitle(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockHobbyPort(ctrl)

	usecase := NewHobbyUsecase(store, defaults)

	_, err := usecase.Create(context.Background(), domain.Hobby{Title: "  "})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)
}

func TestCreate_NormalizesTags(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockHobbyPort(ctrl)
	store.EXPECT().CreateHobby(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, hobby domain.Hobby) (domain.Hobby, error) {
			assert.Equal(t, []string{"outdoor", "climbing"}, hobby.Tags)
			hobby.ID = 7
			return hobby, nil
		})

	usecase := NewHobbyUsecase(store, defaults)

	created, err := usecase.Create(context.Background(), domain.Hobby{
		Title: "Bouldering",
		Tags:  []string{"outdoor, climbing", "  "},
	})
	require.NoError(t, err)
	assert.Equal(t, 7, created.ID)
}

func TestUpdate_MissingRowMapsToNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockHobbyPort(ctrl)
	store.EXPECT().UpdateHobby(gomock.Any(), 42, gomock.Any()).
		Return(domain.Hobby{}, apperrors.ErrRecordNotFound)

	usecase := NewHobbyUsecase(store, defaults)

	_, err := usecase.Update(context.Background(), 42, domain.Hobby{Title: "Sailing"})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeNotFound, appErr.Code)
}

func TestDelete_InvalidIDRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockHobbyPort(ctrl)

	usecase := NewHobbyUsecase(store, defaults)

	err := usecase.Delete(context.Background(), 0)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)
}
