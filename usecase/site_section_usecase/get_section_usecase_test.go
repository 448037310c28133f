package site_section_usecase

import (
	"context"
	"errors"
	"testing"

	"folio/config"
	"folio/domain"
	"folio/mocks"
	apperrors "folio/utils/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHero_UnconfiguredStoreFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockSiteSectionPort(ctrl)
	store.EXPECT().Configured().Return(false)

	fallback := config.DefaultContent()
	usecase := NewGetSectionUsecase(store, fallback)

	resolved := usecase.Hero(context.Background())
	assert.Equal(t, domain.SourceConfig, resolved.Source)
	assert.Equal(t, fallback.Hero.Name, resolved.Value.Name)
}

func TestHero_StoreErrorFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockSiteSectionPort(ctrl)
	store.EXPECT().Configured().Return(true)
	store.EXPECT().GetSection(gomock.Any(), "hero").Return("", false, errors.New("connection refused"))

	usecase := NewGetSectionUsecase(store, config.DefaultContent())

	resolved := usecase.Hero(context.Background())
	assert.Equal(t, domain.SourceConfig, resolved.Source)
}

func TestHero_MissingRowFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockSiteSectionPort(ctrl)
	store.EXPECT().Configured().Return(true)
	store.EXPECT().GetSection(gomock.Any(), "hero").Return("", false, nil)

	usecase := NewGetSectionUsecase(store, config.DefaultContent())

	resolved := usecase.Hero(context.Background())
	assert.Equal(t, domain.SourceConfig, resolved.Source)
}

func TestHero_UnparseablePayloadFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockSiteSectionPort(ctrl)
	store.EXPECT().Configured().Return(true)
	store.EXPECT().GetSection(gomock.Any(), "hero").Return("{not json", true, nil)

	usecase := NewGetSectionUsecase(store, config.DefaultContent())

	resolved := usecase.Hero(context.Background())
	assert.Equal(t, domain.SourceConfig, resolved.Source)
}

func TestHero_StoredPayloadWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockSiteSectionPort(ctrl)
	store.EXPECT().Configured().Return(true)
	store.EXPECT().GetSection(gomock.Any(), "hero").
		Return(`{"name":"Stored Name","title":"Engineer","bio":"bio","description":"desc"}`, true, nil)

	usecase := NewGetSectionUsecase(store, config.DefaultContent())

	resolved := usecase.Hero(context.Background())
	assert.Equal(t, domain.SourceDatabase, resolved.Source)
	assert.Equal(t, "Stored Name", resolved.Value.Name)
}

func TestResolve_DispatchesEveryKnownSection(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockSiteSectionPort(ctrl)
	store.EXPECT().Configured().Return(false).Times(len(domain.SectionKeys))

	usecase := NewGetSectionUsecase(store, config.DefaultContent())

	for _, key := range domain.SectionKeys {
		payload, source, err := usecase.Resolve(context.Background(), key)
		require.NoError(t, err, "section %s", key)
		assert.NotNil(t, payload, "section %s", key)
		assert.Equal(t, domain.SourceConfig, source)
	}
}

func TestResolve_UnknownSectionErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockSiteSectionPort(ctrl)

	usecase := NewGetSectionUsecase(store, config.DefaultContent())

	_, _, err := usecase.Resolve(context.Background(), "projects_carousel")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrCodeValidation, appErr.Code)
}

func TestSetting_UnconfiguredStoreErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockSiteSectionPort(ctrl)
	store.EXPECT().Configured().Return(false)

	usecase := NewGetSectionUsecase(store, config.DefaultContent())

	_, err := usecase.Setting(context.Background(), "theme")
	assert.True(t, apperrors.IsStoreUnavailable(err))
}

func TestSetting_MissingRowErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockSiteSectionPort(ctrl)
	store.EXPECT().Configured().Return(true)
	store.EXPECT().GetSection(gomock.Any(), "setting:theme").Return("", false, nil)

	usecase := NewGetSectionUsecase(store, config.DefaultContent())

	_, err := usecase.Setting(context.Background(), "theme")
	assert.True(t, apperrors.IsRecordNotFound(err))
}

func TestSetting_ReturnsStoredValue(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockSiteSectionPort(ctrl)
	store.EXPECT().Configured().Return(true)
	store.EXPECT().GetSection(gomock.Any(), "setting:theme").Return("dark", true, nil)

	usecase := NewGetSectionUsecase(store, config.DefaultContent())

	setting, err := usecase.Setting(context.Background(), "theme")
	require.NoError(t, err)
	assert.Equal(t, "theme", setting.Key)
	assert.Equal(t, "dark", setting.Value)
}
