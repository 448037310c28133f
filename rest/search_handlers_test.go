package rest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"folio/domain"
	"folio/mocks"
	"folio/usecase/search_content_usecase"
	"folio/validation"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newSearchHandler(t *testing.T) (*SearchHandler, *mocks.MockContentSourcePort) {
	t.Helper()

	ctrl := gomock.NewController(t)
	source := mocks.NewMockContentSourcePort(ctrl)

	usecase := search_content_usecase.NewSearchContentUsecase(source, 20)
	validator := &validation.SearchParamsValidator{
		MaxQueryLength: 200,
		MaxLimit:       100,
		DefaultLimit:   20,
	}

	return NewSearchHandler(usecase, validator), source
}

func TestSearch_ReturnsRankedResults(t *testing.T) {
	handler, source := newSearchHandler(t)

	source.EXPECT().ResearchItems(gomock.Any()).Return([]domain.SearchableItem{
		{Kind: domain.ContentTypeResearch, Title: "Consensus protocols"},
	}, nil)
	source.EXPECT().ProjectItems(gomock.Any()).Return(nil, nil)
	source.EXPECT().BlogItems(gomock.Any()).Return(nil, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/search?q=consensus", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.Search(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	var result domain.SearchResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 1, result.Total)
	require.Len(t, result.Results, 1)
	assert.Equal(t, "Consensus protocols", result.Results[0].Item.Title)
}

func TestSearch_EmptyQueryReturnsEmptySet(t *testing.T) {
	handler, _ := newSearchHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/search", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.Search(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	var result domain.SearchResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 0, result.Total)
	assert.Empty(t, result.Results)
}

func TestSearch_InvalidTypeRejected(t *testing.T) {
	handler, _ := newSearchHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/search?q=go&type=podcast", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.Search(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearch_InvalidLimitRejected(t *testing.T) {
	handler, _ := newSearchHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/search?q=go&limit=0", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.Search(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
