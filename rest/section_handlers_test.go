package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"folio/config"
	"folio/mocks"
	"folio/usecase/site_section_usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newSectionHandler(t *testing.T) (*SectionHandler, *mocks.MockSiteSectionPort) {
	t.Helper()

	ctrl := gomock.NewController(t)
	store := mocks.NewMockSiteSectionPort(ctrl)

	getter := site_section_usecase.NewGetSectionUsecase(store, config.DefaultContent())
	updater := site_section_usecase.NewUpdateSectionUsecase(store)

	return NewSectionHandler(getter, updater), store
}

func sectionContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder, section string) echo.Context {
	c := e.NewContext(req, rec)
	c.SetParamNames("section")
	c.SetParamValues(section)
	return c
}

func TestGetSection_FallsBackWithoutStore(t *testing.T) {
	handler, store := newSectionHandler(t)
	store.EXPECT().Configured().Return(false)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/site/hero", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.GetSection(sectionContext(e, req, rec, "hero")))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body, "hero")
	assert.NotContains(t, body, "_source")
}

func TestGetSection_UnknownSectionIs404(t *testing.T) {
	handler, _ := newSectionHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/site/unknown", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.GetSection(sectionContext(e, req, rec, "unknown")))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminGetSection_ReportsSource(t *testing.T) {
	handler, store := newSectionHandler(t)
	store.EXPECT().Configured().Return(true)
	store.EXPECT().GetSection(gomock.Any(), "hero").
		Return(`{"name":"Stored","title":"x","bio":"y","description":"z"}`, true, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/admin/site/hero", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.AdminGetSection(sectionContext(e, req, rec, "hero")))
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.JSONEq(t, `"database"`, string(body["_source"]))
}

func TestUpdateSection_PersistsValidPayload(t *testing.T) {
	handler, store := newSectionHandler(t)
	store.EXPECT().UpsertSection(gomock.Any(), "stats", gomock.Any()).Return(nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/v1/admin/site/stats",
		strings.NewReader(`{"projects":12,"publications":4,"citations":90,"yearsExperience":8}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.UpdateSection(sectionContext(e, req, rec, "stats")))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"projects":12`)
}

func TestUpdateSection_ValidationFailureIs400(t *testing.T) {
	handler, _ := newSectionHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/v1/admin/site/hero",
		strings.NewReader(`{"name":"","title":"","bio":"","description":""}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.UpdateSection(sectionContext(e, req, rec, "hero")))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateSection_StoreFailureIs500(t *testing.T) {
	handler, store := newSectionHandler(t)
	store.EXPECT().UpsertSection(gomock.Any(), "stats", gomock.Any()).
		Return(errors.New("store down"))

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/v1/admin/site/stats",
		strings.NewReader(`{"projects":1,"publications":0,"citations":0,"yearsExperience":1}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.UpdateSection(sectionContext(e, req, rec, "stats")))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestUpsertSetting_RoundTrip(t *testing.T) {
	handler, store := newSectionHandler(t)
	store.EXPECT().UpsertSection(gomock.Any(), "setting:theme", "dark").Return(nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/v1/admin/settings/theme",
		strings.NewReader(`{"value":"dark"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	c := e.NewContext(req, rec)
	c.SetParamNames("key")
	c.SetParamValues("theme")

	require.NoError(t, handler.UpsertSetting(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"dark"`)
}

func TestGetSetting_MissingRowIs404(t *testing.T) {
	handler, store := newSectionHandler(t)
	store.EXPECT().Configured().Return(true)
	store.EXPECT().GetSection(gomock.Any(), "setting:theme").Return("", false, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/admin/settings/theme", nil)
	rec := httptest.NewRecorder()

	c := e.NewContext(req, rec)
	c.SetParamNames("key")
	c.SetParamValues("theme")

	require.NoError(t, handler.GetSetting(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
