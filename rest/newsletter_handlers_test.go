package rest

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"folio/domain"
	"folio/mocks"
	"folio/usecase/newsletter_usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newNewsletterHandler(t *testing.T) (*NewsletterHandler, *mocks.MockSubscriberPort) {
	t.Helper()

	ctrl := gomock.NewController(t)
	store := mocks.NewMockSubscriberPort(ctrl)

	return NewNewsletterHandler(newsletter_usecase.NewNewsletterUsecase(store)), store
}

func TestSubscribeEndpoint_NewAddressIs201(t *testing.T) {
	handler, store := newNewsletterHandler(t)

	store.EXPECT().Subscribe(gomock.Any(), "reader@example.com").
		Return(domain.Subscriber{ID: 1, Email: "reader@example.com", CreatedAt: time.Now()}, true, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/newsletter/subscribe",
		strings.NewReader(`{"email":"Reader@Example.com"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.Subscribe(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"created":true`)
}

func TestSubscribeEndpoint_RepeatIs200(t *testing.T) {
	handler, store := newNewsletterHandler(t)

	store.EXPECT().Subscribe(gomock.Any(), "reader@example.com").
		Return(domain.Subscriber{ID: 1, Email: "reader@example.com"}, false, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/newsletter/subscribe",
		strings.NewReader(`{"email":"reader@example.com"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.Subscribe(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"created":false`)
}

func TestSubscribeEndpoint_BadAddressIs400(t *testing.T) {
	handler, _ := newNewsletterHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/newsletter/subscribe",
		strings.NewReader(`{"email":"not-an-email"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.Subscribe(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUnsubscribeEndpoint_MissingAddressIs404(t *testing.T) {
	handler, store := newNewsletterHandler(t)

	store.EXPECT().Unsubscribe(gomock.Any(), "ghost@example.com").Return(false, nil)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/newsletter/unsubscribe",
		strings.NewReader(`{"email":"ghost@example.com"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.Unsubscribe(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
