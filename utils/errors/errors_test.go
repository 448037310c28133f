package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_HTTPStatusCodes(t *testing.T) {
	cases := []struct {
		err    *AppError
		status int
	}{
		{ValidationError("bad", nil), http.StatusBadRequest},
		{UnauthorizedError("denied"), http.StatusUnauthorized},
		{NotFoundError("missing", nil), http.StatusNotFound},
		{RateLimitError("slow down"), http.StatusTooManyRequests},
		{DatabaseError("broken", nil, nil), http.StatusInternalServerError},
		{UnknownError("what", nil), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.status, tc.err.HTTPStatusCode(), "code %s", tc.err.Code)
	}
}

func TestAppError_UnwrapExposesCause(t *testing.T) {
	cause := stderrors.New("underlying")
	err := DatabaseError("query failed", cause, nil)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "query failed")
	assert.Contains(t, err.Error(), "underlying")
}

func TestSentinels_SurviveWrapping(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", ErrStoreUnavailable))
	assert.True(t, IsStoreUnavailable(wrapped))

	require.True(t, IsRecordNotFound(fmt.Errorf("row: %w", ErrRecordNotFound)))
	require.True(t, IsUnauthorized(fmt.Errorf("auth: %w", ErrUnauthorized)))
	require.True(t, IsInvalidInput(fmt.Errorf("input: %w", ErrInvalidInput)))
	require.True(t, IsDuplicateRecord(fmt.Errorf("dup: %w", ErrDuplicateRecord)))

	assert.False(t, IsStoreUnavailable(stderrors.New("unrelated")))
}

func TestAppError_SentinelAsCause(t *testing.T) {
	err := DatabaseError("fetch failed", ErrStoreUnavailable, nil)
	assert.True(t, IsStoreUnavailable(err))
}
