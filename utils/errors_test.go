package utils

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoteFailureAppError(t *testing.T) {
	t.Run("network failure maps to 503", func(t *testing.T) {
		failure := ClassifyRemoteError(timeoutErr{}, nil)
		appErr := failure.AppError()
		require.NotNil(t, appErr)
		assert.Equal(t, http.StatusServiceUnavailable, appErr.Code)
		assert.Equal(t, NetworkFailureMessage, appErr.Message)
	})

	t.Run("remote rejection maps to 502 with remote message", func(t *testing.T) {
		failure := ClassifyRemoteError(errors.New("bad amount"), []byte(`{"error":"Amount exceeds limit"}`))
		appErr := failure.AppError()
		require.NotNil(t, appErr)
		assert.Equal(t, http.StatusBadGateway, appErr.Code)
		assert.Equal(t, "Amount exceeds limit", appErr.Message)
	})

	t.Run("underlying error stays in the chain", func(t *testing.T) {
		cause := errors.New("gateway said no")
		appErr := ClassifyRemoteError(cause, nil).AppError()
		assert.ErrorIs(t, appErr, cause)
	})
}

func TestGetAppErrorUnwrapsChain(t *testing.T) {
	appErr := ConflictError("already decided", nil)
	wrapped := WrapError(appErr, "apply decision")

	got := GetAppError(wrapped)
	require.NotNil(t, got)
	assert.Equal(t, http.StatusConflict, got.Code)
	assert.Equal(t, "already decided", got.Message)

	assert.Nil(t, GetAppError(errors.New("plain")))
	assert.Nil(t, GetAppError(nil))
}

func TestAppErrorPredicates(t *testing.T) {
	conflict := ConflictError("decided", nil)
	notFound := NotFoundError("missing", nil)

	assert.True(t, IsConflictError(conflict))
	assert.False(t, IsConflictError(notFound))
	assert.True(t, IsNotFoundError(notFound))
	assert.False(t, IsNotFoundError(conflict))

	assert.True(t, IsConflictError(WrapError(conflict, "outer")))
	assert.False(t, IsConflictError(errors.New("plain")))
}

func TestWrapError(t *testing.T) {
	assert.Nil(t, WrapError(nil, "ignored"))

	cause := errors.New("record not found")
	wrapped := WrapError(cause, "fetch wallet")
	require.Error(t, wrapped)
	assert.ErrorIs(t, wrapped, cause)
	assert.Equal(t, "fetch wallet: record not found", wrapped.Error())
}
