package errors

import (
	"net/http"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsStillMatchesSentinel(t *testing.T) {
	detailed := ErrNotTaskAuthor.WithDetails("caller is not the author of task 42")

	assert.ErrorIs(t, detailed, ErrNotTaskAuthor)
	assert.NotErrorIs(t, detailed, ErrNotTaskExecutor)
	assert.Equal(t, "caller is not the author of task 42", detailed.Details())
	assert.Equal(t, http.StatusForbidden, detailed.HTTPCode())
}

func TestBaseError_WrapMessageKeepsAppError(t *testing.T) {
	wrapped := ErrInvalidCredentials.WrapMessage("login failed")

	var appErr AppError
	assert.True(t, pkgerrors.As(wrapped, &appErr))
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
	assert.Equal(t, "INVALID_CREDENTIALS", appErr.ErrorCode())
	assert.Equal(t, "wrong email or password", appErr.Message())
}

func TestDatabaseExecuteError(t *testing.T) {
	err := NewDatabaseExecuteError(pkgerrors.New("connection reset"), "failed to create task")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Contains(t, err.Error(), "connection reset")
	assert.Equal(t, "failed to create task", err.Details())
}
