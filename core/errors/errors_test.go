package errors_test

import (
	stderrors "errors"
	"testing"

	"planit-api/core/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppErrorMessage(t *testing.T) {
	wrapped := stderrors.New("connection refused")
	appErr := errors.NewAppError(errors.ErrInternalServer, "failed to fetch schedule", wrapped)

	assert.Equal(t, "INTERNAL_SERVER_ERROR: failed to fetch schedule: connection refused", appErr.Error())
	assert.Equal(t, wrapped, stderrors.Unwrap(appErr))
}

func TestAppErrorWithoutCause(t *testing.T) {
	appErr := errors.NewAppError(errors.ErrNotFound, "team not found", nil)

	assert.Equal(t, "NOT_FOUND: team not found", appErr.Error())
	assert.Nil(t, stderrors.Unwrap(appErr))
}

func TestNewValidationError(t *testing.T) {
	appErr := errors.NewValidationError("durationMinutes", "must be a positive multiple of 30")

	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrInvalidInput, appErr.Code)
	assert.Equal(t, "durationMinutes: must be a positive multiple of 30", appErr.Message)
}
