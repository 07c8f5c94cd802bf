package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestBaseError_IsMatchesByCode(t *testing.T) {
	err := ErrDuplicateKey.WithDetails("visit_order 3 appears more than once")

	assert.True(t, stderrors.Is(err, ErrDuplicateKey))
	assert.False(t, stderrors.Is(err, ErrChildNotFound))
	assert.Equal(t, "visit_order 3 appears more than once", err.Details())
	assert.Equal(t, http.StatusConflict, err.HTTPCode())
}

func TestBaseError_WrapKeepsAppError(t *testing.T) {
	wrapped := errors.Wrap(ErrChildNotFound.WithDetails("id 42"), "reconcile order items")

	var appErr AppError
	assert.True(t, stderrors.As(wrapped, &appErr))
	assert.Equal(t, "CHILD_NOT_FOUND", appErr.ErrorCode())
	assert.True(t, stderrors.Is(wrapped, ErrChildNotFound))
}

func TestBaseError_ErrorIncludesDetails(t *testing.T) {
	assert.Equal(t, "Invalid field value", ErrInvalidPayload.Error())
	assert.Equal(t, "Invalid field value: quantity must be positive", ErrInvalidPayload.WithDetails("quantity must be positive").Error())
}
