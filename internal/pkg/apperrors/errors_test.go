package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidationError(t *testing.T) {
	err := NewValidationError("course", "This course is already bookmarked.")

	assert.True(t, errors.Is(err, ErrValidationFailed))
	assert.Equal(t, "This course is already bookmarked.", err.Error())

	ce, ok := AsCustomError(fmt.Errorf("wrapped: %w", err))
	require.True(t, ok)
	assert.Equal(t, "course", ce.Field)
}

func TestNewResourceNotFoundError(t *testing.T) {
	err := NewResourceNotFoundError("bookmark 7 not found")
	assert.True(t, errors.Is(err, ErrResourceNotFound))
	assert.Equal(t, "bookmark 7 not found", err.Error())
}

func TestCustomError_FallbackMessage(t *testing.T) {
	assert.Equal(t, "resource not found", NewCustomError(ErrResourceNotFound, "").Error())
	assert.Equal(t, "unknown error", (&CustomError{}).Error())
}

func TestCatalogErrors_WrapGenericKinds(t *testing.T) {
	assert.ErrorIs(t, ErrCourseNotFound, ErrResourceNotFound)
	assert.ErrorIs(t, ErrBookmarkNotFound, ErrResourceNotFound)
	assert.ErrorIs(t, ErrUsernameAlreadyTaken, ErrResourceAlreadyExists)
	assert.NotErrorIs(t, ErrCourseNotFound, ErrBookmarkNotFound)
}

func TestAsCustomError_Plain(t *testing.T) {
	_, ok := AsCustomError(errors.New("plain"))
	assert.False(t, ok)
}
