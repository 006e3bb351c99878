package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "project"}
		assert.Equal(t, "project not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "project"}
		err2 := &NotFoundError{Entity: "project"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "project"}
		err2 := &NotFoundError{Entity: "video"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("failed to get project: %w", ErrProjectNotFound)
		assert.True(t, errors.Is(wrapped, ErrProjectNotFound))
		assert.False(t, errors.Is(wrapped, ErrVideoNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrVideoNotFound))
		assert.False(t, IsNotFound(ErrBackwardTransition))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "user", Context: "with this email"}
		assert.Equal(t, "user already exists with this email", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "user"}
		assert.Equal(t, "user already exists", err.Error())
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrUserExists))
		assert.False(t, IsAlreadyExists(ErrUserNotFound))
	})
}

func TestConflictError(t *testing.T) {
	t.Run("Error message with actual version", func(t *testing.T) {
		err := NewConflictError("project", 3, 5)
		assert.Equal(t, "project was modified concurrently (expected version 3, found 5)", err.Error())
	})

	t.Run("Error message without actual version", func(t *testing.T) {
		err := NewConflictError("project", 3, 0)
		assert.Equal(t, "project was modified concurrently (expected version 3)", err.Error())
	})

	t.Run("errors.Is matches on entity only", func(t *testing.T) {
		err := fmt.Errorf("update: %w", NewConflictError("project", 1, 2))
		assert.True(t, errors.Is(err, ErrProjectConflict))
		assert.False(t, errors.Is(err, &ConflictError{Entity: "user"}))
		assert.True(t, IsConflict(err))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "target_languages", Message: "must not contain the source language"}
		assert.Equal(t, "validation error: target_languages - must not contain the source language", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("email", "invalid")
		assert.True(t, IsValidation(err))
		assert.False(t, IsValidation(ErrProjectNotFound))
	})
}

func TestAuthErrors(t *testing.T) {
	assert.True(t, IsAuthentication(ErrInvalidCredentials))
	assert.True(t, IsAuthentication(fmt.Errorf("login: %w", ErrTokenExpired)))
	assert.False(t, IsAuthentication(ErrNotProjectOwner))
	assert.True(t, IsAuthorization(ErrNotProjectOwner))
	assert.True(t, IsConfiguration(ErrMongoURIMissing))
}

func TestIsTransitionRejected(t *testing.T) {
	assert.True(t, IsTransitionRejected(ErrBackwardTransition))
	assert.True(t, IsTransitionRejected(fmt.Errorf("phase audio_review: %w", ErrPhaseNotStartable)))
	assert.False(t, IsTransitionRejected(ErrInvalidPhase))
}
