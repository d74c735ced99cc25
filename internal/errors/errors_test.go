package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "phase"}
		assert.Equal(t, "phase not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "project"}
		err2 := &NotFoundError{Entity: "project"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		assert.False(t, errors.Is(ErrProjectNotFound, NewNotFoundError("resource")))
	})

	t.Run("errors.Is through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("failed to load project: %w", ErrProjectNotFound)
		assert.True(t, errors.Is(wrapped, ErrProjectNotFound))
		assert.True(t, IsNotFound(wrapped))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "name", Message: "is required"}
		assert.Equal(t, "validation error: name - is required", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("Error message lists every violation", func(t *testing.T) {
		err := NewValidationErrors([]FieldViolation{
			{Field: "phases.created[0].name", Rule: "required"},
			{Field: "holidays.deleted[1]", Rule: "required"},
		})
		assert.Equal(t, "validation error: 2 invalid field(s): phases.created[0].name, holidays.deleted[1]", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(NewValidationError("name", "invalid")))
		assert.False(t, IsValidation(ErrProjectNotFound))
	})
}

func TestConflictError(t *testing.T) {
	err := &ConflictError{
		Kind:   KindUniqueViolation,
		Entity: "task resource assignment",
		Fields: []string{"taskId", "resourceId"},
	}
	assert.Equal(t, "unique_constraint_violation on task resource assignment (taskId, resourceId)", err.Error())
	assert.True(t, IsConflict(fmt.Errorf("apply: %w", err)))
	assert.Equal(t, KindUniqueViolation, KindOf(err))

	withMessage := &ConflictError{Kind: KindForeignKey, Message: "referenced resource does not exist"}
	assert.Equal(t, "referenced resource does not exist", withMessage.Error())
}

func TestHierarchyCycleError(t *testing.T) {
	t.Run("cycle", func(t *testing.T) {
		err := &HierarchyCycleError{ResourceID: "a", ManagerID: "c", Path: []string{"c", "b", "a"}}
		assert.Equal(t, "setting manager of resource a to c creates a reporting cycle: c -> b -> a", err.Error())
	})

	t.Run("corrupt chain", func(t *testing.T) {
		err := &HierarchyCycleError{ResourceID: "x", ManagerID: "m", Path: []string{"m", "n", "m"}, Corrupt: true}
		assert.Contains(t, err.Error(), "already cyclic")
	})
}

func TestInternalErrorHidesCause(t *testing.T) {
	cause := errors.New(`pq: relation "tasks" does not exist`)
	err := NewInternalError(cause)

	assert.Equal(t, "internal error", err.Error())
	assert.True(t, errors.Is(err, cause))
	assert.True(t, IsInternal(err))
}

func TestKindOf(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		kind string
	}{
		{"nil", nil, ""},
		{"validation", NewValidationError("name", "required"), KindValidation},
		{"authentication", ErrMissingUserContext, KindAuthentication},
		{"authorization", ErrProjectWriteDenied, KindAuthorization},
		{"not found", ErrProjectNotFound, KindNotFound},
		{"foreign key", &ConflictError{Kind: KindForeignKey}, KindForeignKey},
		{"not found violation", &ConflictError{Kind: KindNotFoundConflict}, KindNotFoundConflict},
		{"cycle", &HierarchyCycleError{ResourceID: "r2", ManagerID: "r2"}, KindHierarchyCycle},
		{"configuration", NewConfigurationError("missing"), KindConfiguration},
		{"unknown", errors.New("boom"), KindInternal},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.kind, KindOf(tc.err))
		})
	}
}
