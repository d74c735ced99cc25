package handlers

import (
	"errors"
	"net/http"

	apperrors "planner-backend/internal/errors"
	"planner-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error      string                     `json:"error" example:"unique_constraint_violation on taskResourceAssignment (taskId, resourceId)"`
	Kind       string                     `json:"kind" example:"unique_constraint_violation"`
	Entity     string                     `json:"entity,omitempty" example:"taskResourceAssignment"`
	Fields     []string                   `json:"fields,omitempty"`
	Values     map[string]string          `json:"values,omitempty"`
	Path       []string                   `json:"path,omitempty"`
	Hint       string                     `json:"hint,omitempty"`
	Violations []apperrors.FieldViolation `json:"violations,omitempty"`
}

// statusForKind maps a stable error kind to its HTTP status
func statusForKind(kind string) int {
	switch kind {
	case apperrors.KindValidation:
		return http.StatusBadRequest
	case apperrors.KindAuthentication:
		return http.StatusUnauthorized
	case apperrors.KindAuthorization:
		return http.StatusForbidden
	case apperrors.KindNotFound:
		return http.StatusNotFound
	case apperrors.KindUniqueViolation, apperrors.KindForeignKey, apperrors.KindNotFoundConflict, apperrors.KindStaleVersion:
		return http.StatusConflict
	case apperrors.KindHierarchyCycle:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as an ErrorResponse. Unclassified errors are logged
// and replaced by an opaque message.
func respondError(c *gin.Context, err error) {
	kind := apperrors.KindOf(err)
	body := ErrorResponse{Error: err.Error(), Kind: kind}

	var (
		validationErr *apperrors.ValidationError
		conflictErr   *apperrors.ConflictError
		cycleErr      *apperrors.HierarchyCycleError
		internalErr   *apperrors.InternalError
	)
	switch {
	case errors.As(err, &validationErr):
		body.Violations = validationErr.Violations
		if validationErr.Field != "" && len(body.Violations) == 0 {
			body.Fields = []string{validationErr.Field}
		}
	case errors.As(err, &conflictErr):
		body.Entity = conflictErr.Entity
		body.Fields = conflictErr.Fields
		body.Values = conflictErr.Values
		body.Hint = conflictErr.Hint
	case errors.As(err, &cycleErr):
		body.Entity = "resource"
		body.Fields = []string{"managerResourceId"}
		body.Path = cycleErr.Path
	case errors.As(err, &internalErr):
		body.Error = internalErr.Error()
	case kind == apperrors.KindInternal:
		logger.WithContext(c.Request.Context()).WithError(err).Error("unclassified error reached the handler")
		body.Error = "internal error"
	}

	_ = c.Error(err)
	c.JSON(statusForKind(kind), body)
}

// badRequest reports a malformed request body or parameter
func badRequest(c *gin.Context, field, message string) {
	respondError(c, apperrors.NewValidationError(field, message))
}
