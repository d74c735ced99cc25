package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Stable machine-readable error kinds returned to API callers
const (
	KindValidation       = "validation_error"
	KindAuthentication   = "authentication_error"
	KindAuthorization    = "authorization_error"
	KindNotFound         = "not_found"
	KindUniqueViolation  = "unique_constraint_violation"
	KindForeignKey       = "foreign_key_violation"
	KindNotFoundConflict = "not_found_violation"
	KindStaleVersion     = "stale_version"
	KindHierarchyCycle   = "hierarchy_cycle"
	KindConfiguration    = "configuration_error"
	KindInternal         = "internal_error"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// FieldViolation describes a single field that failed validation
type FieldViolation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ValidationError represents a validation error. Violations lists every
// offending field when more than one was checked.
type ValidationError struct {
	Field      string
	Message    string
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	if len(e.Violations) > 0 {
		fields := make([]string, 0, len(e.Violations))
		for _, v := range e.Violations {
			fields = append(fields, v.Field)
		}
		return fmt.Sprintf("validation error: %d invalid field(s): %s", len(e.Violations), strings.Join(fields, ", "))
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// ConflictError is a classified store-level constraint failure.
type ConflictError struct {
	Kind    string
	Entity  string
	Fields  []string
	Values  map[string]string
	Message string
	Hint    string
}

func (e *ConflictError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if len(e.Fields) > 0 {
		return fmt.Sprintf("%s on %s (%s)", e.Kind, e.Entity, strings.Join(e.Fields, ", "))
	}
	return fmt.Sprintf("%s on %s", e.Kind, e.Entity)
}

// HierarchyCycleError is returned when a reporting-line change would make the
// resource hierarchy cyclic, or when the stored chain is already broken.
type HierarchyCycleError struct {
	ResourceID string
	ManagerID  string
	Path       []string
	Corrupt    bool
}

func (e *HierarchyCycleError) Error() string {
	if e.Corrupt {
		return fmt.Sprintf("manager chain of resource %s is already cyclic: %s", e.ManagerID, strings.Join(e.Path, " -> "))
	}
	return fmt.Sprintf("setting manager of resource %s to %s creates a reporting cycle: %s",
		e.ResourceID, e.ManagerID, strings.Join(e.Path, " -> "))
}

// InternalError hides unclassified failures from callers. Err is kept for logging.
type InternalError struct {
	Message string
	Err     error
}

func (e *InternalError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "internal error"
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

// Entity Not Found Errors
var (
	ErrProjectNotFound = &NotFoundError{Entity: "project"}
)

// Authentication / authorization errors
var (
	ErrMissingUserContext = &AuthenticationError{Message: "user id not found in context"}
	ErrProjectWriteDenied = &AuthorizationError{Message: "user is not allowed to modify this project"}
	ErrProjectReadDenied  = &AuthorizationError{Message: "user is not allowed to view this project"}
	ErrOwnerOnly          = &AuthorizationError{Message: "only the project owner can perform this action"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsHierarchyCycle checks if an error is a HierarchyCycleError
func IsHierarchyCycle(err error) bool {
	var cycleErr *HierarchyCycleError
	return errors.As(err, &cycleErr)
}

// IsInternal checks if an error is an InternalError
func IsInternal(err error) bool {
	var internalErr *InternalError
	return errors.As(err, &internalErr)
}

// KindOf returns the stable kind for any error produced by this backend.
// Unknown errors are reported as internal.
func KindOf(err error) string {
	var conflictErr *ConflictError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &conflictErr):
		return conflictErr.Kind
	case IsValidation(err):
		return KindValidation
	case IsAuthentication(err):
		return KindAuthentication
	case IsAuthorization(err):
		return KindAuthorization
	case IsNotFound(err):
		return KindNotFound
	case IsHierarchyCycle(err):
		return KindHierarchyCycle
	case IsConfiguration(err):
		return KindConfiguration
	}
	return KindInternal
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewValidationErrors creates a ValidationError carrying every violation
func NewValidationErrors(violations []FieldViolation) error {
	return &ValidationError{Violations: violations}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}

// NewInternalError wraps err so that its text is never shown to callers
func NewInternalError(err error) error {
	return &InternalError{Message: "internal error", Err: err}
}
