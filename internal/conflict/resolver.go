// Package conflict turns store failures into typed application errors that
// name the offending entity and fields without leaking SQL text.
package conflict

import (
	"errors"
	"regexp"
	"strings"

	apperrors "planner-backend/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Postgres SQLSTATE codes
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"

	// class 22 data exceptions the validator should have caught
	codeStringTooLong      = "22001"
	codeNumericOutOfRange  = "22003"
	codeInvalidByteSeq     = "22021"
	codeUntranslatableChar = "22P05"
)

const refreshHint = "refresh to sync with latest data"

// keyDetail matches `Key (task_id, resource_id)=(t1, r1) already exists.`
var keyDetail = regexp.MustCompile(`Key \((.+?)\)=\((.*?)\)`)

type constraintInfo struct {
	entity string
	hint   string
}

// constraints maps known constraint names to the entity they protect.
// Foreign keys use GORM's fk_<parent>_<relation> naming.
var constraints = map[string]constraintInfo{
	"idx_task_resource_assignment":   {"task resource assignment", "a resource can be assigned to a task only once; " + refreshHint},
	"idx_phase_resource_assignment":  {"phase resource assignment", "a resource can be assigned to a phase only once; " + refreshHint},
	"idx_projects_owner_lower_name":  {"project", "choose a project name not used by another of your projects"},
	"idx_project_member":             {"project member", "the user is already a member of this project"},
	"projects_pkey":                  {"project", refreshHint},
	"resources_pkey":                 {"resource", refreshHint},
	"phases_pkey":                    {"phase", refreshHint},
	"tasks_pkey":                     {"task", refreshHint},
	"milestones_pkey":                {"milestone", refreshHint},
	"holidays_pkey":                  {"holiday", refreshHint},
	"fk_projects_resources":          {"resource", "the project no longer exists; " + refreshHint},
	"fk_projects_phases":             {"phase", "the project no longer exists; " + refreshHint},
	"fk_projects_milestones":         {"milestone", "the project no longer exists; " + refreshHint},
	"fk_projects_holidays":           {"holiday", "the project no longer exists; " + refreshHint},
	"fk_phases_tasks":                {"task", "the phase was deleted; " + refreshHint},
	"fk_resources_manager":           {"resource", "the manager resource does not exist; " + refreshHint},
	"fk_tasks_resource_assignments":  {"task resource assignment", "the task does not exist; " + refreshHint},
	"fk_phases_resource_assignments": {"phase resource assignment", "the phase does not exist; " + refreshHint},
	"fk_resources_task_assignments":  {"task resource assignment", "the assigned resource does not exist; " + refreshHint},
	"fk_resources_phase_assignments": {"phase resource assignment", "the assigned resource does not exist; " + refreshHint},
}

// tables maps a table name to its entity when the constraint is unknown
var tables = map[string]string{
	"projects":                   "project",
	"project_members":            "project member",
	"resources":                  "resource",
	"phases":                     "phase",
	"tasks":                      "task",
	"task_resource_assignments":  "task resource assignment",
	"phase_resource_assignments": "phase resource assignment",
	"milestones":                 "milestone",
	"holidays":                   "holiday",
}

// Resolve classifies err. Typed application errors pass through unchanged,
// recognised store errors become *ConflictError, anything else is wrapped as
// an opaque *InternalError. A nil error resolves to nil.
func Resolve(err error) error {
	if err == nil {
		return nil
	}
	if passThrough(err) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return fromPgError(apperrors.KindUniqueViolation, pgErr)
		case codeForeignKeyViolation:
			return fromPgError(apperrors.KindForeignKey, pgErr)
		case codeStringTooLong, codeNumericOutOfRange, codeInvalidByteSeq, codeUntranslatableChar:
			return dataException(pgErr)
		}
		return apperrors.NewInternalError(err)
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return &apperrors.ConflictError{
			Kind:    apperrors.KindNotFoundConflict,
			Entity:  entityFromMessage(err.Error()),
			Message: "a record targeted by this change-set no longer exists",
			Hint:    refreshHint,
		}
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return &apperrors.ConflictError{Kind: apperrors.KindUniqueViolation, Hint: refreshHint,
			Message: "a record with the same identity already exists"}
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return &apperrors.ConflictError{Kind: apperrors.KindForeignKey, Hint: refreshHint,
			Message: "a referenced record does not exist"}
	}

	return apperrors.NewInternalError(err)
}

func passThrough(err error) bool {
	return apperrors.IsValidation(err) ||
		apperrors.IsAuthentication(err) ||
		apperrors.IsAuthorization(err) ||
		apperrors.IsNotFound(err) ||
		apperrors.IsConflict(err) ||
		apperrors.IsHierarchyCycle(err) ||
		apperrors.IsInternal(err)
}

func fromPgError(kind string, pgErr *pgconn.PgError) *apperrors.ConflictError {
	out := &apperrors.ConflictError{Kind: kind, Hint: refreshHint}

	if info, ok := constraints[pgErr.ConstraintName]; ok {
		out.Entity = info.entity
		out.Hint = info.hint
	} else if entity, ok := tables[pgErr.TableName]; ok {
		out.Entity = entity
	} else {
		out.Entity = "record"
	}

	if m := keyDetail.FindStringSubmatch(pgErr.Detail); m != nil {
		columns := splitList(m[1])
		values := splitList(m[2])
		out.Values = make(map[string]string, len(columns))
		for i, col := range columns {
			field := camelCase(stripExpression(col))
			out.Fields = append(out.Fields, field)
			if i < len(values) {
				out.Values[field] = values[i]
			}
		}
	}

	switch kind {
	case apperrors.KindUniqueViolation:
		out.Message = out.Entity + " already exists"
	case apperrors.KindForeignKey:
		if strings.Contains(pgErr.Detail, "is still referenced") {
			out.Message = out.Entity + " is still referenced by other records"
		} else {
			out.Message = out.Entity + " references a record that does not exist"
		}
	}
	if len(out.Fields) > 0 {
		out.Message += " (" + strings.Join(out.Fields, ", ") + ")"
	}
	return out
}

// dataException reports a value the store cannot hold as a validation error
// on the column, or on the entity when Postgres names no column.
func dataException(pgErr *pgconn.PgError) error {
	field := camelCase(pgErr.ColumnName)
	if field == "" {
		field = tables[pgErr.TableName]
	}
	if field == "" {
		field = "changeSet"
	}
	message := "contains a value the store cannot hold"
	switch pgErr.Code {
	case codeStringTooLong:
		message = "is too long"
	case codeNumericOutOfRange:
		message = "is out of range"
	case codeInvalidByteSeq, codeUntranslatableChar:
		message = "must not contain NUL characters"
	}
	return apperrors.NewValidationError(field, message)
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// stripExpression turns "lower((name)::text)" into "name"
func stripExpression(col string) string {
	if i := strings.LastIndexByte(col, '('); i >= 0 {
		col = col[i+1:]
	}
	if i := strings.IndexAny(col, ")::"); i >= 0 {
		col = col[:i]
	}
	return strings.TrimSpace(col)
}

func camelCase(snake string) string {
	parts := strings.Split(snake, "_")
	for i := 1; i < len(parts); i++ {
		if parts[i] == "" {
			continue
		}
		parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
	}
	return strings.Join(parts, "")
}

// entityFromMessage picks the entity out of errors wrapped as
// "failed to update <entity> <id>: record not found".
func entityFromMessage(msg string) string {
	for _, entity := range []string{"task resource assignment", "phase resource assignment", "resource", "phase", "milestone", "holiday", "project"} {
		if strings.Contains(msg, "update "+entity) || strings.Contains(msg, "load "+entity) {
			return entity
		}
	}
	return "record"
}
