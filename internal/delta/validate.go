package delta

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"planner-backend/internal/database/models"
	apperrors "planner-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

// NewValidator returns a validator with the tags used by change-sets
// registered. Field errors are reported with their JSON names.
func NewValidator() *validator.Validate {
	v := validator.New()
	if err := Register(v); err != nil {
		// the tags below are static; a failure here is a programming error
		panic(err)
	}
	return v
}

// Register adds the change-set tags and struct rules to an existing validator.
func Register(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	if err := v.RegisterValidation("plandate", validatePlanDate); err != nil {
		return fmt.Errorf("register plandate: %w", err)
	}
	if err := v.RegisterValidation("nonul", func(fl validator.FieldLevel) bool {
		return !strings.ContainsRune(fl.Field().String(), 0)
	}); err != nil {
		return fmt.Errorf("register nonul: %w", err)
	}
	if err := v.RegisterValidation("resourcecategory", func(fl validator.FieldLevel) bool {
		return models.ResourceCategory(fl.Field().String()).IsValid()
	}); err != nil {
		return fmt.Errorf("register resourcecategory: %w", err)
	}
	if err := v.RegisterValidation("designation", func(fl validator.FieldLevel) bool {
		return models.Designation(fl.Field().String()).IsValid()
	}); err != nil {
		return fmt.Errorf("register designation: %w", err)
	}

	v.RegisterStructValidation(phaseDates, PhaseInput{})
	v.RegisterStructValidation(taskDates, TaskInput{})
	return nil
}

func validatePlanDate(fl validator.FieldLevel) bool {
	_, err := time.Parse(DateLayout, fl.Field().String())
	return err == nil
}

func phaseDates(sl validator.StructLevel) {
	p := sl.Current().Interface().(PhaseInput)
	if endBeforeStart(p.StartDate, p.EndDate) {
		sl.ReportError(p.EndDate, "endDate", "EndDate", "gtefield", "startDate")
	}
}

func taskDates(sl validator.StructLevel) {
	t := sl.Current().Interface().(TaskInput)
	if endBeforeStart(t.StartDate, t.EndDate) {
		sl.ReportError(t.EndDate, "endDate", "EndDate", "gtefield", "startDate")
	}
}

// endBeforeStart is false when either date is malformed; plandate reports those.
func endBeforeStart(start, end string) bool {
	s, err := time.Parse(DateLayout, start)
	if err != nil {
		return false
	}
	e, err := time.Parse(DateLayout, end)
	if err != nil {
		return false
	}
	return e.Before(s)
}

// Validate checks a change-set and returns a ValidationError listing every
// violated field, or nil.
func Validate(v *validator.Validate, cs *ChangeSet) error {
	if cs == nil {
		return apperrors.NewValidationError("changeSet", "is required")
	}

	var violations []apperrors.FieldViolation
	if err := v.Struct(cs); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("failed to validate change-set: %w", err)
		}
		for _, fe := range fieldErrs {
			violations = append(violations, toViolation(fe))
		}
	}
	violations = append(violations, duplicateIDs(cs)...)
	violations = append(violations, settingsWithNul(cs.Project)...)

	if len(violations) > 0 {
		return apperrors.NewValidationErrors(violations)
	}
	return nil
}

// ValidateRequest checks any request struct with the same tags and error
// shape as change-sets.
func ValidateRequest(v *validator.Validate, req interface{}) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("failed to validate request: %w", err)
	}
	violations := make([]apperrors.FieldViolation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, toViolation(fe))
	}
	return apperrors.NewValidationErrors(violations)
}

// toViolation turns "ChangeSet.phases.created[0].tasks[1].endDate" into
// "phases.created[0].tasks[1].endDate".
func toViolation(fe validator.FieldError) apperrors.FieldViolation {
	field := fe.Namespace()
	if i := strings.IndexByte(field, '.'); i >= 0 {
		field = field[i+1:]
	}
	return apperrors.FieldViolation{
		Field:   field,
		Rule:    fe.Tag(),
		Message: message(fe),
	}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "plandate":
		return "must be a date in YYYY-MM-DD format"
	case "resourcecategory":
		return "must be one of " + joinValues(models.ResourceCategories())
	case "designation":
		return "must be one of " + joinValues(models.Designations())
	case "gtefield":
		return "must not be before " + fe.Param()
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "min":
		return "must be at least " + fe.Param()
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "lte":
		return "must be less than or equal to " + fe.Param()
	case "hexcolor":
		return "must be a hex colour"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "len":
		return "must be exactly " + fe.Param() + " characters"
	case "nonul":
		return "must not contain NUL characters"
	case "duplicate":
		return "identity appears more than once in the change-set"
	}
	return "failed " + fe.Tag() + " validation"
}

// settingsWithNul rejects settings documents carrying an escaped NUL, which
// jsonb cannot store.
func settingsWithNul(p *ProjectPatch) []apperrors.FieldViolation {
	if p == nil {
		return nil
	}
	var out []apperrors.FieldViolation
	for _, s := range []struct {
		field string
		raw   json.RawMessage
	}{
		{"project.viewSettings", p.ViewSettings},
		{"project.budgetSettings", p.BudgetSettings},
		{"project.orgChartSettings", p.OrgChartSettings},
	} {
		if bytes.Contains(s.raw, []byte(`\u0000`)) || bytes.IndexByte(s.raw, 0) >= 0 {
			out = append(out, apperrors.FieldViolation{Field: s.field, Rule: "nonul", Message: "must not contain NUL characters"})
		}
	}
	return out
}

func joinValues[T ~string](values []T) string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return strings.Join(out, ", ")
}

// duplicateIDs reports identities that appear twice within the created and
// updated lists of one collection. A batch cannot create and update the same
// record, and the store would reject a doubled insert only after the
// transaction had started.
func duplicateIDs(cs *ChangeSet) []apperrors.FieldViolation {
	var out []apperrors.FieldViolation
	out = append(out, dupes("resources", ids(cs.Resources.Created, func(r ResourceInput) string { return r.ID }),
		ids(cs.Resources.Updated, func(r ResourceInput) string { return r.ID }))...)
	out = append(out, dupes("phases", ids(cs.Phases.Created, func(p PhaseInput) string { return p.ID }),
		ids(cs.Phases.Updated, func(p PhaseInput) string { return p.ID }))...)
	out = append(out, dupes("milestones", ids(cs.Milestones.Created, func(m MilestoneInput) string { return m.ID }),
		ids(cs.Milestones.Updated, func(m MilestoneInput) string { return m.ID }))...)
	out = append(out, dupes("holidays", ids(cs.Holidays.Created, func(h HolidayInput) string { return h.ID }),
		ids(cs.Holidays.Updated, func(h HolidayInput) string { return h.ID }))...)
	return out
}

func ids[T any](items []T, id func(T) string) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = id(item)
	}
	return out
}

func dupes(collection string, created, updated []string) []apperrors.FieldViolation {
	var out []apperrors.FieldViolation
	seen := make(map[string]struct{}, len(created)+len(updated))
	check := func(list string, values []string) {
		for i, id := range values {
			if id == "" {
				continue
			}
			if _, ok := seen[id]; ok {
				out = append(out, apperrors.FieldViolation{
					Field:   fmt.Sprintf("%s.%s[%d].id", collection, list, i),
					Rule:    "duplicate",
					Message: "identity appears more than once in the change-set",
				})
				continue
			}
			seen[id] = struct{}{}
		}
	}
	check("created", created)
	check("updated", updated)
	return out
}
