package delta

import (
	"time"

	"planner-backend/internal/database/models"

	"gorm.io/datatypes"
)

// ParseDate parses a validated plan date. Malformed input yields the zero time.
func ParseDate(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Model converts the input into a resource row of the project
func (r ResourceInput) Model(projectID string) models.Resource {
	billable := true
	if r.IsBillable != nil {
		billable = *r.IsBillable
	}
	var manager *string
	if r.ManagerResourceID != nil && *r.ManagerResourceID != "" {
		m := *r.ManagerResourceID
		manager = &m
	}
	return models.Resource{
		BaseModel:         models.BaseModel{ID: r.ID},
		ProjectID:         projectID,
		Name:              r.Name,
		Category:          models.ResourceCategory(r.Category),
		Designation:       models.Designation(r.Designation),
		ManagerResourceID: manager,
		Email:             r.Email,
		DailyRate:         r.DailyRate,
		Currency:          r.Currency,
		IsBillable:        billable,
	}
}

// Model converts the input into a phase row without its children
func (p PhaseInput) Model(projectID string) models.Phase {
	return models.Phase{
		BaseModel:    models.BaseModel{ID: p.ID},
		ProjectID:    projectID,
		Name:         p.Name,
		Color:        p.Color,
		StartDate:    ParseDate(p.StartDate),
		EndDate:      ParseDate(p.EndDate),
		SortOrder:    p.SortOrder,
		Dependencies: datatypes.JSONSlice[string](nonNil(p.Dependencies)),
	}
}

// Children converts the nested tasks and assignments of a phase into rows.
func (p PhaseInput) Children() PhaseChildren {
	var out PhaseChildren
	for _, t := range p.Tasks {
		out.Tasks = append(out.Tasks, models.Task{
			BaseModel:    models.BaseModel{ID: t.ID},
			PhaseID:      p.ID,
			Name:         t.Name,
			StartDate:    ParseDate(t.StartDate),
			EndDate:      ParseDate(t.EndDate),
			Progress:     t.Progress,
			SortOrder:    t.SortOrder,
			Dependencies: datatypes.JSONSlice[string](nonNil(t.Dependencies)),
		})
		for _, a := range t.ResourceAssignments {
			out.TaskAssignments = append(out.TaskAssignments, models.TaskResourceAssignment{
				TaskID:               t.ID,
				ResourceID:           a.ResourceID,
				AllocationPercentage: a.AllocationPercentage,
				Notes:                a.Notes,
			})
		}
	}
	for _, a := range p.ResourceAssignments {
		out.PhaseAssignments = append(out.PhaseAssignments, models.PhaseResourceAssignment{
			PhaseID:              p.ID,
			ResourceID:           a.ResourceID,
			AllocationPercentage: a.AllocationPercentage,
			Notes:                a.Notes,
		})
	}
	return out
}

// PhaseChildren are the rows owned by one or more phases
type PhaseChildren struct {
	Tasks            []models.Task
	TaskAssignments  []models.TaskResourceAssignment
	PhaseAssignments []models.PhaseResourceAssignment
}

// Append adds other's rows to c
func (c *PhaseChildren) Append(other PhaseChildren) {
	c.Tasks = append(c.Tasks, other.Tasks...)
	c.TaskAssignments = append(c.TaskAssignments, other.TaskAssignments...)
	c.PhaseAssignments = append(c.PhaseAssignments, other.PhaseAssignments...)
}

// Len returns the number of child rows
func (c PhaseChildren) Len() int {
	return len(c.Tasks) + len(c.TaskAssignments) + len(c.PhaseAssignments)
}

// Model converts the input into a milestone row of the project
func (m MilestoneInput) Model(projectID string) models.Milestone {
	return models.Milestone{
		BaseModel:   models.BaseModel{ID: m.ID},
		ProjectID:   projectID,
		Name:        m.Name,
		Date:        ParseDate(m.Date),
		Description: m.Description,
		Color:       m.Color,
	}
}

// Model converts the input into a holiday row of the project
func (h HolidayInput) Model(projectID string) models.Holiday {
	return models.Holiday{
		BaseModel:   models.BaseModel{ID: h.ID},
		ProjectID:   projectID,
		Name:        h.Name,
		Date:        ParseDate(h.Date),
		Description: h.Description,
	}
}

// Fields returns the project columns the patch sets, keyed by column name.
func (p *ProjectPatch) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if p == nil {
		return fields
	}
	if p.Name != nil {
		fields["name"] = *p.Name
	}
	if p.StartDate != nil {
		if *p.StartDate == "" {
			fields["start_date"] = nil
		} else {
			fields["start_date"] = ParseDate(*p.StartDate)
		}
	}
	if len(p.ViewSettings) > 0 {
		fields["view_settings"] = datatypes.JSON(p.ViewSettings)
	}
	if len(p.BudgetSettings) > 0 {
		fields["budget_settings"] = datatypes.JSON(p.BudgetSettings)
	}
	if len(p.OrgChartSettings) > 0 {
		fields["org_chart_settings"] = datatypes.JSON(p.OrgChartSettings)
	}
	return fields
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
