// Package delta defines the change-set a client submits to synchronize a
// project plan, validates it, and fixes the order in which its parts are
// written.
package delta

import (
	"encoding/json"
)

// DateLayout is the wire format of every plan date
const DateLayout = "2006-01-02"

// Collection holds the created, updated and deleted records of one entity kind.
type Collection[T any] struct {
	Created []T      `json:"created,omitempty" validate:"omitempty,dive"`
	Updated []T      `json:"updated,omitempty" validate:"omitempty,dive"`
	Deleted []string `json:"deleted,omitempty" validate:"omitempty,dive,required,max=64,nonul"`
}

// IsEmpty reports whether the collection carries no changes
func (c Collection[T]) IsEmpty() bool {
	return len(c.Created) == 0 && len(c.Updated) == 0 && len(c.Deleted) == 0
}

// Len returns the number of records touched by the collection
func (c Collection[T]) Len() int {
	return len(c.Created) + len(c.Updated) + len(c.Deleted)
}

// ChangeSet is one incremental batch for a single project.
type ChangeSet struct {
	// BaseVersion is the project version the client last saw. It is compared
	// with the stored version but only rejects when enforcement is enabled.
	BaseVersion *int64 `json:"baseVersion,omitempty" validate:"omitempty,min=1"`
	// SkipDuplicates turns creates of already existing identities into no-ops.
	SkipDuplicates bool `json:"skipDuplicates,omitempty"`

	Project    *ProjectPatch              `json:"project,omitempty"`
	Resources  Collection[ResourceInput]  `json:"resources"`
	Phases     Collection[PhaseInput]     `json:"phases"`
	Milestones Collection[MilestoneInput] `json:"milestones"`
	Holidays   Collection[HolidayInput]   `json:"holidays"`
}

// IsEmpty reports whether the change-set contains no changes at all
func (cs *ChangeSet) IsEmpty() bool {
	return !cs.Project.HasChanges() &&
		cs.Resources.IsEmpty() &&
		cs.Phases.IsEmpty() &&
		cs.Milestones.IsEmpty() &&
		cs.Holidays.IsEmpty()
}

// ProjectPatch carries the project scalar fields to change. Nil fields are left alone.
type ProjectPatch struct {
	Name             *string         `json:"name,omitempty" validate:"omitempty,min=1,max=200,nonul"`
	StartDate        *string         `json:"startDate,omitempty" validate:"omitempty,plandate"`
	ViewSettings     json.RawMessage `json:"viewSettings,omitempty" swaggertype:"object"`
	BudgetSettings   json.RawMessage `json:"budgetSettings,omitempty" swaggertype:"object"`
	OrgChartSettings json.RawMessage `json:"orgChartSettings,omitempty" swaggertype:"object"`
}

// HasChanges reports whether the patch sets at least one field
func (p *ProjectPatch) HasChanges() bool {
	if p == nil {
		return false
	}
	return p.Name != nil || p.StartDate != nil ||
		len(p.ViewSettings) > 0 || len(p.BudgetSettings) > 0 || len(p.OrgChartSettings) > 0
}

// ResourceInput is a resource as sent by the client
type ResourceInput struct {
	ID                string  `json:"id" validate:"required,max=64,nonul"`
	Name              string  `json:"name" validate:"required,max=200,nonul"`
	Category          string  `json:"category" validate:"required,resourcecategory"`
	Designation       string  `json:"designation" validate:"required,designation"`
	ManagerResourceID *string `json:"managerResourceId,omitempty" validate:"omitempty,max=64,nonul"`
	Email             string  `json:"email,omitempty" validate:"omitempty,email,max=255,nonul"`
	DailyRate         float64 `json:"dailyRate,omitempty" validate:"gte=0"`
	Currency          string  `json:"currency,omitempty" validate:"omitempty,len=3,alpha"`
	IsBillable        *bool   `json:"isBillable,omitempty"`
}

// AssignmentInput allocates a resource to a task or a phase
type AssignmentInput struct {
	ResourceID           string  `json:"resourceId" validate:"required,max=64,nonul"`
	AllocationPercentage float64 `json:"allocationPercentage" validate:"gte=0"`
	Notes                string  `json:"notes,omitempty" validate:"max=2000,nonul"`
}

// TaskInput is a task nested in a phase payload
type TaskInput struct {
	ID                  string            `json:"id" validate:"required,max=64,nonul"`
	Name                string            `json:"name" validate:"required,max=200,nonul"`
	StartDate           string            `json:"startDate" validate:"required,plandate"`
	EndDate             string            `json:"endDate" validate:"required,plandate"`
	Progress            int               `json:"progress" validate:"gte=0,lte=100"`
	SortOrder           int               `json:"sortOrder"`
	Dependencies        []string          `json:"dependencies,omitempty" validate:"omitempty,dive,required,max=64,nonul"`
	ResourceAssignments []AssignmentInput `json:"resourceAssignments,omitempty" validate:"omitempty,dive"`
}

// PhaseInput is a phase with its complete task list. On update the task list
// replaces whatever the phase had before.
type PhaseInput struct {
	ID                  string            `json:"id" validate:"required,max=64,nonul"`
	Name                string            `json:"name" validate:"required,max=200,nonul"`
	Color               string            `json:"color,omitempty" validate:"omitempty,hexcolor"`
	StartDate           string            `json:"startDate" validate:"required,plandate"`
	EndDate             string            `json:"endDate" validate:"required,plandate"`
	SortOrder           int               `json:"sortOrder"`
	Dependencies        []string          `json:"dependencies,omitempty" validate:"omitempty,dive,required,max=64,nonul"`
	Tasks               []TaskInput       `json:"tasks,omitempty" validate:"omitempty,dive"`
	ResourceAssignments []AssignmentInput `json:"resourceAssignments,omitempty" validate:"omitempty,dive"`
}

// MilestoneInput is a milestone as sent by the client
type MilestoneInput struct {
	ID          string `json:"id" validate:"required,max=64,nonul"`
	Name        string `json:"name" validate:"required,max=200,nonul"`
	Date        string `json:"date" validate:"required,plandate"`
	Description string `json:"description,omitempty" validate:"max=2000,nonul"`
	Color       string `json:"color,omitempty" validate:"omitempty,hexcolor"`
}

// HolidayInput is a holiday as sent by the client
type HolidayInput struct {
	ID          string `json:"id" validate:"required,max=64,nonul"`
	Name        string `json:"name" validate:"required,max=200,nonul"`
	Date        string `json:"date" validate:"required,plandate"`
	Description string `json:"description,omitempty" validate:"max=2000,nonul"`
}
