package testutils

import (
	"time"

	"planner-backend/internal/database/models"
	"planner-backend/internal/delta"

	"github.com/google/uuid"
)

// ProjectFactory provides methods to create test Project data
type ProjectFactory struct{}

// NewProjectFactory creates a new ProjectFactory
func NewProjectFactory() *ProjectFactory {
	return &ProjectFactory{}
}

// Create creates a test Project with default values
func (f *ProjectFactory) Create() *models.Project {
	start := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)
	return &models.Project{
		BaseModel: models.BaseModel{ID: uuid.NewString()},
		OwnerID:   "owner-" + uuid.NewString()[:8],
		Name:      "ERP Rollout " + uuid.NewString()[:6],
		StartDate: &start,
		Version:   1,
	}
}

// WithOwner sets the owner of the project
func (f *ProjectFactory) WithOwner(ownerID string) *models.Project {
	project := f.Create()
	project.OwnerID = ownerID
	return project
}

// WithName sets a custom name for the project
func (f *ProjectFactory) WithName(ownerID, name string) *models.Project {
	project := f.WithOwner(ownerID)
	project.Name = name
	return project
}

// ChangeSetFactory builds change-set payloads for a plan
type ChangeSetFactory struct{}

// NewChangeSetFactory creates a new ChangeSetFactory
func NewChangeSetFactory() *ChangeSetFactory {
	return &ChangeSetFactory{}
}

// Resource returns a valid resource input
func (f *ChangeSetFactory) Resource(id string) delta.ResourceInput {
	return delta.ResourceInput{
		ID:          id,
		Name:        "Resource " + id,
		Category:    string(models.ResourceCategoryTechnical),
		Designation: string(models.DesignationConsultant),
		DailyRate:   1200,
		Currency:    "EUR",
	}
}

// ResourceReportingTo returns a resource input with a manager
func (f *ChangeSetFactory) ResourceReportingTo(id, managerID string) delta.ResourceInput {
	r := f.Resource(id)
	r.ManagerResourceID = &managerID
	return r
}

// Phase returns a valid phase input without tasks
func (f *ChangeSetFactory) Phase(id string) delta.PhaseInput {
	return delta.PhaseInput{
		ID:        id,
		Name:      "Phase " + id,
		Color:     "#1f77b4",
		StartDate: "2026-01-05",
		EndDate:   "2026-03-27",
	}
}

// Task returns a valid task input assigned to the given resources at the
// given allocation
func (f *ChangeSetFactory) Task(id string, allocation float64, resourceIDs ...string) delta.TaskInput {
	t := delta.TaskInput{
		ID:        id,
		Name:      "Task " + id,
		StartDate: "2026-01-05",
		EndDate:   "2026-01-16",
	}
	for _, r := range resourceIDs {
		t.ResourceAssignments = append(t.ResourceAssignments, delta.AssignmentInput{
			ResourceID:           r,
			AllocationPercentage: allocation,
		})
	}
	return t
}

// PhaseWithTasks returns a phase input carrying the given tasks
func (f *ChangeSetFactory) PhaseWithTasks(id string, tasks ...delta.TaskInput) delta.PhaseInput {
	p := f.Phase(id)
	p.Tasks = tasks
	return p
}

// Milestone returns a valid milestone input
func (f *ChangeSetFactory) Milestone(id string) delta.MilestoneInput {
	return delta.MilestoneInput{ID: id, Name: "Milestone " + id, Date: "2026-02-27", Color: "#ff7f0e"}
}

// Holiday returns a valid holiday input
func (f *ChangeSetFactory) Holiday(id string) delta.HolidayInput {
	return delta.HolidayInput{ID: id, Name: "Holiday " + id, Date: "2026-01-01"}
}

// FactorySet provides access to all factories
type FactorySet struct {
	Project   *ProjectFactory
	ChangeSet *ChangeSetFactory
}

// NewFactorySet creates a new set of all factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Project:   NewProjectFactory(),
		ChangeSet: NewChangeSetFactory(),
	}
}
