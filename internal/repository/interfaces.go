package repository

import (
	"context"

	"planner-backend/internal/allocation"
	"planner-backend/internal/database/models"
	"planner-backend/internal/delta"
	"planner-backend/internal/hierarchy"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// UnitOfWorkInterface runs fn inside one transaction. The repositories handed
// to fn are bound to that transaction; fn's error rolls everything back.
type UnitOfWorkInterface interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, repos *Repositories) error) error
}

// ProjectRepositoryInterface defines the interface for project repository operations
type ProjectRepositoryInterface interface {
	Create(ctx context.Context, project *models.Project) error
	GetByID(ctx context.Context, id string) (*models.Project, error)
	GetForUpdate(ctx context.Context, id string) (*models.Project, error)
	GetSnapshot(ctx context.Context, id string) (*models.Project, error)
	ListByUser(ctx context.Context, userID string) ([]models.Project, error)
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
	BumpVersion(ctx context.Context, id string) (*models.Project, error)
	SoftDelete(ctx context.Context, id string) error
	GetMember(ctx context.Context, projectID, userID string) (*models.ProjectMember, error)
	UpsertMember(ctx context.Context, member *models.ProjectMember) error
}

// ResourceRepositoryInterface defines the interface for resource repository operations
type ResourceRepositoryInterface interface {
	CreateBatch(ctx context.Context, resources []models.Resource, skipDuplicates bool) (int64, error)
	Update(ctx context.Context, resource *models.Resource) error
	DeleteByIDs(ctx context.Context, projectID string, ids []string) (int64, error)
	ListHierarchy(ctx context.Context, projectID string) ([]hierarchy.Edge, error)
	OwnedIDs(ctx context.Context, projectID string, ids []string) ([]string, error)
}

// PhaseRepositoryInterface defines the interface for phase repository operations.
// Tasks and assignments are only written through their phase.
type PhaseRepositoryInterface interface {
	CreateBatch(ctx context.Context, phases []models.Phase, skipDuplicates bool) (int64, error)
	Update(ctx context.Context, phase *models.Phase) error
	DeleteByIDs(ctx context.Context, projectID string, ids []string) (int64, error)
	OwnedIDs(ctx context.Context, projectID string, ids []string) ([]string, error)
	OwnedTaskIDs(ctx context.Context, projectID string, ids []string) ([]string, error)
	DeleteChildren(ctx context.Context, projectID string, phaseIDs []string) (int64, error)
	CreateChildren(ctx context.Context, children delta.PhaseChildren, skipDuplicates bool) (int64, error)
	ListBookings(ctx context.Context, projectID string, resourceIDs []string) ([]allocation.Booking, error)
}

// MilestoneRepositoryInterface defines the interface for milestone repository operations
type MilestoneRepositoryInterface interface {
	CreateBatch(ctx context.Context, milestones []models.Milestone, skipDuplicates bool) (int64, error)
	Update(ctx context.Context, milestone *models.Milestone) error
	DeleteByIDs(ctx context.Context, projectID string, ids []string) (int64, error)
	OwnedIDs(ctx context.Context, projectID string, ids []string) ([]string, error)
}

// HolidayRepositoryInterface defines the interface for holiday repository operations
type HolidayRepositoryInterface interface {
	CreateBatch(ctx context.Context, holidays []models.Holiday, skipDuplicates bool) (int64, error)
	Update(ctx context.Context, holiday *models.Holiday) error
	DeleteByIDs(ctx context.Context, projectID string, ids []string) (int64, error)
	OwnedIDs(ctx context.Context, projectID string, ids []string) ([]string, error)
}
