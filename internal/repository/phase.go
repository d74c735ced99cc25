package repository

import (
	"context"
	"fmt"
	"time"

	"planner-backend/internal/allocation"
	"planner-backend/internal/database/models"
	"planner-backend/internal/delta"

	"gorm.io/gorm"
)

// PhaseRepository handles database operations for phases, their tasks and
// the resource assignments below them
type PhaseRepository struct {
	db *gorm.DB
}

// NewPhaseRepository creates a new phase repository
func NewPhaseRepository(db *gorm.DB) *PhaseRepository {
	return &PhaseRepository{db: db}
}

// CreateBatch inserts phase rows only. Children are written by CreateChildren.
func (r *PhaseRepository) CreateBatch(ctx context.Context, phases []models.Phase, skipDuplicates bool) (int64, error) {
	return createBatch(ctx, r.db, phases, skipDuplicates)
}

// Update overwrites the scalar fields of a phase
func (r *PhaseRepository) Update(ctx context.Context, phase *models.Phase) error {
	return updateScoped(ctx, r.db, "phase", phase, phase.ID, phase.ProjectID,
		"name", "color", "start_date", "end_date", "sort_order", "dependencies")
}

// DeleteByIDs deletes phases; tasks and assignments follow by cascade
func (r *PhaseRepository) DeleteByIDs(ctx context.Context, projectID string, ids []string) (int64, error) {
	return deleteScoped[models.Phase](ctx, r.db, projectID, ids)
}

// OwnedIDs returns the given phase ids that belong to the project
func (r *PhaseRepository) OwnedIDs(ctx context.Context, projectID string, ids []string) ([]string, error) {
	return ownedIDs[models.Phase](ctx, r.db, projectID, ids)
}

// OwnedTaskIDs returns the given task ids whose phase belongs to the project
func (r *PhaseRepository) OwnedTaskIDs(ctx context.Context, projectID string, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var owned []string
	err := r.db.WithContext(ctx).
		Table("tasks AS t").
		Joins("JOIN phases p ON p.id = t.phase_id").
		Where("p.project_id = ? AND t.id IN ?", projectID, ids).
		Pluck("t.id", &owned).Error
	return owned, err
}

// DeleteChildren removes every task and phase-level assignment of the given
// phases of the project. Task assignments follow their task by cascade.
func (r *PhaseRepository) DeleteChildren(ctx context.Context, projectID string, phaseIDs []string) (int64, error) {
	if len(phaseIDs) == 0 {
		return 0, nil
	}
	db := r.db.WithContext(ctx)
	owned := db.Model(&models.Phase{}).Select("id").Where("project_id = ? AND id IN ?", projectID, phaseIDs)

	tasks := db.Where("phase_id IN (?)", owned).Delete(&models.Task{})
	if tasks.Error != nil {
		return 0, fmt.Errorf("failed to delete tasks: %w", tasks.Error)
	}
	assignments := db.Where("phase_id IN (?)", owned).Delete(&models.PhaseResourceAssignment{})
	if assignments.Error != nil {
		return 0, fmt.Errorf("failed to delete phase resource assignments: %w", assignments.Error)
	}
	return tasks.RowsAffected + assignments.RowsAffected, nil
}

// CreateChildren inserts tasks, then task assignments, then phase-level
// assignments, so every row finds its parent.
func (r *PhaseRepository) CreateChildren(ctx context.Context, children delta.PhaseChildren, skipDuplicates bool) (int64, error) {
	var total int64

	n, err := createBatch(ctx, r.db, children.Tasks, skipDuplicates)
	if err != nil {
		return 0, fmt.Errorf("failed to create tasks: %w", err)
	}
	total += n

	n, err = createBatch(ctx, r.db, children.TaskAssignments, skipDuplicates)
	if err != nil {
		return 0, fmt.Errorf("failed to create task resource assignments: %w", err)
	}
	total += n

	n, err = createBatch(ctx, r.db, children.PhaseAssignments, skipDuplicates)
	if err != nil {
		return 0, fmt.Errorf("failed to create phase resource assignments: %w", err)
	}
	total += n

	return total, nil
}

// ListBookings returns the task assignments of the project with the dates of
// their tasks. A non-empty resourceIDs limits the result to those resources.
func (r *PhaseRepository) ListBookings(ctx context.Context, projectID string, resourceIDs []string) ([]allocation.Booking, error) {
	var rows []struct {
		ResourceID           string
		TaskID               string
		StartDate            time.Time
		EndDate              time.Time
		AllocationPercentage float64
	}
	q := r.db.WithContext(ctx).
		Table("task_resource_assignments AS tra").
		Select("tra.resource_id, tra.task_id, t.start_date, t.end_date, tra.allocation_percentage").
		Joins("JOIN tasks t ON t.id = tra.task_id").
		Joins("JOIN phases p ON p.id = t.phase_id").
		Where("p.project_id = ?", projectID)
	if len(resourceIDs) > 0 {
		q = q.Where("tra.resource_id IN ?", resourceIDs)
	}
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}

	bookings := make([]allocation.Booking, len(rows))
	for i, row := range rows {
		bookings[i] = allocation.Booking{
			ResourceID: row.ResourceID,
			TaskID:     row.TaskID,
			StartDate:  row.StartDate,
			EndDate:    row.EndDate,
			Percentage: row.AllocationPercentage,
		}
	}
	return bookings, nil
}
