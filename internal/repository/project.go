package repository

import (
	"context"
	"fmt"

	"planner-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProjectRepository handles database operations for projects and their members
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create creates a new project
func (r *ProjectRepository) Create(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(project).Error
}

// GetByID retrieves a project that has not been soft-deleted
func (r *ProjectRepository) GetByID(ctx context.Context, id string) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetForUpdate retrieves a project and locks its row until the transaction
// ends. Concurrent change-sets for the same project queue behind the lock.
func (r *ProjectRepository) GetForUpdate(ctx context.Context, id string) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetSnapshot retrieves a project with its full plan
func (r *ProjectRepository) GetSnapshot(ctx context.Context, id string) (*models.Project, error) {
	var project models.Project
	err := r.db.WithContext(ctx).
		Preload("Resources", func(db *gorm.DB) *gorm.DB { return db.Order("name, id") }).
		Preload("Phases", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order, start_date, id") }).
		Preload("Phases.ResourceAssignments").
		Preload("Phases.Tasks", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order, start_date, id") }).
		Preload("Phases.Tasks.ResourceAssignments").
		Preload("Milestones", func(db *gorm.DB) *gorm.DB { return db.Order("date, id") }).
		Preload("Holidays", func(db *gorm.DB) *gorm.DB { return db.Order("date, id") }).
		Preload("Members").
		First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// ListByUser retrieves the projects a user owns or is a member of
func (r *ProjectRepository) ListByUser(ctx context.Context, userID string) ([]models.Project, error) {
	var projects []models.Project
	err := r.db.WithContext(ctx).
		Where("owner_id = ? OR id IN (?)", userID,
			r.db.WithContext(ctx).Model(&models.ProjectMember{}).Select("project_id").Where("user_id = ?", userID)).
		Order("updated_at DESC").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// UpdateFields updates the given columns of a project
func (r *ProjectRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	result := r.db.WithContext(ctx).Model(&models.Project{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to update project %s: %w", id, gorm.ErrRecordNotFound)
	}
	return nil
}

// BumpVersion increments the version, stamps updated_at and returns the
// re-read row. The increment happens in SQL so concurrent bumps never lose
// an increment.
func (r *ProjectRepository) BumpVersion(ctx context.Context, id string) (*models.Project, error) {
	db := r.db.WithContext(ctx)
	result := db.Model(&models.Project{}).
		Where("id = ?", id).
		UpdateColumns(map[string]interface{}{
			"version":    gorm.Expr("version + 1"),
			"updated_at": gorm.Expr("now()"),
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("failed to update project %s: %w", id, gorm.ErrRecordNotFound)
	}

	var project models.Project
	if err := db.First(&project, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// SoftDelete marks a project as deleted. Its plan rows stay in place.
func (r *ProjectRepository) SoftDelete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Project{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// GetMember retrieves the membership of a user on a project
func (r *ProjectRepository) GetMember(ctx context.Context, projectID, userID string) (*models.ProjectMember, error) {
	var member models.ProjectMember
	err := r.db.WithContext(ctx).First(&member, "project_id = ? AND user_id = ?", projectID, userID).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// UpsertMember grants a role, replacing the previous role of the user
func (r *ProjectRepository) UpsertMember(ctx context.Context, member *models.ProjectMember) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "project_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"role", "updated_at"}),
	}).Create(member).Error
}
