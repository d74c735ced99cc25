package repository

import (
	"context"

	"planner-backend/internal/database/models"

	"gorm.io/gorm"
)

// MilestoneRepository handles database operations for milestones
type MilestoneRepository struct {
	db *gorm.DB
}

// NewMilestoneRepository creates a new milestone repository
func NewMilestoneRepository(db *gorm.DB) *MilestoneRepository {
	return &MilestoneRepository{db: db}
}

func (r *MilestoneRepository) CreateBatch(ctx context.Context, milestones []models.Milestone, skipDuplicates bool) (int64, error) {
	return createBatch(ctx, r.db, milestones, skipDuplicates)
}

func (r *MilestoneRepository) Update(ctx context.Context, milestone *models.Milestone) error {
	return updateScoped(ctx, r.db, "milestone", milestone, milestone.ID, milestone.ProjectID,
		"name", "date", "description", "color")
}

func (r *MilestoneRepository) DeleteByIDs(ctx context.Context, projectID string, ids []string) (int64, error) {
	return deleteScoped[models.Milestone](ctx, r.db, projectID, ids)
}

func (r *MilestoneRepository) OwnedIDs(ctx context.Context, projectID string, ids []string) ([]string, error) {
	return ownedIDs[models.Milestone](ctx, r.db, projectID, ids)
}

// HolidayRepository handles database operations for holidays
type HolidayRepository struct {
	db *gorm.DB
}

// NewHolidayRepository creates a new holiday repository
func NewHolidayRepository(db *gorm.DB) *HolidayRepository {
	return &HolidayRepository{db: db}
}

func (r *HolidayRepository) CreateBatch(ctx context.Context, holidays []models.Holiday, skipDuplicates bool) (int64, error) {
	return createBatch(ctx, r.db, holidays, skipDuplicates)
}

func (r *HolidayRepository) Update(ctx context.Context, holiday *models.Holiday) error {
	return updateScoped(ctx, r.db, "holiday", holiday, holiday.ID, holiday.ProjectID,
		"name", "date", "description")
}

func (r *HolidayRepository) DeleteByIDs(ctx context.Context, projectID string, ids []string) (int64, error) {
	return deleteScoped[models.Holiday](ctx, r.db, projectID, ids)
}

func (r *HolidayRepository) OwnedIDs(ctx context.Context, projectID string, ids []string) ([]string, error) {
	return ownedIDs[models.Holiday](ctx, r.db, projectID, ids)
}
