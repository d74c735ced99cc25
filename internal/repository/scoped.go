package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// batchSize bounds the rows per INSERT statement
const batchSize = 500

// createBatch inserts rows without touching their associations. With
// skipDuplicates rows that collide with an existing identity or unique key are
// skipped; the returned count only includes inserted rows.
func createBatch[T any](ctx context.Context, db *gorm.DB, rows []T, skipDuplicates bool) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	q := db.WithContext(ctx).Omit(clause.Associations)
	if skipDuplicates {
		q = q.Clauses(clause.OnConflict{DoNothing: true})
	}
	result := q.CreateInBatches(rows, batchSize)
	return result.RowsAffected, result.Error
}

// ownedIDs returns the subset of ids that exist in the project. Ids that are
// unknown, or belong to another project, are left out.
func ownedIDs[T any](ctx context.Context, db *gorm.DB, projectID string, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var model T
	var owned []string
	err := db.WithContext(ctx).
		Model(&model).
		Where("project_id = ? AND id IN ?", projectID, ids).
		Pluck("id", &owned).Error
	return owned, err
}

// deleteScoped removes rows of a project by id. Ids that do not exist, or
// belong to another project, are ignored.
func deleteScoped[T any](ctx context.Context, db *gorm.DB, projectID string, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	var model T
	result := db.WithContext(ctx).Where("project_id = ? AND id IN ?", projectID, ids).Delete(&model)
	return result.RowsAffected, result.Error
}

// updateScoped writes the selected columns of row, which must exist in the
// project. A missing row is reported as gorm.ErrRecordNotFound.
func updateScoped[T any](ctx context.Context, db *gorm.DB, entity string, row *T, id, projectID string, columns ...string) error {
	var model T
	result := db.WithContext(ctx).
		Model(&model).
		Where("id = ? AND project_id = ?", id, projectID).
		Select(columns).
		Updates(row)
	if result.Error != nil {
		return fmt.Errorf("failed to update %s %s: %w", entity, id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to update %s %s: %w", entity, id, gorm.ErrRecordNotFound)
	}
	return nil
}
