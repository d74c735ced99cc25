package repository

import (
	"context"

	"planner-backend/internal/database/models"
	"planner-backend/internal/hierarchy"

	"gorm.io/gorm"
)

// ResourceRepository handles database operations for resources
type ResourceRepository struct {
	db *gorm.DB
}

// NewResourceRepository creates a new resource repository
func NewResourceRepository(db *gorm.DB) *ResourceRepository {
	return &ResourceRepository{db: db}
}

// CreateBatch inserts resources with every manager created in the same call
// written before its reports, so the manager reference holds no matter how
// the rows are split into statements.
func (r *ResourceRepository) CreateBatch(ctx context.Context, resources []models.Resource, skipDuplicates bool) (int64, error) {
	return createBatch(ctx, r.db, managersFirst(resources), skipDuplicates)
}

// OwnedIDs returns the given resource ids that belong to the project
func (r *ResourceRepository) OwnedIDs(ctx context.Context, projectID string, ids []string) ([]string, error) {
	return ownedIDs[models.Resource](ctx, r.db, projectID, ids)
}

// managersFirst orders resources so that a manager from the same slice comes
// before everyone reporting to it. Input order is kept otherwise. A cycle,
// which the hierarchy guard rejects earlier, is emitted in input order.
func managersFirst(resources []models.Resource) []models.Resource {
	index := make(map[string]int, len(resources))
	for i, res := range resources {
		index[res.ID] = i
	}

	const (
		pending = iota
		visiting
		done
	)
	state := make([]int, len(resources))
	out := make([]models.Resource, 0, len(resources))

	var visit func(i int)
	visit = func(i int) {
		if state[i] != pending {
			return
		}
		state[i] = visiting
		if m := resources[i].ManagerResourceID; m != nil {
			if j, ok := index[*m]; ok {
				visit(j)
			}
		}
		state[i] = done
		out = append(out, resources[i])
	}
	for i := range resources {
		visit(i)
	}
	return out
}

// Update overwrites the editable fields of a resource
func (r *ResourceRepository) Update(ctx context.Context, resource *models.Resource) error {
	return updateScoped(ctx, r.db, "resource", resource, resource.ID, resource.ProjectID,
		"name", "category", "designation", "manager_resource_id", "email", "daily_rate", "currency", "is_billable")
}

// DeleteByIDs deletes resources. Their assignments are removed by the
// database and their direct reports lose their manager.
func (r *ResourceRepository) DeleteByIDs(ctx context.Context, projectID string, ids []string) (int64, error) {
	return deleteScoped[models.Resource](ctx, r.db, projectID, ids)
}

// ListHierarchy returns the manager edge of every resource in the project
func (r *ResourceRepository) ListHierarchy(ctx context.Context, projectID string) ([]hierarchy.Edge, error) {
	var rows []struct {
		ID                string
		ManagerResourceID *string
	}
	err := r.db.WithContext(ctx).
		Model(&models.Resource{}).
		Select("id, manager_resource_id").
		Where("project_id = ?", projectID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	edges := make([]hierarchy.Edge, len(rows))
	for i, row := range rows {
		edges[i] = hierarchy.Edge{ResourceID: row.ID, ManagerID: row.ManagerResourceID}
	}
	return edges, nil
}
