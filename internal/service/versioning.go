package service

import (
	"context"
	"fmt"

	"planner-backend/internal/database/models"
	apperrors "planner-backend/internal/errors"
	"planner-backend/internal/repository"
)

// VersionController maintains the per-project version counter.
//
// A client may send the version its change-set was built on. By default a
// mismatch is only reported (last write wins); with enforcement enabled the
// change-set is rejected as stale.
type VersionController struct {
	enforceBase bool
}

// NewVersionController creates a new version controller
func NewVersionController(enforceBase bool) *VersionController {
	return &VersionController{enforceBase: enforceBase}
}

// CheckBase compares the client's base version with the stored one and
// reports whether the change-set is stale.
func (v *VersionController) CheckBase(current int64, base *int64) (bool, error) {
	if base == nil || *base == current {
		return false, nil
	}
	if !v.enforceBase {
		return true, nil
	}
	return true, &apperrors.ConflictError{
		Kind:    apperrors.KindStaleVersion,
		Entity:  "project",
		Fields:  []string{"version"},
		Values:  map[string]string{"version": fmt.Sprint(current), "baseVersion": fmt.Sprint(*base)},
		Message: fmt.Sprintf("project is at version %d but the change-set was built on version %d", current, *base),
		Hint:    "refresh to sync with latest data",
	}
}

// Bump increments the version by one inside the caller's transaction and
// returns the re-read project.
func (v *VersionController) Bump(ctx context.Context, projects repository.ProjectRepositoryInterface, projectID string) (*models.Project, error) {
	project, err := projects.BumpVersion(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to bump project version: %w", err)
	}
	return project, nil
}
