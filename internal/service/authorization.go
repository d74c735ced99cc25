package service

import (
	"context"
	"errors"
	"fmt"

	"planner-backend/internal/database/models"
	apperrors "planner-backend/internal/errors"
	"planner-backend/internal/repository"

	"gorm.io/gorm"
)

// ProjectAuthorizer decides what a user may do with a project. The owner may
// do everything; members act according to their role.
type ProjectAuthorizer struct {
	projects repository.ProjectRepositoryInterface
}

// NewProjectAuthorizer creates a new project authorizer
func NewProjectAuthorizer(projects repository.ProjectRepositoryInterface) *ProjectAuthorizer {
	return &ProjectAuthorizer{projects: projects}
}

// AuthorizeWrite returns the project when userID is its owner or an editor
func (a *ProjectAuthorizer) AuthorizeWrite(ctx context.Context, userID, projectID string) (*models.Project, error) {
	return a.authorize(ctx, userID, projectID, models.ProjectRole.CanWrite, apperrors.ErrProjectWriteDenied)
}

// AuthorizeRead returns the project when userID has any role on it
func (a *ProjectAuthorizer) AuthorizeRead(ctx context.Context, userID, projectID string) (*models.Project, error) {
	return a.authorize(ctx, userID, projectID, models.ProjectRole.IsValid, apperrors.ErrProjectReadDenied)
}

// AuthorizeOwner returns the project when userID owns it
func (a *ProjectAuthorizer) AuthorizeOwner(ctx context.Context, userID, projectID string) (*models.Project, error) {
	return a.authorize(ctx, userID, projectID, func(models.ProjectRole) bool { return false }, apperrors.ErrOwnerOnly)
}

func (a *ProjectAuthorizer) authorize(ctx context.Context, userID, projectID string, allowed func(models.ProjectRole) bool, denied error) (*models.Project, error) {
	if userID == "" {
		return nil, apperrors.ErrMissingUserContext
	}

	project, err := a.projects.GetByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to load project: %w", err)
	}
	if project.OwnerID == userID {
		return project, nil
	}

	member, err := a.projects.GetMember(ctx, projectID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, denied
		}
		return nil, fmt.Errorf("failed to load project member: %w", err)
	}
	if !allowed(member.Role) {
		return nil, denied
	}
	return project, nil
}
