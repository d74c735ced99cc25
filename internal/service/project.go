package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"planner-backend/internal/conflict"
	"planner-backend/internal/database/models"
	"planner-backend/internal/delta"
	apperrors "planner-backend/internal/errors"
	"planner-backend/internal/logger"
	"planner-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProjectService handles business logic for projects
type ProjectService struct {
	repo       repository.ProjectRepositoryInterface
	authorizer *ProjectAuthorizer
	validator  *validator.Validate
}

// NewProjectService creates a new project service
func NewProjectService(repo repository.ProjectRepositoryInterface, validator *validator.Validate) *ProjectService {
	return &ProjectService{
		repo:       repo,
		authorizer: NewProjectAuthorizer(repo),
		validator:  validator,
	}
}

// CreateProjectRequest represents the request to create a project
type CreateProjectRequest struct {
	Name             string          `json:"name" validate:"required,min=1,max=200,nonul"`
	StartDate        *string         `json:"startDate,omitempty" validate:"omitempty,plandate"`
	ViewSettings     json.RawMessage `json:"viewSettings,omitempty" swaggertype:"object"`
	BudgetSettings   json.RawMessage `json:"budgetSettings,omitempty" swaggertype:"object"`
	OrgChartSettings json.RawMessage `json:"orgChartSettings,omitempty" swaggertype:"object"`
}

// ProjectResponse represents the response for project operations
type ProjectResponse struct {
	ID        string  `json:"id"`
	OwnerID   string  `json:"ownerId"`
	Name      string  `json:"name"`
	StartDate *string `json:"startDate,omitempty"`
	Version   int64   `json:"version"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

// GrantMemberRequest represents the request to give a user a role on a project
type GrantMemberRequest struct {
	UserID string             `json:"userId" validate:"required,max=64,nonul"`
	Role   models.ProjectRole `json:"role" validate:"required,oneof=editor viewer"`
}

// MemberResponse represents a project membership
type MemberResponse struct {
	ProjectID string             `json:"projectId"`
	UserID    string             `json:"userId"`
	Role      models.ProjectRole `json:"role"`
}

// Create creates a new project owned by userID
func (s *ProjectService) Create(ctx context.Context, userID string, req *CreateProjectRequest) (*ProjectResponse, error) {
	if userID == "" {
		return nil, apperrors.ErrMissingUserContext
	}
	if req == nil {
		return nil, apperrors.NewValidationError("body", "is required")
	}
	if err := delta.ValidateRequest(s.validator, req); err != nil {
		return nil, err
	}

	project := &models.Project{
		OwnerID:          userID,
		Name:             req.Name,
		ViewSettings:     jsonOrNil(req.ViewSettings),
		BudgetSettings:   jsonOrNil(req.BudgetSettings),
		OrgChartSettings: jsonOrNil(req.OrgChartSettings),
		Version:          1,
	}
	if req.StartDate != nil {
		start := delta.ParseDate(*req.StartDate)
		project.StartDate = &start
	}

	// the case-insensitive name index decides uniqueness
	if err := s.repo.Create(ctx, project); err != nil {
		return nil, conflict.Resolve(fmt.Errorf("failed to create project: %w", err))
	}

	logger.WithContext(ctx).WithProject(project.ID).Info("project created")
	return toProjectResponse(project), nil
}

// List returns the projects userID owns or is a member of
func (s *ProjectService) List(ctx context.Context, userID string) ([]ProjectResponse, error) {
	if userID == "" {
		return nil, apperrors.ErrMissingUserContext
	}
	projects, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	out := make([]ProjectResponse, 0, len(projects))
	for i := range projects {
		out = append(out, *toProjectResponse(&projects[i]))
	}
	return out, nil
}

// GetSnapshot returns the full plan of a project
func (s *ProjectService) GetSnapshot(ctx context.Context, userID, projectID string) (*models.Project, error) {
	if _, err := s.authorizer.AuthorizeRead(ctx, userID, projectID); err != nil {
		return nil, err
	}
	project, err := s.repo.GetSnapshot(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to load project snapshot: %w", err)
	}
	return project, nil
}

// Delete soft-deletes a project. Only the owner may delete.
func (s *ProjectService) Delete(ctx context.Context, userID, projectID string) error {
	if _, err := s.authorizer.AuthorizeOwner(ctx, userID, projectID); err != nil {
		return err
	}
	if err := s.repo.SoftDelete(ctx, projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProjectNotFound
		}
		return fmt.Errorf("failed to delete project: %w", err)
	}
	logger.WithContext(ctx).WithProject(projectID).Info("project deleted")
	return nil
}

// GrantMember gives a user a role on a project. Only the owner may grant.
func (s *ProjectService) GrantMember(ctx context.Context, userID, projectID string, req *GrantMemberRequest) (*MemberResponse, error) {
	if req == nil {
		return nil, apperrors.NewValidationError("body", "is required")
	}
	if err := delta.ValidateRequest(s.validator, req); err != nil {
		return nil, err
	}
	project, err := s.authorizer.AuthorizeOwner(ctx, userID, projectID)
	if err != nil {
		return nil, err
	}
	if req.UserID == project.OwnerID {
		return nil, apperrors.NewValidationError("userId", "is already the project owner")
	}

	member := &models.ProjectMember{ProjectID: projectID, UserID: req.UserID, Role: req.Role}
	if err := s.repo.UpsertMember(ctx, member); err != nil {
		return nil, conflict.Resolve(fmt.Errorf("failed to grant project role: %w", err))
	}

	logger.WithContext(ctx).WithProject(projectID).
		WithFields(map[string]interface{}{"member": req.UserID, "role": req.Role}).
		Info("project role granted")
	return &MemberResponse{ProjectID: projectID, UserID: req.UserID, Role: req.Role}, nil
}

func toProjectResponse(p *models.Project) *ProjectResponse {
	resp := &ProjectResponse{
		ID:        p.ID,
		OwnerID:   p.OwnerID,
		Name:      p.Name,
		Version:   p.Version,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
		UpdatedAt: p.UpdatedAt.Format(time.RFC3339),
	}
	if p.StartDate != nil {
		start := p.StartDate.Format(delta.DateLayout)
		resp.StartDate = &start
	}
	return resp
}

func jsonOrNil(raw json.RawMessage) datatypes.JSON {
	if len(raw) == 0 {
		return nil
	}
	return datatypes.JSON(raw)
}
