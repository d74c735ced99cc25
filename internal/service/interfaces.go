package service

import (
	"context"

	"planner-backend/internal/database/models"
	"planner-backend/internal/delta"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// SyncServiceInterface defines the interface for applying change-sets
type SyncServiceInterface interface {
	ApplyDelta(ctx context.Context, userID, projectID string, cs *delta.ChangeSet) (*DeltaResponse, error)
	CheckHierarchy(ctx context.Context, userID, projectID, resourceID, managerID string) (*HierarchyCheckResponse, error)
}

// ProjectServiceInterface defines the interface for project service
type ProjectServiceInterface interface {
	Create(ctx context.Context, userID string, req *CreateProjectRequest) (*ProjectResponse, error)
	List(ctx context.Context, userID string) ([]ProjectResponse, error)
	GetSnapshot(ctx context.Context, userID, projectID string) (*models.Project, error)
	Delete(ctx context.Context, userID, projectID string) error
	GrantMember(ctx context.Context, userID, projectID string, req *GrantMemberRequest) (*MemberResponse, error)
}
