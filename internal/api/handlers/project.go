package handlers

import (
	"net/http"

	"planner-backend/internal/auth"
	apperrors "planner-backend/internal/errors"
	"planner-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ProjectHandler handles HTTP requests for project operations
type ProjectHandler struct {
	projectService service.ProjectServiceInterface
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService service.ProjectServiceInterface) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// CreateProject handles POST /projects
// @Summary Create a new project
// @Description Create a project owned by the caller. Names are unique per owner, ignoring case.
// @Tags projects
// @Accept json
// @Produce json
// @Param project body service.CreateProjectRequest true "Project data"
// @Success 201 {object} service.ProjectResponse "Successfully created project"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Project name already used"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /projects [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrMissingUserContext)
		return
	}

	var req service.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "body", err.Error())
		return
	}

	project, err := h.projectService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, project)
}

// ListProjects handles GET /projects
// @Summary List projects
// @Description List the projects the caller owns or is a member of
// @Tags projects
// @Produce json
// @Success 200 {array} service.ProjectResponse "Projects"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /projects [get]
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrMissingUserContext)
		return
	}

	projects, err := h.projectService.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, projects)
}

// GetProject handles GET /projects/:id
// @Summary Get project snapshot
// @Description Get a project with its resources, phases, tasks, milestones and holidays
// @Tags projects
// @Produce json
// @Param id path string true "Project ID"
// @Success 200 {object} models.Project "Project snapshot"
// @Failure 403 {object} ErrorResponse "No access to the project"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /projects/{id} [get]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrMissingUserContext)
		return
	}

	project, err := h.projectService.GetSnapshot(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}

// DeleteProject handles DELETE /projects/:id
// @Summary Delete project
// @Description Soft delete a project. Only the owner may do this.
// @Tags projects
// @Param id path string true "Project ID"
// @Success 204 "Successfully deleted project"
// @Failure 403 {object} ErrorResponse "Caller is not the owner"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /projects/{id} [delete]
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrMissingUserContext)
		return
	}

	if err := h.projectService.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GrantMember handles POST /projects/:id/members
// @Summary Grant project access
// @Description Give a user the editor or viewer role on a project. Only the owner may do this.
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param member body service.GrantMemberRequest true "Member and role"
// @Success 200 {object} service.MemberResponse "Role granted"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 403 {object} ErrorResponse "Caller is not the owner"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /projects/{id}/members [post]
func (h *ProjectHandler) GrantMember(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrMissingUserContext)
		return
	}

	var req service.GrantMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "body", err.Error())
		return
	}

	member, err := h.projectService.GrantMember(c.Request.Context(), userID, c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}
