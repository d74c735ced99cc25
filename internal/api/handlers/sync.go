package handlers

import (
	"net/http"

	"planner-backend/internal/auth"
	"planner-backend/internal/delta"
	apperrors "planner-backend/internal/errors"
	"planner-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SyncHandler handles change-set requests
type SyncHandler struct {
	syncService service.SyncServiceInterface
}

// NewSyncHandler creates a new sync handler
func NewSyncHandler(syncService service.SyncServiceInterface) *SyncHandler {
	return &SyncHandler{
		syncService: syncService,
	}
}

// ApplyDelta handles POST /projects/:id/delta
// @Summary Apply a change-set
// @Description Apply created, updated and deleted entities of a project plan in one transaction. Either every change is stored and the project version increases by one, or nothing is stored.
// @Tags sync
// @Accept json
// @Produce json
// @Param id path string true "Project ID"
// @Param changeSet body delta.ChangeSet true "Change-set"
// @Success 200 {object} service.DeltaResponse "Change-set applied"
// @Failure 400 {object} ErrorResponse "Invalid change-set"
// @Failure 401 {object} ErrorResponse "Authentication required"
// @Failure 403 {object} ErrorResponse "No write access to the project"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Failure 409 {object} ErrorResponse "Constraint violation or stale base version"
// @Failure 422 {object} ErrorResponse "Reporting cycle"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /projects/{id}/delta [post]
func (h *SyncHandler) ApplyDelta(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrMissingUserContext)
		return
	}

	var cs delta.ChangeSet
	if err := c.ShouldBindJSON(&cs); err != nil {
		badRequest(c, "body", "invalid change-set payload: "+err.Error())
		return
	}

	resp, err := h.syncService.ApplyDelta(c.Request.Context(), userID, c.Param("id"), &cs)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CheckHierarchy handles GET /projects/:id/hierarchy/check
// @Summary Check a reporting line
// @Description Report whether making managerId the manager of resourceId would create a reporting cycle. Nothing is stored.
// @Tags sync
// @Produce json
// @Param id path string true "Project ID"
// @Param resourceId query string true "Resource whose manager changes"
// @Param managerId query string true "Proposed manager"
// @Success 200 {object} service.HierarchyCheckResponse "Check result"
// @Failure 400 {object} ErrorResponse "Missing parameters"
// @Failure 403 {object} ErrorResponse "No write access to the project"
// @Failure 404 {object} ErrorResponse "Project not found"
// @Security BearerAuth
// @Router /projects/{id}/hierarchy/check [get]
func (h *SyncHandler) CheckHierarchy(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		respondError(c, apperrors.ErrMissingUserContext)
		return
	}

	resp, err := h.syncService.CheckHierarchy(c.Request.Context(), userID, c.Param("id"),
		c.Query("resourceId"), c.Query("managerId"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
