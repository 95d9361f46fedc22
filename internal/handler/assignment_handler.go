package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studioflow/studioflow-backend/internal/common"
	"github.com/studioflow/studioflow-backend/internal/domain"
	"github.com/studioflow/studioflow-backend/internal/service"
)

// AssignmentHandler handles HTTP requests for role assignments
type AssignmentHandler struct {
	assignmentService *service.AssignmentService
}

// NewAssignmentHandler creates a new AssignmentHandler
func NewAssignmentHandler(assignmentService *service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{assignmentService: assignmentService}
}

// AssignRoleRequest picks an assignee explicitly or leaves the choice to the
// workload balancer (optionally restricted to a candidate pool).
type AssignRoleRequest struct {
	Role       string   `json:"role" binding:"required"`
	AssigneeID string   `json:"assignee_id"`
	Pool       []string `json:"pool"`
}

// AssignRole godoc
// @Summary      Assign a pipeline role on a record
// @Description  Explicit assignee wins; otherwise the least-loaded candidate is picked
// @Tags         assignments
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "Record ID"
// @Param        body  body  AssignRoleRequest  true  "Assignment"
// @Success      200  {object}  common.APIResponse{data=domain.ContentRecord}
// @Failure      400  {object}  common.APIResponse
// @Failure      422  {object}  common.APIResponse
// @Security     BearerAuth
// @Router       /records/{id}/assignments [post]
func (h *AssignmentHandler) AssignRole(c *gin.Context) {
	var req AssignRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "role is required", err)
		return
	}

	role, ok := domain.ParseRole(req.Role)
	if !ok {
		common.ErrorResponse(c, http.StatusBadRequest, "unknown role", nil)
		return
	}

	rec, err := h.assignmentService.AssignRole(c.Param("id"), role, req.AssigneeID, req.Pool)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	common.SuccessResponse(c, rec, nil)
}
