package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studioflow/studioflow-backend/internal/common"
	"github.com/studioflow/studioflow-backend/internal/domain"
	"github.com/studioflow/studioflow-backend/internal/repository"
)

// TeamHandler handles HTTP requests for profiles and team members
type TeamHandler struct {
	profileRepo repository.ProfileRepository
	memberRepo  repository.MemberRepository
}

// NewTeamHandler creates a new TeamHandler
func NewTeamHandler(profileRepo repository.ProfileRepository, memberRepo repository.MemberRepository) *TeamHandler {
	return &TeamHandler{profileRepo: profileRepo, memberRepo: memberRepo}
}

// ListProfiles godoc
// @Summary      List content profiles
// @Tags         team
// @Produce      json
// @Success      200  {object}  common.APIResponse{data=[]domain.Profile}
// @Security     BearerAuth
// @Router       /profiles [get]
func (h *TeamHandler) ListProfiles(c *gin.Context) {
	profiles, err := h.profileRepo.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	common.SuccessResponse(c, profiles, nil)
}

// CreateProfileRequest is the new profile payload
type CreateProfileRequest struct {
	Code string `json:"code" binding:"required"`
	Name string `json:"name" binding:"required"`
}

// CreateProfile godoc
// @Summary      Create a content profile
// @Tags         team
// @Accept       json
// @Produce      json
// @Param        body  body  CreateProfileRequest  true  "Profile"
// @Success      201  {object}  common.APIResponse{data=domain.Profile}
// @Failure      400  {object}  common.APIResponse
// @Security     BearerAuth
// @Router       /profiles [post]
func (h *TeamHandler) CreateProfile(c *gin.Context) {
	var req CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "code and name are required", err)
		return
	}

	profile := &domain.Profile{Code: req.Code, Name: req.Name, IsActive: true}
	if err := h.profileRepo.Create(profile); err != nil {
		respondServiceError(c, err)
		return
	}
	common.CreatedResponse(c, profile)
}

// ListMembers godoc
// @Summary      List team members
// @Tags         team
// @Produce      json
// @Success      200  {object}  common.APIResponse{data=[]domain.TeamMember}
// @Security     BearerAuth
// @Router       /members [get]
func (h *TeamHandler) ListMembers(c *gin.Context) {
	members, err := h.memberRepo.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	common.SuccessResponse(c, members, nil)
}

// CreateMemberRequest is the new team member payload
type CreateMemberRequest struct {
	ID   string `json:"id" binding:"required"`
	Name string `json:"name" binding:"required"`
	Role string `json:"role" binding:"required"`
}

// CreateMember godoc
// @Summary      Register a team member
// @Tags         team
// @Accept       json
// @Produce      json
// @Param        body  body  CreateMemberRequest  true  "Member"
// @Success      201  {object}  common.APIResponse{data=domain.TeamMember}
// @Failure      400  {object}  common.APIResponse
// @Security     BearerAuth
// @Router       /members [post]
func (h *TeamHandler) CreateMember(c *gin.Context) {
	var req CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "id, name and role are required", err)
		return
	}

	role, ok := domain.ParseRole(req.Role)
	if !ok {
		common.ErrorResponse(c, http.StatusBadRequest, "unknown role", nil)
		return
	}

	member := &domain.TeamMember{ID: req.ID, Name: req.Name, Role: role, IsActive: true}
	if err := h.memberRepo.Create(member); err != nil {
		respondServiceError(c, err)
		return
	}
	common.CreatedResponse(c, member)
}
