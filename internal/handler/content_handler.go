package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/studioflow/studioflow-backend/internal/common"
	"github.com/studioflow/studioflow-backend/internal/domain"
	"github.com/studioflow/studioflow-backend/internal/middleware"
	"github.com/studioflow/studioflow-backend/internal/service"
)

// ContentHandler handles HTTP requests for content records
type ContentHandler struct {
	contentService *service.ContentService
	reviewService  *service.ReviewService
	stageService   *service.StageService
}

// NewContentHandler creates a new ContentHandler
func NewContentHandler(
	contentService *service.ContentService,
	reviewService *service.ReviewService,
	stageService *service.StageService,
) *ContentHandler {
	return &ContentHandler{
		contentService: contentService,
		reviewService:  reviewService,
		stageService:   stageService,
	}
}

// respondServiceError maps workflow errors to specific HTTP responses so the
// UI can show the real business rule instead of a generic failure banner.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrRecordNotFound), errors.Is(err, common.ErrNotFound):
		common.ErrorResponse(c, http.StatusNotFound, "content record not found", nil)
	case errors.Is(err, common.ErrAlreadyDissolved):
		common.ErrorResponse(c, http.StatusGone,
			"this project has been rejected too many times and is permanently closed", nil)
	case errors.Is(err, common.ErrInvalidStateTransition):
		common.ErrorResponse(c, http.StatusConflict, "operation not allowed in the record's current state", err)
	case errors.Is(err, common.ErrReasonRequired):
		common.ErrorResponse(c, http.StatusBadRequest, "a reason is required", nil)
	case errors.Is(err, common.ErrNoEligibleAssignee):
		common.ErrorResponse(c, http.StatusUnprocessableEntity, "no eligible assignee for this role", nil)
	case errors.Is(err, common.ErrUnknownRole), errors.Is(err, common.ErrInvalidInput):
		common.ErrorResponse(c, http.StatusBadRequest, "invalid input", err)
	default:
		common.ErrorResponse(c, http.StatusInternalServerError, "internal error", err)
	}
}

// CreateRecordRequest is the submission payload
type CreateRecordRequest struct {
	Title         string `json:"title" binding:"required"`
	Script        string `json:"script" binding:"required"`
	NamespaceCode string `json:"namespace_code"`
}

// CreateRecord godoc
// @Summary      Submit a script
// @Description  Creates a pending content record awaiting admin review
// @Tags         records
// @Accept       json
// @Produce      json
// @Param        body  body      CreateRecordRequest  true  "Submission"
// @Success      201  {object}  common.APIResponse{data=domain.ContentRecord}
// @Failure      400  {object}  common.APIResponse
// @Security     BearerAuth
// @Router       /records [post]
func (h *ContentHandler) CreateRecord(c *gin.Context) {
	var req CreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	rec, err := h.contentService.Create(req.Title, req.Script, req.NamespaceCode, middleware.GetUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	common.CreatedResponse(c, rec)
}

// GetRecord godoc
// @Summary      Fetch a record
// @Tags         records
// @Produce      json
// @Param        id  path  string  true  "Record ID"
// @Success      200  {object}  common.APIResponse{data=domain.ContentRecord}
// @Failure      404  {object}  common.APIResponse
// @Security     BearerAuth
// @Router       /records/{id} [get]
func (h *ContentHandler) GetRecord(c *gin.Context) {
	rec, err := h.contentService.Get(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	common.SuccessResponse(c, rec, nil)
}

// ListRecords godoc
// @Summary      List records
// @Tags         records
// @Produce      json
// @Param        status  query  string  false  "Filter by status"
// @Param        page    query  int     false  "Page number"
// @Param        limit   query  int     false  "Page size"
// @Success      200  {object}  common.APIResponse{data=[]domain.ContentRecord}
// @Security     BearerAuth
// @Router       /records [get]
func (h *ContentHandler) ListRecords(c *gin.Context) {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 20)

	recs, total, err := h.contentService.List(c.Query("status"), page, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	common.SuccessResponse(c, recs, &common.Meta{Page: page, Limit: limit, Total: total})
}

// Approve godoc
// @Summary      Approve a pending record
// @Description  Moves the record into production and mints its content code on first approval
// @Tags         review
// @Produce      json
// @Param        id  path  string  true  "Record ID"
// @Success      200  {object}  common.APIResponse{data=domain.ContentRecord}
// @Failure      404  {object}  common.APIResponse
// @Failure      409  {object}  common.APIResponse
// @Failure      410  {object}  common.APIResponse
// @Security     BearerAuth
// @Router       /records/{id}/approve [post]
func (h *ContentHandler) Approve(c *gin.Context) {
	rec, err := h.reviewService.Approve(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	common.SuccessResponse(c, rec, nil)
}

// Reject godoc
// @Summary      Reject a pending record
// @Description  Increments the rejection count; the fifth rejection permanently dissolves the project
// @Tags         review
// @Produce      json
// @Param        id  path  string  true  "Record ID"
// @Success      200  {object}  common.APIResponse{data=domain.ContentRecord}
// @Failure      404  {object}  common.APIResponse
// @Failure      409  {object}  common.APIResponse
// @Failure      410  {object}  common.APIResponse
// @Security     BearerAuth
// @Router       /records/{id}/reject [post]
func (h *ContentHandler) Reject(c *gin.Context) {
	rec, err := h.reviewService.Reject(c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	common.SuccessResponse(c, rec, nil)
}

// DisapproveRequest carries the mandatory disapproval reason
type DisapproveRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// Disapprove godoc
// @Summary      Retract a prior approval
// @Description  Sends an approved record back to pending; production work past planning is discarded
// @Tags         review
// @Accept       json
// @Produce      json
// @Param        id    path  string             true  "Record ID"
// @Param        body  body  DisapproveRequest  true  "Reason"
// @Success      200  {object}  common.APIResponse{data=domain.ContentRecord}
// @Failure      400  {object}  common.APIResponse
// @Failure      409  {object}  common.APIResponse
// @Security     BearerAuth
// @Router       /records/{id}/disapprove [post]
func (h *ContentHandler) Disapprove(c *gin.Context) {
	var req DisapproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "a reason is required", err)
		return
	}

	rec, err := h.reviewService.Disapprove(c.Param("id"), req.Reason)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	common.SuccessResponse(c, rec, nil)
}

// ResubmitRequest optionally carries a reworked script
type ResubmitRequest struct {
	Script string `json:"script"`
}

// Resubmit godoc
// @Summary      Resubmit a rejected record
// @Tags         review
// @Accept       json
// @Produce      json
// @Param        id    path  string           true   "Record ID"
// @Param        body  body  ResubmitRequest  false  "Reworked script"
// @Success      200  {object}  common.APIResponse{data=domain.ContentRecord}
// @Failure      409  {object}  common.APIResponse
// @Failure      410  {object}  common.APIResponse
// @Security     BearerAuth
// @Router       /records/{id}/resubmit [post]
func (h *ContentHandler) Resubmit(c *gin.Context) {
	var req ResubmitRequest
	_ = c.ShouldBindJSON(&req)

	rec, err := h.reviewService.Resubmit(c.Param("id"), req.Script)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	common.SuccessResponse(c, rec, nil)
}

// AdvanceStageRequest names the stage being requested
type AdvanceStageRequest struct {
	Stage string `json:"stage" binding:"required"`
}

// AdvanceStage godoc
// @Summary      Move a record along the production path
// @Description  Role-holders submit forward into review gates; only admins decide a gate
// @Tags         stages
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "Record ID"
// @Param        body  body  AdvanceStageRequest  true  "Requested stage"
// @Success      200  {object}  common.APIResponse{data=domain.ContentRecord}
// @Failure      400  {object}  common.APIResponse
// @Failure      403  {object}  common.APIResponse
// @Failure      409  {object}  common.APIResponse
// @Security     BearerAuth
// @Router       /records/{id}/stage [post]
func (h *ContentHandler) AdvanceStage(c *gin.Context) {
	var req AdvanceStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "stage is required", err)
		return
	}

	stage, ok := domain.ParseStage(req.Stage)
	if !ok {
		common.ErrorResponse(c, http.StatusBadRequest, "unknown stage", nil)
		return
	}

	actingRole, ok := middleware.GetUserRole(c)
	if !ok {
		if middleware.IsAdmin(c) {
			actingRole = domain.RoleAdmin
		} else {
			common.ErrorResponse(c, http.StatusForbidden, "no pipeline role", nil)
			return
		}
	}

	rec, err := h.stageService.Advance(c.Param("id"), stage, actingRole)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	common.SuccessResponse(c, rec, nil)
}

func queryInt(c *gin.Context, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return value
}
