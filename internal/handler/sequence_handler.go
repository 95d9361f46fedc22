package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/studioflow/studioflow-backend/internal/common"
	"github.com/studioflow/studioflow-backend/internal/metrics"
	"github.com/studioflow/studioflow-backend/internal/service"
)

// SequenceHandler exposes the identifier allocator as an admin utility
type SequenceHandler struct {
	sequenceService *service.SequenceService
}

// NewSequenceHandler creates a new SequenceHandler
func NewSequenceHandler(sequenceService *service.SequenceService) *SequenceHandler {
	return &SequenceHandler{sequenceService: sequenceService}
}

// Allocate godoc
// @Summary      Allocate the next identifier in a namespace
// @Description  Unknown namespaces fall back to GEN instead of failing
// @Tags         sequence
// @Produce      json
// @Param        namespace  path  string  true  "Namespace code"
// @Success      200  {object}  common.APIResponse
// @Failure      500  {object}  common.APIResponse
// @Security     BearerAuth
// @Router       /sequence/{namespace} [post]
func (h *SequenceHandler) Allocate(c *gin.Context) {
	identifier, err := h.sequenceService.Allocate(c.Param("namespace"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	metrics.Allocations.WithLabelValues(h.sequenceService.ResolveNamespace(c.Param("namespace"))).Inc()
	common.SuccessResponse(c, gin.H{"identifier": identifier}, nil)
}
