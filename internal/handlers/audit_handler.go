package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/consenthub/consenthub-api/internal/service"
	"github.com/consenthub/consenthub-api/internal/utils"
)

// AuditHandler handles audit trail HTTP requests
type AuditHandler struct {
	auditService *service.AuditService
}

// NewAuditHandler creates a new audit handler instance
func NewAuditHandler(auditService *service.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

// List handles GET /audit. Every user sees only their own trail.
func (h *AuditHandler) List(c *gin.Context) {
	actorID := utils.GetUserIDFromContext(c)

	entries, err := h.auditService.ListForActor(c.Request.Context(), actorID)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	utils.SendOKResponse(c, entries)
}
