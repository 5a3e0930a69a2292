package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/consenthub/consenthub-api/internal/service"
	"github.com/consenthub/consenthub-api/internal/utils"
)

// RecordHandler handles consumer reads of shared record payloads
type RecordHandler struct {
	accessService *service.AccessService
}

// NewRecordHandler creates a new record handler instance
func NewRecordHandler(accessService *service.AccessService) *RecordHandler {
	return &RecordHandler{accessService: accessService}
}

// View handles GET /records?ownerId=&offeringId=
func (h *RecordHandler) View(c *gin.Context) {
	consumerID := utils.GetUserIDFromContext(c)
	ownerID := c.Query("ownerId")
	offeringID := c.Query("offeringId")

	payload, err := h.accessService.ViewRecord(c.Request.Context(), consumerID, ownerID, offeringID)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	utils.SendOKResponse(c, payload)
}
