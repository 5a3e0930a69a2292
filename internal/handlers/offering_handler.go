package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/consenthub/consenthub-api/internal/models"
	"github.com/consenthub/consenthub-api/internal/service"
	"github.com/consenthub/consenthub-api/internal/utils"
)

// OfferingHandler handles offering management and discovery HTTP requests
type OfferingHandler struct {
	offeringService *service.OfferingService
}

// NewOfferingHandler creates a new offering handler instance
func NewOfferingHandler(offeringService *service.OfferingService) *OfferingHandler {
	return &OfferingHandler{offeringService: offeringService}
}

// Create handles POST /offerings
func (h *OfferingHandler) Create(c *gin.Context) {
	ownerID := utils.GetUserIDFromContext(c)

	var request models.CreateOfferingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.SendBadRequestError(c, "Invalid request body", err.Error())
		return
	}

	offering, err := h.offeringService.Create(c.Request.Context(), ownerID, &request)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	utils.SendCreatedResponse(c, offering)
}

// List handles GET /offerings
func (h *OfferingHandler) List(c *gin.Context) {
	ownerID := utils.GetUserIDFromContext(c)

	offerings, err := h.offeringService.ListForOwner(c.Request.Context(), ownerID)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	utils.SendOKResponse(c, offerings)
}

// ListCatalog handles GET /owners/:ownerId/offerings
func (h *OfferingHandler) ListCatalog(c *gin.Context) {
	ownerID := c.Param("ownerId")

	offerings, err := h.offeringService.ListCatalog(c.Request.Context(), ownerID)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	utils.SendOKResponse(c, offerings)
}

// Update handles PUT /offerings/:offeringId
func (h *OfferingHandler) Update(c *gin.Context) {
	ownerID := utils.GetUserIDFromContext(c)
	offeringID := c.Param("offeringId")

	var request models.UpdateOfferingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.SendBadRequestError(c, "Invalid request body", err.Error())
		return
	}

	offering, err := h.offeringService.Update(c.Request.Context(), ownerID, offeringID, &request)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	utils.SendOKResponse(c, offering)
}

// Delete handles DELETE /offerings/:offeringId
func (h *OfferingHandler) Delete(c *gin.Context) {
	ownerID := utils.GetUserIDFromContext(c)
	offeringID := c.Param("offeringId")

	if err := h.offeringService.Delete(c.Request.Context(), ownerID, offeringID); err != nil {
		utils.SendAppError(c, err)
		return
	}

	utils.SendNoContentResponse(c)
}

// UpsertRecord handles PUT /offerings/:offeringId/record
func (h *OfferingHandler) UpsertRecord(c *gin.Context) {
	ownerID := utils.GetUserIDFromContext(c)
	offeringID := c.Param("offeringId")

	var request models.UpsertRecordRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.SendBadRequestError(c, "Invalid request body", err.Error())
		return
	}

	if err := h.offeringService.UpsertRecord(c.Request.Context(), ownerID, offeringID, &request); err != nil {
		utils.SendAppError(c, err)
		return
	}

	utils.SendOKResponse(c, models.NewSuccessResponse("record stored", nil))
}
