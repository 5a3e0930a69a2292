package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/consenthub/consenthub-api/internal/models"
	"github.com/consenthub/consenthub-api/internal/service"
	"github.com/consenthub/consenthub-api/internal/utils"
)

// ConsentRequestHandler handles consent-request lifecycle HTTP requests
type ConsentRequestHandler struct {
	consentService *service.ConsentService
}

// NewConsentRequestHandler creates a new consent request handler instance
func NewConsentRequestHandler(consentService *service.ConsentService) *ConsentRequestHandler {
	return &ConsentRequestHandler{consentService: consentService}
}

// Create handles POST /consent-requests
func (h *ConsentRequestHandler) Create(c *gin.Context) {
	consumerID := utils.GetUserIDFromContext(c)

	var request models.CreateRequestRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.SendBadRequestError(c, "Invalid request body", err.Error())
		return
	}

	response, err := h.consentService.CreateRequest(c.Request.Context(), consumerID, &request)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	utils.SendCreatedResponse(c, response)
}

// List handles GET /consent-requests. Owners see their review queue or their
// active connections depending on ?status=; consumers see their own requests.
func (h *ConsentRequestHandler) List(c *gin.Context) {
	userID := utils.GetUserIDFromContext(c)
	role := utils.GetRoleFromContext(c)

	ctx := c.Request.Context()

	if role == string(models.RoleConsumer) {
		items, err := h.consentService.ListAccessGrants(ctx, userID)
		if err != nil {
			utils.SendAppError(c, err)
			return
		}
		utils.SendOKResponse(c, items)
		return
	}

	status := c.DefaultQuery("status", string(models.StatusPending))
	switch models.RequestStatus(status) {
	case models.StatusPending:
		items, err := h.consentService.ListPending(ctx, userID)
		if err != nil {
			utils.SendAppError(c, err)
			return
		}
		utils.SendOKResponse(c, items)
	case models.StatusApproved:
		items, err := h.consentService.ListConnections(ctx, userID)
		if err != nil {
			utils.SendAppError(c, err)
			return
		}
		utils.SendOKResponse(c, items)
	default:
		utils.SendBadRequestError(c, "Unsupported status filter", "status must be PENDING or APPROVED")
	}
}

// Respond handles PUT /consent-requests/:requestId
func (h *ConsentRequestHandler) Respond(c *gin.Context) {
	ownerID := utils.GetUserIDFromContext(c)
	requestID := c.Param("requestId")

	var request models.RespondRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.SendBadRequestError(c, "Invalid request body", err.Error())
		return
	}

	response, err := h.consentService.Respond(c.Request.Context(), ownerID, requestID, &request)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	utils.SendOKResponse(c, response)
}

// Revoke handles POST /consent-requests/:requestId/revoke
func (h *ConsentRequestHandler) Revoke(c *gin.Context) {
	ownerID := utils.GetUserIDFromContext(c)
	requestID := c.Param("requestId")

	response, err := h.consentService.Revoke(c.Request.Context(), ownerID, requestID)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	utils.SendOKResponse(c, response)
}
