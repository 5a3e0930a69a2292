package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/consenthub/consenthub-api/internal/models"
	"github.com/consenthub/consenthub-api/internal/service"
	"github.com/consenthub/consenthub-api/internal/utils"
)

// UserHandler handles profile and owner-directory HTTP requests
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GetProfile handles GET /users/profile
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID := utils.GetUserIDFromContext(c)

	user, err := h.userService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	utils.SendOKResponse(c, user)
}

// UpdateProfile handles PUT /users/profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID := utils.GetUserIDFromContext(c)

	var request models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.SendBadRequestError(c, "Invalid request body", err.Error())
		return
	}

	user, err := h.userService.UpdateProfile(c.Request.Context(), userID, &request)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	utils.SendOKResponse(c, user)
}

// ChangePassword handles PUT /users/password
func (h *UserHandler) ChangePassword(c *gin.Context) {
	userID := utils.GetUserIDFromContext(c)

	var request models.ChangePasswordRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.SendBadRequestError(c, "Invalid request body", err.Error())
		return
	}

	if err := h.userService.ChangePassword(c.Request.Context(), userID, &request); err != nil {
		utils.SendAppError(c, err)
		return
	}

	utils.SendOKResponse(c, models.NewSuccessResponse("password updated", nil))
}

// ListOwners handles GET /owners
func (h *UserHandler) ListOwners(c *gin.Context) {
	search := c.Query("email")

	owners, err := h.userService.ListOwners(c.Request.Context(), search)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}

	utils.SendOKResponse(c, owners)
}
