package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/consenthub/consenthub-api/internal/models"
	"github.com/consenthub/consenthub-api/internal/service"
	"github.com/consenthub/consenthub-api/internal/utils"
)

// DashboardHandler handles dashboard stat HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler instance
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Stats handles GET /dashboard/stats, dispatching on the caller's role
func (h *DashboardHandler) Stats(c *gin.Context) {
	userID := utils.GetUserIDFromContext(c)
	role := utils.GetRoleFromContext(c)

	ctx := c.Request.Context()

	if role == string(models.RoleOwner) {
		stats, err := h.dashboardService.OwnerStats(ctx, userID)
		if err != nil {
			utils.SendAppError(c, err)
			return
		}
		utils.SendOKResponse(c, stats)
		return
	}

	stats, err := h.dashboardService.ConsumerStats(ctx, userID)
	if err != nil {
		utils.SendAppError(c, err)
		return
	}
	utils.SendOKResponse(c, stats)
}
