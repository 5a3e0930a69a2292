package router

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/consenthub/consenthub-api/internal/config"
	"github.com/consenthub/consenthub-api/internal/database"
	"github.com/consenthub/consenthub-api/internal/handlers"
	"github.com/consenthub/consenthub-api/internal/middleware"
	"github.com/consenthub/consenthub-api/internal/models"
	"github.com/consenthub/consenthub-api/internal/service"
)

// Services bundles everything the router needs wired in
type Services struct {
	Auth      *service.AuthService
	User      *service.UserService
	Consent   *service.ConsentService
	Access    *service.AccessService
	Offering  *service.OfferingService
	Audit     *service.AuditService
	Dashboard *service.DashboardService
}

// SetupRouter configures all API routes
func SetupRouter(cfg *config.Config, db *database.DB, svcs *Services) *gin.Engine {
	router := gin.Default()

	if cfg.CORS.Enabled {
		router.Use(corsMiddleware(&cfg.CORS))
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		if err := db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// Create handlers
	authHandler := handlers.NewAuthHandler(svcs.Auth)
	userHandler := handlers.NewUserHandler(svcs.User)
	consentHandler := handlers.NewConsentRequestHandler(svcs.Consent)
	recordHandler := handlers.NewRecordHandler(svcs.Access)
	offeringHandler := handlers.NewOfferingHandler(svcs.Offering)
	auditHandler := handlers.NewAuditHandler(svcs.Audit)
	dashboardHandler := handlers.NewDashboardHandler(svcs.Dashboard)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public auth routes
		v1.POST("/auth/register", authHandler.Register)
		v1.POST("/auth/login", authHandler.Login)

		// Everything below requires a bearer token
		authed := v1.Group("")
		authed.Use(middleware.Authenticate(cfg.Auth.TokenSecret))
		{
			authed.GET("/users/profile", userHandler.GetProfile)
			authed.PUT("/users/profile", userHandler.UpdateProfile)
			authed.PUT("/users/password", userHandler.ChangePassword)

			authed.GET("/audit", auditHandler.List)
			authed.GET("/dashboard/stats", dashboardHandler.Stats)
			authed.GET("/consent-requests", consentHandler.List)

			// Consumer-side routes
			consumer := authed.Group("")
			consumer.Use(middleware.RequireRole(models.RoleConsumer))
			{
				consumer.GET("/owners", userHandler.ListOwners)
				consumer.GET("/owners/:ownerId/offerings", offeringHandler.ListCatalog)
				consumer.POST("/consent-requests", consentHandler.Create)
				consumer.GET("/records", recordHandler.View)
			}

			// Owner-side routes
			owner := authed.Group("")
			owner.Use(middleware.RequireRole(models.RoleOwner))
			{
				owner.PUT("/consent-requests/:requestId", consentHandler.Respond)
				owner.POST("/consent-requests/:requestId/revoke", consentHandler.Revoke)

				offerings := owner.Group("/offerings")
				{
					offerings.POST("", offeringHandler.Create)
					offerings.GET("", offeringHandler.List)
					offerings.PUT("/:offeringId", offeringHandler.Update)
					offerings.DELETE("/:offeringId", offeringHandler.Delete)
					offerings.PUT("/:offeringId/record", offeringHandler.UpsertRecord)
				}
			}
		}
	}

	return router
}

func corsMiddleware(cfg *config.CORSConfig) gin.HandlerFunc {
	allowedOrigins := cfg.AllowedOrigins
	allowedMethods := strings.Join(cfg.AllowedMethods, ", ")
	allowedHeaders := strings.Join(cfg.AllowedHeaders, ", ")

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && originAllowed(allowedOrigins, origin) {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Methods", allowedMethods)
			c.Header("Access-Control-Allow-Headers", allowedHeaders)
			if cfg.AllowCredentials {
				c.Header("Access-Control-Allow-Credentials", "true")
			}
			if cfg.MaxAge > 0 {
				c.Header("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
			}
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}

func originAllowed(allowed []string, origin string) bool {
	for _, a := range allowed {
		if a == "*" || a == origin {
			return true
		}
	}
	return false
}
