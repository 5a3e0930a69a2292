package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/consenthub/consenthub-api/internal/config"
	"github.com/consenthub/consenthub-api/internal/dao"
	"github.com/consenthub/consenthub-api/internal/database"
	"github.com/consenthub/consenthub-api/internal/router"
	"github.com/consenthub/consenthub-api/internal/service"
)

// Version information (set by build script)
var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	// Set Gin to release mode by default (can be overridden by GIN_MODE env var)
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(logrus.InfoLevel)

	logger.WithFields(logrus.Fields{
		"version":    version,
		"build_date": buildDate,
	}).Info("Starting ConsentHub API Server...")

	// Load configuration
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		logger.WithError(err).Fatal("Failed to load configuration")
	}

	// Set log level from config
	if level, err := logrus.ParseLevel(cfg.Logging.Level); err == nil {
		logger.SetLevel(level)
	}

	logger.WithField("log_level", logger.GetLevel().String()).Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.Initialize(&cfg.Database, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to initialize database")
	}

	// Verify database connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.HealthCheck(ctx); err != nil {
		logger.WithError(err).Fatal("Database health check failed")
	}

	logger.Info("Database connection established successfully")

	// Initialize DAOs
	userDAO := dao.NewUserDAO(db)
	offeringDAO := dao.NewOfferingDAO(db)
	recordDAO := dao.NewRecordDAO(db)
	requestDAO := dao.NewConsentRequestDAO(db)
	auditLogDAO := dao.NewAuditLogDAO(db)

	logger.Info("DAOs initialized successfully")

	// Initialize services
	auditService := service.NewAuditService(auditLogDAO, logger)
	authService := service.NewAuthService(userDAO, offeringDAO, recordDAO, auditService, db, cfg, logger)
	userService := service.NewUserService(userDAO, cfg, logger)
	consentService := service.NewConsentService(requestDAO, userDAO, offeringDAO, auditService, logger)
	accessService := service.NewAccessService(requestDAO, recordDAO, auditService, logger)
	offeringService := service.NewOfferingService(offeringDAO, recordDAO, requestDAO, db, logger)
	dashboardService := service.NewDashboardService(requestDAO, offeringDAO, auditLogDAO, logger)

	logger.Info("Services initialized successfully")

	// Setup router
	ginRouter := router.SetupRouter(cfg, db, &router.Services{
		Auth:      authService,
		User:      userService,
		Consent:   consentService,
		Access:    accessService,
		Offering:  offeringService,
		Audit:     auditService,
		Dashboard: dashboardService,
	})

	// Configure HTTP server
	serverAddr := cfg.Server.GetServerAddress()
	server := &http.Server{
		Addr:           serverAddr,
		Handler:        ginRouter,
		ReadTimeout:    15 * time.Second,
		WriteTimeout:   15 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20, // 1 MB
	}

	// Start server in a goroutine
	go func() {
		logger.WithField("addr", serverAddr).Info("Starting HTTP server...")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Fatal("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.WithError(err).Fatal("Server forced to shutdown")
	}

	if err := db.Close(); err != nil {
		logger.WithError(err).Error("Failed to close database")
	}

	logger.Info("Server exited gracefully")
}
