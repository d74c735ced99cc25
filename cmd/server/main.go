package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"planner-backend/internal/api/routes"
	"planner-backend/internal/audit"
	"planner-backend/internal/config"
	"planner-backend/internal/database"
	"planner-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "planner-backend/docs" // This is needed for swag
)

//	@title			Project Planner Backend API
//	@version		1.0
//	@description	Backend API of the consulting project planner: plan snapshots, transactional change-sets and reporting-line checks.

//	@contact.name	API Support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7008
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

const shutdownTimeout = 15 * time.Second

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}

	logger.Setup(cfg.LogLevel)
	logrus.SetOutput(os.Stdout)

	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{MaxOpenConns: cfg.DatabaseMaxConns})
	if err != nil {
		logrus.Fatal("Failed to initialize database: ", err)
	}

	recorder, closeRecorder, err := audit.NewRecorderFromConfig(context.Background(), cfg)
	if err != nil {
		// audit is best effort; keep serving with the log sink
		logrus.WithError(err).Warn("Audit sink unavailable, falling back to log")
		recorder = audit.NewLogRecorder()
	}
	dispatcher := audit.NewDispatcher(recorder, cfg.AuditTimeout())

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router, err := routes.SetupRoutes(db, cfg, dispatcher)
	if err != nil {
		logrus.Fatal("Failed to set up routes: ", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.Infof("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.WithError(err).Error("Server forced to shut down")
	}

	// wait for audit writes of requests that already committed
	dispatcher.Close()
	if err := closeRecorder(); err != nil {
		logrus.WithError(err).Warn("Failed to close audit sink")
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	logrus.Info("Server stopped")
}
