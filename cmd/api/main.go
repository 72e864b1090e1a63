package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/csmqbusy/personal-finances/internal/app"
	"github.com/csmqbusy/personal-finances/internal/domain/entity"
	"github.com/csmqbusy/personal-finances/internal/infrastructure/adapter/api/handler"
	"github.com/csmqbusy/personal-finances/internal/infrastructure/adapter/api/middleware"
	"github.com/csmqbusy/personal-finances/internal/infrastructure/adapter/api/routes"
	timeProvider "github.com/csmqbusy/personal-finances/internal/infrastructure/adapter/time"
	"github.com/csmqbusy/personal-finances/internal/infrastructure/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := app.NewLogger(cfg)
	defer appLogger.Flush()

	tp := timeProvider.NewRealTimeProvider()
	ctx := context.Background()

	dbManager, err := app.OpenDatabase(ctx, cfg, tp, appLogger)
	if err != nil {
		appLogger.Error("Failed to open database", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	defer dbManager.Close()

	charts, closeCharts, err := app.ChartRenderer(cfg, appLogger)
	if err != nil {
		appLogger.Error("Failed to connect to chart broker", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
	defer closeCharts()

	publisher, err := app.SummaryPublisher(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Error("Failed to create sheets publisher", map[string]any{"error": err.Error()})
		os.Exit(1)
	}

	uc := app.NewUseCases(cfg, dbManager.CreateUnitOfWork(), charts, publisher, tp, appLogger)

	// Initialize API handlers
	var kinds []routes.KindHandlers
	for _, kind := range entity.Kinds {
		kinds = append(kinds, routes.KindHandlers{
			Path:         string(kind) + "s",
			Categories:   handler.NewCategoryHandler(kind, uc.Categories, appLogger),
			Transactions: handler.NewTransactionHandler(kind, uc.Transactions, appLogger),
			Summary:      handler.NewSummaryHandler(kind, uc.Transactions, uc.Reports, tp, appLogger),
		})
	}

	handlers := routes.Handlers{
		Auth: handler.NewAuthHandler(uc.Auth, handler.CookieOptions{
			Name:   cfg.Auth.CookieName,
			Secure: cfg.Auth.CookieSecure,
		}, tp, appLogger),
		Goals:  handler.NewGoalHandler(uc.Goals, appLogger),
		Health: handler.NewHealthHandler(dbManager, appLogger),
		Kinds:  kinds,
	}

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, cfg.Server.AllowedOrigins)
	routes.SetupRoutes(router, handlers, middleware.Auth(uc.Auth, cfg.Auth.CookieName, appLogger))

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr": server.Addr,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("Failed to start server", map[string]any{"error": err.Error()})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{"error": err.Error()})
	}

	appLogger.Info("Server exited gracefully", nil)
}
