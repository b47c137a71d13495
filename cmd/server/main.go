package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/uniafy/console-backend/internal/branding"
	"github.com/uniafy/console-backend/internal/config"
	"github.com/uniafy/console-backend/internal/database"
	"github.com/uniafy/console-backend/internal/handlers"
	"github.com/uniafy/console-backend/internal/logging"
	"github.com/uniafy/console-backend/internal/middleware"
	"github.com/uniafy/console-backend/internal/realtime"
	"github.com/uniafy/console-backend/internal/routes"
	"github.com/uniafy/console-backend/internal/services"
	"github.com/uniafy/console-backend/internal/storage"
	"github.com/uniafy/console-backend/internal/tenant"
)

func main() {
	// Structured logging (JSON to stdout)
	logging.Setup()

	cfg := config.Load()

	if cfg.JWTSecret == "" {
		slog.Error("JWT_SECRET environment variable is required")
		os.Exit(1)
	}
	if cfg.DBPassword == "" {
		slog.Error("DB_PASSWORD environment variable is required")
		os.Exit(1)
	}

	// Workspace registry
	registry, err := tenant.LoadFromFile(cfg.WorkspacesConfigPath)
	if err != nil {
		slog.Error("failed to load workspace registry", "path", cfg.WorkspacesConfigPath, "error", err)
		os.Exit(1)
	}
	slog.Info("workspace registry loaded", "workspaces", len(registry.All()))

	// Database
	if err := database.Connect(cfg); err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	if err := database.Migrate(); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	// PostgreSQL log handler (ERROR+ async batch)
	pgLogHandler := logging.NewPGHandler(database.DB)
	slog.SetDefault(slog.New(logging.NewMultiHandler(
		slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		pgLogHandler,
	)))

	// Log cleanup (30-day retention)
	cleanupDone := make(chan struct{})
	logging.StartCleanup(database.DB, cleanupDone)

	// Branding: seed rows, then warm the store so the first request never
	// renders unthemed.
	brandingRepo := branding.NewGormRepository(database.DB)
	if err := brandingRepo.Provision(registry.IDs()); err != nil {
		slog.Error("branding provisioning failed", "error", err)
		os.Exit(1)
	}

	store := branding.NewStore(brandingRepo)
	for _, workspaceID := range registry.IDs() {
		if err := store.Refresh(context.Background(), workspaceID); err != nil {
			slog.Error("initial branding load failed", "workspace_id", workspaceID, "error", err)
		}
	}
	sessions := branding.NewSessions(store, brandingRepo)

	hub := realtime.NewHub()
	store.Subscribe(func(workspaceID string, _ *branding.Document) {
		hub.Broadcast(workspaceID, realtime.Event{Type: realtime.EventBrandingUpdated})
	})

	// Asset storage
	uploader, err := storage.New(cfg)
	if err != nil {
		slog.Error("storage init failed", "driver", cfg.StorageDriver, "error", err)
		os.Exit(1)
	}

	// Services
	authService := services.NewAuthService(database.DB, cfg)
	billingService := services.NewBillingService(database.DB)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, registry)
	healthHandler := handlers.NewHealthHandler(registry)
	brandingHandler := handlers.NewBrandingHandler(store, sessions, hub)
	previewHandler := handlers.NewPreviewHandler(sessions)
	assetsHandler := handlers.NewAssetsHandler(uploader)
	billingHandler := handlers.NewBillingHandler(billingService)
	webhookHandler := handlers.NewWebhookHandler(billingService, registry, hub)
	legalHandler := handlers.NewLegalHandler(registry, store)

	// Sentry error tracking
	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              dsn,
			EnableTracing:    true,
			TracesSampleRate: 0.2,
			Environment:      os.Getenv("APP_ENV"),
		}); err != nil {
			slog.Error("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Fiber app
	app := fiber.New(fiber.Config{
		BodyLimit:    8 * 1024 * 1024,
		ErrorHandler: customErrorHandler,
	})

	// Sentry middleware
	app.Use(sentryfiber.New(sentryfiber.Options{
		Repanic:         true,
		WaitForDelivery: false,
	}))

	// Global middleware
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path}\n",
	}))
	app.Use(middleware.CORS(cfg))
	app.Use(func(c *fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		return c.Next()
	})
	app.Use(middleware.WorkspaceMiddleware(registry))

	// Locally stored assets are served by the API itself.
	if cfg.StorageDriver == "local" {
		app.Static("/assets", cfg.LocalAssetsDir)
	}

	// Routes
	routes.Setup(app, cfg, database.DB, hub,
		authHandler, healthHandler, brandingHandler, previewHandler,
		assetsHandler, billingHandler, webhookHandler, legalHandler)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "port", cfg.Port)
		if err := app.Listen(":" + cfg.Port); err != nil {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-quit
	slog.Info("shutting down server...")

	close(cleanupDone)
	pgLogHandler.Stop()
	sentry.Flush(2 * time.Second)

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}

	// Close database connections
	if sqlDB, err := database.DB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			slog.Error("database close error", "error", err)
		}
	}

	slog.Info("server stopped")
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Only expose error details for client errors (4xx), not server errors (5xx)
	if code >= 500 {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error"
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
