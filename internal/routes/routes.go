package routes

import (
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/uniafy/console-backend/internal/config"
	"github.com/uniafy/console-backend/internal/handlers"
	"github.com/uniafy/console-backend/internal/middleware"
	"github.com/uniafy/console-backend/internal/realtime"
	"github.com/uniafy/console-backend/internal/tenant"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	hub *realtime.Hub,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	brandingHandler *handlers.BrandingHandler,
	previewHandler *handlers.PreviewHandler,
	assetsHandler *handlers.AssetsHandler,
	billingHandler *handlers.BillingHandler,
	webhookHandler *handlers.WebhookHandler,
	legalHandler *handlers.LegalHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Health (no workspace required)
	api.Get("/health", healthHandler.Check)

	// Branding — public, workspace-scoped via X-Workspace-ID header. Every
	// themed surface (shell, login, legal pages, emails) reads these.
	api.Get("/branding", brandingHandler.Get)
	api.Get("/branding/css", brandingHandler.GetCSS)
	api.Get("/branding/seo/title", brandingHandler.GetSEOTitle)

	// Legal pages (themed per workspace)
	api.Get("/legal/privacy", legalHandler.PrivacyPolicy)
	api.Get("/legal/terms", legalHandler.TermsOfService)

	// Auth — public; stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	// Protected routes (JWT required) - applied per route so public routes
	// stay unaffected
	api.Post("/auth/logout", middleware.JWTProtected(cfg), authHandler.Logout)
	api.Delete("/auth/account", middleware.JWTProtected(cfg), authHandler.DeleteAccount)
	api.Get("/billing/status", middleware.JWTProtected(cfg), billingHandler.Status)

	// Branding editor (protected + admin required). Draft operations act on
	// the in-memory working copy; only /save touches the database.
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired(db, cfg))
	admin.Post("/branding/draft", brandingHandler.OpenDraft)
	admin.Get("/branding/draft", brandingHandler.GetDraft)
	admin.Delete("/branding/draft", brandingHandler.DiscardDraft)
	admin.Put("/branding/draft/:section", brandingHandler.UpdateSection)
	admin.Post("/branding/draft/profile", brandingHandler.SwitchProfile)
	admin.Post("/branding/draft/preset", brandingHandler.ApplyPreset)
	admin.Post("/branding/draft/reset", brandingHandler.Reset)
	admin.Get("/branding/draft/preview", previewHandler.Render)
	admin.Get("/branding/presets", brandingHandler.ListPresets)
	admin.Post("/branding/save", brandingHandler.Save)
	admin.Post("/assets", assetsHandler.Upload)

	// Webhooks — per-workspace auth via :workspace_id path param (no JWT)
	webhooks := api.Group("/webhooks")
	webhooks.Post("/billing/:workspace_id", webhookHandler.HandleBilling)

	// Realtime push. Workspace resolution happens before the upgrade, so
	// the connection lands in the right group.
	api.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			c.Locals("ws_workspace_id", tenant.GetWorkspaceID(c))
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	api.Get("/ws", websocket.New(func(c *websocket.Conn) {
		workspaceID, _ := c.Locals("ws_workspace_id").(string)
		hub.Serve(workspaceID, c)
	}))
}
