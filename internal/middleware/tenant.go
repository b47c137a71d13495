package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/uniafy/console-backend/internal/dto"
	"github.com/uniafy/console-backend/internal/tenant"
)

// Paths that don't require workspace identification.
var workspaceSkipPaths = []string{
	"/api/health",
	"/api/webhooks/", // webhooks use :workspace_id path param instead
}

// WorkspaceMiddleware extracts the workspace id from JWT claims, the
// X-Workspace-ID header, or a query param.
func WorkspaceMiddleware(registry *tenant.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Path()

		for _, skip := range workspaceSkipPaths {
			if strings.HasPrefix(path, skip) {
				return c.Next()
			}
		}

		// 1. Try JWT claim (already authenticated)
		if token, ok := c.Locals("user").(*jwt.Token); ok {
			if claims, ok := token.Claims.(jwt.MapClaims); ok {
				if ws, ok := claims["workspace_id"].(string); ok && ws != "" {
					c.Locals("workspace_id", ws)
					return c.Next()
				}
			}
		}

		// 2. Try X-Workspace-ID header
		ws := c.Get("X-Workspace-ID")
		if ws != "" {
			if !registry.Exists(ws) {
				return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
					Error:   true,
					Message: "Invalid X-Workspace-ID: " + ws,
				})
			}
			c.Locals("workspace_id", ws)
			return c.Next()
		}

		// 3. Try query param (backward compat)
		ws = c.Query("workspace_id")
		if ws != "" {
			if !registry.Exists(ws) {
				return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
					Error:   true,
					Message: "Invalid workspace_id: " + ws,
				})
			}
			c.Locals("workspace_id", ws)
			return c.Next()
		}

		// 4. Missing workspace id
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:   true,
			Message: "X-Workspace-ID header is required",
		})
	}
}
