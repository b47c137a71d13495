package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/uniafy/console-backend/internal/branding"
	"github.com/uniafy/console-backend/internal/dto"
	"github.com/uniafy/console-backend/internal/tenant"
)

type PreviewHandler struct {
	sessions *branding.Sessions
}

func NewPreviewHandler(sessions *branding.Sessions) *PreviewHandler {
	return &PreviewHandler{sessions: sessions}
}

// Render serves the live preview of the open draft. The markup is fully
// self-contained and scoped, so the editor embeds it directly.
func (h *PreviewHandler) Render(c *fiber.Ctx) error {
	workspaceID := tenant.GetWorkspaceID(c)
	doc, err := h.sessions.Get(workspaceID)
	if err != nil {
		if errors.Is(err, branding.ErrNoDraft) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to load draft",
		})
	}

	html, err := branding.RenderPreview(doc, branding.PreviewOptions{
		Device: c.Query("device", branding.DeviceDesktop),
		Screen: c.Query("screen", branding.ScreenShell),
	})
	if err != nil {
		slog.Error("preview render failed", "workspace_id", workspaceID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to render preview",
		})
	}

	return c.Type("html").SendString(html)
}
