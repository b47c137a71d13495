package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/uniafy/console-backend/internal/branding"
	"github.com/uniafy/console-backend/internal/dto"
	"github.com/uniafy/console-backend/internal/realtime"
	"github.com/uniafy/console-backend/internal/tenant"
)

// AppScope is the selector the dashboard stylesheet binds tokens to. The
// preview uses its own scope so the two never collide.
const AppScope = ":root"

type BrandingHandler struct {
	store    *branding.Store
	sessions *branding.Sessions
	hub      *realtime.Hub
}

func NewBrandingHandler(store *branding.Store, sessions *branding.Sessions, hub *realtime.Hub) *BrandingHandler {
	return &BrandingHandler{store: store, sessions: sessions, hub: hub}
}

// Get returns the resolved branding document every surface renders from.
func (h *BrandingHandler) Get(c *fiber.Ctx) error {
	workspaceID := tenant.GetWorkspaceID(c)
	return c.JSON(h.store.Get(workspaceID))
}

// GetCSS serves the token stylesheet for the dashboard shell.
func (h *BrandingHandler) GetCSS(c *fiber.Ctx) error {
	workspaceID := tenant.GetWorkspaceID(c)
	doc := h.store.Get(workspaceID)
	sheet := branding.ScopedStylesheet(AppScope, branding.Tokens(doc))
	return c.Type("css").SendString(sheet)
}

// GetSEOTitle resolves a page name through the workspace title template.
func (h *BrandingHandler) GetSEOTitle(c *fiber.Ctx) error {
	workspaceID := tenant.GetWorkspaceID(c)
	doc := h.store.Get(workspaceID)

	template := ""
	if doc.SEO != nil {
		template = doc.SEO.TitleTemplate
	}
	return c.JSON(dto.TitleResponse{
		Title: branding.ApplyTitleTemplate(template, c.Query("page")),
	})
}

// OpenDraft seeds a fresh editor draft from the current document.
func (h *BrandingHandler) OpenDraft(c *fiber.Ctx) error {
	workspaceID := tenant.GetWorkspaceID(c)
	doc := h.sessions.Open(workspaceID)
	return c.Status(fiber.StatusCreated).JSON(doc)
}

// GetDraft returns the draft as it currently stands.
func (h *BrandingHandler) GetDraft(c *fiber.Ctx) error {
	workspaceID := tenant.GetWorkspaceID(c)
	doc, err := h.sessions.Get(workspaceID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	return c.JSON(doc)
}

// DiscardDraft drops the draft; the persisted document is untouched.
func (h *BrandingHandler) DiscardDraft(c *fiber.Ctx) error {
	workspaceID := tenant.GetWorkspaceID(c)
	h.sessions.Discard(workspaceID)
	return c.JSON(fiber.Map{"discarded": true})
}

// UpdateSection replaces one section of the draft. The body is a partial
// document carrying only the edited section.
func (h *BrandingHandler) UpdateSection(c *fiber.Ctx) error {
	workspaceID := tenant.GetWorkspaceID(c)
	section, err := branding.ParseSection(c.Params("section"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	var payload branding.Document
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	if err := h.sessions.UpdateSection(workspaceID, section, &payload); err != nil {
		if errors.Is(err, branding.ErrNoDraft) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	doc, _ := h.sessions.Get(workspaceID)
	return c.JSON(doc)
}

// SwitchProfile snapshots the active palette and loads the named one.
func (h *BrandingHandler) SwitchProfile(c *fiber.Ctx) error {
	workspaceID := tenant.GetWorkspaceID(c)
	var req dto.SwitchProfileRequest
	if err := c.BodyParser(&req); err != nil || req.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Profile name is required",
		})
	}

	if err := h.sessions.SwitchProfile(workspaceID, req.Name); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	doc, _ := h.sessions.Get(workspaceID)
	return c.JSON(doc)
}

// ListPresets returns the canned color presets.
func (h *BrandingHandler) ListPresets(c *fiber.Ctx) error {
	return c.JSON(branding.Presets())
}

// ApplyPreset bulk-applies a preset to the draft.
func (h *BrandingHandler) ApplyPreset(c *fiber.Ctx) error {
	workspaceID := tenant.GetWorkspaceID(c)
	var req dto.ApplyPresetRequest
	if err := c.BodyParser(&req); err != nil || req.ID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Preset id is required",
		})
	}

	if err := h.sessions.ApplyPreset(workspaceID, req.ID); err != nil {
		if errors.Is(err, branding.ErrNoDraft) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	doc, _ := h.sessions.Get(workspaceID)
	return c.JSON(doc)
}

// Reset restores a section (or everything) to factory defaults. Destructive
// for the draft, so the request must carry confirm:true. Resetting the
// presets scope is a documented no-op reported as informational.
func (h *BrandingHandler) Reset(c *fiber.Ctx) error {
	workspaceID := tenant.GetWorkspaceID(c)
	var req dto.ResetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if !req.Confirm {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Reset requires confirmation",
		})
	}

	scope, err := branding.ParseSection(req.Scope)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	if err := h.sessions.Reset(workspaceID, scope); err != nil {
		if errors.Is(err, branding.ErrPresetsNotResettable) {
			return c.JSON(fiber.Map{"reset": false, "message": err.Error()})
		}
		if errors.Is(err, branding.ErrNoDraft) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	doc, _ := h.sessions.Get(workspaceID)
	return c.JSON(doc)
}

// Save persists the draft as the workspace's live document.
func (h *BrandingHandler) Save(c *fiber.Ctx) error {
	workspaceID := tenant.GetWorkspaceID(c)
	if err := h.sessions.Save(c.Context(), workspaceID); err != nil {
		if errors.Is(err, branding.ErrNoDraft) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		if errors.Is(err, branding.ErrNotProvisioned) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		slog.Error("branding save failed", "workspace_id", workspaceID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to save branding",
		})
	}

	h.hub.Broadcast(workspaceID, realtime.Event{Type: realtime.EventBrandingUpdated})
	return c.JSON(h.store.Get(workspaceID))
}
