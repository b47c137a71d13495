package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/uniafy/console-backend/internal/dto"
	"github.com/uniafy/console-backend/internal/storage"
	"github.com/uniafy/console-backend/internal/tenant"
)

// 5 MB covers every branding asset; audio cues are the largest.
const maxAssetSize = 5 << 20

type AssetsHandler struct {
	uploader storage.Uploader
}

func NewAssetsHandler(uploader storage.Uploader) *AssetsHandler {
	return &AssetsHandler{uploader: uploader}
}

// Upload stores one branding asset (logo, favicon, background, sound) and
// returns its public URL. Assets live under a per-workspace folder.
func (h *AssetsHandler) Upload(c *fiber.Ctx) error {
	workspaceID := tenant.GetWorkspaceID(c)

	header, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "A file field is required",
		})
	}
	if header.Size > maxAssetSize {
		return c.Status(fiber.StatusRequestEntityTooLarge).JSON(dto.ErrorResponse{
			Error: true, Message: "File exceeds the 5 MB limit",
		})
	}

	f, err := header.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to read uploaded file",
		})
	}
	defer f.Close()

	url, err := h.uploader.Upload(c.Context(), f, header.Filename, "branding/"+workspaceID)
	if err != nil {
		if errors.Is(err, storage.ErrUnsupportedType) {
			return c.Status(fiber.StatusUnsupportedMediaType).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to store asset",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.UploadResponse{URL: url})
}
