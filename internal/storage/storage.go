package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
	"github.com/uniafy/console-backend/internal/config"
)

var ErrUnsupportedType = errors.New("unsupported file type")

// Uploader stores branding assets (logos, favicons, backgrounds, audio
// cues) and returns a public URL for the stored object.
type Uploader interface {
	Upload(ctx context.Context, r io.Reader, filename, folder string) (string, error)
}

// allowedExtensions covers everything the branding editor uploads.
var allowedExtensions = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".webp": "image/webp",
	".svg":  "image/svg+xml",
	".ico":  "image/x-icon",
	".mp3":  "audio/mpeg",
	".wav":  "audio/wav",
	".ogg":  "audio/ogg",
}

// New builds the uploader named by STORAGE_DRIVER.
func New(cfg *config.Config) (Uploader, error) {
	switch cfg.StorageDriver {
	case "s3":
		return NewS3Uploader(cfg)
	case "local":
		return NewLocalUploader(cfg), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

// objectKey builds a collision-free key preserving the original extension.
// Returns ErrUnsupportedType along with the content type for the extension.
func objectKey(filename, folder string) (key, contentType string, err error) {
	ext := strings.ToLower(path.Ext(filename))
	ct, ok := allowedExtensions[ext]
	if !ok {
		return "", "", fmt.Errorf("%w: %s", ErrUnsupportedType, ext)
	}
	return path.Join(folder, uuid.New().String()+ext), ct, nil
}
