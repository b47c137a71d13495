package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/uniafy/console-backend/internal/config"
)

// LocalUploader writes assets to a directory served by the API itself.
// Intended for development and single-node deployments.
type LocalUploader struct {
	dir     string
	baseURL string
}

func NewLocalUploader(cfg *config.Config) *LocalUploader {
	return &LocalUploader{
		dir:     cfg.LocalAssetsDir,
		baseURL: strings.TrimRight(cfg.PublicURL, "/") + "/assets",
	}
}

func (u *LocalUploader) Upload(ctx context.Context, r io.Reader, filename, folder string) (string, error) {
	key, _, err := objectKey(filename, folder)
	if err != nil {
		return "", err
	}

	dst := filepath.Join(u.dir, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("local storage: %w", err)
	}

	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("local storage: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("local storage: write %s: %w", key, err)
	}

	return u.baseURL + "/" + key, nil
}
