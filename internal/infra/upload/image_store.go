// Package upload provides the filesystem-backed implementation of the
// product image store.
package upload

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"time"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

// diskImageStore writes uploaded images under a local directory served as
// static content. Saved files are named with a unix timestamp prefix so a
// re-upload never clobbers an earlier image; replaced images stay on disk.
type diskImageStore struct {
	dir        string
	publicPath string
	logger     *slog.Logger
}

// NewDiskImageStore is the constructor for diskImageStore.
func NewDiskImageStore(cfg *config.Config, logger *slog.Logger) service.ImageStore {
	return &diskImageStore{
		dir:        cfg.Uploads.Dir,
		publicPath: cfg.Uploads.PublicPath,
		logger:     logger,
	}
}

// Save writes content to disk and returns the public relative path.
func (s *diskImageStore) Save(ctx context.Context, filename string, content []byte) (string, error) {
	if len(content) == 0 {
		return "", domainerrors.ErrEmptyImage
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", errors.Wrap(err, "failed to create upload directory")
	}
	if err := os.Chmod(s.dir, 0o755); err != nil {
		return "", errors.Wrap(err, "failed to set upload directory permissions")
	}

	// Base strips any client-supplied path components.
	name := fmt.Sprintf("%d_%s", time.Now().Unix(), filepath.Base(filename))
	target := filepath.Join(s.dir, name)

	if err := os.WriteFile(target, content, 0o644); err != nil {
		return "", errors.Wrap(err, "failed to write image file")
	}

	s.logger.LogAttrs(ctx, slog.LevelInfo, "Saved product image",
		slog.String("file", target),
		slog.Int("bytes", len(content)),
	)

	return path.Join(s.publicPath, name), nil
}
