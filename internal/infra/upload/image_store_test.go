package upload

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*diskImageStore, string) {
	t.Helper()

	dir := t.TempDir()
	cfg := &config.Config{
		Uploads: &config.UploadsConfig{
			Dir:        filepath.Join(dir, "uploads"),
			PublicPath: "/uploads",
		},
	}
	store := NewDiskImageStore(cfg, slog.New(slog.NewTextHandler(os.Stderr, nil)))

	return store.(*diskImageStore), dir
}

func TestDiskImageStore_Save(t *testing.T) {
	store, dir := newTestStore(t)

	publicPath, err := store.Save(context.Background(), "photo.png", []byte("png-bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(publicPath, "/uploads/"))
	assert.True(t, strings.HasSuffix(publicPath, "_photo.png"))

	// The file lands under the configured directory with the same name
	name := strings.TrimPrefix(publicPath, "/uploads/")
	content, err := os.ReadFile(filepath.Join(dir, "uploads", name))
	require.NoError(t, err)
	assert.Equal(t, []byte("png-bytes"), content)
}

func TestDiskImageStore_SaveEmptyPayload(t *testing.T) {
	store, _ := newTestStore(t)

	publicPath, err := store.Save(context.Background(), "photo.png", nil)
	assert.ErrorIs(t, err, domainerrors.ErrEmptyImage)
	assert.Empty(t, publicPath)
}

func TestDiskImageStore_SaveStripsClientPath(t *testing.T) {
	store, _ := newTestStore(t)

	publicPath, err := store.Save(context.Background(), "../../etc/passwd", []byte("data"))
	require.NoError(t, err)
	assert.NotContains(t, publicPath, "..")
	assert.True(t, strings.HasSuffix(publicPath, "_passwd"))
}

func TestDiskImageStore_SaveFilePermissions(t *testing.T) {
	store, dir := newTestStore(t)

	publicPath, err := store.Save(context.Background(), "photo.png", []byte("data"))
	require.NoError(t, err)

	name := strings.TrimPrefix(publicPath, "/uploads/")
	info, err := os.Stat(filepath.Join(dir, "uploads", name))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())

	dirInfo, err := os.Stat(filepath.Join(dir, "uploads"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), dirInfo.Mode().Perm())
}
