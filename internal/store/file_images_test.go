package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/festivize/festivize/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileImageStore_SaveAndOpen(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileImageStore(dir, logger.Nop())
	require.NoError(t, err)

	img, err := store.SaveImage(context.Background(), "stage_photo.jpg", []byte("jpeg-bytes"))
	require.NoError(t, err)

	assert.NotEmpty(t, img.ID)
	assert.Equal(t, "stage-photo.jpg", img.FileName, "underscores collide with the on-disk encoding")
	assert.Equal(t, "/images/"+img.ID, img.URL)

	content, name, err := store.Open(context.Background(), img.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), content)
	assert.Equal(t, "stage-photo.jpg", name)
}

func TestFileImageStore_OpenUnknownID(t *testing.T) {
	store, err := NewFileImageStore(t.TempDir(), logger.Nop())
	require.NoError(t, err)

	_, _, err = store.Open(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestFileImageStore_ListSkipsForeignFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileImageStore(dir, logger.Nop())
	require.NoError(t, err)

	_, err = store.SaveImage(context.Background(), "a.png", []byte("a"))
	require.NoError(t, err)
	_, err = store.SaveImage(context.Background(), "b.png", []byte("b"))
	require.NoError(t, err)

	// Files not in the "<uuid>_<name>" shape are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "not-a-uuid_c.png"), []byte("c"), 0o644))

	images, err := store.ListImages(context.Background())
	require.NoError(t, err)
	assert.Len(t, images, 2)
}

func TestFileImageStore_SanitizesPathComponents(t *testing.T) {
	store, err := NewFileImageStore(t.TempDir(), logger.Nop())
	require.NoError(t, err)

	img, err := store.SaveImage(context.Background(), "../../etc/passwd", []byte("nope"))
	require.NoError(t, err)
	assert.Equal(t, "passwd", img.FileName)
}
