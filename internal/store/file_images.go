// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/festivize/festivize/internal/logger"
	"github.com/festivize/festivize/models"
	"github.com/google/uuid"
)

// fileImageStore keeps uploaded photos on the local filesystem. Each file is
// stored as "<uuid>_<sanitized name>" inside the configured directory, so the
// directory listing itself is the index and no database table is involved.
type fileImageStore struct {
	dir    string
	logger *logger.Logger
}

// NewFileImageStore constructs an [ImageStore] rooted at dir, creating the
// directory if it does not exist.
func NewFileImageStore(dir string, log *logger.Logger) (ImageStore, error) {
	if dir == "" {
		dir = "uploads"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create images dir: %w", err)
	}

	log.Debug().Str("dir", dir).Msg("creating file image store")
	return &fileImageStore{dir: dir, logger: log}, nil
}

func (s *fileImageStore) SaveImage(ctx context.Context, fileName string, content []byte) (models.Image, error) {
	log := logger.FromContext(ctx)

	id := uuid.NewString()
	name := sanitizeFileName(fileName)
	path := filepath.Join(s.dir, id+"_"+name)

	if err := os.WriteFile(path, content, 0o644); err != nil {
		log.Err(err).Str("func", "*fileImageStore.SaveImage").Msg("error: write error")
		return models.Image{}, fmt.Errorf("write image file: %w", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return models.Image{}, fmt.Errorf("stat image file: %w", err)
	}

	return models.Image{
		ID:         id,
		FileName:   name,
		URL:        "/images/" + id,
		UploadedAt: info.ModTime(),
	}, nil
}

func (s *fileImageStore) ListImages(ctx context.Context) ([]models.Image, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read images dir: %w", err)
	}

	var images []models.Image
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		id, name, ok := splitStoredName(entry.Name())
		if !ok {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		images = append(images, models.Image{
			ID:         id,
			FileName:   name,
			URL:        "/images/" + id,
			UploadedAt: info.ModTime(),
		})
	}

	sort.Slice(images, func(i, j int) bool {
		return images[i].UploadedAt.After(images[j].UploadedAt)
	})

	return images, nil
}

func (s *fileImageStore) Open(ctx context.Context, id string) ([]byte, string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, "", fmt.Errorf("read images dir: %w", err)
	}

	for _, entry := range entries {
		storedID, name, ok := splitStoredName(entry.Name())
		if !ok || storedID != id {
			continue
		}
		content, err := os.ReadFile(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			return nil, "", fmt.Errorf("read image file: %w", err)
		}
		return content, name, nil
	}

	return nil, "", ErrRecordNotFound
}

// sanitizeFileName strips path components and characters that would break the
// on-disk "<uuid>_<name>" encoding.
func sanitizeFileName(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "_", "-")
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "upload"
	}
	return name
}

// splitStoredName parses "<uuid>_<name>" back into its parts.
func splitStoredName(stored string) (id, name string, ok bool) {
	idx := strings.Index(stored, "_")
	if idx <= 0 || idx == len(stored)-1 {
		return "", "", false
	}
	id, name = stored[:idx], stored[idx+1:]
	if _, err := uuid.Parse(id); err != nil {
		return "", "", false
	}
	return id, name, true
}
