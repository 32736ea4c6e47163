package service

import (
	"context"
	"strings"

	"github.com/festivize/festivize/internal/logger"
	"github.com/festivize/festivize/internal/store"
	"github.com/festivize/festivize/models"
)

// maxImageSize caps uploads at 10 MiB.
const maxImageSize = 10 << 20

// galleryService implements [GalleryService] on top of the file image store.
type galleryService struct {
	images store.ImageStore
	logger *logger.Logger
}

// NewGalleryService constructs a [GalleryService].
func NewGalleryService(images store.ImageStore, log *logger.Logger) GalleryService {
	log.Debug().Msg("creating gallery service")
	return &galleryService{
		images: images,
		logger: log,
	}
}

func (s *galleryService) ListImages(ctx context.Context) ([]models.Image, error) {
	return s.images.ListImages(ctx)
}

// UploadImage validates the file and stores it. Only common image extensions
// are accepted.
func (s *galleryService) UploadImage(ctx context.Context, fileName string, content []byte) (models.Image, error) {
	if fileName == "" || len(content) == 0 || len(content) > maxImageSize {
		return models.Image{}, ErrInvalidDataProvided
	}
	if !hasImageExtension(fileName) {
		return models.Image{}, ErrInvalidDataProvided
	}

	image, err := s.images.SaveImage(ctx, fileName, content)
	if err != nil {
		return models.Image{}, err
	}

	logger.FromContext(ctx).Info().Str("image", image.ID).Str("fileName", image.FileName).Msg("image uploaded")
	return image, nil
}

func (s *galleryService) OpenImage(ctx context.Context, id string) ([]byte, string, error) {
	return s.images.Open(ctx, id)
}

func hasImageExtension(fileName string) bool {
	lower := strings.ToLower(fileName)
	for _, ext := range []string{".jpg", ".jpeg", ".png", ".gif", ".webp"} {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
