package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/forumx/forumx/internal/storage"
)

// maxImageSize is the 5 MiB upload cap.
const maxImageSize = 5 * 1024 * 1024

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

var (
	ErrNoImage              = errors.New("no image uploaded")
	ErrUnsupportedImageType = errors.New("unsupported file type")
	ErrImageTooLarge        = errors.New("file exceeds 5MB limit")
)

type ImageService struct {
	store storage.ImageStore
}

func NewImageService(store storage.ImageStore) *ImageService {
	return &ImageService{store: store}
}

// Validate checks MIME type and size. It runs before any bytes are read or
// any call to the image host is made.
func (s *ImageService) Validate(contentType string, size int64) error {
	if !allowedImageTypes[contentType] {
		return ErrUnsupportedImageType
	}
	if size > maxImageSize {
		return ErrImageTooLarge
	}
	return nil
}

// Upload revalidates and hands the image to the configured store, returning
// the hosted URL.
func (s *ImageService) Upload(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	if err := s.Validate(contentType, int64(len(data))); err != nil {
		return "", err
	}

	url, err := s.store.Upload(ctx, filename, contentType, data)
	if err != nil {
		return "", fmt.Errorf("image host upload failed: %w", err)
	}
	return url, nil
}
