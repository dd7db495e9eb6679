package storage

import "context"

// ImageStore uploads an image and returns the publicly reachable URL it is
// hosted at. Implementations: ImgBB (hosted) and MinIO (self-hosted).
type ImageStore interface {
	Upload(ctx context.Context, filename, contentType string, data []byte) (string, error)
}
