package storage

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioStore keeps uploaded images in a local MinIO bucket. It serves as
// the self-hosted alternative to ImgBB, selected with IMAGE_BACKEND=minio.
type MinioStore struct {
	client   *minio.Client
	endpoint string
	bucket   string
}

func NewMinioStore(endpoint, accessKey, secretKey, bucket string) (*MinioStore, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: false,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MinIO: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		log.Printf("Warning: failed to check bucket existence: %v", err)
	} else if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			log.Printf("Warning: failed to create bucket: %v", err)
		} else {
			log.Printf("Created bucket: %s", bucket)
		}
	}

	return &MinioStore{client: client, endpoint: endpoint, bucket: bucket}, nil
}

func (s *MinioStore) Upload(ctx context.Context, filename, contentType string, data []byte) (string, error) {
	objectName := fmt.Sprintf("%s_%s", uuid.NewString(), filename)

	_, err := s.client.PutObject(ctx, s.bucket, objectName,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType},
	)
	if err != nil {
		return "", fmt.Errorf("failed to upload image to storage: %w", err)
	}

	return fmt.Sprintf("http://%s/%s/%s", s.endpoint, s.bucket, objectName), nil
}
