package storage

import (
	"context"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"

	"worklog-service/internal/config"
	"worklog-service/internal/logging"
)

// ObjectStore uploads work log exports to a MinIO (S3 compatible) bucket.
type ObjectStore struct {
	client *minio.Client
	bucket string
}

// NewMinioClient initializes a MinIO client and ensures the bucket exists.
func NewMinioClient(ctx context.Context, cfg *config.Config) (*ObjectStore, error) {
	minioClient, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessKey, cfg.MinioSecretKey, ""),
		Secure: cfg.MinioSSL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "creating minio client")
	}
	exists, err := minioClient.BucketExists(ctx, cfg.MinioBucket)
	if err != nil {
		return nil, errors.Wrapf(err, "checking bucket %s", cfg.MinioBucket)
	}
	if !exists {
		if err := minioClient.MakeBucket(ctx, cfg.MinioBucket, minio.MakeBucketOptions{}); err != nil {
			return nil, errors.Wrapf(err, "creating bucket %s", cfg.MinioBucket)
		}
		logging.Info("created export bucket", "bucket", cfg.MinioBucket)
	}
	return &ObjectStore{client: minioClient, bucket: cfg.MinioBucket}, nil
}

// Upload stores r under key.
func (s *ObjectStore) Upload(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	info, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return err
	}
	logging.Info("export uploaded", "bucket", s.bucket, "key", key, "size", info.Size)
	return nil
}
