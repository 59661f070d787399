package upload

import (
	"context"
	"mime/multipart"
	"net/url"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
	"github.com/showcase/catalog-api/app/config"
	"go.uber.org/zap"
)

// MinioStore uploads to an S3-compatible media host and returns the hosted URL.
type MinioStore struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

func NewMinioStore(cfg config.MediaConfig) (*MinioStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "configure media host")
	}

	base := cfg.PublicURL
	if base == "" {
		base = client.EndpointURL().String()
	}
	return &MinioStore{client: client, bucket: cfg.Bucket, publicURL: base}, nil
}

func (s *MinioStore) Upload(ctx context.Context, file *multipart.FileHeader) (string, error) {
	name, err := safeName(file)
	if err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", errors.Wrap(err, "open upload")
	}
	defer src.Close()

	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	info, err := s.client.PutObject(ctx, s.bucket, name, src, file.Size,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "upload to media host")
	}

	zap.L().Info("stored upload on media host",
		zap.String("bucket", info.Bucket),
		zap.String("key", info.Key),
		zap.Int64("size", info.Size))
	return s.objectURL(info.Key), nil
}

func (s *MinioStore) objectURL(key string) string {
	return s.publicURL + "/" + url.PathEscape(s.bucket) + "/" + url.PathEscape(key)
}
