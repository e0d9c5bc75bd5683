// Package storage implements blob storage backed by S3-compatible services.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"boutique/config"
	"boutique/internal/domain/service"
	"boutique/internal/errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// s3ImageStore implements the service.ImageStore interface on top of an
// S3-compatible bucket. A custom BaseEndpoint points it at MinIO in
// development; without one it talks to AWS directly.
type s3ImageStore struct {
	client    *s3.Client
	bucket    string
	keyPrefix string
	publicURL string
}

// NewS3ImageStore is the constructor for s3ImageStore.
func NewS3ImageStore(cfg *config.Config) (service.ImageStore, error) {
	if cfg.S3 == nil || cfg.S3.Bucket == "" {
		return nil, errors.New("s3 bucket must be configured")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.S3.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3.AccessKeyID,
			cfg.S3.SecretAccessKey,
			"",
		)))
	if err != nil {
		return nil, errors.Wrap(err, "failed to load aws config")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3.BaseEndpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3.BaseEndpoint)
			// MinIO and most local S3 stands only serve path-style URLs.
			o.UsePathStyle = true
		}
	})

	return &s3ImageStore{
		client:    client,
		bucket:    cfg.S3.Bucket,
		keyPrefix: strings.Trim(cfg.S3.KeyPrefix, "/"),
		publicURL: buildPublicBaseURL(cfg.S3),
	}, nil
}

// Upload stores the image bytes under a fresh random key and returns the
// public URL. The original filename only contributes its extension.
func (s *s3ImageStore) Upload(ctx context.Context, data []byte, filename, contentType string) (string, error) {
	key := s.buildKey(filename)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to upload image")
	}

	return s.publicURL + "/" + key, nil
}

func (s *s3ImageStore) buildKey(filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	key := uuid.New().String() + ext
	if s.keyPrefix != "" {
		key = s.keyPrefix + "/" + key
	}

	return key
}

func buildPublicBaseURL(cfg *config.S3Config) string {
	if cfg.BaseEndpoint != "" {
		return strings.TrimSuffix(cfg.BaseEndpoint, "/") + "/" + cfg.Bucket
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
}
