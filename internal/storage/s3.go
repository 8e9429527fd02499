package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/queuely/queuely-api/internal/config"
)

// Store persists binary assets and returns the object path stored on
// the owning record.
type Store interface {
	PutProfileImage(ctx context.Context, body []byte) (string, error)
}

type S3Store struct {
	client *s3.Client
	bucket string
}

func NewS3(cfg *config.Config) *S3Store {
	awsCfg := aws.Config{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})

	return &S3Store{
		client: client,
		bucket: cfg.S3Bucket,
	}
}

func (s *S3Store) PutProfileImage(ctx context.Context, body []byte) (string, error) {
	key := fmt.Sprintf("profiles/%s.webp", uuid.NewString())

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", err
	}

	return key, nil
}

var _ Store = (*S3Store)(nil)
