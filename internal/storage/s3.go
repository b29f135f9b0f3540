package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"

	"github.com/complyradar/complyradar/pkg/logger"
)

// S3Store is the S3-backed ObjectStore.
type S3Store struct {
	client  *s3.Client
	presign *s3.PresignClient
	logger  logger.Logger
}

// NewS3Store creates an S3 store from an AWS configuration.
func NewS3Store(cfg aws.Config) *S3Store {
	return NewS3StoreWithLogger(cfg, logger.GetGlobalLogger())
}

// NewS3StoreWithLogger creates an S3 store with a custom logger.
func NewS3StoreWithLogger(cfg aws.Config, log logger.Logger) *S3Store {
	client := s3.NewFromConfig(cfg)
	return &S3Store{
		client:  client,
		presign: s3.NewPresignClient(client),
		logger:  log,
	}
}

// Put stores an object.
func (s *S3Store) Put(ctx context.Context, bucket, key string, body io.Reader, contentType string) error {
	input := &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   body,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return fmt.Errorf("putting s3://%s/%s: %w", bucket, key, err)
	}
	s.logger.Debug("Stored object", "bucket", bucket, "key", key)
	return nil
}

// Get retrieves an object's full contents.
func (s *S3Store) Get(ctx context.Context, bucket, key string) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, fmt.Errorf("s3://%s/%s: %w", bucket, key, ErrObjectNotFound)
		}
		return nil, fmt.Errorf("getting s3://%s/%s: %w", bucket, key, err)
	}
	defer func() {
		_ = out.Body.Close()
	}()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("reading s3://%s/%s: %w", bucket, key, err)
	}
	return data, nil
}

// ListKeys returns object keys under prefix. S3 already lists in lexical
// order within a page; a single page is enough for the small buckets this
// service works with.
func (s *S3Store) ListKeys(ctx context.Context, bucket, prefix string) ([]string, error) {
	out, err := s.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket: aws.String(bucket),
		Prefix: aws.String(prefix),
	})
	if err != nil {
		return nil, fmt.Errorf("listing s3://%s/%s: %w", bucket, prefix, err)
	}

	keys := make([]string, 0, len(out.Contents))
	for _, obj := range out.Contents {
		keys = append(keys, aws.ToString(obj.Key))
	}
	return keys, nil
}

// PresignGet issues a time-limited signed download URL.
func (s *S3Store) PresignGet(ctx context.Context, bucket, key string, expiry time.Duration) (string, error) {
	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expiry))
	if err != nil {
		return "", fmt.Errorf("presigning s3://%s/%s: %w", bucket, key, err)
	}
	return req.URL, nil
}
