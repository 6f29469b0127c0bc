// Copyright (c) 2026 Hirevine. All rights reserved.
// Author: dev@hirevine.io

package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/hirevine/hirevine/internal/platform/apperr"
)

// S3Config holds the connection settings for an S3-compatible endpoint.
type S3Config struct {
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
}

// S3Store implements [ObjectStore] against an S3-compatible service.
//
// # Compatibility
//
// Path-style addressing is forced so the store works with Cloudflare R2 and
// MinIO, neither of which supports virtual-host bucket addressing out of the box.
type S3Store struct {
	client *s3.Client
	bucket string
}

// NewS3Store builds the SDK client and verifies the bucket is reachable.
func NewS3Store(ctx context.Context, cfg S3Config, logger *slog.Logger) (*S3Store, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("storage: failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(options *s3.Options) {
		options.BaseEndpoint = &cfg.Endpoint
		options.UsePathStyle = true
	})

	store := &S3Store{client: client, bucket: cfg.Bucket}

	// Fail fast on misconfiguration rather than on the first upload.
	if _, err := client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: &cfg.Bucket}); err != nil {
		return nil, fmt.Errorf("storage: bucket %q not reachable: %w", cfg.Bucket, err)
	}

	logger.Info("object storage connected",
		slog.String("endpoint", cfg.Endpoint),
		slog.String("bucket", cfg.Bucket),
	)

	return store, nil
}

// Check reports whether the bucket is still reachable. Used by readiness probes.
func (store *S3Store) Check(ctx context.Context) error {
	if _, err := store.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: &store.bucket}); err != nil {
		return fmt.Errorf("storage: bucket %q not reachable: %w", store.bucket, err)
	}
	return nil
}

// Put implements [ObjectStore].
func (store *S3Store) Put(ctx context.Context, key, contentType string, body io.Reader, size int64) error {
	_, err := store.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        &store.bucket,
		Key:           &key,
		Body:          body,
		ContentType:   &contentType,
		ContentLength: &size,
	})
	if err != nil {
		return apperr.Upstream(fmt.Errorf("storage: put object: %w", err))
	}
	return nil
}

// Get implements [ObjectStore].
func (store *S3Store) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	output, err := store.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &store.bucket,
		Key:    &key,
	})
	if err != nil {
		return nil, apperr.Upstream(fmt.Errorf("storage: get object: %w", err))
	}
	return output.Body, nil
}

// Delete implements [ObjectStore].
func (store *S3Store) Delete(ctx context.Context, key string) error {
	_, err := store.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: &store.bucket,
		Key:    &key,
	})
	if err != nil {
		return apperr.Upstream(fmt.Errorf("storage: delete object: %w", err))
	}
	return nil
}
