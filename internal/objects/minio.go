// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package objects

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-inventory-sync/internal/config"
	"github.com/MKhiriev/go-inventory-sync/internal/logger"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type minioStorage struct {
	client        *minio.Client
	bucket        string
	region        string
	publicBaseURL string

	logger *logger.Logger
}

// NewMinIOStorage creates an S3-compatible [Storage] backed by minio-go.
// When cfg.PublicBaseURL is empty, public URLs point straight at the bucket
// on cfg.Endpoint.
func NewMinIOStorage(cfg config.Objects, logger *logger.Logger) (Storage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	publicBaseURL := cfg.PublicBaseURL
	if publicBaseURL == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		publicBaseURL = fmt.Sprintf("%s://%s/%s", scheme, cfg.Endpoint, cfg.Bucket)
	}

	return &minioStorage{
		client:        client,
		bucket:        cfg.Bucket,
		region:        cfg.Region,
		publicBaseURL: publicBaseURL,
		logger:        logger,
	}, nil
}

func (m *minioStorage) Init(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if exists {
		return nil
	}

	m.logger.Info().Str("func", "minioStorage.Init").Str("bucket", m.bucket).Msg("bucket does not exist, creating")
	if err := m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{Region: m.region}); err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}

	return nil
}

func (m *minioStorage) Exists(ctx context.Context, name string) (bool, error) {
	name, err := cleanName(name)
	if err != nil {
		return false, err
	}

	_, err = m.client.StatObject(ctx, m.bucket, name, minio.StatObjectOptions{})
	if err == nil {
		return true, nil
	}

	resp := minio.ToErrorResponse(err)
	if resp.Code == "NoSuchKey" || resp.StatusCode == http.StatusNotFound {
		return false, nil
	}

	return false, fmt.Errorf("failed to stat object %q: %w", name, err)
}

func (m *minioStorage) Upload(ctx context.Context, name string, data []byte, contentType string) error {
	name, err := cleanName(name)
	if err != nil {
		return err
	}

	_, err = m.client.PutObject(ctx, m.bucket, name, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload object %q: %w", name, err)
	}

	return nil
}

func (m *minioStorage) List(ctx context.Context, prefix string) ([]string, error) {
	// stops the listing goroutine when we return early
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var names []string
	for obj := range m.client.ListObjects(ctx, m.bucket, minio.ListObjectsOptions{Prefix: prefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list objects under %q: %w", prefix, obj.Err)
		}
		names = append(names, obj.Key)
	}

	return names, nil
}

func (m *minioStorage) DeleteMany(ctx context.Context, names []string) (int, error) {
	if len(names) == 0 {
		return 0, nil
	}

	objectsCh := make(chan minio.ObjectInfo, len(names))
	for _, name := range names {
		objectsCh <- minio.ObjectInfo{Key: name}
	}
	close(objectsCh)

	failed := 0
	var firstErr error
	for removeErr := range m.client.RemoveObjects(ctx, m.bucket, objectsCh, minio.RemoveObjectsOptions{}) {
		failed++
		if firstErr == nil {
			firstErr = fmt.Errorf("failed to remove object %q: %w", removeErr.ObjectName, removeErr.Err)
		}
	}

	return len(names) - failed, firstErr
}

func (m *minioStorage) PublicURL(name string) string {
	return joinURL(m.publicBaseURL, name)
}
