package minio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/minio/minio-go/v7"
)

// Scheme prefixes object storage locations, e.g. "s3://mtg/all_mtg_cards.csv".
const Scheme = "s3://"

// ErrObjectNotFound is returned when the requested object does not exist.
var ErrObjectNotFound = errors.New("object not found")

// ErrConnectionFailed wraps a failed connection check.
type ErrConnectionFailed struct {
	Err error
}

func (e ErrConnectionFailed) Error() string {
	return fmt.Sprintf("connection failed: %v", e.Err)
}

func (e ErrConnectionFailed) Unwrap() error {
	return e.Err
}

// IsObjectURL reports whether location names an object storage object.
func IsObjectURL(location string) bool {
	return strings.HasPrefix(location, Scheme)
}

// ParseObjectURL splits "s3://bucket/key" into bucket and key. When the bucket
// part is empty ("s3:///key"), defaultBucket is used.
func ParseObjectURL(location, defaultBucket string) (bucket, key string, err error) {
	if !IsObjectURL(location) {
		return "", "", fmt.Errorf("minio: %q is not an %s location", location, Scheme)
	}
	rest := strings.TrimPrefix(location, Scheme)
	bucket, key, found := strings.Cut(rest, "/")
	if !found || key == "" {
		return "", "", fmt.Errorf("minio: %q has no object key", location)
	}
	if bucket == "" {
		bucket = defaultBucket
	}
	if bucket == "" {
		return "", "", fmt.Errorf("minio: %q has no bucket and no default bucket is configured", location)
	}
	return bucket, key, nil
}

// Open returns a streaming reader for an object. The caller must close it.
func (m *MinioClient) Open(ctx context.Context, bucket, objectKey string) (io.ReadCloser, error) {
	obj, err := m.client.GetObject(ctx, bucket, objectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, m.TranslateError(err)
	}

	// GetObject is lazy; Stat surfaces a missing object before reading starts.
	if _, err := obj.Stat(); err != nil {
		_ = obj.Close()
		return nil, m.TranslateError(err)
	}

	m.logger.Debug("Opened object", nil, map[string]interface{}{
		"bucket": bucket,
		"key":    objectKey,
	})
	return obj, nil
}

// OpenURL opens an "s3://bucket/key" location.
func (m *MinioClient) OpenURL(ctx context.Context, location string) (io.ReadCloser, error) {
	bucket, key, err := ParseObjectURL(location, m.cfg.Connection.BucketName)
	if err != nil {
		return nil, err
	}
	return m.Open(ctx, bucket, key)
}

// Put uploads an object, creating the bucket when it does not exist.
func (m *MinioClient) Put(ctx context.Context, bucket, objectKey string, reader io.Reader, size int64) (int64, error) {
	exists, err := m.client.BucketExists(ctx, bucket)
	if err != nil {
		return 0, m.TranslateError(err)
	}
	if !exists {
		if err := m.client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: m.cfg.Connection.Region}); err != nil {
			return 0, m.TranslateError(err)
		}
	}

	info, err := m.client.PutObject(ctx, bucket, objectKey, reader, size, minio.PutObjectOptions{
		ContentType: "text/csv",
	})
	if err != nil {
		return 0, m.TranslateError(err)
	}
	return info.Size, nil
}

// TranslateError maps MinIO errors onto package errors.
func (m *MinioClient) TranslateError(err error) error {
	if err == nil {
		return nil
	}
	resp := minio.ToErrorResponse(err)
	switch {
	case resp.Code == "NoSuchKey", resp.Code == "NoSuchBucket", resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("minio: %w: %s", ErrObjectNotFound, resp.Message)
	default:
		return fmt.Errorf("minio: %w", err)
	}
}
