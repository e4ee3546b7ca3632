package minio

import (
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/cardforge/mtgsearch/v1/logger"
)

// MinioClient wraps the MinIO SDK client for reading and writing card exports.
type MinioClient struct {
	client *minio.Client
	cfg    Config
	logger logger.Logger
}

// NewClient connects to MinIO and validates the connection.
//
// Example:
//
//	client, err := minio.NewClient(cfg, log)
//	rc, err := client.Open(ctx, "mtg", "exports/all_mtg_cards.csv")
func NewClient(cfg Config, log logger.Logger) (*MinioClient, error) {
	client, err := connectToMinio(cfg)
	if err != nil {
		return nil, fmt.Errorf("minio: failed to create client: %w", err)
	}

	m := &MinioClient{client: client, cfg: cfg, logger: log}

	if err := m.validateConnection(context.Background()); err != nil {
		return nil, fmt.Errorf("minio: %w", ErrConnectionFailed{Err: err})
	}

	log.Info("MinIO client connected", nil, map[string]interface{}{
		"endpoint": cfg.Connection.Endpoint,
		"bucket":   cfg.Connection.BucketName,
	})
	return m, nil
}

func connectToMinio(cfg Config) (*minio.Client, error) {
	if cfg.Connection.Endpoint == "" {
		return nil, fmt.Errorf("minio endpoint cannot be empty")
	}

	return minio.New(cfg.Connection.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Connection.AccessKeyID, cfg.Connection.SecretAccessKey, ""),
		Secure: cfg.Connection.UseSSL,
		Region: cfg.Connection.Region,
	})
}

// validateConnection prefers a bucket-scoped check so credentials do not
// need ListAllMyBuckets.
func (m *MinioClient) validateConnection(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if bucket := m.cfg.Connection.BucketName; bucket != "" {
		_, err := m.client.BucketExists(ctx, bucket)
		return err
	}

	_, err := m.client.ListBuckets(ctx)
	return err
}
