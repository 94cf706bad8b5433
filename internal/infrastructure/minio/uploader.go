package minio

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"

	"framecast/pkg/logger"
)

type Uploader struct {
	minioClient *minio.Client
	cfg         UploaderConfig
}

func NewUploader(minioClient *minio.Client, cfg UploaderConfig) *Uploader {
	return &Uploader{
		minioClient: minioClient,
		cfg:         cfg,
	}
}

// Upload writes data under objectName in the configured bucket and returns
// the bucket-relative storage path. Writing the same objectName again
// overwrites in place, which keeps fan-out re-runs idempotent.
func (u *Uploader) Upload(ctx context.Context, objectName, contentType string, data []byte) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(u.cfg.Timeout)*time.Millisecond)
	defer cancel()

	_, err := u.minioClient.PutObject(ctx, u.cfg.Bucket, objectName,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		logger.Error("object upload failed", "object", objectName, "err", err)

		return "", fmt.Errorf("upload %s: %w", objectName, err)
	}

	return objectName, nil
}
