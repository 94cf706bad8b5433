package minio

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
)

type Fetcher struct {
	minioClient *minio.Client
	cfg         FetcherConfig
}

func NewFetcher(minioClient *minio.Client, cfg FetcherConfig) *Fetcher {
	return &Fetcher{
		minioClient: minioClient,
		cfg:         cfg,
	}
}

func (f *Fetcher) Fetch(ctx context.Context, objectName string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, time.Duration(f.cfg.Timeout)*time.Millisecond)
	defer cancel()

	obj, err := f.minioClient.GetObject(ctx, f.cfg.Bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", objectName, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", objectName, err)
	}

	return data, nil
}
