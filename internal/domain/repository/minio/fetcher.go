package minio

import "context"

// Fetcher reads a stored object back in full.
type Fetcher interface {
	Fetch(ctx context.Context, objectName string) ([]byte, error)
}
