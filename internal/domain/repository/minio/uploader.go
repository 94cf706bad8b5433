package minio

import "context"

// Uploader writes an object and returns its storage path.
type Uploader interface {
	Upload(ctx context.Context, objectName, contentType string, data []byte) (string, error)
}
