package minio

import "context"

type Remover interface {
	Remove(ctx context.Context, objectName string) error
}
