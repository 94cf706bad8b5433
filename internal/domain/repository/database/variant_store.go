package database

import (
	"context"

	"framecast/internal/domain/model"
)

// VariantStore persists rendered device variants. Writes are last-write-wins
// upserts keyed by (device, blob, layout).
type VariantStore interface {
	Upsert(ctx context.Context, variant *model.DeviceVariant) error
	ListByBlob(ctx context.Context, blobHash string) ([]model.DeviceVariant, error)
	List(ctx context.Context) ([]model.DeviceVariant, error)
	DeleteByBlob(ctx context.Context, blobHash string) (int64, error)
	DeleteAll(ctx context.Context) (int64, error)
}
