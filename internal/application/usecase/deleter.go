package usecase

import (
	"context"
	"errors"

	"framecast/internal/domain/entity"
	"framecast/internal/domain/repository/database"
	minioRepo "framecast/internal/domain/repository/minio"
	"framecast/pkg/logger"
)

// Deleter removes blobs and their dependent variants. Object-store removal
// is best-effort: a missing artifact never blocks record cleanup.
type Deleter struct {
	blobs    database.BlobStore
	variants database.VariantStore
	remover  minioRepo.Remover
}

func NewDeleter(blobs database.BlobStore, variants database.VariantStore,
	remover minioRepo.Remover,
) *Deleter {
	return &Deleter{
		blobs:    blobs,
		variants: variants,
		remover:  remover,
	}
}

// DeleteBlob removes one blob by hash, cascading to its variants. Returns
// false when the hash is unknown.
func (d *Deleter) DeleteBlob(ctx context.Context, hash string) (bool, error) {
	blob, err := d.blobs.GetByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return false, nil
		}

		return false, err
	}

	variants, err := d.variants.ListByBlob(ctx, hash)
	if err != nil {
		return false, err
	}
	for _, variant := range variants {
		d.removeObject(ctx, variant.StoragePath)
	}

	if _, err := d.variants.DeleteByBlob(ctx, hash); err != nil {
		return false, err
	}

	d.removeObject(ctx, blob.StoragePath)

	if err := d.blobs.Delete(ctx, hash); err != nil {
		return false, err
	}

	return true, nil
}

// DeleteAll wipes every blob and variant and reports the exact counts
// removed.
func (d *Deleter) DeleteAll(ctx context.Context) (entity.DeleteAllResult, error) {
	blobs, err := d.blobs.List(ctx)
	if err != nil {
		return entity.DeleteAllResult{}, err
	}
	variants, err := d.variants.List(ctx)
	if err != nil {
		return entity.DeleteAllResult{}, err
	}

	for _, variant := range variants {
		d.removeObject(ctx, variant.StoragePath)
	}
	for _, blob := range blobs {
		d.removeObject(ctx, blob.StoragePath)
	}

	variantCount, err := d.variants.DeleteAll(ctx)
	if err != nil {
		return entity.DeleteAllResult{}, err
	}
	blobCount, err := d.blobs.DeleteAll(ctx)
	if err != nil {
		return entity.DeleteAllResult{}, err
	}

	logger.Info("bulk delete finished", "blobs", blobCount, "variants", variantCount)

	return entity.DeleteAllResult{Blobs: blobCount, Variants: variantCount}, nil
}

func (d *Deleter) removeObject(ctx context.Context, storagePath string) {
	if storagePath == "" {
		return
	}
	if err := d.remover.Remove(ctx, storagePath); err != nil {
		logger.Warn("object removal failed during delete", "object", storagePath, "err", err)
	}
}
