package database

import (
	"context"
	"time"

	"framecast/internal/domain/model"
)

// BlobStore owns the content-addressed blob records.
type BlobStore interface {
	// GetByHash is a pure lookup; entity.ErrNotFound when absent.
	GetByHash(ctx context.Context, hash string) (*model.Blob, error)

	// CreateIfAbsent is the dedup contract: when a blob with this hash
	// already exists the call returns entity.ErrDuplicateContent and the
	// existing record stays untouched.
	CreateIfAbsent(ctx context.Context, blob *model.Blob) error

	// AttachAnalysis merges enrichment output into an existing record
	// without clobbering geometry or format fields.
	AttachAnalysis(ctx context.Context, hash, title, description string,
		analysis *model.Analysis, analyzedAt time.Time) error

	List(ctx context.Context) ([]model.Blob, error)
	Delete(ctx context.Context, hash string) error
	DeleteAll(ctx context.Context) (int64, error)
}
