package abstraction

import (
	"context"

	"framecast/internal/domain/entity"
)

// Deleter owns destructive blob administration. Both operations are
// non-reversible; confirmation is the caller's responsibility.
type Deleter interface {
	DeleteBlob(ctx context.Context, hash string) (bool, error)
	DeleteAll(ctx context.Context) (entity.DeleteAllResult, error)
}
