package abstraction

import (
	"context"

	"framecast/internal/domain/entity"
)

// Enricher attaches AI-derived metadata to blobs. Trigger is
// fire-and-forget: callers get no handle and never see its failure.
type Enricher interface {
	Trigger(blobHash string)
	ReanalyzeAll(ctx context.Context) (entity.ReanalyzeResult, error)
}
