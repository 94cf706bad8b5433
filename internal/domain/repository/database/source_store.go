package database

import (
	"context"
	"time"

	"framecast/internal/domain/model"
)

// SourceStore persists ingestion attempts. A source transitions to a
// terminal status exactly once.
type SourceStore interface {
	Create(ctx context.Context, source *model.Source) error
	GetByID(ctx context.Context, id string) (*model.Source, error)
	MarkCompleted(ctx context.Context, id, status, blobHash string,
		duplicate bool, completedAt time.Time) error
}
